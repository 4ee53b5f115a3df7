package config

import (
	"errors"
	"fmt"
	"net"
	"os"
	"strconv"

	"github.com/tidwall/gjson"
	"github.com/wheelibin/smarthub-adapter/internal/constants"
)

// Instance holds the values the host platform supplies for one adapter instance.
type Instance struct {
	Name                 string
	Host                 string
	Port                 int
	ID                   string
	Username             string
	Password             string
	ContainerMemoryLimit int
}

// BaseURL is the root of the hub REST API.
func (i Instance) BaseURL() string {
	return "http://" + net.JoinHostPort(i.Host, strconv.Itoa(i.Port))
}

func ReadInstance(path string) (*Instance, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading input file: %w", err)
	}
	return ParseInstance(data)
}

// ParseInstance reads the identifiers and credential fields out of a host input document.
func ParseInstance(data []byte) (*Instance, error) {
	if !gjson.ValidBytes(data) {
		return nil, errors.New("input document is not valid json")
	}

	instance := Instance{
		Name:                 gjson.GetBytes(data, "adapter_key.name").String(),
		Host:                 constants.DefaultHost,
		Port:                 constants.DefaultPort,
		ContainerMemoryLimit: constants.DefaultContainerMemoryLimit,
	}

	if host := identifier(data, constants.IdentifierHost); host.Exists() && host.String() != "" {
		instance.Host = host.String()
	}

	if port := identifier(data, constants.IdentifierPort); port.Exists() && port.String() != "" {
		p, err := strconv.Atoi(port.String())
		if err != nil || p <= 0 || p > 65535 {
			return nil, fmt.Errorf("invalid port %q", port.String())
		}
		instance.Port = p
	}

	if limit := identifier(data, constants.IdentifierContainerMemoryLimit); limit.Exists() {
		instance.ContainerMemoryLimit = int(limit.Int())
	}

	instance.ID = identifier(data, constants.IdentifierID).String()
	instance.Username = credential(data, constants.CredentialUser).String()
	instance.Password = credential(data, constants.CredentialPassword).String()

	return &instance, nil
}

func identifier(data []byte, key string) gjson.Result {
	return gjson.GetBytes(data, fmt.Sprintf(`adapter_key.identifiers.#(key==%q).value`, key))
}

func credential(data []byte, key string) gjson.Result {
	return gjson.GetBytes(data, fmt.Sprintf(`credential_config.credential_fields.#(key==%q).value`, key))
}
