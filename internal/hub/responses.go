package hub

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/tidwall/gjson"
)

type LoginRequest struct {
	Username  string `json:"username"`
	Password  string `json:"password"`
	GrantType string `json:"grant_type"`
}

type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// Device is a validated entry of the hub's device list.
type Device struct {
	ID           string
	SerialNumber string
	Name         string
	Version      float64
	VersionText  string
}

// ParseDevice validates a single device list entry. All of id, serialNumber,
// config.name and a numeric version must be present.
func ParseDevice(raw json.RawMessage) (Device, error) {
	if !gjson.ParseBytes(raw).IsObject() {
		return Device{}, errors.New("device record is not an object")
	}

	fields := map[string]string{}
	for _, path := range []string{"id", "serialNumber", "config.name", "version"} {
		value, err := textField(raw, path)
		if err != nil {
			return Device{}, err
		}
		fields[path] = value
	}

	version, err := strconv.ParseFloat(strings.TrimSpace(fields["version"]), 64)
	if err != nil || math.IsNaN(version) || math.IsInf(version, 0) {
		return Device{}, fmt.Errorf("device %s: version %q is not numeric", fields["id"], fields["version"])
	}

	return Device{
		ID:           fields["id"],
		SerialNumber: fields["serialNumber"],
		Name:         fields["config.name"],
		Version:      version,
		VersionText:  fields["version"],
	}, nil
}

func textField(raw json.RawMessage, path string) (string, error) {
	result := gjson.GetBytes(raw, path)
	if !result.Exists() {
		return "", fmt.Errorf("device record is missing %s", path)
	}
	if result.Type != gjson.String && result.Type != gjson.Number {
		return "", fmt.Errorf("device record field %s has unexpected type %s", path, result.Type)
	}
	if result.String() == "" {
		return "", fmt.Errorf("device record field %s is empty", path)
	}
	return result.String(), nil
}
