package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
	"github.com/wheelibin/smarthub-adapter/internal/constants"
)

const envPrefix = "SMARTHUB"

// SystemGrouping controls whether devices are nested under system objects.
type SystemGrouping struct {
	Enabled bool     `mapstructure:"enabled"`
	Systems []string `mapstructure:"systems"`
}

// Settings are deployment wide and apply to every adapter instance.
type Settings struct {
	ClientID       string         `mapstructure:"clientId"`
	ClientSecret   string         `mapstructure:"clientSecret"`
	RequestTimeout time.Duration  `mapstructure:"requestTimeout"`
	SystemGrouping SystemGrouping `mapstructure:"systemGrouping"`
	TextfilePath   string         `mapstructure:"textfilePath"`
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetDefault("clientId", "clientId")
	v.SetDefault("clientSecret", "clientPass")
	v.SetDefault("requestTimeout", constants.DefaultRequestTimeout)
	v.SetDefault("systemGrouping.enabled", false)
	v.SetDefault("systemGrouping.systems", []string{"system-1", "system-2"})
	v.SetDefault("textfilePath", "")

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// ReadSettings loads the adapter settings. An explicit path must exist; without one the
// usual locations are searched and defaults are used when nothing is found.
func ReadSettings(path string) (*Settings, error) {
	v := newViper()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("settings")
		v.AddConfigPath("/etc/smarthub-adapter/")
		v.AddConfigPath("$HOME/.config/smarthub-adapter/")
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading settings: %w", err)
		}
	}

	return unmarshalSettings(v)
}

func unmarshalSettings(v *viper.Viper) (*Settings, error) {
	settings := Settings{}
	if err := v.Unmarshal(&settings); err != nil {
		return nil, fmt.Errorf("error parsing settings: %w", err)
	}
	if err := settings.Validate(); err != nil {
		return nil, err
	}
	return &settings, nil
}

func (s Settings) Validate() error {
	if s.ClientID == "" {
		return errors.New("clientId must not be empty")
	}
	if s.RequestTimeout <= 0 {
		return fmt.Errorf("requestTimeout must be positive, got %s", s.RequestTimeout)
	}
	if s.SystemGrouping.Enabled && len(s.SystemGrouping.Systems) == 0 {
		return errors.New("systemGrouping.systems must not be empty when grouping is enabled")
	}
	return nil
}
