package config

import (
	"fmt"
	"os"
	"path"

	"github.com/pelletier/go-toml"
	"github.com/pkg/errors"
)

const configDirName = "httprange"
const configFileName = "rangefmt.toml"

// DefaultProfileName is used when no profile is requested.
const DefaultProfileName = "default"

// A Config represents the on-disk configuration of rangefmt.
type Config struct {
	Profiles map[string]Profile `json:"profiles,omitempty"`
}

// Load reads a config from path.
func Load(path string) (*Config, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open rangefmt configuration file")
	}
	defer file.Close()

	decoder := toml.NewDecoder(file).SetTagName("json")

	var cfg Config
	if err := decoder.Decode(&cfg); err != nil {
		return nil, errors.Wrap(err, "failed to decode TOML config")
	}

	for name, profile := range cfg.Profiles {
		if err := profile.validate(); err != nil {
			return nil, errors.Wrapf(err, "profile '%s'", name)
		}
	}

	return &cfg, nil
}

// DefaultPath returns the location of the config file in the user
// configuration directory.
func DefaultPath() (string, error) {
	configPath, err := os.UserConfigDir()
	if err != nil {
		return "", errors.Wrap(err, "failed to get the user configuration directory")
	}

	return path.Join(configPath, configDirName, configFileName), nil
}

// LoadDefault loads the config from the default path. A missing file yields
// an empty config.
func LoadDefault() (*Config, error) {
	configPath, err := DefaultPath()
	if err != nil {
		return nil, err
	}

	cfg, err := Load(configPath)
	if err != nil {
		if os.IsNotExist(errors.Cause(err)) {
			return &Config{}, nil
		}
		return nil, err
	}
	return cfg, nil
}

// Profile returns the named profile. The default profile always exists; it
// is empty unless the file defines it.
func (c *Config) Profile(profileName string) (*Profile, error) {
	if profileName == "" {
		profileName = DefaultProfileName
	}

	if profile, ok := c.Profiles[profileName]; ok {
		return &profile, nil
	}

	if profileName == DefaultProfileName {
		return &Profile{}, nil
	}

	return nil, errors.New(fmt.Sprintf("profile '%s' not found", profileName))
}
