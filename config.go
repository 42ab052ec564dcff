package tftp

import (
	"errors"
	"io/fs"
	"os"
	"time"

	"gopkg.in/yaml.v2"
)

// Config holds the client settings read from an optional YAML file.
type Config struct {
	Server         string `yaml:"server"`
	Port           int    `yaml:"port"`
	TimeoutSeconds int    `yaml:"timeout_seconds"`
}

func defaultConfig() *Config {
	return &Config{
		Server:         DefaultServer,
		Port:           DefaultPort,
		TimeoutSeconds: int(defaultReceiveTimeout / time.Second),
	}
}

// LoadConfig reads path and fills unset fields with defaults. A
// missing file is not an error, it yields the defaults unchanged.
func LoadConfig(path string) (*Config, error) {
	config := defaultConfig()
	raw, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return config, nil
	}
	if err != nil {
		return nil, err
	}
	if err := yaml.Unmarshal(raw, config); err != nil {
		return nil, err
	}
	if config.Server == "" {
		config.Server = DefaultServer
	}
	if config.Port == 0 {
		config.Port = DefaultPort
	}
	if config.TimeoutSeconds == 0 {
		config.TimeoutSeconds = int(defaultReceiveTimeout / time.Second)
	}
	return config, nil
}

func (config *Config) Timeout() time.Duration {
	return time.Duration(config.TimeoutSeconds) * time.Second
}
