package cli

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the YAML config file accepted via --config. Flags beat
// environment variables beat config file values.
type Config struct {
	AccessToken string   `yaml:"access_token"`
	Key         string   `yaml:"key"`
	UserAgent   string   `yaml:"user_agent"`
	BaseURL     string   `yaml:"base_url"`
	Scopes      []string `yaml:"scopes"`
	LogFile     string   `yaml:"log_file"`
	Debug       bool     `yaml:"debug"`
	Retries     int      `yaml:"retries"`
}

// LoadConfig reads and parses a config file.
func LoadConfig(path string) (Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("reading config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing config %q: %w", path, err)
	}
	return cfg, nil
}
