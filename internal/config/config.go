package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the optional YAML config file. Command-line flags override
// anything set here.
type Config struct {
	Server      string `yaml:"server"`
	AccessToken string `yaml:"access_token"`
	AI          AI     `yaml:"ai"`
}

// AI configures the narrative service.
type AI struct {
	APIKey  string `yaml:"api_key"`
	Model   string `yaml:"model"`
	BaseURL string `yaml:"base_url"`
}

// Load reads a config file. A missing file is not an error: flags and
// environment are enough to run.
func Load(path string) (Config, error) {
	var cfg Config

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return cfg, nil
}

// ApplyEnv fills unset secrets from the environment.
func (c *Config) ApplyEnv() {
	if c.AccessToken == "" {
		c.AccessToken = os.Getenv("MASTOWRAP_TOKEN")
	}
	if c.AI.APIKey == "" {
		c.AI.APIKey = os.Getenv("MASTOWRAP_AI_KEY")
	}
}
