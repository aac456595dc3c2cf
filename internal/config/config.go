package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds collector settings. Command-line flags may override
// individual fields after loading.
type Config struct {
	Agent   Agent  `yaml:"agent"`
	Prefix  string `yaml:"prefix,omitempty"`
	Source  string `yaml:"source,omitempty"`
	Verbose bool   `yaml:"verbose,omitempty"`
}

// Agent is the dogstatsd-compatible endpoint metrics are sent to.
type Agent struct {
	Host string `yaml:"host,omitempty"`
	Port int    `yaml:"port,omitempty"`
}

// defaultConfig provides baseline settings for a stock install
var defaultConfig = Config{
	Agent: Agent{
		Host: "localhost",
		Port: 8125,
	},
	Prefix: "unraid.disk",
	Source: "/var/local/emhttp/disks.ini",
}

func Load(path string) (*Config, error) {
	if path == "" {
		// Try default locations
		candidates := []string{
			"/etc/disktemps/config.yaml",
			filepath.Join(os.Getenv("HOME"), ".config/disktemps/config.yaml"),
			"config.yaml",
		}
		for _, c := range candidates {
			if _, err := os.Stat(c); err == nil {
				path = c
				break
			}
		}
	}

	var cfg Config
	if path == "" {
		// No config file found - run on defaults
		cfg = defaultConfig
	} else {
		data, err := os.ReadFile(path)
		if err != nil {
			cfg = defaultConfig
		} else {
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return nil, err
			}
		}
	}

	// Apply defaults for missing fields
	if cfg.Agent.Host == "" {
		cfg.Agent.Host = defaultConfig.Agent.Host
	}
	if cfg.Agent.Port == 0 {
		cfg.Agent.Port = defaultConfig.Agent.Port
	}
	if cfg.Prefix == "" {
		cfg.Prefix = defaultConfig.Prefix
	}
	if cfg.Source == "" {
		cfg.Source = defaultConfig.Source
	}

	return &cfg, nil
}

// Addr returns the agent endpoint in host:port form.
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Agent.Host, c.Agent.Port)
}
