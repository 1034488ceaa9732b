package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Load reads a YAML file over [Default], applies environment overrides and
// validates the result. An empty path skips the file.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := parseInto(cfg, data); err != nil {
			return nil, err
		}
	}

	cfg.ApplyEnv(os.Getenv)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// LoadFromBytes parses and validates a configuration without touching the
// environment.
func LoadFromBytes(data []byte) (*Config, error) {
	cfg := Default()
	if err := parseInto(cfg, data); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// parseInto decodes YAML over an existing config. Lists present in the
// document replace the defaults; osVersions entries merge into the default
// lookup.
func parseInto(cfg *Config, data []byte) error {
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("failed to parse YAML: %w", err)
	}
	return nil
}

// ApplyEnv overlays values from the environment. The personal access
// token is only ever taken from the environment.
func (c *Config) ApplyEnv(getenv func(string) string) {
	if v := getenv(EnvGitHubPAT); v != "" {
		c.GitHubPAT = v
	}
	if v := getenv(EnvGitHubConfigSecret); v != "" {
		c.GitHubConfigSecret = v
	}
	if v := getenv(EnvNamespace); v != "" {
		c.Namespace = v
	}
}

// Save writes the configuration as YAML. The token is never written.
func Save(cfg *Config, path string) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}
