package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Provider string `yaml:"provider"`
	APIKey   string `yaml:"api_key,omitempty"`
	Model    string `yaml:"model"`
	BaseURL  string `yaml:"base_url,omitempty"`

	// Creativity is the starting level for new sessions.
	Creativity string `yaml:"creativity,omitempty"`
}

func DefaultConfig() *Config {
	return &Config{
		Provider:   "ollama",
		Model:      "llama3.1:8b",
		Creativity: "high",
	}
}

func ConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "icebreaker"), nil
}

func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}

func Exists() bool {
	path, err := ConfigPath()
	if err != nil {
		return false
	}
	_, err = os.Stat(path)
	return err == nil
}

// Load reads the default config file. A missing file yields nil, nil.
func Load() (*Config, error) {
	path, err := ConfigPath()
	if err != nil {
		return nil, err
	}
	return LoadFrom(path)
}

// LoadFrom reads a config file. A missing file yields nil, nil.
func LoadFrom(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	cfg.applyDefaults()

	return &cfg, nil
}

// applyDefaults fills fields a hand-written file may omit. A missing model
// takes the default of the configured provider, not of the default one.
func (c *Config) applyDefaults() {
	def := DefaultConfig()
	if c.Provider == "" {
		c.Provider = def.Provider
	}
	if c.Model == "" {
		if p := GetProvider(c.Provider); p != nil {
			c.Model = p.DefaultModel
		}
	}
	if c.Creativity == "" {
		c.Creativity = def.Creativity
	}
}

// Save writes the config to the default path.
func (c *Config) Save() error {
	path, err := ConfigPath()
	if err != nil {
		return err
	}
	return c.SaveTo(path)
}

// SaveTo writes the config to path, creating its directory.
func (c *Config) SaveTo(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0600)
}

// Validate checks that the provider is known and has what it needs.
func (c *Config) Validate() error {
	p := GetProvider(c.Provider)
	if p == nil {
		return fmt.Errorf("unknown provider: %s", c.Provider)
	}
	if p.NeedsAPIKey && c.APIKey == "" {
		return fmt.Errorf("%s requires an API key", p.ID)
	}
	if p.NeedsBaseURL && c.BaseURL == "" {
		return fmt.Errorf("%s provider requires base_url", p.ID)
	}
	return nil
}
