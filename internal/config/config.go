package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// DefaultEndpoint is the hosted worker that proxies prompts to a chat model.
const DefaultEndpoint = "https://fllr-worker.esjohn15.workers.dev"

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

type Config struct {
	Provider string        `yaml:"provider"`
	Endpoint string        `yaml:"endpoint,omitempty"`
	APIKey   string        `yaml:"api_key,omitempty"`
	Model    string        `yaml:"model,omitempty"`
	BaseURL  string        `yaml:"base_url,omitempty"`
	Timeout  time.Duration `yaml:"timeout"`

	Log LogConfig `yaml:"log"`
}

type LogConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file,omitempty"`
}

func DefaultConfig() *Config {
	logFile := ""
	if dir, err := ConfigDir(); err == nil {
		logFile = filepath.Join(dir, "icebreak.log")
	}
	return &Config{
		Provider: "worker",
		Endpoint: DefaultEndpoint,
		Timeout:  60 * time.Second,
		Log: LogConfig{
			Level: "info",
			File:  logFile,
		},
	}
}

func ConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "icebreak"), nil
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

// Load reads the config file. A missing file yields (nil, nil).
func Load() (*Config, error) {
	path, err := ConfigPath()
	if err != nil {
		return nil, err
	}
	return loadFrom(path)
}

func loadFrom(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	// Start from defaults so older files without newer sections still work.
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return cfg, nil
}

// LoadOrDefault loads the config file, falling back to defaults when it does
// not exist, and applies environment overrides.
func LoadOrDefault() (*Config, error) {
	cfg, err := Load()
	if err != nil {
		return nil, err
	}
	if cfg == nil {
		cfg = DefaultConfig()
	}
	cfg.ApplyEnv()
	return cfg, nil
}

func (c *Config) Save() error {
	dir, err := ConfigDir()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}

	path, err := ConfigPath()
	if err != nil {
		return err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}

	return os.WriteFile(path, data, 0600)
}

// ApplyEnv overlays ICEBREAK_* variables, then fills an empty API key from the
// selected provider's conventional variable.
func (c *Config) ApplyEnv() {
	if v := strings.TrimSpace(os.Getenv("ICEBREAK_PROVIDER")); v != "" {
		c.Provider = strings.ToLower(v)
	}
	if v := strings.TrimSpace(os.Getenv("ICEBREAK_ENDPOINT")); v != "" {
		c.Endpoint = v
	}
	if v := strings.TrimSpace(os.Getenv("ICEBREAK_MODEL")); v != "" {
		c.Model = v
	}
	if v := strings.TrimSpace(os.Getenv("ICEBREAK_API_KEY")); v != "" {
		c.APIKey = v
	}
	if c.APIKey == "" {
		c.APIKey = c.EnvAPIKey()
	}
}

// EnvAPIKey returns the key the environment supplies for the selected
// provider: ICEBREAK_API_KEY, then the provider's conventional variable.
func (c *Config) EnvAPIKey() string {
	if v := strings.TrimSpace(os.Getenv("ICEBREAK_API_KEY")); v != "" {
		return v
	}
	if info := GetProvider(c.Provider); info != nil && info.KeyEnv != "" {
		return strings.TrimSpace(os.Getenv(info.KeyEnv))
	}
	return ""
}

// Validate reports the first problem that would stop a provider from being built.
func (c *Config) Validate() error {
	info := GetProvider(c.Provider)
	if info == nil {
		return fmt.Errorf("%w: unknown provider %q", ErrInvalid, c.Provider)
	}

	switch c.Provider {
	case "worker":
		if err := validateURL(c.Endpoint); err != nil {
			return fmt.Errorf("%w: endpoint: %v", ErrInvalid, err)
		}
	case "custom":
		if err := validateURL(c.BaseURL); err != nil {
			return fmt.Errorf("%w: base_url: %v", ErrInvalid, err)
		}
	case "ollama":
		if c.BaseURL != "" {
			if err := validateURL(c.BaseURL); err != nil {
				return fmt.Errorf("%w: base_url: %v", ErrInvalid, err)
			}
		}
	}

	if info.NeedsAPIKey && strings.TrimSpace(c.APIKey) == "" {
		return fmt.Errorf("%w: %s requires an API key (set %s)", ErrInvalid, info.Name, info.KeyEnv)
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("%w: timeout must be positive", ErrInvalid)
	}
	switch strings.ToLower(c.Log.Level) {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: unknown log level %q", ErrInvalid, c.Log.Level)
	}
	return nil
}

// ResolvedModel returns the configured model or the provider default.
func (c *Config) ResolvedModel() string {
	if m := strings.TrimSpace(c.Model); m != "" {
		return m
	}
	if info := GetProvider(c.Provider); info != nil {
		return info.DefaultModel
	}
	return ""
}

// TargetURL is the address prompts are sent to: the worker endpoint, or the
// base URL for every other provider.
func (c *Config) TargetURL() string {
	if c.Provider == "worker" {
		return c.Endpoint
	}
	return c.BaseURL
}

func (c *Config) SetTargetURL(u string) {
	if c.Provider == "worker" {
		c.Endpoint = u
		return
	}
	c.BaseURL = u
}

// MaskedAPIKey hides all but the edges of the key for display.
func (c *Config) MaskedAPIKey() string {
	if c.APIKey == "" {
		return "Not set"
	}
	if len(c.APIKey) > 8 {
		return c.APIKey[:4] + "****" + c.APIKey[len(c.APIKey)-4:]
	}
	return "****"
}

func validateURL(raw string) error {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return errors.New("cannot be empty")
	}
	u, err := url.ParseRequestURI(raw)
	if err != nil {
		return err
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("unsupported scheme %q", u.Scheme)
	}
	return nil
}
