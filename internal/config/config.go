package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sync"
)

// LLMSettings selects and configures the generation collaborator.
type LLMSettings struct {
	Provider       string  `json:"provider"` // "openai", "local" or "mock"
	Model          string  `json:"model"`
	APIKey         string  `json:"api_key"`
	APIKeyEnv      string  `json:"api_key_env"`
	BaseURL        string  `json:"base_url"`
	TimeoutSeconds int     `json:"timeout_seconds"`
	Temperature    float64 `json:"temperature"`
	MaxTokens      int     `json:"max_tokens"`
}

// ResolveAPIKey returns the literal key or, when api_key_env is set, the
// value of that environment variable.
func (s LLMSettings) ResolveAPIKey() (string, error) {
	if s.APIKey != "" {
		return s.APIKey, nil
	}
	if s.APIKeyEnv != "" {
		if v := os.Getenv(s.APIKeyEnv); v != "" {
			return v, nil
		}
		return "", fmt.Errorf("environment variable %s is empty", s.APIKeyEnv)
	}
	return "", errors.New("no api key configured")
}

type Config struct {
	Server struct {
		Host    string `json:"host"`
		Port    int    `json:"port"`
		Subpath string `json:"subpath"`
	} `json:"server"`
	LLM     LLMSettings `json:"llm"`
	Storage struct {
		OutputsDir string `json:"outputs_dir"`
		DBPath     string `json:"db_path"`
	} `json:"storage"`
}

var (
	once   sync.Once
	cfg    *Config
	cfgErr error
)

// LoadConfig reads config.json from disk (singleton)
func LoadConfig(path string) (*Config, error) {
	once.Do(func() {
		raw, err := os.ReadFile(path)
		if err != nil {
			cfgErr = fmt.Errorf("failed to read config file: %w", err)
			return
		}
		var c Config
		if err := json.Unmarshal(raw, &c); err != nil {
			cfgErr = fmt.Errorf("invalid config format: %w", err)
			return
		}
		if err := validate(&c); err != nil {
			cfgErr = err
			return
		}
		applyDefaults(&c)
		cfg = &c
	})
	return cfg, cfgErr
}

func validate(c *Config) error {
	switch c.LLM.Provider {
	case "openai":
		if c.LLM.Model == "" {
			return errors.New("llm.model must be set for provider openai")
		}
		if c.LLM.APIKey == "" && c.LLM.APIKeyEnv == "" {
			return errors.New("llm.api_key or llm.api_key_env must be set for provider openai")
		}
	case "local":
		if c.LLM.BaseURL == "" {
			return errors.New("llm.base_url must be set for provider local")
		}
	case "mock":
	case "":
		return errors.New("llm.provider must be set")
	default:
		return fmt.Errorf("llm provider %s not supported", c.LLM.Provider)
	}
	return nil
}

func applyDefaults(c *Config) {
	if c.Server.Port == 0 {
		c.Server.Port = 8080
	}
	if c.LLM.TimeoutSeconds == 0 {
		c.LLM.TimeoutSeconds = 120
	}
	if c.Storage.OutputsDir == "" {
		c.Storage.OutputsDir = "outputs"
	}
	if c.Storage.DBPath == "" {
		c.Storage.DBPath = "articles.db"
	}
}

// GetConfig returns the loaded config (must call LoadConfig first)
func GetConfig() *Config {
	return cfg
}

// ResetConfigForTest resets the singleton state (for testing only)
func ResetConfigForTest() {
	once = sync.Once{}
	cfg = nil
	cfgErr = nil
}
