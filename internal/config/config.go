package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Server struct {
		Port string `yaml:"port"`
	} `yaml:"server"`

	Storage struct {
		// Path to the sqlite file. Empty means in-memory only.
		Path string `yaml:"path"`
	} `yaml:"storage"`

	Provider struct {
		Model string `yaml:"model"`
		Mock  bool   `yaml:"mock"`
	} `yaml:"provider"`

	Quiz struct {
		QuestionCount      int    `yaml:"question_count"`
		SurvivalBatchSize  int    `yaml:"survival_batch_size"`
		StartingLives      int    `yaml:"starting_lives"`
		AutoAdvanceDelayMs int    `yaml:"auto_advance_delay_ms"`
		Locale             string `yaml:"locale"`
	} `yaml:"quiz"`
}

func Default() Config {
	var cfg Config
	cfg.Server.Port = "8080"
	cfg.Storage.Path = "quizhero.db"
	cfg.Quiz.QuestionCount = 10
	cfg.Quiz.SurvivalBatchSize = 5
	cfg.Quiz.StartingLives = 3
	cfg.Quiz.AutoAdvanceDelayMs = 2000
	cfg.Quiz.Locale = "en"
	return cfg
}

// Load reads a yaml config file over the defaults. An empty path or a
// missing file yields the defaults; a malformed file is an error.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		cfg.applyEnv()
		return cfg, nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			cfg.applyEnv()
			return cfg, nil
		}
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.applyEnv()
	return cfg, nil
}

func (c *Config) applyEnv() {
	if port := os.Getenv("PORT"); port != "" {
		c.Server.Port = port
	}
	if path := os.Getenv("STORAGE_PATH"); path != "" {
		c.Storage.Path = path
	}
	if model := os.Getenv("ANTHROPIC_MODEL"); model != "" {
		c.Provider.Model = model
	}
	if os.Getenv("MOCK_PROVIDER") == "true" {
		c.Provider.Mock = true
	}
}

func (c Config) AutoAdvanceDelay() time.Duration {
	return time.Duration(c.Quiz.AutoAdvanceDelayMs) * time.Millisecond
}
