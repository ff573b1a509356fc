package chat

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// ClientConfig configures the terminal chat client
type ClientConfig struct {
	BaseURL      string        `yaml:"base_url"`
	Conversation string        `yaml:"conversation"`
	PollInterval time.Duration `yaml:"poll_interval"`
	IdentityFile string        `yaml:"identity_file"`
	// per request bound for calls to the backend
	Timeout      time.Duration `yaml:"timeout"`
}

func DefaultClientConfig() ClientConfig {
	return ClientConfig{
		BaseURL:      "http://localhost:3000",
		Conversation: DefaultConversationName,
		PollInterval: DefaultPollInterval,
		IdentityFile: ".chat-identity.yaml",
		Timeout:      10 * time.Second,
	}
}

// LoadClientConfig reads the YAML file at path over the defaults. A missing file yields the defaults.
func LoadClientConfig(path string) (ClientConfig, error) {
	cfg := DefaultClientConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return ClientConfig{}, fmt.Errorf("read client config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return ClientConfig{}, fmt.Errorf("parse client config: %w", err)
	}
	if cfg.PollInterval <= 0 {
		return ClientConfig{}, fmt.Errorf("poll_interval must be positive, got %s", cfg.PollInterval)
	}
	if cfg.Timeout <= 0 {
		return ClientConfig{}, fmt.Errorf("timeout must be positive, got %s", cfg.Timeout)
	}
	if cfg.Conversation == "" {
		cfg.Conversation = DefaultConversationName
	}
	return cfg, nil
}
