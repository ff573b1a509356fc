// Package identity stores the username of the terminal chat client.
package identity

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// Key is the slot holding the username in the identity file
const Key = "ngrok-username"

var ErrBlankUsername = errors.New("username must not be blank")

// Provider holds the current username. It is read from a YAML key-value file once
// at construction and written through on every change.
type Provider struct {
	path   string
	logger *zap.SugaredLogger

	mu       sync.RWMutex
	username string
}

// NewProvider loads the username stored at path. An unreadable or missing file leaves it empty.
func NewProvider(path string, logger *zap.SugaredLogger) *Provider {
	p := &Provider{path: path, logger: logger}

	slots, err := p.read()
	if err != nil {
		logger.Warnw("failed to read identity file", "path", path, "error", err)
		return p
	}
	p.username = strings.TrimSpace(slots[Key])
	return p
}

func (p *Provider) Username() string {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.username
}

// SetUsername trims and stores name. Blank names are rejected and leave the current one in place.
// Failing to persist is logged; the new name is still used for this session.
func (p *Provider) SetUsername(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrBlankUsername
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	p.username = name

	if err := p.write(name); err != nil {
		p.logger.Warnw("failed to persist username", "path", p.path, "error", err)
	}
	return nil
}

func (p *Provider) read() (map[string]string, error) {
	slots := map[string]string{}
	data, err := os.ReadFile(p.path)
	if errors.Is(err, os.ErrNotExist) {
		return slots, nil
	}
	if err != nil {
		return nil, err
	}
	if err := yaml.Unmarshal(data, &slots); err != nil {
		return nil, fmt.Errorf("parse identity file: %w", err)
	}
	if slots == nil {
		slots = map[string]string{}
	}
	return slots, nil
}

// write updates the username slot, keeping any other keys in the file
func (p *Provider) write(name string) error {
	slots, err := p.read()
	if err != nil {
		slots = map[string]string{}
	}
	slots[Key] = name

	data, err := yaml.Marshal(slots)
	if err != nil {
		return err
	}
	if dir := filepath.Dir(p.path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	return os.WriteFile(p.path, data, 0o600)
}
