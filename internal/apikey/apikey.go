// Package apikey gates the application behind a usable provider key.
package apikey

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/abhisek/eduvision/internal/config"
	"github.com/abhisek/eduvision/internal/llm"
)

var (
	// ErrEntityNotFound means the provider does not know the selected key
	// or project.
	ErrEntityNotFound = errors.New("requested entity was not found")
	// ErrEmptyKey is returned by SelectKey for a blank key.
	ErrEmptyKey = errors.New("api key is empty")
)

// Messages shown on the key gate.
const (
	NotFoundMessage = "找不到請求的項目，請重新選擇有效的專案金鑰。"
	GenericMessage  = "選擇金鑰時發生錯誤，請稍後再試。"
)

// Describe maps a key selection error to the message shown to the user.
func Describe(err error) string {
	if err == nil {
		return ""
	}
	if errors.Is(err, ErrEntityNotFound) || strings.Contains(err.Error(), "Requested entity was not found") {
		return NotFoundMessage
	}
	return GenericMessage
}

// Manager checks for and selects the provider key.
type Manager interface {
	HasKey(ctx context.Context) (bool, error)
	SelectKey(ctx context.Context, key string) error
}

// VerifyFunc checks a Gemini key against model.
type VerifyFunc func(ctx context.Context, key, model string) error

// ConfigManager keeps the key in the configuration. Selected keys are
// verified, then written to the global config file.
type ConfigManager struct {
	mu     sync.Mutex
	cfg    *config.Config
	verify VerifyFunc
	save   func(*config.Config) error
}

// NewConfigManager creates a manager that verifies keys with a Gemini
// model lookup and persists them with config.WriteGlobal.
func NewConfigManager(cfg *config.Config) *ConfigManager {
	return &ConfigManager{cfg: cfg, verify: llm.VerifyGeminiKey, save: config.WriteGlobal}
}

// HasKey reports whether the configured text provider has a key, counting
// keys found in vendor environment variables.
func (m *ConfigManager) HasKey(context.Context) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.cfg.LLM().HasKey(), nil
}

// SelectKey verifies key as a Gemini key and stores it. The provider is
// switched to gemini.
func (m *ConfigManager) SelectKey(ctx context.Context, key string) error {
	key = strings.TrimSpace(key)
	if key == "" {
		return ErrEmptyKey
	}

	m.mu.Lock()
	model := m.cfg.LLM().Gemini.FastModel
	m.mu.Unlock()

	if err := m.verify(ctx, key, model); err != nil {
		var nf *llm.ErrNotFound
		if errors.As(err, &nf) {
			return fmt.Errorf("%w: %w", ErrEntityNotFound, err)
		}
		return fmt.Errorf("verify key: %w", err)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.cfg.Gemini.APIKey = key
	m.cfg.Provider = "gemini"
	if err := m.save(m.cfg); err != nil {
		return fmt.Errorf("save key: %w", err)
	}
	return nil
}
