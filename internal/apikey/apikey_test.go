package apikey

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/eduvision/internal/config"
	"github.com/abhisek/eduvision/internal/llm"
)

func clearVendorKeys(t *testing.T) {
	t.Helper()
	for _, k := range []string{"GEMINI_API_KEY", "GOOGLE_API_KEY", "OPENAI_API_KEY", "ANTHROPIC_API_KEY", "OPENROUTER_API_KEY"} {
		t.Setenv(k, "")
	}
}

func TestDescribe(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{nil, ""},
		{ErrEntityNotFound, NotFoundMessage},
		{fmt.Errorf("select: %w", ErrEntityNotFound), NotFoundMessage},
		{errors.New("googleapi: Error 404: Requested entity was not found."), NotFoundMessage},
		{errors.New("network down"), GenericMessage},
		{ErrEmptyKey, GenericMessage},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Describe(tt.err), "%v", tt.err)
	}
}

func newManager(cfg *config.Config, verify VerifyFunc) (*ConfigManager, *[]*config.Config) {
	var saved []*config.Config
	m := NewConfigManager(cfg)
	m.verify = verify
	m.save = func(c *config.Config) error {
		cp := *c
		saved = append(saved, &cp)
		return nil
	}
	return m, &saved
}

func TestHasKey(t *testing.T) {
	clearVendorKeys(t)

	m, _ := newManager(&config.Config{Provider: "gemini"}, nil)
	ok, err := m.HasKey(context.Background())
	require.NoError(t, err)
	assert.False(t, ok)

	t.Setenv("GEMINI_API_KEY", "from-env")
	ok, _ = m.HasKey(context.Background())
	assert.True(t, ok)

	clearVendorKeys(t)
	m, _ = newManager(&config.Config{Provider: "mock"}, nil)
	ok, _ = m.HasKey(context.Background())
	assert.True(t, ok)
}

func TestSelectKey(t *testing.T) {
	clearVendorKeys(t)

	var verified []string
	cfg := &config.Config{Provider: "openai", Gemini: config.GeminiConfig{FastModel: "gemini-flash"}}
	m, saved := newManager(cfg, func(_ context.Context, key, model string) error {
		verified = append(verified, key+"@"+model)
		return nil
	})

	require.NoError(t, m.SelectKey(context.Background(), "  AIza-good  "))
	assert.Equal(t, []string{"AIza-good@gemini-flash"}, verified)
	require.Len(t, *saved, 1)
	assert.Equal(t, "AIza-good", (*saved)[0].Gemini.APIKey)
	assert.Equal(t, "gemini", (*saved)[0].Provider)

	ok, _ := m.HasKey(context.Background())
	assert.True(t, ok)
}

func TestSelectKey_Errors(t *testing.T) {
	clearVendorKeys(t)

	m, saved := newManager(&config.Config{Provider: "gemini"}, func(context.Context, string, string) error {
		return &llm.ErrNotFound{Err: errors.New("Requested entity was not found.")}
	})
	err := m.SelectKey(context.Background(), "AIza-unknown")
	assert.ErrorIs(t, err, ErrEntityNotFound)
	assert.Equal(t, NotFoundMessage, Describe(err))
	assert.Empty(t, *saved)

	m, _ = newManager(&config.Config{Provider: "gemini"}, func(context.Context, string, string) error {
		return &llm.ErrProviderUnavailable{Err: errors.New("dial tcp: timeout")}
	})
	err = m.SelectKey(context.Background(), "AIza-x")
	assert.Equal(t, GenericMessage, Describe(err))

	assert.ErrorIs(t, m.SelectKey(context.Background(), "   "), ErrEmptyKey)

	m, _ = newManager(&config.Config{Provider: "gemini"}, func(context.Context, string, string) error { return nil })
	m.save = func(*config.Config) error { return errors.New("read-only") }
	assert.Error(t, m.SelectKey(context.Background(), "AIza-x"))
}
