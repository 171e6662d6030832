package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolate points XDG at a temp dir, moves into it and clears key variables.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "config"))
	t.Setenv("XDG_DATA_HOME", filepath.Join(dir, "data"))
	for _, k := range []string{
		"GEMINI_API_KEY", "GOOGLE_API_KEY", "OPENAI_API_KEY", "ANTHROPIC_API_KEY", "OPENROUTER_API_KEY",
		"EDUVISION_PROVIDER", "EDUVISION_GEMINI_API_KEY", "EDUVISION_IMAGES_CONCURRENCY",
	} {
		t.Setenv(k, "")
	}
	t.Chdir(dir)
	return dir
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestGlobalPath(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/custom/config")
	assert.Equal(t, "/custom/config/eduvision/eduvision.yml", GlobalPath())

	t.Setenv("XDG_CONFIG_HOME", "")
	got := GlobalPath()
	assert.True(t, filepath.IsAbs(got), "expected absolute path, got %s", got)
	assert.Equal(t, "eduvision.yml", filepath.Base(got))
}

func TestLoad_Defaults(t *testing.T) {
	isolate(t)

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "gemini", cfg.Provider)
	assert.Equal(t, "gemini-pro", cfg.Gemini.Model)
	assert.Equal(t, "gemini-flash", cfg.Gemini.FastModel)
	assert.Equal(t, "gemini-image", cfg.Gemini.ImageModel)
	assert.Equal(t, 1, cfg.Images.Concurrency)
	assert.Equal(t, "1K", cfg.Images.Size)
	assert.Equal(t, DefaultFontURL, cfg.PDF.FontURL)
	assert.Equal(t, 3*time.Minute, cfg.Timeout)
	assert.Equal(t, ".", cfg.OutputDir)
	assert.False(t, Exists())
}

func TestLoad_ProjectOverridesGlobal(t *testing.T) {
	isolate(t)

	writeFile(t, GlobalPath(), "provider: openai\nlog_level: debug\nopenai:\n  model: gpt-4o\n")
	writeFile(t, ProjectPath(), "provider: anthropic\n")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.True(t, Exists())
	assert.Equal(t, "anthropic", cfg.Provider)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "gpt-4o", cfg.OpenAI.Model)
	assert.Equal(t, "gpt-fast", cfg.OpenAI.FastModel)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	isolate(t)

	writeFile(t, ProjectPath(), "gemini:\n  api_key: from-file\nimages:\n  concurrency: 2\n")
	t.Setenv("EDUVISION_GEMINI_API_KEY", "from-env")
	t.Setenv("EDUVISION_IMAGES_CONCURRENCY", "3")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "from-env", cfg.Gemini.APIKey)
	assert.Equal(t, 3, cfg.Images.Concurrency)
}

func TestLoad_ExplicitPath(t *testing.T) {
	dir := isolate(t)

	writeFile(t, ProjectPath(), "provider: anthropic\n")
	explicit := filepath.Join(dir, "custom.yml")
	writeFile(t, explicit, "provider: mock\nimages:\n  concurrency: 0\n")

	cfg, err := Load(explicit)
	require.NoError(t, err)

	assert.Equal(t, "mock", cfg.Provider)
	assert.Equal(t, 1, cfg.Images.Concurrency, "concurrency is clamped to at least 1")
}

func TestLoad_MissingExplicitPath(t *testing.T) {
	dir := isolate(t)
	_, err := Load(filepath.Join(dir, "nope.yml"))
	assert.Error(t, err)
}

func TestWriteGlobal_RoundTrip(t *testing.T) {
	isolate(t)

	cfg, err := Load("")
	require.NoError(t, err)
	cfg.Gemini.APIKey = "AIza-saved"
	cfg.Timeout = 90 * time.Second
	require.NoError(t, WriteGlobal(cfg))

	info, err := os.Stat(GlobalPath())
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	reloaded, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "AIza-saved", reloaded.Gemini.APIKey)
	assert.Equal(t, 90*time.Second, reloaded.Timeout)
}

func TestConfig_LLM(t *testing.T) {
	isolate(t)
	t.Setenv("GEMINI_API_KEY", "vendor-key")

	cfg, err := Load("")
	require.NoError(t, err)
	cfg.Timeout = 0

	lc := cfg.LLM()
	assert.Equal(t, "gemini", lc.Provider)
	assert.Equal(t, "vendor-key", lc.Gemini.APIKey)
	assert.Equal(t, "gemini-image", lc.Gemini.ImageModel)
	assert.Equal(t, 3*time.Minute, lc.Timeout, "zero timeout keeps the provider default")
	assert.NoError(t, lc.Validate())
}

func TestResolvedPaths(t *testing.T) {
	dir := isolate(t)

	cfg := &Config{}
	dataDir, err := cfg.ResolvedDataDir()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "data", "eduvision"), dataDir)

	logFile, err := cfg.ResolvedLogFile()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dataDir, "eduvision.log"), logFile)

	cfg = &Config{DataDir: "/srv/edu", LogFile: "/var/log/edu.log"}
	dataDir, _ = cfg.ResolvedDataDir()
	logFile, _ = cfg.ResolvedLogFile()
	assert.Equal(t, "/srv/edu", dataDir)
	assert.Equal(t, "/var/log/edu.log", logFile)
}
