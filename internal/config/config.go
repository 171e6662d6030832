// Package config provides centralized configuration management using Viper.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/abhisek/eduvision/internal/llm"
)

// DefaultFontURL is the Traditional Chinese TTF fetched for PDF export when
// no local font is configured.
const DefaultFontURL = "https://cdn.jsdelivr.net/npm/open-huninn-font@1.1.0/font/jf-openhuninn-1.1.ttf"

// Config holds all configuration values for eduvision.
type Config struct {
	Provider      string           `mapstructure:"provider" yaml:"provider"`
	ImageProvider string           `mapstructure:"image_provider" yaml:"image_provider,omitempty"`
	Gemini        GeminiConfig     `mapstructure:"gemini" yaml:"gemini"`
	OpenAI        OpenAIConfig     `mapstructure:"openai" yaml:"openai"`
	Anthropic     AnthropicConfig  `mapstructure:"anthropic" yaml:"anthropic"`
	OpenRouter    OpenRouterConfig `mapstructure:"openrouter" yaml:"openrouter"`
	Timeout       time.Duration    `mapstructure:"timeout" yaml:"timeout"`
	OutputDir     string           `mapstructure:"output_dir" yaml:"output_dir"`
	DataDir       string           `mapstructure:"data_dir" yaml:"data_dir,omitempty"`
	LogLevel      string           `mapstructure:"log_level" yaml:"log_level"`
	LogFile       string           `mapstructure:"log_file" yaml:"log_file,omitempty"`
	PDF           PDFConfig        `mapstructure:"pdf" yaml:"pdf"`
	Images        ImagesConfig     `mapstructure:"images" yaml:"images"`
}

type GeminiConfig struct {
	APIKey     string `mapstructure:"api_key" yaml:"api_key,omitempty"`
	Model      string `mapstructure:"model" yaml:"model"`
	FastModel  string `mapstructure:"fast_model" yaml:"fast_model"`
	ImageModel string `mapstructure:"image_model" yaml:"image_model"`
}

type OpenAIConfig struct {
	APIKey     string `mapstructure:"api_key" yaml:"api_key,omitempty"`
	Model      string `mapstructure:"model" yaml:"model"`
	FastModel  string `mapstructure:"fast_model" yaml:"fast_model"`
	ImageModel string `mapstructure:"image_model" yaml:"image_model"`
	BaseURL    string `mapstructure:"base_url" yaml:"base_url,omitempty"`
}

type AnthropicConfig struct {
	APIKey    string `mapstructure:"api_key" yaml:"api_key,omitempty"`
	Model     string `mapstructure:"model" yaml:"model"`
	FastModel string `mapstructure:"fast_model" yaml:"fast_model"`
}

type OpenRouterConfig struct {
	APIKey    string `mapstructure:"api_key" yaml:"api_key,omitempty"`
	Model     string `mapstructure:"model" yaml:"model"`
	FastModel string `mapstructure:"fast_model" yaml:"fast_model"`
	BaseURL   string `mapstructure:"base_url" yaml:"base_url,omitempty"`
}

// PDFConfig selects the font embedded in exported PDFs. FontPath wins over
// FontURL; a downloaded font is cached in the data directory.
type PDFConfig struct {
	FontPath string `mapstructure:"font_path" yaml:"font_path,omitempty"`
	FontURL  string `mapstructure:"font_url" yaml:"font_url"`
}

type ImagesConfig struct {
	Concurrency int    `mapstructure:"concurrency" yaml:"concurrency"`
	Size        string `mapstructure:"size" yaml:"size"`
}

// Keys bound to EDUVISION_* environment variables. Nested keys use "_"
// in place of ".", e.g. EDUVISION_GEMINI_API_KEY.
var envKeys = []string{
	"provider", "image_provider", "timeout",
	"gemini.api_key", "gemini.model", "gemini.fast_model", "gemini.image_model",
	"openai.api_key", "openai.model", "openai.fast_model", "openai.image_model", "openai.base_url",
	"anthropic.api_key", "anthropic.model", "anthropic.fast_model",
	"openrouter.api_key", "openrouter.model", "openrouter.fast_model", "openrouter.base_url",
	"output_dir", "data_dir", "log_level", "log_file",
	"pdf.font_path", "pdf.font_url",
	"images.concurrency", "images.size",
}

func setDefaults(v *viper.Viper) {
	d := llm.DefaultConfig()
	v.SetDefault("provider", d.Provider)
	v.SetDefault("image_provider", "")
	v.SetDefault("timeout", d.Timeout)
	v.SetDefault("gemini.api_key", "")
	v.SetDefault("gemini.model", d.Gemini.Model)
	v.SetDefault("gemini.fast_model", d.Gemini.FastModel)
	v.SetDefault("gemini.image_model", d.Gemini.ImageModel)
	v.SetDefault("openai.api_key", "")
	v.SetDefault("openai.model", d.OpenAI.Model)
	v.SetDefault("openai.fast_model", d.OpenAI.FastModel)
	v.SetDefault("openai.image_model", d.OpenAI.ImageModel)
	v.SetDefault("openai.base_url", "")
	v.SetDefault("anthropic.api_key", "")
	v.SetDefault("anthropic.model", d.Anthropic.Model)
	v.SetDefault("anthropic.fast_model", d.Anthropic.FastModel)
	v.SetDefault("openrouter.api_key", "")
	v.SetDefault("openrouter.model", d.OpenRouter.Model)
	v.SetDefault("openrouter.fast_model", d.OpenRouter.FastModel)
	v.SetDefault("openrouter.base_url", "")
	v.SetDefault("output_dir", ".")
	v.SetDefault("data_dir", "")
	v.SetDefault("log_level", "info")
	v.SetDefault("log_file", "")
	v.SetDefault("pdf.font_path", "")
	v.SetDefault("pdf.font_url", DefaultFontURL)
	v.SetDefault("images.concurrency", 1)
	v.SetDefault("images.size", "1K")
}

// Load loads configuration with full precedence:
// ENV vars > project config > XDG global config > defaults.
// Command-line flags are applied by the caller on the returned Config.
// An explicit path, when non-empty, replaces both config files.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetConfigName("eduvision")

	setDefaults(v)

	v.SetEnvPrefix("EDUVISION")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Explicit bindings so Unmarshal sees nested env values.
	for _, key := range envKeys {
		envName := "EDUVISION_" + strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
		if err := v.BindEnv(key, envName); err != nil {
			return nil, fmt.Errorf("binding %s env: %w", key, err)
		}
	}

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
	} else {
		globalPath := GlobalPath()
		if fileExists(globalPath) {
			v.SetConfigFile(globalPath)
			if err := v.ReadInConfig(); err != nil {
				return nil, fmt.Errorf("reading global config: %w", err)
			}
		}

		projectPath := ProjectPath()
		if fileExists(projectPath) {
			v.SetConfigFile(projectPath)
			if err := v.MergeInConfig(); err != nil {
				return nil, fmt.Errorf("merging project config: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}
	if cfg.Images.Concurrency < 1 {
		cfg.Images.Concurrency = 1
	}

	return &cfg, nil
}

// LLM converts the file/env configuration into provider configuration.
// Vendor key variables (GEMINI_API_KEY, ...) fill keys left empty.
func (c *Config) LLM() llm.Config {
	out := llm.DefaultConfig()
	out.Provider = c.Provider
	out.ImageProvider = c.ImageProvider
	if c.Timeout > 0 {
		out.Timeout = c.Timeout
	}

	out.Gemini = llm.GeminiConfig{
		APIKey:     c.Gemini.APIKey,
		Model:      orDefault(c.Gemini.Model, out.Gemini.Model),
		FastModel:  orDefault(c.Gemini.FastModel, out.Gemini.FastModel),
		ImageModel: orDefault(c.Gemini.ImageModel, out.Gemini.ImageModel),
	}
	out.OpenAI = llm.OpenAIConfig{
		APIKey:     c.OpenAI.APIKey,
		Model:      orDefault(c.OpenAI.Model, out.OpenAI.Model),
		FastModel:  orDefault(c.OpenAI.FastModel, out.OpenAI.FastModel),
		ImageModel: orDefault(c.OpenAI.ImageModel, out.OpenAI.ImageModel),
		BaseURL:    c.OpenAI.BaseURL,
	}
	out.Anthropic = llm.AnthropicConfig{
		APIKey:    c.Anthropic.APIKey,
		Model:     orDefault(c.Anthropic.Model, out.Anthropic.Model),
		FastModel: orDefault(c.Anthropic.FastModel, out.Anthropic.FastModel),
	}
	out.OpenRouter = llm.OpenRouterConfig{
		APIKey:    c.OpenRouter.APIKey,
		Model:     orDefault(c.OpenRouter.Model, out.OpenRouter.Model),
		FastModel: orDefault(c.OpenRouter.FastModel, out.OpenRouter.FastModel),
		BaseURL:   c.OpenRouter.BaseURL,
	}

	return llm.DiscoverKeys(out)
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}

// ResolvedDataDir returns DataDir, or $XDG_DATA_HOME/eduvision when unset.
func (c *Config) ResolvedDataDir() (string, error) {
	if c.DataDir != "" {
		return c.DataDir, nil
	}
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, "eduvision"), nil
}

// ResolvedLogFile returns LogFile, or eduvision.log in the data directory.
func (c *Config) ResolvedLogFile() (string, error) {
	if c.LogFile != "" {
		return c.LogFile, nil
	}
	dir, err := c.ResolvedDataDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "eduvision.log"), nil
}

// Exists returns true if any config file exists (global or project).
func Exists() bool {
	return fileExists(GlobalPath()) || fileExists(ProjectPath())
}

// GlobalPath returns the XDG global config path.
// Returns ~/.config/eduvision/eduvision.yml or $XDG_CONFIG_HOME/eduvision/eduvision.yml.
func GlobalPath() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "eduvision", "eduvision.yml")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "eduvision", "eduvision.yml")
}

// ProjectPath returns the project-local config path.
func ProjectPath() string {
	return "eduvision.yml"
}

// WriteGlobal writes the config to the XDG global location. The file may
// hold API keys, so it is created owner-readable only.
func WriteGlobal(cfg *Config) error {
	path := GlobalPath()

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
