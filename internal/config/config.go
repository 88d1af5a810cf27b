// Package config loads settings from built-in defaults, an optional YAML
// file and GPUADVISOR_* environment variables. Later sources win.
package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

const (
	envPrefix      = "GPUADVISOR"
	configName     = "config"
	configDirName  = ".gpu-advisor"
	defaultAddress = "localhost:8080"
)

// Config is the full application configuration
type Config struct {
	Advisor     AdvisorConfig     `mapstructure:"advisor" yaml:"advisor"`
	Monitoring  MonitoringConfig  `mapstructure:"monitoring" yaml:"monitoring"`
	Preferences PreferencesConfig `mapstructure:"preferences" yaml:"preferences"`
	Server      ServerConfig      `mapstructure:"server" yaml:"server"`
	Catalog     CatalogConfig     `mapstructure:"catalog" yaml:"catalog"`
	GPU         GPUConfig         `mapstructure:"gpu" yaml:"gpu"`
	Log         LogConfig         `mapstructure:"log" yaml:"log"`
}

type AdvisorConfig struct {
	APIKey    string `mapstructure:"api_key" yaml:"api_key"`
	Model     string `mapstructure:"model" yaml:"model"`
	BaseURL   string `mapstructure:"base_url" yaml:"base_url"`
	MaxTokens int    `mapstructure:"max_tokens" yaml:"max_tokens"`
}

type MonitoringConfig struct {
	RefreshRate   time.Duration `mapstructure:"refresh_rate" yaml:"refresh_rate"`
	HistoryPoints int           `mapstructure:"history_points" yaml:"history_points"`
	LogMetrics    bool          `mapstructure:"log_metrics" yaml:"log_metrics"`
}

type PreferencesConfig struct {
	TargetFPS  int    `mapstructure:"target_fps" yaml:"target_fps"`
	Priority   string `mapstructure:"priority" yaml:"priority"`
	Resolution string `mapstructure:"resolution" yaml:"resolution"`
	Quality    string `mapstructure:"quality" yaml:"quality"`
}

type ServerConfig struct {
	Addr           string        `mapstructure:"addr" yaml:"addr"`
	AllowedOrigins []string      `mapstructure:"allowed_origins" yaml:"allowed_origins"`
	TokenExpiry    time.Duration `mapstructure:"token_expiry" yaml:"token_expiry"`
	SecretKey      string        `mapstructure:"secret_key" yaml:"secret_key"`
}

type CatalogConfig struct {
	CustomDatabase string `mapstructure:"custom_database" yaml:"custom_database"`
}

// GPUConfig describes a GPU by hand instead of detecting it
type GPUConfig struct {
	Name         string `mapstructure:"name" yaml:"name"`
	VRAMMB       int    `mapstructure:"vram_mb" yaml:"vram_mb"`
	Architecture string `mapstructure:"architecture" yaml:"architecture"`
}

type LogConfig struct {
	Level  string `mapstructure:"level" yaml:"level"`
	Format string `mapstructure:"format" yaml:"format"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("advisor.api_key", "")
	v.SetDefault("advisor.model", "claude-sonnet-4-20250514")
	v.SetDefault("advisor.base_url", "https://api.anthropic.com/v1/")
	v.SetDefault("advisor.max_tokens", 2000)

	v.SetDefault("monitoring.refresh_rate", time.Second)
	v.SetDefault("monitoring.history_points", 60)
	v.SetDefault("monitoring.log_metrics", false)

	v.SetDefault("preferences.target_fps", 60)
	v.SetDefault("preferences.priority", "balanced")
	v.SetDefault("preferences.resolution", "1920x1080")
	v.SetDefault("preferences.quality", "high")

	v.SetDefault("server.addr", defaultAddress)
	v.SetDefault("server.allowed_origins", []string{})
	v.SetDefault("server.token_expiry", 90*24*time.Hour)
	v.SetDefault("server.secret_key", "")

	v.SetDefault("catalog.custom_database", "")

	v.SetDefault("gpu.name", "")
	v.SetDefault("gpu.vram_mb", 0)
	v.SetDefault("gpu.architecture", "")

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
}

// DefaultDir returns ~/.gpu-advisor
func DefaultDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return configDirName
	}
	return filepath.Join(home, configDirName)
}

// Default returns the built-in configuration without reading any file
// or environment variable.
func Default() *Config {
	v := viper.New()
	setDefaults(v)
	cfg := &Config{}
	// Defaults always decode.
	_ = v.Unmarshal(cfg)
	return cfg
}

// Load reads configuration. An explicit path must exist; otherwise
// ./config.yaml and ~/.gpu-advisor/config.yaml are searched and a missing
// file is not an error.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(configName)
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath(DefaultDir())
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error while reading the config file: %w", err)
		}
	} else {
		slog.Debug("Loaded config file", "path", v.ConfigFileUsed())
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("error while unmarshaling config: %w", err)
	}

	cfg.expandEnv()
	if cfg.Advisor.APIKey == "" {
		cfg.Advisor.APIKey = firstEnv("ANTHROPIC_API_KEY", "OPENAI_API_KEY")
	}

	return cfg, cfg.Validate()
}

// expandEnv substitutes ${VAR} references in string settings
func (c *Config) expandEnv() {
	for _, s := range []*string{
		&c.Advisor.APIKey,
		&c.Advisor.Model,
		&c.Advisor.BaseURL,
		&c.Server.Addr,
		&c.Server.SecretKey,
		&c.Catalog.CustomDatabase,
		&c.GPU.Name,
	} {
		*s = os.ExpandEnv(*s)
	}
	for i := range c.Server.AllowedOrigins {
		c.Server.AllowedOrigins[i] = os.ExpandEnv(c.Server.AllowedOrigins[i])
	}
}

func firstEnv(keys ...string) string {
	for _, k := range keys {
		if v := os.Getenv(k); v != "" {
			return v
		}
	}
	return ""
}

// Validate checks values that would otherwise fail deep inside a command
func (c *Config) Validate() error {
	switch c.Preferences.Priority {
	case "quality", "balanced", "performance":
	default:
		return fmt.Errorf("invalid preferences.priority %q: want quality, balanced or performance", c.Preferences.Priority)
	}
	if c.Preferences.TargetFPS <= 0 {
		return fmt.Errorf("invalid preferences.target_fps %d: must be positive", c.Preferences.TargetFPS)
	}
	if c.Monitoring.RefreshRate <= 0 {
		return fmt.Errorf("invalid monitoring.refresh_rate %s: must be positive", c.Monitoring.RefreshRate)
	}
	if c.GPU.VRAMMB < 0 {
		return fmt.Errorf("invalid gpu.vram_mb %d: must not be negative", c.GPU.VRAMMB)
	}
	return nil
}

// Save writes cfg as YAML, creating parent directories. An empty path
// writes ~/.gpu-advisor/config.yaml.
func Save(cfg *Config, path string) (string, error) {
	if path == "" {
		path = filepath.Join(DefaultDir(), configName+".yaml")
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return "", fmt.Errorf("failed to create config directory: %w", err)
	}
	// The file can hold an API key.
	if err := os.WriteFile(path, data, 0600); err != nil {
		return "", err
	}
	return path, nil
}

// NewLogger builds the process logger from the log settings
func (l LogConfig) NewLogger(w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{Level: parseLevel(l.Level)}
	if strings.EqualFold(l.Format, "json") {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

func parseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}
	return slog.LevelInfo
}
