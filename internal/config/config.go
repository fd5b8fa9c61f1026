package config

import (
	"errors"
	"io/fs"
	"slices"
	"strings"

	"github.com/joho/godotenv"
	"github.com/rotisserie/eris"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/text/language"
)

// Config holds the full application configuration.
type Config struct {
	Solve  SolveConfig  `yaml:"solve" mapstructure:"solve"`
	Batch  BatchConfig  `yaml:"batch" mapstructure:"batch"`
	Server ServerConfig `yaml:"server" mapstructure:"server"`
	Log    LogConfig    `yaml:"log" mapstructure:"log"`
}

// SolveConfig configures the solve dispatcher.
type SolveConfig struct {
	EchoWhenComplete bool   `yaml:"echo_when_complete" mapstructure:"echo_when_complete"`
	Locale           string `yaml:"locale" mapstructure:"locale"`
}

// BatchConfig configures worksheet runs.
type BatchConfig struct {
	Format      string `yaml:"format" mapstructure:"format"`
	Concurrency int    `yaml:"concurrency" mapstructure:"concurrency"`
}

// ServerConfig configures the HTTP API.
type ServerConfig struct {
	Port           int      `yaml:"port" mapstructure:"port"`
	RateLimit      float64  `yaml:"rate_limit" mapstructure:"rate_limit"`
	RateBurst      int      `yaml:"rate_burst" mapstructure:"rate_burst"`
	AllowedOrigins []string `yaml:"allowed_origins" mapstructure:"allowed_origins"`
}

// LogConfig configures logging.
type LogConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`
	Format string `yaml:"format" mapstructure:"format"`
}

// Batch output formats.
var batchFormats = []string{"table", "json"}

// Load reads configuration from .env, file and environment.
func Load() (*Config, error) {
	// .env is optional; variables already set in the environment win.
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, eris.Wrap(err, "config: read .env")
	}

	v := viper.New()

	// Config file
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	// Environment
	v.SetEnvPrefix("FORMULA")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.rate_limit", 20)
	v.SetDefault("server.rate_burst", 40)
	v.SetDefault("server.allowed_origins", []string{"*"})
	v.SetDefault("solve.echo_when_complete", true)
	v.SetDefault("solve.locale", "en")
	v.SetDefault("batch.format", "table")
	v.SetDefault("batch.concurrency", 4)

	// Read config file (optional)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, eris.Wrap(err, "config: read file")
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, eris.Wrap(err, "config: unmarshal")
	}

	return &cfg, nil
}

// Validate checks the settings a command mode depends on. Every mode
// checks logging and the solve locale; "serve" also checks the server and
// "batch" the output format.
func (c *Config) Validate(mode string) error {
	var errs []string

	if _, err := zapcore.ParseLevel(c.Log.Level); err != nil {
		errs = append(errs, "log.level "+c.Log.Level+" is not a valid level")
	}
	if c.Log.Format != "json" && c.Log.Format != "console" {
		errs = append(errs, "log.format must be json or console")
	}
	if _, err := c.Solve.Language(); err != nil {
		errs = append(errs, "solve.locale "+c.Solve.Locale+" is not a valid language tag")
	}

	switch mode {
	case "solve", "interactive":
	case "batch":
		if !slices.Contains(batchFormats, c.Batch.Format) {
			errs = append(errs, "batch.format must be table or json")
		}
		if c.Batch.Concurrency < 1 {
			errs = append(errs, "batch.concurrency must be >= 1")
		}
	case "serve":
		if c.Server.Port <= 0 || c.Server.Port > 65535 {
			errs = append(errs, "server.port must be > 0 and <= 65535")
		}
		if c.Server.RateLimit < 0 {
			errs = append(errs, "server.rate_limit must be >= 0")
		}
		if c.Server.RateLimit > 0 && c.Server.RateBurst < 1 {
			errs = append(errs, "server.rate_burst must be >= 1 when rate limiting")
		}
	default:
		return eris.Errorf("config: unknown mode %q", mode)
	}

	if len(errs) > 0 {
		return eris.Errorf("config: %s", strings.Join(errs, "; "))
	}
	return nil
}

// Language parses the configured locale.
func (s SolveConfig) Language() (language.Tag, error) {
	tag, err := language.Parse(s.Locale)
	if err != nil {
		return language.Und, eris.Wrapf(err, "config: parse locale %q", s.Locale)
	}
	return tag, nil
}

// InitLogger initializes the global zap logger.
func InitLogger(cfg LogConfig) error {
	var zapCfg zap.Config
	if cfg.Format == "console" {
		zapCfg = zap.NewDevelopmentConfig()
	} else {
		zapCfg = zap.NewProductionConfig()
	}

	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return eris.Wrap(err, "config: parse log level")
	}
	zapCfg.Level.SetLevel(level)

	logger, err := zapCfg.Build()
	if err != nil {
		return eris.Wrap(err, "config: build logger")
	}
	zap.ReplaceGlobals(logger)

	return nil
}
