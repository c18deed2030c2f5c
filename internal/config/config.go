// Package config loads settings for the fuzzy ratio server and CLI from defaults,
// an optional .env file, an optional YAML file and FUZZ_* environment variables,
// in that order of increasing precedence.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/baditaflorin/go_fuzzy_ratio/internal/adapters/normalizer"
	"github.com/baditaflorin/go_fuzzy_ratio/internal/core/score"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config is the full runtime configuration.
type Config struct {
	Server  ServerConfig  `yaml:"server"`
	Scoring ScoringConfig `yaml:"scoring"`
	Log     LogConfig     `yaml:"log"`
	WarmUp  bool          `yaml:"warm_up"`
}

// ServerConfig configures the HTTP server.
type ServerConfig struct {
	Port           int           `yaml:"port"`
	ReadTimeout    time.Duration `yaml:"read_timeout"`
	WriteTimeout   time.Duration `yaml:"write_timeout"`
	// RequestTimeout bounds the scoring work of a single request.
	RequestTimeout time.Duration `yaml:"request_timeout"`
	MaxRequestSize int           `yaml:"max_request_size"`
	// Concurrency of 0 lets fasthttp pick its default.
	Concurrency    int           `yaml:"concurrency"`
	// MaxTextLength caps each input in code points; 0 disables the check.
	MaxTextLength  int           `yaml:"max_text_length"`
}

// ScoringConfig configures the scorer.
type ScoringConfig struct {
	DefaultCutoff int    `yaml:"default_cutoff"`
	Processor     string `yaml:"processor"`
}

// LogConfig configures the logger.
type LogConfig struct {
	File string `yaml:"file"`
	JSON bool   `yaml:"json"`
}

// Default configuration values.
const (
	DefaultPort           = 8080
	DefaultReadTimeout    = 30 * time.Second
	DefaultWriteTimeout   = 30 * time.Second
	DefaultRequestTimeout = 10 * time.Second
	DefaultMaxRequestSize = 1024 * 1024 // 1MB
	DefaultMaxTextLength  = 10000
)

// Default returns the configuration used when nothing else is set.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Port:           DefaultPort,
			ReadTimeout:    DefaultReadTimeout,
			WriteTimeout:   DefaultWriteTimeout,
			RequestTimeout: DefaultRequestTimeout,
			MaxRequestSize: DefaultMaxRequestSize,
			MaxTextLength:  DefaultMaxTextLength,
		},
		Scoring: ScoringConfig{
			DefaultCutoff: score.Min,
			Processor:     "none",
		},
		Log: LogConfig{
			JSON: true,
		},
		WarmUp: true,
	}
}

// Load builds a Config. A .env file in the working directory is read if present;
// path, when non-empty, names a YAML file that must exist.
func Load(path string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	cfg := Default()

	if path == "" {
		path = os.Getenv("FUZZ_CONFIG")
	}
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	}

	if err := cfg.applyEnv(os.LookupEnv); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnv(lookup func(string) (string, bool)) error {
	var errs []error

	setInt := func(key string, dst *int) {
		if v, ok := lookup(key); ok {
			n, err := strconv.Atoi(strings.TrimSpace(v))
			if err != nil {
				errs = append(errs, fmt.Errorf("%s: %w", key, err))
				return
			}
			*dst = n
		}
	}
	setDuration := func(key string, dst *time.Duration) {
		if v, ok := lookup(key); ok {
			d, err := time.ParseDuration(strings.TrimSpace(v))
			if err != nil {
				errs = append(errs, fmt.Errorf("%s: %w", key, err))
				return
			}
			*dst = d
		}
	}
	setBool := func(key string, dst *bool) {
		if v, ok := lookup(key); ok {
			b, err := strconv.ParseBool(strings.TrimSpace(v))
			if err != nil {
				errs = append(errs, fmt.Errorf("%s: %w", key, err))
				return
			}
			*dst = b
		}
	}
	setString := func(key string, dst *string) {
		if v, ok := lookup(key); ok {
			*dst = strings.TrimSpace(v)
		}
	}

	setInt("FUZZ_PORT", &c.Server.Port)
	setDuration("FUZZ_READ_TIMEOUT", &c.Server.ReadTimeout)
	setDuration("FUZZ_WRITE_TIMEOUT", &c.Server.WriteTimeout)
	setDuration("FUZZ_REQUEST_TIMEOUT", &c.Server.RequestTimeout)
	setInt("FUZZ_MAX_REQUEST_SIZE", &c.Server.MaxRequestSize)
	setInt("FUZZ_CONCURRENCY", &c.Server.Concurrency)
	setInt("FUZZ_MAX_TEXT_LENGTH", &c.Server.MaxTextLength)
	setInt("FUZZ_DEFAULT_CUTOFF", &c.Scoring.DefaultCutoff)
	setString("FUZZ_PROCESSOR", &c.Scoring.Processor)
	setString("FUZZ_LOG_FILE", &c.Log.File)
	setBool("FUZZ_LOG_JSON", &c.Log.JSON)
	setBool("FUZZ_WARM_UP", &c.WarmUp)

	return errors.Join(errs...)
}

// Validate reports every invalid field at once.
func (c *Config) Validate() error {
	var errs []error

	if c.Server.Port < 1 || c.Server.Port > 65535 {
		errs = append(errs, fmt.Errorf("server.port must be between 1 and 65535, got %d", c.Server.Port))
	}
	if c.Server.ReadTimeout < 0 || c.Server.WriteTimeout < 0 {
		errs = append(errs, errors.New("server timeouts must not be negative"))
	}
	if c.Server.RequestTimeout <= 0 {
		errs = append(errs, fmt.Errorf("server.request_timeout must be positive, got %s", c.Server.RequestTimeout))
	}
	if c.Server.MaxRequestSize <= 0 {
		errs = append(errs, fmt.Errorf("server.max_request_size must be positive, got %d", c.Server.MaxRequestSize))
	}
	if c.Server.Concurrency < 0 {
		errs = append(errs, fmt.Errorf("server.concurrency must not be negative, got %d", c.Server.Concurrency))
	}
	if c.Server.MaxTextLength < 0 {
		errs = append(errs, fmt.Errorf("server.max_text_length must not be negative, got %d", c.Server.MaxTextLength))
	}
	if err := score.ValidateCutoff(c.Scoring.DefaultCutoff); err != nil {
		errs = append(errs, fmt.Errorf("scoring.default_cutoff: %w", err))
	}
	if _, err := normalizer.ParseNormalizerType(c.Scoring.Processor); err != nil {
		errs = append(errs, fmt.Errorf("scoring.processor: %w", err))
	}

	return errors.Join(errs...)
}
