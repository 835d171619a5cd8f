// Package config loads settings for the capsolver binary.
//
// Settings come from an optional YAML file, then from the environment
// (a .env file in the working directory is loaded first if present).
// Environment variables win over the file; unset fields take defaults.
//
// Example configuration:
//
//	api_key: CAP-XXXXXXXX
//	base_url: https://api.capsolver.com
//	poll_interval: 2s
//	max_polls: 60
//	request_timeout: 30s
//	log_level: info
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"reflect"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	capsolver "github.com/spetersoncode/capsolver"
	"github.com/spetersoncode/capsolver/solver"
	"gopkg.in/yaml.v3"
)

// Environment variables read by Load.
const (
	EnvAPIKey         = "CAPSOLVER_API_KEY"
	EnvBaseURL        = "CAPSOLVER_BASE_URL"
	EnvPollInterval   = "CAPSOLVER_POLL_INTERVAL"
	EnvMaxPolls       = "CAPSOLVER_MAX_POLLS"
	EnvRequestTimeout = "CAPSOLVER_REQUEST_TIMEOUT"
	EnvLogLevel       = "CAPSOLVER_LOG_LEVEL"
)

// Config holds the binary's settings.
type Config struct {
	// APIKey is the CapSolver client key. It is sent as-is; the service
	// rejects empty or invalid keys.
	APIKey string `yaml:"api_key"`

	// BaseURL is the API endpoint. Defaults to https://api.capsolver.com.
	BaseURL string `yaml:"base_url" validate:"required,url"`

	// PollInterval is the wait before each result check. Defaults to 2s.
	PollInterval Duration `yaml:"poll_interval" validate:"gt=0"`

	// MaxPolls is the number of result checks per solve. Defaults to 60.
	MaxPolls int `yaml:"max_polls" validate:"gte=1,lte=1000"`

	// RequestTimeout bounds each HTTP round trip. Defaults to 30s.
	RequestTimeout Duration `yaml:"request_timeout" validate:"gt=0"`

	// LogLevel is one of debug, info, warn, error. Defaults to info.
	LogLevel string `yaml:"log_level" validate:"oneof=debug info warn error"`
}

// Duration wraps time.Duration for YAML unmarshalling.
type Duration time.Duration

// UnmarshalYAML implements yaml.Unmarshaler for Duration.
func (d *Duration) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}

	parsed, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", s, err)
	}

	*d = Duration(parsed)
	return nil
}

// Duration returns the underlying time.Duration value.
func (d Duration) Duration() time.Duration {
	return time.Duration(d)
}

// Default returns a Config with every default applied and no API key.
func Default() *Config {
	poll := capsolver.DefaultPollConfig()
	return &Config{
		BaseURL:        solver.DefaultBaseURL,
		PollInterval:   Duration(poll.Interval),
		MaxPolls:       poll.MaxAttempts,
		RequestTimeout: Duration(30 * time.Second),
		LogLevel:       "info",
	}
}

// Load builds a Config from the YAML file at path, the environment and
// defaults. The file is skipped when path is empty. Environment values
// override file values.
func Load(path string) (*Config, error) {
	godotenv.Load() // Load .env file if present

	var data []byte
	if path != "" {
		var err error
		data, err = os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}
	return Parse(data)
}

// Parse builds a Config from YAML data, then applies the environment and
// defaults and validates the result. Empty data is allowed.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) applyEnv() error {
	c.APIKey = getEnvOrDefault(EnvAPIKey, c.APIKey)
	c.BaseURL = getEnvOrDefault(EnvBaseURL, c.BaseURL)
	c.LogLevel = strings.ToLower(getEnvOrDefault(EnvLogLevel, c.LogLevel))

	var err error
	if c.MaxPolls, err = getEnvIntOrDefault(EnvMaxPolls, c.MaxPolls); err != nil {
		return err
	}
	interval, err := getEnvDurationOrDefault(EnvPollInterval, c.PollInterval.Duration())
	if err != nil {
		return err
	}
	c.PollInterval = Duration(interval)

	timeout, err := getEnvDurationOrDefault(EnvRequestTimeout, c.RequestTimeout.Duration())
	if err != nil {
		return err
	}
	c.RequestTimeout = Duration(timeout)
	return nil
}

func (c *Config) applyDefaults() {
	def := Default()
	if c.BaseURL == "" {
		c.BaseURL = def.BaseURL
	}
	if c.PollInterval == 0 {
		c.PollInterval = def.PollInterval
	}
	if c.MaxPolls == 0 {
		c.MaxPolls = def.MaxPolls
	}
	if c.RequestTimeout == 0 {
		c.RequestTimeout = def.RequestTimeout
	}
	if c.LogLevel == "" {
		c.LogLevel = def.LogLevel
	}
}

// Validate checks the structural fields. The API key is not checked.
func (c *Config) Validate() error {
	err := validate().Struct(c)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	msgs := make([]string, len(verrs))
	for i, fe := range verrs {
		if fe.Param() != "" {
			msgs[i] = fmt.Sprintf("%s: must satisfy %s=%s, got %v", fe.Field(), fe.Tag(), fe.Param(), fe.Value())
		} else {
			msgs[i] = fmt.Sprintf("%s: must satisfy %s, got %v", fe.Field(), fe.Tag(), fe.Value())
		}
	}
	return fmt.Errorf("invalid config: %s", strings.Join(msgs, "; "))
}

// PollConfig returns the poll budget for the solver.
func (c *Config) PollConfig() capsolver.PollConfig {
	return capsolver.PollConfig{
		MaxAttempts: c.MaxPolls,
		Interval:    c.PollInterval.Duration(),
	}
}

// Level returns LogLevel as a slog.Level.
func (c *Config) Level() slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo
	}
	return level
}

// SolverOptions returns the solver options described by c.
func (c *Config) SolverOptions(logger *slog.Logger) []solver.Option {
	opts := []solver.Option{
		solver.WithBaseURL(c.BaseURL),
		solver.WithPollConfig(c.PollConfig()),
		solver.WithHTTPClient(&http.Client{Timeout: c.RequestTimeout.Duration()}),
	}
	if logger != nil {
		opts = append(opts, solver.WithLogger(logger))
	}
	return opts
}

// NewSolver creates a solver client from c.
func (c *Config) NewSolver(logger *slog.Logger) *solver.Client {
	return solver.New(c.APIKey, c.SolverOptions(logger)...)
}

var (
	vOnce sync.Once
	v     *validator.Validate
)

// validate returns the shared validator, reporting fields by their YAML names.
func validate() *validator.Validate {
	vOnce.Do(func() {
		v = validator.New(validator.WithRequiredStructEnabled())
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			tag := fld.Tag.Get("yaml")
			if tag == "-" || tag == "" {
				return fld.Name
			}
			if idx := strings.Index(tag, ","); idx >= 0 {
				tag = tag[:idx]
			}
			return tag
		})
	})
	return v
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) (int, error) {
	if value := os.Getenv(key); value != "" {
		i, err := strconv.Atoi(value)
		if err != nil {
			return 0, fmt.Errorf("%s: invalid integer %q", key, value)
		}
		return i, nil
	}
	return defaultValue, nil
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) (time.Duration, error) {
	if value := os.Getenv(key); value != "" {
		d, err := time.ParseDuration(value)
		if err != nil {
			return 0, fmt.Errorf("%s: invalid duration %q", key, value)
		}
		return d, nil
	}
	return defaultValue, nil
}
