package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/ngmaloney/forecast-terminal/internal/forecast"
)

const (
	// DemoAPIKey is sent when no key is configured; OpenWeatherMap rejects it
	DemoAPIKey = "demo_key"

	envPrefix  = "FORECAST"
	apiKeyEnv  = "OPENWEATHERMAP_API_KEY"
	appDirName = ".forecast"
)

// Config holds all configuration for one invocation
type Config struct {
	Location    string // Empty when no location argument was given
	Days        int
	Lang        string
	Interactive bool
	API         APIConfig
	Log         LogConfig
}

// APIConfig holds OpenWeatherMap client settings
type APIConfig struct {
	Key     string
	BaseURL string
	Timeout time.Duration
	Retries int
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level  string // debug, info, warn, error
	Format string // json, text
}

// ValidationError is a user-facing configuration problem
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// LoadOption customizes Load
type LoadOption func(*loader)

type loader struct {
	home string
}

// WithHome overrides the home directory searched for .env and config.yaml
func WithHome(dir string) LoadOption {
	return func(l *loader) { l.home = dir }
}

// newFlagSet declares the command line flags
func newFlagSet() *pflag.FlagSet {
	flags := pflag.NewFlagSet("forecast", pflag.ContinueOnError)
	flags.SetOutput(io.Discard)
	flags.IntP("days", "d", 3, "Number of days to forecast (max 5)")
	flags.StringP("lang", "l", "en", "Language code (e.g. en, ko, fr, de, es)")
	flags.BoolP("verbose", "v", false, "Log resolution steps to stderr")
	flags.Bool("no-interactive", false, "Never prompt; take the best match")
	return flags
}

// Usage returns the help text
func Usage() string {
	var b strings.Builder
	b.WriteString("Usage: forecast [location] [flags]\n\n")
	b.WriteString("Get a weather forecast from OpenWeatherMap.\n\n")
	b.WriteString("Flags:\n")
	b.WriteString(newFlagSet().FlagUsages())
	b.WriteString(`
Examples:
  forecast                          # Prompts for location
  forecast "Los Angeles,CA,US"      # Los Angeles weather
  forecast "Seoul,KR" --days 5      # Seoul 5-day forecast
  forecast 서울 --lang ko           # Seoul weather in Korean
`)
	return b.String()
}

// Load parses args and merges flags, FORECAST_* environment variables,
// ~/.env, $HOME/.forecast/config.yaml and defaults, in that order of precedence.
// -h/--help returns pflag.ErrHelp.
func Load(args []string, opts ...LoadOption) (*Config, error) {
	l := loader{}
	for _, opt := range opts {
		opt(&l)
	}
	if l.home == "" {
		l.home, _ = os.UserHomeDir()
	}

	flags := newFlagSet()
	if err := flags.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return nil, err
		}
		return nil, &ValidationError{Message: err.Error()}
	}

	v := viper.New()

	// Set defaults
	v.SetDefault("days", 3)
	v.SetDefault("lang", "en")
	v.SetDefault("verbose", false)
	v.SetDefault("no-interactive", false)
	v.SetDefault("api.key", DemoAPIKey)
	v.SetDefault("api.base_url", "https://api.openweathermap.org")
	v.SetDefault("api.timeout", 10*time.Second)
	v.SetDefault("api.retries", 2)
	v.SetDefault("log.level", "error")
	v.SetDefault("log.format", "text")

	// Read from environment variables
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()
	if err := v.BindEnv("api.key", apiKeyEnv, envPrefix+"_API_KEY"); err != nil {
		return nil, fmt.Errorf("failed to bind API key env: %w", err)
	}

	for _, name := range []string{"days", "lang", "verbose", "no-interactive"} {
		if err := v.BindPFlag(name, flags.Lookup(name)); err != nil {
			return nil, fmt.Errorf("failed to bind flag %s: %w", name, err)
		}
	}

	// Read config file
	if l.home != "" {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(filepath.Join(l.home, appDirName))
		if err := v.ReadInConfig(); err != nil {
			// It's okay if config file doesn't exist, we have defaults
			var configFileNotFoundError viper.ConfigFileNotFoundError
			if !errors.As(err, &configFileNotFoundError) {
				return nil, fmt.Errorf("failed to read config file: %w", err)
			}
		}

		dotenv, err := readDotenv(filepath.Join(l.home, ".env"))
		if err != nil {
			return nil, err
		}
		if key := dotenv[apiKeyEnv]; key != "" {
			if err := v.MergeConfigMap(map[string]any{"api": map[string]any{"key": key}}); err != nil {
				return nil, fmt.Errorf("failed to merge .env: %w", err)
			}
		}
	}

	cfg := &Config{
		Location:    strings.TrimSpace(strings.Join(flags.Args(), " ")),
		Days:        v.GetInt("days"),
		Lang:        v.GetString("lang"),
		Interactive: !v.GetBool("no-interactive"),
		API: APIConfig{
			Key:     v.GetString("api.key"),
			BaseURL: v.GetString("api.base_url"),
			Timeout: v.GetDuration("api.timeout"),
			Retries: v.GetInt("api.retries"),
		},
		Log: LogConfig{
			Level:  v.GetString("log.level"),
			Format: v.GetString("log.format"),
		},
	}
	if v.GetBool("verbose") {
		cfg.Log.Level = "debug"
	}

	return cfg, nil
}

// readDotenv parses a KEY=value file. A missing file is not an error.
func readDotenv(path string) (map[string]string, error) {
	values, err := godotenv.Read(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return values, nil
}

// Validate checks the forecast horizon
func (c *Config) Validate() error {
	switch {
	case c.Days > forecast.MaxDays:
		return &ValidationError{Message: "Sorry, the maximum forecast length is 5 days due to OpenWeatherMap API limitations."}
	case c.Days < 1:
		return &ValidationError{Message: "Sorry, the minimum forecast length is 1 day."}
	}
	return nil
}

// NewLogger creates a new slog.Logger based on the configuration
func (c *Config) NewLogger(w io.Writer) *slog.Logger {
	// Parse log level
	var level slog.Level
	switch strings.ToLower(c.Log.Level) {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn", "warning":
		level = slog.LevelWarn
	default:
		level = slog.LevelError
	}

	opts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	switch strings.ToLower(c.Log.Format) {
	case "json":
		handler = slog.NewJSONHandler(w, opts)
	default:
		handler = slog.NewTextHandler(w, opts)
	}

	return slog.New(handler)
}
