package cmd

import (
	"fmt"
	"io/fs"
	"log/slog"
	"time"

	"github.com/cristalhq/aconfig"
	"github.com/cristalhq/aconfig/aconfigyaml"
	"github.com/go-faster/errors"
	"github.com/joho/godotenv"
)

// Config holds the service configuration. Values come from RESTAURANT_-prefixed
// environment variables, an optional config.yaml and, for the server binary, flags.
type Config struct {
	HTTP      HTTPConfig
	DB        DBConfig
	CORS      CORSConfig
	RateLimit RateLimitConfig

	SummaryCron       string `default:"@hourly" usage:"Cron spec of the sales summary report"`
	OpenAPIValidation bool   `default:"true" usage:"Validate requests against the OpenAPI document"`
	LogLevel          string `default:"info" usage:"debug, info, warn or error"`
}

type HTTPConfig struct {
	Addr            string        `default:":8080" usage:"API listen address"`
	ReadTimeout     time.Duration `default:"10s"`
	WriteTimeout    time.Duration `default:"15s"`
	IdleTimeout     time.Duration `default:"60s"`
	ShutdownTimeout time.Duration `default:"15s" usage:"Maximum graceful shutdown duration"`
}

type DBConfig struct {
	Host     string `default:"localhost"`
	Port     int    `default:"5432"`
	User     string `default:"postgres"`
	Password string `default:"postgres"`
	Name     string `default:"restaurant"`
	SSLMode  string `default:"disable" env:"SSLMODE" yaml:"sslmode"`
}

// DSN renders the keyword/value connection string understood by the postgres driver.
func (c DBConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Name, c.SSLMode)
}

type CORSConfig struct {
	Origins []string `default:"*" usage:"Allowed CORS origins"`
}

// RateLimitConfig limits requests per client IP. RPS 0 disables limiting.
type RateLimitConfig struct {
	RPS   float64 `default:"20"`
	Burst int     `default:"40"`
}

// LoadConfig loads .env into the environment when present and then reads the
// configuration. args are parsed as flags; nil skips flag parsing.
func LoadConfig(args []string) (Config, error) {
	if err := godotenv.Load(".env"); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, errors.Wrap(err, "load .env")
	}

	var cfg Config
	loader := aconfig.LoaderFor(&cfg, aconfig.Config{
		EnvPrefix: "RESTAURANT",
		SkipFlags: args == nil,
		Args:      args,
		Files:     []string{"config.yaml", "/etc/restaurant/config.yaml"},
		FileDecoders: map[string]aconfig.FileDecoder{
			".yaml": aconfigyaml.New(),
		},
	})
	if err := loader.Load(); err != nil {
		return Config{}, errors.Wrap(err, "load config")
	}

	if cfg.RateLimit.RPS < 0 || cfg.RateLimit.Burst < 0 {
		return Config{}, errors.New("rate limit values must not be negative")
	}
	if cfg.RateLimit.RPS > 0 && cfg.RateLimit.Burst == 0 {
		cfg.RateLimit.Burst = 1
	}

	return cfg, nil
}

// SlogLevel parses LogLevel, falling back to info.
func (c Config) SlogLevel() slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo
	}
	return level
}
