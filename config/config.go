package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all service configuration. It is built once at startup and
// never mutated afterwards.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Slash command relay
	Updates UpdatesConfig

	// Build identifier reported by the health check (optional)
	CommitHash string
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

// UpdatesConfig configures the /updates relay.
type UpdatesConfig struct {
	WebhookURL     string        // Incoming webhook that receives the formatted message
	Token          string        // Shared secret expected in the slash command "token" field (optional)
	IconURL        string        // Avatar of the posted message; empty keeps the built-in icon
	WebhookTimeout time.Duration // Upper bound for the single outbound call
}

// AuthEnabled reports whether incoming requests must carry a token.
func (c UpdatesConfig) AuthEnabled() bool {
	return c.Token != ""
}

// Load loads configuration using Viper.
// Config file name: config.yaml, searched in ./config, ., /etc/daily-updates/
// Environment variables win over the file, with "." replaced by "_"
// (updates.webhook_url -> UPDATES_WEBHOOK_URL).
func Load() (*Config, error) {
	// A local .env is optional.
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("error loading .env file: %w", err)
	}

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./config")
	v.AddConfigPath(".")
	v.AddConfigPath("/etc/daily-updates/")

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	return fromViper(v)
}

func fromViper(v *viper.Viper) (*Config, error) {
	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = v.GetString("environment.name")
	cfg.HTTPServer.Port = v.GetInt("http_server.port")
	cfg.HTTPServer.Mode = v.GetString("http_server.mode")
	cfg.Logger.Level = v.GetString("logger.level")
	cfg.Logger.Mode = v.GetString("logger.mode")
	cfg.Logger.Encoding = v.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = v.GetBool("logger.color_enabled")

	// Relay
	cfg.Updates.WebhookURL = strings.TrimSpace(v.GetString("updates.webhook_url"))
	cfg.Updates.Token = v.GetString("updates.token")
	cfg.Updates.IconURL = v.GetString("updates.icon_url")
	cfg.Updates.WebhookTimeout = v.GetDuration("updates.webhook_timeout")

	cfg.CommitHash = v.GetString("commit_hash")

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (cfg *Config) validate() error {
	if cfg.Updates.WebhookURL == "" {
		return fmt.Errorf("updates.webhook_url is required (set UPDATES_WEBHOOK_URL)")
	}
	u, err := url.Parse(cfg.Updates.WebhookURL)
	if err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		return fmt.Errorf("updates.webhook_url %q is not a valid http(s) URL", cfg.Updates.WebhookURL)
	}
	if cfg.Updates.WebhookTimeout <= 0 {
		return fmt.Errorf("updates.webhook_timeout must be positive")
	}
	if cfg.HTTPServer.Port <= 0 {
		return fmt.Errorf("http_server.port must be positive")
	}
	return nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("environment.name", "development")
	v.SetDefault("http_server.port", 8080)
	v.SetDefault("http_server.mode", "release")
	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.mode", "production")
	v.SetDefault("logger.encoding", "json")
	v.SetDefault("logger.color_enabled", false)
	v.SetDefault("updates.webhook_timeout", "10s")
}
