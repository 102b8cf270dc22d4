package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
	"github.com/labstack/gommon/random"
)

// Config is the complete server configuration
type Config struct {
	Server   ServerConfig   `toml:"server"`
	Database DatabaseConfig `toml:"database"`
	Redis    RedisConfig    `toml:"redis"`
	Auth     AuthConfig     `toml:"auth"`
	Leads    LeadsConfig    `toml:"leads"`
}

type ServerConfig struct {
	Port string `toml:"port"`
}

type DatabaseConfig struct {
	URL string `toml:"url"`
}

// RedisConfig backs the token denylist and the lead rate limit
type RedisConfig struct {
	Addr     string `toml:"addr"`
	Password string `toml:"password"`
	DB       int    `toml:"db"`
}

type AuthConfig struct {
	JWTSecret       string `toml:"jwt_secret"`
	TokenTTLHours   int    `toml:"token_ttl_hours"`
	GeneratedSecret bool   `toml:"-"`
}

// LeadsConfig throttles the public lead intake form
type LeadsConfig struct {
	RateLimit     int `toml:"rate_limit"`
	WindowSeconds int `toml:"window_seconds"`
}

// TokenTTL returns the configured token lifetime
func (c *Config) TokenTTL() time.Duration {
	return time.Duration(c.Auth.TokenTTLHours) * time.Hour
}

// LeadWindow returns the lead rate-limit window
func (c *Config) LeadWindow() time.Duration {
	return time.Duration(c.Leads.WindowSeconds) * time.Second
}

// Default returns the built-in configuration before any file or environment is applied
func Default() *Config {
	return &Config{
		Server: ServerConfig{Port: "8001"},
		Redis:  RedisConfig{Addr: "localhost:6379"},
		Auth:   AuthConfig{TokenTTLHours: 24},
		Leads:  LeadsConfig{RateLimit: 20, WindowSeconds: 60},
	}
}

// Load builds the configuration from defaults, an optional .env file, an
// optional TOML file at path and finally environment variables.
func Load(path string) (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := Default()

	if path == "" {
		path = os.Getenv("GROWE_CONFIG")
	}
	if path != "" {
		if _, err := toml.DecodeFile(path, cfg); err != nil {
			return nil, fmt.Errorf("failed to load config file: %w", err)
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}

	if cfg.Auth.JWTSecret == "" {
		cfg.Auth.JWTSecret = random.String(32)
		cfg.Auth.GeneratedSecret = true
		log.Println("WARNING: JWT_SECRET not set, using a generated secret; tokens will not survive a restart")
	}

	return cfg, cfg.Validate()
}

func (c *Config) applyEnv() error {
	setString(&c.Database.URL, "DATABASE_URL")
	setString(&c.Auth.JWTSecret, "JWT_SECRET")
	setString(&c.Server.Port, "PORT")
	setString(&c.Redis.Addr, "REDIS_ADDR")
	setString(&c.Redis.Password, "REDIS_PASSWORD")

	if err := setInt(&c.Redis.DB, "REDIS_DB"); err != nil {
		return err
	}
	if err := setInt(&c.Auth.TokenTTLHours, "TOKEN_TTL_HOURS"); err != nil {
		return err
	}
	return setInt(&c.Leads.RateLimit, "LEAD_RATE_LIMIT")
}

// Validate reports settings the server cannot start without
func (c *Config) Validate() error {
	if c.Database.URL == "" {
		return errors.New("DATABASE_URL environment variable is required")
	}
	if c.Auth.TokenTTLHours <= 0 {
		return fmt.Errorf("token_ttl_hours must be positive, got %d", c.Auth.TokenTTLHours)
	}
	if c.Leads.WindowSeconds <= 0 {
		return fmt.Errorf("leads.window_seconds must be positive, got %d", c.Leads.WindowSeconds)
	}
	return nil
}

func setString(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

func setInt(dst *int, key string) error {
	v := os.Getenv(key)
	if v == "" {
		return nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fmt.Errorf("invalid %s: %w", key, err)
	}
	*dst = n
	return nil
}
