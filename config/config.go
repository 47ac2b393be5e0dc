package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/dcode-github/property_listing_card/components"
	"github.com/dcode-github/property_listing_card/constants"
	"github.com/dcode-github/property_listing_card/format"
)

// Config is the root configuration of the listing service.
type Config struct {
	Server  ServerConfig  `yaml:"server"`
	Mongo   MongoConfig   `yaml:"mongo"`
	Redis   RedisConfig   `yaml:"redis"`
	Auth    AuthConfig    `yaml:"auth"`
	API     APIConfig     `yaml:"api"`
	Card    CardConfig    `yaml:"card"`
	Logging LoggingConfig `yaml:"logging"`
}

type ServerConfig struct {
	Port            string        `yaml:"port"`
	ReadTimeout     time.Duration `yaml:"read_timeout"`
	WriteTimeout    time.Duration `yaml:"write_timeout"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
	AllowedOrigins  []string      `yaml:"allowed_origins"`
}

type MongoConfig struct {
	URI      string `yaml:"uri"`
	Database string `yaml:"database"`
}

// RedisConfig configures the listing cache. An empty Addr disables caching.
type RedisConfig struct {
	Addr     string        `yaml:"addr"`
	Password string        `yaml:"password"`
	DB       int           `yaml:"db"`
	TTL      time.Duration `yaml:"ttl"`
}

type AuthConfig struct {
	JWTKey   string        `yaml:"jwt_key"`
	TokenTTL time.Duration `yaml:"token_ttl"`
	Issuer   string        `yaml:"issuer"`
}

// APIConfig mirrors the client-side API settings so they can be served to
// the front end and overridden per deployment.
type APIConfig struct {
	BaseURL       string        `yaml:"base_url"`
	Version       string        `yaml:"version"`
	Timeout       time.Duration `yaml:"timeout"`
	RetryAttempts int           `yaml:"retry_attempts"`
	RetryDelay    time.Duration `yaml:"retry_delay"`
}

type CardConfig struct {
	Currency     string `yaml:"currency"`
	Locale       string `yaml:"locale"`
	Placeholder  string `yaml:"placeholder"`
	MaxAmenities int    `yaml:"max_amenities"`
	PriceSuffix  string `yaml:"price_suffix"`
}

type LoggingConfig struct {
	Level       string `yaml:"level"`
	Development bool   `yaml:"development"`
}

// Default returns a configuration that runs locally against default Mongo
// and Redis ports.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Port:            "8080",
			ReadTimeout:     10 * time.Second,
			WriteTimeout:    10 * time.Second,
			ShutdownTimeout: 10 * time.Second,
			AllowedOrigins:  []string{"*"},
		},
		Mongo: MongoConfig{
			URI:      "mongodb://localhost:27017",
			Database: "property_listing",
		},
		Redis: RedisConfig{
			Addr: "localhost:6379",
			TTL:  10 * time.Minute,
		},
		Auth: AuthConfig{
			TokenTTL: 15 * time.Minute,
			Issuer:   "property_listing_system",
		},
		API: APIConfig{
			BaseURL:       constants.DefaultAPIBaseURL,
			Version:       constants.DefaultAPIVersion,
			Timeout:       constants.APITimeout,
			RetryAttempts: constants.APIRetryAttempts,
			RetryDelay:    constants.APIRetryDelay,
		},
		Card: CardConfig{
			Currency:     format.DefaultCurrency,
			Locale:       format.DefaultLocale,
			Placeholder:  components.DefaultPlaceholder,
			MaxAmenities: components.DefaultMaxAmenities,
			PriceSuffix:  components.DefaultPriceSuffix,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Load reads .env (if present), then the YAML file at path (if non-empty),
// then applies environment overrides on top of the defaults.
func Load(path string) (*Config, error) {
	// A missing .env is normal outside development.
	_ = godotenv.Load()

	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config file: %w", err)
		}
	}
	cfg.applyEnvOverrides()

	if cfg.Auth.JWTKey == "" {
		return nil, fmt.Errorf("JWT_KEY not set in environment or config")
	}
	return cfg, nil
}

func (c *Config) applyEnvOverrides() {
	setString := func(dst *string, key string) {
		if v := os.Getenv(key); v != "" {
			*dst = v
		}
	}

	setString(&c.Server.Port, "PORT")
	setString(&c.Mongo.URI, "MONGOURI")
	setString(&c.Mongo.Database, "DB")
	setString(&c.Redis.Addr, "REDIS_ADD")
	setString(&c.Redis.Password, "REDIS_PASS")
	setString(&c.Auth.JWTKey, "JWT_KEY")
	setString(&c.API.BaseURL, "API_BASE_URL")
	setString(&c.API.Version, "API_VERSION")
	setString(&c.Logging.Level, "LOG_LEVEL")

	if v := os.Getenv("REDIS_DB"); v != "" {
		if db, err := strconv.Atoi(v); err == nil {
			c.Redis.DB = db
		}
	}
}

// CardOptions builds renderer options from the card section.
func (c *Config) CardOptions() components.CardOptions {
	opts := components.DefaultCardOptions()
	opts.Formatter = format.New(format.WithCurrency(c.Card.Currency), format.WithLocale(c.Card.Locale))
	opts.Placeholder = c.Card.Placeholder
	opts.MaxAmenities = c.Card.MaxAmenities
	opts.PriceSuffix = c.Card.PriceSuffix
	return opts
}
