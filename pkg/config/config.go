// Package config loads runtime configuration from the environment.
package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Supported document store drivers.
const (
	DriverMemory    = "memory"
	DriverPostgres  = "postgres"
	DriverRedis     = "redis"
	DriverFirestore = "firestore"
)

// Config holds runtime configuration for the API.
type Config struct {
	AppEnv          string        `envconfig:"APP_ENV" default:"development"`
	Port            string        `envconfig:"PORT" default:"3000"`
	ReadTimeout     time.Duration `envconfig:"APP_READ_TIMEOUT" default:"15s"`
	WriteTimeout    time.Duration `envconfig:"APP_WRITE_TIMEOUT" default:"15s"`
	ShutdownTimeout time.Duration `envconfig:"APP_SHUTDOWN_TIMEOUT" default:"10s"`

	LogLevel  string `envconfig:"LOG_LEVEL" default:"info"`
	LogFormat string `envconfig:"LOG_FORMAT" default:"console"`

	AllowedOrigins []string `envconfig:"ALLOWED_ORIGINS"`

	DocstoreDriver string `envconfig:"DOCSTORE_DRIVER" default:"memory"`
	SeedSampleData bool   `envconfig:"SEED_SAMPLE_DATA" default:"false"`

	DatabaseURL string          `envconfig:"DATABASE_URL"`
	Postgres    PostgresConfig  `envconfig:"DB"`
	Redis       RedisConfig     `envconfig:"REDIS"`
	Firestore   FirestoreConfig `envconfig:"FIRESTORE"`
}

// PostgresConfig contains the connection settings used when DATABASE_URL is empty.
type PostgresConfig struct {
	Host            string        `envconfig:"HOST" default:"localhost"`
	Port            int           `envconfig:"PORT" default:"5432"`
	User            string        `envconfig:"USER" default:"postgres"`
	Password        string        `envconfig:"PASSWORD" default:"postgres"`
	Name            string        `envconfig:"NAME" default:"hr_directory"`
	SSLMode         string        `envconfig:"SSL_MODE" default:"disable"`
	MaxConnections  int32         `envconfig:"MAX_CONNECTIONS" default:"10"`
	MinConnections  int32         `envconfig:"MIN_CONNECTIONS" default:"1"`
	MaxConnLifetime time.Duration `envconfig:"MAX_LIFETIME" default:"1h"`
}

// RedisConfig contains the Redis store settings.
type RedisConfig struct {
	Addr     string `envconfig:"ADDR" default:"127.0.0.1:6379"`
	Password string `envconfig:"PASSWORD"`
	DB       int    `envconfig:"DB" default:"0"`
}

// FirestoreConfig contains the Firestore store settings. CredentialsFile may be
// empty, in which case Application Default Credentials are used.
type FirestoreConfig struct {
	ProjectID       string `envconfig:"PROJECT_ID"`
	CredentialsFile string `envconfig:"CREDENTIALS_FILE"`
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	c.DocstoreDriver = strings.ToLower(strings.TrimSpace(c.DocstoreDriver))
	switch c.DocstoreDriver {
	case DriverMemory, DriverPostgres, DriverRedis:
	case DriverFirestore:
		if c.Firestore.ProjectID == "" {
			return fmt.Errorf("FIRESTORE_PROJECT_ID must be set for the %s driver", DriverFirestore)
		}
	default:
		return fmt.Errorf("unsupported DOCSTORE_DRIVER %q", c.DocstoreDriver)
	}
	return nil
}

// IsDevelopment reports whether the API runs in development mode.
func (c *Config) IsDevelopment() bool {
	return c != nil && c.AppEnv == "development"
}

// IsProduction reports whether the API runs in production mode.
func (c *Config) IsProduction() bool {
	return c != nil && c.AppEnv == "production"
}

// SeedOnStart reports whether the API seeds the sample directory at start-up.
// Only the memory driver is seeded; persistent stores use cmd/migration -seed.
func (c *Config) SeedOnStart() bool {
	return c.SeedSampleData && c.DocstoreDriver == DriverMemory
}

// Addr returns the listen address.
func (c *Config) Addr() string {
	return ":" + c.Port
}

// PostgresURL returns DATABASE_URL or a URL assembled from the DB_* settings.
// golang-migrate only accepts the URL form.
func (c *Config) PostgresURL() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.Postgres.User, c.Postgres.Password),
		Host:     fmt.Sprintf("%s:%d", c.Postgres.Host, c.Postgres.Port),
		Path:     "/" + c.Postgres.Name,
		RawQuery: "sslmode=" + url.QueryEscape(c.Postgres.SSLMode),
	}
	return u.String()
}
