package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Supported document store drivers
const (
	DriverMongo    = "mongo"
	DriverPostgres = "postgres"
	DriverMemory   = "memory"
)

// MinBcryptCost is the lowest accepted password hashing cost
const MinBcryptCost = 10

// Config structure represents the application configuration
type Config struct {
	Server struct {
		Port           string   `yaml:"port" env:"PORT"`
		Mode           string   `yaml:"mode" env:"SERVER_MODE"`
		AllowedOrigins []string `yaml:"allowed_origins" env:"CORS_ALLOWED_ORIGINS"`
		DocsPage       string   `yaml:"docs_page" env:"DOCS_PAGE"`
		// ProtectAPI puts the JWT middleware in front of cohort/student writes
		ProtectAPI bool `yaml:"protect_api" env:"PROTECT_API"`
	} `yaml:"server"`

	Database struct {
		Driver string `yaml:"driver" env:"DB_DRIVER"`

		// MongoDB
		URI  string `yaml:"uri" env:"MONGODB_URI"`
		Name string `yaml:"name" env:"MONGODB_NAME"`

		// PostgreSQL
		Host            string `yaml:"host" env:"DB_HOST"`
		Port            string `yaml:"port" env:"DB_PORT"`
		User            string `yaml:"user" env:"DB_USER"`
		Password        string `yaml:"password" env:"DB_PASSWORD"`
		DBName          string `yaml:"dbname" env:"DB_NAME"`
		SSLMode         string `yaml:"sslmode" env:"DB_SSLMODE"`
		MaxIdleConns    int    `yaml:"max_idle_conns" env:"DB_MAX_IDLE_CONNS"`
		MaxOpenConns    int    `yaml:"max_open_conns" env:"DB_MAX_OPEN_CONNS"`
		ConnMaxLifetime string `yaml:"conn_max_lifetime" env:"DB_CONN_MAX_LIFETIME"`
		MigrationsDir   string `yaml:"migrations_dir" env:"DB_MIGRATIONS_DIR"`

		ConnectTimeout string `yaml:"connect_timeout" env:"DB_CONNECT_TIMEOUT"`
	} `yaml:"database"`

	Redis struct {
		Addr     string `yaml:"addr" env:"REDIS_ADDR"`
		Password string `yaml:"password" env:"REDIS_PASSWORD"`
		DB       int    `yaml:"db" env:"REDIS_DB"`
	} `yaml:"redis"`

	JWT struct {
		Secret     string `yaml:"secret" env:"TOKEN_SECRET"`
		Expiration string `yaml:"expiration" env:"TOKEN_EXPIRATION"`
		Issuer     string `yaml:"issuer" env:"TOKEN_ISSUER"`
		BcryptCost int    `yaml:"bcrypt_cost" env:"BCRYPT_COST"`
	} `yaml:"jwt"`

	Logging struct {
		Level  string `yaml:"level" env:"LOG_LEVEL"`
		Format string `yaml:"format" env:"LOG_FORMAT"`
	} `yaml:"logging"`

	Seed struct {
		Enabled      bool   `yaml:"enabled" env:"SEED_ENABLED"`
		CohortsFile  string `yaml:"cohorts_file" env:"SEED_COHORTS_FILE"`
		StudentsFile string `yaml:"students_file" env:"SEED_STUDENTS_FILE"`
	} `yaml:"seed"`
}

// LoadConfig loads configuration from a file, an optional .env file and environment variables
func LoadConfig(configPath string) (*Config, error) {
	// A missing .env is the normal case outside local development
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to load .env file: %w", err)
	}

	config := &Config{}
	setDefaults(config)

	if _, err := os.Stat(configPath); err == nil {
		file, err := os.ReadFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}

		if err := yaml.Unmarshal(file, config); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	if err := loadFromEnv(config); err != nil {
		return nil, fmt.Errorf("failed to load from environment: %w", err)
	}

	if err := validateConfig(config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

// setDefaults sets default values for the configuration
func setDefaults(config *Config) {
	config.Server.Port = "5005"
	config.Server.Mode = "development"
	config.Server.AllowedOrigins = []string{"http://localhost:5173", "http://example.com"}
	config.Server.DocsPage = "views/docs.html"

	config.Database.Driver = DriverMongo
	config.Database.URI = "mongodb://127.0.0.1:27017"
	config.Database.Name = "cohort-tools-api"
	config.Database.Host = "localhost"
	config.Database.Port = "5432"
	config.Database.User = "postgres"
	config.Database.Password = "postgres"
	config.Database.DBName = "cohort_tools"
	config.Database.SSLMode = "disable"
	config.Database.MaxIdleConns = 2
	config.Database.MaxOpenConns = 10
	config.Database.ConnMaxLifetime = "1h"
	config.Database.MigrationsDir = "migrations"
	config.Database.ConnectTimeout = "10s"

	config.JWT.Expiration = "6h"
	config.JWT.Issuer = "cohort-tools-api"
	config.JWT.BcryptCost = MinBcryptCost

	config.Logging.Level = "info"
	config.Logging.Format = "text"

	config.Seed.CohortsFile = "data/cohorts.json"
	config.Seed.StudentsFile = "data/students.json"
}

// loadFromEnv overrides configuration with environment variables
func loadFromEnv(config *Config) error {
	return processStructFields(config)
}

// validateConfig ensures that the configuration is valid
func validateConfig(config *Config) error {
	switch strings.ToLower(config.Database.Driver) {
	case DriverMongo:
		if config.Database.URI == "" || config.Database.Name == "" {
			return fmt.Errorf("mongo uri and database name are required")
		}
	case DriverPostgres:
		if config.Database.Host == "" {
			return fmt.Errorf("database host is required")
		}
		if _, err := time.ParseDuration(config.Database.ConnMaxLifetime); err != nil {
			return fmt.Errorf("invalid connection max lifetime: %w", err)
		}
	case DriverMemory:
	default:
		return fmt.Errorf("unsupported database driver %q", config.Database.Driver)
	}

	if _, err := time.ParseDuration(config.Database.ConnectTimeout); err != nil {
		return fmt.Errorf("invalid database connect timeout: %w", err)
	}

	if config.JWT.Secret == "" {
		return fmt.Errorf("token secret is required")
	}

	if _, err := time.ParseDuration(config.JWT.Expiration); err != nil {
		return fmt.Errorf("invalid token expiration format: %w", err)
	}

	if config.JWT.BcryptCost < MinBcryptCost {
		return fmt.Errorf("bcrypt cost must be at least %d", MinBcryptCost)
	}

	return nil
}

// GetPostgresConnectionString returns postgres connection string
func (c *Config) GetPostgresConnectionString() string {
	sslMode := c.Database.SSLMode
	if sslMode == "" {
		sslMode = "disable"
	}

	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.DBName,
		sslMode,
	)
}

// IsProduction reports whether the server runs in production mode
func (c *Config) IsProduction() bool {
	return strings.ToLower(c.Server.Mode) == "production"
}
