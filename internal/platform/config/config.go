package config

import (
	"log"
	"log/slog"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Supported values for DB_DRIVER.
const (
	DriverPgx  = "pgx"
	DriverGorm = "gorm"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL        string
	Port               string
	IsProduction       bool
	EnableDBCheck      bool
	DBDriver           string
	MigrationsPath     string
	RateLimit          string
	CORSAllowedOrigins []string
	LogLevel           slog.Level
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()
	return load(viper.New())
}

func load(v *viper.Viper) (*Config, error) {
	v.SetDefault("PGSQL_URL", "")
	v.SetDefault("PORT", "8080")
	v.SetDefault("IS_PRODUCTION", false)
	v.SetDefault("ENABLE_DB_CHECK", true)
	v.SetDefault("DB_DRIVER", DriverPgx)
	v.SetDefault("MIGRATIONS_PATH", "file://migrations")
	v.SetDefault("RATE_LIMIT", "100-M")
	v.SetDefault("CORS_ALLOWED_ORIGINS", "")
	v.SetDefault("LOG_LEVEL", "info")

	// Environment variables override both defaults and the .env file.
	v.AutomaticEnv()

	cfg := &Config{
		DatabaseURL:    v.GetString("PGSQL_URL"),
		Port:           v.GetString("PORT"),
		IsProduction:   v.GetBool("IS_PRODUCTION"),
		EnableDBCheck:  v.GetBool("ENABLE_DB_CHECK"),
		DBDriver:       strings.ToLower(strings.TrimSpace(v.GetString("DB_DRIVER"))),
		MigrationsPath: v.GetString("MIGRATIONS_PATH"),
		RateLimit:      v.GetString("RATE_LIMIT"),
	}

	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	if cfg.Port == "" {
		cfg.Port = "8080"
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}

	if cfg.DBDriver != DriverPgx && cfg.DBDriver != DriverGorm {
		log.Printf("Warning: Invalid value for DB_DRIVER ('%s'). Defaulting to %s.\n", cfg.DBDriver, DriverPgx)
		cfg.DBDriver = DriverPgx
	}

	if cfg.MigrationsPath == "" {
		cfg.MigrationsPath = "file://migrations"
	}

	for _, origin := range strings.Split(v.GetString("CORS_ALLOWED_ORIGINS"), ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			cfg.CORSAllowedOrigins = append(cfg.CORSAllowedOrigins, origin)
		}
	}

	levelStr := v.GetString("LOG_LEVEL")
	if err := cfg.LogLevel.UnmarshalText([]byte(levelStr)); err != nil {
		log.Printf("Warning: Invalid value for LOG_LEVEL ('%s'). Defaulting to info.\n", levelStr)
		cfg.LogLevel = slog.LevelInfo
	}

	return cfg, nil
}
