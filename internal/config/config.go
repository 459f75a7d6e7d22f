package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	DBDriver   string
	DSN        string
	DBLogLevel string
	AppPort    string
	GinMode    string

	OpLogDefaultLimit int
	OpLogMaxLimit     int
	SeedOnStart       bool
}

// Load reads .env (when present) and the process environment.
func Load() (Config, error) {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️ .env file not found, using system environment variables")
	} else {
		log.Println("✅ .env file loaded successfully!")
	}
	return FromEnv()
}

// FromEnv builds the config from the environment only.
func FromEnv() (Config, error) {
	cfg := Config{
		DBDriver:   os.Getenv("DB_DRIVER"),
		DSN:        os.Getenv("DATABASE_DSN"),
		DBLogLevel: os.Getenv("DB_LOG_LEVEL"),
		AppPort:    os.Getenv("APP_PORT"),
		GinMode:    os.Getenv("GIN_MODE"),
	}

	if cfg.DBDriver == "" {
		cfg.DBDriver = "mysql"
	}
	if cfg.DSN == "" {
		cfg.DSN = os.Getenv("MYSQL_DSN")
	}
	if cfg.DSN == "" {
		return cfg, errors.New("DATABASE_DSN not set in environment")
	}
	if cfg.DBLogLevel == "" {
		cfg.DBLogLevel = "warn"
	}
	if cfg.AppPort == "" {
		cfg.AppPort = "8080"
	}

	var err error
	if cfg.OpLogDefaultLimit, err = intEnv("OPLOG_DEFAULT_LIMIT", 10); err != nil {
		return cfg, err
	}
	if cfg.OpLogMaxLimit, err = intEnv("OPLOG_MAX_LIMIT", 100); err != nil {
		return cfg, err
	}
	if cfg.OpLogDefaultLimit <= 0 || cfg.OpLogMaxLimit <= 0 {
		return cfg, errors.New("OPLOG_DEFAULT_LIMIT and OPLOG_MAX_LIMIT must be positive")
	}
	if cfg.OpLogDefaultLimit > cfg.OpLogMaxLimit {
		cfg.OpLogDefaultLimit = cfg.OpLogMaxLimit
	}

	if v := os.Getenv("SEED_ON_START"); v != "" {
		if cfg.SeedOnStart, err = strconv.ParseBool(v); err != nil {
			return cfg, fmt.Errorf("SEED_ON_START: %w", err)
		}
	}

	return cfg, nil
}

func intEnv(key string, def int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return n, nil
}
