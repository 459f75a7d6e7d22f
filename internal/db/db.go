package db

import (
	"context"
	"fmt"
	"log"
	"time"

	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"crud_testbench/internal/models"
)

// Options selects the engine and how chatty gorm is about SQL.
type Options struct {
	Driver   string // mysql, postgres, sqlite
	DSN      string
	LogLevel string // silent, error, warn, info
}

func dialector(driver, dsn string) (gorm.Dialector, error) {
	switch driver {
	case "", "mysql":
		return mysql.Open(dsn), nil
	case "postgres":
		return postgres.Open(dsn), nil
	case "sqlite":
		return sqlite.Open(dsn), nil
	default:
		return nil, fmt.Errorf("unsupported database driver %q", driver)
	}
}

func logLevel(level string) logger.LogLevel {
	switch level {
	case "info":
		return logger.Info
	case "warn":
		return logger.Warn
	case "error":
		return logger.Error
	default:
		return logger.Silent
	}
}

// Connect opens the database and verifies it answers a ping.
func Connect(opts Options) (*gorm.DB, error) {
	d, err := dialector(opts.Driver, opts.DSN)
	if err != nil {
		return nil, err
	}

	gdb, err := gorm.Open(d, &gorm.Config{
		Logger: logger.Default.LogMode(logLevel(opts.LogLevel)),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if opts.Driver == "sqlite" {
		sqlDB, err := gdb.DB()
		if err != nil {
			return nil, err
		}
		// SQLite only supports one writer at a time
		sqlDB.SetMaxOpenConns(1)
	}

	if err := Ping(context.Background(), gdb); err != nil {
		return nil, fmt.Errorf("database ping failed: %w", err)
	}

	log.Printf("✅ Database connected successfully (%s)", driverName(opts.Driver))
	return gdb, nil
}

// Migrate creates or updates the tables owned by the test bench.
func Migrate(gdb *gorm.DB) error {
	if err := gdb.AutoMigrate(&models.Record{}, &models.OperationLog{}); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	return nil
}

// Ping checks the connection with a short deadline.
func Ping(ctx context.Context, gdb *gorm.DB) error {
	sqlDB, err := gdb.DB()
	if err != nil {
		return err
	}
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	return sqlDB.PingContext(ctx)
}

// Close releases the underlying connection pool.
func Close(gdb *gorm.DB) error {
	sqlDB, err := gdb.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func driverName(driver string) string {
	if driver == "" {
		return "mysql"
	}
	return driver
}
