package database

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// PostgresConfig holds the connection parameters for the remote record store.
type PostgresConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
}

// DSN returns the key/value connection string.
func (c PostgresConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}

// Connect opens a pooled GORM connection to PostgreSQL.
func Connect(cfg PostgresConfig, log *zap.Logger) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{Logger: newGormLogger(log)})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to postgres: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetConnMaxLifetime(time.Hour)

	log.Info("connected to postgres", zap.String("host", cfg.Host), zap.String("db", cfg.DBName))
	return db, nil
}

// OpenSQLite opens the process-local SQLite file, creating its directory if needed.
func OpenSQLite(path string, log *zap.Logger) (*gorm.DB, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create local store directory %q: %w", dir, err)
		}
	}

	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{Logger: newGormLogger(log)})
	if err != nil {
		return nil, fmt.Errorf("failed to open local store %q: %w", path, err)
	}

	log.Info("opened local store", zap.String("path", path))
	return db, nil
}

// newGormLogger routes GORM warnings and slow queries through zap.
func newGormLogger(log *zap.Logger) gormlogger.Interface {
	return gormlogger.New(
		zap.NewStdLog(log.Named("gorm")),
		gormlogger.Config{
			SlowThreshold:             time.Second,
			LogLevel:                  gormlogger.Warn,
			IgnoreRecordNotFoundError: true,
			Colorful:                  false,
		},
	)
}
