package db

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/glebarez/sqlite"
	"github.com/terraincognita07/vitalis/internal/logging"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type openOptions struct {
	logger *zap.Logger
}

type Option func(*openOptions)

// WithLogger sends gorm warnings, slow queries and errors to logger.
func WithLogger(logger *zap.Logger) Option {
	return func(options *openOptions) {
		options.logger = logger
	}
}

// OpenSQLite opens (creating the directory if needed) the database at dbPath
// and brings its schema up to date.
func OpenSQLite(dbPath string, options ...Option) (*gorm.DB, error) {
	var resolved openOptions
	for _, apply := range options {
		apply(&resolved)
	}

	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	database, err := gorm.Open(sqlite.Open(sqliteDSN(dbPath)), &gorm.Config{
		Logger: newGormLogger(logging.OrNop(resolved.logger)),
	})
	if err != nil {
		return nil, fmt.Errorf("open sqlite %s: %w", dbPath, err)
	}

	if err := applyEmbeddedMigrations(database); err != nil {
		return nil, fmt.Errorf("apply embedded migrations: %w", err)
	}
	return database, nil
}

func sqliteDSN(dbPath string) string {
	return dbPath + "?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)"
}
