package database

import (
	"fmt"
	"time"

	"film-catalog/internal/config"
)

// Database is the process-wide store handle. It is opened once before the
// HTTP server starts and closed during shutdown.
type Database interface {
	HealthCheck() error
	Close() error
	GetQueryTimeout() time.Duration
	Driver() string
}

// Connect opens the store selected by cfg.Driver.
func Connect(cfg config.DatabaseConfig) (Database, error) {
	switch cfg.Driver {
	case config.DriverMongo:
		db, err := ConnectMongo(cfg)
		if err != nil {
			return nil, err
		}
		return db, nil
	case config.DriverPostgres:
		db, err := ConnectPostgres(cfg)
		if err != nil {
			return nil, err
		}
		return db, nil
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}
}
