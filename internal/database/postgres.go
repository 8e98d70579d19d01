package database

import (
	"context"
	"fmt"
	"time"

	"film-catalog/internal/config"
	"film-catalog/internal/models"

	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type Postgres struct {
	*gorm.DB
	config config.DatabaseConfig
}

func ConnectPostgres(cfg config.DatabaseConfig) (*Postgres, error) {
	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
		PrepareStmt: true,
	}

	db, err := gorm.Open(postgres.Open(cfg.DSN()), gormConfig)
	if err != nil {
		logrus.WithError(err).Error("Failed to connect to database")
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		logrus.WithError(err).Error("Failed to get underlying sql.DB")
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := sqlDB.PingContext(ctx); err != nil {
		logrus.WithError(err).Error("Failed to ping database")
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	sqlDB.SetConnMaxIdleTime(2 * time.Minute)

	logrus.Info("Database connection established successfully")

	// The films table is created on first start only; there is no migration
	// path for later schema changes.
	if err := db.AutoMigrate(&models.Film{}); err != nil {
		logrus.WithError(err).Error("Failed to create films table")
		return nil, fmt.Errorf("failed to create films table: %w", err)
	}

	return &Postgres{
		DB:     db,
		config: cfg,
	}, nil
}

func (p *Postgres) WithContext(ctx context.Context) *gorm.DB {
	return p.DB.WithContext(ctx)
}

func (p *Postgres) GetQueryTimeout() time.Duration {
	return p.config.QueryTimeout
}

func (p *Postgres) Driver() string {
	return config.DriverPostgres
}

func (p *Postgres) HealthCheck() error {
	sqlDB, err := p.DB.DB()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	return sqlDB.PingContext(ctx)
}

func (p *Postgres) Close() error {
	sqlDB, err := p.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
