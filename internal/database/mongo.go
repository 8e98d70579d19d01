package database

import (
	"context"
	"fmt"
	"time"

	"film-catalog/internal/config"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

type Mongo struct {
	Client *mongo.Client
	DB     *mongo.Database
	config config.DatabaseConfig
}

func ConnectMongo(cfg config.DatabaseConfig) (*Mongo, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		logrus.WithError(err).Error("Failed to connect to MongoDB")
		return nil, fmt.Errorf("failed to connect to mongo: %w", err)
	}

	pingCtx, pingCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer pingCancel()

	if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
		logrus.WithError(err).Error("Failed to ping MongoDB")
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("failed to ping mongo: %w", err)
	}

	logrus.WithFields(logrus.Fields{
		"database":   cfg.MongoDatabase,
		"collection": cfg.MongoCollection,
	}).Info("Connected to MongoDB")

	return &Mongo{
		Client: client,
		DB:     client.Database(cfg.MongoDatabase),
		config: cfg,
	}, nil
}

// Films returns the collection holding film documents.
func (m *Mongo) Films() *mongo.Collection {
	return m.DB.Collection(m.config.MongoCollection)
}

func (m *Mongo) GetQueryTimeout() time.Duration {
	return m.config.QueryTimeout
}

func (m *Mongo) Driver() string {
	return config.DriverMongo
}

func (m *Mongo) HealthCheck() error {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	return m.Client.Ping(ctx, readpref.Primary())
}

func (m *Mongo) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	return m.Client.Disconnect(ctx)
}
