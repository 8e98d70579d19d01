package config

import (
	"strings"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"SERVER_PORT", "DB_DRIVER", "MONGO_DATABASE", "MONGO_COLLECTION", "CORS_ALLOW_ORIGIN", "DB_QUERY_TIMEOUT"} {
		t.Setenv(key, "")
	}

	cfg := Load()

	if cfg.Server.Port != "3000" {
		t.Fatalf("expected default port 3000, got %q", cfg.Server.Port)
	}
	if cfg.Database.Driver != DriverMongo {
		t.Fatalf("expected default driver %q, got %q", DriverMongo, cfg.Database.Driver)
	}
	if cfg.Database.MongoDatabase != "filmsDB" || cfg.Database.MongoCollection != "films" {
		t.Fatalf("unexpected mongo defaults: %q/%q", cfg.Database.MongoDatabase, cfg.Database.MongoCollection)
	}
	if cfg.Server.AllowOrigin != "http://127.0.0.1:5500" {
		t.Fatalf("unexpected default origin %q", cfg.Server.AllowOrigin)
	}
	if cfg.Database.QueryTimeout != 10*time.Second {
		t.Fatalf("unexpected default query timeout %v", cfg.Database.QueryTimeout)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("SERVER_PORT", "8080")
	t.Setenv("DB_DRIVER", DriverPostgres)
	t.Setenv("DB_MAX_OPEN_CONNS", "7")
	t.Setenv("DB_QUERY_TIMEOUT", "2s")
	t.Setenv("AWS_USE_SSL", "false")

	cfg := Load()

	if cfg.Server.Port != "8080" {
		t.Fatalf("expected port 8080, got %q", cfg.Server.Port)
	}
	if cfg.Database.Driver != DriverPostgres {
		t.Fatalf("expected driver postgres, got %q", cfg.Database.Driver)
	}
	if cfg.Database.MaxOpenConns != 7 {
		t.Fatalf("expected 7 open conns, got %d", cfg.Database.MaxOpenConns)
	}
	if cfg.Database.QueryTimeout != 2*time.Second {
		t.Fatalf("expected 2s timeout, got %v", cfg.Database.QueryTimeout)
	}
	if cfg.MinIO.UseSSL {
		t.Fatal("expected UseSSL false")
	}
}

func TestLoadIgnoresMalformedNumbers(t *testing.T) {
	t.Setenv("DB_MAX_IDLE_CONNS", "many")
	t.Setenv("SERVER_READ_TIMEOUT", "soon")

	cfg := Load()

	if cfg.Database.MaxIdleConns != 5 {
		t.Fatalf("expected fallback 5, got %d", cfg.Database.MaxIdleConns)
	}
	if cfg.Server.ReadTimeout != 30*time.Second {
		t.Fatalf("expected fallback 30s, got %v", cfg.Server.ReadTimeout)
	}
}

func TestValidate(t *testing.T) {
	complete := func() *Config {
		return &Config{
			Server:   ServerConfig{AllowOrigin: "http://localhost:5500"},
			Database: DatabaseConfig{Driver: DriverMongo, MongoURI: "mongodb://localhost:27017", MongoDatabase: "filmsDB"},
			MinIO:    MinIOConfig{Endpoint: "localhost:9000", AccessKeyID: "key", SecretAccessKey: "secret"},
		}
	}

	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{name: "complete", mutate: func(c *Config) {}},
		{name: "unknown driver", mutate: func(c *Config) { c.Database.Driver = "sqlite" }, wantErr: "unsupported DB_DRIVER"},
		{name: "missing mongo uri", mutate: func(c *Config) { c.Database.MongoURI = "" }, wantErr: "MONGO_URI"},
		{name: "postgres without host", mutate: func(c *Config) {
			c.Database.Driver = DriverPostgres
			c.Database.Host = ""
		}, wantErr: "DB_HOST"},
		{name: "missing origin", mutate: func(c *Config) { c.Server.AllowOrigin = "" }, wantErr: "CORS_ALLOW_ORIGIN"},
		{name: "storage disabled", mutate: func(c *Config) { c.MinIO.AccessKeyID = "" }, wantErr: "poster uploads"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := complete()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Fatalf("expected error containing %q, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestDSN(t *testing.T) {
	cfg := DatabaseConfig{Host: "db", Port: "5432", User: "u", Password: "p", DBName: "films_db", SSLMode: "disable"}

	dsn := cfg.DSN()
	for _, part := range []string{"host=db", "port=5432", "user=u", "password=p", "dbname=films_db", "sslmode=disable", "TimeZone=UTC"} {
		if !strings.Contains(dsn, part) {
			t.Fatalf("dsn %q missing %q", dsn, part)
		}
	}
}
