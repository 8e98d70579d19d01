package main

import (
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	_ "film-catalog/docs"
	"film-catalog/internal/config"
	"film-catalog/internal/database"
	"film-catalog/internal/handlers"
	"film-catalog/internal/repository"
	"film-catalog/internal/routes"
	"film-catalog/internal/services"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	fiberSwagger "github.com/swaggo/fiber-swagger"
)

// @title Film API
// @version 1.0.0
// @description API for managing films, including names, descriptions, and images

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:3000
// @BasePath /api
// @schemes http https

func main() {
	loadEnvFile()

	cfg := config.Load()

	log := setupLogger()

	if err := cfg.Validate(); err != nil {
		log.Warnf("Configuration validation warning: %v", err)
	}

	db, err := database.Connect(cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Errorf("Error closing database connection: %v", err)
		}
	}()

	filmRepo, err := repository.NewFilmRepository(db)
	if err != nil {
		log.Fatalf("Failed to create film repository: %v", err)
	}
	filmService := services.NewFilmService(filmRepo, log)
	filmHandler := handlers.NewFilmHandler(filmService, log)

	uploadHandler := handlers.NewUploadHandler(nil, log)
	if cfg.MinIO.Enabled() {
		minioService, err := services.NewMinIOService(&cfg.MinIO, log)
		if err != nil {
			log.Fatalf("Failed to initialize MinIO service: %v", err)
		}

		if fs, ok := filmService.(interface{ SetImageStore(services.ImageStore) }); ok {
			fs.SetImageStore(minioService)
		}
		uploadHandler = handlers.NewUploadHandler(minioService, log)
	} else {
		log.Warn("Object storage not configured, poster uploads disabled")
	}

	app := fiber.New(fiber.Config{
		AppName:      "Film API",
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  120 * time.Second,
		ErrorHandler: handlers.ErrorHandler(log),
	})

	setupMiddleware(app, cfg.Server)

	app.Get("/health", healthCheckHandler(db))

	app.Get("/api-docs/*", fiberSwagger.WrapHandler)

	routes.Setup(app, filmHandler, uploadHandler)

	if cfg.Server.StaticDir != "" {
		app.Static("/", cfg.Server.StaticDir)
		log.Infof("Serving frontend from %s", cfg.Server.StaticDir)
	}

	go gracefulShutdown(app, log)

	log.WithField("driver", db.Driver()).Infof("Film API starting on port %s", cfg.Server.Port)
	if err := app.Listen(":" + cfg.Server.Port); err != nil {
		log.Errorf("Failed to start HTTP server: %v", err)
	}
}

func setupLogger() *logrus.Logger {
	log := logrus.New()
	log.SetFormatter(&logrus.JSONFormatter{
		TimestampFormat: time.RFC3339,
	})
	log.SetOutput(os.Stdout)
	log.SetLevel(logrus.InfoLevel)

	if os.Getenv("GO_ENV") == "dev" || os.Getenv("GO_ENV") == "development" {
		log.SetLevel(logrus.DebugLevel)
	}

	return log
}

func setupMiddleware(app *fiber.App, cfg config.ServerConfig) {
	app.Use(recover.New(recover.Config{
		EnableStackTrace: true,
	}))

	app.Use(logger.New(logger.Config{
		Format:     "${time} | ${status} | ${latency} | ${ip} | ${method} | ${path} | ${error}\n",
		TimeFormat: "15:04:05",
		TimeZone:   "Local",
	}))

	// Only the configured frontend origin may call the API from a browser.
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.AllowOrigin,
		AllowHeaders: "Origin, Content-Type, Accept",
		AllowMethods: "GET, POST, PUT, DELETE, OPTIONS",
		MaxAge:       86400,
	}))
}

func healthCheckHandler(db database.Database) fiber.Handler {
	return func(c *fiber.Ctx) error {
		dbStatus := "healthy"
		if err := db.HealthCheck(); err != nil {
			dbStatus = "unhealthy"
		}

		return c.JSON(fiber.Map{
			"status":    "ok",
			"service":   "film-catalog",
			"version":   "1.0.0",
			"database":  dbStatus,
			"driver":    db.Driver(),
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
	}
}

func gracefulShutdown(app *fiber.App, log *logrus.Logger) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	if err := app.ShutdownWithTimeout(30 * time.Second); err != nil {
		log.Errorf("Error during shutdown: %v", err)
	}

	log.Info("Server shutdown complete")
}

func loadEnvFile() {
	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{})
	log.SetOutput(os.Stdout)

	env := os.Getenv("GO_ENV")
	if env == "" {
		env = "dev"
	}

	execDir, err := os.Getwd()
	if err != nil {
		log.Warnf("Could not get working directory: %v", err)
		return
	}

	envFile := filepath.Join(execDir, "envs", ".env."+env)
	if err := godotenv.Load(envFile); err != nil {
		log.Warnf("Could not load environment file %s: %v", envFile, err)

		defaultEnvFile := filepath.Join(execDir, "envs", ".env")
		if err := godotenv.Load(defaultEnvFile); err != nil {
			log.Warnf("Could not load default environment file: %v", err)
		} else {
			log.Infof("Environment loaded from default file %s", defaultEnvFile)
		}
	} else {
		log.Infof("Environment loaded from file %s", envFile)
	}
}
