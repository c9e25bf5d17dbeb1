package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"catalog/config"
	_ "catalog/docs" // Swagger docs
	"catalog/internal/httpserver"
	"catalog/internal/middleware"
	"catalog/pkg/log"
	pkgMongo "catalog/pkg/mongodb"
)

// @title       Catalog API
// @description CRUD service for a catalog of priced items backed by MongoDB.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		os.Exit(1)
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Catalog API...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	if err := run(ctx, cfg, logger); err != nil {
		logger.Error(ctx, "Server exited with error: ", err)
		stop()
		os.Exit(1)
	}

	logger.Info(ctx, "Server stopped gracefully")
}

func run(ctx context.Context, cfg *config.Config, logger log.Logger) error {
	// 3. MongoDB
	mongoClient, err := pkgMongo.Connect(ctx, pkgMongo.Config{
		URI:      cfg.Mongo.URI,
		Host:     cfg.Mongo.Host,
		Port:     cfg.Mongo.Port,
		User:     cfg.Mongo.User,
		Password: cfg.Mongo.Password,
		Timeout:  cfg.Mongo.Timeout,
	})
	if err != nil {
		return fmt.Errorf("mongo: %w", err)
	}
	defer func() {
		if err := pkgMongo.Disconnect(context.Background(), mongoClient, cfg.Mongo.Timeout); err != nil {
			logger.Warnf(context.Background(), "Mongo disconnect: %v", err)
		}
	}()
	logger.Infof(ctx, "Connected to MongoDB database %q", cfg.Mongo.Database)

	// 4. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Port:            cfg.HTTPServer.Port,
		Mode:            cfg.HTTPServer.Mode,
		Environment:     cfg.Environment.Name,
		ShutdownTimeout: cfg.HTTPServer.ShutdownTimeout,
		TrustedProxies:  cfg.HTTPServer.TrustedProxies,
		MongoDB:         mongoClient.Database(cfg.Mongo.Database),
		ItemCollection:  cfg.Mongo.Collection,
		Pinger:          mongoClient,
		RateLimit: middleware.Config{
			RateLimitEnabled: cfg.RateLimit.Enabled,
			RequestsPerMin:   cfg.RateLimit.RequestsPerMin,
			Burst:            cfg.RateLimit.Burst,
		},
	})
	if err != nil {
		return fmt.Errorf("http server init: %w", err)
	}

	// 5. Run
	return httpServer.Run(ctx)
}
