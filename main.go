// main.go
package main

import (
	"context"
	"log"
	"time"

	"gym-booking/cmd"
	"gym-booking/internal/data/cache"
	"gym-booking/internal/data/repository"
	"gym-booking/internal/wire"
	"gym-booking/pkg/database"
	"gym-booking/pkg/utils"

	"go.uber.org/zap"
)

func main() {
	// Load config
	config, err := utils.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	logger, err := utils.InitLogger(config.App.LogPath, config.App.Debug)
	if err != nil {
		log.Printf("Failed to init logger: %v. Using standard log.", err)
		logger, _ = zap.NewProduction()
	}
	defer logger.Sync()

	logger.Info("Starting application",
		zap.String("app", config.App.Name),
		zap.String("port", config.App.Port),
		zap.Bool("debug", config.App.Debug),
	)

	// Connect to database
	db, err := database.InitDB(config.Database)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	logger.Info("Database connected successfully")

	// Apply pending schema migrations
	if err := database.Migrate(context.Background(), db, "migrations"); err != nil {
		logger.Fatal("Failed to run migrations", zap.Error(err))
	}

	// Initialize all repositories
	repos := repository.NewRepository(db, logger)

	// Redis caches the public catalog listing. The app still works
	// without it, reads just hit the database every time.
	rdb, err := cache.ConnectRedis(config.Redis)
	if err != nil {
		logger.Warn("Redis unavailable, catalog caching disabled", zap.Error(err))
	} else {
		repos.Package = cache.NewCachedPackageRepository(repos.Package, rdb, logger)
		logger.Info("Redis connected, catalog caching enabled")
	}

	// Periodically drop long-expired session rows
	go func() {
		ticker := time.NewTicker(time.Hour)
		defer ticker.Stop()
		for range ticker.C {
			if err := repos.Session.CleanExpiredSessions(context.Background()); err != nil {
				logger.Warn("Session cleanup failed", zap.Error(err))
			}
		}
	}()

	// Wire all dependencies
	app := wire.Wiring(repos, config, logger)

	// Start server
	logger.Info("Starting HTTP server", zap.String("port", config.App.Port))

	cmd.APIServer(app.Router, config.App.Port)
}
