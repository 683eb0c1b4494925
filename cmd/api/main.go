package main

import (
	"log"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/culina/backend/config"
	"github.com/culina/backend/internal/api"
	"github.com/culina/backend/internal/database"
	"github.com/culina/backend/internal/logging"
	"github.com/culina/backend/internal/router"
	"github.com/culina/backend/internal/server"
	"github.com/culina/backend/internal/service"
	"github.com/culina/backend/internal/store"
)

func main() {
	// Best effort: a missing .env just means the environment is already set.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	logger, err := logging.NewLogger(cfg.LogLevel)
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	db, err := database.New(cfg)
	if err != nil {
		logger.Fatal("failed to connect to database", zap.Error(err))
	}
	if err := database.Migrate(db); err != nil {
		logger.Fatal("failed to migrate database", zap.Error(err))
	}

	redisClient, err := database.NewRedisClient(cfg)
	if err != nil {
		logger.Fatal("failed to connect to redis", zap.Error(err))
	}

	authService := service.NewAuthService(cfg.JWTSecret, redisClient)
	recipeStore := store.NewRecipeStore(db, logger)
	preferenceStore := store.NewPreferenceStore(db, logger)

	engine := router.SetupRouter(
		api.NewRecipeHandler(recipeStore, logger),
		api.NewPreferencesHandler(preferenceStore, logger),
		authService,
	)

	srv := server.New(cfg.ServerHost, cfg.ServerPort, engine, logger)
	if err := srv.Run(); err != nil {
		logger.Fatal("server exited", zap.Error(err))
	}
}
