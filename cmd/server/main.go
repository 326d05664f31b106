package main

import (
	"friendboard/internal/app"
	"friendboard/pkg/cache"
	"friendboard/pkg/config"
	"friendboard/pkg/database"
	"friendboard/pkg/logger"
)

// @title           Friendboard API
// @version         1.0
// @description     Friend-scoped feed and engagement service: posts, comments and likes visible within a user's friend graph.

// @host      localhost:8080
// @BasePath  /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	if cfg.JWTSecret == "your-secret-key-change-in-production" || cfg.JWTSecret == "" {
		panic("JWT_SECRET must be set in environment variables")
	}

	log := logger.New()

	db, err := database.NewPostgresDB(cfg)
	if err != nil {
		log.Error("Failed to connect to database: %v", err)
		panic(err)
	}

	// Migrations are handled by goose - see cmd/migrate/main.go

	redisClient, err := cache.NewRedisClient(cfg)
	if err != nil {
		log.Error("Failed to connect to redis: %v", err)
		panic(err)
	}

	app.Run(cfg, log, db, redisClient)
}
