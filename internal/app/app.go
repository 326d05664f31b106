package app

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"friendboard/pkg/config"
	"friendboard/pkg/jwt"
	"friendboard/pkg/logger"
	"friendboard/pkg/middleware"

	boardHTTP "friendboard/internal/controller/http"
	"friendboard/internal/repo/persistent"
	"friendboard/internal/usecase"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	_ "friendboard/docs" // Swagger docs
)

func Run(cfg *config.Config, log *logger.Logger, db *gorm.DB, redisClient *redis.Client) {
	jwtService := jwt.NewService(cfg.JWTSecret)

	// Initialize repositories
	postRepo := persistent.NewPostRepository(db)
	commentRepo := persistent.NewCommentRepository(db)
	engagementRepo := persistent.NewEngagementRepository(db)
	friendRepo := persistent.NewFriendRepository(db)
	reportRepo := persistent.NewReportRepository(db)

	// Initialize use cases
	feedUseCase := usecase.NewFeedUseCase(postRepo, friendRepo, log)
	postUseCase := usecase.NewPostUseCase(postRepo, friendRepo, log)
	commentUseCase := usecase.NewCommentUseCase(commentRepo, postRepo, friendRepo, log)
	engagementUseCase := usecase.NewEngagementUseCase(engagementRepo, postRepo, commentRepo, redisClient, log)
	reportUseCase := usecase.NewReportUseCase(reportRepo, log)

	// Initialize HTTP handlers
	postHandler := boardHTTP.NewPostHandler(postUseCase, feedUseCase, engagementUseCase, redisClient, log)
	commentHandler := boardHTTP.NewCommentHandler(commentUseCase, engagementUseCase, redisClient, log)
	reportHandler := boardHTTP.NewReportHandler(reportUseCase, log)

	// Setup router
	r := gin.Default()

	// CORS middleware
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{cfg.FrontendOrigin},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "Accept"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * 3600,
	}))

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// Swagger documentation
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Like toggles are the cheapest writes to hammer, so they carry a
	// tighter budget than the default.
	limiter := middleware.NewRateLimiter(redisClient, cfg.RateLimitPerMinute, time.Minute).
		WithRouteLimit("/api/v1/posts/:id/like", 30).
		WithRouteLimit("/api/v1/comments/:id/like", 30)

	api := r.Group("/api/v1")
	api.Use(middleware.AuthMiddleware(jwtService))
	api.Use(limiter.Handler())

	{
		api.GET("/posts", postHandler.GetFeed)
		api.POST("/posts", postHandler.CreatePost)
		api.GET("/posts/:id", postHandler.GetPost)
		api.GET("/posts/:id/info", postHandler.GetPostInfo)
		api.POST("/posts/:id/like", postHandler.TogglePostLike)
		api.DELETE("/posts/:id", postHandler.DeletePost)

		api.GET("/comments", commentHandler.ListComments)
		api.POST("/comments", commentHandler.CreateComment)
		api.DELETE("/comments/:id", commentHandler.DeleteComment)
		api.POST("/comments/:id/like", commentHandler.ToggleCommentLike)
		api.GET("/comments/:id/info", commentHandler.GetCommentInfo)

		api.POST("/errors", reportHandler.CreateReport)
	}

	// Create HTTP server
	srv := &http.Server{
		Addr:    ":" + cfg.ServerPort,
		Handler: r,
	}

	// Start server in a goroutine
	go func() {
		log.Info("Friendboard starting on port %s", cfg.ServerPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("Failed to start server: %v", err)
			panic(err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	// Close database connection
	sqlDB, err := db.DB()
	if err == nil {
		if err := sqlDB.Close(); err != nil {
			log.Error("Error closing database: %v", err)
		}
	}

	// Close Redis connection
	if redisClient != nil {
		if err := redisClient.Close(); err != nil {
			log.Error("Error closing Redis: %v", err)
		}
	}

	// Shutdown server
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
		panic(err)
	}

	log.Info("Friendboard exited")
}
