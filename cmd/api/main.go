package main

import (
	"context"
	"log"

	"go.uber.org/zap"

	"github.com/WhyTonyGit/SmartCook/config"
	"github.com/WhyTonyGit/SmartCook/internal/api"
	"github.com/WhyTonyGit/SmartCook/internal/database"
	"github.com/WhyTonyGit/SmartCook/internal/router"
	"github.com/WhyTonyGit/SmartCook/internal/server"
	"github.com/WhyTonyGit/SmartCook/internal/service"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	var logger *zap.Logger
	if config.IsProduction() {
		logger, err = zap.NewProduction()
	} else {
		logger, err = zap.NewDevelopment()
	}
	if err != nil {
		log.Fatalf("failed to create logger: %v", err)
	}
	defer logger.Sync()

	db, err := database.New(cfg, logger)
	if err != nil {
		logger.Fatal("failed to connect to database", zap.Error(err))
	}
	if err := database.Migrate(db); err != nil {
		logger.Fatal("failed to run migrations", zap.Error(err))
	}

	redisClient, err := database.NewRedisClient(cfg, logger)
	if err != nil {
		logger.Warn("redis unavailable, caching disabled", zap.Error(err))
		redisClient = nil
	}

	authService := service.NewAuthService(db, cfg.JWTSecret)
	consumerService := service.NewConsumerService(db)
	ingredientService := service.NewIngredientService(db, redisClient, logger)
	recipeService := service.NewRecipeService(db, logger)
	categoryService := service.NewCategoryService(db)
	markService := service.NewMarkService(db)
	commentService := service.NewCommentService(db)

	var imageHandler *api.ImageHandler
	if s3cfg, err := config.NewS3Config(context.Background()); err != nil {
		logger.Warn("s3 unavailable, image uploads disabled", zap.Error(err))
	} else {
		imageHandler = api.NewImageHandler(service.NewImageService(s3cfg), authService)
	}

	engine := router.SetupRouter(
		api.NewAuthHandler(authService, consumerService),
		api.NewRecipeHandler(recipeService, ingredientService, authService),
		api.NewIngredientHandler(ingredientService, authService),
		api.NewCategoryHandler(categoryService, authService),
		api.NewFeedbackHandler(markService, commentService, authService),
		imageHandler,
		logger,
	)

	srv := server.New(engine, cfg.ServerPort, logger)
	if err := srv.Run(); err != nil {
		logger.Fatal("server error", zap.Error(err))
	}
}
