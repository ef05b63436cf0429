package router

import (
	"github.com/labstack/echo/v4"
	eMiddleware "github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/baldimario/promptly/internal/handlers"
	"github.com/baldimario/promptly/internal/middleware"
	"github.com/baldimario/promptly/internal/models"
	"github.com/baldimario/promptly/internal/services"
	"github.com/baldimario/promptly/pkg/config"
)

// SetupMiddleware configures global Echo middleware
func SetupMiddleware(e *echo.Echo) {
	e.Use(eMiddleware.Recover())
	e.Use(eMiddleware.CORS())
}

// SetupRoutes configures all application routes and injects dependencies
func SetupRoutes(e *echo.Echo, db *gorm.DB, cfg *config.Config, logger *zap.SugaredLogger) error {
	err := db.AutoMigrate(
		&models.User{},
		&models.Category{},
		&models.Prompt{},
		&models.Rating{},
		&models.Comment{},
		&models.SavedPrompt{},
		&models.Follow{},
		&models.Model{},
	)
	if err != nil {
		return err
	}
	logger.Infow("auto-migrations completed")

	// Health check - always accessible
	e.GET("/health", handlers.HealthCheck)
	e.Static("/uploads/images", cfg.UploadDir)

	// --- Initialize services ---
	imageService := services.NewImageService(cfg.UploadDir, logger)
	userService := services.NewUserService(db, logger)
	promptService := services.NewPromptService(db, imageService, logger)
	ratingService := services.NewRatingService(db, logger)
	saveService := services.NewSaveService(db, logger)
	followService := services.NewFollowService(db, logger)
	commentService := services.NewCommentService(db, logger)
	categoryService := services.NewCategoryService(db, logger)
	modelService := services.NewModelService(db, logger)

	// --- Initialize handlers ---
	authHandler := handlers.NewAuthHandler(userService, cfg.JWTSecret)
	promptHandler := handlers.NewPromptHandler(promptService, commentService)
	feedHandler := handlers.NewFeedHandler(promptService, followService)
	ratingHandler := handlers.NewRatingHandler(ratingService)
	saveHandler := handlers.NewSaveHandler(saveService)
	followHandler := handlers.NewFollowHandler(followService, userService)
	userHandler := handlers.NewUserHandler(userService, followService, promptService, saveService)
	categoryHandler := handlers.NewCategoryHandler(categoryService)
	modelHandler := handlers.NewModelHandler(modelService)

	// --- Unprotected routes for authentication ---
	authGroup := e.Group("/api/v1/auth")
	authHandler.RegisterAuthRoutes(authGroup)

	// --- Public routes (viewer identity is optional) ---
	public := e.Group("/api/v1")
	public.Use(middleware.OptionalJWTAuthMiddleware(cfg.JWTSecret))
	promptHandler.RegisterPublicRoutes(public)
	userHandler.RegisterPublicRoutes(public)
	categoryHandler.RegisterCategoryRoutes(public)
	modelHandler.RegisterModelRoutes(public)

	// --- Protected routes (require JWT authentication) ---
	api := e.Group("/api/v1")
	api.Use(middleware.JWTAuthMiddleware(cfg.JWTSecret))
	promptHandler.RegisterProtectedRoutes(api)
	feedHandler.RegisterFeedRoutes(api)
	ratingHandler.RegisterRatingRoutes(api)
	saveHandler.RegisterSaveRoutes(api)
	followHandler.RegisterFollowRoutes(api)
	userHandler.RegisterProfileRoutes(api)

	logger.Infow("routes configured")
	return nil
}
