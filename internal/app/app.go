package app

import (
	"fmt"

	"worklink_backend/internal/auth"
	"worklink_backend/internal/config"
	"worklink_backend/internal/handlers"
	"worklink_backend/internal/logger"
	"worklink_backend/internal/middleware"
	"worklink_backend/internal/models"
	"worklink_backend/internal/repositories"
	"worklink_backend/internal/routes"
	"worklink_backend/internal/services"
	"worklink_backend/internal/validator"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func Run() {
	config.LoadConfig()
	cfg := config.GetConfig()

	logger.Init(cfg.Server.Env)
	logger.Info("Logger initialized", "env", cfg.Server.Env)

	gormDB, err := gorm.Open(postgres.Open(cfg.Database.DSN), &gorm.Config{})
	if err != nil {
		logger.Fatal("Failed to connect to database", "error", err)
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		logger.Fatal("Failed to get *sql.DB from GORM", "error", err)
	}
	if err = sqlDB.Ping(); err != nil {
		logger.Fatal("Database unavailable", "error", err)
	}
	logger.Info("Database connected")

	if err := gormDB.AutoMigrate(&models.User{}, &models.WorkerProfile{}, &models.Gig{}); err != nil {
		logger.Fatal("Migration failed", "error", err)
	}

	ginRouter := SetupRouter(cfg, gormDB)

	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info("Server starting", "address", address)
	if err := ginRouter.Run(address); err != nil {
		logger.Fatal("Server startup error", "error", err)
	}
}

// SetupRouter wires repositories, services and handlers onto a Gin engine.
// Split out from Run so tests can build a router against their own DB.
func SetupRouter(cfg *config.Config, gormDB *gorm.DB) *gin.Engine {
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	authenticator := newAuthenticator(cfg)

	profileRepo := repositories.NewWorkerProfileRepository(gormDB)
	gigRepo := repositories.NewGigRepository(gormDB)

	listingService := services.NewListingService(gigRepo)
	profileService := services.NewWorkerProfileService(profileRepo)
	gigService := services.NewWorkerGigService(gigRepo, profileRepo)

	base := handlers.NewBaseHandler(validator.New())
	appHandlers := &handlers.AppHandlers{
		UserHandler:          handlers.NewUserHandler(base, listingService),
		WorkerProfileHandler: handlers.NewWorkerProfileHandler(base, profileService),
		WorkerGigHandler:     handlers.NewWorkerGigHandler(base, gigService, authenticator),
	}

	ginRouter := gin.New()
	ginRouter.Use(
		middleware.RequestIDMiddleware(),
		middleware.LoggingMiddleware(),
		gin.Recovery(),
	)
	ginRouter.Use(cors.New(corsConfig(cfg)))

	routes.RegisterRoutes(ginRouter, appHandlers)
	return ginRouter
}

func newAuthenticator(cfg *config.Config) auth.Authenticator {
	if cfg.Auth.Mode == "token" {
		logger.Info("Token authentication enabled")
		return &auth.TokenAuthenticator{Secret: cfg.Auth.Secret}
	}

	logger.Warn("Mock authentication enabled; every request acts as the configured user",
		"user_id", cfg.Auth.MockUserID,
	)
	return &auth.StaticAuthenticator{
		Principal: auth.Principal{
			UserID: cfg.Auth.MockUserID,
			Email:  cfg.Auth.MockUserEmail,
			Role:   models.UserRole(cfg.Auth.MockUserRole),
		},
	}
}

func corsConfig(cfg *config.Config) cors.Config {
	corsCfg := cors.DefaultConfig()
	if len(cfg.CORS.AllowedOrigins) > 0 {
		corsCfg.AllowOrigins = cfg.CORS.AllowedOrigins
	} else {
		corsCfg.AllowAllOrigins = true
	}
	corsCfg.AllowHeaders = append(corsCfg.AllowHeaders, "Authorization")
	return corsCfg
}
