package main

import (
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"product-store-be/internal/cache"
	"product-store-be/internal/config"
	"product-store-be/internal/controllers"
	"product-store-be/internal/database"
	"product-store-be/internal/jwt"
	"product-store-be/internal/logger"
	"product-store-be/internal/middleware"
	"product-store-be/internal/repository"
	"product-store-be/internal/router"
	"product-store-be/internal/service"
	"product-store-be/internal/validation"
)

func main() {
	log := logger.New()

	// Load configuration
	cfg := config.Load()

	// Connect to database
	db, err := database.NewConnection(cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer db.Close() // Close connection when program exits
	log.Info().Msg("connected to database")

	// Run database migrations
	if err := database.RunMigrations(db); err != nil {
		log.Fatal().Err(err).Msg("failed to run migrations")
	}

	// Initialize Redis cache (optional - continue if Redis is unavailable)
	var cacheClient cache.Cache
	cacheClient, err = cache.NewRedisCache(cfg.RedisURL)
	if err != nil {
		log.Warn().Err(err).Msg("failed to connect to Redis, continuing without cache")
		cacheClient = nil
	} else {
		log.Info().Msg("connected to Redis cache")
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	productRepo := repository.NewProductRepository(db)

	// Initialize JWT service
	jwtService := jwt.NewJWTService(
		cfg.JWTSecret,
		time.Duration(cfg.JWTTTL)*time.Hour,
	)

	// Initialize validator and services
	validator := validation.New()
	authService := service.NewAuthService(userRepo, jwtService)
	productService := service.NewProductService(productRepo, cacheClient)

	// Initialize controllers
	authController := controllers.NewAuthController(authService, validator, log)
	productController := controllers.NewProductController(productService, validator, log)

	// Initialize rate limiters
	generalRateLimiter := middleware.NewRateLimiter(rate.Limit(cfg.RateLimitRPS), cfg.RateLimitBurst)
	authRateLimiter := middleware.NewRateLimiter(rate.Limit(cfg.RateLimitAuthRPS), cfg.RateLimitAuthBurst)

	gin.SetMode(gin.ReleaseMode)
	r := router.New(router.Options{
		AuthController:    authController,
		ProductController: productController,
		JWTService:        jwtService,
		GeneralLimiter:    generalRateLimiter,
		AuthLimiter:       authRateLimiter,
	})

	log.Info().Str("port", cfg.Port).Msg("server starting")
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
