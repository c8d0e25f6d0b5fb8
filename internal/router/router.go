package router

import (
	"github.com/gin-gonic/gin"

	"product-store-be/internal/controllers"
	"product-store-be/internal/jwt"
	"product-store-be/internal/middleware"
)

// Options carries everything the route table needs. RateLimiters are
// optional so tests can mount the routes without them.
type Options struct {
	AuthController    *controllers.AuthController
	ProductController *controllers.ProductController
	JWTService        *jwt.JWTService
	GeneralLimiter    *middleware.RateLimiter
	AuthLimiter       *middleware.RateLimiter
}

// New mounts the route table on a fresh Gin engine. Product routes sit
// behind the bearer-token gate; register and login are public.
func New(opts Options) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	if opts.GeneralLimiter != nil {
		r.Use(opts.GeneralLimiter.LimitMiddleware())
	}

	auth := r.Group("")
	if opts.AuthLimiter != nil {
		auth.Use(opts.AuthLimiter.LimitMiddleware())
	}
	auth.POST("/register", opts.AuthController.Register)
	auth.POST("/login", opts.AuthController.Login)

	protected := r.Group("")
	protected.Use(middleware.AuthMiddleware(opts.JWTService))
	{
		protected.POST("/products", opts.ProductController.Create)
		protected.GET("/products", opts.ProductController.FetchAll)
		protected.GET("/products/paginated", opts.ProductController.FetchPaginated)
		protected.GET("/products/name", opts.ProductController.FetchByName)
		protected.GET("/products/:id", opts.ProductController.FetchByID)
		protected.PATCH("/products/:id", opts.ProductController.Update)
		protected.DELETE("/products/:id", opts.ProductController.Delete)
	}

	return r
}
