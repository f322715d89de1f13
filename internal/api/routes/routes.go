package routes

import (
	"fmt"
	"net/http"

	"datawise-backend/internal/api/handlers"
	"datawise-backend/internal/api/middleware"
	"datawise-backend/internal/auth"
	"datawise-backend/internal/config"
	"datawise-backend/internal/database/models"
	"datawise-backend/internal/logger"
	"datawise-backend/internal/metrics"
	"datawise-backend/internal/repository"
	"datawise-backend/internal/service"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// SetupRoutes configures all the routes for the application. m may be nil.
func SetupRoutes(db *gorm.DB, cfg *config.Config, m *metrics.Metrics) (*gin.Engine, error) {
	// Create router
	router := gin.New()
	// Handlers pass the gin context down as context.Context
	router.ContextWithFallback = true

	// Add middleware
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.CORS(cfg))
	if m != nil {
		router.Use(middleware.Metrics(m))
	}

	// Initialize validator
	validator := service.NewValidator()

	// Initialize repositories
	itemRepo := repository.NewItemRepository(db)
	tenantRepo := repository.NewTenantRepository(db)
	userRepo := repository.NewUserRepository(db)

	// Initialize services
	itemService := service.NewItemService(itemRepo, validator, m)
	tenantService := service.NewTenantService(tenantRepo)

	authService, err := auth.NewAuthService(auth.NewAuthConfig(cfg), userRepo, m)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize auth service: %w", err)
	}
	authHandler := auth.NewAuthHandler(authService)
	authMiddleware := auth.NewAuthMiddleware(authService)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(db)
	tenantHandler := handlers.NewTenantHandler(tenantService)

	// Health check routes
	router.GET("/ping", healthHandler.Ping)
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	if m != nil {
		router.GET("/metrics", gin.WrapH(m.Handler()))
	}

	// Swagger documentation route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := router.Group(cfg.APIPrefix)

	// Auth routes
	authGroup := api.Group("/auth")
	{
		authGroup.POST("/login", authHandler.Login)
		authGroup.POST("/logout", authHandler.Logout)
		authGroup.GET("/validate-token", authMiddleware.RequireAuth(), authHandler.ValidateToken)
	}

	// Everything below requires a verified principal
	protected := api.Group("", authMiddleware.RequireAuth())
	{
		protected.GET("/tenant", tenantHandler.GetCurrentTenant)

		for _, kind := range models.AllResourceKinds() {
			registerItemRoutes(protected, handlers.NewItemHandler(itemService, kind))
		}
	}

	// Catch-all route for undefined endpoints
	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{
			"error":      "Endpoint not found",
			"kind":       "not_found",
			"path":       c.Request.URL.Path,
			"method":     c.Request.Method,
			"request_id": c.GetString(logger.RequestIDKey),
		})
	})

	return router, nil
}

// registerItemRoutes mounts the item endpoints of one kind under /<slug>.
// Create and list answer with and without the trailing slash.
func registerItemRoutes(rg *gin.RouterGroup, h *handlers.ItemHandler) {
	items := rg.Group("/" + h.Kind().Slug())
	{
		items.POST("", h.CreateItem)
		items.POST("/", h.CreateItem)
		items.GET("", h.ListItems)
		items.GET("/", h.ListItems)
		items.GET("/:id", h.GetItem)
	}
}
