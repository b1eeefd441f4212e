package api

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	device_module "github.com/mohi-ict/inventoryhub/internal/api/modules/device"
	health_module "github.com/mohi-ict/inventoryhub/internal/api/modules/health"
	"github.com/mohi-ict/inventoryhub/internal/stores/device"
	"github.com/mohi-ict/inventoryhub/pkg/sdk"
	"github.com/mohi-ict/inventoryhub/pkg/utils"
)

// Start runs the read-only inventory API until the server stops
func Start(cfg *utils.Config, store device.Store) error {
	// Initialized configuration settings
	port := cfg.GetWithDefault("API_PORT", "8080")

	if !cfg.GetBool("API_DEBUG") {
		gin.SetMode(gin.ReleaseMode)
	}

	// Add app level settings/routes
	engine := gin.Default()
	engine.NoRoute(func(c *gin.Context) {
		c.JSON(sdk.NewErrorResponse(http.StatusNotFound, "Route not found", nil).AsGinResponse())
	})

	// Add trusted proxies
	engine.SetTrustedProxies(nil)

	// Add CORS using gin-contrib/cors (https://github.com/gin-contrib/cors for documentation)
	engine.Use(cors.New(cors.Config{
		AllowOrigins:     strings.Split(cfg.GetWithDefault("CORS_ALLOWED_ORIGINS", "*"), ","),
		AllowMethods:     []string{"OPTIONS", "GET"},
		AllowHeaders:     []string{"Origin", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	// Base group '/api' for all API routes
	baseGroup := engine.Group("/api")

	// Adding custom modules
	health_module.RegisterRoutes(baseGroup)

	device_module.Init(store)
	device_module.RegisterRoutes(baseGroup)

	// Then after performing initial setup, start the server
	return engine.Run(":" + port)
}
