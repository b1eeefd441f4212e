package device_module

import (
	"github.com/gin-gonic/gin"
)

// Register routes for the device module
func RegisterRoutes(g *gin.RouterGroup) {
	// Create base group for device routes
	group := g.Group("/devices")

	group.GET("", ListDevices)
	group.GET("/:id", GetDevice)
}
