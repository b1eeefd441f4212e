package health_module

import (
	"github.com/gin-gonic/gin"
	"github.com/mohi-ict/inventoryhub/pkg/sdk"
)

// Return status of the API
func getStatus(c *gin.Context) {
	c.JSON(sdk.NewSuccess("OK").AsGinResponse())
}
