package device_module

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/mohi-ict/inventoryhub/internal/stores/device"
	"github.com/mohi-ict/inventoryhub/pkg/sdk"
)

// ListDevices handles GET requests to list devices, optionally filtered by a
// case-insensitive hardware substring
func ListDevices(c *gin.Context) {
	var (
		devices []*device.Device
		err     error
	)

	if substr := c.Query("hardware_contains"); substr != "" {
		devices, err = deviceStore.FindByHardwareContains(c.Request.Context(), substr)
	} else {
		devices, err = deviceStore.FindAll(c.Request.Context())
	}

	if err != nil {
		c.JSON(sdk.NewErrorResponse(http.StatusInternalServerError, "Failed to list devices", err.Error()).AsGinResponse())
		return
	}

	c.JSON(sdk.NewSuccessResponse("Devices retrieved successfully", asDtos(devices)).AsGinResponse())
}

// GetDevice handles GET requests for a single device by ID
func GetDevice(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(sdk.NewErrorResponse(http.StatusBadRequest, "Invalid device ID", err.Error()).AsGinResponse())
		return
	}

	d, err := deviceStore.FindByID(c.Request.Context(), uint(id))
	if err != nil {
		if errors.Is(err, device.ErrNotFound) {
			c.JSON(sdk.NewErrorResponse(http.StatusNotFound, "Device not found", nil).AsGinResponse())
			return
		}
		c.JSON(sdk.NewErrorResponse(http.StatusInternalServerError, "Failed to get device", err.Error()).AsGinResponse())
		return
	}

	c.JSON(sdk.NewSuccessResponse("Device retrieved successfully", asDto(d)).AsGinResponse())
}
