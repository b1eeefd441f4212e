package device_module_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	device_module "github.com/mohi-ict/inventoryhub/internal/api/modules/device"
	"github.com/mohi-ict/inventoryhub/internal/stores/device"
	"github.com/mohi-ict/inventoryhub/pkg/sdk"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store := device.NewInMemoryStore()
	ctx := context.Background()
	require.NoError(t, store.Create(ctx, &device.Device{Hardware: strPtr("System Unit - Lab PC"), Category: "system_unit"}))
	require.NoError(t, store.Create(ctx, &device.Device{Hardware: strPtr("HP Laptop"), Category: "laptop"}))
	require.NoError(t, store.Create(ctx, &device.Device{Hardware: nil, Category: "other"}))

	engine := gin.New()
	group := engine.Group("/api")
	device_module.Init(store)
	device_module.RegisterRoutes(group)
	return engine
}

func doRequest(t *testing.T, engine *gin.Engine, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func TestListDevices(t *testing.T) {
	assert := assert.New(t)
	engine := newTestRouter(t)

	w := doRequest(t, engine, "/api/devices")
	assert.Equal(http.StatusOK, w.Code)

	var resp sdk.ApiResponse[[]sdk.Device]
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(sdk.StatusSuccess, resp.Status)
	assert.Len(resp.Data, 3)
}

func TestListDevicesFiltered(t *testing.T) {
	assert := assert.New(t)
	engine := newTestRouter(t)

	w := doRequest(t, engine, "/api/devices?hardware_contains=system")
	assert.Equal(http.StatusOK, w.Code)

	var resp sdk.ApiResponse[[]sdk.Device]
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Data, 1)
	require.NotNil(t, resp.Data[0].Hardware)
	assert.Equal("System Unit - Lab PC", *resp.Data[0].Hardware)
}

func TestGetDevice(t *testing.T) {
	assert := assert.New(t)
	engine := newTestRouter(t)

	w := doRequest(t, engine, "/api/devices/2")
	assert.Equal(http.StatusOK, w.Code)

	var resp sdk.ApiResponse[sdk.Device]
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.EqualValues(2, resp.Data.ID)
	assert.Equal("laptop", resp.Data.Category)
}

func TestGetDeviceNotFound(t *testing.T) {
	engine := newTestRouter(t)
	w := doRequest(t, engine, "/api/devices/99")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetDeviceInvalidID(t *testing.T) {
	engine := newTestRouter(t)
	w := doRequest(t, engine, "/api/devices/abc")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
