package sdk_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/mohi-ict/inventoryhub/pkg/sdk"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	hardware := "System Unit - Lab PC"
	devices := []sdk.Device{
		{ID: 1, Hardware: &hardware, Category: "system_unit", SerialNumber: "SN-001"},
		{ID: 2, Hardware: nil, Category: "other"},
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/health", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(sdk.NewSuccess("OK"))
	})
	mux.HandleFunc("GET /api/devices", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("hardware_contains") == "system" {
			json.NewEncoder(w).Encode(sdk.NewSuccessResponse("Devices retrieved successfully", devices[:1]))
			return
		}
		json.NewEncoder(w).Encode(sdk.NewSuccessResponse("Devices retrieved successfully", devices))
	})
	mux.HandleFunc("GET /api/devices/1", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(sdk.NewSuccessResponse("Device retrieved successfully", devices[0]))
	})
	mux.HandleFunc("GET /api/devices/99", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(sdk.NewErrorResponse(http.StatusNotFound, "Device not found", nil))
	})

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server
}

func TestClientHealth(t *testing.T) {
	server := newTestServer(t)
	client := sdk.NewClient(server.URL)

	assert.Nil(t, client.Health(context.Background()))
}

func TestClientListDevices(t *testing.T) {
	assert := assert.New(t)
	server := newTestServer(t)
	client := sdk.NewClient(server.URL)
	ctx := context.Background()

	devices, err := client.ListDevices(ctx, "")
	assert.Nil(err)
	assert.Len(devices, 2)

	devices, err = client.ListDevices(ctx, "system")
	assert.Nil(err)
	require.Len(t, devices, 1)
	assert.EqualValues(1, devices[0].ID)
	require.NotNil(t, devices[0].Hardware)
	assert.Equal("System Unit - Lab PC", *devices[0].Hardware)
}

func TestClientGetDevice(t *testing.T) {
	assert := assert.New(t)
	server := newTestServer(t)
	client := sdk.NewClient(server.URL)
	ctx := context.Background()

	device, err := client.GetDevice(ctx, 1)
	assert.Nil(err)
	assert.Equal("SN-001", device.SerialNumber)

	_, err = client.GetDevice(ctx, 99)
	assert.ErrorContains(err, "404")
}
