package device_module

import (
	"github.com/mohi-ict/inventoryhub/internal/stores/device"
	"github.com/mohi-ict/inventoryhub/pkg/sdk"
)

// deviceStore backs the module's handlers; set once by Init before the
// routes are registered.
var deviceStore device.Store

// Init wires the device store into the module
func Init(store device.Store) {
	deviceStore = store
}

// asDto converts a stored device into its wire representation
func asDto(d *device.Device) sdk.Device {
	return sdk.Device{
		ID:           d.ID,
		Hardware:     d.Hardware,
		SystemModel:  d.SystemModel,
		Processor:    d.Processor,
		SerialNumber: d.SerialNumber,
		Category:     d.Category,
		Assignee:     d.Assignee,
		Status:       d.Status,
		IsDisposed:   d.IsDisposed,
		CreatedAt:    d.CreatedAt,
		UpdatedAt:    d.UpdatedAt,
	}
}

func asDtos(devices []*device.Device) []sdk.Device {
	dtos := make([]sdk.Device, 0, len(devices))
	for _, d := range devices {
		dtos = append(dtos, asDto(d))
	}
	return dtos
}
