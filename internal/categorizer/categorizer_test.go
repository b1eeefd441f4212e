package categorizer_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/mohi-ict/inventoryhub/internal/categorizer"
	"github.com/mohi-ict/inventoryhub/internal/stores/device"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestCategorize(t *testing.T) {
	assert := assert.New(t)

	tests := []struct {
		hardware string
		want     string
	}{
		{"HP Laptop ProBook 450", "laptop"},
		{"System Unit - Lab PC", "system_unit"},
		{"Dell 24in Monitor", "monitor"},
		{"Cisco Catalyst 2960", "networking_devices"},
		{"Kyocera Photocopier", "printer"},
		{"NComputing L300", "n_computing"},
		{"Epson Projector", "printer"}, // "epson" wins before "projector"
		{"Eaton UPS 650VA", "power_backup_equipment"},
		{"APC UPS 650VA", "system_unit"}, // "apc" contains "pc"; first match wins
		{"  MacBook Air  ", "laptop"},
		{"Unknown asset", ""},
	}

	for _, tt := range tests {
		assert.Equal(tt.want, categorizer.Categorize(tt.hardware), "hardware %q", tt.hardware)
	}
}

func TestRunUpdatesOnlyChangedCategories(t *testing.T) {
	assert := assert.New(t)
	store := device.NewInMemoryStore()
	ctx := context.Background()

	devices := []*device.Device{
		{Hardware: strPtr("HP Laptop"), Category: "other"},
		{Hardware: strPtr("Dell Monitor"), Category: "monitor"}, // already correct
		{Hardware: strPtr("Mystery box"), Category: "other"},    // no keyword
		{Hardware: nil, Category: "other"},                      // skipped entirely
	}
	for _, d := range devices {
		require.NoError(t, store.Create(ctx, d))
	}

	var out bytes.Buffer
	result, err := categorizer.New(store, &out).Run(ctx)
	assert.Nil(err)

	assert.Equal(3, result.Processed)
	assert.Equal(1, result.Updated)
	require.Len(t, result.Unmatched, 1)
	assert.EqualValues(3, result.Unmatched[0].ID)

	d1, _ := store.FindByID(ctx, 1)
	d3, _ := store.FindByID(ctx, 3)
	assert.Equal("laptop", d1.Category)
	assert.Equal("other", d3.Category)

	assert.Contains(out.String(), "Processing 3 devices...")
	assert.Contains(out.String(), "Successfully updated 1 devices")
	assert.Contains(out.String(), "1 devices could not be auto-categorized")
}

func TestRunEmptyStore(t *testing.T) {
	assert := assert.New(t)
	store := device.NewInMemoryStore()

	var out bytes.Buffer
	result, err := categorizer.New(store, &out).Run(context.Background())
	assert.Nil(err)
	assert.Equal(0, result.Processed)
	assert.Contains(out.String(), "No devices with hardware description found.")
}
