// Package categorizer assigns device categories from keywords found in the
// hardware description.
package categorizer

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/mohi-ict/inventoryhub/internal/stores/device"
)

// unmatchedListLimit caps the unmatched listing to avoid flooding the console
const unmatchedListLimit = 50

// categoryRule maps one category to the keywords that select it. Rules are
// checked in order and the first match wins, so more specific categories come
// first.
type categoryRule struct {
	category string
	keywords []string
}

var categoryRules = []categoryRule{
	{"laptop", []string{
		"laptop", "notebook", "macbook", "thinkpad", "latitude",
		"probook", "elitebook", "xps", "yoga", "zenbook", "surface",
		"aspire", "chromebook", "chrome book",
	}},
	{"system_unit", []string{
		"system unit", "systemunit", "desktop", "tower", "optiplex",
		"prodesk", "elitedesk", "veriton", "inspiron", "workstation",
		"all-in-one", "aio", "pc", "cpu",
	}},
	{"monitor", []string{
		"monitor", "display", "screen", "led", "lcd", "p24", "e24",
	}},
	{"tv", []string{
		"tv", "television", "smart tv", "hisense",
	}},
	{"networking_devices", []string{
		"router", "switch", "access point", "mikrotik", "cisco",
		"tp-link", "d-link", "wifi", "catalyst", "ubiquiti", "wlc",
	}},
	{"printer", []string{
		"printer", "laserjet", "deskjet", "mfp", "scanner", "copier",
		"epson", "canon", "kyocera", "photocopier", "ricoh",
	}},
	{"n_computing", []string{
		"n-computing", "n computing", "ncomputing", "l300",
		"thin client", "terminal", "zero client",
	}},
	{"projector", []string{
		"projector", "proj",
	}},
	{"gadget", []string{
		"phone", "iphone", "android", "tablet", "ipad",
		"smartphone", "tecno", "infinix",
	}},
	{"power_backup_equipment", []string{
		"ups", "power backup", "stabilizer", "inverter", "battery backup",
	}},
}

// Result summarizes one categorization pass
type Result struct {
	Processed int
	Updated   int
	Unmatched []*device.Device
}

// Categorizer auto-categorizes devices from their hardware description
type Categorizer struct {
	store device.Store
	out   io.Writer
}

// New creates a categorizer that reports progress to out
func New(store device.Store, out io.Writer) *Categorizer {
	return &Categorizer{store: store, out: out}
}

// Run categorizes every device with a non-empty hardware description.
// A device's category is persisted only when a keyword matches and the
// matched category differs from the current one.
func (c *Categorizer) Run(ctx context.Context) (*Result, error) {
	devices, err := c.store.FindWithHardware(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query devices: %w", err)
	}

	if len(devices) == 0 {
		fmt.Fprintln(c.out, "No devices with hardware description found.")
		return &Result{}, nil
	}

	fmt.Fprintf(c.out, "Processing %d devices...\n", len(devices))

	result := &Result{Processed: len(devices)}
	for _, d := range devices {
		category := Categorize(d.HardwareLabel())

		switch {
		case category == "":
			result.Unmatched = append(result.Unmatched, d)
		case category != d.Category:
			if err := c.store.UpdateCategory(ctx, d.ID, category); err != nil {
				return result, fmt.Errorf("failed to update device %d: %w", d.ID, err)
			}
			result.Updated++
		}
	}

	fmt.Fprintf(c.out, "Successfully updated %d devices with new categories.\n", result.Updated)

	if len(result.Unmatched) > 0 {
		fmt.Fprintf(c.out, "%d devices could not be auto-categorized:\n", len(result.Unmatched))
		for i, d := range result.Unmatched {
			if i == unmatchedListLimit {
				fmt.Fprintf(c.out, "... and %d more.\n", len(result.Unmatched)-unmatchedListLimit)
				break
			}
			fmt.Fprintf(c.out, "%-6d | %-50s | %-20s | %s\n", d.ID, d.HardwareLabel(), d.SerialNumber, d.Category)
		}
	} else {
		fmt.Fprintln(c.out, "All devices were successfully categorized!")
	}

	return result, nil
}

// Categorize returns the category for a hardware description, or "" when no
// keyword matches.
func Categorize(hardware string) string {
	hw := strings.ToLower(strings.TrimSpace(hardware))
	for _, rule := range categoryRules {
		for _, keyword := range rule.keywords {
			if strings.Contains(hw, keyword) {
				return rule.category
			}
		}
	}
	return ""
}
