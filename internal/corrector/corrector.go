// Package corrector fixes misspelled hardware descriptions in the device
// table. It applies an ordered list of literal find-and-replace rules: each
// rule queries the store for devices whose hardware description contains the
// search text (case-insensitively), rewrites every literal occurrence, and
// persists the hardware field only when the value actually changed. The pass
// is idempotent, so a failed run can simply be re-invoked.
package corrector

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/mohi-ict/inventoryhub/internal/stores/device"
)

// Rule is a single literal replacement: every occurrence of Old in a
// device's hardware description becomes New. Old must be non-empty; rules
// with an empty Old are skipped.
type Rule struct {
	Old string
	New string
}

// Change records one corrected device.
type Change struct {
	DeviceID uint
	Before   string
	After    string
}

// RuleResult reports the outcome of one rule over the full device set.
//
// Matched counts devices returned by the case-insensitive query; Changes
// holds only devices whose value actually changed under the case-sensitive
// replacement. The two can differ when the only occurrences of the search
// text differ in case from the rule (e.g. "SYSTEN BOARD" under
// Systen→System): such devices are matched but left untouched.
type RuleResult struct {
	Rule    Rule
	Matched int
	Changes []Change
}

// Report summarizes a full correction pass.
type Report struct {
	Results []RuleResult
}

// TotalChanges returns the number of devices changed across all rules
func (r *Report) TotalChanges() int {
	total := 0
	for _, res := range r.Results {
		total += len(res.Changes)
	}
	return total
}

// Corrector runs replacement rules against a device store
type Corrector struct {
	store device.Store
	out   io.Writer
}

// New creates a corrector that reports progress to out
func New(store device.Store, out io.Writer) *Corrector {
	return &Corrector{store: store, out: out}
}

// Run applies the rules in order and returns a report of what changed.
// A store failure aborts the pass and is returned to the caller; devices
// already corrected stay corrected (each update is its own persist).
func (c *Corrector) Run(ctx context.Context, rules []Rule) (*Report, error) {
	report := &Report{}

	for _, rule := range rules {
		if rule.Old == "" {
			fmt.Fprintf(c.out, "Skipping rule with empty search text (replacement %q)\n", rule.New)
			continue
		}

		result, err := c.applyRule(ctx, rule)
		if err != nil {
			return report, err
		}
		report.Results = append(report.Results, result)
	}

	fmt.Fprintln(c.out, "Hardware name correction complete.")
	return report, nil
}

// applyRule processes one rule over every matching device
func (c *Corrector) applyRule(ctx context.Context, rule Rule) (RuleResult, error) {
	result := RuleResult{Rule: rule}

	matched, err := c.store.FindByHardwareContains(ctx, rule.Old)
	if err != nil {
		return result, fmt.Errorf("failed to query devices for %q: %w", rule.Old, err)
	}
	result.Matched = len(matched)

	if len(matched) == 0 {
		fmt.Fprintf(c.out, "No devices found with hardware containing %q.\n", rule.Old)
		return result, nil
	}

	fmt.Fprintf(c.out, "Found %d devices with hardware containing %q.\n", len(matched), rule.Old)

	for _, d := range matched {
		original := d.HardwareLabel()
		if original == "" {
			continue
		}

		corrected := strings.ReplaceAll(original, rule.Old, rule.New)
		if corrected == original {
			// Matched case-insensitively but the literal replacement found
			// nothing to change. Left untouched.
			continue
		}

		if err := c.store.UpdateHardware(ctx, d.ID, corrected); err != nil {
			return result, fmt.Errorf("failed to update device %d: %w", d.ID, err)
		}

		fmt.Fprintf(c.out, "%s → %s\n", original, corrected)
		result.Changes = append(result.Changes, Change{
			DeviceID: d.ID,
			Before:   original,
			After:    corrected,
		})
	}

	return result, nil
}
