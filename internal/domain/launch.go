// Package domain holds the core launch-record model shared by the store,
// services, API, and UI. The table is loaded once at startup and never
// mutated afterwards; every view derives from it on each request.
package domain

import "sort"

// Outcome values as they appear in the source dataset.
const (
	OutcomeFailure = 0
	OutcomeSuccess = 1
)

// SiteAll is the sentinel site selection meaning "no site filter".
const SiteAll = "ALL"

// OutcomeLabel maps the binary outcome flag to its display label.
func OutcomeLabel(outcome int) string {
	if outcome == OutcomeSuccess {
		return "Success"
	}
	return "Failure"
}

// LaunchRecord is one row of the source table describing a single launch
// attempt. BoosterCategory is used only for chart coloring and may be empty.
type LaunchRecord struct {
	Site            string
	Outcome         int
	PayloadMass     float64
	BoosterCategory string
}

// Table is an ordered, immutable collection of launch records.
// All methods are read-only; Filter returns a new Table.
type Table struct {
	records []LaunchRecord
}

// NewTable builds a Table from the given records. The slice is copied so the
// caller cannot mutate the table afterwards.
func NewTable(records []LaunchRecord) Table {
	copied := make([]LaunchRecord, len(records))
	copy(copied, records)
	return Table{records: copied}
}

// Len returns the number of records in the table.
func (t Table) Len() int { return len(t.records) }

// Records returns a copy of the underlying records in load order.
func (t Table) Records() []LaunchRecord {
	copied := make([]LaunchRecord, len(t.records))
	copy(copied, t.records)
	return copied
}

// Filter returns a new Table holding the records matching pred, preserving
// order. The receiver is not modified.
func (t Table) Filter(pred func(LaunchRecord) bool) Table {
	var kept []LaunchRecord
	for i := range t.records {
		if pred(t.records[i]) {
			kept = append(kept, t.records[i])
		}
	}
	return Table{records: kept}
}

// CountBy groups records by the given key function and returns the count per
// key.
func (t Table) CountBy(key func(LaunchRecord) string) map[string]int {
	counts := make(map[string]int)
	for i := range t.records {
		counts[key(t.records[i])]++
	}
	return counts
}

// Sites returns the distinct launch sites in the table, sorted.
func (t Table) Sites() []string {
	seen := make(map[string]struct{})
	var sites []string
	for i := range t.records {
		if _, ok := seen[t.records[i].Site]; ok {
			continue
		}
		seen[t.records[i].Site] = struct{}{}
		sites = append(sites, t.records[i].Site)
	}
	sort.Strings(sites)
	return sites
}

// PayloadBounds returns the observed min and max payload mass. ok is false
// for an empty table.
func (t Table) PayloadBounds() (lo, hi float64, ok bool) {
	if len(t.records) == 0 {
		return 0, 0, false
	}
	lo, hi = t.records[0].PayloadMass, t.records[0].PayloadMass
	for i := range t.records[1:] {
		m := t.records[i+1].PayloadMass
		if m < lo {
			lo = m
		}
		if m > hi {
			hi = m
		}
	}
	return lo, hi, true
}

// PayloadRange is an inclusive [Lo, Hi] payload-mass selection.
type PayloadRange struct {
	Lo float64
	Hi float64
}

// Contains reports whether mass falls inside the inclusive range.
func (r PayloadRange) Contains(mass float64) bool {
	return mass >= r.Lo && mass <= r.Hi
}

// Clamp restricts the range to the given bounds and orders Lo <= Hi.
// This is the only validation the control panel applies to slider input.
func (r PayloadRange) Clamp(bounds PayloadRange) PayloadRange {
	clamped := r
	if clamped.Lo > clamped.Hi {
		clamped.Lo, clamped.Hi = clamped.Hi, clamped.Lo
	}
	if clamped.Lo < bounds.Lo {
		clamped.Lo = bounds.Lo
	}
	if clamped.Hi > bounds.Hi {
		clamped.Hi = bounds.Hi
	}
	return clamped
}
