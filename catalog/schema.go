package catalog

import (
	"fmt"
	"strings"

	"census-normalizer/idcode"
	"census-normalizer/internal/common"
	"census-normalizer/internal/suggest"
)

// Well-known dataset names. The catalog itself accepts any dataset name;
// these are the two the system ships schemas for.
const (
	GeographicalDivisions = "geographical_divisions"
	CensusResults         = "census_results"
)

// IDColumn is the reserved column name holding the composite identifier an
// entry's id spec applies to.
const IDColumn = "ID"

// dropMarker flags a column token whose raw value is discarded during
// projection.
const dropMarker = "_drop_"

// IsDropColumn reports whether the column token marks a dropped column.
// The marker is matched case-insensitively anywhere in the token, so
// "_drop_1" and "_DROP_tail" both qualify.
func IsDropColumn(name string) bool {
	return strings.Contains(strings.ToLower(name), dropMarker)
}

// Entry is the validated, immutable schema definition for one
// (dataset, year) edition. Loaded entries are shared read-only across
// normalization runs; callers must not mutate them.
type Entry struct {
	// Dataset is the owning dataset name.
	Dataset string
	// Key is the edition year.
	Key int

	// Columns are the ordered column-name tokens of the raw file after
	// usecols filtering. Dropped columns are still listed, under a token
	// matching IsDropColumn.
	Columns []string
	// SkipRows is the count of leading raw rows discarded before data.
	SkipRows int
	// UseCols lists the zero-based raw field positions to retain, in
	// order. Nil means all positions.
	UseCols []int
	// Reverse indicates output records are emitted in reverse row order.
	Reverse bool
	// ID is the fixed-width decomposition spec for the IDColumn value,
	// or nil when this edition carries pre-split code columns.
	ID idcode.Spec
}

// Ref returns the "dataset/key" reference used in diagnostics and errors.
func (e *Entry) Ref() string {
	return fmt.Sprintf("%s/%d", e.Dataset, e.Key)
}

// HasIDSpec reports whether the entry decomposes a composite ID column.
func (e *Entry) HasIDSpec() bool {
	return len(e.ID) > 0
}

// KeptColumns returns the output column names, i.e. Columns minus the
// dropped tokens, preserving order.
func (e *Entry) KeptColumns() []string {
	kept := make([]string, 0, len(e.Columns))

	for _, c := range e.Columns {
		if !IsDropColumn(c) {
			kept = append(kept, c)
		}
	}

	return kept
}

// Dataset is the ordered, immutable set of entries of one dataset.
type Dataset struct {
	name    string
	keys    []int // ascending
	entries map[int]*Entry
}

// Name returns the dataset name.
func (d *Dataset) Name() string { return d.name }

// Years returns the edition years in ascending order.
func (d *Dataset) Years() []int {
	out := make([]int, len(d.keys))
	copy(out, d.keys)

	return out
}

// Entry returns the entry for exactly the given year.
func (d *Dataset) Entry(key int) (*Entry, error) {
	e, ok := d.entries[key]
	if !ok {
		return nil, &UnknownEntryError{Dataset: d.name, Key: key}
	}

	return e, nil
}

// ResolveVersion returns the entry governing the given year: the entry with
// the greatest key not exceeding year. Editions keep their schema until a
// later edition redefines it.
func (d *Dataset) ResolveVersion(year int) (*Entry, error) {
	last := 0
	for _, k := range d.keys {
		if k <= year {
			last = k
		}
	}

	if last == 0 {
		return nil, &UnknownEntryError{Dataset: d.name, Key: year}
	}

	return d.entries[last], nil
}

// NextYear returns the edition year immediately after year, if any.
func (d *Dataset) NextYear(year int) (int, bool) {
	for i, k := range d.keys[:max(len(d.keys)-1, 0)] {
		if k == year {
			return d.keys[i+1], true
		}
	}

	return 0, false
}

// PreviousYear returns the edition year immediately before year, if any.
func (d *Dataset) PreviousYear(year int) (int, bool) {
	for i, k := range d.keys {
		if k == year && i > 0 {
			return d.keys[i-1], true
		}
	}

	return 0, false
}

// NearestYear returns the edition year closest to year. Ties between an
// earlier and a later edition go to the later one when preferLater is set.
func (d *Dataset) NearestYear(year int, preferLater bool) (int, bool) {
	best, ok := common.First(d.keys)
	if !ok {
		return 0, false
	}
	for _, k := range d.keys[1:] {
		dist, bestDist := abs(k-year), abs(best-year)

		switch {
		case dist < bestDist:
			best = k
		case dist == bestDist && preferLater && k > best:
			best = k
		}
	}

	return best, true
}

func abs(n int) int {
	if n < 0 {
		return -n
	}

	return n
}

// Catalog is the loaded, immutable schema catalog: one Dataset per name.
type Catalog struct {
	datasets map[string]*Dataset
}

// DatasetNames returns the dataset names in ascending order.
func (c *Catalog) DatasetNames() []string {
	return common.SortedKeys(c.datasets)
}

// Dataset returns the named dataset.
func (c *Catalog) Dataset(name string) (*Dataset, error) {
	d, ok := c.datasets[name]
	if !ok {
		return nil, &UnknownEntryError{
			Dataset:        name,
			DatasetMissing: true,
			Suggestions:    suggest.Closest(name, c.DatasetNames()),
		}
	}

	return d, nil
}

// Entry returns the entry for the given dataset and exact year.
func (c *Catalog) Entry(dataset string, key int) (*Entry, error) {
	d, err := c.Dataset(dataset)
	if err != nil {
		return nil, err
	}

	return d.Entry(key)
}
