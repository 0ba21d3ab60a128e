// Package idcode decomposes composite administrative-unit identifiers into
// their hierarchical sub-field codes by fixed character offsets, and composes
// them back.
//
// Per-edition ID encodings vary in both field count and field width, so the
// offsets are data supplied by the schema catalog, not a fixed parser.
package idcode

import (
	"fmt"
	"sort"
	"strings"
)

// Hierarchical sub-field column names, outermost first.
const (
	ProvinceID            = "Province_ID"
	CountyID              = "County_ID"
	DistrictID            = "District_ID"
	RuralDistrictOrCityID = "Rural_District_or_City_ID"
	VillageID             = "Village_ID"
)

// SubFields lists the valid sub-field names in hierarchical order.
var SubFields = []string{
	ProvinceID,
	CountyID,
	DistrictID,
	RuralDistrictOrCityID,
	VillageID,
}

// IsSubField reports whether name is a known hierarchical sub-field name.
func IsSubField(name string) bool {
	for _, f := range SubFields {
		if f == name {
			return true
		}
	}

	return false
}

// Range is a half-open [Start, End) character offset pair into a composite
// ID string.
type Range struct {
	Start int
	End   int
}

// Valid reports whether the range bounds are monotonically sensible.
func (r Range) Valid() bool {
	return r.Start >= 0 && r.Start < r.End
}

// Len returns the number of characters the range covers.
func (r Range) Len() int {
	return r.End - r.Start
}

// Overlaps reports whether two ranges share at least one character index.
func (r Range) Overlaps(o Range) bool {
	return r.Start < o.End && o.Start < r.End
}

func (r Range) String() string {
	return fmt.Sprintf("[%d, %d)", r.Start, r.End)
}

// Spec maps sub-field names to the character ranges that hold their codes.
// A Spec is validated at catalog-load time; Decompose assumes well-formed
// ranges and only checks them against the concrete ID string.
type Spec map[string]Range

// FieldsByOffset returns the spec's sub-field names ordered by range start.
func (s Spec) FieldsByOffset() []string {
	fields := make([]string, 0, len(s))
	for name := range s {
		fields = append(fields, name)
	}

	sort.Slice(fields, func(i, j int) bool {
		return s[fields[i]].Start < s[fields[j]].Start
	})

	return fields
}

// MaxEnd returns the largest end offset in the spec, i.e. the minimum ID
// string length the spec can be applied to.
func (s Spec) MaxEnd() int {
	end := 0
	for _, r := range s {
		if r.End > end {
			end = r.End
		}
	}

	return end
}

// MalformedIDError reports an ID string too short for a sub-field range.
type MalformedIDError struct {
	// Field is the sub-field whose range did not fit.
	Field string
	// Raw is the offending ID string.
	Raw string
	// Range is the half-open offset range that was requested.
	Range Range
}

func (e *MalformedIDError) Error() string {
	return fmt.Sprintf(
		"malformed ID %q: sub-field %s needs range %s but string has length %d",
		e.Raw, e.Field, e.Range, len(e.Raw),
	)
}

// Decompose extracts each sub-field's code from id per the spec.
// It is a pure function: deterministic, no side effects. Fails with
// *MalformedIDError if any range reaches past the end of id.
func Decompose(id string, spec Spec) (map[string]string, error) {
	out := make(map[string]string, len(spec))

	for _, name := range spec.FieldsByOffset() {
		r := spec[name]
		if r.End > len(id) {
			return nil, &MalformedIDError{Field: name, Raw: id, Range: r}
		}

		out[name] = id[r.Start:r.End]
	}

	return out, nil
}

// Compose concatenates the hierarchical sub-field codes present in parts
// back into a long ID, outermost sub-field first. Missing sub-fields
// contribute nothing.
func Compose(parts map[string]string) string {
	var b strings.Builder

	for _, name := range SubFields {
		b.WriteString(parts[name])
	}

	return b.String()
}
