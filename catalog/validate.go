package catalog

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"

	"census-normalizer/idcode"
	"census-normalizer/internal/common"
	"census-normalizer/internal/diagnostic"
	"census-normalizer/internal/suggest"
)

// entryValidator enforces the tag-level constraints declared on rawEntry.
var entryValidator = validator.New()

// validate runs the full load-time validation pass over the raw catalog.
// All entries are checked so one load reports every problem at once.
func validate(raw rawCatalog) *diagnostic.Diagnostics {
	res := &diagnostic.Diagnostics{}

	for _, dataset := range common.SortedKeys(raw) {
		for _, key := range common.SortedKeys(raw[dataset]) {
			entry := raw[dataset][key]
			validateEntry(res, fmt.Sprintf("%s/%d", dataset, key), &entry)
		}
	}

	return res
}

// validateEntry checks one entry's structural invariants.
func validateEntry(res *diagnostic.Diagnostics, ref string, e *rawEntry) {
	validateTags(res, ref, e)
	validateUseCols(res, ref, e)
	validateIDSpec(res, ref, e)
}

// validateTags maps go-playground/validator findings onto diagnostics.
func validateTags(res *diagnostic.Diagnostics, ref string, e *rawEntry) {
	err := entryValidator.Struct(e)
	if err == nil {
		return
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		res.AddError("invalid_entry", err.Error(), ref, "")
		return
	}

	for _, ve := range verrs {
		res.AddError(
			"invalid_field",
			fmt.Sprintf("field failed %q constraint", ve.Tag()),
			ref,
			ve.Field(),
		)
	}
}

// validateUseCols checks that a usecols filter agrees with the declared
// column count: projection zips them positionally.
func validateUseCols(res *diagnostic.Diagnostics, ref string, e *rawEntry) {
	if common.IsEmpty(e.UseCols) {
		return
	}

	if len(e.UseCols) != len(e.Columns) {
		res.AddError(
			"usecols_mismatch",
			fmt.Sprintf("usecols selects %d columns but %d are named", len(e.UseCols), len(e.Columns)),
			ref,
			"usecols",
		)
	}
}

// validateIDSpec checks sub-field names, range bounds, pairwise overlap and
// the at-most-one-ID-column rule.
func validateIDSpec(res *diagnostic.Diagnostics, ref string, e *rawEntry) {
	if len(e.ID) == 0 {
		return
	}

	names := common.SortedKeys(e.ID)

	for _, name := range names {
		if !idcode.IsSubField(name) {
			res.Errors = append(res.Errors, diagnostic.Diagnostic{
				Severity:    diagnostic.Error,
				Code:        "unknown_subfield",
				Message:     fmt.Sprintf("unknown id sub-field %q", name),
				Entry:       ref,
				Field:       "id",
				Suggestions: suggest.Closest(name, idcode.SubFields),
			})
		}

		r := idcode.Range(e.ID[name])
		if !r.Valid() {
			res.AddError(
				"invalid_range",
				fmt.Sprintf("sub-field %s has non-monotonic range %s", name, r),
				ref,
				"id",
			)
		}
	}

	// Each character of the ID string belongs to at most one sub-field.
	for i, a := range names {
		for _, b := range names[i+1:] {
			ra, rb := idcode.Range(e.ID[a]), idcode.Range(e.ID[b])
			if ra.Valid() && rb.Valid() && ra.Overlaps(rb) {
				res.AddError(
					"overlapping_ranges",
					fmt.Sprintf("sub-fields %s %s and %s %s overlap", a, ra, b, rb),
					ref,
					"id",
				)
			}
		}
	}

	idColumns := 0
	for _, c := range e.Columns {
		if c == IDColumn {
			idColumns++
		}
	}

	switch {
	case idColumns > 1:
		res.AddError(
			"duplicate_id_column",
			fmt.Sprintf("%d columns named %q; at most one is allowed with an id spec", idColumns, IDColumn),
			ref,
			"columns",
		)
	case idColumns == 0:
		res.AddWarning(
			"unused_id_spec",
			fmt.Sprintf("entry declares an id spec but no column named %q", IDColumn),
			ref,
			"columns",
		)
	}
}
