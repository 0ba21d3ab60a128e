package catalog

import (
	"fmt"
	"strings"

	"census-normalizer/internal/diagnostic"
)

// UnknownEntryError reports a (dataset, key) lookup that matched nothing in
// the loaded catalog. It is returned before any raw row is pulled.
type UnknownEntryError struct {
	// Dataset is the requested dataset name.
	Dataset string
	// Key is the requested edition year (zero for dataset-only lookups).
	Key int
	// DatasetMissing distinguishes an unknown dataset name from a known
	// dataset lacking the requested year.
	DatasetMissing bool
	// Suggestions lists close dataset names when DatasetMissing is set.
	Suggestions []string
}

func (e *UnknownEntryError) Error() string {
	if e.DatasetMissing {
		msg := fmt.Sprintf("unknown dataset %q", e.Dataset)
		if len(e.Suggestions) > 0 {
			msg += " (did you mean: " + strings.Join(e.Suggestions, ", ") + "?)"
		}

		return msg
	}

	return fmt.Sprintf("dataset %q has no entry for year %d", e.Dataset, e.Key)
}

// ConfigurationError reports a malformed or internally inconsistent catalog.
// It aggregates every finding of the load-time validation pass, each naming
// the offending entry and field.
type ConfigurationError struct {
	Diags *diagnostic.Diagnostics
}

func (e *ConfigurationError) Error() string {
	return "invalid catalog: " + e.Diags.Error().Error()
}

// Findings returns the individual validation findings as strings.
func (e *ConfigurationError) Findings() []string {
	out := make([]string, 0, len(e.Diags.Errors))
	for _, d := range e.Diags.Errors {
		out = append(out, d.String())
	}

	return out
}
