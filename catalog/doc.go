// Package catalog loads and validates the declarative schema catalog that
// describes how each edition of a raw census or geographic-division file is
// shaped and how its composite ID strings decompose into administrative codes.
//
// The catalog is the authoritative, human-reviewed configuration; everything
// is validated eagerly at load time so that row processing never trips over a
// malformed entry.
//
// # Schema Overview
//
// The catalog file is a two-level YAML mapping, dataset name to edition year
// to entry definition:
//
//	geographical_divisions:
//	  1390:
//	    skiprows: 1
//	    columns: [ID, Province_Name, County_Name, District_Name,
//	              Rural_District_Name, City_Name, Region_Name]
//	    id:
//	      Province_ID: [0, 2]
//	      County_ID: [2, 4]
//	      District_ID: [4, 6]
//	      Rural_District_or_City_ID: [6, 10]
//	  1395:
//	    usecols: [0, 2, 3]
//	    reverse: true
//	    columns: [ID, Province_Name, _drop_1]
//	census_results:
//	  1390:
//	    columns: [ID, Region_Name, Household_Count, Population]
//
// Entry fields:
//
//   - columns (required): ordered column-name tokens as they appear in the
//     raw file after usecols filtering. Tokens containing "_drop_" (any
//     case) mark columns discarded during projection.
//   - skiprows: leading raw rows to discard before data begins (default 0).
//   - usecols: zero-based raw column indices to retain, in listed order
//     (default: all columns).
//   - reverse: emit output records in reverse row order (default false).
//   - id: mapping from hierarchical sub-field name to a half-open
//     two-integer character range into the value of the column named "ID".
//
// YAML anchors and aliases may share columns or id definitions between
// entries; decoding resolves them into independent values, so no entry ever
// observes another's data.
//
// # Validation
//
// Load-time validation enforces, per entry: non-empty columns, non-negative
// skiprows and usecols, usecols length equal to columns length when present,
// known sub-field names, monotone ([start, end), start < end) and pairwise
// non-overlapping id ranges, and at most one column literally named "ID"
// when an id spec is present. All violations across the whole catalog are
// collected and reported together as one *ConfigurationError.
package catalog
