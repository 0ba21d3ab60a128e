package normalize

import (
	"slices"
	"strconv"

	"census-normalizer/catalog"
	"census-normalizer/record"
)

// columnYear stamps the edition year onto every canonical record.
const columnYear = "Year"

// geographicalDivisionColumns is the canonical output schema of the
// geographic-divisions dataset. Editions lacking a column emit it empty, so
// every edition yields the same column set.
var geographicalDivisionColumns = []string{
	"Year",
	"ID",
	"Province_ID",
	"Province_Name",
	"County_ID",
	"County_Name",
	"District_ID",
	"District_Name",
	"Rural_District_or_City_ID",
	"Rural_District_or_City_Name",
	"Village_ID",
	"Village_Name",
	"Region_Type",
}

// censusResultColumns extends the divisions schema with the census figures.
var censusResultColumns = append(
	slices.Clone(geographicalDivisionColumns),
	"Household_Count",
	"Population",
)

var canonicalColumns = map[string][]string{
	catalog.GeographicalDivisions: geographicalDivisionColumns,
	catalog.CensusResults:         censusResultColumns,
}

// CanonicalColumns returns the fixed output column set of a dataset, or nil
// for datasets without one.
func CanonicalColumns(dataset string) []string {
	return slices.Clone(canonicalColumns[dataset])
}

// canonicalize reduces a record to exactly the dataset's canonical columns,
// defaulting missing ones to "" and stamping the edition year. Records of
// datasets without a canonical schema pass through unchanged.
func canonicalize(rec record.Record, dataset string, key int) record.Record {
	cols, ok := canonicalColumns[dataset]
	if !ok {
		return rec
	}

	out := make(record.Record, len(cols))
	for _, c := range cols {
		out[c] = rec[c]
	}

	out[columnYear] = strconv.Itoa(key)

	return out
}
