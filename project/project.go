// Package project applies one catalog entry to raw rows: selecting raw
// field positions, naming and dropping columns, and expanding composite ID
// values into their administrative sub-codes.
package project

import (
	"fmt"

	"census-normalizer/catalog"
	"census-normalizer/idcode"
	"census-normalizer/record"
)

// SchemaMismatchError reports a raw row whose shape disagrees with the
// entry's declared columns.
type SchemaMismatchError struct {
	// Entry is the "dataset/key" reference of the schema entry.
	Entry string
	// Columns is the declared column count.
	Columns int
	// Fields is the raw row's field count after usecols filtering.
	Fields int
	// UseColsIndex is the out-of-range usecols index, or -1 when the
	// mismatch is a plain count disagreement.
	UseColsIndex int
}

func (e *SchemaMismatchError) Error() string {
	if e.UseColsIndex >= 0 {
		return fmt.Sprintf(
			"schema mismatch for entry %s: usecols index %d out of range for row with %d fields",
			e.Entry, e.UseColsIndex, e.Fields,
		)
	}

	return fmt.Sprintf(
		"schema mismatch for entry %s: row has %d fields, schema names %d columns",
		e.Entry, e.Fields, e.Columns,
	)
}

// Project turns one raw row into a named record per the entry:
//
//  1. If the entry has a usecols filter, only those raw positions are kept,
//     in their listed order.
//  2. The remaining fields are zipped positionally with the entry's
//     columns. Dropped tokens discard their field; the "ID" column of an
//     entry with an id spec is expanded into sub-field codes, with the
//     combined value retained under "ID" as well.
//
// Fails with *SchemaMismatchError when the field count (post usecols)
// disagrees with the declared columns, and with *idcode.MalformedIDError
// when the ID value is too short for the spec.
func Project(row []string, e *catalog.Entry) (record.Record, error) {
	fields := row

	if len(e.UseCols) > 0 {
		fields = make([]string, 0, len(e.UseCols))

		for _, idx := range e.UseCols {
			if idx >= len(row) {
				return nil, &SchemaMismatchError{
					Entry:        e.Ref(),
					Columns:      len(e.Columns),
					Fields:       len(row),
					UseColsIndex: idx,
				}
			}

			fields = append(fields, row[idx])
		}
	}

	if len(fields) != len(e.Columns) {
		return nil, &SchemaMismatchError{
			Entry:        e.Ref(),
			Columns:      len(e.Columns),
			Fields:       len(fields),
			UseColsIndex: -1,
		}
	}

	rec := make(record.Record, len(e.Columns)+len(e.ID))

	for i, name := range e.Columns {
		if catalog.IsDropColumn(name) {
			continue
		}

		rec[name] = fields[i]

		if name == catalog.IDColumn && e.HasIDSpec() {
			parts, err := idcode.Decompose(fields[i], e.ID)
			if err != nil {
				return nil, err
			}

			for sub, code := range parts {
				rec[sub] = code
			}
		}
	}

	return rec, nil
}
