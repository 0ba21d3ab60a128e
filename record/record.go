// Package record defines the normalized output record and the raw row
// source consumed by the projection and normalization pipelines.
package record

// Record is one normalized row: a mapping from output column name to its
// string value. Values stay strings end to end; numeric interpretation is
// left to downstream consumers.
type Record map[string]string

// Clone returns an independent copy of the record.
func (r Record) Clone() Record {
	out := make(Record, len(r))
	for k, v := range r {
		out[k] = v
	}

	return out
}

// Has reports whether the record contains the named column.
func (r Record) Has(column string) bool {
	_, ok := r[column]
	return ok
}
