package record

// Source is a finite, ordered, lazy sequence of raw rows. Each row is a
// fixed-length slice of raw field values, one per physical column, already
// past any file-format or encoding concerns.
//
// Next returns the next row and true, or nil and false once the sequence is
// exhausted. Callers may stop pulling at any point.
type Source interface {
	Next() (row []string, ok bool)
}

// SliceSource adapts an in-memory [][]string to the Source interface.
// It is the usual source in tests and for pre-read files.
type SliceSource struct {
	rows [][]string
	pos  int
}

// NewSliceSource returns a Source yielding the given rows in order.
// The rows are not copied; callers must not mutate them while reading.
func NewSliceSource(rows [][]string) *SliceSource {
	return &SliceSource{rows: rows}
}

func (s *SliceSource) Next() ([]string, bool) {
	if s.pos >= len(s.rows) {
		return nil, false
	}

	row := s.rows[s.pos]
	s.pos++

	return row, true
}
