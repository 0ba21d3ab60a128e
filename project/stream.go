package project

import (
	"census-normalizer/catalog"
	"census-normalizer/record"
)

// Stream lazily projects a raw row source through one catalog entry. The
// first entry.SkipRows raw rows are discarded unconditionally; every
// remaining row is projected on demand. For entries with reverse set, the
// whole projected sequence is buffered up front and emitted backwards,
// so memory use is proportional to that file.
//
// A Stream is single-use: once exhausted or failed it stays that way.
// Ceasing to call Next is always safe.
type Stream struct {
	src   record.Source
	entry *catalog.Entry

	skipped  bool
	buffered []record.Record
	emitted  int

	cur  record.Record
	row  int
	err  error
	done bool
}

// NewStream returns a Stream over src directed by the given entry.
func NewStream(src record.Source, entry *catalog.Entry) *Stream {
	return &Stream{src: src, entry: entry, row: -1}
}

// Next advances to the next projected record. It returns false when the
// source is exhausted or an error occurred; check Err afterwards.
func (s *Stream) Next() bool {
	if s.done || s.err != nil {
		return false
	}

	if !s.skipped {
		s.skip()
	}

	if s.entry.Reverse {
		return s.nextReversed()
	}

	raw, ok := s.src.Next()
	if !ok {
		s.done = true
		return false
	}

	s.row++

	rec, err := Project(raw, s.entry)
	if err != nil {
		s.err = err
		return false
	}

	s.cur = rec

	return true
}

// Record returns the record produced by the last successful Next.
func (s *Stream) Record() record.Record {
	return s.cur
}

// Row returns the zero-based post-skip index of the raw row that produced
// the current record, or of the row that failed. Returns -1 before the
// first row is touched.
func (s *Stream) Row() int {
	return s.row
}

// Err returns the error that stopped the stream, if any.
func (s *Stream) Err() error {
	return s.err
}

// skip discards the leading skiprows raw rows, regardless of content.
func (s *Stream) skip() {
	for i := 0; i < s.entry.SkipRows; i++ {
		if _, ok := s.src.Next(); !ok {
			break
		}
	}

	s.skipped = true
}

// nextReversed materializes the whole projected sequence on first use, then
// walks it back to front.
func (s *Stream) nextReversed() bool {
	if s.buffered == nil {
		if !s.fillBuffer() {
			return false
		}
	}

	if s.emitted >= len(s.buffered) {
		s.done = true
		return false
	}

	s.row = len(s.buffered) - 1 - s.emitted
	s.cur = s.buffered[s.row]
	s.emitted++

	return true
}

// fillBuffer projects every remaining raw row. A projection failure aborts
// the stream before anything is emitted.
func (s *Stream) fillBuffer() bool {
	buf := []record.Record{}

	for {
		raw, ok := s.src.Next()
		if !ok {
			break
		}

		s.row = len(buf)

		rec, err := Project(raw, s.entry)
		if err != nil {
			s.err = err
			return false
		}

		buf = append(buf, rec)
	}

	s.buffered = buf

	return true
}
