// Package normalize composes catalog lookup, row projection, ID
// decomposition and the optional enrichment steps into the record stream
// consumed by persistence or aggregation layers.
package normalize

import (
	"fmt"

	"census-normalizer/catalog"
	"census-normalizer/clean"
	"census-normalizer/logger"
	"census-normalizer/project"
	"census-normalizer/record"
)

// Normalizer turns raw row sources into normalized record streams, directed
// by a loaded catalog. It is stateless across runs and safe for concurrent
// use; each Normalize call yields an independent stream.
type Normalizer struct {
	cat *catalog.Catalog
	log logger.Logger

	clean     bool
	derive    bool
	canonical bool
}

// Option configures a Normalizer.
type Option func(*Normalizer)

// WithCleaning enables per-field value cleaning (Persian text folding,
// digit extraction) on every projected record.
func WithCleaning() Option {
	return func(n *Normalizer) { n.clean = true }
}

// WithDerivedColumns enables derivation of the columns older editions lack:
// merged rural-district-or-city code and name, village name, recomposed
// long ID, and the labeled region type.
func WithDerivedColumns() Option {
	return func(n *Normalizer) { n.derive = true }
}

// WithCanonicalSchema reduces every output record to the dataset's fixed
// canonical column set, stamping the edition year and defaulting missing
// columns to "".
func WithCanonicalSchema() Option {
	return func(n *Normalizer) { n.canonical = true }
}

// WithLogger routes the normalizer's progress output to the given logger.
func WithLogger(log logger.Logger) Option {
	return func(n *Normalizer) { n.log = log }
}

// New returns a Normalizer over the given catalog. With no options it emits
// exactly the projected records; enrichment is opt-in.
func New(cat *catalog.Catalog, opts ...Option) *Normalizer {
	n := &Normalizer{cat: cat, log: logger.Nop()}
	for _, opt := range opts {
		opt(n)
	}

	return n
}

// Normalize starts a normalization run for one (dataset, key) edition over
// the given raw row source. The entry lookup happens before any row is
// pulled; an absent entry fails with *catalog.UnknownEntryError.
//
// The returned stream is lazy and single-use. Restart a run by calling
// Normalize again with a fresh source.
func (n *Normalizer) Normalize(dataset string, key int, src record.Source) (*Stream, error) {
	entry, err := n.cat.Entry(dataset, key)
	if err != nil {
		return nil, err
	}

	if entry.Reverse {
		n.log.Debug("entry reverses row order; run buffers the whole file",
			"entry", entry.Ref())
	}

	return &Stream{n: n, entry: entry, inner: project.NewStream(src, entry)}, nil
}

// Stream is a lazy, finite sequence of normalized records. Any error is
// fatal to the run: a malformed row aborts the stream rather than being
// skipped, since silently mis-mapped administrative codes are worse than a
// halted run.
type Stream struct {
	n     *Normalizer
	entry *catalog.Entry
	inner *project.Stream

	cur record.Record
	err error
}

// Next advances to the next normalized record. It returns false when the
// source is exhausted or the run failed; check Err afterwards.
func (s *Stream) Next() bool {
	if s.err != nil {
		return false
	}

	if !s.inner.Next() {
		if err := s.inner.Err(); err != nil {
			s.err = &RowError{
				Dataset: s.entry.Dataset,
				Key:     s.entry.Key,
				Row:     s.inner.Row(),
				Err:     err,
			}
			s.n.log.Error("normalization aborted",
				"entry", s.entry.Ref(), "row", s.inner.Row(), "err", err)
		}

		return false
	}

	rec := s.inner.Record()

	if s.n.clean {
		clean.Apply(rec)
	}

	if s.n.derive {
		deriveColumns(rec)
	}

	if s.n.canonical {
		rec = canonicalize(rec, s.entry.Dataset, s.entry.Key)
	}

	s.cur = rec

	return true
}

// Record returns the record produced by the last successful Next.
func (s *Stream) Record() record.Record {
	return s.cur
}

// Err returns the error that aborted the run, if any.
func (s *Stream) Err() error {
	return s.err
}

// RowError wraps a per-row failure with the run's context: which dataset,
// edition and post-skip row index went wrong, so the faulty catalog entry
// or source file can be pinpointed.
type RowError struct {
	Dataset string
	Key     int
	Row     int
	Err     error
}

func (e *RowError) Error() string {
	return fmt.Sprintf("normalize %s/%d: row %d: %v", e.Dataset, e.Key, e.Row, e.Err)
}

func (e *RowError) Unwrap() error {
	return e.Err
}
