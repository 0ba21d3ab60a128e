package catalog

import (
	"fmt"
	"os"
	"slices"

	"gopkg.in/yaml.v3"

	"census-normalizer/internal/common"
	"census-normalizer/logger"
)

// Loader parses and validates schema catalogs.
type Loader struct {
	log logger.Logger
}

// LoaderOption configures a Loader.
type LoaderOption func(*Loader)

// WithLogger routes the loader's progress output to the given logger.
func WithLogger(log logger.Logger) LoaderOption {
	return func(l *Loader) { l.log = log }
}

// NewLoader returns a Loader. Progress logging is off unless WithLogger is
// given.
func NewLoader(opts ...LoaderOption) *Loader {
	l := &Loader{log: logger.Nop()}
	for _, opt := range opts {
		opt(l)
	}

	return l
}

// LoadFile loads, parses and validates a YAML catalog file from the given path.
func (l *Loader) LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file %s: %w", path, err)
	}

	return l.Parse(data)
}

// Parse parses YAML data into a validated, immutable Catalog.
// The whole catalog is validated before anything is returned; a malformed
// catalog yields a *ConfigurationError naming every offending entry and
// field. No raw data files are touched.
func (l *Loader) Parse(data []byte) (*Catalog, error) {
	var raw rawCatalog

	err := yaml.Unmarshal(data, &raw)
	if err != nil {
		return nil, fmt.Errorf("failed to parse catalog YAML: %w", err)
	}

	diags := validate(raw)
	for _, w := range diags.Warnings {
		l.log.Warn("catalog validation", "finding", w.String())
	}

	if diags.HasErrors() {
		return nil, &ConfigurationError{Diags: diags}
	}

	return l.build(raw), nil
}

// build constructs the immutable catalog from validated raw data. Columns,
// usecols and id specs are copied so entries produced from YAML anchors or
// shared raw structures never alias each other.
func (l *Loader) build(raw rawCatalog) *Catalog {
	cat := &Catalog{datasets: make(map[string]*Dataset, len(raw))}

	for name, rawEntries := range raw {
		ds := &Dataset{
			name:    name,
			keys:    common.SortedKeys(rawEntries),
			entries: make(map[int]*Entry, len(rawEntries)),
		}

		for key, re := range rawEntries {
			ds.entries[key] = &Entry{
				Dataset:  name,
				Key:      key,
				Columns:  slices.Clone(re.Columns),
				SkipRows: re.SkipRows,
				UseCols:  slices.Clone(re.UseCols),
				Reverse:  re.Reverse,
				ID:       toSpec(re.ID),
			}
		}

		cat.datasets[name] = ds

		l.log.Debug("loaded dataset schemas", "dataset", name, "entries", len(ds.entries))
	}

	l.log.Info("catalog loaded", "datasets", len(cat.datasets))

	return cat
}

// LoadFile loads a catalog file with a default Loader.
func LoadFile(path string) (*Catalog, error) {
	return NewLoader().LoadFile(path)
}

// Parse parses catalog YAML with a default Loader.
func Parse(data []byte) (*Catalog, error) {
	return NewLoader().Parse(data)
}
