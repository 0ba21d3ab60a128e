package catalog

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"census-normalizer/idcode"
)

// rawCatalog mirrors the on-disk YAML shape before validation:
// dataset name -> edition year -> entry definition.
type rawCatalog map[string]map[int]rawEntry

// rawEntry is the YAML form of one schema entry. Tag validation covers the
// simple field constraints; the structural invariants (usecols arity, range
// overlap, sub-field names) are handled in validate.go where they can be
// attributed to entry and field.
type rawEntry struct {
	Columns  []string             `yaml:"columns"            validate:"required,min=1,dive,required"`
	ID       map[string]yamlRange `yaml:"id,omitempty"`
	SkipRows int                  `yaml:"skiprows,omitempty" validate:"gte=0"`
	UseCols  []int                `yaml:"usecols,omitempty"  validate:"omitempty,dive,gte=0"`
	Reverse  bool                 `yaml:"reverse,omitempty"`
}

// yamlRange decodes the two-integer half-open [start, end) offset pair.
// Bound monotonicity is deliberately not checked here: validate.go reports
// it with full entry context instead of a bare YAML decode error.
type yamlRange idcode.Range

// UnmarshalYAML implements custom YAML unmarshaling for yamlRange.
// Accepts exactly a sequence of two integers.
func (r *yamlRange) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.SequenceNode {
		return fmt.Errorf("id range must be a [start, end) sequence, got %v", node.Kind)
	}

	var pair []int

	err := node.Decode(&pair)
	if err != nil {
		return err
	}

	if len(pair) != 2 {
		return fmt.Errorf("id range must hold exactly two offsets, got %d", len(pair))
	}

	r.Start, r.End = pair[0], pair[1]

	return nil
}

// MarshalYAML implements custom YAML marshaling for yamlRange.
func (r yamlRange) MarshalYAML() (any, error) {
	return []int{r.Start, r.End}, nil
}

// toSpec converts the YAML id mapping into an idcode.Spec value copy.
func toSpec(raw map[string]yamlRange) idcode.Spec {
	if len(raw) == 0 {
		return nil
	}

	spec := make(idcode.Spec, len(raw))
	for name, r := range raw {
		spec[name] = idcode.Range(r)
	}

	return spec
}
