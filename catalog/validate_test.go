package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// parseExpectingConfigError parses YAML that must fail validation and
// returns the configuration error.
func parseExpectingConfigError(t *testing.T, yaml string) *ConfigurationError {
	t.Helper()

	_, err := Parse([]byte(yaml))
	require.Error(t, err)

	var cfgErr *ConfigurationError
	require.ErrorAs(t, err, &cfgErr)

	return cfgErr
}

func TestValidateOverlappingRanges(t *testing.T) {
	cfgErr := parseExpectingConfigError(t, `
geographical_divisions:
  1390:
    columns: [ID]
    id:
      Province_ID: [0, 3]
      County_ID: [2, 4]
`)

	require.Len(t, cfgErr.Diags.Errors, 1)
	d := cfgErr.Diags.Errors[0]
	assert.Equal(t, "overlapping_ranges", d.Code)
	assert.Equal(t, "geographical_divisions/1390", d.Entry)
	assert.Equal(t, "id", d.Field)
	assert.Contains(t, cfgErr.Error(), "overlap")
}

func TestValidateNonMonotonicRange(t *testing.T) {
	cfgErr := parseExpectingConfigError(t, `
census_results:
  1375:
    columns: [ID]
    id:
      Province_ID: [2, 2]
`)

	require.Len(t, cfgErr.Diags.Errors, 1)
	assert.Equal(t, "invalid_range", cfgErr.Diags.Errors[0].Code)
	assert.Equal(t, "census_results/1375", cfgErr.Diags.Errors[0].Entry)
}

func TestValidateUnknownSubField(t *testing.T) {
	cfgErr := parseExpectingConfigError(t, `
census_results:
  1375:
    columns: [ID]
    id:
      Provimce_ID: [0, 2]
`)

	require.Len(t, cfgErr.Diags.Errors, 1)
	d := cfgErr.Diags.Errors[0]
	assert.Equal(t, "unknown_subfield", d.Code)
	assert.Contains(t, d.Suggestions, "Province_ID")
}

func TestValidateNegativeSkipRows(t *testing.T) {
	cfgErr := parseExpectingConfigError(t, `
census_results:
  1375:
    skiprows: -1
    columns: [ID]
`)

	require.Len(t, cfgErr.Diags.Errors, 1)
	assert.Equal(t, "invalid_field", cfgErr.Diags.Errors[0].Code)
	assert.Equal(t, "SkipRows", cfgErr.Diags.Errors[0].Field)
}

func TestValidateMissingColumns(t *testing.T) {
	cfgErr := parseExpectingConfigError(t, `
census_results:
  1375:
    skiprows: 2
`)

	require.Len(t, cfgErr.Diags.Errors, 1)
	assert.Equal(t, "invalid_field", cfgErr.Diags.Errors[0].Code)
	assert.Equal(t, "Columns", cfgErr.Diags.Errors[0].Field)
}

func TestValidateUseColsMismatch(t *testing.T) {
	cfgErr := parseExpectingConfigError(t, `
census_results:
  1375:
    usecols: [0, 1, 3]
    columns: [ID, Population]
`)

	require.Len(t, cfgErr.Diags.Errors, 1)
	d := cfgErr.Diags.Errors[0]
	assert.Equal(t, "usecols_mismatch", d.Code)
	assert.Equal(t, "usecols", d.Field)
}

func TestValidateDuplicateIDColumn(t *testing.T) {
	cfgErr := parseExpectingConfigError(t, `
census_results:
  1375:
    columns: [ID, ID]
    id:
      Province_ID: [0, 2]
`)

	require.Len(t, cfgErr.Diags.Errors, 1)
	assert.Equal(t, "duplicate_id_column", cfgErr.Diags.Errors[0].Code)
}

func TestValidateUnusedIDSpecIsOnlyAWarning(t *testing.T) {
	cat, err := Parse([]byte(`
census_results:
  1375:
    columns: [Province_Name]
    id:
      Province_ID: [0, 2]
`))
	require.NoError(t, err)
	require.NotNil(t, cat)
}

func TestValidateCollectsAllEntries(t *testing.T) {
	// One pass reports findings from every broken entry, not just the first.
	cfgErr := parseExpectingConfigError(t, `
geographical_divisions:
  1390:
    columns: [ID]
    id:
      Province_ID: [3, 1]
census_results:
  1375:
    skiprows: -2
    columns: [ID]
`)

	require.Len(t, cfgErr.Diags.Errors, 2)
	assert.Equal(t, "census_results/1375", cfgErr.Diags.Errors[0].Entry)
	assert.Equal(t, "geographical_divisions/1390", cfgErr.Diags.Errors[1].Entry)
	assert.Len(t, cfgErr.Findings(), 2)
}
