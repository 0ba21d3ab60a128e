package normalize_test

import (
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"census-normalizer/catalog"
	"census-normalizer/idcode"
	"census-normalizer/normalize"
	"census-normalizer/project"
	"census-normalizer/record"
)

const testCatalog = `
geographical_divisions:
  1390:
    skiprows: 1
    columns: [ID, Province_Name, County_Name]
    id:
      Province_ID: [0, 2]
      County_ID: [2, 4]
  1395:
    reverse: true
    columns: [ID, Province_Name, County_Name]
    id:
      Province_ID: [0, 2]
      County_ID: [2, 4]
census_results:
  1385:
    columns: [ID, Region_Name, Household_Count, Population]
    id:
      Province_ID: [0, 2]
      County_ID: [2, 4]
`

func loadCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()

	cat, err := catalog.Parse([]byte(testCatalog))
	require.NoError(t, err)

	return cat
}

// collect drains a stream, requiring it to finish cleanly.
func collect(t *testing.T, s *normalize.Stream) []record.Record {
	t.Helper()

	var out []record.Record
	for s.Next() {
		out = append(out, s.Record())
	}

	require.NoError(t, s.Err())

	return out
}

func TestNormalize(t *testing.T) {
	n := normalize.New(loadCatalog(t))

	src := record.NewSliceSource([][]string{
		{"header", "x", "y"},
		{"0102", "Alpha", "Beta"},
		{"0203", "Gamma", "Delta"},
	})

	s, err := n.Normalize(catalog.GeographicalDivisions, 1390, src)
	require.NoError(t, err)

	recs := collect(t, s)
	require.Len(t, recs, 2)

	assert.Equal(t, record.Record{
		"ID":            "0102",
		"Province_Name": "Alpha",
		"County_Name":   "Beta",
		"Province_ID":   "01",
		"County_ID":     "02",
	}, recs[0])
	assert.Equal(t, "0203", recs[1]["ID"])
}

func TestNormalizeUnknownEntry(t *testing.T) {
	n := normalize.New(loadCatalog(t))

	_, err := n.Normalize(catalog.GeographicalDivisions, 1400, record.NewSliceSource(nil))
	require.Error(t, err)

	var unknown *catalog.UnknownEntryError
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, 1400, unknown.Key)

	_, err = n.Normalize("censsus_results", 1385, record.NewSliceSource(nil))
	require.ErrorAs(t, err, &unknown)
	assert.True(t, unknown.DatasetMissing)
}

func TestNormalizeReverse(t *testing.T) {
	n := normalize.New(loadCatalog(t))

	src := record.NewSliceSource([][]string{
		{"0101", "A", "B"},
		{"0202", "C", "D"},
		{"0303", "E", "F"},
	})

	s, err := n.Normalize(catalog.GeographicalDivisions, 1395, src)
	require.NoError(t, err)

	recs := collect(t, s)
	require.Len(t, recs, 3)
	assert.Equal(t, "0303", recs[0]["ID"])
	assert.Equal(t, "0202", recs[1]["ID"])
	assert.Equal(t, "0101", recs[2]["ID"])
}

func TestNormalizeRowErrorContext(t *testing.T) {
	n := normalize.New(loadCatalog(t))

	src := record.NewSliceSource([][]string{
		{"header", "x", "y"},
		{"0102", "Alpha", "Beta"},
		{"0102", "Alpha"}, // short row
	})

	s, err := n.Normalize(catalog.GeographicalDivisions, 1390, src)
	require.NoError(t, err)

	require.True(t, s.Next())
	assert.False(t, s.Next())

	err = s.Err()
	require.Error(t, err)

	var rowErr *normalize.RowError
	require.ErrorAs(t, err, &rowErr)
	assert.Equal(t, catalog.GeographicalDivisions, rowErr.Dataset)
	assert.Equal(t, 1390, rowErr.Key)
	assert.Equal(t, 1, rowErr.Row)

	var mismatch *project.SchemaMismatchError
	assert.ErrorAs(t, err, &mismatch)

	assert.Contains(t, err.Error(), "geographical_divisions/1390")
	assert.Contains(t, err.Error(), "row 1")
}

func TestNormalizeMalformedIDAborts(t *testing.T) {
	n := normalize.New(loadCatalog(t))

	src := record.NewSliceSource([][]string{
		{"0", "Short", "1", "2"},
	})

	s, err := n.Normalize(catalog.CensusResults, 1385, src)
	require.NoError(t, err)

	assert.False(t, s.Next())

	var malformed *idcode.MalformedIDError
	require.ErrorAs(t, s.Err(), &malformed)
	assert.Equal(t, "0", malformed.Raw)
}

func TestNormalizeRestartable(t *testing.T) {
	n := normalize.New(loadCatalog(t))
	rows := [][]string{{"0102", "A", "1", "2"}}

	for i := 0; i < 2; i++ {
		s, err := n.Normalize(catalog.CensusResults, 1385, record.NewSliceSource(rows))
		require.NoError(t, err)

		recs := collect(t, s)
		require.Len(t, recs, 1)
		assert.Equal(t, "0102", recs[0]["ID"])
	}
}

func TestNormalizeWithCleaning(t *testing.T) {
	n := normalize.New(loadCatalog(t), normalize.WithCleaning())

	src := record.NewSliceSource([][]string{
		{"0102", "دهكده ", "1,200", "3٫456"},
	})

	s, err := n.Normalize(catalog.CensusResults, 1385, src)
	require.NoError(t, err)

	recs := collect(t, s)
	require.Len(t, recs, 1)

	assert.Equal(t, "دهکده", recs[0]["Region_Name"])
	assert.Equal(t, "1", recs[0]["Household_Count"])
	assert.Equal(t, "3", recs[0]["Population"])
}

func TestNormalizeCanonicalSchema(t *testing.T) {
	src := record.NewSliceSource([][]string{
		{"0102", "Fars", "Shiraz", "120", "450"},
	})

	// A catalog entry naming only a few columns still yields the full
	// canonical census schema.
	cat, err := catalog.Parse([]byte(`
census_results:
  1355:
    columns: [ID, Province_Name, County_Name, Household_Count, Population]
    id:
      Province_ID: [0, 2]
      County_ID: [2, 4]
`))
	require.NoError(t, err)

	n := normalize.New(cat,
		normalize.WithDerivedColumns(),
		normalize.WithCanonicalSchema(),
	)

	s, err := n.Normalize(catalog.CensusResults, 1355, src)
	require.NoError(t, err)

	recs := collect(t, s)
	require.Len(t, recs, 1)

	rec := recs[0]
	for _, col := range normalize.CanonicalColumns(catalog.CensusResults) {
		assert.True(t, rec.Has(col), "missing canonical column %s", col)
	}

	assert.Len(t, rec, len(normalize.CanonicalColumns(catalog.CensusResults)))
	assert.Equal(t, "1355", rec["Year"])
	assert.Equal(t, "0102", rec["ID"])
	assert.Equal(t, "120", rec["Household_Count"])
	assert.Equal(t, "", rec["Village_Name"])
}

func TestNormalizeFullPipeline(t *testing.T) {
	cat, err := catalog.Parse([]byte(`
geographical_divisions:
  1375:
    columns: [ID, Province_Name, County_Name, District_Name,
              Rural_District_Name, City_Name, Region_Name]
    id:
      Province_ID: [0, 2]
      County_ID: [2, 4]
      District_ID: [4, 6]
      Rural_District_or_City_ID: [6, 10]
      Village_ID: [10, 13]
`))
	require.NoError(t, err)

	n := normalize.New(cat,
		normalize.WithCleaning(),
		normalize.WithDerivedColumns(),
		normalize.WithCanonicalSchema(),
	)

	src := record.NewSliceSource([][]string{
		// A city row: the village segment of the ID is blank padding and
		// the city name is filled.
		{"0102030004   ", "فارس", "شيراز", "مرکزی", "", "شيراز", ""},
	})

	s, err := n.Normalize(catalog.GeographicalDivisions, 1375, src)
	require.NoError(t, err)

	recs := collect(t, s)
	require.Len(t, recs, 1)

	rec := recs[0]
	spew.Dump(rec)

	assert.Equal(t, "1375", rec["Year"])
	assert.Equal(t, "0102030004", rec["ID"])
	assert.Equal(t, "", rec["Village_ID"])
	assert.Equal(t, "01", rec["Province_ID"])
	assert.Equal(t, "0004", rec["Rural_District_or_City_ID"])
	// Arabic letters folded to Persian during cleaning.
	assert.Equal(t, "شیراز", rec["County_Name"])
	assert.Equal(t, "شیراز", rec["Rural_District_or_City_Name"])
	assert.Equal(t, "City", rec["Region_Type"])
	assert.Equal(t, "", rec["Village_Name"])
}
