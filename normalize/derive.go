package normalize

import (
	"strings"
	"unicode"

	"census-normalizer/idcode"
	"census-normalizer/record"
)

// Column names the derivation steps read and write beyond the idcode
// sub-fields.
const (
	columnID                      = "ID"
	columnDIAG                    = "DIAG"
	columnRegionType              = "Region_Type"
	columnRegionName              = "Region_Name"
	columnCityName                = "City_Name"
	columnCityID                  = "City_ID"
	columnVillageName             = "Village_Name"
	columnProvinceName            = "Province_Name"
	columnCountyName              = "County_Name"
	columnDistrictName            = "District_Name"
	columnRuralDistrictID         = "Rural_District_ID"
	columnRuralDistrictName       = "Rural_District_Name"
	columnRuralDistrictOrCityName = "Rural_District_or_City_Name"
)

// cityDistrictMarker appears in city names that actually denote a numbered
// municipal district ("منطقه" = district).
const cityDistrictMarker = "منطقه"

// deriveColumns fills in the columns older editions lack, in dependency
// order. Every step is a no-op when the record already carries the column
// or when this edition lacks the inputs; editions differ legitimately in
// which shape they arrive in.
func deriveColumns(rec record.Record) {
	deriveRuralDistrictOrCityID(rec)
	deriveVillageName(rec)
	composeLongID(rec)
	deriveRuralDistrictOrCityName(rec)
	deriveRegionTypeCode(rec)
	labelRegionType(rec)
}

// deriveRuralDistrictOrCityID merges the separate rural-district and city
// code columns of older editions: the rural-district code, unless empty,
// otherwise the city code.
func deriveRuralDistrictOrCityID(rec record.Record) {
	if rec.Has(idcode.RuralDistrictOrCityID) || !rec.Has(columnRuralDistrictID) {
		return
	}

	id := rec[columnRuralDistrictID]
	if id == "" {
		id = rec[columnCityID]
	}

	rec[idcode.RuralDistrictOrCityID] = id
}

// deriveVillageName takes the generic region name as the village name for
// village-typed rows (raw codes 6 and 8).
func deriveVillageName(rec record.Record) {
	if rec.Has(columnVillageName) || !rec.Has(columnRegionName) || !rec.Has(columnRegionType) {
		return
	}

	switch rec[columnRegionType] {
	case "6", "8":
		rec[columnVillageName] = rec[columnRegionName]
	default:
		rec[columnVillageName] = ""
	}
}

// composeLongID rebuilds the combined ID from the hierarchical sub-field
// codes. Editions whose raw files carry pre-split code columns have no
// combined ID of their own.
func composeLongID(rec record.Record) {
	if rec.Has(columnID) || !rec.Has(idcode.ProvinceID) {
		return
	}

	rec[columnID] = idcode.Compose(rec)
}

// deriveRuralDistrictOrCityName merges the rural-district and city name
// columns. Editions without a city name column mark cities with raw region
// type code 5 and keep the name in the generic region name column.
func deriveRuralDistrictOrCityName(rec record.Record) {
	if rec.Has(columnRuralDistrictOrCityName) {
		return
	}

	switch {
	case rec.Has(columnCityName):
		name := rec[columnRuralDistrictName]
		if name == "" {
			name = rec[columnCityName]
		}

		rec[columnRuralDistrictOrCityName] = name

	case rec.Has(columnRegionType) && rec.Has(columnRegionName):
		name := rec[columnRuralDistrictName]
		if name == "" && rec[columnRegionType] == "5" {
			name = rec[columnRegionName]
		}

		rec[columnRuralDistrictOrCityName] = name
	}
}

// deriveRegionTypeCode reconstructs the raw region type code for editions
// that do not record one. The rules mirror how the census bureau's own
// files distinguish the region kinds, applied in this exact order.
func deriveRegionTypeCode(rec record.Record) {
	if rec.Has(columnRegionType) {
		return
	}

	code := ""

	if rec[columnDIAG] != "" {
		code = "8"
	}

	if code == "" && (rec[columnVillageName] != "" || rec[idcode.VillageID] != "") {
		code = "6"
	}

	if rec[columnCityName] != "" {
		code = "5"
	}

	if code == "" && (rec[columnRuralDistrictName] != "" || rec[idcode.RuralDistrictOrCityID] != "") {
		code = "4"
	}

	if rec[columnCountyName] == "" {
		code = "1"
	}

	if code == "" && rec[columnDistrictName] == "" && rec[idcode.DistrictID] == "" {
		code = "2"
	}

	if code == "" {
		code = "3"
	}

	rec[columnRegionType] = code
}

// labelRegionType replaces the one-digit region type code with its label,
// refining plain cities into municipal districts, virtual districts and
// non-resident regions.
func labelRegionType(rec record.Record) {
	t := regionTypeFromCode(rec[columnRegionType])

	if t == RegionCity {
		name := rec[columnRuralDistrictOrCityName]

		switch {
		case containsDigit(name), strings.Contains(name, cityDistrictMarker):
			t = RegionCityDistrict
		case rec[columnVillageName] != "" || rec[idcode.VillageID] != "":
			t = RegionCityVirtualDistrict
		}
	}

	if rec[idcode.DistrictID] == "99" {
		t = RegionNonResident
	}

	rec[columnRegionType] = t.Label()
}

func containsDigit(s string) bool {
	for _, r := range s {
		if unicode.IsDigit(r) {
			return true
		}
	}

	return false
}
