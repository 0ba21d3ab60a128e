package normalize

//go:generate go tool stringer -type=RegionType -output=regiontype_string.go

// RegionType classifies what kind of administrative region a record
// describes. Raw files encode it as a one-digit code; output records carry
// the human-readable label.
type RegionType int

const (
	RegionUnknown RegionType = iota

	RegionProvince
	RegionCounty
	RegionDistrict
	RegionRuralDistrict
	RegionCity
	RegionCityDistrict
	RegionCityVirtualDistrict
	RegionRegularVillage
	RegionBlockVillage
	RegionNonResident
)

// regionTypeFromCode maps the raw one-digit codes onto region types.
// City districts, virtual districts and non-resident regions have no raw
// code of their own; they are refined from RegionCity and the district code
// during labeling.
func regionTypeFromCode(code string) RegionType {
	switch code {
	case "1":
		return RegionProvince
	case "2":
		return RegionCounty
	case "3":
		return RegionDistrict
	case "4":
		return RegionRuralDistrict
	case "5":
		return RegionCity
	case "6":
		return RegionRegularVillage
	case "8":
		return RegionBlockVillage
	default:
		return RegionUnknown
	}
}

// Label returns the output-record value for the region type. RegionUnknown
// labels as the empty string.
func (t RegionType) Label() string {
	switch t {
	case RegionProvince:
		return "Province"
	case RegionCounty:
		return "County"
	case RegionDistrict:
		return "District"
	case RegionRuralDistrict:
		return "Rural_District"
	case RegionCity:
		return "City"
	case RegionCityDistrict:
		return "City_District"
	case RegionCityVirtualDistrict:
		return "City_Virtual_District"
	case RegionRegularVillage:
		return "Regular_Village"
	case RegionBlockVillage:
		return "Block_Village"
	case RegionNonResident:
		return "Non_Resident"
	default:
		return ""
	}
}
