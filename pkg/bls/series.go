// Package bls fetches Occupational Employment and Wage Statistics series from
// the BLS public timeseries API.
package bls

import (
	"strings"

	"github.com/rotisserie/eris"
)

// OEWS datatype codes, the last two digits of a series ID.
const (
	DatatypeEmployment = "01"
	DatatypeMeanAnnual = "04"
	DatatypePct10      = "11"
	DatatypePct25      = "12"
	DatatypeMedian     = "13"
	DatatypePct75      = "14"
	DatatypePct90      = "15"
)

// SuppressedValue is what the API reports when a cell fails BLS disclosure
// rules. Callers must treat it as absent.
const SuppressedValue = "-"

// SeriesID assembles an OEWS series ID:
//
//	OEU + areatype(1) + area(7) + industry(6, cross-industry) + soc(6) + datatype(2)
//
// areaCode uses the resolver conventions: "0000000" national, "S{fips}00000"
// state, "M{cbsa}00" metro. Metro area codes translate to the API's 7-digit
// zero-padded CBSA form (M1242000 -> 0012420).
func SeriesID(areaCode, soc6, datatype string) (string, error) {
	if len(soc6) != 6 {
		return "", eris.Errorf("bls: occupation code %q is not 6 digits", soc6)
	}

	var areaType, area string
	switch {
	case areaCode == "0000000":
		areaType, area = "N", "0000000"
	case strings.HasPrefix(areaCode, "S") && len(areaCode) == 8:
		areaType, area = "S", areaCode[1:]
	case strings.HasPrefix(areaCode, "M") && len(areaCode) == 8:
		cbsa := areaCode[1 : len(areaCode)-2]
		areaType, area = "M", strings.Repeat("0", 7-len(cbsa))+cbsa
	default:
		return "", eris.Errorf("bls: unrecognized area code %q", areaCode)
	}

	return "OEU" + areaType + area + "000000" + soc6 + datatype, nil
}
