// Package fire implements the API 2000 and API 520 external-fire heat-load
// correlations for the fire relief case.
package fire

import (
	"Relief/internal/validate"
)

// Standard selects the fire sizing correlation.
type Standard string

const (
	API2000 Standard = "API2000"
	API520  Standard = "API520"
)

// Standards lists the valid fire_standard values.
var Standards = []string{string(API2000), string(API520)}

// api2000MaxMAWPPsig is the vessel design pressure above which the API 2000
// low-pressure tables no longer apply.
const api2000MaxMAWPPsig = 15.0

// HeightLimitM returns the flame-zone height above grade assumed by the
// standard: 30 ft for API 2000, 25 ft for API 520.
func (s Standard) HeightLimitM() float64 {
	if s == API520 {
		return 7.62
	}
	return 9.14
}

// Effective resolves the standard actually applied: API 2000 is silently
// replaced by API 520 when the vessel MAWP exceeds 15 psig.
func Effective(s Standard, mawpPsig float64) Standard {
	if s == API2000 && mawpPsig > api2000MaxMAWPPsig {
		return API520
	}
	return s
}

// HeatLoad dispatches to the selected correlation and returns the fire
// heat input in Watts.
func HeatLoad(s Standard, areaM2, pDesignBarg float64, firefighting bool) (float64, error) {
	switch s {
	case API2000:
		return HeatLoadAPI2000(areaM2, pDesignBarg)
	case API520:
		return HeatLoadAPI520(areaM2, firefighting)
	}
	return 0, validate.Inputf("Unknown fire sizing standard: '%s'. Valid options are: %v.", s, Standards)
}
