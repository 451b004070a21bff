package fire

import (
	"math"

	"Relief/internal/validate"
)

// highPressureFluxWPerM2 is the flat API 520 style heat flux applied when
// the design pressure falls outside the API 2000 table validity.
const highPressureFluxWPerM2 = 10800.0

// HeatLoadAPI2000 returns the API 2000 fire heat load in Watts from the
// wetted area (m²) and the vessel design pressure (barg). The area bands
// are half-open: the lower boundary belongs to the higher band.
func HeatLoadAPI2000(areaM2, pDesignBarg float64) (float64, error) {
	if areaM2 < 0 {
		return 0, validate.Inputf("Wetted area cannot be negative, got: %g m².", areaM2)
	}
	if areaM2 == 0 {
		return 0, nil
	}

	// Above 1.034 barg the API 2000 table does not apply; fall back to the
	// industry-standard flat flux.
	if pDesignBarg > 1.034 {
		return highPressureFluxWPerM2 * areaM2, nil
	}

	switch {
	case areaM2 < 18.6:
		return 63150 * areaM2, nil
	case areaM2 < 93:
		return 224200 * math.Pow(areaM2, 0.566), nil
	case areaM2 < 260:
		return 630400 * math.Pow(areaM2, 0.338), nil
	case pDesignBarg >= 0.07:
		return 43200 * math.Pow(areaM2, 0.82), nil
	default:
		// A >= 260 m² and P < 0.07 barg: flat maximum heat input.
		return 4129700.0, nil
	}
}
