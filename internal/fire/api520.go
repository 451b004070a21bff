package fire

import (
	"math"

	"Relief/internal/validate"
)

// API 520 heat input constants, with and without prompt firefighting and
// adequate drainage.
const (
	api520CDrained   = 43200.0
	api520CUndrained = 70900.0
)

// HeatLoadAPI520 returns the API 520 fire heat input in Watts from the
// wetted area (m²): Q = C·A^0.82.
func HeatLoadAPI520(areaM2 float64, firefighting bool) (float64, error) {
	if areaM2 < 0 {
		return 0, validate.Inputf("Wetted area cannot be negative, got: %g m².", areaM2)
	}
	if areaM2 == 0 {
		return 0, nil
	}
	c := api520CUndrained
	if firefighting {
		c = api520CDrained
	}
	return c * math.Pow(areaM2, 0.82), nil
}
