package sizing

import (
	_ "embed"
	"fmt"
	"math"
	"sort"

	"github.com/gocarina/gocsv"

	"Relief/internal/validate"
)

// The API 526 letter orifice table ships with the binary and is loaded
// once at process start. Never mutated afterwards.
//
//go:embed orifices.csv
var orificeCSV []byte

// Orifice is one API 526 standard orifice: letter designation, effective
// flow area and nominal inlet flange size.
type Orifice struct {
	Letter      string  `csv:"letter" json:"letter"`
	AreaIn2     float64 `csv:"area_in2" json:"area_in2"`
	InletSizeIn float64 `csv:"inlet_size_in" json:"inlet_size_in"`
}

var orifices []Orifice

func init() {
	if err := gocsv.UnmarshalBytes(orificeCSV, &orifices); err != nil {
		panic(fmt.Sprintf("sizing: bad embedded orifice table: %v", err))
	}
	if len(orifices) == 0 {
		panic("sizing: embedded orifice table is empty")
	}
	sort.Slice(orifices, func(i, j int) bool { return orifices[i].AreaIn2 < orifices[j].AreaIn2 })
}

// OrificeDiameter returns the effective bore diameter for a flow area.
func OrificeDiameter(areaIn2 float64) float64 {
	return 2.0 * math.Sqrt(areaIn2/math.Pi)
}

// SelectOrifice returns the smallest standard orifice whose area meets or
// exceeds the required area. A zero requirement selects the smallest
// letter; a requirement beyond the largest letter is infeasible with a
// single device.
func SelectOrifice(requiredIn2 float64) (Orifice, error) {
	if math.IsNaN(requiredIn2) || requiredIn2 < 0 {
		return Orifice{}, validate.Inputf("Required area cannot be negative, got: %g in².", requiredIn2)
	}
	if requiredIn2 == 0 {
		return orifices[0], nil
	}
	for _, o := range orifices {
		if o.AreaIn2 >= requiredIn2 {
			return o, nil
		}
	}
	biggest := orifices[len(orifices)-1]
	return Orifice{}, validate.Infeasiblef(
		"No standard API orifice can accommodate required area: %.3f in². Maximum available is '%s' at %g in². Consider multiple relief devices or a rupture disc.",
		requiredIn2, biggest.Letter, biggest.AreaIn2)
}
