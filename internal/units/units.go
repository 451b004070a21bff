// Package units provides the scalar conversions used at the boundary
// between the SI geometry side and the US-customary flow equations.
package units

import (
	"Relief/internal/validate"
)

const (
	lbPerKg       = 2.2046226218
	psiPerBar     = 14.5037738
	barPerPsi     = 0.0689476
	absoluteZeroC = -273.15
	atmBara       = 1.01325
	atmPsia       = 14.7
)

// KgPerHrToLbPerHr converts mass flow from kg/hr to lb/hr.
func KgPerHrToLbPerHr(m float64) (float64, error) {
	if m < 0 {
		return 0, validate.Inputf("Mass flow cannot be negative, got: %g kg/hr.", m)
	}
	return m * lbPerKg, nil
}

// LbPerHrToKgPerHr converts mass flow from lb/hr to kg/hr.
func LbPerHrToKgPerHr(m float64) (float64, error) {
	if m < 0 {
		return 0, validate.Inputf("Mass flow cannot be negative, got: %g lb/hr.", m)
	}
	return m / lbPerKg, nil
}

// CToK converts a temperature from Celsius to Kelvin.
func CToK(t float64) (float64, error) {
	if t < absoluteZeroC {
		return 0, validate.Inputf("Temperature cannot be below absolute zero (-273.15°C), got: %g°C.", t)
	}
	return t - absoluteZeroC, nil
}

// CToR converts a temperature from Celsius to Rankine.
func CToR(t float64) (float64, error) {
	k, err := CToK(t)
	if err != nil {
		return 0, err
	}
	return k * 9.0 / 5.0, nil
}

// KToR converts a temperature from Kelvin to Rankine.
func KToR(t float64) (float64, error) {
	if t < 0 {
		return 0, validate.Inputf("Temperature in Kelvin cannot be negative, got: %g K.", t)
	}
	return t * 9.0 / 5.0, nil
}

// PsigToPsia converts a gauge pressure to absolute.
func PsigToPsia(p float64) (float64, error) {
	abs := p + atmPsia
	if abs <= 0 {
		return 0, validate.Inputf("Absolute pressure cannot be zero or negative. Got %g psig = %.4f psia.", p, abs)
	}
	return abs, nil
}

// BargToPsia converts a gauge pressure in bar to absolute psi.
func BargToPsia(p float64) (float64, error) {
	bara := p + atmBara
	if bara <= 0 {
		return 0, validate.Inputf("Absolute pressure cannot be zero or negative. Got %g barg = %.4f bara.", p, bara)
	}
	return bara * psiPerBar, nil
}

// PsigToBarg converts a gauge pressure from psi to bar. Gauge zero maps to
// gauge zero, so this is a pure scale factor.
func PsigToBarg(p float64) float64 {
	return p * barPerPsi
}

// KJPerKgToJPerKg converts a specific enthalpy from kJ/kg to J/kg.
func KJPerKgToJPerKg(h float64) (float64, error) {
	if h < 0 {
		return 0, validate.Inputf("Enthalpy of vaporization cannot be negative, got: %g kJ/kg.", h)
	}
	return h * 1000.0, nil
}
