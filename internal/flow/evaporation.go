package flow

import (
	"Relief/internal/validate"
)

// EvaporationRate returns the vapor generation rate in kg/s from the fire
// heat load (W) and the latent heat of vaporization (J/kg).
func EvaporationRate(qW, hfgJPerKg float64) (float64, error) {
	if qW < 0 {
		return 0, validate.Inputf("Heat load cannot be negative, got: %g W.", qW)
	}
	if qW == 0 {
		return 0, nil
	}
	if hfgJPerKg <= 0 {
		return 0, validate.Inputf(
			"Enthalpy of vaporization must be positive, got: %g J/kg. Typical values range from 100,000 to 2,500,000 J/kg.",
			hfgJPerKg)
	}
	return qW / hfgJPerKg, nil
}

// EvaporationRateKgPerHr returns the vapor generation rate in kg/hr.
func EvaporationRateKgPerHr(qW, hfgJPerKg float64) (float64, error) {
	rate, err := EvaporationRate(qW, hfgJPerKg)
	if err != nil {
		return 0, err
	}
	return rate * 3600.0, nil
}
