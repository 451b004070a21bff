// Package flow implements the API 520 gas/vapor relief equations:
// relieving pressure, the critical-flow decision and the required orifice
// area for the critical and subcritical regimes. All pressures in this
// package are US customary (psig/psia) per the source equations.
package flow

import (
	"math"

	"Relief/internal/validate"
)

// MaxAccumulation returns the allowed pressure rise above MAWP in psig.
func MaxAccumulation(mawpPsig, accumPercent float64) (float64, error) {
	if mawpPsig <= 0 {
		return 0, validate.Inputf("MAWP must be positive, got: %g psig.", mawpPsig)
	}
	if accumPercent < 0 || accumPercent > 100 {
		return 0, validate.Inputf("Accumulation percent must be between 0 and 100%%, got: %g%%.", accumPercent)
	}
	return mawpPsig * accumPercent / 100.0, nil
}

// RelievingPressure returns the absolute upstream pressure P1 in psia:
// MAWP + accumulation + atmospheric.
func RelievingPressure(mawpPsig, atmPsia, accumPsig float64) (float64, error) {
	if mawpPsig <= 0 {
		return 0, validate.Inputf("MAWP must be positive, got: %g psig.", mawpPsig)
	}
	if atmPsia <= 0 {
		return 0, validate.Inputf("Atmospheric pressure must be positive, got: %g psia.", atmPsia)
	}
	if accumPsig < 0 {
		return 0, validate.Inputf("Accumulation cannot be negative, got: %g psig.", accumPsig)
	}
	return mawpPsig + accumPsig + atmPsia, nil
}

// CriticalDownstreamPressure returns the downstream pressure below which
// flow chokes: P1·(2/(k+1))^(k/(k-1)).
func CriticalDownstreamPressure(p1Psia, k float64) (float64, error) {
	if p1Psia <= 0 {
		return 0, validate.Inputf("Relieving pressure must be positive, got: %g psia.", p1Psia)
	}
	if err := validate.KRatio(k); err != nil {
		return 0, err
	}
	return p1Psia * math.Pow(2.0/(k+1.0), k/(k-1.0)), nil
}

// DownstreamPressure returns the absolute backpressure P2 in psia.
func DownstreamPressure(backPsig, atmPsia float64) (float64, error) {
	if backPsig < 0 {
		return 0, validate.Inputf("Backpressure cannot be negative, got: %g psig.", backPsig)
	}
	if atmPsia <= 0 {
		return 0, validate.Inputf("Atmospheric pressure must be positive, got: %g psia.", atmPsia)
	}
	return backPsig + atmPsia, nil
}

// IsCritical reports whether relief flow is critical (choked): the actual
// downstream pressure sits below the critical downstream pressure.
func IsCritical(p1Psia, backPsig, atmPsia, k float64) (bool, error) {
	pCrit, err := CriticalDownstreamPressure(p1Psia, k)
	if err != nil {
		return false, err
	}
	pDown, err := DownstreamPressure(backPsig, atmPsia)
	if err != nil {
		return false, err
	}
	return pCrit > pDown, nil
}
