package flow

import (
	"math"

	"Relief/internal/validate"
)

// subcriticalConstant is the unit-bearing constant of the API 520
// subcritical gas equation in US customary units. Taken verbatim from the
// standard; it has no unit-system-generic derivation.
const subcriticalConstant = 735.0

// CGas returns the API 520 gas coefficient C for a given specific heat
// ratio, in US customary units: 520·sqrt(k·(2/(k+1))^((k+1)/(k-1))).
func CGas(k float64) (float64, error) {
	if err := validate.KRatio(k); err != nil {
		return 0, err
	}
	return 520.0 * math.Sqrt(k*math.Pow(2.0/(k+1.0), (k+1.0)/(k-1.0))), nil
}

// F2Subcritical returns the API 520 subcritical flow coefficient for a
// pressure ratio r = P2/P1 in (0, 1).
func F2Subcritical(k, r float64) (float64, error) {
	if err := validate.KRatio(k); err != nil {
		return 0, err
	}
	if r <= 0 || r >= 1 {
		return 0, validate.Inputf("Pressure ratio (r = P2/P1) must be between 0 and 1 for subcritical flow, got: %g.", r)
	}
	num := (k / (k - 1.0)) * math.Pow(r, k) * (1.0 - math.Pow(r, (k-1.0)/k)) / (1.0 - r)
	return math.Sqrt(num), nil
}

// RequiredAreaCritical returns the required relief area in in² for
// critical (choked) gas flow:
//
//	A = W·sqrt(T·Z/M) / (C·Kd·P1·Kb·Kc)
func RequiredAreaCritical(wLbPerHr, k, tR, z, mLbPerLbmol, p1Psia, kd, kb, kc float64) (float64, error) {
	if wLbPerHr < 0 {
		return 0, validate.Inputf("Mass flowrate cannot be negative, got: %g lb/hr.", wLbPerHr)
	}
	if wLbPerHr == 0 {
		return 0, nil
	}
	if tR <= 0 {
		return 0, validate.Inputf("Relieving temperature must be positive, got: %g °R.", tR)
	}
	if err := validate.Compressibility(z); err != nil {
		return 0, err
	}
	if mLbPerLbmol <= 0 {
		return 0, validate.Inputf("Molecular weight must be positive, got: %g lb/lbmol.", mLbPerLbmol)
	}
	if p1Psia <= 0 {
		return 0, validate.Inputf("Relieving pressure must be positive, got: %g psia.", p1Psia)
	}
	if err := validate.CorrectionFactor(kd, "Discharge coefficient (Kd)", 0, 1); err != nil {
		return 0, err
	}
	if err := validate.CorrectionFactor(kb, "Backpressure factor (Kb)", 0, 1); err != nil {
		return 0, err
	}
	if err := validate.CorrectionFactor(kc, "Combination factor (Kc)", 0, 1); err != nil {
		return 0, err
	}

	c, err := CGas(k)
	if err != nil {
		return 0, err
	}
	den := c * kd * p1Psia * kb * kc
	if den == 0 {
		return 0, validate.Infeasiblef("Denominator is zero - check Kd, Kb, Kc and P1 values.")
	}
	return wLbPerHr * math.Sqrt(tR*z/mLbPerLbmol) / den, nil
}

// RequiredAreaSubcritical returns the required relief area in in² for
// subcritical gas flow:
//
//	A = W·sqrt(Z·T/(M·P1·(P1-P2))) / (735·F2·Kd·Ke)
func RequiredAreaSubcritical(wLbPerHr, k, tR, z, mLbPerLbmol, p1Psia, p2Psia, kd, ke float64) (float64, error) {
	if wLbPerHr < 0 {
		return 0, validate.Inputf("Mass flowrate cannot be negative, got: %g lb/hr.", wLbPerHr)
	}
	if wLbPerHr == 0 {
		return 0, nil
	}
	if tR <= 0 {
		return 0, validate.Inputf("Relieving temperature must be positive, got: %g °R.", tR)
	}
	if err := validate.Compressibility(z); err != nil {
		return 0, err
	}
	if mLbPerLbmol <= 0 {
		return 0, validate.Inputf("Molecular weight must be positive, got: %g lb/lbmol.", mLbPerLbmol)
	}
	if p1Psia <= 0 || p2Psia <= 0 {
		return 0, validate.Inputf("Pressures must be positive, got P1 = %g psia, P2 = %g psia.", p1Psia, p2Psia)
	}
	if p2Psia >= p1Psia {
		return 0, validate.Infeasiblef("Backpressure (%g psia) must be less than relieving pressure (%g psia).", p2Psia, p1Psia)
	}
	if err := validate.CorrectionFactor(kd, "Discharge coefficient (Kd)", 0, 1); err != nil {
		return 0, err
	}
	if err := validate.CorrectionFactor(ke, "Environmental factor (Ke)", 0, 2); err != nil {
		return 0, err
	}

	f2, err := F2Subcritical(k, p2Psia/p1Psia)
	if err != nil {
		return 0, err
	}
	den := subcriticalConstant * f2 * kd * ke
	if den == 0 {
		return 0, validate.Infeasiblef("Denominator is zero - check F2, Kd and Ke values.")
	}
	return wLbPerHr * math.Sqrt(z*tR/(mLbPerLbmol*p1Psia*(p1Psia-p2Psia))) / den, nil
}
