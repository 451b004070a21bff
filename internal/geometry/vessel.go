package geometry

import (
	"math"

	"gonum.org/v1/gonum/integrate"

	"Relief/internal/validate"
)

const (
	// OrientationVertical is the only supported vessel orientation.
	OrientationVertical = "Vertical"

	// bisectionIters is the fixed iteration count for the volume-to-height
	// inversion. The interval halves each pass, so the head depth is
	// resolved to depth/2^40 regardless of convergence checks.
	bisectionIters = 40

	// slopeStep is the forward-difference offset for dr/dh in the
	// surface-of-revolution integral.
	slopeStep = 1e-5
)

// Orientations lists the valid orientation values.
var Orientations = []string{OrientationVertical}

// FillInput are the geometry-side inputs of a fire-case calculation.
type FillInput struct {
	Orientation    string  `json:"orientation"`
	HeadType       string  `json:"head_type"`
	TangentLengthM float64 `json:"tangent_length_m"`
	OuterDiameterM float64 `json:"outer_diameter_m"`
	ThicknessMM    float64 `json:"shell_thickness_mm"`
	BottomHeightM  float64 `json:"bottom_height_m"`
	FireHeightM    float64 `json:"fire_height_m"`
	FillVolumeM3   float64 `json:"normal_fill_volume_m3"`
}

// FillResult reports the liquid level and the fire-exposed wetted area.
type FillResult struct {
	LiquidHeightM        float64 `json:"liquid_height_m"`
	LiquidHeightExposedM float64 `json:"liquid_height_exposed_m"`
	WettedAreaM2         float64 `json:"wetted_area_m2"`
}

// WettedAreaFromFillVolume converts a normal fill volume into a liquid
// height and returns the wetted surface area below the fire-limited height.
// The exposed height is min(liquid level, fire height - bottom elevation);
// if the fire plane sits below the vessel bottom no area is computed at all.
func WettedAreaFromFillVolume(in FillInput) (FillResult, error) {
	if in.Orientation != OrientationVertical {
		return FillResult{}, validate.Inputf(
			"Only 'Vertical' orientation is supported, got: '%s'. Horizontal vessels are not yet implemented.",
			in.Orientation)
	}
	if in.TangentLengthM < 0 {
		return FillResult{}, validate.Inputf("Error with Tangent Length input: must be non-negative, got %g.", in.TangentLengthM)
	}
	if in.BottomHeightM < 0 {
		return FillResult{}, validate.Inputf("Error with Surface to Vessel Bottom Height input: must be non-negative, got %g.", in.BottomHeightM)
	}
	if in.FireHeightM < 0 {
		return FillResult{}, validate.Inputf("Error with Fire Height input: must be non-negative, got %g.", in.FireHeightM)
	}
	if in.FillVolumeM3 < 0 {
		return FillResult{}, validate.Inputf("Error with Normal Fill Volume input: must be non-negative, got %g.", in.FillVolumeM3)
	}

	head, err := NewHead(in.HeadType, in.OuterDiameterM, in.ThicknessMM)
	if err != nil {
		return FillResult{}, err
	}

	r := head.Radius()
	vMax := 2*head.MaxVolume() + math.Pi*r*r*in.TangentLengthM
	if in.FillVolumeM3 > vMax {
		return FillResult{}, validate.Inputf(
			"Error with Normal Fill Volume input: volume of %.3f m³ exceeds vessel capacity of %.3f m³. Please enter a smaller fill volume.",
			in.FillVolumeM3, vMax)
	}

	liquidHeight := LiquidHeightFromVolume(in.FillVolumeM3, head, in.TangentLengthM)

	fireLimit := in.FireHeightM - in.BottomHeightM
	if fireLimit <= 0 {
		// Fire does not reach the vessel.
		return FillResult{LiquidHeightM: liquidHeight}, nil
	}

	exposed := math.Min(liquidHeight, fireLimit)
	return FillResult{
		LiquidHeightM:        liquidHeight,
		LiquidHeightExposedM: exposed,
		WettedAreaM2:         WettedAreaUpToHeight(exposed, head, in.TangentLengthM),
	}, nil
}

// WettedAreaFireCase returns the wetted area of a completely flooded
// vessel from the bottom tangent up to the fire height, ignoring the
// actual liquid inventory.
func WettedAreaFireCase(in FillInput) (float64, error) {
	if in.Orientation != OrientationVertical {
		return 0, validate.Inputf(
			"Only 'Vertical' orientation is supported, got: '%s'. Horizontal vessels are not yet implemented.",
			in.Orientation)
	}
	if in.TangentLengthM < 0 || in.BottomHeightM < 0 || in.FireHeightM < 0 {
		return 0, validate.Inputf("Vessel dimensions and heights must be non-negative.")
	}

	head, err := NewHead(in.HeadType, in.OuterDiameterM, in.ThicknessMM)
	if err != nil {
		return 0, err
	}

	h := in.FireHeightM - in.BottomHeightM
	if h <= 0 {
		return 0, nil
	}
	hTotal := 2*head.Depth() + in.TangentLengthM
	return WettedAreaUpToHeight(math.Min(h, hTotal), head, in.TangentLengthM), nil
}

// LiquidHeightFromVolume inverts the total-vessel volume function. The
// volume is attributed to the bottom head, then the cylinder, then the top
// head (same profile, mirrored).
func LiquidHeightFromVolume(vM3 float64, head Head, shellHeightM float64) float64 {
	vHead := head.MaxVolume()
	r := head.Radius()
	aCyl := math.Pi * r * r
	hHead := head.Depth()

	if vM3 <= vHead {
		return SolveHeightInHead(vM3, head)
	}

	vRem := vM3 - vHead
	if vRem <= aCyl*shellHeightM {
		return hHead + vRem/aCyl
	}

	vRem -= aCyl * shellHeightM
	return hHead + shellHeightM + SolveHeightInHead(vRem, head)
}

// SolveHeightInHead finds the height inside a head holding the target
// volume by bisection over [0, Depth].
func SolveHeightInHead(vTarget float64, head Head) float64 {
	low, high := 0.0, head.Depth()
	for i := 0; i < bisectionIters; i++ {
		mid := 0.5 * (low + high)
		if head.VolumeUpTo(mid) < vTarget {
			low = mid
		} else {
			high = mid
		}
	}
	return 0.5 * (low + high)
}

// WettedAreaUpToHeight returns the internal surface area wetted below
// height H: bottom head, then cylinder band, then top head.
func WettedAreaUpToHeight(h float64, head Head, shellHeightM float64) float64 {
	if h < 0 {
		return 0
	}

	r := head.Radius()
	hHead := head.Depth()

	// Liquid entirely inside the bottom head.
	if h <= hHead {
		return HeadWettedAreaUpTo(h, head)
	}

	// Bottom head full, level in the cylinder.
	if h <= hHead+shellHeightM {
		return HeadWettedAreaUpTo(hHead, head) + 2*math.Pi*r*(h-hHead)
	}

	// Cylinder full, level in the top head.
	return HeadWettedAreaUpTo(hHead, head) +
		2*math.Pi*r*shellHeightM +
		HeadWettedAreaUpTo(h-hHead-shellHeightM, head)
}

// HeadWettedAreaUpTo integrates the surface of revolution
// 2π·r(h)·sqrt(1+(dr/dh)²) from the head base up to height h, with dr/dh
// estimated by a forward finite difference.
func HeadWettedAreaUpTo(h float64, head Head) float64 {
	if h <= 0 {
		return 0
	}
	hHigh := math.Min(h, head.Depth())

	dh := hHigh / quadSteps
	xs := make([]float64, quadSteps+1)
	ys := make([]float64, quadSteps+1)
	for i := range xs {
		hi := float64(i) * dh
		r := head.RadiusAtHeight(hi)

		slope := 0.0
		if hf := math.Min(hi+slopeStep, hHigh); hf > hi {
			slope = (head.RadiusAtHeight(hf) - r) / (hf - hi)
		}

		xs[i] = hi
		ys[i] = 2 * math.Pi * r * math.Sqrt(1+slope*slope)
	}
	return integrate.Trapezoidal(xs, ys)
}
