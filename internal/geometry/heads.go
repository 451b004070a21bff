// Package geometry models vertical process vessels: revolved head
// profiles, liquid height from fill volume, and the wetted surface area
// exposed to an external pool fire.
package geometry

import (
	"math"

	"gonum.org/v1/gonum/integrate"

	"Relief/internal/validate"
)

// Supported head profiles.
const (
	HeadASMEFD        = "ASME_FD"
	HeadEllipsoidal   = "Ellipsoidal"
	HeadHemispherical = "Hemispherical"
)

// HeadTypes lists the valid head_type values in form order.
var HeadTypes = []string{HeadASMEFD, HeadEllipsoidal, HeadHemispherical}

// quadSteps is the fixed subdivision count for the composite trapezoid
// quadrature used for head volumes and surface areas.
const quadSteps = 500

// Head is the common contract of the three head profiles. Heights are
// measured from the base of the head (liquid side), radii are internal.
type Head interface {
	// RadiusAtHeight returns the internal radius of the profile at height h.
	RadiusAtHeight(h float64) float64
	// AreaAtHeight returns the internal cross-sectional area at height h.
	AreaAtHeight(h float64) float64
	// VolumeUpTo returns the liquid volume held below height h.
	VolumeUpTo(h float64) float64
	// MaxVolume returns the volume of the completely filled head.
	MaxVolume() float64
	// Depth returns the liquid height spanned by the head.
	Depth() float64
	// Radius returns the internal radius where the head meets the shell.
	Radius() float64
}

// NewHead builds a head from the form-level inputs: head type, external
// diameter in metres and wall thickness in millimetres.
func NewHead(headType string, odM, thicknessMM float64) (Head, error) {
	t := thicknessMM / 1000.0
	switch headType {
	case HeadASMEFD:
		return NewASMEFDHead(odM, t)
	case HeadEllipsoidal:
		return NewEllipsoidal2to1Head(odM, t)
	case HeadHemispherical:
		return NewHemisphericalHead(odM, t)
	}
	return nil, validate.Inputf("Head Type must be one of %v, got: '%s'.", HeadTypes, headType)
}

func checkHeadDimensions(diameter, thickness float64) error {
	if diameter <= 0 {
		return validate.Inputf("Error with Outer Diameter input: must be positive, got %g m.", diameter)
	}
	if thickness < 0 {
		return validate.Inputf("Error with Shell Thickness input: cannot be negative, got %g m.", thickness)
	}
	if thickness >= diameter/2 {
		return validate.Inputf("Error with Shell Thickness input: %.1f mm must be less than vessel radius of %.1f mm.",
			thickness*1000, diameter/2*1000)
	}
	return nil
}

// TorisphericalHead is a crown-and-knuckle head: a spherical crown arc up
// to h2, a torus knuckle arc up to h3, then the straight flange at the
// cylinder radius. The ASME F&D and 2:1 ellipsoidal profiles differ only
// in their crown/knuckle proportions.
type TorisphericalHead struct {
	diameter  float64
	thickness float64

	crownRadius   float64
	knuckleRadius float64
	radius        float64

	// Circle centres of the crown and knuckle arcs, in (height, radius)
	// coordinates from the head base.
	cHeightOffset float64
	cRadiusOffset float64
	kHeightOffset float64
	kRadiusOffset float64

	h1, h2, h3 float64
}

func newTorisphericalHead(diameter, thickness, crownRatio, knuckleRatio float64) (*TorisphericalHead, error) {
	if err := checkHeadDimensions(diameter, thickness); err != nil {
		return nil, err
	}

	// External arc radii from the standard proportions.
	rcExt := crownRatio * diameter
	rkExt := knuckleRatio * diameter
	rExt := diameter / 2

	// Crown/knuckle tangency from the external geometry.
	aExt := rcExt - rkExt
	bExt := rExt - rkExt
	rp2Ext := (diameter - 2*rkExt) / 2
	hp2Ext := rcExt - math.Sqrt(aExt*aExt-bExt*bExt)
	alphaExt := math.Asin(rp2Ext / (rcExt - rkExt))

	return &TorisphericalHead{
		diameter:  diameter,
		thickness: thickness,

		// Liquid contacts the internal surface: thin the arcs by the wall.
		crownRadius:   rcExt - thickness,
		knuckleRadius: rkExt - thickness,
		radius:        rExt - thickness,

		cHeightOffset: rcExt,
		cRadiusOffset: 0,
		kHeightOffset: hp2Ext,
		kRadiusOffset: rp2Ext,

		h1: 0,
		h2: rcExt - math.Cos(alphaExt)*rcExt,
		h3: hp2Ext,
	}, nil
}

// NewASMEFDHead builds an ASME flanged-and-dished head (crown radius 1.00·D,
// knuckle radius 0.06·D).
func NewASMEFDHead(diameter, thickness float64) (*TorisphericalHead, error) {
	return newTorisphericalHead(diameter, thickness, 1.00, 0.06)
}

// NewEllipsoidal2to1Head builds the torispherical approximation of a 2:1
// semi-ellipsoidal head (crown radius 0.90·D, knuckle radius 0.17·D).
func NewEllipsoidal2to1Head(diameter, thickness float64) (*TorisphericalHead, error) {
	return newTorisphericalHead(diameter, thickness, 0.90, 0.17)
}

func (t *TorisphericalHead) RadiusAtHeight(h float64) float64 {
	if h <= t.h2 {
		d := h - t.cHeightOffset
		val := t.crownRadius*t.crownRadius - d*d
		return math.Sqrt(math.Max(val, 0)) + t.cRadiusOffset
	}
	if h <= t.h3 {
		d := h - t.kHeightOffset
		val := t.knuckleRadius*t.knuckleRadius - d*d
		return math.Sqrt(math.Max(val, 0)) + t.kRadiusOffset
	}
	return t.radius
}

func (t *TorisphericalHead) AreaAtHeight(h float64) float64 {
	r := t.RadiusAtHeight(h)
	return math.Pi * r * r
}

func (t *TorisphericalHead) VolumeUpTo(h float64) float64 {
	return sliceVolume(t, t.h1, h)
}

func (t *TorisphericalHead) MaxVolume() float64 { return t.VolumeUpTo(t.h3) }
func (t *TorisphericalHead) Depth() float64     { return t.h3 }
func (t *TorisphericalHead) Radius() float64    { return t.radius }

// HemisphericalHead is a single internal sphere arc; the head depth equals
// the internal radius, there is no knuckle or flange segment.
type HemisphericalHead struct {
	diameter  float64
	thickness float64
	radius    float64
	h1, h2    float64
}

// NewHemisphericalHead builds a hemispherical head of internal radius
// D/2 - t.
func NewHemisphericalHead(diameter, thickness float64) (*HemisphericalHead, error) {
	if err := checkHeadDimensions(diameter, thickness); err != nil {
		return nil, err
	}
	r := diameter/2 - thickness
	return &HemisphericalHead{
		diameter:  diameter,
		thickness: thickness,
		radius:    r,
		h1:        0,
		h2:        r,
	}, nil
}

func (s *HemisphericalHead) RadiusAtHeight(h float64) float64 {
	if h <= s.h2 {
		d := s.radius - h
		val := s.radius*s.radius - d*d
		return math.Sqrt(math.Max(val, 0))
	}
	return s.radius
}

func (s *HemisphericalHead) AreaAtHeight(h float64) float64 {
	r := s.RadiusAtHeight(h)
	return math.Pi * r * r
}

func (s *HemisphericalHead) VolumeUpTo(h float64) float64 {
	return sliceVolume(s, s.h1, h)
}

func (s *HemisphericalHead) MaxVolume() float64 { return s.VolumeUpTo(s.h2) }
func (s *HemisphericalHead) Depth() float64     { return s.h2 }
func (s *HemisphericalHead) Radius() float64    { return s.radius }

// sliceVolume integrates the cross-sectional area from base to top with a
// fixed-step trapezoid rule. The integrand is non-negative and
// non-decreasing, so the result is monotone in the upper limit.
func sliceVolume(head Head, base, top float64) float64 {
	if top <= base {
		return 0
	}
	dh := (top - base) / quadSteps
	xs := make([]float64, quadSteps+1)
	ys := make([]float64, quadSteps+1)
	for i := range xs {
		xs[i] = base + float64(i)*dh
		ys[i] = head.AreaAtHeight(xs[i])
	}
	return integrate.Trapezoidal(xs, ys)
}
