package geometry

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func allHeads(t *testing.T, diameter, thickness float64) map[string]Head {
	t.Helper()
	fd, err := NewASMEFDHead(diameter, thickness)
	require.NoError(t, err)
	ell, err := NewEllipsoidal2to1Head(diameter, thickness)
	require.NoError(t, err)
	hemi, err := NewHemisphericalHead(diameter, thickness)
	require.NoError(t, err)
	return map[string]Head{"ASME_FD": fd, "Ellipsoidal": ell, "Hemispherical": hemi}
}

func TestHeadConstructionRejectsBadDimensions(t *testing.T) {
	for _, headType := range HeadTypes {
		_, err := NewHead(headType, 0, 10)
		assert.Error(t, err, headType)

		_, err = NewHead(headType, 2.0, -1)
		assert.Error(t, err, headType)

		// Thickness equal to the radius leaves no internal surface.
		_, err = NewHead(headType, 2.0, 1000)
		require.Error(t, err, headType)
		assert.Contains(t, err.Error(), "Shell Thickness")
	}
}

func TestHeadFactoryRejectsUnknownType(t *testing.T) {
	_, err := NewHead("Conical", 2.0, 10)
	assert.Error(t, err)
}

func TestVolumeUpToStartsAtZero(t *testing.T) {
	for name, head := range allHeads(t, 3.0, 0.010) {
		assert.Zero(t, head.VolumeUpTo(0), name)
	}
}

func TestVolumeMonotone(t *testing.T) {
	for name, head := range allHeads(t, 3.0, 0.010) {
		prev := 0.0
		for i := 1; i <= 50; i++ {
			h := head.Depth() * float64(i) / 50
			v := head.VolumeUpTo(h)
			assert.GreaterOrEqual(t, v, prev, "%s at h=%g", name, h)
			prev = v
		}
		assert.InDelta(t, head.MaxVolume(), prev, 1e-12, name)
	}
}

func TestHemisphericalVolumeClosedForm(t *testing.T) {
	head, err := NewHemisphericalHead(3.0, 0.010)
	require.NoError(t, err)

	r := head.Radius()
	want := 2.0 / 3.0 * math.Pi * r * r * r
	assert.InEpsilon(t, want, head.MaxVolume(), 1e-4)
}

func TestRadiusProfileContinuity(t *testing.T) {
	// Zero wall thickness: the crown and knuckle arcs meet exactly at the
	// tangency height h2 and the knuckle reaches the cylinder radius at h3.
	// (With a nonzero wall the thinned arcs keep a sub-millimetre step at
	// h2; the external tangency angle is reused by design.)
	fd, err := NewASMEFDHead(3.0, 0)
	require.NoError(t, err)

	rBelow := fd.RadiusAtHeight(fd.h2 - 1e-12)
	rAbove := fd.RadiusAtHeight(fd.h2 + 1e-12)
	assert.InDelta(t, rBelow, rAbove, 1e-6)

	assert.InDelta(t, fd.Radius(), fd.RadiusAtHeight(fd.h3), 1e-9)
	assert.InDelta(t, fd.Radius(), fd.RadiusAtHeight(fd.h3+0.5), 1e-12)
}

func TestRadiusAtBaseIsZero(t *testing.T) {
	for name, head := range allHeads(t, 3.0, 0.010) {
		assert.InDelta(t, 0, head.RadiusAtHeight(0), 1e-9, name)
	}
}

func TestHemisphericalDepthEqualsRadius(t *testing.T) {
	head, err := NewHemisphericalHead(3.0, 0.010)
	require.NoError(t, err)
	assert.Equal(t, head.Radius(), head.Depth())
}

func TestAreaAtHeightMatchesRadius(t *testing.T) {
	head, err := NewEllipsoidal2to1Head(2.4, 0.008)
	require.NoError(t, err)
	h := head.Depth() / 3
	r := head.RadiusAtHeight(h)
	assert.InDelta(t, math.Pi*r*r, head.AreaAtHeight(h), 1e-12)
}
