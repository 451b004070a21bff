package flow

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"Relief/internal/validate"
)

func TestEvaporationRate(t *testing.T) {
	rate, err := EvaporationRate(335000, 335000)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, rate, 1e-12)

	perHr, err := EvaporationRateKgPerHr(335000, 335000)
	require.NoError(t, err)
	assert.InDelta(t, 3600.0, perHr, 1e-9)
}

func TestEvaporationRateZeroHeat(t *testing.T) {
	// Zero heat load needs no latent-heat check at all.
	rate, err := EvaporationRate(0, 0)
	require.NoError(t, err)
	assert.Zero(t, rate)
}

func TestEvaporationRateRejectsBadInput(t *testing.T) {
	_, err := EvaporationRate(-1, 335000)
	assert.Error(t, err)
	_, err = EvaporationRate(1000, 0)
	assert.Error(t, err)
}

func TestMaxAccumulation(t *testing.T) {
	acc, err := MaxAccumulation(250, 10)
	require.NoError(t, err)
	assert.InDelta(t, 25, acc, 1e-12)

	_, err = MaxAccumulation(250, 110)
	assert.Error(t, err)
	_, err = MaxAccumulation(0, 10)
	assert.Error(t, err)
}

func TestRelievingPressure(t *testing.T) {
	p1, err := RelievingPressure(250, 14.7, 25)
	require.NoError(t, err)
	assert.InDelta(t, 289.7, p1, 1e-9)
}

func TestCriticalDownstreamPressure(t *testing.T) {
	// For k = 1.4 the critical pressure ratio is about 0.528.
	p, err := CriticalDownstreamPressure(100, 1.4)
	require.NoError(t, err)
	assert.InDelta(t, 52.8, p, 0.1)

	_, err = CriticalDownstreamPressure(100, 1.0)
	assert.Error(t, err)
	_, err = CriticalDownstreamPressure(0, 1.4)
	assert.Error(t, err)
}

func TestIsCritical(t *testing.T) {
	// Atmospheric backpressure against ~290 psia relieving pressure chokes.
	critical, err := IsCritical(289.7, 0, 14.7, 1.13)
	require.NoError(t, err)
	assert.True(t, critical)

	// Backpressure close to the relieving pressure does not.
	critical, err = IsCritical(100, 80, 14.7, 1.4)
	require.NoError(t, err)
	assert.False(t, critical)
}

func TestCGas(t *testing.T) {
	// Published API 520 value for air (k = 1.4) is C = 356.
	c, err := CGas(1.4)
	require.NoError(t, err)
	assert.InDelta(t, 356, c, 0.5)

	_, err = CGas(0.9)
	assert.Error(t, err)
	_, err = CGas(2.5)
	assert.Error(t, err)
}

func TestF2Subcritical(t *testing.T) {
	f2, err := F2Subcritical(1.4, 0.8)
	require.NoError(t, err)
	assert.Greater(t, f2, 0.0)
	assert.Less(t, f2, 1.5)

	_, err = F2Subcritical(1.4, 0)
	assert.Error(t, err)
	_, err = F2Subcritical(1.4, 1)
	assert.Error(t, err)
}

func TestRequiredAreaCritical(t *testing.T) {
	a, err := RequiredAreaCritical(18000, 1.13, 536.67, 0.9, 44.1, 289.7, 0.975, 1.0, 1.0)
	require.NoError(t, err)
	assert.Greater(t, a, 0.0)

	// Zero flow needs zero area.
	a, err = RequiredAreaCritical(0, 1.13, 536.67, 0.9, 44.1, 289.7, 0.975, 1.0, 1.0)
	require.NoError(t, err)
	assert.Zero(t, a)
}

func TestRequiredAreaCriticalScalesWithFlow(t *testing.T) {
	a1, err := RequiredAreaCritical(1000, 1.3, 540, 0.95, 30, 150, 0.975, 1.0, 1.0)
	require.NoError(t, err)
	a2, err := RequiredAreaCritical(2000, 1.3, 540, 0.95, 30, 150, 0.975, 1.0, 1.0)
	require.NoError(t, err)
	assert.InEpsilon(t, 2*a1, a2, 1e-12)
}

func TestRequiredAreaSubcritical(t *testing.T) {
	a, err := RequiredAreaSubcritical(1000, 1.3, 540, 0.95, 30, 100, 80, 0.975, 1.0)
	require.NoError(t, err)
	assert.Greater(t, a, 0.0)
}

func TestRequiredAreaSubcriticalRejectsBackwardFlow(t *testing.T) {
	_, err := RequiredAreaSubcritical(1000, 1.3, 540, 0.95, 30, 100, 100, 0.975, 1.0)
	require.Error(t, err)
	assert.True(t, validate.IsInfeasible(err))

	_, err = RequiredAreaSubcritical(1000, 1.3, 540, 0.95, 30, 100, 120, 0.975, 1.0)
	assert.Error(t, err)
}

func TestRequiredAreaRejectsBadFactors(t *testing.T) {
	_, err := RequiredAreaCritical(1000, 1.3, 540, 0.95, 30, 150, 1.2, 1.0, 1.0)
	assert.Error(t, err)
	_, err = RequiredAreaSubcritical(1000, 1.3, 540, 0.95, 30, 100, 80, 0.975, 2.5)
	assert.Error(t, err)
}
