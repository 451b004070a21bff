package sizing

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"Relief/internal/validate"
)

func TestOrificeTableLoaded(t *testing.T) {
	require.Len(t, orifices, 14)
	assert.Equal(t, "D", orifices[0].Letter)
	assert.Equal(t, "T", orifices[len(orifices)-1].Letter)
	for i := 1; i < len(orifices); i++ {
		assert.Greater(t, orifices[i].AreaIn2, orifices[i-1].AreaIn2)
	}
}

func TestSelectOrificeZeroAreaReturnsSmallest(t *testing.T) {
	o, err := SelectOrifice(0)
	require.NoError(t, err)
	assert.Equal(t, "D", o.Letter)
	assert.InDelta(t, 0.110, o.AreaIn2, 1e-9)
}

func TestSelectOrificePicksSmallestSufficient(t *testing.T) {
	o, err := SelectOrifice(0.6)
	require.NoError(t, err)
	assert.Equal(t, "H", o.Letter)

	// An exact table area selects that letter, not the next one up.
	o, err = SelectOrifice(1.287)
	require.NoError(t, err)
	assert.Equal(t, "J", o.Letter)
}

func TestSelectOrificeTooLarge(t *testing.T) {
	_, err := SelectOrifice(26.5)
	require.Error(t, err)
	assert.True(t, validate.IsInfeasible(err))
	assert.Contains(t, err.Error(), "'T'")
	assert.Contains(t, err.Error(), "rupture disc")
}

func TestSelectOrificeRejectsNegative(t *testing.T) {
	_, err := SelectOrifice(-0.1)
	require.Error(t, err)
	assert.True(t, validate.IsInput(err))
}

func TestOrificeDiameter(t *testing.T) {
	// Area of a 2 in bore is π in².
	assert.InDelta(t, 2.0, OrificeDiameter(math.Pi), 1e-12)
}
