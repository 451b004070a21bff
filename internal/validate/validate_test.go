package validate

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorTaxonomy(t *testing.T) {
	in := Inputf("bad field")
	assert.True(t, IsInput(in))
	assert.False(t, IsInfeasible(in))

	inf := Infeasiblef("no solution")
	assert.True(t, IsInfeasible(inf))
	assert.False(t, IsInput(inf))

	assert.False(t, IsInput(assert.AnError))
	assert.False(t, IsInfeasible(assert.AnError))
}

func TestFieldRequired(t *testing.T) {
	data := map[string]any{"a": 1.0, "blank": "  "}

	v, err := Field(data, "a", "A")
	require.NoError(t, err)
	assert.Equal(t, 1.0, v)

	_, err = Field(data, "missing", "Missing Field")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Missing Field")

	_, err = Field(data, "blank", "Blank Field")
	assert.Error(t, err)
}

func TestFieldOr(t *testing.T) {
	data := map[string]any{"set": 2.0, "blank": ""}
	assert.Equal(t, 2.0, FieldOr(data, "set", 9.0))
	assert.Equal(t, 9.0, FieldOr(data, "missing", 9.0))
	assert.Equal(t, 9.0, FieldOr(data, "blank", 9.0))
}

func TestFloatCoercion(t *testing.T) {
	for _, v := range []any{3.5, json.Number("3.5"), "3.5", " 3.5 "} {
		f, err := Float(v, "X")
		require.NoError(t, err, "%T", v)
		assert.Equal(t, 3.5, f)
	}

	for _, v := range []any{"abc", "", true, nil, "NaN", "Inf"} {
		_, err := Float(v, "X")
		require.Error(t, err, "%v", v)
		assert.True(t, IsInput(err))
	}
}

func TestPositiveAndNonNegative(t *testing.T) {
	_, err := PositiveFloat(0.0, "X")
	assert.Error(t, err)
	_, err = NonNegativeFloat(0.0, "X")
	assert.NoError(t, err)
	_, err = NonNegativeFloat(-0.1, "X")
	assert.Error(t, err)
}

func TestChoice(t *testing.T) {
	got, err := Choice("API520", "Fire Standard", []string{"API2000", "API520"})
	require.NoError(t, err)
	assert.Equal(t, "API520", got)

	_, err = Choice("API521", "Fire Standard", []string{"API2000", "API520"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "'API2000'")
}

func TestBool(t *testing.T) {
	for _, v := range []any{true, "true", "1", "Yes", "on"} {
		b, err := Bool(v, "F")
		require.NoError(t, err, "%v", v)
		assert.True(t, b)
	}
	for _, v := range []any{false, "false", "0", "No", "off"} {
		b, err := Bool(v, "F")
		require.NoError(t, err, "%v", v)
		assert.False(t, b)
	}

	// Numeric zero is false in every JSON spelling.
	for _, v := range []any{0.0, json.Number("0"), json.Number("0.0")} {
		b, err := Bool(v, "F")
		require.NoError(t, err, "%v", v)
		assert.False(t, b)
	}
	b, err := Bool(json.Number("1"), "F")
	require.NoError(t, err)
	assert.True(t, b)
	_, err = Bool("maybe", "F")
	assert.Error(t, err)
}

func TestDomainValidators(t *testing.T) {
	assert.NoError(t, KRatio(1.4))
	assert.Error(t, KRatio(1.0))
	assert.Error(t, KRatio(2.1))

	assert.NoError(t, Compressibility(0.9))
	assert.Error(t, Compressibility(0))
	assert.Error(t, Compressibility(2.5))

	assert.NoError(t, MolecularWeight(44.1))
	assert.Error(t, MolecularWeight(0.5))

	assert.NoError(t, TemperatureC(-100))
	assert.Error(t, TemperatureC(-274))

	assert.NoError(t, CorrectionFactor(0.975, "Kd", 0, 1))
	assert.Error(t, CorrectionFactor(0, "Kd", 0, 1))
	assert.Error(t, CorrectionFactor(1.1, "Kd", 0, 1))
	assert.NoError(t, CorrectionFactor(1.5, "Ke", 0, 2))

	assert.NoError(t, Percentage(10, "Accumulation Percent"))
	assert.Error(t, Percentage(0, "Accumulation Percent"))
	assert.Error(t, Percentage(101, "Accumulation Percent"))
}
