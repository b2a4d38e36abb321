package taxonomy

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"
)

func TestSoftmaxWithTemperature_StandardAtOne(t *testing.T) {
	in := []float64{1, 2, 3}
	got, err := SoftmaxWithTemperature(in, 1)
	require.NoError(t, err)

	denom := math.Exp(1) + math.Exp(2) + math.Exp(3)
	want := []float64{math.Exp(1) / denom, math.Exp(2) / denom, math.Exp(3) / denom}
	assert.True(t, floats.EqualApprox(want, got, 1e-12), "got %v want %v", got, want)
}

func TestSoftmaxWithTemperature_SumsToOneAndPositive(t *testing.T) {
	for _, temp := range []float64{0.1, 0.5, 1, 1.2, 4} {
		got, err := SoftmaxWithTemperature([]float64{3.2, -1.1, 0.4, 7.5, -9}, temp)
		require.NoError(t, err)
		require.Len(t, got, 5)
		assert.InDelta(t, 1.0, floats.Sum(got), 1e-12)
		for _, p := range got {
			assert.Greater(t, p, 0.0)
		}
	}
}

func TestSoftmaxWithTemperature_LargeLogitsStable(t *testing.T) {
	got, err := SoftmaxWithTemperature([]float64{1000, 1001, 1002}, 1)
	require.NoError(t, err)
	want, err := SoftmaxWithTemperature([]float64{0, 1, 2}, 1)
	require.NoError(t, err)
	assert.True(t, floats.EqualApprox(want, got, 1e-12))
}

func TestSoftmaxWithTemperature_Sharpness(t *testing.T) {
	in := []float64{1.5, -0.3, 0.1}
	var prev float64
	for i, temp := range []float64{0.05, 0.3, 0.7, 1, 2, 10} {
		p, err := SoftmaxWithTemperature(in, temp)
		require.NoError(t, err)
		h := Entropy(p)
		if i > 0 {
			assert.Greater(t, h, prev, "temperature %v", temp)
		}
		prev = h
	}

	p, err := SoftmaxWithTemperature(in, 1e-4)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, p[0], 1e-12)
}

func TestSoftmaxWithTemperature_ZeroIsUniform(t *testing.T) {
	for _, n := range []int{1, 3, 6} {
		for _, temp := range []float64{1e-6, 1, 1.2, 1e6} {
			got, err := SoftmaxWithTemperature(make([]float64, n), temp)
			require.NoError(t, err)
			for _, p := range got {
				assert.Equal(t, 1/float64(n), p)
			}
		}
	}
}

func TestSoftmaxWithTemperature_InvalidTemperature(t *testing.T) {
	for _, temp := range []float64{0, -1, math.NaN(), math.Inf(-1)} {
		_, err := SoftmaxWithTemperature([]float64{1, 2, 3}, temp)
		assert.ErrorIs(t, err, ErrInvalidParameter, "temperature %v", temp)
	}
}

func TestSoftmaxWithTemperature_Infinities(t *testing.T) {
	got, err := SoftmaxWithTemperature([]float64{math.Inf(1), 1, math.Inf(1)}, 1)
	require.NoError(t, err)
	assert.Equal(t, []float64{0.5, 0, 0.5}, got)

	got, err = SoftmaxWithTemperature([]float64{math.Inf(-1), math.Inf(-1)}, 1)
	require.NoError(t, err)
	assert.Equal(t, []float64{0.5, 0.5}, got)

	got, err = SoftmaxWithTemperature([]float64{math.Inf(-1), 0}, 1)
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 1}, got)
}

func TestSoftmaxWithTemperature_Empty(t *testing.T) {
	got, err := SoftmaxWithTemperature(nil, 1)
	require.NoError(t, err)
	assert.Empty(t, got)
}
