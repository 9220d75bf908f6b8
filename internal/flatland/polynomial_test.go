package flatland

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPolynomialRejectsEmpty(t *testing.T) {
	_, err := NewPolynomial(nil)
	require.ErrorIs(t, err, ErrMalformedPolynomial)

	_, err = NewPolynomial([]float64{})
	require.ErrorIs(t, err, ErrMalformedPolynomial)
}

func TestPolynomialEvaluateConstant(t *testing.T) {
	p, err := NewPolynomial([]float64{100})
	require.NoError(t, err)

	assert.Equal(t, 100.0, p.Evaluate(0))
	assert.Equal(t, 100.0, p.Evaluate(5))
}

func TestPolynomialEvaluateLinear(t *testing.T) {
	// y(t) = -3t + 100
	p, err := NewPolynomial([]float64{-3, 100})
	require.NoError(t, err)

	assert.Equal(t, 100.0, p.Evaluate(0))
	assert.Equal(t, 97.0, p.Evaluate(1))
	assert.Equal(t, 94.0, p.Evaluate(2))
}

func TestPolynomialEvaluateQuadratic(t *testing.T) {
	// y(t) = -t^2 - t + 1000
	p, err := NewPolynomial([]float64{-1, -1, 1000})
	require.NoError(t, err)

	assert.Equal(t, 1000.0, p.Evaluate(0))
	assert.Equal(t, 998.0, p.Evaluate(1))
	assert.Equal(t, 994.0, p.Evaluate(2))
}

func TestPolynomialEvaluateAgainstHandComputedSum(t *testing.T) {
	coeffs := []float64{2, -3, 0, 5}
	p, err := NewPolynomial(coeffs)
	require.NoError(t, err)

	for t64 := int64(0); t64 < 20; t64++ {
		var want float64
		deg := len(coeffs)
		for i, c := range coeffs {
			want += c * math.Pow(float64(t64), float64(deg-1-i))
		}
		got := p.Evaluate(t64)
		assert.InDelta(t, want, got, 1e-5)
	}
}

func TestPolynomialSupportsLargeCoefficientCount(t *testing.T) {
	coeffs := make([]float64, 1025)
	coeffs[len(coeffs)-1] = 42
	p, err := NewPolynomial(coeffs)
	require.NoError(t, err)
	assert.Equal(t, 1025, p.Degree())
	assert.Equal(t, 42.0, p.Evaluate(0))
}

func TestPolynomialCopiesCoefficients(t *testing.T) {
	coeffs := []float64{1, 2, 3}
	p, err := NewPolynomial(coeffs)
	require.NoError(t, err)

	coeffs[0] = 999
	assert.Equal(t, 3.0, p.Evaluate(0))
}
