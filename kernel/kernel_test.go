package kernel_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/mspakkanen/integral-equations/kernel"
)

// TestNewPair_NilKernel verifies both nil slots are rejected.
func TestNewPair_NilKernel(t *testing.T) {
	_, err := kernel.NewPair(nil, kernel.Constant(1))
	assert.ErrorIs(t, err, kernel.ErrNilKernel)

	_, err = kernel.NewPair(kernel.Constant(1), nil)
	assert.ErrorIs(t, err, kernel.ErrNilKernel)

	p, err := kernel.NewPair(kernel.Constant(2), kernel.Constant(3))
	require.NoError(t, err)
	assert.Equal(t, 2.0, p.Forcing(0, 0))
	assert.Equal(t, 3.0, p.Hazard(0, 0))
}

// TestEvalDense_Broadcast checks elementwise evaluation over coordinate matrices.
func TestEvalDense_Broadcast(t *testing.T) {
	ts := mat.NewDense(2, 3, []float64{0, 1, 2, 3, 4, 5})
	taus := mat.NewDense(2, 3, []float64{5, 4, 3, 2, 1, 0})

	out, err := kernel.EvalDense(func(a, b float64) float64 { return a*10 + b }, ts, taus)
	require.NoError(t, err)

	want := []float64{5, 14, 23, 32, 41, 50}
	r, c := out.Dims()
	require.Equal(t, 2, r)
	require.Equal(t, 3, c)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			assert.Equal(t, want[i*c+j], out.At(i, j))
		}
	}
}

// TestEvalDense_DimensionMismatch ensures shape disagreement errors out.
func TestEvalDense_DimensionMismatch(t *testing.T) {
	ts := mat.NewDense(2, 2, nil)
	taus := mat.NewDense(2, 3, nil)

	_, err := kernel.EvalDense(kernel.Constant(0), ts, taus)
	assert.ErrorIs(t, err, kernel.ErrDimensionMismatch)
}

// TestEvalDense_NaNPropagates confirms the evaluator performs no domain
// validation: kernel output, NaN included, flows through untouched.
func TestEvalDense_NaNPropagates(t *testing.T) {
	ts := mat.NewDense(1, 2, []float64{-1, 4})
	taus := mat.NewDense(1, 2, []float64{0, 0})

	out, err := kernel.EvalDense(func(a, _ float64) float64 { return math.Sqrt(a) }, ts, taus)
	require.NoError(t, err)
	assert.True(t, math.IsNaN(out.At(0, 0)))
	assert.Equal(t, 2.0, out.At(0, 1))
}

// TestSurvival checks h(t,τ) = 1−F(t) against the exponential closed form
// and that the lag argument is ignored.
func TestSurvival(t *testing.T) {
	dist := distuv.Exponential{Rate: 2}
	h := kernel.Survival(dist)

	assert.Equal(t, 1.0, h(0, 0), "nothing has expired at t=0")
	assert.InEpsilon(t, math.Exp(-2*1.5), h(1.5, 0), 1e-12)
	assert.Equal(t, h(1.5, 0), h(1.5, 7), "survival must ignore the lag")
}

// TestIntensity checks λ(u,τ) = R(τ)·f(u) with a time-varying reproduction rate.
func TestIntensity(t *testing.T) {
	dist := distuv.Exponential{Rate: 1}
	reproduction := func(tau float64) float64 { return 2 - tau }
	lambda := kernel.Intensity(reproduction, dist)

	assert.InEpsilon(t, 2*math.Exp(-0.5), lambda(0.5, 0), 1e-12)
	assert.InEpsilon(t, 1*math.Exp(-0.5), lambda(0.5, 1), 1e-12)
	assert.Equal(t, 0.0, lambda(0.5, 2), "zero reproduction kills the intensity")
}
