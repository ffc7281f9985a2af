package kernel

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Sentinel errors for kernel wiring.
var (
	// ErrNilKernel indicates a Pair was built with a nil forcing or hazard func.
	ErrNilKernel = errors.New("kernel: forcing and hazard funcs must be non-nil")
	// ErrDimensionMismatch indicates the two coordinate matrices differ in shape.
	ErrDimensionMismatch = errors.New("kernel: coordinate matrices must share dimensions")
)

// Func is a pure bivariate kernel: first argument is elapsed time (or
// recursion depth for the hazard term), second is the lag τ.
type Func func(t, tau float64) float64

// Pair bundles the two kernels of one renewal equation.
type Pair struct {
	// Forcing is h(t, τ), the inhomogeneous term.
	Forcing Func
	// Hazard is λ(u, τ), the intensity inside the convolution integral.
	Hazard Func
}

// NewPair validates and returns a kernel pair.
// Returns ErrNilKernel when either func is nil.
func NewPair(forcing, hazard Func) (Pair, error) {
	if forcing == nil || hazard == nil {
		return Pair{}, ErrNilKernel
	}

	return Pair{Forcing: forcing, Hazard: hazard}, nil
}

// EvalDense evaluates f elementwise over two same-shaped coordinate
// matrices: out[i][j] = f(ts[i][j], taus[i][j]). This is the bulk
// (broadcast) evaluation path used by the block solver to materialize its
// kernel matrices in one pass.
// Returns ErrDimensionMismatch when the shapes differ.
// Complexity: O(r·c) time and memory.
func EvalDense(f Func, ts, taus *mat.Dense) (*mat.Dense, error) {
	r, c := ts.Dims()
	if r2, c2 := taus.Dims(); r2 != r || c2 != c {
		return nil, fmt.Errorf("kernel.EvalDense: %dx%d vs %dx%d: %w", r, c, r2, c2, ErrDimensionMismatch)
	}
	out := mat.NewDense(r, c, nil)
	for i := 0; i < r; i++ {
		tRow, tauRow, outRow := ts.RawRowView(i), taus.RawRowView(i), out.RawRowView(i)
		for j := 0; j < c; j++ {
			outRow[j] = f(tRow[j], tauRow[j])
		}
	}

	return out, nil
}
