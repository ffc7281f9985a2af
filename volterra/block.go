package volterra

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/mspakkanen/integral-equations/grid"
	"github.com/mspakkanen/integral-equations/kernel"
)

// SolveBlock computes the solution array by the column-recursive block
// algorithm. It produces the same numbers as SolveDirect (up to
// floating-point summation order) with far lower per-element overhead:
// both kernels are evaluated once, in bulk, and the convolution sum for
// every entry collapses into a single dot product over contiguous slices.
//
// Precomputation:
//
//	H[n][i] = h(nΔ, (n−i)Δ)        (N+1)×(N+1)
//	L[j][k] = Δ·λ((N−k)Δ, jΔ)      N×N, column-reversed by construction
//
// Recursion: column 0 of F is column 0 of H; for i = 0..N−1 and every
// row n = i+1..N,
//
//	F[n][i+1] = H[n][i+1] + F[n][0:i+1] · L[n−i−1][N−i−1:N]
//
// The window row n−i−1 and column offset N−i−1 realign L so that window
// element s carries Δ·λ((i+1−s)Δ, (n−i−1)Δ), exactly the weight the
// direct recursion applies to F[n][s].
//
// Returns kernel.ErrNilKernel for an incomplete kernel pair,
// grid.ErrNonPositiveSteps for a zero-value grid, ErrBadOptions for
// invalid options, and ErrShapeMismatch if a prefix and its window ever
// disagree in length (a defect, not a data error).
// Complexity: O(N³) time, O(N²) memory.
func SolveBlock(g grid.Grid, k kernel.Pair, opts *Options) (*Solution, error) {
	if g.Steps() < 1 {
		return nil, fmt.Errorf("volterra: SolveBlock(N=%d): %w", g.Steps(), grid.ErrNonPositiveSteps)
	}
	if k.Forcing == nil || k.Hazard == nil {
		return nil, kernel.ErrNilKernel
	}
	if _, err := gatherOptions(opts); err != nil {
		return nil, err
	}

	n := g.Steps()

	// Bulk kernel evaluation over the grid's coordinate matrices.
	times, lags := g.ForcingCoords()
	h, err := kernel.EvalDense(k.Forcing, times, lags)
	if err != nil {
		return nil, err
	}
	depths, offsets := g.HazardCoords()
	l, err := kernel.EvalDense(k.Hazard, depths, offsets)
	if err != nil {
		return nil, err
	}
	// Fold the quadrature step into L once, instead of into every sum.
	l.Scale(g.Dt(), l)

	f := mat.NewDense(n+1, n+1, nil)
	for row := 0; row <= n; row++ {
		f.Set(row, 0, h.At(row, 0))
	}

	for i := 0; i < n; i++ {
		for row := i + 1; row <= n; row++ {
			prefix := f.RawRowView(row)[:i+1]
			window := l.RawRowView(row - i - 1)[n-i-1 : n]
			if len(prefix) != len(window) {
				return nil, fmt.Errorf("volterra: column %d row %d: prefix %d vs window %d: %w",
					i+1, row, len(prefix), len(window), ErrShapeMismatch)
			}
			f.Set(row, i+1, h.At(row, i+1)+floats.Dot(prefix, window))
		}
	}

	return &Solution{grid: g, f: f}, nil
}
