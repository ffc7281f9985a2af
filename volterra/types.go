// Package volterra defines options and the solution container shared by
// the direct and block solvers.
package volterra

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/mspakkanen/integral-equations/grid"
)

// Options configures a solve.
//
// Fields:
//   - Workers — upper bound on concurrent row computations in SolveDirect.
//     0 or 1 runs sequentially. SolveBlock ignores it (its column
//     recursion is inherently sequential).
//
// Example:
//
//	opts := volterra.DefaultOptions()
//	opts.Workers = runtime.NumCPU()
//	sol, err := volterra.SolveDirect(g, k, &opts)
type Options struct {
	Workers int
}

// DefaultOptions returns the default solver configuration:
// sequential execution.
func DefaultOptions() Options {
	return Options{Workers: 0}
}

// Solution is the fully populated triangular solution array produced by
// one solver run, together with the grid it was computed on. Only the
// lower triangle i ≤ n is meaningful; the strictly upper triangle is
// deterministically zero. Immutable once returned.
type Solution struct {
	grid grid.Grid
	f    *mat.Dense // (N+1)×(N+1), row n / depth i
}

// Grid returns the grid the solution was computed on.
func (s *Solution) Grid() grid.Grid { return s.grid }

// At returns the approximation f(n·Δ) = F[n][n], or grid.ErrPointIndex
// when n is outside 0..N. Complexity: O(1).
func (s *Solution) At(n int) (float64, error) {
	if n < 0 || n >= s.grid.Len() {
		return 0, fmt.Errorf("volterra: Solution.At(%d): %w", n, grid.ErrPointIndex)
	}

	return s.f.At(n, n), nil
}

// Result returns a copy of the result vector, the diagonal F[n][n] for
// n = 0..N — the discretized solution paired index-for-index with
// Grid().Points(). Complexity: O(N).
func (s *Solution) Result() []float64 {
	out := make([]float64, s.grid.Len())
	for n := range out {
		out[n] = s.f.At(n, n)
	}

	return out
}

// Dense returns the backing solution array as a read-only matrix view.
// Exposed for inspection and tests; callers must not mutate it.
func (s *Solution) Dense() mat.Matrix { return s.f }

// gatherOptions applies defaults and validates caller options.
func gatherOptions(opts *Options) (Options, error) {
	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}
	if o.Workers < 0 {
		return Options{}, fmt.Errorf("volterra: Workers=%d: %w", o.Workers, ErrBadOptions)
	}

	return o, nil
}
