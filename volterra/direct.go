package volterra

import (
	"fmt"

	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/mat"

	"github.com/mspakkanen/integral-equations/grid"
	"github.com/mspakkanen/integral-equations/kernel"
)

// SolveDirect computes the solution array by direct double recursion —
// the slow, obviously correct reference algorithm.
//
// Row n depends only on earlier entries of row n itself, never on other
// rows, so with opts.Workers > 1 rows are dispatched to an
// errgroup-bounded pool; the result is bitwise identical to a sequential
// run because each row's inner loop is untouched.
//
// Returns kernel.ErrNilKernel for an incomplete kernel pair,
// grid.ErrNonPositiveSteps for a grid that never went through grid.New
// (the zero value), and ErrBadOptions for invalid options.
// Complexity: O(N³) time, O(N²) memory.
func SolveDirect(g grid.Grid, k kernel.Pair, opts *Options) (*Solution, error) {
	if g.Steps() < 1 {
		return nil, fmt.Errorf("volterra: SolveDirect(N=%d): %w", g.Steps(), grid.ErrNonPositiveSteps)
	}
	if k.Forcing == nil || k.Hazard == nil {
		return nil, kernel.ErrNilKernel
	}
	o, err := gatherOptions(opts)
	if err != nil {
		return nil, err
	}

	n := g.Steps()
	pts := g.Points()
	dt := g.Dt()
	f := mat.NewDense(n+1, n+1, nil)

	if o.Workers > 1 {
		var eg errgroup.Group
		eg.SetLimit(o.Workers)
		for row := 0; row <= n; row++ {
			row := row
			eg.Go(func() error {
				directRow(f.RawRowView(row), row, dt, pts, k)

				return nil
			})
		}
		// Rows cannot fail; Wait only joins the pool.
		_ = eg.Wait()
	} else {
		for row := 0; row <= n; row++ {
			directRow(f.RawRowView(row), row, dt, pts, k)
		}
	}

	return &Solution{grid: g, f: f}, nil
}

// directRow fills row n of the solution array in place:
//
//	out[0] = h(nΔ, nΔ)
//	out[i] = h(nΔ, (n−i)Δ) + Δ·Σ_{k=1..i} out[i−k]·λ(kΔ, (n−i)Δ)
//
// out is the full row slice; entries beyond index n stay zero.
// The inner loop is strictly sequential: out[i] reads every out[<i].
func directRow(out []float64, n int, dt float64, pts []float64, k kernel.Pair) {
	t := pts[n]
	out[0] = k.Forcing(t, t)
	for i := 1; i <= n; i++ {
		tau := pts[n-i]
		sum := 0.0
		for depth := 1; depth <= i; depth++ {
			sum += out[i-depth] * k.Hazard(pts[depth], tau)
		}
		out[i] = k.Forcing(t, tau) + dt*sum
	}
}
