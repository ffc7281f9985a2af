package grid

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Grid is an immutable uniform discretization of [0, T] into N steps.
// points holds the N+1 values i·Δ in strictly increasing order.
type Grid struct {
	horizon float64
	steps   int
	dt      float64
	points  []float64
}

// New constructs a uniform grid over [0, T] with N steps (N+1 points).
// Returns ErrNonPositiveHorizon if T ≤ 0, ErrNonPositiveSteps if N < 1.
// Each point is computed as i·Δ rather than by repeated addition, so the
// spacing between adjacent points is exactly Δ = T/N.
// Complexity: O(N) time and memory.
func New(horizon float64, steps int) (Grid, error) {
	if horizon <= 0 {
		return Grid{}, fmt.Errorf("grid.New(T=%v): %w", horizon, ErrNonPositiveHorizon)
	}
	if steps < 1 {
		return Grid{}, fmt.Errorf("grid.New(N=%d): %w", steps, ErrNonPositiveSteps)
	}
	dt := horizon / float64(steps)
	points := make([]float64, steps+1)
	for i := range points {
		points[i] = float64(i) * dt
	}

	return Grid{horizon: horizon, steps: steps, dt: dt, points: points}, nil
}

// Horizon returns the time horizon T. Complexity: O(1).
func (g Grid) Horizon() float64 { return g.horizon }

// Steps returns the step count N. Complexity: O(1).
func (g Grid) Steps() int { return g.steps }

// Len returns the number of grid points, N+1. Complexity: O(1).
func (g Grid) Len() int { return g.steps + 1 }

// Dt returns the grid spacing Δ = T/N. Complexity: O(1).
func (g Grid) Dt() float64 { return g.dt }

// At returns the i-th grid point i·Δ, or ErrPointIndex when i is outside 0..N.
// Complexity: O(1).
func (g Grid) At(i int) (float64, error) {
	if i < 0 || i >= len(g.points) {
		return 0, fmt.Errorf("grid.At(%d): %w", i, ErrPointIndex)
	}

	return g.points[i], nil
}

// Points returns a copy of all N+1 grid points.
// The copy keeps the grid immutable. Complexity: O(N).
func (g Grid) Points() []float64 {
	out := make([]float64, len(g.points))
	copy(out, g.points)

	return out
}

// ForcingCoords returns the (N+1)×(N+1) coordinate matrices for bulk
// evaluation of the forcing kernel h:
//
//	times[n][i] = n·Δ       (elapsed time, constant along each row)
//	lags[n][i]  = (n−i)·Δ   (lag, constant along each anti-diagonal)
//
// Entry (n,i) of a kernel evaluated over these matrices is h(nΔ, (n−i)Δ);
// only the lower triangle i ≤ n is consumed by the solvers, the strictly
// upper triangle carries negative lags and is never read.
// Complexity: O(N²) time and memory.
func (g Grid) ForcingCoords() (times, lags *mat.Dense) {
	n := g.Len()
	times = mat.NewDense(n, n, nil)
	lags = mat.NewDense(n, n, nil)
	for row := 0; row < n; row++ {
		t := g.points[row]
		for col := 0; col < n; col++ {
			times.Set(row, col, t)
			lags.Set(row, col, t-g.points[col])
		}
	}

	return times, lags
}

// HazardCoords returns the N×N coordinate matrices for bulk evaluation of
// the hazard kernel λ, pre-arranged for the block recursion:
//
//	depths[j][k]  = (N−k)·Δ   (recursion depth u, column-reversed)
//	offsets[j][k] = j·Δ       (lag τ, constant along each row)
//
// With this layout the contiguous slice rows 0..N−i−1 × cols N−i−1..N−1 of
// λ(depths, offsets) pairs element-for-element with the already-computed
// prefix of a solution column, so the convolution sum becomes one dot
// product per row. Both matrices are one smaller than the forcing pair in
// each dimension: the recursion never reaches depth (N+1)·Δ or offset N·Δ.
// Complexity: O(N²) time and memory.
func (g Grid) HazardCoords() (depths, offsets *mat.Dense) {
	n := g.steps
	depths = mat.NewDense(n, n, nil)
	offsets = mat.NewDense(n, n, nil)
	for row := 0; row < n; row++ {
		tau := g.points[row]
		for col := 0; col < n; col++ {
			depths.Set(row, col, g.points[n-col])
			offsets.Set(row, col, tau)
		}
	}

	return depths, offsets
}
