// Package volterra computes the discretized solution of a renewal-type
// (Volterra) integral equation
//
//	f(t) = h(t) + ∫₀ᵗ f(t−u)·λ(u) du
//
// on a uniform grid, with two independent algorithms that must agree.
//
// Algorithm Outline (Direct, the reference):
//  1. Allocate the (N+1)×(N+1) solution array F, zero-initialized.
//  2. For each row n = 0..N (rows are mutually independent):
//     F[n][0] = h(nΔ, nΔ)
//     For i = 1..n:
//     F[n][i] = h(nΔ, (n−i)Δ) + Δ·Σ_{k=1..i} F[n][i−k]·λ(kΔ, (n−i)Δ)
//  3. The result vector is the diagonal F[n][n] ≈ f(nΔ).
//
// Algorithm Outline (Block, the fast path):
//  1. Materialize H[n][i] = h(nΔ, (n−i)Δ) over the full (N+1)² grid and
//     L[j][k] = Δ·λ((N−k)Δ, jΔ) over the N² grid, both in one broadcast
//     kernel evaluation each.
//  2. Column 0 of F is column 0 of H. For i = 0..N−1, every entry of
//     column i+1 below the diagonal is one dot product:
//     F[n][i+1] = H[n][i+1] + F[n][0:i+1] · L[n−i−1][N−i−1:N]
//     The column-reversed layout of L makes both operands contiguous
//     slices, so the convolution sum runs as a bulk reduction instead of
//     a scalar loop.
//  3. Same diagonal, same numbers — the two algorithms differ only in
//     summation order, and Verify checks they agree within the
//     floating-point accumulation tolerance.
//
// Concurrency:
//   - Direct rows touch only their own slice of F; Options.Workers > 1
//     dispatches them to an errgroup-bounded pool with no locking.
//   - The block column recursion is strictly sequential by nature.
//
// Complexity:
//
//	Time   = O(N³) kernel-weighted multiply-adds for both algorithms
//	         (the block solver wins on constant factor, not asymptotics)
//	Memory = O(N²)
//
// Errors:
//   - grid.ErrNonPositiveSteps — the solve received a zero-value grid
//     that never went through grid.New.
//   - ErrBadOptions     — negative Options.Workers.
//   - ErrShapeMismatch  — internal slice-window disagreement in the block
//     recursion; unreachable in correct code, checked defensively.
//   - ErrLengthMismatch — Verify input vectors differ in length.
//   - ErrBadTolerance   — Verify tolerance is zero or negative.
//
// Kernel evaluation failures have no error channel: kernels are pure
// float funcs, and whatever they return (NaN included) flows through
// untouched.
package volterra
