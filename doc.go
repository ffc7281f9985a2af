// Package integralequations numerically solves renewal-type (Volterra)
// integral equations of the form
//
//	f(t) = h(t) + ∫₀ᵗ f(t−u)·λ(u) du
//
// discretized over a uniform time grid — the workhorse behind prevalence
// curves of stochastic branching processes.
//
// 🚀 What is inside?
//
//	A small, deterministic numerical library that brings together:
//		• Uniform time grids & bulk coordinate matrices (grid/)
//		• Opaque bivariate kernels h(t,τ) and λ(u,τ), scalar or broadcast (kernel/)
//		• Direct triangular solver — slow, obviously correct reference (volterra/)
//		• Block solver — column-recursive, bulk dot-product reductions (volterra/)
//		• Verifier — elementwise agreement of the two result vectors (volterra/)
//
// ✨ Why choose it?
//
//   - Deterministic – same grid, same kernels, same bits
//   - Two independent algorithms cross-check each other
//   - gonum-backed dense storage, optional row-parallel reference solve
//   - Kernels are plain func(t, τ) float64 — bring any distribution you like
//
// Under the hood, everything is organized under three subpackages:
//
//	grid/     — uniform discretization grid and kernel coordinate matrices
//	kernel/   — bivariate kernel funcs, pairs, broadcast evaluation, helpers
//	volterra/ — the two solvers, the solution array and the verifier
//
// Quick sketch of the recursion (Δ = T/N, row n, depth i):
//
//	F[n][0] = h(nΔ, nΔ)
//	F[n][i] = h(nΔ, (n−i)Δ) + Δ·Σₖ F[n][i−k]·λ(kΔ, (n−i)Δ)
//	f(nΔ) ≈ F[n][n]
//
// Dive into the per-package docs for full examples, complexity notes and the
// exact block-recursion layout.
//
//	go get github.com/mspakkanen/integral-equations
package integralequations
