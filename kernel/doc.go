// Package kernel defines the bivariate kernel functions that drive the
// renewal-equation solvers, and evaluates them pointwise or in bulk over
// coordinate matrices.
//
// 🚀 What is a kernel here?
//
//	A pure function of elapsed time and lag:
//	  • forcing kernel  h(t, τ) — the inhomogeneous term of the equation
//	  • hazard kernel   λ(u, τ) — the intensity weighting the convolution
//	Both are plain func(t, tau float64) float64 values supplied by the
//	caller; the solvers treat them as opaque.
//
// ✨ What the package provides:
//
//   - Func — the kernel signature, and Pair bundling h with λ
//   - EvalDense — broadcast evaluation over two same-shaped gonum matrices
//   - Survival / Intensity — ready-made kernels built on gonum/stat/distuv
//     distributions, matching the branching-process prevalence model
//     (h(t,τ) = 1−F(t), λ(u,τ) = R(τ)·f(u))
//   - Constant — the trivial constant kernel, handy in tests
//
// Contract: kernels must be pure and total over every point the solvers
// present to them. The package performs no domain validation — a kernel
// that returns NaN for a negative argument propagates that NaN unchanged.
package kernel
