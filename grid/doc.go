// Package grid builds the uniform time discretization shared by every
// solver in this module, together with the coordinate matrices the block
// solver needs to evaluate kernels in bulk.
//
// 🚀 What is a Grid?
//
//	An immutable set of N+1 equally spaced time points
//	  t_i = i·Δ,  i = 0..N,  Δ = T/N
//	over the horizon [0, T]. It supports:
//	  • O(1) point lookup and spacing queries
//	  • full point-slice export (defensive copy)
//	  • forcing coordinates: elapsed-time and lag matrices for h(t,τ)
//	  • hazard coordinates: depth/offset matrices for λ(u,τ), pre-arranged
//	    so the block recursion can slice them without reindexing
//
// ✨ Guarantees:
//
//   - Strictly increasing points with exact spacing Δ = T/N
//     (each point is computed as i·Δ, never by accumulation)
//   - Construction fails fast on non-positive T or N
//   - No mutation after construction; exported slices are copies
//
// Complexity: O(N) to build a grid, O(N²) to build coordinate matrices.
package grid
