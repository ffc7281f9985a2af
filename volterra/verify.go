package volterra

import (
	"fmt"
	"math"
)

// machEps is the double-precision machine epsilon, 2⁻⁵².
const machEps = 0x1p-52

// Report summarizes the elementwise comparison of two result vectors.
type Report struct {
	// MaxAbs is the largest absolute deviation |a[i]−b[i]|.
	MaxAbs float64
	// MaxRel is the largest deviation relative to max(|a[i]|, |b[i]|),
	// taken over entries where that denominator is nonzero.
	MaxRel float64
	// Tol is the tolerance the comparison was judged against.
	Tol float64
	// OK reports whether MaxAbs ≤ Tol.
	OK bool
}

// String renders the report in a compact one-line form.
func (r Report) String() string {
	verdict := "FAIL"
	if r.OK {
		verdict = "OK"
	}

	return fmt.Sprintf("%s max|Δ|=%.3g maxRel=%.3g tol=%.3g", verdict, r.MaxAbs, r.MaxRel, r.Tol)
}

// DefaultTolerance returns the absolute tolerance appropriate for
// comparing two O(n²)-summation results of magnitude scale:
// n·ε·scale, with scale floored at 1 so a near-zero solution still gets
// a meaningful bound.
func DefaultTolerance(n int, scale float64) float64 {
	scale = math.Abs(scale)
	if scale < 1 {
		scale = 1
	}

	return float64(n) * machEps * scale
}

// Verify compares two result vectors elementwise and judges their
// maximum absolute deviation against tol. It is an accumulation-error
// check, not an exact-equality check: the two solvers sum identical
// terms in different orders.
//
// Returns ErrLengthMismatch when the vectors differ in length and
// ErrBadTolerance when tol ≤ 0. NaN deviations fail the check (NaN
// compares false against any tolerance).
// Complexity: O(n) time, O(1) memory.
func Verify(a, b []float64, tol float64) (Report, error) {
	if len(a) != len(b) {
		return Report{}, fmt.Errorf("volterra: Verify(%d, %d): %w", len(a), len(b), ErrLengthMismatch)
	}
	if tol <= 0 {
		return Report{}, fmt.Errorf("volterra: Verify(tol=%v): %w", tol, ErrBadTolerance)
	}

	r := Report{Tol: tol}
	for i := range a {
		d := math.Abs(a[i] - b[i])
		if d > r.MaxAbs || math.IsNaN(d) {
			r.MaxAbs = d
		}
		if denom := math.Max(math.Abs(a[i]), math.Abs(b[i])); denom > 0 {
			if rel := d / denom; rel > r.MaxRel || math.IsNaN(rel) {
				r.MaxRel = rel
			}
		}
	}
	r.OK = r.MaxAbs <= tol

	return r, nil
}
