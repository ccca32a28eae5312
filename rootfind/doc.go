// Package rootfind solves small square systems of nonlinear equations F(x) = 0.
//
// It plays the role of a general multivariate root finder (Newton/Broyden
// family): callers hand over a Func and a starting point and get back the
// root the iteration converged to. No global optimality is implied: when a
// system has several roots, the one reached from the starting point wins.
//
// ⚙️ Usage:
//
//	f := func(dst, x []float64) {
//		dst[0] = x[0]*x[0] - 2
//		dst[1] = x[1] - x[0]
//	}
//	res, err := rootfind.Solve(f, []float64{1, 1}, rootfind.DefaultSettings())
//	if errors.Is(err, rootfind.ErrNotConverged) {
//		// res.X is the best point reached; res.Residual says how good it is.
//	}
//
// Linear algebra (Jacobian solves) runs on gonum/mat; the optional
// derivative-free fallback is gonum/optimize's Nelder–Mead.
package rootfind
