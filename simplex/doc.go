// Package simplex solves canonical-form linear programs
//
//	maximize   cᵀx
//	subject to Ax = b,  x ≥ 0,  b ≥ 0
//
// with a revised simplex method merging a Big-M phase-1/phase-2 into a
// single pass. A is never held in memory in full: it lives on disk behind
// an ondiskmatrix.Matrix, and iterations read the extended matrix's
// transpose one row (i.e. one column of [A | I]) at a time: each non-basic
// column to compute its reduced cost, then the entering column again as the
// pivot column. The small dense vectors (b, c, π, σ, x_B) and the m×m basis
// inverse are the only state kept in memory; the basis inverse is updated
// by a product-form (elementary matrix) pivot at every iteration rather than refactorized.
//
// The caller supplies A as a path to an ondiskmatrix.Matrix[float64] file,
// plus dense b and c vectors. New creates two sibling files — the
// artificial-variable-extended matrix and its transpose — and leaves them
// on disk; cleaning them up is the caller's responsibility
// (see Solver.ExtendedPath / Solver.TransposePath).
package simplex
