// Package disklp solves canonical-form linear programs over disk-backed
// dense matrices, without ever holding the full constraint matrix in
// memory.
//
// Three subpackages carry the work:
//
//	typeinfo/    — element type descriptors shared by the on-disk format
//	ondiskmatrix/ — the fixed-header, row-major on-disk matrix format
//	simplex/     — the revised simplex method (Big-M) driving it
//
// See simplex.New and simplex.Solver.Solve for the entry points.
package disklp
