// Package cmatrix offers a small dense complex matrix used to represent
// linear optical networks.
//
// The cmatrix package provides:
//
//   - Dense: a row-major complex128 matrix with bounds-checked At/Set that
//     return sentinel errors instead of panicking.
//   - Kernels: Mul, ConjTranspose, Scale.
//   - Diagnostics: AllClose, MaxOffDiagonal, ValidateUnitary.
//
// Matrices in this domain are small (one row/column per optical mode), so the
// kernels favour clarity and deterministic loop orders over blocking.
//
// See the reck package for the main consumer.
package cmatrix
