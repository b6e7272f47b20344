// Package jubjub implements arithmetic on the jubjub curve, the
// twisted Edwards curve -u^2 + v^2 = 1 + d*u^2*v^2 over the scalar
// field of BLS12-381, with d = -(10240/10241).
//
// The package provides base field (Fq) and scalar field (Fr)
// arithmetic, complete point addition and doubling in extended
// coordinates, constant-time windowed scalar multiplication (generic
// and fixed-base), a 32-byte point codec, and batch normalization.
//
// All operations on secret data are constant-time: no branch and no
// memory access depends on secret values, and predicates over secrets
// are reported through the Choice type rather than plain booleans.
package jubjub
