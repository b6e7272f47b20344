package jubjub

import "github.com/pkg/errors"

// This file implements operations on points of the jubjub curve, the
// twisted Edwards curve
//   -u^2 + v^2 = 1 + d*u^2*v^2
// over GF(q), with d = -(10240/10241). The curve order is 8*r for the
// prime r; cryptographic applications work in the prime-order subgroup.
//
// API: points come in two representations. AffinePoint holds plain
// (u, v) coordinates; ExtendedPoint holds extended projective
// coordinates (U, V, Z, T1, T2) with u = U/Z, v = V/Z and
// T1*T2 = U*V/Z, which support complete addition formulas with no
// exceptional case. Structures are mutable; functions modify the point
// on which they are called and it is always acceptable to use the
// destination structure as one of the operands. All such functions
// return a pointer to the structure on which they were called, so that
// calls may be syntactically chained.
//
// A point can be encoded to, and decoded from, a sequence of 32 bytes.
// Encoding is unique and verified. Decoding an invalid sequence of
// bytes yields an error flag. The identity can be encoded (as the byte
// 0x01 followed by 31 bytes of value 0x00).
//
// Unless explicitly documented, all functions here are constant-time.

// AffinePoint is a point on the curve in affine (u, v) coordinates.
//
// Default value for a point structure is not valid. If allocating a
// point structure manually, make sure to properly set it to a valid
// point before using it as source.
type AffinePoint struct {
	u, v Fq
}

// ExtendedPoint is a point on the curve in extended projective
// coordinates.
//
// Default value for a point structure is not valid. The
// NewExtendedPoint() function makes sure to return only initialized
// structures. If allocating a point structure manually, make sure to
// properly set it to a valid point before using it as source.
type ExtendedPoint struct {
	u, v, z, t1, t2 Fq
}

// AffineNielsPoint is a precomputed affine point: the coordinate pair
// (u, v) is stored as (v + u, v - u, 2*d*u*v), which saves a few
// multiplications when the point is repeatedly added to an
// ExtendedPoint (e.g. from a precomputed table).
type AffineNielsPoint struct {
	vPlusU, vMinusU, t2d Fq
}

// ExtendedNielsPoint is the projective counterpart of
// AffineNielsPoint: (V + U, V - U, Z, 2*d*T1*T2).
type ExtendedNielsPoint struct {
	vPlusU, vMinusU, z, t2d Fq
}

// completedPoint is the transient output of the addition and doubling
// formulas ((U/Z, V/T) coordinates); it is immediately converted back
// to extended coordinates.
type completedPoint struct {
	u, v, z, t Fq
}

// Preallocated identity point (affine). Do not modify.
var affineIdentity = AffinePoint{
	u: Fq{0, 0, 0, 0},
	v: fqOne,
}

// Preallocated conventional generator point (affine). This is a
// generator of the prime-order subgroup; its coordinates are derived
// from the smallest valid v-coordinate of a point of the full group,
// multiplied by the cofactor. Do not modify.
var affineGenerator = AffinePoint{
	u: Fq{
		0x264AB2AE27790D7A, 0x7715419FE4328D1B,
		0x26E742FCCD3474AE, 0x0EDAE7E0E475434B},
	v: Fq{
		0x30B42F35B6518E59, 0x599E51C9EC7AB10A,
		0x3798281A9E12A20F, 0x30AF1CC0DF805B82},
}

// NewExtendedPoint creates a new point, set to the identity.
func NewExtendedPoint() *ExtendedPoint {
	P := new(ExtendedPoint)
	P.Identity()
	return P
}

// =======================================================================
// AffinePoint

// Set the point P to the identity (0, 1).
// A pointer to this structure is returned.
func (P *AffinePoint) Identity() *AffinePoint {
	*P = affineIdentity
	return P
}

// Set the point P to the conventional generator (G).
// A pointer to this structure is returned.
func (P *AffinePoint) Generator() *AffinePoint {
	*P = affineGenerator
	return P
}

// P <- Q
func (P *AffinePoint) Set(Q *AffinePoint) *AffinePoint {
	*P = *Q
	return P
}

// If ctl == 1:  P <- P1
// If ctl == 0:  P <- P2
func (P *AffinePoint) Select(P1, P2 *AffinePoint, ctl Choice) *AffinePoint {
	P.u.Select(&P1.u, &P2.u, ctl)
	P.v.Select(&P1.v, &P2.v, ctl)
	return P
}

// P <- -Q (negation maps (u, v) to (-u, v))
func (P *AffinePoint) Neg(Q *AffinePoint) *AffinePoint {
	P.u.Neg(&Q.u)
	P.v.Set(&Q.v)
	return P
}

// U returns a copy of the u-coordinate of P.
func (P *AffinePoint) U() Fq {
	return P.u
}

// V returns a copy of the v-coordinate of P.
func (P *AffinePoint) V() Fq {
	return P.v
}

// Equal returns 1 if P == Q, or 0 otherwise.
func (P *AffinePoint) Equal(Q *AffinePoint) Choice {
	return P.u.Eq(&Q.u).And(P.v.Eq(&Q.v))
}

// IsIdentity returns 1 if P is the identity, or 0 otherwise.
func (P *AffinePoint) IsIdentity() Choice {
	return P.u.IsZero().And(P.v.Eq(&fqOne))
}

// Set P to the affine representation of Q. If Q is degenerate (Z == 0,
// which cannot be produced by the public API), the result is (0, 0).
// A pointer to this structure is returned.
func (P *AffinePoint) FromExtended(Q *ExtendedPoint) *AffinePoint {
	var zi Fq
	zi.Inv(&Q.z)
	P.u.Mul(&Q.u, &zi)
	P.v.Mul(&Q.v, &zi)
	return P
}

// toNiels returns the precomputed form of P.
func (P *AffinePoint) toNiels(N *AffineNielsPoint) *AffineNielsPoint {
	N.vPlusU.Add(&P.v, &P.u)
	N.vMinusU.Sub(&P.v, &P.u)
	N.t2d.Mul(&P.u, &P.v)
	N.t2d.Mul(&N.t2d, &fqD2)
	return N
}

// isOnCurve returns 1 if the coordinates of P satisfy the curve
// equation, or 0 otherwise.
func (P *AffinePoint) isOnCurve() Choice {
	// -u^2 + v^2 == 1 + d*u^2*v^2
	var u2, v2, lhs, rhs Fq
	u2.Sqr(&P.u)
	v2.Sqr(&P.v)
	lhs.Sub(&v2, &u2)
	rhs.Mul(&u2, &v2)
	rhs.Mul(&rhs, &fqD)
	rhs.Add(&rhs, &fqOne)
	return lhs.Eq(&rhs)
}

// Encode a point into exactly 32 bytes. The bytes are appended to the
// provided slice; the new slice is returned. The extension is done in
// place if the provided slice has enough capacity.
//
// The encoding is the canonical little-endian encoding of v, with the
// sign of u (its least significant bit) stored in the top bit of the
// last byte (v < q < 2^255, so that bit is otherwise always zero).
func (P *AffinePoint) Encode(dst []byte) []byte {
	n := len(dst)
	dst = P.v.Encode(dst)
	dst[n+31] |= byte(P.u.IsOdd()) << 7
	return dst
}

// Bytes encodes a point into exactly 32 bytes.
func (P *AffinePoint) Bytes() [32]byte {
	var d [32]byte
	P.Encode(d[:0])
	return d
}

// Decode a point from exactly 32 bytes. Returned value is 1 if the
// point could be successfully decoded, or 0 otherwise; in the latter
// case, P is set to the identity. Decoding fails if the v-coordinate
// is not canonical (not lower than q), or if the recovered u^2 is not
// a square in the field. Which of these checks failed is not revealed,
// by timing or otherwise, beyond the single returned flag.
func (P *AffinePoint) Decode(src []byte) Choice {
	var buf [32]byte
	copy(buf[:], src[:32])
	sign := Choice(buf[31] >> 7)
	buf[31] &= 0x7F

	var v Fq
	ok := v.Decode(buf[:])

	// u^2 = (v^2 - 1) / (d*v^2 + 1). The denominator cannot be zero
	// for a canonical v (since -1/d is a non-square), but the
	// inversion reports it anyway and the flag is folded in.
	var v2, num, den Fq
	v2.Sqr(&v)
	num.Sub(&v2, &fqOne)
	den.Mul(&v2, &fqD)
	den.Add(&den, &fqOne)
	ok = ok.And(den.Inv(&den))

	var u Fq
	num.Mul(&num, &den)
	ok = ok.And(u.Sqrt(&num))

	// Pick the root whose parity matches the encoded sign bit.
	u.CondNeg(&u, u.IsOdd().Xor(sign))

	P.u.Select(&u, &fqZero, ok)
	P.v.Select(&v, &fqOne, ok)
	return ok
}

// SetBytes decodes a canonical 32-byte point encoding; it returns
// ErrInvalidEncoding if the source is not exactly 32 bytes or does not
// encode a curve point.
func (P *AffinePoint) SetBytes(src []byte) (*AffinePoint, error) {
	if len(src) != 32 {
		return nil, errors.Wrap(ErrInvalidEncoding, "point must be 32 bytes")
	}
	if !P.Decode(src).Bool() {
		return nil, errors.Wrap(ErrInvalidEncoding, "not a valid curve point")
	}
	return P, nil
}

// =======================================================================
// ExtendedPoint

// Set the point P to the identity.
// A pointer to this structure is returned.
func (P *ExtendedPoint) Identity() *ExtendedPoint {
	P.u.SetZero()
	P.v.SetOne()
	P.z.SetOne()
	P.t1.SetZero()
	P.t2.SetZero()
	return P
}

// Set the point P to the conventional generator (G).
// A pointer to this structure is returned.
func (P *ExtendedPoint) Generator() *ExtendedPoint {
	return P.FromAffine(&affineGenerator)
}

// P <- Q
func (P *ExtendedPoint) Set(Q *ExtendedPoint) *ExtendedPoint {
	*P = *Q
	return P
}

// If ctl == 1:  P <- P1
// If ctl == 0:  P <- P2
func (P *ExtendedPoint) Select(P1, P2 *ExtendedPoint, ctl Choice) *ExtendedPoint {
	P.u.Select(&P1.u, &P2.u, ctl)
	P.v.Select(&P1.v, &P2.v, ctl)
	P.z.Select(&P1.z, &P2.z, ctl)
	P.t1.Select(&P1.t1, &P2.t1, ctl)
	P.t2.Select(&P1.t2, &P2.t2, ctl)
	return P
}

// Set P to the extended representation of the affine point a (Z = 1).
// A pointer to this structure is returned.
func (P *ExtendedPoint) FromAffine(a *AffinePoint) *ExtendedPoint {
	P.u.Set(&a.u)
	P.v.Set(&a.v)
	P.z.SetOne()
	P.t1.Set(&a.u)
	P.t2.Set(&a.v)
	return P
}

// P <- -Q
func (P *ExtendedPoint) Neg(Q *ExtendedPoint) *ExtendedPoint {
	P.u.Neg(&Q.u)
	P.v.Set(&Q.v)
	P.z.Set(&Q.z)
	P.t1.Neg(&Q.t1)
	P.t2.Set(&Q.t2)
	return P
}

// Equal returns 1 if P == Q (as curve points, regardless of the
// internal Z), or 0 otherwise.
func (P *ExtendedPoint) Equal(Q *ExtendedPoint) Choice {
	// (U1/Z1 == U2/Z2) and (V1/Z1 == V2/Z2), by cross-multiplication
	// (no inversion needed).
	var t1, t2 Fq
	t1.Mul(&P.u, &Q.z)
	t2.Mul(&Q.u, &P.z)
	eq := t1.Eq(&t2)
	t1.Mul(&P.v, &Q.z)
	t2.Mul(&Q.v, &P.z)
	return eq.And(t1.Eq(&t2))
}

// IsIdentity returns 1 if P is the identity, or 0 otherwise.
func (P *ExtendedPoint) IsIdentity() Choice {
	// (0/Z, Z/Z) for any nonzero Z.
	return P.u.IsZero().And(P.v.Eq(&P.z))
}

// IsSmallOrder returns 1 if P is in the 8-torsion subgroup (its order
// divides the cofactor), or 0 otherwise. Such points (other than the
// identity) survive subgroup confinement by construction and must be
// rejected where a prime-order element is required.
func (P *ExtendedPoint) IsSmallOrder() Choice {
	// The 8-torsion points are exactly those whose fourth multiple
	// has u == 0 (the identity or (0, -1)).
	var Q ExtendedPoint
	Q.Double(P)
	Q.Double(&Q)
	return Q.u.IsZero()
}

// IsTorsionFree returns 1 if P is in the prime-order subgroup (which
// includes the identity), or 0 otherwise.
func (P *ExtendedPoint) IsTorsionFree() Choice {
	var Q ExtendedPoint
	Q.mulCanonical(P, &frOrder)
	return Q.IsIdentity()
}

// IsPrimeOrder returns 1 if P has order exactly r (i.e. it is in the
// prime-order subgroup and is not the identity), or 0 otherwise.
func (P *ExtendedPoint) IsPrimeOrder() Choice {
	var Q ExtendedPoint
	Q.mulCanonical(P, &frOrder)
	return Q.IsIdentity().And(P.IsIdentity().Not())
}

// P <- [8]Q (multiplication by the cofactor, mapping any point of the
// full group into the prime-order subgroup).
// A pointer to this structure is returned.
func (P *ExtendedPoint) MulByCofactor(Q *ExtendedPoint) *ExtendedPoint {
	return P.DoubleX(Q, 3)
}

// toNiels returns the precomputed form of P.
func (P *ExtendedPoint) toNiels(N *ExtendedNielsPoint) *ExtendedNielsPoint {
	N.vPlusU.Add(&P.v, &P.u)
	N.vMinusU.Sub(&P.v, &P.u)
	N.z.Set(&P.z)
	N.t2d.Mul(&P.t1, &P.t2)
	N.t2d.Mul(&N.t2d, &fqD2)
	return N
}

// isOnCurve returns 1 if P is a valid point representation (Z != 0,
// coordinates satisfy the projective curve equation, and T1*T2 is
// consistent with U*V/Z), or 0 otherwise.
func (P *ExtendedPoint) isOnCurve() Choice {
	// (V^2 - U^2)*Z^2 == Z^4 + d*U^2*V^2  and  Z*T1*T2 == U*V
	var u2, v2, z2, lhs, rhs, t Fq
	u2.Sqr(&P.u)
	v2.Sqr(&P.v)
	z2.Sqr(&P.z)
	lhs.Sub(&v2, &u2)
	lhs.Mul(&lhs, &z2)
	rhs.Mul(&u2, &v2)
	rhs.Mul(&rhs, &fqD)
	t.Sqr(&z2)
	rhs.Add(&rhs, &t)
	eq := lhs.Eq(&rhs)
	lhs.Mul(&P.t1, &P.t2)
	lhs.Mul(&lhs, &P.z)
	rhs.Mul(&P.u, &P.v)
	return eq.And(lhs.Eq(&rhs)).And(P.z.IsZero().Not())
}

// Encode a point into exactly 32 bytes (same format as
// AffinePoint.Encode; this normalizes the point, at the cost of a
// field inversion, so batches should prefer BatchNormalize). The bytes
// are appended to the provided slice; the new slice is returned.
func (P *ExtendedPoint) Encode(dst []byte) []byte {
	var a AffinePoint
	a.FromExtended(P)
	return a.Encode(dst)
}

// Bytes encodes a point into exactly 32 bytes.
func (P *ExtendedPoint) Bytes() [32]byte {
	var d [32]byte
	P.Encode(d[:0])
	return d
}

// Decode a point from exactly 32 bytes. Returned value is 1 if the
// point could be successfully decoded, or 0 otherwise; in the latter
// case, P is set to the identity.
func (P *ExtendedPoint) Decode(src []byte) Choice {
	var a AffinePoint
	ok := a.Decode(src)
	P.FromAffine(&a)
	return ok
}

// SetBytes decodes a canonical 32-byte point encoding; it returns
// ErrInvalidEncoding if the source is not exactly 32 bytes or does not
// encode a curve point.
func (P *ExtendedPoint) SetBytes(src []byte) (*ExtendedPoint, error) {
	var a AffinePoint
	if _, err := a.SetBytes(src); err != nil {
		return nil, err
	}
	return P.FromAffine(&a), nil
}

// =======================================================================
// Group law
//
// The addition formulas are the complete formulas for twisted Edwards
// curves with a = -1 (Hisil, Wong, Carter and Dawson, "Twisted Edwards
// Curves Revisited", section 3.1); completeness means there is no
// exceptional case to handle. Doubling uses the dedicated
// "dbl-2008-bbjlp" formulas.

// Convert the completed output of a formula back to extended
// coordinates (4 multiplications).
func (c *completedPoint) toExtended(P *ExtendedPoint) *ExtendedPoint {
	P.u.Mul(&c.u, &c.t)
	P.v.Mul(&c.v, &c.z)
	P.z.Mul(&c.z, &c.t)
	P.t1.Set(&c.u)
	P.t2.Set(&c.v)
	return P
}

// P <- P1 + P2   (precomputed second operand)
// A pointer to this structure is returned.
func (P *ExtendedPoint) addNiels(P1 *ExtendedPoint, P2 *ExtendedNielsPoint) *ExtendedPoint {
	var a, b, cc, dd Fq
	a.Sub(&P1.v, &P1.u)
	a.Mul(&a, &P2.vMinusU)
	b.Add(&P1.v, &P1.u)
	b.Mul(&b, &P2.vPlusU)
	cc.Mul(&P1.t1, &P1.t2)
	cc.Mul(&cc, &P2.t2d)
	dd.Mul(&P1.z, &P2.z)
	dd.Double(&dd)

	var c completedPoint
	c.u.Sub(&b, &a)
	c.v.Add(&b, &a)
	c.z.Add(&dd, &cc)
	c.t.Sub(&dd, &cc)
	return c.toExtended(P)
}

// P <- P1 - P2   (precomputed second operand)
// A pointer to this structure is returned.
func (P *ExtendedPoint) subNiels(P1 *ExtendedPoint, P2 *ExtendedNielsPoint) *ExtendedPoint {
	// Negation of a precomputed point swaps (V+U, V-U) and negates
	// the T2d product; the formula below is addNiels() with those
	// substitutions folded in.
	var a, b, cc, dd Fq
	a.Sub(&P1.v, &P1.u)
	a.Mul(&a, &P2.vPlusU)
	b.Add(&P1.v, &P1.u)
	b.Mul(&b, &P2.vMinusU)
	cc.Mul(&P1.t1, &P1.t2)
	cc.Mul(&cc, &P2.t2d)
	dd.Mul(&P1.z, &P2.z)
	dd.Double(&dd)

	var c completedPoint
	c.u.Sub(&b, &a)
	c.v.Add(&b, &a)
	c.z.Sub(&dd, &cc)
	c.t.Add(&dd, &cc)
	return c.toExtended(P)
}

// P <- P1 + P2   (precomputed affine second operand; Z2 = 1 saves a
// multiplication)
func (P *ExtendedPoint) addMixed(P1 *ExtendedPoint, P2 *AffineNielsPoint) *ExtendedPoint {
	var a, b, cc, dd Fq
	a.Sub(&P1.v, &P1.u)
	a.Mul(&a, &P2.vMinusU)
	b.Add(&P1.v, &P1.u)
	b.Mul(&b, &P2.vPlusU)
	cc.Mul(&P1.t1, &P1.t2)
	cc.Mul(&cc, &P2.t2d)
	dd.Double(&P1.z)

	var c completedPoint
	c.u.Sub(&b, &a)
	c.v.Add(&b, &a)
	c.z.Add(&dd, &cc)
	c.t.Sub(&dd, &cc)
	return c.toExtended(P)
}

// P <- P1 - P2   (precomputed affine second operand)
func (P *ExtendedPoint) subMixed(P1 *ExtendedPoint, P2 *AffineNielsPoint) *ExtendedPoint {
	var a, b, cc, dd Fq
	a.Sub(&P1.v, &P1.u)
	a.Mul(&a, &P2.vPlusU)
	b.Add(&P1.v, &P1.u)
	b.Mul(&b, &P2.vMinusU)
	cc.Mul(&P1.t1, &P1.t2)
	cc.Mul(&cc, &P2.t2d)
	dd.Double(&P1.z)

	var c completedPoint
	c.u.Sub(&b, &a)
	c.v.Add(&b, &a)
	c.z.Sub(&dd, &cc)
	c.t.Add(&dd, &cc)
	return c.toExtended(P)
}

// P <- P1 + P2
// A pointer to this structure is returned.
func (P *ExtendedPoint) Add(P1, P2 *ExtendedPoint) *ExtendedPoint {
	var n ExtendedNielsPoint
	return P.addNiels(P1, P2.toNiels(&n))
}

// P <- P1 - P2
// A pointer to this structure is returned.
func (P *ExtendedPoint) Sub(P1, P2 *ExtendedPoint) *ExtendedPoint {
	var n ExtendedNielsPoint
	return P.subNiels(P1, P2.toNiels(&n))
}

// P <- P1 + a
// A pointer to this structure is returned.
func (P *ExtendedPoint) AddAffine(P1 *ExtendedPoint, a *AffinePoint) *ExtendedPoint {
	var n AffineNielsPoint
	return P.addMixed(P1, a.toNiels(&n))
}

// P <- P1 - a
// A pointer to this structure is returned.
func (P *ExtendedPoint) SubAffine(P1 *ExtendedPoint, a *AffinePoint) *ExtendedPoint {
	var n AffineNielsPoint
	return P.subMixed(P1, a.toNiels(&n))
}

// P <- 2*Q
// A pointer to this structure is returned.
func (P *ExtendedPoint) Double(Q *ExtendedPoint) *ExtendedPoint {
	var uu, vv, zz2, uv2, vpu, vmu Fq
	uu.Sqr(&Q.u)
	vv.Sqr(&Q.v)
	zz2.Sqr(&Q.z)
	zz2.Double(&zz2)
	uv2.Add(&Q.u, &Q.v)
	uv2.Sqr(&uv2)
	vpu.Add(&vv, &uu)
	vmu.Sub(&vv, &uu)

	var c completedPoint
	c.u.Sub(&uv2, &vpu)
	c.v.Set(&vpu)
	c.z.Set(&vmu)
	c.t.Sub(&zz2, &vmu)
	return c.toExtended(P)
}

// P <- 2^n*Q (n successive doublings). n MUST NOT be 0.
// This is constant-time with regard to the points, but not to n.
// A pointer to this structure is returned.
func (P *ExtendedPoint) DoubleX(Q *ExtendedPoint, n uint) *ExtendedPoint {
	P.Double(Q)
	for n--; n > 0; n-- {
		P.Double(P)
	}
	return P
}

// =======================================================================
// Negation and conditional negation of precomputed points: swap the
// two sum/difference coordinates, negate the T2d product.

// If ctl == 1:  N <- -a
// If ctl == 0:  N <- a
func (N *AffineNielsPoint) condNeg(a *AffineNielsPoint, ctl Choice) *AffineNielsPoint {
	var t Fq
	t.Set(&a.vPlusU)
	N.vPlusU.Select(&a.vMinusU, &a.vPlusU, ctl)
	N.vMinusU.Select(&t, &a.vMinusU, ctl)
	N.t2d.CondNeg(&a.t2d, ctl)
	return N
}

// If ctl == 1:  N <- -a
// If ctl == 0:  N <- a
func (N *ExtendedNielsPoint) condNeg(a *ExtendedNielsPoint, ctl Choice) *ExtendedNielsPoint {
	var t Fq
	t.Set(&a.vPlusU)
	N.vPlusU.Select(&a.vMinusU, &a.vPlusU, ctl)
	N.vMinusU.Select(&t, &a.vMinusU, ctl)
	N.z.Set(&a.z)
	N.t2d.CondNeg(&a.t2d, ctl)
	return N
}

// N <- -a
func (N *AffineNielsPoint) Neg(a *AffineNielsPoint) *AffineNielsPoint {
	return N.condNeg(a, 1)
}

// N <- -a
func (N *ExtendedNielsPoint) Neg(a *ExtendedNielsPoint) *ExtendedNielsPoint {
	return N.condNeg(a, 1)
}
