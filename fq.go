package jubjub

import (
	"github.com/pkg/errors"

	"github.com/decentralisedkev/doppio/internal/field"
)

// Fq is an element of the base field GF(q), with:
//   q = 0x73EDA753299D7D483339D80809A1D80553BDA402FFFE5BFEFFFFFFFF00000001
// (the scalar field of the BLS12-381 curve). Values are held in
// Montgomery representation and are always fully reduced; the contents
// of an Fq must not be accessed directly.
type Fq [4]uint64

// Field element of value 0.
var fqZero = Fq{0, 0, 0, 0}

// Field element of value 1.
var fqOne = Fq{
	0x00000001FFFFFFFE, 0x5884B7FA00034802,
	0x998C4FEFECBC4FF5, 0x1824B159ACC5056F}

// Edwards curve constant d = -(10240/10241).
var fqD = Fq{
	0x2A522455B974F6B0, 0xFC6CC9EF0D9ACAB3,
	0x7A08FB94C27628D1, 0x57F8F6A8FE0E262E}

// 2*d, used by the point addition formulas.
var fqD2 = Fq{
	0x54A448AC72E9ED5F, 0xA51BEFDB1B373967,
	0xC0D81F217B4A799E, 0x3C0445FED27ECF14}

// Generator of the 2^32 roots of unity: 7^t, where q - 1 = t * 2^32
// with t odd.
var fqRootOfUnity = Fq{
	0xB9B58D8C5F0E466A, 0x5B1B4C801819D7EC,
	0x0AF53AE352A31E64, 0x5BF3ADDA19E9B27B}

// (t - 1) / 2, where q - 1 = t * 2^32 with t odd (exponent used by the
// square root computation).
var fqSqrtExp = [4]uint64{
	0x7FFF2DFF7FFFFFFF, 0x04D0EC02A9DED201,
	0x94CEBEA4199CEC04, 0x0000000039F6D3A9}

// q - 2 (exponent used for inversion via Fermat's little theorem).
var fqInvExp = [4]uint64{
	0xFFFFFFFEFFFFFFFF, 0x53BDA402FFFE5BFE,
	0x3339D80809A1D805, 0x73EDA753299D7D48}

// d <- a
func (d *Fq) Set(a *Fq) *Fq {
	copy(d[:], a[:])
	return d
}

// d <- 0
func (d *Fq) SetZero() *Fq {
	copy(d[:], fqZero[:])
	return d
}

// d <- 1
func (d *Fq) SetOne() *Fq {
	copy(d[:], fqOne[:])
	return d
}

// d <- x (for a small integer x)
func (d *Fq) SetUint64(x uint64) *Fq {
	t := [4]uint64{x, 0, 0, 0}
	field.ToMonty((*[4]uint64)(d), &t, &field.FqModulus)
	return d
}

// d <- a + b
func (d *Fq) Add(a, b *Fq) *Fq {
	field.Add((*[4]uint64)(d), (*[4]uint64)(a), (*[4]uint64)(b), &field.FqModulus)
	return d
}

// d <- a - b
func (d *Fq) Sub(a, b *Fq) *Fq {
	field.Sub((*[4]uint64)(d), (*[4]uint64)(a), (*[4]uint64)(b), &field.FqModulus)
	return d
}

// d <- -a
func (d *Fq) Neg(a *Fq) *Fq {
	field.Neg((*[4]uint64)(d), (*[4]uint64)(a), &field.FqModulus)
	return d
}

// d <- 2*a
func (d *Fq) Double(a *Fq) *Fq {
	field.Double((*[4]uint64)(d), (*[4]uint64)(a), &field.FqModulus)
	return d
}

// d <- a/2
func (d *Fq) Half(a *Fq) *Fq {
	field.Half((*[4]uint64)(d), (*[4]uint64)(a), &field.FqModulus)
	return d
}

// d <- a*b
func (d *Fq) Mul(a, b *Fq) *Fq {
	field.Mul((*[4]uint64)(d), (*[4]uint64)(a), (*[4]uint64)(b), &field.FqModulus)
	return d
}

// d <- a^2
func (d *Fq) Sqr(a *Fq) *Fq {
	field.Sqr((*[4]uint64)(d), (*[4]uint64)(a), &field.FqModulus)
	return d
}

// d <- a^(2^n) for any n >= 1
// This is constant-time with regard to a and d, but not to n.
func (d *Fq) SqrX(a *Fq, n uint) *Fq {
	field.SqrX((*[4]uint64)(d), (*[4]uint64)(a), n, &field.FqModulus)
	return d
}

// d <- a^e; the exponent is public and fixed.
func (d *Fq) pow(a *Fq, e *[4]uint64) *Fq {
	field.PowPubexp((*[4]uint64)(d), (*[4]uint64)(a), e, &field.FqModulus)
	return d
}

// If ctl == 1:  d <- a
// If ctl == 0:  d <- b
func (d *Fq) Select(a, b *Fq, ctl Choice) *Fq {
	field.Select((*[4]uint64)(d), (*[4]uint64)(a), (*[4]uint64)(b), uint64(ctl))
	return d
}

// If ctl == 1:  d <- a
// If ctl == 0:  d is unchanged
func (d *Fq) CondAssign(a *Fq, ctl Choice) *Fq {
	field.CondAssign((*[4]uint64)(d), (*[4]uint64)(a), uint64(ctl))
	return d
}

// If ctl == 1:  d <- -a
// If ctl == 0:  d <- a
func (d *Fq) CondNeg(a *Fq, ctl Choice) *Fq {
	field.CondNeg((*[4]uint64)(d), (*[4]uint64)(a), &field.FqModulus, uint64(ctl))
	return d
}

// d <- d OR (a AND mask)
// mask value should be 0 or 0xFFFFFFFFFFFFFFFF
func (d *Fq) condOrFrom(a *Fq, mask uint64) *Fq {
	d[0] |= mask & a[0]
	d[1] |= mask & a[1]
	d[2] |= mask & a[2]
	d[3] |= mask & a[3]
	return d
}

// Inversion: if a != 0, then d is set to 1/a and 1 is returned;
// otherwise, d is set to 0 and 0 is returned.
func (d *Fq) Inv(a *Fq) Choice {
	// Fermat's little theorem: 1/a = a^(q-2). The exponent is public,
	// so the plain exponentiation ladder is fine. Zero maps to zero.
	nz := a.IsZero().Not()
	d.pow(a, &fqInvExp)
	return nz
}

// Returns 1 if d == 0, or 0 otherwise.
func (d *Fq) IsZero() Choice {
	return Choice(field.IsZero((*[4]uint64)(d)))
}

// Returns 1 if d == a, or 0 otherwise.
func (d *Fq) Eq(a *Fq) Choice {
	return Choice(field.Eq((*[4]uint64)(d), (*[4]uint64)(a)))
}

// Returns the least significant bit of the canonical integer value
// of d.
func (d *Fq) IsOdd() Choice {
	return Choice(field.IsOdd((*[4]uint64)(d), &field.FqModulus))
}

// Internal helpers for the constant-time square root: comparison and
// selection over small public-range counters that still track secret
// data.
func ctUint32Eq(a, b uint32) Choice {
	z := uint64(a ^ b)
	return Choice(1 - ((z | -z) >> 63))
}

func ctUint32Select(a, b uint32, ctl Choice) uint32 {
	m := uint32(ctl.Mask())
	return (a & m) | (b & ^m)
}

// Square root computation. If the source value (a) is a quadratic
// residue, then this function sets this object (d) to a square root
// of a, and returns 1; otherwise, it sets d to zero and returns 0.
func (d *Fq) Sqrt(a *Fq) Choice {
	// Constant-time Tonelli-Shanks, using the decomposition
	// q - 1 = t * 2^32 with t odd. The classic algorithm locates the
	// order of the current non-residue component by repeated
	// squaring, which branches on secret values; here every update of
	// the loop state (x, b, z, and the order counter) is performed
	// with masked selections so that the memory and instruction trace
	// is the same for all inputs.
	var w, x, b, z Fq
	w.pow(a, &fqSqrtExp) // a^((t-1)/2)
	x.Mul(a, &w)         // a^((t+1)/2)
	b.Mul(&x, &w)        // a^t
	z.Set(&fqRootOfUnity)

	v := uint32(32)
	for maxV := uint32(32); maxV >= 1; maxV-- {
		k := uint32(1)
		var tmp Fq
		tmp.Sqr(&b)
		jLessThanV := Choice(1)
		for j := uint32(2); j < maxV; j++ {
			tmpIsOne := tmp.Eq(&fqOne)
			var squared Fq
			squared.Select(&z, &tmp, tmpIsOne)
			squared.Sqr(&squared)
			tmp.Select(&tmp, &squared, tmpIsOne)
			var newZ Fq
			newZ.Select(&squared, &z, tmpIsOne)
			jLessThanV = jLessThanV.And(ctUint32Eq(j, v).Not())
			k = ctUint32Select(k, j, tmpIsOne)
			z.Select(&newZ, &z, jLessThanV)
		}
		var r Fq
		r.Mul(&x, &z)
		x.Select(&x, &r, b.Eq(&fqOne))
		z.Sqr(&z)
		b.Mul(&b, &z)
		v = k
	}

	var y Fq
	y.Sqr(&x)
	qr := y.Eq(a)
	d.Select(&x, &fqZero, qr)
	return qr
}

// Encode element into exactly 32 bytes (unsigned little-endian
// convention, canonical integer value). The encoding is appended to the
// provided slice, and the resulting slice is returned. The extension is
// done in place if the provided slice has enough capacity.
func (d *Fq) Encode(dst []byte) []byte {
	return field.Encode(dst, (*[4]uint64)(d), &field.FqModulus)
}

// Bytes returns the canonical 32-byte encoding of the element.
func (d *Fq) Bytes() [32]byte {
	var buf [32]byte
	d.Encode(buf[:0])
	return buf
}

// Decode element from 32 bytes. If the source is invalid (out of
// range), then the decoded value is zero, and 0 is returned; otherwise,
// 1 is returned.
func (d *Fq) Decode(src []byte) Choice {
	return Choice(field.Decode((*[4]uint64)(d), src, &field.FqModulus))
}

// SetBytes decodes a canonical 32-byte encoding; it returns
// ErrInvalidEncoding if the source is not exactly 32 bytes or encodes
// an integer not lower than q.
func (d *Fq) SetBytes(src []byte) (*Fq, error) {
	if len(src) != 32 {
		return nil, errors.Wrap(ErrInvalidEncoding, "base field element must be 32 bytes")
	}
	if !d.Decode(src).Bool() {
		return nil, errors.Wrap(ErrInvalidEncoding, "base field element out of range")
	}
	return d, nil
}

// SetBytesWide decodes a 64-byte (512-bit, unsigned little-endian)
// value and reduces it modulo q. src must be exactly 64 bytes. The wide
// reduction makes the bias of derived elements negligible, which
// matters when mapping hash output to field elements.
func (d *Fq) SetBytesWide(src []byte) *Fq {
	field.DecodeWide((*[4]uint64)(d), src, &field.FqModulus)
	return d
}
