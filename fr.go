package jubjub

import (
	"github.com/pkg/errors"

	"github.com/decentralisedkev/doppio/internal/field"
)

// Fr is an element of the scalar field GF(r), where r is the order of
// the prime-order subgroup of the curve:
//   r = 0x0E7DB4EA6533AFA906673B0101343B00A6682093CCC81082D0970E5ED6F72CB7
// Values are held in Montgomery representation and are always fully
// reduced.
type Fr [4]uint64

// Scalar of value 0.
var frZero = Fr{0, 0, 0, 0}

// Scalar of value 1.
var frOne = Fr{
	0x25F80BB3B99607D9, 0xF315D62F66B6E750,
	0x932514EEEB8814F4, 0x09A6FC6F479155C6}

// r, as a plain integer (used for the torsion-free test, which
// multiplies by the full group order).
var frOrder = [4]uint64{
	0xD0970E5ED6F72CB7, 0xA6682093CCC81082,
	0x06673B0101343B00, 0x0E7DB4EA6533AFA9}

// (r + 1) / 4 (r = 3 mod 4, so a^((r+1)/4) is a square root of a for
// any quadratic residue a).
var frSqrtExp = [4]uint64{
	0xB425C397B5BDCB2E, 0x299A0824F3320420,
	0x4199CEC0404D0EC0, 0x039F6D3A994CEBEA}

// r - 2 (exponent used for inversion via Fermat's little theorem).
var frInvExp = [4]uint64{
	0xD0970E5ED6F72CB5, 0xA6682093CCC81082,
	0x06673B0101343B00, 0x0E7DB4EA6533AFA9}

// d <- a
func (d *Fr) Set(a *Fr) *Fr {
	copy(d[:], a[:])
	return d
}

// d <- 0
func (d *Fr) SetZero() *Fr {
	copy(d[:], frZero[:])
	return d
}

// d <- 1
func (d *Fr) SetOne() *Fr {
	copy(d[:], frOne[:])
	return d
}

// d <- x (for a small integer x)
func (d *Fr) SetUint64(x uint64) *Fr {
	t := [4]uint64{x, 0, 0, 0}
	field.ToMonty((*[4]uint64)(d), &t, &field.FrModulus)
	return d
}

// d <- a + b
func (d *Fr) Add(a, b *Fr) *Fr {
	field.Add((*[4]uint64)(d), (*[4]uint64)(a), (*[4]uint64)(b), &field.FrModulus)
	return d
}

// d <- a - b
func (d *Fr) Sub(a, b *Fr) *Fr {
	field.Sub((*[4]uint64)(d), (*[4]uint64)(a), (*[4]uint64)(b), &field.FrModulus)
	return d
}

// d <- -a
func (d *Fr) Neg(a *Fr) *Fr {
	field.Neg((*[4]uint64)(d), (*[4]uint64)(a), &field.FrModulus)
	return d
}

// d <- 2*a
func (d *Fr) Double(a *Fr) *Fr {
	field.Double((*[4]uint64)(d), (*[4]uint64)(a), &field.FrModulus)
	return d
}

// d <- a*b
func (d *Fr) Mul(a, b *Fr) *Fr {
	field.Mul((*[4]uint64)(d), (*[4]uint64)(a), (*[4]uint64)(b), &field.FrModulus)
	return d
}

// d <- a^2
func (d *Fr) Sqr(a *Fr) *Fr {
	field.Sqr((*[4]uint64)(d), (*[4]uint64)(a), &field.FrModulus)
	return d
}

// d <- a^e; the exponent is public and fixed.
func (d *Fr) pow(a *Fr, e *[4]uint64) *Fr {
	field.PowPubexp((*[4]uint64)(d), (*[4]uint64)(a), e, &field.FrModulus)
	return d
}

// If ctl == 1:  d <- a
// If ctl == 0:  d <- b
func (d *Fr) Select(a, b *Fr, ctl Choice) *Fr {
	field.Select((*[4]uint64)(d), (*[4]uint64)(a), (*[4]uint64)(b), uint64(ctl))
	return d
}

// If ctl == 1:  d <- a
// If ctl == 0:  d is unchanged
func (d *Fr) CondAssign(a *Fr, ctl Choice) *Fr {
	field.CondAssign((*[4]uint64)(d), (*[4]uint64)(a), uint64(ctl))
	return d
}

// If ctl == 1:  d <- -a
// If ctl == 0:  d <- a
func (d *Fr) CondNeg(a *Fr, ctl Choice) *Fr {
	field.CondNeg((*[4]uint64)(d), (*[4]uint64)(a), &field.FrModulus, uint64(ctl))
	return d
}

// Inversion: if a != 0, then d is set to 1/a and 1 is returned;
// otherwise, d is set to 0 and 0 is returned.
func (d *Fr) Inv(a *Fr) Choice {
	nz := a.IsZero().Not()
	d.pow(a, &frInvExp)
	return nz
}

// Returns 1 if d == 0, or 0 otherwise.
func (d *Fr) IsZero() Choice {
	return Choice(field.IsZero((*[4]uint64)(d)))
}

// Returns 1 if d == a, or 0 otherwise.
func (d *Fr) Eq(a *Fr) Choice {
	return Choice(field.Eq((*[4]uint64)(d), (*[4]uint64)(a)))
}

// Square root computation. If the source value (a) is a quadratic
// residue, then this function sets this object (d) to a square root
// of a, and returns 1; otherwise, it sets d to zero and returns 0.
func (d *Fr) Sqrt(a *Fr) Choice {
	// r = 3 mod 4, so a^((r+1)/4) works.
	var x, y Fr
	x.pow(a, &frSqrtExp)
	y.Sqr(&x)
	qr := y.Eq(a)
	d.Select(&x, &frZero, qr)
	return qr
}

// Write the canonical (plain integer) value of d into k.
func (d *Fr) toCanonical(k *[4]uint64) {
	field.FromMonty(k, (*[4]uint64)(d), &field.FrModulus)
}

// Encode element into exactly 32 bytes (unsigned little-endian
// convention, canonical integer value). The encoding is appended to the
// provided slice, and the resulting slice is returned. The extension is
// done in place if the provided slice has enough capacity.
func (d *Fr) Encode(dst []byte) []byte {
	return field.Encode(dst, (*[4]uint64)(d), &field.FrModulus)
}

// Bytes returns the canonical 32-byte encoding of the scalar.
func (d *Fr) Bytes() [32]byte {
	var buf [32]byte
	d.Encode(buf[:0])
	return buf
}

// Decode element from 32 bytes. If the source is invalid (out of
// range), then the decoded value is zero, and 0 is returned; otherwise,
// 1 is returned.
func (d *Fr) Decode(src []byte) Choice {
	return Choice(field.Decode((*[4]uint64)(d), src, &field.FrModulus))
}

// SetBytes decodes a canonical 32-byte encoding; it returns
// ErrInvalidEncoding if the source is not exactly 32 bytes or encodes
// an integer not lower than r.
func (d *Fr) SetBytes(src []byte) (*Fr, error) {
	if len(src) != 32 {
		return nil, errors.Wrap(ErrInvalidEncoding, "scalar must be 32 bytes")
	}
	if !d.Decode(src).Bool() {
		return nil, errors.Wrap(ErrInvalidEncoding, "scalar out of range")
	}
	return d, nil
}

// SetBytesWide decodes a 64-byte (512-bit, unsigned little-endian)
// value and reduces it modulo r. src must be exactly 64 bytes. This is
// the preferred way to derive an unbiased scalar from hash output or
// from a random source.
func (d *Fr) SetBytesWide(src []byte) *Fr {
	field.DecodeWide((*[4]uint64)(d), src, &field.FrModulus)
	return d
}
