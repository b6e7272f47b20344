// Package field implements constant-time arithmetic in finite fields of
// integers modulo an odd 255-bit (or smaller) prime, using a 4x64-bit
// Montgomery representation.
package field

import (
	"encoding/binary"
	"math/bits"
)

// This implementation is portable (no assembly) but should be decently
// efficient on 64-bit architectures. It is safe (constant-time) as long
// as 64-bit operations (especially 64x64->128 multiplication, using
// math/bits.Mul64()) are constant-time, which should be true on most
// modern systems.

// Unless otherwise stated, all functions below accept source and destination
// operands to be the same objects. Parameter order is destination first
// (similar to mathematical notation: "d = a + b").
// The 'm' parameter describes the modulus; it must remain constant
// throughout a computation.
//
// Storage format: an array of four 64-bit unsigned integers, which encode
// the value in base 2^64 (little-endian order: first limb is least
// significant). Values are kept in Montgomery representation (an element
// x is stored as x*2^256 mod m) and are always fully reduced: every
// function below returns a value in the 0..m-1 range when its operands
// are in that range.

// Modulus describes a finite field: the modulus itself (which MUST be an
// odd prime smaller than 2^255) and some precomputed values used by the
// Montgomery arithmetic routines.
type Modulus struct {
	// M is the modulus, in base 2^64, little-endian order.
	M [4]uint64

	// M0i = -1/M mod 2^64
	M0i uint64

	// R2 = 2^512 mod M (Montgomery representation of 2^256)
	R2 [4]uint64

	// R3 = 2^768 mod M (Montgomery representation of 2^512)
	R3 [4]uint64
}

// Internal function: reduce a value in the 0..2m-1 range to 0..m-1.
func gf_reduce(d, a *[4]uint64, m *Modulus) {
	// Subtract m, then add it back if the subtraction borrowed.
	var t [4]uint64
	var cc uint64 = 0
	for i := 0; i < 4; i++ {
		t[i], cc = bits.Sub64(a[i], m.M[i], cc)
	}
	w := -cc
	cc = 0
	for i := 0; i < 4; i++ {
		d[i], cc = bits.Add64(t[i], m.M[i]&w, cc)
	}
}

// Field addition.
// Parameters:
//   d   destination
//   a   first operand
//   b   second operand
//   m   modulus definition
func Add(d, a, b *[4]uint64, m *Modulus) {
	// Since m < 2^255, the sum a + b fits on 256 bits and a single
	// conditional subtraction of m yields a reduced result.
	var cc uint64 = 0
	for i := 0; i < 4; i++ {
		d[i], cc = bits.Add64(a[i], b[i], cc)
	}
	gf_reduce(d, d, m)
}

// Field subtraction.
// Parameters:
//   d   destination
//   a   first operand
//   b   second operand
//   m   modulus definition
func Sub(d, a, b *[4]uint64, m *Modulus) {
	var cc uint64 = 0
	for i := 0; i < 4; i++ {
		d[i], cc = bits.Sub64(a[i], b[i], cc)
	}

	// If there is a borrow, add back m.
	w := -cc
	cc = 0
	for i := 0; i < 4; i++ {
		d[i], cc = bits.Add64(d[i], m.M[i]&w, cc)
	}
}

// Field negation.
// Parameters:
//   d   destination
//   a   operand
//   m   modulus definition
func Neg(d, a *[4]uint64, m *Modulus) {
	// Compute m - a; since a < m, there is no borrow. The result must
	// then be forced to zero when a == 0.
	var cc uint64 = 0
	for i := 0; i < 4; i++ {
		d[i], cc = bits.Sub64(m.M[i], a[i], cc)
	}
	w := -IsZero(a)
	for i := 0; i < 4; i++ {
		d[i] &= ^w
	}
}

// Field doubling.
// Parameters:
//   d   destination
//   a   operand
//   m   modulus definition
func Double(d, a *[4]uint64, m *Modulus) {
	Add(d, a, a, m)
}

// Field halving.
// Parameters:
//   d   destination
//   a   operand
//   m   modulus definition
func Half(d, a *[4]uint64, m *Modulus) {
	// Right-shift the value; if the dropped bit was 1, add back
	// (m+1)/2 (m is odd).
	w := -(a[0] & 1)
	for i := 0; i < 3; i++ {
		d[i] = (a[i] >> 1) | (a[i+1] << 63)
	}
	d[3] = a[3] >> 1
	hm := [4]uint64{
		(m.M[0] >> 1) | (m.M[1] << 63),
		(m.M[1] >> 1) | (m.M[2] << 63),
		(m.M[2] >> 1) | (m.M[3] << 63),
		m.M[3] >> 1,
	}
	var cc uint64
	d[0], cc = bits.Add64(d[0], (hm[0]&w)+(1&w), 0)
	for i := 1; i < 4; i++ {
		d[i], cc = bits.Add64(d[i], hm[i]&w, cc)
	}
}

// Constant-time selection. Output d is set to the value of a if
// ctl == 1, or to the value of b if ctl == 0.
// Parameters:
//   d     destination
//   a     first source
//   b     second source
//   ctl   1 to use the first source, 0 for the second source
// ctl MUST be 0 or 1.
func Select(d, a, b *[4]uint64, ctl uint64) {
	ma := -ctl
	mb := ^ma
	for i := 0; i < 4; i++ {
		d[i] = (a[i] & ma) | (b[i] & mb)
	}
}

// Conditional assignment: if ctl == 1, then d is set to the value of a;
// otherwise, if ctl == 0, then d is unchanged. ctl MUST be 0 or 1.
func CondAssign(d, a *[4]uint64, ctl uint64) {
	Select(d, a, d, ctl)
}

// Conditional negation: if ctl == 1, then d is set to -a; otherwise,
// if ctl == 0, then d is set to a. ctl MUST be 0 or 1.
// Parameters:
//   d     destination
//   a     operand
//   m     modulus definition
//   ctl   control parameter
func CondNeg(d, a *[4]uint64, m *Modulus, ctl uint64) {
	var t [4]uint64
	Neg(&t, a, m)
	Select(d, &t, a, ctl)
}

// Internal function: a + b*c + carry, returned as (low, high). The high
// word cannot overflow.
func gf_mac(a, b, c, carry uint64) (uint64, uint64) {
	hi, lo := bits.Mul64(b, c)
	var cc uint64
	lo, cc = bits.Add64(lo, a, 0)
	hi += cc
	lo, cc = bits.Add64(lo, carry, 0)
	hi += cc
	return lo, hi
}

// Internal function: Montgomery reduction of a 512-bit value t into a
// fully reduced field element d (i.e. d = t/2^256 mod m). The operand
// must be lower than 2^256 * m. Contents of t are consumed.
func gf_montyred(d *[4]uint64, t *[8]uint64, m *Modulus) {
	var cc, hc uint64

	// Four reduction rounds; round i cancels limb t[i] by adding
	// the appropriate multiple of m.
	k := t[0] * m.M0i
	_, cc = gf_mac(t[0], k, m.M[0], 0)
	t[1], cc = gf_mac(t[1], k, m.M[1], cc)
	t[2], cc = gf_mac(t[2], k, m.M[2], cc)
	t[3], cc = gf_mac(t[3], k, m.M[3], cc)
	t[4], hc = bits.Add64(t[4], cc, 0)

	k = t[1] * m.M0i
	_, cc = gf_mac(t[1], k, m.M[0], 0)
	t[2], cc = gf_mac(t[2], k, m.M[1], cc)
	t[3], cc = gf_mac(t[3], k, m.M[2], cc)
	t[4], cc = gf_mac(t[4], k, m.M[3], cc)
	t[5], hc = bits.Add64(t[5], cc, hc)

	k = t[2] * m.M0i
	_, cc = gf_mac(t[2], k, m.M[0], 0)
	t[3], cc = gf_mac(t[3], k, m.M[1], cc)
	t[4], cc = gf_mac(t[4], k, m.M[2], cc)
	t[5], cc = gf_mac(t[5], k, m.M[3], cc)
	t[6], hc = bits.Add64(t[6], cc, hc)

	k = t[3] * m.M0i
	_, cc = gf_mac(t[3], k, m.M[0], 0)
	t[4], cc = gf_mac(t[4], k, m.M[1], cc)
	t[5], cc = gf_mac(t[5], k, m.M[2], cc)
	t[6], cc = gf_mac(t[6], k, m.M[3], cc)
	t[7], _ = bits.Add64(t[7], cc, hc)

	// Result is t[4..7], in the 0..2m-1 range.
	d[0] = t[4]
	d[1] = t[5]
	d[2] = t[6]
	d[3] = t[7]
	gf_reduce(d, d, m)
}

// Field multiplication (in Montgomery representation: d = a*b/2^256
// mod m). The first operand may be an arbitrary 256-bit integer (not
// necessarily reduced); the second operand must be reduced.
// Parameters:
//   d   destination
//   a   first operand
//   b   second operand
//   m   modulus definition
func Mul(d, a, b *[4]uint64, m *Modulus) {
	var t [8]uint64
	var hi, lo, cc uint64

	// Step 1: multiply the two operands as plain integers, 512-bit
	// result goes to t[]. We have 16 products a[i]*b[j] to compute
	// and add at the right place; sequence below tries to do them
	// in an order that minimizes carry propagation steps.

	// a0*b0, a1*b1, a2*b2, a3*b3
	t[1], t[0] = bits.Mul64(a[0], b[0])
	t[3], t[2] = bits.Mul64(a[1], b[1])
	t[5], t[4] = bits.Mul64(a[2], b[2])
	t[7], t[6] = bits.Mul64(a[3], b[3])

	// a0*b1, a0*b3, a2*b3
	hi, lo = bits.Mul64(a[0], b[1])
	t[1], cc = bits.Add64(t[1], lo, 0)
	t[2], cc = bits.Add64(t[2], hi, cc)
	hi, lo = bits.Mul64(a[0], b[3])
	t[3], cc = bits.Add64(t[3], lo, cc)
	t[4], cc = bits.Add64(t[4], hi, cc)
	hi, lo = bits.Mul64(a[2], b[3])
	t[5], cc = bits.Add64(t[5], lo, cc)
	t[6], cc = bits.Add64(t[6], hi, cc)
	t[7] += cc

	// a1*b0, a3*b0, a3*b2
	hi, lo = bits.Mul64(a[1], b[0])
	t[1], cc = bits.Add64(t[1], lo, 0)
	t[2], cc = bits.Add64(t[2], hi, cc)
	hi, lo = bits.Mul64(a[3], b[0])
	t[3], cc = bits.Add64(t[3], lo, cc)
	t[4], cc = bits.Add64(t[4], hi, cc)
	hi, lo = bits.Mul64(a[3], b[2])
	t[5], cc = bits.Add64(t[5], lo, cc)
	t[6], cc = bits.Add64(t[6], hi, cc)
	t[7] += cc

	// a0*b2, a1*b3
	hi, lo = bits.Mul64(a[0], b[2])
	t[2], cc = bits.Add64(t[2], lo, 0)
	t[3], cc = bits.Add64(t[3], hi, cc)
	hi, lo = bits.Mul64(a[1], b[3])
	t[4], cc = bits.Add64(t[4], lo, cc)
	t[5], cc = bits.Add64(t[5], hi, cc)
	t[6], cc = bits.Add64(t[6], 0, cc)
	t[7] += cc

	// a2*b0, a3*b1
	hi, lo = bits.Mul64(a[2], b[0])
	t[2], cc = bits.Add64(t[2], lo, 0)
	t[3], cc = bits.Add64(t[3], hi, cc)
	hi, lo = bits.Mul64(a[3], b[1])
	t[4], cc = bits.Add64(t[4], lo, cc)
	t[5], cc = bits.Add64(t[5], hi, cc)
	t[6], cc = bits.Add64(t[6], 0, cc)
	t[7] += cc

	// a1*b2
	hi, lo = bits.Mul64(a[1], b[2])
	t[3], cc = bits.Add64(t[3], lo, 0)
	t[4], cc = bits.Add64(t[4], hi, cc)
	t[5], cc = bits.Add64(t[5], 0, cc)
	t[6], cc = bits.Add64(t[6], 0, cc)
	t[7] += cc

	// a2*b1
	hi, lo = bits.Mul64(a[2], b[1])
	t[3], cc = bits.Add64(t[3], lo, 0)
	t[4], cc = bits.Add64(t[4], hi, cc)
	t[5], cc = bits.Add64(t[5], 0, cc)
	t[6], cc = bits.Add64(t[6], 0, cc)
	t[7] += cc

	// Step 2: Montgomery reduction of the 512-bit value.
	gf_montyred(d, &t, m)
}

// Field squaring (in Montgomery representation: d = a*a/2^256 mod m).
// Parameters:
//   d   destination
//   a   operand
//   m   modulus definition
func Sqr(d, a *[4]uint64, m *Modulus) {
	var t [8]uint64
	var hi, lo, cc uint64

	// Step 1: square the operand as a plain integer, 512-bit result
	// goes to t[]. We first compute the sum of the products a[i]*a[j]
	// for i < j, then double it, then add the squares a[i]^2.

	// a0*a1, a0*a3, a2*a3
	t[2], t[1] = bits.Mul64(a[0], a[1])
	t[4], t[3] = bits.Mul64(a[0], a[3])
	t[6], t[5] = bits.Mul64(a[2], a[3])

	// a0*a2, a1*a3
	hi, lo = bits.Mul64(a[0], a[2])
	t[2], cc = bits.Add64(t[2], lo, 0)
	t[3], cc = bits.Add64(t[3], hi, cc)
	hi, lo = bits.Mul64(a[1], a[3])
	t[4], cc = bits.Add64(t[4], lo, cc)
	t[5], cc = bits.Add64(t[5], hi, cc)
	t[6] += cc

	// a1*a2
	hi, lo = bits.Mul64(a[1], a[2])
	t[3], cc = bits.Add64(t[3], lo, 0)
	t[4], cc = bits.Add64(t[4], hi, cc)
	t[5], cc = bits.Add64(t[5], 0, cc)
	t[6] += cc

	// Double the current sum.
	t[7] = t[6] >> 63
	for i := 6; i >= 2; i-- {
		t[i] = (t[i] << 1) | (t[i-1] >> 63)
	}
	t[1] = t[1] << 1

	// Add the squares.
	hi, lo = bits.Mul64(a[0], a[0])
	t[0] = lo
	t[1], cc = bits.Add64(t[1], hi, 0)
	hi, lo = bits.Mul64(a[1], a[1])
	t[2], cc = bits.Add64(t[2], lo, cc)
	t[3], cc = bits.Add64(t[3], hi, cc)
	hi, lo = bits.Mul64(a[2], a[2])
	t[4], cc = bits.Add64(t[4], lo, cc)
	t[5], cc = bits.Add64(t[5], hi, cc)
	hi, lo = bits.Mul64(a[3], a[3])
	t[6], cc = bits.Add64(t[6], lo, cc)
	t[7], _ = bits.Add64(t[7], hi, cc)

	// Step 2: Montgomery reduction of the 512-bit value.
	gf_montyred(d, &t, m)
}

// Multiple squarings: d is set to a^(2^n) (n successive squarings).
// n MUST NOT be 0. This is constant-time with regard to a and d, but
// not to n.
// Parameters:
//   d   destination
//   a   operand
//   n   number of squarings
//   m   modulus definition
func SqrX(d, a *[4]uint64, n uint, m *Modulus) {
	Sqr(d, a, m)
	for n--; n > 0; n-- {
		Sqr(d, d, m)
	}
}

// Exponentiation with a public exponent: d is set to a^e. The exponent
// is processed from most to least significant bit with plain branches;
// it MUST NOT depend on secret data.
// Parameters:
//   d   destination
//   a   operand
//   e   exponent (little-endian limbs)
//   m   modulus definition
func PowPubexp(d, a, e *[4]uint64, m *Modulus) {
	x := *a
	var r [4]uint64
	MontyOne(&r, m)
	for i := 3; i >= 0; i-- {
		for j := 63; j >= 0; j-- {
			Sqr(&r, &r, m)
			if (e[i]>>uint(j))&1 != 0 {
				Mul(&r, &r, &x, m)
			}
		}
	}
	*d = r
}

// MontyOne sets d to the Montgomery representation of 1 (i.e. 2^256
// mod m).
// Parameters:
//   d   destination
//   m   modulus definition
func MontyOne(d *[4]uint64, m *Modulus) {
	// R2 is the Montgomery representation of 2^256; reducing it once
	// yields the representation of 1.
	var t [8]uint64
	copy(t[:4], m.R2[:])
	gf_montyred(d, &t, m)
}

// IsZero returns 1 if a == 0, or 0 otherwise.
func IsZero(a *[4]uint64) uint64 {
	// Values are fully reduced, so zero has a unique representation.
	z := a[0] | a[1] | a[2] | a[3]
	return 1 - ((z | -z) >> 63)
}

// Eq returns 1 if a == b, or 0 otherwise.
func Eq(a, b *[4]uint64) uint64 {
	// Values are fully reduced, so equality is bitwise equality.
	z := (a[0] ^ b[0]) | (a[1] ^ b[1]) | (a[2] ^ b[2]) | (a[3] ^ b[3])
	return 1 - ((z | -z) >> 63)
}

// ToMonty converts a plain integer (which must be lower than m) to
// Montgomery representation.
// Parameters:
//   d   destination
//   a   operand (plain integer)
//   m   modulus definition
func ToMonty(d, a *[4]uint64, m *Modulus) {
	Mul(d, a, &m.R2, m)
}

// FromMonty converts a value out of Montgomery representation; the
// result is a plain integer in the 0..m-1 range.
// Parameters:
//   d   destination (plain integer)
//   a   operand
//   m   modulus definition
func FromMonty(d, a *[4]uint64, m *Modulus) {
	var t [8]uint64
	copy(t[:4], a[:])
	gf_montyred(d, &t, m)
}

// Decode reads exactly 32 bytes from the source (unsigned little-endian
// convention) and converts the value to Montgomery representation. If
// the source value is not lower than m, then d is set to zero and the
// function returns 0; otherwise, it returns 1.
// Parameters:
//   d     destination
//   src   source bytes (exactly 32 bytes)
//   m     modulus definition
func Decode(d *[4]uint64, src []byte, m *Modulus) uint64 {
	var t [4]uint64
	for i := 0; i < 4; i++ {
		t[i] = binary.LittleEndian.Uint64(src[8*i:])
	}

	// The value is in range exactly when subtracting the modulus
	// borrows.
	var cc uint64 = 0
	for i := 0; i < 4; i++ {
		_, cc = bits.Sub64(t[i], m.M[i], cc)
	}
	w := -cc
	for i := 0; i < 4; i++ {
		t[i] &= w
	}
	ToMonty(d, &t, m)
	return cc
}

// DecodeWide reads exactly 64 bytes from the source (unsigned
// little-endian convention); the 512-bit value is implicitly reduced
// modulo m and converted to Montgomery representation. By definition,
// this process cannot fail.
// Parameters:
//   d     destination
//   src   source bytes (exactly 64 bytes)
//   m     modulus definition
func DecodeWide(d *[4]uint64, src []byte, m *Modulus) {
	var lo, hi [4]uint64
	for i := 0; i < 4; i++ {
		lo[i] = binary.LittleEndian.Uint64(src[8*i:])
		hi[i] = binary.LittleEndian.Uint64(src[32+8*i:])
	}

	// If the source is lo + hi*2^256, then the Montgomery
	// representation of the value is lo*R2 + hi*R3 (R2 and R3 being
	// the representations of 2^256 and 2^512, respectively). Mul()
	// tolerates the non-reduced operands lo and hi.
	var t1, t2 [4]uint64
	Mul(&t1, &lo, &m.R2, m)
	Mul(&t2, &hi, &m.R3, m)
	Add(d, &t1, &t2, m)
}

// Encode converts the value out of Montgomery representation and
// appends exactly 32 bytes (unsigned little-endian convention) to the
// provided slice. The extension is done in place if the provided slice
// has enough capacity.
// Parameters:
//   dst   destination slice (bytes are appended)
//   a     source value
//   m     modulus definition
// Returned value: the updated slice.
func Encode(dst []byte, a *[4]uint64, m *Modulus) []byte {
	var t [4]uint64
	FromMonty(&t, a, m)
	var buf [32]byte
	for i := 0; i < 4; i++ {
		binary.LittleEndian.PutUint64(buf[8*i:], t[i])
	}
	return append(dst, buf[:]...)
}

// IsOdd returns the least significant bit of the plain integer value
// of a (i.e. out of Montgomery representation).
// Parameters:
//   a   operand
//   m   modulus definition
func IsOdd(a *[4]uint64, m *Modulus) uint64 {
	var t [4]uint64
	FromMonty(&t, a, m)
	return t[0] & 1
}
