package jubjub

import (
	"crypto/sha512"
	"math/big"
)

// =====================================================================
// Custom PRNG (based on SHA-512) for reproducible tests.

type prng struct {
	buf [64]byte
	ptr int
}

// Initialize the PRNG with an explicit seed.
func (p *prng) init(seed string) {
	hv := sha512.Sum512([]byte(seed))
	copy(p.buf[:], hv[:])
	p.ptr = 0
}

// Fill the provided slice with pseudorandom bytes from the PRNG.
func (p *prng) generate(d []byte) {
	n := len(d)
	for n > 0 {
		c := 32 - p.ptr
		if c == 0 {
			hv := sha512.Sum512(p.buf[:])
			copy(p.buf[:], hv[:])
			p.ptr = 0
			c = 32
		}
		if c > n {
			c = n
		}
		copy(d, p.buf[p.ptr:p.ptr+c])
		d = d[c:]
		n -= c
		p.ptr += c
	}
}

// Make a new random base field element from the PRNG.
func (p *prng) mkFq(d *Fq) {
	var bb [64]byte
	p.generate(bb[:])
	d.SetBytesWide(bb[:])
}

// Make a new random scalar from the PRNG.
func (p *prng) mkFr(d *Fr) {
	var bb [64]byte
	p.generate(bb[:])
	d.SetBytesWide(bb[:])
}

// Make a new random point in the prime-order subgroup from the PRNG.
func (p *prng) mkPoint(P *ExtendedPoint) {
	var n Fr
	p.mkFr(&n)
	P.MulGen(&n)
}

// The two moduli as big integers, for cross-checks.
var bigQ, _ = new(big.Int).SetString("73EDA753299D7D483339D80809A1D80553BDA402FFFE5BFEFFFFFFFF00000001", 16)
var bigR, _ = new(big.Int).SetString("0E7DB4EA6533AFA906673B0101343B00A6682093CCC81082D0970E5ED6F72CB7", 16)

// Decode a sequence of bytes into a big integer, with unsigned
// little-endian convention.
func decodeToBigLE(src []byte) *big.Int {
	n := len(src)
	tt := make([]byte, n)
	for i := 0; i < n; i++ {
		tt[i] = src[n-1-i]
	}
	return new(big.Int).SetBytes(tt)
}

// Canonical value of a base field element, as a big integer.
func fqToBig(a *Fq) *big.Int {
	bb := a.Bytes()
	return decodeToBigLE(bb[:])
}

// Canonical value of a scalar, as a big integer.
func frToBig(a *Fr) *big.Int {
	bb := a.Bytes()
	return decodeToBigLE(bb[:])
}
