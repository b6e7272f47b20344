package field

import (
	"math/big"
	"testing"
)

var testModuli = []struct {
	name string
	mod  *Modulus
}{
	{"fq", &FqModulus},
	{"fr", &FrModulus},
}

func TestModulusParameters(t *testing.T) {
	for _, tm := range testModuli {
		m := tm.mod
		mz := modToBig(m)

		// M0i = -1/M mod 2^64, i.e. M[0]*M0i = -1 mod 2^64.
		if m.M[0]*m.M0i != 0xFFFFFFFFFFFFFFFF {
			t.Fatalf("ERR %s: wrong M0i", tm.name)
		}

		// R2 = 2^512 mod M, R3 = 2^768 mod M.
		r2 := new(big.Int).Lsh(big.NewInt(1), 512)
		r2.Mod(r2, mz)
		if int256ToBig(&m.R2).Cmp(r2) != 0 {
			t.Fatalf("ERR %s: wrong R2", tm.name)
		}
		r3 := new(big.Int).Lsh(big.NewInt(1), 768)
		r3.Mod(r3, mz)
		if int256ToBig(&m.R3).Cmp(r3) != 0 {
			t.Fatalf("ERR %s: wrong R3", tm.name)
		}
	}
}

func TestAddSubNeg(t *testing.T) {
	for _, tm := range testModuli {
		m := tm.mod
		mz := modToBig(m)
		var rng prng
		rng.init("test add/sub/neg " + tm.name)
		for i := 0; i < 1000; i++ {
			var a, b, c [4]uint64
			rng.mkgf(&a, m)
			rng.mkgf(&b, m)
			za := gfToBig(&a, m)
			zb := gfToBig(&b, m)

			Add(&c, &a, &b, m)
			zc := gfToBig(&c, m)
			zd := new(big.Int).Add(za, zb)
			zd.Mod(zd, mz)
			if zc.Cmp(zd) != 0 {
				t.Fatalf("ERR %s add: %s + %s -> %s", tm.name, za, zb, zc)
			}

			Sub(&c, &a, &b, m)
			zc = gfToBig(&c, m)
			zd.Sub(za, zb)
			zd.Mod(zd, mz)
			if zc.Cmp(zd) != 0 {
				t.Fatalf("ERR %s sub: %s - %s -> %s", tm.name, za, zb, zc)
			}

			Neg(&c, &a, m)
			zc = gfToBig(&c, m)
			zd.Neg(za)
			zd.Mod(zd, mz)
			if zc.Cmp(zd) != 0 {
				t.Fatalf("ERR %s neg: -%s -> %s", tm.name, za, zc)
			}

			Double(&c, &a, m)
			zc = gfToBig(&c, m)
			zd.Lsh(za, 1)
			zd.Mod(zd, mz)
			if zc.Cmp(zd) != 0 {
				t.Fatalf("ERR %s double: 2*%s -> %s", tm.name, za, zc)
			}

			Half(&c, &a, m)
			Double(&c, &c, m)
			zc = gfToBig(&c, m)
			if zc.Cmp(za) != 0 {
				t.Fatalf("ERR %s half: 2*(%s/2) -> %s", tm.name, za, zc)
			}
		}

		// Negation of zero must be zero.
		var z, c [4]uint64
		Neg(&c, &z, m)
		if IsZero(&c) != 1 {
			t.Fatalf("ERR %s: -0 != 0", tm.name)
		}
	}
}

func TestMulSqr(t *testing.T) {
	for _, tm := range testModuli {
		m := tm.mod
		mz := modToBig(m)
		var rng prng
		rng.init("test mul/sqr " + tm.name)
		for i := 0; i < 1000; i++ {
			var a, b, c [4]uint64
			rng.mkgf(&a, m)
			rng.mkgf(&b, m)
			za := gfToBig(&a, m)
			zb := gfToBig(&b, m)

			Mul(&c, &a, &b, m)
			zc := gfToBig(&c, m)
			zd := new(big.Int).Mul(za, zb)
			zd.Mod(zd, mz)
			if zc.Cmp(zd) != 0 {
				t.Fatalf("ERR %s mul: %s * %s -> %s", tm.name, za, zb, zc)
			}

			Sqr(&c, &a, m)
			zc = gfToBig(&c, m)
			zd.Mul(za, za)
			zd.Mod(zd, mz)
			if zc.Cmp(zd) != 0 {
				t.Fatalf("ERR %s sqr: %s^2 -> %s", tm.name, za, zc)
			}

			SqrX(&c, &a, 5, m)
			zc = gfToBig(&c, m)
			zd.Set(za)
			for j := 0; j < 5; j++ {
				zd.Mul(zd, zd)
				zd.Mod(zd, mz)
			}
			if zc.Cmp(zd) != 0 {
				t.Fatalf("ERR %s sqrx: %s^(2^5) -> %s", tm.name, za, zc)
			}
		}

		// Multiplication by the representation of 1 is the identity.
		var one, a, c [4]uint64
		MontyOne(&one, m)
		rng.mkgf(&a, m)
		Mul(&c, &a, &one, m)
		if Eq(&a, &c) != 1 {
			t.Fatalf("ERR %s: a*1 != a", tm.name)
		}
		if gfToBig(&one, m).Cmp(big.NewInt(1)) != 0 {
			t.Fatalf("ERR %s: MontyOne is not 1", tm.name)
		}
	}
}

func TestPowPubexp(t *testing.T) {
	for _, tm := range testModuli {
		m := tm.mod
		mz := modToBig(m)
		var rng prng
		rng.init("test pow " + tm.name)
		for i := 0; i < 20; i++ {
			var a, e, c [4]uint64
			rng.mkgf(&a, m)
			rng.mk256(&e)
			za := gfToBig(&a, m)
			ze := int256ToBig(&e)

			PowPubexp(&c, &a, &e, m)
			zc := gfToBig(&c, m)
			zd := new(big.Int).Exp(za, ze, mz)
			if zc.Cmp(zd) != 0 {
				t.Fatalf("ERR %s pow: %s^%s -> %s", tm.name, za, ze, zc)
			}
		}

		// Fermat: a^(m-1) = 1 for a != 0.
		var a, e, c [4]uint64
		rng.mkgf(&a, m)
		if IsZero(&a) == 1 {
			a[0] = 1
		}
		copy(e[:], m.M[:])
		e[0]--
		PowPubexp(&c, &a, &e, m)
		if gfToBig(&c, m).Cmp(big.NewInt(1)) != 0 {
			t.Fatalf("ERR %s: a^(m-1) != 1", tm.name)
		}
	}
}

func TestSelectCond(t *testing.T) {
	for _, tm := range testModuli {
		m := tm.mod
		var rng prng
		rng.init("test select " + tm.name)
		for i := 0; i < 100; i++ {
			var a, b, c [4]uint64
			rng.mkgf(&a, m)
			rng.mkgf(&b, m)

			Select(&c, &a, &b, 1)
			if Eq(&c, &a) != 1 {
				t.Fatalf("ERR %s select(1)", tm.name)
			}
			Select(&c, &a, &b, 0)
			if Eq(&c, &b) != 1 {
				t.Fatalf("ERR %s select(0)", tm.name)
			}

			var n [4]uint64
			Neg(&n, &a, m)
			CondNeg(&c, &a, m, 0)
			if Eq(&c, &a) != 1 {
				t.Fatalf("ERR %s condneg(0)", tm.name)
			}
			CondNeg(&c, &a, m, 1)
			if Eq(&c, &n) != 1 {
				t.Fatalf("ERR %s condneg(1)", tm.name)
			}

			if Eq(&a, &b) != 0 {
				t.Fatalf("ERR %s eq on distinct values", tm.name)
			}
		}
	}
}

func TestCodec(t *testing.T) {
	for _, tm := range testModuli {
		m := tm.mod
		mz := modToBig(m)
		var rng prng
		rng.init("test codec " + tm.name)
		for i := 0; i < 500; i++ {
			var a, c [4]uint64
			rng.mkgf(&a, m)

			bb := Encode(nil, &a, m)
			if len(bb) != 32 {
				t.Fatalf("ERR %s: encode length %d", tm.name, len(bb))
			}
			if decodeToBigLE(bb).Cmp(gfToBig(&a, m)) != 0 {
				t.Fatalf("ERR %s: wrong encoded value", tm.name)
			}
			if Decode(&c, bb, m) != 1 {
				t.Fatalf("ERR %s: decode of canonical value failed", tm.name)
			}
			if Eq(&a, &c) != 1 {
				t.Fatalf("ERR %s: decode/encode roundtrip", tm.name)
			}

			// Parity matches the canonical value.
			if IsOdd(&a, m) != uint64(gfToBig(&a, m).Bit(0)) {
				t.Fatalf("ERR %s: wrong parity", tm.name)
			}

			// Wide decoding reduces a 512-bit value.
			var wide [64]byte
			rng.generate(wide[:])
			DecodeWide(&c, wide[:], m)
			zd := decodeToBigLE(wide[:])
			zd.Mod(zd, mz)
			if gfToBig(&c, m).Cmp(zd) != 0 {
				t.Fatalf("ERR %s: wrong wide decode", tm.name)
			}
		}

		// Out-of-range encodings must be rejected (and yield zero).
		var c [4]uint64
		for _, delta := range []int64{0, 1, 12345} {
			bad := new(big.Int).Add(mz, big.NewInt(delta))
			bb := make([]byte, 32)
			for j, by := range bad.Bytes() {
				bb[len(bad.Bytes())-1-j] = by
			}
			if Decode(&c, bb, m) != 0 {
				t.Fatalf("ERR %s: out-of-range value accepted (m+%d)", tm.name, delta)
			}
			if IsZero(&c) != 1 {
				t.Fatalf("ERR %s: rejected decode not zeroed", tm.name)
			}
		}

		// m - 1 is canonical.
		mm1 := new(big.Int).Sub(mz, big.NewInt(1))
		bb := make([]byte, 32)
		for j, by := range mm1.Bytes() {
			bb[len(mm1.Bytes())-1-j] = by
		}
		if Decode(&c, bb, m) != 1 {
			t.Fatalf("ERR %s: m-1 rejected", tm.name)
		}
	}
}
