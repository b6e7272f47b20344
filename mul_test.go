package jubjub

import (
	"bytes"
	"encoding/hex"
	"testing"
)

// (scalar, scalar*G) pairs; scalars are canonical little-endian.
var katMulGen = [][2]string{
	{"a2501c5f3436403a2d387b73468d5baa381d6d5e2052e0d96cbf8621c18ccb09", "9f31fa154e6705c8a4f61869794896bb0885a41c7227ca6c51c9bed970829437"},
	{"714b2d2855ada70bca9fc3dd60dd0aeb494fdf176869f789a0ee625cf7813605", "04df792185e4d5c6afcbad7aa6abc8bcc02b3917096aa01aa3159764fa157c9b"},
	{"9ce09af7ecccd628c8c87b26d1ade90dcb60937e99c683c2d20e39c5560ab109", "9bf0a34a6f955776bfcf2680dffc51f9701f62e4a18da6ae35812a044315b6d2"},
	{"e7148fd48293246a70714db0697acaa6ae77cf19b547727428959764024e3c04", "5311bb8554255a0e731f3543a3306cb9604ee57726aebf5db432232a0241bb01"},
}

// (scalar, scalar*P) pairs for P = 7*G.
var katMul = [][2]string{
	{"7bdd7e7aeb2bf57027f76c4205617dd5490af31124b497e17d8761603cbe5b0a", "27a662299a9d332b5451a822ccc49be51b06095e365ebe2f56165dbf444807a0"},
	{"3f391a2e4d45551a44f1f50f05eda56e8e37889c68666833389b75e18ec46701", "f9a2fe384e19514fb02694fb9d08dd5cfdeb292cb7139c6541b4d81cfa05c2eb"},
	{"460d32fec59671c76f052539640939c6cdba4d74c47969ff2844c23eae6eac06", "e8e035abc6069385a8d00dfd7490fa14b3bbefc182acee0c50b5e415b56386a6"},
	{"8acb7c94817150bc52dc930eb1031e190bda090523d2ba270ed95ac251934a00", "a650d32c826434424bd523352fac30beb6be7b8111ee96ed8ff0dc4a7e6aba8f"},
}

func TestMulGen(t *testing.T) {
	for i, kat := range katMulGen {
		sb, _ := hex.DecodeString(kat[0])
		eb, _ := hex.DecodeString(kat[1])
		var n Fr
		if n.Decode(sb) != 1 {
			t.Fatalf("ERR: KAT scalar did not decode (%d)", i)
		}
		var P ExtendedPoint
		P.MulGen(&n)
		e := P.Bytes()
		if !bytes.Equal(e[:], eb) {
			t.Fatalf("ERR: wrong n*G (%d):\nexp = %s\ngot = %s", i, kat[1], hex.EncodeToString(e[:]))
		}

		// MulGen must agree with the generic multiplication.
		var G, Q ExtendedPoint
		G.Generator()
		Q.Mul(&G, &n)
		if Q.Equal(&P) != 1 {
			t.Fatalf("ERR: MulGen disagrees with Mul (%d)", i)
		}
	}
}

func TestMul(t *testing.T) {
	// Base point P = 7*G.
	var G, B ExtendedPoint
	G.Generator()
	var seven Fr
	seven.SetUint64(7)
	B.Mul(&G, &seven)

	for i, kat := range katMul {
		sb, _ := hex.DecodeString(kat[0])
		eb, _ := hex.DecodeString(kat[1])
		var n Fr
		if n.Decode(sb) != 1 {
			t.Fatalf("ERR: KAT scalar did not decode (%d)", i)
		}
		var P ExtendedPoint
		P.Mul(&B, &n)
		e := P.Bytes()
		if !bytes.Equal(e[:], eb) {
			t.Fatalf("ERR: wrong n*P (%d):\nexp = %s\ngot = %s", i, kat[1], hex.EncodeToString(e[:]))
		}
	}
}

func TestMulEdgeCases(t *testing.T) {
	var rng prng
	rng.init("test mul edge")
	var B ExtendedPoint
	rng.mkPoint(&B)

	// 0*P = identity, 1*P = P.
	var n Fr
	var P ExtendedPoint
	n.SetZero()
	P.Mul(&B, &n)
	if P.IsIdentity() != 1 {
		t.Fatalf("ERR: 0*P != identity")
	}
	P.MulGen(&n)
	if P.IsIdentity() != 1 {
		t.Fatalf("ERR: 0*G != identity")
	}
	n.SetOne()
	P.Mul(&B, &n)
	if P.Equal(&B) != 1 {
		t.Fatalf("ERR: 1*P != P")
	}

	// (r-1)*P = -P (i.e. r*P = identity for a subgroup point).
	var m1 Fr
	m1.SetOne()
	m1.Neg(&m1)
	P.Mul(&B, &m1)
	var N ExtendedPoint
	N.Neg(&B)
	if P.Equal(&N) != 1 {
		t.Fatalf("ERR: (r-1)*P != -P")
	}

	// In-place: P.Mul(P, n).
	var n2 Fr
	rng.mkFr(&n2)
	var Q ExtendedPoint
	Q.Mul(&B, &n2)
	P.Set(&B)
	P.Mul(&P, &n2)
	if P.Equal(&Q) != 1 {
		t.Fatalf("ERR: in-place Mul")
	}
}

func TestMulLinearity(t *testing.T) {
	var rng prng
	rng.init("test mul linearity")
	for i := 0; i < 10; i++ {
		var a, b, c Fr
		rng.mkFr(&a)
		rng.mkFr(&b)
		c.Add(&a, &b)

		// (a+b)*G = a*G + b*G.
		var Pa, Pb, Pc, S ExtendedPoint
		Pa.MulGen(&a)
		Pb.MulGen(&b)
		Pc.MulGen(&c)
		S.Add(&Pa, &Pb)
		if S.Equal(&Pc) != 1 {
			t.Fatalf("ERR: (a+b)*G != a*G + b*G (%d)", i)
		}

		// (a*b)*G = a*(b*G).
		var ab Fr
		ab.Mul(&a, &b)
		var P1, P2 ExtendedPoint
		P1.MulGen(&ab)
		P2.Mul(&Pb, &a)
		if P1.Equal(&P2) != 1 {
			t.Fatalf("ERR: (a*b)*G != a*(b*G) (%d)", i)
		}
	}
}

func TestRecode5(t *testing.T) {
	var rng prng
	rng.init("test recode5")
	for i := 0; i < 1000; i++ {
		var a [4]uint64
		var bb [32]byte
		rng.generate(bb[:])
		for j := 0; j < 4; j++ {
			for k := 0; k < 8; k++ {
				a[j] |= uint64(bb[8*j+k]) << uint(8*k)
			}
		}
		a[3] &= 0x7FFFFFFFFFFFFFFF

		var sd [52]byte
		recode5(&sd, &a)

		// Digits must reconstruct the value: a = sum(d[i]*2^(5*i)).
		var acc [5]uint64
		for j := 51; j >= 0; j-- {
			// acc <- 32*acc + d[j], over 260 bits.
			var carry uint64
			for k := 0; k < 5; k++ {
				nc := acc[k] >> 59
				acc[k] = (acc[k] << 5) | carry
				carry = nc
			}
			dv := uint64(sd[j] & 0x1F)
			if dv > 16 {
				t.Fatalf("ERR: digit out of range: %d", dv)
			}
			if sd[j] >= 0x80 {
				// Subtract dv.
				var cc uint64 = dv
				for k := 0; k < 5 && cc != 0; k++ {
					ov := acc[k]
					acc[k] -= cc
					if acc[k] <= ov {
						cc = 0
					} else {
						cc = 1
					}
				}
			} else {
				var cc uint64 = dv
				for k := 0; k < 5 && cc != 0; k++ {
					ov := acc[k]
					acc[k] += cc
					if acc[k] >= ov {
						cc = 0
					} else {
						cc = 1
					}
				}
			}
		}
		if acc[0] != a[0] || acc[1] != a[1] || acc[2] != a[2] || acc[3] != a[3] || acc[4] != 0 {
			t.Fatalf("ERR: recoding does not reconstruct the value")
		}
		if sd[51] > 1 {
			t.Fatalf("ERR: top digit out of range for a 255-bit value")
		}
	}
}

func BenchmarkMul(b *testing.B) {
	var rng prng
	rng.init("bench mul")
	var P ExtendedPoint
	rng.mkPoint(&P)
	var n Fr
	rng.mkFr(&n)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		P.Mul(&P, &n)
	}
}

func BenchmarkMulGen(b *testing.B) {
	var rng prng
	rng.init("bench mulgen")
	var n Fr
	rng.mkFr(&n)
	var P ExtendedPoint
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		P.MulGen(&n)
	}
}

func BenchmarkAdd(b *testing.B) {
	var rng prng
	rng.init("bench add")
	var P, Q ExtendedPoint
	rng.mkPoint(&P)
	rng.mkPoint(&Q)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		P.Add(&P, &Q)
	}
}

func BenchmarkDecode(b *testing.B) {
	var rng prng
	rng.init("bench decode")
	var P ExtendedPoint
	rng.mkPoint(&P)
	e := P.Bytes()
	var Q AffinePoint
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Q.Decode(e[:])
	}
}
