package jubjub

// This file implements scalar multiplication: generic (variable base)
// and for the conventional generator (fixed base, with precomputed
// windows, see tables.go). Both use a 5-bit Booth recoding of the
// multiplier, so that each window holds only the 16 first multiples of
// the base point; negative digits are handled with a constant-time
// conditional negation of the looked-up point, which is inexpensive in
// the precomputed (Niels) representation.

// Recode a 256-bit integer with 5-bit Booth encoding. Output is a
// sequence of small integers in the -15..+16 range such that:
//   a = \sum_{i=0}^{51} d[i]*2^(5*i)
// Top digit d[51] is nonnegative. If the input value is less than 2^255,
// then the top digit can only be 0 or 1.
// Each output digit is encoded in a byte as sign+mantissa: the low 5 bits
// of the byte are the absolute value of the digit (in the 0..16 range),
// and the high bit of the byte is set to 1 for a negative digit, 0
// otherwise. When the digit is 0, the function may encode it as -0
// (0x80) or +0 (0x00) (the top digit d[51] cannot be -0, only +0).
func recode5(d *[52]byte, a *[4]uint64) {
	acc := a[0]
	acc_len := 64
	j := 1
	var cc uint = 0
	for i := 0; i < 51; i++ {
		var b uint
		if acc_len < 5 {
			next := a[j]
			j++
			b = uint(acc|(next<<uint(acc_len))) & 31
			acc = next >> uint(5-acc_len)
			acc_len = 59 + acc_len
		} else {
			b = uint(acc) & 31
			acc >>= 5
			acc_len -= 5
		}
		b += cc
		m := (16 - b) >> 8
		b ^= m & (b ^ (160 - b))
		cc = m & 1
		d[i] = byte(b)
	}
	d[51] = byte(uint(acc) + cc)
}

// Constant-time lookup of a precomputed point in a window. Provided
// window has 16 elements, win[i] holding the precomputed form of
// (i+1)*B for the window base B. Input offset ('index') is in the
// 0..16 range. This function sets N to a copy of win[index - 1] if
// index != 0, or to the (precomputed) identity if index == 0.
func (N *ExtendedNielsPoint) lookupWindow(win *[16]ExtendedNielsPoint, index uint) {
	// Initialize N to all-zeros.
	N.vPlusU = fqZero
	N.vMinusU = fqZero
	N.z = fqZero
	N.t2d = fqZero

	// Lookup all values.
	for i := 0; i < 16; i++ {
		m := int64(index) - int64(i+1)
		mm := ^uint64((m | -m) >> 63)
		N.vPlusU.condOrFrom(&win[i].vPlusU, mm)
		N.vMinusU.condOrFrom(&win[i].vMinusU, mm)
		N.z.condOrFrom(&win[i].z, mm)
		N.t2d.condOrFrom(&win[i].t2d, mm)
	}

	// The identity in precomputed form is (1, 1, 1, 0); set the three
	// nonzero coordinates to 1 if the index is zero.
	mz := uint64((int64(index) - 1) >> 63)
	N.vPlusU.condOrFrom(&fqOne, mz)
	N.vMinusU.condOrFrom(&fqOne, mz)
	N.z.condOrFrom(&fqOne, mz)
}

// Constant-time lookup of a precomputed point in a window. This is
// similar to ExtendedNielsPoint.lookupWindow(), except that this
// function works on points in precomputed affine representation
// (the identity is (1, 1, 0)).
func (N *AffineNielsPoint) lookupWindow(win *[16]AffineNielsPoint, index uint) {
	// Initialize N to all-zeros.
	N.vPlusU = fqZero
	N.vMinusU = fqZero
	N.t2d = fqZero

	// Lookup all values.
	for i := 0; i < 16; i++ {
		m := int64(index) - int64(i+1)
		mm := ^uint64((m | -m) >> 63)
		N.vPlusU.condOrFrom(&win[i].vPlusU, mm)
		N.vMinusU.condOrFrom(&win[i].vMinusU, mm)
		N.t2d.condOrFrom(&win[i].t2d, mm)
	}

	mz := uint64((int64(index) - 1) >> 63)
	N.vPlusU.condOrFrom(&fqOne, mz)
	N.vMinusU.condOrFrom(&fqOne, mz)
}

// Multiply the point Q by a canonical (plain integer) multiplier k,
// which may be up to 2^255 - 1 (in particular, the group order r
// itself is a valid multiplier, which the torsion test relies on).
// A pointer to this structure (P) is returned.
func (P *ExtendedPoint) mulCanonical(Q *ExtendedPoint, k *[4]uint64) *ExtendedPoint {
	// Recode the multiplier into 5-bit Booth encoding.
	var sd [52]byte
	recode5(&sd, k)

	// Initialize the window with i*Q for i in 1..16 (point i*Q is
	// stored at offset i-1), then convert it to precomputed form.
	var winExt [16]ExtendedPoint
	winExt[0] = *Q
	winExt[1].Double(Q)
	for i := 3; i <= 15; i += 2 {
		winExt[i-1].Add(&winExt[i-2], Q)
		winExt[i].Double(&winExt[((i+1)>>1)-1])
	}
	var win [16]ExtendedNielsPoint
	for i := 0; i < 16; i++ {
		winExt[i].toNiels(&win[i])
	}

	// Lookup the point corresponding to the top digit (which is
	// guaranteed nonnegative) to initialize the accumulator.
	var M ExtendedNielsPoint
	M.lookupWindow(&win, uint(sd[51]))
	P.Identity()
	P.addNiels(P, &M)

	// Process other digits from top to bottom.
	for i := 50; i >= 0; i-- {
		P.DoubleX(P, 5)
		M.lookupWindow(&win, uint(sd[i]&0x1F))
		M.condNeg(&M, Choice(sd[i]>>7))
		P.addNiels(P, &M)
	}

	return P
}

// Multiply the point Q by the scalar n: P <- n*Q.
// A pointer to this structure (P) is returned.
func (P *ExtendedPoint) Mul(Q *ExtendedPoint, n *Fr) *ExtendedPoint {
	var k [4]uint64
	n.toCanonical(&k)
	return P.mulCanonical(Q, &k)
}

// Multiply the conventional generator by a given scalar n. This is
// functionally equivalent (but faster) to P.Generator().Mul(P, n).
// A pointer to this structure (P) is returned.
func (P *ExtendedPoint) MulGen(n *Fr) *ExtendedPoint {
	// Recode the scalar into 5-bit Booth encoding. The four quarters
	// of the digit sequence are processed in parallel against the
	// four precomputed windows (multiples of G, 2^65*G, 2^130*G and
	// 2^195*G).
	var k [4]uint64
	n.toCanonical(&k)
	var sd [52]byte
	recode5(&sd, &k)

	// Lookup initial accumulator by using the top digit (which is
	// guaranteed nonnegative).
	var Ma AffineNielsPoint
	Ma.lookupWindow(&mulGenWinG195, uint(sd[51]))
	P.Identity()
	P.addMixed(P, &Ma)

	// Add points corresponding to top digits of the three other
	// quarter-scalars.
	Ma.lookupWindow(&mulGenWinG, uint(sd[12]&0x1F))
	Ma.condNeg(&Ma, Choice(sd[12]>>7))
	P.addMixed(P, &Ma)
	Ma.lookupWindow(&mulGenWinG65, uint(sd[25]&0x1F))
	Ma.condNeg(&Ma, Choice(sd[25]>>7))
	P.addMixed(P, &Ma)
	Ma.lookupWindow(&mulGenWinG130, uint(sd[38]&0x1F))
	Ma.condNeg(&Ma, Choice(sd[38]>>7))
	P.addMixed(P, &Ma)

	// Process all other digits from high to low. We process the
	// four quarter-scalars in parallel.
	for i := 11; i >= 0; i-- {
		P.DoubleX(P, 5)

		Ma.lookupWindow(&mulGenWinG, uint(sd[i]&0x1F))
		Ma.condNeg(&Ma, Choice(sd[i]>>7))
		P.addMixed(P, &Ma)
		Ma.lookupWindow(&mulGenWinG65, uint(sd[i+13]&0x1F))
		Ma.condNeg(&Ma, Choice(sd[i+13]>>7))
		P.addMixed(P, &Ma)
		Ma.lookupWindow(&mulGenWinG130, uint(sd[i+26]&0x1F))
		Ma.condNeg(&Ma, Choice(sd[i+26]>>7))
		P.addMixed(P, &Ma)
		Ma.lookupWindow(&mulGenWinG195, uint(sd[i+39]&0x1F))
		Ma.condNeg(&Ma, Choice(sd[i+39]>>7))
		P.addMixed(P, &Ma)
	}

	return P
}
