package jubjub

// BatchNormalize scales every point in v to Z = 1 using a single field
// inversion (Montgomery's trick: accumulate the product of all Z
// coordinates, invert it once, then peel off individual inverses with
// one multiplication each, walking the slice backward). Points are
// updated in place and the corresponding affine points are returned,
// with out[i] equal to the affine form of v[i].
//
// Entries with Z == 0 (a degenerate encoding that the public API never
// produces) do not poison the shared inversion: each such entry is
// skipped in the running product, via a constant-time substitution of
// its Z by 1, and normalizes to the identity.
//
// The t1 coordinate of each point is used as scratch space for the
// running products during the computation; it is rewritten with its
// final value before returning.
func BatchNormalize(v []ExtendedPoint) []AffinePoint {
	var acc Fq
	acc.SetOne()
	for i := range v {
		// Stash the product of the (substituted) Z coordinates of
		// all previous entries.
		v[i].t1.Set(&acc)
		var z Fq
		z.Select(&fqOne, &v[i].z, v[i].z.IsZero())
		acc.Mul(&acc, &z)
	}

	// acc is a product of nonzero values, so the inversion cannot
	// fail.
	acc.Inv(&acc)

	out := make([]AffinePoint, len(v))
	for i := len(v) - 1; i >= 0; i-- {
		p := &v[i]
		zz := p.z.IsZero()
		var z, zi Fq
		z.Select(&fqOne, &p.z, zz)

		// acc holds the inverse of the product of the substituted Z
		// of entries 0..i; combined with the prefix product stashed
		// in t1, this yields 1/Z for this entry.
		zi.Mul(&p.t1, &acc)
		acc.Mul(&acc, &z)

		p.u.Mul(&p.u, &zi)
		p.v.Mul(&p.v, &zi)

		// Degenerate entries normalize to the identity.
		p.u.Select(&fqZero, &p.u, zz)
		p.v.Select(&fqOne, &p.v, zz)
		p.z.SetOne()
		p.t1.Set(&p.u)
		p.t2.Set(&p.v)

		out[i].u.Set(&p.u)
		out[i].v.Set(&p.v)
	}
	return out
}
