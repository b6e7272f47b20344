package jubjub

// Choice is a constant-time boolean; its value is 1 (true) or 0 (false).
// Functions in this package that make decisions based on secret data
// return a Choice instead of a bool, so that results can be combined
// and applied without branching on secrets. The Bool() method is the
// explicit boundary at which callers may convert back to a plain
// boolean; doing so leaks the value through control flow, so it should
// happen only once the value is no longer secret (e.g. to report a
// decoding failure).
type Choice uint64

// And returns the conjunction of c and d.
func (c Choice) And(d Choice) Choice {
	return c & d
}

// Or returns the disjunction of c and d.
func (c Choice) Or(d Choice) Choice {
	return c | d
}

// Xor returns the exclusive-or of c and d.
func (c Choice) Xor(d Choice) Choice {
	return c ^ d
}

// Not returns the negation of c.
func (c Choice) Not() Choice {
	return c ^ 1
}

// Mask expands c into a full-width mask: 0xFFFFFFFFFFFFFFFF if c is
// true, 0 otherwise.
func (c Choice) Mask() uint64 {
	return -uint64(c)
}

// Bool converts c to a plain boolean. This is not constant-time.
func (c Choice) Bool() bool {
	return c == 1
}

// ChoiceFromBool converts a plain boolean to a Choice. The input is
// assumed to be public (the conversion branches on it).
func ChoiceFromBool(b bool) Choice {
	if b {
		return 1
	}
	return 0
}
