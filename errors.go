package jubjub

import "github.com/pkg/errors"

// ErrInvalidEncoding is returned (possibly wrapped with context) by the
// SetBytes functions when the source bytes are not a canonical encoding
// of a field element or curve point. Callers can test for it with
// errors.Is / errors.Cause.
var ErrInvalidEncoding = errors.New("jubjub: invalid encoding")
