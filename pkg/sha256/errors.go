package sha256

import "errors"

var (
	// ErrInvalidStateFormat is returned when a marshaled digest state has an unknown identifier.
	ErrInvalidStateFormat = errors.New("sha256: invalid hash state identifier")

	// ErrInvalidStateSize is returned when a marshaled digest state has the wrong length.
	ErrInvalidStateSize = errors.New("sha256: invalid hash state size")

	// ErrInvalidStateValue is returned when a marshaled digest state violates a buffering invariant.
	ErrInvalidStateValue = errors.New("sha256: invalid hash state value")
)
