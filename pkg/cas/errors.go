package cas

import "errors"

var (
	// ErrNotFound is returned when a CID is not present in the store.
	ErrNotFound = errors.New("cas: block not found")

	// ErrDigestMismatch is returned when data does not hash to the expected CID.
	ErrDigestMismatch = errors.New("cas: digest mismatch")

	// ErrUnsupportedHash is returned for CIDs that do not carry a sha2-256 multihash.
	ErrUnsupportedHash = errors.New("cas: unsupported multihash")

	// ErrInvalidCapacity is returned when a store is configured with a negative capacity.
	ErrInvalidCapacity = errors.New("cas: invalid capacity")
)
