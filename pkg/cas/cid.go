// Package cas derives content identifiers from SHA-256 digests and keeps a
// bounded, deduplicating block store keyed by them.
package cas

import (
	"bytes"
	"fmt"

	"github.com/backkem/fips256/pkg/sha256"
	"github.com/ipfs/go-cid"
	"github.com/multiformats/go-multibase"
	"github.com/multiformats/go-multihash"
)

// DefaultBase is the multibase used when no encoding is requested.
const DefaultBase = "base32"

// Multihash returns the sha2-256 multihash of data.
func Multihash(data []byte) (multihash.Multihash, error) {
	return MultihashFromDigest(sha256.Sum256(data))
}

// MultihashFromDigest wraps an already computed digest as a sha2-256 multihash.
func MultihashFromDigest(sum [sha256.Size]byte) (multihash.Multihash, error) {
	mh, err := multihash.Encode(sum[:], multihash.SHA2_256)
	if err != nil {
		return nil, fmt.Errorf("encode multihash: %w", err)
	}
	return mh, nil
}

// CID returns the CIDv1 (raw codec) of data.
func CID(data []byte) (cid.Cid, error) {
	return CIDFromDigest(sha256.Sum256(data))
}

// CIDFromDigest returns the CIDv1 (raw codec) for an already computed digest.
func CIDFromDigest(sum [sha256.Size]byte) (cid.Cid, error) {
	mh, err := MultihashFromDigest(sum)
	if err != nil {
		return cid.Undef, err
	}
	return cid.NewCidV1(cid.Raw, mh), nil
}

// Verify checks that data hashes to c.
func Verify(c cid.Cid, data []byte) error {
	decoded, err := multihash.Decode(c.Hash())
	if err != nil {
		return fmt.Errorf("decode multihash of %s: %w", c, err)
	}
	if decoded.Code != multihash.SHA2_256 || decoded.Length != sha256.Size {
		return fmt.Errorf("%w: %s (code 0x%x, length %d)", ErrUnsupportedHash, decoded.Name, decoded.Code, decoded.Length)
	}

	sum := sha256.Sum256(data)
	if !bytes.Equal(decoded.Digest, sum[:]) {
		return fmt.Errorf("%w: %s", ErrDigestMismatch, c)
	}
	return nil
}

// Encode renders c in the named multibase (e.g. "base32", "base58btc").
func Encode(c cid.Cid, base string) (string, error) {
	enc, err := multibase.EncoderByName(base)
	if err != nil {
		return "", fmt.Errorf("multibase %q: %w", base, err)
	}
	return c.Encode(enc), nil
}

// EncodeMultihash renders mh in the named multibase.
func EncodeMultihash(mh multihash.Multihash, base string) (string, error) {
	enc, err := multibase.EncoderByName(base)
	if err != nil {
		return "", fmt.Errorf("multibase %q: %w", base, err)
	}
	return enc.Encode(mh), nil
}
