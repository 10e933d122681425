package cas

import (
	"testing"

	"github.com/backkem/fips256/pkg/sha256"
	"github.com/ipfs/go-cid"
	"github.com/multiformats/go-multihash"
	"github.com/stretchr/testify/require"
)

const helloWorldCID = "bafkreifzjut3te2nhyekklss27nh3k72ysco7y32koao5eei66wof36n5e"

func TestCID(t *testing.T) {
	c, err := CID([]byte("hello world"))
	require.NoError(t, err)
	require.Equal(t, helloWorldCID, c.String())
	require.Equal(t, uint64(1), c.Version())
	require.Equal(t, uint64(cid.Raw), c.Type())

	parsed, err := cid.Decode(helloWorldCID)
	require.NoError(t, err)
	require.True(t, parsed.Equals(c))
}

func TestMultihash(t *testing.T) {
	data := []byte("abc")

	mh, err := Multihash(data)
	require.NoError(t, err)

	// Cross-check against the multihash library's own sha2-256.
	want, err := multihash.Sum(data, multihash.SHA2_256, -1)
	require.NoError(t, err)
	require.Equal(t, want, mh)

	decoded, err := multihash.Decode(mh)
	require.NoError(t, err)
	require.Equal(t, uint64(multihash.SHA2_256), decoded.Code)
	require.Equal(t, 32, decoded.Length)
}

func TestVerify(t *testing.T) {
	data := []byte("hello world")
	c, err := CID(data)
	require.NoError(t, err)

	t.Run("match", func(t *testing.T) {
		require.NoError(t, Verify(c, data))
	})

	t.Run("mismatch", func(t *testing.T) {
		err := Verify(c, []byte("hello world!"))
		require.ErrorIs(t, err, ErrDigestMismatch)
	})

	t.Run("unsupported hash", func(t *testing.T) {
		mh, err := multihash.Encode(make([]byte, 64), multihash.SHA2_512)
		require.NoError(t, err)
		err = Verify(cid.NewCidV1(cid.Raw, mh), data)
		require.ErrorIs(t, err, ErrUnsupportedHash)
	})
}

func TestEncode(t *testing.T) {
	c, err := CID([]byte("hello world"))
	require.NoError(t, err)

	s, err := Encode(c, DefaultBase)
	require.NoError(t, err)
	require.Equal(t, helloWorldCID, s)

	s, err = Encode(c, "base58btc")
	require.NoError(t, err)
	require.Equal(t, byte('z'), s[0])
	parsed, err := cid.Decode(s)
	require.NoError(t, err)
	require.True(t, parsed.Equals(c))

	_, err = Encode(c, "base-nonsense")
	require.Error(t, err)
}

func TestEncodeMultihash(t *testing.T) {
	mh, err := Multihash([]byte("hello world"))
	require.NoError(t, err)

	s, err := EncodeMultihash(mh, DefaultBase)
	require.NoError(t, err)
	require.Equal(t, "bciqlstjhxgju2pqiuuxffv62pwv7vree57rxuu4a52iir55m4lx432i", s)

	_, err = EncodeMultihash(mh, "base-nonsense")
	require.Error(t, err)
}

func TestCIDFromDigest(t *testing.T) {
	d := sha256.New()
	d.UpdateString("hello ").UpdateString("world")

	c, err := CIDFromDigest(d.FinalizeBytes())
	require.NoError(t, err)
	require.Equal(t, helloWorldCID, c.String())
}
