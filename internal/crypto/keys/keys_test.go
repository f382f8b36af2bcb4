package keys

import (
	"bytes"
	"crypto/ed25519"
	"crypto/rand"
	"crypto/sha512"
	"errors"
	"testing"

	"filippo.io/edwards25519"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smallyu/go-schnorr25519/pkg/ristretto"
	"github.com/smallyu/go-schnorr25519/pkg/schnorr"
)

func randomSeed(t *testing.T) []byte {
	seed := make([]byte, ed25519.SeedSize)
	_, err := rand.Read(seed)
	require.NoError(t, err)
	return seed
}

func TestFromEd25519SeedMatchesEd25519(t *testing.T) {
	for i := 0; i < 16; i++ {
		seed := randomSeed(t)
		sk, err := FromEd25519Seed(seed)
		require.NoError(t, err)

		// The Ed25519 public key is the encoding of 8 * Key * G.
		pub := ed25519.NewKeyFromSeed(seed).Public().(ed25519.PublicKey)
		assert.Equal(t, []byte(pub), sk.Ed25519Public().Bytes())

		// It is torsion-free, and as a group element it is 8 * Public().
		A, err := new(edwards25519.Point).SetBytes(pub)
		require.NoError(t, err)
		P, err := ristretto.FromEdwards(A)
		require.NoError(t, err)

		eightPub := new(ristretto.Point).Add(sk.Public(), sk.Public())
		eightPub.Add(eightPub, eightPub)
		eightPub.Add(eightPub, eightPub)
		assert.Equal(t, 1, P.Equal(eightPub))
	}
}

func TestExpandedBytesRoundTrip(t *testing.T) {
	for i := 0; i < 16; i++ {
		seed := randomSeed(t)
		h := sha512.Sum512(seed)
		h[0] &= 248
		h[31] &= 63
		h[31] |= 64

		sk, err := FromEd25519Seed(seed)
		require.NoError(t, err)
		assert.Equal(t, h[:], sk.Ed25519ExpandedBytes())
		assert.Equal(t, h[32:], sk.Nonce[:])

		again, err := FromEd25519ExpandedBytes(sk.Ed25519ExpandedBytes())
		require.NoError(t, err)
		assert.Equal(t, 1, again.Key.Equal(sk.Key))
	}
}

func TestFromEd25519ExpandedBytesErrors(t *testing.T) {
	_, err := FromEd25519ExpandedBytes(make([]byte, ExpandedSize-1))
	assert.True(t, errors.Is(err, schnorr.ErrBytesLength))

	_, err = FromEd25519Seed(make([]byte, 31))
	assert.True(t, errors.Is(err, schnorr.ErrBytesLength))

	// All ones divided by eight is 2^253 - 1, which is above the group order.
	b := bytes.Repeat([]byte{0xff}, ExpandedSize)
	_, err = FromEd25519ExpandedBytes(b)
	assert.True(t, errors.Is(err, schnorr.ErrScalarFormat))
}
