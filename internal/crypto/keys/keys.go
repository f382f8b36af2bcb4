// Package keys converts Ed25519 key material into ristretto255 secret
// scalars and back.
//
// An Ed25519 secret scalar is clamped: its low three bits are zero, so it is
// a multiple of the cofactor. The ristretto255 secret is that scalar divided
// by eight, which is exact and always canonical. Multiplying by eight restores
// the clamped Ed25519 bytes without loss.
package keys

import (
	"crypto/ed25519"
	"crypto/sha512"

	"filippo.io/edwards25519"

	"github.com/smallyu/go-schnorr25519/pkg/ristretto"
	"github.com/smallyu/go-schnorr25519/pkg/scalar"
	"github.com/smallyu/go-schnorr25519/pkg/schnorr"
)

const (
	// NonceSize is the length of the nonce seed that follows the key in an
	// expanded secret.
	NonceSize = 32

	// ExpandedSize is the length of an expanded Ed25519 secret, key || nonce.
	ExpandedSize = scalar.Size + NonceSize
)

// SecretKey is a ristretto255 secret scalar together with the seed used to
// derive signing nonces.
type SecretKey struct {
	Key   *edwards25519.Scalar
	Nonce [NonceSize]byte
}

// FromEd25519Seed expands a 32-byte Ed25519 seed the way RFC 8032 does and
// converts the clamped scalar to a ristretto255 secret.
func FromEd25519Seed(seed []byte) (*SecretKey, error) {
	if len(seed) != ed25519.SeedSize {
		return nil, schnorr.BytesLengthError("keys.FromEd25519Seed", "seed", ed25519.SeedSize, len(seed))
	}

	h := sha512.Sum512(seed)
	h[0] &= 248
	h[31] &= 63
	h[31] |= 64

	return FromEd25519ExpandedBytes(h[:])
}

// FromEd25519ExpandedBytes converts an expanded Ed25519 secret, a
// little-endian scalar followed by the nonce seed, into a SecretKey.
//
// The scalar is divided by the cofactor with a bit shift; its low three bits
// should be zero, as they are for any clamped key, or they are lost. The
// quotient must be below the group order.
func FromEd25519ExpandedBytes(b []byte) (*SecretKey, error) {
	const op = "keys.FromEd25519ExpandedBytes"
	if len(b) != ExpandedSize {
		return nil, schnorr.BytesLengthError(op, "expanded secret", ExpandedSize, len(b))
	}

	var key [scalar.Size]byte
	copy(key[:], b[:scalar.Size])
	scalar.DivideBytesByCofactor(&key)

	s, err := edwards25519.NewScalar().SetCanonicalBytes(key[:])
	if err != nil {
		return nil, schnorr.NewError(op, schnorr.ErrScalarFormat)
	}

	sk := &SecretKey{Key: s}
	copy(sk.Nonce[:], b[scalar.Size:])
	return sk, nil
}

// Ed25519ExpandedBytes returns the expanded Ed25519 form of sk, the key
// multiplied by the cofactor followed by the nonce seed.
func (sk *SecretKey) Ed25519ExpandedBytes() []byte {
	var key [scalar.Size]byte
	copy(key[:], sk.Key.Bytes())
	// Key < l < 2^253, so no bits are shifted out.
	scalar.MultiplyBytesByCofactor(&key)

	out := make([]byte, 0, ExpandedSize)
	out = append(out, key[:]...)
	return append(out, sk.Nonce[:]...)
}

// Public returns Key * G.
func (sk *SecretKey) Public() *ristretto.Point {
	return new(ristretto.Point).ScalarBaseMult(sk.Key)
}

// Ed25519Public returns the Ed25519 public key point of sk, which is
// 8 * Key * G on edwards25519.
func (sk *SecretKey) Ed25519Public() *edwards25519.Point {
	return new(edwards25519.Point).ScalarBaseMult(scalar.MultiplyByCofactor(sk.Key))
}
