package scalar

import (
	"io"

	"filippo.io/edwards25519"
)

const (
	// Size is the length of a canonical scalar encoding.
	Size = 32

	// WideSize is the number of XOF bytes reduced into one scalar. Reducing
	// 512 bits modulo the ~2^252 group order keeps the bias below 2^-128.
	WideSize = 64

	// Cofactor of the edwards25519 curve.
	Cofactor = 8
)

// FromXOF squeezes WideSize bytes from xof, interprets them as a 512-bit
// little-endian integer and reduces it modulo the group order. The stream
// position of xof advances by WideSize bytes.
//
// xof is expected to be an extendable-output function such as
// sha3.ShakeHash or blake2b.XOF, which never fail to read. FromXOF panics
// if the reader returns an error.
func FromXOF(xof io.Reader) *edwards25519.Scalar {
	var wide [WideSize]byte
	if _, err := io.ReadFull(xof, wide[:]); err != nil {
		panic("scalar: reading from XOF failed: " + err.Error())
	}

	s, err := edwards25519.NewScalar().SetUniformBytes(wide[:])
	if err != nil {
		panic("scalar: internal error: SetUniformBytes rejected 64 bytes")
	}
	return s
}

// MultiplyByCofactor returns 8*s mod l.
//
// The canonical encoding of s is shifted left by three bits. Since s < 2^253
// nothing is lost by the shift, and the result is reduced back into the
// canonical range.
func MultiplyByCofactor(s *edwards25519.Scalar) *edwards25519.Scalar {
	var wide [WideSize]byte
	copy(wide[:Size], s.Bytes())
	MultiplyBytesByCofactor((*[Size]byte)(wide[:Size]))

	out, err := edwards25519.NewScalar().SetUniformBytes(wide[:])
	if err != nil {
		panic("scalar: internal error: SetUniformBytes rejected 64 bytes")
	}
	return out
}

// DivideByCofactor returns floor(s/8), computed by shifting the canonical
// encoding of s right by three bits. This is an integer division, not a
// multiplication by the inverse of 8 modulo l: the low three bits of s are
// discarded.
func DivideByCofactor(s *edwards25519.Scalar) *edwards25519.Scalar {
	var b [Size]byte
	copy(b[:], s.Bytes())
	DivideBytesByCofactor(&b)

	// floor(s/8) < s < l, so the shifted value is always canonical.
	out, err := edwards25519.NewScalar().SetCanonicalBytes(b[:])
	if err != nil {
		panic("scalar: internal error: shifted scalar is not canonical")
	}
	return out
}
