package ristretto

import (
	"filippo.io/edwards25519"

	"github.com/smallyu/go-schnorr25519/pkg/schnorr"
)

var (
	// orderMinusOne is l - 1. [l]P is computed as [l-1]P + P since l itself
	// reduces to zero as a scalar.
	orderMinusOne = edwards25519.NewScalar().Subtract(edwards25519.NewScalar(), mustScalar(1))

	// invCofactor is 8^-1 mod l.
	invCofactor = edwards25519.NewScalar().Invert(mustScalar(8))
)

func mustScalar(v byte) *edwards25519.Scalar {
	var b [32]byte
	b[0] = v
	s, err := edwards25519.NewScalar().SetCanonicalBytes(b[:])
	if err != nil {
		panic("ristretto: internal error: small scalar rejected")
	}
	return s
}

// ToEdwards returns the edwards25519 representative of p.
//
// The result is a copy; p keeps its own representative. The returned point
// is always torsion-free, so FromEdwards accepts it.
func ToEdwards(p *Point) *edwards25519.Point {
	return new(edwards25519.Point).Set(&p.rep)
}

// Edwards is shorthand for ToEdwards(v).
func (v *Point) Edwards() *edwards25519.Point {
	return ToEdwards(v)
}

// FromEdwards returns the group element represented by e.
//
// e must be torsion-free. If it has a component in the order-8 subgroup,
// FromEdwards returns an error matching schnorr.ErrPointDecompression.
// The check is a full scalar multiplication and is therefore slow.
func FromEdwards(e *edwards25519.Point) (*Point, error) {
	if !IsTorsionFree(e) {
		return nil, schnorr.NewError("ristretto.FromEdwards", schnorr.ErrPointDecompression)
	}
	p := &Point{}
	p.rep.Set(e)
	return p, nil
}

// IsTorsionFree reports whether e lies in the prime-order subgroup, that is
// whether [l]e is the identity.
func IsTorsionFree(e *edwards25519.Point) bool {
	le := new(edwards25519.Point).ScalarMult(orderMinusOne, e)
	le.Add(le, e)
	return le.Equal(edwards25519.NewIdentityPoint()) == 1
}

// clearTorsion returns the torsion-free point of e + E[8], computed as
// [8^-1]([8]e).
func clearTorsion(e *edwards25519.Point) *edwards25519.Point {
	v := new(edwards25519.Point).MultByCofactor(e)
	return v.ScalarMult(invCofactor, v)
}
