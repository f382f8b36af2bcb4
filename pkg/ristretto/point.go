package ristretto

import (
	"encoding/hex"

	"filippo.io/edwards25519"
)

// PointSize is the length of a canonical ristretto255 encoding.
const PointSize = 32

// Point is an element of the ristretto255 group.
//
// The zero value is NOT valid, and it may be used only as a receiver.
type Point struct {
	// rep is a torsion-free edwards25519 point in the class of this element.
	// No other field may be added: ToEdwards and FromEdwards rely on rep being
	// the whole identity of a Point.
	rep edwards25519.Point
}

// NewIdentityPoint returns a new Point set to the identity.
func NewIdentityPoint() *Point {
	p := &Point{}
	p.rep.Set(edwards25519.NewIdentityPoint())
	return p
}

// NewGeneratorPoint returns a new Point set to the canonical generator.
func NewGeneratorPoint() *Point {
	p := &Point{}
	p.rep.Set(edwards25519.NewGeneratorPoint())
	return p
}

// Set sets v = p, and returns v.
func (v *Point) Set(p *Point) *Point {
	v.rep.Set(&p.rep)
	return v
}

// Add sets v = p + q, and returns v.
func (v *Point) Add(p, q *Point) *Point {
	v.rep.Add(&p.rep, &q.rep)
	return v
}

// Subtract sets v = p - q, and returns v.
func (v *Point) Subtract(p, q *Point) *Point {
	v.rep.Subtract(&p.rep, &q.rep)
	return v
}

// Negate sets v = -p, and returns v.
func (v *Point) Negate(p *Point) *Point {
	v.rep.Negate(&p.rep)
	return v
}

// ScalarMult sets v = x * q, and returns v.
func (v *Point) ScalarMult(x *edwards25519.Scalar, q *Point) *Point {
	v.rep.ScalarMult(x, &q.rep)
	return v
}

// ScalarBaseMult sets v = x * G, where G is the generator, and returns v.
func (v *Point) ScalarBaseMult(x *edwards25519.Scalar) *Point {
	v.rep.ScalarBaseMult(x)
	return v
}

// VarTimeDoubleScalarBaseMult sets v = a * A + b * G, and returns v.
//
// Execution time depends on the inputs.
func (v *Point) VarTimeDoubleScalarBaseMult(a *edwards25519.Scalar, A *Point, b *edwards25519.Scalar) *Point {
	v.rep.VarTimeDoubleScalarBaseMult(a, &A.rep, b)
	return v
}

// IsIdentity reports whether v is the identity element.
func (v *Point) IsIdentity() bool {
	return v.Equal(NewIdentityPoint()) == 1
}

// String returns the hex form of the canonical encoding.
func (v *Point) String() string {
	return hex.EncodeToString(v.Bytes())
}
