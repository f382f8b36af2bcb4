package ristretto

import (
	"github.com/gtank/ristretto255"
)

// Element converts v to a github.com/gtank/ristretto255 element through its
// canonical encoding.
func (v *Point) Element() *ristretto255.Element {
	e, err := new(ristretto255.Element).SetCanonicalBytes(v.Bytes())
	if err != nil {
		panic("ristretto: internal error: canonical encoding rejected by ristretto255")
	}
	return e
}

// FromElement converts a github.com/gtank/ristretto255 element to a Point.
func FromElement(e *ristretto255.Element) *Point {
	p, err := new(Point).SetCanonicalBytes(e.Bytes())
	if err != nil {
		panic("ristretto: internal error: ristretto255 produced a non-canonical encoding")
	}
	return p
}
