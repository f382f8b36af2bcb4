package ristretto

import (
	"bytes"

	"filippo.io/edwards25519"
	"filippo.io/edwards25519/field"

	"github.com/smallyu/go-schnorr25519/pkg/schnorr"
)

var (
	feOne      = new(field.Element).One()
	feZero     = new(field.Element).Zero()
	feMinusOne = new(field.Element).Negate(feOne)

	// curveD is the edwards25519 constant d = -121665/121666.
	curveD = func() *field.Element {
		den := new(field.Element).Mult32(feOne, 121666)
		d := new(field.Element).Invert(den)
		d.Multiply(d, new(field.Element).Mult32(feOne, 121665))
		return d.Negate(d)
	}()

	// sqrtM1 is the non-negative square root of -1.
	sqrtM1 = func() *field.Element {
		r, _ := new(field.Element).SqrtRatio(feMinusOne, feOne)
		return r
	}()

	// invSqrtAMinusD is 1/sqrt(a - d) for a = -1.
	invSqrtAMinusD = func() *field.Element {
		aMinusD := new(field.Element).Subtract(feMinusOne, curveD)
		r, _ := new(field.Element).SqrtRatio(feOne, aMinusD)
		return r
	}()
)

// Bytes returns the 32-byte canonical encoding of v.
func (v *Point) Bytes() []byte {
	X, Y, Z, T := v.rep.ExtendedCoordinates()

	u1 := new(field.Element).Add(Z, Y)
	u1.Multiply(u1, new(field.Element).Subtract(Z, Y))
	u2 := new(field.Element).Multiply(X, Y)

	// invSqrt = 1 / sqrt(u1 * u2^2)
	u1u2u2 := new(field.Element).Square(u2)
	u1u2u2.Multiply(u1u2u2, u1)
	invSqrt, _ := new(field.Element).SqrtRatio(feOne, u1u2u2)

	den1 := new(field.Element).Multiply(invSqrt, u1)
	den2 := new(field.Element).Multiply(invSqrt, u2)
	zInv := new(field.Element).Multiply(den1, den2)
	zInv.Multiply(zInv, T)

	ix0 := new(field.Element).Multiply(X, sqrtM1)
	iy0 := new(field.Element).Multiply(Y, sqrtM1)
	enchantedDenominator := new(field.Element).Multiply(den1, invSqrtAMinusD)

	rotate := new(field.Element).Multiply(T, zInv).IsNegative()
	x := new(field.Element).Select(iy0, X, rotate)
	y := new(field.Element).Select(ix0, Y, rotate)
	denInv := new(field.Element).Select(enchantedDenominator, den2, rotate)

	negY := new(field.Element).Negate(y)
	y.Select(negY, y, new(field.Element).Multiply(x, zInv).IsNegative())

	s := new(field.Element).Subtract(Z, y)
	s.Multiply(denInv, s)
	s.Absolute(s)

	return s.Bytes()
}

// SetCanonicalBytes sets v to the element encoded by b, and returns v. If b
// is not a canonical encoding of a group element, SetCanonicalBytes returns
// nil and an error matching schnorr.ErrPointDecompression, and the receiver
// is unchanged.
//
// The decoded representative is replaced by the torsion-free point of its
// class, which costs one scalar multiplication.
func (v *Point) SetCanonicalBytes(b []byte) (*Point, error) {
	const op = "ristretto.SetCanonicalBytes"
	if len(b) != PointSize {
		return nil, schnorr.BytesLengthError(op, "point", PointSize, len(b))
	}

	s, err := new(field.Element).SetBytes(b)
	if err != nil {
		return nil, schnorr.NewError(op, schnorr.ErrPointDecompression)
	}
	// Non-canonical field encodings and negative s are rejected.
	if !bytes.Equal(s.Bytes(), b) || s.IsNegative() == 1 {
		return nil, schnorr.NewError(op, schnorr.ErrPointDecompression)
	}

	ss := new(field.Element).Square(s)
	u1 := new(field.Element).Subtract(feOne, ss)
	u2 := new(field.Element).Add(feOne, ss)
	u2Sqr := new(field.Element).Square(u2)

	// v = -(d * u1^2) - u2^2
	w := new(field.Element).Square(u1)
	w.Multiply(w, curveD)
	w.Negate(w)
	w.Subtract(w, u2Sqr)

	invSqrt, wasSquare := new(field.Element).SqrtRatio(feOne, new(field.Element).Multiply(w, u2Sqr))

	denX := new(field.Element).Multiply(invSqrt, u2)
	denY := new(field.Element).Multiply(invSqrt, denX)
	denY.Multiply(denY, w)

	x := new(field.Element).Multiply(s, denX)
	x.Add(x, x)
	x.Absolute(x)
	y := new(field.Element).Multiply(u1, denY)
	t := new(field.Element).Multiply(x, y)

	if wasSquare == 0 || t.IsNegative() == 1 || y.Equal(feZero) == 1 {
		return nil, schnorr.NewError(op, schnorr.ErrPointDecompression)
	}

	rep, err := new(edwards25519.Point).SetExtendedCoordinates(x, y, feOne, t)
	if err != nil {
		return nil, schnorr.NewError(op, schnorr.ErrPointDecompression)
	}

	v.rep.Set(clearTorsion(rep))
	return v, nil
}

// Equal returns 1 if v and u represent the same group element, and 0
// otherwise. Representatives differing by a 4-torsion point compare equal.
func (v *Point) Equal(u *Point) int {
	X1, Y1, _, _ := v.rep.ExtendedCoordinates()
	X2, Y2, _, _ := u.rep.ExtendedCoordinates()

	x1y2 := new(field.Element).Multiply(X1, Y2)
	y1x2 := new(field.Element).Multiply(Y1, X2)
	y1y2 := new(field.Element).Multiply(Y1, Y2)
	x1x2 := new(field.Element).Multiply(X1, X2)

	return x1y2.Equal(y1x2) | y1y2.Equal(x1x2)
}
