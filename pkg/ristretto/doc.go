// Package ristretto implements the prime-order ristretto255 group as a
// quotient of the edwards25519 curve, and the conversions between a group
// element and the edwards25519 point that represents it.
//
// A Point stores exactly one edwards25519.Point and nothing else. Every
// constructor keeps that representative torsion-free, so converting a Point
// to an Edwards point (ToEdwards) is a plain copy that cannot fail, while the
// opposite direction (FromEdwards) must first check that the Edwards point
// has no component in the order-8 subgroup. That check costs a full scalar
// multiplication; avoid FromEdwards on hot paths when the origin of the point
// already guarantees it is torsion-free.
//
// Encoding, decoding and equality follow RFC 9496.
package ristretto
