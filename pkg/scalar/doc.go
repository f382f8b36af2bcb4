// Package scalar provides helpers for edwards25519 scalars that the
// underlying arithmetic library does not: sampling a uniform scalar from an
// extendable-output hash, and exact multiplication or division of a 256-bit
// little-endian value by the curve cofactor using bit shifts.
//
// The shifts never call into modular arithmetic. They are truncating: bits
// moved past either end of the 256-bit buffer are dropped, so a
// multiply/divide pair only round-trips when the bits that would be lost
// are already zero.
package scalar
