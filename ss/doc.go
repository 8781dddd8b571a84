// Package ss provides symmetric (type-1) pairing engines on supersingular
// curves, implementing [group.SymmetricCurve].
//
// The curves are y^2 = x^3 + x over a prime field F_p with p = 3 (mod 4),
// the family PBC and Charm call "type A". Every such curve has p + 1 points
// over F_p, embedding degree 2, and the distortion map
//
//	phi(x, y) = (-x, i*y),  i^2 = -1
//
// which sends the order-r subgroup of E(F_p) to an independent subgroup of
// E(F_p^2). Composing the reduced Tate pairing with phi gives a bilinear
// map e: G1 x G1 -> GT that is symmetric, e(P, Q) = e(Q, P), and
// non-degenerate on the single source group G1.
//
// # Curves
//
//   - [SS512]: 512-bit p, r = 2^159 + 2^107 + 1, about 80-bit security
//   - [SS1536]: 1536-bit p, r = 2^255 + 2^243 + 1, about 128-bit security
//
// In both, p = h*r - 1 with h a multiple of 12.
//
// # Hashing
//
// HashToG1 and HashToScalar are built on BLAKE2Xb with per-function domain
// separation tags. HashToG1 is try-and-increment: the first counter whose
// abscissa lies on the curve wins, the smaller square root is taken and
// the cofactor h is cleared. Outputs depend only on the input and the
// curve, never on process state.
//
// # Performance
//
// Arithmetic uses math/big in affine coordinates and is neither fast nor
// constant time. SS1536 hashing and pairing take tens of milliseconds.
package ss
