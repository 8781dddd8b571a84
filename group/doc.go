// Package group defines the engine boundary for pairing-friendly curves
// used by the pairing package.
//
// This package provides interfaces that abstract over the concrete curve
// arithmetic of a bilinear pairing e: G1 x G2 -> GT:
//
//   - [Scalar]: Elements of the scalar field (integers modulo the group order)
//   - [Point]: Elements of a source group (points on an elliptic curve)
//   - [Target]: Elements of the target group, written multiplicatively
//   - [Curve]: Factory methods shared by every engine
//   - [SymmetricCurve]: Engines where G1 = G2
//   - [AsymmetricCurve]: Engines with distinct G1 and G2
//
// # Design Philosophy
//
// The interfaces use a mutable receiver pattern for efficiency. Operations
// like Add, Mul, and ScalarMult set the receiver to the result and return it,
// allowing method chaining while minimizing allocations:
//
//	// Compute a*P + Q
//	r := c.NewG1().ScalarMult(a, p)
//	r = c.NewG1().Add(r, q)
//
// Operations that depend on external input (randomness, hashing) return
// errors rather than panicking. Arithmetic is total over its domain.
//
// # Implementing an Engine
//
// To plug a new curve into the pairing package:
//
//  1. Reuse [github.com/f3rmion/pairing/zr] for the scalar field
//  2. Create point types for G1 (and G2) implementing [Point]
//  3. Create a target type implementing [Target]
//  4. Create a curve type implementing [SymmetricCurve] or [AsymmetricCurve]
//
// See the bn254, bls12381 and ss packages for complete implementations.
//
// # Security Considerations
//
// Implementations must ensure:
//
//   - Scalar arithmetic is performed modulo the group order
//   - Hash-to-group outputs have no known discrete logarithm
//   - Random scalars are drawn uniformly from the supplied reader
//   - Points produced by the engine lie in the prime-order subgroup
package group
