package group

import (
	"io"
)

// Scalar represents an element of the scalar field associated with a
// pairing-friendly curve. Scalars are integers modulo the group order r and
// are used as exponents in scalar multiplication and target-group powers.
//
// All arithmetic methods use a mutable receiver pattern: they modify
// the receiver, store the result in it, and return it. This allows for
// efficient method chaining while minimizing memory allocations.
//
// Implementations must ensure all arithmetic results are in the range
// [0, order). The only scalar allowed to hold r itself is the one returned
// by [Curve.Order].
type Scalar interface {
	// Add sets the receiver to a+b and returns it.
	Add(a, b Scalar) Scalar
	// Sub sets the receiver to a-b and returns it.
	Sub(a, b Scalar) Scalar
	// Mul sets the receiver to a*b and returns it.
	Mul(a, b Scalar) Scalar
	// Negate sets the receiver to -a and returns it.
	Negate(a Scalar) Scalar
	// Invert sets the receiver to a^{-1} and returns it.
	// Returns an error if a is zero.
	Invert(a Scalar) (Scalar, error)
	// Set sets the receiver to a and returns it.
	Set(a Scalar) Scalar
	// Bytes returns the canonical byte representation of the scalar.
	Bytes() []byte
	// Equal reports whether the receiver equals b modulo the group order.
	Equal(b Scalar) bool
	// IsZero reports whether the receiver is zero modulo the group order.
	IsZero() bool
	// String returns the base-10 representation of the scalar.
	String() string
}

// Point represents an element of one of the pairing source groups (G1 or
// G2), a point on an elliptic curve. Points are written additively by the
// engine; the pairing package presents them multiplicatively.
//
// Like [Scalar], all arithmetic methods use a mutable receiver pattern
// for efficiency.
//
// The identity element (point at infinity) is the additive identity:
// P + Identity = P for all points P.
type Point interface {
	// Add sets the receiver to a+b and returns it.
	Add(a, b Point) Point
	// Sub sets the receiver to a-b and returns it.
	Sub(a, b Point) Point
	// Negate sets the receiver to -a and returns it.
	Negate(a Point) Point
	// ScalarMult sets the receiver to s*p and returns it.
	ScalarMult(s Scalar, p Point) Point
	// Set sets the receiver to a and returns it.
	Set(a Point) Point
	// Bytes returns the canonical byte representation of the point.
	Bytes() []byte
	// Equal reports whether the receiver equals b.
	Equal(b Point) bool
	// IsIdentity reports whether the receiver is the identity element.
	IsIdentity() bool
	// IsInSubGroup reports whether the receiver lies on the curve and in
	// the prime-order subgroup.
	IsInSubGroup() bool
	// String returns a human readable rendering of the point.
	String() string
}

// Target represents an element of the pairing target group GT. The target
// group is written multiplicatively: composition is multiplication and the
// identity is one.
type Target interface {
	// Mul sets the receiver to a*b and returns it.
	Mul(a, b Target) Target
	// Div sets the receiver to a/b and returns it.
	Div(a, b Target) Target
	// Exp sets the receiver to a^s and returns it.
	Exp(a Target, s Scalar) Target
	// Set sets the receiver to a and returns it.
	Set(a Target) Target
	// Bytes returns the canonical byte representation of the element.
	Bytes() []byte
	// Equal reports whether the receiver equals b.
	Equal(b Target) bool
	// IsOne reports whether the receiver is the identity of GT.
	IsOne() bool
	// String returns a human readable rendering of the element.
	String() string
}

// Curve is the part of a pairing engine shared by the symmetric and the
// asymmetric configuration: the scalar field, the first source group G1 and
// the target group GT.
//
// A Curve is immutable after construction and safe for concurrent use. All
// randomness is supplied by the caller.
type Curve interface {
	// Name returns the catalogue name of the curve, e.g. "BN254".
	Name() string
	// SecurityLevel returns the approximate security of the curve in bits.
	SecurityLevel() int

	// NewScalar returns a new zero scalar.
	NewScalar() Scalar
	// RandomScalar returns a uniformly random scalar read from r.
	RandomScalar(r io.Reader) (Scalar, error)
	// HashToScalar deterministically maps msg to a scalar.
	HashToScalar(msg []byte) (Scalar, error)
	// Order returns a scalar holding the group order r itself.
	Order() Scalar

	// NewG1 returns a new identity point of G1.
	NewG1() Point
	// G1Generator returns the base point of G1.
	G1Generator() Point
	// HashToG1 deterministically maps msg to a point of G1.
	HashToG1(msg []byte) (Point, error)

	// NewGT returns a new identity element of GT.
	NewGT() Target
}

// SymmetricCurve is an engine whose pairing takes both inputs from G1
// (a type-1 pairing).
type SymmetricCurve interface {
	Curve
	// Pair computes e(p, q) for p, q in G1.
	Pair(p, q Point) Target
}

// AsymmetricCurve is an engine with two distinct source groups G1 and G2
// (a type-3 pairing).
type AsymmetricCurve interface {
	Curve

	// NewG2 returns a new identity point of G2.
	NewG2() Point
	// G2Generator returns the base point of G2.
	G2Generator() Point
	// HashToG2 deterministically maps msg to a point of G2.
	HashToG2(msg []byte) (Point, error)

	// Pair computes e(p, q) for p in G1 and q in G2.
	Pair(p, q Point) Target
}
