// Package zr implements the scalar field Z_r shared by every pairing engine.
//
// A [Field] is created once per curve from its prime group order r and
// hands out [Scalar] values that implement [group.Scalar]. Scalars wrap
// big.Int with modular arithmetic, so they are not constant time; this
// matches the needs of the pairing abstraction, which is a research and
// prototyping layer rather than a hardened signing backend.
//
// The one scalar that is allowed to hold r unreduced is [Field.Modulus].
// It compares equal to zero, but an engine multiplying a point by it
// performs a full multiplication by the group order, which is what the
// pairing package's Order operation promises.
package zr
