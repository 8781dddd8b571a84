package pairing

import (
	"math/big"

	"github.com/f3rmion/pairing/group"
	"github.com/f3rmion/pairing/zr"
)

// ZR is a scalar modulo the group order of the context that produced it.
// ZR values are immutable; arithmetic returns new values.
type ZR struct {
	s group.Scalar
	g *base
}

// G1 is an element of the first source group.
type G1 struct {
	p group.Point
	g *base
}

// G2 is an element of the second source group. Only an [Asymmetric]
// context produces G2 values.
type G2 struct {
	p group.Point
	g *base
}

// GT is an element of the pairing target group.
type GT struct {
	t group.Target
	g *base
}

// Add returns z + b.
func (z *ZR) Add(b *ZR) *ZR {
	z.g.own(b.g)
	return z.g.wrapZR(z.g.curve.NewScalar().Add(z.s, b.s))
}

// Sub returns z - b.
func (z *ZR) Sub(b *ZR) *ZR {
	z.g.own(b.g)
	return z.g.wrapZR(z.g.curve.NewScalar().Sub(z.s, b.s))
}

// Mul returns z * b.
func (z *ZR) Mul(b *ZR) *ZR {
	z.g.own(b.g)
	return z.g.wrapZR(z.g.curve.NewScalar().Mul(z.s, b.s))
}

// Neg returns -z.
func (z *ZR) Neg() *ZR {
	return z.g.wrapZR(z.g.curve.NewScalar().Negate(z.s))
}

// Inverse returns 1/z. It fails only for z = 0.
func (z *ZR) Inverse() (*ZR, error) {
	s, err := z.g.curve.NewScalar().Invert(z.s)
	if err != nil {
		return nil, err
	}
	return z.g.wrapZR(s), nil
}

// Equal reports whether z and b are congruent modulo the group order.
func (z *ZR) Equal(b *ZR) bool {
	z.g.own(b.g)
	return z.s.Equal(b.s)
}

// IsZero reports whether z is zero modulo the group order.
func (z *ZR) IsZero() bool {
	return z.s.IsZero()
}

// BigInt returns the value of z. For [Group.Order] this is the order
// itself rather than zero.
func (z *ZR) BigInt() *big.Int {
	return z.s.(*zr.Scalar).BigInt()
}

// Bytes returns the fixed-length big-endian encoding of z.
func (z *ZR) Bytes() []byte {
	return z.s.Bytes()
}

// String returns z in base 10.
func (z *ZR) String() string {
	return z.s.String()
}

// Equal reports whether g and h are the same element.
func (g *G1) Equal(h *G1) bool {
	g.g.own(h.g)
	return g.p.Equal(h.p)
}

// IsIdentity reports whether g is the identity of G1.
func (g *G1) IsIdentity() bool {
	return g.p.IsIdentity()
}

// IsMember reports whether g lies in the prime-order group G1.
func (g *G1) IsMember() bool {
	return g.p.IsInSubGroup()
}

// Bytes returns the engine encoding of g.
func (g *G1) Bytes() []byte {
	return g.p.Bytes()
}

// String returns the affine coordinates of g, or "O" for the identity.
func (g *G1) String() string {
	return g.p.String()
}

// Equal reports whether g and h are the same element.
func (g *G2) Equal(h *G2) bool {
	g.g.own(h.g)
	return g.p.Equal(h.p)
}

// IsIdentity reports whether g is the identity of G2.
func (g *G2) IsIdentity() bool {
	return g.p.IsIdentity()
}

// IsMember reports whether g lies in the prime-order group G2.
func (g *G2) IsMember() bool {
	return g.p.IsInSubGroup()
}

// Bytes returns the engine encoding of g.
func (g *G2) Bytes() []byte {
	return g.p.Bytes()
}

// String returns the affine coordinates of g, or "O" for the identity.
func (g *G2) String() string {
	return g.p.String()
}

// Equal reports whether t and u are the same element.
func (t *GT) Equal(u *GT) bool {
	t.g.own(u.g)
	return t.t.Equal(u.t)
}

// IsOne reports whether t is the identity of GT.
func (t *GT) IsOne() bool {
	return t.t.IsOne()
}

// Bytes returns the engine encoding of t.
func (t *GT) Bytes() []byte {
	return t.t.Bytes()
}

// String returns the coordinates of t in the extension field.
func (t *GT) String() string {
	return t.t.String()
}
