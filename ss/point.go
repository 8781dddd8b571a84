package ss

import (
	"fmt"
	"math/big"

	"github.com/f3rmion/pairing/group"
	"github.com/f3rmion/pairing/zr"
)

// Point is a point of the order-r subgroup of E(F_p), in affine
// coordinates. It implements [group.Point].
type Point struct {
	x, y *big.Int
	inf  bool
	c    *params
}

func (c *params) infinity() *Point {
	return &Point{x: new(big.Int), y: new(big.Int), inf: true, c: c}
}

func (c *params) affine(x, y *big.Int) *Point {
	return &Point{x: x, y: y, c: c}
}

// cast asserts that a is a point of the same curve as p.
func (p *Point) cast(a group.Point) *Point {
	ap, ok := a.(*Point)
	if !ok {
		panic(fmt.Sprintf("ss: unsupported point type %T", a))
	}
	if ap.c != p.c {
		panic("ss: points belong to different curves")
	}
	return ap
}

// assign copies q into p.
func (p *Point) assign(q *Point) *Point {
	p.x = new(big.Int).Set(q.x)
	p.y = new(big.Int).Set(q.y)
	p.inf = q.inf
	p.c = q.c
	return p
}

// tangent returns the slope of the tangent at (x, y), y != 0.
func (c *params) tangent(x, y *big.Int) *big.Int {
	num := new(big.Int).Mul(x, x)
	num.Mul(num, big.NewInt(3))
	num.Add(num, one)
	den := new(big.Int).Lsh(y, 1)
	den.ModInverse(c.mod(den), c.p)
	return c.mod(num.Mul(num, den))
}

// chord returns the slope of the line through (x1, y1) and (x2, y2), x1 != x2.
func (c *params) chord(x1, y1, x2, y2 *big.Int) *big.Int {
	num := new(big.Int).Sub(y2, y1)
	den := new(big.Int).Sub(x2, x1)
	den.ModInverse(c.mod(den), c.p)
	return c.mod(num.Mul(num, den))
}

// through returns the third intersection, negated, of the line with slope
// lam through (x1, y1) and a second point with abscissa x2.
func (c *params) through(lam, x1, y1, x2 *big.Int) (*big.Int, *big.Int) {
	x3 := new(big.Int).Mul(lam, lam)
	x3.Sub(x3, x1)
	c.mod(x3.Sub(x3, x2))
	y3 := new(big.Int).Sub(x1, x3)
	y3.Mul(y3, lam)
	c.mod(y3.Sub(y3, y1))
	return x3, y3
}

func (c *params) add(a, b *Point) *Point {
	switch {
	case a.inf:
		return c.infinity().assign(b)
	case b.inf:
		return c.infinity().assign(a)
	}
	if a.x.Cmp(b.x) == 0 {
		if a.y.Cmp(b.y) != 0 || a.y.Sign() == 0 {
			return c.infinity()
		}
		return c.double(a)
	}
	x, y := c.through(c.chord(a.x, a.y, b.x, b.y), a.x, a.y, b.x)
	return c.affine(x, y)
}

func (c *params) double(a *Point) *Point {
	if a.inf || a.y.Sign() == 0 {
		return c.infinity()
	}
	x, y := c.through(c.tangent(a.x, a.y), a.x, a.y, a.x)
	return c.affine(x, y)
}

func (c *params) neg(a *Point) *Point {
	if a.inf {
		return c.infinity()
	}
	y := new(big.Int).Neg(a.y)
	return c.affine(new(big.Int).Set(a.x), c.mod(y))
}

// mul returns k*a for k >= 0.
func (c *params) mul(k *big.Int, a *Point) *Point {
	res := c.infinity()
	for i := k.BitLen() - 1; i >= 0; i-- {
		res = c.double(res)
		if k.Bit(i) == 1 {
			res = c.add(res, a)
		}
	}
	return res
}

// onCurve reports whether (x, y) satisfies y^2 = x^3 + x.
func (c *params) onCurve(x, y *big.Int) bool {
	lhs := c.mod(new(big.Int).Mul(y, y))
	return lhs.Cmp(c.rhs(x)) == 0
}

// rhs returns x^3 + x mod p.
func (c *params) rhs(x *big.Int) *big.Int {
	v := new(big.Int).Mul(x, x)
	v.Add(v, one)
	v.Mul(v, x)
	return c.mod(v)
}

// Add sets p to a + b and returns p.
func (p *Point) Add(a, b group.Point) group.Point {
	return p.assign(p.c.add(p.cast(a), p.cast(b)))
}

// Sub sets p to a - b and returns p.
func (p *Point) Sub(a, b group.Point) group.Point {
	return p.assign(p.c.add(p.cast(a), p.c.neg(p.cast(b))))
}

// Negate sets p to -a and returns p.
func (p *Point) Negate(a group.Point) group.Point {
	return p.assign(p.c.neg(p.cast(a)))
}

// ScalarMult sets p to s * q and returns p.
func (p *Point) ScalarMult(s group.Scalar, q group.Point) group.Point {
	k := s.(*zr.Scalar).BigInt()
	return p.assign(p.c.mul(k, p.cast(q)))
}

// Set copies the value of a into p and returns p.
func (p *Point) Set(a group.Point) group.Point {
	return p.assign(p.cast(a))
}

// Bytes returns 0x04 || x || y with fixed-length big-endian coordinates,
// or the single byte 0x00 for the point at infinity.
func (p *Point) Bytes() []byte {
	if p.inf {
		return []byte{0x00}
	}
	out := make([]byte, 1+2*p.c.size)
	out[0] = 0x04
	p.x.FillBytes(out[1 : 1+p.c.size])
	p.y.FillBytes(out[1+p.c.size:])
	return out
}

// Equal reports whether p and b represent the same curve point.
func (p *Point) Equal(b group.Point) bool {
	bp := p.cast(b)
	if p.inf || bp.inf {
		return p.inf == bp.inf
	}
	return p.x.Cmp(bp.x) == 0 && p.y.Cmp(bp.y) == 0
}

// IsIdentity reports whether p is the point at infinity.
func (p *Point) IsIdentity() bool {
	return p.inf
}

// IsInSubGroup reports whether p is on the curve and r*p is the point at
// infinity.
func (p *Point) IsInSubGroup() bool {
	if p.inf {
		return true
	}
	return p.c.onCurve(p.x, p.y) && p.c.mul(p.c.r, p).inf
}

// String returns the affine coordinates of p in base 10.
func (p *Point) String() string {
	if p.inf {
		return "O"
	}
	return fmt.Sprintf("(%s,%s)", p.x.String(), p.y.String())
}
