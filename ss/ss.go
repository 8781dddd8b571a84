package ss

import (
	"encoding/binary"
	"fmt"
	"io"
	"math/big"
	"sync"

	"github.com/f3rmion/pairing/group"
	"github.com/f3rmion/pairing/zr"
	"golang.org/x/crypto/blake2b"
)

// Domain separation tags for the BLAKE2Xb based hash functions.
const (
	tagScalar    = "SS-H2ZR-BLAKE2X-v1"
	tagG1        = "SS-H2G1-BLAKE2X-v1"
	tagGenerator = "SS-GENERATOR-v1"
)

// Target is an element of the order-r subgroup of F_p^2^*, the target
// group of the Tate pairing. It implements [group.Target].
type Target struct {
	v fp2
	c *params
}

// cast asserts that a is a target element of the same curve as t.
func (t *Target) cast(a group.Target) *Target {
	at, ok := a.(*Target)
	if !ok {
		panic(fmt.Sprintf("ss: unsupported target type %T", a))
	}
	if at.c != t.c {
		panic("ss: targets belong to different curves")
	}
	return at
}

// Mul sets t to a * b and returns t.
func (t *Target) Mul(a, b group.Target) group.Target {
	t.v = t.c.mul2(t.cast(a).v, t.cast(b).v)
	return t
}

// Div sets t to a / b and returns t.
func (t *Target) Div(a, b group.Target) group.Target {
	t.v = t.c.mul2(t.cast(a).v, t.c.inv2(t.cast(b).v))
	return t
}

// Exp sets t to a^s and returns t.
func (t *Target) Exp(a group.Target, s group.Scalar) group.Target {
	k := s.(*zr.Scalar).BigInt()
	t.v = t.c.exp2(t.cast(a).v, k)
	return t
}

// Set copies the value of a into t and returns t.
func (t *Target) Set(a group.Target) group.Target {
	at := t.cast(a)
	t.v = fp2{a: new(big.Int).Set(at.v.a), b: new(big.Int).Set(at.v.b)}
	return t
}

// Bytes returns a || b with fixed-length big-endian coefficients.
func (t *Target) Bytes() []byte {
	out := make([]byte, 2*t.c.size)
	t.v.a.FillBytes(out[:t.c.size])
	t.v.b.FillBytes(out[t.c.size:])
	return out
}

// Equal reports whether t and b are the same element.
func (t *Target) Equal(b group.Target) bool {
	return t.v.equal(t.cast(b).v)
}

// IsOne reports whether t is the identity of GT.
func (t *Target) IsOne() bool {
	return t.v.isOne()
}

// String returns t written as a+b*i in base 10.
func (t *Target) String() string {
	return fmt.Sprintf("%s+%s*i", t.v.a.String(), t.v.b.String())
}

// Curve implements [group.SymmetricCurve] for a supersingular curve.
// Use [SS512] or [SS1536] to obtain one.
type Curve struct {
	prm   *params
	field *zr.Field
	gen   *Point
}

var (
	ss512Once  = sync.OnceValue(func() *Curve { return newCurve(ss512) })
	ss1536Once = sync.OnceValue(func() *Curve { return newCurve(ss1536) })
)

// SS512 returns the 80-bit curve with a 512-bit base field and a 160-bit
// group order, the parameter size of the Charm/PBC "SS512" group.
func SS512() *Curve {
	return ss512Once()
}

// SS1536 returns the 128-bit curve with a 1536-bit base field and a
// 256-bit group order.
func SS1536() *Curve {
	return ss1536Once()
}

func newCurve(prm *params) *Curve {
	return &Curve{
		prm:   prm,
		field: zr.NewField(prm.r),
		gen:   prm.hashToPoint(tagGenerator, []byte(prm.name)),
	}
}

// Name returns the catalogue name of the curve.
func (c *Curve) Name() string {
	return c.prm.name
}

// SecurityLevel returns the approximate security of the curve in bits.
func (c *Curve) SecurityLevel() int {
	return c.prm.level
}

// NewScalar returns a new scalar initialized to zero.
func (c *Curve) NewScalar() group.Scalar {
	return c.field.NewScalar()
}

// RandomScalar returns a uniformly random scalar read from r.
func (c *Curve) RandomScalar(r io.Reader) (group.Scalar, error) {
	return c.field.Random(r)
}

// HashToScalar maps msg to Z_r through a BLAKE2Xb output 128 bits longer
// than r.
func (c *Curve) HashToScalar(msg []byte) (group.Scalar, error) {
	return c.field.FromWideBytes(expand(tagScalar, msg, 0, c.field.ByteLen()+16)), nil
}

// Order returns a scalar holding the group order r.
func (c *Curve) Order() group.Scalar {
	return c.field.Modulus()
}

// NewG1 returns the point at infinity.
func (c *Curve) NewG1() group.Point {
	return c.prm.infinity()
}

// G1Generator returns the base point of G1. It is derived by hashing the
// curve name, so nobody knows its discrete logarithm to any other hashed
// point.
func (c *Curve) G1Generator() group.Point {
	return c.prm.infinity().assign(c.gen)
}

// HashToG1 maps msg to the order-r subgroup by try-and-increment.
func (c *Curve) HashToG1(msg []byte) (group.Point, error) {
	return c.prm.hashToPoint(tagG1, msg), nil
}

// NewGT returns the identity of GT.
func (c *Curve) NewGT() group.Target {
	return &Target{v: c.prm.fp2One(), c: c.prm}
}

// Pair computes the reduced Tate pairing e(p, q) for p, q in G1.
func (c *Curve) Pair(p, q group.Point) group.Target {
	pp, qq := c.gen.cast(p), c.gen.cast(q)
	return &Target{v: c.prm.tate(pp, qq), c: c.prm}
}

// hashToPoint hashes (tag, msg, counter) to an abscissa x until x^3 + x
// is a square, takes the smaller root and clears the cofactor.
func (c *params) hashToPoint(tag string, msg []byte) *Point {
	for ctr := uint32(0); ; ctr++ {
		x := new(big.Int).SetBytes(expand(tag, msg, ctr, c.size+16))
		c.mod(x)
		y := new(big.Int).ModSqrt(c.rhs(x), c.p)
		if y == nil {
			continue
		}
		if alt := new(big.Int).Sub(c.p, y); alt.Cmp(y) < 0 {
			y = alt
		}
		pt := c.mul(c.h, c.affine(x, y))
		if !pt.inf {
			return pt
		}
	}
}

// expand returns n bytes of BLAKE2Xb over tag || len(msg) || msg || ctr.
func expand(tag string, msg []byte, ctr uint32, n int) []byte {
	xof, err := blake2b.NewXOF(uint32(n), nil)
	if err != nil {
		panic(fmt.Sprintf("ss: blake2x: %v", err))
	}
	var buf [8]byte
	xof.Write([]byte(tag))
	binary.BigEndian.PutUint64(buf[:], uint64(len(msg)))
	xof.Write(buf[:])
	xof.Write(msg)
	binary.BigEndian.PutUint32(buf[:4], ctr)
	xof.Write(buf[:4])

	out := make([]byte, n)
	if _, err := io.ReadFull(xof, out); err != nil {
		panic(fmt.Sprintf("ss: blake2x: %v", err))
	}
	return out
}
