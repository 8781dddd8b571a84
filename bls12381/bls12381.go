package bls12381

import (
	"fmt"
	"io"
	"math/big"

	curve "github.com/consensys/gnark-crypto/ecc/bls12-381"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
	"github.com/f3rmion/pairing/group"
	"github.com/f3rmion/pairing/zr"
)

// Domain separation tags for the RFC 9380 hash functions.
var (
	dstScalar = []byte("PAIRING-BLS12381-ZR_XMD:SHA-256_RO_")
	dstG1     = []byte("PAIRING-BLS12381G1_XMD:SHA-256_SSWU_RO_")
	dstG2     = []byte("PAIRING-BLS12381G2_XMD:SHA-256_SSWU_RO_")
)

// field is the BLS12-381 scalar field Fr.
var field = zr.NewField(fr.Modulus())

// G1 represents a point of the BLS12-381 first source group, defined
// over the 381-bit base field. It implements [group.Point].
type G1 struct {
	inner curve.G1Affine
}

// Add sets p to a + b and returns p.
func (p *G1) Add(a, b group.Point) group.Point {
	var aj, bj curve.G1Jac
	aj.FromAffine(&a.(*G1).inner)
	bj.FromAffine(&b.(*G1).inner)
	aj.AddAssign(&bj)
	p.inner.FromJacobian(&aj)
	return p
}

// Sub sets p to a - b and returns p.
func (p *G1) Sub(a, b group.Point) group.Point {
	var aj, bj curve.G1Jac
	aj.FromAffine(&a.(*G1).inner)
	bj.FromAffine(&b.(*G1).inner)
	aj.SubAssign(&bj)
	p.inner.FromJacobian(&aj)
	return p
}

// Negate sets p to -a and returns p.
func (p *G1) Negate(a group.Point) group.Point {
	p.inner.Neg(&a.(*G1).inner)
	return p
}

// ScalarMult sets p to s * q and returns p.
func (p *G1) ScalarMult(s group.Scalar, q group.Point) group.Point {
	k := s.(*zr.Scalar).BigInt()
	p.inner.ScalarMultiplication(&q.(*G1).inner, k)
	return p
}

// Set copies the value of a into p and returns p.
func (p *G1) Set(a group.Point) group.Point {
	p.inner.Set(&a.(*G1).inner)
	return p
}

// Bytes returns the compressed point encoding as a byte slice.
func (p *G1) Bytes() []byte {
	b := p.inner.Bytes()
	return b[:]
}

// Equal reports whether p and b represent the same curve point.
func (p *G1) Equal(b group.Point) bool {
	return p.inner.Equal(&b.(*G1).inner)
}

// IsIdentity reports whether p is the point at infinity.
func (p *G1) IsIdentity() bool {
	return p.inner.IsInfinity()
}

// IsInSubGroup reports whether p is on the curve and in the order-r subgroup.
func (p *G1) IsInSubGroup() bool {
	return p.inner.IsInSubGroup()
}

// String returns the affine coordinates of p in base 10.
func (p *G1) String() string {
	if p.inner.IsInfinity() {
		return "O"
	}
	return fmt.Sprintf("(%s,%s)", p.inner.X.String(), p.inner.Y.String())
}

// G2 represents a point of the BLS12-381 second source group, defined over
// the quadratic extension Fp2.
type G2 struct {
	inner curve.G2Affine
}

// Add sets p to a + b and returns p.
func (p *G2) Add(a, b group.Point) group.Point {
	var aj, bj curve.G2Jac
	aj.FromAffine(&a.(*G2).inner)
	bj.FromAffine(&b.(*G2).inner)
	aj.AddAssign(&bj)
	p.inner.FromJacobian(&aj)
	return p
}

// Sub sets p to a - b and returns p.
func (p *G2) Sub(a, b group.Point) group.Point {
	var aj, bj curve.G2Jac
	aj.FromAffine(&a.(*G2).inner)
	bj.FromAffine(&b.(*G2).inner)
	aj.SubAssign(&bj)
	p.inner.FromJacobian(&aj)
	return p
}

// Negate sets p to -a and returns p.
func (p *G2) Negate(a group.Point) group.Point {
	p.inner.Neg(&a.(*G2).inner)
	return p
}

// ScalarMult sets p to s * q and returns p.
func (p *G2) ScalarMult(s group.Scalar, q group.Point) group.Point {
	k := s.(*zr.Scalar).BigInt()
	p.inner.ScalarMultiplication(&q.(*G2).inner, k)
	return p
}

// Set copies the value of a into p and returns p.
func (p *G2) Set(a group.Point) group.Point {
	p.inner.Set(&a.(*G2).inner)
	return p
}

// Bytes returns the compressed point encoding as a byte slice.
func (p *G2) Bytes() []byte {
	b := p.inner.Bytes()
	return b[:]
}

// Equal reports whether p and b represent the same curve point.
func (p *G2) Equal(b group.Point) bool {
	return p.inner.Equal(&b.(*G2).inner)
}

// IsIdentity reports whether p is the point at infinity.
func (p *G2) IsIdentity() bool {
	return p.inner.IsInfinity()
}

// IsInSubGroup reports whether p is on the curve and in the order-r subgroup.
func (p *G2) IsInSubGroup() bool {
	return p.inner.IsInSubGroup()
}

// String returns the affine coordinates of p, each written a0+a1*u.
func (p *G2) String() string {
	if p.inner.IsInfinity() {
		return "O"
	}
	return fmt.Sprintf("(%s,%s)", p.inner.X.String(), p.inner.Y.String())
}

// GT represents an element of the BLS12-381 target group, a subgroup of the
// multiplicative group of Fp12.
type GT struct {
	inner curve.GT
}

// Mul sets t to a * b and returns t.
func (t *GT) Mul(a, b group.Target) group.Target {
	t.inner.Mul(&a.(*GT).inner, &b.(*GT).inner)
	return t
}

// Div sets t to a / b and returns t.
func (t *GT) Div(a, b group.Target) group.Target {
	var inv curve.GT
	inv.Inverse(&b.(*GT).inner)
	t.inner.Mul(&a.(*GT).inner, &inv)
	return t
}

// Exp sets t to a^s and returns t.
func (t *GT) Exp(a group.Target, s group.Scalar) group.Target {
	k := s.(*zr.Scalar).BigInt()
	t.inner.Exp(a.(*GT).inner, k)
	return t
}

// Set copies the value of a into t and returns t.
func (t *GT) Set(a group.Target) group.Target {
	t.inner.Set(&a.(*GT).inner)
	return t
}

// Bytes returns the encoding of t.
func (t *GT) Bytes() []byte {
	b := t.inner.Bytes()
	return b[:]
}

// Equal reports whether t and b are the same element.
func (t *GT) Equal(b group.Target) bool {
	return t.inner.Equal(&b.(*GT).inner)
}

// IsOne reports whether t is the identity of GT.
func (t *GT) IsOne() bool {
	return t.inner.IsOne()
}

// String returns the Fp12 coordinates of t.
func (t *GT) String() string {
	return t.inner.String()
}

// BLS12381 implements [group.AsymmetricCurve] for the BLS12-381 curve
// used by Zcash, Ethereum consensus and most BLS signature deployments.
//
// BLS12381 is a zero-sized type. Create an instance with [New] or new(BLS12381).
type BLS12381 struct{}

// New returns the BLS12381 engine.
func New() *BLS12381 {
	return &BLS12381{}
}

// Name returns "BLS12-381".
func (c *BLS12381) Name() string {
	return "BLS12-381"
}

// SecurityLevel returns 128.
func (c *BLS12381) SecurityLevel() int {
	return 128
}

// NewScalar returns a new scalar initialized to zero.
func (c *BLS12381) NewScalar() group.Scalar {
	return field.NewScalar()
}

// RandomScalar returns a uniformly random scalar read from r.
func (c *BLS12381) RandomScalar(r io.Reader) (group.Scalar, error) {
	return field.Random(r)
}

// HashToScalar maps msg to Fr with the RFC 9380 hash_to_field function.
func (c *BLS12381) HashToScalar(msg []byte) (group.Scalar, error) {
	els, err := fr.Hash(msg, dstScalar, 1)
	if err != nil {
		return nil, fmt.Errorf("bls12381: hash to scalar: %w", err)
	}
	return field.FromBigInt(els[0].BigInt(new(big.Int))), nil
}

// Order returns a scalar holding the order of G1, G2 and GT.
func (c *BLS12381) Order() group.Scalar {
	return field.Modulus()
}

// NewG1 returns the identity of G1.
func (c *BLS12381) NewG1() group.Point {
	var p G1
	p.inner.X.SetZero()
	p.inner.Y.SetZero()
	return &p
}

// G1Generator returns the standard base point of G1.
func (c *BLS12381) G1Generator() group.Point {
	_, _, g1, _ := curve.Generators()
	return &G1{inner: g1}
}

// HashToG1 maps msg to G1 with the RFC 9380 SSWU random-oracle suite.
func (c *BLS12381) HashToG1(msg []byte) (group.Point, error) {
	p, err := curve.HashToG1(msg, dstG1)
	if err != nil {
		return nil, fmt.Errorf("bls12381: hash to G1: %w", err)
	}
	return &G1{inner: p}, nil
}

// NewG2 returns the identity of G2.
func (c *BLS12381) NewG2() group.Point {
	var p G2
	p.inner.X.SetZero()
	p.inner.Y.SetZero()
	return &p
}

// G2Generator returns the standard base point of G2.
func (c *BLS12381) G2Generator() group.Point {
	_, _, _, g2 := curve.Generators()
	return &G2{inner: g2}
}

// HashToG2 maps msg to G2 with the RFC 9380 SSWU random-oracle suite.
func (c *BLS12381) HashToG2(msg []byte) (group.Point, error) {
	p, err := curve.HashToG2(msg, dstG2)
	if err != nil {
		return nil, fmt.Errorf("bls12381: hash to G2: %w", err)
	}
	return &G2{inner: p}, nil
}

// NewGT returns the identity of GT.
func (c *BLS12381) NewGT() group.Target {
	var t GT
	t.inner.SetOne()
	return &t
}

// Pair computes the optimal ate pairing e(p, q) for p in G1 and q in G2.
func (c *BLS12381) Pair(p, q group.Point) group.Target {
	gt, err := curve.Pair([]curve.G1Affine{p.(*G1).inner}, []curve.G2Affine{q.(*G2).inner})
	if err != nil {
		// Pair only fails on mismatched slice lengths.
		panic(fmt.Sprintf("bls12381: pairing: %v", err))
	}
	return &GT{inner: gt}
}
