package pairing

import (
	"fmt"
	"io"
	"sync"

	"github.com/f3rmion/pairing/group"
	"github.com/f3rmion/pairing/logging"
	"github.com/f3rmion/pairing/randutil"
	"github.com/f3rmion/pairing/zr"
)

// Group is the operation set shared by [Symmetric] and [Asymmetric]: the
// scalar field, the first source group and the target group. Pair and
// every G2 operation live on the concrete types.
type Group interface {
	// Name returns the catalogue name of the underlying curve.
	Name() string
	// SecurityLevel returns the security of the curve in bits.
	SecurityLevel() int

	// Order returns the group order r as a scalar.
	Order() *ZR
	// NewZR returns n modulo r.
	NewZR(n int64) *ZR
	// ParseZR reads a base-10 integer modulo r.
	ParseZR(text string) (*ZR, error)

	// RandomZR samples a uniform scalar.
	RandomZR() (*ZR, error)
	// RandomG1 samples a uniform element of G1.
	RandomG1() (*G1, error)
	// RandomGT samples a uniform element of the pairing image in GT.
	RandomGT() (*GT, error)

	// IdentityG1 returns the identity of G1.
	IdentityG1() *G1
	// GeneratorG1 returns the fixed generator of G1.
	GeneratorG1() *G1
	// IdentityGT returns the identity of GT.
	IdentityGT() *GT

	// MulG1 returns the group composition g*h.
	MulG1(g, h *G1) *G1
	// DivG1 returns g * h^-1.
	DivG1(g, h *G1) *G1
	// ExpG1 returns g^s.
	ExpG1(g *G1, s *ZR) *G1

	// MulGT returns g*h in GT.
	MulGT(g, h *GT) *GT
	// DivGT returns g/h in GT.
	DivGT(g, h *GT) *GT
	// ExpGT returns g^s in GT.
	ExpGT(g *GT, s *ZR) *GT

	// HashToZR deterministically maps text to a scalar.
	HashToZR(text string) (*ZR, error)
	// HashToG1 deterministically maps text to an element of G1.
	HashToG1(text string) (*G1, error)
}

var (
	_ Group = (*Symmetric)(nil)
	_ Group = (*Asymmetric)(nil)
)

// base implements [Group] for both configurations.
type base struct {
	curve  group.Curve
	field  *zr.Field
	rng    io.Reader
	log    logging.Logger
	gtBase func() group.Target

	// newG2 is set by Asymmetric only.
	newG2 func() group.Point
}

func newBase(c group.Curve, cfg Config, kind string, pairGen func() group.Target) (*base, error) {
	s, ok := c.NewScalar().(*zr.Scalar)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedEngine, c.Name())
	}
	log := cfg.Logger.With("curve", c.Name())
	log.Info("initializing underlying curve", "kind", kind, "level", c.SecurityLevel())

	return &base{
		curve:  c,
		field:  s.Field(),
		rng:    randutil.Locked(cfg.Rand),
		log:    log,
		gtBase: sync.OnceValue(func() group.Target {
			log.Debug("computing generator pairing")
			return pairGen()
		}),
	}, nil
}

// own panics unless owner is b.
func (b *base) own(owner *base) {
	if owner != b {
		panic(fmt.Errorf("%w: %s context received an element of another context", ErrForeignElement, b.curve.Name()))
	}
}

func (b *base) wrapZR(s group.Scalar) *ZR { return &ZR{s: s, g: b} }
func (b *base) wrapG1(p group.Point) *G1  { return &G1{p: p, g: b} }
func (b *base) wrapG2(p group.Point) *G2  { return &G2{p: p, g: b} }
func (b *base) wrapGT(t group.Target) *GT { return &GT{t: t, g: b} }

// Name returns the catalogue name of the underlying curve.
func (b *base) Name() string {
	return b.curve.Name()
}

// SecurityLevel returns the security of the curve in bits.
func (b *base) SecurityLevel() int {
	return b.curve.SecurityLevel()
}

// Order returns the group order r. The result holds r itself, so
// ExpG1(g, Order()) multiplies by r in full and yields the identity,
// while scalar arithmetic treats it as zero.
func (b *base) Order() *ZR {
	return b.wrapZR(b.curve.Order())
}

// NewZR returns n modulo r.
func (b *base) NewZR(n int64) *ZR {
	return b.wrapZR(b.field.FromInt64(n))
}

// ParseZR reads a base-10 integer and reduces it modulo r.
func (b *base) ParseZR(text string) (*ZR, error) {
	s, err := b.field.Parse(text, 10)
	if err != nil {
		return nil, err
	}
	return b.wrapZR(s), nil
}

func (b *base) randomScalar() (group.Scalar, error) {
	s, err := b.curve.RandomScalar(b.rng)
	if err != nil {
		return nil, fmt.Errorf("pairing: sample scalar: %w", err)
	}
	return s, nil
}

// RandomZR samples a uniform scalar in [0, r).
func (b *base) RandomZR() (*ZR, error) {
	s, err := b.randomScalar()
	if err != nil {
		return nil, err
	}
	return b.wrapZR(s), nil
}

// RandomG1 samples a uniform element of G1 as a random multiple of the
// generator.
func (b *base) RandomG1() (*G1, error) {
	s, err := b.randomScalar()
	if err != nil {
		return nil, err
	}
	return b.wrapG1(b.curve.NewG1().ScalarMult(s, b.curve.G1Generator())), nil
}

// RandomGT samples a uniform element of the order-r subgroup of GT as
// e(g1, g2)^k for a random k, where e(g1, g2) is the pairing of the fixed
// generators.
func (b *base) RandomGT() (*GT, error) {
	s, err := b.randomScalar()
	if err != nil {
		return nil, err
	}
	return b.wrapGT(b.curve.NewGT().Exp(b.gtBase(), s)), nil
}

// IdentityG1 returns the identity of G1.
func (b *base) IdentityG1() *G1 {
	return b.wrapG1(b.curve.NewG1())
}

// GeneratorG1 returns the fixed generator of G1.
func (b *base) GeneratorG1() *G1 {
	return b.wrapG1(b.curve.G1Generator())
}

// IdentityGT returns the identity of GT.
func (b *base) IdentityGT() *GT {
	return b.wrapGT(b.curve.NewGT())
}

// MulG1 returns g*h. G1 is additive on the curve, so this is point
// addition.
func (b *base) MulG1(g, h *G1) *G1 {
	b.own(g.g)
	b.own(h.g)
	return b.wrapG1(b.curve.NewG1().Add(g.p, h.p))
}

// DivG1 returns g * h^-1, point subtraction on the curve.
func (b *base) DivG1(g, h *G1) *G1 {
	b.own(g.g)
	b.own(h.g)
	return b.wrapG1(b.curve.NewG1().Sub(g.p, h.p))
}

// ExpG1 returns g^s, scalar multiplication on the curve.
func (b *base) ExpG1(g *G1, s *ZR) *G1 {
	b.own(g.g)
	b.own(s.g)
	return b.wrapG1(b.curve.NewG1().ScalarMult(s.s, g.p))
}

// MulGT returns g*h in GT.
func (b *base) MulGT(g, h *GT) *GT {
	b.own(g.g)
	b.own(h.g)
	return b.wrapGT(b.curve.NewGT().Mul(g.t, h.t))
}

// DivGT returns g/h in GT.
func (b *base) DivGT(g, h *GT) *GT {
	b.own(g.g)
	b.own(h.g)
	return b.wrapGT(b.curve.NewGT().Div(g.t, h.t))
}

// ExpGT returns g^s in GT.
func (b *base) ExpGT(g *GT, s *ZR) *GT {
	b.own(g.g)
	b.own(s.g)
	return b.wrapGT(b.curve.NewGT().Exp(g.t, s.s))
}

// HashToZR deterministically maps text to a scalar. The result depends
// only on text and the curve.
func (b *base) HashToZR(text string) (*ZR, error) {
	s, err := b.curve.HashToScalar([]byte(text))
	if err != nil {
		return nil, fmt.Errorf("pairing: hash to ZR: %w", err)
	}
	return b.wrapZR(s), nil
}

// HashToG1 deterministically maps text to an element of G1 with unknown
// discrete logarithm. The result depends only on text and the curve.
func (b *base) HashToG1(text string) (*G1, error) {
	p, err := b.curve.HashToG1([]byte(text))
	if err != nil {
		return nil, fmt.Errorf("pairing: hash to G1: %w", err)
	}
	return b.wrapG1(p), nil
}
