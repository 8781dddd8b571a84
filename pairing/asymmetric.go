package pairing

import (
	"fmt"

	"github.com/f3rmion/pairing/group"
)

// Asymmetric is a group context with distinct source groups G1 and G2.
// On top of the shared [Group] operations it samples, composes and hashes
// into G2, and pairs a G1 element with a G2 element.
//
// An Asymmetric context is safe for concurrent use.
type Asymmetric struct {
	*base
	engine group.AsymmetricCurve
}

// NewAsymmetric builds a context on the weakest asymmetric curve offering
// at least level bits of security:
//
//	level <= 100  BN254
//	level <= 128  BLS12-381
//
// WithCurve selects a curve by name instead.
func NewAsymmetric(level int, opts ...Option) (*Asymmetric, error) {
	cfg := newConfig(opts)
	c, err := lookup(asymmetricCatalogue, level, cfg.Curve)
	if err != nil {
		return nil, err
	}
	b, err := newBase(c, cfg, "asymmetric", func() group.Target {
		return c.Pair(c.G1Generator(), c.G2Generator())
	})
	if err != nil {
		return nil, err
	}
	b.newG2 = c.NewG2
	return &Asymmetric{base: b, engine: c}, nil
}

// RandomG2 samples a uniform element of G2 as a random multiple of the
// generator.
func (a *Asymmetric) RandomG2() (*G2, error) {
	s, err := a.randomScalar()
	if err != nil {
		return nil, err
	}
	return a.wrapG2(a.engine.NewG2().ScalarMult(s, a.engine.G2Generator())), nil
}

// IdentityG2 returns the identity of G2.
func (a *Asymmetric) IdentityG2() *G2 {
	return a.wrapG2(a.engine.NewG2())
}

// GeneratorG2 returns the fixed generator of G2.
func (a *Asymmetric) GeneratorG2() *G2 {
	return a.wrapG2(a.engine.G2Generator())
}

// MulG2 returns g*h, point addition on the curve.
func (a *Asymmetric) MulG2(g, h *G2) *G2 {
	a.own(g.g)
	a.own(h.g)
	return a.wrapG2(a.engine.NewG2().Add(g.p, h.p))
}

// DivG2 returns g * h^-1, point subtraction on the curve.
func (a *Asymmetric) DivG2(g, h *G2) *G2 {
	a.own(g.g)
	a.own(h.g)
	return a.wrapG2(a.engine.NewG2().Sub(g.p, h.p))
}

// ExpG2 returns g^s, scalar multiplication on the curve.
func (a *Asymmetric) ExpG2(g *G2, s *ZR) *G2 {
	a.own(g.g)
	a.own(s.g)
	return a.wrapG2(a.engine.NewG2().ScalarMult(s.s, g.p))
}

// HashToG2 deterministically maps text to an element of G2 with unknown
// discrete logarithm.
func (a *Asymmetric) HashToG2(text string) (*G2, error) {
	p, err := a.engine.HashToG2([]byte(text))
	if err != nil {
		return nil, fmt.Errorf("pairing: hash to G2: %w", err)
	}
	return a.wrapG2(p), nil
}

// Pair returns e(g, h) for g in G1 and h in G2. The map is bilinear:
// e(g^a, h^b) = e(g, h)^(ab).
func (a *Asymmetric) Pair(g *G1, h *G2) *GT {
	a.own(g.g)
	a.own(h.g)
	return a.wrapGT(a.engine.Pair(g.p, h.p))
}
