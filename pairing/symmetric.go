package pairing

import (
	"github.com/f3rmion/pairing/group"
)

// Symmetric is a group context whose pairing takes both arguments from G1.
// It exposes no G2 operations: code that needs a second source group does
// not compile against a Symmetric context.
//
// A Symmetric context is safe for concurrent use.
type Symmetric struct {
	*base
	engine group.SymmetricCurve
}

// NewSymmetric builds a context on the weakest symmetric curve offering at
// least level bits of security:
//
//	level <= 80   SS512
//	level <= 128  SS1536
//
// WithCurve selects a curve by name instead.
func NewSymmetric(level int, opts ...Option) (*Symmetric, error) {
	cfg := newConfig(opts)
	c, err := lookup(symmetricCatalogue, level, cfg.Curve)
	if err != nil {
		return nil, err
	}
	b, err := newBase(c, cfg, "symmetric", func() group.Target {
		g := c.G1Generator()
		return c.Pair(g, g)
	})
	if err != nil {
		return nil, err
	}
	return &Symmetric{base: b, engine: c}, nil
}

// Pair returns e(g, h). The map is bilinear and symmetric:
// e(g^a, h^b) = e(g, h)^(ab) = e(h, g)^(ab).
func (s *Symmetric) Pair(g, h *G1) *GT {
	s.own(g.g)
	s.own(h.g)
	return s.wrapGT(s.engine.Pair(g.p, h.p))
}
