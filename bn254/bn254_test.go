package bn254

import (
	"crypto/rand"
	"testing"

	"github.com/consensys/gnark-crypto/ecc/bn254"
	"github.com/f3rmion/pairing/group"
)

func TestPoint(t *testing.T) {
	c := New()

	points := []struct {
		name string
		gen  group.Point
		id   func() group.Point
	}{
		{"G1", c.G1Generator(), c.NewG1},
		{"G2", c.G2Generator(), c.NewG2},
	}

	for _, pt := range points {
		t.Run(pt.name+"/AddSub", func(t *testing.T) {
			s1, _ := c.RandomScalar(rand.Reader)
			s2, _ := c.RandomScalar(rand.Reader)
			P := pt.id().ScalarMult(s1, pt.gen)
			Q := pt.id().ScalarMult(s2, pt.gen)

			sum := pt.id().Add(P, Q)
			diff := pt.id().Sub(sum, Q)

			if !diff.Equal(P) {
				t.Error("(P+Q)-Q != P")
			}
		})

		t.Run(pt.name+"/Negate", func(t *testing.T) {
			s, _ := c.RandomScalar(rand.Reader)
			P := pt.id().ScalarMult(s, pt.gen)
			negP := pt.id().Negate(P)

			if !pt.id().Add(P, negP).IsIdentity() {
				t.Error("P + (-P) != identity")
			}
		})

		t.Run(pt.name+"/Order", func(t *testing.T) {
			if !pt.id().ScalarMult(c.Order(), pt.gen).IsIdentity() {
				t.Error("r*G != identity")
			}
		})

		t.Run(pt.name+"/IsIdentity", func(t *testing.T) {
			if !pt.id().IsIdentity() {
				t.Error("new point should be identity")
			}
			if pt.gen.IsIdentity() {
				t.Error("generator should not be identity")
			}
			if pt.id().String() != "O" {
				t.Error("identity should render as O")
			}
		})
	}
}

func TestHash(t *testing.T) {
	c := New()

	a, err := c.HashToG1([]byte("alice@example.com"))
	if err != nil {
		t.Fatal(err)
	}
	b, _ := c.HashToG1([]byte("alice@example.com"))
	if !a.Equal(b) {
		t.Error("HashToG1 is not deterministic")
	}
	other, _ := c.HashToG1([]byte("bob@example.com"))
	if a.Equal(other) {
		t.Error("distinct inputs collided in G1")
	}

	h2, err := c.HashToG2([]byte("alice@example.com"))
	if err != nil {
		t.Fatal(err)
	}
	if !c.NewG2().ScalarMult(c.Order(), h2).IsIdentity() {
		t.Error("HashToG2 output is not in the r-torsion")
	}

	s1, _ := c.HashToScalar([]byte("alice@example.com"))
	s2, _ := c.HashToScalar([]byte("alice@example.com"))
	if !s1.Equal(s2) {
		t.Error("HashToScalar is not deterministic")
	}
}

func TestPairing(t *testing.T) {
	c := New()
	g1, g2 := c.G1Generator(), c.G2Generator()

	t.Run("Bilinearity", func(t *testing.T) {
		a, _ := c.RandomScalar(rand.Reader)
		b, _ := c.RandomScalar(rand.Reader)
		ab := c.NewScalar().Mul(a, b)

		lhs := c.Pair(c.NewG1().ScalarMult(a, g1), c.NewG2().ScalarMult(b, g2))
		rhs := c.NewGT().Exp(c.Pair(g1, g2), ab)
		if !lhs.Equal(rhs) {
			t.Error("e(aP, bQ) != e(P, Q)^(ab)")
		}
	})

	t.Run("NonDegenerate", func(t *testing.T) {
		if c.Pair(g1, g2).IsOne() {
			t.Error("e(g1, g2) == 1")
		}
	})

	t.Run("Identity", func(t *testing.T) {
		if !c.Pair(c.NewG1(), g2).IsOne() {
			t.Error("e(O, Q) != 1")
		}
	})

	t.Run("TargetDiv", func(t *testing.T) {
		e := c.Pair(g1, g2)
		if !c.NewGT().Div(e, e).IsOne() {
			t.Error("e/e != 1")
		}
		sq := c.NewGT().Mul(e, e)
		if !c.NewGT().Div(sq, e).Equal(e) {
			t.Error("(e*e)/e != e")
		}
	})
}

func TestEncoding(t *testing.T) {
	c := New()

	if n := len(c.G1Generator().Bytes()); n != 32 {
		t.Errorf("compressed G1 point has %d bytes, want 32", n)
	}
	if n := len(c.G2Generator().Bytes()); n != 64 {
		t.Errorf("compressed G2 point has %d bytes, want 64", n)
	}
	if n := len(c.Order().Bytes()); n != 32 {
		t.Errorf("scalar encoding has %d bytes, want 32", n)
	}
}

func TestSubGroup(t *testing.T) {
	c := New()
	s, _ := c.RandomScalar(rand.Reader)

	t.Run("G1", func(t *testing.T) {
		p := c.NewG1().ScalarMult(s, c.G1Generator()).(*G1)
		if !p.IsInSubGroup() || !c.NewG1().IsInSubGroup() {
			t.Error("generated point rejected")
		}

		// G1 has cofactor one, so only points off the curve fail.
		off := &G1{inner: p.inner}
		off.inner.Y.Double(&off.inner.Y)
		if off.IsInSubGroup() {
			t.Error("off-curve point accepted")
		}
	})

	t.Run("G2", func(t *testing.T) {
		q := c.NewG2().ScalarMult(s, c.G2Generator())
		if !q.IsInSubGroup() || !c.NewG2().IsInSubGroup() {
			t.Error("generated point rejected")
		}

		u := q.(*G2).inner.X
		u.SetOne()
		raw := &G2{inner: bn254.MapToCurve2(&u)}
		if !raw.inner.IsOnCurve() {
			t.Fatal("mapped point is not on the twist")
		}
		if raw.IsInSubGroup() {
			t.Error("point outside the r-torsion accepted")
		}

		raw.inner.ClearCofactor(&raw.inner)
		if !raw.IsInSubGroup() {
			t.Error("cofactor-cleared point rejected")
		}
	})
}
