package pairing

import (
	"crypto/sha256"
	"encoding/hex"
	"testing"

	"github.com/f3rmion/pairing/group"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGroupLaws(t *testing.T) {
	for _, g := range testGroups(t) {
		t.Run(g.Name()+"/Commutative", func(t *testing.T) {
			p, q := mustG1(t, g), mustG1(t, g)
			assert.True(t, g.MulG1(p, q).Equal(g.MulG1(q, p)))
		})

		t.Run(g.Name()+"/Associative", func(t *testing.T) {
			p, q, r := mustG1(t, g), mustG1(t, g), mustG1(t, g)
			lhs := g.MulG1(g.MulG1(p, q), r)
			rhs := g.MulG1(p, g.MulG1(q, r))
			assert.True(t, lhs.Equal(rhs))
		})

		t.Run(g.Name()+"/DivUndoesMul", func(t *testing.T) {
			p, q := mustG1(t, g), mustG1(t, g)
			assert.True(t, g.DivG1(g.MulG1(p, q), q).Equal(p))
		})

		t.Run(g.Name()+"/Identity", func(t *testing.T) {
			p := mustG1(t, g)
			id := g.IdentityG1()
			assert.True(t, id.IsIdentity())
			assert.True(t, g.MulG1(p, id).Equal(p))
			assert.True(t, g.DivG1(p, p).IsIdentity())
		})

		t.Run(g.Name()+"/ExpComposes", func(t *testing.T) {
			p := mustG1(t, g)
			a, b := mustZR(t, g), mustZR(t, g)
			lhs := g.ExpG1(g.ExpG1(p, a), b)
			rhs := g.ExpG1(p, a.Mul(b))
			assert.True(t, lhs.Equal(rhs))
			assert.True(t, g.ExpG1(p, g.NewZR(1)).Equal(p))
		})

		t.Run(g.Name()+"/ExpDistributes", func(t *testing.T) {
			p := mustG1(t, g)
			a, b := mustZR(t, g), mustZR(t, g)
			lhs := g.ExpG1(p, a.Add(b))
			rhs := g.MulG1(g.ExpG1(p, a), g.ExpG1(p, b))
			assert.True(t, lhs.Equal(rhs))
		})

		t.Run(g.Name()+"/Order", func(t *testing.T) {
			p := mustG1(t, g)
			assert.True(t, g.ExpG1(p, g.Order()).IsIdentity())
			assert.True(t, g.ExpG1(g.GeneratorG1(), g.Order()).IsIdentity())
			assert.True(t, g.Order().IsZero(), "order is zero modulo itself")
			assert.Positive(t, g.Order().BigInt().Sign())
		})

		t.Run(g.Name()+"/Target", func(t *testing.T) {
			x, err := g.RandomGT()
			require.NoError(t, err)
			y, err := g.RandomGT()
			require.NoError(t, err)

			assert.False(t, x.IsOne())
			assert.True(t, g.MulGT(x, y).Equal(g.MulGT(y, x)))
			assert.True(t, g.DivGT(g.MulGT(x, y), y).Equal(x))
			assert.True(t, g.DivGT(x, x).IsOne())
			assert.True(t, g.MulGT(x, g.IdentityGT()).Equal(x))
			assert.True(t, g.ExpGT(x, g.Order()).IsOne())

			a, b := mustZR(t, g), mustZR(t, g)
			assert.True(t, g.ExpGT(g.ExpGT(x, a), b).Equal(g.ExpGT(x, a.Mul(b))))
		})
	}
}

func TestScalars(t *testing.T) {
	g, err := NewAsymmetric(100, WithSeed(3), quiet())
	require.NoError(t, err)

	a := mustZR(t, g)
	assert.True(t, a.Sub(a).IsZero())
	assert.True(t, a.Add(a.Neg()).IsZero())

	inv, err := a.Inverse()
	require.NoError(t, err)
	assert.True(t, a.Mul(inv).Equal(g.NewZR(1)))

	_, err = g.NewZR(0).Inverse()
	assert.Error(t, err)

	n, err := g.ParseZR("1234567890123456789012345678901234567890")
	require.NoError(t, err)
	assert.Equal(t, "1234567890123456789012345678901234567890", n.String())

	_, err = g.ParseZR("not a number")
	assert.Error(t, err)

	assert.True(t, g.NewZR(-1).Add(g.NewZR(1)).IsZero())
	assert.Len(t, a.Bytes(), 32)
}

func TestHashDeterminism(t *testing.T) {
	for _, g := range testGroups(t) {
		// A second, independently seeded context on the same curve.
		var twin Group
		var err error
		switch g.(type) {
		case *Symmetric:
			twin, err = NewSymmetric(0, WithCurve(g.Name()), WithSeed(999), quiet())
		case *Asymmetric:
			twin, err = NewAsymmetric(0, WithCurve(g.Name()), WithSeed(999), quiet())
		}
		require.NoError(t, err)

		t.Run(g.Name()+"/G1", func(t *testing.T) {
			a, err := g.HashToG1("alice@example.com")
			require.NoError(t, err)
			b, err := g.HashToG1("alice@example.com")
			require.NoError(t, err)
			c, err := twin.HashToG1("alice@example.com")
			require.NoError(t, err)

			assert.True(t, a.Equal(b))
			assert.Equal(t, a.Bytes(), c.Bytes())
			assert.False(t, a.IsIdentity())

			other, err := g.HashToG1("bob@example.com")
			require.NoError(t, err)
			assert.False(t, a.Equal(other))
		})

		t.Run(g.Name()+"/ZR", func(t *testing.T) {
			a, err := g.HashToZR("attribute:A")
			require.NoError(t, err)
			b, err := twin.HashToZR("attribute:A")
			require.NoError(t, err)
			assert.Equal(t, a.Bytes(), b.Bytes())

			c, err := g.HashToZR("attribute:B")
			require.NoError(t, err)
			assert.False(t, a.Equal(c))
		})
	}
}

// Known answers pin the domain separation tags and encodings, so hashes
// stay stable across processes and releases.
func TestHashVectors(t *testing.T) {
	vectors := map[string]struct {
		zr       string
		g1       string
		g1SHA256 string
	}{
		"SS512": {
			zr: "0aa62fd9f4987b3c614c98f2a73006b754237c0d",
			g1: "04" +
				"0692bbfa9c75b10466e2b499675ab67a703d837f5ad79bab0960e85cdbb6c182" +
				"8d3359ed5aea6aa3a665ea98c98227757e8c23de9d2cafde71a195f73a60b32e" +
				"57ecfaf1a1a8a5430d2f19a78e130d4f089d0a0780e92d15150a40e6c3ef7925" +
				"94398262a08be8289f2d50ad9d73a80868cc4b5dddfef45236840a557e63310c",
		},
		"SS1536": {
			zr:       "0eddbea97b4a78b907e3b8dfea020b115b04b3d32de02bc1e927d17c84ad7025",
			g1SHA256: "5d8cbbe666ee89e9d46b5535902d675fa1faaebdf171cd07c4f364f901b88d53",
		},
		"BN254": {
			zr: "0bb004845429ddf69d5bb3b62010603661b614c0676cc0c6eb7009bb4d11d81d",
			g1: "ad07c1a29d8d2346dae5fa190fc1247b642c691fa68fd7e5407951d77c978650",
		},
		"BLS12-381": {
			zr: "4631e3452c558f12dc5b8607461852362c09db9337bda6367c484498775195bb",
			g1: "a56bb9c84c07bae2273775ae9f8a8f39cb18fd4d649851fea4c2161c2247e481" +
				"fc3faf5ede7a9dbe834303d4539e3e53",
		},
	}

	for _, g := range testGroups(t) {
		want, ok := vectors[g.Name()]
		require.True(t, ok, "no vector for %s", g.Name())

		t.Run(g.Name(), func(t *testing.T) {
			z, err := g.HashToZR("attribute:A")
			require.NoError(t, err)
			assert.Equal(t, want.zr, hex.EncodeToString(z.Bytes()))

			p, err := g.HashToG1("alice@example.com")
			require.NoError(t, err)
			if want.g1SHA256 != "" {
				sum := sha256.Sum256(p.Bytes())
				assert.Equal(t, want.g1SHA256, hex.EncodeToString(sum[:]))
			} else {
				assert.Equal(t, want.g1, hex.EncodeToString(p.Bytes()))
			}
		})
	}
}

// outsidePoint stands in for a point that fails subgroup validation.
type outsidePoint struct{ group.Point }

func (outsidePoint) IsInSubGroup() bool { return false }

func TestMembership(t *testing.T) {
	for _, g := range testGroups(t) {
		t.Run(g.Name()+"/G1", func(t *testing.T) {
			assert.True(t, mustG1(t, g).IsMember())
			assert.True(t, g.IdentityG1().IsMember())
			assert.True(t, g.GeneratorG1().IsMember())

			h, err := g.HashToG1("member")
			require.NoError(t, err)
			assert.True(t, h.IsMember())
		})
	}

	for _, a := range asymmetricGroups(t) {
		t.Run(a.Name()+"/G2", func(t *testing.T) {
			assert.True(t, mustG2(t, a).IsMember())
			assert.True(t, a.IdentityG2().IsMember())

			h, err := a.HashToG2("member")
			require.NoError(t, err)
			assert.True(t, h.IsMember())
		})
	}

	t.Run("Rejected", func(t *testing.T) {
		a, err := NewAsymmetric(100, WithSeed(9), quiet())
		require.NoError(t, err)

		p := a.wrapG1(outsidePoint{a.engine.G1Generator()})
		q := a.wrapG2(outsidePoint{a.engine.G2Generator()})
		assert.False(t, p.IsMember())
		assert.False(t, q.IsMember())
	})
}

func TestSeededSampling(t *testing.T) {
	a, err := NewSymmetric(80, WithSeed(42), quiet())
	require.NoError(t, err)
	b, err := NewSymmetric(80, WithSeed(42), quiet())
	require.NoError(t, err)

	for i := 0; i < 4; i++ {
		x, y := mustZR(t, a), mustZR(t, b)
		assert.Equal(t, x.Bytes(), y.Bytes())
	}
	assert.Equal(t, mustG1(t, a).Bytes(), mustG1(t, b).Bytes())

	c, err := NewSymmetric(80, WithSeed(43), quiet())
	require.NoError(t, err)
	d, err := NewSymmetric(80, WithSeed(42), quiet())
	require.NoError(t, err)
	assert.NotEqual(t, mustZR(t, c).Bytes(), mustZR(t, d).Bytes())
}

func TestForeignElement(t *testing.T) {
	a, err := NewAsymmetric(100, WithSeed(1), quiet())
	require.NoError(t, err)
	b, err := NewAsymmetric(100, WithSeed(2), quiet())
	require.NoError(t, err)

	p, q := mustG1(t, a), mustG1(t, b)
	s := mustZR(t, a)

	assertForeign := func(t *testing.T, f func()) {
		t.Helper()
		defer func() {
			r := recover()
			require.NotNil(t, r, "expected panic")
			err, ok := r.(error)
			require.True(t, ok, "panic value should be an error")
			assert.ErrorIs(t, err, ErrForeignElement)
		}()
		f()
	}

	t.Run("MulG1", func(t *testing.T) { assertForeign(t, func() { a.MulG1(p, q) }) })
	t.Run("ExpG1", func(t *testing.T) { assertForeign(t, func() { b.ExpG1(q, s) }) })
	t.Run("Pair", func(t *testing.T) { assertForeign(t, func() { b.Pair(p, b.GeneratorG2()) }) })
	t.Run("ZR", func(t *testing.T) { assertForeign(t, func() { s.Add(mustZR(t, b)) }) })
}

func TestConcurrentSampling(t *testing.T) {
	g, err := NewAsymmetric(100, WithSeed(5), quiet())
	require.NoError(t, err)

	const workers = 8
	results := make(chan *ZR, workers)
	for i := 0; i < workers; i++ {
		go func() {
			z, err := g.RandomZR()
			assert.NoError(t, err)
			results <- z
		}()
	}

	seen := make(map[string]bool)
	for i := 0; i < workers; i++ {
		z := <-results
		require.NotNil(t, z)
		seen[string(z.Bytes())] = true
	}
	assert.Len(t, seen, workers, "concurrent samples must not repeat")
}
