package pairing

import (
	"testing"

	"github.com/f3rmion/pairing/logging"
	"github.com/stretchr/testify/require"
)

func quiet() Option {
	return WithLogger(logging.Discard())
}

// testGroups returns one context per catalogued curve, seeded so failures
// reproduce. SS1536 is skipped in short mode.
func testGroups(t *testing.T) []Group {
	t.Helper()
	var out []Group
	for i, name := range SymmetricCurves() {
		if name == "SS1536" && testing.Short() {
			continue
		}
		g, err := NewSymmetric(0, WithCurve(name), WithSeed(int64(i)), quiet())
		require.NoError(t, err)
		out = append(out, g)
	}
	for i, name := range AsymmetricCurves() {
		g, err := NewAsymmetric(0, WithCurve(name), WithSeed(int64(100+i)), quiet())
		require.NoError(t, err)
		out = append(out, g)
	}
	return out
}

func mustZR(t *testing.T, g Group) *ZR {
	t.Helper()
	z, err := g.RandomZR()
	require.NoError(t, err)
	return z
}

func mustG1(t *testing.T, g Group) *G1 {
	t.Helper()
	p, err := g.RandomG1()
	require.NoError(t, err)
	return p
}
