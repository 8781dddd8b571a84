package pairing

import (
	"fmt"
	"io"

	"github.com/f3rmion/pairing/bls12381"
	"github.com/f3rmion/pairing/bn254"
	"github.com/f3rmion/pairing/group"
	"github.com/f3rmion/pairing/logging"
	"github.com/f3rmion/pairing/randutil"
	"github.com/f3rmion/pairing/ss"
)

// Config holds the construction parameters of a group context. Use the
// With* options rather than filling it directly.
type Config struct {
	// Curve selects a catalogued curve by name. Empty means the weakest
	// curve meeting the requested security level.
	Curve string

	// Rand is the randomness source for every sampling operation. It is
	// wrapped so that concurrent callers are serialized.
	Rand io.Reader

	// Logger receives lifecycle events.
	Logger logging.Logger
}

// Option configures a group context.
type Option func(*Config)

// WithCurve selects a curve by catalogue name, e.g. "SS512" or "BN254".
func WithCurve(name string) Option {
	return func(c *Config) { c.Curve = name }
}

// WithRand sets the randomness source. The default is crypto/rand.
func WithRand(r io.Reader) Option {
	return func(c *Config) { c.Rand = r }
}

// WithSeed installs the deterministic stream [randutil.Seeded](seed).
// Contexts built with the same seed sample the same values in the same
// order. Use it for tests only.
func WithSeed(seed int64) Option {
	return func(c *Config) { c.Rand = randutil.Seeded(seed) }
}

// WithLogger sets the logger. The default wraps slog.Default().
func WithLogger(l logging.Logger) Option {
	return func(c *Config) { c.Logger = l }
}

func newConfig(opts []Option) Config {
	cfg := Config{
		Rand:   randutil.Default(),
		Logger: logging.New(nil),
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.Rand == nil {
		cfg.Rand = randutil.Default()
	}
	if cfg.Logger == nil {
		cfg.Logger = logging.Discard()
	}
	return cfg
}

// entry is one catalogued curve. open is only called once the entry is
// selected, since some engines do real work on first use.
type entry[C group.Curve] struct {
	name  string
	level int
	open  func() C
}

// Catalogues are sorted by ascending security level.
var (
	symmetricCatalogue = []entry[group.SymmetricCurve]{
		{name: "SS512", level: 80, open: func() group.SymmetricCurve { return ss.SS512() }},
		{name: "SS1536", level: 128, open: func() group.SymmetricCurve { return ss.SS1536() }},
	}

	asymmetricCatalogue = []entry[group.AsymmetricCurve]{
		{name: "BN254", level: 100, open: func() group.AsymmetricCurve { return bn254.New() }},
		{name: "BLS12-381", level: 128, open: func() group.AsymmetricCurve { return bls12381.New() }},
	}
)

// SymmetricCurves returns the names of the catalogued symmetric curves,
// weakest first.
func SymmetricCurves() []string {
	return names(symmetricCatalogue)
}

// AsymmetricCurves returns the names of the catalogued asymmetric curves,
// weakest first.
func AsymmetricCurves() []string {
	return names(asymmetricCatalogue)
}

func names[C group.Curve](cat []entry[C]) []string {
	out := make([]string, len(cat))
	for i, e := range cat {
		out[i] = e.name
	}
	return out
}

// lookup picks the curve named name, or the weakest curve whose level is
// at least level. A named curve weaker than a positive level is rejected.
func lookup[C group.Curve](cat []entry[C], level int, name string) (C, error) {
	var zero C
	if name != "" {
		for _, e := range cat {
			if e.name != name {
				continue
			}
			if level > e.level {
				return zero, fmt.Errorf("%w: %s offers %d bits, %d requested", ErrUnsupportedLevel, name, e.level, level)
			}
			return e.open(), nil
		}
		return zero, fmt.Errorf("%w: %q (available: %v)", ErrUnknownCurve, name, names(cat))
	}

	if level <= 0 {
		return zero, fmt.Errorf("%w: %d", ErrUnsupportedLevel, level)
	}
	for _, e := range cat {
		if e.level >= level {
			return e.open(), nil
		}
	}
	return zero, fmt.Errorf("%w: %d exceeds the strongest curve (%s, %d bits)",
		ErrUnsupportedLevel, level, cat[len(cat)-1].name, cat[len(cat)-1].level)
}
