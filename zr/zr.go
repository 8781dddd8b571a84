package zr

import (
	"errors"
	"fmt"
	"io"
	"math/big"

	"github.com/f3rmion/pairing/group"
)

var (
	// ErrZeroInverse is returned when inverting the zero scalar.
	ErrZeroInverse = errors.New("zr: cannot invert zero scalar")
	// ErrInvalidScalar is returned when a textual scalar cannot be parsed.
	ErrInvalidScalar = errors.New("zr: invalid scalar")
)

// Field is the prime field of integers modulo a group order r.
type Field struct {
	order   *big.Int
	bitLen  int
	byteLen int
}

// NewField returns the field of integers modulo order. The order must be
// an odd prime; it is copied.
func NewField(order *big.Int) *Field {
	o := new(big.Int).Set(order)
	return &Field{
		order:   o,
		bitLen:  o.BitLen(),
		byteLen: (o.BitLen() + 7) / 8,
	}
}

// Order returns a copy of the field modulus.
func (f *Field) Order() *big.Int {
	return new(big.Int).Set(f.order)
}

// ByteLen returns the length of the canonical scalar encoding.
func (f *Field) ByteLen() int {
	return f.byteLen
}

// NewScalar returns a new scalar initialized to zero.
func (f *Field) NewScalar() *Scalar {
	return &Scalar{inner: new(big.Int), field: f}
}

// FromBigInt returns x reduced modulo the field order.
func (f *Field) FromBigInt(x *big.Int) *Scalar {
	s := &Scalar{inner: new(big.Int).Set(x), field: f}
	s.reduce()
	return s
}

// FromInt64 returns n reduced modulo the field order. Negative values wrap
// around, so FromInt64(-1) is r-1.
func (f *Field) FromInt64(n int64) *Scalar {
	return f.FromBigInt(big.NewInt(n))
}

// Parse reads a scalar from its representation in the given base and
// reduces it modulo the field order.
func (f *Field) Parse(text string, base int) (*Scalar, error) {
	x, ok := new(big.Int).SetString(text, base)
	if !ok {
		return nil, fmt.Errorf("%w: %q is not a base-%d integer", ErrInvalidScalar, text, base)
	}
	return f.FromBigInt(x), nil
}

// FromWideBytes interprets data as a big-endian integer and reduces it
// modulo the field order. Hash outputs should be at least 128 bits longer
// than the order so the result is close to uniform.
func (f *Field) FromWideBytes(data []byte) *Scalar {
	return f.FromBigInt(new(big.Int).SetBytes(data))
}

// Modulus returns a scalar holding r itself.
func (f *Field) Modulus() *Scalar {
	return &Scalar{inner: new(big.Int).Set(f.order), field: f}
}

// Random returns a uniformly random scalar in [0, order) read from r.
// Candidates are drawn by rejection so the result carries no modular bias.
func (f *Field) Random(r io.Reader) (*Scalar, error) {
	buf := make([]byte, f.byteLen)
	excess := uint(8*f.byteLen - f.bitLen)
	for {
		if _, err := io.ReadFull(r, buf); err != nil {
			return nil, fmt.Errorf("zr: read randomness: %w", err)
		}
		buf[0] &= byte(0xff >> excess)
		x := new(big.Int).SetBytes(buf)
		if x.Cmp(f.order) < 0 {
			return &Scalar{inner: x, field: f}, nil
		}
	}
}

// Scalar is an element of a [Field]. It implements [group.Scalar].
//
// All arithmetic operations reduce results modulo the field order.
type Scalar struct {
	inner *big.Int
	field *Field
}

// reduce ensures the scalar is in the range [0, order).
func (s *Scalar) reduce() {
	s.inner.Mod(s.inner, s.field.order)
}

// cast asserts that a is a scalar of the same field as s.
func (s *Scalar) cast(a group.Scalar) *Scalar {
	as, ok := a.(*Scalar)
	if !ok {
		panic(fmt.Sprintf("zr: unsupported scalar type %T", a))
	}
	if as.field.order.Cmp(s.field.order) != 0 {
		panic("zr: scalars belong to different fields")
	}
	return as
}

// Field returns the field s belongs to.
func (s *Scalar) Field() *Field {
	return s.field
}

// Add sets s to a + b (mod order) and returns s.
func (s *Scalar) Add(a, b group.Scalar) group.Scalar {
	s.inner.Add(s.cast(a).inner, s.cast(b).inner)
	s.reduce()
	return s
}

// Sub sets s to a - b (mod order) and returns s.
func (s *Scalar) Sub(a, b group.Scalar) group.Scalar {
	s.inner.Sub(s.cast(a).inner, s.cast(b).inner)
	s.reduce()
	return s
}

// Mul sets s to a * b (mod order) and returns s.
func (s *Scalar) Mul(a, b group.Scalar) group.Scalar {
	s.inner.Mul(s.cast(a).inner, s.cast(b).inner)
	s.reduce()
	return s
}

// Negate sets s to -a (mod order) and returns s.
func (s *Scalar) Negate(a group.Scalar) group.Scalar {
	s.inner.Neg(s.cast(a).inner)
	s.reduce()
	return s
}

// Invert sets s to a^(-1) (mod order) and returns s.
// Returns an error if a is zero, as zero has no multiplicative inverse.
func (s *Scalar) Invert(a group.Scalar) (group.Scalar, error) {
	as := s.cast(a)
	if as.IsZero() {
		return nil, ErrZeroInverse
	}
	s.inner.ModInverse(as.inner, s.field.order)
	return s, nil
}

// Set copies the value of a into s and returns s.
func (s *Scalar) Set(a group.Scalar) group.Scalar {
	s.inner.Set(s.cast(a).inner)
	return s
}

// Bytes returns the scalar reduced modulo the order as a fixed-length
// big-endian byte slice.
func (s *Scalar) Bytes() []byte {
	out := make([]byte, s.field.byteLen)
	return s.canonical().FillBytes(out)
}

// Equal reports whether s and b represent the same residue.
func (s *Scalar) Equal(b group.Scalar) bool {
	return s.canonical().Cmp(s.cast(b).canonical()) == 0
}

// IsZero reports whether s is zero modulo the order.
func (s *Scalar) IsZero() bool {
	return s.canonical().Sign() == 0
}

// BigInt returns a copy of the raw value of s. For the scalar returned by
// [Field.Modulus] this is r itself.
func (s *Scalar) BigInt() *big.Int {
	return new(big.Int).Set(s.inner)
}

// String returns the raw value of s in base 10.
func (s *Scalar) String() string {
	return s.inner.String()
}

// canonical returns the residue of s without modifying it.
func (s *Scalar) canonical() *big.Int {
	if s.inner.Sign() >= 0 && s.inner.Cmp(s.field.order) < 0 {
		return s.inner
	}
	return new(big.Int).Mod(s.inner, s.field.order)
}
