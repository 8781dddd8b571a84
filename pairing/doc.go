// Package pairing is a group-algebra layer over pairing-friendly curves.
// It lets protocols such as identity-based encryption, attribute-based
// encryption and short signatures work with scalars and group elements
// without depending on the curve arithmetic underneath.
//
// # Contexts
//
// A group context owns one curve instantiation, chosen by security level:
//
//	g, err := pairing.NewAsymmetric(128)   // BLS12-381
//	s, err := pairing.NewSymmetric(80)     // SS512
//
// The two configurations are different types. [Symmetric] pairs two G1
// elements; [Asymmetric] pairs a G1 element with a G2 element and is the
// only one with G2 operations, so using G2 under a symmetric curve is a
// compile error. Both implement [Group], the shared operation set.
//
// # Notation
//
// All groups are written multiplicatively, as in the cryptographic
// literature. On the curve groups G1 and G2, MulG1 is point addition,
// DivG1 point subtraction and ExpG1 scalar multiplication. On GT they are
// field multiplication, division and exponentiation.
//
//	g, _ := pairing.NewAsymmetric(128) // *pairing.Asymmetric
//	a, _ := g.RandomZR()
//	b, _ := g.RandomZR()
//	p, _ := g.RandomG1()
//	q, _ := g.RandomG2()
//	lhs := g.Pair(g.ExpG1(p, a), g.ExpG2(q, b))
//	rhs := g.ExpGT(g.Pair(p, q), a.Mul(b))
//	lhs.Equal(rhs) // true
//
// # Randomness
//
// Sampling reads from crypto/rand by default. [WithRand] injects any
// io.Reader and [WithSeed] a reproducible stream for tests. Hashing never
// consumes randomness: HashToZR, HashToG1 and HashToG2 give the same
// output for the same text and curve in every process.
//
// # Elements
//
// [ZR], [G1], [G2] and [GT] values are immutable and bound to the context
// that created them. Passing an element to another context's operation
// panics with an error wrapping [ErrForeignElement].
//
// [List] is an ordered container of heterogeneous elements (text, ZR, G1,
// G2) for building argument lists. Get reports out-of-range indices with
// [ErrIndexOutOfRange] instead of returning stale data.
//
// # Concurrency
//
// Contexts are safe for concurrent use: the randomness source is guarded
// by a mutex and arithmetic keeps no shared state. With a seeded source,
// the order of samples across goroutines is unspecified.
package pairing
