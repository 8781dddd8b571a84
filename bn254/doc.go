// Package bn254 provides a BN254 implementation of the
// [group.AsymmetricCurve] interface for use with the pairing package.
//
// BN254 (also known as alt_bn128) is the Barreto-Naehrig curve precompiled
// by Ethereum. It has embedding degree 12: G1 is defined over the 254-bit
// prime field Fp, G2 over Fp2, and the optimal ate pairing maps into a
// subgroup of Fp12.
//
// This package wraps the BN254 implementation from gnark-crypto, providing
// point and target types that satisfy [group.Point] and [group.Target].
// Scalars come from the shared [zr.Field] built on the BN254 scalar field
// modulus.
//
// # Hashing
//
// HashToScalar uses RFC 9380 hash_to_field over Fr, HashToG1 and HashToG2
// use the RFC 9380 SVDW random-oracle suites. Each function has its own
// domain separation tag, so outputs are stable across processes and
// independent of each other.
//
// # Security
//
// The curve was designed for 128-bit security; improved number field sieve
// variants bring the estimate to roughly 100 bits, which is the level this
// package reports.
package bn254
