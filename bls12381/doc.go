// Package bls12381 provides a BLS12-381 implementation of the
// [group.AsymmetricCurve] interface on top of gnark-crypto.
//
// Hashing to G1 and G2 uses the RFC 9380 SSWU random-oracle suites;
// hashing to scalars uses RFC 9380 hash_to_field over Fr.
package bls12381
