package ss

import (
	"math/big"
)

// line evaluates, at the distorted point phi(Q) = (-xq, i*yq), the line of
// slope lam through (tx, ty):
//
//	l(X, Y) = Y - ty - lam*(X - tx)  =>  (lam*(xq + tx) - ty) + yq*i
func (c *params) line(lam, tx, ty *big.Int, q *Point) fp2 {
	a := new(big.Int).Add(q.x, tx)
	a.Mul(a, lam)
	a.Sub(a, ty)
	return fp2{a: c.mod(a), b: new(big.Int).Set(q.y)}
}

// miller computes f_{r,P}(phi(Q)) up to factors in F_p. Vertical lines
// take values in F_p and are dropped; the final exponentiation removes
// them anyway.
func (c *params) miller(p, q *Point) fp2 {
	f := c.fp2One()
	tx, ty := new(big.Int).Set(p.x), new(big.Int).Set(p.y)
	for i := c.r.BitLen() - 2; i >= 0; i-- {
		lam := c.tangent(tx, ty)
		f = c.mul2(c.sqr2(f), c.line(lam, tx, ty, q))
		tx, ty = c.through(lam, tx, ty, tx)

		if c.r.Bit(i) == 0 {
			continue
		}
		if tx.Cmp(p.x) == 0 {
			// T = -P, which only happens on the last bit: T + P = O.
			break
		}
		lam = c.chord(tx, ty, p.x, p.y)
		f = c.mul2(f, c.line(lam, tx, ty, q))
		tx, ty = c.through(lam, tx, ty, p.x)
	}
	return f
}

// finalExp raises f to (p^2 - 1)/r = (p - 1) * h. Since p = 3 (mod 4),
// Frobenius on F_p^2 is conjugation and f^(p-1) = conj(f) / f.
func (c *params) finalExp(f fp2) fp2 {
	f = c.mul2(c.conj2(f), c.inv2(f))
	return c.exp2(f, c.h)
}

// tate computes the reduced Tate pairing e(P, phi(Q)), a symmetric,
// non-degenerate bilinear map onto the order-r subgroup of F_p^2.
func (c *params) tate(p, q *Point) fp2 {
	if p.inf || q.inf {
		return c.fp2One()
	}
	return c.finalExp(c.miller(p, q))
}
