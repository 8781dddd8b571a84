package ss

import (
	"math/big"
)

// fp2 is an element a + b*i of F_p^2 = F_p[i]/(i^2 + 1). Values are
// immutable once built; every operation allocates its result.
type fp2 struct {
	a, b *big.Int
}

func (c *params) fp2One() fp2 {
	return fp2{a: big.NewInt(1), b: new(big.Int)}
}

func (c *params) mul2(x, y fp2) fp2 {
	// (a + bi)(c + di) = (ac - bd) + ((a+b)(c+d) - ac - bd)i
	ac := new(big.Int).Mul(x.a, y.a)
	bd := new(big.Int).Mul(x.b, y.b)
	s := new(big.Int).Add(x.a, x.b)
	t := new(big.Int).Add(y.a, y.b)
	s.Mul(s, t)
	s.Sub(s, ac)
	s.Sub(s, bd)
	return fp2{a: c.mod(ac.Sub(ac, bd)), b: c.mod(s)}
}

func (c *params) sqr2(x fp2) fp2 {
	// (a + bi)^2 = (a+b)(a-b) + 2abi
	s := new(big.Int).Add(x.a, x.b)
	d := new(big.Int).Sub(x.a, x.b)
	ab := new(big.Int).Mul(x.a, x.b)
	return fp2{a: c.mod(s.Mul(s, d)), b: c.mod(ab.Lsh(ab, 1))}
}

func (c *params) conj2(x fp2) fp2 {
	return fp2{a: new(big.Int).Set(x.a), b: c.mod(new(big.Int).Neg(x.b))}
}

// inv2 returns x^-1 = conj(x) / (a^2 + b^2). x must be non-zero.
func (c *params) inv2(x fp2) fp2 {
	n := new(big.Int).Mul(x.a, x.a)
	n.Add(n, new(big.Int).Mul(x.b, x.b))
	n.ModInverse(c.mod(n), c.p)
	a := new(big.Int).Mul(x.a, n)
	b := new(big.Int).Mul(x.b, n)
	return fp2{a: c.mod(a), b: c.mod(b.Neg(b))}
}

// exp2 returns x^k for k >= 0 by left-to-right square and multiply.
func (c *params) exp2(x fp2, k *big.Int) fp2 {
	res := c.fp2One()
	for i := k.BitLen() - 1; i >= 0; i-- {
		res = c.sqr2(res)
		if k.Bit(i) == 1 {
			res = c.mul2(res, x)
		}
	}
	return res
}

func (x fp2) equal(y fp2) bool {
	return x.a.Cmp(y.a) == 0 && x.b.Cmp(y.b) == 0
}

func (x fp2) isOne() bool {
	return x.b.Sign() == 0 && x.a.Cmp(one) == 0
}
