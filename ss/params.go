package ss

import (
	"math/big"
)

// params describes one supersingular curve y^2 = x^3 + x over F_p with
// p = h*r - 1 and p = 3 (mod 4). E(F_p) has p + 1 points, so h is the
// cofactor of the order-r subgroup and the embedding degree is 2.
type params struct {
	name  string
	level int
	p     *big.Int // base field modulus
	r     *big.Int // prime subgroup order
	h     *big.Int // cofactor (p+1)/r
	size  int      // byte length of an F_p element
}

func newParams(name string, level int, r *big.Int, h string) *params {
	hh := mustInt(h)
	p := new(big.Int).Mul(hh, r)
	p.Sub(p, one)
	return &params{
		name:  name,
		level: level,
		p:     p,
		r:     r,
		h:     hh,
		size:  (p.BitLen() + 7) / 8,
	}
}

var (
	one = big.NewInt(1)

	// r = 2^159 + 2^107 + 1, the Solinas prime of the PBC/Charm SS512 curve.
	order160 = solinas(159, 107)
	// r = 2^255 + 2^243 + 1.
	order256 = solinas(255, 243)

	ss512 = newParams("SS512", 80, order160,
		"9173994463960286046443283581208347763186259956673124494950355357547691504353939232280074212440502746219980")

	ss1536 = newParams("SS1536", 128, order256,
		"20815864389328798163850480654728171077230524494533409610638224700807216119346720596024478883464648369684843227908562015582767132496646929816279813211354641525848259018778440691546366699323167100945918841095379622423387354295096957733925002768876520583464697770622321657076833170056511209332449663781837603694136444406281042053396870977465916057756101739472373801429441421111406337460212")
)

// solinas returns 2^a + 2^b + 1.
func solinas(a, b uint) *big.Int {
	x := new(big.Int).Lsh(one, a)
	x.Add(x, new(big.Int).Lsh(one, b))
	return x.Add(x, one)
}

func mustInt(s string) *big.Int {
	x, ok := new(big.Int).SetString(s, 10)
	if !ok {
		panic("ss: bad curve constant " + s)
	}
	return x
}

// mod returns x mod p in place.
func (c *params) mod(x *big.Int) *big.Int {
	return x.Mod(x, c.p)
}
