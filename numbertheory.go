// Copyright (c) 2015-2020 The Decred developers
// Copyright 2013-2014 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package secp256k1

// References:
//   [GECC]: Guide to Elliptic Curve Cryptography (Hankerson, Menezes, Vanstone)

import "math/big"

// modInv returns the modular multiplicative inverse of a modulo m using the
// extended Euclidean algorithm.  It reports ErrInvalidInput if a and m are
// not coprime.
func modInv(a, m *big.Int) (*big.Int, error) {
	inv := new(big.Int).ModInverse(a, m)
	if inv == nil {
		return nil, signatureError(ErrInvalidInput, "no modular inverse: gcd(a, m) != 1")
	}
	return inv, nil
}

// legendreSymbol computes the Legendre symbol of a modulo the odd prime p,
// returned as one of {0, 1, p-1}.  Per GECC algorithm 2.149, it is computed
// as a^((p-1)/2) mod p.  The caller interprets the value p-1 as -1.
func legendreSymbol(a, p *big.Int) *big.Int {
	if a.Sign() == 0 {
		return big.NewInt(0)
	}
	exp := new(big.Int).Sub(p, big.NewInt(1))
	exp.Rsh(exp, 1)
	aMod := new(big.Int).Mod(a, p)
	return new(big.Int).Exp(aMod, exp, p)
}

// isThreeModFour reports whether p ≡ 3 (mod 4), the condition under which
// modSqrt can use the fast exponentiation path instead of full Tonelli-Shanks.
func isThreeModFour(p *big.Int) bool {
	var fourMod big.Int
	fourMod.Mod(p, big.NewInt(4))
	return fourMod.Cmp(big.NewInt(3)) == 0
}

// modSqrt computes a square root of a modulo the odd prime p using the
// Tonelli-Shanks algorithm, taking the fast path described in GECC algorithm
// 3.36 when p ≡ 3 (mod 4).  It fails with ErrNoSquareRoot when a is a
// quadratic non-residue modulo p.
func modSqrt(a, p *big.Int) (*big.Int, error) {
	aMod := new(big.Int).Mod(a, p)
	if aMod.Sign() == 0 {
		return big.NewInt(0), nil
	}

	if isThreeModFour(p) {
		// Fast path: a^((p+1)/4) mod p.
		exp := new(big.Int).Add(p, big.NewInt(1))
		exp.Rsh(exp, 2)
		root := new(big.Int).Exp(aMod, exp, p)

		// Verify by squaring: this is what makes the fast path safe to use
		// without a separate Legendre-symbol precheck.
		check := new(big.Int).Mul(root, root)
		check.Mod(check, p)
		if check.Cmp(aMod) != 0 {
			return nil, signatureError(ErrNoSquareRoot, "value is not a quadratic residue")
		}
		return root, nil
	}

	return tonelliShanks(aMod, p)
}

// tonelliShanks implements the general Tonelli-Shanks algorithm (GECC
// algorithm 3.34) for primes p not necessarily ≡ 3 (mod 4).
func tonelliShanks(a, p *big.Int) (*big.Int, error) {
	one := big.NewInt(1)
	two := big.NewInt(2)

	if legendreSymbol(a, p).Cmp(one) != 0 {
		return nil, signatureError(ErrNoSquareRoot, "value is not a quadratic residue")
	}

	// Factor p-1 = s * 2^e with s odd.
	s := new(big.Int).Sub(p, one)
	e := 0
	mod2 := new(big.Int)
	for {
		mod2.Mod(s, two)
		if mod2.Sign() != 0 {
			break
		}
		s.Rsh(s, 1)
		e++
	}

	// Find a quadratic non-residue n.
	n := big.NewInt(2)
	for legendreSymbol(n, p).Cmp(new(big.Int).Sub(p, one)) != 0 {
		n.Add(n, one)
	}

	x := new(big.Int).Add(s, one)
	x.Rsh(x, 1)
	x.Exp(a, x, p)

	b := new(big.Int).Exp(a, s, p)
	g := new(big.Int).Exp(n, s, p)
	r := e

	t := new(big.Int)
	m := 0
	gs := new(big.Int)
	for {
		t.Set(b)
		m = 0
		for ; m < r; m++ {
			if t.Cmp(one) == 0 {
				break
			}
			t.Exp(t, two, p)
		}

		if m == 0 {
			return x, nil
		}

		gs.Lsh(one, uint(r-m-1))
		gs.Exp(g, gs, p)

		g.Mul(gs, gs)
		g.Mod(g, p)
		x.Mul(x, gs)
		x.Mod(x, p)
		b.Mul(b, g)
		b.Mod(b, p)
		r = m
	}
}
