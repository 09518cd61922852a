// Copyright (c) 2015-2020 The Decred developers
// Copyright 2013-2014 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package secp256k1

// References:
//   [SEC2]: Recommended Elliptic Curve Domain Parameters, Certicom Research
//     https://www.secg.org/sec2-v2.pdf

import (
	"math/big"
	"sync"
)

var (
	secp256k1Once  sync.Once
	secp256k1Curve *EC

	secp112r2Once  sync.Once
	secp112r2Curve *EC

	lowCardOnce   sync.Once
	lowCardCurves []*EC
)

func hexInt(s string) *big.Int {
	n, ok := new(big.Int).SetString(s, 16)
	if !ok {
		panic("secp256k1: invalid hex constant " + s)
	}
	return n
}

// Secp256k1 lazily builds and caches the standard secp256k1 domain
// parameters [SEC2].
func Secp256k1() *EC {
	secp256k1Once.Do(func() {
		p := hexInt("FFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFEFFFFFC2F")
		a := big.NewInt(0)
		b := big.NewInt(7)
		g := NewPoint(
			hexInt("79BE667EF9DCBBAC55A06295CE870B07029BFCDB2DCE28D959F2815B16F81798"),
			hexInt("483ADA7726A3C4655DA4FBFC0E1108A8FD17B448A68554199C47D08FFB10D4B8"),
		)
		n := hexInt("FFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFEBAAEDCE6AF48A03BBFD25E8CD0364141")
		h := big.NewInt(1)

		ec, err := NewEC(p, a, b, g, n, h, 128, true)
		if err != nil {
			panic("secp256k1: failed to build standard curve: " + err.Error())
		}
		secp256k1Curve = ec
	})
	return secp256k1Curve
}

// Secp112r2 lazily builds and caches the SEC 2 secp112r2 domain parameters,
// a small cofactor-4 curve useful for exercising the cofactor-dependent
// branches of public key recovery.
func Secp112r2() *EC {
	secp112r2Once.Do(func() {
		p := hexInt("DB7C2ABF62E35E668076BEAD208B")
		a := hexInt("6127C24C05F38A0AAAF65C0EF02C")
		b := hexInt("51DEF1815DB5ED74FCC34C85D709")
		g := NewPoint(
			hexInt("4BA30AB5E892B4E1649DD0928643"),
			hexInt("ADCD46F5882E3747DEF36E956E97"),
		)
		n := hexInt("36DF0AAFD8B8D7597CA10520D04B")
		h := big.NewInt(4)

		ec, err := NewEC(p, a, b, g, n, h, 0, true)
		if err != nil {
			panic("secp112r2: failed to build standard curve: " + err.Error())
		}
		secp112r2Curve = ec
	})
	return secp112r2Curve
}

// LowCardinalityCurves lazily builds and caches a handful of curves over
// tiny primes (11, 13, 17, 19), each with a generator of prime order large
// enough to be useful, suitable for an exhaustive sweep over every private
// key / nonce combination.
func LowCardinalityCurves() []*EC {
	lowCardOnce.Do(func() {
		for _, p := range []int64{11, 13, 17, 19} {
		search:
			for a := int64(0); a < p; a++ {
				for b := int64(0); b < p; b++ {
					if ec, ok := buildLowCardinalityCurve(p, a, b); ok {
						lowCardCurves = append(lowCardCurves, ec)
						break search
					}
				}
			}
		}
	})
	return lowCardCurves
}

// buildLowCardinalityCurve brute-force constructs a curve over the tiny
// prime p with coefficients a, b: it enumerates every affine point,
// determines the full group order by counting, factors out the largest
// prime divisor n as the intended subgroup order, clears the cofactor to
// find a generator of exactly that order, and hands the result to NewEC for
// validation.
func buildLowCardinalityCurve(p, a, b int64) (*EC, bool) {
	pBig := big.NewInt(p)
	aBig := big.NewInt(a)
	bBig := big.NewInt(b)

	if discriminantIsZero(aBig, bBig, pBig) {
		return nil, false
	}

	// A bootstrap curve used only to reach the unexported addAffine/y2
	// helpers while searching for a generator; it is never returned.
	bootstrap := &EC{p: pBig, a: aBig, b: bBig, pIsThreeModFour: isThreeModFour(pBig)}

	var points []Point
	for x := int64(0); x < p; x++ {
		xBig := big.NewInt(x)
		y2 := bootstrap.y2(xBig)
		if y2.Sign() == 0 {
			// A point with y = 0 would collide with the infinity sentinel;
			// skip curves that have one.
			return nil, false
		}
		if legendreSymbol(y2, pBig).Cmp(big.NewInt(1)) != 0 {
			continue
		}
		y, err := modSqrt(y2, pBig)
		if err != nil {
			continue
		}
		points = append(points, NewPoint(xBig, y))
		negY := new(big.Int).Sub(pBig, y)
		if negY.Cmp(y) != 0 {
			points = append(points, NewPoint(xBig, negY))
		}
	}

	order := int64(len(points) + 1) // +1 for infinity
	n := largestPrimeFactor(order)
	if n < 5 {
		return nil, false
	}
	h := order / n
	nBig := big.NewInt(n)
	hBig := big.NewInt(h)

	for _, candidate := range points {
		g := bootstrapScalarMult(bootstrap, hBig, candidate)
		if g.IsInfinity() {
			continue
		}
		if check := bootstrapScalarMult(bootstrap, nBig, g); !check.IsInfinity() {
			continue
		}

		ec, err := NewEC(pBig, aBig, bBig, g, nBig, hBig, 0, false)
		if err != nil {
			continue
		}
		return ec, true
	}
	return nil, false
}

// bootstrapScalarMult computes k*Q via double-and-add using only the
// affine addition formula, for use before an EC has been fully validated.
func bootstrapScalarMult(ec *EC, k *big.Int, q Point) Point {
	if k.Sign() == 0 {
		return Infinity()
	}
	result := Infinity()
	addend := q
	for i := 0; i < k.BitLen(); i++ {
		if k.Bit(i) == 1 {
			result = ec.addAffine(result, addend)
		}
		addend = ec.addAffine(addend, addend)
	}
	return result
}

// largestPrimeFactor returns the largest prime factor of n for small n.
func largestPrimeFactor(n int64) int64 {
	largest := int64(1)
	for n%2 == 0 {
		largest = 2
		n /= 2
	}
	for f := int64(3); f*f <= n; f += 2 {
		for n%f == 0 {
			largest = f
			n /= f
		}
	}
	if n > 1 {
		largest = n
	}
	return largest
}
