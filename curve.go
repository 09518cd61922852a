// Copyright (c) 2015-2020 The Decred developers
// Copyright 2013-2014 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package secp256k1

// References:
//   [SECG]: Recommended Elliptic Curve Domain Parameters
//     https://www.secg.org/sec2-v2.pdf
//   [GECC]: Guide to Elliptic Curve Cryptography (Hankerson, Menezes, Vanstone)

// Scalar multiplication is performed using Jacobian coordinates.  For a given
// (x, y) position on the curve, the Jacobian coordinates are (x1, y1, z1)
// where x = x1/z1^2 and y = y1/z1^3. Staying within the transform for the
// whole calculation avoids a modular inversion per group operation. The
// exported single addition, EC.Add, uses the affine formulas instead.

import (
	"math/big"
)

// requiredBitsForSecurityLevel maps a SEC 1 v.2 target security level in
// bits to the field bit length it requires.
var requiredBitsForSecurityLevel = map[int]int{
	80:  192,
	96:  192,
	112: 224,
	128: 256,
	192: 384,
	256: 521,
}

// EC is a validated instantiation of a short-Weierstrass curve
//
//	y^2 = x^3 + a*x + b (mod p)
//
// over a prime field.  It is immutable after construction: once NewEC
// returns successfully, every exported method is safe to call concurrently
// from multiple goroutines without additional synchronization, because no
// field is ever mutated again.
type EC struct {
	p *big.Int
	a *big.Int
	b *big.Int
	g Point
	n *big.Int
	h *big.Int
	t int

	pBitLen         int
	byteSize        int
	pIsThreeModFour bool
}

// P returns the field prime.
func (ec *EC) P() *big.Int { return new(big.Int).Set(ec.p) }

// A returns the curve coefficient a.
func (ec *EC) A() *big.Int { return new(big.Int).Set(ec.a) }

// B returns the curve coefficient b.
func (ec *EC) B() *big.Int { return new(big.Int).Set(ec.b) }

// G returns the generator point.
func (ec *EC) G() Point { return NewPoint(ec.g.X, ec.g.Y) }

// N returns the prime order of the generator.
func (ec *EC) N() *big.Int { return new(big.Int).Set(ec.n) }

// H returns the cofactor.
func (ec *EC) H() *big.Int { return new(big.Int).Set(ec.h) }

// ByteSize returns ceil(bitlen(p)/8), the width used to serialize a field
// element or coordinate.
func (ec *EC) ByteSize() int { return ec.byteSize }

// NewEC validates the SEC 1 §3.1.1.2.1 domain parameters (p, a, b, G, n, h)
// and, when allChecks is true, additionally validates the Hasse bound on n,
// the field-size and cofactor limits for the target security level, and the
// MOV guard (p^i mod n != 1).  The anomalous-curve check n != p runs
// regardless of allChecks.  t is an optional target security level in bits
// (one of 80, 96, 112, 128, 192, 256), or 0 if unspecified.
func NewEC(p, a, b *big.Int, g Point, n, h *big.Int, t int, allChecks bool) (*EC, error) {
	// 1. p must be an odd probable prime (Fermat base 2).
	if p.Bit(0) == 0 {
		return nil, signatureError(ErrValidationError, "p is not odd")
	}
	if !fermatProbablyPrime(p) {
		return nil, signatureError(ErrValidationError, "p is not prime")
	}

	pBitLen := p.BitLen()
	if t != 0 && allChecks {
		required, ok := requiredBitsForSecurityLevel[t]
		if !ok {
			return nil, signatureError(ErrWeakCurveWarning, "unsupported target security level")
		}
		if pBitLen != required {
			return nil, signatureError(ErrWeakCurveWarning, "field bit length does not match required security level")
		}
	}

	// 2. a, b must be integers in [0, p-1].
	if a.Sign() < 0 || a.Cmp(p) >= 0 {
		return nil, signatureError(ErrValidationError, "a out of range [0, p-1]")
	}
	if b.Sign() < 0 || b.Cmp(p) >= 0 {
		return nil, signatureError(ErrValidationError, "b out of range [0, p-1]")
	}

	// 3. discriminant 4a^3 + 27b^2 != 0 (mod p).
	if discriminantIsZero(a, b, p) {
		return nil, signatureError(ErrValidationError, "zero discriminant")
	}

	ec := &EC{
		p:               new(big.Int).Set(p),
		a:               new(big.Int).Set(a),
		b:               new(big.Int).Set(b),
		n:               new(big.Int).Set(n),
		h:               new(big.Int).Set(h),
		t:               t,
		pBitLen:         pBitLen,
		byteSize:        (pBitLen + 7) / 8,
		pIsThreeModFour: isThreeModFour(p),
	}

	// 4. G must be a valid (x, y) pair on the curve.
	onCurve, err := ec.IsOnCurve(g)
	if err != nil {
		return nil, err
	}
	if !onCurve {
		return nil, signatureError(ErrValidationError, "generator is not on the curve")
	}
	ec.g = NewPoint(g.X, g.Y)

	// 5. n must be a probable prime, and (with allChecks) satisfy Hasse's bound.
	if n.Cmp(big.NewInt(2)) < 0 || (n.Cmp(big.NewInt(2)) > 0 && !fermatProbablyPrime(n)) {
		return nil, signatureError(ErrValidationError, "n is not prime")
	}
	if allChecks {
		delta := isqrt(new(big.Int).Mul(big.NewInt(4), p)) // floor(2*sqrt(p))
		lower := new(big.Int).Add(p, big.NewInt(1))
		lower.Sub(lower, delta)
		upper := new(big.Int).Add(p, big.NewInt(1))
		upper.Add(upper, delta)
		if n.Cmp(lower) < 0 || n.Cmp(upper) > 0 {
			return nil, signatureError(ErrWeakCurveWarning, "n violates the Hasse bound")
		}
	}

	// 6. h must equal floor((sqrt(p)+1)^2 / n).
	sqrtP := isqrt(p)
	sqrtPPlus1 := new(big.Int).Add(sqrtP, big.NewInt(1))
	expectedH := new(big.Int).Mul(sqrtPPlus1, sqrtPPlus1)
	expectedH.Div(expectedH, n)
	if h.Cmp(expectedH) != 0 {
		return nil, signatureError(ErrValidationError, "cofactor does not match expected value")
	}
	if allChecks && t != 0 {
		maxH := new(big.Int).Exp(big.NewInt(2), big.NewInt(int64(t/8)), nil)
		if h.Cmp(maxH) > 0 {
			return nil, signatureError(ErrWeakCurveWarning, "cofactor too large for required security level")
		}
	}

	// 7. (n-1)*G + G must equal infinity (avoids the tautological n*G check).
	nMinus1G, err := PointMult(ec, new(big.Int).Sub(n, big.NewInt(1)), ec.g)
	if err != nil {
		return nil, err
	}
	inf, err := ec.Add(nMinus1G, ec.g)
	if err != nil {
		return nil, err
	}
	if !inf.IsInfinity() {
		return nil, signatureError(ErrValidationError, "n is not the group order")
	}

	// 8. n != p, and the MOV/anomalous-curve guard.
	if n.Cmp(p) == 0 {
		return nil, signatureError(ErrWeakCurveWarning, "n == p: weak curve")
	}
	if allChecks {
		for i := 1; i < 100; i++ {
			if new(big.Int).Exp(p, big.NewInt(int64(i)), n).Cmp(big.NewInt(1)) == 0 {
				return nil, signatureError(ErrWeakCurveWarning, "weak curve: MOV condition triggered")
			}
		}
	}

	return ec, nil
}

// fermatProbablyPrime reports whether n passes the Fermat base-2 primality
// test (2^(n-1) == 1 mod n).  This is a probabilistic test, matching the
// source's stated trust model.
func fermatProbablyPrime(n *big.Int) bool {
	if n.Cmp(big.NewInt(2)) < 0 {
		return false
	}
	if n.Cmp(big.NewInt(2)) == 0 {
		return true
	}
	exp := new(big.Int).Sub(n, big.NewInt(1))
	return new(big.Int).Exp(big.NewInt(2), exp, n).Cmp(big.NewInt(1)) == 0
}

// discriminantIsZero reports whether 4a^3 + 27b^2 ≡ 0 (mod p).
func discriminantIsZero(a, b, p *big.Int) bool {
	a3 := new(big.Int).Exp(a, big.NewInt(3), nil)
	a3.Mul(a3, big.NewInt(4))
	b2 := new(big.Int).Mul(b, b)
	b2.Mul(b2, big.NewInt(27))
	d := new(big.Int).Add(a3, b2)
	d.Mod(d, p)
	return d.Sign() == 0
}

// isqrt returns floor(sqrt(n)) for n >= 0.
func isqrt(n *big.Int) *big.Int {
	return new(big.Int).Sqrt(n)
}

// Opposite returns -Q, i.e. (x, p-y); infinity maps to itself.
func (ec *EC) Opposite(q Point) (Point, error) {
	onCurve, err := ec.IsOnCurve(q)
	if err != nil {
		return Point{}, err
	}
	if !onCurve {
		return Point{}, signatureError(ErrNotOnCurve, "point not on curve")
	}
	if q.IsInfinity() {
		return q, nil
	}
	negY := new(big.Int).Sub(ec.p, q.Y)
	return NewPoint(q.X, negY), nil
}

// y2 computes x^3 + a*x + b mod p without validating x's range.
func (ec *EC) y2(x *big.Int) *big.Int {
	r := new(big.Int).Mul(x, x)
	r.Add(r, ec.a)
	r.Mul(r, x)
	r.Add(r, ec.b)
	r.Mod(r, ec.p)
	return r
}

// IsOnCurve reports whether Q is a valid point: either the canonical
// infinity sentinel, or an affine point satisfying y^2 = x^3 + a*x + b.
func (ec *EC) IsOnCurve(q Point) (bool, error) {
	if q.X == nil || q.Y == nil {
		return false, signatureError(ErrTypeMismatch, "point must have both coordinates set")
	}
	if q.Y.Sign() == 0 {
		return true, nil
	}
	if q.Y.Sign() <= 0 || q.Y.Cmp(ec.p) >= 0 {
		return false, signatureError(ErrInvalidInput, "y-coordinate not in (0, p)")
	}
	lhs := new(big.Int).Mul(q.Y, q.Y)
	lhs.Mod(lhs, ec.p)
	return ec.y2(q.X).Cmp(lhs) == 0, nil
}

// requireOnCurve returns ErrNotOnCurve unless Q is a valid point on the
// curve.
func (ec *EC) requireOnCurve(q Point) error {
	onCurve, err := ec.IsOnCurve(q)
	if err != nil {
		return err
	}
	if !onCurve {
		return signatureError(ErrNotOnCurve, "point not on curve")
	}
	return nil
}

// Y returns a square root of x^3 + a*x + b mod p for the given x, with no
// particular tie-break between the two roots.
func (ec *EC) Y(x *big.Int) (*big.Int, error) {
	if x.Sign() < 0 || x.Cmp(ec.p) >= 0 {
		return nil, signatureError(ErrInvalidInput, "x-coordinate not in [0, p-1]")
	}
	return modSqrt(ec.y2(x), ec.p)
}

// YOdd returns the y coordinate for x whose parity matches wantOdd.
func (ec *EC) YOdd(x *big.Int, wantOdd bool) (*big.Int, error) {
	root, err := ec.Y(x)
	if err != nil {
		return nil, err
	}
	isOdd := root.Bit(0) == 1
	if isOdd == wantOdd {
		return root, nil
	}
	return new(big.Int).Sub(ec.p, root), nil
}

// YHigh returns the y coordinate for x whose magnitude (relative to p/2)
// matches wantHigh.
func (ec *EC) YHigh(x *big.Int, wantHigh bool) (*big.Int, error) {
	root, err := ec.Y(x)
	if err != nil {
		return nil, err
	}
	half := new(big.Int).Rsh(ec.p, 1)
	isHigh := root.Cmp(half) > 0
	if isHigh == wantHigh {
		return root, nil
	}
	return new(big.Int).Sub(ec.p, root), nil
}

// YQuadraticResidue returns the y coordinate for x whose Legendre symbol
// matches wantQR (true = quadratic residue).  It requires p ≡ 3 (mod 4).
func (ec *EC) YQuadraticResidue(x *big.Int, wantQR bool) (*big.Int, error) {
	if !ec.pIsThreeModFour {
		return nil, signatureError(ErrUnsupportedPrime, "YQuadraticResidue requires p congruent to 3 mod 4")
	}
	root, err := ec.Y(x)
	if err != nil {
		return nil, err
	}
	ls := legendreSymbol(root, ec.p)
	isQR := ls.Cmp(big.NewInt(1)) == 0
	if isQR == wantQR {
		return root, nil
	}
	return new(big.Int).Sub(ec.p, root), nil
}

// Add returns P + Q using the classical affine lambda formulas; scalar
// multiplication uses the Jacobian formulas below for speed, and both paths
// agree on the affine result.
func (ec *EC) Add(p, q Point) (Point, error) {
	if err := ec.requireOnCurve(p); err != nil {
		return Point{}, err
	}
	if err := ec.requireOnCurve(q); err != nil {
		return Point{}, err
	}
	return ec.addAffine(p, q), nil
}

// addAffine adds two points already known to be on the curve.
func (ec *EC) addAffine(q, r Point) Point {
	if r.IsInfinity() {
		return q
	}
	if q.IsInfinity() {
		return r
	}

	p := ec.p
	var lambda *big.Int
	if r.X.Cmp(q.X) == 0 {
		if r.Y.Cmp(q.Y) == 0 {
			// Doubling: lambda = (3x^2 + a) / 2y.
			num := new(big.Int).Mul(q.X, q.X)
			num.Mul(num, big.NewInt(3))
			num.Add(num, ec.a)
			den := new(big.Int).Lsh(q.Y, 1)
			denInv := new(big.Int).ModInverse(den, p)
			lambda = new(big.Int).Mul(num, denInv)
			lambda.Mod(lambda, p)
		} else {
			// Opposite points: the sum is infinity.
			return Infinity()
		}
	} else {
		num := new(big.Int).Sub(r.Y, q.Y)
		den := new(big.Int).Sub(r.X, q.X)
		den.Mod(den, p)
		denInv := new(big.Int).ModInverse(den, p)
		lambda = new(big.Int).Mul(num, denInv)
		lambda.Mod(lambda, p)
	}

	x := new(big.Int).Mul(lambda, lambda)
	x.Sub(x, q.X)
	x.Sub(x, r.X)
	x.Mod(x, p)

	y := new(big.Int).Sub(q.X, x)
	y.Mul(y, lambda)
	y.Sub(y, q.Y)
	y.Mod(y, p)

	return NewPoint(x, y)
}

// addJacobian adds two Jacobian points assumed to be on the curve, following
// the same case-split shape as the source's optimized implementation: a
// shared-z fast path avoids redundant field multiplications relative to the
// fully generic addition formula below it.
func (ec *EC) addJacobian(q, r jacobianPoint) jacobianPoint {
	if q.isInfinity() {
		return r
	}
	if r.isInfinity() {
		return q
	}

	p := ec.p
	qz2 := new(big.Int).Mul(q.Z, q.Z)
	qz2.Mod(qz2, p)
	qz3 := new(big.Int).Mul(qz2, q.Z)
	qz3.Mod(qz3, p)
	rz2 := new(big.Int).Mul(r.Z, r.Z)
	rz2.Mod(rz2, p)
	rz3 := new(big.Int).Mul(rz2, r.Z)
	rz3.Mod(rz3, p)

	u1 := new(big.Int).Mul(q.X, rz2)
	u1.Mod(u1, p)
	u2 := new(big.Int).Mul(r.X, qz2)
	u2.Mod(u2, p)

	if u1.Cmp(u2) == 0 {
		s1 := new(big.Int).Mul(q.Y, rz3)
		s1.Mod(s1, p)
		s2 := new(big.Int).Mul(r.Y, qz3)
		s2.Mod(s2, p)
		if s1.Cmp(s2) == 0 {
			return ec.doubleJacobian(q)
		}
		return jacobianInfinity()
	}

	// w = Q.Y*R.Z^3 - R.Y*Q.Z^3
	t := new(big.Int).Mul(q.Y, rz3)
	t.Mod(t, p)
	u := new(big.Int).Mul(r.Y, qz3)
	u.Mod(u, p)
	w := new(big.Int).Sub(t, u)
	w.Mod(w, p)

	// v = Q.X*R.Z^2 - R.X*Q.Z^2
	v := new(big.Int).Sub(u1, u2)
	v.Mod(v, p)

	v2 := new(big.Int).Mul(v, v)
	v2.Mod(v2, p)
	v3 := new(big.Int).Mul(v2, v)
	v3.Mod(v3, p)
	u2v2 := new(big.Int).Mul(u2, v2)
	u2v2.Mod(u2v2, p)

	x3 := new(big.Int).Mul(w, w)
	x3.Sub(x3, v3)
	x3.Sub(x3, new(big.Int).Lsh(u2v2, 1))
	x3.Mod(x3, p)

	y3 := new(big.Int).Sub(u2v2, x3)
	y3.Mul(y3, w)
	uv3 := new(big.Int).Mul(u, v3)
	y3.Sub(y3, uv3)
	y3.Mod(y3, p)

	z3 := new(big.Int).Mul(v, q.Z)
	z3.Mul(z3, r.Z)
	z3.Mod(z3, p)

	return jacobianPoint{X: x3, Y: y3, Z: z3}
}

// doubleJacobian doubles a Jacobian point assumed to be on the curve.
func (ec *EC) doubleJacobian(q jacobianPoint) jacobianPoint {
	if q.isInfinity() || q.Y.Sign() == 0 {
		return jacobianInfinity()
	}
	p := ec.p

	// w = 3*X^2 + a*Z^4
	x2 := new(big.Int).Mul(q.X, q.X)
	w := new(big.Int).Mul(x2, big.NewInt(3))
	z2 := new(big.Int).Mul(q.Z, q.Z)
	z4 := new(big.Int).Mul(z2, z2)
	az4 := new(big.Int).Mul(ec.a, z4)
	w.Add(w, az4)
	w.Mod(w, p)

	// v = 4*X*Y^2
	y2 := new(big.Int).Mul(q.Y, q.Y)
	v := new(big.Int).Mul(q.X, y2)
	v.Lsh(v, 2)
	v.Mod(v, p)

	// X' = w^2 - 2*v
	x3 := new(big.Int).Mul(w, w)
	x3.Sub(x3, new(big.Int).Lsh(v, 1))
	x3.Mod(x3, p)

	// Y' = w*(v - X') - 8*Y^4
	y4 := new(big.Int).Mul(y2, y2)
	eightY4 := new(big.Int).Lsh(y4, 3)
	y3 := new(big.Int).Sub(v, x3)
	y3.Mul(y3, w)
	y3.Sub(y3, eightY4)
	y3.Mod(y3, p)

	// Z' = 2*Y*Z
	z3 := new(big.Int).Mul(q.Y, q.Z)
	z3.Lsh(z3, 1)
	z3.Mod(z3, p)

	return jacobianPoint{X: x3, Y: y3, Z: z3}
}

// affineFromJacobian converts a Jacobian point back to affine coordinates.
func (ec *EC) affineFromJacobian(q jacobianPoint) Point {
	if q.isInfinity() {
		return Infinity()
	}
	zInv := new(big.Int).ModInverse(q.Z, ec.p)
	zInv2 := new(big.Int).Mul(zInv, zInv)
	zInv2.Mod(zInv2, ec.p)
	zInv3 := new(big.Int).Mul(zInv2, zInv)
	zInv3.Mod(zInv3, ec.p)

	x := new(big.Int).Mul(q.X, zInv2)
	x.Mod(x, ec.p)
	y := new(big.Int).Mul(q.Y, zInv3)
	y.Mod(y, ec.p)
	return NewPoint(x, y)
}
