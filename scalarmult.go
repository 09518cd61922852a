// Copyright (c) 2015-2020 The Decred developers
// Copyright 2013-2014 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package secp256k1

import "math/big"

// PointMult computes k*Q using double-and-add in Jacobian coordinates,
// peeling bits from the least significant to the most significant. Scalar k
// may be negative or exceed n; it is not reduced modulo n. The loop runs over
// the bits of |k|, and a negative k yields the opposite of |k|*Q.
//
// This is not constant time: both the number of iterations and which branch
// executes depend on k's bit pattern, matching the source library, which
// does not attempt to defend against timing side channels.
func PointMult(ec *EC, k *big.Int, q Point) (Point, error) {
	if err := ec.requireOnCurve(q); err != nil {
		return Point{}, err
	}
	if k.Sign() == 0 || q.IsInfinity() {
		return Infinity(), nil
	}

	kAbs := new(big.Int).Abs(k)
	result := jacobianInfinity()
	addend := jacobianFromAffine(q)

	for i := 0; i < kAbs.BitLen(); i++ {
		if kAbs.Bit(i) == 1 {
			result = ec.addJacobian(result, addend)
		}
		addend = ec.doubleJacobian(addend)
	}

	r := ec.affineFromJacobian(result)
	if k.Sign() < 0 {
		neg, err := ec.Opposite(r)
		if err != nil {
			return Point{}, err
		}
		return neg, nil
	}
	return r, nil
}

// DblScalarMult computes u*Q + v*P using Shamir's trick: a single
// left-to-right pass over the bits of u and v that folds the two scalar
// multiplications into one, reusing each doubling for both scalars instead
// of computing u*Q and v*P separately and adding the results.
func DblScalarMult(ec *EC, u *big.Int, q Point, v *big.Int, p Point) (Point, error) {
	if err := ec.requireOnCurve(q); err != nil {
		return Point{}, err
	}
	if err := ec.requireOnCurve(p); err != nil {
		return Point{}, err
	}

	if u.Sign() == 0 || q.IsInfinity() {
		return PointMult(ec, v, p)
	}
	if v.Sign() == 0 || p.IsInfinity() {
		return PointMult(ec, u, q)
	}

	qj := jacobianFromAffine(q)
	pj := jacobianFromAffine(p)
	sumj := ec.addJacobian(qj, pj)

	bitLen := u.BitLen()
	if vLen := v.BitLen(); vLen > bitLen {
		bitLen = vLen
	}

	result := jacobianInfinity()
	for i := bitLen - 1; i >= 0; i-- {
		result = ec.doubleJacobian(result)
		ub := u.Bit(i)
		vb := v.Bit(i)
		switch {
		case ub == 1 && vb == 1:
			result = ec.addJacobian(result, sumj)
		case ub == 1:
			result = ec.addJacobian(result, qj)
		case vb == 1:
			result = ec.addJacobian(result, pj)
		}
	}

	return ec.affineFromJacobian(result), nil
}
