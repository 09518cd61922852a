// Copyright (c) 2015-2020 The Decred developers
// Copyright 2013-2014 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package secp256k1

import "math/big"

// Point is an affine point (x, y) on a short-Weierstrass curve over Fp.
//
// The point at infinity is represented canonically as (1, 0); any point
// with a zero y coordinate is treated as infinity regardless of x, matching
// the source library's sentinel (no finite point on a curve with b != 0 has
// y = 0).
type Point struct {
	X *big.Int
	Y *big.Int
}

// Infinity is the canonical point at infinity.
func Infinity() Point {
	return Point{X: big.NewInt(1), Y: big.NewInt(0)}
}

// NewPoint builds an affine point from two coordinates.
func NewPoint(x, y *big.Int) Point {
	return Point{X: new(big.Int).Set(x), Y: new(big.Int).Set(y)}
}

// IsInfinity reports whether p denotes the point at infinity.
func (p Point) IsInfinity() bool {
	return p.Y == nil || p.Y.Sign() == 0
}

// Equal reports whether p and q are the same point. Two infinities always
// compare equal regardless of their x coordinate.
func (p Point) Equal(q Point) bool {
	if p.IsInfinity() || q.IsInfinity() {
		return p.IsInfinity() == q.IsInfinity()
	}
	return p.X.Cmp(q.X) == 0 && p.Y.Cmp(q.Y) == 0
}

// jacobianPoint is a point (X, Y, Z) in Jacobian projective coordinates,
// representing the affine point (X/Z^2, Y/Z^3) when Z != 0. Infinity is
// Z == 0.
type jacobianPoint struct {
	X, Y, Z *big.Int
}

// jacobianInfinity returns the canonical Jacobian point at infinity.
func jacobianInfinity() jacobianPoint {
	return jacobianPoint{X: big.NewInt(1), Y: big.NewInt(1), Z: big.NewInt(0)}
}

// jacobianFromAffine lifts an affine point (assumed on-curve) into Jacobian
// coordinates with Z = 1, or the canonical Jacobian infinity when the
// affine point is infinity.
func jacobianFromAffine(p Point) jacobianPoint {
	if p.IsInfinity() {
		return jacobianInfinity()
	}
	return jacobianPoint{
		X: new(big.Int).Set(p.X),
		Y: new(big.Int).Set(p.Y),
		Z: big.NewInt(1),
	}
}

// isInfinity reports whether the Jacobian point is infinity (Z == 0).
func (j jacobianPoint) isInfinity() bool {
	return j.Z == nil || j.Z.Sign() == 0
}
