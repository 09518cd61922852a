// Copyright (c) 2013-2014 The btcsuite developers
// Copyright (c) 2015-2022 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

/*
Package secp256k1 implements a general short-Weierstrass elliptic curve
engine and an ECDSA signature engine in pure Go.

Unlike a package hard-coded to a single curve, EC is parameterized by
arbitrary domain parameters (p, a, b, G, n, h, t) validated at construction
time per SEC 1 §3.1.1.2.1, after which it is immutable and safe for
concurrent use. Secp256k1 and Secp112r2 provide ready-made, well-known
instantiations; LowCardinalityCurves provides tiny curves useful for
exhaustive testing.

An overview of the features provided by this package:

  - Curve-parameter validation: primality, discriminant, generator
    membership, Hasse bound, cofactor, and MOV/anomalous-curve checks
  - Elliptic curve operations in Jacobian projective coordinates
  - Point addition and doubling, both in Jacobian coordinates (for scalar
    multiplication) and affine coordinates (for single additions)
  - Scalar multiplication with an arbitrary point (double-and-add)
  - Joint scalar multiplication via Shamir's trick, as used by ECDSA
    verification
  - y-coordinate recovery from an x coordinate, with parity, magnitude, and
    quadratic-residue tie-break conventions
  - Deterministic nonce generation via RFC 6979
  - Minimal SEC 1 octet-string and DER (r, s) encoding helpers

This package also provides data structures and functions necessary to
produce and verify deterministic ECDSA signatures in accordance with
RFC 6979, as well as public key recovery from a signature and message per
SEC 1 §4.1.6. Signing does not normalize s to the lower half of [1, n-1];
verification accepts either s or n-s.

Constant-time execution is explicitly not a goal of this package: the
scalar multiplication routines use data-dependent branching, matching the
library this was adapted from. Callers with side-channel concerns should
not use this package for operations on secret scalars in an adversarial
environment.
*/
package secp256k1
