// Copyright (c) 2015-2020 The Decred developers
// Copyright 2013-2014 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package secp256k1

// References:
//   [GECC]: Guide to Elliptic Curve Cryptography (Hankerson, Menezes, Vanstone)
//   [SEC1]: Elliptic Curve Cryptography, Certicom Research, Standards for
//     Efficient Cryptography (https://secg.org/sec1-v2.pdf)
//   [RFC6979]: Deterministic Usage of the Digital Signature Algorithm (DSA)
//     and Elliptic Curve Digital Signature Algorithm (ECDSA)

import (
	"crypto"
	"errors"
	"math/big"
)

// Signature is an ECDSA signature, a pair of integers (r, s) each reduced
// modulo the curve's group order n.
type Signature struct {
	R *big.Int
	S *big.Int
}

// NewSignature instantiates a new signature from the provided r and s
// values.
func NewSignature(r, s *big.Int) *Signature {
	return &Signature{R: new(big.Int).Set(r), S: new(big.Int).Set(s)}
}

// hashToInt reduces a digest to an integer per bits2int (RFC 6979 §2.3.2),
// truncating to the bit length of the group order when the digest is
// longer, then reducing modulo n. This is the same truncate-then-reduce
// step used by FIPS 186 to turn a hash output into an ECDSA message
// representative.
func hashToInt(ec *EC, digest []byte) *big.Int {
	z := bits2int(digest, ec.n.BitLen())
	z.Mod(z, ec.n)
	return z
}

// sign is the low-level ECDSA signer (GECC algorithm 4.29): given a nonce k
// already derived by the caller, it computes r = (k*G).x mod n and
// s = k^-1*(z + r*d) mod n, surfacing ErrNonceRetry when either comes out
// zero so the caller can retry with a fresh nonce. A private key d outside
// [1, n-1] is rejected with ErrInvalidInput.
func sign(ec *EC, d *big.Int, z, k *big.Int) (*Signature, error) {
	if d.Sign() <= 0 || d.Cmp(ec.n) >= 0 {
		return nil, signatureError(ErrInvalidInput, "private key out of range [1, n-1]")
	}
	kG, err := PointMult(ec, k, ec.g)
	if err != nil {
		return nil, err
	}
	r := new(big.Int).Mod(kG.X, ec.n)
	if r.Sign() == 0 {
		return nil, signatureError(ErrNonceRetry, "nonce produced r = 0")
	}

	kInv, err := modInv(k, ec.n)
	if err != nil {
		return nil, err
	}

	s := new(big.Int).Mul(r, d)
	s.Add(s, z)
	s.Mul(s, kInv)
	s.Mod(s, ec.n)
	if s.Sign() == 0 {
		return nil, signatureError(ErrNonceRetry, "nonce produced s = 0")
	}

	return NewSignature(r, s), nil
}

// Sign generates a deterministic ECDSA signature for msg under private
// scalar d on curve ec, using hashFn both to hash msg and to drive the
// RFC 6979 nonce derivation. Following RFC 6979 §3.2's retry provision, if
// the derived nonce yields r = 0 or s = 0 the routine retries with
// incrementing extra entropy; this is exceptionally unlikely for any
// cryptographically sized curve but is implemented to keep the caller-
// visible contract total.
func Sign(ec *EC, hashFn crypto.Hash, msg []byte, d *big.Int) (*Signature, error) {
	h := hashFn.New()
	h.Write(msg)
	return signDigest(ec, hashFn, h.Sum(nil), d)
}

// signDigest runs the RFC 6979 nonce-retry loop over an already-hashed
// digest, used both by Sign (which hashes msg itself) and by the
// crypto.Signer adaptor in sign.go (which receives a pre-hashed digest from
// its caller).
func signDigest(ec *EC, hashFn crypto.Hash, digest []byte, d *big.Int) (*Signature, error) {
	z := hashToInt(ec, digest)

	var extraEntropy []byte
	for attempt := 0; ; attempt++ {
		if attempt > 0 {
			extraEntropy = make([]byte, 4)
			big.NewInt(int64(attempt)).FillBytes(extraEntropy)
		}
		k, err := rfc6979Nonce(ec, d, digest, hashFn.New, extraEntropy)
		if err != nil {
			return nil, err
		}
		sig, err := sign(ec, d, z, k)
		if err == nil {
			return sig, nil
		}
		if !errors.Is(err, ErrNonceRetry) {
			return nil, err
		}
	}
}

// verify performs the core ECDSA verification equation: it recomputes
// R = u1*G + u2*Q via Shamir's trick and reports whether R.x mod n equals
// the signature's r value.
func verify(ec *EC, q Point, z *big.Int, sig *Signature) (bool, error) {
	if sig.R.Sign() <= 0 || sig.R.Cmp(ec.n) >= 0 {
		return false, nil
	}
	if sig.S.Sign() <= 0 || sig.S.Cmp(ec.n) >= 0 {
		return false, nil
	}

	sInv, err := modInv(sig.S, ec.n)
	if err != nil {
		return false, err
	}
	u1 := new(big.Int).Mul(z, sInv)
	u1.Mod(u1, ec.n)
	u2 := new(big.Int).Mul(sig.R, sInv)
	u2.Mod(u2, ec.n)

	r, err := DblScalarMult(ec, u1, ec.g, u2, q)
	if err != nil {
		return false, err
	}
	if r.IsInfinity() {
		return false, nil
	}

	v := new(big.Int).Mod(r.X, ec.n)
	return v.Cmp(sig.R) == 0, nil
}

// Verify reports whether sig is a valid ECDSA signature of msg under public
// key q on curve ec, using hashFn to hash msg. It returns false for any
// malformed input (out-of-range r/s, public key not on the curve, public
// key at infinity) rather than distinguishing the failure reason; callers
// that need the reason should use VerifyStrict.
func Verify(ec *EC, hashFn crypto.Hash, msg []byte, q Point, sig *Signature) bool {
	err := VerifyStrict(ec, hashFn, msg, q, sig)
	return err == nil
}

// VerifyStrict is Verify's typed-error counterpart: it reports the specific
// reason a signature fails to verify instead of collapsing every failure
// into false.
func VerifyStrict(ec *EC, hashFn crypto.Hash, msg []byte, q Point, sig *Signature) error {
	if q.IsInfinity() {
		return signatureError(ErrInvalidInput, "public key is the point at infinity")
	}
	if err := ec.requireOnCurve(q); err != nil {
		return err
	}
	if sig.R.Sign() <= 0 || sig.R.Cmp(ec.n) >= 0 {
		return signatureError(ErrInvalidInput, "signature r out of range [1, n-1]")
	}
	if sig.S.Sign() <= 0 || sig.S.Cmp(ec.n) >= 0 {
		return signatureError(ErrInvalidInput, "signature s out of range [1, n-1]")
	}

	h := hashFn.New()
	h.Write(msg)
	z := hashToInt(ec, h.Sum(nil))

	ok, err := verify(ec, q, z, sig)
	if err != nil {
		return err
	}
	if !ok {
		return signatureError(ErrInvalidInput, "signature does not verify")
	}
	return nil
}

// RecoverPublicKeys returns every candidate public key that both satisfies
// SEC 1 §4.1.6's recovery relation for sig over msg and verifies against
// it. The enumeration follows SEC 1 literally: for each j in [0, h], set
// x = r + j*n and recover the (up to) two points with that x coordinate,
// one per y-parity; every on-curve, non-infinity, verifying candidate is
// returned, so the caller sees the full ambiguity set (typically two
// candidates on Secp256k1, where r + n almost always exceeds p; curves with
// a larger cofactor, such as Secp112r2, can yield more).
func RecoverPublicKeys(ec *EC, hashFn crypto.Hash, msg []byte, sig *Signature) ([]Point, error) {
	if sig.R.Sign() <= 0 || sig.R.Cmp(ec.n) >= 0 {
		return nil, signatureError(ErrInvalidInput, "signature r out of range [1, n-1]")
	}
	if sig.S.Sign() <= 0 || sig.S.Cmp(ec.n) >= 0 {
		return nil, signatureError(ErrInvalidInput, "signature s out of range [1, n-1]")
	}

	h := hashFn.New()
	h.Write(msg)
	z := hashToInt(ec, h.Sum(nil))

	rInv, err := modInv(sig.R, ec.n)
	if err != nil {
		return nil, err
	}

	var candidates []Point
	seen := make(map[string]bool)
	hMax := ec.h.Int64()
	for j := int64(0); j <= hMax; j++ {
		x := new(big.Int).Mul(big.NewInt(j), ec.n)
		x.Add(x, sig.R)
		if x.Cmp(ec.p) >= 0 {
			continue
		}

		for _, wantOdd := range []bool{false, true} {
			y, err := ec.YOdd(x, wantOdd)
			if err != nil {
				continue
			}
			r := NewPoint(x, y)

			// u1 = -z*r^-1 mod n; u2 = s*r^-1 mod n; Q = u1*G + u2*R
			u1 := new(big.Int).Mul(z, rInv)
			u1.Neg(u1)
			u1.Mod(u1, ec.n)
			u2 := new(big.Int).Mul(sig.S, rInv)
			u2.Mod(u2, ec.n)

			q, err := DblScalarMult(ec, u1, ec.g, u2, r)
			if err != nil || q.IsInfinity() {
				continue
			}
			ok, err := verify(ec, q, z, sig)
			if err != nil || !ok {
				continue
			}

			key := q.X.String() + "," + q.Y.String()
			if !seen[key] {
				seen[key] = true
				candidates = append(candidates, q)
			}
		}
	}

	return candidates, nil
}
