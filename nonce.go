// Copyright (c) 2015-2020 The Decred developers
// Copyright 2013-2014 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package secp256k1

// References:
//   [RFC6979]: Deterministic Usage of the Digital Signature Algorithm (DSA)
//     and Elliptic Curve Digital Signature Algorithm (ECDSA)
//     https://tools.ietf.org/html/rfc6979

import (
	"crypto/hmac"
	"hash"
	"math/big"
)

// rfc6979Nonce derives the deterministic per-signature nonce k for private
// key d and hashed message h, following RFC 6979 §3.2 steps a-h, with the
// optional extraEntropy appended to the initial HMAC input (RFC 6979 §3.6,
// used to retry with a fresh nonce without reusing randomness or increasing
// attacker-visible state). newHash constructs the underlying hash function
// used both as H in RFC 6979 and as the HMAC hash.
func rfc6979Nonce(ec *EC, d *big.Int, h []byte, newHash func() hash.Hash, extraEntropy []byte) (*big.Int, error) {
	qlen := ec.n.BitLen()
	rolen := (qlen + 7) / 8

	// bits2octets(bits2int(h) mod n)
	hInt := bits2int(h, qlen)
	hInt.Mod(hInt, ec.n)
	bh := int2octets(hInt, rolen)

	x := int2octets(d, rolen)

	hashSize := newHash().Size()

	// Step b, c: V = 0x01 0x01 ... ; K = 0x00 0x00 ...
	v := make([]byte, hashSize)
	for i := range v {
		v[i] = 0x01
	}
	k := make([]byte, hashSize)

	// Step d: K = HMAC_K(V || 0x00 || int2octets(x) || bits2octets(h) || extraEntropy)
	mac := hmac.New(newHash, k)
	mac.Write(v)
	mac.Write([]byte{0x00})
	mac.Write(x)
	mac.Write(bh)
	mac.Write(extraEntropy)
	k = mac.Sum(nil)

	// Step e: V = HMAC_K(V)
	mac = hmac.New(newHash, k)
	mac.Write(v)
	v = mac.Sum(nil)

	// Step f: K = HMAC_K(V || 0x01 || int2octets(x) || bits2octets(h) || extraEntropy)
	mac = hmac.New(newHash, k)
	mac.Write(v)
	mac.Write([]byte{0x01})
	mac.Write(x)
	mac.Write(bh)
	mac.Write(extraEntropy)
	k = mac.Sum(nil)

	// Step g: V = HMAC_K(V)
	mac = hmac.New(newHash, k)
	mac.Write(v)
	v = mac.Sum(nil)

	// Step h: generate candidate k values until one lands in [1, n-1].
	for {
		var t []byte
		for len(t) < rolen {
			mac = hmac.New(newHash, k)
			mac.Write(v)
			v = mac.Sum(nil)
			t = append(t, v...)
		}

		candidate := bits2int(t, qlen)
		if candidate.Sign() > 0 && candidate.Cmp(ec.n) < 0 {
			return candidate, nil
		}

		mac = hmac.New(newHash, k)
		mac.Write(v)
		mac.Write([]byte{0x00})
		k = mac.Sum(nil)

		mac = hmac.New(newHash, k)
		mac.Write(v)
		v = mac.Sum(nil)
	}
}

// bits2int converts a byte string to an integer per RFC 6979 §2.3.2,
// truncating (not reducing modulo n) to the leftmost qlen bits when the
// input is longer than qlen bits.
func bits2int(b []byte, qlen int) *big.Int {
	x := new(big.Int).SetBytes(b)
	blen := len(b) * 8
	if blen > qlen {
		x.Rsh(x, uint(blen-qlen))
	}
	return x
}

// int2octets converts an integer to a fixed-width big-endian byte string of
// length rolen, per RFC 6979 §2.3.3, left-padding with zeros or truncating
// from the left as needed.
func int2octets(x *big.Int, rolen int) []byte {
	b := x.Bytes()
	if len(b) == rolen {
		return b
	}
	out := make([]byte, rolen)
	if len(b) > rolen {
		copy(out, b[len(b)-rolen:])
		return out
	}
	copy(out[rolen-len(b):], b)
	return out
}
