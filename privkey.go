// Copyright (c) 2013-2014 The btcsuite developers
// Copyright (c) 2015-2020 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package secp256k1

import (
	"crypto/rand"
	"math/big"
)

// PrivateKey is a scalar d in [1, n-1] together with the curve it is valid
// on, providing facilities for computing the associated public key and for
// producing ECDSA signatures.
type PrivateKey struct {
	ec  *EC
	key *big.Int
}

// NewPrivateKey instantiates a new private key on ec from a scalar encoded
// as a big integer.
func NewPrivateKey(ec *EC, key *big.Int) *PrivateKey {
	return &PrivateKey{ec: ec, key: new(big.Int).Set(key)}
}

// PrivKeyFromBytes returns a private key on ec based on the provided byte
// slice, which is interpreted as an unsigned big-endian integer and reduced
// modulo n.
//
// Note that passing a slice whose integer value is outside [0, n-1] is
// silently reduced; callers that need to reject out-of-range scalars should
// validate the input themselves before calling this function.
func PrivKeyFromBytes(ec *EC, privKeyBytes []byte) *PrivateKey {
	d := new(big.Int).SetBytes(privKeyBytes)
	d.Mod(d, ec.n)
	return NewPrivateKey(ec, d)
}

// GeneratePrivateKey returns a private key on ec that is suitable for use in
// ECDSA signing, drawn uniformly from [1, n-1] using crypto/rand.
func GeneratePrivateKey(ec *EC) (*PrivateKey, error) {
	one := big.NewInt(1)
	nMinus1 := new(big.Int).Sub(ec.n, one)
	for {
		d, err := rand.Int(rand.Reader, nMinus1)
		if err != nil {
			return nil, err
		}
		d.Add(d, one)
		return NewPrivateKey(ec, d), nil
	}
}

// PubKey computes and returns the public key corresponding to this private
// key.
func (p *PrivateKey) PubKey() (*PublicKey, error) {
	point, err := PointMult(p.ec, p.key, p.ec.g)
	if err != nil {
		return nil, err
	}
	return NewPublicKey(p.ec, point), nil
}

// D returns the scalar backing this private key.
func (p *PrivateKey) D() *big.Int { return new(big.Int).Set(p.key) }

// PrivKeyBytesLen defines the length in bytes of a serialized private key on
// a 256-bit curve; for other curves, use ec.ByteSize() directly.
const PrivKeyBytesLen = 32

// Serialize returns the private key as a big-endian binary-encoded number,
// padded to the curve's byte size.
func (p *PrivateKey) Serialize() []byte {
	return leftPadBytes(p.key.Bytes(), p.ec.ByteSize())
}

// PublicKey is a point on a curve together with the curve it belongs to.
type PublicKey struct {
	ec    *EC
	point Point
}

// NewPublicKey instantiates a new public key on ec from an affine point.
func NewPublicKey(ec *EC, point Point) *PublicKey {
	return &PublicKey{ec: ec, point: NewPoint(point.X, point.Y)}
}

// Point returns the affine point backing this public key.
func (p *PublicKey) Point() Point { return NewPoint(p.point.X, p.point.Y) }

// leftPadBytes left-pads b with zeros to size n, or truncates from the left
// if b is already longer than n.
func leftPadBytes(b []byte, n int) []byte {
	if len(b) >= n {
		return b[len(b)-n:]
	}
	out := make([]byte, n)
	copy(out[n-len(b):], b)
	return out
}
