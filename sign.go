// Copyright (c) 2015-2020 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package secp256k1

import (
	"crypto"
	"io"
)

// SignOptions carries the hash algorithm used to produce the digest passed
// to PrivateKey.Sign, satisfying crypto.SignerOpts.
type SignOptions struct {
	Hash crypto.Hash
}

// HashFunc satisfies crypto.SignerOpts.
func (s *SignOptions) HashFunc() crypto.Hash {
	return s.Hash
}

// Public returns the public key corresponding to the private key, satisfying
// the crypto.Signer interface.
func (p *PrivateKey) Public() crypto.PublicKey {
	pub, err := p.PubKey()
	if err != nil {
		panic("secp256k1: private key scalar produced an invalid public key: " + err.Error())
	}
	return pub
}

// Sign signs the provided digest (already hashed by the caller according to
// opts.HashFunc()) with the private key and returns the DER-encoded
// signature, satisfying the crypto.Signer interface. rand is accepted for
// interface compatibility but unused: signing is deterministic per RFC 6979.
func (p *PrivateKey) Sign(rand io.Reader, digest []byte, opts crypto.SignerOpts) ([]byte, error) {
	sig, err := signDigest(p.ec, opts.HashFunc(), digest, p.key)
	if err != nil {
		return nil, err
	}
	return sig.Serialize(), nil
}
