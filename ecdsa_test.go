// Copyright (c) 2015-2020 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package secp256k1

import (
	"crypto"
	_ "crypto/sha256"
	"encoding/hex"
	"errors"
	"math/big"
	"testing"
)

// TestSignVerifyVector reproduces the well-known deterministic-ECDSA test
// vector for secp256k1/SHA-256 with private key 1 and message
// "Satoshi Nakamoto" (see https://bitcointalk.org/index.php?topic=285142.40
// and RFC 6979's own worked example), including signature malleability and
// two-candidate public key recovery.
func TestSignVerifyVector(t *testing.T) {
	ec := Secp256k1()
	d := big.NewInt(1)
	q := ec.G() // 1*G == G

	msg := []byte("Satoshi Nakamoto")
	sig, err := Sign(ec, crypto.SHA256, msg, d)
	if err != nil {
		t.Fatalf("Sign error: %v", err)
	}

	wantR := hexInt("934b1ea10a4b3c1757e2b0c017d0b6143ce3c9a7e6a4a49860d7a6ab210ee3d8")
	wantS := hexInt("2442ce9d2b916064108014783e923ec36b49743e2ffa1c4496f01a512aafd9e5")
	if sig.R.Cmp(wantR) != 0 {
		reportMismatch(t, "signature r", sig.R, wantR)
	}
	otherS := new(big.Int).Sub(ec.n, wantS)
	if sig.S.Cmp(wantS) != 0 && sig.S.Cmp(otherS) != 0 {
		t.Errorf("signature s = %v, want %v or %v", sig.S, wantS, otherS)
	}

	if !Verify(ec, crypto.SHA256, msg, q, sig) {
		t.Errorf("Verify rejected a valid signature")
	}
	if err := VerifyStrict(ec, crypto.SHA256, msg, q, sig); err != nil {
		t.Errorf("VerifyStrict rejected a valid signature: %v", err)
	}

	// Malleability: (r, n-s) must also verify.
	malleated := NewSignature(sig.R, new(big.Int).Sub(ec.n, sig.S))
	if !Verify(ec, crypto.SHA256, msg, q, malleated) {
		t.Errorf("Verify rejected the malleated (r, n-s) signature")
	}
	if err := VerifyStrict(ec, crypto.SHA256, msg, q, malleated); err != nil {
		t.Errorf("VerifyStrict rejected the malleated (r, n-s) signature: %v", err)
	}

	keys, err := RecoverPublicKeys(ec, crypto.SHA256, msg, sig)
	if err != nil {
		t.Fatalf("RecoverPublicKeys error: %v", err)
	}
	if len(keys) != 2 {
		t.Errorf("RecoverPublicKeys returned %d candidates, want 2", len(keys))
	}
	foundQ := false
	for _, k := range keys {
		if k.Equal(q) {
			foundQ = true
		}
	}
	if !foundQ {
		t.Errorf("RecoverPublicKeys candidates %v do not include Q", keys)
	}

	// Wrong message, wrong key, r/s out of range, and infinity pubkey must
	// all fail.
	if Verify(ec, crypto.SHA256, []byte("Craig Wright"), q, sig) {
		t.Errorf("Verify accepted a signature for the wrong message")
	}

	fQ, err := PointMult(ec, big.NewInt(4), ec.G())
	if err != nil {
		t.Fatalf("PointMult error: %v", err)
	}
	if Verify(ec, crypto.SHA256, msg, fQ, sig) {
		t.Errorf("Verify accepted a signature against the wrong public key")
	}

	zeroR := NewSignature(big.NewInt(0), sig.S)
	if err := VerifyStrict(ec, crypto.SHA256, msg, q, zeroR); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("VerifyStrict(r=0) = %v, want ErrInvalidInput", err)
	}
	zeroS := NewSignature(sig.R, big.NewInt(0))
	if err := VerifyStrict(ec, crypto.SHA256, msg, q, zeroS); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("VerifyStrict(s=0) = %v, want ErrInvalidInput", err)
	}

	if err := VerifyStrict(ec, crypto.SHA256, msg, Infinity(), sig); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("VerifyStrict(pubkey=Infinity) = %v, want ErrInvalidInput", err)
	}
}

// TestForgeHashSignature constructs signatures valid for an arbitrary
// chosen message representative e via Shamir's trick directly, the way a
// signature can be forged for a hash value that was never produced by
// hashing any real message (ECDSA signs the representative, not the
// message) -- see https://twitter.com/pwuille/status/1063582706288586752.
func TestForgeHashSignature(t *testing.T) {
	ec := Secp256k1()
	pBytes, err := hex.DecodeString("0311db93e1dcdb8a016b49840f8c53bc1eb68a382e97b1482ecad7b148a6909a5c")
	if err != nil {
		t.Fatalf("hex.DecodeString error: %v", err)
	}
	p, err := PointFromOctets(ec, pBytes)
	if err != nil {
		t.Fatalf("PointFromOctets error: %v", err)
	}

	forge := func(u1, u2 int64) {
		u1Big := big.NewInt(u1)
		u2Big := big.NewInt(u2)

		r, err := DblScalarMult(ec, u1Big, ec.G(), u2Big, p)
		if err != nil {
			t.Fatalf("DblScalarMult error: %v", err)
		}
		rMod := new(big.Int).Mod(r.X, ec.n)

		u2Inv, err := modInv(u2Big, ec.n)
		if err != nil {
			t.Fatalf("modInv error: %v", err)
		}
		s := new(big.Int).Mul(rMod, u2Inv)
		s.Mod(s, ec.n)

		sig := NewSignature(rMod, s)
		e := new(big.Int).Mul(s, u1Big)
		e.Mod(e, ec.n)

		ok, err := verify(ec, p, e, sig)
		if err != nil {
			t.Fatalf("verify error: %v", err)
		}
		if !ok {
			t.Errorf("forged signature for u1=%d, u2=%d did not verify", u1, u2)
		}
	}

	forge(1, 2)
	forge(1234567890, 987654321)
}

// TestLowCardinalityExhaustive sweeps every private key, message
// representative, and nonce combination over a handful of tiny curves,
// checking the signing formula directly and that every resulting
// signature verifies. Zero private keys and zero nonces must be rejected.
func TestLowCardinalityExhaustive(t *testing.T) {
	for _, ec := range LowCardinalityCurves() {
		n := ec.n.Int64()

		if _, err := sign(ec, big.NewInt(0), big.NewInt(1), big.NewInt(1)); err == nil {
			t.Errorf("p=%v: sign with d=0 did not error", ec.p)
		}

		for d := int64(1); d < n; d++ {
			dBig := big.NewInt(d)
			p, err := PointMult(ec, dBig, ec.g)
			if err != nil {
				t.Fatalf("p=%v d=%d: PointMult error: %v", ec.p, d, err)
			}

			for e := int64(0); e < n; e++ {
				eBig := big.NewInt(e)

				if _, err := sign(ec, dBig, eBig, big.NewInt(0)); err == nil {
					t.Errorf("p=%v d=%d e=%d: sign with k=0 did not error", ec.p, d, e)
				}

				for k := int64(1); k < n; k++ {
					kBig := big.NewInt(k)

					r, err := PointMult(ec, kBig, ec.g)
					if err != nil {
						t.Fatalf("p=%v: PointMult error: %v", ec.p, err)
					}
					rMod := new(big.Int).Mod(r.X, ec.n)
					if rMod.Sign() == 0 {
						if _, err := sign(ec, dBig, eBig, kBig); err == nil {
							t.Errorf("p=%v d=%d e=%d k=%d: sign with r=0 did not error", ec.p, d, e, k)
						}
						continue
					}

					kInv, err := modInv(kBig, ec.n)
					if err != nil {
						t.Fatalf("modInv error: %v", err)
					}
					want := new(big.Int).Mul(rMod, dBig)
					want.Add(want, eBig)
					want.Mul(want, kInv)
					want.Mod(want, ec.n)
					if want.Sign() == 0 {
						if _, err := sign(ec, dBig, eBig, kBig); err == nil {
							t.Errorf("p=%v d=%d e=%d k=%d: sign with s=0 did not error", ec.p, d, e, k)
						}
						continue
					}

					sig, err := sign(ec, dBig, eBig, kBig)
					if err != nil {
						t.Errorf("p=%v d=%d e=%d k=%d: sign error: %v", ec.p, d, e, k, err)
						continue
					}
					if sig.R.Cmp(rMod) != 0 || sig.S.Cmp(want) != 0 {
						reportMismatch(t, "low-cardinality sign formula", sig, NewSignature(rMod, want))
					}

					ok, err := verify(ec, p, eBig, sig)
					if err != nil {
						t.Errorf("p=%v d=%d e=%d k=%d: verify error: %v", ec.p, d, e, k, err)
						continue
					}
					if !ok {
						t.Errorf("p=%v d=%d e=%d k=%d: valid signature failed to verify", ec.p, d, e, k)
					}
				}
			}
		}
	}
}

// TestSecp112r2RoundTrip checks sign/verify/recover round-trips on the
// cofactor-4 secp112r2 curve, exercising the catalogue's second standard
// curve end to end.
func TestSecp112r2RoundTrip(t *testing.T) {
	ec := Secp112r2()
	d := big.NewInt(12345)
	q, err := PointMult(ec, d, ec.G())
	if err != nil {
		t.Fatalf("PointMult error: %v", err)
	}

	msg := []byte("round trip message")
	sig, err := Sign(ec, crypto.SHA256, msg, d)
	if err != nil {
		t.Fatalf("Sign error: %v", err)
	}
	if !Verify(ec, crypto.SHA256, msg, q, sig) {
		t.Errorf("Verify rejected a valid secp112r2 signature")
	}

	keys, err := RecoverPublicKeys(ec, crypto.SHA256, msg, sig)
	if err != nil {
		t.Fatalf("RecoverPublicKeys error: %v", err)
	}
	found := false
	for _, k := range keys {
		if k.Equal(q) {
			found = true
		}
	}
	if !found {
		t.Errorf("RecoverPublicKeys candidates do not include Q on secp112r2 (cofactor %v)", ec.h)
	}
}
