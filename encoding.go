// Copyright (c) 2015-2020 The Decred developers
// Copyright 2013-2014 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package secp256k1

// References:
//   [SEC1]: Elliptic Curve Cryptography, Certicom Research, Standards for
//     Efficient Cryptography, §2.3.3 (Octet-String-to-Elliptic-Curve-Point
//     Conversion) and §2.3.4 (the reverse)

import (
	"math/big"
)

// Minimal DER constants for a two-INTEGER SEQUENCE, enough to encode and
// decode an (r, s) pair. A full ASN.1/DER implementation (arbitrary tags,
// indefinite lengths, BER laxness) is out of scope; only what's needed to
// round-trip a signature is implemented here.
const (
	derSequenceTag = 0x30
	derIntegerTag  = 0x02
)

// PointToOctets encodes Q per SEC 1 §2.3.3. compressed selects the
// compressed form (0x02/0x03 prefix, x only) over the uncompressed form
// (0x04 prefix, x and y); the infinity point encodes as the single byte
// 0x00.
func PointToOctets(ec *EC, q Point, compressed bool) []byte {
	if q.IsInfinity() {
		return []byte{0x00}
	}

	size := ec.ByteSize()
	xBytes := leftPadBytes(q.X.Bytes(), size)

	if compressed {
		prefix := byte(0x02)
		if q.Y.Bit(0) == 1 {
			prefix = 0x03
		}
		out := make([]byte, 1+size)
		out[0] = prefix
		copy(out[1:], xBytes)
		return out
	}

	yBytes := leftPadBytes(q.Y.Bytes(), size)
	out := make([]byte, 1+2*size)
	out[0] = 0x04
	copy(out[1:1+size], xBytes)
	copy(out[1+size:], yBytes)
	return out
}

// PointFromOctets decodes a SEC 1 §2.3.4 octet string into a point on ec,
// accepting the infinity, compressed, and uncompressed encodings.
func PointFromOctets(ec *EC, data []byte) (Point, error) {
	if len(data) == 0 {
		return Point{}, signatureError(ErrInvalidInput, "empty octet string")
	}
	if len(data) == 1 && data[0] == 0x00 {
		return Infinity(), nil
	}

	size := ec.ByteSize()
	switch data[0] {
	case 0x04:
		if len(data) != 1+2*size {
			return Point{}, signatureError(ErrInvalidInput, "invalid length for uncompressed point")
		}
		x := new(big.Int).SetBytes(data[1 : 1+size])
		y := new(big.Int).SetBytes(data[1+size:])
		p := NewPoint(x, y)
		onCurve, err := ec.IsOnCurve(p)
		if err != nil {
			return Point{}, err
		}
		if !onCurve {
			return Point{}, signatureError(ErrNotOnCurve, "decoded point not on curve")
		}
		return p, nil

	case 0x02, 0x03:
		if len(data) != 1+size {
			return Point{}, signatureError(ErrInvalidInput, "invalid length for compressed point")
		}
		x := new(big.Int).SetBytes(data[1:])
		y, err := ec.YOdd(x, data[0] == 0x03)
		if err != nil {
			return Point{}, err
		}
		return NewPoint(x, y), nil

	default:
		return Point{}, signatureError(ErrInvalidInput, "unrecognized point encoding prefix")
	}
}

// Serialize DER-encodes sig as a minimal two-INTEGER ASN.1 SEQUENCE.
func (sig *Signature) Serialize() []byte {
	rBytes := derInteger(sig.R)
	sBytes := derInteger(sig.S)

	body := make([]byte, 0, len(rBytes)+len(sBytes))
	body = append(body, rBytes...)
	body = append(body, sBytes...)

	out := make([]byte, 0, 2+len(body))
	out = append(out, derSequenceTag)
	out = append(out, derLength(len(body))...)
	out = append(out, body...)
	return out
}

// ParseSignature decodes a minimal two-INTEGER ASN.1 SEQUENCE produced by
// Serialize back into a Signature.
func ParseSignature(data []byte) (*Signature, error) {
	if len(data) < 2 || data[0] != derSequenceTag {
		return nil, signatureError(ErrInvalidInput, "missing DER sequence tag")
	}
	seqLen, rest, err := derReadLength(data[1:])
	if err != nil {
		return nil, err
	}
	if len(rest) < seqLen {
		return nil, signatureError(ErrInvalidInput, "truncated DER sequence")
	}
	rest = rest[:seqLen]

	r, rest, err := derReadInteger(rest)
	if err != nil {
		return nil, err
	}
	s, rest, err := derReadInteger(rest)
	if err != nil {
		return nil, err
	}
	if len(rest) != 0 {
		return nil, signatureError(ErrInvalidInput, "trailing data after DER sequence")
	}

	return NewSignature(r, s), nil
}

// derInteger DER-encodes a single non-negative INTEGER.
func derInteger(v *big.Int) []byte {
	b := v.Bytes()
	if len(b) == 0 {
		b = []byte{0x00}
	}
	if b[0]&0x80 != 0 {
		b = append([]byte{0x00}, b...)
	}
	out := make([]byte, 0, 2+len(b))
	out = append(out, derIntegerTag)
	out = append(out, derLength(len(b))...)
	out = append(out, b...)
	return out
}

// derLength encodes a DER length, short form for n < 0x80 and long form
// otherwise.
func derLength(n int) []byte {
	if n < 0x80 {
		return []byte{byte(n)}
	}
	var lenBytes []byte
	for v := n; v > 0; v >>= 8 {
		lenBytes = append([]byte{byte(v)}, lenBytes...)
	}
	return append([]byte{0x80 | byte(len(lenBytes))}, lenBytes...)
}

// derReadLength reads a DER length prefix, returning the decoded length and
// the remaining bytes after it.
func derReadLength(data []byte) (int, []byte, error) {
	if len(data) == 0 {
		return 0, nil, signatureError(ErrInvalidInput, "missing DER length")
	}
	if data[0] < 0x80 {
		return int(data[0]), data[1:], nil
	}
	n := int(data[0] & 0x7f)
	if n == 0 || len(data) < 1+n {
		return 0, nil, signatureError(ErrInvalidInput, "invalid DER long-form length")
	}
	length := 0
	for _, b := range data[1 : 1+n] {
		length = length<<8 | int(b)
	}
	return length, data[1+n:], nil
}

// derReadInteger reads a single DER INTEGER, returning its value and the
// remaining bytes after it.
func derReadInteger(data []byte) (*big.Int, []byte, error) {
	if len(data) < 2 || data[0] != derIntegerTag {
		return nil, nil, signatureError(ErrInvalidInput, "missing DER integer tag")
	}
	length, rest, err := derReadLength(data[1:])
	if err != nil {
		return nil, nil, err
	}
	if len(rest) < length {
		return nil, nil, signatureError(ErrInvalidInput, "truncated DER integer")
	}
	return new(big.Int).SetBytes(rest[:length]), rest[length:], nil
}
