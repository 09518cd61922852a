// Copyright (c) 2020-2022 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package secp256k1

// ErrorKind identifies a kind of error. It has full support for errors.Is
// and errors.As, so the caller can directly check against an error kind
// when determining the reason for an error.
type ErrorKind string

// These constants are used to identify a specific Error.
const (
	// ErrValidationError is returned when a curve parameter fails a SEC1
	// §3.1.1.2.1 check during EC construction.
	ErrValidationError = ErrorKind("ErrValidationError")

	// ErrWeakCurveWarning is returned during EC construction when the
	// anomalous-curve check n != p fails, or, with allChecks enabled, when a
	// security-level, Hasse-bound, cofactor, or MOV guard is triggered.
	ErrWeakCurveWarning = ErrorKind("ErrWeakCurveWarning")

	// ErrNotOnCurve is returned when a point fails curve membership.
	ErrNotOnCurve = ErrorKind("ErrNotOnCurve")

	// ErrInvalidInput is returned for an out-of-range scalar, coordinate,
	// or signature value, a value with no modular inverse, or a malformed
	// encoding.
	ErrInvalidInput = ErrorKind("ErrInvalidInput")

	// ErrNonceRetry is returned when the low-level signer produces r = 0
	// or s = 0 for the given nonce.
	ErrNonceRetry = ErrorKind("ErrNonceRetry")

	// ErrNoSquareRoot is returned when modSqrt is called on a value with
	// no square root modulo p.
	ErrNoSquareRoot = ErrorKind("ErrNoSquareRoot")

	// ErrUnsupportedPrime is returned when YQuadraticResidue is called on
	// a curve whose prime is not congruent to 3 modulo 4.
	ErrUnsupportedPrime = ErrorKind("ErrUnsupportedPrime")

	// ErrTypeMismatch is returned when a point argument is missing a
	// coordinate (X or Y is nil).
	ErrTypeMismatch = ErrorKind("ErrTypeMismatch")
)

// Error satisfies the error interface and prints human-readable errors.
func (e ErrorKind) Error() string {
	return string(e)
}

// Error identifies an error related to curve or signature operations. It
// carries both a specific error kind along with a longer description.
//
// The caller can use errors.Is to check against the kind, and errors.As to
// unwrap the full Error value, e.g.:
//
//	var kindErr ErrorKind
//	if errors.As(err, &kindErr) { ... }
//
//	if errors.Is(err, ErrNotOnCurve) { ... }
type Error struct {
	Err         error
	Description string
}

// Error satisfies the error interface and prints human-readable errors.
func (e Error) Error() string {
	return e.Description
}

// Unwrap returns the underlying wrapped error kind.
func (e Error) Unwrap() error {
	return e.Err
}

// signatureError creates an Error given a set of arguments.
func signatureError(kind ErrorKind, desc string) Error {
	return Error{Err: kind, Description: desc}
}
