// Copyright (c) 2020 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package secp256k1

import (
	"errors"
	"testing"
)

// TestErrorKindStringer tests the stringized output for the ErrorKind type.
func TestErrorKindStringer(t *testing.T) {
	tests := []struct {
		in   ErrorKind
		want string
	}{
		{ErrValidationError, "ErrValidationError"},
		{ErrWeakCurveWarning, "ErrWeakCurveWarning"},
		{ErrNotOnCurve, "ErrNotOnCurve"},
		{ErrInvalidInput, "ErrInvalidInput"},
		{ErrNonceRetry, "ErrNonceRetry"},
		{ErrNoSquareRoot, "ErrNoSquareRoot"},
		{ErrUnsupportedPrime, "ErrUnsupportedPrime"},
		{ErrTypeMismatch, "ErrTypeMismatch"},
	}

	for i, test := range tests {
		result := test.in.Error()
		if result != test.want {
			t.Errorf("#%d: got: %s want: %s", i, result, test.want)
			continue
		}
	}
}

// TestError tests the error output for the Error type.
func TestError(t *testing.T) {
	tests := []struct {
		in   Error
		want string
	}{{
		Error{Description: "some error"},
		"some error",
	}, {
		Error{Description: "human-readable error"},
		"human-readable error",
	}}

	for i, test := range tests {
		result := test.in.Error()
		if result != test.want {
			t.Errorf("#%d: got: %s want: %s", i, result, test.want)
			continue
		}
	}
}

// TestErrorKindIsAs ensures both ErrorKind and Error can be identified as being
// a specific error kind via errors.Is and unwrapped via errors.As.
func TestErrorKindIsAs(t *testing.T) {
	tests := []struct {
		name      string
		err       error
		target    error
		wantMatch bool
		wantAs    ErrorKind
	}{{
		name:      "ErrNotOnCurve == ErrNotOnCurve",
		err:       ErrNotOnCurve,
		target:    ErrNotOnCurve,
		wantMatch: true,
		wantAs:    ErrNotOnCurve,
	}, {
		name:      "Error.ErrNotOnCurve == ErrNotOnCurve",
		err:       signatureError(ErrNotOnCurve, ""),
		target:    ErrNotOnCurve,
		wantMatch: true,
		wantAs:    ErrNotOnCurve,
	}, {
		name:      "Error.ErrNotOnCurve == Error.ErrNotOnCurve",
		err:       signatureError(ErrNotOnCurve, ""),
		target:    signatureError(ErrNotOnCurve, ""),
		wantMatch: true,
		wantAs:    ErrNotOnCurve,
	}, {
		name:      "ErrInvalidInput != ErrNotOnCurve",
		err:       ErrInvalidInput,
		target:    ErrNotOnCurve,
		wantMatch: false,
		wantAs:    ErrInvalidInput,
	}, {
		name:      "Error.ErrInvalidInput != ErrNotOnCurve",
		err:       signatureError(ErrInvalidInput, ""),
		target:    ErrNotOnCurve,
		wantMatch: false,
		wantAs:    ErrInvalidInput,
	}, {
		name:      "ErrInvalidInput != Error.ErrNotOnCurve",
		err:       ErrInvalidInput,
		target:    signatureError(ErrNotOnCurve, ""),
		wantMatch: false,
		wantAs:    ErrInvalidInput,
	}, {
		name:      "Error.ErrInvalidInput != Error.ErrNotOnCurve",
		err:       signatureError(ErrInvalidInput, ""),
		target:    signatureError(ErrNotOnCurve, ""),
		wantMatch: false,
		wantAs:    ErrInvalidInput,
	}, {
		name:      "ErrNonceRetry == ErrNonceRetry",
		err:       ErrNonceRetry,
		target:    ErrNonceRetry,
		wantMatch: true,
		wantAs:    ErrNonceRetry,
	}, {
		name:      "Error.ErrNoSquareRoot == ErrNoSquareRoot",
		err:       signatureError(ErrNoSquareRoot, ""),
		target:    ErrNoSquareRoot,
		wantMatch: true,
		wantAs:    ErrNoSquareRoot,
	}, {
		name:      "ErrUnsupportedPrime != ErrNoSquareRoot",
		err:       ErrUnsupportedPrime,
		target:    ErrNoSquareRoot,
		wantMatch: false,
		wantAs:    ErrUnsupportedPrime,
	}}

	for _, test := range tests {
		// Ensure the error matches or not depending on the expected result.
		result := errors.Is(test.err, test.target)
		if result != test.wantMatch {
			t.Errorf("%s: incorrect error identification -- got %v, want %v",
				test.name, result, test.wantMatch)
			continue
		}

		// Ensure the underlying error code can be unwrapped and is the expected
		// code.
		var kind ErrorKind
		if !errors.As(test.err, &kind) {
			t.Errorf("%s: unable to unwrap to error code", test.name)
			continue
		}
		if kind != test.wantAs {
			t.Errorf("%s: unexpected unwrapped error code -- got %v, want %v",
				test.name, kind, test.wantAs)
			continue
		}
	}
}
