// Copyright (c) 2015-2020 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package secp256k1

import (
	"testing"

	"github.com/davecgh/go-spew/spew"
)

// spewCfg is a single shared dump configuration for printing structured
// test-failure diagnostics.
var spewCfg = spew.ConfigState{
	Indent:                  "  ",
	DisablePointerAddresses: true,
	DisableCapacities:       true,
}

// reportMismatch fails the test with a structured dump of got vs. want,
// useful for Point/EC values whose default %v output is unreadable.
func reportMismatch(t *testing.T, desc string, got, want interface{}) {
	t.Helper()
	t.Errorf("%s: mismatch\ngot: %s\nwant: %s", desc, spewCfg.Sdump(got), spewCfg.Sdump(want))
}
