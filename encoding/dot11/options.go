// Copyright 2021 hhorai. All rights reserved.
// Use of this source code is governed by a MIT license that can be found
// in the LICENSE file.

package dot11

import (
	"encoding/json"
	"os"

	"github.com/pkg/errors"
)

// ParseOptions controls the few behaviors the standard leaves to the
// caller, or that this decoder intentionally preserves from the
// original implementation for compatibility rather than correctness.
type ParseOptions struct {
	// HasFCS indicates the input buffer carries a trailing 4-octet
	// Frame Check Sequence that must be stripped before the body is
	// interpreted.
	HasFCS bool `json:"has_fcs"`

	// CCMPLegacyPN5, when true, reproduces the original decoder's
	// wrong-octet read of the CCMP PN5 octet (index 0 instead of
	// index 7). Default false: PN5 is read from its standard offset.
	CCMPLegacyPN5 bool `json:"ccmp_legacy_pn5"`

	// BABitmapLen fixes the Block Ack basic-variant bitmap length in
	// octets. The standard allows compressed and basic bitmaps to
	// vary, but the original decoder always read 128 octets for the
	// basic variant; this is kept as the default for compatibility.
	BABitmapLen int `json:"ba_bitmap_len"`
}

// DefaultParseOptions returns the zero-value-safe defaults: no FCS,
// standard-compliant CCMP PN5 offset, 128-byte basic Block Ack bitmap.
func DefaultParseOptions() ParseOptions {
	return ParseOptions{
		HasFCS:        false,
		CCMPLegacyPN5: false,
		BABitmapLen:   128,
	}
}

// LoadParseOptions reads ParseOptions from a JSON file, defaulting any
// field the file omits. Grounded on the session-config JSON loader
// gnbsim uses for its own settings file.
func LoadParseOptions(path string) (*ParseOptions, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "open parse options")
	}
	defer f.Close()

	opts := DefaultParseOptions()
	dec := json.NewDecoder(f)
	if err := dec.Decode(&opts); err != nil {
		return nil, errors.Wrap(err, "decode parse options")
	}
	return &opts, nil
}
