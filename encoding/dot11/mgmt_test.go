// Copyright 2021 hhorai. All rights reserved.
// Use of this source code is governed by a MIT license that can be found
// in the LICENSE file.

package dot11

import "testing"

func TestParseAssocReq(t *testing.T) {
	buf := []byte{
		0x00, 0x00, 0x00, 0x00, // framectrl (assoc-req), duration
		0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0,
		0, 0,
		0x21, 0x04, // capability
		0x0A, 0x00, // listen-int = 10
	}
	r, err := Parse(buf, DefaultParseOptions())
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if r.FrameCtrl.Subtype != StMgmtAssocReq {
		t.Fatalf("subtype = %d, want assoc-req", r.FrameCtrl.Subtype)
	}
	if li, _ := r.FixedParams["listen-int"].(uint16); li != 10 {
		t.Errorf("listen-int = %v, want 10", r.FixedParams["listen-int"])
	}
}

func TestParseAuth(t *testing.T) {
	buf := []byte{
		0xB0, 0x00, 0x00, 0x00, // framectrl (auth), duration
		0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0,
		0, 0,
		0x00, 0x00, // algorithm-no = open
		0x01, 0x00, // auth-seq = 1
		0x00, 0x00, // status-code = success
	}
	r, err := Parse(buf, DefaultParseOptions())
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if r.FrameCtrl.Subtype != StMgmtAuth {
		t.Fatalf("subtype = %d, want auth", r.FrameCtrl.Subtype)
	}
	if seq, _ := r.FixedParams["auth-seq"].(uint16); seq != 1 {
		t.Errorf("auth-seq = %v, want 1", r.FixedParams["auth-seq"])
	}
}

func TestParseActionCapturesRemainder(t *testing.T) {
	buf := []byte{
		0xD0, 0x00, 0x00, 0x00, // framectrl (action), duration
		0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0,
		0, 0,
		0x03,             // category
		0x01,             // action
		0xDE, 0xAD, 0xBE, // opaque action-el remainder
	}
	r, err := Parse(buf, DefaultParseOptions())
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if cat, _ := r.FixedParams["category"].(byte); cat != 3 {
		t.Errorf("category = %v, want 3", r.FixedParams["category"])
	}
	if len(r.ActionEl) != 3 {
		t.Errorf("action-el len = %d, want 3", len(r.ActionEl))
	}
}
