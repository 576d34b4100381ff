// Copyright 2021 hhorai. All rights reserved.
// Use of this source code is governed by a MIT license that can be found
// in the LICENSE file.

package dot11

import "testing"

func TestDecodeCryptWEP(t *testing.T) {
	// b3 & 0x20 == 0 selects WEP.
	buf := []byte{0x01, 0x02, 0x03, 0x00, 0xAA, 0xBB, 0xCC, 0xDD}
	c := newCursor(buf)
	r := newMpduRecord()
	decodeCrypt(c, r, DefaultParseOptions())

	if r.L3Crypt == nil || r.L3Crypt.Kind != CryptWEP {
		t.Fatalf("l3crypt = %+v, want WEP", r.L3Crypt)
	}
	if r.Stripped != wepICVLen {
		t.Errorf("stripped = %d, want %d", r.Stripped, wepICVLen)
	}
}

func TestDecodeCryptTKIP(t *testing.T) {
	// b3 & 0x20 != 0 and (b0|0x20)&0x7F == b1 selects TKIP.
	b0 := byte(0x00)
	b1 := (b0 | 0x20) & 0x7F
	buf := []byte{b0, b1, 0x00, 0x20, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0}
	c := newCursor(buf)
	r := newMpduRecord()
	decodeCrypt(c, r, DefaultParseOptions())

	if r.L3Crypt == nil || r.L3Crypt.Kind != CryptTKIP {
		t.Fatalf("l3crypt = %+v, want TKIP", r.L3Crypt)
	}
	if r.Stripped != tkipMICLen+tkipICVLen {
		t.Errorf("stripped = %d, want %d", r.Stripped, tkipMICLen+tkipICVLen)
	}
}

func TestDecodeCryptCCMPLegacyPN5(t *testing.T) {
	hdr := []byte{0x11, 0x22, 0x00, 0x20, 0x33, 0x44, 0x55, 0x66}
	c := newCursor(hdr)
	r := newMpduRecord()
	opts := DefaultParseOptions()
	opts.CCMPLegacyPN5 = true
	decodeCrypt(c, r, opts)

	if r.L3Crypt == nil || r.L3Crypt.Kind != CryptCCMP {
		t.Fatalf("l3crypt = %+v, want CCMP", r.L3Crypt)
	}
	// legacy mode reads pn5 from byte 0 (0x11) instead of byte 7 (0x66).
	wantPN := uint64(0x11) | uint64(hdr[1])<<8 | uint64(hdr[4])<<16 |
		uint64(hdr[5])<<24 | uint64(hdr[6])<<32 | uint64(hdr[0])<<40
	if r.L3Crypt.PN != wantPN {
		t.Errorf("pn = %#x, want %#x", r.L3Crypt.PN, wantPN)
	}
}
