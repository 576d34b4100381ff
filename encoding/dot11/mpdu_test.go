// Copyright 2021 hhorai. All rights reserved.
// Use of this source code is governed by a MIT license that can be found
// in the LICENSE file.

package dot11

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParseMinimalAck(t *testing.T) {
	buf := []byte{0xD4, 0x00, 0x00, 0x00, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF}
	r, err := Parse(buf, DefaultParseOptions())
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}

	if r.FrameCtrl.Type != FtCtrl || r.FrameCtrl.Subtype != StCtrlAck {
		t.Fatalf("type/subtype = %d/%d, want CTRL/ACK", r.FrameCtrl.Type, r.FrameCtrl.Subtype)
	}
	for name, v := range r.FrameCtrl.Flags {
		if v != 0 {
			t.Errorf("flags[%q] = %d, want 0", name, v)
		}
	}
	if r.Duration.Kind != DurationMicroseconds || r.Duration.Microseconds != 0 {
		t.Errorf("duration = %+v, want VCS{0}", r.Duration)
	}
	if r.Addr1.String() != "ff:ff:ff:ff:ff:ff" {
		t.Errorf("addr1 = %q", r.Addr1.String())
	}
	if r.Offset != 10 || r.Stripped != 0 {
		t.Errorf("offset/stripped = %d/%d, want 10/0", r.Offset, r.Stripped)
	}
	if len(r.Err) != 0 {
		t.Errorf("err = %v, want empty", r.Err)
	}
}

func TestParsePsPoll(t *testing.T) {
	buf := []byte{
		0xA4, 0x00, 0x2A, 0x00,
		0x00, 0x1F, 0x3F, 0xA2, 0xB1, 0xC3,
		0x00, 0x1F, 0x3F, 0xA2, 0xB1, 0xC4,
	}
	r, err := Parse(buf, DefaultParseOptions())
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}

	if r.FrameCtrl.Type != FtCtrl || r.FrameCtrl.Subtype != StCtrlPspoll {
		t.Fatalf("type/subtype = %d/%d, want CTRL/PS-POLL", r.FrameCtrl.Type, r.FrameCtrl.Subtype)
	}
	if r.Addr1.String() != "00:1f:3f:a2:b1:c3" {
		t.Errorf("addr1 = %q", r.Addr1.String())
	}
	if r.Addr2.String() != "00:1f:3f:a2:b1:c4" {
		t.Errorf("addr2 = %q", r.Addr2.String())
	}
	if !contains(r.Present, "addr2") {
		t.Errorf("present = %v, want addr2", r.Present)
	}
}

func TestParseQosDataToFromDS(t *testing.T) {
	buf := []byte{
		0x88, 0x03, 0x00, 0x00, // framectrl, duration
		0x11, 0x22, 0x33, 0x44, 0x55, 0x66, // addr1
		0xAA, 0xBB, 0xCC, 0xDD, 0xEE, 0xFF, // addr2
		0x01, 0x02, 0x03, 0x04, 0x05, 0x06, // addr3
		0x10, 0x00, // seqctrl
		0x07, 0x08, 0x09, 0x0A, 0x0B, 0x0C, // addr4
		0x05, 0x20, // qos
	}
	r, err := Parse(buf, DefaultParseOptions())
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}

	for _, tag := range []string{"addr2", "addr3", "addr4", "seqctrl", "qos"} {
		if !contains(r.Present, tag) {
			t.Errorf("present = %v, want %q", r.Present, tag)
		}
	}
	if r.Qos.TID != 5 || r.Qos.AckPolicy != 0 || r.Qos.TxopRaw != 0x20 {
		t.Errorf("qos = %+v", r.Qos)
	}
	if r.Offset != len(buf) {
		t.Errorf("offset = %d, want %d", r.Offset, len(buf))
	}
}

func TestParseCCMPProtectedData(t *testing.T) {
	buf := []byte{
		0x88, 0x43, 0x00, 0x00, // framectrl (td,fd,pf set), duration
		0x11, 0x22, 0x33, 0x44, 0x55, 0x66,
		0xAA, 0xBB, 0xCC, 0xDD, 0xEE, 0xFF,
		0x01, 0x02, 0x03, 0x04, 0x05, 0x06,
		0x10, 0x00,
		0x07, 0x08, 0x09, 0x0A, 0x0B, 0x0C,
		0x05, 0x20,
		0x24, 0x00, 0x00, 0x20, 0x00, 0x00, 0x00, 0x00, // ccmp header
	}
	r, err := Parse(buf, DefaultParseOptions())
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}

	if r.L3Crypt == nil || r.L3Crypt.Kind != CryptCCMP {
		t.Fatalf("l3crypt = %+v, want CCMP", r.L3Crypt)
	}
	if r.Offset != len(buf) {
		t.Errorf("offset = %d, want %d", r.Offset, len(buf))
	}
	if r.Stripped != ccmpMICLen {
		t.Errorf("stripped = %d, want %d", r.Stripped, ccmpMICLen)
	}
}

func TestParseTruncatedProbeResponse(t *testing.T) {
	buf := []byte{
		0x50, 0x00, 0x00, 0x00, // framectrl (probe-resp), duration
		0, 0, 0, 0, 0, 0, // addr1
		0, 0, 0, 0, 0, 0, // addr2
		0, 0, 0, 0, 0, 0, // addr3
		0, 0, // seqctrl
		1, 0, 0, 0, 0, 0, 0, 0, // timestamp
		0x64, 0x00, // beacon-int
		0x21, 0x04, // capability
		0x00, 0x0A, // eid=0 (ssid), elen=10
		'a', 'b', 'c', // only 3 of the 10 promised bytes follow
	}
	r, err := Parse(buf, DefaultParseOptions())
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}

	if !contains(r.Present, "fixed-params") {
		t.Errorf("present = %v, want fixed-params", r.Present)
	}
	if contains(r.Present, "info-elements") {
		t.Errorf("present = %v, want no info-elements", r.Present)
	}

	found := false
	for _, e := range r.Err {
		if e.Location == "mgmt.info-elements" {
			found = true
		}
	}
	if !found {
		t.Errorf("err = %v, want an entry at mgmt.info-elements", r.Err)
	}
}

func TestParseEmptyBuffer(t *testing.T) {
	r, err := Parse(nil, DefaultParseOptions())
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if r.Offset != 0 {
		t.Errorf("offset = %d, want 0", r.Offset)
	}
	if contains(r.Present, "framectrl") {
		t.Errorf("present = %v, want no framectrl", r.Present)
	}
}

func TestParseBeaconWithSSIDAndRates(t *testing.T) {
	buf := []byte{
		0x80, 0x00, 0x00, 0x00, // framectrl (beacon), duration
		0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0,
		0, 0,
		0x08, 0x07, 0x06, 0x05, 0x04, 0x03, 0x02, 0x01, // timestamp
		0x64, 0x00, // beacon-int = 100
		0x21, 0x04, // capability
		0x00, 0x04, 't', 'e', 's', 't', // SSID IE
		0x01, 0x01, 0x82, // Supported Rates IE
	}
	r, err := Parse(buf, DefaultParseOptions())
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if len(r.Err) != 0 {
		t.Fatalf("err = %v, want empty", r.Err)
	}

	ssid, ok := r.InfoElements.GetIE(EidSSID)
	if !ok || ssid.SSID == nil || ssid.SSID.SSID != "test" {
		t.Errorf("ssid = %+v", ssid.SSID)
	}

	rates, ok := r.InfoElements.GetIE(EidSupportedRates)
	if !ok || rates.SupportedRates == nil {
		t.Fatalf("rates missing")
	}
	if diff := cmp.Diff([]float64{1.0}, rates.SupportedRates.RatesMbps); diff != "" {
		t.Errorf("rates mismatch (-want +got):\n%s", diff)
	}

	if beaconInt, _ := r.FixedParams["beacon-int"].(uint32); beaconInt != 100*1024 {
		t.Errorf("beacon-int = %v, want %d", r.FixedParams["beacon-int"], 100*1024)
	}
}

func contains(xs []string, want string) bool {
	for _, x := range xs {
		if x == want {
			return true
		}
	}
	return false
}
