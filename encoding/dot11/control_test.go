// Copyright 2021 hhorai. All rights reserved.
// Use of this source code is governed by a MIT license that can be found
// in the LICENSE file.

package dot11

import "testing"

func TestParseBlockAckReqBasic(t *testing.T) {
	buf := []byte{
		0x84, 0x00, 0x00, 0x00, // framectrl (ctrl, bar), duration
		0x11, 0x22, 0x33, 0x44, 0x55, 0x66, // addr1
		0xAA, 0xBB, 0xCC, 0xDD, 0xEE, 0xFF, // addr2
		0x00, 0x00, // barcontrol: ackpolicy=0,multi-tid=0,compressed-bm=0
		0x50, 0x00, // seqctrl
	}
	r, err := Parse(buf, DefaultParseOptions())
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if r.BaVariant != BaBasic {
		t.Fatalf("variant = %v, want BaBasic", r.BaVariant)
	}
	if r.BarInfo == nil || r.BarInfo.SeqNum != 5 {
		t.Errorf("barinfo = %+v", r.BarInfo)
	}
	if len(r.Err) != 0 {
		t.Errorf("err = %v, want empty", r.Err)
	}
}

func TestParseBlockAckReqMultiTid(t *testing.T) {
	buf := []byte{
		0x84, 0x00, 0x00, 0x00,
		0x11, 0x22, 0x33, 0x44, 0x55, 0x66,
		0xAA, 0xBB, 0xCC, 0xDD, 0xEE, 0xFF,
		0x06, 0x00, // barcontrol: multi-tid=1, compressed-bm=1, tid-info=0 (1 record)
		0x00, 0x30, // pertid-info: tid=3 (LE: 0x3000)
		0x70, 0x00, // seqctrl: seqno=7
	}
	r, err := Parse(buf, DefaultParseOptions())
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if r.BaVariant != BaMultiTid {
		t.Fatalf("variant = %v, want BaMultiTid", r.BaVariant)
	}
	if len(r.PerTid) != 1 {
		t.Fatalf("pertid = %+v, want 1 record", r.PerTid)
	}
	if r.PerTid[0].Tid != 3 || r.PerTid[0].SeqCtrl.SeqNum != 7 {
		t.Errorf("pertid[0] = %+v", r.PerTid[0])
	}
}

func TestParseBlockAckBasicBitmap(t *testing.T) {
	buf := make([]byte, 0, 20+128)
	buf = append(buf,
		0x94, 0x00, 0x00, 0x00, // framectrl (ctrl, block-ack), duration
		0x11, 0x22, 0x33, 0x44, 0x55, 0x66,
		0xAA, 0xBB, 0xCC, 0xDD, 0xEE, 0xFF,
		0x00, 0x00, // bacontrol: basic
		0x00, 0x00, // seqctrl
	)
	buf = append(buf, make([]byte, 128)...) // basic bitmap, fixed 128 bytes

	r, err := Parse(buf, DefaultParseOptions())
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if r.BaVariant != BaBasic {
		t.Fatalf("variant = %v, want BaBasic", r.BaVariant)
	}
	if len(r.Bitmap) != 128 {
		t.Errorf("bitmap len = %d, want 128", len(r.Bitmap))
	}
	if r.Offset != len(buf) {
		t.Errorf("offset = %d, want %d", r.Offset, len(buf))
	}
}

func TestParseControlWrapper(t *testing.T) {
	buf := []byte{
		0x74, 0x00, 0x00, 0x00, // framectrl (ctrl, wrapper), duration
		0x11, 0x22, 0x33, 0x44, 0x55, 0x66, // addr1
		0xAD, 0xDE, // carried frame control (opaque)
		0x01, 0x02, 0x03, 0x04, // carried htc (opaque)
		0xDE, 0xAD, 0xBE, 0xEF, // carried frame remainder
	}
	r, err := Parse(buf, DefaultParseOptions())
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if r.CarriedFrameCtrl == nil || *r.CarriedFrameCtrl != 0xDEAD {
		t.Errorf("carried frame ctrl = %v, want 0xDEAD", r.CarriedFrameCtrl)
	}
	if r.CarriedHtc == nil || *r.CarriedHtc != 0x04030201 {
		t.Errorf("carried htc = %v, want 0x04030201", r.CarriedHtc)
	}
	if len(r.CarriedFrame) != 4 {
		t.Errorf("carried frame len = %d, want 4", len(r.CarriedFrame))
	}
}
