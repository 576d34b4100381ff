// Copyright 2021 hhorai. All rights reserved.
// Use of this source code is governed by a MIT license that can be found
// in the LICENSE file.

package dot11

import "testing"

func TestCursorReadUint16LittleEndian(t *testing.T) {
	c := newCursor([]byte{0x01, 0x02})
	v, err := c.readUint16()
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if v != 0x0201 {
		t.Errorf("readUint16() = %#x, want %#x", v, 0x0201)
	}
	if c.remaining() != 0 {
		t.Errorf("remaining() = %d, want 0", c.remaining())
	}
}

func TestCursorReadByteTruncated(t *testing.T) {
	c := newCursor(nil)
	if _, err := c.readByte(); err != errTruncated {
		t.Errorf("readByte() error = %v, want errTruncated", err)
	}
}

func TestCursorReadHwAddr(t *testing.T) {
	c := newCursor([]byte{0xff, 0xff, 0xff, 0xff, 0xff, 0xff})
	a, err := c.readHwAddr()
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if a.String() != "ff:ff:ff:ff:ff:ff" {
		t.Errorf("String() = %q, want %q", a.String(), "ff:ff:ff:ff:ff:ff")
	}
}
