// Copyright 2021 hhorai. All rights reserved.
// Use of this source code is governed by a MIT license that can be found
// in the LICENSE file.

package dot11

import "testing"

func TestLeastx(t *testing.T) {
	cases := []struct {
		n    uint
		v    uint64
		want uint64
	}{
		{8, 0xFF, 0xFF},
		{4, 0xFF, 0x0F},
		{0, 0xFF, 0x00},
		{7, 0x80, 0x00},
	}
	for _, c := range cases {
		if got := leastx(c.n, c.v); got != c.want {
			t.Errorf("leastx(%d, %#x) = %#x, want %#x", c.n, c.v, got, c.want)
		}
	}
}

func TestMidx(t *testing.T) {
	v := uint64(0b1010_1100)
	if got := midx(2, 4, v); got != 0b1011 {
		t.Errorf("midx(2, 4, %#b) = %#b, want %#b", v, got, 0b1011)
	}
}

func TestMostx(t *testing.T) {
	v := uint64(0xABCD)
	if got := mostx(8, v); got != 0xAB {
		t.Errorf("mostx(8, %#x) = %#x, want %#x", v, got, 0xAB)
	}
}

func TestBitmaskList(t *testing.T) {
	bm := map[string]uint64{"a": 0x01, "b": 0x02, "c": 0x04}
	got := bitmaskList(bm, 0x05)
	want := map[string]int{"a": 1, "b": 0, "c": 1}
	for name, w := range want {
		if got[name] != w {
			t.Errorf("bitmaskList()[%q] = %d, want %d", name, got[name], w)
		}
	}
}
