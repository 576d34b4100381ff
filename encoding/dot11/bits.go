// Copyright 2021 hhorai. All rights reserved.
// Use of this source code is governed by a MIT license that can be found
// in the LICENSE file.

package dot11

// leastx returns the unsigned value of the x least significant bits of v.
func leastx(x uint, v uint64) uint64 {
	return v & ((uint64(1) << x) - 1)
}

// midx returns the unsigned value of x bits starting at bit s of v.
func midx(s, x uint, v uint64) uint64 {
	return leastx(x, v>>s)
}

// mostx returns the unsigned value of all bits of v from bit s upward.
func mostx(s uint, v uint64) uint64 {
	return v >> s
}

// bitmaskList evaluates a name->mask table against v, returning 1 for every
// name whose mask bits are all set in v and 0 otherwise.
func bitmaskList(bm map[string]uint64, v uint64) map[string]int {
	d := make(map[string]int, len(bm))
	for name, mask := range bm {
		if v&mask == mask {
			d[name] = 1
		} else {
			d[name] = 0
		}
	}
	return d
}
