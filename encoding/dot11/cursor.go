// Copyright 2021 hhorai. All rights reserved.
// Use of this source code is governed by a MIT license that can be found
// in the LICENSE file.

package dot11

import (
	"encoding/binary"

	"github.com/pkg/errors"
)

// errTruncated is returned by the cursor helpers below when the working
// buffer is shorter than the field being read. It is the only error class
// that can abort decoding of the mandatory header (see ParseError); every
// other caller treats it as a per-field recoverable fault.
var errTruncated = errors.New("truncated buffer")

// cursor threads a read position through a byte slice the same way
// gnbsim's nas.go threads a *[]byte through its readPdu* helpers, except
// every multi-byte field here is little-endian per IEEE 802.11-2012 8.2.3,
// and reads are fallible instead of panicking on a short slice.
type cursor struct {
	buf []byte
	pos int
}

func newCursor(buf []byte) *cursor {
	return &cursor{buf: buf}
}

func (c *cursor) remaining() int {
	return len(c.buf) - c.pos
}

func (c *cursor) readByte() (byte, error) {
	if c.remaining() < 1 {
		return 0, errTruncated
	}
	v := c.buf[c.pos]
	c.pos++
	return v, nil
}

func (c *cursor) readUint16() (uint16, error) {
	if c.remaining() < 2 {
		return 0, errTruncated
	}
	v := binary.LittleEndian.Uint16(c.buf[c.pos:])
	c.pos += 2
	return v, nil
}

func (c *cursor) readUint32() (uint32, error) {
	if c.remaining() < 4 {
		return 0, errTruncated
	}
	v := binary.LittleEndian.Uint32(c.buf[c.pos:])
	c.pos += 4
	return v, nil
}

func (c *cursor) readUint64() (uint64, error) {
	if c.remaining() < 8 {
		return 0, errTruncated
	}
	v := binary.LittleEndian.Uint64(c.buf[c.pos:])
	c.pos += 8
	return v, nil
}

// readBytes returns a zero-copy view of the next n bytes. Most byte
// fields in the output record are such views; the Request element's
// EID list, TCLAS IP and filter-offset fields, and STA Statistics report
// data are copies.
func (c *cursor) readBytes(n int) ([]byte, error) {
	if c.remaining() < n {
		return nil, errTruncated
	}
	v := c.buf[c.pos : c.pos+n]
	c.pos += n
	return v, nil
}

func (c *cursor) readHwAddr() (HwAddr, error) {
	b, err := c.readBytes(6)
	if err != nil {
		return HwAddr{}, err
	}
	var a HwAddr
	copy(a[:], b)
	return a, nil
}
