// Copyright 2021 hhorai. All rights reserved.
// Use of this source code is governed by a MIT license that can be found
// in the LICENSE file.

package dot11

import "encoding/binary"

// decodeHeader reads the mandatory frame-control/duration/addr1 prefix
// and, when opts.HasFCS, strips the trailing FCS from the working
// buffer. It returns the cursor positioned just past addr1 so the
// type-specific decoders in control.go/data.go/mgmt.go can continue
// reading from it. Any failure here is fatal (see ParseError in
// mpdu.go) — the standard gives no recovery point inside the first ten
// octets, IEEE 802.11-2012 8.2.3.
func decodeHeader(buf []byte, r *MpduRecord, opts ParseOptions) (*cursor, error) {
	work := buf
	if opts.HasFCS {
		if len(work) < 4 {
			return nil, &ParseError{Location: "header.fcs", Message: "buffer too short for fcs"}
		}
		fcs := binary.LittleEndian.Uint32(work[len(work)-4:])
		r.FCS = &fcs
		work = work[:len(work)-4]
		r.Stripped += 4
		r.setPresent("fcs")
	}

	c := newCursor(work)

	fc0, err := c.readByte()
	if err != nil {
		return nil, &ParseError{Location: "header.framectrl", Message: err.Error()}
	}
	fc1, err := c.readByte()
	if err != nil {
		return nil, &ParseError{Location: "header.framectrl", Message: err.Error()}
	}

	r.FrameCtrl = FrameControl{
		ProtocolVersion: uint8(leastx(2, uint64(fc0))),
		Type:            uint8(midx(2, 2, uint64(fc0))),
		Subtype:         uint8(midx(4, 4, uint64(fc0))),
		Flags:           bitmaskList(fcFlagBits, uint64(fc1)),
	}
	r.setPresent("framectrl")

	durRaw, err := c.readUint16()
	if err != nil {
		return nil, &ParseError{Location: "header.duration", Message: err.Error()}
	}
	r.Duration = decodeDuration(durRaw)
	r.setPresent("duration")

	addr1, err := c.readHwAddr()
	if err != nil {
		return nil, &ParseError{Location: "header.addr1", Message: err.Error()}
	}
	r.Addr1 = addr1
	r.setPresent("addr1")

	return c, nil
}

// decodeSeqCtrl reads the 2-byte Sequence Control field,
// IEEE 802.11-2012 8.2.4.4.
func decodeSeqCtrl(c *cursor) (SeqCtrl, error) {
	v, err := c.readUint16()
	if err != nil {
		return SeqCtrl{}, err
	}
	return SeqCtrl{
		FragNum: uint8(leastx(4, uint64(v))),
		SeqNum:  uint16(mostx(4, uint64(v))),
	}, nil
}

// decodeQosCtrl reads the 2-byte QoS Control field,
// IEEE 802.11-2012 8.2.4.5. The msb is stored raw; its
// interpretation (AP buffer state / TXOP limit / queue size / mesh
// fields) depends on direction and subtype, which is the caller's
// responsibility per §3 of the data model.
func decodeQosCtrl(c *cursor) (QosCtrl, error) {
	v, err := c.readUint16()
	if err != nil {
		return QosCtrl{}, err
	}
	lsb := leastx(8, uint64(v))
	return QosCtrl{
		TID:          uint8(leastx(4, lsb)),
		EOSP:         int(midx(4, 1, lsb)),
		AckPolicy:    uint8(midx(5, 2, lsb)),
		AMSDUPresent: int(midx(7, 1, lsb)),
		TxopRaw:      uint8(mostx(8, uint64(v))),
	}, nil
}

// decodeDuration discriminates the three Duration/ID encodings using
// bits 15 and 14, IEEE 802.11-2012 8.2.4.2.
func decodeDuration(v uint16) Duration {
	b15 := midx(15, 1, uint64(v))
	if b15 == 0 {
		return Duration{Kind: DurationMicroseconds, Microseconds: uint16(leastx(15, uint64(v)))}
	}

	b14 := midx(14, 1, uint64(v))
	if b14 == 0 {
		if v == 32768 {
			return Duration{Kind: DurationContentionFree, IsCFP: true}
		}
		return Duration{Kind: DurationReserved}
	}

	aid := uint16(leastx(13, uint64(v)))
	if aid <= 2007 {
		return Duration{Kind: DurationAID, AID: aid}
	}
	return Duration{Kind: DurationReserved}
}
