// Copyright 2021 hhorai. All rights reserved.
// Use of this source code is governed by a MIT license that can be found
// in the LICENSE file.

package dot11

import "fmt"

// decodeIEs walks the length-prefixed Information Element stream that
// follows a management frame's fixed parameters, IEEE 802.11-2012
// 8.4.2, grounded on _mpdu.py's IE loop inside _parsemgmt_.
func decodeIEs(c *cursor, r *MpduRecord) {
	for c.remaining() > 0 {
		eid, err := c.readByte()
		if err != nil {
			r.addErr("mgmt.info-elements", err.Error())
			return
		}
		elen, err := c.readByte()
		if err != nil {
			r.addErr("mgmt.info-elements", err.Error())
			return
		}

		payload, err := c.readBytes(int(elen))
		if err != nil {
			// Structural failure: the element claims more bytes
			// than remain. Abort the loop to avoid looping forever
			// on a pathological length byte.
			r.addErr("mgmt.info-elements", err.Error())
			return
		}

		v, decErr := decodeElement(eid, payload)
		if decErr != nil {
			r.addErr(fmt.Sprintf("mgmt.info-elements.eid-%d", eid), decErr.Error())
			continue
		}

		r.InfoElements.Add(eid, v)
	}

	if len(r.InfoElements.Order) > 0 {
		r.setPresent("info-elements")
	}
}

// subElement is one (id, payload) record inside a sub-element
// container, IEEE 802.11-2012's generic sub-element TLV (e.g. Neighbor
// Report, FTE, FMS, Mesh MCCAOP).
type subElement struct {
	ID      uint8
	Payload []byte
}

// walkSubElements parses the generic (sid:u8, slen:u8, payload) stream
// used by several container elements. The default shape for a
// container without a dedicated sub-decoder: the caller gets back the
// raw (id, bytes) pairs.
func walkSubElements(buf []byte) []subElement {
	var out []subElement
	pos := 0
	for pos+2 <= len(buf) {
		sid := buf[pos]
		slen := int(buf[pos+1])
		pos += 2
		if pos+slen > len(buf) {
			break
		}
		out = append(out, subElement{ID: sid, Payload: buf[pos : pos+slen]})
		pos += slen
	}
	return out
}
