// Copyright 2021 hhorai. All rights reserved.
// Use of this source code is governed by a MIT license that can be found
// in the LICENSE file.

package dot11

// decodeData implements the data-frame decoder of
// IEEE 802.11-2012 8.3.2, grounded on
// _examples/original_source/itamae/_mpdu.py's _parsedata_.
//
// HT Control is never read here. The standard says it should be read
// when the order flag is set, but the reference decoder this package
// was built from skips it unconditionally in both the data and
// management paths; that skip is preserved rather than fixed — see
// the open question in the package-level design notes.
func decodeData(c *cursor, r *MpduRecord) {
	addr2, err := c.readHwAddr()
	if err != nil {
		r.addErr("data", err.Error())
		return
	}
	r.Addr2 = addr2
	r.setPresent("addr2")

	addr3, err := c.readHwAddr()
	if err != nil {
		r.addErr("data", err.Error())
		return
	}
	r.Addr3 = addr3
	r.setPresent("addr3")

	sc, err := decodeSeqCtrl(c)
	if err != nil {
		r.addErr("data", err.Error())
		return
	}
	r.SeqCtrl = sc
	r.setPresent("seqctrl")

	if r.FrameCtrl.Flags["td"] == 1 && r.FrameCtrl.Flags["fd"] == 1 {
		addr4, err := c.readHwAddr()
		if err != nil {
			r.addErr("data.addr4", err.Error())
			return
		}
		r.Addr4 = addr4
		r.setPresent("addr4")
	}

	st := r.FrameCtrl.Subtype
	if st >= StDataQosData && st <= StDataQosCfackCfpoll {
		qos, err := decodeQosCtrl(c)
		if err != nil {
			r.addErr("data.qos", err.Error())
			return
		}
		r.Qos = qos
		r.setPresent("qos")
	}
}
