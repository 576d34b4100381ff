// Copyright 2021 hhorai. All rights reserved.
// Use of this source code is governed by a MIT license that can be found
// in the LICENSE file.

package dot11

// decodeMgmt implements the management-frame fixed-parameter dispatch
// of IEEE 802.11-2012 8.3.3, grounded on
// _examples/original_source/itamae/_mpdu.py's _parsemgmt_. It reads
// addr2/addr3/seqctrl unconditionally, dispatches fixed parameters by
// subtype, and then hands off to the Information Element engine.
//
// Like decodeData, this never reads HT Control even though the
// standard ties it to the order flag; the skip is preserved from the
// reference decoder this package was built from.
func decodeMgmt(c *cursor, r *MpduRecord) {
	addr2, err := c.readHwAddr()
	if err != nil {
		r.addErr("mgmt", err.Error())
		return
	}
	r.Addr2 = addr2
	r.setPresent("addr2")

	addr3, err := c.readHwAddr()
	if err != nil {
		r.addErr("mgmt", err.Error())
		return
	}
	r.Addr3 = addr3
	r.setPresent("addr3")

	sc, err := decodeSeqCtrl(c)
	if err != nil {
		r.addErr("mgmt", err.Error())
		return
	}
	r.SeqCtrl = sc
	r.setPresent("seqctrl")

	if err := decodeFixedParams(c, r); err != nil {
		r.addErr("mgmt."+mgmtSubtypeName(r.FrameCtrl.Subtype), err.Error())
		return
	}
	r.setPresent("fixed-params")

	decodeIEs(c, r)
}

func mgmtSubtypeName(st uint8) string {
	names := [...]string{
		"assoc-req", "assoc-resp", "reassoc-req", "reassoc-resp",
		"probe-req", "probe-resp", "timing-adv", "rsrv-7",
		"beacon", "atim", "disassoc", "auth",
		"deauth", "action", "action-noack", "rsrv-15",
	}
	if int(st) < len(names) {
		return names[st]
	}
	return "rsrv"
}

// decodeCapInfo parses the 16-bit Capability Information bitmap,
// IEEE 802.11-2012 8.4.1.4.
func decodeCapInfo(v uint16) map[string]int {
	return bitmaskList(capInfoBits, uint64(v))
}

func decodeFixedParams(c *cursor, r *MpduRecord) error {
	fp := r.FixedParams

	switch r.FrameCtrl.Subtype {
	case StMgmtAssocReq:
		cap, err := c.readUint16()
		if err != nil {
			return err
		}
		listenInt, err := c.readUint16()
		if err != nil {
			return err
		}
		fp["capability"] = decodeCapInfo(cap)
		fp["listen-int"] = listenInt

	case StMgmtAssocResp, StMgmtReassocResp:
		cap, err := c.readUint16()
		if err != nil {
			return err
		}
		status, err := c.readUint16()
		if err != nil {
			return err
		}
		aid, err := c.readUint16()
		if err != nil {
			return err
		}
		fp["capability"] = decodeCapInfo(cap)
		fp["status-code"] = status
		fp["aid"] = uint16(leastx(14, uint64(aid)))

	case StMgmtReassocReq:
		cap, err := c.readUint16()
		if err != nil {
			return err
		}
		listenInt, err := c.readUint16()
		if err != nil {
			return err
		}
		currentAP, err := c.readHwAddr()
		if err != nil {
			return err
		}
		fp["capability"] = decodeCapInfo(cap)
		fp["listen-int"] = listenInt
		fp["current-ap"] = currentAP

	case StMgmtProbeReq:
		// none; IEs only.

	case StMgmtTimingAdv:
		ts, err := c.readUint64()
		if err != nil {
			return err
		}
		cap, err := c.readUint16()
		if err != nil {
			return err
		}
		fp["timestamp"] = ts
		fp["capability"] = decodeCapInfo(cap)

	case StMgmtProbeResp, StMgmtBeacon:
		ts, err := c.readUint64()
		if err != nil {
			return err
		}
		beaconInt, err := c.readUint16()
		if err != nil {
			return err
		}
		cap, err := c.readUint16()
		if err != nil {
			return err
		}
		fp["timestamp"] = ts
		fp["beacon-int"] = uint32(beaconInt) * 1024
		fp["capability"] = decodeCapInfo(cap)

	case StMgmtDisassoc, StMgmtDeauth:
		reason, err := c.readUint16()
		if err != nil {
			return err
		}
		fp["reason-code"] = reason

	case StMgmtAuth:
		algo, err := c.readUint16()
		if err != nil {
			return err
		}
		seq, err := c.readUint16()
		if err != nil {
			return err
		}
		status, err := c.readUint16()
		if err != nil {
			return err
		}
		fp["algorithm-no"] = algo
		fp["auth-seq"] = seq
		fp["status-code"] = status

	case StMgmtAction, StMgmtActionNoack:
		category, err := c.readByte()
		if err != nil {
			return err
		}
		action, err := c.readByte()
		if err != nil {
			return err
		}
		fp["category"] = category
		fp["action"] = action

		rest, err := c.readBytes(c.remaining())
		if err == nil {
			r.ActionEl = rest
		}

	default:
		// ATIM and reserved subtypes carry no fixed parameters.
	}

	return nil
}
