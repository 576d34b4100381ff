// Copyright 2021 hhorai. All rights reserved.
// Use of this source code is governed by a MIT license that can be found
// in the LICENSE file.

package dot11

// decodeControl implements the control-frame subtype dispatch of
// IEEE 802.11-2012 8.3.1, grounded on
// _examples/original_source/itamae/_mpdu.py's _parsectrl_.
func decodeControl(c *cursor, r *MpduRecord, opts ParseOptions) {
	st := r.FrameCtrl.Subtype

	switch st {
	case StCtrlCts, StCtrlAck:
		// No additional fields.

	case StCtrlRts, StCtrlPspoll, StCtrlCfend, StCtrlCfendCfack:
		addr2, err := c.readHwAddr()
		if err != nil {
			r.addErr("ctrl", err.Error())
			return
		}
		r.Addr2 = addr2
		r.setPresent("addr2")

	case StCtrlBlockAckReq:
		decodeBar(c, r)

	case StCtrlBlockAck:
		decodeBa(c, r, opts)

	case StCtrlWrapper:
		decodeControlWrapper(c, r)

	default:
		r.addErr("ctrl", "invalid subtype")
	}
}

func decodeBaControl(c *cursor) (BaControl, error) {
	v, err := c.readUint16()
	if err != nil {
		return BaControl{}, err
	}
	return BaControl{
		Flags:   bitmaskList(baCtrlBits, uint64(v)),
		Rsrv:    midx(baCtrlRsrvStart, baCtrlRsrvLen, uint64(v)),
		TidInfo: mostx(baCtrlTidInfoStart, uint64(v)),
	}, nil
}

// baVariant derives the BA/BAR type from the (multi-tid, compressed-bm)
// pair, IEEE 802.11-2012 8.3.1.8/8.3.1.9.
func baVariant(bc BaControl) BaVariant {
	multiTid := bc.Flags["multi-tid"] == 1
	compressed := bc.Flags["compressed-bm"] == 1
	switch {
	case !multiTid && !compressed:
		return BaBasic
	case !multiTid && compressed:
		return BaCompressed
	case multiTid && !compressed:
		return BaReserved
	default:
		return BaMultiTid
	}
}

func decodeBar(c *cursor, r *MpduRecord) {
	addr2, err := c.readHwAddr()
	if err != nil {
		r.addErr("ctrl.ctrl-block-ack-req", err.Error())
		return
	}
	r.Addr2 = addr2
	r.setPresent("addr2")

	bc, err := decodeBaControl(c)
	if err != nil {
		r.addErr("ctrl.ctrl-block-ack-req.barcontrol", err.Error())
		return
	}
	r.BarCtrl = &bc
	r.BaVariant = baVariant(bc)
	r.setPresent("barcontrol")

	switch r.BaVariant {
	case BaBasic, BaCompressed:
		sc, err := decodeSeqCtrl(c)
		if err != nil {
			r.addErr("ctrl.ctrl-block-ack-req.barinfo", err.Error())
			return
		}
		r.BarInfo = &sc
		r.setPresent("barinfo")

	case BaReserved:
		rest, err := c.readBytes(c.remaining())
		if err != nil {
			r.addErr("ctrl.ctrl-block-ack-req.barinfo", err.Error())
			return
		}
		r.CarriedFrame = rest
		r.setPresent("barinfo")

	case BaMultiTid:
		records, err := decodePerTid(c, int(bc.TidInfo)+1, false, 0)
		if err != nil {
			r.addErr("ctrl.ctrl-block-ack-req.barinfo.tids", err.Error())
			return
		}
		r.PerTid = records
		r.setPresent("barinfo")
	}
}

func decodeBa(c *cursor, r *MpduRecord, opts ParseOptions) {
	addr2, err := c.readHwAddr()
	if err != nil {
		r.addErr("ctrl.ctrl-block-ack", err.Error())
		return
	}
	r.Addr2 = addr2
	r.setPresent("addr2")

	bc, err := decodeBaControl(c)
	if err != nil {
		r.addErr("ctrl.ctrl-block-ack.bacontrol", err.Error())
		return
	}
	r.BaCtrl = &bc
	r.BaVariant = baVariant(bc)
	r.setPresent("bacontrol")

	switch r.BaVariant {
	case BaBasic:
		sc, err := decodeSeqCtrl(c)
		if err != nil {
			r.addErr("ctrl.ctrl-block-ack.bainfo", err.Error())
			return
		}
		r.BarInfo = &sc

		bmLen := opts.BABitmapLen
		if bmLen <= 0 {
			bmLen = 128
		}
		bm, err := c.readBytes(bmLen)
		if err != nil {
			r.addErr("ctrl.ctrl-block-ack.bainfo.bitmap", err.Error())
			return
		}
		r.Bitmap = bm
		r.setPresent("bainfo")

	case BaCompressed:
		sc, err := decodeSeqCtrl(c)
		if err != nil {
			r.addErr("ctrl.ctrl-block-ack.bainfo", err.Error())
			return
		}
		r.BarInfo = &sc

		bm, err := c.readBytes(8)
		if err != nil {
			r.addErr("ctrl.ctrl-block-ack.bainfo.bitmap", err.Error())
			return
		}
		r.Bitmap = bm
		r.setPresent("bainfo")

	case BaReserved:
		rest, err := c.readBytes(c.remaining())
		if err != nil {
			r.addErr("ctrl.ctrl-block-ack.bainfo", err.Error())
			return
		}
		r.CarriedFrame = rest
		r.setPresent("bainfo")

	case BaMultiTid:
		records, err := decodePerTid(c, int(bc.TidInfo)+1, true, 8)
		if err != nil {
			r.addErr("ctrl.ctrl-block-ack.bainfo.tids", err.Error())
			return
		}
		r.PerTid = records
		r.setPresent("bainfo")
	}
}

// decodePerTid reads n (per-tid-info, seqctrl[, bitmap]) records,
// IEEE 802.11-2012 8.3.1.8.3/8.3.1.9.4.
func decodePerTid(c *cursor, n int, withBitmap bool, bitmapLen int) ([]PerTidRecord, error) {
	records := make([]PerTidRecord, 0, n)
	for i := 0; i < n; i++ {
		info, err := c.readUint16()
		if err != nil {
			return records, err
		}
		sc, err := decodeSeqCtrl(c)
		if err != nil {
			return records, err
		}
		rec := PerTidRecord{
			Tid:     uint8(mostx(12, uint64(info))),
			Rsrv:    uint8(leastx(12, uint64(info))),
			SeqCtrl: sc,
		}
		if withBitmap {
			bm, err := c.readBytes(bitmapLen)
			if err != nil {
				return records, err
			}
			rec.Bitmap = bm
		}
		records = append(records, rec)
	}
	return records, nil
}

func decodeControlWrapper(c *cursor, r *MpduRecord) {
	fc, err := c.readUint16()
	if err != nil {
		r.addErr("ctrl.ctrl-wrapper.carriedframectrl", err.Error())
		return
	}
	r.CarriedFrameCtrl = &fc
	r.setPresent("carriedframectrl")

	htc, err := c.readUint32()
	if err != nil {
		r.addErr("ctrl.ctrl-wrapper.carriedhtc", err.Error())
		return
	}
	r.CarriedHtc = &htc
	r.setPresent("carriedhtc")

	rest, err := c.readBytes(c.remaining())
	if err != nil {
		r.addErr("ctrl.ctrl-wrapper.carriedframe", err.Error())
		return
	}
	r.CarriedFrame = rest
	r.setPresent("carriedframe")
}
