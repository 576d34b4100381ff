// Copyright 2021 hhorai. All rights reserved.
// Use of this source code is governed by a MIT license that can be found
// in the LICENSE file.

package dot11

// WEP/TKIP/CCMP fixed offsets, grounded on
// _examples/original_source/itamae/_mpdu.py's _wep_/_tkip_/_ccmp_.
const (
	wepIVLen     = 4
	wepICVLen    = 4
	tkipHeaderLen = 8
	tkipMICLen   = 8
	tkipICVLen   = 4
	ccmpHeaderLen = 8
	ccmpMICLen   = 8
)

// decodeCrypt is invoked only when FrameCtrl.Flags["pf"] == 1. It
// inspects the first 4 post-header bytes to classify WEP/TKIP/CCMP,
// extracts the fixed-position fields, and advances c past the crypto
// header. Faults here are recoverable: they are appended under
// location "l3-crypt" and never abort the overall parse.
func decodeCrypt(c *cursor, r *MpduRecord, opts ParseOptions) {
	peek, err := c.readBytes(4)
	if err != nil {
		r.addErr("l3-crypt", err.Error())
		return
	}
	// readBytes advanced the cursor; rewind so the kind-specific
	// extractor below can re-read from the same starting point.
	c.pos -= 4

	b0, b1, b3 := peek[0], peek[1], peek[3]

	switch {
	case b3&0x20 == 0:
		decodeWEP(c, r)
	case (b0|0x20)&0x7F == b1:
		decodeTKIP(c, r)
	default:
		decodeCCMP(c, r, opts)
	}
}

func decodeWEP(c *cursor, r *MpduRecord) {
	iv, err := c.readBytes(wepIVLen)
	if err != nil {
		r.addErr("l3-crypt.wep", err.Error())
		return
	}
	keyID := uint8(mostx(6, uint64(iv[3])))

	var icv []byte
	if n := len(c.buf); n >= wepICVLen {
		icv = c.buf[n-wepICVLen:]
	} else {
		r.addErr("l3-crypt.wep", "buffer too short for icv")
	}

	r.L3Crypt = &L3Crypt{Kind: CryptWEP, IV: iv, KeyID: keyID, ICV: icv}
	r.Stripped += wepICVLen
	r.setPresent("l3-crypt")
}

func decodeTKIP(c *cursor, r *MpduRecord) {
	hdr, err := c.readBytes(tkipHeaderLen)
	if err != nil {
		r.addErr("l3-crypt.tkip", err.Error())
		return
	}

	keyIDByte := hdr[3]
	keyID := L3Crypt{
		Kind:    CryptTKIP,
		IV:      hdr[:4],
		ExtIV:   hdr[4:8],
		WEPSeed: hdr[1],
		KeyID:   uint8(mostx(6, uint64(keyIDByte))),
	}

	n := len(c.buf)
	if n >= tkipMICLen+tkipICVLen {
		keyID.MIC = c.buf[n-tkipMICLen-tkipICVLen : n-tkipICVLen]
		keyID.ICV = c.buf[n-tkipICVLen:]
	} else {
		r.addErr("l3-crypt.tkip", "buffer too short for mic/icv")
	}

	r.L3Crypt = &keyID
	r.Stripped += tkipMICLen + tkipICVLen
	r.setPresent("l3-crypt")
}

// ccmp post-header byte offsets, IEEE 802.11-2012 8.3.3.3.2.
const (
	ccmpPN0Byte   = 0
	ccmpPN1Byte   = 1
	ccmpRsrvByte  = 2
	ccmpKeyIDByte = 3
	ccmpPN2Byte   = 4
	ccmpPN3Byte   = 5
	ccmpPN4Byte   = 6
	ccmpPN5Byte   = 7
)

func decodeCCMP(c *cursor, r *MpduRecord, opts ParseOptions) {
	hdr, err := c.readBytes(ccmpHeaderLen)
	if err != nil {
		r.addErr("l3-crypt.ccmp", err.Error())
		return
	}

	pn5Idx := ccmpPN5Byte
	if opts.CCMPLegacyPN5 {
		// Reproduces the original decoder's read of pn5 from the
		// pn0 byte (index 0) instead of its own byte (index 7).
		pn5Idx = ccmpPN0Byte
	}

	pn := uint64(hdr[ccmpPN0Byte]) |
		uint64(hdr[ccmpPN1Byte])<<8 |
		uint64(hdr[ccmpPN2Byte])<<16 |
		uint64(hdr[ccmpPN3Byte])<<24 |
		uint64(hdr[ccmpPN4Byte])<<32 |
		uint64(hdr[pn5Idx])<<40

	crypt := L3Crypt{
		Kind:  CryptCCMP,
		IV:    hdr,
		KeyID: uint8(mostx(6, uint64(hdr[ccmpKeyIDByte]))),
		PN:    pn,
	}

	n := len(c.buf)
	if n >= ccmpMICLen {
		crypt.MIC = c.buf[n-ccmpMICLen:]
	} else {
		r.addErr("l3-crypt.ccmp", "buffer too short for mic")
	}

	r.L3Crypt = &crypt
	r.Stripped += ccmpMICLen
	r.setPresent("l3-crypt")
}
