// Copyright 2021 hhorai. All rights reserved.
// Use of this source code is governed by a MIT license that can be found
// in the LICENSE file.

package dot11

// Parse decodes a single IEEE 802.11-2012 MPDU from buf. opts.HasFCS
// tells the header decoder whether the trailing four bytes are a
// Frame Check Sequence to be stripped before type-specific parsing.
//
// A malformed frame never panics: structural faults past the
// mandatory header are accumulated into the returned record's Err
// field instead of aborting, per the state machine in the package
// design notes (header → type-branch → crypto).
func Parse(buf []byte, opts ParseOptions) (*MpduRecord, error) {
	r := newMpduRecord()

	if len(buf) == 0 {
		return r, nil
	}

	c, err := decodeHeader(buf, r, opts)
	if err != nil {
		_lg.WithError(err).Debug("header decode failed")
		return r, err
	}

	switch r.FrameCtrl.Type {
	case FtMgmt:
		decodeMgmt(c, r)
	case FtCtrl:
		decodeControl(c, r, opts)
	case FtData:
		decodeData(c, r)
	default:
		r.addErr("framectrl", "reserved frame type")
	}

	if r.FrameCtrl.Flags["pf"] == 1 {
		decodeCrypt(c, r, opts)
	}

	r.Offset = c.pos
	r.Body = c.buf[c.pos:]

	return r, nil
}
