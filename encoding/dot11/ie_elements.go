// Copyright 2021 hhorai. All rights reserved.
// Use of this source code is governed by a MIT license that can be found
// in the LICENSE file.

package dot11

import (
	"encoding/binary"

	"github.com/pkg/errors"
)

// decodeElement dispatches a single information element's payload to
// its per-EID decoder, IEEE 802.11-2012 8.4.2, grounded on _mpdu.py's
// _parseie_ dispatch table. Element IDs without a dedicated decoder
// fall back to UnknownElement, matching the original's {'rsrv': raw}
// stub behavior for EIDs it never implemented.
func decodeElement(eid uint8, payload []byte) (ElementValue, error) {
	switch eid {
	case EidSSID:
		return ElementValue{SSID: decodeSSID(payload)}, nil
	case EidSupportedRates:
		return ElementValue{SupportedRates: decodeRates(payload)}, nil
	case EidExtSuppRates:
		return ElementValue{ExtSuppRates: decodeRates(payload)}, nil
	case EidFHParameterSet:
		v, err := decodeFHParameterSet(payload)
		if err != nil {
			return ElementValue{}, err
		}
		return ElementValue{FHParameterSet: v}, nil
	case EidDSSSParameterSet:
		if len(payload) < 1 {
			return ElementValue{}, errors.New("short dsss parameter set")
		}
		return ElementValue{DSSSParameterSet: &DSSSParameterSetElement{CurrentChannel: payload[0]}}, nil
	case EidCFParameterSet:
		v, err := decodeCFParameterSet(payload)
		if err != nil {
			return ElementValue{}, err
		}
		return ElementValue{CFParameterSet: v}, nil
	case EidTIM:
		v, err := decodeTIM(payload)
		if err != nil {
			return ElementValue{}, err
		}
		return ElementValue{TIM: v}, nil
	case EidIBSSParameterSet:
		if len(payload) < 2 {
			return ElementValue{}, errors.New("short ibss parameter set")
		}
		return ElementValue{IBSSParameterSet: &IBSSParameterSetElement{
			ATIMWindow: binary.LittleEndian.Uint16(payload),
		}}, nil
	case EidCountry:
		v, err := decodeCountry(payload)
		if err != nil {
			return ElementValue{}, err
		}
		return ElementValue{Country: v}, nil
	case EidHoppingPatternParams:
		if len(payload) < 3 {
			return ElementValue{}, errors.New("short hopping pattern params")
		}
		return ElementValue{HoppingParams: &HoppingPatternParamsElement{
			Prime:         payload[0],
			NumChannels:   payload[1],
			RandTableFlag: payload[2],
		}}, nil
	case EidHoppingPatternTable:
		if len(payload) < 2 {
			return ElementValue{}, errors.New("short hopping pattern table")
		}
		return ElementValue{HoppingTable: &HoppingPatternTableElement{
			Flag:   payload[0],
			Number: payload[1],
			Raw:    payload[2:],
		}}, nil
	case EidRequest:
		return ElementValue{Request: &RequestElement{RequestedEIDs: append([]uint8(nil), payload...)}}, nil
	case EidBSSLoad:
		v, err := decodeBSSLoad(payload)
		if err != nil {
			return ElementValue{}, err
		}
		return ElementValue{BSSLoad: v}, nil
	case EidEDCAParameterSet:
		v, err := decodeEDCAParameterSet(payload)
		if err != nil {
			return ElementValue{}, err
		}
		return ElementValue{EDCAParameterSet: v}, nil
	case EidTSPEC:
		v, err := decodeTSPEC(payload)
		if err != nil {
			return ElementValue{}, err
		}
		return ElementValue{TSPEC: v}, nil
	case EidMeasurementRequest:
		v, err := decodeMeasurementRequest(payload)
		if err != nil {
			return ElementValue{}, err
		}
		return ElementValue{MeasurementRequest: v}, nil
	case EidMeasurementReport:
		v, err := decodeMeasurementReport(payload)
		if err != nil {
			return ElementValue{}, err
		}
		return ElementValue{MeasurementReport: v}, nil
	case EidTCLAS:
		return ElementValue{TCLAS: decodeTCLAS(payload)}, nil
	case EidChallengeText:
		return ElementValue{ChallengeText: &ChallengeTextElement{Challenge: payload}}, nil
	case EidPowerConstraint:
		if len(payload) < 1 {
			return ElementValue{}, errors.New("short power constraint")
		}
		return ElementValue{PowerConstraint: &PowerConstraintElement{LocalPowerConstraintDb: payload[0]}}, nil
	case EidPowerCapability:
		if len(payload) < 2 {
			return ElementValue{}, errors.New("short power capability")
		}
		return ElementValue{PowerCapability: &PowerCapabilityElement{
			MinTxPowerDbm: int8(payload[0]),
			MaxTxPowerDbm: int8(payload[1]),
		}}, nil
	case EidSupportedChannels:
		return ElementValue{SupportedChannels: decodeSupportedChannels(payload)}, nil
	case EidERPInfo:
		if len(payload) < 1 {
			return ElementValue{}, errors.New("short erp info")
		}
		return ElementValue{ERPInfo: &ERPInfoElement{Flags: bitmaskList(map[string]uint64{
			"non-erp":     1 << 0,
			"use-protect": 1 << 1,
			"barker":      1 << 2,
		}, uint64(payload[0]))}}, nil
	case EidHTCapabilities:
		v, err := decodeHTCapabilities(payload)
		if err != nil {
			return ElementValue{}, err
		}
		return ElementValue{HTCapabilities: v}, nil
	case EidHTOperation:
		v, err := decodeHTOperation(payload)
		if err != nil {
			return ElementValue{}, err
		}
		return ElementValue{HTOperation: v}, nil
	case EidQosCapability:
		if len(payload) < 1 {
			return ElementValue{}, errors.New("short qos capability")
		}
		return ElementValue{QosCapability: &QosCapabilityElement{QosInfo: bitmaskList(qosApBufferStateBits, uint64(payload[0]))}}, nil
	case EidRSNE:
		v, err := decodeRSNE(payload)
		if err != nil {
			return ElementValue{}, err
		}
		return ElementValue{RSNE: v}, nil
	case EidExtendedCapabilities:
		return ElementValue{ExtendedCapabilities: &ExtendedCapabilitiesElement{Capabilities: payload}}, nil
	case EidMeshConfiguration:
		v, err := decodeMeshConfiguration(payload)
		if err != nil {
			return ElementValue{}, err
		}
		return ElementValue{MeshConfiguration: v}, nil
	case EidMeshID:
		return ElementValue{MeshID: &MeshIDElement{MeshID: string(payload)}}, nil
	case EidNeighborReport:
		v, err := decodeNeighborReport(payload)
		if err != nil {
			return ElementValue{}, err
		}
		return ElementValue{NeighborReport: v}, nil
	case EidFTE:
		v, err := decodeFTE(payload)
		if err != nil {
			return ElementValue{}, err
		}
		return ElementValue{FTE: v}, nil
	case EidVendSpec:
		v, err := decodeVendorSpecific(payload)
		if err != nil {
			return ElementValue{}, err
		}
		return ElementValue{VendorSpecific: v}, nil
	default:
		return ElementValue{Unknown: &UnknownElement{Raw: payload}}, nil
	}
}

func decodeSSID(payload []byte) *SSIDElement {
	return &SSIDElement{SSID: string(payload)}
}

// decodeRates converts each byte to a rate in Mbps:
// (byte & 0x7F) * 0.5, and records whether the BSSBasicRateSet bit
// (the high bit) was set.
func decodeRates(payload []byte) *RatesElement {
	out := &RatesElement{
		RatesMbps: make([]float64, len(payload)),
		Basic:     make([]bool, len(payload)),
	}
	for i, b := range payload {
		out.RatesMbps[i] = float64(leastx(7, uint64(b))) * 0.5
		out.Basic[i] = b&0x80 != 0
	}
	return out
}

func decodeFHParameterSet(payload []byte) (*FHParameterSetElement, error) {
	if len(payload) < 5 {
		return nil, errors.New("short fh parameter set")
	}
	return &FHParameterSetElement{
		DwellTime:  binary.LittleEndian.Uint16(payload),
		HopSet:     payload[2],
		HopPattern: payload[3],
		HopIndex:   payload[4],
	}, nil
}

func decodeCFParameterSet(payload []byte) (*CFParameterSetElement, error) {
	if len(payload) < 6 {
		return nil, errors.New("short cf parameter set")
	}
	return &CFParameterSetElement{
		CFPCount:        payload[0],
		CFPPeriod:       payload[1],
		CFPMaxDuration:  binary.LittleEndian.Uint16(payload[2:]),
		CFPDurRemaining: binary.LittleEndian.Uint16(payload[4:]),
	}, nil
}

// decodeTIM follows IEEE 802.11-2012 8.4.2.7: dtim-cnt, dtim-per, a
// bitmap-control octet ({tib: bit0, offset: bits1..7}), then the
// remainder as the partial virtual bitmap.
func decodeTIM(payload []byte) (*TIMElement, error) {
	if len(payload) < 3 {
		return nil, errors.New("short tim")
	}
	return &TIMElement{
		DTIMCount:   payload[0],
		DTIMPeriod:  payload[1],
		BmapCtrl:    bitmaskList(map[string]uint64{"tib": 1 << 0}, uint64(payload[2])),
		BmapOffset:  uint8(mostx(1, uint64(payload[2]))),
		VirtualBmap: payload[3:],
	}, nil
}

// decodeCountry follows IEEE 802.11-2012 8.4.2.10: a 3-byte country
// string followed by repeating (first-channel, num-channels,
// max-tx-power) triplets, with one pad byte if the triplet stream has
// a remainder.
func decodeCountry(payload []byte) (*CountryElement, error) {
	if len(payload) < 3 {
		return nil, errors.New("short country")
	}
	out := &CountryElement{CountryString: string(payload[:3])}
	rest := payload[3:]
	n := len(rest) / 3
	for i := 0; i < n; i++ {
		t := rest[i*3 : i*3+3]
		out.Triplets = append(out.Triplets, CountryTriplet{
			FirstChannel: t[0],
			NumChannels:  t[1],
			MaxTxPower:   int8(t[2]),
		})
	}
	return out, nil
}

func decodeBSSLoad(payload []byte) (*BSSLoadElement, error) {
	if len(payload) < 5 {
		return nil, errors.New("short bss load")
	}
	return &BSSLoadElement{
		StationCount:       binary.LittleEndian.Uint16(payload),
		ChannelUtilization: payload[2],
		AvailAdmCapacity:   binary.LittleEndian.Uint16(payload[3:]),
	}, nil
}

func decodeEDCAACI(b byte) EDCAParamRecord {
	return EDCAParamRecord{
		ACI:   uint8(midx(5, 2, uint64(b))),
		ACM:   int(midx(4, 1, uint64(b))),
		AIFSN: uint8(leastx(4, uint64(b))),
	}
}

func decodeEDCAECW(b byte) (uint8, uint8) {
	return uint8(leastx(4, uint64(b))), uint8(mostx(4, uint64(b)))
}

// decodeEDCAParameterSet follows IEEE 802.11-2012 8.4.2.31: a 1-byte
// QoS Info field, a reserved byte, then four 4-byte per-AC records
// (ACI/AIFSN, ECWmin/max, TXOP limit) in AC_BE/AC_BK/AC_VI/AC_VO order.
func decodeEDCAParameterSet(payload []byte) (*EDCAParameterSetElement, error) {
	if len(payload) < 18 {
		return nil, errors.New("short edca parameter set")
	}
	out := &EDCAParameterSetElement{
		QosInfo: bitmaskList(qosApBufferStateBits, uint64(payload[0])),
	}
	recs := [4]*EDCAParamRecord{&out.BE, &out.BK, &out.VI, &out.VO}
	off := 2
	for _, rec := range recs {
		*rec = decodeEDCAACI(payload[off])
		min, max := decodeEDCAECW(payload[off+1])
		rec.ECWmin = min
		rec.ECWmax = max
		rec.TXOPLimit = binary.LittleEndian.Uint16(payload[off+2:])
		off += 4
	}
	return out, nil
}

// decodeTSInfo unpacks the 3-byte TS Info field, IEEE 802.11-2012
// Figure 8-196.
func decodeTSInfo(payload []byte) TSInfo {
	v := uint64(payload[0]) | uint64(payload[1])<<8 | uint64(payload[2])<<16
	return TSInfo{
		TrafficType:  uint8(midx(0, 1, v)),
		TSID:         uint8(midx(1, 4, v)),
		Direction:    uint8(midx(5, 2, v)),
		AccessPolicy: uint8(midx(7, 2, v)),
		Aggregation:  int(midx(9, 1, v)),
		APSD:         int(midx(10, 1, v)),
		UserPriority: uint8(midx(11, 3, v)),
		AckPolicy:    uint8(midx(14, 2, v)),
		Schedule:     int(midx(16, 1, v)),
	}
}

// decodeTSPEC follows IEEE 802.11-2012 8.4.2.32 Figure 8-195: the
// 3-byte TS Info field followed by 15 fixed-width numeric fields.
func decodeTSPEC(payload []byte) (*TSPECElement, error) {
	if len(payload) < 55 {
		return nil, errors.New("short tspec")
	}
	out := &TSPECElement{TSInfo: decodeTSInfo(payload[0:3])}
	p := payload[3:]
	out.NominalMSDUSize = binary.LittleEndian.Uint16(p[0:])
	out.MaxMSDUSize = binary.LittleEndian.Uint16(p[2:])
	out.MinServiceInterval = binary.LittleEndian.Uint32(p[4:])
	out.MaxServiceInterval = binary.LittleEndian.Uint32(p[8:])
	out.InactivityInterval = binary.LittleEndian.Uint32(p[12:])
	out.SuspensionInterval = binary.LittleEndian.Uint32(p[16:])
	out.ServiceStartTime = binary.LittleEndian.Uint32(p[20:])
	out.MinDataRate = binary.LittleEndian.Uint32(p[24:])
	out.MeanDataRate = binary.LittleEndian.Uint32(p[28:])
	out.PeakDataRate = binary.LittleEndian.Uint32(p[32:])
	out.MaxBurstSize = binary.LittleEndian.Uint32(p[36:])
	out.DelayBound = binary.LittleEndian.Uint32(p[40:])
	out.MinPhyRate = binary.LittleEndian.Uint32(p[44:])
	out.SurplusBwAllowance = binary.LittleEndian.Uint16(p[48:])
	out.MediumTime = binary.LittleEndian.Uint16(p[50:])
	return out, nil
}

// decodeTCLAS follows IEEE 802.11-2012 8.4.2.33 Figure 8-199:
// user-priority, classifier-type, classifier-mask, then a
// classifier-type-dispatched parameter body, per Table 8-113/8-114.
func decodeTCLAS(payload []byte) *TCLASElement {
	out := &TCLASElement{Raw: payload}
	if len(payload) < 3 {
		return out
	}
	out.UserPriority = payload[0]
	out.ClassifierType = payload[1]
	out.ClassifierMask = payload[2]
	body := payload[3:]

	switch out.ClassifierType {
	case TclasTypeEthernet:
		if len(body) < 14 {
			return out
		}
		var src, dst HwAddr
		copy(src[:], body[0:6])
		copy(dst[:], body[6:12])
		out.Ethernet = &TCLASEthernetParams{
			SrcAddr:   src,
			DestAddr:  dst,
			EtherType: binary.LittleEndian.Uint16(body[12:14]),
		}
	case TclasTypeTCPUDPIP, TclasTypeIP:
		out.IP = decodeTCLASIPParams(body)
	case TclasType8021Q:
		if len(body) < 2 {
			return out
		}
		out.Dot1Q = &TCLAS8021QParams{TCI: binary.LittleEndian.Uint16(body)}
	case TclasTypeFilterOffset:
		if len(body) < 2 {
			return out
		}
		off := binary.LittleEndian.Uint16(body)
		rest := body[2:]
		n := len(rest) / 2
		out.FilterOffset = &TCLASFilterOffsetParams{
			Offset: off,
			Value:  append([]byte(nil), rest[:n]...),
			Mask:   append([]byte(nil), rest[n:2*n]...),
		}
	case TclasType8021D:
		if len(body) < 3 {
			return out
		}
		out.Dot1D = &TCLAS8021DParams{
			Tag:    body[0],
			VLANID: binary.LittleEndian.Uint16(body[1:3]),
		}
	}
	return out
}

// decodeTCLASIPParams decodes the shared TCP/UDP-IP / IP-and-higher-layer
// classifier body. An embedded version byte (4 or 6) selects the
// IPv4 or IPv6 sub-variant, IEEE 802.11-2012 Table 8-114.
func decodeTCLASIPParams(body []byte) *TCLASIPParams {
	if len(body) < 1 {
		return nil
	}
	out := &TCLASIPParams{Version: body[0]}
	switch out.Version {
	case 4:
		if len(body) < 1+4+4+2+2+1+1 {
			return out
		}
		p := body[1:]
		out.SrcIP = append([]byte(nil), p[0:4]...)
		out.DestIP = append([]byte(nil), p[4:8]...)
		out.SrcPort = binary.LittleEndian.Uint16(p[8:10])
		out.DestPort = binary.LittleEndian.Uint16(p[10:12])
		out.DSCP = p[12]
		out.Protocol = p[13]
	case 6:
		if len(body) < 1+16+16+2+2+3+1 {
			return out
		}
		p := body[1:]
		out.SrcIP = append([]byte(nil), p[0:16]...)
		out.DestIP = append([]byte(nil), p[16:32]...)
		out.SrcPort = binary.LittleEndian.Uint16(p[32:34])
		out.DestPort = binary.LittleEndian.Uint16(p[34:36])
		out.FlowLabel = uint32(p[36]) | uint32(p[37])<<8 | uint32(p[38])<<16
		out.Protocol = p[39]
	}
	return out
}

func decodeSupportedChannels(payload []byte) *SupportedChannelsElement {
	out := &SupportedChannelsElement{}
	for i := 0; i+1 < len(payload); i += 2 {
		out.FirstChannels = append(out.FirstChannels, payload[i])
		out.NumChannels = append(out.NumChannels, payload[i+1])
	}
	return out
}

// decodeMCSSet unpacks the 16-byte Supported MCS Set field shared by
// HT Capabilities and HT Operation, IEEE 802.11-2012 Figure 8-251.
func decodeMCSSet(b []byte) MCSSet {
	ext := binary.LittleEndian.Uint16(b[8:10])
	tx := binary.LittleEndian.Uint16(b[10:12])
	last := binary.LittleEndian.Uint32(b[12:16])
	return MCSSet{
		RxMCSBitmask:           binary.LittleEndian.Uint64(b[0:8]),
		RxBitmapExtension:      uint16(midx(0, 13, uint64(ext))),
		TxHighestSupportedRate: uint16(midx(0, 10, uint64(tx))),
		TxMCSSetDefined:        int(midx(0, 1, uint64(last))),
		TxRxMCSSetUnequal:      int(midx(1, 1, uint64(last))),
		TxMaxSpatialStreams:    uint8(midx(2, 2, uint64(last))),
		TxUnequalModulation:    int(midx(4, 1, uint64(last))),
	}
}

// decodeHTCapabilities follows IEEE 802.11-2012 8.4.2.58: a 2-byte
// capability bitmap, 1-byte A-MPDU parameters, 16-byte supported MCS
// set, 2-byte HT extended capabilities, 4-byte TX beamforming
// capabilities, 1-byte ASEL capabilities. sm-ps and rx-stbc are 2-bit
// value subfields, not flags, so they're pulled out of CapInfo into
// their own numeric fields.
func decodeHTCapabilities(payload []byte) (*HTCapabilitiesElement, error) {
	if len(payload) < 26 {
		return nil, errors.New("short ht capabilities")
	}
	capBits := uint64(binary.LittleEndian.Uint16(payload))
	extCap := uint64(binary.LittleEndian.Uint16(payload[19:21]))
	beamform := uint64(binary.LittleEndian.Uint32(payload[21:25]))
	asel := uint64(payload[25])

	return &HTCapabilitiesElement{
		CapInfo: bitmaskList(map[string]uint64{
			"ldpc-coding":        1 << 0,
			"supported-chan-width": 1 << 1,
			"green-field":        1 << 4,
			"short-gi-20":        1 << 5,
			"short-gi-40":        1 << 6,
			"tx-stbc":            1 << 7,
			"ht-delayed-block-ack": 1 << 10,
			"max-amsdu-length":   1 << 11,
			"dsss-cck-mode-40":   1 << 12,
			"40mhz-intolerant":   1 << 14,
			"lsig-txop-protection": 1 << 15,
		}, capBits),
		SmPowerSave: uint8(midx(2, 2, capBits)),
		RxSTBC:      uint8(midx(8, 2, capBits)),

		AMPDUParams:         payload[2],
		MaxAMPDULength:      uint8(midx(0, 2, uint64(payload[2]))),
		MinMPDUStartSpacing: uint8(midx(2, 3, uint64(payload[2]))),

		MCSSet: decodeMCSSet(payload[3:19]),

		HTExtendedCap: bitmaskList(map[string]uint64{
			"htc":     1 << 10,
			"rd-resp": 1 << 11,
		}, extCap),
		PCOTransitionTime: uint8(midx(1, 2, extCap)),
		MCSFeedback:       uint8(midx(8, 2, extCap)),

		TxBeamforming: bitmaskList(map[string]uint64{
			"implicit-tx-bf-receiving": 1 << 0,
			"rx-staggered-sounding":    1 << 1,
			"tx-staggered-sounding":    1 << 2,
			"rx-ndp":                  1 << 3,
			"tx-ndp":                  1 << 4,
			"implicit-tx-bf":          1 << 5,
			"explicit-csi-tx-bf":      1 << 8,
			"explicit-noncomp-steering": 1 << 10,
			"explicit-comp-steering":  1 << 12,
			"explicit-tx-bf-csi-feedback": 1 << 14,
			"explicit-noncomp-bf-feedback": 1 << 16,
			"explicit-comp-bf-feedback":  1 << 18,
			"minimal-grouping":        1 << 20,
			"csi-max-rows-beamformer": 1 << 22,
			"channel-estimation-cap":  1 << 27,
		}, beamform),
		CalibrationValue:          uint8(midx(6, 2, beamform)),
		MinGroupingValue:          uint8(midx(11, 2, beamform)),
		CSINumBeamformerSupported: uint8(midx(13, 2, beamform)),
		NoncompSteeringNumBeamformerSupported: uint8(midx(15, 2, beamform)),
		CompSteeringNumBeamformerSupported:    uint8(midx(17, 2, beamform)),
		CSIMaxNumRowsBeamformer:   uint8(midx(19, 2, beamform)),
		ChannelEstimationCap:      uint8(midx(21, 2, beamform)),

		ASELCap: bitmaskList(map[string]uint64{
			"asel":                      1 << 0,
			"explicit-csi-feedback-tx-asel": 1 << 1,
			"antenna-idx-feedback-tx-asel":  1 << 2,
			"explicit-csi-feedback":         1 << 3,
			"antenna-idx-feedback":          1 << 4,
			"rx-asel":                       1 << 5,
			"tx-sounding-ppdus":             1 << 6,
		}, asel),
	}, nil
}

// decodeHTOperation follows IEEE 802.11-2012 8.4.2.59: a 1-byte
// primary channel, the 5-byte HT Operation Information field split
// 1/2/2 bytes, and the 16-byte Supported MCS Set.
func decodeHTOperation(payload []byte) (*HTOperationElement, error) {
	if len(payload) < 22 {
		return nil, errors.New("short ht operation")
	}
	b1 := uint64(payload[1])
	b23 := uint64(binary.LittleEndian.Uint16(payload[2:4]))
	b45 := uint64(binary.LittleEndian.Uint16(payload[4:6]))

	return &HTOperationElement{
		PrimaryChannel: payload[0],
		OpInfo: HTOperationInfo{
			SecondaryChannelOffset: uint8(midx(0, 2, b1)),
			STAChannelWidth:        int(midx(2, 1, b1)),
			RIFSMode:               int(midx(3, 1, b1)),
			HTProtection:           uint8(midx(0, 2, b23)),
			NonGreenfieldPresent:   int(midx(2, 1, b23)),
			OBSSNonHTPresent:       int(midx(4, 1, b23)),
			DualBeacon:             int(midx(6, 1, b45)),
			DualCTSProtection:      int(midx(7, 1, b45)),
			STBCBeacon:             int(midx(8, 1, b45)),
			LSIGTXOPProtection:     int(midx(9, 1, b45)),
			PCOActive:              int(midx(10, 1, b45)),
			PCOPhase:               int(midx(11, 1, b45)),
		},
		MCSSet: decodeMCSSet(payload[6:22]),
	}, nil
}

func decodeSuiteSelector(b []byte) SuiteSelector {
	var s SuiteSelector
	copy(s.OUI[:], b[0:3])
	s.SuiteType = b[3]
	return s
}

func decodeSuiteSelectorList(b []byte, n int) []SuiteSelector {
	out := make([]SuiteSelector, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, decodeSuiteSelector(b[i*4:i*4+4]))
	}
	return out
}

// decodeRSNE follows the optional-field chain of IEEE 802.11-2012
// 8.4.2.27: beyond the mandatory 2-byte version, group-data-cipher,
// pairwise-cipher list, AKM list, RSN capabilities, PMKID list, and
// group-management-cipher are each present only if enough bytes
// remain.
func decodeRSNE(payload []byte) (*RSNEElement, error) {
	if len(payload) < 2 {
		return nil, errors.New("short rsne")
	}
	out := &RSNEElement{Version: binary.LittleEndian.Uint16(payload)}
	p := payload[2:]

	if len(p) < 4 {
		return out, nil
	}
	gdc := decodeSuiteSelector(p[0:4])
	out.GroupDataCipherSuite = &gdc
	p = p[4:]

	if len(p) < 2 {
		return out, nil
	}
	n := int(binary.LittleEndian.Uint16(p))
	p = p[2:]
	if len(p) < n*4 {
		return out, nil
	}
	out.PairwiseCipherSuites = decodeSuiteSelectorList(p, n)
	p = p[n*4:]

	if len(p) < 2 {
		return out, nil
	}
	n = int(binary.LittleEndian.Uint16(p))
	p = p[2:]
	if len(p) < n*4 {
		return out, nil
	}
	out.AKMSuites = decodeSuiteSelectorList(p, n)
	p = p[n*4:]

	if len(p) < 2 {
		return out, nil
	}
	out.RSNCapabilities = bitmaskList(map[string]uint64{
		"preauth":            1 << 0,
		"no-pairwise":        1 << 1,
		"mfpr":               1 << 6,
		"mfpc":               1 << 7,
		"peerkey-enabled":    1 << 9,
		"spp-a-msdu-capable": 1 << 10,
		"spp-a-msdu-required": 1 << 11,
		"pbac":               1 << 12,
		"extended-key-id":    1 << 13,
	}, uint64(binary.LittleEndian.Uint16(p)))
	p = p[2:]

	if len(p) < 2 {
		return out, nil
	}
	n = int(binary.LittleEndian.Uint16(p))
	p = p[2:]
	if len(p) < n*16 {
		return out, nil
	}
	for i := 0; i < n; i++ {
		var id [16]byte
		copy(id[:], p[i*16:i*16+16])
		out.PMKIDs = append(out.PMKIDs, id)
	}
	p = p[n*16:]

	if len(p) < 4 {
		return out, nil
	}
	gmc := decodeSuiteSelector(p[0:4])
	out.GroupMgmtCipherSuite = &gmc

	return out, nil
}

// decodeMeshConfiguration follows IEEE 802.11-2012 8.4.2.100: five
// 1-byte selector fields followed by a 1-byte capabilities bitmap.
func decodeMeshConfiguration(payload []byte) (*MeshConfigurationElement, error) {
	if len(payload) < 6 {
		return nil, errors.New("short mesh configuration")
	}
	return &MeshConfigurationElement{
		PathSelProtocol: payload[0],
		PathSelMetric:   payload[1],
		CongestionCtrl:  payload[2],
		SyncMethod:      payload[3],
		AuthProtocol:    payload[4],
		Capabilities: bitmaskList(map[string]uint64{
			"accepting-peerings":  1 << 0,
			"mcca-supported":      1 << 1,
			"mcca-enabled":        1 << 2,
			"forwarding":          1 << 3,
			"mbca-enabled":        1 << 4,
			"tbtt-adjusting":      1 << 5,
			"ps-level":            1 << 6,
		}, uint64(payload[5])),
	}, nil
}

func decodeVendorSpecific(payload []byte) (*VendorSpecificElement, error) {
	if len(payload) < 3 {
		return nil, errors.New("short vendor specific")
	}
	out := &VendorSpecificElement{Data: payload[3:]}
	copy(out.OUI[:], payload[:3])
	if len(payload) >= 4 {
		out.OUIType = payload[3]
	}
	return out, nil
}
