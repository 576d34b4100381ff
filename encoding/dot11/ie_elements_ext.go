// Copyright 2021 hhorai. All rights reserved.
// Use of this source code is governed by a MIT license that can be found
// in the LICENSE file.

package dot11

import (
	"encoding/binary"

	"github.com/pkg/errors"
)

var measRequestModeBits = map[string]uint64{
	"parallel":       1 << 0,
	"enable":         1 << 1,
	"request":        1 << 2,
	"report":         1 << 3,
	"dur-mandatory":  1 << 4,
}

var measReportModeBits = map[string]uint64{
	"late":      1 << 0,
	"incapable": 1 << 1,
	"refused":   1 << 2,
}

// measStaStatsGroupLen maps a STA Statistics group ID to its fixed
// report body length, IEEE 802.11-2012 Table 8-80.
var measStaStatsGroupLen = map[uint8]int{
	0: 28, 1: 24, 2: 52, 3: 52, 4: 52, 5: 52, 6: 52, 7: 52,
	8: 52, 9: 52, 10: 8, 11: 40, 12: 36, 13: 36, 14: 36, 15: 20, 16: 28,
}

// MeasBasicRequest covers the Basic, CCA, and RPI Histogram
// measurement request types, which share a channel/start-time/
// duration body, IEEE 802.11-2012 8.4.2.23.
type MeasBasicRequest struct {
	Channel   uint8
	StartTime uint64
	Duration  uint16
}

func decodeMeasBasicRequest(body []byte) (*MeasBasicRequest, []byte) {
	if len(body) < 11 {
		return nil, body
	}
	return &MeasBasicRequest{
		Channel:   body[0],
		StartTime: binary.LittleEndian.Uint64(body[1:9]),
		Duration:  binary.LittleEndian.Uint16(body[9:11]),
	}, body[11:]
}

// MeasChannelLoadRequest, IEEE 802.11-2012 8.4.2.23.3.
type MeasChannelLoadRequest struct {
	OpClass   uint8
	Channel   uint8
	StartTime uint64
	Duration  uint16
}

// MeasNoiseRequest, IEEE 802.11-2012 8.4.2.23.4, shares the channel
// load request's fixed body.
type MeasNoiseRequest = MeasChannelLoadRequest

func decodeMeasChannelLoadRequest(body []byte) (*MeasChannelLoadRequest, []byte) {
	if len(body) < 12 {
		return nil, body
	}
	return &MeasChannelLoadRequest{
		OpClass:   body[0],
		Channel:   body[1],
		StartTime: binary.LittleEndian.Uint64(body[2:10]),
		Duration:  binary.LittleEndian.Uint16(body[10:12]),
	}, body[12:]
}

// MeasBeaconRequest, IEEE 802.11-2012 8.4.2.23.6.
type MeasBeaconRequest struct {
	OpClass   uint8
	Channel   uint8
	StartTime uint64
	Duration  uint16
	Mode      uint8
	BSSID     HwAddr
}

func decodeMeasBeaconRequest(body []byte) (*MeasBeaconRequest, []byte) {
	if len(body) < 19 {
		return nil, body
	}
	out := &MeasBeaconRequest{
		OpClass:   body[0],
		Channel:   body[1],
		StartTime: binary.LittleEndian.Uint64(body[2:10]),
		Duration:  binary.LittleEndian.Uint16(body[10:12]),
		Mode:      body[12],
	}
	copy(out.BSSID[:], body[13:19])
	return out, body[19:]
}

// MeasFrameRequest, IEEE 802.11-2012 8.4.2.23.7.
type MeasFrameRequest struct {
	OpClass         uint8
	Channel         uint8
	StartTime       uint64
	Duration        uint16
	FrameRequestType uint8
	MACAddr         HwAddr
}

func decodeMeasFrameRequest(body []byte) (*MeasFrameRequest, []byte) {
	if len(body) < 19 {
		return nil, body
	}
	out := &MeasFrameRequest{
		OpClass:          body[0],
		Channel:          body[1],
		StartTime:        binary.LittleEndian.Uint64(body[2:10]),
		Duration:         binary.LittleEndian.Uint16(body[10:12]),
		FrameRequestType: body[12],
	}
	copy(out.MACAddr[:], body[13:19])
	return out, body[19:]
}

// MeasSTARequest, the STA Statistics measurement request, IEEE
// 802.11-2012 8.4.2.23.8. RandInterval and MsmtDuration are 2-byte
// fields, not 1-byte as a surface reading of the struct format might
// suggest.
type MeasSTARequest struct {
	PeerMAC      HwAddr
	RandInterval uint16
	MsmtDuration uint16
	GroupID      uint8
}

func decodeMeasSTARequest(body []byte) (*MeasSTARequest, []byte) {
	if len(body) < 11 {
		return nil, body
	}
	out := &MeasSTARequest{
		RandInterval: binary.LittleEndian.Uint16(body[6:8]),
		MsmtDuration: binary.LittleEndian.Uint16(body[8:10]),
		GroupID:      body[10],
	}
	copy(out.PeerMAC[:], body[0:6])
	return out, body[11:]
}

// MeasLCIRequest, IEEE 802.11-2012 8.4.2.23.9.
type MeasLCIRequest struct {
	LocationSubject uint8
}

// MeasPauseRequest, IEEE 802.11-2012 8.4.2.23.13.
type MeasPauseRequest struct {
	PauseTime uint16
}

// MeasurementRequestElement, IEEE 802.11-2012 8.4.2.23. Exactly one of
// the type-specific fields is populated, selected by Type; request
// types whose body the original decodes only to raw bytes (TX Stream,
// Multicast Diagnostics, Location Civic, Location Identifier) fall
// back to Raw plus the generic sub-element walk.
type MeasurementRequestElement struct {
	Token uint8
	Mode  map[string]int
	Type  uint8

	Basic       *MeasBasicRequest
	ChannelLoad *MeasChannelLoadRequest
	Noise       *MeasNoiseRequest
	Beacon      *MeasBeaconRequest
	Frame       *MeasFrameRequest
	STA         *MeasSTARequest
	LCI         *MeasLCIRequest
	Pause       *MeasPauseRequest

	Raw         []byte
	SubElements []subElement
}

// decodeMeasurementRequest dispatches the 3-byte common header
// (token, mode, type) to a type-specific request body decoder,
// grounded on _mpdu.py's _iesubelmsmtreq* handlers.
func decodeMeasurementRequest(payload []byte) (*MeasurementRequestElement, error) {
	if len(payload) < 3 {
		return nil, errors.New("short measurement request")
	}
	out := &MeasurementRequestElement{
		Token: payload[0],
		Mode:  bitmaskList(measRequestModeBits, uint64(payload[1])),
		Type:  payload[2],
	}
	body := payload[3:]

	switch out.Type {
	case EidMeasTypeBasic, EidMeasTypeCCA, EidMeasTypeRPIHist:
		out.Basic, body = decodeMeasBasicRequest(body)
	case EidMeasTypeChLoad:
		out.ChannelLoad, body = decodeMeasChannelLoadRequest(body)
	case EidMeasTypeNoiseHist:
		out.Noise, body = decodeMeasChannelLoadRequest(body)
	case EidMeasTypeBeacon:
		out.Beacon, body = decodeMeasBeaconRequest(body)
	case EidMeasTypeFrame:
		out.Frame, body = decodeMeasFrameRequest(body)
	case EidMeasTypeSTAStats:
		out.STA, body = decodeMeasSTARequest(body)
	case EidMeasTypeLCI:
		if len(body) >= 1 {
			out.LCI = &MeasLCIRequest{LocationSubject: body[0]}
			body = body[1:]
		}
	case EidMeasTypePause:
		if len(body) >= 2 {
			out.Pause = &MeasPauseRequest{PauseTime: binary.LittleEndian.Uint16(body)}
			body = body[2:]
		}
	default:
		// TX Stream, Multicast Diagnostics, Location Civic and
		// Location Identifier requests decode via the generic
		// sub-element walk only.
	}

	out.Raw = body
	out.SubElements = walkSubElements(body)
	return out, nil
}

// MeasBasicReport, IEEE 802.11-2012 8.4.2.24.2.
type MeasBasicReport struct {
	Channel   uint8
	StartTime uint64
	Duration  uint16
	Map       map[string]int
}

func decodeMeasBasicReport(body []byte) (*MeasBasicReport, []byte) {
	if len(body) < 12 {
		return nil, body
	}
	return &MeasBasicReport{
		Channel:   body[0],
		StartTime: binary.LittleEndian.Uint64(body[1:9]),
		Duration:  binary.LittleEndian.Uint16(body[9:11]),
		Map: bitmaskList(map[string]uint64{
			"bss":             1 << 0,
			"ohter-bss":       1 << 1,
			"radar":           1 << 2,
			"unmeasured":      1 << 3,
		}, uint64(body[11])),
	}, body[12:]
}

// MeasCCAReport, IEEE 802.11-2012 8.4.2.24.3.
type MeasCCAReport struct {
	Channel       uint8
	StartTime     uint64
	Duration      uint16
	CCABusyFraction uint8
}

func decodeMeasCCAReport(body []byte) (*MeasCCAReport, []byte) {
	if len(body) < 12 {
		return nil, body
	}
	return &MeasCCAReport{
		Channel:         body[0],
		StartTime:       binary.LittleEndian.Uint64(body[1:9]),
		Duration:        binary.LittleEndian.Uint16(body[9:11]),
		CCABusyFraction: body[11],
	}, body[12:]
}

// MeasRPIReport, IEEE 802.11-2012 8.4.2.24.4.
type MeasRPIReport struct {
	Channel    uint8
	StartTime  uint64
	Duration   uint16
	RPIDensity [8]byte
}

func decodeMeasRPIReport(body []byte) (*MeasRPIReport, []byte) {
	if len(body) < 19 {
		return nil, body
	}
	out := &MeasRPIReport{
		Channel:   body[0],
		StartTime: binary.LittleEndian.Uint64(body[1:9]),
		Duration:  binary.LittleEndian.Uint16(body[9:11]),
	}
	copy(out.RPIDensity[:], body[11:19])
	return out, body[19:]
}

// MeasChannelLoadReport, IEEE 802.11-2012 8.4.2.24.5.
type MeasChannelLoadReport struct {
	OpClass     uint8
	Channel     uint8
	StartTime   uint64
	Duration    uint16
	ChannelLoad uint8
}

func decodeMeasChannelLoadReport(body []byte) (*MeasChannelLoadReport, []byte) {
	if len(body) < 13 {
		return nil, body
	}
	return &MeasChannelLoadReport{
		OpClass:     body[0],
		Channel:     body[1],
		StartTime:   binary.LittleEndian.Uint64(body[2:10]),
		Duration:    binary.LittleEndian.Uint16(body[10:12]),
		ChannelLoad: body[12],
	}, body[13:]
}

// MeasNoiseReport, IEEE 802.11-2012 8.4.2.24.6.
type MeasNoiseReport struct {
	OpClass    uint8
	Channel    uint8
	StartTime  uint64
	Duration   uint16
	AntennaID  uint8
	ANPI       uint8
	IPIDensity [11]byte
}

func decodeMeasNoiseReport(body []byte) (*MeasNoiseReport, []byte) {
	if len(body) < 25 {
		return nil, body
	}
	out := &MeasNoiseReport{
		OpClass:   body[0],
		Channel:   body[1],
		StartTime: binary.LittleEndian.Uint64(body[2:10]),
		Duration:  binary.LittleEndian.Uint16(body[10:12]),
		AntennaID: body[12],
		ANPI:      body[13],
	}
	copy(out.IPIDensity[:], body[14:25])
	return out, body[25:]
}

// MeasBeaconReport, IEEE 802.11-2012 8.4.2.24.7.
type MeasBeaconReport struct {
	OpClass          uint8
	Channel          uint8
	StartTime        uint64
	Duration         uint16
	ReportedFrameInfo uint8
	RCPI             uint8
	RSNI             uint8
	BSSID            HwAddr
	AntennaID        uint8
	ParentTSF        uint32
}

func decodeMeasBeaconReport(body []byte) (*MeasBeaconReport, []byte) {
	if len(body) < 26 {
		return nil, body
	}
	out := &MeasBeaconReport{
		OpClass:           body[0],
		Channel:           body[1],
		StartTime:         binary.LittleEndian.Uint64(body[2:10]),
		Duration:          binary.LittleEndian.Uint16(body[10:12]),
		ReportedFrameInfo: body[12],
		RCPI:              body[13],
		RSNI:              body[14],
		AntennaID:         body[21],
		ParentTSF:         binary.LittleEndian.Uint32(body[22:26]),
	}
	copy(out.BSSID[:], body[15:21])
	return out, body[26:]
}

// MeasFrameReport, IEEE 802.11-2012 8.4.2.24.8. The variable-length
// frame count report list is left to the generic sub-element walk.
type MeasFrameReport struct {
	OpClass   uint8
	Channel   uint8
	StartTime uint64
	Duration  uint16
}

func decodeMeasFrameReport(body []byte) (*MeasFrameReport, []byte) {
	if len(body) < 12 {
		return nil, body
	}
	return &MeasFrameReport{
		OpClass:   body[0],
		Channel:   body[1],
		StartTime: binary.LittleEndian.Uint64(body[2:10]),
		Duration:  binary.LittleEndian.Uint16(body[10:12]),
	}, body[12:]
}

// MeasSTAReport, the STA Statistics measurement report, IEEE
// 802.11-2012 8.4.2.24.9. The per-group statistics body length is
// fixed per GroupID, per measStaStatsGroupLen.
type MeasSTAReport struct {
	Duration uint16
	GroupID  uint8
	Stats    []byte
}

func decodeMeasSTAReport(body []byte) (*MeasSTAReport, []byte) {
	if len(body) < 3 {
		return nil, body
	}
	out := &MeasSTAReport{
		Duration: binary.LittleEndian.Uint16(body[0:2]),
		GroupID:  body[2],
	}
	n, ok := measStaStatsGroupLen[out.GroupID]
	rest := body[3:]
	if ok && len(rest) >= n {
		out.Stats = append([]byte(nil), rest[:n]...)
		rest = rest[n:]
	} else {
		out.Stats = append([]byte(nil), rest...)
		rest = nil
	}
	return out, rest
}

// MeasurementReportElement, IEEE 802.11-2012 8.4.2.24. Exactly one of
// the type-specific fields is populated, selected by Type; report
// types the original leaves to raw sub-element inspection (TX Stream,
// Multicast Diagnostics, Location Civic, Location Identifier) fall
// back to Raw plus the generic sub-element walk.
type MeasurementReportElement struct {
	Token uint8
	Mode  map[string]int
	Type  uint8

	Basic       *MeasBasicReport
	CCA         *MeasCCAReport
	RPI         *MeasRPIReport
	ChannelLoad *MeasChannelLoadReport
	Noise       *MeasNoiseReport
	Beacon      *MeasBeaconReport
	Frame       *MeasFrameReport
	STA         *MeasSTAReport

	Raw         []byte
	SubElements []subElement
}

// decodeMeasurementReport dispatches the 3-byte common header (token,
// mode, type) to a type-specific report body decoder, grounded on
// _mpdu.py's _iesubelmsmtrpt* handlers.
func decodeMeasurementReport(payload []byte) (*MeasurementReportElement, error) {
	if len(payload) < 3 {
		return nil, errors.New("short measurement report")
	}
	out := &MeasurementReportElement{
		Token: payload[0],
		Mode:  bitmaskList(measReportModeBits, uint64(payload[1])),
		Type:  payload[2],
	}
	body := payload[3:]

	switch out.Type {
	case EidMeasTypeBasic:
		out.Basic, body = decodeMeasBasicReport(body)
	case EidMeasTypeCCA:
		out.CCA, body = decodeMeasCCAReport(body)
	case EidMeasTypeRPIHist:
		out.RPI, body = decodeMeasRPIReport(body)
	case EidMeasTypeChLoad:
		out.ChannelLoad, body = decodeMeasChannelLoadReport(body)
	case EidMeasTypeNoiseHist:
		out.Noise, body = decodeMeasNoiseReport(body)
	case EidMeasTypeBeacon:
		out.Beacon, body = decodeMeasBeaconReport(body)
	case EidMeasTypeFrame:
		out.Frame, body = decodeMeasFrameReport(body)
	case EidMeasTypeSTAStats:
		out.STA, body = decodeMeasSTAReport(body)
	default:
		// TX Stream, Multicast Diagnostics, Location Civic and
		// Location Identifier reports decode via the generic
		// sub-element walk only.
	}

	out.Raw = body
	out.SubElements = walkSubElements(body)
	return out, nil
}

// NeighborBSSIDInfo is the 4-byte BSSID Information bitmask inside a
// Neighbor Report element, IEEE 802.11-2012 Figure 8-216.
type NeighborBSSIDInfo struct {
	APReachability     uint8
	Security           int
	KeyScope           int
	SpectrumMgmt       int
	QoS                int
	APSD               int
	RadioMeasurement   int
	DelayedBlockAck    int
	ImmediateBlockAck  int
	MobilityDomain     int
	HT                 int
}

func decodeNeighborBSSIDInfo(v uint32) NeighborBSSIDInfo {
	flags := bitmaskList(map[string]uint64{
		"security":             1 << 2,
		"key-scope":             1 << 3,
		"spectrum-mgmt":         1 << 4,
		"qos":                   1 << 5,
		"apsd":                  1 << 6,
		"radio-measurement":     1 << 7,
		"delayed-block-ack":     1 << 8,
		"immediate-block-ack":   1 << 9,
		"mobility-domain":       1 << 10,
		"ht":                    1 << 11,
	}, uint64(v))
	return NeighborBSSIDInfo{
		APReachability:    uint8(midx(0, 2, uint64(v))),
		Security:          flags["security"],
		KeyScope:          flags["key-scope"],
		SpectrumMgmt:      flags["spectrum-mgmt"],
		QoS:               flags["qos"],
		APSD:              flags["apsd"],
		RadioMeasurement:  flags["radio-measurement"],
		DelayedBlockAck:   flags["delayed-block-ack"],
		ImmediateBlockAck: flags["immediate-block-ack"],
		MobilityDomain:    flags["mobility-domain"],
		HT:                flags["ht"],
	}
}

// NeighborReportElement, IEEE 802.11-2012 8.4.2.39.
type NeighborReportElement struct {
	BSSID       HwAddr
	BSSIDInfo   NeighborBSSIDInfo
	OpClass     uint8
	Channel     uint8
	PhyType     uint8
	SubElements []subElement
}

func decodeNeighborReport(payload []byte) (*NeighborReportElement, error) {
	if len(payload) < 13 {
		return nil, errors.New("short neighbor report")
	}
	out := &NeighborReportElement{
		BSSIDInfo: decodeNeighborBSSIDInfo(binary.LittleEndian.Uint32(payload[6:10])),
		OpClass:   payload[10],
		Channel:   payload[11],
		PhyType:   payload[12],
	}
	copy(out.BSSID[:], payload[0:6])
	out.SubElements = walkSubElements(payload[13:])
	return out, nil
}

// FTEElement, the Fast BSS Transition element, IEEE 802.11-2012
// 8.4.2.50.
type FTEElement struct {
	ElementCount uint8
	MIC          [16]byte
	ANonce       [32]byte
	SNonce       [32]byte
	SubElements  []subElement
}

func decodeFTE(payload []byte) (*FTEElement, error) {
	if len(payload) < 82 {
		return nil, errors.New("short fte")
	}
	out := &FTEElement{
		ElementCount: uint8(midx(8, 8, uint64(binary.LittleEndian.Uint16(payload[0:2])))),
	}
	copy(out.MIC[:], payload[2:18])
	copy(out.ANonce[:], payload[18:50])
	copy(out.SNonce[:], payload[50:82])
	out.SubElements = walkSubElements(payload[82:])
	return out, nil
}
