// Copyright 2021 hhorai. All rights reserved.
// Use of this source code is governed by a MIT license that can be found
// in the LICENSE file.

package dot11

import "fmt"

// HwAddr is an IEEE 802 MAC address.
type HwAddr [6]byte

// String renders the address as lowercase colon-hex, matching the
// original decoder's hwaddr formatting.
func (a HwAddr) String() string {
	return fmt.Sprintf("%02x:%02x:%02x:%02x:%02x:%02x",
		a[0], a[1], a[2], a[3], a[4], a[5])
}

// FieldError records a recoverable fault discovered while decoding one
// field or subtree. Location is a dotted path such as
// "mgmt.info-elements.eid-61"; it never identifies the field by Go type
// or by spec terminology, only by where it sits in the record.
type FieldError struct {
	Location string
	Message  string
}

func (e FieldError) Error() string {
	return e.Location + ": " + e.Message
}

// ParseError is returned when decoding cannot continue at all: the
// buffer is too short for the mandatory header (or for the FCS when one
// is expected). Anything past this point, including a reserved frame
// type, is a FieldError instead.
type ParseError struct {
	Location string
	Message  string
}

func (e *ParseError) Error() string {
	return e.Location + ": " + e.Message
}

// FrameControl is the first two octets of every MPDU,
// IEEE 802.11-2012 8.2.4.1.
type FrameControl struct {
	ProtocolVersion uint8
	Type            uint8
	Subtype         uint8
	Flags           map[string]int // fcFlagBits: td, fd, mf, r, pm, md, pf, o
}

// DurationKind discriminates the three encodings of the Duration/ID
// field, IEEE 802.11-2012 8.2.4.2.
type DurationKind int

const (
	DurationMicroseconds DurationKind = iota
	DurationContentionFree
	DurationAID
	DurationReserved
)

// Duration is the tagged union over the three encodings of the
// Duration/ID field. Only the field matching Kind is meaningful.
type Duration struct {
	Kind         DurationKind
	Microseconds uint16 // DurationMicroseconds: bit 15 clear
	IsCFP        bool   // DurationContentionFree: bits 15,14 = 1,0 and value 32768
	AID          uint16 // DurationAID: bits 15,14 = 1,1; 13 lsbs, at most 2007
}

// SeqCtrl is the Sequence Control field, IEEE 802.11-2012 8.2.4.4.
type SeqCtrl struct {
	FragNum uint8
	SeqNum  uint16
}

// QosCtrl is the QoS Control field, IEEE 802.11-2012 8.2.4.5. The upper
// octet is kept only as TxopRaw; whether it is a TXOP limit, AP buffer
// state, queue size or mesh field depends on the frame's direction and
// subtype, and the record carries no field saying which applies.
type QosCtrl struct {
	TID          uint8
	EOSP         int
	AckPolicy    uint8
	AMSDUPresent int
	TxopRaw      uint8 // raw upper byte, interpretation is context-dependent
}

// HtControl is the HT Control field, IEEE 802.11-2012 8.2.4.6. No
// decoder populates it: the data and management paths skip HT Control
// (see decodeData/decodeMgmt), and the Control Wrapper's carried HTC is
// stored unparsed in MpduRecord.CarriedHtc.
type HtControl struct {
	LacReserved    uint8
	LacTRQ         int
	LacMaiMrq      int
	LacMaiMsi      uint8
	LacMfsi        uint8
	LacMfbASELCmd  uint8
	LacMfbASELData uint8
	CalibrationPos uint8
	CalibrationSeq uint8
	CSISteering    uint8
	NDPAnnounce    int
	ACConstraint   int
	RDGMorePPDU    int
}

// BaControl is the Block Ack/BAR Control field,
// IEEE 802.11-2012 8.3.1.8/8.3.1.9.
type BaControl struct {
	Flags   map[string]int // baCtrlBits: ackpolicy, multi-tid, compressed-bm
	Rsrv    uint64
	TidInfo uint64
}

// BaVariant discriminates the four BA/BAR layouts derived from the
// (multi-tid, compressed-bm) pair in BaControl.
type BaVariant int

const (
	BaBasic BaVariant = iota
	BaCompressed
	BaMultiTid
	BaReserved
)

// PerTidRecord is one (per-tid-info, seqctrl) pair inside a Multi-TID
// BlockAckReq/BlockAck, IEEE 802.11-2012 8.3.1.8.3/8.3.1.9.4.
type PerTidRecord struct {
	Tid     uint8
	Rsrv    uint8
	SeqCtrl SeqCtrl
	Bitmap  []byte // only present for Block Ack, 8 bytes
}

// L3CryptKind discriminates the encryption variants detected by the
// byte-pattern heuristic in IEEE 802.11-2012 8.2.4.1 note / 8.3.3.2ff.
type L3CryptKind int

const (
	CryptNone L3CryptKind = iota
	CryptWEP
	CryptTKIP
	CryptCCMP
)

// L3Crypt carries the fields extracted from the encrypted MPDU body.
// Only the fields for Kind are populated; extraction never validates
// the MIC/ICV, it only locates them.
type L3Crypt struct {
	Kind   L3CryptKind
	KeyID  uint8
	IV     []byte
	ExtIV  []byte
	PN     uint64 // CCMP packet number; not set for TKIP or WEP
	WEPSeed byte
	MIC    []byte
	ICV    []byte
}

// ElementValue is a discriminated union over every information element
// and sub-element this package knows how to decode. Exactly one
// non-nil field should be set by a per-EID decoder; Unknown is the
// fallback for element IDs without a dedicated decoder.
type ElementValue struct {
	Unknown *UnknownElement

	SSID             *SSIDElement
	SupportedRates   *RatesElement
	FHParameterSet   *FHParameterSetElement
	DSSSParameterSet *DSSSParameterSetElement
	CFParameterSet   *CFParameterSetElement
	TIM              *TIMElement
	IBSSParameterSet *IBSSParameterSetElement
	Country          *CountryElement
	HoppingParams    *HoppingPatternParamsElement
	HoppingTable     *HoppingPatternTableElement
	Request          *RequestElement
	BSSLoad          *BSSLoadElement
	EDCAParameterSet *EDCAParameterSetElement
	TSPEC            *TSPECElement
	TCLAS            *TCLASElement
	ChallengeText    *ChallengeTextElement
	PowerConstraint  *PowerConstraintElement
	PowerCapability  *PowerCapabilityElement
	SupportedChannels *SupportedChannelsElement
	ERPInfo          *ERPInfoElement
	HTCapabilities   *HTCapabilitiesElement
	QosCapability    *QosCapabilityElement
	RSNE             *RSNEElement
	ExtSuppRates     *RatesElement
	HTOperation      *HTOperationElement
	ExtendedCapabilities *ExtendedCapabilitiesElement
	MeshConfiguration *MeshConfigurationElement
	MeshID           *MeshIDElement
	VendorSpecific   *VendorSpecificElement

	MeasurementRequest *MeasurementRequestElement
	MeasurementReport  *MeasurementReportElement
	NeighborReport     *NeighborReportElement
	FTE                *FTEElement
}

// InfoElement pairs a decoded value with its raw EID, so callers that
// walk InfoElementSet.Order can still render the element ID even when
// ElementValue resolved to Unknown.
type InfoElement struct {
	EID   uint8
	Value ElementValue
}

// InfoElementSet is an ordered multimap of information elements,
// preserving both first-seen order across distinct EIDs and every
// repeated occurrence of a given EID (IEEE 802.11-2012 allows some
// elements, e.g. Vendor Specific, to repeat).
type InfoElementSet struct {
	Order    []uint8
	Elements map[uint8][]ElementValue
}

func newInfoElementSet() *InfoElementSet {
	return &InfoElementSet{Elements: make(map[uint8][]ElementValue)}
}

// Add appends v under eid, recording eid in Order only the first time
// it is seen.
func (s *InfoElementSet) Add(eid uint8, v ElementValue) {
	if _, ok := s.Elements[eid]; !ok {
		s.Order = append(s.Order, eid)
	}
	s.Elements[eid] = append(s.Elements[eid], v)
}

// GetIE returns the first decoded value for eid, if present.
func (s *InfoElementSet) GetIE(eid uint8) (ElementValue, bool) {
	vs, ok := s.Elements[eid]
	if !ok || len(vs) == 0 {
		return ElementValue{}, false
	}
	return vs[0], true
}

// GetIEs returns every decoded value for eid, in encounter order.
func (s *InfoElementSet) GetIEs(eid uint8) []ElementValue {
	return s.Elements[eid]
}

// MpduRecord is the decoded output of Parse. Present lists, in decode
// order, the names of the top-level fields that were actually written
// (e.g. "addr4", "qos", "info-elements"); Err lists every recoverable
// fault encountered while decoding, keyed by dotted Location.
type MpduRecord struct {
	Offset   int
	Stripped int
	Present  []string
	Err      []FieldError

	FrameCtrl FrameControl
	Duration  Duration
	Addr1     HwAddr
	Addr2     HwAddr
	Addr3     HwAddr
	SeqCtrl   SeqCtrl
	Addr4     HwAddr
	Qos       QosCtrl
	Htc       HtControl

	BarCtrl  *BaControl
	BaCtrl   *BaControl
	BaVariant BaVariant
	BarInfo  *SeqCtrl
	PerTid   []PerTidRecord
	Bitmap   []byte

	CarriedFrameCtrl *uint16
	CarriedHtc       *uint32
	CarriedFrame     []byte

	FixedParams map[string]interface{}
	ActionEl    []byte

	InfoElements *InfoElementSet

	L3Crypt *L3Crypt
	Body    []byte

	FCS *uint32
}

func newMpduRecord() *MpduRecord {
	return &MpduRecord{
		FixedParams:  make(map[string]interface{}),
		InfoElements: newInfoElementSet(),
	}
}

func (r *MpduRecord) addErr(location, message string) {
	r.Err = append(r.Err, FieldError{Location: location, Message: message})
}

func (r *MpduRecord) setPresent(name string) {
	r.Present = append(r.Present, name)
}
