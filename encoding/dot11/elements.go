// Copyright 2021 hhorai. All rights reserved.
// Use of this source code is governed by a MIT license that can be found
// in the LICENSE file.

package dot11

// UnknownElement is the fallback ElementValue for any information
// element ID without a dedicated decoder. Raw is the element body,
// excluding the eid/length octets.
type UnknownElement struct {
	Raw []byte
}

// SSIDElement, IEEE 802.11-2012 8.4.2.2.
type SSIDElement struct {
	SSID string
}

// RatesElement covers both Supported Rates (EidSupportedRates) and
// Extended Supported Rates (EidExtSuppRates), IEEE 802.11-2012
// 8.4.2.3/8.4.2.15. Each rate is in units of 0.5 Mb/s; Basic marks
// entries whose high bit (the BSSBasicRateSet marker) was set.
type RatesElement struct {
	RatesMbps []float64
	Basic     []bool
}

// FHParameterSetElement, IEEE 802.11-2012 8.4.2.4.
type FHParameterSetElement struct {
	DwellTime   uint16
	HopSet      uint8
	HopPattern  uint8
	HopIndex    uint8
}

// DSSSParameterSetElement, IEEE 802.11-2012 8.4.2.5.
type DSSSParameterSetElement struct {
	CurrentChannel uint8
}

// CFParameterSetElement, IEEE 802.11-2012 8.4.2.6.
type CFParameterSetElement struct {
	CFPCount       uint8
	CFPPeriod      uint8
	CFPMaxDuration uint16
	CFPDurRemaining uint16
}

// TIMElement, IEEE 802.11-2012 8.4.2.7.
type TIMElement struct {
	DTIMCount   uint8
	DTIMPeriod  uint8
	BmapCtrl    map[string]int // bitmaskList over {"tib":1, ...}; plus Offset
	BmapOffset  uint8
	VirtualBmap []byte
}

// IBSSParameterSetElement, IEEE 802.11-2012 8.4.2.8.
type IBSSParameterSetElement struct {
	ATIMWindow uint16
}

// CountryTriplet is one (first-channel, num-channels, max-tx-power)
// regulatory triplet inside a Country element.
type CountryTriplet struct {
	FirstChannel uint8
	NumChannels  uint8
	MaxTxPower   int8
}

// CountryElement, IEEE 802.11-2012 8.4.2.10.
type CountryElement struct {
	CountryString string
	Triplets      []CountryTriplet
}

// HoppingPatternParamsElement, IEEE 802.11-2012 8.4.2.11.
type HoppingPatternParamsElement struct {
	Prime        uint8
	NumChannels  uint8
	RandTableFlag uint8
}

// HoppingPatternTableElement, IEEE 802.11-2012 8.4.2.12.
type HoppingPatternTableElement struct {
	Flag   uint8
	Number uint8
	Raw    []byte
}

// RequestElement, IEEE 802.11-2012 8.4.2.13 — a list of requested
// element IDs.
type RequestElement struct {
	RequestedEIDs []uint8
}

// BSSLoadElement, IEEE 802.11-2012 8.4.2.30.
type BSSLoadElement struct {
	StationCount     uint16
	ChannelUtilization uint8
	AvailAdmCapacity uint16
}

// EDCAParamRecord is the per-access-category record inside an EDCA
// Parameter Set element (AC_BE/AC_BK/AC_VI/AC_VO).
type EDCAParamRecord struct {
	ACI       uint8
	ACM       int
	AIFSN     uint8
	ECWmin    uint8
	ECWmax    uint8
	TXOPLimit uint16
}

// EDCAParameterSetElement, IEEE 802.11-2012 8.4.2.31.
type EDCAParameterSetElement struct {
	QosInfo map[string]int
	BE, BK, VI, VO EDCAParamRecord
}

// TSInfo is the 3-byte TS Info field inside a TSPEC element, IEEE
// 802.11-2012 Figure 8-196.
type TSInfo struct {
	TrafficType  uint8
	TSID         uint8
	Direction    uint8
	AccessPolicy uint8
	Aggregation  int
	APSD         int
	UserPriority uint8
	AckPolicy    uint8
	Schedule     int
}

// TSPECElement, IEEE 802.11-2012 8.4.2.32.
type TSPECElement struct {
	TSInfo               TSInfo
	NominalMSDUSize      uint16
	MaxMSDUSize          uint16
	MinServiceInterval   uint32
	MaxServiceInterval   uint32
	InactivityInterval   uint32
	SuspensionInterval   uint32
	ServiceStartTime     uint32
	MinDataRate          uint32
	MeanDataRate         uint32
	PeakDataRate         uint32
	MaxBurstSize         uint32
	DelayBound           uint32
	MinPhyRate           uint32
	SurplusBwAllowance   uint16
	MediumTime           uint16
}

// TCLASEthernetParams, IEEE 802.11-2012 Table 8-114 classifier type 0.
type TCLASEthernetParams struct {
	SrcAddr   HwAddr
	DestAddr  HwAddr
	EtherType uint16
}

// TCLASIPParams covers both the TCP/UDP-IP (classifier type 1) and IP
// and higher layer (classifier type 4) parameter sets, which share the
// same IPv4/IPv6 5-tuple-plus-DSCP shape differing only in which
// fields are meaningful. Version is 4 or 6; the IPv6-only fields are
// zero for an IPv4 classifier.
type TCLASIPParams struct {
	Version   uint8
	SrcIP     []byte
	DestIP    []byte
	SrcPort   uint16
	DestPort  uint16
	FlowLabel uint32 // IPv6 only
	DSCP      uint8
	Protocol  uint8
}

// TCLAS8021QParams, IEEE 802.11-2012 Table 8-114 classifier type 2.
type TCLAS8021QParams struct {
	TCI uint16
}

// TCLASFilterOffsetParams, IEEE 802.11-2012 Table 8-114 classifier
// type 3.
type TCLASFilterOffsetParams struct {
	Offset uint16
	Value  []byte
	Mask   []byte
}

// TCLAS8021DParams, IEEE 802.11-2012 Table 8-114 classifier type 5.
type TCLAS8021DParams struct {
	Tag           uint8
	VLANID        uint16
}

// TCLASElement, IEEE 802.11-2012 8.4.2.33. Exactly one of the
// classifier-type-specific fields is populated, selected by
// ClassifierType.
type TCLASElement struct {
	UserPriority   uint8
	ClassifierType uint8
	ClassifierMask uint8

	Ethernet     *TCLASEthernetParams
	IP           *TCLASIPParams
	Dot1Q        *TCLAS8021QParams
	FilterOffset *TCLASFilterOffsetParams
	Dot1D        *TCLAS8021DParams

	Raw []byte
}

// ChallengeTextElement, IEEE 802.11-2012 8.4.2.9.
type ChallengeTextElement struct {
	Challenge []byte
}

// PowerConstraintElement, IEEE 802.11-2012 8.4.2.16.
type PowerConstraintElement struct {
	LocalPowerConstraintDb uint8
}

// PowerCapabilityElement, IEEE 802.11-2012 8.4.2.17.
type PowerCapabilityElement struct {
	MinTxPowerDbm int8
	MaxTxPowerDbm int8
}

// SupportedChannelsElement, IEEE 802.11-2012 8.4.2.18 — a list of
// (first-channel, num-channels) pairs.
type SupportedChannelsElement struct {
	FirstChannels []uint8
	NumChannels   []uint8
}

// ERPInfoElement, IEEE 802.11-2012 8.4.2.14.
type ERPInfoElement struct {
	Flags map[string]int // non-erp, use-protect, barker
}

// MCSSet is the 16-byte Supported MCS Set field shared by HT
// Capabilities and HT Operation, IEEE 802.11-2012 Figure 8-251.
type MCSSet struct {
	RxMCSBitmask         uint64
	RxBitmapExtension    uint16
	TxHighestSupportedRate uint16
	TxMCSSetDefined      int
	TxRxMCSSetUnequal    int
	TxMaxSpatialStreams  uint8
	TxUnequalModulation  int
}

// HTCapabilitiesElement, IEEE 802.11-2012 8.4.2.58.
type HTCapabilitiesElement struct {
	CapInfo       map[string]int
	SmPowerSave   uint8
	RxSTBC        uint8
	AMPDUParams   uint8
	MaxAMPDULength uint8
	MinMPDUStartSpacing uint8
	MCSSet        MCSSet
	HTExtendedCap map[string]int
	PCOTransitionTime uint8
	MCSFeedback   uint8
	TxBeamforming map[string]int
	CalibrationValue uint8
	MinGroupingValue uint8
	CSINumBeamformerSupported uint8
	NoncompSteeringNumBeamformerSupported uint8
	CompSteeringNumBeamformerSupported uint8
	CSIMaxNumRowsBeamformer   uint8
	ChannelEstimationCap      uint8
	ASELCap       map[string]int
}

// HTOperationInfo is the 5-byte HT Operation Information field inside
// an HT Operation element, IEEE 802.11-2012 Figure 8-253.
type HTOperationInfo struct {
	SecondaryChannelOffset uint8
	STAChannelWidth        int
	RIFSMode               int
	HTProtection           uint8
	NonGreenfieldPresent   int
	OBSSNonHTPresent       int
	DualBeacon             int
	DualCTSProtection      int
	STBCBeacon             int
	LSIGTXOPProtection     int
	PCOActive              int
	PCOPhase               int
}

// HTOperationElement, IEEE 802.11-2012 8.4.2.59.
type HTOperationElement struct {
	PrimaryChannel uint8
	OpInfo         HTOperationInfo
	MCSSet         MCSSet
}

// QosCapabilityElement, IEEE 802.11-2012 8.4.2.35.
type QosCapabilityElement struct {
	QosInfo map[string]int
}

// SuiteSelector is a 4-byte OUI+type cipher/AKM suite selector, IEEE
// 802.11-2012 8.4.2.27.2.
type SuiteSelector struct {
	OUI       [3]byte
	SuiteType uint8
}

// RSNEElement, IEEE 802.11-2012 8.4.2.27. Every field beyond Version is
// optional and present only if the element carries enough bytes for
// it; a nil slice/pointer means the field was absent.
type RSNEElement struct {
	Version              uint16
	GroupDataCipherSuite *SuiteSelector
	PairwiseCipherSuites []SuiteSelector
	AKMSuites            []SuiteSelector
	RSNCapabilities      map[string]int
	PMKIDs               [][16]byte
	GroupMgmtCipherSuite *SuiteSelector
}

// ExtendedCapabilitiesElement, IEEE 802.11-2012 8.4.2.29.
type ExtendedCapabilitiesElement struct {
	Capabilities []byte
}

// MeshConfigurationElement, IEEE 802.11-2012 8.4.2.100.
type MeshConfigurationElement struct {
	PathSelProtocol uint8
	PathSelMetric   uint8
	CongestionCtrl  uint8
	SyncMethod      uint8
	AuthProtocol    uint8
	Capabilities    map[string]int
}

// MeshIDElement, IEEE 802.11-2012 8.4.2.101.
type MeshIDElement struct {
	MeshID string
}

// VendorSpecificElement, IEEE 802.11-2012 8.4.2.28.
type VendorSpecificElement struct {
	OUI     [3]byte
	OUIType uint8
	Data    []byte
}
