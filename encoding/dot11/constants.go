// Copyright 2021 hhorai. All rights reserved.
// Use of this source code is governed by a MIT license that can be found
// in the LICENSE file.

package dot11

// Frame-control type field, IEEE 802.11-2012 8.2.4.1.3, Table 8-1.
const (
	FtMgmt = 0
	FtCtrl = 1
	FtData = 2
	FtRsrv = 3
)

// Management frame subtypes, Table 8-1.
const (
	StMgmtAssocReq    = 0
	StMgmtAssocResp   = 1
	StMgmtReassocReq  = 2
	StMgmtReassocResp = 3
	StMgmtProbeReq    = 4
	StMgmtProbeResp   = 5
	StMgmtTimingAdv   = 6 // 802.11p
	StMgmtRsrv7       = 7
	StMgmtBeacon      = 8
	StMgmtAtim        = 9
	StMgmtDisassoc    = 10
	StMgmtAuth        = 11
	StMgmtDeauth      = 12
	StMgmtAction      = 13
	StMgmtActionNoack = 14
	StMgmtRsrv15      = 15
)

// Control frame subtypes, Table 8-1.
const (
	StCtrlRsrv0       = 0
	StCtrlRsrv1       = 1
	StCtrlRsrv2       = 2
	StCtrlRsrv3       = 3
	StCtrlRsrv4       = 4
	StCtrlRsrv5       = 5
	StCtrlRsrv6       = 6
	StCtrlWrapper     = 7
	StCtrlBlockAckReq = 8
	StCtrlBlockAck    = 9
	StCtrlPspoll      = 10
	StCtrlRts         = 11
	StCtrlCts         = 12
	StCtrlAck         = 13
	StCtrlCfend       = 14
	StCtrlCfendCfack  = 15
)

// Data frame subtypes, Table 8-1.
const (
	StDataData               = 0
	StDataCfack               = 1
	StDataCfpoll              = 2
	StDataCfackCfpoll        = 3
	StDataNull                = 4
	StDataNullCfack          = 5
	StDataNullCfpoll         = 6
	StDataNullCfackCfpoll   = 7
	StDataQosData             = 8
	StDataQosDataCfack      = 9
	StDataQosDataCfpoll     = 10
	StDataQosDataCfackCfpoll = 11
	StDataQosNull             = 12
	StDataRsrv13              = 13
	StDataQosCfpoll           = 14
	StDataQosCfackCfpoll     = 15
)

// Information element IDs, IEEE 802.11-2012 8.4.2.1, Table 8-54 (plus the
// vendor/WFA allocations the standard's later revisions folded in).
const (
	EidSSID                        = 0
	EidSupportedRates              = 1
	EidFHParameterSet              = 2
	EidDSSSParameterSet            = 3
	EidCFParameterSet              = 4
	EidTIM                         = 5
	EidIBSSParameterSet            = 6
	EidCountry                     = 7
	EidHoppingPatternParams        = 8
	EidHoppingPatternTable         = 9
	EidRequest                     = 10
	EidBSSLoad                     = 11
	EidEDCAParameterSet            = 12
	EidTSPEC                       = 13
	EidTCLAS                       = 14
	EidSchedule                    = 15
	EidChallengeText               = 16
	EidPowerConstraint             = 32
	EidPowerCapability             = 33
	EidTPCRequest                  = 34
	EidTPCReport                   = 35
	EidSupportedChannels           = 36
	EidChannelSwitchAnnouncement   = 37
	EidMeasurementRequest          = 38
	EidMeasurementReport           = 39
	EidQuiet                       = 40
	EidIBSSDFS                     = 41
	EidERPInfo                     = 42
	EidTSDelay                     = 43
	EidTCLASProcessing             = 44
	EidHTCapabilities              = 45
	EidQosCapability               = 46
	EidRSNE                        = 48
	EidExtSuppRates                = 50
	EidAPChannelReport             = 51
	EidNeighborReport              = 52
	EidRCPI                        = 53
	EidMobilityDomain              = 54
	EidFTE                         = 55
	EidTimeoutInterval             = 56
	EidRIC                         = 57
	EidDSERegisteredLocation       = 58
	EidSupportedOperatingClasses   = 59
	EidExtChannelSwitchAnnouncement = 60
	EidHTOperation                 = 61
	EidSecondaryChannelOffset      = 62
	EidBSSAverageAccessDelay       = 63
	EidAntenna                     = 64
	EidRSNI                        = 65
	EidMeasurementPilotTrans       = 66
	EidBSSAvailAdmCapacity         = 67
	EidBSSACAccessDelay            = 68
	EidTimeAdvertisement           = 69
	EidRMEnabledCapabilities       = 70
	EidMultipleBSSID               = 71
	EidBSSCoexistence2040          = 72
	EidBSSIntolerantChReport       = 73
	EidOverlappingBSSScanParams    = 74
	EidRICDescriptor               = 75
	EidManagementMIC               = 76
	EidEventRequest                = 78
	EidEventReport                 = 79
	EidDiagnosticRequest           = 80
	EidDiagnosticReport            = 81
	EidLocationParameters          = 82
	EidNonTransmittedBSSIDCap      = 83
	EidSSIDList                    = 84
	EidMultipleBSSIDIndex          = 85
	EidFMSDescriptor               = 86
	EidFMSRequest                  = 87
	EidFMSResponse                 = 88
	EidQosTrafficCapability        = 89
	EidBSSMaxIdlePeriod            = 90
	EidTFSRequest                  = 91
	EidTFSResponse                 = 92
	EidWNMSleepMode                = 93
	EidTIMBroadcastRequest         = 94
	EidTIMBroadcastResponse        = 95
	EidCollocatedInterference      = 96
	EidChannelUsage                = 97
	EidTimeZone                    = 98
	EidDMSRequest                  = 99
	EidDMSResponse                 = 100
	EidLinkIdentifier              = 101
	EidWakeupSchedule              = 102
	EidChannelSwitchTiming         = 104
	EidPTIControl                  = 105
	EidTPUBufferStatus             = 106
	EidInterworking                = 107
	EidAdvertisementProtocol       = 108
	EidExpeditedBWRequest          = 109
	EidQosMapSet                   = 110
	EidRoamingConsortium           = 111
	EidEmergencyAlertID            = 112
	EidMeshConfiguration           = 113
	EidMeshID                      = 114
	EidMeshLinkMetricReport        = 115
	EidCongestionNotification      = 116
	EidMeshPeeringManagement       = 117
	EidMeshChannelSwitchParams     = 118
	EidMeshAwakeWindow             = 119
	EidBeaconTiming                = 120
	EidMCCAOPSetupRequest          = 121
	EidMCCAOPSetupReply            = 122
	EidMCCAOPAdvertisement         = 123
	EidMCCAOPTeardown              = 124
	EidGANN                        = 125
	EidRANN                        = 126
	EidExtendedCapabilities        = 127
	EidPREQ                        = 130
	EidPREP                        = 131
	EidPERR                        = 132
	EidPXU                         = 137
	EidPXUC                        = 138
	EidAuthMeshPeeringExchange     = 139
	EidMIC                         = 140
	EidDestinationURI              = 141
	EidUAPSDCoexistence            = 142
	EidWakeupSchedule80211ad       = 143
	EidExtendedSchedule            = 144
	EidSTAAvailability             = 145
	EidDMGTSPEC                    = 146
	EidNextDMGATI                  = 147
	EidDMGCapabilities             = 148
	EidDMGOperation                = 151
	EidMultiBandOperation          = 158
	EidADDBAExtension              = 159
	EidNextPCPList                 = 160
	EidPCPHandover                 = 161
	EidDMGLinkMargin               = 162
	EidSwitchingStream             = 163
	EidSessionTransition           = 164
	EidDynamicTonePairing          = 165
	EidClusterReport               = 166
	EidRelayCapabilities           = 167
	EidRelayTransferParamSet       = 168
	EidBeamlinkMaintenance         = 169
	EidMultipleMACSublayers        = 170
	EidUPID                        = 171
	EidDMGLinkAdaptationAck        = 172
	EidMCCAOP                      = 174
	EidQuietPeriodRequest          = 175
	EidQuietPeriodResponse         = 177
	EidECPACPolicy                 = 182
	EidClusterTime                 = 183
	EidRelayPath                   = 184
	EidRelayPathSelectionMetric    = 185
	EidAwakeWindow                 = 191
	EidMultiBand                   = 192
	EidADDBAExtension193           = 193
	EidVHTCapabilities             = 191
	EidVendSpec                    = 221
)

// Neighbor Report subelement IDs (from within EidNeighborReport).
const (
	EidNrTSFInfo             = 1
	EidNrCondensedCountry    = 2
	EidNrBSSTransitionCand   = 3
	EidNrBSSTermDuration     = 4
	EidNrBearingInfo         = 5
	EidNrWideBWChSwitch      = 6
	EidNrMeasurementReport   = 39
	EidNrHTCapabilities      = 45
	EidNrHTOperation         = 61
	EidNrSecChannelOffset    = 62
	EidNrVendSpec            = 221
)

// Fast BSS Transition element (FTE) subelement IDs.
const (
	EidFtePMKR1Name     = 1
	EidFteGTK           = 2
	EidFteRIC           = 3
	EidFteIGTK          = 4
	EidFteRsrv          = 0
)

// FMS status codes carried in the FMS Response element.
const (
	EidFmsStatusAccepted          = 0
	EidFmsStatusDenied            = 1
	EidFmsStatusDeniedTemp        = 2
	EidFmsStatusDeniedReset       = 3
	EidFmsStatusDeniedMoreElems   = 4
	EidFmsStatusAlternateDelivery = 5
	EidFmsStatusTerminated        = 6
)

// TFS subelement IDs.
const (
	EidTfsSubelemTFS      = 1
	EidTfsSubelemVendSpec = 221
)

// WNM Sleep Mode action/status values.
const (
	EidWnmSleepActionEnter = 0
	EidWnmSleepActionExit  = 1

	EidWnmSleepStatusAccept          = 0
	EidWnmSleepStatusUpdateFailed    = 1
	EidWnmSleepStatusDenied          = 2
	EidWnmSleepStatusDeniedTempRsrc  = 3
)

// Expedited Bandwidth Request subfield values.
const (
	EidExpeditedBWReqNone = 0
)

// Mesh Configuration element sub-value codes.
const (
	EidMeshConfPathProtoHWMP  = 1
	EidMeshConfPathMetricAirtime = 1
	EidMeshConfCongestCtrlNone   = 0
	EidMeshConfSyncNeighborOffset = 1
	EidMeshConfAuthProtoNone     = 0
	EidMeshConfAuthProtoSAE      = 1
)

// Neighbor Report AP-reachability codes.
const (
	EidNrAPReachNotReachable = 1
	EidNrAPReachUnknown      = 2
	EidNrAPReachReachable    = 3
)

// Interworking element Access Network Type codes.
const (
	EidInterworkingAntPrivate          = 0
	EidInterworkingAntPrivateGuest     = 1
	EidInterworkingAntChargeablePublic = 2
	EidInterworkingAntFreePublic       = 3
	EidInterworkingAntPersonalDevice   = 4
	EidInterworkingAntEmergencyOnly    = 5
	EidInterworkingAntTestNetwork      = 14
	EidInterworkingAntWildcard         = 15
)

// MCCAOP reply codes.
const (
	EidMccaopReplyAccept = 0
	EidMccaopReplyReject = 1
)

// TCLAS classifier type codes, IEEE 802.11-2012 Table 8-113.
const (
	TclasTypeEthernet     = 0
	TclasTypeTCPUDPIP     = 1
	TclasType8021Q        = 2
	TclasTypeFilterOffset = 3
	TclasTypeIP           = 4
	TclasType8021D        = 5
)

// Measurement Request/Report type codes. Per-type subelement IDs are
// not defined here.
const (
	EidMeasTypeBasic      = 0
	EidMeasTypeCCA        = 1
	EidMeasTypeRPIHist    = 2
	EidMeasTypeChLoad     = 3
	EidMeasTypeNoiseHist  = 4
	EidMeasTypeBeacon     = 5
	EidMeasTypeFrame      = 6
	EidMeasTypeSTAStats   = 7
	EidMeasTypeLCI        = 8
	EidMeasTypeTxStream   = 9
	EidMeasTypeMulticast  = 10
	EidMeasTypeLocCivic   = 11
	EidMeasTypeLocIdent   = 12
	EidMeasTypeDirChannel = 13
	EidMeasTypeDirMeas    = 14
	EidMeasTypeDirStats   = 15
	EidMeasTypePause      = 255
)

// Diagnostic Request/Report subelements, radio types, device types.
const (
	EidDiagSubelemVendSpec = 221

	EidDiagRadioTypeDot11a = 0
	EidDiagRadioTypeDot11b = 1
	EidDiagRadioTypeDot11g = 2

	EidDiagDeviceTypeUnspecified = 0
	EidDiagDeviceTypeAP          = 1
	EidDiagDeviceTypeSTA         = 2
)

// Location Parameters subelements.
const (
	EidLocationSubelemLCI      = 1
	EidLocationSubelemVendSpec = 221
)

// Time Interval Element (TIE) type codes.
const (
	EidTieTypeReassocDeadline = 1
	EidTieTypeKeyLifetime     = 2
	EidTieTypeAssocComeback   = 3
)

// Multiple BSSID element subelement IDs.
const (
	EidMultipleBSSIDSubelemNonTx = 0
	EidMultipleBSSIDSubelemVendSpec = 221
)

// Capability Information field bit names, IEEE 802.11-2012 8.4.1.4.
var capInfoBits = map[string]uint64{
	"ess":           1 << 0,
	"ibss":          1 << 1,
	"cfpollable":    1 << 2,
	"cf-poll-req":   1 << 3,
	"privacy":       1 << 4,
	"short-pre":     1 << 5,
	"pbcc":          1 << 6,
	"ch-agility":    1 << 7,
	"spec-mgmt":     1 << 8,
	"qos":           1 << 9,
	"time-slot":     1 << 10,
	"apsd":          1 << 11,
	"rdo-meas":      1 << 12,
	"dsss-ofdm":     1 << 13,
	"delayed-ba":    1 << 14,
	"immediate-ba":  1 << 15,
}

// Frame Control flags subfield names, IEEE 802.11-2012 8.2.4.1.
var fcFlagBits = map[string]uint64{
	"td":      1 << 0, // to-DS
	"fd":      1 << 1, // from-DS
	"mf":      1 << 2, // more-frag
	"r":       1 << 3, // retry
	"pm":      1 << 4, // pwr-mgmt
	"md":      1 << 5, // more-data
	"pf":      1 << 6, // protected-frame
	"o":       1 << 7, // order / +HTC
}

// Block Ack/BAR control subfield bit names, IEEE 802.11-2012 8.3.1.8/8.3.1.9.
var baCtrlBits = map[string]uint64{
	"ackpolicy":     1 << 0,
	"multi-tid":     1 << 1,
	"compressed-bm": 1 << 2,
}

const (
	baCtrlRsrvStart    = 3
	baCtrlRsrvLen      = 9
	baCtrlTidInfoStart = 12
)

// QoS Control field subfield bit names for non-mesh STAs,
// IEEE 802.11-2012 8.2.4.5.
var qosApBufferStateBits = map[string]uint64{
	"rsrv": 1 << 0,
}
