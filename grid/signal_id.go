package grid

import (
	"fmt"
	"sort"
)

// SignalID identifies the channel or reference signal occupying a resource element.
//
// The value is bit-encoded: the top nibble selects the link direction (0x1xxx downlink,
// 0x2xxx uplink), the next nibble selects channel (0x.0xx) or reference signal (0x.1xx),
// and bit 0x0010 marks demodulation reference signals. Classification never needs a lookup.
type SignalID uint16

const (
	Unused SignalID = 0

	// 0x10xx downlink channels
	PBCH        SignalID = 0x1001
	PDCCH       SignalID = 0x1002
	PDCCHUnused SignalID = 0x1003
	PDSCH       SignalID = 0x1004
	PDSCHUnused SignalID = 0x1005

	// 0x11xx downlink reference signals
	PSS       SignalID = 0x1101
	SSS       SignalID = 0x1102
	PTRS      SignalID = 0x1103
	NZPCSIRS  SignalID = 0x1104
	ZPCSIRS   SignalID = 0x1105
	RIMRS     SignalID = 0x1106
	PRS       SignalID = 0x1107
	DMRSPBCH  SignalID = 0x1111
	DMRSPDCCH SignalID = 0x1112
	DMRSPDSCH SignalID = 0x1113
)

// Category masks over the SignalID layout.
const (
	DownlinkChannelMask SignalID = 0x1000
	DownlinkRSMask      SignalID = 0x1100
	UplinkChannelMask   SignalID = 0x2000
	UplinkRSMask        SignalID = 0x2100
	DemodulationMark    SignalID = 0x0010

	// referenceSignalBit is the category nibble shared by DownlinkRSMask and UplinkRSMask.
	referenceSignalBit = DownlinkRSMask &^ DownlinkChannelMask
)

var signalNames = map[SignalID]string{
	Unused:      "Unused",
	PBCH:        "PBCH",
	PDCCH:       "PDCCH",
	PDCCHUnused: "PDCCH_Unused",
	PDSCH:       "PDSCH",
	PDSCHUnused: "PDSCH_Unused",
	PSS:         "PSS",
	SSS:         "SSS",
	PTRS:        "PTRS",
	NZPCSIRS:    "NZP_CSI_RS",
	ZPCSIRS:     "ZP_CSI_RS",
	RIMRS:       "RIM_RS",
	PRS:         "PRS",
	DMRSPBCH:    "DMRS_PBCH",
	DMRSPDCCH:   "DMRS_PDCCH",
	DMRSPDSCH:   "DMRS_PDSCH",
}

// String returns the catalog name, or the hex value for IDs outside the catalog.
func (id SignalID) String() string {
	if name, ok := signalNames[id]; ok {
		return name
	}
	return fmt.Sprintf("SignalID(0x%04x)", uint16(id))
}

// ParseSignalID maps a catalog name such as "NZP_CSI_RS" back to its SignalID.
func ParseSignalID(name string) (SignalID, error) {
	for id, n := range signalNames {
		if n == name {
			return id, nil
		}
	}
	return Unused, fmt.Errorf("unknown signal %q; valid: %v", name, SignalNames())
}

// SignalNames lists every catalog name in ascending SignalID order.
func SignalNames() []string {
	ids := Catalog()
	names := make([]string, len(ids))
	for i, id := range ids {
		names[i] = signalNames[id]
	}
	return names
}

// Catalog returns every defined SignalID in ascending order, Unused first.
func Catalog() []SignalID {
	ids := make([]SignalID, 0, len(signalNames))
	for id := range signalNames {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// IsDownlink reports whether the downlink direction bit is set.
func IsDownlink(id SignalID) bool {
	return id&DownlinkChannelMask != 0
}

// IsDownlinkChannel reports whether id is a downlink physical channel (0x10xx).
func IsDownlinkChannel(id SignalID) bool {
	return IsDownlink(id) && id&referenceSignalBit == 0
}

// IsDownlinkReferenceSignal reports whether id is a downlink reference signal (0x11xx).
func IsDownlinkReferenceSignal(id SignalID) bool {
	return IsDownlink(id) && id&referenceSignalBit != 0
}

// IsDemodulationReference reports whether id carries the DMRS marker bit.
func IsDemodulationReference(id SignalID) bool {
	return id&DemodulationMark != 0
}
