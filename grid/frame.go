package grid

import "fmt"

const (
	// BasicSubcarrierSpacingKHz is the subcarrier spacing of numerology 0.
	BasicSubcarrierSpacingKHz = 15
	// SubcarriersPerPRB is the number of subcarriers in one physical resource block.
	SubcarriersPerPRB = 12
	// SymbolsPerSlotNormalCP is the OFDM symbol count of a slot with normal cyclic prefix.
	SymbolsPerSlotNormalCP = 14
	// SymbolsPerSlotExtendedCP is the OFDM symbol count of a slot with extended cyclic prefix.
	SymbolsPerSlotExtendedCP = 12
	// MaxAntennaPorts bounds the port dimension of every SlotGrid.
	MaxAntennaPorts = 32
	// MaxBandwidthFR1MHz and MaxBandwidthFR2MHz are the carrier bandwidth ceilings per frequency range.
	MaxBandwidthFR1MHz = 100
	MaxBandwidthFR2MHz = 400
)

// Numerology selects a subcarrier spacing profile (mu in 38.211).
type Numerology int

const (
	Numerology0 Numerology = iota
	Numerology1
	Numerology2
	Numerology3
	Numerology4
	Numerology5
)

// SubcarrierSpacingKHz returns 15 * 2^mu.
func (n Numerology) SubcarrierSpacingKHz() int {
	return BasicSubcarrierSpacingKHz << uint(n)
}

// String renders the numerology as "mu=N (SCS kHz)".
func (n Numerology) String() string {
	return fmt.Sprintf("mu=%d (%dkHz)", int(n), n.SubcarrierSpacingKHz())
}

// SymbolsPerSlot returns the OFDM symbol count for the given cyclic prefix.
func SymbolsPerSlot(extendedCP bool) int {
	if extendedCP {
		return SymbolsPerSlotExtendedCP
	}
	return SymbolsPerSlotNormalCP
}
