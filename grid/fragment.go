package grid

import "fmt"

// Fragment is one occupation claim: a signal on one port and one OFDM symbol,
// repeated over every listed PRB at every listed subcarrier offset.
// Subcarriers are offsets inside a PRB, in [0, SubcarriersPerPRB).
type Fragment struct {
	Port        int
	Signal      SignalID
	Symbol      int
	PRBs        []int
	Subcarriers []int
}

// NewFragment copies prbs and subcarriers so the fragment does not alias caller slices.
func NewFragment(port int, signal SignalID, symbol int, prbs, subcarriers []int) Fragment {
	return Fragment{
		Port:        port,
		Signal:      signal,
		Symbol:      symbol,
		PRBs:        append([]int(nil), prbs...),
		Subcarriers: append([]int(nil), subcarriers...),
	}
}

// String describes the fragment the way it is printed by the fragments command.
func (f Fragment) String() string {
	return fmt.Sprintf("Signal %s occurred on port %d, symbol %d, subcarriers %v of prbs %v",
		f.Signal, f.Port, f.Symbol, f.Subcarriers, f.PRBs)
}

// REs returns the number of resource elements the fragment claims.
func (f Fragment) REs() int {
	return len(f.PRBs) * len(f.Subcarriers)
}

// Signal is anything that can be placed in a slot grid.
type Signal interface {
	// Slot is the index of the slot the signal is transmitted in.
	Slot() int
	// Fragments computes the full occupation of the signal. On error no fragment is valid.
	Fragments() ([]Fragment, error)
}
