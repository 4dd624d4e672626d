package grid

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
)

var (
	// ErrOutOfRange is returned when a fragment addresses a cell outside the grid.
	ErrOutOfRange = errors.New("resource element out of grid range")
	// ErrUnsupportedNumerology is returned for any numerology other than Numerology0.
	ErrUnsupportedNumerology = errors.New("unsupported numerology")
)

// SlotGrid is the occupancy table of one slot: MaxAntennaPorts × (bandwidth·12) × symbols.
// Each cell holds the SignalID of the last fragment written to it.
type SlotGrid struct {
	bandwidth  int // in PRBs
	symbols    int
	numerology Numerology
	cells      []SignalID // flattened [port][subcarrier][symbol]
}

// NewSlotGrid allocates an empty grid of bandwidthPRBs resource blocks.
// Every cell starts as Unused.
func NewSlotGrid(bandwidthPRBs int, numerology Numerology, extendedCP bool) (*SlotGrid, error) {
	if bandwidthPRBs <= 0 {
		return nil, fmt.Errorf("bandwidth must be positive, got %d PRBs", bandwidthPRBs)
	}
	if numerology != Numerology0 {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedNumerology, numerology)
	}
	symbols := SymbolsPerSlot(extendedCP)
	return &SlotGrid{
		bandwidth:  bandwidthPRBs,
		symbols:    symbols,
		numerology: numerology,
		cells:      make([]SignalID, MaxAntennaPorts*bandwidthPRBs*SubcarriersPerPRB*symbols),
	}, nil
}

// Bandwidth returns the grid width in PRBs.
func (g *SlotGrid) Bandwidth() int { return g.bandwidth }

// Subcarriers returns the number of subcarriers spanned by the grid.
func (g *SlotGrid) Subcarriers() int { return g.bandwidth * SubcarriersPerPRB }

// Symbols returns the number of OFDM symbols per slot (12 or 14).
func (g *SlotGrid) Symbols() int { return g.symbols }

// Numerology returns the numerology the grid was built for.
func (g *SlotGrid) Numerology() Numerology { return g.numerology }

func (g *SlotGrid) index(port, subcarrier, symbol int) int {
	return (port*g.Subcarriers()+subcarrier)*g.symbols + symbol
}

// At returns the signal occupying (port, subcarrier, symbol), Unused if nothing was written.
// Indices outside the grid panic, like any slice access.
func (g *SlotGrid) At(port, subcarrier, symbol int) SignalID {
	return g.cells[g.index(port, subcarrier, symbol)]
}

// Fill asks the signal for its fragments and writes them into the grid.
// A mapping error is returned unchanged and leaves the grid untouched.
func (g *SlotGrid) Fill(signal Signal) error {
	frags, err := signal.Fragments()
	if err != nil {
		return err
	}
	return g.FillFragments(frags)
}

// FillFragments writes every (PRB, subcarrier) cell of each fragment. Later writes win.
// All fragments are range-checked first so a bad fragment causes no partial write.
func (g *SlotGrid) FillFragments(frags []Fragment) error {
	for i, f := range frags {
		if err := g.check(f); err != nil {
			return fmt.Errorf("fragment %d: %w", i, err)
		}
	}
	written := 0
	for _, f := range frags {
		for _, prb := range f.PRBs {
			for _, sc := range f.Subcarriers {
				g.cells[g.index(f.Port, sc+prb*SubcarriersPerPRB, f.Symbol)] = f.Signal
				written++
			}
		}
	}
	logrus.Debugf("slot grid: wrote %d REs from %d fragments", written, len(frags))
	return nil
}

func (g *SlotGrid) check(f Fragment) error {
	if f.Port < 0 || f.Port >= MaxAntennaPorts {
		return fmt.Errorf("%w: port %d not in [0, %d)", ErrOutOfRange, f.Port, MaxAntennaPorts)
	}
	if f.Symbol < 0 || f.Symbol >= g.symbols {
		return fmt.Errorf("%w: symbol %d not in [0, %d)", ErrOutOfRange, f.Symbol, g.symbols)
	}
	for _, prb := range f.PRBs {
		if prb < 0 || prb >= g.bandwidth {
			return fmt.Errorf("%w: prb %d not in [0, %d)", ErrOutOfRange, prb, g.bandwidth)
		}
	}
	for _, sc := range f.Subcarriers {
		if sc < 0 || sc >= SubcarriersPerPRB {
			return fmt.Errorf("%w: subcarrier offset %d not in [0, %d)", ErrOutOfRange, sc, SubcarriersPerPRB)
		}
	}
	return nil
}

// Occupied counts the cells of port that hold anything other than Unused.
func (g *SlotGrid) Occupied(port int) int {
	n := 0
	base := g.index(port, 0, 0)
	for _, id := range g.cells[base : base+g.Subcarriers()*g.symbols] {
		if id != Unused {
			n++
		}
	}
	return n
}

// Ports lists, in ascending order, the ports with at least one occupied cell.
func (g *SlotGrid) Ports() []int {
	var ports []int
	for p := 0; p < MaxAntennaPorts; p++ {
		if g.Occupied(p) > 0 {
			ports = append(ports, p)
		}
	}
	return ports
}

// Snapshot copies the [subcarrier][symbol] plane of one port.
func (g *SlotGrid) Snapshot(port int) [][]SignalID {
	plane := make([][]SignalID, g.Subcarriers())
	for sc := range plane {
		start := g.index(port, sc, 0)
		plane[sc] = append([]SignalID(nil), g.cells[start:start+g.symbols]...)
	}
	return plane
}
