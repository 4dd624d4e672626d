package render

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/nr-sim/nr-resource-grid/grid"
)

// ErrSlotOutOfRange is returned when a signal targets a slot the renderer does not hold.
var ErrSlotOutOfRange = errors.New("slot out of renderer range")

// Renderer owns one SlotGrid per slot and routes signals to them by slot index.
type Renderer struct {
	slots      int
	bandwidth  int
	extendedCP bool
	grids      []*grid.SlotGrid
	palette    Palette
}

// NewRenderer creates slots empty numerology-0 grids of bandwidth PRBs each.
func NewRenderer(slots, bandwidth int, extendedCP bool) (*Renderer, error) {
	if slots <= 0 {
		return nil, fmt.Errorf("slots must be positive, got %d", slots)
	}
	r := &Renderer{
		slots:      slots,
		bandwidth:  bandwidth,
		extendedCP: extendedCP,
		grids:      make([]*grid.SlotGrid, 0, slots),
		palette:    DefaultPalette(),
	}
	for i := 0; i < slots; i++ {
		g, err := grid.NewSlotGrid(bandwidth, grid.Numerology0, extendedCP)
		if err != nil {
			return nil, fmt.Errorf("slot %d: %w", i, err)
		}
		r.grids = append(r.grids, g)
	}
	return r, nil
}

// Slots returns the number of slots laid out.
func (r *Renderer) Slots() int { return r.slots }

// SymbolsPerSlot returns 12 or 14 depending on the cyclic prefix.
func (r *Renderer) SymbolsPerSlot() int { return grid.SymbolsPerSlot(r.extendedCP) }

// Grid returns the grid of one slot, nil when slot is out of range.
func (r *Renderer) Grid(slot int) *grid.SlotGrid {
	if slot < 0 || slot >= r.slots {
		return nil
	}
	return r.grids[slot]
}

// SetPalette replaces the colors used by the PNG and HTML outputs.
func (r *Renderer) SetPalette(p Palette) { r.palette = p }

// FillSignal writes the signal into the grid of its slot.
func (r *Renderer) FillSignal(sig grid.Signal) error {
	g := r.Grid(sig.Slot())
	if g == nil {
		return fmt.Errorf("%w: slot %d, renderer has %d", ErrSlotOutOfRange, sig.Slot(), r.slots)
	}
	if err := g.Fill(sig); err != nil {
		return fmt.Errorf("slot %d: %w", sig.Slot(), err)
	}
	logrus.Debugf("renderer: filled slot %d, ports in use %v", sig.Slot(), g.Ports())
	return nil
}

// cell is one occupied RE in renderer coordinates: x spans all slots' symbols.
type cell struct {
	x, y int
	id   grid.SignalID
}

// cells walks every RE of port across all slots in slot, symbol, subcarrier order.
func (r *Renderer) cells(port int) []cell {
	var out []cell
	symbols := r.SymbolsPerSlot()
	for slot, g := range r.grids {
		plane := g.Snapshot(port)
		for l := 0; l < symbols; l++ {
			for sc := range plane {
				out = append(out, cell{x: slot*symbols + l, y: sc, id: plane[sc][l]})
			}
		}
	}
	return out
}

func (r *Renderer) checkPort(port int) error {
	if port < 0 || port >= grid.MaxAntennaPorts {
		return fmt.Errorf("port %d not in [0, %d)", port, grid.MaxAntennaPorts)
	}
	return nil
}
