package csirs

import (
	"errors"
	"fmt"
	"math/bits"
	"strconv"

	"github.com/sirupsen/logrus"

	"github.com/nr-sim/nr-resource-grid/grid"
)

// NoSymbol marks an absent second symbol.
const NoSymbol = -1

var (
	// ErrInvalidSymbolConfiguration is returned when a two-symbol-group row has no second symbol.
	ErrInvalidSymbolConfiguration = errors.New("invalid CSI-RS symbol configuration")
	// ErrPortOverflow is returned when port pairing runs past the row's port count.
	ErrPortOverflow = errors.New("CSI-RS port overflow")
	// ErrInvalidBitmap is returned for a frequency-domain bitmap that is not a non-zero binary string
	// or that places REs outside the PRB.
	ErrInvalidBitmap = errors.New("invalid CSI-RS frequency-domain bitmap")
	// ErrInvalidDensity is returned for densities other than 0.5, 1 and 3.
	ErrInvalidDensity = errors.New("invalid CSI-RS density")
)

var validDensities = map[float64]bool{0.5: true, 1: true, 3: true}

// Params are the per-instance placement parameters of one CSI-RS resource.
type Params struct {
	Row           int     // row in TS 38.211 Table 7.4.1.5.3-1
	Slot          int     // slot the resource is rendered in
	FreqPositions string  // frequency-domain bitmap as a binary string, e.g. "0010"
	StartPRB      int     // first PRB of the resource
	Bandwidth     int     // number of PRBs spanned
	Density       float64 // 0.5, 1 or 3
	Sym1          int     // first OFDM symbol
	Sym2          int     // second OFDM symbol, NoSymbol when absent (rows 13, 14, 16, 17)
	ZeroPower     bool    // ZP-CSI-RS instead of NZP-CSI-RS
	OddPRB        bool    // with density 0.5, occupy odd PRBs instead of even ones
	Tracking      bool    // tracking reference signal; carried but not used by the mapping
}

// DefaultParams mirrors the reference rendering: row 16 on slot 1 over 2 PRBs, symbols 2 and 9.
func DefaultParams() Params {
	return Params{
		Row:           16,
		Slot:          1,
		FreqPositions: "0010",
		StartPRB:      0,
		Bandwidth:     2,
		Density:       1,
		Sym1:          2,
		Sym2:          9,
	}
}

// Signal is a CSI-RS resource ready to be mapped. It implements grid.Signal.
type Signal struct {
	conf       Config
	slot       int
	bitmap     uint64
	startPRB   int
	numPRBs    int
	density    float64
	sym1, sym2 int
	evenOrOdd  int
	zeroPower  bool
	tracking   bool
}

var _ grid.Signal = (*Signal)(nil)

// New validates p and builds the signal. Mapping errors that depend on the row
// (symbol pairing, port overflow) are reported by Fragments.
func New(p Params) (*Signal, error) {
	conf, err := Lookup(p.Row)
	if err != nil {
		return nil, err
	}
	bitmap, err := strconv.ParseUint(p.FreqPositions, 2, 32)
	if err != nil || bitmap == 0 {
		return nil, fmt.Errorf("%w: %q", ErrInvalidBitmap, p.FreqPositions)
	}
	if !validDensities[p.Density] {
		return nil, fmt.Errorf("%w: %g, valid: 0.5, 1, 3", ErrInvalidDensity, p.Density)
	}
	if !conf.AllowsDensity(p.Density) {
		logrus.Warnf("density %g is not listed for CSI-RS row %d (allowed %v)", p.Density, conf.Row, conf.Density)
	}
	if p.StartPRB < 0 || p.Bandwidth <= 0 {
		return nil, fmt.Errorf("invalid CSI-RS PRB range: start %d, bandwidth %d", p.StartPRB, p.Bandwidth)
	}
	if p.Slot < 0 || p.Sym1 < 0 {
		return nil, fmt.Errorf("invalid CSI-RS placement: slot %d, symbol %d", p.Slot, p.Sym1)
	}

	s := &Signal{
		conf:      conf,
		slot:      p.Slot,
		bitmap:    bitmap,
		startPRB:  p.StartPRB,
		numPRBs:   p.Bandwidth,
		density:   p.Density,
		sym1:      p.Sym1,
		sym2:      p.Sym2,
		zeroPower: p.ZeroPower,
		tracking:  p.Tracking,
	}
	if p.OddPRB {
		s.evenOrOdd = 1
	}
	last := 1 // ports are paired over subcarriers (k, k+1)
	if conf.Row == 1 {
		last = 0
	}
	for _, k := range s.offsetsInPRB() {
		if k < 0 || k+last >= grid.SubcarriersPerPRB {
			return nil, fmt.Errorf("%w: %q puts subcarrier %d outside the PRB for row %d",
				ErrInvalidBitmap, p.FreqPositions, k, conf.Row)
		}
	}
	return s, nil
}

// Slot returns the slot the resource occupies.
func (s *Signal) Slot() int { return s.slot }

// Config returns the table row the signal was built from.
func (s *Signal) Config() Config { return clone(s.conf) }

// Tracking reports whether the resource was declared as a tracking reference signal.
func (s *Signal) Tracking() bool { return s.tracking }

// ID is ZP_CSI_RS for zero-power resources, NZP_CSI_RS otherwise.
func (s *Signal) ID() grid.SignalID {
	if s.zeroPower {
		return grid.ZPCSIRS
	}
	return grid.NZPCSIRS
}

// offsetsInPRB returns the first subcarrier of every RE group within a PRB.
// The bitmap is expected to be one-hot; its highest set bit gives the base offset.
func (s *Signal) offsetsInPRB() []int {
	base := bits.Len64(s.bitmap) - 1
	switch s.conf.Row {
	case 1:
		return stride(base, 4, 3)
	case 2:
		return []int{base}
	case 4:
		return stride(base, 2, 2)
	default:
		return stride(base, 2, s.conf.K)
	}
}

func stride(base, step, n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = base + step*i
	}
	return out
}

// prbs returns the occupied PRBs; density 0.5 keeps only even (or odd) ones.
func (s *Signal) prbs() []int {
	out := make([]int, 0, s.numPRBs)
	for prb := s.startPRB; prb < s.startPRB+s.numPRBs; prb++ {
		if s.density == 0.5 && prb%2 != s.evenOrOdd {
			continue
		}
		out = append(out, prb)
	}
	return out
}

// symbols returns the occupied OFDM symbols picked from [sym1, sym1+1, sym2, sym2+1].
func (s *Signal) symbols() ([]int, error) {
	candidates := []int{s.sym1, s.sym1 + 1, s.sym2, s.sym2 + 1}
	if s.conf.L == 2 {
		if s.sym2 < 0 {
			return nil, fmt.Errorf("%w: row %d needs a second symbol, got %d",
				ErrInvalidSymbolConfiguration, s.conf.Row, s.sym2)
		}
		if s.conf.LAdd {
			return candidates, nil
		}
		return []int{candidates[0], candidates[2]}, nil
	}
	if s.conf.LAdd {
		return candidates[:2], nil
	}
	return candidates[:1], nil
}

// layout is the resolved placement handed to an emitter.
type layout struct {
	conf        Config
	id          grid.SignalID
	subcarriers []int
	prbs        []int
	symbols     []int
}

type emitter func(layout) ([]grid.Fragment, error)

// emitters selects the emission order by row; rows absent here use emitSymbolMajor.
var emitters = map[int]emitter{
	1: emitSingle,
	4: emitOffsetMajor,
}

// Fragments computes every fragment of the resource. On error the result is nil.
func (s *Signal) Fragments() ([]grid.Fragment, error) {
	syms, err := s.symbols()
	if err != nil {
		return nil, err
	}
	l := layout{
		conf:        s.conf,
		id:          s.ID(),
		subcarriers: s.offsetsInPRB(),
		prbs:        s.prbs(),
		symbols:     syms,
	}
	emit, ok := emitters[s.conf.Row]
	if !ok {
		emit = emitSymbolMajor
	}
	frags, err := emit(l)
	if err != nil {
		return nil, err
	}
	logrus.Debugf("csi-rs row %d slot %d: %d fragments over symbols %v, prbs %v, offsets %v",
		s.conf.Row, s.slot, len(frags), syms, l.prbs, l.subcarriers)
	return frags, nil
}

// emitSingle places all offsets of a one-port row on port 0 in the first symbol.
func emitSingle(l layout) ([]grid.Fragment, error) {
	return []grid.Fragment{grid.NewFragment(0, l.id, l.symbols[0], l.prbs, l.subcarriers)}, nil
}

// emitOffsetMajor walks offsets in the outer loop and symbols in the inner loop.
func emitOffsetMajor(l layout) ([]grid.Fragment, error) {
	var out []grid.Fragment
	port := 0
	for _, k := range l.subcarriers {
		for _, sym := range l.symbols {
			var err error
			if out, port, err = appendPair(out, l, port, sym, k); err != nil {
				return nil, err
			}
		}
	}
	return out, nil
}

// emitSymbolMajor walks symbols in the outer loop and offsets in the inner loop.
func emitSymbolMajor(l layout) ([]grid.Fragment, error) {
	var out []grid.Fragment
	port := 0
	for _, sym := range l.symbols {
		for _, k := range l.subcarriers {
			var err error
			if out, port, err = appendPair(out, l, port, sym, k); err != nil {
				return nil, err
			}
		}
	}
	return out, nil
}

// appendPair emits the fd-CDM2 pair (k, k+1) on ports port and port+1 and advances port by 2.
func appendPair(out []grid.Fragment, l layout, port, sym, k int) ([]grid.Fragment, int, error) {
	if port > l.conf.Ports {
		return nil, port, fmt.Errorf("%w: port %d exceeds the %d ports of row %d",
			ErrPortOverflow, port, l.conf.Ports, l.conf.Row)
	}
	pair := []int{k, k + 1}
	out = append(out,
		grid.NewFragment(port, l.id, sym, l.prbs, pair),
		grid.NewFragment(port+1, l.id, sym, l.prbs, pair),
	)
	return out, port + 2, nil
}
