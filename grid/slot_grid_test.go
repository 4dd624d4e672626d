package grid

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// staticSignal replays a fixed fragment list.
type staticSignal struct {
	slot  int
	frags []Fragment
	err   error
}

func (s staticSignal) Slot() int                      { return s.slot }
func (s staticSignal) Fragments() ([]Fragment, error) { return s.frags, s.err }

func newTestGrid(t *testing.T, prbs int, extendedCP bool) *SlotGrid {
	t.Helper()
	g, err := NewSlotGrid(prbs, Numerology0, extendedCP)
	require.NoError(t, err)
	return g
}

func TestNewSlotGrid_AllCellsUnused(t *testing.T) {
	for _, ext := range []bool{false, true} {
		g := newTestGrid(t, 3, ext)
		assert.Equal(t, 36, g.Subcarriers())
		for p := 0; p < MaxAntennaPorts; p++ {
			for sc := 0; sc < g.Subcarriers(); sc++ {
				for l := 0; l < g.Symbols(); l++ {
					if g.At(p, sc, l) != Unused {
						t.Fatalf("cell (%d,%d,%d) = %s, want Unused", p, sc, l, g.At(p, sc, l))
					}
				}
			}
		}
		assert.Empty(t, g.Ports())
	}
}

func TestNewSlotGrid_SymbolsFollowCyclicPrefix(t *testing.T) {
	assert.Equal(t, 14, newTestGrid(t, 1, false).Symbols())
	assert.Equal(t, 12, newTestGrid(t, 1, true).Symbols())
}

func TestNewSlotGrid_RejectsBadParameters(t *testing.T) {
	_, err := NewSlotGrid(0, Numerology0, false)
	assert.Error(t, err)

	_, err = NewSlotGrid(4, Numerology1, false)
	assert.True(t, errors.Is(err, ErrUnsupportedNumerology))
}

func TestFill_WritesEveryPRBAndSubcarrier(t *testing.T) {
	// GIVEN a fragment on port 3, symbol 5, PRBs {0,2}, offsets {1,7}
	g := newTestGrid(t, 4, false)
	sig := staticSignal{frags: []Fragment{NewFragment(3, NZPCSIRS, 5, []int{0, 2}, []int{1, 7})}}

	// WHEN the grid is filled
	require.NoError(t, g.Fill(sig))

	// THEN exactly the four addressed REs are occupied
	for _, sc := range []int{1, 7, 25, 31} {
		assert.Equal(t, NZPCSIRS, g.At(3, sc, 5), "subcarrier %d", sc)
	}
	assert.Equal(t, 4, g.Occupied(3))
	assert.Equal(t, []int{3}, g.Ports())
	assert.Equal(t, Unused, g.At(3, 1, 4))
	assert.Equal(t, Unused, g.At(2, 1, 5))
}

func TestFill_LastWriteWins(t *testing.T) {
	g := newTestGrid(t, 1, false)
	require.NoError(t, g.Fill(staticSignal{frags: []Fragment{NewFragment(0, PDSCH, 2, []int{0}, []int{0, 1})}}))
	require.NoError(t, g.Fill(staticSignal{frags: []Fragment{NewFragment(0, ZPCSIRS, 2, []int{0}, []int{1})}}))

	assert.Equal(t, PDSCH, g.At(0, 0, 2))
	assert.Equal(t, ZPCSIRS, g.At(0, 1, 2))
}

func TestFill_SameSignalTwice_IsIdempotent(t *testing.T) {
	sig := staticSignal{frags: []Fragment{
		NewFragment(0, NZPCSIRS, 2, []int{0, 1}, []int{3, 4}),
		NewFragment(1, NZPCSIRS, 3, []int{1}, []int{3, 4}),
	}}
	once := newTestGrid(t, 2, false)
	twice := newTestGrid(t, 2, false)
	require.NoError(t, once.Fill(sig))
	require.NoError(t, twice.Fill(sig))
	require.NoError(t, twice.Fill(sig))

	for p := 0; p < MaxAntennaPorts; p++ {
		assert.Equal(t, once.Snapshot(p), twice.Snapshot(p), "port %d", p)
	}
}

func TestFill_MappingError_LeavesGridUntouched(t *testing.T) {
	boom := errors.New("boom")
	g := newTestGrid(t, 1, false)
	err := g.Fill(staticSignal{frags: []Fragment{NewFragment(0, PSS, 0, []int{0}, []int{0})}, err: boom})
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 0, g.Occupied(0))
}

func TestFillFragments_OutOfRange_NoPartialWrite(t *testing.T) {
	tests := []struct {
		name string
		frag Fragment
	}{
		{"port", NewFragment(MaxAntennaPorts, PSS, 0, []int{0}, []int{0})},
		{"negative port", NewFragment(-1, PSS, 0, []int{0}, []int{0})},
		{"symbol", NewFragment(0, PSS, 14, []int{0}, []int{0})},
		{"prb", NewFragment(0, PSS, 0, []int{2}, []int{0})},
		{"subcarrier", NewFragment(0, PSS, 0, []int{0}, []int{12})},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := newTestGrid(t, 2, false)
			good := NewFragment(0, SSS, 1, []int{0}, []int{0})
			err := g.FillFragments([]Fragment{good, tc.frag})
			require.ErrorIs(t, err, ErrOutOfRange)
			assert.Equal(t, Unused, g.At(0, 0, 1), "valid fragment must not be written")
		})
	}
}

func TestNewFragment_CopiesSlices(t *testing.T) {
	prbs := []int{0, 1}
	f := NewFragment(0, PSS, 0, prbs, []int{0})
	prbs[0] = 9
	assert.Equal(t, []int{0, 1}, f.PRBs)
	assert.Equal(t, 2, f.REs())
	assert.Equal(t, "Signal PSS occurred on port 0, symbol 0, subcarriers [0] of prbs [0 1]", f.String())
}

func TestNumerology_SubcarrierSpacing(t *testing.T) {
	assert.Equal(t, 15, Numerology0.SubcarrierSpacingKHz())
	assert.Equal(t, 120, Numerology3.SubcarrierSpacingKHz())
	assert.Equal(t, "mu=1 (30kHz)", Numerology1.String())
}
