package cmd

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/nr-sim/nr-resource-grid/grid/csirs"
)

func TestWriteFragments_TextOneLinePerFragment(t *testing.T) {
	s, err := LoadScene("testdata/reference.yaml")
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, writeFragments(&buf, s, false))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 32)
	assert.Equal(t, "Signal NZP_CSI_RS occurred on port 0, symbol 2, subcarriers [1 2] of prbs [0 1]", lines[0])
	assert.Equal(t, "Signal NZP_CSI_RS occurred on port 31, symbol 10, subcarriers [7 8] of prbs [0 1]", lines[31])
}

func TestWriteFragments_YAML(t *testing.T) {
	s, err := LoadScene("testdata/reference.yaml")
	require.NoError(t, err)
	s.CSIRS[0].ZeroPower = true

	var buf bytes.Buffer
	require.NoError(t, writeFragments(&buf, s, true))

	var records []fragmentRecord
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &records))
	require.Len(t, records, 32)
	assert.Equal(t, fragmentRecord{Slot: 1, Port: 5, Signal: "ZP_CSI_RS", Symbol: 2, PRBs: []int{0, 1}, Subcarriers: []int{5, 6}}, records[5])
}

func TestWriteFragments_ErrorPrintsNothing(t *testing.T) {
	s, err := LoadScene("testdata/reference.yaml")
	require.NoError(t, err)
	s.CSIRS = append(s.CSIRS, CSIRSSpec{Row: 14, FreqPositions: "1", Bandwidth: 1, Density: 1, Sym1: 4})

	var buf bytes.Buffer
	err = writeFragments(&buf, s, false)
	assert.ErrorIs(t, err, csirs.ErrInvalidSymbolConfiguration)
	assert.Empty(t, buf.String())
}

func TestWriteRows_ListsTable(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeRows(&buf))
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 18)
	assert.True(t, strings.HasPrefix(lines[15], "row 16: ports=32"))
}

func TestCurrentScene_FromFlags(t *testing.T) {
	old := scenePath
	t.Cleanup(func() { scenePath = old })
	scenePath = ""

	s, err := currentScene()
	require.NoError(t, err)
	require.NoError(t, s.Validate())
	require.Len(t, s.CSIRS, 1)
	assert.Equal(t, csirs.DefaultParams(), s.CSIRS[0].Params())
	assert.Equal(t, 31, s.Port)
}
