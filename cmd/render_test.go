package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nr-sim/nr-resource-grid/grid"
	"github.com/nr-sim/nr-resource-grid/grid/csirs"
)

func TestBuildRenderer_ReferenceScene(t *testing.T) {
	s, err := LoadScene("testdata/reference.yaml")
	require.NoError(t, err)

	r, err := buildRenderer(s)
	require.NoError(t, err)
	assert.Equal(t, grid.NZPCSIRS, r.Grid(1).At(31, 7, 10))
	assert.Empty(t, r.Grid(0).Ports())
}

func TestBuildRenderer_MappingErrorPropagates(t *testing.T) {
	s, err := LoadScene("testdata/reference.yaml")
	require.NoError(t, err)
	s.CSIRS[0].Sym2 = nil

	_, err = buildRenderer(s)
	assert.ErrorIs(t, err, csirs.ErrInvalidSymbolConfiguration)
}

func TestBuildRenderer_BadColor(t *testing.T) {
	s, err := LoadScene("testdata/reference.yaml")
	require.NoError(t, err)
	s.Colors = map[string]string{"NZP_CSI_RS": "red"}

	_, err = buildRenderer(s)
	assert.Error(t, err)
}

func TestRenderScene_WritesRequestedOutputs(t *testing.T) {
	s, err := LoadScene("testdata/reference.yaml")
	require.NoError(t, err)
	dir := t.TempDir()
	png := filepath.Join(dir, "grid.png")
	html := filepath.Join(dir, "grid.html")

	require.NoError(t, renderScene(s, png, html))

	for _, p := range []string{png, html} {
		info, err := os.Stat(p)
		require.NoError(t, err)
		assert.Positive(t, info.Size(), p)
	}
}

func TestRenderScene_SkipsEmptyPaths(t *testing.T) {
	s, err := LoadScene("testdata/reference.yaml")
	require.NoError(t, err)
	dir := t.TempDir()
	html := filepath.Join(dir, "only.html")

	require.NoError(t, renderScene(s, "", html))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}
