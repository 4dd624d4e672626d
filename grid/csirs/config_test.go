package csirs

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookup_AllRowsPresentAndKeyed(t *testing.T) {
	for row := 1; row <= 18; row++ {
		conf, err := Lookup(row)
		require.NoError(t, err, "row %d", row)
		assert.Equal(t, row, conf.Row)
		assert.Contains(t, []int{1, 2}, conf.L)
		assert.NotEmpty(t, conf.Density)
	}
}

func TestLookup_UnknownRow_ReturnsConfigurationNotFound(t *testing.T) {
	for _, row := range []int{0, -1, 19, 100} {
		_, err := Lookup(row)
		assert.True(t, errors.Is(err, ErrConfigurationNotFound), "row %d: %v", row, err)
	}
}

func TestLookup_ReturnsCopy(t *testing.T) {
	// GIVEN a caller that mutates the returned density slice
	conf, err := Lookup(16)
	require.NoError(t, err)
	conf.Density[0] = 42

	// THEN the table is unchanged
	again, err := Lookup(16)
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 0.5}, again.Density)
}

func TestLookup_Row16(t *testing.T) {
	conf, err := Lookup(16)
	require.NoError(t, err)
	assert.Equal(t, Config{Row: 16, K: 4, L: 2, CDMIndex: 4, Ports: 32, CDMGroup: "fd-CDM2",
		Density: []float64{1, 0.5}, LAdd: true}, conf)
}

func TestRows_InRowOrder(t *testing.T) {
	rows := Rows()
	require.Len(t, rows, 18)
	for i, c := range rows {
		assert.Equal(t, i+1, c.Row)
	}
}

func TestConfig_AllowsDensity(t *testing.T) {
	row1, _ := Lookup(1)
	assert.True(t, row1.AllowsDensity(3))
	assert.False(t, row1.AllowsDensity(1))

	row12, _ := Lookup(12)
	assert.True(t, row12.AllowsDensity(0.5))
	assert.False(t, row12.AllowsDensity(3))
}

func TestConfig_String(t *testing.T) {
	row4, _ := Lookup(4)
	assert.Equal(t, "row  4: ports=4  k=1 l=1 cdm=fd-CDM2       density=[1] l_add=false", row4.String())
}
