package csirs

import (
	"errors"
	"fmt"
)

// ErrConfigurationNotFound is returned for a row outside Table 7.4.1.5.3-1.
var ErrConfigurationNotFound = errors.New("CSI-RS configuration row not found")

// Config is one row of TS 38.211 Table 7.4.1.5.3-1 (CSI-RS locations within a slot).
type Config struct {
	Row      int
	K        int       // frequency-domain RE groups per PRB
	L        int       // time-domain symbol groups
	CDMIndex int       // CDM group index step within the row
	Ports    int       // number of antenna ports; also the highest port a mapping may start a pair at
	CDMGroup string    // CDM type, informational
	Density  []float64 // allowed densities
	LAdd     bool      // each base symbol is followed by an adjacent one
}

// AllowsDensity reports whether d appears in the row's density pattern.
func (c Config) AllowsDensity(d float64) bool {
	for _, v := range c.Density {
		if v == d {
			return true
		}
	}
	return false
}

// String is the one-line summary printed by the rows command.
func (c Config) String() string {
	return fmt.Sprintf("row %2d: ports=%-2d k=%d l=%d cdm=%-13s density=%v l_add=%t",
		c.Row, c.Ports, c.K, c.L, c.CDMGroup, c.Density, c.LAdd)
}

var locations = [...]Config{
	{Row: 1, K: 1, L: 1, CDMIndex: 1, Ports: 1, CDMGroup: "noCDM", Density: []float64{3}},
	{Row: 2, K: 1, L: 1, CDMIndex: 1, Ports: 1, CDMGroup: "noCDM", Density: []float64{1, 0.5}},
	{Row: 3, K: 1, L: 1, CDMIndex: 1, Ports: 2, CDMGroup: "fd-CDM2", Density: []float64{1, 0.5}},
	{Row: 4, K: 1, L: 1, CDMIndex: 1, Ports: 4, CDMGroup: "fd-CDM2", Density: []float64{1}},
	{Row: 5, K: 1, L: 1, CDMIndex: 1, Ports: 4, CDMGroup: "fd-CDM2", Density: []float64{1}, LAdd: true},
	{Row: 6, K: 4, L: 1, CDMIndex: 1, Ports: 8, CDMGroup: "fd-CDM2", Density: []float64{1}},
	{Row: 7, K: 2, L: 1, CDMIndex: 1, Ports: 8, CDMGroup: "fd-CDM2", Density: []float64{1}, LAdd: true},
	{Row: 8, K: 2, L: 1, CDMIndex: 1, Ports: 8, CDMGroup: "cdm4-FD2-TD2", Density: []float64{1}},
	{Row: 9, K: 6, L: 1, CDMIndex: 1, Ports: 12, CDMGroup: "fd-CDM2", Density: []float64{1}},
	{Row: 10, K: 3, L: 1, CDMIndex: 1, Ports: 12, CDMGroup: "cdm4-FD2-TD2", Density: []float64{1}},
	{Row: 11, K: 4, L: 1, CDMIndex: 2, Ports: 16, CDMGroup: "fd-CDM2", Density: []float64{1, 0.5}, LAdd: true},
	{Row: 12, K: 4, L: 1, CDMIndex: 1, Ports: 16, CDMGroup: "cdm4-FD2-TD2", Density: []float64{1, 0.5}},
	{Row: 13, K: 3, L: 2, CDMIndex: 2, Ports: 24, CDMGroup: "fd-CDM2", Density: []float64{1, 0.5}, LAdd: true},
	{Row: 14, K: 3, L: 2, CDMIndex: 1, Ports: 24, CDMGroup: "cdm4-FD2-TD2", Density: []float64{1, 0.5}},
	{Row: 15, K: 3, L: 1, CDMIndex: 1, Ports: 24, CDMGroup: "cdm8-FD2-TD4", Density: []float64{1, 0.5}},
	{Row: 16, K: 4, L: 2, CDMIndex: 4, Ports: 32, CDMGroup: "fd-CDM2", Density: []float64{1, 0.5}, LAdd: true},
	{Row: 17, K: 4, L: 2, CDMIndex: 1, Ports: 32, CDMGroup: "cdm4-FD2-TD2", Density: []float64{1, 0.5}},
	{Row: 18, K: 4, L: 1, CDMIndex: 1, Ports: 32, CDMGroup: "cdm8-FD2-TD4", Density: []float64{1, 0.5}},
}

// Lookup returns the configuration of the given table row (1..18).
// The returned Config owns its Density slice.
func Lookup(row int) (Config, error) {
	if row < 1 || row > len(locations) {
		return Config{}, fmt.Errorf("%w: row %d, valid rows are 1..%d", ErrConfigurationNotFound, row, len(locations))
	}
	return clone(locations[row-1]), nil
}

// Rows returns every configuration in row order.
func Rows() []Config {
	out := make([]Config, len(locations))
	for i, c := range locations {
		out[i] = clone(c)
	}
	return out
}

func clone(c Config) Config {
	c.Density = append([]float64(nil), c.Density...)
	return c
}
