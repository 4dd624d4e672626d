package cmd

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/nr-sim/nr-resource-grid/grid"
	"github.com/nr-sim/nr-resource-grid/grid/csirs"
)

// Scene is the YAML description of what to render: the slot layout and the signals placed in it.
type Scene struct {
	Slots      int               `yaml:"slots"`
	Bandwidth  int               `yaml:"bandwidth"`
	ExtendedCP bool              `yaml:"extended_cp"`
	Port       int               `yaml:"port"`
	Colors     map[string]string `yaml:"colors,omitempty"`
	CSIRS      []CSIRSSpec       `yaml:"csi_rs"`
}

// CSIRSSpec is one CSI-RS resource in a scene file.
type CSIRSSpec struct {
	Row           int     `yaml:"row"`
	Slot          int     `yaml:"slot"`
	FreqPositions string  `yaml:"freq_positions"`
	StartPRB      int     `yaml:"start_prb"`
	Bandwidth     int     `yaml:"bandwidth"`
	Density       float64 `yaml:"density"`
	Sym1          int     `yaml:"sym1"`
	Sym2          *int    `yaml:"sym2,omitempty"` // absent = no second symbol
	ZeroPower     bool    `yaml:"zero_power"`
	OddPRB        bool    `yaml:"odd_prb"`
	TRS           bool    `yaml:"trs"`
}

// Params converts the scene entry into mapping parameters.
func (c CSIRSSpec) Params() csirs.Params {
	p := csirs.Params{
		Row:           c.Row,
		Slot:          c.Slot,
		FreqPositions: c.FreqPositions,
		StartPRB:      c.StartPRB,
		Bandwidth:     c.Bandwidth,
		Density:       c.Density,
		Sym1:          c.Sym1,
		Sym2:          csirs.NoSymbol,
		ZeroPower:     c.ZeroPower,
		OddPRB:        c.OddPRB,
		Tracking:      c.TRS,
	}
	if c.Sym2 != nil {
		p.Sym2 = *c.Sym2
	}
	return p
}

// LoadScene reads a scene file with strict field checking: unknown keys are errors.
func LoadScene(path string) (*Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading scene: %w", err)
	}
	var s Scene
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&s); err != nil {
		return nil, fmt.Errorf("parsing scene: %w", err)
	}
	return &s, nil
}

// Validate checks the layout fields; signal parameters are checked by csirs.New.
func (s *Scene) Validate() error {
	if s.Slots <= 0 {
		return fmt.Errorf("slots must be positive, got %d", s.Slots)
	}
	if s.Bandwidth <= 0 {
		return fmt.Errorf("bandwidth must be positive, got %d", s.Bandwidth)
	}
	if s.Port < 0 || s.Port >= grid.MaxAntennaPorts {
		return fmt.Errorf("port %d not in [0, %d)", s.Port, grid.MaxAntennaPorts)
	}
	if len(s.CSIRS) == 0 {
		return fmt.Errorf("at least one csi_rs entry required")
	}
	for i, c := range s.CSIRS {
		if c.Slot < 0 || c.Slot >= s.Slots {
			return fmt.Errorf("csi_rs[%d]: slot %d not in [0, %d)", i, c.Slot, s.Slots)
		}
	}
	return nil
}

// Signals builds every CSI-RS of the scene.
func (s *Scene) Signals() ([]*csirs.Signal, error) {
	out := make([]*csirs.Signal, 0, len(s.CSIRS))
	for i, c := range s.CSIRS {
		sig, err := csirs.New(c.Params())
		if err != nil {
			return nil, fmt.Errorf("csi_rs[%d]: %w", i, err)
		}
		out = append(out, sig)
	}
	return out, nil
}
