package render

import (
	"fmt"
	"image/color"
	"strconv"

	"github.com/nr-sim/nr-resource-grid/grid"
)

// Palette maps each signal to the fill color of its resource elements.
type Palette map[grid.SignalID]color.RGBA

// fallback colors signals missing from a palette.
var fallback = color.RGBA{R: 0x80, G: 0x80, B: 0x80, A: 0xff}

// DefaultPalette colors every catalog signal; unused REs are white and NZP-CSI-RS is red.
func DefaultPalette() Palette {
	return Palette{
		grid.Unused:      {R: 0xff, G: 0xff, B: 0xff, A: 0xff},
		grid.PBCH:        {R: 0x1f, G: 0x77, B: 0xb4, A: 0xff},
		grid.PDCCH:       {R: 0x2c, G: 0xa0, B: 0x2c, A: 0xff},
		grid.PDCCHUnused: {R: 0x98, G: 0xdf, B: 0x8a, A: 0xff},
		grid.PDSCH:       {R: 0x94, G: 0x67, B: 0xbd, A: 0xff},
		grid.PDSCHUnused: {R: 0xc5, G: 0xb0, B: 0xd5, A: 0xff},
		grid.PSS:         {R: 0x8c, G: 0x56, B: 0x4b, A: 0xff},
		grid.SSS:         {R: 0xc4, G: 0x9c, B: 0x94, A: 0xff},
		grid.PTRS:        {R: 0xe3, G: 0x77, B: 0xc2, A: 0xff},
		grid.NZPCSIRS:    {R: 0xff, G: 0x00, B: 0x00, A: 0xff},
		grid.ZPCSIRS:     {R: 0xff, G: 0x7f, B: 0x0e, A: 0xff},
		grid.RIMRS:       {R: 0xbc, G: 0xbd, B: 0x22, A: 0xff},
		grid.PRS:         {R: 0x17, G: 0xbe, B: 0xcf, A: 0xff},
		grid.DMRSPBCH:    {R: 0xae, G: 0xc7, B: 0xe8, A: 0xff},
		grid.DMRSPDCCH:   {R: 0x00, G: 0x64, B: 0x00, A: 0xff},
		grid.DMRSPDSCH:   {R: 0x4b, G: 0x00, B: 0x82, A: 0xff},
	}
}

// Color returns the color of id, gray when the palette has no entry.
func (p Palette) Color(id grid.SignalID) color.RGBA {
	if c, ok := p[id]; ok {
		return c
	}
	return fallback
}

// Hex renders the color of id as "#rrggbb".
func (p Palette) Hex(id grid.SignalID) string {
	c := p.Color(id)
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// ParseHex parses "#rrggbb" into an opaque color.
func ParseHex(s string) (color.RGBA, error) {
	var c color.RGBA
	if len(s) != 7 || s[0] != '#' {
		return c, fmt.Errorf("color %q: want #rrggbb", s)
	}
	v, err := strconv.ParseUint(s[1:], 16, 32)
	if err != nil {
		return c, fmt.Errorf("color %q: %w", s, err)
	}
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}, nil
}

// Override returns a copy of p with the named signals recolored ("NZP_CSI_RS": "#00ff00").
func (p Palette) Override(colors map[string]string) (Palette, error) {
	out := make(Palette, len(p)+len(colors))
	for id, c := range p {
		out[id] = c
	}
	for name, hex := range colors {
		id, err := grid.ParseSignalID(name)
		if err != nil {
			return nil, err
		}
		c, err := ParseHex(hex)
		if err != nil {
			return nil, err
		}
		out[id] = c
	}
	return out, nil
}
