package render

import (
	"fmt"
	"image/color"
	"io"

	"github.com/sirupsen/logrus"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/nr-sim/nr-resource-grid/grid"
)

// cellPlotter draws every RE as a filled unit square with a black border.
type cellPlotter struct {
	cells   []cell
	width   int // symbols across all slots
	height  int // subcarriers
	palette Palette
	border  draw.LineStyle
}

// Plot implements plot.Plotter.
func (cp *cellPlotter) Plot(c draw.Canvas, plt *plot.Plot) {
	trX, trY := plt.Transforms(&c)
	for _, ce := range cp.cells {
		x0, x1 := trX(float64(ce.x)), trX(float64(ce.x+1))
		y0, y1 := trY(float64(ce.y)), trY(float64(ce.y+1))
		c.FillPolygon(cp.palette.Color(ce.id), []vg.Point{
			{X: x0, Y: y0}, {X: x0, Y: y1}, {X: x1, Y: y1}, {X: x1, Y: y0},
		})
	}
	for x := 0; x <= cp.width; x++ {
		c.StrokeLine2(cp.border, trX(float64(x)), trY(0), trX(float64(x)), trY(float64(cp.height)))
	}
	for y := 0; y <= cp.height; y++ {
		c.StrokeLine2(cp.border, trX(0), trY(float64(y)), trX(float64(cp.width)), trY(float64(y)))
	}
}

// DataRange implements plot.DataRanger.
func (cp *cellPlotter) DataRange() (xmin, xmax, ymin, ymax float64) {
	return 0, float64(cp.width), 0, float64(cp.height)
}

// swatch is a legend thumbnail filled with one color.
type swatch color.RGBA

// Thumbnail implements plot.Thumbnailer.
func (s swatch) Thumbnail(c *draw.Canvas) {
	c.FillPolygon(color.RGBA(s), []vg.Point{
		{X: c.Min.X, Y: c.Min.Y}, {X: c.Min.X, Y: c.Max.Y},
		{X: c.Max.X, Y: c.Max.Y}, {X: c.Max.X, Y: c.Min.Y},
	})
}

// Plot builds the gonum plot of one port: slots side by side on the symbol axis,
// subcarriers on the vertical axis.
func (r *Renderer) Plot(port int) (*plot.Plot, error) {
	if err := r.checkPort(port); err != nil {
		return nil, err
	}
	symbols := r.SymbolsPerSlot()
	cp := &cellPlotter{
		cells:   r.cells(port),
		width:   r.slots * symbols,
		height:  r.bandwidth * grid.SubcarriersPerPRB,
		palette: r.palette,
		border:  draw.LineStyle{Color: color.Black, Width: vg.Points(0.5)},
	}

	p := plot.New()
	p.Title.Text = fmt.Sprintf("Port %d - %d slot(s), %d PRB(s)", port, r.slots, r.bandwidth)
	p.X.Label.Text = "OFDM symbol"
	p.Y.Label.Text = "Subcarrier"
	p.X.Min, p.X.Max = 0, float64(cp.width)
	p.Y.Min, p.Y.Max = 0, float64(cp.height)

	var xticks []plot.Tick
	for slot := 0; slot < r.slots; slot++ {
		xticks = append(xticks, plot.Tick{Value: float64(slot * symbols), Label: fmt.Sprintf("slot %d", slot)})
	}
	p.X.Tick.Marker = plot.ConstantTicks(xticks)
	var yticks []plot.Tick
	for prb := 0; prb <= r.bandwidth; prb++ {
		yticks = append(yticks, plot.Tick{Value: float64(prb * grid.SubcarriersPerPRB), Label: fmt.Sprintf("%d", prb*grid.SubcarriersPerPRB)})
	}
	p.Y.Tick.Marker = plot.ConstantTicks(yticks)
	p.Add(cp)

	seen := map[grid.SignalID]bool{}
	for _, ce := range cp.cells {
		if ce.id != grid.Unused && !seen[ce.id] {
			seen[ce.id] = true
			p.Legend.Add(ce.id.String(), swatch(r.palette.Color(ce.id)))
		}
	}
	p.Legend.Top = true
	p.Legend.Left = false
	return p, nil
}

// size scales the figure with the grid, one quarter inch per RE, with a floor for small grids.
func (r *Renderer) size() (vg.Length, vg.Length) {
	w := vg.Length(r.slots*r.SymbolsPerSlot())*vg.Inch/4 + 2*vg.Inch
	h := vg.Length(r.bandwidth*grid.SubcarriersPerPRB)*vg.Inch/4 + 2*vg.Inch
	return max(w, 6*vg.Inch), max(h, 4*vg.Inch)
}

// SavePNG writes the plot of port to path.
func (r *Renderer) SavePNG(port int, path string) error {
	p, err := r.Plot(port)
	if err != nil {
		return err
	}
	w, h := r.size()
	if err := p.Save(w, h, path); err != nil {
		return fmt.Errorf("save grid plot: %w", err)
	}
	logrus.Infof("wrote port %d grid to %s", port, path)
	return nil
}

// WritePNG encodes the plot of port as PNG to out.
func (r *Renderer) WritePNG(out io.Writer, port int) error {
	p, err := r.Plot(port)
	if err != nil {
		return err
	}
	w, h := r.size()
	wt, err := p.WriterTo(w, h, "png")
	if err != nil {
		return fmt.Errorf("encode grid plot: %w", err)
	}
	_, err = wt.WriteTo(out)
	return err
}
