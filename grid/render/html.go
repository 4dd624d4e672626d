package render

import (
	"fmt"
	"io"
	"os"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/sirupsen/logrus"

	"github.com/nr-sim/nr-resource-grid/grid"
)

// Chart builds an echarts scatter of one port with a series per occupying signal.
// Points sit at RE centers: (symbol across slots + 0.5, subcarrier + 0.5).
func (r *Renderer) Chart(port int) (*charts.Scatter, error) {
	if err := r.checkPort(port); err != nil {
		return nil, err
	}
	width := r.slots * r.SymbolsPerSlot()
	height := r.bandwidth * grid.SubcarriersPerPRB

	series := map[grid.SignalID][]opts.ScatterData{}
	var order []grid.SignalID
	for _, ce := range r.cells(port) {
		if ce.id == grid.Unused {
			continue
		}
		if _, ok := series[ce.id]; !ok {
			order = append(order, ce.id)
		}
		series[ce.id] = append(series[ce.id], opts.ScatterData{
			Value: []interface{}{float64(ce.x) + 0.5, float64(ce.y) + 0.5},
		})
	}

	scatter := charts.NewScatter()
	scatter.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: "NR Resource Grid",
			Width:     fmt.Sprintf("%dpx", 200+width*30),
			Height:    fmt.Sprintf("%dpx", 200+height*20),
		}),
		charts.WithTitleOpts(opts.Title{
			Title:    fmt.Sprintf("Port %d", port),
			Subtitle: fmt.Sprintf("slots=%d prbs=%d symbols/slot=%d", r.slots, r.bandwidth, r.SymbolsPerSlot()),
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true)}),
		charts.WithXAxisOpts(opts.XAxis{Min: 0, Max: width, Name: "Symbol", NameLocation: "middle", NameGap: 25}),
		charts.WithYAxisOpts(opts.YAxis{Min: 0, Max: height, Name: "Subcarrier", NameLocation: "middle", NameGap: 30}),
	)
	for _, id := range order {
		scatter.AddSeries(id.String(), series[id],
			charts.WithScatterChartOpts(opts.ScatterChart{SymbolSize: 12}),
			charts.WithItemStyleOpts(opts.ItemStyle{Color: r.palette.Hex(id)}),
		)
	}
	return scatter, nil
}

// WriteHTML renders the chart of port as a standalone HTML page.
func (r *Renderer) WriteHTML(w io.Writer, port int) error {
	scatter, err := r.Chart(port)
	if err != nil {
		return err
	}
	if err := scatter.Render(w); err != nil {
		return fmt.Errorf("failed to render chart: %w", err)
	}
	return nil
}

// SaveHTML writes the chart of port to path.
func (r *Renderer) SaveHTML(port int, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := r.WriteHTML(f, port); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	logrus.Infof("wrote port %d chart to %s", port, path)
	return nil
}
