package cmd

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/nr-sim/nr-resource-grid/grid/render"
)

var (
	pngPath  string // PNG output path
	htmlPath string // HTML output path
)

// renderCmd fills the scene's signals into their slot grids and draws one port
var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Draw the resource grid of one antenna port",
	Run: func(cmd *cobra.Command, args []string) {
		scene, err := currentScene()
		if err != nil {
			logrus.Fatalf("Failed to load scene: %v", err)
		}
		if pngPath == "" && htmlPath == "" {
			logrus.Fatalf("Nothing to do: both --out and --html are empty")
		}
		if err := renderScene(scene, pngPath, htmlPath); err != nil {
			logrus.Fatalf("Render failed: %v", err)
		}
	},
}

// buildRenderer validates the scene and fills every signal into a new renderer.
func buildRenderer(scene *Scene) (*render.Renderer, error) {
	if err := scene.Validate(); err != nil {
		return nil, err
	}
	signals, err := scene.Signals()
	if err != nil {
		return nil, err
	}
	r, err := render.NewRenderer(scene.Slots, scene.Bandwidth, scene.ExtendedCP)
	if err != nil {
		return nil, err
	}
	if len(scene.Colors) > 0 {
		palette, err := render.DefaultPalette().Override(scene.Colors)
		if err != nil {
			return nil, fmt.Errorf("colors: %w", err)
		}
		r.SetPalette(palette)
	}
	for i, sig := range signals {
		if err := r.FillSignal(sig); err != nil {
			return nil, fmt.Errorf("csi_rs[%d]: %w", i, err)
		}
		logrus.Infof("Placed CSI-RS row %d on slot %d", sig.Config().Row, sig.Slot())
	}
	return r, nil
}

// renderScene writes the PNG and/or HTML view of the scene's port.
func renderScene(scene *Scene, pngOut, htmlOut string) error {
	r, err := buildRenderer(scene)
	if err != nil {
		return err
	}
	if pngOut != "" {
		if err := r.SavePNG(scene.Port, pngOut); err != nil {
			return err
		}
	}
	if htmlOut != "" {
		if err := r.SaveHTML(scene.Port, htmlOut); err != nil {
			return err
		}
	}
	return nil
}
