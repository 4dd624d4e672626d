package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/nr-sim/nr-resource-grid/grid"
)

var fragmentsYAML bool // print YAML instead of one line per fragment

// fragmentRecord is the YAML form of a grid.Fragment.
type fragmentRecord struct {
	Slot        int    `yaml:"slot"`
	Port        int    `yaml:"port"`
	Signal      string `yaml:"signal"`
	Symbol      int    `yaml:"symbol"`
	PRBs        []int  `yaml:"prbs,flow"`
	Subcarriers []int  `yaml:"subcarriers,flow"`
}

// fragmentsCmd prints the fragments of the configured CSI-RS resources
var fragmentsCmd = &cobra.Command{
	Use:   "fragments",
	Short: "Print the resource grid fragments of a CSI-RS configuration",
	Run: func(cmd *cobra.Command, args []string) {
		scene, err := currentScene()
		if err != nil {
			logrus.Fatalf("Failed to load scene: %v", err)
		}
		if err := writeFragments(os.Stdout, scene, fragmentsYAML); err != nil {
			logrus.Fatalf("Mapping failed: %v", err)
		}
	},
}

// writeFragments maps every signal of the scene and prints the result.
// Nothing is printed when any signal fails to map.
func writeFragments(w io.Writer, scene *Scene, asYAML bool) error {
	signals, err := scene.Signals()
	if err != nil {
		return err
	}
	var records []fragmentRecord
	var lines []string
	for i, sig := range signals {
		frags, err := sig.Fragments()
		if err != nil {
			return fmt.Errorf("csi_rs[%d]: %w", i, err)
		}
		for _, f := range frags {
			records = append(records, toRecord(sig.Slot(), f))
			lines = append(lines, f.String())
		}
	}
	if asYAML {
		out, err := yaml.Marshal(records)
		if err != nil {
			return err
		}
		_, err = w.Write(out)
		return err
	}
	for _, l := range lines {
		if _, err := fmt.Fprintln(w, l); err != nil {
			return err
		}
	}
	return nil
}

func toRecord(slot int, f grid.Fragment) fragmentRecord {
	return fragmentRecord{
		Slot:        slot,
		Port:        f.Port,
		Signal:      f.Signal.String(),
		Symbol:      f.Symbol,
		PRBs:        f.PRBs,
		Subcarriers: f.Subcarriers,
	}
}
