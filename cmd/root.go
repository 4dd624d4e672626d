package cmd

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/nr-sim/nr-resource-grid/grid/csirs"
)

var (
	logLevel  string // Log verbosity level
	scenePath string // YAML scene file; overrides the signal and layout flags

	// CLI flags for a single CSI-RS resource
	signalParams = csirs.DefaultParams()

	// CLI flags for the slot layout
	numSlots      int  // Number of slots rendered side by side
	gridBandwidth int  // Grid width in PRBs
	extendedCP    bool // 12 symbols per slot instead of 14
	plotPort      int  // Antenna port to draw
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "nrgrid",
	Short: "Resource-element maps of NR downlink slots",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level, err := logrus.ParseLevel(logLevel)
		if err != nil {
			logrus.Fatalf("Invalid log level: %s", logLevel)
		}
		logrus.SetLevel(level)
	},
}

// Execute runs the CLI root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// addSignalFlags binds the CSI-RS placement flags shared by render and fragments.
func addSignalFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&scenePath, "config", "", "YAML scene file (overrides signal and layout flags)")
	cmd.Flags().IntVar(&signalParams.Row, "row", signalParams.Row, "CSI-RS row in TS 38.211 Table 7.4.1.5.3-1 (1-18)")
	cmd.Flags().IntVar(&signalParams.Slot, "slot", signalParams.Slot, "Slot carrying the CSI-RS")
	cmd.Flags().StringVar(&signalParams.FreqPositions, "freq-positions", signalParams.FreqPositions, "Frequency-domain bitmap as a binary string")
	cmd.Flags().IntVar(&signalParams.StartPRB, "start-prb", signalParams.StartPRB, "First PRB of the CSI-RS")
	cmd.Flags().IntVar(&signalParams.Bandwidth, "bandwidth", signalParams.Bandwidth, "CSI-RS bandwidth in PRBs")
	cmd.Flags().Float64Var(&signalParams.Density, "density", signalParams.Density, "CSI-RS density (0.5, 1 or 3)")
	cmd.Flags().IntVar(&signalParams.Sym1, "sym1", signalParams.Sym1, "First OFDM symbol")
	cmd.Flags().IntVar(&signalParams.Sym2, "sym2", signalParams.Sym2, "Second OFDM symbol, -1 for none (rows 13, 14, 16, 17)")
	cmd.Flags().BoolVar(&signalParams.ZeroPower, "zero-power", false, "Zero-power CSI-RS")
	cmd.Flags().BoolVar(&signalParams.OddPRB, "odd-prb", false, "With density 0.5, use odd PRBs")
	cmd.Flags().BoolVar(&signalParams.Tracking, "trs", false, "Mark the CSI-RS as tracking reference signal")
}

// init sets up CLI flags and subcommands
func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log", "warn", "Log level (trace, debug, info, warn, error, fatal, panic)")

	addSignalFlags(renderCmd)
	renderCmd.Flags().IntVar(&numSlots, "slots", 2, "Number of slots rendered side by side")
	renderCmd.Flags().IntVar(&gridBandwidth, "grid-bandwidth", 2, "Grid width in PRBs")
	renderCmd.Flags().BoolVar(&extendedCP, "extended-cp", false, "Extended cyclic prefix (12 symbols per slot)")
	renderCmd.Flags().IntVar(&plotPort, "port", 31, "Antenna port to draw")
	renderCmd.Flags().StringVar(&pngPath, "out", "grid.png", "PNG output path (empty to skip)")
	renderCmd.Flags().StringVar(&htmlPath, "html", "", "HTML chart output path (empty to skip)")

	addSignalFlags(fragmentsCmd)
	fragmentsCmd.Flags().BoolVar(&fragmentsYAML, "yaml", false, "Print fragments as YAML")

	rootCmd.AddCommand(renderCmd)
	rootCmd.AddCommand(fragmentsCmd)
	rootCmd.AddCommand(rowsCmd)
}

// currentScene returns the scene from --config, or a one-signal scene built from flags.
func currentScene() (*Scene, error) {
	if scenePath != "" {
		return LoadScene(scenePath)
	}
	p := signalParams
	entry := CSIRSSpec{
		Row:           p.Row,
		Slot:          p.Slot,
		FreqPositions: p.FreqPositions,
		StartPRB:      p.StartPRB,
		Bandwidth:     p.Bandwidth,
		Density:       p.Density,
		Sym1:          p.Sym1,
		ZeroPower:     p.ZeroPower,
		OddPRB:        p.OddPRB,
		TRS:           p.Tracking,
	}
	if p.Sym2 != csirs.NoSymbol {
		entry.Sym2 = &p.Sym2
	}
	return &Scene{
		Slots:      numSlots,
		Bandwidth:  gridBandwidth,
		ExtendedCP: extendedCP,
		Port:       plotPort,
		CSIRS:      []CSIRSSpec{entry},
	}, nil
}
