package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/nr-sim/nr-resource-grid/grid/csirs"
)

// rowsCmd lists the CSI-RS location table
var rowsCmd = &cobra.Command{
	Use:   "rows",
	Short: "List CSI-RS rows of TS 38.211 Table 7.4.1.5.3-1",
	Run: func(cmd *cobra.Command, args []string) {
		if err := writeRows(os.Stdout); err != nil {
			logrus.Fatalf("Failed to write rows: %v", err)
		}
	},
}

func writeRows(w io.Writer) error {
	for _, c := range csirs.Rows() {
		if _, err := fmt.Fprintln(w, c.String()); err != nil {
			return err
		}
	}
	return nil
}
