// geosketchctl inspects and manipulates diagram and macro files without
// the GUI.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"geosketch/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "geosketchctl",
	Short: "Headless tooling for geometric construction diagrams",
	Long: `geosketchctl works with GeoSketch diagram (.json) and macro files from
the command line: inspect a diagram, replay a recorded macro, or export
a diagram as a PNG image.`,
	Version: version.Version,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
