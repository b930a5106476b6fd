package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"geosketch/internal/model"
	"geosketch/internal/render"
)

var (
	exportWidth    int
	exportHeight   int
	exportNoLabels bool
	exportNoAxes   bool
)

var exportCmd = &cobra.Command{
	Use:   "export <diagram.json> <output.png>",
	Short: "Render a diagram file to a PNG image",
	Args:  cobra.ExactArgs(2),
	Run:   runExport,
}

func init() {
	exportCmd.Flags().IntVar(&exportWidth, "width", 800, "image width in pixels")
	exportCmd.Flags().IntVar(&exportHeight, "height", 800, "image height in pixels")
	exportCmd.Flags().BoolVar(&exportNoLabels, "no-labels", false, "omit entity labels")
	exportCmd.Flags().BoolVar(&exportNoAxes, "no-axes", false, "omit the coordinate axes")
	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, args []string) {
	store := model.NewStore()
	if err := store.LoadFile(args[0]); err != nil {
		fmt.Fprintf(os.Stderr, "Error loading diagram: %v\n", err)
		os.Exit(1)
	}

	opts := render.Options{
		Width:  exportWidth,
		Height: exportHeight,
		Labels: !exportNoLabels,
		Axes:   !exportNoAxes,
	}
	if err := render.SavePNG(args[1], store, opts); err != nil {
		fmt.Fprintf(os.Stderr, "Error exporting: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Exported %s (%dx%d)\n", args[1], exportWidth, exportHeight)
}
