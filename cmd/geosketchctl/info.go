package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"geosketch/internal/model"
	"geosketch/pkg/geometry"
)

var infoCmd = &cobra.Command{
	Use:   "info <diagram.json>",
	Short: "Display information about a diagram file",
	Args:  cobra.ExactArgs(1),
	Run:   runInfo,
}

func init() {
	rootCmd.AddCommand(infoCmd)
}

func runInfo(cmd *cobra.Command, args []string) {
	store := model.NewStore()
	if err := store.LoadFile(args[0]); err != nil {
		fmt.Fprintf(os.Stderr, "Error loading diagram: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("File: %s\n\n", args[0])
	fmt.Printf("Points:         %d\n", store.PointCount())
	fmt.Printf("Lines:          %d\n", store.LineCount())
	fmt.Printf("Extended lines: %d\n", store.ExtendedLineCount())
	fmt.Printf("Circles:        %d\n", store.CircleCount())

	points := store.Points()
	if len(points) == 0 {
		return
	}
	positions := make([]geometry.Point2D, len(points))
	labeled := 0
	for i, p := range points {
		positions[i] = p.Pos
		if p.Label != "" {
			labeled++
		}
	}
	box := geometry.BoundingBox(positions)
	fmt.Printf("\nLabeled points: %d\n", labeled)
	fmt.Printf("Point extent:   (%.4f, %.4f) to (%.4f, %.4f)\n",
		box.X, box.Y, box.X+box.Width, box.Y+box.Height)
}
