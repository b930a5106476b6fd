package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"geosketch/internal/construct"
	"geosketch/internal/macro"
	"geosketch/internal/model"
	"geosketch/internal/selection"
)

var (
	replayDiagram string
	replayOut     string
	replayDelay   time.Duration
	replayVerbose bool
)

var replayCmd = &cobra.Command{
	Use:   "replay <macro-file>",
	Short: "Replay a recorded macro against a diagram",
	Long: `Replay executes a macro command log headlessly. It starts from an empty
diagram, or from --diagram if given, and writes the result to --out.`,
	Args: cobra.ExactArgs(1),
	Run:  runReplay,
}

func init() {
	replayCmd.Flags().StringVar(&replayDiagram, "diagram", "", "diagram file to start from")
	replayCmd.Flags().StringVarP(&replayOut, "out", "o", "", "write the resulting diagram to this file")
	replayCmd.Flags().DurationVar(&replayDelay, "delay", 0, "pause between commands")
	replayCmd.Flags().BoolVarP(&replayVerbose, "verbose", "v", false, "print each command as it runs")
	rootCmd.AddCommand(replayCmd)
}

func runReplay(cmd *cobra.Command, args []string) {
	rec := macro.NewRecorder()
	if err := rec.LoadFile(args[0]); err != nil {
		fmt.Fprintf(os.Stderr, "Error loading macro: %v\n", err)
		os.Exit(1)
	}

	store := model.NewStore()
	if replayDiagram != "" {
		if err := store.LoadFile(replayDiagram); err != nil {
			fmt.Fprintf(os.Stderr, "Error loading diagram: %v\n", err)
			os.Exit(1)
		}
	}

	pl := &macro.Player{
		Ops: construct.NewOps(store, selection.New()),
	}
	if replayDelay > 0 {
		pl.Yield = func() { time.Sleep(replayDelay) }
	}
	if replayVerbose {
		pl.Step = func(i int, c string) {
			fmt.Printf("[%d/%d] %s\n", i+1, rec.Len(), c)
		}
	}
	pl.Run(rec.Commands())

	fmt.Printf("Replayed %d commands: %d points, %d lines, %d extended, %d circles\n",
		rec.Len(), store.PointCount(), store.LineCount(),
		store.ExtendedLineCount(), store.CircleCount())

	if replayOut != "" {
		if err := store.SaveFile(replayOut); err != nil {
			fmt.Fprintf(os.Stderr, "Error saving diagram: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Saved %s\n", replayOut)
	}
}
