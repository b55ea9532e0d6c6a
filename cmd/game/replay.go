package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/younwookim/crypt/internal/application/replay"
	"github.com/younwookim/crypt/internal/application/sim"
)

// ErrReplayMismatch is returned when a re-simulation does not reproduce the recorded outcome
var ErrReplayMismatch = errors.New("replay diverged from recording")

var flagNoVerify bool

var replayCmd = &cobra.Command{
	Use:   "replay <file>",
	Short: "Re-simulate a recorded run without a window",
	Long: `Feed a recording's inputs through a fresh world built with the recorded
seed and print the outcome. When the recording stored its own outcome the two
are compared and any difference is an error.

Examples:
  crypt replay run.json
  crypt replay run.json --no-verify`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runReplay(cmd.OutOrStdout(), args[0], !flagNoVerify, newLogger())
	},
}

func init() {
	replayCmd.Flags().BoolVar(&flagNoVerify, "no-verify", false, "Skip comparing against the recorded outcome")
}

func runReplay(out io.Writer, filename string, verify bool, log logrus.FieldLogger) error {
	data, err := replay.LoadReplay(filename)
	if err != nil {
		return err
	}
	cfg, world, err := loadWorld(data.World)
	if err != nil {
		return err
	}

	w, err := sim.New(cfg, world, sim.Options{Seed: data.Seed, Log: log})
	if err != nil {
		return err
	}

	log.WithFields(logrus.Fields{
		"session": data.Session,
		"world":   data.World,
		"frames":  len(data.Frames),
	}).Info("replaying")

	got := replay.Run(w, replay.NewReplayer(*data))
	printSummary(out, data, got)

	if verify && data.Summary != nil && *data.Summary != got {
		return fmt.Errorf("%w: recorded %+v, got %+v", ErrReplayMismatch, *data.Summary, got)
	}
	return nil
}

func printSummary(out io.Writer, data *replay.ReplayData, s replay.Summary) {
	fmt.Fprintf(out, "Session:       %s\n", data.Session)
	fmt.Fprintf(out, "World:         %s (seed %d)\n", data.World, data.Seed)
	fmt.Fprintf(out, "Inputs:        %d\n", len(data.Frames))
	fmt.Fprintf(out, "Frames:        %d\n", s.Frames)
	fmt.Fprintf(out, "Result:        %s\n", s.State)
	fmt.Fprintf(out, "Health:        %d\n", s.Health)
	fmt.Fprintf(out, "Tokens:        %d\n", s.Tokens)
	fmt.Fprintf(out, "Kills:         %d\n", s.Kills)
	fmt.Fprintf(out, "Rooms cleared: %d\n", s.RoomsCleared)
}
