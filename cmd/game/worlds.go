package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

var worldsCmd = &cobra.Command{
	Use:   "worlds",
	Short: "List available worlds",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return listWorlds(cmd.OutOrStdout())
	},
}

func listWorlds(out io.Writer) error {
	loader, err := newLoader()
	if err != nil {
		return err
	}
	names, err := loader.ListWorlds()
	if err != nil {
		return err
	}
	if len(names) == 0 {
		fmt.Fprintln(out, "No worlds available.")
		return nil
	}

	fmt.Fprintln(out, "Available worlds:")
	for _, name := range names {
		world, err := loader.LoadWorld(name)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "  %-12s %dx%d tiles, %d rooms\n", name, world.Width(), world.Height(), len(world.Rooms))
	}
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Run 'crypt play --world <name>' to play one.")
	return nil
}
