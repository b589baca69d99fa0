package main

import (
	"fmt"
	"maps"
	"slices"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/llehouerou/bulle/internal/state"
)

func newVolumesCmd(open opener) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "volumes [sound] [level]",
		Short: "Show saved volumes, or set one",
		Args:  cobra.RangeArgs(0, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withStore(open, func(store state.Interface) error {
				out := cmd.OutOrStdout()
				switch len(args) {
				case 2:
					level, err := strconv.Atoi(args[1])
					if err != nil || level < 0 || level > 100 {
						return fmt.Errorf("volume %q: want 0-100", args[1])
					}
					if err := store.SaveVolume(args[0], level); err != nil {
						return fmt.Errorf("save volume: %w", err)
					}
					fmt.Fprintf(out, "%s: %d%%\n", args[0], level)
					return nil
				case 1:
					level, ok, err := store.GetVolume(args[0])
					if err != nil {
						return fmt.Errorf("load volume: %w", err)
					}
					if !ok {
						fmt.Fprintf(out, "%s: default\n", args[0])
						return nil
					}
					fmt.Fprintf(out, "%s: %d%%\n", args[0], level)
					return nil
				}

				volumes, err := store.Volumes()
				if err != nil {
					return fmt.Errorf("load volumes: %w", err)
				}
				if len(volumes) == 0 {
					fmt.Fprintln(out, "No saved volumes.")
					return nil
				}
				for _, key := range slices.Sorted(maps.Keys(volumes)) {
					fmt.Fprintf(out, "%-14s %3d%%\n", key, volumes[key])
				}
				return nil
			})
		},
	}
	return cmd
}
