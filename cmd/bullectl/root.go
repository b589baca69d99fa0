package main

import (
	"github.com/spf13/cobra"

	"github.com/llehouerou/bulle/internal/state"
)

// opener opens the store shared with the bulle app.
type opener func() (state.Interface, error)

func newRootCmd(open opener) *cobra.Command {
	root := &cobra.Command{
		Use:           "bullectl",
		Short:         "Manage bulle profiles and volumes",
		Long:          `bullectl reads and edits the database of the bulle terminal app: saved profiles and per-sound volumes.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newProfilesCmd(open), newVolumesCmd(open))
	return root
}

// withStore opens the store for the duration of fn.
func withStore(open opener, fn func(state.Interface) error) error {
	store, err := open()
	if err != nil {
		return err
	}
	defer store.Close()
	return fn(store)
}
