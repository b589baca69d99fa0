package main

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/llehouerou/bulle/internal/profiles"
	"github.com/llehouerou/bulle/internal/state"
)

func newProfilesCmd(open opener) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "profiles",
		Aliases: []string{"p"},
		Short:   "List, export, import and delete profiles",
	}
	cmd.AddCommand(
		newProfilesListCmd(open),
		newProfilesExportCmd(open),
		newProfilesImportCmd(open),
		newProfilesDeleteCmd(open),
	)
	return cmd
}

func newProfilesListCmd(open opener) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List saved profiles",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withStore(open, func(store state.Interface) error {
				list, err := store.ListProfiles()
				if err != nil {
					return fmt.Errorf("list profiles: %w", err)
				}
				out := cmd.OutOrStdout()
				if len(list) == 0 {
					fmt.Fprintln(out, "No profiles.")
					return nil
				}
				w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
				fmt.Fprintln(w, "NAME\tSOUNDS\tVISUAL\tTIMER\tCREATED")
				for _, p := range list {
					fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
						p.Name, soundsColumn(p), orDash(p.Visual), timerColumn(p.TimerMinutes), humanize.Time(p.CreatedAt))
				}
				return w.Flush()
			})
		},
	}
}

func soundsColumn(p profiles.Profile) string {
	if len(p.Sounds) == 0 {
		return "-"
	}
	parts := make([]string, len(p.Sounds))
	for i, key := range p.Sounds {
		parts[i] = fmt.Sprintf("%s (%d%%)", key, p.Volumes[key])
	}
	return strings.Join(parts, ", ")
}

func timerColumn(minutes int) string {
	if minutes <= 0 {
		return "-"
	}
	return fmt.Sprintf("%d min", minutes)
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

func newProfilesExportCmd(open opener) *cobra.Command {
	var format, output string
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write every profile as JSON or YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			f, err := profiles.ParseFormat(format)
			if err != nil {
				return err
			}
			return withStore(open, func(store state.Interface) error {
				list, err := store.ListProfiles()
				if err != nil {
					return fmt.Errorf("list profiles: %w", err)
				}
				if output == "" || output == "-" {
					return profiles.EncodeAs(cmd.OutOrStdout(), list, f)
				}
				file, err := os.Create(output)
				if err != nil {
					return err
				}
				if err := errors.Join(profiles.EncodeAs(file, list, f), file.Close()); err != nil {
					return err
				}
				fmt.Fprintf(cmd.ErrOrStderr(), "Exported %d profiles to %s\n", len(list), output)
				return nil
			})
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", "json", "output format: json or yaml")
	cmd.Flags().StringVarP(&output, "output", "o", "", "file to write (default: stdout)")
	return cmd
}

func newProfilesImportCmd(open opener) *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Import profiles, replacing those with the same name",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f := profiles.FormatFromPath(args[0])
			if cmd.Flags().Changed("format") {
				var err error
				if f, err = profiles.ParseFormat(format); err != nil {
					return err
				}
			}
			file, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer file.Close()
			list, err := profiles.DecodeAs(file, f)
			if err != nil {
				return err
			}
			return withStore(open, func(store state.Interface) error {
				n, err := store.ImportProfiles(cmd.Context(), list)
				if err != nil {
					return fmt.Errorf("import profiles: %w", err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Imported %d profiles\n", n)
				return nil
			})
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", "", "input format: json or yaml (default: from extension)")
	return cmd
}

func newProfilesDeleteCmd(open opener) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <name>",
		Short: "Delete a profile by name",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withStore(open, func(store state.Interface) error {
				p, err := store.GetProfileByName(args[0])
				if err != nil {
					return fmt.Errorf("find profile: %w", err)
				}
				if p == nil {
					return fmt.Errorf("%w: %s", profiles.ErrNotFound, args[0])
				}
				if err := store.DeleteProfile(p.ID); err != nil {
					return fmt.Errorf("delete profile: %w", err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Deleted %s\n", p.Name)
				return nil
			})
		},
	}
}
