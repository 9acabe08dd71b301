package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var renameCmd = &cobra.Command{
	Use:   "rename <new-name>",
	Short: "Rename the current player's profile",
	Long: `Move the current player's profile and history to a new name.

An existing profile under the new name is overwritten.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		d, err := openDeps(ctx, false)
		if err != nil {
			return err
		}
		defer d.Close()

		oldName, err := currentUser(ctx, d.profiles)
		if err != nil {
			return err
		}
		newName, err := d.profiles.RenameUser(ctx, oldName, strings.Join(args, " "))
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Renamed %s to %s\n", oldName, newName)
		return nil
	},
}
