package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Print the current player",
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := openDeps(cmd.Context(), false)
		if err != nil {
			return err
		}
		defer d.Close()

		username, err := currentUser(cmd.Context(), d.profiles)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), username)
		return nil
	},
}
