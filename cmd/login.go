package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/valodiag/internal/profile"
)

var loginCmd = &cobra.Command{
	Use:   "login <name>",
	Short: "Log in as a player, creating the profile if needed",
	Args:  cobra.ArbitraryArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := openDeps(cmd.Context(), false)
		if err != nil {
			return err
		}
		defer d.Close()

		name, err := d.profiles.Login(cmd.Context(), strings.Join(args, " "))
		if errors.Is(err, profile.ErrEmptyUsername) {
			return errors.New("please enter your name to continue")
		}
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Logged in as %s\n", name)
		return nil
	},
}
