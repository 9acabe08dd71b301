package cmd

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var clearHistoryCmd = &cobra.Command{
	Use:   "clear-history",
	Short: "Delete the current player's diagnosis history",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		d, err := openDeps(ctx, false)
		if err != nil {
			return err
		}
		defer d.Close()

		username, err := currentUser(ctx, d.profiles)
		if err != nil {
			return err
		}

		yes, _ := cmd.Flags().GetBool("yes")
		if !yes {
			fmt.Fprint(cmd.OutOrStdout(), "Hapus semua riwayat diagnosa? (y/N): ")
			scanner := bufio.NewScanner(cmd.InOrStdin())
			if !scanner.Scan() || strings.ToLower(strings.TrimSpace(scanner.Text())) != "y" {
				fmt.Fprintln(cmd.OutOrStdout(), "Dibatalkan")
				return nil
			}
		}

		if err := d.profiles.ClearHistory(ctx, username); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Riwayat berhasil dihapus!")
		return nil
	},
}

func init() {
	clearHistoryCmd.Flags().BoolP("yes", "y", false, "Skip the confirmation prompt")
}
