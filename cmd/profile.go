package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/abhisek/valodiag/internal/profile"
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Show the current player's stats and history",
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
		p, _ := d.profiles.Profile(ctx, username)
		printProfile(cmd.OutOrStdout(), profile.Summarize(username, p, d.profiles.Locale()), p)
		return nil
	},
}

func printProfile(out io.Writer, sum profile.Summary, p *profile.Profile) {
	fmt.Fprintf(out, "%s (%s)\n", sum.Username, sum.Rank)
	if sum.MemberSince != "" {
		fmt.Fprintf(out, "Member sejak %s\n", sum.MemberSince)
	}
	fmt.Fprintln(out)
	fmt.Fprintf(out, "%-20s %d\n", "Total Diagnosa", sum.TotalDiagnoses)
	fmt.Fprintf(out, "%-20s %s\n", "Aktivitas Terakhir", sum.LastActivity)
	fmt.Fprintf(out, "%-20s %s\n", "Improvement Score", sum.ImprovementScore)
	fmt.Fprintf(out, "%-20s %s\n", "Completion Rate", sum.CompletionRate)
	fmt.Fprintf(out, "%-20s %s\n", "Improvement Rate", sum.ImprovementRate)

	fmt.Fprintln(out, "\nRiwayat:")
	if p == nil || len(p.History) == 0 {
		fmt.Fprintln(out, "  Belum ada riwayat diagnosa")
		return
	}
	for _, e := range p.History {
		fmt.Fprintf(out, "  %s  %s\n", e.Date, e.Result)
	}
}
