package cmd

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/valodiag/internal/diagnosis"
	"github.com/abhisek/valodiag/internal/session"
)

var diagnoseCmd = &cobra.Command{
	Use:   "diagnose",
	Short: "Take the quiz line by line (no TUI)",
	Long: `Answer each question with y or n. Use b to go back one question and
s to skip ahead. The result is saved to the current player's history.`,
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

		_, err = runDiagnose(ctx, cmd.InOrStdin(), cmd.OutOrStdout(), session.NewDefault(), d.profiles, username)
		return err
	},
}

// runDiagnose asks every question in state on out, reading replies from in,
// then diagnoses and records the result for username.
func runDiagnose(ctx context.Context, in io.Reader, out io.Writer, state *session.State, rec session.Recorder, username string) (diagnosis.Result, error) {
	scanner := bufio.NewScanner(in)

	for !state.Done() {
		q, _ := state.Current()
		p := state.Progress()

		fmt.Fprintf(out, "── Pertanyaan %d/%d · %s ──\n", p.Number, p.Total, q.Label)
		fmt.Fprintln(out, q.Text)
		fmt.Fprint(out, "(y/n, b=kembali, s=lewati): ")

		if !scanner.Scan() {
			fmt.Fprintln(out)
			return diagnosis.Result{}, fmt.Errorf("input closed before the quiz finished")
		}

		switch strings.ToLower(strings.TrimSpace(scanner.Text())) {
		case "y", "ya", "yes":
			state.Answer(true)
		case "n", "t", "tidak", "no":
			state.Answer(false)
		case "b", "back":
			if !state.Previous() {
				fmt.Fprintln(out, "(sudah di pertanyaan pertama)")
			}
		case "s", "skip":
			if !state.Next() {
				fmt.Fprintln(out, "(pertanyaan terakhir harus dijawab)")
			}
		default:
			fmt.Fprintln(out, "Jawab dengan y atau n.")
		}
		fmt.Fprintln(out)
	}

	res, err := session.Complete(ctx, state, rec, username)
	printResult(out, res)
	return res, err
}

func printResult(out io.Writer, res diagnosis.Result) {
	fmt.Fprintf(out, "══ %s ══\n", res.Title)
	fmt.Fprintln(out, res.Message)
	if len(res.Tips) > 0 {
		fmt.Fprintln(out, "\nTips:")
		for _, t := range res.Tips {
			fmt.Fprintf(out, "  • %s\n", t)
		}
	}
}
