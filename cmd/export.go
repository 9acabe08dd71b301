package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/abhisek/valodiag/internal/profile"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the current player's profile as JSON",
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

		data, err := d.profiles.Export(ctx, username)
		if errors.Is(err, profile.ErrNothingToExport) {
			return errors.New("nothing to export: no diagnosis history yet")
		}
		if err != nil {
			return err
		}

		out, _ := cmd.Flags().GetString("out")
		if out == "-" {
			_, err := cmd.OutOrStdout().Write(append(data, '\n'))
			return err
		}
		if out == "" {
			out = filepath.Join(cfg.ExportDir, profile.ExportFilename(username, time.Now()))
		}
		if err := os.MkdirAll(filepath.Dir(out), 0o755); err != nil {
			return fmt.Errorf("create export dir: %w", err)
		}
		if err := os.WriteFile(out, data, 0o644); err != nil {
			return fmt.Errorf("write export: %w", err)
		}
		d.log.Info("profile exported", "user", username, "path", out)
		fmt.Fprintf(cmd.OutOrStdout(), "Exported to %s\n", out)
		return nil
	},
}

func init() {
	exportCmd.Flags().StringP("out", "o", "", "Output file, or - for stdout (default <export_dir>/valorant-analysis-<name>-<ms>.json)")
}
