package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/abhisek/valodiag/internal/config"
	"github.com/abhisek/valodiag/internal/store"
)

var (
	v   = config.New()
	cfg *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "valodiag",
	Short: "Valorant skill diagnosis",
	Long:  "Valodiag: answer a few yes/no questions about your Valorant game and find the area to improve first.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		configFile, _ := cmd.Flags().GetString("config")
		loaded, err := config.Load(v, configFile)
		if err != nil {
			return err
		}
		cfg = loaded
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.String("db", "", "Path to SQLite database file (overrides VALODIAG_DB env var)")
	flags.String("config", "", "Path to config file (default $XDG_CONFIG_HOME/valodiag/valodiag.yaml)")
	flags.String("backend", "", "Storage backend: sqlite, redis or memory")

	bindFlag(v, "store.path", "db")
	bindFlag(v, "store.backend", "backend")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(logoutCmd)
	rootCmd.AddCommand(whoamiCmd)
	rootCmd.AddCommand(diagnoseCmd)
	rootCmd.AddCommand(profileCmd)
	rootCmd.AddCommand(renameCmd)
	rootCmd.AddCommand(clearHistoryCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(versionCmd)
}

// bindFlag binds a persistent flag to a config key. Unset flags fall
// through to env and file values.
func bindFlag(v *viper.Viper, key, flag string) {
	_ = v.BindPFlag(key, rootCmd.PersistentFlags().Lookup(flag))
}

// resolveDBPath returns the database path using --db / store.path (highest
// priority), then VALODIAG_DB env var, then the default XDG path.
func resolveDBPath() (string, error) {
	if p := cfg.Store.Path; p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}
