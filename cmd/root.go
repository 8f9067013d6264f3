package cmd

import (
	"github.com/abhisek/pathwise/internal/store"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "pathwise",
	Short: "Career skills assessment in the terminal",
	Long: "Pathwise — map your skills, see matching careers, follow a learning roadmap\n" +
		"and ask a career counselor. Run without arguments to open the interactive app.",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.String("db", "", "Path to SQLite database file (overrides PATHWISE_DB env var)")
	pf.String("catalog", "", "Path to a catalog YAML file (overrides PATHWISE_CATALOG)")
	pf.Uint64("seed", 0, "Random seed, 0 for time based (overrides PATHWISE_SEED)")
	pf.String("log-file", "", "Write logs to this file (overrides PATHWISE_LOG_FILE)")

	rootCmd.AddCommand(analyzeCmd)
	rootCmd.AddCommand(askCmd)
	rootCmd.AddCommand(roadmapCmd)
	rootCmd.AddCommand(eventsCmd)
	rootCmd.AddCommand(catalogCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then PATHWISE_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}
