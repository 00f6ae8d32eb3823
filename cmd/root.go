package cmd

import (
	"github.com/raneesh-edsmartly/socratic/internal/store"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "socratic",
	Short: "Socratic learning companion",
	Long:  "Socratic is a terminal client for guided tutoring dialogues, AI-generated quizzes, and the learning blog.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides SOCRATIC_DB env var)")
	rootCmd.PersistentFlags().String("api", "", "Backend base URL (overrides SOCRATIC_API_URL env var)")

	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(updateCmd)
}

// resolveDBPath returns the database path using --db flag (highest
// priority), then SOCRATIC_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}
