package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/acarerdinc/relevia/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "relevia",
	Short: "Adaptive quiz engine in the terminal",
	Long:  "Relevia — an adaptive learning engine that generates questions, tracks mastery and interest, and grows its topic ontology as you learn.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runLearn(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides RELEVIA_DB env var)")
	rootCmd.PersistentFlags().String("user", "", "Learner id (overrides RELEVIA_USER env var)")

	rootCmd.AddCommand(learnCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest
// priority), then RELEVIA_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

// resolveUser returns the learner id from --user, RELEVIA_USER, or the
// default.
func resolveUser(cmd *cobra.Command) string {
	if u, _ := cmd.Flags().GetString("user"); u != "" {
		return u
	}
	if u := os.Getenv("RELEVIA_USER"); u != "" {
		return u
	}
	return "learner"
}
