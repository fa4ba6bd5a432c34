package cmd

import (
	"github.com/jhalilaj/my-ai/internal/app"
	"github.com/jhalilaj/my-ai/internal/store"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "myai",
	Short: "AI study companion",
	Long:  "myai turns any study material into lessons, tests and tracked progress, taught by the AI model of your choice.",
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides MYAI_DB env var)")
	rootCmd.PersistentFlags().String("user", "local", "User id owning the topics")

	rootCmd.AddCommand(createCmd)
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(topicsCmd)
	rootCmd.AddCommand(lessonsCmd)
	rootCmd.AddCommand(testCmd)
	rootCmd.AddCommand(submitCmd)
	rootCmd.AddCommand(completeCmd)
	rootCmd.AddCommand(progressCmd)
	rootCmd.AddCommand(chatCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest
// priority), then MYAI_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

// newApp builds the service graph for one command invocation.
func newApp(cmd *cobra.Command) (*app.App, error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, err
	}
	return app.New(dbPath)
}

func userID(cmd *cobra.Command) string {
	u, _ := cmd.Flags().GetString("user")
	if u == "" {
		u = "local"
	}
	return u
}
