package cmd

import (
	"os"

	"github.com/abhisek/skillquest/internal/api"
	"github.com/abhisek/skillquest/internal/store"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "skillquest",
	Short: "Skill quiz and learning journey tracker",
	Long:  "SkillQuest — terminal app for taking skill quizzes and tracking learning journey progress.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("api", "", "Base URL of the quiz service (overrides SKILLQUEST_API env var)")
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides SKILLQUEST_DB env var)")

	rootCmd.AddCommand(skillsCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveBaseURL returns the service base URL using --api flag (highest
// priority), then SKILLQUEST_API env var, then the default localhost URL.
func resolveBaseURL(cmd *cobra.Command) string {
	if u, _ := cmd.Flags().GetString("api"); u != "" {
		return u
	}
	if u := os.Getenv("SKILLQUEST_API"); u != "" {
		return u
	}
	return api.DefaultBaseURL
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then SKILLQUEST_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}
