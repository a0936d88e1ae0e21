package cmd

import (
	"fmt"

	"github.com/abhisek/skillquest/internal/store"
	"github.com/spf13/cobra"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Forget the stored username",
	Long:  "Clears the locally stored username so the next launch starts with the welcome prompt. Quiz attempt history is kept.",
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		if err := st.ClearProfile(cmd.Context()); err != nil {
			return fmt.Errorf("clear profile: %w", err)
		}
		fmt.Println("Profile cleared.")
		return nil
	},
}
