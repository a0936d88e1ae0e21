package cmd

import (
	"fmt"
	"strings"

	"github.com/abhisek/skillquest/internal/catalog"
	"github.com/spf13/cobra"
)

var skillsCmd = &cobra.Command{
	Use:   "skills",
	Short: "List available skills (optionally filtered by category)",
	RunE: func(cmd *cobra.Command, args []string) error {
		filter, _ := cmd.Flags().GetString("category")

		var categories []catalog.Category
		if filter != "" {
			for _, cat := range catalog.Categories() {
				if strings.EqualFold(cat.Name, filter) {
					categories = append(categories, cat)
				}
			}
			if len(categories) == 0 {
				return fmt.Errorf("no category found matching %q", filter)
			}
		} else {
			categories = catalog.Categories()
		}

		// Header.
		fmt.Printf("%-24s  %s\n", "Category", "Skill")
		fmt.Println(strings.Repeat("─", 60))

		total := 0
		for _, cat := range categories {
			for _, skill := range cat.Skills {
				fmt.Printf("%-24s  %s\n", cat.Name, skill)
				total++
			}
		}

		fmt.Printf("\n%d skills\n", total)
		return nil
	},
}

func init() {
	skillsCmd.Flags().String("category", "", "Filter by category (e.g. Programming)")
}
