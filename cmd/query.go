package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"promptdeck/internal/query"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Print matching prompts to stdout",
	Long:  "List prompts non-interactively, applying the same category and search filters as the TUI.",
	RunE: func(cmd *cobra.Command, args []string) error {
		_, store, err := loadEnvironment()
		if err != nil {
			return err
		}

		engine := query.New(store)
		category := resolveCategory(engine.Taxonomy(), flagCategory)
		items := engine.Filter(category, flagSearch)

		if len(items) == 0 {
			fmt.Println("No matching prompts.")
			return nil
		}

		for _, item := range items {
			var labels []string
			for _, c := range item.Categories {
				labels = append(labels, store.CategoryMeta(c).Label)
			}
			fmt.Printf("%s  [%s · %s]\n", item.ID, strings.Join(labels, ", "), item.Engagement)
			fmt.Printf("  %s\n", item.Content)
			if item.Source != "" {
				fmt.Printf("  %s\n", item.Source)
			}
			fmt.Println()
		}
		return nil
	},
}

var categoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "Print the category taxonomy",
	RunE: func(cmd *cobra.Command, args []string) error {
		_, store, err := loadEnvironment()
		if err != nil {
			return err
		}

		for _, key := range query.New(store).Taxonomy() {
			fmt.Printf("%-20s %s\n", key, store.CategoryMeta(key).Label)
		}
		return nil
	},
}

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show corpus statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		_, store, err := loadEnvironment()
		if err != nil {
			return err
		}

		s := query.New(store).Stats()
		fmt.Printf("Prompts: %d\n", s.Total)
		fmt.Printf("High engagement: %d\n", s.HighEngagement)
		fmt.Printf("Categories: %d\n", s.CategoryCount)
		return nil
	},
}

func init() {
	listCmd.Flags().StringVar(&flagCategory, "category", "", "filter by category key")
	listCmd.Flags().StringVar(&flagSearch, "search", "", "filter by content substring (case-insensitive)")
}

// resolveCategory maps user input onto a taxonomy key, forgiving case: "All"
// and "" mean no filter, and "Reasoning" resolves to "reasoning" when that
// key exists. Input matching nothing is returned unchanged — the engine
// treats an unknown category as zero matches, not an error.
func resolveCategory(taxonomy []string, input string) string {
	input = strings.TrimSpace(input)
	if input == "" || strings.EqualFold(input, query.All) {
		return query.All
	}
	for _, key := range taxonomy {
		if key == input {
			return key
		}
	}
	for _, key := range taxonomy {
		if strings.EqualFold(key, input) {
			return key
		}
	}
	return input
}
