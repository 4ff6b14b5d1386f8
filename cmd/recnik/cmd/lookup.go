package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/darkclainer/recnik/pkg/search"
)

var lookupCmd = &cobra.Command{
	Use:   "lookup <word>",
	Short: "Look up a Serbian word",
	Long: `Look up a word, inflected or not, and display:
  - grammatical description of the searched form
  - possible interpretations of an ambiguous form
  - frequency rank and count
  - inflection table with the searched form highlighted

Example:
  recnik lookup reči`,
	Args: cobra.ExactArgs(1),
	RunE: runLookup,
}

func init() {
	rootCmd.AddCommand(lookupCmd)
}

func runLookup(cmd *cobra.Command, args []string) error {
	return runSearch(cmd, func(ctx context.Context, s *search.Searcher) (*search.Outcome, error) {
		return s.Search(ctx, args[0])
	})
}
