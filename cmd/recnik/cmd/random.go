package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/darkclainer/recnik/pkg/search"
)

var randomCmd = &cobra.Command{
	Use:   "random",
	Short: "Show a random word from the dictionary",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSearch(cmd, func(ctx context.Context, s *search.Searcher) (*search.Outcome, error) {
			return s.Random(ctx)
		})
	},
}

func init() {
	rootCmd.AddCommand(randomCmd)
}
