package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/darkclainer/recnik/pkg/lexicon"
	"github.com/darkclainer/recnik/pkg/present"
)

var showCmd = &cobra.Command{
	Use:   "show <file>",
	Short: "Present a saved dictionary response",
	Long: `Read a response of the dictionary service from a local file, or from
standard input when the file is "-", and display it without contacting the
service.

Example:
  curl -s localhost:8000/api/word/sto > sto.json
  recnik show sto.json`,
	Args: cobra.ExactArgs(1),
	RunE: runShow,
}

func init() {
	rootCmd.AddCommand(showCmd)
}

func runShow(cmd *cobra.Command, args []string) error {
	renderer, err := newRenderer(viper.GetString("format"), cmd.OutOrStdout())
	if err != nil {
		return err
	}
	var input io.Reader
	if args[0] == "-" {
		input = cmd.InOrStdin()
	} else {
		file, err := os.Open(args[0])
		if err != nil {
			return fmt.Errorf("can not open file %s: %w", args[0], err)
		}
		defer file.Close()
		input = file
	}
	entry, err := lexicon.ParseEntryJSON(input)
	if err != nil {
		return fmt.Errorf("can not parse entry: %w", err)
	}
	return renderer.Render(present.Assemble(entry))
}
