package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newAskCmd(cli *cliConfig) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "ask <question...>",
		Short: "Answer a single question",
		Long: `Answer a single question and print one line.

Examples:
  reasoner ask What is 15 plus 27?
  reasoner ask --json "100 divided by 0"`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := cli.load(cmd)
			if err != nil {
				return err
			}

			question := strings.TrimSpace(strings.Join(args, " "))
			if question == "" {
				return fmt.Errorf("question must not be empty")
			}

			ans := a.reasoner.Ask(question)
			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(ans)
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), ans.Line())
			return err
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the full answer as JSON")
	return cmd
}
