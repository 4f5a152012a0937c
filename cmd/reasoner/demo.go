package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newDemoCmd(cli *cliConfig) *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Answer the built-in demo questions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := cli.load(cmd)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for i, ans := range a.reasoner.Demo() {
				if _, err := fmt.Fprintf(out, "%d. QUESTION: %s\n   ANSWER: %s\n", i+1, ans.Question, ans.Line()); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
