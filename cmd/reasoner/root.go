package main

import (
	"github.com/DjordjeVuckovic/reasoner/internal/session"
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	cli := &cliConfig{}

	root := &cobra.Command{
		Use:   "reasoner",
		Short: "Keyword reasoning over free-text questions",
		Long: `reasoner classifies a question by keywords and answers it with either a
computed arithmetic result or a templated sentence.

Examples:
  # Interactive session
  reasoner

  # One-shot answer
  reasoner ask "What is 15 plus 27?"

  # Run an evaluation suite
  reasoner bench --suite configs/suites/arithmetic.yaml --runs 5`,
		Version:       version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runChat(cmd, cli)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&cli.ConfigPath, "config", "", "Path to a YAML config file")
	pf.CountVarP(&cli.Verbose, "verbose", "v", "Increase log verbosity (-v info, -vv debug)")
	pf.BoolVar(&cli.Themed, "themed", false, "Vary practical answers with a seeded random choice")
	pf.Uint64Var(&cli.Seed, "seed", 0, "Seed for themed answers")

	root.AddCommand(
		newChatCmd(cli),
		newAskCmd(cli),
		newDemoCmd(cli),
		newBenchCmd(cli),
	)

	return root
}

func newChatCmd(cli *cliConfig) *cobra.Command {
	return &cobra.Command{
		Use:   "chat",
		Short: "Start an interactive question session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runChat(cmd, cli)
		},
	}
}

func runChat(cmd *cobra.Command, cli *cliConfig) error {
	a, err := cli.load(cmd)
	if err != nil {
		return err
	}

	s := session.New(a.reasoner, cmd.InOrStdin(), cmd.OutOrStdout(), session.Config{
		Prompt:    a.cfg.Session.Prompt,
		ExitWords: a.cfg.Session.ExitWords,
	}, a.logger)

	return s.Run(cmd.Context())
}
