package main

import (
	"github.com/spf13/cobra"

	"TinyCalc/internal/repl"
)

func newREPLCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "Evaluate expressions line by line (default)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runREPL(cmd)
		},
	}
}

func (a *app) runREPL(cmd *cobra.Command) error {
	return repl.Run(cmd.Context(), cmd.InOrStdin(), cmd.OutOrStdout(), a.calculator(), repl.Options{
		Prompt:   a.cfg.REPL.Prompt,
		ShowTree: a.cfg.REPL.ShowTree,
		Logger:   a.logger,
	})
}
