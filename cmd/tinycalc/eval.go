package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newEvalCmd(a *app) *cobra.Command {
	var showTree bool

	cmd := &cobra.Command{
		Use:   "eval <expression...>",
		Short: "Evaluate one expression and print the result",
		Example: `  tinycalc eval "2 * 3 + 4"
  tinycalc eval --tree -- -5 + 2`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := a.calculator().Evaluate(strings.Join(args, " "))
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if showTree {
				fmt.Fprintln(out, res.Tree)
			}
			fmt.Fprintln(out, res.FormatValue())
			return nil
		},
	}

	cmd.Flags().BoolVar(&showTree, "tree", false, "print the expression tree before the result")
	return cmd
}
