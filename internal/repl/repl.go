// Package repl implements the interactive read-evaluate-print loop.
package repl

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"TinyCalc/internal/calc"
)

// Banner is printed once before the first prompt.
const Banner = `write "exit" or press Ctrl-C to exit`

// ExitCommand ends the loop.
const ExitCommand = "exit"

// Options configures Run.
type Options struct {
	Prompt   string
	ShowTree bool
	Logger   *slog.Logger
}

// Run reads lines from in until EOF, the exit command or cancellation of
// ctx, and writes the tree and value of each to out. Evaluation errors are
// printed and do not stop the loop; only read and write failures are
// returned.
func Run(ctx context.Context, in io.Reader, out io.Writer, c *calc.Calculator, opts Options) error {
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}

	if _, err := fmt.Fprintln(out, Banner); err != nil {
		return err
	}

	scanner := bufio.NewScanner(in)
	lines := 0
	for {
		if err := ctx.Err(); err != nil {
			opts.Logger.Debug("repl cancelled", "lines", lines)
			return nil
		}

		if _, err := fmt.Fprint(out, opts.Prompt); err != nil {
			return err
		}
		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return fmt.Errorf("read input: %w", err)
			}
			opts.Logger.Debug("repl reached end of input", "lines", lines)
			return nil
		}

		line := strings.TrimSpace(scanner.Text())
		if line == ExitCommand {
			opts.Logger.Debug("repl exit", "lines", lines)
			return nil
		}
		if line == "" {
			continue
		}
		lines++

		if err := evalLine(out, c, line, opts.ShowTree); err != nil {
			return err
		}
	}
}

func evalLine(out io.Writer, c *calc.Calculator, line string, showTree bool) error {
	res, err := c.Evaluate(line)
	if err != nil {
		_, werr := fmt.Fprintln(out, err)
		return werr
	}

	if showTree {
		if _, err := fmt.Fprintln(out, res.Tree); err != nil {
			return err
		}
	}
	_, err = fmt.Fprintf(out, "%v\n", res.Value)
	return err
}
