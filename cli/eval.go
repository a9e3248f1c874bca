package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"keycalc/app/lang"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

func newEvalCmd(opts *options) *cobra.Command {
	var (
		file     string
		showExpr bool
	)

	cmd := &cobra.Command{
		Use:   "eval [expr...]",
		Short: "Evaluate expressions",
		Long: `Evaluate each argument as one expression and print its result.

With --file every line of the file is evaluated on its own, blank lines
print as blank lines. With neither arguments nor --file, lines are read
from standard input. An expression that cannot be evaluated prints Error;
the exit status does not change.`,
		Example: `  keycalc eval "2+3*4" "50%" "10.5 mod 3"
  keycalc eval --file pad.txt`,
		RunE: func(cmd *cobra.Command, args []string) error {
			var lines []string
			switch {
			case file != "":
				data, err := os.ReadFile(file)
				if err != nil {
					return fmt.Errorf("reading %s: %w", file, err)
				}
				lines = strings.Split(strings.TrimSuffix(string(data), "\n"), "\n")
			case len(args) > 0:
				lines = args
			default:
				var err error
				lines, err = readLines(cmd.InOrStdin())
				if err != nil {
					return err
				}
			}

			var state lang.EvalState
			results := state.EvalAll(lines)
			out := cmd.OutOrStdout()
			for i, r := range results {
				if r.IsErr {
					opts.log.Debug("eval %q: %v", lines[i], r.Err)
				}
				text := formatResult(r)
				if showExpr && strings.TrimSpace(lines[i]) != "" {
					text = lines[i] + " = " + text
				}
				fmt.Fprintln(out, text)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "Evaluate every line of a file")
	cmd.Flags().BoolVarP(&showExpr, "show-expr", "e", false, "Print each expression before its result")
	return cmd
}

var (
	errorColor   = color.New(color.FgRed, color.Bold)
	resultColor  = color.New(color.FgGreen)
	specialColor = color.New(color.FgYellow)
)

func formatResult(r lang.EvalResult) string {
	switch {
	case r.Text == "":
		return ""
	case r.IsErr:
		return errorColor.Sprint(r.Text)
	case r.Text == lang.NaNText || r.Text == lang.InfText || r.Text == lang.NegInfText:
		return specialColor.Sprint(r.Text)
	default:
		return resultColor.Sprint(r.Text)
	}
}

func readLines(r io.Reader) ([]string, error) {
	var lines []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("reading input: %w", err)
	}
	return lines, nil
}
