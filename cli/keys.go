package main

import (
	"fmt"
	"os"
	"strings"

	"keycalc/app/calc"

	"github.com/spf13/cobra"
)

func newKeysCmd(opts *options) *cobra.Command {
	var (
		script string
		tape   string
	)

	cmd := &cobra.Command{
		Use:   "keys [label...]",
		Short: "Press keypad keys and print the display",
		Long: `Press each label as a keypad key and print what the display shows
afterwards. "=" computes, "AC" clears, "Del" deletes the last character and
any other label is typed as is.

--script reads whitespace-separated labels from a file after the arguments.
--tape writes every computation as "expr = result" to a file; it defaults
to tape_file from the config.`,
		Example: `  keycalc keys 1 2 + 3 =
  keycalc keys 10 mod 4 = --tape tape.txt`,
		RunE: func(cmd *cobra.Command, args []string) error {
			s := calc.NewSession(calc.WithLogger(opts.log.WithPrefix("session")))
			for _, label := range args {
				s.Press(label)
			}
			if script != "" {
				f, err := os.Open(script)
				if err != nil {
					return fmt.Errorf("opening script: %w", err)
				}
				err = calc.Replay(s, f)
				f.Close()
				if err != nil {
					return err
				}
			}

			fmt.Fprintln(cmd.OutOrStdout(), s.Text())

			if tape == "" {
				tape = opts.cfg.TapeFile
			}
			if tape == "" {
				return nil
			}
			if err := writeTapeFile(tape, s.Tape()); err != nil {
				return err
			}
			opts.log.Info("wrote %d tape entries to %s", len(s.Tape()), tape)
			return nil
		},
	}

	cmd.Flags().StringVarP(&script, "script", "s", "", "Read key labels from a file")
	cmd.Flags().StringVarP(&tape, "tape", "t", "", "Write the tape to a file")
	return cmd
}

func writeTapeFile(path string, entries []calc.TapeEntry) error {
	var sb strings.Builder
	// Writes to a strings.Builder cannot fail.
	_ = calc.WriteTape(&sb, entries)
	if err := os.WriteFile(path, []byte(sb.String()), 0644); err != nil {
		return fmt.Errorf("writing tape: %w", err)
	}
	return nil
}
