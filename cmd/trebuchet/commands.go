package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tsawler/trebuchet"
)

func newSumCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "sum [file...]",
		Short: "Print the calibration total of each document",
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				args = []string{"-"}
			}

			var grand int64
			for _, name := range args {
				total, warnings, err := a.source(name, cmd.InOrStdin()).Total()
				if err != nil {
					return a.fail(cmd, fmt.Errorf("%s: %w", displayName(name), err))
				}
				a.logger.Debug("calibrated document",
					"file", displayName(name),
					"mode", a.cfg.Mode.String(),
					"total", total,
					"warnings", len(warnings))
				if len(warnings) > 0 {
					a.logger.Debug("warnings", "file", displayName(name), "detail", trebuchet.FormatWarnings(warnings))
				}

				grand += total
				if len(args) > 1 {
					fmt.Fprintf(cmd.OutOrStdout(), "%s\t%d\n", displayName(name), total)
				}
			}

			if len(args) > 1 {
				fmt.Fprintf(cmd.OutOrStdout(), "total\t%d\n", grand)
			} else {
				fmt.Fprintln(cmd.OutOrStdout(), grand)
			}
			return nil
		},
	}
}

func newLinesCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "lines [file]",
		Short: "Print the calibration value of every line",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := "-"
			if len(args) == 1 {
				name = args[0]
			}

			results, warnings, err := a.source(name, cmd.InOrStdin()).Lines()
			if err != nil {
				return a.fail(cmd, fmt.Errorf("%s: %w", displayName(name), err))
			}
			for _, w := range warnings {
				a.logger.Warn(w.Message, "file", displayName(name), "line", w.Line, "kind", w.Kind.String())
			}

			var b strings.Builder
			for _, res := range results {
				fmt.Fprintf(&b, "%d\t%d\t%s\n", res.Number, res.Value, res.Text)
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), b.String())
			return err
		},
	}
}
