package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
)

func newApplyCommand(ctx *commandContext) *cobra.Command {
	var mappingPath string
	var preserveCase bool
	var showReplacements bool

	cmd := &cobra.Command{
		Use:   "apply [text...]",
		Short: "Rewrite text from arguments or stdin",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			proc, _, err := ctx.newProcessor(mappingPath)
			if err != nil {
				return err
			}

			text := strings.Join(args, " ")
			if len(args) == 0 {
				data, err := io.ReadAll(cmd.InOrStdin())
				if err != nil {
					return fmt.Errorf("read stdin: %w", err)
				}
				text = string(data)
			}

			processed, stats := proc.ProcessText(text, preserveCase)
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, processed)

			if showReplacements {
				if len(stats.Replacements) == 0 {
					fmt.Fprintln(out, "No replacements made")
					return nil
				}
				rows := make([][]string, 0, len(stats.Replacements))
				for _, repl := range stats.Replacements {
					rows = append(rows, []string{
						strconv.Itoa(repl.Position),
						repl.Original,
						repl.Canonical,
					})
				}
				table := renderTable(
					[]string{"Position", "Original", "Canonical"},
					rows,
					[]columnAlignment{alignRight, alignLeft, alignLeft},
				)
				fmt.Fprint(out, table)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&mappingPath, "mapping", "m", "", "Path to the synonym dictionary (defaults to the configured path)")
	cmd.Flags().BoolVar(&preserveCase, "preserve-case", true, "Preserve original capitalization")
	cmd.Flags().BoolVar(&showReplacements, "replacements", false, "List each replacement with its word position")

	return cmd
}
