package main

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"canonize/internal/history"
)

func newHistoryCommand(ctx *commandContext) *cobra.Command {
	var limit int

	historyCmd := &cobra.Command{
		Use:   "history",
		Short: "List recorded runs",
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withHistory(func(store *history.Store) error {
				runs, err := store.Recent(cmd.Context(), limit)
				if err != nil {
					return err
				}
				if len(runs) == 0 {
					fmt.Fprintln(cmd.OutOrStdout(), "No runs recorded")
					return nil
				}
				rows := make([][]string, 0, len(runs))
				for _, run := range runs {
					rows = append(rows, []string{
						strconv.FormatInt(run.ID, 10),
						run.CreatedAt.Format(time.RFC3339),
						run.InputPath,
						run.OutputPath,
						strconv.Itoa(run.TotalWords),
						strconv.Itoa(run.TotalReplacements),
						fmt.Sprintf("%.2f%%", run.ReplacementRate*100),
					})
				}
				table := renderTable(
					[]string{"ID", "Created", "Input", "Output", "Words", "Replaced", "Rate"},
					rows,
					[]columnAlignment{alignRight, alignLeft, alignLeft, alignLeft, alignRight, alignRight, alignRight},
				)
				fmt.Fprint(cmd.OutOrStdout(), table)
				return nil
			})
		},
	}

	historyCmd.Flags().IntVar(&limit, "limit", 20, "Maximum runs to list (0 lists all)")

	historyCmd.AddCommand(newHistoryClearCommand(ctx))
	historyCmd.AddCommand(newHistoryHealthCommand(ctx))

	return historyCmd
}

func newHistoryClearCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Delete all recorded runs",
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withHistory(func(store *history.Store) error {
				removed, err := store.Clear(cmd.Context())
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Cleared %d runs\n", removed)
				return nil
			})
		},
	}
}

func newHistoryHealthCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "health",
		Short: "Check history database health (schema, integrity, columns)",
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withHistory(func(store *history.Store) error {
				resp, err := store.CheckHealth(cmd.Context())
				if err != nil {
					return err
				}
				out := cmd.OutOrStdout()
				fmt.Fprintf(out, "Database path: %s\n", resp.DBPath)
				fmt.Fprintf(out, "Database exists: %s\n", yesNo(resp.DatabaseExists))
				fmt.Fprintf(out, "Readable: %s\n", yesNo(resp.DatabaseReadable))
				fmt.Fprintf(out, "Schema version: %s\n", resp.SchemaVersion)
				fmt.Fprintf(out, "runs table present: %s\n", yesNo(resp.TableExists))
				if len(resp.ColumnsPresent) > 0 {
					cols := append([]string(nil), resp.ColumnsPresent...)
					sort.Strings(cols)
					fmt.Fprintf(out, "Columns: %s\n", strings.Join(cols, ", "))
				}
				if len(resp.MissingColumns) > 0 {
					missing := append([]string(nil), resp.MissingColumns...)
					sort.Strings(missing)
					fmt.Fprintf(out, "Missing columns: %s\n", strings.Join(missing, ", "))
				} else {
					fmt.Fprintln(out, "Missing columns: none")
				}
				fmt.Fprintf(out, "Integrity check: %s\n", yesNo(resp.IntegrityCheck))
				fmt.Fprintf(out, "Total runs: %d\n", resp.TotalRuns)
				if resp.Error != "" {
					fmt.Fprintf(out, "Error: %s\n", resp.Error)
				}
				return nil
			})
		},
	}
}
