package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"canonize/internal/config"
	"canonize/internal/mapping"
)

func newDictCommand(ctx *commandContext) *cobra.Command {
	dictCmd := &cobra.Command{
		Use:   "dict",
		Short: "Inspect and maintain the synonym dictionary",
	}

	dictCmd.AddCommand(newDictShowCommand(ctx))
	dictCmd.AddCommand(newDictCheckCommand(ctx))
	dictCmd.AddCommand(newDictCompileCommand())

	return dictCmd
}

func newDictShowCommand(ctx *commandContext) *cobra.Command {
	var mappingPath string

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show dictionary metadata and entries",
		RunE: func(cmd *cobra.Command, args []string) error {
			table, path, err := ctx.loadTable(mappingPath)
			if err != nil {
				return err
			}

			meta := table.Metadata()
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Dictionary: %s\n", path)
			fmt.Fprintf(out, "Version: %s\n", valueOrDash(meta.Version))
			fmt.Fprintf(out, "Description: %s\n", valueOrDash(meta.Description))
			fmt.Fprintf(out, "Created: %s\n", valueOrDash(meta.CreationDate))
			fmt.Fprintf(out, "Sources: %s\n", valueOrDash(strings.Join(meta.Sources, ", ")))
			fmt.Fprintf(out, "Mappings: %d\n", meta.TotalMappings)
			fmt.Fprintf(out, "Synonyms: %d\n", meta.TotalSynonyms)

			concepts := table.Concepts()
			if len(concepts) == 0 {
				return nil
			}
			rows := make([][]string, 0, len(concepts))
			for _, key := range concepts {
				entry, ok := table.Entry(key)
				if !ok {
					continue
				}
				rows = append(rows, []string{
					key,
					entry.Canonical,
					strings.Join(entry.Synonyms, ", "),
					strconv.Itoa(entry.FrequencyRank),
					entry.Domain,
				})
			}
			rendered := renderTable(
				[]string{"Concept", "Canonical", "Synonyms", "Rank", "Domain"},
				rows,
				[]columnAlignment{alignLeft, alignLeft, alignLeft, alignRight, alignLeft},
			)
			fmt.Fprintln(out)
			fmt.Fprint(out, rendered)
			return nil
		},
	}

	cmd.Flags().StringVarP(&mappingPath, "mapping", "m", "", "Path to the synonym dictionary (defaults to the configured path)")
	return cmd
}

func newDictCheckCommand(ctx *commandContext) *cobra.Command {
	var mappingPath string

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Check dictionary consistency",
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := ctx.resolveMappingPath(mappingPath)
			if err != nil {
				return err
			}
			doc, err := mapping.LoadDraft(path)
			if err != nil {
				return err
			}
			report := mapping.Check(doc)

			stdout := cmd.OutOrStdout()
			colorize := shouldColorize(stdout)
			for _, line := range renderSectionHeader("Dictionary Check", colorize) {
				fmt.Fprintln(stdout, line)
			}
			fmt.Fprintln(stdout, checkLine("Orphan canonicals", report.OrphanCanonicals, colorize))
			fmt.Fprintln(stdout, checkLine("Missing synonyms", report.MissingSynonyms, colorize))
			fmt.Fprintln(stdout, checkLine("Duplicate synonyms", report.DuplicateSynonyms, colorize))
			fmt.Fprintln(stdout, checkLine("Case collisions", report.CaseCollisions, colorize))
			if report.Clean() {
				fmt.Fprintln(stdout, renderStatusLine("Summary", statusOK, "dictionary is consistent", colorize))
			} else {
				fmt.Fprintln(stdout, renderStatusLine("Summary", statusError, "inconsistencies found", colorize))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&mappingPath, "mapping", "m", "", "Path to the synonym dictionary (defaults to the configured path)")
	return cmd
}

func checkLine(label string, entries []string, colorize bool) string {
	if len(entries) == 0 {
		return renderStatusLine(label, statusOK, "none", colorize)
	}
	return renderStatusLine(label, statusWarn, strings.Join(entries, ", "), colorize)
}

func newDictCompileCommand() *cobra.Command {
	var fromPath string
	var toPath string

	cmd := &cobra.Command{
		Use:         "compile",
		Short:       "Rebuild the reverse lookup and write a compiled dictionary",
		Annotations: map[string]string{"skipConfigLoad": "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			from := strings.TrimSpace(fromPath)
			to := strings.TrimSpace(toPath)
			if from == "" || to == "" {
				return errors.New("--from and --to are required")
			}
			var err error
			if from, err = config.ExpandPath(from); err != nil {
				return err
			}
			if to, err = config.ExpandPath(to); err != nil {
				return err
			}

			doc, err := mapping.LoadDraft(from)
			if err != nil {
				return err
			}
			doc.Compile()
			if err := doc.Save(to); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Compiled %d mappings (%d synonyms) to %s\n",
				doc.Metadata.TotalMappings, doc.Metadata.TotalSynonyms, to)
			return nil
		},
	}

	cmd.Flags().StringVar(&fromPath, "from", "", "Draft dictionary to compile")
	cmd.Flags().StringVar(&toPath, "to", "", "Destination for the compiled dictionary")
	return cmd
}
