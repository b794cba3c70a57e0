package main

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"canonize/internal/config"
	"canonize/internal/rewrite"
)

func newStatsCommand(ctx *commandContext) *cobra.Command {
	var mappingPath string
	var inputPath string
	var topN int

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Report vocabulary statistics for a file",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			input := strings.TrimSpace(inputPath)
			if input == "" {
				return errors.New("--input is required")
			}
			if input, err = config.ExpandPath(input); err != nil {
				return err
			}

			proc, _, err := ctx.newProcessor(mappingPath)
			if err != nil {
				return err
			}

			vocab, err := proc.VocabularyStats(input)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Total words: %d\n", vocab.TotalWords)
			fmt.Fprintf(out, "Original vocabulary size: %d\n", vocab.OriginalVocabularySize)
			fmt.Fprintf(out, "Processed vocabulary size: %d\n", vocab.ProcessedVocabularySize)
			fmt.Fprintf(out, "Vocabulary reduction: %d\n", vocab.VocabularyReduction)
			fmt.Fprintf(out, "Reduction rate: %.2f%%\n", vocab.ReductionRate*100)

			n := topN
			if n <= 0 {
				n = cfg.Stats.TopWords
			}
			content, err := os.ReadFile(input)
			if err != nil {
				return fmt.Errorf("read text file: %w", err)
			}
			words := rewrite.TopWords(string(content), n)
			if len(words) == 0 {
				return nil
			}

			rows := make([][]string, 0, len(words))
			for _, wc := range words {
				rows = append(rows, []string{wc.Word, strconv.Itoa(wc.Count)})
			}
			table := renderTable([]string{"Word", "Count"}, rows, []columnAlignment{alignLeft, alignRight})
			fmt.Fprintln(out)
			fmt.Fprint(out, table)
			return nil
		},
	}

	cmd.Flags().StringVarP(&mappingPath, "mapping", "m", "", "Path to the synonym dictionary (defaults to the configured path)")
	cmd.Flags().StringVarP(&inputPath, "input", "i", "", "Text file to analyze")
	cmd.Flags().IntVar(&topN, "top", 0, "Number of most frequent words to list (0 uses stats.top_words)")

	return cmd
}
