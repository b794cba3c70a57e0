package main

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/gofrs/flock"
	"github.com/spf13/cobra"

	"canonize/internal/config"
	"canonize/internal/history"
	"canonize/internal/logging"
)

func newRunCommand(ctx *commandContext) *cobra.Command {
	var mappingPath string
	var inputPath string
	var outputPath string
	var showStats bool
	var preserveCase bool

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Rewrite a text file and record the run",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			input := strings.TrimSpace(inputPath)
			output := strings.TrimSpace(outputPath)
			if input == "" {
				return errors.New("--input is required")
			}
			if output == "" {
				return errors.New("--output is required")
			}
			if input, err = config.ExpandPath(input); err != nil {
				return err
			}
			if output, err = config.ExpandPath(output); err != nil {
				return err
			}

			proc, resolvedMapping, err := ctx.newProcessor(mappingPath)
			if err != nil {
				return err
			}

			// One writer per output path; concurrent runs against different
			// outputs proceed independently.
			lock := flock.New(output + ".lock")
			locked, err := lock.TryLock()
			if err != nil {
				return fmt.Errorf("acquire output lock: %w", err)
			}
			if !locked {
				return fmt.Errorf("another canonize run is already writing %s", output)
			}
			defer func() { _ = lock.Unlock() }()

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Processing %s...\n", input)

			start := time.Now()
			stats, err := proc.ProcessFile(input, output)
			if err != nil {
				return err
			}
			elapsed := time.Since(start)

			fmt.Fprintln(out)
			fmt.Fprintln(out, "Processing complete!")
			fmt.Fprintf(out, "Total lines: %d\n", stats.TotalLines)
			fmt.Fprintf(out, "Total words: %d\n", stats.TotalWords)
			fmt.Fprintf(out, "Replacements made: %d\n", stats.TotalReplacements)
			fmt.Fprintf(out, "Replacement rate: %.2f%%\n", stats.ReplacementRate*100)

			if showStats {
				fmt.Fprintln(out)
				fmt.Fprintln(out, "Vocabulary Statistics:")
				vocab, err := proc.VocabularyStats(input)
				if err != nil {
					fmt.Fprintf(cmd.ErrOrStderr(), "Warning: vocabulary statistics unavailable: %v\n", err)
				} else {
					fmt.Fprintf(out, "Original vocabulary size: %d\n", vocab.OriginalVocabularySize)
					fmt.Fprintf(out, "Processed vocabulary size: %d\n", vocab.ProcessedVocabularySize)
					fmt.Fprintf(out, "Vocabulary reduction: %d\n", vocab.VocabularyReduction)
					fmt.Fprintf(out, "Reduction rate: %.2f%%\n", vocab.ReductionRate*100)
				}
			}

			if cfg.History.Enabled {
				recordRun(cmd, cfg, &history.Run{
					InputPath:         input,
					OutputPath:        output,
					MappingPath:       resolvedMapping,
					TotalLines:        stats.TotalLines,
					TotalWords:        stats.TotalWords,
					TotalReplacements: stats.TotalReplacements,
					ReplacementRate:   stats.ReplacementRate,
					Duration:          elapsed,
				})
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&mappingPath, "mapping", "m", "", "Path to the synonym dictionary (defaults to the configured path)")
	cmd.Flags().StringVarP(&inputPath, "input", "i", "", "Input text file to process")
	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output file for processed text")
	cmd.Flags().BoolVar(&showStats, "stats", false, "Print vocabulary statistics after processing")
	cmd.Flags().BoolVar(&preserveCase, "preserve-case", true, "Preserve original capitalization")

	return cmd
}

// recordRun appends the completed run to the history ledger. Failures are
// logged, never surfaced: history must not fail a run that already wrote its
// output.
func recordRun(cmd *cobra.Command, cfg *config.Config, run *history.Run) {
	logger, err := logging.NewFromConfig(cfg)
	if err != nil {
		logger = logging.NewNop()
	}
	store, err := history.Open(cfg)
	if err != nil {
		logger.Warn("history ledger unavailable", logging.Error(err))
		return
	}
	defer store.Close()
	if err := store.RecordRun(cmd.Context(), run); err != nil {
		logger.Warn("record run failed", logging.Error(err))
	}
}
