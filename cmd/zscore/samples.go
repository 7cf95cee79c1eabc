package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/verte-zerg/zscore/internal/sample"
)

const defaultSampleWords = 40

var (
	samplesRandom int
	samplesSeed   int64
	samplesWords  int
	samplesVocab  string
)

func newSamplesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "samples",
		Short: "Print the built-in sample texts or random ones",
		Args:  cobra.NoArgs,
		RunE:  runSamplesCmd,
	}
	cmd.Flags().IntVar(&samplesRandom, "random", 0, "print N random texts instead of the samples")
	cmd.Flags().Int64Var(&samplesSeed, "seed", 0, "random seed (default: current time)")
	cmd.Flags().IntVar(&samplesWords, "words", defaultSampleWords, "words per random text")
	cmd.Flags().StringVar(&samplesVocab, "vocab", "", "word list file for random texts (one word per line)")
	return cmd
}

func runSamplesCmd(cmd *cobra.Command, _ []string) error {
	out := cmd.OutOrStdout()
	if samplesRandom <= 0 {
		for i, text := range sample.Texts() {
			if _, err := fmt.Fprintf(out, "%d. %s\n", i+1, text); err != nil {
				return fmt.Errorf("failed to write output: %w", err)
			}
		}
		return nil
	}
	if samplesWords <= 0 {
		return fmt.Errorf("--words must be > 0")
	}

	vocab := sample.Vocabulary
	if samplesVocab != "" {
		words, err := loadVocabulary(samplesVocab)
		if err != nil {
			return err
		}
		vocab = words
	}

	seed := samplesSeed
	if !cmd.Flags().Changed("seed") {
		seed = time.Now().UnixNano()
	}
	logger.Debug().Int64("seed", seed).Int("count", samplesRandom).Msg("generating samples")
	gen := sample.New(seed)
	for i := 0; i < samplesRandom; i++ {
		text := gen.Text(vocab, samplesWords, 0.3, 0.2)
		if _, err := fmt.Fprintln(out, text); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		if i < samplesRandom-1 {
			if _, err := fmt.Fprintln(out); err != nil {
				return fmt.Errorf("failed to write output: %w", err)
			}
		}
	}
	return nil
}

func loadVocabulary(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open vocabulary: %w", err)
	}
	defer func() {
		if cerr := file.Close(); cerr != nil {
			logger.Warn().Err(cerr).Str("path", path).Msg("failed to close vocabulary")
		}
	}()
	return sample.ReadVocabulary(file, path)
}
