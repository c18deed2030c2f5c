package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"text/tabwriter"
	"time"

	"github.com/baditaflorin/go_fuzzy_ratio/internal/adapters/logger"
	"github.com/baditaflorin/go_fuzzy_ratio/internal/config"
	"github.com/baditaflorin/go_fuzzy_ratio/pkg/fuzzy"
	"github.com/baditaflorin/l"
	"github.com/spf13/cobra"
)

type options struct {
	configPath string
	cutoff     int
	processor  string
	jsonOutput bool
	fromFiles  bool
	verbose    bool
	timeout    time.Duration
}

type scoreOutput struct {
	Algorithm string  `json:"algorithm"`
	Score     int     `json:"score"`
	Raw       float64 `json:"raw"`
	Cutoff    int     `json:"cutoff"`
	Passed    bool    `json:"passed"`
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:           "fuzz",
		Short:         "Fuzzy string similarity scores",
		Long:          `Compute 0-100 similarity scores between two strings with ratio, partial, token and weighted algorithms.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "YAML config file supplying the default cutoff and processor")
	rootCmd.PersistentFlags().IntVar(&opts.cutoff, "cutoff", 0, "Scores below this value are reported as 0 (default from config)")
	rootCmd.PersistentFlags().StringVar(&opts.processor, "processor", "", "Text preprocessor: none, default, ascii or folding (default from config)")
	rootCmd.PersistentFlags().BoolVar(&opts.jsonOutput, "json", false, "Print results as JSON")
	rootCmd.PersistentFlags().BoolVar(&opts.fromFiles, "files", false, "Treat s1 and s2 as paths and compare the file contents")
	rootCmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "Log scoring details to stderr")
	rootCmd.PersistentFlags().DurationVar(&opts.timeout, "timeout", 30*time.Second, "Maximum time to spend scoring")

	rootCmd.AddCommand(newScoreCmd(opts), newAllCmd(opts), newAlgorithmsCmd(opts))
	return rootCmd
}

func newScoreCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "score <algorithm> <s1> <s2>",
		Short: "Score two strings with one algorithm",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			algorithm, err := fuzzy.ParseAlgorithm(args[0])
			if err != nil {
				return err
			}
			s1, s2, err := opts.inputs(args[1], args[2])
			if err != nil {
				return err
			}

			scorer, err := opts.scorer(cmd)
			if err != nil {
				return err
			}
			defer scorer.Close()

			ctx, cancel := context.WithTimeout(cmd.Context(), opts.timeout)
			defer cancel()

			res, err := scorer.Compute(ctx, algorithm, s1, s2)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if opts.jsonOutput {
				return writeJSON(out, toOutput(res))
			}
			_, err = fmt.Fprintln(out, res.Score)
			return err
		},
	}
}

func newAllCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "all <s1> <s2>",
		Short: "Score two strings with every algorithm",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			s1, s2, err := opts.inputs(args[0], args[1])
			if err != nil {
				return err
			}

			scorer, err := opts.scorer(cmd)
			if err != nil {
				return err
			}
			defer scorer.Close()

			ctx, cancel := context.WithTimeout(cmd.Context(), opts.timeout)
			defer cancel()

			results, err := scorer.ComputeAll(ctx, s1, s2)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if opts.jsonOutput {
				outputs := make([]scoreOutput, 0, len(results))
				for _, r := range results {
					outputs = append(outputs, toOutput(r))
				}
				return writeJSON(out, outputs)
			}

			w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
			for _, r := range results {
				fmt.Fprintf(w, "%s\t%d\n", r.Name, r.Score)
			}
			return w.Flush()
		},
	}
}

func newAlgorithmsCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "algorithms",
		Short: "List the available algorithms",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			names := make([]string, 0, len(fuzzy.Algorithms()))
			for _, a := range fuzzy.Algorithms() {
				names = append(names, a.String())
			}

			out := cmd.OutOrStdout()
			if opts.jsonOutput {
				return writeJSON(out, names)
			}
			for _, name := range names {
				fmt.Fprintln(out, name)
			}
			return nil
		},
	}
}

// inputs returns the two texts, reading them from disk when --files is set.
func (o *options) inputs(a, b string) (string, string, error) {
	if !o.fromFiles {
		return a, b, nil
	}
	first, err := os.ReadFile(a)
	if err != nil {
		return "", "", fmt.Errorf("failed to read first file: %w", err)
	}
	second, err := os.ReadFile(b)
	if err != nil {
		return "", "", fmt.Errorf("failed to read second file: %w", err)
	}
	return string(first), string(second), nil
}

// scorer builds a Scorer from the same config sources as the server (.env,
// YAML, FUZZ_* variables) with flag overrides applied on top.
func (o *options) scorer(cmd *cobra.Command) (*fuzzy.Scorer, error) {
	cfg, err := config.Load(o.configPath)
	if err != nil {
		return nil, err
	}

	cutoff := cfg.Scoring.DefaultCutoff
	if cmd.Flags().Changed("cutoff") {
		cutoff = o.cutoff
	}
	processor := cfg.Scoring.Processor
	if o.processor != "" {
		processor = o.processor
	}

	output := io.Discard
	if o.verbose {
		output = cmd.ErrOrStderr()
	}
	lg, err := l.NewStandardFactory().CreateLogger(logger.DefaultConfig(output, false))
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}

	scorer, err := fuzzy.New(
		fuzzy.WithLogger(lg),
		fuzzy.WithCutoff(cutoff),
		fuzzy.WithProcessorType(processor),
	)
	if err != nil {
		_ = lg.Close()
		return nil, err
	}
	return scorer, nil
}

func toOutput(r fuzzy.Result) scoreOutput {
	return scoreOutput{
		Algorithm: r.Name,
		Score:     r.Score,
		Raw:       r.Raw,
		Cutoff:    r.Cutoff,
		Passed:    r.Passed,
	}
}

func writeJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
