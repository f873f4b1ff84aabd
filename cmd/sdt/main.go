package main

import (
	"fmt"
	"os"

	"sigdetect/adapters/counts"
	"sigdetect/domain/sdt"
	"sigdetect/internal"
	"sigdetect/internal/config"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

func main() {
	if err := godotenv.Load(".env"); err != nil && !os.IsNotExist(err) {
		internal.NewDefaultLogger("sdt").Warn("ignoring .env: %v", err)
	}

	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// settings is the configuration after flag overrides
type settings struct {
	cfg *config.Config
}

func newRootCmd() *cobra.Command {
	s := &settings{cfg: config.Default()}
	var (
		strict    bool
		output    string
		precision int
	)

	rootCmd := &cobra.Command{
		Use:           "sdt",
		Short:         "Signal detection metrics (hit rate, false-alarm rate, d', criterion)",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			flags := cmd.Flags()
			if flags.Changed("strict") {
				cfg.Strict = strict
			}
			if flags.Changed("output") {
				cfg.Output = output
			}
			if flags.Changed("precision") {
				cfg.Precision = precision
			}
			if err := cfg.Validate(); err != nil {
				return err
			}
			s.cfg = cfg
			return nil
		},
	}

	rootCmd.PersistentFlags().BoolVar(&strict, "strict", false, "Reject negative, NaN or infinite counts (env SDT_STRICT)")
	rootCmd.PersistentFlags().StringVar(&output, "output", config.OutputText, "Output format: text|json (env SDT_OUTPUT)")
	rootCmd.PersistentFlags().IntVar(&precision, "precision", 4, "Decimal places in text output (env SDT_PRECISION)")

	rootCmd.AddCommand(
		newComputeCmd(s),
		newDemoCmd(s),
		newSummarizeCmd(s),
	)
	return rootCmd
}

func newComputeCmd(s *settings) *cobra.Command {
	var hits, misses, falseAlarms, correctRejections float64

	cmd := &cobra.Command{
		Use:   "compute",
		Short: "Compute metrics for a single set of counts",
		Long: `Compute hit rate, false-alarm rate, d' and criterion for one observer.

Example: sdt compute --hits 5 --misses 2 --false-alarms 8 --correct-rejections 2`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rec := sdt.New(hits, misses, falseAlarms, correctRejections)
			check := rec.CheckFinite
			if s.cfg.Strict {
				check = rec.Validate
			}
			if err := check(); err != nil {
				return err
			}
			return newPrinter(cmd.OutOrStdout(), s.cfg).metrics("", rec.Metrics())
		},
	}

	cmd.Flags().Float64Var(&hits, "hits", 0, "Signal trials answered 'present'")
	cmd.Flags().Float64Var(&misses, "misses", 0, "Signal trials answered 'absent'")
	cmd.Flags().Float64Var(&falseAlarms, "false-alarms", 0, "Noise trials answered 'present'")
	cmd.Flags().Float64Var(&correctRejections, "correct-rejections", 0, "Noise trials answered 'absent'")

	return cmd
}

func newDemoCmd(s *settings) *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Print d' and criterion for hits=5 misses=2 false-alarms=8 correct-rejections=2",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rec := sdt.New(5, 2, 8, 2)
			return newPrinter(cmd.OutOrStdout(), s.cfg).demo(rec)
		},
	}
}

func newSummarizeCmd(s *settings) *cobra.Command {
	return &cobra.Command{
		Use:   "summarize [file]",
		Short: "Compute metrics for every row of a CSV or XLSX count table",
		Long: `Read a table with columns hits, misses, false_alarms, correct_rejections
(and optionally id) and print per-row metrics, pooled metrics and the
distribution of d' and criterion across rows.

Example: sdt summarize participants.xlsx --output json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rows, err := counts.NewTableReader(args[0], s.cfg.Strict).ReadRows()
			if err != nil {
				return err
			}

			records := make([]sdt.Record, len(rows))
			for i, row := range rows {
				records[i] = row.Record
			}
			summary, err := sdt.Summarize(records)
			if err != nil {
				return err
			}

			return newPrinter(cmd.OutOrStdout(), s.cfg).table(rows, sdt.Pool(records...).Metrics(), summary)
		},
	}
}
