// File: cmd/triadcount/main.go
//
// triadcount - triad census for signed networks.
//
// Reads a labeled CSV adjacency matrix, classifies every connected triple
// of nodes by its positive-edge count, and writes a plain-text stability
// report. Progress goes to stderr so the report can be piped cleanly.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/triad/balance"
	"github.com/katalvlaran/triad/netcsv"
)

const version = "1.0.0"

// newRootCmd assembles the command tree. Built fresh on every call so flag
// state never leaks between runs.
func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "triadcount",
		Short:         "Analyze triadic relationships in signed networks",
		Long:          "triadcount counts triads in signed networks and classifies each\nby social-balance stability (stable: 3 or 1 positive edges,\nunstable: 2 or 0 positive edges).",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newCountCmd(), newVersionCmd())

	return root
}

// newCountCmd builds the count subcommand: the input → run → output pipeline.
func newCountCmd() *cobra.Command {
	var (
		flagOutput    string
		flagWorkers   int
		flagThreshold int
		flagStrict    bool
		flagConfig    string
	)

	cmd := &cobra.Command{
		Use:   "count <input.csv>",
		Short: "Count triads in a CSV adjacency matrix",
		Long: "Count reads a labeled adjacency matrix from <input.csv>, runs the\ntriad census and writes the stability report to --output (stdout by\ndefault).\n\nInput: CSV adjacency matrix with node labels\nOutput: Triad counts and stability analysis",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := Config{
				Output:    flagOutput,
				Workers:   flagWorkers,
				Threshold: flagThreshold,
				Strict:    flagStrict,
			}
			// Config file supplies defaults; explicit flags override it.
			if flagConfig != "" {
				fileCfg, err := loadConfig(flagConfig)
				if err != nil {
					return err
				}
				if !cmd.Flags().Changed("output") {
					cfg.Output = fileCfg.Output
				}
				if !cmd.Flags().Changed("workers") {
					cfg.Workers = fileCfg.Workers
				}
				if !cmd.Flags().Changed("threshold") {
					cfg.Threshold = fileCfg.Threshold
				}
				if !cmd.Flags().Changed("strict") {
					cfg.Strict = fileCfg.Strict
				}
			}

			return runCount(cmd, args[0], cfg)
		},
	}

	cmd.Flags().StringVarP(&flagOutput, "output", "o", "", "report destination path (default: stdout)")
	cmd.Flags().IntVar(&flagWorkers, "workers", balance.DefaultWorkers, "counting workers (0 = one per CPU)")
	cmd.Flags().IntVar(&flagThreshold, "threshold", balance.DefaultParallelThreshold, "node count at which counting goes parallel")
	cmd.Flags().BoolVar(&flagStrict, "strict", false, "abort on the first malformed CSV cell")
	cmd.Flags().StringVar(&flagConfig, "config", "", "YAML config file with count defaults")

	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the triadcount version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "triadcount %s\n", version)
		},
	}
}

// runCount drives the pipeline with a fully resolved Config.
func runCount(cmd *cobra.Command, input string, cfg Config) error {
	if cfg.Workers < 0 {
		return fmt.Errorf("--workers must be >= 0, got %d", cfg.Workers)
	}
	if cfg.Threshold < 0 {
		return fmt.Errorf("--threshold must be >= 0, got %d", cfg.Threshold)
	}

	// Input phase.
	var readOpts []netcsv.Option
	if cfg.Strict {
		readOpts = append(readOpts, netcsv.WithStrictCells())
	}
	m, labels, err := netcsv.ReadAdjacencyFile(input, readOpts...)
	if err != nil {
		return fmt.Errorf("reading input file '%s': %w", input, err)
	}

	engineOpts := []balance.Option{balance.WithParallelThreshold(cfg.Threshold)}
	if cfg.Workers >= 1 {
		engineOpts = append(engineOpts, balance.WithWorkers(cfg.Workers))
	}
	e := balance.New(engineOpts...)
	if err = e.Load(m, labels); err != nil {
		return fmt.Errorf("loading network from '%s': %w", input, err)
	}
	fmt.Fprintf(cmd.ErrOrStderr(), "Loaded network with %d nodes (%d possible triads)\n",
		e.NodeCount(), balance.MaxTriads(e.NodeCount()))

	// Run phase.
	counts := e.Run()
	fmt.Fprintf(cmd.ErrOrStderr(), "Found %d triads: %d stable, %d unstable\n",
		counts.Total(), counts.Stable(), counts.Unstable())

	// Output phase.
	if cfg.Output == "" {
		return netcsv.WriteReport(cmd.OutOrStdout(), counts)
	}
	if err = netcsv.WriteReportFile(cfg.Output, counts); err != nil {
		return fmt.Errorf("writing output file '%s': %w", cfg.Output, err)
	}
	fmt.Fprintf(cmd.ErrOrStderr(), "Results written to '%s'\n", cfg.Output)

	return nil
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
