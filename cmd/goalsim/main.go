package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/goalsim/goal-analyzer/internal/config"
	"github.com/goalsim/goal-analyzer/internal/output"
	"github.com/goalsim/goal-analyzer/internal/simulation"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var (
	inputFile   string
	numSims     int
	seed        int64
	numWorkers  int
	format      string
	timeout     time.Duration
	verbose     bool
	exampleFile string
)

// stderrLogger adapts the standard log package to the engine's Logger
// interface. Debug output is gated on the verbose flag.
type stderrLogger struct {
	debug bool
}

func (l stderrLogger) Debugf(format string, args ...any) {
	if l.debug {
		log.Printf("DEBUG "+format, args...)
	}
}
func (l stderrLogger) Infof(format string, args ...any)  { log.Printf("INFO "+format, args...) }
func (l stderrLogger) Warnf(format string, args ...any)  { log.Printf("WARN "+format, args...) }
func (l stderrLogger) Errorf(format string, args ...any) { log.Printf("ERROR "+format, args...) }

var rootCmd = &cobra.Command{
	Use:   "goalsim",
	Short: "Monte Carlo analyzer for financial savings goals",
	Long: `goalsim projects thousands of stochastic wealth paths for each
financial goal in a YAML input file and reports the probability of
reaching the goal, the spread of outcomes, and a corrective monthly
contribution.`,
}

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Run a Monte Carlo analysis for every goal in the input file",
	RunE: func(cmd *cobra.Command, args []string) error {
		parser := config.NewInputParser()
		goalFile, err := parser.LoadFromFile(inputFile)
		if err != nil {
			return err
		}

		formatter, err := output.GetFormatterByName(format)
		if err != nil {
			return err
		}

		analyzer := simulation.NewOutcomeAnalyzer(simulation.AnalyzerConfig{
			Seed:       seed,
			NumWorkers: numWorkers,
			Logger:     stderrLogger{debug: verbose},
		})

		ctx := context.Background()
		if timeout > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, timeout)
			defer cancel()
		}

		for i := range goalFile.Goals {
			goal := &goalFile.Goals[i]
			analysis, err := analyzer.Analyze(ctx, goal, numSims)
			if err != nil {
				return fmt.Errorf("goal %q: %w", goal.ID, err)
			}

			data, err := formatter.Format(analysis)
			if err != nil {
				return fmt.Errorf("goal %q: formatting failed: %w", goal.ID, err)
			}
			if _, err := os.Stdout.Write(data); err != nil {
				return err
			}
			fmt.Println()
		}

		return nil
	},
}

var exampleCmd = &cobra.Command{
	Use:   "example",
	Short: "Write a starter goals file",
	RunE: func(cmd *cobra.Command, args []string) error {
		file := config.NewInputParser().CreateExampleGoalFile()
		data, err := yaml.Marshal(file)
		if err != nil {
			return err
		}

		if exampleFile == "" {
			_, err = os.Stdout.Write(data)
			return err
		}
		if err := os.WriteFile(exampleFile, data, 0644); err != nil {
			return err
		}
		fmt.Printf("Wrote example goals to %s\n", exampleFile)
		return nil
	},
}

func init() {
	analyzeCmd.Flags().StringVarP(&inputFile, "input", "i", "goals.yaml", "goal input file (YAML)")
	analyzeCmd.Flags().IntVarP(&numSims, "simulations", "n", 1000, "number of Monte Carlo trials (typical: 100, 1000, 5000, 10000)")
	analyzeCmd.Flags().Int64Var(&seed, "seed", 0, "random seed (0 = time-based)")
	analyzeCmd.Flags().IntVar(&numWorkers, "workers", 0, "concurrent trial workers (0 = default)")
	analyzeCmd.Flags().StringVarP(&format, "format", "f", "console", "output format: console, json, csv")
	analyzeCmd.Flags().DurationVar(&timeout, "timeout", 0, "abort the analysis after this duration (0 = no timeout)")
	analyzeCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	exampleCmd.Flags().StringVarP(&exampleFile, "output", "o", "", "destination file (default: stdout)")

	rootCmd.AddCommand(analyzeCmd)
	rootCmd.AddCommand(exampleCmd)
}

func main() {
	log.SetFlags(0)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
