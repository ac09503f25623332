// Package main provides the CLI entry point for takt, a command-line
// benchmarking tool.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/taktdev/takt/bench"
	"github.com/taktdev/takt/meminfo"
	"github.com/taktdev/takt/progress"
	"github.com/taktdev/takt/report"
	"github.com/taktdev/takt/runner"
	"github.com/taktdev/takt/shellwords"
)

func main() {
	root := newRootCmd()
	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		warmup     int
		iterations int
		output     string
		useShell   bool
		noColor    bool
		verbose    bool
	)

	cmd := &cobra.Command{
		Use:   "takt [flags] <command> [args...]",
		Short: "Benchmark a command's wall-clock latency",
		Long: `Takt runs a command repeatedly, times every run against the monotonic
clock, and reports mean, standard deviation, min, max, and throughput
as colorful text or machine-readable JSON.

Accuracy tips:
  - use more iterations for short-running commands
  - run warmup iterations to stabilize caches and CPU frequency scaling
  - close noisy programs to reduce system interference
  - avoid shell mode unless you need pipes or globs; the shell startup
    is included in every sample

Output metrics:
  μ (mean)      average execution time across all iterations
  σ (std dev)   standard deviation, measures consistency
  ↓ (min)       fastest run observed
  ↑ (max)       slowest run observed
  λ (rate)      operations per second derived from the mean`,
		Example: `  takt sleep 0.1
  takt -n 1000 ls -la
  takt --warmup 0 --output json python script.py
  takt --shell 'ls | wc -l'`,
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			level := slog.LevelInfo
			if verbose {
				level = slog.LevelDebug
			}

			logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
				Level: level,
			}))

			return runBenchmark(cmd.Context(), logger, cliConfig{
				warmup:     warmup,
				iterations: iterations,
				output:     output,
				useShell:   useShell,
				noColor:    noColor,
				args:       args,
			})
		},
	}

	flags := cmd.Flags()
	// Stop flag parsing at the first positional so the benchmarked
	// command keeps its own flags.
	flags.SetInterspersed(false)
	flags.IntVar(&warmup, "warmup", 5,
		"Number of unmeasured warmup iterations")
	flags.IntVarP(&iterations, "iterations", "n", 100,
		"Number of measured iterations")
	flags.StringVarP(&output, "output", "o", "text",
		"Output format: text or json")
	flags.BoolVarP(&useShell, "shell", "s", false,
		"Run the command through the system shell (adds shell overhead)")
	flags.BoolVar(&noColor, "no-color", false,
		"Disable colored output")
	flags.BoolVarP(&verbose, "verbose", "v", false,
		"Enable debug logging")

	return cmd
}

type cliConfig struct {
	warmup     int
	iterations int
	output     string
	useShell   bool
	noColor    bool
	args       []string
}

func runBenchmark(
	ctx context.Context,
	logger *slog.Logger,
	cfg cliConfig,
) error {
	if cfg.output != "text" && cfg.output != "json" {
		return fmt.Errorf(
			"--output must be either 'json' or 'text' (got %q)", cfg.output,
		)
	}

	raw := strings.Join(cfg.args, " ")

	command := bench.Command{Raw: raw, Shell: cfg.useShell}
	if !cfg.useShell {
		command.Argv = shellwords.Split(raw)
	}

	benchCfg := bench.Config{
		Warmup:     cfg.warmup,
		Iterations: cfg.iterations,
		Command:    command,
	}
	if err := benchCfg.Validate(); err != nil {
		return err
	}

	var r runner.Runner
	if cfg.useShell {
		r = runner.NewShell(raw)
	} else {
		r = runner.NewExec(command.Argv)
	}

	barPalette := progress.DefaultPalette()
	textPalette := report.DefaultPalette()

	if cfg.noColor {
		barPalette = progress.PlainPalette()
		textPalette = report.PlainPalette()
	}

	out := os.Stdout
	jsonMode := cfg.output == "json"
	interactive := !jsonMode && isatty.IsTerminal(out.Fd())

	session := bench.NewSession(benchCfg, r, logger)

	if interactive {
		fmt.Fprintf(out, "%s%s\n",
			textPalette.Header.Render("Running benchmark: "), raw)
		fmt.Fprintf(out, "Warmup: %d | Iterations: %d\n\n",
			cfg.warmup, cfg.iterations)

		if cfg.warmup > 0 {
			fmt.Fprint(out, "Warming up... ")
			session.WarmupProgress = &warmupMarker{
				out: out,
				ok:  textPalette.Success,
			}
		}

		session.MeasureProgress = &measurePhase{
			out:    out,
			bar:    progress.NewBar(out, cfg.iterations, barPalette),
			header: textPalette.Header,
		}
	}

	res, err := session.Run(ctx)
	if err != nil {
		return err
	}

	usage := meminfo.Snapshot()
	logger.Debug("resource usage",
		slog.Uint64("peak_rss_kb", usage.PeakRSSKB),
		slog.Uint64("current_rss_kb", usage.CurrentRSSKB),
		slog.Uint64("child_peak_rss_kb", usage.ChildPeakRSSKB),
	)

	if interactive {
		progress.EraseLines(out, headerLines(cfg.warmup))
	}

	if jsonMode {
		return report.GenerateJSON(out, res)
	}

	if err := report.Generate(out, res, textPalette); err != nil {
		return err
	}

	if usage.ChildPeakRSSKB > 0 {
		fmt.Fprintf(out, "  %s\n\n", textPalette.Dim.Render(
			"peak child rss: "+meminfo.FormatKB(usage.ChildPeakRSSKB)))
	}

	return nil
}

// headerLines is the count of terminal lines erased before the summary:
// the phase headers plus the finished bar, two more when a warmup phase
// was displayed.
func headerLines(warmup int) int {
	if warmup > 0 {
		return 8
	}

	return 6
}
