package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"

	"github.com/nao1215/coprimepi/internal/config"
	"github.com/nao1215/coprimepi/internal/coprime"
	applog "github.com/nao1215/coprimepi/internal/log"
	"github.com/nao1215/coprimepi/internal/report"
	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command for coprimepi.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "coprimepi [flags] PAIRS",
		Short: "Approximate pi from the probability that two random integers are coprime",
		Long: `coprimepi approximates the value of pi using the result that two random
integers are coprime with probability 6/pi^2.

It generates PAIRS pairs of random integers between 1 and MAX_NUMBER from the
operating system's secure random source, counts the co-prime pairs and
computes pi = sqrt(6 / fraction). PAIRS and MAX_NUMBER must both be greater
than 10.

Examples:
  # Sample one million pairs
  coprimepi 1000000

  # Restrict the random numbers to [1, 100000]
  coprimepi -m 100000 1000000

  # Print every sampled pair before the report
  coprimepi --debug 20

  # Output a Markdown report
  coprimepi --format markdown 1000000

Configuration file (.coprimepi) example:
  maxNumber: 1000000
  debug: false
  format: text`,
		Version:       getVersion(),
		Args:          cobra.ExactArgs(1),
		RunE:          runRootCmd,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags that apply to all commands
	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")

	cmd.Flags().Int64P("max-number", "m", config.DefaultMaxNumber,
		"Maximum number for the random numbers; must be greater than 10")
	cmd.Flags().BoolP("debug", "d", false,
		"Print every generated pair before the report")
	cmd.Flags().StringP("format", "f", string(config.DefaultFormat),
		"Report format: text, json or markdown")
	cmd.Flags().StringP("config", "c", "",
		"Configuration file path (default: .coprimepi in current or home directory)")

	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// Execute runs the root command and exits with its status code.
func Execute() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes the CLI with the given arguments and returns the exit code.
func run(args []string, stdout, stderr io.Writer) int {
	cmd := NewRootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}
	return 0
}

// runRootCmd executes the estimation.
func runRootCmd(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd, args)
	if err != nil {
		return err
	}

	// Range errors are printed as they are, one line naming the constraint.
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger := setupLogger(cmd.ErrOrStderr(), cfg)

	return runEstimate(cmd.OutOrStdout(), cfg, logger)
}

// getVerboseFlag retrieves the verbose flag from the command or its parent.
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		verbose, err = cmd.Root().PersistentFlags().GetBool("verbose")
		if err != nil {
			return false
		}
	}
	return verbose
}

// buildConfig creates a Config from cobra command flags and the config file.
func buildConfig(cmd *cobra.Command, args []string) (*config.Config, error) {
	cfg := config.NewConfig()

	pairs, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid PAIRS %q: must be an integer", args[0])
	}
	cfg.Pairs = pairs

	cfg.MaxNumber, err = cmd.Flags().GetInt64("max-number")
	if err != nil {
		return nil, err
	}

	cfg.Debug, err = cmd.Flags().GetBool("debug")
	if err != nil {
		return nil, err
	}

	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return nil, err
	}
	cfg.Format, err = config.ParseFormat(format)
	if err != nil {
		return nil, err
	}

	cfg.ConfigFilePath, err = cmd.Flags().GetString("config")
	if err != nil {
		return nil, err
	}

	cfg.Verbose = getVerboseFlag(cmd)

	// If user explicitly specified a config file path, error if not found.
	// If no path specified, silently use defaults if no file found.
	explicitConfigPath := cfg.ConfigFilePath != ""
	configPath := config.FindConfigFile(cfg.ConfigFilePath)

	if configPath != "" {
		file, err := config.LoadConfigFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}

		overridden := map[string]bool{
			"max-number": cmd.Flags().Changed("max-number"),
			"debug":      cmd.Flags().Changed("debug"),
			"format":     cmd.Flags().Changed("format"),
		}
		if err := cfg.ApplyFile(file, overridden); err != nil {
			return nil, fmt.Errorf("invalid config file %s: %w", configPath, err)
		}
	} else if explicitConfigPath {
		return nil, fmt.Errorf("%w: %s", config.ErrConfigNotFound, cfg.ConfigFilePath)
	}

	return cfg, nil
}

// setupLogger creates a structured logger based on the run configuration.
// JSON reports are paired with JSON logs so both can be machine-read.
func setupLogger(w io.Writer, cfg *config.Config) *slog.Logger {
	if cfg.Format == config.FormatJSON {
		return applog.NewJSONLogger(w, cfg.Verbose)
	}
	return applog.NewLogger(w, cfg.Verbose)
}

// runEstimate samples the pairs and writes the report to out.
func runEstimate(out io.Writer, cfg *config.Config, logger *slog.Logger, opts ...coprime.Option) error {
	opts = append([]coprime.Option{coprime.WithLogger(logger)}, opts...)

	var trace *report.TraceWriter
	if cfg.Debug {
		trace = report.NewTraceWriter(out)
		opts = append(opts, coprime.WithTrace(trace.Trace))
	}

	result, err := coprime.NewEstimator(opts...).Estimate(cfg.Pairs, cfg.MaxNumber)

	// Trace lines are flushed even when the estimate failed, so the
	// sampled pairs remain visible.
	if trace != nil {
		if ferr := trace.Flush(); ferr != nil && err == nil {
			return fmt.Errorf("failed to write debug output: %w", ferr)
		}
	}
	if err != nil {
		return err
	}

	if _, err := newReportWriter(out, cfg.Format).Write(result); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	return nil
}

// newReportWriter returns the report writer for the given format.
func newReportWriter(out io.Writer, format config.Format) report.Writer {
	switch format {
	case config.FormatJSON:
		return report.NewJSONWriter(out, report.WithPrettyPrint())
	case config.FormatMarkdown:
		return report.NewMarkdownWriter(out)
	default:
		return report.NewTextWriter(out)
	}
}
