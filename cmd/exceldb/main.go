// Package main provides the CLI entry point for exceldb.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/exceldb/exceldb"
)

var (
	inputDir   string
	outputDir  string
	reports    bool
	sampleRows int
	logLevel   string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "exceldb",
		Short: "Convert Excel workbooks to SQLite databases",
		Long: `exceldb converts every Excel workbook in the input directory into a
SQLite database file in the output directory, one table per sheet, with
column types inferred from the data. A text report is written next to
each database.

Per-file failures are reported in the summary and do not abort the run.`,
		Args: cobra.NoArgs,
		RunE: run,
		// Setup errors are runtime problems, not usage mistakes.
		SilenceUsage: true,
	}

	rootCmd.Flags().StringVarP(&inputDir, "input", "i", "input", "Directory containing .xlsx/.xls workbooks")
	rootCmd.Flags().StringVarP(&outputDir, "output", "o", "output", "Directory for the generated .db files")
	rootCmd.Flags().BoolVar(&reports, "reports", true, "Write a text report next to each database")
	rootCmd.Flags().IntVar(&sampleRows, "sample-rows", exceldb.DefaultSampleRows, "Sample rows per table in reports")
	rootCmd.Flags().StringVar(&logLevel, "log-level", "info", "Log level: debug, info, warn, error")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, _ []string) error {
	setupLogging(logLevel)

	opts := exceldb.NewConvertOptions().
		WithReports(reports).
		WithSampleRows(sampleRows)

	summary, err := exceldb.ConvertDir(cmd.Context(), inputDir, outputDir, opts)
	if err != nil {
		return fmt.Errorf("batch conversion failed: %w", err)
	}

	if summary.Total == 0 {
		fmt.Printf("no workbook files found in %s\n", inputDir)
		return nil
	}

	// Per-file failures are part of the summary; the run still exits 0.
	fmt.Println(summary)
	return nil
}

// setupLogging configures the default slog logger with a text handler.
func setupLogging(level string) {
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: parseLevel(level),
	})))
}

// parseLevel converts a string log level to slog.Level.
func parseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
