package exceldb

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// FileFailure records one workbook that could not be converted.
type FileFailure struct {
	// Path is the input workbook path.
	Path string
	// Err is the conversion error.
	Err error
}

// Summary aggregates the outcome of one batch run.
type Summary struct {
	// InputDir is the scanned directory.
	InputDir string
	// OutputDir is the directory databases were written to.
	OutputDir string
	// Total is the number of workbook files found.
	Total int
	// Succeeded is the number of workbooks converted.
	Succeeded int
	// Failed is the number of workbooks that failed.
	Failed int
	// Results holds per-file results for converted workbooks.
	Results []*FileResult
	// Failures holds per-file errors for failed workbooks.
	Failures []FileFailure
}

// String renders the summary as a human-readable tally.
func (s *Summary) String() string {
	var b strings.Builder

	fmt.Fprintf(&b, "converted %d/%d workbook(s) from %s to %s\n", s.Succeeded, s.Total, s.InputDir, s.OutputDir)
	for _, result := range s.Results {
		fmt.Fprintf(&b, "  ok   %s -> %s (%d table(s))\n", result.SourcePath, result.DBPath, len(result.Tables))
		for _, warning := range result.Warnings {
			fmt.Fprintf(&b, "       warning: %s\n", warning)
		}
	}
	for _, failure := range s.Failures {
		fmt.Fprintf(&b, "  fail %s: %v\n", failure.Path, failure.Err)
	}
	if s.Failed > 0 {
		fmt.Fprintf(&b, "failed: %d workbook(s)\n", s.Failed)
	}

	return strings.TrimSuffix(b.String(), "\n")
}

// ConvertDir converts every supported workbook in inputDir into a SQLite
// database in outputDir, strictly sequentially. One file's failure is
// recorded in the summary and never aborts the batch; only setup problems
// (missing input directory, output directory that cannot be created) or
// context cancellation return an error.
func ConvertDir(ctx context.Context, inputDir, outputDir string, opts ...ConvertOptions) (*Summary, error) {
	info, err := os.Stat(inputDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrInputDirNotFound, inputDir)
		}
		return nil, fmt.Errorf("failed to stat input directory %s: %w", inputDir, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("input path is not a directory: %s", inputDir)
	}

	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create output directory %s: %w", outputDir, err)
	}

	paths, err := listWorkbooks(inputDir)
	if err != nil {
		return nil, err
	}

	summary := &Summary{
		InputDir:  inputDir,
		OutputDir: outputDir,
		Total:     len(paths),
	}

	for _, path := range paths {
		slog.Info("converting workbook", "file", path)

		result, err := ConvertFile(ctx, path, outputDir, opts...)
		if err != nil {
			// Cancellation is a batch-level stop, not a per-file failure.
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				return summary, err
			}
			slog.Error("conversion failed", "file", path, "error", err)
			summary.Failed++
			summary.Failures = append(summary.Failures, FileFailure{Path: path, Err: err})
			continue
		}

		slog.Info("workbook converted", "file", path, "db", result.DBPath, "tables", len(result.Tables))
		for _, warning := range result.Warnings {
			slog.Warn("conversion warning", "file", path, "warning", warning)
		}
		summary.Succeeded++
		summary.Results = append(summary.Results, result)
	}

	return summary, nil
}

// listWorkbooks returns the supported workbook paths in dir, sorted by
// name. Subdirectories are not descended into.
func listWorkbooks(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read input directory %s: %w", dir, err)
	}

	var paths []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if isSupportedFile(entry.Name()) {
			paths = append(paths, filepath.Join(dir, entry.Name()))
		}
	}
	return paths, nil
}
