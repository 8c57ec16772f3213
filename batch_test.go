package exceldb

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvertDir(t *testing.T) {
	t.Parallel()

	t.Run("one corrupt file does not stop the batch", func(t *testing.T) {
		t.Parallel()
		inputDir := t.TempDir()
		outputDir := filepath.Join(t.TempDir(), "out")

		createWorkbook(t, filepath.Join(inputDir, "good.xlsx"), []sheetFixture{
			{name: "data", rows: [][]any{{"id", "name"}, {1, "Alice"}}},
		})
		require.NoError(t, os.WriteFile(filepath.Join(inputDir, "broken.xlsx"), []byte("garbage"), 0o600))

		summary, err := ConvertDir(context.Background(), inputDir, outputDir, NewConvertOptions().WithReports(false))
		require.NoError(t, err)

		assert.Equal(t, 2, summary.Total)
		assert.Equal(t, 1, summary.Succeeded)
		assert.Equal(t, 1, summary.Failed)
		require.Len(t, summary.Failures, 1)
		assert.Equal(t, filepath.Join(inputDir, "broken.xlsx"), summary.Failures[0].Path)

		var convErr *ConversionError
		assert.ErrorAs(t, summary.Failures[0].Err, &convErr)

		// The valid file still produced its database.
		_, err = os.Stat(filepath.Join(outputDir, "good.db"))
		assert.NoError(t, err)
		_, err = os.Stat(filepath.Join(outputDir, "broken.db"))
		assert.True(t, os.IsNotExist(err))
	})

	t.Run("missing input directory is fatal", func(t *testing.T) {
		t.Parallel()
		_, err := ConvertDir(context.Background(), filepath.Join(t.TempDir(), "absent"), t.TempDir())
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrInputDirNotFound)
	})

	t.Run("input path that is a file is fatal", func(t *testing.T) {
		t.Parallel()
		tmpDir := t.TempDir()
		filePath := filepath.Join(tmpDir, "not-a-dir")
		require.NoError(t, os.WriteFile(filePath, []byte("x"), 0o600))

		_, err := ConvertDir(context.Background(), filePath, tmpDir)
		require.Error(t, err)
	})

	t.Run("empty input directory yields empty summary", func(t *testing.T) {
		t.Parallel()
		summary, err := ConvertDir(context.Background(), t.TempDir(), t.TempDir())
		require.NoError(t, err)
		assert.Zero(t, summary.Total)
		assert.Zero(t, summary.Succeeded)
		assert.Zero(t, summary.Failed)
	})

	t.Run("unsupported files are ignored", func(t *testing.T) {
		t.Parallel()
		inputDir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(inputDir, "notes.txt"), []byte("x"), 0o600))
		require.NoError(t, os.WriteFile(filepath.Join(inputDir, "data.csv"), []byte("a,b"), 0o600))
		require.NoError(t, os.Mkdir(filepath.Join(inputDir, "sub.xlsx"), 0o755))

		summary, err := ConvertDir(context.Background(), inputDir, t.TempDir())
		require.NoError(t, err)
		assert.Zero(t, summary.Total)
	})

	t.Run("output directory is created", func(t *testing.T) {
		t.Parallel()
		inputDir := t.TempDir()
		createWorkbook(t, filepath.Join(inputDir, "data.xlsx"), []sheetFixture{
			{name: "data", rows: [][]any{{"id"}, {1}}},
		})

		outputDir := filepath.Join(t.TempDir(), "nested", "out")
		summary, err := ConvertDir(context.Background(), inputDir, outputDir, NewConvertOptions().WithReports(false))
		require.NoError(t, err)
		assert.Equal(t, 1, summary.Succeeded)

		info, err := os.Stat(outputDir)
		require.NoError(t, err)
		assert.True(t, info.IsDir())
	})

	t.Run("cancelled context stops the batch", func(t *testing.T) {
		t.Parallel()
		inputDir := t.TempDir()
		createWorkbook(t, filepath.Join(inputDir, "data.xlsx"), []sheetFixture{
			{name: "data", rows: [][]any{{"id"}, {1}}},
		})

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := ConvertDir(ctx, inputDir, t.TempDir(), NewConvertOptions().WithReports(false))
		require.Error(t, err)
		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestSummaryString(t *testing.T) {
	t.Parallel()

	t.Run("success and failure tally", func(t *testing.T) {
		t.Parallel()
		inputDir := t.TempDir()
		outputDir := t.TempDir()

		createWorkbook(t, filepath.Join(inputDir, "good.xlsx"), []sheetFixture{
			{name: "data", rows: [][]any{{"id"}, {1}}},
		})
		require.NoError(t, os.WriteFile(filepath.Join(inputDir, "bad.xlsx"), []byte("garbage"), 0o600))

		summary, err := ConvertDir(context.Background(), inputDir, outputDir, NewConvertOptions().WithReports(false))
		require.NoError(t, err)

		text := summary.String()
		assert.Contains(t, text, "converted 1/2 workbook(s)")
		assert.Contains(t, text, "good.xlsx")
		assert.Contains(t, text, "fail "+filepath.Join(inputDir, "bad.xlsx"))
		assert.Contains(t, text, "failed: 1 workbook(s)")
	})

	t.Run("no trailing newline", func(t *testing.T) {
		t.Parallel()
		summary := &Summary{InputDir: "in", OutputDir: "out"}
		assert.False(t, strings.HasSuffix(summary.String(), "\n"))
	})
}
