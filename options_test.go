package exceldb

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewConvertOptions(t *testing.T) {
	t.Parallel()

	opts := NewConvertOptions()

	assert.True(t, opts.Reports(), "reports should default to enabled")
	assert.Equal(t, DefaultSampleRows, opts.SampleRows())
	assert.True(t, opts.Overwrite(), "overwrite should default to enabled")
}

func TestConvertOptionsWith(t *testing.T) {
	t.Parallel()

	opts := NewConvertOptions().
		WithReports(false).
		WithSampleRows(10).
		WithOverwrite(false)

	assert.False(t, opts.Reports())
	assert.Equal(t, 10, opts.SampleRows())
	assert.False(t, opts.Overwrite())

	// Options are values; the original is untouched.
	assert.True(t, NewConvertOptions().Reports())
}

func TestConvertOptionsNegativeSampleRows(t *testing.T) {
	t.Parallel()

	opts := NewConvertOptions().WithSampleRows(-1)
	assert.Equal(t, 0, opts.SampleRows())
}
