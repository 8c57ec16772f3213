package exceldb

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapSheet(t *testing.T) {
	t.Parallel()

	t.Run("header and data rows", func(t *testing.T) {
		t.Parallel()
		rows := [][]string{
			{"id", "name", "score"},
			{"1", "Alice", "9.5"},
			{"2", "Bob", "8.0"},
		}

		tbl, err := mapSheet("results", rows)
		require.NoError(t, err)

		assert.Equal(t, "results", tbl.getName())
		assert.True(t, tbl.getHeader().equal(newHeader([]string{"id", "name", "score"})))
		require.Len(t, tbl.getRows(), 2)
		assert.Equal(t, []any{int64(1), "Alice", float64(9.5)}, tbl.getRows()[0])
	})

	t.Run("every row matches the column count", func(t *testing.T) {
		t.Parallel()
		rows := [][]string{
			{"a", "b", "c"},
			{"1"},
			{"1", "2", "3", "4"},
			{},
		}

		tbl, err := mapSheet("ragged", rows)
		require.NoError(t, err)

		for i, row := range tbl.getRows() {
			assert.Len(t, row, 3, "row %d", i)
		}
		// Missing cells are NULL, extra cells are dropped.
		assert.Equal(t, []any{int64(1), nil, nil}, tbl.getRows()[0])
		assert.Equal(t, []any{int64(1), int64(2), int64(3)}, tbl.getRows()[1])
		assert.Equal(t, []any{nil, nil, nil}, tbl.getRows()[2])
	})

	t.Run("blank header cells get positional names", func(t *testing.T) {
		t.Parallel()
		rows := [][]string{
			{"id", "", "name"},
			{"1", "x", "Alice"},
		}

		tbl, err := mapSheet("partial", rows)
		require.NoError(t, err)
		assert.True(t, tbl.getHeader().equal(newHeader([]string{"id", "col_2", "name"})))
	})

	t.Run("duplicate header names are suffixed", func(t *testing.T) {
		t.Parallel()
		rows := [][]string{
			{"id", "id", "id"},
			{"1", "2", "3"},
		}

		tbl, err := mapSheet("dupes", rows)
		require.NoError(t, err)
		assert.True(t, tbl.getHeader().equal(newHeader([]string{"id", "id_2", "id_3"})))
	})

	t.Run("fully blank header row is kept as data", func(t *testing.T) {
		t.Parallel()
		rows := [][]string{
			{"", ""},
			{"1", "2"},
		}

		tbl, err := mapSheet("headless", rows)
		require.NoError(t, err)

		assert.True(t, tbl.getHeader().equal(newHeader([]string{"col_1", "col_2"})))
		require.Len(t, tbl.getRows(), 2)
		assert.Equal(t, []any{nil, nil}, tbl.getRows()[0])
		assert.Equal(t, []any{int64(1), int64(2)}, tbl.getRows()[1])
	})

	t.Run("header-only sheet yields zero rows", func(t *testing.T) {
		t.Parallel()
		tbl, err := mapSheet("empty", [][]string{{"id", "name"}})
		require.NoError(t, err)

		assert.Len(t, tbl.getColumns(), 2)
		assert.Empty(t, tbl.getRows())
	})

	t.Run("sheet without columns fails", func(t *testing.T) {
		t.Parallel()
		for _, rows := range [][][]string{nil, {{}}} {
			_, err := mapSheet("broken", rows)
			require.Error(t, err)

			var mappingErr *MappingError
			require.ErrorAs(t, err, &mappingErr)
			assert.Equal(t, "broken", mappingErr.Sheet)
			assert.ErrorIs(t, err, ErrNoColumns)
		}
	})

	t.Run("mixed numeric and text column preserves strings", func(t *testing.T) {
		t.Parallel()
		rows := [][]string{
			{"value"},
			{"10"},
			{"abc"},
		}

		tbl, err := mapSheet("mixed", rows)
		require.NoError(t, err)

		require.Len(t, tbl.getColumns(), 1)
		assert.Equal(t, columnTypeText, tbl.getColumns()[0].Type)
		assert.Equal(t, []any{"10"}, tbl.getRows()[0])
		assert.Equal(t, []any{"abc"}, tbl.getRows()[1])
	})
}

func TestMapSheetErrorUnwrap(t *testing.T) {
	t.Parallel()

	_, err := mapSheet("x", nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNoColumns))
}
