package exceldb

import (
	"fmt"
	"strings"
)

// mapSheet converts one sheet's rows into a table. The first row is
// treated as the header; blank header cells get positional names, and a
// fully blank first row is kept as data under synthesized names. Rows
// shorter than the header are padded (missing cells normalize to NULL),
// longer rows are truncated to the column count. A sheet with rows but no
// columns cannot be mapped.
func mapSheet(name string, rows [][]string) (*table, error) {
	if len(rows) == 0 {
		return nil, newMappingError(name, ErrNoColumns)
	}

	headerRow := rows[0]
	if len(headerRow) == 0 {
		return nil, newMappingError(name, ErrNoColumns)
	}

	header, headerIsData := buildHeader(headerRow)

	dataRows := rows[1:]
	if headerIsData {
		dataRows = rows
	}

	records := make([]Record, 0, len(dataRows))
	for _, row := range dataRows {
		records = append(records, padRecord(row, len(header)))
	}

	return newTable(name, header, records), nil
}

// buildHeader derives column names from the first sheet row. It returns
// the header and whether the first row should be kept as data because it
// held no usable names at all.
func buildHeader(headerRow []string) (header, bool) {
	allBlank := true
	for _, cell := range headerRow {
		if strings.TrimSpace(cell) != "" {
			allBlank = false
			break
		}
	}

	names := make([]string, len(headerRow))
	for i, cell := range headerRow {
		cell = strings.TrimSpace(cell)
		if cell == "" {
			cell = fmt.Sprintf("col_%d", i+1)
		}
		names[i] = cell
	}

	return newHeader(dedupeColumnNames(names)), allBlank
}

// padRecord fits one raw row to the column count.
func padRecord(row []string, columnCount int) Record {
	record := make(Record, columnCount)
	for i := range columnCount {
		if i < len(row) {
			record[i] = row[i]
		} else {
			record[i] = ""
		}
	}
	return record
}
