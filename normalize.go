package exceldb

import (
	"strconv"
	"strings"
	"time"
)

// normalizeCell converts one raw cell value into a value valid for the
// target column type. Empty cells become nil. A cell that does not parse
// as the column's type degrades to its raw text representation for that
// cell only; the column type is already fixed and is not revisited.
// normalizeCell never fails.
func normalizeCell(value string, ct columnType) any {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return nil
	}

	switch ct {
	case columnTypeInteger:
		if n, err := strconv.ParseInt(trimmed, 10, 64); err == nil {
			return n
		}
		// A numeric that overflows int64 or carries a fraction still
		// stores as a number rather than text.
		if f, err := strconv.ParseFloat(trimmed, 64); err == nil {
			return f
		}
		return value
	case columnTypeReal:
		if f, err := strconv.ParseFloat(trimmed, 64); err == nil {
			return f
		}
		return value
	case columnTypeDatetime:
		if t, render, ok := parseDatetime(trimmed); ok {
			return formatDatetime(t, render)
		}
		return value
	default:
		return value
	}
}

// formatDatetime renders a parsed datetime as an ISO-8601 string, keeping
// the precision of the source value: date-only stays a date, time-only
// stays a time, and zoned timestamps keep their offset.
func formatDatetime(t time.Time, render datetimeRender) string {
	switch render {
	case renderDate:
		return t.Format("2006-01-02")
	case renderTime:
		return t.Format("15:04:05")
	case renderDateTimeZoned:
		return t.Format(time.RFC3339)
	default:
		return t.Format("2006-01-02T15:04:05")
	}
}

// normalizeRecord applies normalizeCell across one padded record. The
// result always has exactly one value per column.
func normalizeRecord(record Record, columns []columnInfo) []any {
	values := make([]any, len(columns))
	for i, col := range columns {
		if i < len(record) {
			values[i] = normalizeCell(record[i], col.Type)
		} else {
			values[i] = nil // Missing cells become NULL
		}
	}
	return values
}
