package exceldb

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"strings"
	"time"
)

const (
	// reportSuffix replaces the database extension in report file names
	reportSuffix = "_report.txt"
	// reportSeparatorWidth is the width of the report separator lines
	reportSeparatorWidth = 72
)

// tableReport holds the per-table facts the report prints.
type tableReport struct {
	name     string
	rowCount int64
	columns  []reportColumn
	samples  [][]string
}

// reportColumn is one column as declared in the database.
type reportColumn struct {
	name     string
	declType string
}

// writeReport inspects a converted database and writes a text report next
// to it: table and row counts, column declarations, and up to sampleRows
// example rows per table. It returns the report path.
func writeReport(ctx context.Context, dbPath string, sampleRows int) (string, error) {
	db, err := sql.Open(driverName, dbPath)
	if err != nil {
		return "", &ReportError{DBPath: dbPath, Err: err}
	}
	defer func() {
		_ = db.Close() // Ignore close error
	}()

	tables, err := inspectDatabase(ctx, db, sampleRows)
	if err != nil {
		return "", &ReportError{DBPath: dbPath, Err: err}
	}

	content := renderReport(dbPath, tables)

	reportPath := strings.TrimSuffix(dbPath, extDB) + reportSuffix
	if err := os.WriteFile(reportPath, []byte(content), 0o644); err != nil {
		return "", &ReportError{DBPath: dbPath, Err: err}
	}
	return reportPath, nil
}

// inspectDatabase reads table structure, row counts and sample rows.
func inspectDatabase(ctx context.Context, db *sql.DB, sampleRows int) ([]tableReport, error) {
	names, err := listTables(ctx, db)
	if err != nil {
		return nil, err
	}

	reports := make([]tableReport, 0, len(names))
	for _, name := range names {
		report := tableReport{name: name}

		report.columns, err = tableColumns(ctx, db, name)
		if err != nil {
			return nil, err
		}

		countQuery := fmt.Sprintf(`SELECT COUNT(*) FROM %s`, quoteIdent(name))
		if err := db.QueryRowContext(ctx, countQuery).Scan(&report.rowCount); err != nil {
			return nil, fmt.Errorf("failed to count rows of %s: %w", name, err)
		}

		if sampleRows > 0 && report.rowCount > 0 {
			report.samples, err = tableSamples(ctx, db, name, sampleRows)
			if err != nil {
				return nil, err
			}
		}

		reports = append(reports, report)
	}
	return reports, nil
}

// listTables returns the user table names in creation order.
func listTables(ctx context.Context, db *sql.DB) ([]string, error) {
	rows, err := db.QueryContext(ctx,
		`SELECT name FROM sqlite_master WHERE type = 'table' AND name NOT LIKE 'sqlite_%' ORDER BY rowid`,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list tables: %w", err)
	}
	defer func() {
		_ = rows.Close() // Ignore close error
	}()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		names = append(names, name)
	}
	return names, rows.Err()
}

// tableColumns reads the declared columns of one table.
func tableColumns(ctx context.Context, db *sql.DB, tableName string) ([]reportColumn, error) {
	query := fmt.Sprintf(`PRAGMA table_info(%s)`, quoteIdent(tableName))
	rows, err := db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to read columns of %s: %w", tableName, err)
	}
	defer func() {
		_ = rows.Close() // Ignore close error
	}()

	var columns []reportColumn
	for rows.Next() {
		var (
			cid      int
			name     string
			declType string
			notNull  int
			dflt     sql.NullString
			pk       int
		)
		if err := rows.Scan(&cid, &name, &declType, &notNull, &dflt, &pk); err != nil {
			return nil, err
		}
		columns = append(columns, reportColumn{name: name, declType: declType})
	}
	return columns, rows.Err()
}

// tableSamples reads up to limit rows and renders every value as text.
func tableSamples(ctx context.Context, db *sql.DB, tableName string, limit int) ([][]string, error) {
	query := fmt.Sprintf(`SELECT * FROM %s LIMIT %d`, quoteIdent(tableName), limit)
	rows, err := db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to read sample rows of %s: %w", tableName, err)
	}
	defer func() {
		_ = rows.Close() // Ignore close error
	}()

	columnNames, err := rows.Columns()
	if err != nil {
		return nil, err
	}

	var samples [][]string
	for rows.Next() {
		values := make([]any, len(columnNames))
		pointers := make([]any, len(columnNames))
		for i := range values {
			pointers[i] = &values[i]
		}
		if err := rows.Scan(pointers...); err != nil {
			return nil, err
		}

		sample := make([]string, len(values))
		for i, value := range values {
			sample[i] = renderValue(value)
		}
		samples = append(samples, sample)
	}
	return samples, rows.Err()
}

// renderValue formats one scanned value for the report.
func renderValue(value any) string {
	switch v := value.(type) {
	case nil:
		return "NULL"
	case []byte:
		return string(v)
	default:
		return fmt.Sprintf("%v", v)
	}
}

// renderReport builds the report text.
func renderReport(dbPath string, tables []tableReport) string {
	separator := strings.Repeat("=", reportSeparatorWidth)

	var b strings.Builder
	b.WriteString(separator + "\n")
	b.WriteString("SQLite database report\n")
	b.WriteString(separator + "\n")
	fmt.Fprintf(&b, "Generated: %s\n", time.Now().Format("2006-01-02 15:04:05"))
	fmt.Fprintf(&b, "Database:  %s\n", dbPath)
	if info, err := os.Stat(dbPath); err == nil {
		fmt.Fprintf(&b, "File size: %d bytes\n", info.Size())
	}
	fmt.Fprintf(&b, "Tables:    %d\n\n", len(tables))

	var totalRows int64
	for _, table := range tables {
		totalRows += table.rowCount

		fmt.Fprintf(&b, "Table: %s\n", table.name)
		b.WriteString(strings.Repeat("-", reportSeparatorWidth/2) + "\n")
		fmt.Fprintf(&b, "Rows:    %d\n", table.rowCount)
		fmt.Fprintf(&b, "Columns: %d\n", len(table.columns))
		for i, col := range table.columns {
			fmt.Fprintf(&b, "  %d. %-30s (%s)\n", i+1, col.name, col.declType)
		}

		if len(table.samples) > 0 {
			fmt.Fprintf(&b, "Sample data (first %d row(s)):\n", len(table.samples))
			for i, sample := range table.samples {
				fmt.Fprintf(&b, "  row %d:\n", i+1)
				for j, col := range table.columns {
					if j < len(sample) {
						fmt.Fprintf(&b, "    %s: %s\n", col.name, sample[j])
					}
				}
			}
		}
		b.WriteString("\n")
	}

	b.WriteString(separator + "\n")
	fmt.Fprintf(&b, "Total rows: %d\n", totalRows)
	b.WriteString(separator + "\n")

	return b.String()
}
