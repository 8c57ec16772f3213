package exceldb

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"
	_ "modernc.org/sqlite" // registers the "sqlite" driver
)

// driverName is the database/sql driver name for the embedded database
const driverName = "sqlite"

// TableResult describes one table written to an output database.
type TableResult struct {
	// Name is the final table name after sanitization and collision
	// suffixing.
	Name string
	// SheetName is the originating sheet.
	SheetName string
	// Columns is the number of columns.
	Columns int
	// Rows is the number of data rows inserted.
	Rows int
}

// FileResult describes one successfully converted workbook.
type FileResult struct {
	// SourcePath is the input workbook path.
	SourcePath string
	// DBPath is the written database file.
	DBPath string
	// Tables lists the tables written, in sheet order.
	Tables []TableResult
	// SkippedSheets lists sheets that held no rows at all.
	SkippedSheets []string
	// ReportPath is the written report file, empty when reports are
	// disabled or report generation failed.
	ReportPath string
	// Warnings holds non-fatal problems such as report failures.
	Warnings []string
}

// ConvertFile converts one workbook into a SQLite database file in
// outputDir. The database is named after the workbook base name with a
// ".db" extension and holds one table per non-empty sheet; table names are
// sanitized sheet names, made unique with numeric suffixes on collision.
// An existing database is overwritten unless disabled via options.
//
// A partial database is removed when conversion fails, and a file's
// failure is self-contained: the returned error wraps the cause and the
// caller decides whether to continue with other files.
func ConvertFile(ctx context.Context, path, outputDir string, opts ...ConvertOptions) (*FileResult, error) {
	options := resolveOptions(opts)

	f := newFile(path)
	if f.getFileType() == FileTypeUnsupported {
		return nil, newConversionError(path, ErrUnsupportedFile)
	}

	wb, closeWB, err := f.openWorkbook()
	if err != nil {
		return nil, newConversionError(path, err)
	}
	defer func() {
		_ = closeWB() // Ignore close error
	}()

	sheetNames := wb.GetSheetList()
	if len(sheetNames) == 0 {
		return nil, newConversionError(path, ErrNoSheets)
	}

	dbPath := filepath.Join(outputDir, f.baseName()+extDB)
	if err := prepareOutputFile(dbPath, options.Overwrite()); err != nil {
		return nil, newConversionError(path, err)
	}

	result := &FileResult{
		SourcePath: path,
		DBPath:     dbPath,
	}

	if err := writeDatabase(ctx, wb, sheetNames, dbPath, result); err != nil {
		// Do not leave a half-written database behind.
		_ = os.Remove(dbPath)
		return nil, newConversionError(path, err)
	}

	if options.Reports() {
		reportPath, err := writeReport(ctx, dbPath, options.SampleRows())
		if err != nil {
			result.Warnings = append(result.Warnings, err.Error())
		} else {
			result.ReportPath = reportPath
		}
	}

	return result, nil
}

// prepareOutputFile clears the way for a new database file.
func prepareOutputFile(dbPath string, overwrite bool) error {
	if _, err := os.Stat(dbPath); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	if !overwrite {
		return fmt.Errorf("%w: %s", ErrOutputExists, dbPath)
	}
	return os.Remove(dbPath)
}

// writeDatabase maps every sheet to a table and writes all tables to a
// fresh database file inside one transaction.
func writeDatabase(ctx context.Context, wb *excelize.File, sheetNames []string, dbPath string, result *FileResult) error {
	db, err := sql.Open(driverName, dbPath)
	if err != nil {
		return newDatabaseError(dbPath, err)
	}
	defer func() {
		_ = db.Close() // Ignore close error
	}()

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return newDatabaseError(dbPath, err)
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback() // Ignore rollback error during error handling
		}
	}()

	names := newNameRegistry()
	for _, sheetName := range sheetNames {
		rows, err := wb.GetRows(sheetName)
		if err != nil {
			return fmt.Errorf("failed to read sheet %s: %w", sheetName, err)
		}

		// A sheet without any rows has nothing to map.
		if len(rows) == 0 {
			result.SkippedSheets = append(result.SkippedSheets, sheetName)
			continue
		}

		tbl, err := mapSheet(sheetName, rows)
		if err != nil {
			return err
		}

		tableName := names.claim(NewTableName(sheetName).Sanitize().String())
		if err := writeTable(ctx, tx, tableName, tbl); err != nil {
			return newDatabaseError(dbPath, err)
		}

		result.Tables = append(result.Tables, TableResult{
			Name:      tableName,
			SheetName: sheetName,
			Columns:   len(tbl.getColumns()),
			Rows:      len(tbl.getRows()),
		})
	}

	if err := tx.Commit(); err != nil {
		return newDatabaseError(dbPath, err)
	}
	committed = true
	return nil
}

// quoteIdent quotes an identifier for SQLite DDL. Column names come from
// arbitrary header cells, so embedded quotes must be doubled.
func quoteIdent(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}

// writeTable creates one table from inferred columns and inserts all
// normalized rows with a prepared statement.
func writeTable(ctx context.Context, tx *sql.Tx, tableName string, tbl *table) error {
	columns := tbl.getColumns()
	defs := make([]string, 0, len(columns))
	for _, col := range columns {
		defs = append(defs, fmt.Sprintf(`%s %s`, quoteIdent(col.Name), col.Type.String()))
	}

	query := fmt.Sprintf(
		`CREATE TABLE %s (%s)`,
		quoteIdent(tableName),
		strings.Join(defs, ", "),
	)
	if _, err := tx.ExecContext(ctx, query); err != nil {
		return fmt.Errorf("failed to create table %s: %w", tableName, err)
	}

	rows := tbl.getRows()
	if len(rows) == 0 {
		return nil
	}

	placeholders := make([]string, len(columns))
	for i := range placeholders {
		placeholders[i] = "?"
	}
	insertQuery := fmt.Sprintf(
		`INSERT INTO %s VALUES (%s)`,
		quoteIdent(tableName),
		strings.Join(placeholders, ", "),
	)

	stmt, err := tx.PrepareContext(ctx, insertQuery)
	if err != nil {
		return fmt.Errorf("failed to prepare insert statement: %w", err)
	}
	defer func() {
		_ = stmt.Close() // Ignore close error
	}()

	for _, row := range rows {
		if _, err := stmt.ExecContext(ctx, row...); err != nil {
			return fmt.Errorf("failed to insert record into %s: %w", tableName, err)
		}
	}
	return nil
}
