// Package exceldb converts Excel workbooks into SQLite database files.
//
// Each workbook in an input directory becomes one SQLite database in an
// output directory, with one table per sheet. Column types are inferred
// from the sheet data (INTEGER, REAL, datetime stored as ISO-8601 TEXT, or
// TEXT), and cell values are normalized to match the inferred types.
//
// # Basic Usage
//
// Convert a whole directory of workbooks:
//
//	summary, err := exceldb.ConvertDir(ctx, "input", "output")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(summary)
//
// A single file's failure never aborts the batch; it is recorded in the
// returned Summary. Convert a single workbook with ConvertFile:
//
//	result, err := exceldb.ConvertFile(ctx, "input/sales.xlsx", "output")
//
// # Options
//
// Conversion behavior is adjusted with ConvertOptions:
//
//	opts := exceldb.NewConvertOptions().
//	    WithReports(false).
//	    WithSampleRows(5)
//	summary, err := exceldb.ConvertDir(ctx, "input", "output", opts)
//
// Compressed workbooks (.xlsx.gz, .xlsx.bz2, .xlsx.xz, .xlsx.zst) are
// decompressed transparently before parsing.
package exceldb
