package exceldb

// table represents one sheet's contents as a database table structure.
type table struct {
	// name is the raw sheet name; sanitization and collision handling
	// happen when the table is written to a database.
	name string
	// header is the table header.
	header header
	// columns contains inferred type information for each column.
	columns []columnInfo
	// rows holds the normalized values, one slice per record with exactly
	// one value per column.
	rows [][]any
}

// newTable creates a table from a header and raw records. Column types are
// inferred from the records, then every cell is normalized to its column
// type.
func newTable(name string, header header, records []Record) *table {
	columns := inferColumns(header, records)

	rows := make([][]any, len(records))
	for i, record := range records {
		rows[i] = normalizeRecord(record, columns)
	}

	return &table{
		name:    name,
		header:  header,
		columns: columns,
		rows:    rows,
	}
}

// getName return table name.
func (t *table) getName() string {
	return t.name
}

// getHeader return table header.
func (t *table) getHeader() header {
	return t.header
}

// getColumns returns the inferred column information.
func (t *table) getColumns() []columnInfo {
	return t.columns
}

// getRows returns the normalized rows.
func (t *table) getRows() [][]any {
	return t.rows
}
