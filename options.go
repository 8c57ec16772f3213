package exceldb

// DefaultSampleRows is the default number of sample rows in a report
const DefaultSampleRows = 3

// ConvertOptions represents options for converting workbooks
type ConvertOptions struct {
	reports    bool
	sampleRows int
	overwrite  bool
}

// NewConvertOptions creates new ConvertOptions with default values
// (reports enabled, 3 sample rows, overwrite existing databases)
func NewConvertOptions() ConvertOptions {
	return ConvertOptions{
		reports:    true,
		sampleRows: DefaultSampleRows,
		overwrite:  true,
	}
}

// WithReports sets whether a text report is written per converted database
func (o ConvertOptions) WithReports(enabled bool) ConvertOptions {
	o.reports = enabled
	return o
}

// WithSampleRows sets how many sample rows each report table section shows
func (o ConvertOptions) WithSampleRows(n int) ConvertOptions {
	if n < 0 {
		n = 0
	}
	o.sampleRows = n
	return o
}

// WithOverwrite sets whether an existing output database is overwritten.
// When disabled, converting a workbook whose database already exists fails.
func (o ConvertOptions) WithOverwrite(enabled bool) ConvertOptions {
	o.overwrite = enabled
	return o
}

// Reports returns whether report generation is enabled
func (o ConvertOptions) Reports() bool {
	return o.reports
}

// SampleRows returns the number of report sample rows
func (o ConvertOptions) SampleRows() int {
	return o.sampleRows
}

// Overwrite returns whether existing databases are overwritten
func (o ConvertOptions) Overwrite() bool {
	return o.overwrite
}

// resolveOptions picks the provided options or the defaults.
func resolveOptions(opts []ConvertOptions) ConvertOptions {
	if len(opts) > 0 {
		return opts[0]
	}
	return NewConvertOptions()
}
