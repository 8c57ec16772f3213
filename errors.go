package exceldb

import (
	"errors"
	"fmt"
)

var (
	// ErrInputDirNotFound indicates the input directory does not exist
	ErrInputDirNotFound = errors.New("exceldb: input directory does not exist")

	// ErrUnsupportedFile indicates a file with an unsupported extension
	ErrUnsupportedFile = errors.New("exceldb: unsupported file type")

	// ErrNoSheets indicates a workbook without any sheets
	ErrNoSheets = errors.New("exceldb: no sheets found in workbook")

	// ErrNoColumns indicates a sheet whose rows have no columns
	ErrNoColumns = errors.New("exceldb: sheet has no columns")

	// ErrOutputExists indicates the output database already exists and
	// overwriting is disabled
	ErrOutputExists = errors.New("exceldb: output database already exists")
)

// ConversionError reports a workbook that could not be converted. It wraps
// the underlying cause (unreadable file, corrupt archive, invalid sheet).
type ConversionError struct {
	Path string
	Err  error
}

func (e *ConversionError) Error() string {
	return fmt.Sprintf("conversion failed for %s: %v", e.Path, e.Err)
}

func (e *ConversionError) Unwrap() error {
	return e.Err
}

func newConversionError(path string, err error) *ConversionError {
	return &ConversionError{Path: path, Err: err}
}

// MappingError reports a sheet that could not be mapped to a table.
type MappingError struct {
	Sheet string
	Err   error
}

func (e *MappingError) Error() string {
	return fmt.Sprintf("cannot map sheet %q: %v", e.Sheet, e.Err)
}

func (e *MappingError) Unwrap() error {
	return e.Err
}

func newMappingError(sheet string, err error) *MappingError {
	return &MappingError{Sheet: sheet, Err: err}
}

// DatabaseError reports a failure writing to or reading from an output
// SQLite database file.
type DatabaseError struct {
	Path string
	Err  error
}

func (e *DatabaseError) Error() string {
	return fmt.Sprintf("database error for %s: %v", e.Path, e.Err)
}

func (e *DatabaseError) Unwrap() error {
	return e.Err
}

func newDatabaseError(path string, err error) *DatabaseError {
	return &DatabaseError{Path: path, Err: err}
}

// ReportError reports a failure generating the text report for a converted
// database. Report failures are warnings, not conversion failures.
type ReportError struct {
	DBPath string
	Err    error
}

func (e *ReportError) Error() string {
	return fmt.Sprintf("report generation failed for %s: %v", e.DBPath, e.Err)
}

func (e *ReportError) Unwrap() error {
	return e.Err
}
