package exceldb

import (
	"fmt"
	"strings"
)

// Character validation constants
const (
	// firstDigitChar represents the first numeric character
	firstDigitChar = '0'
	// lastDigitChar represents the last numeric character
	lastDigitChar = '9'
	// firstLowerChar represents the first lowercase letter
	firstLowerChar = 'a'
	// lastLowerChar represents the last lowercase letter
	lastLowerChar = 'z'
	// firstUpperChar represents the first uppercase letter
	firstUpperChar = 'A'
	// lastUpperChar represents the last uppercase letter
	lastUpperChar = 'Z'
	// underscoreChar represents the underscore character
	underscoreChar = '_'
)

// header is a table header.
type header []string

// newHeader create new header.
func newHeader(h []string) header {
	return header(h)
}

// equal compare header.
func (h header) equal(h2 header) bool {
	if len(h) != len(h2) {
		return false
	}
	for i, v := range h {
		if v != h2[i] {
			return false
		}
	}
	return true
}

// Record represents one sheet row as a slice of raw string cells.
type Record []string

// newRecord create new record.
func newRecord(r []string) Record {
	return Record(r)
}

// equal compare record.
func (r Record) equal(r2 Record) bool {
	if len(r) != len(r2) {
		return false
	}
	for i, v := range r {
		if v != r2[i] {
			return false
		}
	}
	return true
}

// columnType represents the SQL column type
type columnType int

const (
	// columnTypeText represents TEXT column type
	columnTypeText columnType = iota
	// columnTypeInteger represents INTEGER column type
	columnTypeInteger
	// columnTypeReal represents REAL column type
	columnTypeReal
	// columnTypeDatetime represents datetime stored as TEXT in ISO8601 format
	columnTypeDatetime
)

const (
	sqlTypeText    = "TEXT"
	sqlTypeInteger = "INTEGER"
	sqlTypeReal    = "REAL"
)

// String returns the SQL column type string
func (ct columnType) String() string {
	switch ct {
	case columnTypeText:
		return sqlTypeText
	case columnTypeInteger:
		return sqlTypeInteger
	case columnTypeReal:
		return sqlTypeReal
	case columnTypeDatetime:
		return sqlTypeText // SQLite stores datetime as TEXT in ISO8601 format
	default:
		return sqlTypeText
	}
}

// columnInfo represents column information with name and inferred type
type columnInfo struct {
	Name string
	Type columnType
}

// TableName represents a table name with validation
type TableName struct {
	value string
}

// NewTableName creates a new TableName with validation
func NewTableName(name string) TableName {
	// Basic validation - table name cannot be empty
	if strings.TrimSpace(name) == "" {
		return TableName{value: "table"}
	}
	return TableName{value: strings.TrimSpace(name)}
}

// String returns the string representation of TableName
func (tn TableName) String() string {
	return tn.value
}

// Equal compares two table names
func (tn TableName) Equal(other TableName) bool {
	return tn.value == other.value
}

// Sanitize returns a sanitized version of the table name
func (tn TableName) Sanitize() TableName {
	return TableName{value: tn.sanitizeString()}
}

// sanitizeString removes invalid characters from table names
func (tn TableName) sanitizeString() string {
	// Replace spaces and invalid characters with underscores
	result := strings.ReplaceAll(tn.value, " ", "_")
	result = strings.ReplaceAll(result, "-", "_")
	result = strings.ReplaceAll(result, ".", "_")

	// Remove any non-alphanumeric characters except underscore
	var sanitized strings.Builder
	for _, r := range result {
		if (r >= firstLowerChar && r <= lastLowerChar) ||
			(r >= firstUpperChar && r <= lastUpperChar) ||
			(r >= firstDigitChar && r <= lastDigitChar) ||
			r == underscoreChar {
			sanitized.WriteRune(r)
		}
	}

	finalResult := sanitized.String()

	// Ensure it doesn't start with a number
	if len(finalResult) > 0 && finalResult[0] >= firstDigitChar && finalResult[0] <= lastDigitChar {
		finalResult = "table_" + finalResult
	}

	// Ensure it's not empty
	if finalResult == "" {
		finalResult = "table"
	}

	return finalResult
}

// nameRegistry resolves table name collisions within one output database.
// The first claim of a name wins it unchanged; later claims of the same
// name get a numeric suffix ("_2", "_3", ...).
type nameRegistry struct {
	taken map[string]int
}

func newNameRegistry() *nameRegistry {
	return &nameRegistry{taken: make(map[string]int)}
}

// claim reserves a unique variant of name and returns it.
func (nr *nameRegistry) claim(name string) string {
	count, exists := nr.taken[name]
	if !exists {
		nr.taken[name] = 1
		return name
	}

	// Probe suffixes until one is free; the suffixed name itself may
	// collide with a claimed sheet name.
	for {
		count++
		candidate := fmt.Sprintf("%s_%d", name, count)
		if _, used := nr.taken[candidate]; !used {
			nr.taken[name] = count
			nr.taken[candidate] = 1
			return candidate
		}
	}
}

// dedupeColumnNames makes column names unique in order, suffixing repeats
// the same way table collisions are resolved.
func dedupeColumnNames(names []string) []string {
	registry := newNameRegistry()
	result := make([]string, len(names))
	for i, name := range names {
		result[i] = registry.claim(name)
	}
	return result
}
