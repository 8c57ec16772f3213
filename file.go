package exceldb

import (
	"bytes"
	"compress/bzip2"
	"compress/gzip"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/zstd"
	"github.com/ulikunitz/xz"
	"github.com/xuri/excelize/v2"
)

// FileType represents supported workbook types including compression variants
type FileType int

const (
	// FileTypeXLSX represents Excel XLSX file type
	FileTypeXLSX FileType = iota
	// FileTypeXLS represents legacy Excel XLS file type
	FileTypeXLS
	// FileTypeXLSXGZ represents gzip-compressed XLSX file type
	FileTypeXLSXGZ
	// FileTypeXLSXBZ2 represents bzip2-compressed XLSX file type
	FileTypeXLSXBZ2
	// FileTypeXLSXXZ represents xz-compressed XLSX file type
	FileTypeXLSXXZ
	// FileTypeXLSXZSTD represents zstd-compressed XLSX file type
	FileTypeXLSXZSTD
	// FileTypeUnsupported represents unsupported file type
	FileTypeUnsupported
)

// File extensions
const (
	// extXLSX is the Excel XLSX file extension
	extXLSX = ".xlsx"
	// extXLS is the legacy Excel XLS file extension
	extXLS = ".xls"
	// extGZ is the gzip compression extension
	extGZ = ".gz"
	// extBZ2 is the bzip2 compression extension
	extBZ2 = ".bz2"
	// extXZ is the xz compression extension
	extXZ = ".xz"
	// extZSTD is the zstd compression extension
	extZSTD = ".zst"
	// extDB is the output SQLite database extension
	extDB = ".db"
)

// file represents a workbook file that can be converted to a database
type file struct {
	path     string
	fileType FileType
}

// newFile creates a new file
func newFile(path string) *file {
	return &file{
		path:     path,
		fileType: detectFileType(path),
	}
}

// detectFileType detects file type from extension, considering compressed files
func detectFileType(path string) FileType {
	basePath := path
	compression := ""

	for _, ext := range []string{extGZ, extBZ2, extXZ, extZSTD} {
		if strings.HasSuffix(path, ext) {
			basePath = strings.TrimSuffix(path, ext)
			compression = ext
			break
		}
	}

	switch strings.ToLower(filepath.Ext(basePath)) {
	case extXLSX:
		switch compression {
		case extGZ:
			return FileTypeXLSXGZ
		case extBZ2:
			return FileTypeXLSXBZ2
		case extXZ:
			return FileTypeXLSXXZ
		case extZSTD:
			return FileTypeXLSXZSTD
		default:
			return FileTypeXLSX
		}
	case extXLS:
		// Legacy workbooks are only accepted uncompressed.
		if compression == "" {
			return FileTypeXLS
		}
		return FileTypeUnsupported
	default:
		return FileTypeUnsupported
	}
}

// isSupportedFile checks if the file has a supported extension
func isSupportedFile(fileName string) bool {
	return detectFileType(strings.ToLower(fileName)) != FileTypeUnsupported
}

// getPath returns file path
func (f *file) getPath() string {
	return f.path
}

// getFileType returns file type
func (f *file) getFileType() FileType {
	return f.fileType
}

// isCompressed returns true if file is compressed
func (f *file) isCompressed() bool {
	return f.isGZ() || f.isBZ2() || f.isXZ() || f.isZSTD()
}

// isGZ returns true if file is gzip compressed
func (f *file) isGZ() bool {
	return strings.HasSuffix(f.path, extGZ)
}

// isBZ2 returns true if file is bzip2 compressed
func (f *file) isBZ2() bool {
	return strings.HasSuffix(f.path, extBZ2)
}

// isXZ returns true if file is xz compressed
func (f *file) isXZ() bool {
	return strings.HasSuffix(f.path, extXZ)
}

// isZSTD returns true if file is zstd compressed
func (f *file) isZSTD() bool {
	return strings.HasSuffix(f.path, extZSTD)
}

// baseName returns the file name with compression and workbook extensions
// stripped. It names the output database and its report.
func (f *file) baseName() string {
	fileName := filepath.Base(f.path)
	for _, ext := range []string{extGZ, extBZ2, extXZ, extZSTD} {
		if strings.HasSuffix(fileName, ext) {
			fileName = strings.TrimSuffix(fileName, ext)
			break
		}
	}
	return strings.TrimSuffix(fileName, filepath.Ext(fileName))
}

// openReader opens the file and returns a reader that handles compression
func (f *file) openReader() (io.Reader, func() error, error) {
	file, err := os.Open(f.path)
	if err != nil {
		return nil, nil, err
	}

	var reader io.Reader = file
	closer := file.Close

	if f.isGZ() {
		gzReader, err := gzip.NewReader(file)
		if err != nil {
			_ = file.Close() // Ignore close error during error handling
			return nil, nil, err
		}
		reader = gzReader
		closer = func() error {
			_ = gzReader.Close() // Ignore close error in cleanup
			return file.Close()
		}
	} else if f.isBZ2() {
		reader = bzip2.NewReader(file)
		closer = file.Close
	} else if f.isXZ() {
		xzReader, err := xz.NewReader(file)
		if err != nil {
			_ = file.Close() // Ignore close error during error handling
			return nil, nil, err
		}
		reader = xzReader
		closer = file.Close
	} else if f.isZSTD() {
		decoder, err := zstd.NewReader(file)
		if err != nil {
			_ = file.Close() // Ignore close error during error handling
			return nil, nil, err
		}
		reader = decoder
		closer = func() error {
			decoder.Close()
			return file.Close()
		}
	}

	return reader, closer, nil
}

// openWorkbook opens the file as an Excel workbook, decompressing first
// when needed. The returned close function must be called on all paths.
func (f *file) openWorkbook() (*excelize.File, func() error, error) {
	if !f.isCompressed() {
		// excelize can open uncompressed workbooks directly. Legacy .xls
		// files take this path too and fail with the parser's own error.
		wb, err := excelize.OpenFile(f.path)
		if err != nil {
			return nil, nil, err
		}
		return wb, wb.Close, nil
	}

	// Workbook parsing needs random access, so compressed files are
	// decompressed into memory first. Inputs are bounded local files.
	reader, closer, err := f.openReader()
	if err != nil {
		return nil, nil, err
	}

	data, err := io.ReadAll(reader)
	if closeErr := closer(); err == nil && closeErr != nil {
		err = closeErr
	}
	if err != nil {
		return nil, nil, err
	}

	wb, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, nil, err
	}
	return wb, wb.Close, nil
}
