package csvfile

import (
	"bytes"
	"encoding/csv"
	"io"
	"log"
	"os"
	"strings"
	"time"
	"unicode/utf8"

	"tabspect/domain/core"
	"tabspect/domain/dataset"
	"tabspect/internal/errors"
)

// Reader loads delimited text files into in-memory datasets
type Reader struct {
	filePath string
	comma    rune
}

// NewReader creates a reader for a comma-delimited file
func NewReader(filePath string) *Reader {
	return &Reader{filePath: filePath, comma: ','}
}

// NewReaderWithDelimiter creates a reader with a custom field delimiter
func NewReaderWithDelimiter(filePath string, comma rune) *Reader {
	return &Reader{filePath: filePath, comma: comma}
}

// Load reads the whole file into a Dataset. The first line supplies the
// column headers, every following line becomes one Record keyed by them.
func (r *Reader) Load() (*dataset.Dataset, error) {
	if _, err := os.Stat(r.filePath); os.IsNotExist(err) {
		return nil, errors.FileNotFound(r.filePath)
	}

	file, err := os.Open(r.filePath)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open CSV file %s", r.filePath)
	}
	defer file.Close()

	readStart := time.Now()
	raw, err := io.ReadAll(file)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read CSV file %s", r.filePath)
	}

	if !utf8.Valid(raw) {
		return nil, errors.DecodeError("CSV file is not valid UTF-8", nil)
	}

	parser := csv.NewReader(bytes.NewReader(raw))
	parser.Comma = r.comma
	parser.FieldsPerRecord = -1 // ragged rows are handled per-cell below

	rows, err := parser.ReadAll()
	if err != nil {
		return nil, errors.FormatError("failed to parse CSV file", err)
	}
	log.Printf("[CSVReader] %s read in %.2fms (%d lines)",
		r.filePath, float64(time.Since(readStart).Nanoseconds())/1e6, len(rows))

	if len(rows) == 0 {
		return nil, errors.FormatError("CSV file has no header row", nil)
	}

	headers := make([]string, len(rows[0]))
	for i, header := range rows[0] {
		headers[i] = strings.TrimSpace(header)
	}

	records := make([]dataset.Record, 0, len(rows)-1)
	for i := 1; i < len(rows); i++ {
		rec := make(dataset.Record)
		for j, cell := range rows[i] {
			// cells past the header count have no column name and are dropped
			if j < len(headers) {
				rec[headers[j]] = strings.TrimSpace(cell)
			}
		}
		records = append(records, rec)
	}

	log.Printf("[CSVReader] %s processed (%d columns, %d rows)",
		r.filePath, len(headers), len(records))

	return &dataset.Dataset{
		ID:       core.NewID(),
		Path:     r.filePath,
		Headers:  headers,
		Records:  records,
		LoadedAt: time.Now(),
	}, nil
}
