package dataset

import (
	"time"

	"tabspect/domain/core"
)

// Record represents one parsed CSV line as column-name to value pairs.
// Column order is carried by the owning Dataset's Headers, not the map.
type Record map[string]string

// Get returns the value for a column and whether the column was present
// on the source line. Short rows simply lack their trailing columns.
func (r Record) Get(column string) (string, bool) {
	v, ok := r[column]
	return v, ok
}

// Dataset represents a CSV file loaded wholesale into memory
type Dataset struct {
	ID       core.ID   `json:"id"`
	Path     string    `json:"path"`
	Headers  []string  `json:"headers"` // column order as it appears in the file
	Records  []Record  `json:"records"` // one per data line, file order
	LoadedAt time.Time `json:"loaded_at"`
}

// RowCount returns the number of data records (header excluded)
func (d *Dataset) RowCount() int {
	return len(d.Records)
}

// Column returns all values for one column in row order.
// Rows missing the column contribute an empty string.
func (d *Dataset) Column(name string) []string {
	values := make([]string, 0, len(d.Records))
	for _, rec := range d.Records {
		values = append(values, rec[name])
	}
	return values
}

// Sample returns the first n records, or all of them when fewer exist
func (d *Dataset) Sample(n int) []Record {
	if n > len(d.Records) {
		n = len(d.Records)
	}
	if n < 0 {
		n = 0
	}
	return d.Records[:n]
}
