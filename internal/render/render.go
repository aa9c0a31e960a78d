// Package render formats loaded tabular data for terminal inspection.
package render

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"tabspect/adapters/excel"
	"tabspect/domain/dataset"
	"tabspect/internal/profile"
)

// DefaultSampleRows is how many rows a sample shows unless overridden
const DefaultSampleRows = 5

// RecordLine serializes one record as a JSON-style line with keys in
// column order. Columns absent from the source line are omitted.
func RecordLine(headers []string, rec dataset.Record) string {
	var b strings.Builder
	b.WriteString("{")
	first := true
	for _, h := range headers {
		v, ok := rec.Get(h)
		if !ok {
			continue
		}
		if !first {
			b.WriteString(", ")
		}
		b.WriteString(strconv.Quote(h))
		b.WriteString(": ")
		b.WriteString(strconv.Quote(v))
		first = false
	}
	b.WriteString("}")
	return b.String()
}

// CSVSample prints the first min(n, total) records, one JSON-style line each
func CSVSample(w io.Writer, ds *dataset.Dataset, n int) {
	fmt.Fprintf(w, "CSV Sample (First %d rows):\n", n)
	for i, rec := range ds.Sample(n) {
		fmt.Fprintf(w, "Row %d: %s\n", i+1, RecordLine(ds.Headers, rec))
	}
}

// TableSample prints the first min(n, total) sheet rows as an aligned
// table with a row-index gutter
func TableSample(w io.Writer, t *excel.Table, n int) {
	fmt.Fprintf(w, "Excel Sample (First %d rows):\n", n)

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "\t%s\n", strings.Join(t.Headers, "\t"))
	for i, row := range t.Sample(n) {
		texts := make([]string, len(row))
		for j, cell := range row {
			texts[j] = cell.Text
		}
		fmt.Fprintf(tw, "%d\t%s\n", i, strings.Join(texts, "\t"))
	}
	tw.Flush()
}

// Columns prints a labelled column-name listing
func Columns(w io.Writer, label string, headers []string) {
	fmt.Fprintf(w, "%s Columns: %s\n", label, List(headers))
}

// Summaries prints numeric column summaries as an aligned table
func Summaries(w io.Writer, label string, summaries []profile.ColumnSummary) {
	if len(summaries) == 0 {
		fmt.Fprintf(w, "%s Numeric Columns: none\n", label)
		return
	}
	fmt.Fprintf(w, "%s Numeric Columns:\n", label)

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "column\tcount\tmissing\tmean\tmedian\tmin\tmax\tstddev\tskew\tnormal")
	for _, s := range summaries {
		fmt.Fprintf(tw, "%s\t%d\t%d\t%.4g\t%.4g\t%.4g\t%.4g\t%.4g\t%.3f\t%t\n",
			s.Column, s.Count, s.Missing, s.Mean, s.Median, s.Min, s.Max, s.StdDev, s.Skewness, s.IsNormal)
	}
	tw.Flush()
}

// List formats names as a bracketed, quoted list
func List(names []string) string {
	quoted := make([]string, len(names))
	for i, name := range names {
		quoted[i] = strconv.Quote(name)
	}
	return "[" + strings.Join(quoted, ", ") + "]"
}
