package report

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"

	"github.com/clearmob/companyreader/internal/model"
)

// CSVWriter outputs records as comma-separated values with a header row.
type CSVWriter struct {
	baseWriter
}

// NewCSVWriter creates a CSVWriter that outputs to the given writer.
func NewCSVWriter(output io.Writer) *CSVWriter {
	return &CSVWriter{baseWriter: newBaseWriter(output)}
}

// Write outputs the header followed by one row per record.
func (w *CSVWriter) Write(run *model.Run) (int, error) {
	var buf bytes.Buffer
	cw := csv.NewWriter(&buf)

	if err := cw.Write(model.Columns()); err != nil {
		return 0, fmt.Errorf("failed to write csv header: %w", err)
	}
	for _, r := range run.Records {
		if err := cw.Write(r.Row()); err != nil {
			return 0, fmt.Errorf("failed to write csv row for %s: %w", r.URL, err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return 0, fmt.Errorf("failed to write csv: %w", err)
	}

	return w.output.Write(buf.Bytes())
}
