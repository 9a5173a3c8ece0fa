package report

import (
	"encoding/json"
	"io"
	"time"

	"github.com/clearmob/companyreader/internal/model"
)

// JSONWriter outputs the records of a run in JSON format, together with
// the crawl statistics.
type JSONWriter struct {
	baseWriter

	// indent enables pretty-printed JSON output.
	indent bool

	// indentPrefix is the prefix for each line in indented output.
	indentPrefix string

	// indentString is the indentation string (typically "  " or "\t").
	indentString string
}

// JSONWriterOption configures a JSONWriter.
type JSONWriterOption func(*JSONWriter)

// WithIndent enables pretty-printed JSON output.
// The prefix is prepended to each line, and indent is used for each level.
func WithIndent(prefix, indent string) JSONWriterOption {
	return func(w *JSONWriter) {
		w.indent = true
		w.indentPrefix = prefix
		w.indentString = indent
	}
}

// WithPrettyPrint enables pretty-printed JSON with default indentation.
func WithPrettyPrint() JSONWriterOption {
	return WithIndent("", "  ")
}

// NewJSONWriter creates a JSONWriter that outputs to the given writer.
func NewJSONWriter(output io.Writer, opts ...JSONWriterOption) *JSONWriter {
	w := &JSONWriter{baseWriter: newBaseWriter(output)}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// JSONReport is the document written by JSONWriter.
type JSONReport struct {
	// EntryURL is the homepage the crawl started from.
	EntryURL string `json:"entry_url"`

	// StartedAt is when the crawl started.
	StartedAt time.Time `json:"started_at"`

	// Stats are the crawl counters.
	Stats model.Stats `json:"stats"`

	// Records are the exported company records.
	Records []model.CompanyRecord `json:"records"`
}

// NewJSONReport creates the JSON document for run.
func NewJSONReport(run *model.Run) *JSONReport {
	records := run.Records
	if records == nil {
		records = []model.CompanyRecord{}
	}
	return &JSONReport{
		EntryURL:  run.EntryURL,
		StartedAt: run.StartedAt,
		Stats:     run.Stats,
		Records:   records,
	}
}

// Write outputs the run in JSON format.
func (w *JSONWriter) Write(run *model.Run) (int, error) {
	var data []byte
	var err error

	report := NewJSONReport(run)
	if w.indent {
		data, err = json.MarshalIndent(report, w.indentPrefix, w.indentString)
	} else {
		data, err = json.Marshal(report)
	}
	if err != nil {
		return 0, err
	}

	// Add trailing newline for better terminal output
	data = append(data, '\n')

	return w.output.Write(data)
}
