package report

import (
	"fmt"
	"io"

	"github.com/clearmob/companyreader/internal/model"
)

// Writer defines the interface for export output.
// Implementations write the records of a run in various formats.
type Writer interface {
	// Write outputs the run's records to the configured destination.
	// Returns the number of bytes written and any error encountered.
	Write(run *model.Run) (int, error)
}

// Format is an export file format.
type Format string

// Supported export formats.
const (
	FormatCSV      Format = "csv"
	FormatJSON     Format = "json"
	FormatMarkdown Format = "markdown"
)

// FormatFor returns the format selected by the --json and --markdown flags.
// CSV is used when neither is set.
func FormatFor(jsonReport, markdownReport bool) Format {
	switch {
	case jsonReport:
		return FormatJSON
	case markdownReport:
		return FormatMarkdown
	default:
		return FormatCSV
	}
}

// NewWriter creates the Writer for format that outputs to the given writer.
func NewWriter(output io.Writer, format Format) (Writer, error) {
	switch format {
	case FormatCSV:
		return NewCSVWriter(output), nil
	case FormatJSON:
		return NewJSONWriter(output, WithPrettyPrint()), nil
	case FormatMarkdown:
		return NewMarkdownWriter(output), nil
	default:
		return nil, fmt.Errorf("unsupported report format: %q", format)
	}
}

// baseWriter provides common functionality for report writers.
type baseWriter struct {
	output io.Writer
}

// newBaseWriter creates a baseWriter with the given output destination.
func newBaseWriter(output io.Writer) baseWriter {
	return baseWriter{output: output}
}
