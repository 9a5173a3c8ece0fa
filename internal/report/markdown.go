package report

import (
	"io"
	"strconv"
	"strings"

	"github.com/nao1215/markdown"

	"github.com/clearmob/companyreader/internal/model"
)

// MarkdownWriter outputs the run as a Markdown document: a summary table
// followed by a table of company records.
type MarkdownWriter struct {
	baseWriter
}

// NewMarkdownWriter creates a MarkdownWriter that outputs to the given writer.
func NewMarkdownWriter(output io.Writer) *MarkdownWriter {
	return &MarkdownWriter{baseWriter: newBaseWriter(output)}
}

// Write outputs the run in Markdown format.
func (w *MarkdownWriter) Write(run *model.Run) (int, error) {
	md := markdown.NewMarkdown(w.output)

	w.writeSummary(md, run)
	w.writeRecords(md, run.Records)

	return len(md.String()), md.Build()
}

// writeSummary writes the title and the crawl statistics.
func (w *MarkdownWriter) writeSummary(md *markdown.Markdown, run *model.Run) {
	md.H1("Company Mentions")
	md.PlainText("")

	md.Table(markdown.TableSet{
		Header: []string{"Property", "Value"},
		Rows: [][]string{
			{"Entry URL", "`" + run.EntryURL + "`"},
			{"Crawl Date", run.StartedAt.Format("2006-01-02 15:04:05 MST")},
			{"Pages Fetched", strconv.Itoa(run.Stats.PagesFetched)},
			{"Pages Failed", strconv.Itoa(run.Stats.PagesFailed)},
			{"Pages Skipped", strconv.Itoa(run.Stats.PagesSkipped)},
			{"Records", strconv.Itoa(len(run.Records))},
		},
	})
	md.PlainText("")
}

// writeRecords writes one table row per record.
func (w *MarkdownWriter) writeRecords(md *markdown.Markdown, records []model.CompanyRecord) {
	md.H2("Companies")
	md.PlainText("")

	if len(records) == 0 {
		md.PlainText("No articles found.")
		return
	}

	rows := make([][]string, 0, len(records))
	for _, r := range records {
		row := r.Row()
		for i := range row {
			row[i] = escapeCell(row[i])
		}
		rows = append(rows, row)
	}

	md.Table(markdown.TableSet{
		Header: model.Columns(),
		Rows:   rows,
	})
	md.PlainText("")
}

// escapeCell keeps a value on one line and inside its table cell.
func escapeCell(s string) string {
	s = strings.ReplaceAll(s, "\n", " ")
	return strings.ReplaceAll(s, "|", `\|`)
}
