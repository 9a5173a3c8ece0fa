// Package report writes the result of a crawl to an export file.
//
// This package contains writers for the supported formats:
//   - CSVWriter: one row per company record, the default export
//   - JSONWriter: the records with the crawl statistics, for tool integration
//   - MarkdownWriter: a summary and a table of records for sharing
//
// Writers do not sort; records are written in the order the run holds
// them.
package report
