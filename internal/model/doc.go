// Package model defines the data structures shared by the crawler,
// the page extractor, the pipeline and the report writers.
//
// The main types are:
//   - CompanyRecord: one company mention found on one article page
//   - Run: the state carried through a single pipeline execution
//   - Stats: counters collected while crawling
package model
