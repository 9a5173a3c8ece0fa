// Package main provides the entry point for the companyreader CLI.
//
// companyreader reads the TechCrunch homepage, follows its article links,
// and exports the companies mentioned in each article's company sidebar.
//
// Usage:
//
//	companyreader companies.csv
//	companyreader --json companies.json
//
// See --help for all available options.
package main

func main() {
	Execute()
}
