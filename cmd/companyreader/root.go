package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command for companyreader.
// Running it with a file name performs a crawl.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "companyreader <filename>",
		Short: "Export the companies mentioned in TechCrunch articles",
		Long: `companyreader reads the TechCrunch homepage, visits every linked article,
and writes one row per company found in the article's company sidebar.

Articles without a company sidebar still get a row, with company_name and
company_url set to "n/a". The export is a CSV file with the columns
url, title, company_name and company_url, sorted by url.

Examples:
  # Export to CSV
  companyreader companies.csv

  # Export as JSON or Markdown instead
  companyreader --json companies.json
  companyreader --markdown companies.md

  # Use a specific configuration file
  companyreader -c crawl.yaml companies.csv`,
		Version:       getVersion(),
		Args:          cobra.ExactArgs(1),
		RunE:          runRootCmd,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags that apply to all commands
	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")

	cmd.Flags().StringP("config", "c", "",
		"Configuration file path (default: .companyreader in current directory, XDG config dir, or home directory)")
	cmd.Flags().BoolP("json", "j", false, "Write the export as JSON")
	cmd.Flags().BoolP("markdown", "m", false, "Write the export as a Markdown table")
	cmd.MarkFlagsMutuallyExclusive("json", "markdown")

	cmd.AddCommand(NewInitCmd())
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
