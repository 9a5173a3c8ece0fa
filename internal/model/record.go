package model

import (
	"cmp"
	"slices"
)

// Unknown is the placeholder stored in a company field that could not be
// extracted from the page.
const Unknown = "n/a"

// Column names of an exported record, in output order.
const (
	ColumnURL         = "url"
	ColumnTitle       = "title"
	ColumnCompanyName = "company_name"
	ColumnCompanyURL  = "company_url"
)

// Columns returns the export header in output order.
func Columns() []string {
	return []string{ColumnURL, ColumnTitle, ColumnCompanyName, ColumnCompanyURL}
}

// CompanyRecord is a company mentioned on an article page.
// Records are values; they are never modified after construction.
type CompanyRecord struct {
	// URL is the address of the article the company was found on.
	URL string `json:"url"`

	// Title is the article headline.
	Title string `json:"title"`

	// CompanyName is the name shown on the company card, or Unknown.
	CompanyName string `json:"company_name"`

	// CompanyURL is the company website listed on the card, or Unknown.
	CompanyURL string `json:"company_url"`
}

// NewCompanyRecord creates a record for a company found on a page.
// Fields are stored as given; an empty name means the card's link had no
// text, which is different from Unknown.
func NewCompanyRecord(url, title, name, companyURL string) CompanyRecord {
	return CompanyRecord{
		URL:         url,
		Title:       title,
		CompanyName: name,
		CompanyURL:  companyURL,
	}
}

// NewUnknownCompanyRecord creates the single record emitted for a page
// that has no usable company cards.
func NewUnknownCompanyRecord(url, title string) CompanyRecord {
	return NewCompanyRecord(url, title, Unknown, Unknown)
}

// Row returns the record's fields in Columns order.
func (r CompanyRecord) Row() []string {
	return []string{r.URL, r.Title, r.CompanyName, r.CompanyURL}
}

// HasCompany reports whether at least one company field was extracted.
func (r CompanyRecord) HasCompany() bool {
	return r.CompanyName != Unknown || r.CompanyURL != Unknown
}

// SortByURL sorts records by URL in ascending lexicographic order.
// The sort is stable, so records of the same page keep their card order.
func SortByURL(records []CompanyRecord) {
	slices.SortStableFunc(records, func(a, b CompanyRecord) int {
		return cmp.Compare(a.URL, b.URL)
	})
}
