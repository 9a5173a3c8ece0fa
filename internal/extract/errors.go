package extract

import "errors"

var (
	// ErrTitleNotFound indicates that the page has no article title.
	ErrTitleNotFound = errors.New("article title not found")

	// ErrCompanyName indicates that a company card has no readable name.
	ErrCompanyName = errors.New("company name not found")

	// ErrCompanyURL indicates that a company card has no website entry.
	ErrCompanyURL = errors.New("company url not found")
)
