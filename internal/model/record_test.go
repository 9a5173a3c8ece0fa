package model

import (
	"slices"
	"testing"
)

func TestNewCompanyRecord(t *testing.T) {
	t.Parallel()

	t.Run("keeps extracted fields", func(t *testing.T) {
		t.Parallel()

		r := NewCompanyRecord("https://a", "title", "spacex", "https://www.spacex.com")
		if r.CompanyName != "spacex" || r.CompanyURL != "https://www.spacex.com" {
			t.Errorf("unexpected record: %+v", r)
		}
		if !r.HasCompany() {
			t.Error("expected HasCompany to be true")
		}
	})

	t.Run("empty fields are kept", func(t *testing.T) {
		t.Parallel()

		r := NewCompanyRecord("https://a", "title", "", "")
		if r.CompanyName != "" || r.CompanyURL != "" {
			t.Errorf("expected empty fields, got %+v", r)
		}
	})

	t.Run("unknown record", func(t *testing.T) {
		t.Parallel()

		r := NewUnknownCompanyRecord("https://a", "title")
		if r.URL != "https://a" || r.Title != "title" {
			t.Errorf("expected url and title to be populated, got %+v", r)
		}
		if r.HasCompany() {
			t.Error("expected HasCompany to be false")
		}
	})
}

func TestCompanyRecordRow(t *testing.T) {
	t.Parallel()

	r := NewCompanyRecord("u", "t", "n", "c")
	want := []string{"u", "t", "n", "c"}
	if got := r.Row(); !slices.Equal(got, want) {
		t.Errorf("Row() = %v, want %v", got, want)
	}
	if got := Columns(); !slices.Equal(got, []string{"url", "title", "company_name", "company_url"}) {
		t.Errorf("Columns() = %v", got)
	}
}

func TestSortByURL(t *testing.T) {
	t.Parallel()

	records := []CompanyRecord{
		NewCompanyRecord("https://c", "c", "first", ""),
		NewCompanyRecord("https://a", "a", "", ""),
		NewCompanyRecord("https://c", "c", "second", ""),
		NewCompanyRecord("https://b", "b", "", ""),
	}

	SortByURL(records)

	gotURLs := make([]string, 0, len(records))
	for _, r := range records {
		gotURLs = append(gotURLs, r.URL)
	}
	want := []string{"https://a", "https://b", "https://c", "https://c"}
	if !slices.Equal(gotURLs, want) {
		t.Errorf("sorted urls = %v, want %v", gotURLs, want)
	}

	// Stable: cards from the same page keep their order.
	if records[2].CompanyName != "first" || records[3].CompanyName != "second" {
		t.Errorf("expected stable order, got %q then %q", records[2].CompanyName, records[3].CompanyName)
	}
}

func TestStatsPagesCompleted(t *testing.T) {
	t.Parallel()

	s := Stats{PagesFetched: 3, PagesFailed: 2, PagesSkipped: 1}
	if got := s.PagesCompleted(); got != 5 {
		t.Errorf("PagesCompleted() = %d, want 5", got)
	}
}
