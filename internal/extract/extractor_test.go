package extract

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"testing"

	"github.com/clearmob/companyreader/internal/crawler"
	"github.com/clearmob/companyreader/internal/model"
)

const (
	pageURL   = "https://techcrunch.com/2016/08/05/unpacking-theranoss-magic-zika-detection-box/"
	pageTitle = "Unpacking Theranos's magic Zika detection box"
)

const spacexCard = `
<li class="data-card crunchbase-card active"
    data-crunchbase-url="https://crunchbase.com/organization/space-exploration-technologies/">
  <h4 class="card-title card-acc-handle">
    <a class="cb-card-title-link" href="https://crunchbase.com/organization/space/">spacex</a>
  </h4>
  <ul>
    <li>
      <strong class="key">Founded</strong>
      <span class="value">2002</span>
    </li>
    <li>
      <strong class="key">Website</strong>
      <span class="value"><a href="https://www.spacex.com">https://www.spacex.com</a></span>
    </li>
  </ul>
</li>`

const teslaCard = `
<li class="data-card crunchbase-card active"
    data-crunchbase-url="https://crunchbase.com/organization/tesla/">
  <h4 class="card-title card-acc-handle">
    <a class="cb-card-title-link" href="https://crunchbase.com/organization/tesla/">  tesla  </a>
  </h4>
  <ul>
    <li>
      <strong class="key">Website</strong>
      <span class="value"><a href="https://www.tesla.com">https://www.tesla.com</a></span>
    </li>
  </ul>
</li>`

const personCard = `
<li class="data-card crunchbase-card active"
    data-crunchbase-url="https://crunchbase.com/people/katherine-mcpheee/"></li>
<li class="data-card crunchbase-card active"></li>`

func page(title, sidebar string) string {
	header := ""
	if title != "" {
		header = fmt.Sprintf("<article><header><h1>%s</h1></header></article>", title)
	}
	return fmt.Sprintf("<html><body>%s%s</body></html>", header, sidebar)
}

func sidebar(cards ...string) string {
	return `<div class="crunchbase-cluster"><ul>` + strings.Join(cards, "") + `</ul></div>`
}

func newTestExtractor() *Extractor {
	return NewExtractor(crawler.DefaultFilter(), WithLogger(slog.New(slog.DiscardHandler)))
}

func TestExtract(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		html string
		want []model.CompanyRecord
	}{
		{
			name: "page without sidebar",
			html: page(pageTitle, ""),
			want: []model.CompanyRecord{
				{URL: pageURL, Title: pageTitle, CompanyName: model.Unknown, CompanyURL: model.Unknown},
			},
		},
		{
			name: "sidebar without valid cards",
			html: page(pageTitle, sidebar(personCard)),
			want: []model.CompanyRecord{
				{URL: pageURL, Title: pageTitle, CompanyName: model.Unknown, CompanyURL: model.Unknown},
			},
		},
		{
			name: "one valid card among invalid ones",
			html: page(pageTitle, sidebar(spacexCard, personCard)),
			want: []model.CompanyRecord{
				{URL: pageURL, Title: pageTitle, CompanyName: "spacex", CompanyURL: "https://www.spacex.com"},
			},
		},
		{
			name: "multiple valid cards in document order",
			html: page(pageTitle, sidebar(spacexCard, teslaCard)),
			want: []model.CompanyRecord{
				{URL: pageURL, Title: pageTitle, CompanyName: "spacex", CompanyURL: "https://www.spacex.com"},
				{URL: pageURL, Title: pageTitle, CompanyName: "tesla", CompanyURL: "https://www.tesla.com"},
			},
		},
		{
			name: "card missing name container",
			html: page(pageTitle, sidebar(`
<li class="crunchbase-card" data-crunchbase-url="https://crunchbase.com/organization/acme/">
  <ul><li><strong>Website</strong> <a href="https://acme.example">https://acme.example</a></li></ul>
</li>`)),
			want: []model.CompanyRecord{
				{URL: pageURL, Title: pageTitle, CompanyName: model.Unknown, CompanyURL: "https://acme.example"},
			},
		},
		{
			name: "card missing website entry",
			html: page(pageTitle, sidebar(`
<li class="crunchbase-card" data-crunchbase-url="https://crunchbase.com/organization/acme/">
  <h4 class="card-title"><a href="https://crunchbase.com/organization/acme/">acme</a></h4>
  <ul><li><strong>Founded</strong> 1999</li></ul>
</li>`)),
			want: []model.CompanyRecord{
				{URL: pageURL, Title: pageTitle, CompanyName: "acme", CompanyURL: model.Unknown},
			},
		},
		{
			name: "website entry without link",
			html: page(pageTitle, sidebar(`
<li class="crunchbase-card" data-crunchbase-url="https://crunchbase.com/organization/acme/">
  <h4 class="card-title"><a href="#">acme</a></h4>
  <ul><li><strong>Website</strong> none</li></ul>
</li>`)),
			want: []model.CompanyRecord{
				{URL: pageURL, Title: pageTitle, CompanyName: "acme", CompanyURL: model.Unknown},
			},
		},
		{
			name: "empty link text is kept",
			html: page(pageTitle, sidebar(`
<li class="crunchbase-card" data-crunchbase-url="https://crunchbase.com/organization/acme/">
  <h4 class="card-title"><a href="#">  </a></h4>
  <ul><li><strong>Website</strong> <a href="#"></a></li></ul>
</li>`)),
			want: []model.CompanyRecord{
				{URL: pageURL, Title: pageTitle, CompanyName: "", CompanyURL: ""},
			},
		},
		{
			name: "title is trimmed",
			html: page("\n   "+pageTitle+"\t\n", ""),
			want: []model.CompanyRecord{
				{URL: pageURL, Title: pageTitle, CompanyName: model.Unknown, CompanyURL: model.Unknown},
			},
		},
	}

	e := newTestExtractor()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := e.Extract(pageURL, strings.NewReader(tt.html))
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("expected %d records, got %d: %+v", len(tt.want), len(got), got)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("record %d = %+v, want %+v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestExtractTitleNotFound(t *testing.T) {
	t.Parallel()

	pages := map[string]string{
		"no article":  page("", sidebar(spacexCard)),
		"no header":   "<html><article><h1>Title</h1></article></html>",
		"no heading":  "<html><article><header><h2>Title</h2></header></article></html>",
		"empty input": "",
	}

	e := newTestExtractor()
	for name, html := range pages {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			records, err := e.Extract(pageURL, strings.NewReader(html))
			if !errors.Is(err, ErrTitleNotFound) {
				t.Errorf("expected ErrTitleNotFound, got %v", err)
			}
			if records != nil {
				t.Errorf("expected no records, got %+v", records)
			}
		})
	}
}

func TestExtractNormalizesText(t *testing.T) {
	t.Parallel()

	// "e" followed by a combining acute accent composes to "é".
	decomposed := "Cafe\u0301 startup raises"
	e := newTestExtractor()

	records, err := e.Extract(pageURL, strings.NewReader(page(decomposed, "")))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if records[0].Title != "Caf\u00e9 startup raises" {
		t.Errorf("expected NFC title, got %q", records[0].Title)
	}
}

func TestExtractWithMarkers(t *testing.T) {
	t.Parallel()

	html := `<html><main><div class="headline"><h2>Custom</h2></div></main>
<aside id="companies"><div class="company" data-profile="https://crunchbase.com/organization/acme/">
<span class="card-title"><a>acme</a></span>
<ul><li>Homepage <a>https://acme.example</a></li></ul>
</div></aside></html>`

	e := NewExtractor(crawler.DefaultFilter(),
		WithLogger(slog.New(slog.DiscardHandler)),
		WithMarkers(Markers{
			Article:          "main",
			Header:           ".headline",
			Heading:          "h2",
			Sidebar:          "#companies",
			Card:             "div.company",
			ProfileAttribute: "data-profile",
			WebsiteLabel:     "Homepage",
		}),
	)

	records, err := e.Extract(pageURL, strings.NewReader(html))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := model.CompanyRecord{URL: pageURL, Title: "Custom", CompanyName: "acme", CompanyURL: "https://acme.example"}
	if len(records) != 1 || records[0] != want {
		t.Errorf("unexpected records: %+v", records)
	}
}

func TestDefaultMarkers(t *testing.T) {
	t.Parallel()

	m := DefaultMarkers()
	if m.Card != "li.crunchbase-card" {
		t.Errorf("unexpected card marker %q", m.Card)
	}
	if m.WebsiteLabel != "Website" {
		t.Errorf("unexpected website label %q", m.WebsiteLabel)
	}

	merged := Markers{Sidebar: "#x"}.Merge(m)
	if merged.Sidebar != "#x" {
		t.Errorf("expected override to be kept, got %q", merged.Sidebar)
	}
	if merged.Heading != m.Heading {
		t.Errorf("expected default heading, got %q", merged.Heading)
	}
}

// unwrappedRowPage has the Website row written directly inside the card's
// li, as TechCrunch served it. The HTML parser closes the card when the
// inner li opens, leaving the row as the card's next sibling.
const unwrappedRowPage = `<html>
    <article>
    <header>
    <h1>taco_title</h1>
    </header>
    </article>
    <div class="crunchbase-cluster">
        <ul>
            <li class="data-card crunchbase-card active"
                data-crunchbase-url="https://crunchbase.com/organization/space-exploration-technologies/">
                <h4 class="card-title card-acc-handle">
                    <a class="cb-card-title-link" href="https://crunchbase.com/organization/space/">spacex</a>
                </h4>
                <li>
                    <strong class="key">Website</strong>
                    <span class="value"><a href="https://www.spacex.com">https://www.spacex.com</a></span>
                </li>
            </li>
        <li class="crunchbase-card" data-crunchbase-url="https://crunchbase.com/people/taco/"></li>
        </ul>
    </div>
    </html>`

func TestExtractUnwrappedWebsiteRow(t *testing.T) {
	t.Parallel()

	t.Run("row reparented as sibling", func(t *testing.T) {
		t.Parallel()

		got, err := newTestExtractor().Extract("https://techcrunch.com", strings.NewReader(unwrappedRowPage))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want := []model.CompanyRecord{
			model.NewCompanyRecord("https://techcrunch.com", "taco_title", "spacex", "https://www.spacex.com"),
		}
		if len(got) != len(want) || got[0] != want[0] {
			t.Errorf("got %+v, want %+v", got, want)
		}
	})

	t.Run("sibling search stops at the next card", func(t *testing.T) {
		t.Parallel()

		html := page(pageTitle, `<div class="crunchbase-cluster"><ul>
<li class="crunchbase-card" data-crunchbase-url="https://crunchbase.com/organization/alpha/">
  <h4 class="card-title"><a>alpha</a></h4>
</li>
<li class="crunchbase-card" data-crunchbase-url="https://crunchbase.com/organization/beta/">
  <h4 class="card-title"><a>beta</a></h4>
  <li><strong>Website</strong> <a>https://beta.example</a></li>
</li>
</ul></div>`)

		got, err := newTestExtractor().Extract(pageURL, strings.NewReader(html))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want := []model.CompanyRecord{
			model.NewCompanyRecord(pageURL, pageTitle, "alpha", model.Unknown),
			model.NewCompanyRecord(pageURL, pageTitle, "beta", "https://beta.example"),
		}
		if len(got) != len(want) {
			t.Fatalf("expected %d records, got %+v", len(want), got)
		}
		for i := range want {
			if got[i] != want[i] {
				t.Errorf("record %d = %+v, want %+v", i, got[i], want[i])
			}
		}
	})
}
