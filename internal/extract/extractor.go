package extract

import (
	"io"
	"log/slog"
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/clearmob/companyreader/internal/model"
)

// ProfileMatcher decides whether a card's profile URL points at a company.
type ProfileMatcher interface {
	IsOrganizationProfile(url string) bool
}

// Extractor turns article pages into company records.
// It is safe for concurrent use.
type Extractor struct {
	profiles ProfileMatcher
	markers  Markers
	logger   *slog.Logger
}

// Option configures an Extractor.
type Option func(*Extractor)

// WithMarkers overrides the page markers. Empty fields keep their defaults.
func WithMarkers(m Markers) Option {
	return func(e *Extractor) {
		e.markers = m.Merge(DefaultMarkers())
	}
}

// WithLogger sets the logger. The default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(e *Extractor) {
		e.logger = logger
	}
}

// NewExtractor creates an Extractor that keeps the cards accepted by profiles.
func NewExtractor(profiles ProfileMatcher, opts ...Option) *Extractor {
	e := &Extractor{
		profiles: profiles,
		markers:  DefaultMarkers(),
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.logger == nil {
		e.logger = slog.Default()
	}
	return e
}

// Extract parses body and returns its records, attributed to sourceURL.
// See ExtractDocument.
func (e *Extractor) Extract(sourceURL string, body io.Reader) ([]model.CompanyRecord, error) {
	doc, err := Parse(body)
	if err != nil {
		return nil, err
	}
	return e.ExtractDocument(sourceURL, doc)
}

// ExtractDocument returns one record per valid company card on the page,
// or a single record with unknown company fields when the page has none.
// It fails with ErrTitleNotFound when the page has no article title.
func (e *Extractor) ExtractDocument(sourceURL string, doc Document) ([]model.CompanyRecord, error) {
	title, err := e.title(doc)
	if err != nil {
		return nil, err
	}

	cards := e.companyCards(doc)
	if len(cards) == 0 {
		return []model.CompanyRecord{model.NewUnknownCompanyRecord(sourceURL, title)}, nil
	}

	records := make([]model.CompanyRecord, 0, len(cards))
	for _, card := range cards {
		name, err := e.companyName(card)
		if err != nil {
			e.logger.Debug("company name unavailable", "url", sourceURL, "error", err)
			name = model.Unknown
		}
		website, err := e.companyURL(card)
		if err != nil {
			e.logger.Debug("company url unavailable", "url", sourceURL, "error", err)
			website = model.Unknown
		}
		records = append(records, model.NewCompanyRecord(sourceURL, title, name, website))
	}
	return records, nil
}

func (e *Extractor) title(doc Document) (string, error) {
	article, ok := doc.Find(e.markers.Article)
	if !ok {
		return "", ErrTitleNotFound
	}
	header, ok := article.Find(e.markers.Header)
	if !ok {
		return "", ErrTitleNotFound
	}
	heading, ok := header.Find(e.markers.Heading)
	if !ok {
		return "", ErrTitleNotFound
	}
	return clean(heading.Text()), nil
}

// companyCards returns the cards in the sidebar whose profile URL is an
// organization profile.
func (e *Extractor) companyCards(doc Document) []Node {
	sidebar, ok := doc.Find(e.markers.Sidebar)
	if !ok {
		return nil
	}

	var cards []Node
	for _, card := range sidebar.FindAll(e.markers.Card) {
		profile, ok := card.Attr(e.markers.ProfileAttribute)
		if ok && e.profiles.IsOrganizationProfile(profile) {
			cards = append(cards, card)
		}
	}
	return cards
}

func (e *Extractor) companyName(card Node) (string, error) {
	title, ok := card.Find(e.markers.Name)
	if !ok {
		return "", ErrCompanyName
	}
	link, ok := title.Find("a")
	if !ok {
		return "", ErrCompanyName
	}
	return clean(link.Text()), nil
}

// companyURL reads the link of the card's "Website" row. A row written
// directly inside the card's li is reparented by the HTML parser as a
// sibling of the card, so the siblings up to the next card are searched
// when the card itself has no such row.
func (e *Extractor) companyURL(card Node) (string, error) {
	if item, ok := e.websiteRow(card.FindAll("li")); ok {
		return linkText(item)
	}
	if item, ok := e.websiteRow(card.NextUntil("li", e.markers.Card)); ok {
		return linkText(item)
	}
	return "", ErrCompanyURL
}

func (e *Extractor) websiteRow(items []Node) (Node, bool) {
	for _, item := range items {
		if item.HasText(e.markers.WebsiteLabel) {
			return item, true
		}
	}
	return nil, false
}

func linkText(item Node) (string, error) {
	link, ok := item.Find("a")
	if !ok {
		return "", ErrCompanyURL
	}
	return clean(link.Text()), nil
}

func clean(s string) string {
	return norm.NFC.String(strings.TrimSpace(s))
}
