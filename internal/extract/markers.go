package extract

// Markers are the CSS selectors and labels that locate the parts of an
// article page.
type Markers struct {
	// Article, Header and Heading locate the title: the first Heading in
	// the first Header in the first Article.
	Article string `yaml:"article,omitempty"`
	Header  string `yaml:"header,omitempty"`
	Heading string `yaml:"heading,omitempty"`

	// Sidebar is the container holding the company cards.
	Sidebar string `yaml:"sidebar,omitempty"`

	// Card selects the company cards inside the sidebar.
	Card string `yaml:"card,omitempty"`

	// ProfileAttribute is the card attribute carrying the company profile URL.
	ProfileAttribute string `yaml:"profileAttribute,omitempty"`

	// Name is the card element whose first link holds the company name.
	Name string `yaml:"name,omitempty"`

	// WebsiteLabel is the text labelling the card entry with the company
	// website.
	WebsiteLabel string `yaml:"websiteLabel,omitempty"`
}

// DefaultMarkers returns the markers of TechCrunch article pages.
func DefaultMarkers() Markers {
	return Markers{
		Article:          "article",
		Header:           "header",
		Heading:          "h1",
		Sidebar:          ".crunchbase-cluster",
		Card:             "li.crunchbase-card",
		ProfileAttribute: "data-crunchbase-url",
		Name:             ".card-title",
		WebsiteLabel:     "Website",
	}
}

// Merge returns m with empty fields taken from defaults.
func (m Markers) Merge(defaults Markers) Markers {
	fill := func(v *string, d string) {
		if *v == "" {
			*v = d
		}
	}
	fill(&m.Article, defaults.Article)
	fill(&m.Header, defaults.Header)
	fill(&m.Heading, defaults.Heading)
	fill(&m.Sidebar, defaults.Sidebar)
	fill(&m.Card, defaults.Card)
	fill(&m.ProfileAttribute, defaults.ProfileAttribute)
	fill(&m.Name, defaults.Name)
	fill(&m.WebsiteLabel, defaults.WebsiteLabel)
	return m
}
