package crawler

import (
	"fmt"
	"regexp"
)

// Default patterns for TechCrunch article and organization URLs.
//
// The month group accepts 00-09, 11 and 12 but not 10. Links from October
// are therefore never viable with the default patterns; supply a corrected
// ViableLink pattern through the configuration file to include them.
const (
	DefaultViableLinkPattern   = `^.+techcrunch\.com/\d{4}/(0[0-9]|1[1-2])/([0-2][0-9]|3[0-1])/.+`
	DefaultOrganizationPattern = `^.+/organization/.+`
	DefaultCanonicalPattern    = `^(.+)(/)[^/]+$`
)

// Patterns holds the regular expressions used by a Filter.
type Patterns struct {
	// ViableLink matches article links worth crawling.
	ViableLink string `yaml:"viableLink,omitempty"`

	// Organization matches company profile URLs on company cards.
	Organization string `yaml:"organization,omitempty"`

	// Canonical splits a URL into the part to keep (groups 1 and 2) and a
	// trailing segment to drop.
	Canonical string `yaml:"canonical,omitempty"`
}

// DefaultPatterns returns the patterns for TechCrunch.
func DefaultPatterns() Patterns {
	return Patterns{
		ViableLink:   DefaultViableLinkPattern,
		Organization: DefaultOrganizationPattern,
		Canonical:    DefaultCanonicalPattern,
	}
}

// Merge returns p with empty fields taken from defaults.
func (p Patterns) Merge(defaults Patterns) Patterns {
	if p.ViableLink == "" {
		p.ViableLink = defaults.ViableLink
	}
	if p.Organization == "" {
		p.Organization = defaults.Organization
	}
	if p.Canonical == "" {
		p.Canonical = defaults.Canonical
	}
	return p
}

// Filter classifies and canonicalizes URLs. It is safe for concurrent use.
type Filter struct {
	viable       *regexp.Regexp
	organization *regexp.Regexp
	canonical    *regexp.Regexp
}

// NewFilter compiles the given patterns. Empty patterns fall back to the
// defaults.
func NewFilter(p Patterns) (*Filter, error) {
	p = p.Merge(DefaultPatterns())

	viable, err := regexp.Compile(p.ViableLink)
	if err != nil {
		return nil, fmt.Errorf("invalid viable link pattern: %w", err)
	}
	organization, err := regexp.Compile(p.Organization)
	if err != nil {
		return nil, fmt.Errorf("invalid organization pattern: %w", err)
	}
	canonical, err := regexp.Compile(p.Canonical)
	if err != nil {
		return nil, fmt.Errorf("invalid canonical pattern: %w", err)
	}
	if canonical.NumSubexp() < 2 {
		return nil, fmt.Errorf("invalid canonical pattern: need 2 capture groups, got %d", canonical.NumSubexp())
	}

	return &Filter{
		viable:       viable,
		organization: organization,
		canonical:    canonical,
	}, nil
}

// DefaultFilter returns a Filter using DefaultPatterns.
func DefaultFilter() *Filter {
	f, err := NewFilter(DefaultPatterns())
	if err != nil {
		panic(err) // default patterns are constants
	}
	return f
}

// IsViableLink reports whether href is a non-empty article link.
func (f *Filter) IsViableLink(href string) bool {
	if href == "" {
		return false
	}
	return f.viable.MatchString(href)
}

// IsOrganizationProfile reports whether u is a company profile URL.
func (f *Filter) IsOrganizationProfile(u string) bool {
	if u == "" {
		return false
	}
	return f.organization.MatchString(u)
}

// Canonicalize drops whatever follows the last slash of u, such as
// "#comments" or "?mobile=true" appended to the final path segment.
// It returns u unchanged when there is nothing to drop.
func (f *Filter) Canonicalize(u string) string {
	m := f.canonical.FindStringSubmatch(u)
	if m == nil {
		return u
	}
	return m[1] + m[2]
}

// ViableLinks returns the hrefs that are viable links, in input order.
func (f *Filter) ViableLinks(hrefs []string) []string {
	viable := make([]string, 0, len(hrefs))
	for _, href := range hrefs {
		if f.IsViableLink(href) {
			viable = append(viable, href)
		}
	}
	return viable
}
