package crawler

// Dedupe canonicalizes each link and returns the unique canonical forms.
// Links that differ only in a trailing fragment or query collapse into one.
// The result is in first-seen order, but callers must not rely on it.
func (f *Filter) Dedupe(links []string) []string {
	seen := make(map[string]struct{}, len(links))
	unique := make([]string, 0, len(links))

	for _, link := range links {
		canonical := f.Canonicalize(link)
		if _, ok := seen[canonical]; ok {
			continue
		}
		seen[canonical] = struct{}{}
		unique = append(unique, canonical)
	}

	return unique
}
