package models

import "strings"

// Categories is the fixed set of question category labels, in the
// order they are presented when counts tie.
var Categories = []string{
	"Product Design",
	"Product Strategy",
	"Execution & Metrics",
	"Estimation & Pricing",
	"Technical",
	"Behavioral",
	"Other",
}

// slugToCategory is the single bidirectional lookup shared by every
// endpoint that maps between labels and URL slugs.
var slugToCategory = func() map[string]string {
	m := make(map[string]string, len(Categories))
	for _, name := range Categories {
		m[CategorySlug(name)] = name
	}
	return m
}()

// CategorySlug converts a category label to its URL-safe slug:
// lowercase, " & " and spaces become hyphens.
// "Execution & Metrics" -> "execution-metrics".
func CategorySlug(name string) string {
	s := strings.ToLower(name)
	s = strings.ReplaceAll(s, " & ", "-")
	s = strings.ReplaceAll(s, " ", "-")
	return s
}

// CategoryForSlug resolves a URL slug back to its category label.
// Unknown slugs pass through unchanged, so a request for a category
// that does not exist yields an empty result rather than an error.
func CategoryForSlug(slug string) string {
	if name, ok := slugToCategory[slug]; ok {
		return name
	}
	return slug
}
