// Package dataset cleans raw interview-question rows: it normalizes
// human-entered company names and buckets free-text question types into
// the fixed category labels.
package dataset

import "strings"

// companyNormalization maps observed company-name variants to their
// canonical form. Anything not listed passes through unchanged.
var companyNormalization = map[string]string{
	// Meta / Facebook variations
	"meta":              "Meta",
	"META":              "Meta",
	"MEta":              "Meta",
	"Meta (team match)": "Meta",
	"Meta / Facebook":   "Meta",
	"Meta/ Facebook":    "Meta",
	"Meta/Facebook":     "Meta",
	"Facebook":          "Meta",
	"facebook":          "Meta",
	"FACEBOOK":          "Meta",
	"FaceBook":          "Meta",
	"Faceboook":         "Meta",
	"Facebook/Meta":     "Meta",
	"Facbook":           "Meta",
	"FB":                "Meta",
	"fb":                "Meta",

	// Google variations
	"google":                   "Google",
	"Googlw":                   "Google",
	"Google`":                  "Google",
	"Google (GCP)":             "Google",
	"Google Cloud":             "Google",
	"StraGoogletegic Insights": "Google",
	"Google/Amazon":            "Google",

	// Amazon variations
	"amazon":     "Amazon",
	"Amazxon":    "Amazon",
	"Amzon":      "Amazon",
	"Amazon AWS": "Amazon",
	"AWS":        "Amazon",

	// DoorDash variations
	"Doordash":  "DoorDash",
	"doordash":  "DoorDash",
	"Door Dash": "DoorDash",

	// Microsoft variations
	"MICROSOFT":         "Microsoft",
	"Microsoft Round 1": "Microsoft",

	// LinkedIn variations
	"LInkedIn": "LinkedIn",
	"Linkedin": "LinkedIn",

	// TikTok variations
	"Tiktok":  "TikTok",
	"Tik Tok": "TikTok",

	// eBay variations
	"ebay": "eBay",
	"Ebay": "eBay",

	"Paypal":           "PayPal",
	"Sofi":             "SoFi",
	"Inuit":            "Intuit",
	"Intuit Mailchimp": "Intuit",
	"adobe":            "Adobe",
	"Capital one":      "Capital One",
	"CapitalOne":       "Capital One",
	"Nu Bank":          "Nubank",
	"Docusign":         "DocuSign",
	"wayfair":          "Wayfair",
	"T-mobile":         "T-Mobile",
	"TMobile":          "T-Mobile",
	"lyft":             "Lyft",
	"7shifts":          "7Shifts",

	// NA / test / invalid entries
	"NA":   "Other",
	"Na":   "Other",
	"Test": "Other",
	"-":    "Other",
	"<>":   "Other",
}

// NormalizeCompany returns the canonical company name for a raw value.
// Empty input becomes "Unknown"; unmapped names are returned as-is.
func NormalizeCompany(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return "Unknown"
	}
	if normalized, ok := companyNormalization[name]; ok {
		return normalized
	}
	return name
}

// Keyword lists checked in priority order by CategorizeQuestion.
// Technical is checked first so "system design" is not swallowed by the
// generic "design" keyword, and Execution before Strategy because the
// two vocabularies overlap.
var (
	technicalKeywords = []string{
		"technical", "system design", "api", "engineering",
	}
	behavioralKeywords = []string{
		"behavioral", "behaviour", "behavioural", "behav", "behavior",
		"leadership", "leadership & drive", "leadership and drive",
	}
	estimationKeywords = []string{
		"estimation", "estimate", "pricing", "market sizing",
	}
	executionKeywords = []string{
		"execution", "product execution", "metrics", "analytics",
		"analytical", "analytical thinking", "product analytics",
		"product analytical", "tradeoff", "trade-off", "prioritization",
		"product prioritization", "product metrics", "goal",
		"product retrospective", "product values",
	}
	strategyKeywords = []string{
		"strategy", "product strategy", "roadmap", "market",
		"go-to-market", "gtm", "vision",
	}
	productDesignKeywords = []string{
		"product sense", "product design", "sense", "design",
		"produce sense", "product improvement", "product",
	}
)

// CategorizeQuestion buckets a free-text question type into one of the
// fixed category labels, falling back to "Other".
func CategorizeQuestion(questionType string) string {
	qt := strings.ToLower(strings.TrimSpace(questionType))
	if qt == "" {
		return "Other"
	}

	buckets := []struct {
		label    string
		keywords []string
	}{
		{"Technical", technicalKeywords},
		{"Behavioral", behavioralKeywords},
		{"Estimation & Pricing", estimationKeywords},
		{"Execution & Metrics", executionKeywords},
		{"Product Strategy", strategyKeywords},
		{"Product Design", productDesignKeywords},
	}

	for _, b := range buckets {
		for _, kw := range b.keywords {
			if strings.Contains(qt, kw) {
				return b.label
			}
		}
	}
	return "Other"
}
