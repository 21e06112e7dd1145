package ats

import "strings"

// industryKeywords maps a lower-cased industry key to the keyword dictionary
// used as a coverage proxy for that industry. The tables are fixed at build
// time; matching against them is always a case-insensitive substring check.
var industryKeywords = map[string][]string{
	"software":   {"agile", "scrum", "git", "api", "rest", "testing", "debugging", "deployment", "ci/cd", "documentation"},
	"marketing":  {"seo", "analytics", "campaigns", "roi", "crm", "content", "social media", "brand", "strategy", "metrics"},
	"finance":    {"financial analysis", "budgeting", "forecasting", "excel", "reporting", "compliance", "audit", "risk management"},
	"healthcare": {"patient care", "hipaa", "ehr", "clinical", "medical", "documentation", "protocols", "compliance"},
	"general":    {"leadership", "communication", "teamwork", "problem-solving", "project management", "analytical", "organization"},
}

// IndustryKeywords returns the keyword dictionary for an industry, falling
// back to the general dictionary for unrecognized or empty industries.
// Callers must not mutate the returned slice.
func IndustryKeywords(industry string) []string {
	if keywords, ok := industryKeywords[strings.ToLower(industry)]; ok {
		return keywords
	}
	return industryKeywords["general"]
}

// ResolveIndustry returns the lower-cased industry label used for dictionary
// lookup and suggestion text. An empty target industry resolves to "general";
// an unrecognized one keeps its own name even though the lookup falls back.
func ResolveIndustry(targetIndustry string) string {
	industry := strings.ToLower(targetIndustry)
	if industry == "" {
		return "general"
	}
	return industry
}
