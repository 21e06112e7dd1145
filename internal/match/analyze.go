// Package match compares a resume against the vocabulary of a specific job
// description and reports which of the description's keywords the resume
// already covers.
package match

import (
	"fmt"
	"math"
	"strings"

	"cvision/internal/resume"
)

const (
	// maxCandidates is a hard cap on how many extracted keywords are
	// considered; tokens beyond it are dropped, not sampled.
	maxCandidates = 30

	// maxDisplayKeywords caps each output list independently.
	maxDisplayKeywords = 10
)

// Analyze computes the keyword overlap between a resume and a free-text job
// description. Pure given its inputs; an empty description yields a zero
// score with empty keyword lists.
func Analyze(data resume.ResumeData, jobDescription string) resume.JobMatch {
	searchText := resume.SearchText(data)
	candidates := extractKeywords(jobDescription)

	matched := []string{}
	missing := []string{}
	for _, keyword := range candidates {
		if strings.Contains(searchText, keyword) {
			matched = append(matched, keyword)
		} else {
			missing = append(missing, keyword)
		}
	}

	score := 0
	if len(candidates) > 0 {
		score = int(math.Round(float64(len(matched)) / float64(len(candidates)) * 100))
	}

	suggestions := buildSuggestions(score, matched, missing)

	return resume.JobMatch{
		Score:           score,
		MatchedKeywords: capList(matched, maxDisplayKeywords),
		MissingKeywords: capList(missing, maxDisplayKeywords),
		Suggestions:     suggestions,
	}
}

// extractKeywords tokenizes the description and returns up to maxCandidates
// distinct tokens worth matching on. Order of first occurrence is preserved:
// dedupe first, then drop short tokens and stop words, then cap.
func extractKeywords(jobDescription string) []string {
	tokens := strings.Fields(strings.ToLower(jobDescription))

	seen := make(map[string]struct{}, len(tokens))
	keywords := []string{}
	for _, token := range tokens {
		if _, dup := seen[token]; dup {
			continue
		}
		seen[token] = struct{}{}

		if len(token) <= 3 || isStopWord(token) {
			continue
		}
		keywords = append(keywords, token)
		if len(keywords) == maxCandidates {
			break
		}
	}

	return keywords
}

// buildSuggestions applies the three fixed suggestion conditions in order.
// The conditions are evaluated literally, so a zero-candidate analysis still
// produces the tailoring suggestion (0 < 50).
func buildSuggestions(score int, matched, missing []string) []string {
	suggestions := []string{}

	if score < 50 {
		suggestions = append(suggestions, "Consider tailoring your resume more closely to this job description")
	}
	if len(missing) > 0 {
		suggestions = append(suggestions,
			fmt.Sprintf("Try incorporating these keywords: %s", strings.Join(capList(missing, 5), ", ")))
	}
	if len(matched) > 5 {
		suggestions = append(suggestions, "Good keyword match! Your resume aligns well with this position")
	}

	return suggestions
}

func capList(list []string, limit int) []string {
	if len(list) > limit {
		return list[:limit]
	}
	return list
}
