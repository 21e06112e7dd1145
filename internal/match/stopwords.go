package match

// stopWords are common English function words excluded from job-description
// keyword extraction. Tokens of length three or less are already dropped by
// the length filter, but the set keeps them anyway so the filter rules stay
// independent of each other.
var stopWords = map[string]struct{}{}

func init() {
	for _, w := range []string{
		"the", "a", "an", "and", "or", "but", "in", "on", "at", "to",
		"for", "of", "with", "by", "is", "are", "was", "were", "be",
		"been", "being", "have", "has", "had", "do", "does", "did",
		"will", "would", "could", "should", "may", "might", "must",
		"can", "this", "that", "these", "those", "we", "you", "they",
		"i", "he", "she", "it", "as", "from", "about", "into",
		"through", "during", "before", "after", "above", "below",
		"up", "down", "out", "off", "over", "under", "again",
		"further", "then", "once",
	} {
		stopWords[w] = struct{}{}
	}
}

func isStopWord(token string) bool {
	_, ok := stopWords[token]
	return ok
}
