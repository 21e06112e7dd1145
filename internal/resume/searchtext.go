package resume

import (
	"encoding/json"
	"strings"
)

// SearchText flattens a resume into a single lower-cased blob suitable for
// case-insensitive substring matching. The ATS scoring engine and the job
// match analyzer must both search the same text, so this is the only
// serialization either of them is allowed to use.
//
// The encoding is the canonical JSON form of the full value: deterministic
// for a given input and inclusive of every string field. It is not meant to
// be human-readable.
func SearchText(data ResumeData) string {
	encoded, err := json.Marshal(data)
	if err != nil {
		// ResumeData contains only marshalable types; Marshal cannot fail
		// for well-typed input. Degrade to an empty blob rather than panic.
		return ""
	}
	return strings.ToLower(string(encoded))
}

// ContainsKeyword reports whether the flattened resume text contains the
// given keyword, comparing case-insensitively.
func ContainsKeyword(searchText, keyword string) bool {
	return strings.Contains(searchText, strings.ToLower(keyword))
}
