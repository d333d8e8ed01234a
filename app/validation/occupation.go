package validation

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// occupationStandards is the canonical occupation label set.
var occupationStandards = []string{
	"Businessman",
	"Engineer",
	"Doctor",
	"Professor/Teacher",
	"Government Servant",
	"Housewife/Homemaker",
	"Private Sector",
}

// occupationKeywords is checked in order; a substring hit wins outright.
var occupationKeywords = []struct {
	keyword  string
	standard string
}{
	{"private", "Private Sector"},
	{"housewife", "Housewife/Homemaker"},
	{"business", "Businessman"},
	{"engineer", "Engineer"},
	{"teacher", "Professor/Teacher"},
	{"professor", "Professor/Teacher"},
	{"doctor", "Doctor"},
	{"govt", "Government Servant"},
}

const occupationSimilarityThreshold = 0.8

var occupationCharsRe = regexp.MustCompile(`^[a-z0-9\s./-]+$`)

// standardizeOccupation maps a free-text occupation onto the canonical label
// set: keyword substring match first, then fuzzy similarity against the
// standards, and finally a title-cased copy of the cleaned input as a last
// resort. The second return is an error message for unusable input.
func standardizeOccupation(raw string) (string, string) {
	cleaned := strings.ToLower(strings.TrimSpace(raw))
	if cleaned == "" {
		return "", fmt.Sprintf("Invalid occupation: '%s'. Occupation cannot be empty.", raw)
	}
	if !occupationCharsRe.MatchString(cleaned) {
		return "", fmt.Sprintf("Invalid occupation: '%s'. Contains invalid characters.", raw)
	}

	for _, kw := range occupationKeywords {
		if strings.Contains(cleaned, kw.keyword) {
			return kw.standard, ""
		}
	}

	best := ""
	bestScore := 0.0
	for _, standard := range occupationStandards {
		if score := similarity(cleaned, strings.ToLower(standard)); score >= occupationSimilarityThreshold && score > bestScore {
			best, bestScore = standard, score
		}
	}
	if best != "" {
		return best, ""
	}

	return titleWords(cleaned), ""
}

// similarity converts Levenshtein distance into a 0..1 ratio.
func similarity(a, b string) float64 {
	if a == b {
		return 1
	}
	longest := len([]rune(a))
	if l := len([]rune(b)); l > longest {
		longest = l
	}
	if longest == 0 {
		return 1
	}
	dist := fuzzy.LevenshteinDistance(a, b)
	return 1 - float64(dist)/float64(longest)
}
