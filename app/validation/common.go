package validation

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var titleCaser = cases.Title(language.English)

// titleWords capitalizes each whitespace-separated word and collapses
// internal whitespace, like the display convention used across all variants.
func titleWords(s string) string {
	words := strings.Fields(strings.TrimSpace(s))
	for i, w := range words {
		words[i] = titleCaser.String(strings.ToLower(w))
	}
	return strings.Join(words, " ")
}

var (
	nonDigitRe   = regexp.MustCompile(`\D`)
	mobileRe     = regexp.MustCompile(`^[6-9]\d{9}$`)
	emailRe      = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	feesEmailRe  = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9-]+\.[a-zA-Z0-9-.]{2,}$`)
	studentName  = regexp.MustCompile(`^[a-zA-Z\s.]+$`)
	feeNameBadRe = regexp.MustCompile(`[^a-zA-Z\s'\-.]`)
)

// stripFloatSuffix repairs numbers that arrived as "9422059555.0" after a
// spreadsheet numeric conversion.
func stripFloatSuffix(s string) string {
	return strings.TrimSuffix(strings.TrimSpace(s), ".0")
}

// normalizePhone strips non-digits from a raw mobile value (repairing
// trailing fractional zeroes first) and validates the 10-digit Indian mobile
// format. Returns the cleaned number, or an error message naming the field.
// Empty input yields both empty.
func normalizePhone(raw, fieldName string) (string, string) {
	if strings.TrimSpace(raw) == "" {
		return "", ""
	}
	cleaned := nonDigitRe.ReplaceAllString(stripFloatSuffix(raw), "")
	if mobileRe.MatchString(cleaned) {
		return cleaned, ""
	}
	return "", fmt.Sprintf("Invalid %s: '%s'. Must be a 10-digit Indian mobile number.", fieldName, strings.TrimSpace(raw))
}

// normalizeEmail validates user@domain with a >=2-character TLD and lowers
// the result. Empty input yields both empty.
func normalizeEmail(raw string) (string, string) {
	email := strings.TrimSpace(raw)
	if email == "" {
		return "", ""
	}
	if emailRe.MatchString(email) {
		return strings.ToLower(email), ""
	}
	return "", fmt.Sprintf("Invalid email format: '%s'.", email)
}

// flexibleDateFormats is the accepted ladder; the first format that parses
// wins.
var flexibleDateFormats = []string{"02/01/2006", "02-01-2006", "2006-01-02", "2006/01/02"}

// parseFlexibleDate drops any time component and tries each accepted format
// in order.
func parseFlexibleDate(raw string) (time.Time, bool) {
	dateOnly := strings.SplitN(strings.TrimSpace(raw), " ", 2)[0]
	for _, layout := range flexibleDateFormats {
		if t, err := time.Parse(layout, dateOnly); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// parseStrictDate parses against exactly one layout and returns the ISO
// date, unlike the flexible ladder.
func parseStrictDate(raw, layout string) (string, error) {
	t, err := time.Parse(layout, strings.TrimSpace(raw))
	if err != nil {
		return "", err
	}
	return t.Format("2006-01-02"), nil
}

// stripNumericNoise removes thousands separators and surrounding whitespace
// from amount fields before decimal parsing.
func stripNumericNoise(s string) string {
	return strings.ReplaceAll(strings.TrimSpace(s), ",", "")
}

// formatStudentName validates a name against the student rule (letters,
// spaces and dots only) and returns it word-capitalized. The second return is
// an error message when invalid.
func formatStudentName(raw string) (string, string) {
	cleaned := strings.TrimSpace(raw)
	if cleaned == "" {
		return "", fmt.Sprintf("Invalid name: '%s'. Name cannot be empty.", raw)
	}
	if !studentName.MatchString(cleaned) {
		return "", fmt.Sprintf("Invalid name: '%s'. Only alphabets, spaces, and dots are allowed.", raw)
	}
	return titleWords(cleaned), ""
}

// ordinalSuffix returns st/nd/rd/th for n, with the 11..13 exception.
func ordinalSuffix(n int) string {
	if v := n % 100; v >= 10 && v <= 20 {
		return "th"
	}
	switch n % 10 {
	case 1:
		return "st"
	case 2:
		return "nd"
	case 3:
		return "rd"
	default:
		return "th"
	}
}
