package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizePhone(t *testing.T) {
	got, msg := normalizePhone("9422059555", "Mobile Number")
	assert.Empty(t, msg)
	assert.Equal(t, "9422059555", got)

	// Spreadsheet numeric conversion leaves a trailing .0 behind.
	got, msg = normalizePhone("9422059555.0", "Mobile Number")
	assert.Empty(t, msg)
	assert.Equal(t, "9422059555", got)

	got, msg = normalizePhone("+91 94220-59555", "Mobile Number")
	assert.Empty(t, msg)
	assert.Equal(t, "9422059555", got, "country code digits beyond ten are rejected")

	_, msg = normalizePhone("12345", "Mobile Number")
	assert.Contains(t, msg, "Mobile Number")

	_, msg = normalizePhone("5422059555", "Father's Mobile")
	assert.NotEmpty(t, msg, "mobiles must start with 6-9")

	got, msg = normalizePhone("   ", "Mobile Number")
	assert.Empty(t, got)
	assert.Empty(t, msg, "empty optional phone is not an error")
}

func TestNormalizeEmail(t *testing.T) {
	got, msg := normalizeEmail(" Anita.Naik@Example.COM ")
	assert.Empty(t, msg)
	assert.Equal(t, "anita.naik@example.com", got)

	_, msg = normalizeEmail("not-an-email")
	assert.NotEmpty(t, msg)

	got, msg = normalizeEmail("")
	assert.Empty(t, got)
	assert.Empty(t, msg)
}

func TestParseFlexibleDate(t *testing.T) {
	for _, raw := range []string{"15/08/1999", "15-08-1999", "1999-08-15", "1999/08/15", "1999-08-15 00:00:00"} {
		parsed, ok := parseFlexibleDate(raw)
		require.True(t, ok, raw)
		assert.Equal(t, "1999-08-15", parsed.Format("2006-01-02"), raw)
	}

	_, ok := parseFlexibleDate("08/15/1999")
	assert.False(t, ok, "month-first dates are not accepted")
}

func TestParseStrictDate(t *testing.T) {
	got, err := parseStrictDate("15/07/2025", "02/01/2006")
	require.NoError(t, err)
	assert.Equal(t, "2025-07-15", got)

	_, err = parseStrictDate("2025-07-15", "02/01/2006")
	assert.Error(t, err)
}

func TestFormatStudentName(t *testing.T) {
	got, msg := formatStudentName("  anita d. naik ")
	assert.Empty(t, msg)
	assert.Equal(t, "Anita D. Naik", got)

	_, msg = formatStudentName("Anita-Naik")
	assert.NotEmpty(t, msg, "hyphens are not allowed in student names")

	_, msg = formatStudentName("   ")
	assert.NotEmpty(t, msg)
}

func TestComposeDate(t *testing.T) {
	got, ok := composeDate("2001", "6", "5")
	require.True(t, ok)
	assert.Equal(t, "2001-06-05", got.Format("2006-01-02"))

	// Excel float artifacts on the parts are repaired.
	got, ok = composeDate("2001.0", "6.0", "5.0")
	require.True(t, ok)
	assert.Equal(t, "2001-06-05", got.Format("2006-01-02"))

	_, ok = composeDate("2001", "13", "5")
	assert.False(t, ok, "month 13 must not normalize into January")

	_, ok = composeDate("2001", "2", "30")
	assert.False(t, ok)
}

func TestOrdinalSuffix(t *testing.T) {
	assert.Equal(t, "st", ordinalSuffix(1))
	assert.Equal(t, "nd", ordinalSuffix(2))
	assert.Equal(t, "rd", ordinalSuffix(3))
	assert.Equal(t, "th", ordinalSuffix(4))
	assert.Equal(t, "th", ordinalSuffix(11))
	assert.Equal(t, "th", ordinalSuffix(12))
	assert.Equal(t, "th", ordinalSuffix(13))
	assert.Equal(t, "st", ordinalSuffix(21))
}

func TestStandardizeOccupation(t *testing.T) {
	cases := map[string]string{
		"private service":   "Private Sector",
		"Housewife":         "Housewife/Homemaker",
		"businessman":       "Businessman",
		"software engineer": "Engineer",
		"school teacher":    "Professor/Teacher",
		"govt. employee":    "Government Servant",
	}
	for raw, want := range cases {
		got, msg := standardizeOccupation(raw)
		assert.Empty(t, msg, raw)
		assert.Equal(t, want, got, raw)
	}

	// Fuzzy match catches near-misses of the standard labels.
	got, msg := standardizeOccupation("enginer")
	assert.Empty(t, msg)
	assert.Equal(t, "Engineer", got)

	// Unknown occupations fall back to a title-cased copy.
	got, msg = standardizeOccupation("fisherman")
	assert.Empty(t, msg)
	assert.Equal(t, "Fisherman", got)

	_, msg = standardizeOccupation("")
	assert.NotEmpty(t, msg)

	_, msg = standardizeOccupation("engineer@work!")
	assert.NotEmpty(t, msg)
}

func TestStandardizeFeeHead(t *testing.T) {
	assert.Equal(t, "1st installment", standardizeFeeHead("Installment I"))
	assert.Equal(t, "2nd installment", standardizeFeeHead("II installment"))
	assert.Equal(t, "3rd installment", standardizeFeeHead("3rd Installment Fees"))
	assert.Equal(t, "Full Fees", standardizeFeeHead("Semester Fees"))
	assert.Equal(t, "Full Fees", standardizeFeeHead("FULL PAYMENT"))
	assert.Equal(t, "Library Deposit", standardizeFeeHead("library deposit"))
}

func TestParseBatchRMS(t *testing.T) {
	d, errs := parseBatchRMS("XII-COM - 2025-26 A")
	require.Empty(t, errs)
	assert.Equal(t, "12", d.class)
	assert.Equal(t, "A", d.section)
	assert.Equal(t, "Commerce", d.stream)
	assert.Equal(t, "2025-2026", d.batchYear)

	d, errs = parseBatchRMS("IX-SCI - 2024-25 B")
	require.Empty(t, errs)
	assert.Equal(t, "9", d.class)
	assert.Equal(t, "Science", d.stream)

	_, errs = parseBatchRMS("XIII-COM - 2025-26 A")
	assert.NotEmpty(t, errs, "unknown Roman class")

	_, errs = parseBatchRMS("garbage")
	assert.NotEmpty(t, errs)
}

func TestParseBatchVVA(t *testing.T) {
	d, errs := parseBatchVVA("CL-12 - B 25-26")
	require.Empty(t, errs)
	assert.Equal(t, "12", d.class)
	assert.Equal(t, "B", d.section)
	assert.Equal(t, "Senior Secondary", d.stream)
	assert.Equal(t, "2025-2026", d.batchYear)

	d, errs = parseBatchVVA("CL-4 - A 24-25")
	require.Empty(t, errs)
	assert.Equal(t, "Primary", d.stream)

	d, errs = parseBatchVVA("CL-7 - C 24-25")
	require.Empty(t, errs)
	assert.Equal(t, "Middle School", d.stream)

	_, errs = parseBatchVVA("XII-COM - 2025-26 A")
	assert.NotEmpty(t, errs)
}

func TestVVACourseForBranch(t *testing.T) {
	got, msg := vvaCourseForBranch("nursery", true)
	assert.Empty(t, msg)
	assert.Equal(t, "Nursery", got)

	_, msg = vvaCourseForBranch("5", true)
	assert.NotEmpty(t, msg, "numeric grades are not pre-primary courses")

	got, msg = vvaCourseForBranch("07", false)
	assert.Empty(t, msg)
	assert.Equal(t, "7", got)

	_, msg = vvaCourseForBranch("13", false)
	assert.NotEmpty(t, msg)

	_, msg = vvaCourseForBranch("Nursery", false)
	assert.NotEmpty(t, msg)
}
