package utils

import (
	"strings"
	"time"
	"unicode"
)

// Accepted DOB layouts, tried strictly in order. Day-first, 4-digit years
// before 2-digit so "1-2-90" resolves through the 2-digit branch.
var dobLayouts = []string{"2/1/2006", "2-1-2006", "2.1.2006", "2/1/06", "2-1-06"}

// NormalizePANNumber uppercases the candidate, strips everything that is not
// a letter or digit, keeps the first 10 characters and returns the result
// only if it is a structurally valid PAN. Anything else comes back empty.
func NormalizePANNumber(value string) string {
	if value == "" {
		return ""
	}
	cleaned := nonAlphanumericRegex.ReplaceAllString(strings.ToUpper(value), "")
	if len(cleaned) > 10 {
		cleaned = cleaned[:10]
	}
	if !IsValidPAN(cleaned) {
		return ""
	}
	return cleaned
}

// IsValidPAN reports whether value is exactly a PAN-shaped token.
func IsValidPAN(value string) bool {
	return panExactRegex.MatchString(value)
}

// NormalizeName cleans a raw OCR name candidate into "John Smith" form.
// Characters outside the allowed set become spaces, then each remaining word
// is capitalized. Returns empty if nothing usable survives.
func NormalizeName(value string) string {
	if value == "" {
		return ""
	}
	cleaned := invalidNameCharsRegex.ReplaceAllString(strings.ToUpper(value), " ")
	cleaned = strings.TrimSpace(cleaned)
	if cleaned == "" {
		return ""
	}

	parts := strings.Fields(cleaned)
	for i, part := range parts {
		parts[i] = capitalizeWord(part)
	}
	return strings.Join(parts, " ")
}

func capitalizeWord(word string) string {
	runes := []rune(word)
	for i, r := range runes {
		if i == 0 {
			runes[i] = unicode.ToUpper(r)
		} else {
			runes[i] = unicode.ToLower(r)
		}
	}
	return string(runes)
}

// NormalizeDOB converts a date candidate to YYYY-MM-DD. If the candidate
// matches none of the accepted layouts it is returned trimmed but otherwise
// untouched, so callers still see whatever the OCR produced.
func NormalizeDOB(value string) string {
	candidate := strings.TrimSpace(value)
	if candidate == "" {
		return ""
	}
	for _, layout := range dobLayouts {
		if parsed, err := time.Parse(layout, candidate); err == nil {
			return parsed.Format("2006-01-02")
		}
	}
	return candidate
}
