package utils

import "strings"

// Keyword sets checked per line, in priority order. The longer father
// variants come first so plain "FATHER" does not shadow them.
var (
	nameKeywords   = []string{"NAME"}
	fatherKeywords = []string{"FATHER'S NAME", "FATHERS NAME", "FATHER NAME", "FATHER"}
	dobKeywords    = []string{"DOB", "DATE OF BIRTH", "BIRTH"}
)

// locatePAN looks for a PAN token anywhere in the joined text first. OCR
// sometimes mangles the number with spaces or punctuation, so as a fallback
// each full line is normalized and validated on its own.
func locatePAN(joined string, lines []string) string {
	if match := panTokenRegex.FindString(joined); match != "" {
		return match
	}
	for _, line := range lines {
		if cleaned := NormalizePANNumber(line); cleaned != "" {
			return cleaned
		}
	}
	return ""
}

// findByKeywords scans lines in order for the first keyword hit and returns
// the raw value next to it. The value is taken from the remainder of the
// line after the keyword; if that is empty the part after the first ":" is
// used, and failing that the following line is returned verbatim.
func findByKeywords(lines []string, keywords []string) string {
	for i, line := range lines {
		upper := asciiUpper(line)
		for _, keyword := range keywords {
			idx := strings.Index(upper, keyword)
			if idx < 0 {
				continue
			}
			after := strings.Trim(line[idx+len(keyword):], " :-")
			if after == "" && strings.Contains(line, ":") {
				after = strings.TrimSpace(line[strings.Index(line, ":")+1:])
			}
			if after != "" {
				return after
			}
			if i+1 < len(lines) {
				return lines[i+1]
			}
		}
	}
	return ""
}

// locateDateToken returns the first date-shaped token in the joined text.
// Used only when no DOB keyword matched anywhere.
func locateDateToken(joined string) string {
	return dateTokenRegex.FindString(joined)
}

// asciiUpper uppercases only a-z. Keyword indexes found in the uppercased
// line are used to slice the original line, so the two must stay byte-for-
// byte aligned; full Unicode uppercasing can change byte lengths. Keywords
// are plain ASCII, so matching is unaffected.
func asciiUpper(s string) string {
	return strings.Map(func(r rune) rune {
		if r >= 'a' && r <= 'z' {
			return r - ('a' - 'A')
		}
		return r
	}, s)
}
