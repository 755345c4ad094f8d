package utils

import "strings"

// PANParsed holds the fields extracted from PAN card OCR text. Any field the
// text did not yield stays empty; absence is an expected outcome, not an
// error.
type PANParsed struct {
	PAN        string
	Name       string
	FatherName string
	DOB        string
	RawText    string
}

// ParsePANText extracts PAN number, name, father's name and DOB from raw OCR
// text. It never fails: each field degrades independently to an empty string
// when nothing usable is found. Pure function, safe for concurrent callers.
func ParsePANText(raw string) PANParsed {
	lines := splitLines(raw)
	joined := strings.Join(lines, " ")

	dobCandidate := findByKeywords(lines, dobKeywords)
	if dobCandidate == "" {
		dobCandidate = locateDateToken(joined)
	}

	return PANParsed{
		PAN:        NormalizePANNumber(locatePAN(joined, lines)),
		Name:       NormalizeName(findByKeywords(lines, nameKeywords)),
		FatherName: NormalizeName(findByKeywords(lines, fatherKeywords)),
		DOB:        NormalizeDOB(dobCandidate),
		RawText:    strings.TrimSpace(raw),
	}
}

// splitLines trims every line and drops empty ones. Line order is preserved
// because keyword lookups fall back to the following line.
func splitLines(raw string) []string {
	rawLines := strings.Split(raw, "\n")
	lines := make([]string, 0, len(rawLines))
	for _, l := range rawLines {
		l = strings.TrimSpace(l)
		if l == "" {
			continue
		}
		lines = append(lines, l)
	}
	return lines
}
