package utils

import "regexp"

// Compiled once at startup, read-only afterwards.
var (
	// PAN format: 5 letters, 4 digits, 1 letter (e.g. ABCDE1234F)
	panTokenRegex = regexp.MustCompile(`\b[A-Z]{5}[0-9]{4}[A-Z]\b`)
	panExactRegex = regexp.MustCompile(`^[A-Z]{5}[0-9]{4}[A-Z]$`)

	// Date tokens like 01/02/1990, 1-2-90
	dateTokenRegex = regexp.MustCompile(`\b\d{1,2}[-/]\d{1,2}[-/]\d{2,4}\b`)

	// Everything a cleaned name must not contain
	invalidNameCharsRegex = regexp.MustCompile(`[^A-Z0-9\s./-]`)

	nonAlphanumericRegex = regexp.MustCompile(`[^A-Z0-9]`)
)
