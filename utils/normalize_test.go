package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizePANNumber(t *testing.T) {
	// Already-valid PANs come back unchanged
	assert.Equal(t, "ABCDE1234F", NormalizePANNumber("ABCDE1234F"))
	assert.Equal(t, "ZZZZZ0000Z", NormalizePANNumber("ZZZZZ0000Z"))

	// Case and noise are cleaned up
	assert.Equal(t, "ABCDE1234F", NormalizePANNumber("abcde1234f"))
	assert.Equal(t, "ABCDE1234F", NormalizePANNumber(" AB-CDE 1234 F "))

	// Trailing garbage is truncated away
	assert.Equal(t, "ABCDE1234F", NormalizePANNumber("ABCDE1234FXYZ"))

	// Anything not reducible to the PAN shape is rejected
	assert.Equal(t, "", NormalizePANNumber(""))
	assert.Equal(t, "", NormalizePANNumber("1234567890"))
	assert.Equal(t, "", NormalizePANNumber("ABCDE12345"))
	assert.Equal(t, "", NormalizePANNumber("ABCD1234F"))
	assert.Equal(t, "", NormalizePANNumber("NOTHING HERE"))
}

func TestIsValidPAN(t *testing.T) {
	assert.True(t, IsValidPAN("ABCDE1234F"))
	assert.False(t, IsValidPAN("ABCDE1234FX"))
	assert.False(t, IsValidPAN("abcde1234f"))
	assert.False(t, IsValidPAN(""))
}

func TestNormalizeName(t *testing.T) {
	assert.Equal(t, "John Smith", NormalizeName("JOHN SMITH"))
	assert.Equal(t, "John Smith", NormalizeName("john   smith"))
	assert.Equal(t, "John Smith", NormalizeName("  JOHN SMITH  "))

	// Dots, slashes and hyphens survive cleaning
	assert.Equal(t, "Ravi S/o Kumar", NormalizeName("RAVI S/O KUMAR"))
	assert.Equal(t, "J. R. Smith", NormalizeName("J. R. SMITH"))
	assert.Equal(t, "Anne-marie Jones", NormalizeName("ANNE-MARIE JONES"))

	// Disallowed characters collapse into spaces
	assert.Equal(t, "John Smith", NormalizeName("JOHN*SMITH"))
	assert.Equal(t, "", NormalizeName("###@@@"))
	assert.Equal(t, "", NormalizeName(""))
	assert.Equal(t, "", NormalizeName("   "))
}

func TestNormalizeNameIdempotent(t *testing.T) {
	inputs := []string{
		"JOHN SMITH",
		"Ravi S/O Kumar",
		"anne-marie jones",
		"J. R. SMITH",
		"  messy ## input  ",
	}
	for _, in := range inputs {
		once := NormalizeName(in)
		assert.Equal(t, once, NormalizeName(once), "not idempotent for %q", in)
	}
}

func TestNormalizeDOB(t *testing.T) {
	// All five accepted layouts canonicalize to YYYY-MM-DD
	assert.Equal(t, "1990-02-01", NormalizeDOB("01/02/1990"))
	assert.Equal(t, "1990-02-01", NormalizeDOB("01-02-1990"))
	assert.Equal(t, "1947-08-15", NormalizeDOB("15.08.1947"))
	assert.Equal(t, "1990-02-01", NormalizeDOB("01/02/90"))
	assert.Equal(t, "1990-02-01", NormalizeDOB("1-2-90"))

	// Two-digit years pivot the same way strptime does
	assert.Equal(t, "2005-01-02", NormalizeDOB("02-01-05"))

	// Whitespace is trimmed before parsing
	assert.Equal(t, "1990-02-01", NormalizeDOB("  01/02/1990  "))
}

func TestNormalizeDOBPassthrough(t *testing.T) {
	// Unparseable candidates pass through trimmed, never emptied
	assert.Equal(t, "31/02/1990", NormalizeDOB("31/02/1990"))
	assert.Equal(t, "not a date", NormalizeDOB("  not a date  "))
	assert.Equal(t, "1990/02/01", NormalizeDOB("1990/02/01"))

	// Except when there was nothing there to begin with
	assert.Equal(t, "", NormalizeDOB(""))
	assert.Equal(t, "", NormalizeDOB("   "))
}
