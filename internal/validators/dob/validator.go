// SPDX-License-Identifier: Apache-2.0

package dob

import (
	"strconv"
	"strings"

	"frcp-scan/internal/context"
	"frcp-scan/internal/detector"
)

// Keywords that gate date-of-birth detection. A date with no preceding
// keyword is procedural text and is never reported.
var Keywords = []string{"date of birth", "dob", "born"}

var monthNames = []string{
	"january", "february", "march", "april", "may", "june",
	"july", "august", "september", "october", "november", "december",
}

// redactedFallback is used when no plausible year can be extracted from a
// matched date.
const redactedFallback = "REDACTED"

// Validator detects dates of birth. Detection is keyword-gated, not
// pattern-gated: every occurrence of a DOB keyword is located first, then a
// date is parsed immediately after it. The required form keeps only the
// year, which FRCP 5.2(a) permits in public filings.
type Validator struct{}

// NewValidator returns a new date-of-birth validator.
func NewValidator() *Validator {
	return &Validator{}
}

func (v *Validator) Name() string {
	return string(detector.CategoryDateOfBirth)
}

// Scan finds every occurrence of each keyword independently, skips any
// separator characters after it, and reports a finding when a date parses
// at that position.
func (v *Validator) Scan(text string) []detector.Finding {
	var findings []detector.Finding

	lower := context.LowerASCII(text)
	for _, keyword := range Keywords {
		from := 0
		for {
			rel := strings.Index(lower[from:], keyword)
			if rel < 0 {
				break
			}
			keywordPos := from + rel
			scanPos := keywordPos + len(keyword)
			for scanPos < len(text) && isSeparator(text[scanPos]) {
				scanPos++
			}

			if matched, ok := matchDateAt(text[scanPos:]); ok {
				findings = append(findings, detector.Finding{
					Category:             detector.CategoryDateOfBirth,
					StartByte:            scanPos,
					EndByte:              scanPos + len(matched),
					MatchedText:          matched,
					RequiredRedactedForm: "Year only: " + extractYear(matched),
				})
			}

			from = keywordPos + len(keyword)
		}
	}

	return findings
}

func isSeparator(b byte) bool {
	return b == ' ' || b == ':' || b == '.' || b == '\t'
}

// matchDateAt tries to parse a date at the start of s. Supported forms, in
// order: MM/DD/YYYY or MM-DD-YYYY (same separator in both positions),
// YYYY-MM-DD, and a textual "Month DD, YYYY". All matched text is ASCII, so
// its byte length equals its character length.
func matchDateAt(s string) (string, bool) {
	// MM/DD/YYYY or MM-DD-YYYY
	if len(s) >= 10 && isDigit(s[0]) && isDigit(s[1]) {
		sep := s[2]
		if (sep == '/' || sep == '-') &&
			isDigit(s[3]) && isDigit(s[4]) && s[5] == sep &&
			isDigit(s[6]) && isDigit(s[7]) && isDigit(s[8]) && isDigit(s[9]) {
			return s[:10], true
		}
	}

	// YYYY-MM-DD
	if len(s) >= 10 &&
		isDigit(s[0]) && isDigit(s[1]) && isDigit(s[2]) && isDigit(s[3]) &&
		s[4] == '-' && isDigit(s[5]) && isDigit(s[6]) &&
		s[7] == '-' && isDigit(s[8]) && isDigit(s[9]) {
		return s[:10], true
	}

	// Month DD, YYYY
	lower := context.LowerASCII(s)
	for _, month := range monthNames {
		if !strings.HasPrefix(lower, month) {
			continue
		}
		pos := len(month)
		for pos < len(s) && s[pos] == ' ' {
			pos++
		}
		dayStart := pos
		for pos < len(s) && isDigit(s[pos]) {
			pos++
		}
		if pos == dayStart {
			continue
		}
		if pos < len(s) && s[pos] == ',' {
			pos++
		}
		for pos < len(s) && s[pos] == ' ' {
			pos++
		}
		yearStart := pos
		for pos < len(s) && isDigit(s[pos]) {
			pos++
		}
		if pos-yearStart == 4 {
			return s[:pos], true
		}
	}

	return "", false
}

// extractYear scans the matched date left to right for the first 4-digit
// run whose value lies in [1900, 2100].
func extractYear(date string) string {
	for i := 0; i+4 <= len(date); i++ {
		if !(isDigit(date[i]) && isDigit(date[i+1]) && isDigit(date[i+2]) && isDigit(date[i+3])) {
			continue
		}
		year := date[i : i+4]
		if n, err := strconv.Atoi(year); err == nil && n >= 1900 && n <= 2100 {
			return year
		}
	}
	return redactedFallback
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}
