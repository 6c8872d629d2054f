// SPDX-License-Identifier: Apache-2.0

package ssn

import (
	"strings"

	"frcp-scan/internal/context"
	"frcp-scan/internal/detector"
	"frcp-scan/internal/position"
)

// Validator detects Social Security Numbers in the two shapes FRCP 5.2
// filings leak them in: ddd-dd-dddd (dash or space separated, same separator
// in both places) and nine consecutive digits. Candidates inside case
// numbers or already in masked form are dropped.
type Validator struct{}

// NewValidator returns a new SSN validator.
func NewValidator() *Validator {
	return &Validator{}
}

func (v *Validator) Name() string {
	return string(detector.CategorySSN)
}

// Scan walks the text character by character. At each digit that starts a
// word (previous char not a digit) it tries the separated shape first, then
// the bare nine-digit shape. After a candidate, accepted or filtered, the
// scan resumes past its span so overlapping matches are never re-derived.
func (v *Validator) Scan(text string) []detector.Finding {
	var findings []detector.Finding

	chars := []rune(text)
	tracker := position.NewTracker(text)
	n := len(chars)

	i := 0
	for i < n {
		if !isDigit(chars[i]) || (i > 0 && isDigit(chars[i-1])) {
			i++
			continue
		}

		length, ok := matchAt(chars, i)
		if !ok {
			i++
			continue
		}

		startByte := tracker.ByteOffset(i)
		endByte := tracker.ByteOffset(i + length)
		matched := string(chars[i : i+length])

		if context.IsAlreadyRedacted(matched) || context.IsCaseNumber(text, startByte) {
			i += length
			continue
		}

		digits := digitsOnly(matched)
		findings = append(findings, detector.Finding{
			Category:             detector.CategorySSN,
			StartByte:            startByte,
			EndByte:              endByte,
			MatchedText:          matched,
			RequiredRedactedForm: "XXX-XX-" + digits[len(digits)-4:],
		})

		i += length
	}

	return findings
}

// matchAt returns the char length of an SSN candidate starting at start, or
// false when no shape matches.
func matchAt(chars []rune, start int) (int, bool) {
	n := len(chars)
	if start+9 > n {
		return 0, false
	}
	if !(isDigit(chars[start]) && isDigit(chars[start+1]) && isDigit(chars[start+2])) {
		return 0, false
	}

	// ddd<sep>dd<sep>dddd, the same separator in both positions
	if start+11 <= n {
		sep := chars[start+3]
		if (sep == '-' || sep == ' ') &&
			isDigit(chars[start+4]) && isDigit(chars[start+5]) &&
			chars[start+6] == sep &&
			isDigit(chars[start+7]) && isDigit(chars[start+8]) &&
			isDigit(chars[start+9]) && isDigit(chars[start+10]) {
			// trailing word boundary
			if start+11 < n && isDigit(chars[start+11]) {
				return 0, false
			}
			return 11, true
		}
	}

	// exactly nine consecutive digits; a longer run is a different kind of
	// number (e.g. a financial account) and must not be claimed here
	run := 0
	for p := start; p < n && isDigit(chars[p]); p++ {
		run++
	}
	if run == 9 {
		return 9, true
	}

	return 0, false
}

func digitsOnly(s string) string {
	var b strings.Builder
	for _, r := range s {
		if isDigit(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}
