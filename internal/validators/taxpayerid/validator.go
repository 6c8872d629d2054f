// SPDX-License-Identifier: Apache-2.0

package taxpayerid

import (
	"strings"

	"frcp-scan/internal/context"
	"frcp-scan/internal/detector"
	"frcp-scan/internal/position"
)

// Validator detects taxpayer/employer identification numbers (dd-ddddddd).
// The bare shape is common in ordinary docket text, so a candidate is only
// reported when a tax keyword precedes it; case-number candidates are
// dropped outright.
type Validator struct{}

// NewValidator returns a new taxpayer-ID validator.
func NewValidator() *Validator {
	return &Validator{}
}

func (v *Validator) Name() string {
	return string(detector.CategoryTaxpayerID)
}

// Scan walks the text character by character, trying the dd-ddddddd shape
// at every digit that starts a word.
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

		if context.IsCaseNumber(text, startByte) || !context.HasTaxContext(text, startByte) {
			i += length
			continue
		}

		matched := string(chars[i : i+length])
		digits := digitsOnly(matched)
		findings = append(findings, detector.Finding{
			Category:             detector.CategoryTaxpayerID,
			StartByte:            startByte,
			EndByte:              endByte,
			MatchedText:          matched,
			RequiredRedactedForm: "XX-XXX" + digits[len(digits)-4:],
		})

		i += length
	}

	return findings
}

// matchAt returns the char length of a taxpayer-ID candidate starting at
// start: two digits, a dash or space, then seven digits, with a trailing
// word boundary.
func matchAt(chars []rune, start int) (int, bool) {
	n := len(chars)
	if start+10 > n {
		return 0, false
	}
	if !(isDigit(chars[start]) && isDigit(chars[start+1])) {
		return 0, false
	}

	sep := chars[start+2]
	if sep != '-' && sep != ' ' {
		return 0, false
	}
	for offset := 3; offset < 10; offset++ {
		if !isDigit(chars[start+offset]) {
			return 0, false
		}
	}
	if start+10 < n && isDigit(chars[start+10]) {
		return 0, false
	}
	return 10, true
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
