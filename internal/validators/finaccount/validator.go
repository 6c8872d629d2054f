// SPDX-License-Identifier: Apache-2.0

package finaccount

import (
	"frcp-scan/internal/context"
	"frcp-scan/internal/detector"
	"frcp-scan/internal/position"
)

// MinDigits is the shortest digit run that can be a financial account
// number.
const MinDigits = 8

// Validator detects financial account numbers: maximal runs of MinDigits or
// more consecutive digits. A run is only reported when a financial keyword
// appears nearby, and never when it sits in a phone-number or case-number
// context.
type Validator struct{}

// NewValidator returns a new financial-account validator.
func NewValidator() *Validator {
	return &Validator{}
}

func (v *Validator) Name() string {
	return string(detector.CategoryFinancialAccount)
}

// Scan walks the text collecting maximal digit runs. Runs the disambiguators
// suppress are dropped silently and the scan continues past them.
func (v *Validator) Scan(text string) []detector.Finding {
	var findings []detector.Finding

	chars := []rune(text)
	tracker := position.NewTracker(text)
	n := len(chars)

	i := 0
	for i < n {
		if !isDigit(chars[i]) {
			i++
			continue
		}

		start := i
		for i < n && isDigit(chars[i]) {
			i++
		}
		if i-start < MinDigits {
			continue
		}

		startByte := tracker.ByteOffset(start)
		endByte := tracker.ByteOffset(i)

		if context.IsPhoneNumber(text, startByte, endByte) || context.IsCaseNumber(text, startByte) {
			continue
		}
		if !context.HasFinancialContext(text, startByte, endByte) {
			continue
		}

		matched := string(chars[start:i])
		findings = append(findings, detector.Finding{
			Category:             detector.CategoryFinancialAccount,
			StartByte:            startByte,
			EndByte:              endByte,
			MatchedText:          matched,
			RequiredRedactedForm: "XXXX" + matched[len(matched)-4:],
		})
	}

	return findings
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}
