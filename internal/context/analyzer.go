// SPDX-License-Identifier: Apache-2.0

// Package context provides the disambiguation predicates the pattern
// matchers consult to suppress false positives (case numbers, phone
// numbers, already-redacted values) or to require positive contextual
// evidence (tax and financial keywords). Every predicate is a pure
// function over the full document text and a byte-position window.
package context

import "strings"

// Window sizes in bytes for the context predicates. These are fixed tuned
// heuristics, not user configuration; they are exported so tests can assert
// exact boundary behavior.
const (
	// CaseNumberColonWindow is how far back to look for the "d:" prefix of
	// a federal case number like 5:24-cv-05001.
	CaseNumberColonWindow = 5

	// CaseNumberBeforeWindow / CaseNumberAfterWindow bound the search for
	// case-type tokens such as "-cv-" around a candidate match.
	CaseNumberBeforeWindow = 20
	CaseNumberAfterWindow  = 30

	// PhoneAreaCodeWindow is how far back to look for a "(ddd)" area code.
	PhoneAreaCodeWindow = 10

	// PhoneKeywordWindow is how far back to look for phone keywords.
	PhoneKeywordWindow = 30

	// TaxKeywordWindow is how far back to look for taxpayer-ID keywords.
	TaxKeywordWindow = 40

	// FinancialKeywordWindow extends both before and after a digit run when
	// looking for financial keywords.
	FinancialKeywordWindow = 50
)

// CaseNumberTokens are the case-type segments of federal docket numbers.
var CaseNumberTokens = []string{"-cv-", "-cr-", "-mc-", "-mj-", "-po-"}

// PhoneKeywords indicate a telephone number context.
var PhoneKeywords = []string{"phone", "tel", "fax", "call", "mobile", "cell"}

// TaxKeywords are the positive evidence required before a taxpayer-ID
// shaped number is reported.
var TaxKeywords = []string{"ein", "tin", "taxpayer", "tax id", "employer identification"}

// FinancialKeywords are the positive evidence required before a long digit
// run is reported as a financial account.
var FinancialKeywords = []string{
	"account", "routing", "bank", "acct", "deposit", "wire",
	"swift", "iban", "checking", "savings", "credit card",
}

// LowerASCII lowercases only the bytes A-Z, leaving everything else
// untouched. Unlike strings.ToLower it never changes byte lengths, so byte
// offsets computed against the lowered text are valid in the original.
func LowerASCII(s string) string {
	return strings.Map(func(r rune) rune {
		if r >= 'A' && r <= 'Z' {
			return r + ('a' - 'A')
		}
		return r
	}, s)
}

// IsAlreadyRedacted reports whether matched is already in the compliant
// masked form (XXX-XX-dddd or XXX XX dddd), case-insensitively.
func IsAlreadyRedacted(matched string) bool {
	lower := LowerASCII(matched)
	return strings.HasPrefix(lower, "xxx-xx-") || strings.HasPrefix(lower, "xxx xx ")
}

// IsCaseNumber reports whether the candidate starting at byte offset start
// sits inside a federal case number. Two signals: a "d:" token within the
// preceding CaseNumberColonWindow bytes, or a case-type segment like "-cv-"
// within the surrounding window.
func IsCaseNumber(text string, start int) bool {
	before := text[clampLow(start-CaseNumberColonWindow):clampIdx(start, len(text))]
	base := clampIdx(start, len(text)) - len(before)
	for i := len(before) - 1; i >= 0; i-- {
		if before[i] != ':' {
			continue
		}
		abs := base + i
		if abs > 0 && isDigitByte(text[abs-1]) {
			return true
		}
	}

	windowStart := clampLow(start - CaseNumberBeforeWindow)
	windowEnd := clampIdx(start+CaseNumberAfterWindow, len(text))
	window := LowerASCII(text[windowStart:windowEnd])
	for _, token := range CaseNumberTokens {
		if strings.Contains(window, token) {
			return true
		}
	}
	return false
}

// IsPhoneNumber reports whether the digit run spanning [start, end) looks
// like part of a telephone number: a parenthesized 3-digit area code just
// before it, parentheses inside the span itself, or a phone keyword within
// the preceding PhoneKeywordWindow bytes.
func IsPhoneNumber(text string, start, end int) bool {
	start = clampIdx(start, len(text))
	end = clampIdx(end, len(text))

	before := text[clampLow(start-PhoneAreaCodeWindow):start]
	if paren := strings.LastIndexByte(before, '('); paren >= 0 {
		afterParen := before[paren:]
		digits := 0
		for i := 0; i < len(afterParen); i++ {
			if isDigitByte(afterParen[i]) {
				digits++
			}
		}
		if digits == 3 && strings.Contains(afterParen, ")") {
			return true
		}
	}

	matched := text[start:end]
	if strings.Contains(matched, "(") && strings.Contains(matched, ")") {
		return true
	}

	keywordWindow := LowerASCII(text[clampLow(start-PhoneKeywordWindow):start])
	for _, kw := range PhoneKeywords {
		if strings.Contains(keywordWindow, kw) {
			return true
		}
	}
	return false
}

// HasTaxContext reports whether a taxpayer-ID keyword appears within the
// TaxKeywordWindow bytes before start. Unlike the suppression predicates
// this is a requirement: a TIN-shaped number is only reported when it holds.
func HasTaxContext(text string, start int) bool {
	window := LowerASCII(text[clampLow(start-TaxKeywordWindow):clampIdx(start, len(text))])
	for _, kw := range TaxKeywords {
		if strings.Contains(window, kw) {
			return true
		}
	}
	return false
}

// HasFinancialContext reports whether a financial keyword appears within
// FinancialKeywordWindow bytes before start or after end. A keyword after
// the digits counts the same as one before them.
func HasFinancialContext(text string, start, end int) bool {
	windowStart := clampLow(start - FinancialKeywordWindow)
	windowEnd := clampIdx(end+FinancialKeywordWindow, len(text))
	if windowStart > windowEnd {
		return false
	}
	window := LowerASCII(text[windowStart:windowEnd])
	for _, kw := range FinancialKeywords {
		if strings.Contains(window, kw) {
			return true
		}
	}
	return false
}

func clampLow(i int) int {
	if i < 0 {
		return 0
	}
	return i
}

func clampIdx(i, max int) int {
	if i < 0 {
		return 0
	}
	if i > max {
		return max
	}
	return i
}

func isDigitByte(b byte) bool {
	return b >= '0' && b <= '9'
}
