// SPDX-License-Identifier: Apache-2.0

package dob

import (
	"strings"
	"testing"

	"frcp-scan/internal/detector"
)

func TestScan_TextualDateAfterBorn(t *testing.T) {
	text := "Defendant was born January 15, 1990 in Arkansas"
	findings := NewValidator().Scan(text)

	if len(findings) != 1 {
		t.Fatalf("expected 1 finding, got %d", len(findings))
	}
	f := findings[0]
	if f.Category != detector.CategoryDateOfBirth {
		t.Errorf("category = %q, want DOB", f.Category)
	}
	if f.MatchedText != "January 15, 1990" {
		t.Errorf("matched text = %q", f.MatchedText)
	}
	if f.RequiredRedactedForm != "Year only: 1990" {
		t.Errorf("required form = %q", f.RequiredRedactedForm)
	}
	if got := text[f.StartByte:f.EndByte]; got != "January 15, 1990" {
		t.Errorf("span slices to %q", got)
	}
}

func TestScan_NumericDateAfterDOB(t *testing.T) {
	findings := NewValidator().Scan("DOB: 03/15/1985 listed on form")

	if len(findings) != 1 {
		t.Fatalf("expected 1 finding, got %d", len(findings))
	}
	if findings[0].MatchedText != "03/15/1985" {
		t.Errorf("matched text = %q", findings[0].MatchedText)
	}
	if !strings.Contains(findings[0].RequiredRedactedForm, "1985") {
		t.Errorf("required form %q should contain the year", findings[0].RequiredRedactedForm)
	}
}

func TestScan_ISODateAfterDateOfBirth(t *testing.T) {
	findings := NewValidator().Scan("Date of birth: 1990-06-20 confirmed")

	// "date of birth" matches, and so does the embedded "born"-free "dob"?
	// No: "date of birth" does not contain "dob", so exactly one finding.
	if len(findings) != 1 {
		t.Fatalf("expected 1 finding, got %d", len(findings))
	}
	if findings[0].MatchedText != "1990-06-20" {
		t.Errorf("matched text = %q", findings[0].MatchedText)
	}
	if findings[0].RequiredRedactedForm != "Year only: 1990" {
		t.Errorf("required form = %q", findings[0].RequiredRedactedForm)
	}
}

func TestScan_DateWithoutKeywordNotFlagged(t *testing.T) {
	cases := []string{
		"Filed on January 15, 1990 in the Eastern District",
		"The hearing was scheduled for 01/15/2025 at 9:00 AM",
	}
	for _, text := range cases {
		if findings := NewValidator().Scan(text); len(findings) != 0 {
			t.Errorf("date without keyword flagged in %q", text)
		}
	}
}

func TestScan_KeywordWithoutDateNotFlagged(t *testing.T) {
	if findings := NewValidator().Scan("The defendant was born in Little Rock"); len(findings) != 0 {
		t.Errorf("keyword without a date produced %d findings", len(findings))
	}
}

func TestScan_DashSeparatedNumericDate(t *testing.T) {
	findings := NewValidator().Scan("born 03-15-1985 per records")
	if len(findings) != 1 {
		t.Fatalf("expected 1 finding, got %d", len(findings))
	}
	if findings[0].MatchedText != "03-15-1985" {
		t.Errorf("matched text = %q", findings[0].MatchedText)
	}
}

func TestScan_MixedDateSeparatorsRejected(t *testing.T) {
	if findings := NewValidator().Scan("born 03/15-1985 per records"); len(findings) != 0 {
		t.Errorf("mixed separators parsed as a date, got %d findings", len(findings))
	}
}

func TestScan_TextualDateWithoutComma(t *testing.T) {
	findings := NewValidator().Scan("born March 3 1999 upstate")
	if len(findings) != 1 {
		t.Fatalf("expected 1 finding, got %d", len(findings))
	}
	if findings[0].MatchedText != "March 3 1999" {
		t.Errorf("matched text = %q", findings[0].MatchedText)
	}
}

func TestScan_MultipleKeywordOccurrences(t *testing.T) {
	text := "DOB 01/02/1980 and co-defendant DOB 03/04/1982"
	findings := NewValidator().Scan(text)
	if len(findings) != 2 {
		t.Fatalf("expected 2 findings, got %d", len(findings))
	}
}

func TestScan_CaseInsensitiveKeyword(t *testing.T) {
	findings := NewValidator().Scan("DATE OF BIRTH: 05/06/1975")
	if len(findings) != 1 {
		t.Fatalf("expected 1 finding, got %d", len(findings))
	}
}

func TestExtractYear_OutOfRangeFallsBack(t *testing.T) {
	// No 4-digit run in [1900, 2100] anywhere in the date text.
	if got := extractYear("12/31/2999"); got != redactedFallback {
		t.Errorf("extractYear = %q, want %q", got, redactedFallback)
	}
}

func TestExtractYear_SkipsOutOfRangeRun(t *testing.T) {
	// The only 4-digit run in range is the trailing 1985.
	if got := extractYear("31/15/1985"); got != "1985" {
		t.Errorf("extractYear = %q, want 1985", got)
	}
}
