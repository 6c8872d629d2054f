// SPDX-License-Identifier: Apache-2.0

package ssn

import (
	"strings"
	"testing"

	"frcp-scan/internal/detector"
)

func TestScan_DashSeparated(t *testing.T) {
	v := NewValidator()
	text := "John's SSN is 123-45-6789"
	findings := v.Scan(text)

	if len(findings) != 1 {
		t.Fatalf("expected 1 finding, got %d", len(findings))
	}
	f := findings[0]
	if f.Category != detector.CategorySSN {
		t.Errorf("category = %q, want SSN", f.Category)
	}
	if f.MatchedText != "123-45-6789" {
		t.Errorf("matched text = %q, want 123-45-6789", f.MatchedText)
	}
	if f.RequiredRedactedForm != "XXX-XX-6789" {
		t.Errorf("required form = %q, want XXX-XX-6789", f.RequiredRedactedForm)
	}
	if got := text[f.StartByte:f.EndByte]; got != "123-45-6789" {
		t.Errorf("span slices to %q, want the SSN", got)
	}
}

func TestScan_SpaceSeparated(t *testing.T) {
	findings := NewValidator().Scan("SSN: 123 45 6789 on file")

	if len(findings) != 1 {
		t.Fatalf("expected 1 finding, got %d", len(findings))
	}
	if findings[0].MatchedText != "123 45 6789" {
		t.Errorf("matched text = %q, want space form", findings[0].MatchedText)
	}
}

func TestScan_MixedSeparatorsRejected(t *testing.T) {
	// dash then space is not a valid SSN shape
	findings := NewValidator().Scan("number 123-45 6789 noted")
	if len(findings) != 0 {
		t.Errorf("mixed separators should not match, got %d findings", len(findings))
	}
}

func TestScan_NineConsecutiveDigits(t *testing.T) {
	findings := NewValidator().Scan("identifier 123456789 on record")

	if len(findings) != 1 {
		t.Fatalf("expected 1 finding, got %d", len(findings))
	}
	if findings[0].RequiredRedactedForm != "XXX-XX-6789" {
		t.Errorf("required form = %q", findings[0].RequiredRedactedForm)
	}
}

func TestScan_TenDigitsNotClaimed(t *testing.T) {
	findings := NewValidator().Scan("identifier 1234567890 on record")
	if len(findings) != 0 {
		t.Errorf("10-digit run should not match as SSN, got %d findings", len(findings))
	}
}

func TestScan_TrailingDigitRejectsSeparatedForm(t *testing.T) {
	findings := NewValidator().Scan("value 123-45-67890 noted")
	if len(findings) != 0 {
		t.Errorf("trailing digit should reject the match, got %d findings", len(findings))
	}
}

func TestScan_AlreadyRedactedSkipped(t *testing.T) {
	findings := NewValidator().Scan("SSN: XXX-XX-6789 is on file")
	if len(findings) != 0 {
		t.Errorf("redacted SSN should not be flagged, got %d findings", len(findings))
	}
}

func TestScan_CaseNumberSkipped(t *testing.T) {
	cases := []string{
		"Case 5:24-cv-05001 filed in district court",
		"Case 3:23-cr-00123 pending",
	}
	for _, text := range cases {
		if findings := NewValidator().Scan(text); len(findings) != 0 {
			t.Errorf("case number in %q flagged as SSN", text)
		}
	}
}

func TestScan_MultipleSSNs(t *testing.T) {
	findings := NewValidator().Scan("Plaintiff SSN 111-22-3333 and defendant SSN 444-55-6666")

	if len(findings) != 2 {
		t.Fatalf("expected 2 findings, got %d", len(findings))
	}
	if findings[0].StartByte >= findings[1].StartByte {
		t.Error("findings should appear in text order")
	}
}

func TestScan_MultiByteTextPositions(t *testing.T) {
	text := "Défendant's SSN is 123-45-6789"
	findings := NewValidator().Scan(text)

	if len(findings) != 1 {
		t.Fatalf("expected 1 finding, got %d", len(findings))
	}
	f := findings[0]
	if got := text[f.StartByte:f.EndByte]; got != "123-45-6789" {
		t.Errorf("byte span slices to %q, want the SSN", got)
	}
	if f.StartByte != strings.Index(text, "123") {
		t.Errorf("start byte = %d, want %d", f.StartByte, strings.Index(text, "123"))
	}
}

func TestScan_SSNAtEndOfText(t *testing.T) {
	findings := NewValidator().Scan("SSN 123-45-6789")
	if len(findings) != 1 {
		t.Fatalf("expected 1 finding at end of text, got %d", len(findings))
	}
}

func TestScan_EmptyText(t *testing.T) {
	if findings := NewValidator().Scan(""); len(findings) != 0 {
		t.Errorf("empty text produced %d findings", len(findings))
	}
}
