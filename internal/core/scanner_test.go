// SPDX-License-Identifier: Apache-2.0

package core

import (
	"strings"
	"testing"

	"frcp-scan/internal/detector"
)

func TestScan_CleanDocument(t *testing.T) {
	report := Scan("This motion requests summary judgment based on the evidence presented.", "motion")

	if !report.Clean {
		t.Error("clean document should report clean")
	}
	if len(report.Findings) != 0 {
		t.Errorf("expected no findings, got %d", len(report.Findings))
	}
	if report.Restricted {
		t.Error("motion should not be restricted")
	}
	if report.RestrictionReason != nil {
		t.Error("restriction reason should be nil")
	}
}

func TestScan_EmptyInputs(t *testing.T) {
	report := Scan("", "")
	if !report.Clean {
		t.Error("empty document with empty label should be clean")
	}
	if report.Findings == nil {
		t.Error("findings must be an empty slice, not nil")
	}
}

func TestScan_SSNAndDOBInTextOrder(t *testing.T) {
	text := "Defendant born 03/15/1990 has SSN 123-45-6789 on record"
	report := Scan(text, "motion")

	if report.Clean {
		t.Error("document with PII should not be clean")
	}
	if len(report.Findings) != 2 {
		t.Fatalf("expected 2 findings, got %d", len(report.Findings))
	}
	if report.Findings[0].Category != detector.CategoryDateOfBirth {
		t.Errorf("first finding = %q, want DOB (earlier in text)", report.Findings[0].Category)
	}
	if report.Findings[1].Category != detector.CategorySSN {
		t.Errorf("second finding = %q, want SSN", report.Findings[1].Category)
	}
	if report.Findings[0].StartByte > report.Findings[1].StartByte {
		t.Error("findings are not sorted by start byte")
	}
}

func TestScan_FindingsSortedAndOnCharBoundaries(t *testing.T) {
	text := "Née was born 01/02/1985; SSN 111-22-3333; bank account 99887766554433"
	report := Scan(text, "motion")

	if len(report.Findings) != 3 {
		t.Fatalf("expected 3 findings, got %d", len(report.Findings))
	}
	prev := -1
	for _, f := range report.Findings {
		if f.StartByte < prev {
			t.Error("findings not sorted ascending by start byte")
		}
		prev = f.StartByte
		if f.StartByte < 0 || f.EndByte > len(text) || f.StartByte >= f.EndByte {
			t.Errorf("invalid span [%d, %d)", f.StartByte, f.EndByte)
		}
		if text[f.StartByte:f.EndByte] != f.MatchedText {
			t.Errorf("span does not slice to matched text %q", f.MatchedText)
		}
	}
}

func TestScan_RestrictedDocumentType(t *testing.T) {
	report := Scan("This is clean text with no PII", "presentence investigation")

	if report.Clean {
		t.Error("restricted document should not be clean")
	}
	if !report.Restricted {
		t.Error("presentence investigation should be restricted")
	}
	if report.RestrictionReason == nil || !strings.Contains(*report.RestrictionReason, "Presentence") {
		t.Error("restriction reason should mention Presentence")
	}
}

func TestScan_RestrictedWithPIIReportsBoth(t *testing.T) {
	report := Scan("Defendant SSN is 123-45-6789", "presentence investigation")

	if report.Clean {
		t.Error("report should not be clean")
	}
	if !report.Restricted {
		t.Error("report should be restricted")
	}
	if len(report.Findings) == 0 {
		t.Error("PII findings should also be reported")
	}
}

func TestRunScan_CheckFiltering(t *testing.T) {
	text := "Defendant born 03/15/1990 has SSN 123-45-6789 on record"
	result := RunScan(ScanConfig{
		DocumentText:      text,
		DocumentTypeLabel: "motion",
		Checks:            []string{"SSN"},
	})

	if len(result.Report.Findings) != 1 {
		t.Fatalf("expected 1 finding with only SSN enabled, got %d", len(result.Report.Findings))
	}
	if result.Report.Findings[0].Category != detector.CategorySSN {
		t.Errorf("finding = %q, want SSN", result.Report.Findings[0].Category)
	}
}

func TestParseChecksToRun_All(t *testing.T) {
	for _, input := range [][]string{nil, {}, {"all"}} {
		result := ParseChecksToRun(input)
		for check, enabled := range result {
			if !enabled {
				t.Errorf("input %v: check %q should be enabled", input, check)
			}
		}
	}
}

func TestParseChecksToRun_Specific(t *testing.T) {
	result := ParseChecksToRun([]string{" ssn ", "DOB"})
	if !result["SSN"] || !result["DOB"] {
		t.Error("SSN and DOB should be enabled")
	}
	if result["TAXPAYER_ID"] || result["FINANCIAL_ACCOUNT"] {
		t.Error("unlisted checks should stay disabled")
	}
}

func TestParseChecksToRun_UnknownIgnored(t *testing.T) {
	result := ParseChecksToRun([]string{"CREDIT_CARD", "SSN"})
	if !result["SSN"] {
		t.Error("SSN should be enabled")
	}
	if result["CREDIT_CARD"] {
		t.Error("unknown check should not appear")
	}
}

func TestBuildValidatorSet_Order(t *testing.T) {
	validators := BuildValidatorSet(ParseChecksToRun(nil))
	want := []string{"SSN", "TAXPAYER_ID", "DOB", "FINANCIAL_ACCOUNT"}
	if len(validators) != len(want) {
		t.Fatalf("expected %d validators, got %d", len(want), len(validators))
	}
	for i, v := range validators {
		if v.Name() != want[i] {
			t.Errorf("validator %d = %q, want %q", i, v.Name(), want[i])
		}
	}
}

func TestBuildValidatorSet_Filtered(t *testing.T) {
	validators := BuildValidatorSet(ParseChecksToRun([]string{"DOB"}))
	if len(validators) != 1 || validators[0].Name() != "DOB" {
		t.Errorf("expected only the DOB validator, got %d validators", len(validators))
	}
}
