// SPDX-License-Identifier: Apache-2.0

package detector

import "time"

// Category identifies the kind of PII a finding reports.
type Category string

const (
	CategorySSN              Category = "SSN"
	CategoryTaxpayerID       Category = "TAXPAYER_ID"
	CategoryDateOfBirth      Category = "DOB"
	CategoryFinancialAccount Category = "FINANCIAL_ACCOUNT"
)

// AllCategories lists every PII category in canonical order.
func AllCategories() []Category {
	return []Category{
		CategorySSN,
		CategoryTaxpayerID,
		CategoryDateOfBirth,
		CategoryFinancialAccount,
	}
}

// Finding is a single detected PII violation. StartByte/EndByte form a
// half-open byte span into the original document text, always aligned on
// character boundaries.
type Finding struct {
	Category             Category `json:"pii_type" yaml:"pii_type"`
	StartByte            int      `json:"start_position" yaml:"start_position"`
	EndByte              int      `json:"end_position" yaml:"end_position"`
	MatchedText          string   `json:"original_text" yaml:"original_text"`
	RequiredRedactedForm string   `json:"required_format" yaml:"required_format"`
}

// Validator is implemented by each per-category pattern matcher. Scan is a
// pure function of the document text; implementations never share state and
// may run concurrently.
type Validator interface {
	Name() string
	Scan(text string) []Finding
}

// ScanReport is the engine's sole output. Findings are sorted ascending by
// StartByte. Clean is true iff there are no findings and the document type
// is not restricted. RestrictionReason is non-nil iff Restricted.
type ScanReport struct {
	Clean             bool      `json:"clean" yaml:"clean"`
	Findings          []Finding `json:"violations" yaml:"violations"`
	Restricted        bool      `json:"restricted" yaml:"restricted"`
	RestrictionReason *string   `json:"restriction_reason" yaml:"restriction_reason"`
}

// SuppressedFinding represents a finding that was suppressed by a rule.
type SuppressedFinding struct {
	Finding      Finding    `json:"finding" yaml:"finding"`
	SuppressedBy string     `json:"suppressed_by" yaml:"suppressed_by"`
	RuleReason   string     `json:"rule_reason" yaml:"rule_reason"`
	ExpiresAt    *time.Time `json:"expires_at,omitempty" yaml:"expires_at,omitempty"`
}
