// SPDX-License-Identifier: Apache-2.0

package taxpayerid

import "frcp-scan/internal/help"

// GetCheckInfo returns standardized information about the taxpayer-ID check
func (v *Validator) GetCheckInfo() help.CheckInfo {
	return help.CheckInfo{
		Name:             "TAXPAYER_ID",
		ShortDescription: "Detects unredacted taxpayer/employer identification numbers",
		DetailedDescription: `The taxpayer-ID check detects EIN/TIN values in the dd-ddddddd shape. FRCP 5.2(a) requires public filings to show only the last four digits.

Because the shape is short and ambiguous, a candidate is only reported when positive evidence appears shortly before it: "EIN", "TIN", "taxpayer", "tax id", or "employer identification". Candidates inside federal case numbers are never reported.`,

		Patterns: []string{
			"2-7 digit groups with a dash (e.g., 12-3456789)",
			"2-7 digit groups with a space (e.g., 12 3456789)",
		},

		RequiredFormat: "XX-XXX<last four digits>",

		Examples: []string{
			"frcp-scan --file tax-filing.txt --checks TAXPAYER_ID",
		},
	}
}
