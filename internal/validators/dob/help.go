// SPDX-License-Identifier: Apache-2.0

package dob

import "frcp-scan/internal/help"

// GetCheckInfo returns standardized information about the DOB check
func (v *Validator) GetCheckInfo() help.CheckInfo {
	return help.CheckInfo{
		Name:             "DOB",
		ShortDescription: "Detects dates of birth following DOB keywords",
		DetailedDescription: `The DOB check detects birth dates in filings. FRCP 5.2(a) requires public filings to show only the year of birth.

Detection is keyword-gated: the check first locates every occurrence of "date of birth", "dob", and "born", then parses a date immediately after the keyword. Dates without a preceding keyword, such as hearing dates or filing dates, are never reported.`,

		Patterns: []string{
			"MM/DD/YYYY or MM-DD-YYYY after a keyword",
			"YYYY-MM-DD after a keyword",
			"Month DD, YYYY after a keyword (e.g., January 15, 1990)",
		},

		RequiredFormat: "Year only: <4-digit year>",

		Examples: []string{
			"frcp-scan --file sentencing-memo.txt --checks DOB",
		},
	}
}
