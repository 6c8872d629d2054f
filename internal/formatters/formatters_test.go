// SPDX-License-Identifier: Apache-2.0

package formatters_test

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	goyaml "gopkg.in/yaml.v3"

	"frcp-scan/internal/detector"
	"frcp-scan/internal/formatters"

	_ "frcp-scan/internal/formatters/csv"
	_ "frcp-scan/internal/formatters/json"
	_ "frcp-scan/internal/formatters/text"
	_ "frcp-scan/internal/formatters/yaml"
)

func sampleReport() *detector.ScanReport {
	return &detector.ScanReport{
		Clean: false,
		Findings: []detector.Finding{
			{
				Category:             detector.CategorySSN,
				StartByte:            12,
				EndByte:              23,
				MatchedText:          "123-45-6789",
				RequiredRedactedForm: "XXX-XX-6789",
			},
			{
				Category:             detector.CategoryFinancialAccount,
				StartByte:            40,
				EndByte:              52,
				MatchedText:          "123456789012",
				RequiredRedactedForm: "XXXX9012",
			},
		},
	}
}

func TestRegistryHasAllFormats(t *testing.T) {
	for _, name := range []string{"json", "text", "csv", "yaml"} {
		_, ok := formatters.Get(name)
		assert.True(t, ok, "formatter %s should be registered", name)
	}
}

func TestExportUnknownFormat(t *testing.T) {
	_, err := formatters.Export("xml", sampleReport(), nil, formatters.FormatterOptions{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported format")
}

func TestJSONFormat(t *testing.T) {
	out, err := formatters.Export("json", sampleReport(), nil, formatters.FormatterOptions{})
	require.NoError(t, err)

	var decoded struct {
		Clean      bool               `json:"clean"`
		Violations []detector.Finding `json:"violations"`
		Restricted bool               `json:"restricted"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &decoded))
	assert.False(t, decoded.Clean)
	require.Len(t, decoded.Violations, 2)
	assert.Equal(t, detector.CategorySSN, decoded.Violations[0].Category)
	assert.Equal(t, "XXX-XX-6789", decoded.Violations[0].RequiredRedactedForm)
}

func TestYAMLFormat(t *testing.T) {
	out, err := formatters.Export("yaml", sampleReport(), nil, formatters.FormatterOptions{})
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, goyaml.Unmarshal([]byte(out), &decoded))
	assert.Equal(t, false, decoded["clean"])
	violations, ok := decoded["violations"].([]interface{})
	require.True(t, ok)
	assert.Len(t, violations, 2)
}

func TestCSVFormat(t *testing.T) {
	out, err := formatters.Export("csv", sampleReport(), nil, formatters.FormatterOptions{ShowMatch: true})
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "pii_type,start_position,end_position,original_text,required_format,suppressed_by", lines[0])
	assert.Equal(t, "SSN,12,23,123-45-6789,XXX-XX-6789,", lines[1])
}

func TestCSVHidesMatchByDefault(t *testing.T) {
	out, err := formatters.Export("csv", sampleReport(), nil, formatters.FormatterOptions{})
	require.NoError(t, err)
	assert.NotContains(t, out, "123-45-6789")
	assert.Contains(t, out, "XXX-XX-6789")
}

func TestTextFormatClean(t *testing.T) {
	report := &detector.ScanReport{Clean: true, Findings: []detector.Finding{}}
	out, err := formatters.Export("text", report, nil, formatters.FormatterOptions{NoColor: true})
	require.NoError(t, err)
	assert.Contains(t, out, "CLEAN")
}

func TestTextFormatRestricted(t *testing.T) {
	reason := "Presentence investigation reports are restricted under FRCP 5.2(b)"
	report := &detector.ScanReport{
		Clean:             false,
		Findings:          []detector.Finding{},
		Restricted:        true,
		RestrictionReason: &reason,
	}
	out, err := formatters.Export("text", report, nil, formatters.FormatterOptions{NoColor: true})
	require.NoError(t, err)
	assert.Contains(t, out, "RESTRICTED")
	assert.Contains(t, out, "FRCP 5.2(b)")
}

func TestTextFormatViolations(t *testing.T) {
	out, err := formatters.Export("text", sampleReport(), nil, formatters.FormatterOptions{NoColor: true})
	require.NoError(t, err)
	assert.Contains(t, out, "VIOLATIONS FOUND")
	assert.Contains(t, out, "SSN")
	assert.Contains(t, out, "XXX-XX-6789")
	assert.NotContains(t, out, "123-45-6789")
}

func TestTextFormatShowMatch(t *testing.T) {
	out, err := formatters.Export("text", sampleReport(), nil, formatters.FormatterOptions{NoColor: true, ShowMatch: true})
	require.NoError(t, err)
	assert.Contains(t, out, "123-45-6789")
}

func TestGetFormatInfo(t *testing.T) {
	info := formatters.GetFormatInfo("json")
	assert.Equal(t, "json", info.Name)
	assert.Equal(t, ".json", info.Extension)
	assert.Equal(t, "application/json", info.MimeType)

	assert.Equal(t, formatters.FormatInfo{}, formatters.GetFormatInfo("nope"))
}
