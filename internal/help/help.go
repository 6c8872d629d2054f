// SPDX-License-Identifier: Apache-2.0

package help

import (
	"fmt"
	"os"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/fatih/color"
)

// CheckInfo contains standardized information about a check
type CheckInfo struct {
	Name                string   // Name of the check (e.g., "SSN")
	ShortDescription    string   // Short description for the checks list
	DetailedDescription string   // Detailed description of what the check does
	Patterns            []string // Patterns the check looks for
	RequiredFormat      string   // Redacted form the check demands
	Examples            []string // Usage examples
}

// Provider defines the interface for help content providers
type Provider interface {
	GetCheckInfo() CheckInfo
}

// System manages help content for the application
type System struct {
	providers map[string]Provider
	noColor   bool
	colors    map[string]*color.Color
}

// NewSystem creates a new help system
func NewSystem(noColor bool) *System {
	if noColor {
		color.NoColor = true
	}

	return &System{
		providers: make(map[string]Provider),
		noColor:   noColor,
		colors: map[string]*color.Color{
			"title":    color.New(color.FgWhite, color.Bold),
			"header":   color.New(color.FgBlue, color.Bold),
			"item":     color.New(color.FgCyan),
			"emphasis": color.New(color.FgWhite, color.Bold),
			"negative": color.New(color.FgRed),
			"example":  color.New(color.FgMagenta),
		},
	}
}

// RegisterProvider adds a help provider to the system
func (h *System) RegisterProvider(provider Provider) {
	info := provider.GetCheckInfo()
	h.providers[strings.ToLower(info.Name)] = provider
}

// ShowGeneralHelp displays general usage information
func (h *System) ShowGeneralHelp() {
	h.colors["title"].Println("frcp-scan - Redaction Compliance Scanner for Court Filings")
	fmt.Println("==========================================================")
	fmt.Println()
	h.colors["header"].Println("USAGE:")
	fmt.Println("  frcp-scan --file <path-to-filing> [options]")
	fmt.Println("  frcp-scan --serve [--port <port>]  # HTTP server mode")
	fmt.Println()

	h.colors["header"].Println("OPTIONS:")

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "  --file\t<path>\tPath to the filing to scan (reads stdin when omitted)")
	fmt.Fprintln(w, "  --doc-type\t<label>\tDocument type label for the restricted-type check")
	fmt.Fprintln(w, "  --checks\t<checks>\tChecks to run: SSN,TAXPAYER_ID,DOB,FINANCIAL_ACCOUNT,all (default: all)")
	fmt.Fprintln(w, "  --format\t<format>\tOutput format: text, json, csv, yaml (default: text)")
	fmt.Fprintln(w, "  --output\t<path>\tPath to output file (default: stdout)")
	fmt.Fprintln(w, "  --config\t<path>\tPath to configuration file (YAML)")
	fmt.Fprintln(w, "  --profile\t<name>\tProfile name to use from config file")
	fmt.Fprintln(w, "  --list-profiles\t\tList available profiles in config file")
	fmt.Fprintln(w, "  --suppressions\t<path>\tPath to suppression rule file (default: .frcp-suppressions.yaml)")
	fmt.Fprintln(w, "  --suppress-add\t\tAdd suppression rules for every finding in this scan")
	fmt.Fprintln(w, "  --suppress-reason\t<text>\tReason recorded on added suppression rules")
	fmt.Fprintln(w, "  --suppress-by\t<name>\tAuthor recorded on added suppression rules")
	fmt.Fprintln(w, "  --verbose\t\tDisplay detailed information for each finding")
	fmt.Fprintln(w, "  --show-match\t\tDisplay the matched text in findings (otherwise hidden)")
	fmt.Fprintln(w, "  --no-color\t\tDisable colored output")
	fmt.Fprintln(w, "  --list-checks\t\tList available checks and exit")
	fmt.Fprintln(w, "  --explain\t<check>\tShow detailed help for a specific check")
	fmt.Fprintln(w, "  --serve\t\tStart HTTP server mode instead of CLI scanning")
	fmt.Fprintln(w, "  --port\t<port>\tPort for HTTP server (default: 8080)")
	fmt.Fprintln(w, "  --version\t\tShow version information")
	w.Flush()

	fmt.Println()
	h.colors["header"].Println("EXIT CODES:")
	fmt.Println("  0  filing is clean")
	fmt.Println("  1  violations found or document type restricted")
	fmt.Println("  2  scan could not run")
	fmt.Println()
	fmt.Println("For detailed information about a specific check, use:")
	h.colors["example"].Println("  frcp-scan --explain SSN")
}

// ShowChecksHelp displays the list of available checks
func (h *System) ShowChecksHelp() {
	h.colors["title"].Println("Available Checks")
	fmt.Println("================")
	fmt.Println()

	var checkNames []string
	for _, provider := range h.providers {
		checkNames = append(checkNames, provider.GetCheckInfo().Name)
	}
	sort.Strings(checkNames)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	h.colors["header"].Fprintln(w, "  CHECK\tDESCRIPTION")
	h.colors["header"].Fprintln(w, "  -----\t-----------")
	for _, checkName := range checkNames {
		info := h.providers[strings.ToLower(checkName)].GetCheckInfo()
		fmt.Fprintf(w, "  ")
		h.colors["emphasis"].Fprintf(w, "%s", info.Name)
		fmt.Fprintf(w, "\t%s\n", info.ShortDescription)
	}
	w.Flush()

	fmt.Println()
	fmt.Println("For detailed information about a specific check, use:")
	h.colors["example"].Println("  frcp-scan --explain <check>")
}

// ShowCheckHelp displays detailed help for a specific check
func (h *System) ShowCheckHelp(checkName string) bool {
	provider, exists := h.providers[strings.ToLower(checkName)]
	if !exists {
		h.colors["negative"].Printf("Error: Check '%s' not found.\n", checkName)
		fmt.Println("Use 'frcp-scan --list-checks' to see the available checks.")
		return false
	}

	info := provider.GetCheckInfo()

	h.colors["title"].Printf("%s Check\n", info.Name)
	fmt.Println(strings.Repeat("=", len(info.Name)+6))
	fmt.Println()
	fmt.Println(info.DetailedDescription)
	fmt.Println()

	if len(info.Patterns) > 0 {
		h.colors["header"].Println("PATTERNS DETECTED:")
		for _, pattern := range info.Patterns {
			fmt.Print("  - ")
			h.colors["item"].Println(pattern)
		}
		fmt.Println()
	}

	if info.RequiredFormat != "" {
		h.colors["header"].Println("REQUIRED REDACTED FORM:")
		fmt.Print("  ")
		h.colors["item"].Println(info.RequiredFormat)
		fmt.Println()
	}

	if len(info.Examples) > 0 {
		h.colors["header"].Println("EXAMPLES:")
		for _, example := range info.Examples {
			fmt.Print("  ")
			h.colors["example"].Println(example)
		}
	}

	return true
}
