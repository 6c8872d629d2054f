// SPDX-License-Identifier: Apache-2.0

package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"

	"frcp-scan/internal/config"
	"frcp-scan/internal/core"
	"frcp-scan/internal/formatters"
	"frcp-scan/internal/help"
	"frcp-scan/internal/preprocessors"
	"frcp-scan/internal/suppressions"
	"frcp-scan/internal/validators/dob"
	"frcp-scan/internal/validators/finaccount"
	"frcp-scan/internal/validators/ssn"
	"frcp-scan/internal/validators/taxpayerid"
	"frcp-scan/internal/version"
	"frcp-scan/internal/web"

	_ "frcp-scan/internal/formatters/csv"
	_ "frcp-scan/internal/formatters/json"
	_ "frcp-scan/internal/formatters/text"
	_ "frcp-scan/internal/formatters/yaml"
)

// Exit codes: 0 clean, 1 violations or restricted, 2 scan failure
const (
	exitClean      = 0
	exitViolations = 1
	exitError      = 2
)

// cliFlags holds command line flag values
type cliFlags struct {
	inputFile      string
	docType        string
	checksToRun    string
	outputFormat   string
	outputFile     string
	configFile     string
	profileName    string
	listProfiles   bool
	suppressFile   string
	suppressAdd    bool
	suppressReason string
	suppressBy     string
	verbose        bool
	showMatch      bool
	noColor        bool
	listChecks     bool
	explainCheck   string
	showVersion    bool
	serveMode      bool
	servePort      string
}

// finalConfiguration is the merged result of config file, profile, and
// command line flags
type finalConfiguration struct {
	format       string
	checks       string
	docType      string
	verbose      bool
	showMatch    bool
	noColor      bool
	suppressFile string
}

func main() {
	flags := parseFlags()

	if flags.showVersion {
		fmt.Println(version.Info())
		os.Exit(exitClean)
	}

	helpSystem := buildHelpSystem(flags.noColor)
	if flags.listChecks {
		helpSystem.ShowChecksHelp()
		os.Exit(exitClean)
	}
	if flags.explainCheck != "" {
		if !helpSystem.ShowCheckHelp(flags.explainCheck) {
			os.Exit(exitError)
		}
		os.Exit(exitClean)
	}

	cfg, err := loadConfiguration(flags.configFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(exitError)
	}

	if flags.listProfiles {
		printProfiles(cfg)
		os.Exit(exitClean)
	}

	activeProfile, err := resolveProfile(cfg, flags.profileName)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(exitError)
	}

	final := resolveConfiguration(cfg, activeProfile, flags)

	sm := suppressions.NewManager(final.suppressFile)

	if flags.serveMode {
		if err := web.NewServer(flags.servePort, sm).Start(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: server failed: %v\n", err)
			os.Exit(exitError)
		}
		return
	}

	text, err := readInput(flags.inputFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(exitError)
	}

	result := core.RunScan(core.ScanConfig{
		DocumentText:       text,
		DocumentTypeLabel:  final.docType,
		Checks:             splitChecks(final.checks),
		SuppressionManager: sm,
	})

	if flags.suppressAdd {
		added := addSuppressions(sm, result, flags)
		fmt.Fprintf(os.Stderr, "Added %d suppression rule(s) to %s\n", added, final.suppressFile)
	}

	output, err := formatters.Export(final.format, result.Report, result.Suppressed, formatters.FormatterOptions{
		Verbose:   final.verbose,
		NoColor:   final.noColor || flags.outputFile != "",
		ShowMatch: final.showMatch,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(exitError)
	}

	if err := writeOutput(flags.outputFile, output); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(exitError)
	}

	if result.Report.Clean {
		os.Exit(exitClean)
	}
	os.Exit(exitViolations)
}

func parseFlags() *cliFlags {
	flags := &cliFlags{}

	flag.StringVar(&flags.inputFile, "file", "", "Path to the filing to scan (reads stdin when omitted)")
	flag.StringVar(&flags.docType, "doc-type", "", "Document type label for the restricted-type check")
	flag.StringVar(&flags.checksToRun, "checks", "", "Checks to run: SSN,TAXPAYER_ID,DOB,FINANCIAL_ACCOUNT,all")
	flag.StringVar(&flags.outputFormat, "format", "", "Output format: text, json, csv, yaml")
	flag.StringVar(&flags.outputFile, "output", "", "Path to output file (default: stdout)")
	flag.StringVar(&flags.configFile, "config", "", "Path to configuration file (YAML)")
	flag.StringVar(&flags.profileName, "profile", "", "Profile name to use from config file")
	flag.BoolVar(&flags.listProfiles, "list-profiles", false, "List available profiles in config file")
	flag.StringVar(&flags.suppressFile, "suppressions", "", "Path to suppression rule file")
	flag.BoolVar(&flags.suppressAdd, "suppress-add", false, "Add suppression rules for every finding in this scan")
	flag.StringVar(&flags.suppressReason, "suppress-reason", "", "Reason recorded on added suppression rules")
	flag.StringVar(&flags.suppressBy, "suppress-by", "", "Author recorded on added suppression rules")
	flag.BoolVar(&flags.verbose, "verbose", false, "Display detailed information for each finding")
	flag.BoolVar(&flags.showMatch, "show-match", false, "Display the matched text in findings")
	flag.BoolVar(&flags.noColor, "no-color", false, "Disable colored output")
	flag.BoolVar(&flags.listChecks, "list-checks", false, "List available checks and exit")
	flag.StringVar(&flags.explainCheck, "explain", "", "Show detailed help for a specific check")
	flag.BoolVar(&flags.showVersion, "version", false, "Show version information")
	flag.BoolVar(&flags.serveMode, "serve", false, "Start HTTP server mode instead of CLI scanning")
	flag.StringVar(&flags.servePort, "port", "8080", "Port for HTTP server")

	flag.Usage = func() {
		buildHelpSystem(flags.noColor).ShowGeneralHelp()
	}
	flag.Parse()

	return flags
}

func buildHelpSystem(noColor bool) *help.System {
	system := help.NewSystem(noColor)
	system.RegisterProvider(ssn.NewValidator())
	system.RegisterProvider(taxpayerid.NewValidator())
	system.RegisterProvider(dob.NewValidator())
	system.RegisterProvider(finaccount.NewValidator())
	return system
}

func loadConfiguration(configFile string) (*config.Config, error) {
	if configFile == "" {
		configFile = config.FindConfigFile()
	}
	return config.LoadConfig(configFile)
}

func printProfiles(cfg *config.Config) {
	names := cfg.ListProfiles()
	if len(names) == 0 {
		fmt.Println("No profiles defined.")
		return
	}
	fmt.Println("Available profiles:")
	for _, name := range names {
		profile := cfg.Profiles[name]
		if profile.Description != "" {
			fmt.Printf("  %s - %s\n", name, profile.Description)
		} else {
			fmt.Printf("  %s\n", name)
		}
	}
}

func resolveProfile(cfg *config.Config, profileName string) (*config.Profile, error) {
	if profileName == "" {
		return nil, nil
	}
	profile := cfg.GetProfile(profileName)
	if profile == nil {
		return nil, fmt.Errorf("profile %q not found; available: %s",
			profileName, strings.Join(cfg.ListProfiles(), ", "))
	}
	return profile, nil
}

// resolveConfiguration merges settings with the precedence
// flags > profile > config defaults
func resolveConfiguration(cfg *config.Config, profile *config.Profile, flags *cliFlags) *finalConfiguration {
	final := &finalConfiguration{
		format:       cfg.Defaults.Format,
		checks:       cfg.Defaults.Checks,
		docType:      cfg.Defaults.DocType,
		verbose:      cfg.Defaults.Verbose,
		showMatch:    cfg.Defaults.ShowMatch,
		noColor:      cfg.Defaults.NoColor,
		suppressFile: cfg.Suppressions.File,
	}

	if profile != nil {
		if profile.Format != "" {
			final.format = profile.Format
		}
		if profile.Checks != "" {
			final.checks = profile.Checks
		}
		if profile.DocType != "" {
			final.docType = profile.DocType
		}
		final.verbose = profile.Verbose
		final.showMatch = profile.ShowMatch
		final.noColor = profile.NoColor
	}

	if isFlagSet("format") && flags.outputFormat != "" {
		final.format = flags.outputFormat
	}
	if isFlagSet("checks") && flags.checksToRun != "" {
		final.checks = flags.checksToRun
	}
	if isFlagSet("doc-type") {
		final.docType = flags.docType
	}
	if isFlagSet("verbose") {
		final.verbose = flags.verbose
	}
	if isFlagSet("show-match") {
		final.showMatch = flags.showMatch
	}
	if isFlagSet("no-color") {
		final.noColor = flags.noColor
	}
	if isFlagSet("suppressions") && flags.suppressFile != "" {
		final.suppressFile = flags.suppressFile
	}

	if final.format == "" {
		final.format = "text"
	}
	if final.suppressFile == "" {
		final.suppressFile = suppressions.DefaultFile
	}
	return final
}

// isFlagSet checks if a flag was explicitly set on the command line
func isFlagSet(name string) bool {
	found := false
	flag.Visit(func(f *flag.Flag) {
		if f.Name == name {
			found = true
		}
	})
	return found
}

// readInput returns the document text, from the named file or stdin
func readInput(inputFile string) (string, error) {
	if inputFile != "" {
		content, err := preprocessors.ExtractText(inputFile)
		if err != nil {
			return "", err
		}
		return content.Text, nil
	}

	if isTerminal(os.Stdin) {
		flag.Usage()
		return "", fmt.Errorf("no input: pass --file or pipe text on stdin")
	}

	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", fmt.Errorf("reading stdin: %w", err)
	}
	return string(data), nil
}

// isTerminal checks if the file descriptor is a terminal
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

func splitChecks(checks string) []string {
	if strings.TrimSpace(checks) == "" {
		return nil
	}
	return strings.Split(checks, ",")
}

func addSuppressions(sm *suppressions.Manager, result *core.ScanResult, flags *cliFlags) int {
	reason := flags.suppressReason
	if reason == "" {
		reason = "suppressed via --suppress-add"
	}

	added := 0
	for _, finding := range result.Report.Findings {
		if _, err := sm.Add(finding, reason, flags.suppressBy, nil); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: could not add suppression for %s at %d-%d: %v\n",
				finding.Category, finding.StartByte, finding.EndByte, err)
			continue
		}
		added++
	}
	return added
}

func writeOutput(outputFile, output string) error {
	if outputFile == "" {
		fmt.Print(output)
		if !strings.HasSuffix(output, "\n") {
			fmt.Println()
		}
		return nil
	}

	if err := os.WriteFile(outputFile, []byte(output), 0o644); err != nil {
		return fmt.Errorf("writing output file: %w", err)
	}
	fmt.Printf("Results written to %s\n", outputFile)
	return nil
}
