// SPDX-License-Identifier: Apache-2.0

package formatters

import (
	"fmt"
	"strings"

	"frcp-scan/internal/detector"
)

// FormatterOptions defines configuration options for formatters
type FormatterOptions struct {
	Verbose   bool // Whether to display detailed information
	NoColor   bool // Whether to disable colored output
	ShowMatch bool // Whether to display the actual matched text
}

// Formatter interface defines methods that all output formatters must implement
type Formatter interface {
	// Format renders a scan report in the formatter's output format
	Format(report *detector.ScanReport, suppressed []detector.SuppressedFinding, options FormatterOptions) (string, error)

	// Name returns the name of the formatter (e.g., "json", "text", "csv")
	Name() string

	// Description returns a brief description of what this formatter outputs
	Description() string

	// FileExtension returns the recommended file extension for this format
	FileExtension() string
}

// Response is the shared serialization shape used by the structured
// formatters and the web API. The embedded report carries the wire field
// names (clean, violations, restricted, restriction_reason).
type Response struct {
	*detector.ScanReport `yaml:",inline"`
	Suppressed           []detector.SuppressedFinding `json:"suppressed,omitempty" yaml:"suppressed,omitempty"`
}

// Registry holds all registered formatters
type Registry struct {
	formatters map[string]Formatter
}

// NewRegistry creates a new formatter registry
func NewRegistry() *Registry {
	return &Registry{
		formatters: make(map[string]Formatter),
	}
}

// Register adds a formatter to the registry
func (r *Registry) Register(formatter Formatter) {
	r.formatters[formatter.Name()] = formatter
}

// Get retrieves a formatter by name
func (r *Registry) Get(name string) (Formatter, bool) {
	formatter, exists := r.formatters[name]
	return formatter, exists
}

// List returns all registered formatter names
func (r *Registry) List() []string {
	var names []string
	for name := range r.formatters {
		names = append(names, name)
	}
	return names
}

// DefaultRegistry is the global formatter registry
var DefaultRegistry = NewRegistry()

// Register is a convenience function to register a formatter with the default registry
func Register(formatter Formatter) {
	DefaultRegistry.Register(formatter)
}

// Get is a convenience function to get a formatter from the default registry
func Get(name string) (Formatter, bool) {
	return DefaultRegistry.Get(name)
}

// List is a convenience function to list all formatters in the default registry
func List() []string {
	return DefaultRegistry.List()
}

// Export renders a report in the named format using the default registry.
func Export(format string, report *detector.ScanReport, suppressed []detector.SuppressedFinding, options FormatterOptions) (string, error) {
	formatter, exists := Get(format)
	if !exists {
		return "", fmt.Errorf("unsupported format '%s'. Available formats: %s", format, strings.Join(List(), ", "))
	}
	return formatter.Format(report, suppressed, options)
}

// FormatInfo provides metadata about a formatter
type FormatInfo struct {
	Name        string
	Description string
	Extension   string
	MimeType    string
}

// GetFormatInfo returns metadata about a specific formatter
func GetFormatInfo(name string) FormatInfo {
	formatter, exists := Get(name)
	if !exists {
		return FormatInfo{}
	}

	info := FormatInfo{
		Name:        formatter.Name(),
		Description: formatter.Description(),
		Extension:   formatter.FileExtension(),
	}

	switch name {
	case "json":
		info.MimeType = "application/json"
	case "csv":
		info.MimeType = "text/csv"
	case "yaml":
		info.MimeType = "application/x-yaml"
	case "text":
		info.MimeType = "text/plain"
	default:
		info.MimeType = "application/octet-stream"
	}

	return info
}
