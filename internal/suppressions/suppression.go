// SPDX-License-Identifier: Apache-2.0

package suppressions

import (
	"crypto/sha256"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"frcp-scan/internal/detector"
)

// DefaultFile is the suppression file used when none is configured.
const DefaultFile = ".frcp-suppressions.yaml"

// Rule represents a single suppression rule
type Rule struct {
	ID        string            `yaml:"id"`
	Hash      string            `yaml:"hash"`
	Reason    string            `yaml:"reason"`
	Enabled   bool              `yaml:"enabled"`
	CreatedBy string            `yaml:"created_by,omitempty"`
	CreatedAt time.Time         `yaml:"created_at"`
	ExpiresAt *time.Time        `yaml:"expires_at,omitempty"`
	Metadata  map[string]string `yaml:"metadata,omitempty"`
}

// File represents the suppression rule file
type File struct {
	Version string `yaml:"version"`
	Rules   []Rule `yaml:"rules"`
}

// Manager handles finding suppressions
type Manager struct {
	path    string
	file    *File
	enabled bool
}

// NewManager creates a suppression manager backed by the given file.
// A missing or unreadable file yields an empty rule set rather than
// an error so a scan never fails on suppression state.
func NewManager(path string) *Manager {
	if path == "" {
		path = DefaultFile
	}

	m := &Manager{
		path:    path,
		enabled: true,
	}
	m.load()
	return m
}

func (m *Manager) load() {
	empty := &File{Version: "1.0", Rules: []Rule{}}

	data, err := os.ReadFile(filepath.Clean(m.path))
	if err != nil {
		m.file = empty
		return
	}

	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		m.file = empty
		return
	}
	if f.Rules == nil {
		f.Rules = []Rule{}
	}
	m.file = &f
}

// FindingHash creates a stable identifier for a finding. The matched
// text is hashed before it enters the composite so the rule file never
// stores the PII itself.
func FindingHash(finding detector.Finding) string {
	components := []string{
		string(finding.Category),
		fmt.Sprintf("%d", finding.StartByte),
		fmt.Sprintf("%d", finding.EndByte),
		hashSensitive(finding.MatchedText),
		finding.RequiredRedactedForm,
	}

	composite := strings.Join(components, "|")
	hash := sha256.Sum256([]byte(composite))
	return fmt.Sprintf("%x", hash)
}

func hashSensitive(data string) string {
	if data == "" {
		return ""
	}
	hash := sha256.Sum256([]byte(data))
	return fmt.Sprintf("%x", hash)[:16]
}

// IsSuppressed checks if a finding matches an active suppression rule
func (m *Manager) IsSuppressed(finding detector.Finding) (bool, *Rule) {
	if !m.enabled || m.file == nil {
		return false, nil
	}

	findingHash := FindingHash(finding)

	for i := range m.file.Rules {
		rule := &m.file.Rules[i]
		if rule.Hash != findingHash {
			continue
		}
		if !rule.Enabled {
			continue
		}
		if rule.ExpiresAt != nil && time.Now().After(*rule.ExpiresAt) {
			continue
		}
		return true, rule
	}

	return false, nil
}

// Apply splits findings into active violations and suppressed findings
func (m *Manager) Apply(findings []detector.Finding) ([]detector.Finding, []detector.SuppressedFinding) {
	active := []detector.Finding{}
	suppressed := []detector.SuppressedFinding{}

	for _, finding := range findings {
		if ok, rule := m.IsSuppressed(finding); ok {
			suppressed = append(suppressed, detector.SuppressedFinding{
				Finding:      finding,
				SuppressedBy: rule.ID,
				RuleReason:   rule.Reason,
				ExpiresAt:    rule.ExpiresAt,
			})
			continue
		}
		active = append(active, finding)
	}

	return active, suppressed
}

// Add creates a suppression rule for the given finding and persists it
func (m *Manager) Add(finding detector.Finding, reason, createdBy string, expiresAt *time.Time) (*Rule, error) {
	if m.file == nil {
		m.file = &File{Version: "1.0", Rules: []Rule{}}
	}

	findingHash := FindingHash(finding)
	for _, rule := range m.file.Rules {
		if rule.Hash == findingHash {
			return nil, fmt.Errorf("suppression rule already exists for this finding")
		}
	}

	maxID := 0
	for _, rule := range m.file.Rules {
		var num int
		if _, err := fmt.Sscanf(rule.ID, "SUP-%08d", &num); err == nil && num > maxID {
			maxID = num
		}
	}

	// Rules default to a 30-day review window
	if expiresAt == nil {
		defaultExpiry := time.Now().AddDate(0, 0, 30)
		expiresAt = &defaultExpiry
	}

	rule := Rule{
		ID:        fmt.Sprintf("SUP-%08d", maxID+1),
		Hash:      findingHash,
		Reason:    reason,
		Enabled:   true,
		CreatedBy: createdBy,
		CreatedAt: time.Now(),
		ExpiresAt: expiresAt,
		Metadata: map[string]string{
			"pii_type":        string(finding.Category),
			"start_position":  fmt.Sprintf("%d", finding.StartByte),
			"end_position":    fmt.Sprintf("%d", finding.EndByte),
			"required_format": finding.RequiredRedactedForm,
			"match_text_hash": hashSensitive(finding.MatchedText),
		},
	}

	m.file.Rules = append(m.file.Rules, rule)
	if err := m.Save(); err != nil {
		return nil, err
	}
	return &rule, nil
}

// List returns all suppression rules
func (m *Manager) List() []Rule {
	if m.file == nil {
		return []Rule{}
	}
	return m.file.Rules
}

// Save writes the suppression rules back to disk
func (m *Manager) Save() error {
	data, err := yaml.Marshal(m.file)
	if err != nil {
		return fmt.Errorf("failed to marshal suppression rules: %w", err)
	}

	dir := filepath.Dir(m.path)
	if dir != "." {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return fmt.Errorf("failed to create directory: %w", err)
		}
	}

	if err := os.WriteFile(m.path, data, 0o600); err != nil {
		return fmt.Errorf("failed to write suppression rules: %w", err)
	}
	return nil
}
