package model

import (
	"fmt"
	"strings"
)

// Severity of a rule violation.
type Severity string

const (
	SeverityError   Severity = "ERROR"
	SeverityWarning Severity = "WARNING"
	SeverityHint    Severity = "HINT"
)

// ParseSeverity parses severity name (case-insensitive)
func ParseSeverity(name string) (Severity, error) {
	switch strings.ToUpper(strings.TrimSpace(name)) {
	case string(SeverityError):
		return SeverityError, nil
	case string(SeverityWarning):
		return SeverityWarning, nil
	case string(SeverityHint):
		return SeverityHint, nil
	}
	return "", fmt.Errorf("unsupported severity: %q", name)
}

// RuleViolation is a finding produced by a policy rule.
type RuleViolation struct {
	Rule          string     `json:"rule" yaml:"rule"`
	Package       Identifier `json:"pkg" yaml:"pkg"`
	License       string     `json:"license,omitempty" yaml:"license,omitempty"`
	LicenseSource Source     `json:"licenseSource,omitempty" yaml:"licenseSource,omitempty"`
	Severity      Severity   `json:"severity" yaml:"severity"`
	Message       string     `json:"message" yaml:"message"`
	HowToFix      string     `json:"howToFix" yaml:"howToFix"`
}

// String returns a one line representation of the violation.
func (v *RuleViolation) String() string {
	return fmt.Sprintf("[%s] %s: %s", v.Severity, v.Rule, v.Message)
}
