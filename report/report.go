// Package report holds the outcome of a rule set evaluation.
package report

import (
	"time"

	"github.com/viant/licensor/model"
)

// Status of a report
type Status string

const (
	StatusPassed Status = "passed"
	StatusFailed Status = "failed"
)

// Summary aggregates evaluation counters
type Summary struct {
	Packages  int `json:"packages" yaml:"packages"`
	Evaluated int `json:"evaluated" yaml:"evaluated"`
	Excluded  int `json:"excluded" yaml:"excluded"`
	Errors    int `json:"errors" yaml:"errors"`
	Warnings  int `json:"warnings" yaml:"warnings"`
	Hints     int `json:"hints" yaml:"hints"`
}

// Report represents the outcome of one evaluation run
type Report struct {
	ID         string                 `json:"id" yaml:"id"`
	StartedAt  time.Time              `json:"startedAt" yaml:"startedAt"`
	EndedAt    time.Time              `json:"endedAt" yaml:"endedAt"`
	Rules      []string               `json:"rules,omitempty" yaml:"rules,omitempty"`
	Status     Status                 `json:"status" yaml:"status"`
	Summary    Summary                `json:"summary" yaml:"summary"`
	Violations []*model.RuleViolation `json:"violations,omitempty" yaml:"violations,omitempty"`
}

// New creates a report
func New(id string, startedAt time.Time) *Report {
	return &Report{ID: id, StartedAt: startedAt, Status: StatusPassed}
}

// Finish records violations and derives the status
func (r *Report) Finish(endedAt time.Time, violations []*model.RuleViolation) {
	r.EndedAt = endedAt
	r.Violations = violations
	r.Summary.Errors, r.Summary.Warnings, r.Summary.Hints = 0, 0, 0
	for _, violation := range violations {
		switch violation.Severity {
		case model.SeverityError:
			r.Summary.Errors++
		case model.SeverityWarning:
			r.Summary.Warnings++
		case model.SeverityHint:
			r.Summary.Hints++
		}
	}
	r.Status = StatusPassed
	if r.HasErrors() {
		r.Status = StatusFailed
	}
}

// HasErrors returns true when any error severity violation was reported
func (r *Report) HasErrors() bool {
	return r.Summary.Errors > 0
}

// BySeverity returns violations of the given severity in report order
func (r *Report) BySeverity(severity model.Severity) []*model.RuleViolation {
	var ret []*model.RuleViolation
	for _, violation := range r.Violations {
		if violation.Severity == severity {
			ret = append(ret, violation)
		}
	}
	return ret
}

// ByRule groups violations by rule name
func (r *Report) ByRule() map[string][]*model.RuleViolation {
	ret := map[string][]*model.RuleViolation{}
	for _, violation := range r.Violations {
		ret[violation.Rule] = append(ret[violation.Rule], violation)
	}
	return ret
}

// Clone returns a copy that does not share violation or rule slices
func (r *Report) Clone() *Report {
	if r == nil {
		return nil
	}
	ret := *r
	ret.Rules = append([]string(nil), r.Rules...)
	ret.Violations = make([]*model.RuleViolation, 0, len(r.Violations))
	for _, violation := range r.Violations {
		cloned := *violation
		ret.Violations = append(ret.Violations, &cloned)
	}
	return &ret
}
