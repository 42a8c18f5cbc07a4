package policy

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/viant/licensor/model"
)

// Modes
const (
	ModeEnforce  = "enforce"
	ModeAdvisory = "advisory"
	ModeOff      = "off"
)

// Policy selects rules by name and grades their findings. A nil *Policy runs
// every rule in enforce mode.
type Policy struct {
	// Mode is enforce (default), advisory or off
	Mode string
	// AllowList lists rules to run, all rules when empty
	AllowList []string
	// BlockList lists rules to skip, it wins over AllowList
	BlockList []string
}

// Config is the serialised policy
type Config struct {
	Mode      string   `json:"mode,omitempty" yaml:"mode,omitempty"`
	AllowList []string `json:"allow,omitempty" yaml:"allow,omitempty"`
	BlockList []string `json:"block,omitempty" yaml:"block,omitempty"`
}

// Validate checks the mode value
func (c *Config) Validate() error {
	if c == nil {
		return nil
	}
	switch strings.ToLower(c.Mode) {
	case "", ModeEnforce, ModeAdvisory, ModeOff:
		return nil
	}
	return fmt.Errorf("unsupported policy mode: %q", c.Mode)
}

// ToConfig returns the serialisable form of p
func ToConfig(p *Policy) *Config {
	if p == nil {
		return nil
	}
	return &Config{Mode: p.Mode, AllowList: slices.Clone(p.AllowList), BlockList: slices.Clone(p.BlockList)}
}

// FromConfig builds a policy from c
func FromConfig(c *Config) *Policy {
	if c == nil {
		return nil
	}
	return &Policy{Mode: c.Mode, AllowList: slices.Clone(c.AllowList), BlockList: slices.Clone(c.BlockList)}
}

// IsOff returns true when no rule should run.
func (p *Policy) IsOff() bool {
	return p != nil && strings.EqualFold(p.Mode, ModeOff)
}

// IsAdvisory returns true when errors are reported as warnings.
func (p *Policy) IsAdvisory() bool {
	return p != nil && strings.EqualFold(p.Mode, ModeAdvisory)
}

// IsAllowed returns true when the rule runs under the policy. Rule names match case-insensitively.
func (p *Policy) IsAllowed(rule string) bool {
	switch {
	case p == nil:
		return true
	case p.IsOff(), containsFold(p.BlockList, rule):
		return false
	case len(p.AllowList) == 0:
		return true
	}
	return containsFold(p.AllowList, rule)
}

// Grade adjusts the violation severity in place and returns it.
func (p *Policy) Grade(violation *model.RuleViolation) *model.RuleViolation {
	if violation != nil && p.IsAdvisory() && violation.Severity == model.SeverityError {
		violation.Severity = model.SeverityWarning
	}
	return violation
}

func containsFold(names []string, name string) bool {
	return slices.ContainsFunc(names, func(candidate string) bool {
		return strings.EqualFold(candidate, name)
	})
}

type policyKey struct{}

// WithPolicy returns ctx carrying p, it overrides the policy configured on a rule set.
func WithPolicy(ctx context.Context, p *Policy) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, policyKey{}, p)
}

// FromContext returns the policy carried by ctx or nil.
func FromContext(ctx context.Context) *Policy {
	if ctx == nil {
		return nil
	}
	p, _ := ctx.Value(policyKey{}).(*Policy)
	return p
}
