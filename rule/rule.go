package rule

import (
	"context"

	"github.com/viant/licensor/model"
)

// Rule is a named policy check evaluated against a single package.
type Rule interface {
	// Name returns the rule name reported with every violation.
	Name() string
	// Applies returns false when the package should be skipped entirely.
	Applies(pkg *model.Package) bool
	// Evaluate returns the violations found in the package.
	Evaluate(ctx context.Context, pkg *model.Package) []*model.RuleViolation
}

// ApplyFunc decides whether a rule applies to a package
type ApplyFunc func(pkg *model.Package) bool

// EvaluateFunc evaluates a package
type EvaluateFunc func(ctx context.Context, pkg *model.Package) []*model.RuleViolation

type funcRule struct {
	name     string
	applies  ApplyFunc
	evaluate EvaluateFunc
}

func (r *funcRule) Name() string {
	return r.name
}

func (r *funcRule) Applies(pkg *model.Package) bool {
	if r.applies == nil {
		return NotExcluded(pkg)
	}
	return r.applies(pkg)
}

func (r *funcRule) Evaluate(ctx context.Context, pkg *model.Package) []*model.RuleViolation {
	if r.evaluate == nil {
		return nil
	}
	return r.evaluate(ctx, pkg)
}

// New creates a rule from functions; a nil applies func skips excluded packages.
func New(name string, applies ApplyFunc, evaluate EvaluateFunc) Rule {
	return &funcRule{name: name, applies: applies, evaluate: evaluate}
}

// NotExcluded is the default applicability guard.
func NotExcluded(pkg *model.Package) bool {
	return pkg != nil && !pkg.Excluded
}
