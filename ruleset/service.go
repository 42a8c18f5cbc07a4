// Package ruleset evaluates policy rules against a list of packages.
package ruleset

import (
	"context"
	"fmt"

	"github.com/viant/licensor/classification"
	"github.com/viant/licensor/exclude"
	"github.com/viant/licensor/model"
	"github.com/viant/licensor/policy"
	"github.com/viant/licensor/progress"
	"github.com/viant/licensor/rule"
	"github.com/viant/licensor/spdx"
	"github.com/viant/licensor/tracing"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const defaultWorkers = 1

// Service evaluates registered rules, findings are returned in package input
// order and then rule registration order regardless of the worker count.
type Service struct {
	rules        []rule.Rule
	workers      int
	policy       *policy.Policy
	excludes     *exclude.Packages
	pathExcludes *exclude.Paths
	mapping      map[string]string
	logger       *zap.Logger
}

// Rules returns registered rules
func (s *Service) Rules() []rule.Rule {
	return s.rules
}

// RuleNames returns registered rule names
func (s *Service) RuleNames() []string {
	ret := make([]string, 0, len(s.rules))
	for _, r := range s.rules {
		ret = append(ret, r.Name())
	}
	return ret
}

// Evaluate runs every selected rule against every package
func (s *Service) Evaluate(ctx context.Context, packages []*model.Package) (violations []*model.RuleViolation, err error) {
	ctx, span := tracing.StartSpan(ctx, "ruleset.evaluate")
	span.SetInt(tracing.KeyPackages, len(packages)).SetInt(tracing.KeyRules, len(s.rules))
	defer func() {
		span.SetInt(tracing.KeyViolations, len(violations))
		tracing.EndSpan(span, err)
	}()

	aPolicy := s.policy
	if p := policy.FromContext(ctx); p != nil {
		aPolicy = p
	}
	progress.UpdateCtx(ctx, progress.Delta{Total: len(packages)})
	if aPolicy.IsOff() {
		s.logger.Info("policy mode is off, skipping evaluation", zap.Int("packages", len(packages)))
		return nil, nil
	}
	rules := s.selectRules(aPolicy)

	results := make([][]*model.RuleViolation, len(packages))
	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(s.workers)
	for i, pkg := range packages {
		if groupCtx.Err() != nil {
			break
		}
		group.Go(func() error {
			if err := groupCtx.Err(); err != nil {
				return err
			}
			found, err := s.evaluatePackage(groupCtx, pkg, rules, aPolicy)
			if err != nil {
				return err
			}
			results[i] = found
			return nil
		})
	}
	if err = group.Wait(); err != nil {
		return nil, err
	}
	if err = ctx.Err(); err != nil {
		return nil, err
	}
	for _, found := range results {
		violations = append(violations, found...)
	}
	s.logger.Debug("evaluated packages", zap.Int("packages", len(packages)), zap.Int("violations", len(violations)))
	return violations, nil
}

func (s *Service) selectRules(aPolicy *policy.Policy) []rule.Rule {
	var ret []rule.Rule
	for _, r := range s.rules {
		if !aPolicy.IsAllowed(r.Name()) {
			s.logger.Debug("rule disabled by policy", zap.String("rule", r.Name()))
			continue
		}
		ret = append(ret, r)
	}
	return ret
}

func (s *Service) evaluatePackage(ctx context.Context, pkg *model.Package, rules []rule.Rule, aPolicy *policy.Policy) ([]*model.RuleViolation, error) {
	if pkg == nil {
		return nil, nil
	}
	candidate := pkg
	if !pkg.Excluded && s.excludes.Len() > 0 {
		matched, err := s.excludes.Match(pkg)
		if err != nil {
			return nil, fmt.Errorf("failed to evaluate excludes for %s: %w", pkg.Coordinates(), err)
		}
		if matched != "" {
			s.logger.Debug("package excluded", zap.String("package", pkg.Coordinates()), zap.String("expression", matched))
			candidate = pkg.Clone()
			candidate.Excluded = true
		}
	}
	delta := progress.Delta{Evaluated: 1}
	if candidate.Excluded {
		delta.Excluded = 1
	}

	var ret []*model.RuleViolation
	for _, r := range rules {
		if !r.Applies(candidate) {
			continue
		}
		ruleCtx, span := tracing.StartSpan(ctx, "rule."+r.Name())
		span.SetString(tracing.KeyPackage, candidate.Coordinates())
		found := r.Evaluate(ruleCtx, candidate)
		span.SetInt(tracing.KeyViolations, len(found))
		tracing.EndSpan(span, nil)
		for _, violation := range found {
			if violation == nil {
				continue
			}
			graded := *violation
			ret = append(ret, aPolicy.Grade(&graded))
		}
	}
	found := progress.ViolationDelta(ret)
	delta.Errors, delta.Warnings, delta.Hints = found.Errors, found.Warnings, found.Hints
	progress.UpdateCtx(ctx, delta)
	return ret, nil
}

// New creates a rule set service
func New(options ...Option) *Service {
	ret := &Service{}
	for _, opt := range options {
		opt(ret)
	}
	if ret.workers <= 0 {
		ret.workers = defaultWorkers
	}
	if ret.logger == nil {
		ret.logger = zap.NewNop()
	}
	return ret
}

// NewDefault creates a rule set with UNHANDLED_LICENSE followed by UNMAPPED_DECLARED_LICENSE,
// rules passed with WithRules are registered after them.
func NewDefault(sets *classification.Sets, options ...Option) *Service {
	ret := New(options...)
	unhandledOptions := []rule.UnhandledOption{}
	if ret.pathExcludes != nil {
		unhandledOptions = append(unhandledOptions, rule.WithPathExcludes(ret.pathExcludes))
	}
	processor := spdx.NewProcessor(
		spdx.WithMapping(ret.mapping),
		spdx.WithKnownLicenses(sets.Handled().Sorted()...),
	)
	defaults := []rule.Rule{
		rule.NewUnhandledLicense(sets, unhandledOptions...),
		rule.NewUnmappedDeclaredLicense(rule.WithProcessor(processor)),
	}
	ret.rules = append(defaults, ret.rules...)
	return ret
}
