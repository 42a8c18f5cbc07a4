package ruleset

import (
	"github.com/viant/licensor/exclude"
	"github.com/viant/licensor/policy"
	"github.com/viant/licensor/rule"
	"go.uber.org/zap"
)

// Option configures Service
type Option func(s *Service)

// WithRules registers rules in evaluation order
func WithRules(rules ...rule.Rule) Option {
	return func(s *Service) {
		s.rules = append(s.rules, rules...)
	}
}

// WithWorkers sets the number of packages evaluated concurrently
func WithWorkers(workers int) Option {
	return func(s *Service) {
		s.workers = workers
	}
}

// WithPolicy sets the default policy, a policy carried by the context takes precedence
func WithPolicy(p *policy.Policy) Option {
	return func(s *Service) {
		s.policy = p
	}
}

// WithPackageExcludes sets CEL package exclusions
func WithPackageExcludes(excludes *exclude.Packages) Option {
	return func(s *Service) {
		s.excludes = excludes
	}
}

// WithPathExcludes sets license location exclusions used by the default rules
func WithPathExcludes(paths *exclude.Paths) Option {
	return func(s *Service) {
		s.pathExcludes = paths
	}
}

// WithDeclaredLicenseMapping sets the declared license mapping used by the default rules
func WithDeclaredLicenseMapping(mapping map[string]string) Option {
	return func(s *Service) {
		s.mapping = mapping
	}
}

// WithLogger sets logger
func WithLogger(logger *zap.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}
