package rule

import (
	"context"
	"fmt"
	"strings"

	"github.com/viant/licensor/model"
)

// UnhandledLicenseName is the name of the unhandled license rule
const UnhandledLicenseName = "UNHANDLED_LICENSE"

// Classifier tells whether a license is covered by the policy
type Classifier interface {
	IsHandled(license string) bool
}

// PathMatcher matches excluded paths
type PathMatcher interface {
	Match(path string) bool
}

// UnhandledLicense reports every license of a package that is neither allowed
// nor marked for review.
type UnhandledLicense struct {
	classifier   Classifier
	view         model.LicenseView
	pathExcludes PathMatcher
	howToFix     string
}

// UnhandledOption customises the unhandled license rule
type UnhandledOption func(r *UnhandledLicense)

// WithLicenseView overrides the license view, ConcludedOrDeclaredAndDetected by default.
func WithLicenseView(view model.LicenseView) UnhandledOption {
	return func(r *UnhandledLicense) {
		r.view = view
	}
}

// WithPathExcludes sets the matcher for excluded license locations
func WithPathExcludes(matcher PathMatcher) UnhandledOption {
	return func(r *UnhandledLicense) {
		r.pathExcludes = matcher
	}
}

// WithUnhandledHowToFix overrides the remediation hint
func WithUnhandledHowToFix(text string) UnhandledOption {
	return func(r *UnhandledLicense) {
		r.howToFix = text
	}
}

// NewUnhandledLicense creates the rule
func NewUnhandledLicense(classifier Classifier, options ...UnhandledOption) *UnhandledLicense {
	ret := &UnhandledLicense{
		classifier: classifier,
		view:       model.ViewConcludedOrDeclaredAndDetected,
		howToFix:   HowToFixDefault,
	}
	for _, opt := range options {
		opt(ret)
	}
	return ret
}

func (r *UnhandledLicense) Name() string {
	return UnhandledLicenseName
}

func (r *UnhandledLicense) Applies(pkg *model.Package) bool {
	return NotExcluded(pkg)
}

func (r *UnhandledLicense) Evaluate(ctx context.Context, pkg *model.Package) []*model.RuleViolation {
	var result []*model.RuleViolation
	licenses, sources := r.view.Filter(pkg.Licenses)
	for i, license := range licenses {
		if r.isExcluded(license) || r.classifier.IsHandled(license.License) {
			continue
		}
		result = append(result, &model.RuleViolation{
			Rule:          UnhandledLicenseName,
			Package:       pkg.ID,
			License:       license.License,
			LicenseSource: sources[i],
			Severity:      model.SeverityError,
			Message:       unhandledMessage(pkg, license, sources[i]),
			HowToFix:      r.howToFix,
		})
	}
	return result
}

// isExcluded returns true when every location of the license is excluded.
// Licenses without locations are never excluded.
func (r *UnhandledLicense) isExcluded(license *model.ResolvedLicense) bool {
	if len(license.Locations) == 0 {
		return false
	}
	for _, location := range license.Locations {
		if location == nil {
			continue
		}
		if location.Excluded {
			continue
		}
		if r.pathExcludes != nil && r.pathExcludes.Match(location.Path) {
			continue
		}
		return false
	}
	return true
}

func unhandledMessage(pkg *model.Package, license *model.ResolvedLicense, source model.Source) string {
	var b strings.Builder
	fmt.Fprintf(&b, "The license %s is currently not covered by policy rules. The license was %s in package %s. The files that have the license are:",
		license.License, source.Lower(), pkg.Coordinates())
	for _, path := range license.Paths() {
		b.WriteString(" ")
		b.WriteString(path)
	}
	return b.String()
}
