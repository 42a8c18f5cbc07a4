package rule

import (
	"context"
	"fmt"

	"github.com/viant/licensor/model"
	"github.com/viant/licensor/spdx"
)

// UnmappedDeclaredLicenseName is the name of the unmapped declared license rule
const UnmappedDeclaredLicenseName = "UNMAPPED_DECLARED_LICENSE"

// UnmappedDeclaredLicense warns about declared license strings that could not
// be mapped to a license or parsed as an SPDX expression.
type UnmappedDeclaredLicense struct {
	processor *spdx.Processor
	howToFix  string
}

// UnmappedOption customises the unmapped declared license rule
type UnmappedOption func(r *UnmappedDeclaredLicense)

// WithProcessor sets the processor used for packages without host-side
// processing results.
func WithProcessor(processor *spdx.Processor) UnmappedOption {
	return func(r *UnmappedDeclaredLicense) {
		r.processor = processor
	}
}

// WithUnmappedHowToFix overrides the remediation hint
func WithUnmappedHowToFix(text string) UnmappedOption {
	return func(r *UnmappedDeclaredLicense) {
		r.howToFix = text
	}
}

// NewUnmappedDeclaredLicense creates the rule
func NewUnmappedDeclaredLicense(options ...UnmappedOption) *UnmappedDeclaredLicense {
	ret := &UnmappedDeclaredLicense{howToFix: HowToFixDefault}
	for _, opt := range options {
		opt(ret)
	}
	if ret.processor == nil {
		ret.processor = spdx.NewProcessor()
	}
	return ret
}

func (r *UnmappedDeclaredLicense) Name() string {
	return UnmappedDeclaredLicenseName
}

func (r *UnmappedDeclaredLicense) Applies(pkg *model.Package) bool {
	return NotExcluded(pkg)
}

func (r *UnmappedDeclaredLicense) Evaluate(ctx context.Context, pkg *model.Package) []*model.RuleViolation {
	processed := pkg.DeclaredProcessed
	if processed == nil {
		processed = r.processor.Process(pkg.DeclaredLicenses)
	}
	var result []*model.RuleViolation
	for _, unmapped := range processed.Unmapped {
		result = append(result, &model.RuleViolation{
			Rule:          UnmappedDeclaredLicenseName,
			Package:       pkg.ID,
			License:       unmapped,
			LicenseSource: model.SourceDeclared,
			Severity:      model.SeverityWarning,
			Message: fmt.Sprintf("The declared license '%s' could not be mapped to a valid license or parsed as an SPDX expression. The license was found in package %s.",
				unmapped, pkg.Coordinates()),
			HowToFix: r.howToFix,
		})
	}
	return result
}
