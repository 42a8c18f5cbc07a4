package model

// Package represents a dependency together with its resolved license information.
type Package struct {
	ID Identifier `json:"id" yaml:"id"`

	// Excluded is set when the project configuration excludes the package
	// (for example a test-only scope).
	Excluded bool `json:"excluded,omitempty" yaml:"excluded,omitempty"`

	// DeclaredLicenses are the raw license strings from the package metadata.
	DeclaredLicenses []string `json:"declaredLicenses,omitempty" yaml:"declaredLicenses,omitempty"`

	// DeclaredProcessed is the host-side processing result of DeclaredLicenses.
	// When nil the rule set processes the declared licenses itself.
	DeclaredProcessed *ProcessedDeclaredLicense `json:"declaredLicensesProcessed,omitempty" yaml:"declaredLicensesProcessed,omitempty"`

	// ConcludedLicense is a manually curated SPDX expression, if any.
	ConcludedLicense string `json:"concludedLicense,omitempty" yaml:"concludedLicense,omitempty"`

	// Licenses are the resolved licenses of the package.
	Licenses []*ResolvedLicense `json:"licenses,omitempty" yaml:"licenses,omitempty"`
}

// Coordinates returns the package coordinates
func (p *Package) Coordinates() string {
	return p.ID.ToCoordinates()
}

// Clone returns a shallow copy of the package with its own license slice,
// allowing callers to adjust flags without touching the original.
func (p *Package) Clone() *Package {
	if p == nil {
		return nil
	}
	ret := *p
	ret.Licenses = append([]*ResolvedLicense(nil), p.Licenses...)
	return &ret
}
