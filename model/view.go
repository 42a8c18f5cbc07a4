package model

// LicenseView selects which resolved licenses of a package are visible to a rule.
type LicenseView string

const (
	// ViewAll returns every resolved license.
	ViewAll LicenseView = "ALL"
	// ViewConcludedOrDeclaredAndDetected returns the concluded licenses when
	// the package has any, declared and detected licenses otherwise.
	ViewConcludedOrDeclaredAndDetected LicenseView = "CONCLUDED_OR_DECLARED_AND_DETECTED"
	// ViewOnlyDeclared returns declared licenses only.
	ViewOnlyDeclared LicenseView = "ONLY_DECLARED"
)

// Filter returns the licenses visible in the view. For every license the
// source it is reported under is returned at the same index; a license is
// returned once, under the first source of the view it carries.
func (v LicenseView) Filter(licenses []*ResolvedLicense) ([]*ResolvedLicense, []Source) {
	var result []*ResolvedLicense
	var sources []Source
	pick := func(wanted ...Source) {
		for _, license := range licenses {
			if license == nil {
				continue
			}
			for _, source := range wanted {
				if license.HasSource(source) {
					result = append(result, license)
					sources = append(sources, source)
					break
				}
			}
		}
	}
	switch v {
	case ViewOnlyDeclared:
		pick(SourceDeclared)
	case ViewConcludedOrDeclaredAndDetected:
		for _, license := range licenses {
			if license != nil && license.HasSource(SourceConcluded) {
				pick(SourceConcluded)
				return result, sources
			}
		}
		pick(SourceDeclared, SourceDetected)
	default:
		pick(SourceConcluded, SourceDeclared, SourceDetected)
	}
	return result, sources
}
