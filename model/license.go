package model

import "strings"

// Source describes how a license was attributed to a package.
type Source string

const (
	SourceDeclared  Source = "DECLARED"
	SourceDetected  Source = "DETECTED"
	SourceConcluded Source = "CONCLUDED"
)

// Lower returns the lower-cased source name as used in messages.
func (s Source) Lower() string {
	return strings.ToLower(string(s))
}

// Location represents a file region where a license was found.
type Location struct {
	Path      string `json:"path" yaml:"path"`
	StartLine int    `json:"startLine,omitempty" yaml:"startLine,omitempty"`
	EndLine   int    `json:"endLine,omitempty" yaml:"endLine,omitempty"`
	// Excluded is set by the host when the path matches a project path exclude.
	Excluded bool `json:"excluded,omitempty" yaml:"excluded,omitempty"`
}

// ResolvedLicense represents a single license attributed to a package together
// with its provenance and the places it was found at.
type ResolvedLicense struct {
	License   string      `json:"license" yaml:"license"`
	Sources   []Source    `json:"sources,omitempty" yaml:"sources,omitempty"`
	Locations []*Location `json:"locations,omitempty" yaml:"locations,omitempty"`
}

// HasSource returns true if the license was attributed by the given source.
func (l *ResolvedLicense) HasSource(source Source) bool {
	for _, candidate := range l.Sources {
		if strings.EqualFold(string(candidate), string(source)) {
			return true
		}
	}
	return false
}

// Paths returns location paths in location order.
func (l *ResolvedLicense) Paths() []string {
	paths := make([]string, 0, len(l.Locations))
	for _, location := range l.Locations {
		if location == nil {
			continue
		}
		paths = append(paths, location.Path)
	}
	return paths
}

// ProcessedDeclaredLicense is the outcome of mapping and parsing the declared
// license strings of a package.
type ProcessedDeclaredLicense struct {
	// Expression is the combined SPDX expression of all mapped licenses.
	Expression string `json:"expression,omitempty" yaml:"expression,omitempty"`
	// Mapped contains declared strings that were rewritten by a mapping.
	Mapped map[string]string `json:"mapped,omitempty" yaml:"mapped,omitempty"`
	// Unmapped contains declared strings that could neither be mapped nor parsed.
	Unmapped []string `json:"unmapped,omitempty" yaml:"unmapped,omitempty"`
}
