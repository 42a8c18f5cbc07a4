package exclude

import (
	"fmt"
	"strings"

	"github.com/gobwas/glob"
)

// Paths matches license locations against glob patterns. "**" matches across
// directories, "*" within a single path segment.
type Paths struct {
	patterns []string
	globs    []glob.Glob
}

// NewPaths compiles path exclude patterns
func NewPaths(patterns ...string) (*Paths, error) {
	ret := &Paths{}
	for _, pattern := range patterns {
		pattern = strings.TrimSpace(pattern)
		if pattern == "" {
			continue
		}
		compiled, err := glob.Compile(pattern, '/')
		if err != nil {
			return nil, fmt.Errorf("invalid path exclude %q: %w", pattern, err)
		}
		ret.patterns = append(ret.patterns, pattern)
		ret.globs = append(ret.globs, compiled)
	}
	return ret, nil
}

// Match returns true if path matches any pattern
func (p *Paths) Match(path string) bool {
	if p == nil {
		return false
	}
	path = strings.TrimPrefix(path, "./")
	for _, candidate := range p.globs {
		if candidate.Match(path) {
			return true
		}
	}
	return false
}

// Patterns returns the configured patterns
func (p *Paths) Patterns() []string {
	if p == nil {
		return nil
	}
	return p.patterns
}
