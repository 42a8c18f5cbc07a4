// Package criteria matches stored entities against list parameters.
package criteria

import (
	"github.com/viant/licensor/service/dao"
)

const (
	// Status filters reports by status
	Status = "Status"
	// Rule filters reports having violations of a rule
	Rule = "Rule"
)

// Match returns true when every parameter with the given name accepts one of candidates.
// Parameters with other names are ignored.
func Match(name string, candidates []string, parameters []*dao.Parameter) bool {
	for _, parameter := range parameters {
		if parameter == nil || parameter.Name != name {
			continue
		}
		if !anyOf(parameter.Values(), candidates) {
			return false
		}
	}
	return true
}

// FilterByStatus returns true when status matches Status parameters
func FilterByStatus(status string, parameters []*dao.Parameter) bool {
	return Match(Status, []string{status}, parameters)
}

func anyOf(accepted []string, candidates []string) bool {
	for _, a := range accepted {
		for _, c := range candidates {
			if a == c {
				return true
			}
		}
	}
	return false
}
