// Package report provides report storage implementations.
package report

import (
	"github.com/viant/licensor/report"
	"github.com/viant/licensor/service/dao"
	"github.com/viant/licensor/service/dao/criteria"
)

// Matches returns true when aReport satisfies Status and Rule parameters
func Matches(aReport *report.Report, parameters []*dao.Parameter) bool {
	if !criteria.FilterByStatus(string(aReport.Status), parameters) {
		return false
	}
	var rules []string
	for name := range aReport.ByRule() {
		rules = append(rules, name)
	}
	return criteria.Match(criteria.Rule, rules, parameters)
}
