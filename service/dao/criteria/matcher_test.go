package criteria

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/viant/licensor/service/dao"
)

func TestFilterByStatus(t *testing.T) {
	var testCases = []struct {
		description string
		status      string
		parameters  []*dao.Parameter
		expect      bool
	}{
		{description: "no parameters", status: "failed", expect: true},
		{description: "single match", status: "failed", parameters: []*dao.Parameter{dao.NewParameter(Status, "failed")}, expect: true},
		{description: "single mismatch", status: "passed", parameters: []*dao.Parameter{dao.NewParameter(Status, "failed")}, expect: false},
		{description: "multi value", status: "passed", parameters: []*dao.Parameter{dao.NewParameter(Status, "failed", "passed")}, expect: true},
		{description: "other parameter ignored", status: "passed", parameters: []*dao.Parameter{dao.NewParameter(Rule, "X")}, expect: true},
	}
	for _, testCase := range testCases {
		assert.Equal(t, testCase.expect, FilterByStatus(testCase.status, testCase.parameters), testCase.description)
	}
}

func TestMatch(t *testing.T) {
	parameters := []*dao.Parameter{dao.NewParameter(Rule, "UNHANDLED_LICENSE")}
	assert.True(t, Match(Rule, []string{"UNMAPPED_DECLARED_LICENSE", "UNHANDLED_LICENSE"}, parameters))
	assert.False(t, Match(Rule, []string{"UNMAPPED_DECLARED_LICENSE"}, parameters))
	assert.False(t, Match(Rule, nil, parameters))
}
