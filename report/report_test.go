package report

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/viant/licensor/model"
)

func TestReport_Finish(t *testing.T) {
	started := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	aReport := New("r1", started)
	aReport.Finish(started.Add(time.Second), []*model.RuleViolation{
		{Rule: "UNHANDLED_LICENSE", Severity: model.SeverityError},
		{Rule: "UNMAPPED_DECLARED_LICENSE", Severity: model.SeverityWarning},
		{Rule: "UNMAPPED_DECLARED_LICENSE", Severity: model.SeverityWarning},
	})
	assert.Equal(t, StatusFailed, aReport.Status)
	assert.True(t, aReport.HasErrors())
	assert.Equal(t, 1, aReport.Summary.Errors)
	assert.Equal(t, 2, aReport.Summary.Warnings)
	assert.Len(t, aReport.BySeverity(model.SeverityWarning), 2)
	assert.Len(t, aReport.ByRule()["UNMAPPED_DECLARED_LICENSE"], 2)

	aReport.Finish(started.Add(2*time.Second), []*model.RuleViolation{{Severity: model.SeverityWarning}})
	assert.Equal(t, StatusPassed, aReport.Status)
	assert.Equal(t, 0, aReport.Summary.Errors)
}

func TestReport_Clone(t *testing.T) {
	aReport := New("r1", time.Now())
	aReport.Finish(time.Now(), []*model.RuleViolation{{Rule: "A", Severity: model.SeverityError}})
	cloned := aReport.Clone()
	cloned.Violations[0].Rule = "B"
	assert.Equal(t, "A", aReport.Violations[0].Rule)
	assert.EqualValues(t, aReport.Summary, cloned.Summary)
}
