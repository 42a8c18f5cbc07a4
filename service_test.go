package licensor_test

import (
	"context"
	"embed"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/afs"
	_ "github.com/viant/afs/embed"
	"github.com/viant/licensor"
	"github.com/viant/licensor/classification"
	"github.com/viant/licensor/internal/clock"
	"github.com/viant/licensor/internal/idgen"
	"github.com/viant/licensor/model"
	"github.com/viant/licensor/policy"
	"github.com/viant/licensor/report"
	"github.com/viant/licensor/service/dao"
	"github.com/viant/licensor/service/dao/criteria"
	"go.uber.org/zap/zaptest"
)

//go:embed testdata/*
var embedFS embed.FS

func stubRuntime(t *testing.T) {
	now, newID := clock.NowFunc, idgen.NewFunc
	t.Cleanup(func() {
		clock.NowFunc, idgen.NewFunc = now, newID
	})
	clock.NowFunc = func() time.Time { return time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC) }
	seq := 0
	idgen.NewFunc = func() string {
		seq++
		return "run-" + string(rune('0'+seq))
	}
}

func TestService_Evaluate(t *testing.T) {
	stubRuntime(t)
	ctx := context.Background()
	srv, err := licensor.New(licensor.WithFsOptions(&embedFS), licensor.WithLogger(zaptest.NewLogger(t)))
	require.NoError(t, err)

	_, err = srv.Evaluate(ctx, nil)
	assert.ErrorIs(t, err, licensor.ErrNoClassifications)

	sets, err := srv.LoadClassifications(ctx, "embed:///testdata/classifications.yml")
	require.NoError(t, err)
	assert.True(t, sets.IsAllowed("MIT"))
	assert.True(t, sets.IsHandled("GPL-2.0-only WITH Classpath-exception-2.0"))
	assert.False(t, sets.IsHandled("GPL-3.0-only"))

	packages, err := srv.LoadPackages(ctx, "embed:///testdata/packages.yml")
	require.NoError(t, err)
	require.Len(t, packages, 6)

	aReport, err := srv.Evaluate(ctx, packages)
	require.NoError(t, err)
	assert.Equal(t, "run-1", aReport.ID)
	assert.Equal(t, report.StatusFailed, aReport.Status)
	assert.Equal(t, []string{"UNHANDLED_LICENSE", "UNMAPPED_DECLARED_LICENSE"}, aReport.Rules)
	assert.Equal(t, report.Summary{Packages: 6, Evaluated: 6, Excluded: 1, Errors: 2, Warnings: 1}, aReport.Summary)

	require.Len(t, aReport.Violations, 3)
	first := aReport.Violations[0]
	assert.Equal(t, "UNHANDLED_LICENSE", first.Rule)
	assert.Equal(t, model.SeverityError, first.Severity)
	assert.Equal(t, model.SourceDeclared, first.LicenseSource)
	assert.Equal(t, "The license GPL-3.0-only is currently not covered by policy rules. The license was declared in package Maven:org.example:copyleft:2.0. The files that have the license are: LICENSE src/COPYING", first.Message)

	second := aReport.Violations[1]
	assert.Equal(t, "UNMAPPED_DECLARED_LICENSE", second.Rule)
	assert.Equal(t, model.SeverityWarning, second.Severity)
	assert.Equal(t, "The declared license 'Proprietary company license' could not be mapped to a valid license or parsed as an SPDX expression. The license was found in package PyPI::custom:0.1.", second.Message)

	third := aReport.Violations[2]
	assert.Equal(t, "Maven:org.example:test-fixture:1.0", third.Package.ToCoordinates())
	assert.Equal(t, model.SourceDetected, third.LicenseSource)

	stored, err := srv.Report(ctx, aReport.ID)
	require.NoError(t, err)
	assert.EqualValues(t, aReport.Summary, stored.Summary)

	advisory := policy.WithPolicy(ctx, &policy.Policy{Mode: policy.ModeAdvisory})
	softReport, err := srv.Evaluate(advisory, packages)
	require.NoError(t, err)
	assert.Equal(t, report.StatusPassed, softReport.Status)
	assert.Equal(t, 3, softReport.Summary.Warnings)

	failed, err := srv.Reports(ctx, dao.NewParameter(criteria.Status, string(report.StatusFailed)))
	require.NoError(t, err)
	require.Len(t, failed, 1)
	assert.Equal(t, "run-1", failed[0].ID)
}

func TestService_LoadClassifications_Overlap(t *testing.T) {
	ctx := context.Background()
	srv, err := licensor.New(licensor.WithFsOptions(&embedFS))
	require.NoError(t, err)
	_, err = srv.LoadClassifications(ctx, "embed:///testdata/overlap.yml")
	require.Error(t, err)
	assert.True(t, errors.Is(err, classification.ErrOverlap))
	var duplicateErr *classification.DuplicateError
	require.True(t, errors.As(err, &duplicateErr))
	assert.Equal(t, []string{"GPL-2.0-only", "MIT"}, duplicateErr.Licenses)
	assert.Nil(t, srv.Classifications())
}

func TestService_Evaluate_WithConfig(t *testing.T) {
	stubRuntime(t)
	t.Setenv("LICENSOR_TESTDATA", "embed:///testdata")
	ctx := context.Background()
	fs := afs.New()

	config, err := licensor.LoadConfig(ctx, fs, "embed:///testdata/config.yml", &embedFS)
	require.NoError(t, err)
	assert.Equal(t, "embed:///testdata/classifications.yml", config.Classifications)
	assert.Equal(t, 3, config.Workers)
	assert.Equal(t, classification.CategoryAllow, config.Categories.Allow)

	config.ReportURL = "mem://localhost/licensor/reports"
	srv, err := licensor.New(licensor.WithConfig(config), licensor.WithFS(fs), licensor.WithFsOptions(&embedFS))
	require.NoError(t, err)

	packages, err := srv.LoadPackages(ctx, "embed:///testdata/packages.yml")
	require.NoError(t, err)
	packages = append(packages, &model.Package{
		ID:       model.ParseIdentifier("Maven:org.example:internal-tools:1.0"),
		Licenses: []*model.ResolvedLicense{{License: "SSPL-1.0", Sources: []model.Source{model.SourceDeclared}}},
	})

	aReport, err := srv.Evaluate(ctx, packages)
	require.NoError(t, err)
	require.Len(t, aReport.Violations, 1)
	assert.Equal(t, "Maven:org.example:copyleft:2.0", aReport.Violations[0].Package.ToCoordinates())
	assert.Equal(t, 2, aReport.Summary.Excluded)

	exists, err := fs.Exists(ctx, "mem://localhost/licensor/reports/"+aReport.ID+".json")
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestNew_InvalidConfig(t *testing.T) {
	var testCases = []struct {
		description string
		config      func(c *licensor.Config)
	}{
		{description: "workers", config: func(c *licensor.Config) { c.Workers = 0 }},
		{description: "same categories", config: func(c *licensor.Config) { c.Categories.Review = c.Categories.Allow }},
		{description: "policy mode", config: func(c *licensor.Config) { c.Policy = &policy.Config{Mode: "strict"} }},
		{description: "exclude expression", config: func(c *licensor.Config) { c.Excludes = []string{"pkg.id.name =="} }},
		{description: "path exclude", config: func(c *licensor.Config) { c.PathExcludes = []string{"["} }},
	}
	for _, testCase := range testCases {
		config := licensor.DefaultConfig()
		testCase.config(config)
		_, err := licensor.New(licensor.WithConfig(config))
		assert.Error(t, err, testCase.description)
	}
}
