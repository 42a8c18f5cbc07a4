package licensor

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/viant/afs"
	"github.com/viant/afs/storage"
	"github.com/viant/licensor/classification"
	"github.com/viant/licensor/exclude"
	"github.com/viant/licensor/internal/clock"
	"github.com/viant/licensor/internal/idgen"
	"github.com/viant/licensor/model"
	"github.com/viant/licensor/policy"
	"github.com/viant/licensor/progress"
	"github.com/viant/licensor/report"
	"github.com/viant/licensor/rule"
	"github.com/viant/licensor/ruleset"
	"github.com/viant/licensor/service/dao"
	"github.com/viant/licensor/service/dao/report/fs"
	"github.com/viant/licensor/service/dao/report/memory"
	"github.com/viant/licensor/tracing"
	"go.uber.org/zap"
)

// Service evaluates packages against license classifications and keeps the resulting reports.
type Service struct {
	config     *Config
	fs         afs.Service
	fsOptions  []storage.Option
	logger     *zap.Logger
	reportDAO  dao.Service[string, report.Report]
	policy     *policy.Policy
	rules      []rule.Rule
	excludes   *exclude.Packages
	paths      *exclude.Paths
	initErrors []error

	mux     sync.RWMutex
	sets    *classification.Sets
	ruleset *ruleset.Service
}

// Config returns service config
func (s *Service) Config() *Config {
	return s.config
}

// Classifications returns loaded license sets or nil
func (s *Service) Classifications() *classification.Sets {
	s.mux.RLock()
	defer s.mux.RUnlock()
	return s.sets
}

// LoadClassifications loads the classification document and replaces the current
// license sets. Overlapping allowed and review licenses yield *classification.DuplicateError.
func (s *Service) LoadClassifications(ctx context.Context, URL string) (*classification.Sets, error) {
	table, err := classification.Load(ctx, s.fs, URL, s.fsOptions...)
	if err != nil {
		return nil, err
	}
	sets, err := classification.New(table, classification.WithCategories(s.config.Categories.Allow, s.config.Categories.Review))
	if err != nil {
		s.logger.Error("invalid license classifications", zap.String("url", URL), zap.Error(err))
		return nil, fmt.Errorf("%s: %w", URL, err)
	}
	s.logger.Info("loaded license classifications",
		zap.String("url", URL),
		zap.Int("allowed", sets.Allowed().Len()),
		zap.Int("review", sets.Review().Len()))
	s.setClassifications(sets)
	return sets, nil
}

func (s *Service) setClassifications(sets *classification.Sets) {
	s.mux.Lock()
	defer s.mux.Unlock()
	s.sets = sets
	s.ruleset = ruleset.NewDefault(sets,
		ruleset.WithRules(s.rules...),
		ruleset.WithWorkers(s.config.Workers),
		ruleset.WithPolicy(s.policy),
		ruleset.WithPackageExcludes(s.excludes),
		ruleset.WithPathExcludes(s.paths),
		ruleset.WithDeclaredLicenseMapping(s.config.DeclaredLicenseMapping),
		ruleset.WithLogger(s.logger),
	)
}

// LoadPackages loads analyzer packages from URL
func (s *Service) LoadPackages(ctx context.Context, URL string) ([]*model.Package, error) {
	data, err := s.fs.DownloadWithURL(ctx, URL, s.fsOptions...)
	if err != nil {
		return nil, fmt.Errorf("failed to load packages from %s: %w", URL, err)
	}
	packages, err := model.DecodePackages(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", URL, err)
	}
	return packages, nil
}

func (s *Service) ensureRuleset(ctx context.Context) (*ruleset.Service, error) {
	s.mux.RLock()
	ret := s.ruleset
	s.mux.RUnlock()
	if ret != nil {
		return ret, nil
	}
	if s.config.Classifications == "" {
		return nil, ErrNoClassifications
	}
	if _, err := s.LoadClassifications(ctx, s.config.Classifications); err != nil {
		return nil, err
	}
	s.mux.RLock()
	defer s.mux.RUnlock()
	return s.ruleset, nil
}

// Evaluate evaluates packages, stores and returns the report. Rule findings are
// reported in the returned report, the error is reserved for failures of the run itself.
func (s *Service) Evaluate(ctx context.Context, packages []*model.Package) (ret *report.Report, err error) {
	rs, err := s.ensureRuleset(ctx)
	if err != nil {
		return nil, err
	}
	runID := idgen.New()
	ret = report.New(runID, clock.Now())
	ret.Rules = rs.RuleNames()

	ctx, span := tracing.StartSpan(ctx, "licensor.evaluate")
	span.SetString(tracing.KeyRunID, runID)
	defer func() { tracing.EndSpan(span, err) }()

	ctx, tracker := progress.WithNewTracker(ctx, runID, func(p progress.Progress) {
		s.logger.Debug("evaluation progress",
			zap.String("runId", p.RunID),
			zap.Int("evaluated", p.EvaluatedPackages),
			zap.Int("total", p.TotalPackages))
	})
	violations, err := rs.Evaluate(ctx, packages)
	if err != nil {
		return nil, fmt.Errorf("failed to evaluate packages: %w", err)
	}
	snapshot := tracker.Snapshot()
	ret.Summary.Packages = snapshot.TotalPackages
	ret.Summary.Evaluated = snapshot.EvaluatedPackages
	ret.Summary.Excluded = snapshot.ExcludedPackages
	ret.Finish(clock.Now(), violations)
	span.SetInt(tracing.KeyViolations, len(violations))

	if err = s.reportDAO.Save(ctx, ret); err != nil {
		return nil, fmt.Errorf("failed to save report %s: %w", runID, err)
	}
	s.logger.Info("evaluation completed",
		zap.String("runId", runID),
		zap.String("status", string(ret.Status)),
		zap.Int("packages", ret.Summary.Packages),
		zap.Int("errors", ret.Summary.Errors),
		zap.Int("warnings", ret.Summary.Warnings))
	return ret, nil
}

// Report returns a stored report
func (s *Service) Report(ctx context.Context, id string) (*report.Report, error) {
	return s.reportDAO.Load(ctx, id)
}

// Reports lists stored reports, see criteria for supported parameters
func (s *Service) Reports(ctx context.Context, parameters ...*dao.Parameter) ([]*report.Report, error) {
	return s.reportDAO.List(ctx, parameters...)
}

func (s *Service) init(options []Option) error {
	for _, option := range options {
		option(s)
	}
	if len(s.initErrors) > 0 {
		return errors.Join(s.initErrors...)
	}
	if s.config == nil {
		s.config = DefaultConfig()
	}
	if err := s.config.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	if s.logger == nil {
		s.logger = zap.NewNop()
	}
	if s.fs == nil {
		s.fs = afs.New()
	}
	if s.policy == nil && s.config.Policy != nil {
		s.policy = policy.FromConfig(s.config.Policy)
	}
	var err error
	if s.excludes, err = exclude.NewPackages(s.config.Excludes...); err != nil {
		return err
	}
	if s.paths, err = exclude.NewPaths(s.config.PathExcludes...); err != nil {
		return err
	}
	if s.reportDAO == nil {
		if s.reportDAO, err = s.newReportDAO(); err != nil {
			return err
		}
	}
	if s.sets != nil {
		s.setClassifications(s.sets)
	}
	return nil
}

func (s *Service) newReportDAO() (dao.Service[string, report.Report], error) {
	if s.config.ReportURL == "" {
		return memory.New(), nil
	}
	return fs.New(context.Background(), s.config.ReportURL, fs.WithFS(s.fs), fs.WithLogger(s.logger))
}

// New creates a service
func New(options ...Option) (*Service, error) {
	ret := &Service{}
	if err := ret.init(options); err != nil {
		return nil, err
	}
	return ret, nil
}
