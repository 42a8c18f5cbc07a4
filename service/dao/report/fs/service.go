package fs

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/viant/afs"
	"github.com/viant/afs/file"
	"github.com/viant/afs/option"
	"github.com/viant/afs/url"
	"github.com/viant/licensor/report"
	"github.com/viant/licensor/service/dao"
	daoreport "github.com/viant/licensor/service/dao/report"
	"go.uber.org/zap"
)

const fileExt = ".json"

// Service stores reports as JSON documents under a base URL
type Service struct {
	baseURL string
	fs      afs.Service
	logger  *zap.Logger
	mu      sync.RWMutex
}

var _ dao.Service[string, report.Report] = (*Service)(nil)

// Option configures Service
type Option func(s *Service)

// WithFS sets storage service
func WithFS(fs afs.Service) Option {
	return func(s *Service) {
		s.fs = fs
	}
}

// WithLogger sets logger
func WithLogger(logger *zap.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

// Save persists a report
func (s *Service) Save(ctx context.Context, aReport *report.Report) error {
	if aReport == nil {
		return dao.ErrNilEntity
	}
	if aReport.ID == "" {
		return dao.ErrInvalidID
	}
	data, err := json.MarshalIndent(aReport, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal report: %w", err)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	URL := s.reportURL(aReport.ID)
	if err = s.fs.Upload(ctx, URL, file.DefaultFileOsMode, bytes.NewReader(data)); err != nil {
		return fmt.Errorf("failed to save report to %s: %w", URL, err)
	}
	return nil
}

// Load retrieves a report
func (s *Service) Load(ctx context.Context, id string) (*report.Report, error) {
	if id == "" {
		return nil, dao.ErrInvalidID
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	URL := s.reportURL(id)
	exists, err := s.fs.Exists(ctx, URL)
	if err != nil {
		return nil, fmt.Errorf("failed to check if report exists: %w", err)
	}
	if !exists {
		return nil, dao.ErrNotFound
	}
	data, err := s.fs.DownloadWithURL(ctx, URL)
	if err != nil {
		return nil, fmt.Errorf("failed to read report %s: %w", URL, err)
	}
	ret := &report.Report{}
	if err := json.Unmarshal(data, ret); err != nil {
		return nil, fmt.Errorf("failed to unmarshal report %s: %w", URL, err)
	}
	return ret, nil
}

// Delete removes a report
func (s *Service) Delete(ctx context.Context, id string) error {
	if id == "" {
		return dao.ErrInvalidID
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	URL := s.reportURL(id)
	exists, err := s.fs.Exists(ctx, URL)
	if err != nil {
		return fmt.Errorf("failed to check if report exists: %w", err)
	}
	if !exists {
		return dao.ErrNotFound
	}
	if err := s.fs.Delete(ctx, URL); err != nil {
		return fmt.Errorf("failed to delete report %s: %w", URL, err)
	}
	return nil
}

// List returns reports ordered by start time, unreadable documents are skipped
func (s *Service) List(ctx context.Context, parameters ...*dao.Parameter) ([]*report.Report, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	objects, err := s.fs.List(ctx, s.baseURL, option.NewRecursive(true))
	if err != nil {
		return nil, fmt.Errorf("failed to list reports: %w", err)
	}
	var reports []*report.Report
	for _, object := range objects {
		if object.IsDir() || !strings.HasSuffix(object.Name(), fileExt) {
			continue
		}
		data, err := s.fs.Download(ctx, object)
		if err != nil {
			s.logger.Warn("failed to read report", zap.String("url", object.URL()), zap.Error(err))
			continue
		}
		aReport := &report.Report{}
		if err := json.Unmarshal(data, aReport); err != nil {
			s.logger.Warn("failed to unmarshal report", zap.String("url", object.URL()), zap.Error(err))
			continue
		}
		if !daoreport.Matches(aReport, parameters) {
			continue
		}
		reports = append(reports, aReport)
	}
	sort.SliceStable(reports, func(i, j int) bool {
		if reports[i].StartedAt.Equal(reports[j].StartedAt) {
			return reports[i].ID < reports[j].ID
		}
		return reports[i].StartedAt.Before(reports[j].StartedAt)
	})
	return reports, nil
}

func (s *Service) reportURL(id string) string {
	return url.Join(s.baseURL, id+fileExt)
}

// New creates a report service storing documents under baseURL
func New(ctx context.Context, baseURL string, options ...Option) (*Service, error) {
	if baseURL == "" {
		return nil, fmt.Errorf("base URL cannot be empty")
	}
	ret := &Service{baseURL: url.Normalize(baseURL, file.Scheme)}
	for _, opt := range options {
		opt(ret)
	}
	if ret.fs == nil {
		ret.fs = afs.New()
	}
	if ret.logger == nil {
		ret.logger = zap.NewNop()
	}
	exists, _ := ret.fs.Exists(ctx, ret.baseURL)
	if !exists {
		if err := ret.fs.Create(ctx, ret.baseURL, file.DefaultDirOsMode, true); err != nil {
			return nil, fmt.Errorf("failed to create report location %s: %w", ret.baseURL, err)
		}
	}
	return ret, nil
}
