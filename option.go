package licensor

import (
	"github.com/viant/afs"
	"github.com/viant/afs/storage"
	"github.com/viant/licensor/classification"
	"github.com/viant/licensor/policy"
	"github.com/viant/licensor/report"
	"github.com/viant/licensor/rule"
	"github.com/viant/licensor/service/dao"
	"github.com/viant/licensor/tracing"
	"go.uber.org/zap"

	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

// Option configures Service
type Option func(s *Service)

// WithConfig sets the service config
func WithConfig(config *Config) Option {
	return func(s *Service) {
		s.config = config
	}
}

// WithLogger sets logger
func WithLogger(logger *zap.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

// WithFS sets the storage service used to load documents and store reports
func WithFS(fs afs.Service) Option {
	return func(s *Service) {
		s.fs = fs
	}
}

// WithFsOptions sets storage options used when loading documents, for example an embed.FS
func WithFsOptions(options ...storage.Option) Option {
	return func(s *Service) {
		s.fsOptions = options
	}
}

// WithReportDAO sets the report storage
func WithReportDAO(reportDAO dao.Service[string, report.Report]) Option {
	return func(s *Service) {
		s.reportDAO = reportDAO
	}
}

// WithClassifications sets already built license sets
func WithClassifications(sets *classification.Sets) Option {
	return func(s *Service) {
		s.sets = sets
	}
}

// WithPolicy sets the policy, it takes precedence over Config.Policy
func WithPolicy(p *policy.Policy) Option {
	return func(s *Service) {
		s.policy = p
	}
}

// WithRules registers additional rules evaluated after the default ones
func WithRules(rules ...rule.Rule) Option {
	return func(s *Service) {
		s.rules = append(s.rules, rules...)
	}
}

// WithTracing configures OpenTelemetry tracing with the stdout exporter. If outputFile is empty
// spans are written to stdout.
func WithTracing(serviceName, serviceVersion, outputFile string) Option {
	return func(s *Service) {
		if err := tracing.Init(serviceName, serviceVersion, outputFile); err != nil {
			s.initErrors = append(s.initErrors, err)
		}
	}
}

// WithTracingExporter configures OpenTelemetry tracing using a custom SpanExporter.
func WithTracingExporter(serviceName, serviceVersion string, exporter sdktrace.SpanExporter) Option {
	return func(s *Service) {
		if err := tracing.InitWithExporter(serviceName, serviceVersion, exporter); err != nil {
			s.initErrors = append(s.initErrors, err)
		}
	}
}
