package memory

import (
	"github.com/viant/licensor/report"
	"github.com/viant/licensor/service/dao"
	daoreport "github.com/viant/licensor/service/dao/report"
	"github.com/viant/licensor/service/dao/store"
)

// Service implements an in-memory report storage, all values are copied on the way in and out.
type Service struct {
	*store.MemoryStore[string, report.Report]
}

var _ dao.Service[string, report.Report] = (*Service)(nil)

// New creates a memory report service
func New() *Service {
	return &Service{
		MemoryStore: store.NewMemoryStore[string, report.Report](
			func(r *report.Report) string { return r.ID },
			store.WithClone[string, report.Report]((*report.Report).Clone),
			store.WithFilter[string, report.Report](daoreport.Matches),
		),
	}
}
