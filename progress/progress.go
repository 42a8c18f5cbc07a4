package progress

import (
	"context"
	"sync"
	"time"

	"github.com/viant/licensor/model"
)

// Delta represents an incremental counter change emitted by the rule set
// workers. The fields are signed and therefore can be either positive
// (increment) or negative (decrement).
type Delta struct {
	Total     int
	Evaluated int
	Excluded  int
	Errors    int
	Warnings  int
	Hints     int
}

// ViolationDelta counts violations by severity.
func ViolationDelta(violations []*model.RuleViolation) Delta {
	var ret Delta
	for _, violation := range violations {
		switch violation.Severity {
		case model.SeverityError:
			ret.Errors++
		case model.SeverityWarning:
			ret.Warnings++
		case model.SeverityHint:
			ret.Hints++
		}
	}
	return ret
}

// Progress keeps aggregated counters of one evaluation run. It is safe for
// concurrent use.
type Progress struct {
	// set when the tracker is created
	RunID     string
	StartedAt time.Time

	// counters, see Update
	TotalPackages     int
	EvaluatedPackages int
	ExcludedPackages  int
	Errors            int
	Warnings          int
	Hints             int

	sync.Mutex
	onChange func(Progress)
}

// Update adds d to the counters and notifies the onChange callback, if any,
// with a snapshot taken under the lock.
func (p *Progress) Update(d Delta) {
	if p == nil {
		return
	}

	p.Lock()

	p.TotalPackages += d.Total
	p.EvaluatedPackages += d.Evaluated
	p.ExcludedPackages += d.Excluded
	p.Errors += d.Errors
	p.Warnings += d.Warnings
	p.Hints += d.Hints

	snapshot := p.copy()
	cb := p.onChange

	p.Unlock()

	if cb != nil {
		cb(snapshot)
	}
}

// copy returns the counters without the mutex and callback; caller holds the lock.
func (p *Progress) copy() Progress {
	return Progress{
		RunID:             p.RunID,
		StartedAt:         p.StartedAt,
		TotalPackages:     p.TotalPackages,
		EvaluatedPackages: p.EvaluatedPackages,
		ExcludedPackages:  p.ExcludedPackages,
		Errors:            p.Errors,
		Warnings:          p.Warnings,
		Hints:             p.Hints,
	}
}

// Snapshot returns a copy of the tracker suitable for read-only inspection.
func (p *Progress) Snapshot() Progress {
	if p == nil {
		return Progress{}
	}
	p.Lock()
	defer p.Unlock()
	return p.copy()
}

// Done returns true once every package was visited, excluded packages are
// counted as evaluated too.
func (p *Progress) Done() bool {
	snapshot := p.Snapshot()
	return snapshot.TotalPackages > 0 && snapshot.EvaluatedPackages >= snapshot.TotalPackages
}

// OnChange registers a callback that is invoked after every Update. Passing
// nil disables the callback.
func (p *Progress) OnChange(cb func(Progress)) {
	if p == nil {
		return
	}
	p.Lock()
	p.onChange = cb
	p.Unlock()
}

// ----------------------------------------------------------------------------
// Context helpers
// ----------------------------------------------------------------------------

type trackerKeyT struct{}

var trackerKey trackerKeyT

// WithNewTracker creates a new Progress tracker, embeds it in a derived
// context and returns both.
func WithNewTracker(ctx context.Context, runID string, onChange func(Progress)) (context.Context, *Progress) {
	if ctx == nil {
		ctx = context.Background()
	}
	tr := &Progress{
		RunID:     runID,
		StartedAt: time.Now(),
		onChange:  onChange,
	}
	return context.WithValue(ctx, trackerKey, tr), tr
}

// FromContext extracts the Progress tracker from ctx.
func FromContext(ctx context.Context) (*Progress, bool) {
	if ctx == nil {
		return nil, false
	}
	tr, ok := ctx.Value(trackerKey).(*Progress)
	return tr, ok
}

// GetSnapshot combines FromContext and Snapshot.
func GetSnapshot(ctx context.Context) (Progress, bool) {
	if tr, ok := FromContext(ctx); ok {
		return tr.Snapshot(), true
	}
	return Progress{}, false
}

// UpdateCtx looks up the tracker in ctx (if any) and applies the delta.
func UpdateCtx(ctx context.Context, d Delta) {
	if tr, ok := FromContext(ctx); ok {
		tr.Update(d)
	}
}
