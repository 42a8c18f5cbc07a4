package classification

import (
	"strings"

	"github.com/viant/licensor/spdx"
)

// Default category names
const (
	CategoryAllow  = "allow"
	CategoryReview = "review"

	exceptionMarker = "-exception"
)

// Sets holds the license sets derived from a classification table. It is
// read-only after construction and safe for concurrent use.
type Sets struct {
	allowCategory  string
	reviewCategory string
	allowed        Set
	review         Set
	handled        Set
}

// Option customises Sets construction
type Option func(s *Sets)

// WithCategories overrides the allowed and review category names.
func WithCategories(allow, review string) Option {
	return func(s *Sets) {
		if allow != "" {
			s.allowCategory = allow
		}
		if review != "" {
			s.reviewCategory = review
		}
	}
}

// New partitions table into allowed, review and handled sets. It returns a
// *DuplicateError when a license is both allowed and marked for review.
func New(table Table, options ...Option) (*Sets, error) {
	ret := &Sets{allowCategory: CategoryAllow, reviewCategory: CategoryReview}
	for _, opt := range options {
		opt(ret)
	}
	ret.allowed = NewSet(table.Category(ret.allowCategory)...)
	ret.review = NewSet(table.Category(ret.reviewCategory)...)

	var duplicates []string
	ret.handled = make(Set, ret.allowed.Len()+ret.review.Len())
	for id := range ret.allowed {
		ret.handled[id] = struct{}{}
	}
	for id := range ret.review {
		if ret.handled.Has(id) {
			duplicates = append(duplicates, id)
			continue
		}
		ret.handled[id] = struct{}{}
	}
	if len(duplicates) > 0 {
		return nil, &DuplicateError{Licenses: NewSet(duplicates...).Sorted()}
	}
	return ret, nil
}

// Allowed returns the allowed license set
func (s *Sets) Allowed() Set {
	return s.allowed
}

// Review returns the review license set
func (s *Sets) Review() Set {
	return s.review
}

// Handled returns the union of the allowed and review sets
func (s *Sets) Handled() Set {
	return s.handled
}

// IsAllowed returns true if license is in the allowed set.
func (s *Sets) IsAllowed(license string) bool {
	return s.allowed.Has(license)
}

// IsReview returns true if license is in the review set.
func (s *Sets) IsReview(license string) bool {
	return s.review.Has(license)
}

// IsHandled returns true if license is allowed or marked for review. License
// exceptions are only handled as part of a "license WITH exception"
// expression, never as a bare exception id.
func (s *Sets) IsHandled(license string) bool {
	if !s.handled.Has(license) {
		return false
	}
	if !strings.Contains(license, exceptionMarker) {
		return true
	}
	return hasWithClause(license)
}

// hasWithClause requires the upper case " WITH " delimiter; when the id parses
// as an expression the WITH has to be its root operator too.
func hasWithClause(license string) bool {
	if !strings.Contains(license, " WITH ") {
		return false
	}
	if _, err := spdx.Parse(license); err != nil {
		return true
	}
	return spdx.IsWith(license)
}
