package spdx

import (
	"strings"

	"github.com/viant/licensor/model"
)

const (
	none        = "NONE"
	noAssertion = "NOASSERTION"
)

// Processor maps and validates declared license strings.
type Processor struct {
	mapping map[string]string
	known   map[string]bool
}

// ProcessorOption customises a Processor
type ProcessorOption func(p *Processor)

// WithMapping sets the declared license mapping (declared string -> SPDX expression).
// Keys are matched case-insensitively.
func WithMapping(mapping map[string]string) ProcessorOption {
	return func(p *Processor) {
		for k, v := range mapping {
			p.mapping[strings.ToLower(strings.TrimSpace(k))] = v
		}
	}
}

// WithKnownLicenses registers additional license ids accepted as valid,
// typically the ids of a license classification.
func WithKnownLicenses(ids ...string) ProcessorOption {
	return func(p *Processor) {
		for _, id := range ids {
			p.known[strings.ToLower(id)] = true
		}
	}
}

// NewProcessor creates a declared license processor
func NewProcessor(options ...ProcessorOption) *Processor {
	ret := &Processor{mapping: map[string]string{}, known: map[string]bool{}}
	for _, opt := range options {
		opt(ret)
	}
	return ret
}

// Process maps or parses every declared license. Strings that can neither be
// mapped nor parsed into an expression of known licenses are reported as
// unmapped in input order.
func (p *Processor) Process(declared []string) *model.ProcessedDeclaredLicense {
	ret := &model.ProcessedDeclaredLicense{}
	var expressions []Expression
	seenExpr := map[string]bool{}
	seenUnmapped := map[string]bool{}
	add := func(expr Expression) {
		if text := expr.String(); !seenExpr[text] {
			seenExpr[text] = true
			expressions = append(expressions, expr)
		}
	}
	for _, raw := range declared {
		text := strings.TrimSpace(raw)
		if text == "" {
			continue
		}
		if mapped, ok := p.mapping[strings.ToLower(text)]; ok {
			if isNone(mapped) {
				continue
			}
			if expr, err := Parse(mapped); err == nil {
				if ret.Mapped == nil {
					ret.Mapped = map[string]string{}
				}
				ret.Mapped[raw] = expr.String()
				add(expr)
				continue
			}
		}
		if isNone(text) {
			continue
		}
		if expr, err := Parse(text); err == nil && p.isValid(expr) {
			add(expr)
			continue
		}
		if !seenUnmapped[raw] {
			seenUnmapped[raw] = true
			ret.Unmapped = append(ret.Unmapped, raw)
		}
	}
	if combined := And(expressions...); combined != nil {
		ret.Expression = combined.String()
	}
	return ret
}

func (p *Processor) isValid(expr Expression) bool {
	switch actual := expr.(type) {
	case *License:
		return p.isKnownLicense(actual.ID)
	case *With:
		return p.isKnownLicense(actual.License.ID) && (IsKnownException(actual.Exception) || IsLicenseRef(actual.Exception))
	case *Compound:
		return p.isValid(actual.Left) && p.isValid(actual.Right)
	}
	return false
}

func (p *Processor) isKnownLicense(id string) bool {
	return IsKnownLicense(id) || IsLicenseRef(id) || p.known[strings.ToLower(strings.TrimSuffix(id, "+"))]
}

func isNone(text string) bool {
	upper := strings.ToUpper(strings.TrimSpace(text))
	return upper == none || upper == noAssertion
}

// Process processes declared licenses with the supplied mapping using the
// listed SPDX license ids only.
func Process(declared []string, mapping map[string]string) *model.ProcessedDeclaredLicense {
	return NewProcessor(WithMapping(mapping)).Process(declared)
}
