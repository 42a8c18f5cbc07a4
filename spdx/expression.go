package spdx

import "strings"

// Operator joins two expressions
type Operator string

const (
	OperatorAnd Operator = "AND"
	OperatorOr  Operator = "OR"
)

func (o Operator) precedence() int {
	if o == OperatorAnd {
		return 2
	}
	return 1
}

// Expression represents a parsed SPDX license expression
type Expression interface {
	// String returns the normalised expression text.
	String() string
	// Decompose returns the simple licenses (including "X WITH Y" pairs) in
	// first-occurrence order without duplicates.
	Decompose() []string
}

// License is a single license identifier or reference
type License struct {
	ID string
}

// OrLater returns true when the id carries the "+" suffix.
func (l *License) OrLater() bool {
	return strings.HasSuffix(l.ID, "+")
}

func (l *License) String() string {
	return l.ID
}

func (l *License) Decompose() []string {
	return []string{l.ID}
}

// With is a license combined with an exception
type With struct {
	License   *License
	Exception string
}

func (w *With) String() string {
	return w.License.String() + " WITH " + w.Exception
}

func (w *With) Decompose() []string {
	return []string{w.String()}
}

// Compound combines two expressions with AND or OR
type Compound struct {
	Operator Operator
	Left     Expression
	Right    Expression
}

func (c *Compound) String() string {
	return c.operand(c.Left) + " " + string(c.Operator) + " " + c.operand(c.Right)
}

func (c *Compound) operand(expr Expression) string {
	if child, ok := expr.(*Compound); ok && child.Operator.precedence() < c.Operator.precedence() {
		return "(" + child.String() + ")"
	}
	return expr.String()
}

func (c *Compound) Decompose() []string {
	var result []string
	seen := map[string]bool{}
	for _, license := range append(c.Left.Decompose(), c.Right.Decompose()...) {
		if seen[license] {
			continue
		}
		seen[license] = true
		result = append(result, license)
	}
	return result
}

// And combines expressions with the AND operator. Nil expressions are skipped.
func And(expressions ...Expression) Expression {
	var result Expression
	for _, expr := range expressions {
		if expr == nil {
			continue
		}
		if result == nil {
			result = expr
			continue
		}
		result = &Compound{Operator: OperatorAnd, Left: result, Right: expr}
	}
	return result
}

// IsWith returns true when expr is a well formed "license WITH exception"
// expression at the top level.
func IsWith(expr string) bool {
	parsed, err := Parse(expr)
	if err != nil {
		return false
	}
	_, ok := parsed.(*With)
	return ok
}
