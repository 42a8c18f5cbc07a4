package spdx

import (
	"fmt"
	"strings"

	"github.com/viant/parsly"
)

// Parse parses an SPDX license expression.
func Parse(expression string) (Expression, error) {
	text := strings.TrimSpace(expression)
	if text == "" {
		return nil, fmt.Errorf("empty license expression")
	}
	p := &parser{cursor: parsly.NewCursor("", []byte(text), 0)}
	expr, err := p.parseOr()
	if err != nil {
		return nil, fmt.Errorf("invalid license expression %q: %w", expression, err)
	}
	p.skipWhitespace()
	if p.cursor.HasMore() {
		return nil, fmt.Errorf("invalid license expression %q: unexpected %q at %d", expression, text[p.cursor.Pos:], p.cursor.Pos)
	}
	return expr, nil
}

type parser struct {
	cursor *parsly.Cursor
}

func (p *parser) parseOr() (Expression, error) {
	left, err := p.parseAnd()
	if err != nil {
		return nil, err
	}
	for p.matchOperator(orToken) {
		right, err := p.parseAnd()
		if err != nil {
			return nil, err
		}
		left = &Compound{Operator: OperatorOr, Left: left, Right: right}
	}
	return left, nil
}

func (p *parser) parseAnd() (Expression, error) {
	left, err := p.parseWith()
	if err != nil {
		return nil, err
	}
	for p.matchOperator(andToken) {
		right, err := p.parseWith()
		if err != nil {
			return nil, err
		}
		left = &Compound{Operator: OperatorAnd, Left: left, Right: right}
	}
	return left, nil
}

func (p *parser) parseWith() (Expression, error) {
	cursor := p.cursor
	matched := cursor.MatchAfterOptional(whitespaceToken, openParenToken, identifierToken)
	switch matched.Code {
	case openParenCode:
		expr, err := p.parseOr()
		if err != nil {
			return nil, err
		}
		if cursor.MatchAfterOptional(whitespaceToken, closeParenToken).Code != closeParenCode {
			return nil, cursor.NewError(closeParenToken)
		}
		return expr, nil
	case identifierCode:
	default:
		return nil, cursor.NewError(openParenToken, identifierToken)
	}

	id := matched.Text(cursor)
	if isOperator(id) {
		return nil, fmt.Errorf("expected license id but found operator %v", id)
	}
	license := &License{ID: id}
	if license.OrLater() && strings.Contains(strings.ToLower(id), "licenseref-") {
		return nil, fmt.Errorf("license reference %v cannot use the '+' operator", id)
	}
	if !p.matchOperator(withToken) {
		return license, nil
	}
	matched = cursor.MatchAfterOptional(whitespaceToken, identifierToken)
	if matched.Code != identifierCode {
		return nil, cursor.NewError(identifierToken)
	}
	exception := matched.Text(cursor)
	if isOperator(exception) || strings.HasSuffix(exception, "+") {
		return nil, fmt.Errorf("invalid exception id %v", exception)
	}
	return &With{License: license, Exception: exception}, nil
}

// matchOperator consumes the operator token or leaves the cursor untouched.
func (p *parser) matchOperator(token *parsly.Token) bool {
	pos := p.cursor.Pos
	if p.cursor.MatchAfterOptional(whitespaceToken, token).Code == token.Code {
		return true
	}
	p.cursor.Pos = pos
	return false
}

func (p *parser) skipWhitespace() {
	p.cursor.MatchOne(whitespaceToken)
}

func isOperator(text string) bool {
	switch strings.ToUpper(text) {
	case "AND", "OR", "WITH":
		return true
	}
	return false
}
