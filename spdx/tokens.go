package spdx

import (
	"strings"

	"github.com/viant/parsly"
	"github.com/viant/parsly/matcher"
)

// Token codes
const (
	whitespaceCode = iota + 1
	openParenCode
	closeParenCode
	andCode
	orCode
	withCode
	identifierCode
)

// Token definitions
var (
	whitespaceToken = parsly.NewToken(whitespaceCode, "Whitespace", matcher.NewWhiteSpace())
	openParenToken  = parsly.NewToken(openParenCode, "(", matcher.NewByte('('))
	closeParenToken = parsly.NewToken(closeParenCode, ")", matcher.NewByte(')'))
	andToken        = parsly.NewToken(andCode, "AND", newKeywordMatcher("AND"))
	orToken         = parsly.NewToken(orCode, "OR", newKeywordMatcher("OR"))
	withToken       = parsly.NewToken(withCode, "WITH", newKeywordMatcher("WITH"))
	identifierToken = parsly.NewToken(identifierCode, "LicenseID", &identifierMatcher{})
)

// keywordMatcher matches an operator written all upper or all lower case; the
// keyword has to be followed by whitespace, a parenthesis or the end of input.
type keywordMatcher struct {
	upper string
	lower string
}

func newKeywordMatcher(keyword string) parsly.Matcher {
	return &keywordMatcher{upper: strings.ToUpper(keyword), lower: strings.ToLower(keyword)}
}

func (m *keywordMatcher) Match(cursor *parsly.Cursor) int {
	input := cursor.Input
	pos := cursor.Pos
	size := len(m.upper)
	if pos+size > cursor.InputSize {
		return 0
	}
	if text := string(input[pos : pos+size]); text != m.upper && text != m.lower {
		return 0
	}
	if next := pos + size; next < cursor.InputSize && !isBoundary(input[next]) {
		return 0
	}
	return size
}

// identifierMatcher matches license ids, LicenseRef-/DocumentRef- references
// and exception ids. A trailing "+" is part of the identifier.
type identifierMatcher struct{}

func (m *identifierMatcher) Match(cursor *parsly.Cursor) int {
	input := cursor.Input
	pos := cursor.Pos
	size := cursor.InputSize

	matched := 0
	for i := pos; i < size; i++ {
		if !isIDChar(input[i]) {
			break
		}
		matched++
	}
	if matched == 0 {
		return 0
	}
	if end := pos + matched; end < size && input[end] == '+' {
		matched++
	}
	return matched
}

func isBoundary(c byte) bool {
	return c == '(' || c == ')' || isWhitespace(c)
}

func isWhitespace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}

func isIDChar(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9') || c == '-' || c == '.' || c == ':'
}
