// Package policy provides optional declarative settings that select which
// rules of a rule set run and how severe their findings are reported.
package policy
