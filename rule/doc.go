// Package rule defines the policy rule abstraction and the license rules of
// the default rule set. A rule is a pure function of one package: it never
// keeps state between packages or runs, and returns its findings instead of
// appending them to a shared collection.
package rule
