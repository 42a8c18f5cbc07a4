// Package model contains the in-memory representation of the packages,
// resolved licenses and rule violations handled by the licensor rule set.
//
// Packages are typically decoded from an analyzer result (YAML or JSON)
// produced by the host; rules read them and emit RuleViolation values that
// are collected into a report.
package model
