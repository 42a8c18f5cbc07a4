// Package progress provides a lightweight tracker that keeps aggregated
// counters (packages total, evaluated, excluded, findings by severity) for a
// single rule set evaluation. The tracker lives in the evaluation context so
// that concurrent workers can update it without a global registry.
package progress
