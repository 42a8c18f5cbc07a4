// Package tracing wraps OpenTelemetry spans for evaluation runs and rules.
package tracing
