// Package spdx parses SPDX license expressions and processes the declared
// license strings found in package metadata.
//
// The grammar follows SPDX annex D: simple license identifiers (optionally
// with a trailing "+"), LicenseRef/DocumentRef references, the WITH exception
// operator and the AND/OR compound operators with parenthesised grouping.
// Operator precedence is WITH > AND > OR.
package spdx
