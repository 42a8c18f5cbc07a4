// Package exclude decides which packages and license locations are out of
// scope of a policy evaluation. Packages are excluded with CEL expressions
// evaluated against a "pkg" variable, locations with glob path patterns.
package exclude
