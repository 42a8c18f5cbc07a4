// Package idgen generates evaluation run identifiers.
package idgen

import "github.com/google/uuid"

// NewFunc returns a new run id, tests replace it to get stable ids.
var NewFunc = func() string { return uuid.NewString() }

// New returns a new run id
func New() string { return NewFunc() }
