package classification

import (
	"errors"
	"fmt"
	"strings"
)

// ErrOverlap is matched by every *DuplicateError.
var ErrOverlap = errors.New("license classifications overlap")

// DuplicateError lists license ids classified in more than one handled category.
type DuplicateError struct {
	Licenses []string
}

func (e *DuplicateError) Error() string {
	return fmt.Sprintf("the classifications for the following licenses overlap: %s", strings.Join(e.Licenses, ", "))
}

// Is reports ErrOverlap equality
func (e *DuplicateError) Is(target error) bool {
	return target == ErrOverlap
}
