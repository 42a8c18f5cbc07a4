package licensor

import "errors"

// ErrNoClassifications is returned when evaluation starts before license classifications are loaded.
var ErrNoClassifications = errors.New("license classifications are not loaded")
