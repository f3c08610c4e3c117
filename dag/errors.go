package dag

import "errors"

// ErrReaderNil is returned when a nil PageTextReader is passed to
// NewAnnotatedDag.
var ErrReaderNil = errors.New("dag: reader is nil")
