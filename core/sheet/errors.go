package sheet

import "errors"

// ErrLengthMismatch reports that a forced-length column read returned more
// rows than requested. Short columns are padded, never truncated, so an
// oversized result indicates a programmer error and is fatal to the run.
var ErrLengthMismatch = errors.New("column length mismatch")
