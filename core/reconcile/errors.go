package reconcile

import "errors"

// ErrAlignment reports that gap detection was given source and marker
// sequences of different lengths. The driver pads columns before comparing,
// so hitting this is a programmer error and fatal to the run.
var ErrAlignment = errors.New("source and marker columns are not aligned")

// ErrHeaderMismatch reports that a required column header is missing or does
// not match its expected label. Structural errors abort the whole run before
// any row is processed.
var ErrHeaderMismatch = errors.New("sheet structure validation failed")

// ErrPollBudget reports that the resolution poller exceeded its iteration
// cap. The cap is only set in tests; production polling is unbounded.
var ErrPollBudget = errors.New("poll iteration budget exhausted")
