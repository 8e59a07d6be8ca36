package sizing

import "errors"

// ErrEmptyTable indicates a lookup against an empty selection table.
// Both shipped tables are non-empty constants, so hitting this means the
// process was built or wired with broken table data, not a bad user input.
var ErrEmptyTable = errors.New("sizing: empty lookup table")
