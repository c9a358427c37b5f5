package route

import "errors"

// ErrInvalidArgument marks a malformed pipeline configuration: an unknown
// stop policy or speed model, a mass array that does not line up with the
// stop list, or masses below the unloaded vehicle floor. These are fatal to
// the constructing call.
var ErrInvalidArgument = errors.New("invalid argument")

// ErrMissingPrecondition marks a stage invoked before the stage it depends
// on, such as mass interpolation without a previously resolved stop-index
// set.
var ErrMissingPrecondition = errors.New("missing precondition")
