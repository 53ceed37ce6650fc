package domain

import "errors"

// ErrUpstreamFailure marks errors caused by a store, index or provider being
// unreachable, as opposed to there being nothing to return.
var ErrUpstreamFailure = errors.New("upstream failure")
