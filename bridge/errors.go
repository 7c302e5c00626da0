package bridge

import "errors"

var (
	// ErrUnavailable means the host scripting endpoint could not be
	// reached or did not answer in time.
	ErrUnavailable = errors.New("host bridge unavailable")

	// ErrHostFailure means the host scripting engine reported an error
	// while evaluating the call.
	ErrHostFailure = errors.New("host call failed")

	// ErrStaleHandle means the host no longer knows the handle the call
	// was addressed to (the object was deleted host-side).
	ErrStaleHandle = errors.New("stale host handle")
)
