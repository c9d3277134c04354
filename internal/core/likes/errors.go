package likes

import "errors"

var (
	// ErrToggleInFlight is returned when a like or unlike for the same
	// (actor, post) pair is already being processed. The caller may retry
	// after a short delay; the in-flight toggle wins.
	ErrToggleInFlight = errors.New("like toggle already in flight for this post")

	// ErrNotAuthorized is returned when an anonymous request reaches the
	// toggle coordinator
	ErrNotAuthorized = errors.New("authentication required to like posts")
)
