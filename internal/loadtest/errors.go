package loadtest

import "errors"

var (
	// ErrMismatch is returned when the server answers with data that differs
	// from what the run sent or expects.
	ErrMismatch = errors.New("server response mismatch")

	// ErrDuplicateID is returned when two creates yield the same id.
	ErrDuplicateID = errors.New("duplicate post id")

	// ErrNoPosts is returned for a run configured with zero posts.
	ErrNoPosts = errors.New("number of posts must be positive")
)
