package session

import "errors"

// ErrNotFound is returned when the referenced session id does not exist.
// It is a non-fatal signal; callers must handle it without terminating.
var ErrNotFound = errors.New("session not found")
