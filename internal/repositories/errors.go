package repositories

import "errors"

// ErrNotFound is returned by every repository when the requested record is
// absent. Implementations wrap it with an entity-specific message so callers
// can match with errors.Is while logs stay descriptive.
var ErrNotFound = errors.New("record not found")
