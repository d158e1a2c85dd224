package repository

import "errors"

// ErrNoRows is returned when a query matched nothing, regardless of the
// backing implementation.
var ErrNoRows = errors.New("no rows in result set")
