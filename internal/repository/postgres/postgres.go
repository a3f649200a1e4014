package postgres

import "github.com/pkg/errors"

// ErrNotFound is returned by repositories when no row matches.
var ErrNotFound = errors.New("row not found")
