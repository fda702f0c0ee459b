package entity

import "errors"

// ErrNotFound is returned by repositories and services when a record does not exist.
var ErrNotFound = errors.New("record not found")
