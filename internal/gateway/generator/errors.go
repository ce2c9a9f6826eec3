package generator

import "errors"

// ErrEmptyDescription is returned when a generation request has no description
var ErrEmptyDescription = errors.New("description is required")
