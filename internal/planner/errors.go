package planner

import "errors"

// Domain-specific errors for the planner package.
var (
	ErrEmptyTitle     = errors.New("title is empty")
	ErrEndBeforeStart = errors.New("event end is not after its start")
)
