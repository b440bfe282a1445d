package rbtree

import "errors"

// Sentinel errors returned by the construction-time and bulk-operation entry
// points. Hot mutation paths never return an error: violated preconditions
// there are programmer errors and panic via assert, not caller-recoverable
// conditions.
var (
	// ErrInvalidConfig is returned by New when a Config is missing a
	// required field.
	ErrInvalidConfig = errors.New("rbtree: invalid config")

	// ErrUnordered is returned by Append when the receiving tree's
	// maximum key is not less than or equal to the argument tree's
	// minimum key.
	ErrUnordered = errors.New("rbtree: trees are not ordered for append")
)
