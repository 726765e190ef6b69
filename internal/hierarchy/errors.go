package hierarchy

import "errors"

// Structural errors reported by Attach.
var (
	ErrNilChild     = errors.New("child is nil")
	ErrEmptyName    = errors.New("node name is empty")
	ErrAlreadyOwned = errors.New("child already has an owner")
	ErrCycle        = errors.New("attach would create a cycle")
)

// Traversal errors reported by Find.
var (
	ErrNilPredicate  = errors.New("predicate is nil")
	ErrDepthExceeded = errors.New("traversal depth ceiling exceeded")
)
