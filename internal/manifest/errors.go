package manifest

import "errors"

// Validation errors.
var (
	ErrNoName           = errors.New("node name is required")
	ErrLeafWithChildren = errors.New("node declares both value and nodes")
	ErrTooDeep          = errors.New("manifest nesting exceeds maximum depth")
	ErrFileTooLarge     = errors.New("manifest file exceeds maximum size")
)
