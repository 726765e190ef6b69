package hierarchy

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned by Resolve when a path names a node that does not
// exist under the given root.
var ErrNotFound = errors.New("no node at path")

// Resolve follows path name-by-name from root and returns the node it names.
// The first element must be root's own name; an empty path is invalid.
func Resolve(root Node, path Path) (Node, error) {
	if len(path) == 0 {
		return nil, fmt.Errorf("empty path: %w", ErrNotFound)
	}
	if path[0] != root.Name() {
		return nil, fmt.Errorf("%q does not start at %q: %w", path.String(), root.Name(), ErrNotFound)
	}

	n := root
	for i, name := range path[1:] {
		var next Node
		for _, child := range n.childNodes() {
			if child.Name() == name {
				next = child
				break
			}
		}
		if next == nil {
			return nil, fmt.Errorf("%q: no child %q under %q: %w", path.String(), name, path[:i+1].String(), ErrNotFound)
		}
		n = next
	}
	return n, nil
}
