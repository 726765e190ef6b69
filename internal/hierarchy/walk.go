package hierarchy

import "fmt"

// DefaultMaxDepth bounds Find traversals unless overridden per call.
// Attach keeps trees acyclic so traversal always terminates; the ceiling
// guards against adversarially deep trees consuming unbounded memory for
// path prefixes.
const DefaultMaxDepth = 10000

type findOptions struct {
	maxDepth int
}

// FindOption customizes a single Find call.
type FindOption func(*findOptions)

// WithMaxDepth overrides the traversal depth ceiling. Values < 1 are
// ignored.
func WithMaxDepth(depth int) FindOption {
	return func(o *findOptions) {
		if depth >= 1 {
			o.maxDepth = depth
		}
	}
}

// frame is one pending node in the explicit traversal stack. The path
// already includes the node's own name.
type frame struct {
	node  Node
	path  Path
	depth int
}

// find is the shared pre-order, left-to-right walk behind Leaf.Find and
// Composite.Find. Children are pushed in reverse so they pop in attachment
// order.
func find(root Node, pred Predicate, opts ...FindOption) ([]Path, error) {
	if pred == nil {
		return nil, ErrNilPredicate
	}
	o := findOptions{maxDepth: DefaultMaxDepth}
	for _, opt := range opts {
		opt(&o)
	}

	var results []Path
	stack := []frame{{node: root, path: Path{root.Name()}, depth: 1}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if f.depth > o.maxDepth {
			return nil, fmt.Errorf("at %q (depth %d): %w", f.path.String(), f.depth, ErrDepthExceeded)
		}

		ok, err := pred(f.node)
		if err != nil {
			return nil, fmt.Errorf("predicate at %q: %w", f.path.String(), err)
		}
		if ok {
			results = append(results, f.path)
		}

		children := f.node.childNodes()
		for i := len(children) - 1; i >= 0; i-- {
			child := children[i]
			stack = append(stack, frame{
				node:  child,
				path:  f.path.child(child.Name()),
				depth: f.depth + 1,
			})
		}
	}
	return results, nil
}
