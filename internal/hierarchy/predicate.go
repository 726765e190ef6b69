package hierarchy

import "strings"

// Predicate is a pure boolean test over a node's visible attributes. It must
// not mutate the tree. An error returned by a predicate aborts the Find
// traversal and propagates to the caller.
type Predicate func(Node) (bool, error)

// NameEquals matches nodes whose name is exactly name.
func NameEquals(name string) Predicate {
	return func(n Node) (bool, error) {
		return n.Name() == name, nil
	}
}

// NameContains matches nodes whose name contains sub.
func NameContains(sub string) Predicate {
	return func(n Node) (bool, error) {
		return strings.Contains(n.Name(), sub), nil
	}
}

// MetricAtLeast matches nodes whose aggregate metric is >= min. For a
// Composite this recomputes the subtree sum at every candidate node, so
// matching a whole tree costs O(n) per visited node.
func MetricAtLeast(min int64) Predicate {
	return func(n Node) (bool, error) {
		return n.Metric() >= min, nil
	}
}

// IsLeaf matches terminal nodes.
func IsLeaf() Predicate {
	return func(n Node) (bool, error) {
		_, ok := n.(*Leaf)
		return ok, nil
	}
}

// And matches when every predicate matches. Evaluation short-circuits.
func And(preds ...Predicate) Predicate {
	return func(n Node) (bool, error) {
		for _, p := range preds {
			ok, err := p(n)
			if err != nil {
				return false, err
			}
			if !ok {
				return false, nil
			}
		}
		return true, nil
	}
}

// Or matches when any predicate matches. Evaluation short-circuits.
func Or(preds ...Predicate) Predicate {
	return func(n Node) (bool, error) {
		for _, p := range preds {
			ok, err := p(n)
			if err != nil {
				return false, err
			}
			if ok {
				return true, nil
			}
		}
		return false, nil
	}
}

// Not inverts a predicate.
func Not(pred Predicate) Predicate {
	return func(n Node) (bool, error) {
		ok, err := pred(n)
		if err != nil {
			return false, err
		}
		return !ok, nil
	}
}
