package manifest

import (
	"fmt"

	"github.com/fyrsmithlabs/arbor/internal/hierarchy"
)

// MaxDepth bounds manifest nesting. Validated manifests can therefore be
// built with plain recursion.
const MaxDepth = 1000

// NodeSpec declares one node of a tree. A nil Value means the node is a
// composite.
type NodeSpec struct {
	Name  string     `koanf:"name"`
	Value *int64     `koanf:"value"`
	Nodes []NodeSpec `koanf:"nodes"`
}

// IsLeaf reports whether the spec declares a leaf.
func (s *NodeSpec) IsLeaf() bool { return s.Value != nil }

// Validate checks the spec and everything nested under it.
func (s *NodeSpec) Validate() error {
	return s.validate(1)
}

func (s *NodeSpec) validate(depth int) error {
	if depth > MaxDepth {
		return fmt.Errorf("at %q: %w", s.Name, ErrTooDeep)
	}
	if s.Name == "" {
		return ErrNoName
	}
	if s.Value != nil && len(s.Nodes) > 0 {
		return fmt.Errorf("node %q: %w", s.Name, ErrLeafWithChildren)
	}
	for i := range s.Nodes {
		if err := s.Nodes[i].validate(depth + 1); err != nil {
			return err
		}
	}
	return nil
}

// Build constructs the declared tree bottom-up, attaching children in
// declaration order. The spec must have been validated.
func (s *NodeSpec) Build() (hierarchy.Node, error) {
	if s.IsLeaf() {
		return hierarchy.NewLeaf(s.Name, *s.Value), nil
	}
	root := hierarchy.NewComposite(s.Name)
	for i := range s.Nodes {
		child, err := s.Nodes[i].Build()
		if err != nil {
			return nil, err
		}
		if err := root.Attach(child); err != nil {
			return nil, fmt.Errorf("attach %q under %q: %w", s.Nodes[i].Name, s.Name, err)
		}
	}
	return root, nil
}
