package hierarchy

// Node is the capability set shared by both node kinds.
//
// The unexported methods seal the interface: Leaf and Composite are the only
// implementations, so a type switch over the two is exhaustive.
type Node interface {
	// Name returns the node's name, fixed at construction.
	Name() string
	// Metric returns the aggregate value of this node and everything
	// beneath it. It is recomputed from current children on every call.
	Metric() int64
	// Find returns the path of every node in this subtree for which the
	// predicate holds, pre-order and left-to-right. Each path starts at
	// the receiver's name. A predicate error aborts the traversal.
	Find(pred Predicate, opts ...FindOption) ([]Path, error)

	// Ownership bookkeeping for the single-owner invariant.
	owned() bool
	setOwned()
	childNodes() []Node
}

// Leaf is a terminal node holding an intrinsic value. It is immutable after
// construction and owns no children.
type Leaf struct {
	name    string
	value   int64
	isOwned bool
}

// NewLeaf constructs a Leaf with its final attributes.
func NewLeaf(name string, value int64) *Leaf {
	return &Leaf{name: name, value: value}
}

// Name returns the leaf's name.
func (l *Leaf) Name() string { return l.name }

// Value returns the leaf's intrinsic value.
func (l *Leaf) Value() int64 { return l.value }

// Metric returns the stored value. It never fails and never recurses.
func (l *Leaf) Metric() int64 { return l.value }

// Find evaluates the predicate against the leaf itself.
func (l *Leaf) Find(pred Predicate, opts ...FindOption) ([]Path, error) {
	return find(l, pred, opts...)
}

func (l *Leaf) owned() bool        { return l.isOwned }
func (l *Leaf) setOwned()          { l.isOwned = true }
func (l *Leaf) childNodes() []Node { return nil }

// Composite is an internal node owning an ordered sequence of children.
// The child sequence only grows, through Attach.
type Composite struct {
	name     string
	children []Node
	isOwned  bool
}

// NewComposite constructs an empty Composite.
func NewComposite(name string) *Composite {
	return &Composite{name: name}
}

// Name returns the composite's name.
func (c *Composite) Name() string { return c.name }

// Len returns the number of direct children.
func (c *Composite) Len() int { return len(c.children) }

// Attach appends child to the end of the owned sequence, transferring
// ownership to c. It rejects a nil child, a child that already has an owner,
// and a child whose subtree contains c (which would create a cycle). Go has
// no move semantics, so the single-owner rule is enforced at runtime rather
// than by construction.
func (c *Composite) Attach(child Node) error {
	if child == nil {
		return ErrNilChild
	}
	if child.Name() == "" {
		return ErrEmptyName
	}
	if child.owned() {
		return ErrAlreadyOwned
	}
	if contains(child, c) {
		return ErrCycle
	}
	child.setOwned()
	c.children = append(c.children, child)
	return nil
}

// Metric returns the sum of Metric over all children, recomputed on every
// call. An empty Composite yields 0, the fold identity. The walk uses an
// explicit heap-allocated stack, so arbitrarily deep trees cannot exhaust
// the goroutine stack.
func (c *Composite) Metric() int64 {
	var total int64
	stack := make([]Node, 0, len(c.children))
	stack = append(stack, c)
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		switch v := n.(type) {
		case *Leaf:
			total += v.value
		case *Composite:
			for i := len(v.children) - 1; i >= 0; i-- {
				stack = append(stack, v.children[i])
			}
		}
	}
	return total
}

// Find evaluates the predicate over the whole subtree rooted at c.
func (c *Composite) Find(pred Predicate, opts ...FindOption) ([]Path, error) {
	return find(c, pred, opts...)
}

func (c *Composite) owned() bool        { return c.isOwned }
func (c *Composite) setOwned()          { c.isOwned = true }
func (c *Composite) childNodes() []Node { return c.children }

// contains reports whether target is reachable from root through child
// links, including root itself.
func contains(root, target Node) bool {
	stack := []Node{root}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if n == target {
			return true
		}
		stack = append(stack, n.childNodes()...)
	}
	return false
}
