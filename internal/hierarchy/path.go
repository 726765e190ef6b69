package hierarchy

import "strings"

// Path is the ordered sequence of node names from the root of a Find
// invocation down to a matching node. It is a result value only; the tree
// never stores paths.
type Path []string

// String joins the path with "/". Callers wanting a different separator
// should use Join.
func (p Path) String() string { return p.Join("/") }

// Join returns the path joined with the given separator.
func (p Path) Join(sep string) string { return strings.Join(p, sep) }

// Equal reports whether p and other name the same location.
func (p Path) Equal(other Path) bool {
	if len(p) != len(other) {
		return false
	}
	for i := range p {
		if p[i] != other[i] {
			return false
		}
	}
	return true
}

// child returns a copy of p extended with name. Copying keeps results
// independent of the walker's internal state.
func (p Path) child(name string) Path {
	out := make(Path, len(p)+1)
	copy(out, p)
	out[len(p)] = name
	return out
}
