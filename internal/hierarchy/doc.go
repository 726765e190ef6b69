// Package hierarchy implements an in-memory tree of named nodes with a
// single shared capability set: an aggregate metric over a subtree and a
// predicate search that yields path-qualified results.
//
// Two node kinds exist and the set is closed: a Leaf carries an intrinsic
// value and owns no children, a Composite owns an ordered sequence of child
// nodes and derives everything from them. Both implement Node; the interface
// is sealed to this package so dispatch over the two kinds is exhaustive.
//
// # Ownership
//
// A node belongs to at most one Composite. Attach transfers ownership and
// rejects a child that already has an owner or whose subtree contains the
// receiver, so the structure stays a strict tree and traversals always
// terminate. There are no parent back-references; traversal is top-down only.
//
// # Traversal
//
// Metric and Find share an explicit-stack, pre-order, left-to-right walk.
// Metric is a total function: it recomputes the sum from current children on
// every call and cannot fail. Find evaluates the predicate at every node in
// attachment order, returns the full name path of each match, and propagates
// the first predicate error. Trees deeper than the configured ceiling make
// Find return ErrDepthExceeded instead of exhausting memory.
//
// # Concurrency
//
// The package does no locking. Reads are safe to run concurrently with each
// other; callers that mutate a tree while reading it must serialize access
// themselves (the catalog package does this for the server and CLI).
package hierarchy
