// Package manifest loads YAML tree declarations and builds hierarchy trees
// from them.
//
// A manifest describes one tree. A node with a value is a leaf; a node
// without one is a composite whose children, if any, are listed under
// nodes and attached in declaration order:
//
//	name: root
//	nodes:
//	  - name: a
//	    value: 5
//	  - name: sub
//	    nodes:
//	      - name: c
//	        value: 2
package manifest
