package constraint

import "errors"

var (
	// ErrChildOnLeaf indicates an attempt to attach a child to a leaf node.
	ErrChildOnLeaf = errors.New("constraint: leaf nodes cannot have children")

	// ErrChildOnNot indicates an attempt to attach a second child to a
	// negation node, which takes exactly one.
	ErrChildOnNot = errors.New("constraint: negation nodes take exactly one child")
)
