package constraint

import (
	"fmt"
	"strings"

	"github.com/VPRamon/virolai-sub000/pkg/interval"
)

// NodeKind identifies the operator of a constraint tree node.
type NodeKind int

const (
	// NodeLeaf wraps a single Constraint.
	NodeLeaf NodeKind = iota
	// NodeNot negates its single child within the scheduling window.
	NodeNot
	// NodeIntersection is satisfied where all children are satisfied.
	NodeIntersection
	// NodeUnion is satisfied where any child is satisfied.
	NodeUnion
)

func (k NodeKind) String() string {
	switch k {
	case NodeLeaf:
		return "Leaf"
	case NodeNot:
		return "Not"
	case NodeIntersection:
		return "And"
	case NodeUnion:
		return "Or"
	default:
		return fmt.Sprintf("NodeKind(%d)", int(k))
	}
}

// Expr is a node in a constraint tree. Trees are built through the Leaf,
// Not, And, and Or constructors and evaluated with ComputeIntervals.
type Expr struct {
	kind     NodeKind
	leaf     Constraint
	children []*Expr
}

// Leaf wraps a constraint as a tree node.
func Leaf(c Constraint) *Expr {
	return &Expr{kind: NodeLeaf, leaf: c}
}

// Not negates a subtree: valid intervals become the gaps the child leaves
// within the scheduling window.
func Not(child *Expr) *Expr {
	return &Expr{kind: NodeNot, children: []*Expr{child}}
}

// And intersects the valid intervals of all children.
func And(children ...*Expr) *Expr {
	return &Expr{kind: NodeIntersection, children: children}
}

// Or unions the valid intervals of all children.
func Or(children ...*Expr) *Expr {
	return &Expr{kind: NodeUnion, children: children}
}

// Kind returns the operator of this node.
func (e *Expr) Kind() NodeKind {
	return e.kind
}

// Constraint returns the wrapped leaf constraint, or nil for operator nodes.
func (e *Expr) Constraint() Constraint {
	return e.leaf
}

// Children returns the child nodes. Leaves have none.
func (e *Expr) Children() []*Expr {
	return e.children
}

// ComputeIntervals evaluates the tree within the scheduling window.
//
// An intersection with no children yields the empty set, as does a union
// with no children.
func (e *Expr) ComputeIntervals(window interval.Interval) interval.Set {
	switch e.kind {
	case NodeLeaf:
		return e.leaf.ComputeIntervals(window)
	case NodeNot:
		return e.children[0].ComputeIntervals(window).Complement(window)
	case NodeIntersection:
		if len(e.children) == 0 {
			return interval.Set{}
		}
		result := e.children[0].ComputeIntervals(window)
		for _, child := range e.children[1:] {
			result = result.Intersect(child.ComputeIntervals(window))
		}
		return result
	case NodeUnion:
		var result interval.Set
		for _, child := range e.children {
			result = result.Union(child.ComputeIntervals(window))
		}
		return result
	default:
		return interval.Set{}
	}
}

// AddChild appends a child to an intersection or union node.
func (e *Expr) AddChild(child *Expr) error {
	switch e.kind {
	case NodeLeaf:
		return ErrChildOnLeaf
	case NodeNot:
		return ErrChildOnNot
	default:
		e.children = append(e.children, child)
		return nil
	}
}

// Depth returns the height of the tree. A single leaf has depth 1.
func (e *Expr) Depth() int {
	depth := 0
	for _, child := range e.children {
		if d := child.Depth(); d > depth {
			depth = d
		}
	}
	return depth + 1
}

// NodeCount returns the total number of nodes in the tree.
func (e *Expr) NodeCount() int {
	count := 1
	for _, child := range e.children {
		count += child.NodeCount()
	}
	return count
}

// LeafCount returns the number of leaf nodes in the tree.
func (e *Expr) LeafCount() int {
	if e.kind == NodeLeaf {
		return 1
	}
	count := 0
	for _, child := range e.children {
		count += child.LeafCount()
	}
	return count
}

// VisitPreorder calls fn for every node, parents before children.
func (e *Expr) VisitPreorder(fn func(*Expr)) {
	fn(e)
	for _, child := range e.children {
		child.VisitPreorder(fn)
	}
}

// VisitLeaves calls fn for every leaf constraint in preorder.
func (e *Expr) VisitLeaves(fn func(Constraint)) {
	e.VisitPreorder(func(node *Expr) {
		if node.kind == NodeLeaf {
			fn(node.leaf)
		}
	})
}

// MapLeaves returns a new tree with every leaf constraint replaced by
// fn(leaf). The tree shape is preserved.
func (e *Expr) MapLeaves(fn func(Constraint) Constraint) *Expr {
	if e.kind == NodeLeaf {
		return Leaf(fn(e.leaf))
	}
	children := make([]*Expr, len(e.children))
	for i, child := range e.children {
		children[i] = child.MapLeaves(fn)
	}
	return &Expr{kind: e.kind, children: children}
}

// Flatten collapses nested nodes of the same operator, so
// And(And(a, b), c) becomes And(a, b, c). Negations are left in place and
// flattening recurses through them.
func (e *Expr) Flatten() *Expr {
	switch e.kind {
	case NodeLeaf:
		return e
	case NodeNot:
		return Not(e.children[0].Flatten())
	default:
		var children []*Expr
		for _, child := range e.children {
			flat := child.Flatten()
			if flat.kind == e.kind {
				children = append(children, flat.children...)
			} else {
				children = append(children, flat)
			}
		}
		return &Expr{kind: e.kind, children: children}
	}
}

// String renders the tree on a single line, e.g. "And(Window[0, 10], Not(r))".
func (e *Expr) String() string {
	if e.kind == NodeLeaf {
		return e.leaf.String()
	}
	parts := make([]string, len(e.children))
	for i, child := range e.children {
		parts[i] = child.String()
	}
	return fmt.Sprintf("%s(%s)", e.kind, strings.Join(parts, ", "))
}

// TreeString renders the tree with one node per line, indented by depth.
func (e *Expr) TreeString() string {
	var b strings.Builder
	e.writeTree(&b, 0)
	return b.String()
}

func (e *Expr) writeTree(b *strings.Builder, depth int) {
	b.WriteString(strings.Repeat("  ", depth))
	if e.kind == NodeLeaf {
		b.WriteString(e.leaf.String())
	} else {
		b.WriteString(e.kind.String())
	}
	b.WriteByte('\n')
	for _, child := range e.children {
		child.writeTree(b, depth+1)
	}
}
