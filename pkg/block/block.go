package block

import (
	"github.com/google/uuid"

	"github.com/VPRamon/virolai-sub000/pkg/constraint"
)

// NodeID is a stable handle to a task within one block. Handles remain valid
// when other tasks are removed and are never reused.
type NodeID int

// halfEdge is one direction of a dependency edge. kind is nil for plain
// ordering edges.
type halfEdge struct {
	peer NodeID
	kind *constraint.DynKind
}

type node struct {
	id   string
	task Task
	out  []halfEdge
	in   []halfEdge
}

// TaskEntry pairs a task with its identifiers for iteration.
type TaskEntry struct {
	Node NodeID
	ID   string
	Task Task
}

// SchedulingBlock is a DAG of tasks. The zero value is not usable; create
// blocks with New.
type SchedulingBlock struct {
	nodes     []*node
	byID      map[string]NodeID
	edgeCount int
}

// New creates an empty scheduling block.
func New() *SchedulingBlock {
	return &SchedulingBlock{byID: make(map[string]NodeID)}
}

// AddTask inserts a task under an auto-generated unique ID and returns its
// handle.
func (b *SchedulingBlock) AddTask(task Task) NodeID {
	n, _ := b.AddTaskWithID(uuid.NewString(), task)
	return n
}

// AddTaskWithID inserts a task under an explicit ID. Returns a
// DuplicateIDError when the ID is already taken.
func (b *SchedulingBlock) AddTaskWithID(id string, task Task) (NodeID, error) {
	if _, exists := b.byID[id]; exists {
		return 0, &DuplicateIDError{ID: id}
	}
	n := NodeID(len(b.nodes))
	b.nodes = append(b.nodes, &node{id: id, task: task})
	b.byID[id] = n
	return n, nil
}

func (b *SchedulingBlock) live(n NodeID) *node {
	if n < 0 || int(n) >= len(b.nodes) {
		return nil
	}
	return b.nodes[n]
}

// AddDependency adds an ordering edge from one task to another. The edge is
// rejected with ErrCycle when it would close a cycle, including self-loops;
// the block is left untouched on error.
func (b *SchedulingBlock) AddDependency(from, to NodeID) error {
	return b.addEdge(from, to, nil)
}

// AddConstrainedDependency adds a dependency edge carrying a dynamic
// constraint kind that restricts the target task during scheduling.
func (b *SchedulingBlock) AddConstrainedDependency(from, to NodeID, kind constraint.DynKind) error {
	return b.addEdge(from, to, &kind)
}

func (b *SchedulingBlock) addEdge(from, to NodeID, kind *constraint.DynKind) error {
	src, dst := b.live(from), b.live(to)
	if src == nil || dst == nil {
		return ErrInvalidNode
	}
	if from == to || b.hasPath(to, from) {
		return ErrCycle
	}
	src.out = append(src.out, halfEdge{peer: to, kind: kind})
	dst.in = append(dst.in, halfEdge{peer: from, kind: kind})
	b.edgeCount++
	return nil
}

// hasPath reports whether to is reachable from from along dependency edges.
func (b *SchedulingBlock) hasPath(from, to NodeID) bool {
	if from == to {
		return true
	}
	seen := make(map[NodeID]bool)
	stack := []NodeID{from}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if seen[n] {
			continue
		}
		seen[n] = true
		for _, e := range b.nodes[n].out {
			if e.peer == to {
				return true
			}
			if !seen[e.peer] {
				stack = append(stack, e.peer)
			}
		}
	}
	return false
}

// RemoveTask removes a task and all its incident edges, returning the task.
// The handle and the task's string ID become invalid; other handles are
// unaffected.
func (b *SchedulingBlock) RemoveTask(n NodeID) (Task, bool) {
	nd := b.live(n)
	if nd == nil {
		return nil, false
	}
	for _, e := range nd.out {
		b.nodes[e.peer].in = dropPeer(b.nodes[e.peer].in, n)
	}
	for _, e := range nd.in {
		b.nodes[e.peer].out = dropPeer(b.nodes[e.peer].out, n)
	}
	b.edgeCount -= len(nd.out) + len(nd.in)
	delete(b.byID, nd.id)
	b.nodes[n] = nil
	return nd.task, true
}

func dropPeer(edges []halfEdge, peer NodeID) []halfEdge {
	out := edges[:0]
	for _, e := range edges {
		if e.peer != peer {
			out = append(out, e)
		}
	}
	return out
}

// Task returns the task behind a handle.
func (b *SchedulingBlock) Task(n NodeID) (Task, bool) {
	if nd := b.live(n); nd != nil {
		return nd.task, true
	}
	return nil, false
}

// IDOf returns the string ID of a task handle.
func (b *SchedulingBlock) IDOf(n NodeID) (string, bool) {
	if nd := b.live(n); nd != nil {
		return nd.id, true
	}
	return "", false
}

// NodeFor returns the handle registered under a string ID.
func (b *SchedulingBlock) NodeFor(id string) (NodeID, bool) {
	n, ok := b.byID[id]
	return n, ok
}

// TaskByID returns the task registered under a string ID.
func (b *SchedulingBlock) TaskByID(id string) (Task, bool) {
	if n, ok := b.byID[id]; ok {
		return b.nodes[n].task, true
	}
	return nil, false
}

// Len returns the number of live tasks.
func (b *SchedulingBlock) Len() int {
	return len(b.byID)
}

// EdgeCount returns the number of dependency edges.
func (b *SchedulingBlock) EdgeCount() int {
	return b.edgeCount
}

// Tasks returns all live tasks in insertion order.
func (b *SchedulingBlock) Tasks() []TaskEntry {
	entries := make([]TaskEntry, 0, len(b.byID))
	for i, nd := range b.nodes {
		if nd != nil {
			entries = append(entries, TaskEntry{Node: NodeID(i), ID: nd.id, Task: nd.task})
		}
	}
	return entries
}

// Predecessors returns the handles of tasks with an edge into n.
func (b *SchedulingBlock) Predecessors(n NodeID) []NodeID {
	return b.peers(n, false)
}

// Successors returns the handles of tasks n has an edge into.
func (b *SchedulingBlock) Successors(n NodeID) []NodeID {
	return b.peers(n, true)
}

func (b *SchedulingBlock) peers(n NodeID, outgoing bool) []NodeID {
	nd := b.live(n)
	if nd == nil {
		return nil
	}
	edges := nd.in
	if outgoing {
		edges = nd.out
	}
	peers := make([]NodeID, len(edges))
	for i, e := range edges {
		peers[i] = e.peer
	}
	return peers
}

// Roots returns all tasks without incoming edges, in insertion order.
func (b *SchedulingBlock) Roots() []NodeID {
	var roots []NodeID
	for i, nd := range b.nodes {
		if nd != nil && len(nd.in) == 0 {
			roots = append(roots, NodeID(i))
		}
	}
	return roots
}

// Leaves returns all tasks without outgoing edges, in insertion order.
func (b *SchedulingBlock) Leaves() []NodeID {
	var leaves []NodeID
	for i, nd := range b.nodes {
		if nd != nil && len(nd.out) == 0 {
			leaves = append(leaves, NodeID(i))
		}
	}
	return leaves
}

// TopoOrder returns the tasks in a topological order of the dependency
// graph.
func (b *SchedulingBlock) TopoOrder() ([]NodeID, error) {
	degree := make(map[NodeID]int, len(b.byID))
	var queue []NodeID
	for i, nd := range b.nodes {
		if nd == nil {
			continue
		}
		degree[NodeID(i)] = len(nd.in)
		if len(nd.in) == 0 {
			queue = append(queue, NodeID(i))
		}
	}
	order := make([]NodeID, 0, len(degree))
	for len(queue) > 0 {
		n := queue[0]
		queue = queue[1:]
		order = append(order, n)
		for _, e := range b.nodes[n].out {
			degree[e.peer]--
			if degree[e.peer] == 0 {
				queue = append(queue, e.peer)
			}
		}
	}
	if len(order) != len(degree) {
		return nil, ErrGraphCycle
	}
	return order, nil
}

// DynEdges returns all dependency edges carrying a dynamic constraint kind,
// keyed by task string IDs, ready for a constraint.DynamicIndex.
func (b *SchedulingBlock) DynEdges() []constraint.Edge {
	var edges []constraint.Edge
	for _, nd := range b.nodes {
		if nd == nil {
			continue
		}
		for _, e := range nd.out {
			if e.kind != nil {
				edges = append(edges, constraint.Edge{
					Source: nd.id,
					Target: b.nodes[e.peer].id,
					Kind:   *e.kind,
				})
			}
		}
	}
	return edges
}
