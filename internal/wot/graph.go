package wot

import "fmt"

// NodeID identifies a node. Ids are assigned by the store, start at 0 and
// increase monotonically; they are never reused.
type NodeID uint32

// EdgeID identifies an edge. The edge id space is independent of the node
// id space and also starts at 0.
type EdgeID uint32

// Label is the fixed-width opaque value carried by a node, typically derived
// from a public key. Labels are not required to be unique.
type Label [8]byte

// Relation is the kind of a directed edge. The numeric values are the wire
// discriminants used by the codec.
type Relation uint8

const (
	Follow Relation = 0
	Mute   Relation = 1
)

func (r Relation) String() string {
	switch r {
	case Follow:
		return "follow"
	case Mute:
		return "mute"
	}
	return fmt.Sprintf("relation(%d)", uint8(r))
}

// Node is a record owned by the graph.
type Node struct {
	ID    NodeID
	Label Label
}

// Edge is a directed, immutable record owned by the graph.
type Edge struct {
	ID       EdgeID
	Source   NodeID
	Target   NodeID
	Relation Relation
}

// Graph is an append-only in-memory trust graph. Nodes and edges live in
// arenas indexed by id; an adjacency index maps each node to its outgoing
// edges in insertion order. A Graph is an exclusively-owned value: concurrent
// readers are safe only while no writer is mutating it.
type Graph struct {
	nodes []*Node   // arena indexed by NodeID; nil entries are unassigned ids
	edges []*Edge   // arena indexed by EdgeID
	out   [][]EdgeID // NodeID -> outgoing edge ids, insertion order

	nodeCount int
	edgeCount int
	nextNode  NodeID
	nextEdge  EdgeID
}

// New creates an empty graph.
func New() *Graph {
	return &Graph{}
}

// NewWithCapacity creates an empty graph with preallocated room for the
// given number of nodes and edges.
func NewWithCapacity(nodes, edges int) *Graph {
	return &Graph{
		nodes: make([]*Node, 0, nodes),
		edges: make([]*Edge, 0, edges),
		out:   make([][]EdgeID, 0, nodes),
	}
}

// AddNode stores a label and returns the assigned node id. It always
// succeeds and never deduplicates; see AddUniqueNode for that.
func (g *Graph) AddNode(label Label) NodeID {
	id := g.nextNode
	g.growNodes(id)
	g.nodes[id] = &Node{ID: id, Label: label}
	g.nodeCount++
	g.nextNode = id + 1
	return id
}

// AddUniqueNode returns the id of an existing node carrying label, adding a
// new node only if none does.
func (g *Graph) AddUniqueNode(label Label) NodeID {
	if id, ok := g.NodeByLabel(label); ok {
		return id
	}
	return g.AddNode(label)
}

// NodeByLabel returns the lowest node id carrying label, scanning all nodes.
func (g *Graph) NodeByLabel(label Label) (NodeID, bool) {
	for _, n := range g.nodes {
		if n != nil && n.Label == label {
			return n.ID, true
		}
	}
	return 0, false
}

// AddEdge appends a directed edge and returns its id. It fails with
// ErrUnknownNode if either endpoint is not in the graph; a failed call
// allocates nothing.
func (g *Graph) AddEdge(source, target NodeID, rel Relation) (EdgeID, error) {
	if !g.hasNode(source) {
		return 0, fmt.Errorf("source %d: %w", source, ErrUnknownNode)
	}
	if !g.hasNode(target) {
		return 0, fmt.Errorf("target %d: %w", target, ErrUnknownNode)
	}
	id := g.nextEdge
	g.growEdges(id)
	g.edges[id] = &Edge{ID: id, Source: source, Target: target, Relation: rel}
	g.out[source] = append(g.out[source], id)
	g.edgeCount++
	g.nextEdge = id + 1
	return id, nil
}

// Node returns the node with the given id.
func (g *Graph) Node(id NodeID) (Node, bool) {
	if !g.hasNode(id) {
		return Node{}, false
	}
	return *g.nodes[id], true
}

// Edge returns the edge with the given id.
func (g *Graph) Edge(id EdgeID) (Edge, bool) {
	if int(id) >= len(g.edges) || g.edges[id] == nil {
		return Edge{}, false
	}
	return *g.edges[id], true
}

// Outgoing returns the edges leaving the given node in insertion order. The
// result is empty (not an error) for leaf or unknown nodes.
func (g *Graph) Outgoing(id NodeID) []Edge {
	if int(id) >= len(g.out) || len(g.out[id]) == 0 {
		return nil
	}
	edges := make([]Edge, len(g.out[id]))
	for i, eid := range g.out[id] {
		edges[i] = *g.edges[eid]
	}
	return edges
}

// NodeCount returns the number of nodes in the graph.
func (g *Graph) NodeCount() int { return g.nodeCount }

// EdgeCount returns the number of edges in the graph.
func (g *Graph) EdgeCount() int { return g.edgeCount }

func (g *Graph) hasNode(id NodeID) bool {
	return int(id) < len(g.nodes) && g.nodes[id] != nil
}

// growNodes extends the node arena and adjacency index to hold id.
func (g *Graph) growNodes(id NodeID) {
	for int(id) >= len(g.nodes) {
		g.nodes = append(g.nodes, nil)
		g.out = append(g.out, nil)
	}
}

func (g *Graph) growEdges(id EdgeID) {
	for int(id) >= len(g.edges) {
		g.edges = append(g.edges, nil)
	}
}

// putNode places an imported node record at its own id, advancing the
// allocator past it. Used by the codec, which restores ids verbatim.
func (g *Graph) putNode(n Node) {
	g.growNodes(n.ID)
	if g.nodes[n.ID] == nil {
		g.nodeCount++
	}
	rec := n
	g.nodes[n.ID] = &rec
	if n.ID >= g.nextNode {
		g.nextNode = n.ID + 1
	}
}

// putEdge places an imported edge record at its own id, advancing the
// allocator past it. Endpoints must already be present.
func (g *Graph) putEdge(e Edge) {
	g.growEdges(e.ID)
	if g.edges[e.ID] == nil {
		g.edgeCount++
	}
	rec := e
	g.edges[e.ID] = &rec
	g.out[e.Source] = append(g.out[e.Source], e.ID)
	if e.ID >= g.nextEdge {
		g.nextEdge = e.ID + 1
	}
}
