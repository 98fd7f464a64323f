package graph

import (
	"container/heap"
	"fmt"
	"math"
	"sort"

	"github.com/graphexplorer/core/internal/models"
)

// Direction selects the incoming or outgoing edge bucket of a node.
type Direction string

const (
	Incoming Direction = "incoming"
	Outgoing Direction = "outgoing"
)

// ParseDirection maps a query value to a Direction.
func ParseDirection(s string) (Direction, error) {
	switch Direction(s) {
	case Incoming, Outgoing:
		return Direction(s), nil
	}
	return "", fmt.Errorf("%w: direction %q (want %q or %q)", ErrInvalidInput, s, Incoming, Outgoing)
}

// Index keeps, per node, the ids of its incoming and outgoing edges in store
// order, plus a topological order of all nodes. It never copies records; every
// lookup resolves ids through the store.
type Index struct {
	store    *Store
	incoming map[string][]string // to_node -> edge ids
	outgoing map[string][]string // from_node -> edge ids
	order    []string
}

// NewIndex scans every edge once and fails with ErrInvalidGraph if the edges
// contain a cycle.
func NewIndex(store *Store) (*Index, error) {
	idx := &Index{
		store:    store,
		incoming: make(map[string][]string, store.NodeCount()),
		outgoing: make(map[string][]string, store.NodeCount()),
	}
	for _, e := range store.edges {
		idx.outgoing[e.From] = append(idx.outgoing[e.From], e.ID)
		idx.incoming[e.To] = append(idx.incoming[e.To], e.ID)
	}

	order, err := idx.topoOrder()
	if err != nil {
		return nil, err
	}
	idx.order = order
	return idx, nil
}

func (idx *Index) Store() *Store { return idx.store }

// Order returns node ids so that every edge points forward. Nodes are grouped
// by level; within a level, store order is kept where the edges allow it.
func (idx *Index) Order() []string {
	out := make([]string, len(idx.order))
	copy(out, idx.order)
	return out
}

func (idx *Index) Incoming(nodeID string) ([]models.Edge, error) {
	if !idx.store.HasNode(nodeID) {
		return nil, fmt.Errorf("%w: node %q", ErrNotFound, nodeID)
	}
	return idx.resolve(idx.incoming[nodeID]), nil
}

func (idx *Index) Outgoing(nodeID string) ([]models.Edge, error) {
	if !idx.store.HasNode(nodeID) {
		return nil, fmt.Errorf("%w: node %q", ErrNotFound, nodeID)
	}
	return idx.resolve(idx.outgoing[nodeID]), nil
}

// Edges returns the bucket of nodeID selected by dir.
func (idx *Index) Edges(nodeID string, dir Direction) ([]models.Edge, error) {
	switch dir {
	case Incoming:
		return idx.Incoming(nodeID)
	case Outgoing:
		return idx.Outgoing(nodeID)
	}
	return nil, fmt.Errorf("%w: direction %q", ErrInvalidInput, dir)
}

// EdgesSortedByEffectSize orders the selected bucket by descending |mean|,
// breaking ties by ascending edge id.
func (idx *Index) EdgesSortedByEffectSize(nodeID string, dir Direction) ([]models.Edge, error) {
	edges, err := idx.Edges(nodeID, dir)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(edges, func(i, j int) bool {
		a, b := math.Abs(edges[i].Param.Mean), math.Abs(edges[j].Param.Mean)
		if a != b {
			return a > b
		}
		return edges[i].ID < edges[j].ID
	})
	return edges, nil
}

// Neighbors returns the element ids adjacent to elementID, itself included.
// For a node that is every node one edge away plus the connecting edges; for
// an edge it is the edge and its two endpoints.
func (idx *Index) Neighbors(elementID string) (IDSet, error) {
	if idx.store.HasNode(elementID) {
		set := NewIDSet(elementID)
		for _, id := range idx.incoming[elementID] {
			set.Add(id)
			set.Add(idx.edge(id).From)
		}
		for _, id := range idx.outgoing[elementID] {
			set.Add(id)
			set.Add(idx.edge(id).To)
		}
		return set, nil
	}
	if idx.store.HasEdge(elementID) {
		e := idx.edge(elementID)
		return NewIDSet(elementID, e.From, e.To), nil
	}
	return nil, fmt.Errorf("%w: element %q", ErrNotFound, elementID)
}

// edge returns the stored record without cloning evidence. Callers must only
// read endpoint and parameter fields.
func (idx *Index) edge(id string) *models.Edge {
	return &idx.store.edges[idx.store.edgeByID[id]]
}

func (idx *Index) resolve(ids []string) []models.Edge {
	out := make([]models.Edge, 0, len(ids))
	for _, id := range ids {
		out = append(out, cloneEdge(*idx.edge(id)))
	}
	return out
}

// topoOrder is Kahn's algorithm with a (level rank, store position) priority
// so the result is deterministic.
func (idx *Index) topoOrder() ([]string, error) {
	nodes := idx.store.nodes
	indegree := make(map[string]int, len(nodes))
	for _, n := range nodes {
		indegree[n.ID] = len(idx.incoming[n.ID])
	}

	ready := &nodeQueue{}
	for pos, n := range nodes {
		if indegree[n.ID] == 0 {
			heap.Push(ready, queued{id: n.ID, rank: n.Level.Rank(), pos: pos})
		}
	}

	order := make([]string, 0, len(nodes))
	for ready.Len() > 0 {
		next := heap.Pop(ready).(queued)
		order = append(order, next.id)
		for _, eid := range idx.outgoing[next.id] {
			to := idx.edge(eid).To
			indegree[to]--
			if indegree[to] == 0 {
				pos := idx.store.nodeByID[to]
				heap.Push(ready, queued{id: to, rank: nodes[pos].Level.Rank(), pos: pos})
			}
		}
	}

	if len(order) != len(nodes) {
		var stuck []string
		for _, n := range nodes {
			if indegree[n.ID] > 0 {
				stuck = append(stuck, n.ID)
			}
		}
		return nil, fmt.Errorf("%w: cycle through %v", ErrInvalidGraph, stuck)
	}
	return order, nil
}

type queued struct {
	id   string
	rank int
	pos  int
}

type nodeQueue []queued

func (q nodeQueue) Len() int { return len(q) }
func (q nodeQueue) Less(i, j int) bool {
	if q[i].rank != q[j].rank {
		return q[i].rank < q[j].rank
	}
	return q[i].pos < q[j].pos
}
func (q nodeQueue) Swap(i, j int) { q[i], q[j] = q[j], q[i] }
func (q *nodeQueue) Push(x any) { *q = append(*q, x.(queued)) }
func (q *nodeQueue) Pop() any {
	old := *q
	n := len(old)
	item := old[n-1]
	*q = old[:n-1]
	return item
}
