package graph

import (
	"fmt"
	"slices"
	"strings"

	"github.com/graphexplorer/core/internal/models"
)

// Store owns every node, edge and evidence record of the graph. It is
// immutable after NewStore returns; accessors hand out copies.
type Store struct {
	nodes    []models.Node
	edges    []models.Edge
	nodeByID map[string]int
	edgeByID map[string]int
}

// NewStore validates the dataset and returns a read-only store. Edge ids are
// always derived from their endpoints; any id set by the caller is replaced.
func NewStore(nodes []models.Node, edges []models.Edge) (*Store, error) {
	s := &Store{
		nodes:    make([]models.Node, 0, len(nodes)),
		edges:    make([]models.Edge, 0, len(edges)),
		nodeByID: make(map[string]int, len(nodes)),
		edgeByID: make(map[string]int, len(edges)),
	}

	for _, n := range nodes {
		if err := s.addNode(n); err != nil {
			return nil, err
		}
	}
	for _, e := range edges {
		if err := s.addEdge(e); err != nil {
			return nil, err
		}
	}

	return s, nil
}

func (s *Store) addNode(n models.Node) error {
	if n.ID == "" {
		return fmt.Errorf("%w: node with empty id", ErrInvalidGraph)
	}
	if strings.Contains(n.ID, models.EdgeSeparator) {
		return fmt.Errorf("%w: node id %q contains %q", ErrInvalidGraph, n.ID, models.EdgeSeparator)
	}
	if !n.Level.Valid() {
		return fmt.Errorf("%w: node %q has unknown level %q", ErrInvalidGraph, n.ID, n.Level)
	}
	if _, exists := s.nodeByID[n.ID]; exists {
		return fmt.Errorf("%w: duplicate node id %q", ErrInvalidGraph, n.ID)
	}

	s.nodeByID[n.ID] = len(s.nodes)
	s.nodes = append(s.nodes, n)
	return nil
}

func (s *Store) addEdge(e models.Edge) error {
	e.ID = models.EdgeID(e.From, e.To)

	if _, exists := s.edgeByID[e.ID]; exists {
		return fmt.Errorf("%w: duplicate edge id %q", ErrInvalidGraph, e.ID)
	}

	from, ok := s.nodeByID[e.From]
	if !ok {
		return fmt.Errorf("%w: edge %q references unknown node %q", ErrInvalidGraph, e.ID, e.From)
	}
	to, ok := s.nodeByID[e.To]
	if !ok {
		return fmt.Errorf("%w: edge %q references unknown node %q", ErrInvalidGraph, e.ID, e.To)
	}
	if err := checkLayering(s.nodes[from].Level, s.nodes[to].Level); err != nil {
		return fmt.Errorf("%w: edge %q: %v", ErrInvalidGraph, e.ID, err)
	}
	if e.From == e.To {
		return fmt.Errorf("%w: edge %q is a self loop", ErrInvalidGraph, e.ID)
	}
	if !e.Status.Valid() {
		return fmt.Errorf("%w: edge %q has unknown status %q", ErrInvalidGraph, e.ID, e.Status)
	}
	if err := e.Param.Validate(); err != nil {
		return fmt.Errorf("%w: edge %q: %v", ErrInvalidGraph, e.ID, err)
	}

	e = cloneEdge(e)
	if e.Evidence == nil {
		e.Evidence = []models.EvidenceItem{}
	}

	s.edgeByID[e.ID] = len(s.edges)
	s.edges = append(s.edges, e)
	return nil
}

// checkLayering allows edges that point strictly down the level bands, plus
// mediator to mediator. Cycles among mediators are rejected by NewIndex.
func checkLayering(from, to models.Level) error {
	if from.Rank() < to.Rank() {
		return nil
	}
	if from == models.LevelMediator && to == models.LevelMediator {
		return nil
	}
	return fmt.Errorf("%s -> %s breaks the level ordering", from, to)
}

func (s *Store) GetNode(id string) (models.Node, error) {
	i, ok := s.nodeByID[id]
	if !ok {
		return models.Node{}, fmt.Errorf("%w: node %q", ErrNotFound, id)
	}
	return s.nodes[i], nil
}

func (s *Store) GetEdge(id string) (models.Edge, error) {
	i, ok := s.edgeByID[id]
	if !ok {
		return models.Edge{}, fmt.Errorf("%w: edge %q", ErrNotFound, id)
	}
	return cloneEdge(s.edges[i]), nil
}

func (s *Store) HasNode(id string) bool {
	_, ok := s.nodeByID[id]
	return ok
}

func (s *Store) HasEdge(id string) bool {
	_, ok := s.edgeByID[id]
	return ok
}

// AllNodes returns every node in insertion order.
func (s *Store) AllNodes() []models.Node {
	return slices.Clone(s.nodes)
}

// AllEdges returns every edge in insertion order.
func (s *Store) AllEdges() []models.Edge {
	out := make([]models.Edge, len(s.edges))
	for i, e := range s.edges {
		out[i] = cloneEdge(e)
	}
	return out
}

func (s *Store) NodeCount() int { return len(s.nodes) }
func (s *Store) EdgeCount() int { return len(s.edges) }

// ElementIDs returns every node id followed by every edge id.
func (s *Store) ElementIDs() []string {
	ids := make([]string, 0, len(s.nodes)+len(s.edges))
	for _, n := range s.nodes {
		ids = append(ids, n.ID)
	}
	for _, e := range s.edges {
		ids = append(ids, e.ID)
	}
	return ids
}

// Graph builds the full payload served to clients: nodes, edge summaries and
// counts by level and status.
func (s *Store) Graph() *models.Graph {
	g := &models.Graph{
		Nodes: s.AllNodes(),
		Edges: make([]models.EdgeSummary, 0, len(s.edges)),
		Stats: &models.Stats{
			TotalNodes:    len(s.nodes),
			TotalEdges:    len(s.edges),
			NodesByLevel:  make(map[string]int),
			EdgesByStatus: make(map[string]int),
		},
	}
	for _, n := range s.nodes {
		g.Stats.NodesByLevel[string(n.Level)]++
	}
	for _, e := range s.edges {
		g.Edges = append(g.Edges, e.Summary())
		g.Stats.EdgesByStatus[string(e.Status)]++
	}
	return g
}

func cloneEdge(e models.Edge) models.Edge {
	e.Evidence = slices.Clone(e.Evidence)
	for i := range e.Evidence {
		e.Evidence[i].Outcomes = slices.Clone(e.Evidence[i].Outcomes)
	}
	return e
}
