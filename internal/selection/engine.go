// Package selection computes which graph elements to emphasize or fade for
// the element a user clicked. An Engine belongs to a single interactive
// session and is not safe for concurrent use.
package selection

import (
	"fmt"

	"github.com/graphexplorer/core/internal/graph"
)

type Kind int

const (
	Idle Kind = iota
	NodeSelected
	EdgeSelected
)

func (k Kind) String() string {
	switch k {
	case NodeSelected:
		return "node_selected"
	case EdgeSelected:
		return "edge_selected"
	default:
		return "idle"
	}
}

// State is the current selection. ID is empty when Kind is Idle.
type State struct {
	Kind Kind
	ID   string
}

// Emphasis partitions the element set. Both sets are empty while idle.
type Emphasis struct {
	Emphasized graph.IDSet
	Faded      graph.IDSet
}

type Engine struct {
	index *graph.Index
	state State
}

func NewEngine(index *graph.Index) *Engine {
	return &Engine{index: index}
}

func (e *Engine) State() State {
	return e.state
}

func (e *Engine) SelectNode(id string) error {
	if !e.index.Store().HasNode(id) {
		return fmt.Errorf("%w: node %q", graph.ErrNotFound, id)
	}
	e.state = State{Kind: NodeSelected, ID: id}
	return nil
}

func (e *Engine) SelectEdge(id string) error {
	if !e.index.Store().HasEdge(id) {
		return fmt.Errorf("%w: edge %q", graph.ErrNotFound, id)
	}
	e.state = State{Kind: EdgeSelected, ID: id}
	return nil
}

// Select picks a node or an edge by element id.
func (e *Engine) Select(id string) error {
	if e.index.Store().HasNode(id) {
		return e.SelectNode(id)
	}
	if e.index.Store().HasEdge(id) {
		return e.SelectEdge(id)
	}
	return fmt.Errorf("%w: element %q", graph.ErrNotFound, id)
}

func (e *Engine) Clear() {
	e.state = State{}
}

// ComputeEmphasis derives the partition from the current state and the
// static graph only, so repeated calls return equal results.
func (e *Engine) ComputeEmphasis() (Emphasis, error) {
	if e.state.Kind == Idle {
		return Emphasis{Emphasized: graph.IDSet{}, Faded: graph.IDSet{}}, nil
	}

	emphasized, err := e.index.Neighbors(e.state.ID)
	if err != nil {
		return Emphasis{}, err
	}

	faded := graph.IDSet{}
	for _, id := range e.index.Store().ElementIDs() {
		if !emphasized.Has(id) {
			faded.Add(id)
		}
	}
	return Emphasis{Emphasized: emphasized, Faded: faded}, nil
}
