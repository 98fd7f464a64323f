// Package models defines the core data structures of the causal graph.
// It includes node, edge and evidence records and the JSON shapes served to clients.
package models

import "fmt"

// EdgeSeparator joins the two endpoint ids of an edge id.
const EdgeSeparator = "->"

type Level string

const (
	LevelAttribute Level = "attribute"
	LevelMediator  Level = "mediator"
	LevelOutcome   Level = "outcome"
)

// Rank orders levels top to bottom. Unknown levels rank -1.
func (l Level) Rank() int {
	switch l {
	case LevelAttribute:
		return 0
	case LevelMediator:
		return 1
	case LevelOutcome:
		return 2
	default:
		return -1
	}
}

func (l Level) Valid() bool {
	return l.Rank() >= 0
}

type Status string

const (
	StatusHypothesized            Status = "hypothesized"
	StatusSupported               Status = "supported"
	StatusExperimentallyValidated Status = "experimentally_validated"
)

func (s Status) Valid() bool {
	switch s {
	case StatusHypothesized, StatusSupported, StatusExperimentallyValidated:
		return true
	}
	return false
}

type Graph struct {
	Nodes []Node        `json:"nodes"`
	Edges []EdgeSummary `json:"edges"`
	Stats *Stats        `json:"stats,omitempty"`
}

type Node struct {
	ID          string `json:"id"`
	Label       string `json:"label"`
	Level       Level  `json:"level"`
	Group       string `json:"group,omitempty"`
	Description string `json:"description,omitempty"`
}

type Param struct {
	Mean    float64 `json:"mean"`
	SD      float64 `json:"sd"`
	CILower float64 `json:"ci_lower"`
	CIUpper float64 `json:"ci_upper"`
}

// Validate checks ci_lower <= mean <= ci_upper and sd >= 0.
func (p Param) Validate() error {
	if p.SD < 0 {
		return fmt.Errorf("sd must be non-negative, got %g", p.SD)
	}
	if p.CILower > p.Mean || p.Mean > p.CIUpper {
		return fmt.Errorf("interval [%g, %g] does not contain mean %g", p.CILower, p.CIUpper, p.Mean)
	}
	return nil
}

type EvidenceItem struct {
	ID         string   `json:"id,omitempty"`
	Title      string   `json:"title"`
	Summary    string   `json:"summary"`
	Direction  string   `json:"effect_direction"`
	Population string   `json:"population"`
	Design     string   `json:"design"`
	Outcomes   []string `json:"outcome_measures"`
	DOI        string   `json:"doi,omitempty"`
	Quality    string   `json:"quality,omitempty"`
	Notes      string   `json:"notes,omitempty"`
}

// Edge is the full edge record, evidence included.
type Edge struct {
	ID       string         `json:"id"`
	From     string         `json:"from_node"`
	To       string         `json:"to_node"`
	Status   Status         `json:"status"`
	Param    Param          `json:"param"`
	Evidence []EvidenceItem `json:"evidence"`
}

// EdgeSummary is the edge shape used in the full graph payload.
type EdgeSummary struct {
	ID     string `json:"id"`
	From   string `json:"from_node"`
	To     string `json:"to_node"`
	Status Status `json:"status"`
	Param  Param  `json:"param"`
}

func (e Edge) Summary() EdgeSummary {
	return EdgeSummary{
		ID:     e.ID,
		From:   e.From,
		To:     e.To,
		Status: e.Status,
		Param:  e.Param,
	}
}

// EdgeID derives the id of the edge from -> to.
func EdgeID(from, to string) string {
	return from + EdgeSeparator + to
}

type Stats struct {
	TotalNodes    int            `json:"total_nodes"`
	TotalEdges    int            `json:"total_edges"`
	NodesByLevel  map[string]int `json:"nodes_by_level,omitempty"`
	EdgesByStatus map[string]int `json:"edges_by_status,omitempty"`
}

// NodeDetail is a node together with its effect-size ordered edges.
type NodeDetail struct {
	Node     Node          `json:"node"`
	Incoming []EdgeSummary `json:"incoming"`
	Outgoing []EdgeSummary `json:"outgoing"`
}
