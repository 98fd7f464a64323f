// Package handlers provides HTTP request handlers for the API endpoints.
// It defines the routing logic, response formatting, and error handling mechanisms.
package handlers

import (
	"net/http"

	"github.com/graphexplorer/core/internal/graph"
	"github.com/graphexplorer/core/internal/models"
)

func (a *API) GetGraph(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, a.index.Store().Graph())
}

// GetEdge returns the full edge record, evidence included.
func (a *API) GetEdge(w http.ResponseWriter, r *http.Request) {
	e, err := a.index.Store().GetEdge(r.PathValue("id"))
	if err != nil {
		writeDomainError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, e)
}

// GetNode returns a node with its edges ordered by descending effect size.
// ?direction=incoming|outgoing restricts the response to one bucket.
func (a *API) GetNode(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	node, err := a.index.Store().GetNode(id)
	if err != nil {
		writeDomainError(w, r, err)
		return
	}

	dirs := []graph.Direction{graph.Incoming, graph.Outgoing}
	if q := r.URL.Query().Get("direction"); q != "" {
		dir, err := graph.ParseDirection(q)
		if err != nil {
			writeDomainError(w, r, err)
			return
		}
		dirs = []graph.Direction{dir}
	}

	detail := models.NodeDetail{
		Node:     node,
		Incoming: []models.EdgeSummary{},
		Outgoing: []models.EdgeSummary{},
	}
	for _, dir := range dirs {
		edges, err := a.index.EdgesSortedByEffectSize(id, dir)
		if err != nil {
			writeDomainError(w, r, err)
			return
		}
		summaries := make([]models.EdgeSummary, len(edges))
		for i, e := range edges {
			summaries[i] = e.Summary()
		}
		if dir == graph.Incoming {
			detail.Incoming = summaries
		} else {
			detail.Outgoing = summaries
		}
	}

	writeJSON(w, r, http.StatusOK, detail)
}
