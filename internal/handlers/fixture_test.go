// Package handlers provides HTTP request handlers for the API endpoints.
// It defines the routing logic, response formatting, and error handling mechanisms.
package handlers

import (
	"net/http"
	"testing"

	"github.com/graphexplorer/core/internal/graph"
	"github.com/graphexplorer/core/internal/models"
	"github.com/graphexplorer/core/internal/predict"
	"github.com/stretchr/testify/require"
)

func testEdge(from, to string, mean, sd float64) models.Edge {
	return models.Edge{
		From:   from,
		To:     to,
		Status: models.StatusSupported,
		Param:  models.Param{Mean: mean, SD: sd, CILower: mean - 2*sd, CIUpper: mean + 2*sd},
		Evidence: []models.EvidenceItem{{
			Title:    "Study of " + from,
			Summary:  "summary",
			Outcomes: []string{"self-report"},
		}},
	}
}

func setupAPI(t *testing.T) *API {
	t.Helper()
	nodes := []models.Node{
		{ID: "a1", Label: "Attribute One", Level: models.LevelAttribute},
		{ID: "a2", Label: "Attribute Two", Level: models.LevelAttribute},
		{ID: "m", Label: "Mediator", Level: models.LevelMediator},
		{ID: "o", Label: "Outcome", Level: models.LevelOutcome},
	}
	edges := []models.Edge{
		testEdge("a1", "m", 0.5, 0.1),
		testEdge("a2", "m", -0.3, 0.2),
		testEdge("m", "o", 0.4, 0.05),
		testEdge("a1", "o", 0.2, 0.1),
	}
	store, err := graph.NewStore(nodes, edges)
	require.NoError(t, err)
	index, err := graph.NewIndex(store)
	require.NoError(t, err)
	return New(index, predict.NewMapper(index))
}

func setupMux(t *testing.T) *http.ServeMux {
	t.Helper()
	mux := http.NewServeMux()
	setupAPI(t).Register(mux, nil)
	return mux
}
