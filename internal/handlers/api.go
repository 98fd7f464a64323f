// Package handlers provides HTTP request handlers for the API endpoints.
// It defines the routing logic, response formatting, and error handling mechanisms.
package handlers

import (
	"net/http"

	"github.com/graphexplorer/core/internal/graph"
	"github.com/graphexplorer/core/internal/predict"
)

// API serves the read-only graph and the prediction endpoint. Both dependencies
// are immutable, so one API value is shared by every request.
type API struct {
	index  *graph.Index
	mapper *predict.Mapper
}

func New(index *graph.Index, mapper *predict.Mapper) *API {
	return &API{index: index, mapper: mapper}
}

// Register mounts every endpoint on mux. The predict handler is wrapped by
// limit, which may be nil.
func (a *API) Register(mux *http.ServeMux, limit func(http.Handler) http.Handler) {
	var predictHandler http.Handler = http.HandlerFunc(a.Predict)
	if limit != nil {
		predictHandler = limit(predictHandler)
	}

	mux.HandleFunc("/health", a.Health)
	mux.HandleFunc("GET /api/v1/graph", a.GetGraph)
	mux.HandleFunc("GET /api/v1/graph/v1_demo", a.GetGraph)
	mux.HandleFunc("GET /api/v1/edges/{id}", a.GetEdge)
	mux.HandleFunc("GET /api/v1/nodes/{id}", a.GetNode)
	mux.Handle("POST /api/v1/predict", predictHandler)
}
