// Package handlers provides HTTP request handlers for the API endpoints.
// It defines the routing logic, response formatting, and error handling mechanisms.
package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/graphexplorer/core/internal/ctxlog"
)

const maxPredictBody = 1 << 20

// Predict accepts a flat JSON object mapping attribute ids to values and
// returns both model forecasts.
func (a *API) Predict(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	var inputs map[string]float64
	decoder := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxPredictBody))
	if err := decoder.Decode(&inputs); err != nil {
		writeError(w, r, http.StatusBadRequest, "bad_request", "invalid JSON body: "+err.Error())
		return
	}

	prediction, err := a.mapper.Predict(inputs)
	if err != nil {
		writeDomainError(w, r, err)
		return
	}

	ctxlog.FromContext(r.Context()).Debug("prediction computed",
		"inputs", len(inputs),
		"model_a", len(prediction.ModelA),
		"model_b", len(prediction.ModelB),
	)
	writeJSON(w, r, http.StatusOK, prediction)
}
