// Package models defines the core data structures of the causal graph.
// It includes node, edge and evidence records and the JSON shapes served to clients.
package models

// Forecast is a point estimate with an interval for one downstream node.
type Forecast struct {
	NodeID  string  `json:"node_id"`
	Label   string  `json:"label"`
	Mean    float64 `json:"mean"`
	CILower float64 `json:"ci_lower"`
	CIUpper float64 `json:"ci_upper"`
}

// HalfWidth returns half of the interval width.
func (f Forecast) HalfWidth() float64 {
	return (f.CIUpper - f.CILower) / 2
}

type Prediction struct {
	ModelA []Forecast `json:"model_a"`
	ModelB []Forecast `json:"model_b"`
}
