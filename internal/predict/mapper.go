// Package predict propagates attribute values through the causal graph and
// reports, for every reached mediator and outcome, a point forecast with an
// interval under two uncertainty rules.
package predict

import (
	"fmt"
	"math"

	"github.com/graphexplorer/core/internal/graph"
	"github.com/graphexplorer/core/internal/models"
)

// Mapper is immutable and safe for concurrent use.
type Mapper struct {
	index  *graph.Index
	modelA UncertaintyRule
	modelB UncertaintyRule
}

type Option func(*Mapper)

func WithModelA(rule UncertaintyRule) Option {
	return func(m *Mapper) { m.modelA = rule }
}

func WithModelB(rule UncertaintyRule) Option {
	return func(m *Mapper) { m.modelB = rule }
}

// NewMapper uses SumAbs for Model A and RootSumSquares for Model B unless
// overridden.
func NewMapper(index *graph.Index, opts ...Option) *Mapper {
	m := &Mapper{
		index:  index,
		modelA: SumAbs{},
		modelB: RootSumSquares{},
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Predict walks the graph once in topological order. Missing attributes count
// as 0 and do not reach anything on their own. Inputs are not clamped.
func (m *Mapper) Predict(inputs map[string]float64) (models.Prediction, error) {
	if err := m.validate(inputs); err != nil {
		return models.Prediction{}, err
	}

	out := models.Prediction{
		ModelA: []models.Forecast{},
		ModelB: []models.Forecast{},
	}
	if len(inputs) == 0 {
		return out, nil
	}

	store := m.index.Store()
	values := make(map[string]float64, len(inputs))
	reached := make(map[string]bool, len(inputs))
	for id, v := range inputs {
		values[id] = v
		reached[id] = true
	}

	for _, id := range m.index.Order() {
		node, err := store.GetNode(id)
		if err != nil {
			return models.Prediction{}, err
		}
		if node.Level == models.LevelAttribute {
			continue
		}

		incoming, err := m.index.Incoming(id)
		if err != nil {
			return models.Prediction{}, err
		}

		var contribs []Contribution
		var mean float64
		for _, e := range incoming {
			if !reached[e.From] {
				continue
			}
			v := values[e.From]
			contribs = append(contribs, Contribution{Edge: e, Value: v})
			mean += e.Param.Mean * v
		}
		if len(contribs) == 0 {
			continue
		}

		values[id] = mean
		reached[id] = true
		out.ModelA = append(out.ModelA, forecast(node, mean, m.modelA.HalfWidth(contribs)))
		out.ModelB = append(out.ModelB, forecast(node, mean, m.modelB.HalfWidth(contribs)))
	}

	return out, nil
}

func (m *Mapper) validate(inputs map[string]float64) error {
	store := m.index.Store()
	for id, v := range inputs {
		node, err := store.GetNode(id)
		if err != nil {
			return fmt.Errorf("%w: unknown attribute %q", graph.ErrInvalidInput, id)
		}
		if node.Level != models.LevelAttribute {
			return fmt.Errorf("%w: %q is a %s, not an attribute", graph.ErrInvalidInput, id, node.Level)
		}
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: value for %q is not finite", graph.ErrInvalidInput, id)
		}
	}
	return nil
}

func forecast(node models.Node, mean, half float64) models.Forecast {
	return models.Forecast{
		NodeID:  node.ID,
		Label:   node.Label,
		Mean:    mean,
		CILower: mean - half,
		CIUpper: mean + half,
	}
}
