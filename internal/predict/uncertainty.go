package predict

import (
	"math"

	"github.com/graphexplorer/core/internal/models"
)

// Contribution is one incoming edge feeding a reached node together with the
// value propagated from its source.
type Contribution struct {
	Edge  models.Edge
	Value float64
}

// UncertaintyRule turns the contributions of a node into the half width of
// its interval. The mean pass never consults it, so a different propagation
// engine can be plugged in here without touching callers.
type UncertaintyRule interface {
	Name() string
	HalfWidth(contribs []Contribution) float64
}

// SumAbs adds |mean|·sd over contributing edges. This is Model A.
type SumAbs struct{}

func (SumAbs) Name() string { return "sum_abs" }

func (SumAbs) HalfWidth(contribs []Contribution) float64 {
	var total float64
	for _, c := range contribs {
		total += math.Abs(c.Edge.Param.Mean) * c.Edge.Param.SD
	}
	return total
}

// RootSumSquares combines mean·sd terms assuming independence. This is Model B.
type RootSumSquares struct{}

func (RootSumSquares) Name() string { return "root_sum_squares" }

func (RootSumSquares) HalfWidth(contribs []Contribution) float64 {
	var total float64
	for _, c := range contribs {
		term := c.Edge.Param.Mean * c.Edge.Param.SD
		total += term * term
	}
	return math.Sqrt(total)
}
