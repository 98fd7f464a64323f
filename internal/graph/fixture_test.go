package graph

import (
	"testing"

	"github.com/graphexplorer/core/internal/models"
	"github.com/stretchr/testify/require"
)

func param(mean, sd float64) models.Param {
	return models.Param{Mean: mean, SD: sd, CILower: mean - 1.96*sd, CIUpper: mean + 1.96*sd}
}

func edge(from, to string, mean, sd float64) models.Edge {
	return models.Edge{From: from, To: to, Status: models.StatusSupported, Param: param(mean, sd)}
}

// sampleNodes is a cut-down version of the demo graph.
func sampleNodes() []models.Node {
	return []models.Node{
		{ID: "wood_coverage", Label: "Wood Coverage", Level: models.LevelAttribute},
		{ID: "plant_density", Label: "Plant Density", Level: models.LevelAttribute},
		{ID: "perceived_warmth", Label: "Perceived Warmth", Level: models.LevelMediator},
		{ID: "perceived_naturalness", Label: "Perceived Naturalness", Level: models.LevelMediator},
		{ID: "positive_affect", Label: "Positive Affect", Level: models.LevelMediator},
		{ID: "state_anxiety", Label: "State Anxiety", Level: models.LevelOutcome},
	}
}

func sampleEdges() []models.Edge {
	return []models.Edge{
		edge("wood_coverage", "perceived_warmth", 0.45, 0.10),
		edge("wood_coverage", "perceived_naturalness", 0.40, 0.12),
		edge("plant_density", "perceived_naturalness", 0.50, 0.12),
		edge("perceived_warmth", "positive_affect", 0.25, 0.08),
		edge("perceived_naturalness", "positive_affect", 0.40, 0.09),
		edge("positive_affect", "state_anxiety", -0.50, 0.12),
	}
}

func sampleIndex(t *testing.T) *Index {
	t.Helper()
	store, err := NewStore(sampleNodes(), sampleEdges())
	require.NoError(t, err)
	idx, err := NewIndex(store)
	require.NoError(t, err)
	return idx
}

func edgeIDs(edges []models.Edge) []string {
	ids := make([]string, len(edges))
	for i, e := range edges {
		ids[i] = e.ID
	}
	return ids
}
