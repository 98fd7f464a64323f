package graph

import (
	"testing"

	"github.com/graphexplorer/core/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStore(t *testing.T) {
	t.Run("derives edge ids from endpoints", func(t *testing.T) {
		e := edge("wood_coverage", "perceived_warmth", 0.45, 0.10)
		e.ID = "ignored"

		store, err := NewStore(sampleNodes(), []models.Edge{e})
		require.NoError(t, err)

		got, err := store.GetEdge("wood_coverage->perceived_warmth")
		require.NoError(t, err)
		assert.Equal(t, "wood_coverage", got.From)
		assert.False(t, store.HasEdge("ignored"))
	})

	t.Run("rejects duplicate edge ids", func(t *testing.T) {
		edges := []models.Edge{
			edge("wood_coverage", "perceived_warmth", 0.45, 0.10),
			edge("wood_coverage", "perceived_warmth", 0.30, 0.10),
		}

		_, err := NewStore(sampleNodes(), edges)

		assert.ErrorIs(t, err, ErrInvalidGraph)
		assert.ErrorContains(t, err, "duplicate edge id")
	})

	t.Run("rejects duplicate node ids", func(t *testing.T) {
		nodes := append(sampleNodes(), models.Node{ID: "wood_coverage", Level: models.LevelAttribute})

		_, err := NewStore(nodes, nil)

		assert.ErrorIs(t, err, ErrInvalidGraph)
	})

	t.Run("rejects dangling endpoints", func(t *testing.T) {
		_, err := NewStore(sampleNodes(), []models.Edge{edge("wood_coverage", "missing", 0.1, 0.1)})

		assert.ErrorIs(t, err, ErrInvalidGraph)
		assert.ErrorContains(t, err, "unknown node")
	})

	t.Run("rejects unknown level", func(t *testing.T) {
		_, err := NewStore([]models.Node{{ID: "x", Level: "moderator"}}, nil)

		assert.ErrorIs(t, err, ErrInvalidGraph)
	})

	t.Run("rejects node ids containing the edge separator", func(t *testing.T) {
		_, err := NewStore([]models.Node{{ID: "a->b", Level: models.LevelAttribute}}, nil)

		assert.ErrorIs(t, err, ErrInvalidGraph)
	})

	t.Run("rejects upward edges", func(t *testing.T) {
		_, err := NewStore(sampleNodes(), []models.Edge{edge("state_anxiety", "positive_affect", 0.1, 0.1)})

		assert.ErrorIs(t, err, ErrInvalidGraph)
		assert.ErrorContains(t, err, "level ordering")
	})

	t.Run("rejects outcome to outcome edges", func(t *testing.T) {
		nodes := append(sampleNodes(), models.Node{ID: "task_performance", Level: models.LevelOutcome})

		_, err := NewStore(nodes, []models.Edge{edge("state_anxiety", "task_performance", -0.3, 0.1)})

		assert.ErrorIs(t, err, ErrInvalidGraph)
	})

	t.Run("accepts attribute to outcome and mediator to mediator", func(t *testing.T) {
		edges := []models.Edge{
			edge("wood_coverage", "state_anxiety", -0.1, 0.05),
			edge("perceived_warmth", "positive_affect", 0.25, 0.08),
		}

		_, err := NewStore(sampleNodes(), edges)

		assert.NoError(t, err)
	})

	t.Run("rejects mediator self loop", func(t *testing.T) {
		_, err := NewStore(sampleNodes(), []models.Edge{edge("positive_affect", "positive_affect", 0.1, 0.1)})

		assert.ErrorIs(t, err, ErrInvalidGraph)
	})

	t.Run("rejects invalid parameters", func(t *testing.T) {
		e := edge("wood_coverage", "perceived_warmth", 0.45, 0.10)
		e.Param.CIUpper = 0.2

		_, err := NewStore(sampleNodes(), []models.Edge{e})

		assert.ErrorIs(t, err, ErrInvalidGraph)
	})

	t.Run("rejects unknown status", func(t *testing.T) {
		e := edge("wood_coverage", "perceived_warmth", 0.45, 0.10)
		e.Status = "refuted"

		_, err := NewStore(sampleNodes(), []models.Edge{e})

		assert.ErrorIs(t, err, ErrInvalidGraph)
	})
}

func TestStoreLookups(t *testing.T) {
	store, err := NewStore(sampleNodes(), sampleEdges())
	require.NoError(t, err)

	t.Run("get node", func(t *testing.T) {
		n, err := store.GetNode("perceived_warmth")

		require.NoError(t, err)
		assert.Equal(t, models.LevelMediator, n.Level)
	})

	t.Run("unknown node is not found", func(t *testing.T) {
		_, err := store.GetNode("ceiling_height")

		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("unknown edge is not found", func(t *testing.T) {
		_, err := store.GetEdge("does_not_exist")

		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("all nodes keep insertion order", func(t *testing.T) {
		nodes := store.AllNodes()

		require.Len(t, nodes, 6)
		assert.Equal(t, "wood_coverage", nodes[0].ID)
		assert.Equal(t, "state_anxiety", nodes[5].ID)
	})

	t.Run("all edges keep insertion order", func(t *testing.T) {
		assert.Equal(t, []string{
			"wood_coverage->perceived_warmth",
			"wood_coverage->perceived_naturalness",
			"plant_density->perceived_naturalness",
			"perceived_warmth->positive_affect",
			"perceived_naturalness->positive_affect",
			"positive_affect->state_anxiety",
		}, edgeIDs(store.AllEdges()))
	})

	t.Run("edges without evidence carry an empty list", func(t *testing.T) {
		e, err := store.GetEdge("positive_affect->state_anxiety")

		require.NoError(t, err)
		assert.NotNil(t, e.Evidence)
		assert.Empty(t, e.Evidence)
	})

	t.Run("element ids list nodes then edges", func(t *testing.T) {
		ids := store.ElementIDs()

		assert.Len(t, ids, 12)
		assert.Equal(t, "wood_coverage", ids[0])
		assert.Equal(t, "wood_coverage->perceived_warmth", ids[6])
	})
}

func TestStoreImmutability(t *testing.T) {
	e := edge("wood_coverage", "perceived_warmth", 0.45, 0.10)
	e.Evidence = []models.EvidenceItem{{Title: "original", Outcomes: []string{"warmth"}}}
	store, err := NewStore(sampleNodes(), []models.Edge{e})
	require.NoError(t, err)

	t.Run("caller slice mutation does not leak in", func(t *testing.T) {
		e.Evidence[0].Title = "changed"

		got, err := store.GetEdge("wood_coverage->perceived_warmth")
		require.NoError(t, err)
		assert.Equal(t, "original", got.Evidence[0].Title)
	})

	t.Run("returned copies do not leak back", func(t *testing.T) {
		got, err := store.GetEdge("wood_coverage->perceived_warmth")
		require.NoError(t, err)
		got.Evidence[0].Outcomes[0] = "changed"
		store.AllNodes()[0].Label = "changed"

		again, err := store.GetEdge("wood_coverage->perceived_warmth")
		require.NoError(t, err)
		assert.Equal(t, "warmth", again.Evidence[0].Outcomes[0])
		node, err := store.GetNode("wood_coverage")
		require.NoError(t, err)
		assert.Equal(t, "Wood Coverage", node.Label)
	})
}

func TestStoreGraph(t *testing.T) {
	store, err := NewStore(sampleNodes(), sampleEdges())
	require.NoError(t, err)

	g := store.Graph()

	assert.Len(t, g.Nodes, 6)
	assert.Len(t, g.Edges, 6)
	require.NotNil(t, g.Stats)
	assert.Equal(t, 2, g.Stats.NodesByLevel["attribute"])
	assert.Equal(t, 3, g.Stats.NodesByLevel["mediator"])
	assert.Equal(t, 6, g.Stats.EdgesByStatus["supported"])
}
