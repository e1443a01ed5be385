package core_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KunjBhawsar/Graph-Algorithm-Visualiser/core"
)

func TestGenerateNodes_Bounds(t *testing.T) {
	for _, n := range []int{0, -1, 21} {
		_, err := core.GenerateNodes(n)
		assert.ErrorIs(t, err, core.ErrNodeCount, "n=%d", n)
	}

	g, err := core.GenerateNodes(20)
	require.NoError(t, err)
	assert.Equal(t, 20, g.VertexCount())
	assert.Equal(t, "20", g.Vertices()[19])
}

func TestFromLabels(t *testing.T) {
	g, err := core.FromLabels([]string{"a", " b ", "C"})
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C"}, g.Vertices())

	_, err = core.FromLabels([]string{"A", "a"})
	assert.ErrorIs(t, err, core.ErrDuplicateVertex)

	_, err = core.FromLabels(nil)
	assert.ErrorIs(t, err, core.ErrNodeCount)
}

// TestAddEdges_DropsInvalid checks that invalid edges never fail the build.
func TestAddEdges_DropsInvalid(t *testing.T) {
	g, err := core.FromLabels([]string{"A", "B", "C"}, core.WithWeighted())
	require.NoError(t, err)

	added, rejected := g.AddEdges([]core.EdgeInput{
		{From: "a", To: "b", Weight: 1}, // lower case is normalised
		{From: "A", To: "A", Weight: 2}, // loop
		{From: "A", To: "Q", Weight: 2}, // unknown endpoint
		{From: "B", To: "C", Weight: 0}, // non-positive weight
		{From: "C", To: "A", Weight: 5},
	})

	assert.Equal(t, 2, added)
	require.Len(t, rejected, 3)
	assert.ErrorIs(t, rejected[0].Err, core.ErrLoopNotAllowed)
	assert.ErrorIs(t, rejected[1].Err, core.ErrVertexNotFound)
	assert.ErrorIs(t, rejected[2].Err, core.ErrBadWeight)
	assert.Equal(t, []core.Edge{
		{Index: 0, From: "A", To: "B", Weight: 1},
		{Index: 1, From: "C", To: "A", Weight: 5},
	}, g.Edges())
}

func TestAddEdges_DropsNonIntegerWeight(t *testing.T) {
	g, err := core.FromLabels([]string{"A", "B", "C"}, core.WithWeighted())
	require.NoError(t, err)

	added, rejected := g.AddEdges([]core.EdgeInput{
		{From: "A", To: "B", BadWeight: "1.5"},
		{From: "B", To: "C", Weight: 2},
	})

	assert.Equal(t, 1, added)
	require.Len(t, rejected, 1)
	assert.ErrorIs(t, rejected[0].Err, core.ErrBadWeight)
	assert.Contains(t, rejected[0].Err.Error(), `"1.5"`)
}

func TestParseWeight(t *testing.T) {
	cases := []struct {
		in   string
		want int64
		bad  bool
	}{
		{"", 0, false},
		{" 7 ", 7, false},
		{"-3", -3, false},
		{"1.5", 0, true},
		{"heavy", 0, true},
	}
	for _, tc := range cases {
		w, err := core.ParseWeight(tc.in)
		if tc.bad {
			assert.ErrorIs(t, err, core.ErrBadWeight, "input %q", tc.in)
			continue
		}
		require.NoError(t, err, "input %q", tc.in)
		assert.Equal(t, tc.want, w)
	}
}

func TestEdgeInput_UnmarshalJSON(t *testing.T) {
	var edges []core.EdgeInput
	require.NoError(t, json.Unmarshal([]byte(`[
		{"from": "A", "to": "B", "weight": 4},
		{"from": "A", "to": "C", "weight": "6"},
		{"from": "B", "to": "C", "weight": 1.5},
		{"from": "C", "to": "A", "weight": "heavy"},
		{"from": "C", "to": "B"},
		{"from": "B", "to": "A", "weight": null}
	]`), &edges))

	assert.Equal(t, []core.EdgeInput{
		{From: "A", To: "B", Weight: 4},
		{From: "A", To: "C", Weight: 6},
		{From: "B", To: "C", BadWeight: "1.5"},
		{From: "C", To: "A", BadWeight: "heavy"},
		{From: "C", To: "B"},
		{From: "B", To: "A"},
	}, edges)

	var bad core.EdgeInput
	assert.Error(t, json.Unmarshal([]byte(`{"from": 1}`), &bad))
}

func TestCheck(t *testing.T) {
	assert.ErrorIs(t, core.Check(nil, core.Requirement{}), core.ErrGraphNil)
	assert.ErrorIs(t, core.Check(core.NewGraph(), core.Requirement{}), core.ErrNodeCount)

	g, err := core.GenerateNodes(1)
	require.NoError(t, err)
	assert.NoError(t, core.Check(g, core.Requirement{Start: "1", RequireStart: true}))
	assert.ErrorIs(t, core.Check(g, core.Requirement{Start: "2", RequireStart: true}), core.ErrVertexNotFound)
	assert.ErrorIs(t, core.Check(g, core.Requirement{RequireEdges: true}), core.ErrNoEdges)
}

func TestIsValidation(t *testing.T) {
	_, err := core.GenerateNodes(0)
	assert.True(t, core.IsValidation(err))
	assert.False(t, core.IsValidation(assert.AnError))
}
