package graphfile_test

import (
	"bytes"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KunjBhawsar/Graph-Algorithm-Visualiser/builder"
	"github.com/KunjBhawsar/Graph-Algorithm-Visualiser/core"
	"github.com/KunjBhawsar/Graph-Algorithm-Visualiser/internal/graphfile"
	"github.com/KunjBhawsar/Graph-Algorithm-Visualiser/session"
)

func TestEncode_RoundTrip(t *testing.T) {
	inputs := map[string]session.Input{
		"labelled": {
			Algorithm: session.Prim,
			Nodes:     []string{"A", "B", "C"},
			Start:     "A",
			Edges:     []core.EdgeInput{{From: "A", To: "B", Weight: 3}, {From: "B", To: "C", Weight: 1}},
		},
		"numbered": {
			Algorithm: session.BFS,
			NodeCount: 3,
			Start:     "1",
			Edges:     []core.EdgeInput{{From: "1", To: "2"}},
		},
		"bad weight": {
			Algorithm: session.Kruskal,
			NodeCount: 2,
			Edges:     []core.EdgeInput{{From: "1", To: "2", BadWeight: "1.5"}},
		},
	}
	for name, in := range inputs {
		t.Run(name, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, graphfile.Encode(&buf, in))
			got, err := graphfile.Parse(buf.Bytes(), name+".hcl")
			require.NoError(t, err, buf.String())
			if diff := cmp.Diff(in, got); diff != "" {
				t.Fatalf("round trip mismatch (-want +got):\n%s\n%s", diff, buf.String())
			}
		})
	}
}

func TestEncode_Layout(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, graphfile.Encode(&buf, session.Input{
		Algorithm: session.Kruskal,
		NodeCount: 2,
		Edges:     []core.EdgeInput{{From: "1", To: "2", Weight: 4}},
	}))
	out := buf.String()
	assert.Regexp(t, `algorithm\s+= "kruskal"`, out)
	assert.Contains(t, out, "node_count = 2")
	assert.Contains(t, out, "edge {")
	assert.Contains(t, out, "weight = 4")
	assert.NotContains(t, out, "start")
}

func TestEncode_BuilderPreset(t *testing.T) {
	cons, err := builder.Parse("wheel:5")
	require.NoError(t, err)
	in, err := builder.BuildInput(session.Kruskal, []builder.BuilderOption{builder.WithSeed(2)}, cons...)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, graphfile.Encode(&buf, in))
	got, err := graphfile.Parse(buf.Bytes(), "wheel.hcl")
	require.NoError(t, err)
	assert.Equal(t, in, got)
}
