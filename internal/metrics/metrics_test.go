package metrics_test

import (
	"context"
	"errors"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KunjBhawsar/Graph-Algorithm-Visualiser/core"
	"github.com/KunjBhawsar/Graph-Algorithm-Visualiser/internal/ctxlog"
	"github.com/KunjBhawsar/Graph-Algorithm-Visualiser/internal/metrics"
	"github.com/KunjBhawsar/Graph-Algorithm-Visualiser/playback"
	"github.com/KunjBhawsar/Graph-Algorithm-Visualiser/session"
)

func TestObserveBuild(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := metrics.New(reg)

	m.ObserveBuild(session.BuildReport{Algorithm: session.BFS, Records: 13, Dropped: 2, Duration: time.Millisecond})
	m.ObserveBuild(session.BuildReport{Algorithm: session.Prim, Err: &session.ValidationError{Field: "start", Err: core.ErrVertexNotFound}})
	m.ObserveBuild(session.BuildReport{Err: errors.New("boom")})

	count, err := testutil.GatherAndCount(reg, "algoviz_builds_total")
	require.NoError(t, err)
	assert.Equal(t, 3, count)
	count, err = testutil.GatherAndCount(reg, "algoviz_log_records")
	require.NoError(t, err)
	assert.Equal(t, 1, count, "failed builds are not observed")

	out := gather(t, m)
	assert.Contains(t, out, `algoviz_builds_total{algorithm="bfs",outcome="ok"} 1`)
	assert.Contains(t, out, `algoviz_builds_total{algorithm="prim",outcome="invalid"} 1`)
	assert.Contains(t, out, `algoviz_builds_total{algorithm="unknown",outcome="error"} 1`)
	assert.Contains(t, out, "algoviz_dropped_edges_total 2")
}

func TestSessionWiring(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := metrics.New(reg)
	s := session.New(
		session.WithOnBuild(m.ObserveBuild),
		session.WithPlayback(playback.WithLogger(ctxlog.Discard())),
	)
	s.Controller().Observe(m.Observer(s.Controller()))
	m.SessionOpened()

	ctx := ctxlog.WithLogger(context.Background(), ctxlog.Discard())
	_, err := s.Build(ctx, session.Input{Algorithm: session.DFS, NodeCount: 2, Start: "1",
		Edges: []core.EdgeInput{{From: "1", To: "2"}}})
	require.NoError(t, err)
	s.Controller().StepForward()
	s.Controller().StepForward()

	out := gather(t, m)
	// install plus two steps
	assert.Contains(t, out, `algoviz_cursor_moves_total{algorithm="dfs"} 3`)
	assert.Contains(t, out, `algoviz_builds_total{algorithm="dfs",outcome="ok"} 1`)
	assert.Contains(t, out, "algoviz_sessions 1")

	m.SessionClosed()
	assert.Contains(t, gather(t, m), "algoviz_sessions 0")
}

func gather(t *testing.T, m *metrics.Metrics) string {
	t.Helper()
	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))
	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)

	return string(body)
}
