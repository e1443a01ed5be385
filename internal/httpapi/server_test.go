package httpapi_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KunjBhawsar/Graph-Algorithm-Visualiser/internal/ctxlog"
	"github.com/KunjBhawsar/Graph-Algorithm-Visualiser/internal/httpapi"
	"github.com/KunjBhawsar/Graph-Algorithm-Visualiser/internal/metrics"
	"github.com/KunjBhawsar/Graph-Algorithm-Visualiser/step"
)

const bfsBody = `{
  "algorithm": "bfs",
  "node_count": 4,
  "edges": [{"from":"1","to":"2"},{"from":"1","to":"3"},{"from":"2","to":"4"},{"from":"4","to":"4"}],
  "start": "1"
}`

func newServer(t *testing.T) *httpapi.Server {
	t.Helper()
	s := httpapi.New(
		httpapi.WithLogger(ctxlog.Discard()),
		httpapi.WithInterval(5*time.Millisecond),
		httpapi.WithMetrics(metrics.New(prometheus.NewRegistry())),
	)
	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		_ = s.Shutdown(ctx)
	})

	return s
}

func do(t *testing.T, s *httpapi.Server, method, path, body string, out any) int {
	t.Helper()
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, r)
	req.Header.Set("Content-Type", "application/json")
	resp, err := s.App().Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	if out != nil {
		raw, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		require.NoError(t, json.Unmarshal(raw, out), "body: %s", raw)
	}

	return resp.StatusCode
}

func create(t *testing.T, s *httpapi.Server) string {
	t.Helper()
	var st httpapi.State
	require.Equal(t, http.StatusCreated, do(t, s, http.MethodPost, "/sessions", "", &st))
	require.NotEmpty(t, st.ID)
	assert.Zero(t, st.Length)

	return st.ID
}

func TestBuildAndStep(t *testing.T) {
	s := newServer(t)
	id := create(t, s)

	var built httpapi.BuildResponse
	require.Equal(t, http.StatusOK, do(t, s, http.MethodPost, "/sessions/"+id+"/build", bfsBody, &built))
	assert.Equal(t, "bfs", built.Algorithm)
	assert.Equal(t, 13, built.Length)
	assert.Equal(t, 0, built.Cursor)
	assert.Equal(t, "Final order: 1 ➤ 2 ➤ 3 ➤ 4", built.Result)
	require.Len(t, built.Dropped, 1)
	assert.Equal(t, "4", built.Dropped[0].From)

	var st httpapi.State
	require.Equal(t, http.StatusOK, do(t, s, http.MethodPost, "/sessions/"+id+"/forward", "", &st))
	assert.Equal(t, 1, st.Cursor)
	require.NotNil(t, st.Moved)
	assert.True(t, *st.Moved)

	require.Equal(t, http.StatusOK, do(t, s, http.MethodPost, "/sessions/"+id+"/reset", "", &st))
	assert.Equal(t, 0, st.Cursor)
	require.Equal(t, http.StatusOK, do(t, s, http.MethodPost, "/sessions/"+id+"/backward", "", &st))
	assert.False(t, *st.Moved)

	var sr struct {
		Index  int `json:"index"`
		Record struct {
			Kind  string   `json:"kind"`
			Node  string   `json:"node"`
			Items []string `json:"items"`
		} `json:"record"`
		Highlight struct {
			Nodes []string `json:"nodes"`
			Edges []int    `json:"edges"`
		} `json:"highlight"`
	}
	require.Equal(t, http.StatusOK, do(t, s, http.MethodGet, "/sessions/"+id+"/steps/4", "", &sr))
	assert.Equal(t, step.KindDiscover.String(), sr.Record.Kind)
	assert.Equal(t, "3", sr.Record.Node)
	assert.Equal(t, []string{"2", "3"}, sr.Record.Items)
	assert.Equal(t, []string{"1", "2", "3"}, sr.Highlight.Nodes)

	assert.Equal(t, http.StatusNotFound, do(t, s, http.MethodGet, "/sessions/"+id+"/steps/13", "", nil))
	assert.Equal(t, http.StatusBadRequest, do(t, s, http.MethodGet, "/sessions/"+id+"/steps/x", "", nil))
}

func TestBuildDropsFractionalWeight(t *testing.T) {
	s := newServer(t)
	id := create(t, s)

	var built httpapi.BuildResponse
	code := do(t, s, http.MethodPost, "/sessions/"+id+"/build",
		`{"algorithm":"kruskal","node_count":3,"edges":[{"from":"1","to":"2","weight":1.5},{"from":"2","to":"3","weight":2}]}`, &built)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "MST Total Cost: 2 | Edges in MST: 1", built.Result)
	require.Len(t, built.Dropped, 1)
	assert.Equal(t, "1", built.Dropped[0].From)
	assert.Contains(t, built.Dropped[0].Error, "1.5")
}

func TestBuildValidation(t *testing.T) {
	s := newServer(t)
	id := create(t, s)

	var body struct {
		Error string `json:"error"`
		Field string `json:"field"`
	}
	code := do(t, s, http.MethodPost, "/sessions/"+id+"/build",
		`{"algorithm":"prim","node_count":3,"edges":[{"from":"1","to":"2","weight":1}],"start":"9"}`, &body)
	assert.Equal(t, http.StatusUnprocessableEntity, code)
	assert.Equal(t, "start", body.Field)

	code = do(t, s, http.MethodPost, "/sessions/"+id+"/build", `{"algorithm":"kruskal","node_count":3,"edges":[]}`, &body)
	assert.Equal(t, http.StatusUnprocessableEntity, code)
	assert.Equal(t, "edges", body.Field)

	assert.Equal(t, http.StatusBadRequest, do(t, s, http.MethodPost, "/sessions/"+id+"/build", `{`, nil))

	var st httpapi.State
	require.Equal(t, http.StatusOK, do(t, s, http.MethodGet, "/sessions/"+id, "", &st))
	assert.Zero(t, st.Length, "failed builds install nothing")
}

func TestPlayPause(t *testing.T) {
	s := newServer(t)
	id := create(t, s)

	assert.Equal(t, http.StatusConflict, do(t, s, http.MethodPost, "/sessions/"+id+"/play", "", nil))
	require.Equal(t, http.StatusOK, do(t, s, http.MethodPost, "/sessions/"+id+"/build", bfsBody, nil))

	var st httpapi.State
	require.Equal(t, http.StatusOK, do(t, s, http.MethodPost, "/sessions/"+id+"/play", "", &st))
	assert.True(t, st.Playing)

	require.Eventually(t, func() bool {
		var cur httpapi.State
		do(t, s, http.MethodGet, "/sessions/"+id, "", &cur)
		return !cur.Playing && cur.Cursor == cur.Length-1
	}, 2*time.Second, 10*time.Millisecond)

	require.Equal(t, http.StatusOK, do(t, s, http.MethodPost, "/sessions/"+id+"/pause", "", &st))
	assert.False(t, st.Playing)
}

func TestPlayInterval(t *testing.T) {
	s := newServer(t)
	id := create(t, s)
	require.Equal(t, http.StatusOK, do(t, s, http.MethodPost, "/sessions/"+id+"/build", bfsBody, nil))

	assert.Equal(t, http.StatusBadRequest, do(t, s, http.MethodPost, "/sessions/"+id+"/play?interval=soon", "", nil))
	assert.Equal(t, http.StatusBadRequest, do(t, s, http.MethodPost, "/sessions/"+id+"/play?interval=-1s", "", nil))

	var st httpapi.State
	require.Equal(t, http.StatusOK, do(t, s, http.MethodPost, "/sessions/"+id+"/play?interval=1ms", "", &st))
	assert.True(t, st.Playing)
	require.Eventually(t, func() bool {
		var cur httpapi.State
		do(t, s, http.MethodGet, "/sessions/"+id, "", &cur)
		return !cur.Playing && cur.Cursor == cur.Length-1
	}, 2*time.Second, 5*time.Millisecond)
}

func TestUnknownAndDeletedSessions(t *testing.T) {
	s := newServer(t)
	assert.Equal(t, http.StatusNotFound, do(t, s, http.MethodGet, "/sessions/nope", "", nil))
	assert.Equal(t, http.StatusNotFound, do(t, s, http.MethodPost, "/sessions/nope/forward", "", nil))

	id := create(t, s)
	assert.Equal(t, http.StatusNoContent, do(t, s, http.MethodDelete, "/sessions/"+id, "", nil))
	assert.Equal(t, http.StatusNotFound, do(t, s, http.MethodDelete, "/sessions/"+id, "", nil))
	assert.Equal(t, http.StatusNotFound, do(t, s, http.MethodGet, "/sessions/"+id, "", nil))
}

func TestMetricsEndpoint(t *testing.T) {
	s := newServer(t)
	id := create(t, s)
	require.Equal(t, http.StatusOK, do(t, s, http.MethodPost, "/sessions/"+id+"/build", bfsBody, nil))

	resp, err := s.App().Test(httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.NoError(t, err)
	defer resp.Body.Close()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(raw), `algoviz_builds_total{algorithm="bfs",outcome="ok"} 1`)
	assert.Contains(t, string(raw), "algoviz_sessions 1")
}

func TestShutdownClosesSessions(t *testing.T) {
	m := metrics.New(prometheus.NewRegistry())
	s := httpapi.New(httpapi.WithLogger(ctxlog.Discard()), httpapi.WithMetrics(m))
	first := create(t, s)
	create(t, s)
	require.Equal(t, http.StatusOK, do(t, s, http.MethodPost, "/sessions/"+first+"/build", bfsBody, nil))

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	_ = s.Shutdown(ctx) // the app never listened

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Contains(t, rec.Body.String(), "algoviz_sessions 0")
}
