// SPDX-License-Identifier: MIT

package server_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/walkview/core"
	"github.com/katalvlaran/walkview/render"
	"github.com/katalvlaran/walkview/server"
	"github.com/katalvlaran/walkview/session"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type fixture struct {
	hub  *render.Hub
	sess *session.Session
	srv  *server.Server
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	reg := prometheus.NewRegistry()
	hub := render.NewHub(nil, render.WithHubLogger(logger))
	sess := session.New(hub,
		session.WithInterval(time.Hour),
		session.WithLogger(logger),
		session.WithMetrics(session.NewMetrics(reg)),
	)
	require.NoError(t, sess.Open(context.Background()))
	t.Cleanup(func() { _ = sess.Close() })

	return &fixture{
		hub:  hub,
		sess: sess,
		srv:  server.New(sess, server.WithHub(hub), server.WithGatherer(reg), server.WithLogger(logger)),
	}
}

func (f *fixture) do(t *testing.T, method, path, body string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	var rd io.Reader
	if body != "" {
		rd = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, rd)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	f.srv.Handler().ServeHTTP(w, req)

	var out map[string]any
	if strings.HasPrefix(w.Header().Get("Content-Type"), "application/json") {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	}

	return w, out
}

// seed adds nodes 0..3 and edges 0-1, 0-2, 1-3 through the API.
func (f *fixture) seed(t *testing.T) {
	t.Helper()
	for range 4 {
		w, _ := f.do(t, http.MethodPost, "/api/nodes", "")
		require.Equal(t, http.StatusCreated, w.Code)
	}
	for _, body := range []string{`{"u":0,"v":1,"weight":"1"}`, `{"u":"0","v":"2"}`, `{"u":1,"v":3,"weight":7}`} {
		w, _ := f.do(t, http.MethodPost, "/api/edges", body)
		require.Equal(t, http.StatusCreated, w.Code, body)
	}
}

func TestHealth(t *testing.T) {
	f := newFixture(t)
	w, out := f.do(t, http.MethodGet, "/healthz", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ok", out["status"])
	assert.Equal(t, f.sess.ID(), out["session"])
}

func TestNodesAndEdges(t *testing.T) {
	f := newFixture(t)

	w, out := f.do(t, http.MethodPost, "/api/nodes", "")
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, map[string]any{"id": "0", "label": "0"}, out)
	f.do(t, http.MethodPost, "/api/nodes", "")

	w, out = f.do(t, http.MethodPost, "/api/edges", `{"u":0,"v":1,"weight":2.5}`)
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, map[string]any{"id": "e0", "source": "0", "target": "1", "weight": "2.5", "undirected": true}, out)

	w, out = f.do(t, http.MethodPost, "/api/edges", `{"u":1,"v":0}`)
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, core.DefaultWeight, out["weight"], "omitted weight")

	w, _ = f.do(t, http.MethodGet, "/api/graph", "")
	var g struct {
		Nodes []core.Node `json:"nodes"`
		Edges []core.Edge `json:"edges"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &g))
	assert.Len(t, g.Nodes, 2)
	assert.Len(t, g.Edges, 2)
}

func TestAddEdge_Errors(t *testing.T) {
	f := newFixture(t)
	f.do(t, http.MethodPost, "/api/nodes", "")

	for _, body := range []string{`{"u":0,"v":5}`, `{"u":9,"v":0}`, `{}`} {
		w, out := f.do(t, http.MethodPost, "/api/edges", body)
		assert.Equal(t, http.StatusBadRequest, w.Code, body)
		assert.Equal(t, "Both nodes must exist", out["error"], body)
	}
	w, _ := f.do(t, http.MethodPost, "/api/edges", `{"u":`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Zero(t, f.sess.Stats().EdgeCount)
}

func TestTraversal(t *testing.T) {
	f := newFixture(t)
	f.seed(t)

	w, out := f.do(t, http.MethodGet, "/api/log", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "No output yet", out["log"])

	w, out = f.do(t, http.MethodPost, "/api/traversals", `{"kind":"dfs","start":0}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "DFS", out["kind"])
	assert.Equal(t, "0", out["start"])
	assert.Equal(t, []any{"0", "1", "3", "2"}, out["order"])
	assert.Equal(t, "DFS: 0 -> 1 -> 3 -> 2", out["log"])
	assert.NotEmpty(t, out["run"])

	w, out = f.do(t, http.MethodPost, "/api/traversals", `{"kind":"BFS","start":"0"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []any{"0", "1", "2", "3"}, out["order"])

	_, out = f.do(t, http.MethodGet, "/api/log", "")
	assert.Equal(t, "BFS: 0 -> 1 -> 2 -> 3", out["log"])

	// Unparseable starts are not rejected; they name no node.
	_, out = f.do(t, http.MethodPost, "/api/traversals", `{"kind":"BFS","start":"abc"}`)
	assert.Equal(t, []any{"abc"}, out["order"])
}

func TestTraversal_Errors(t *testing.T) {
	f := newFixture(t)
	w, _ := f.do(t, http.MethodPost, "/api/traversals", `{"kind":"dijkstra","start":0}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	w, _ = f.do(t, http.MethodPost, "/api/traversals", `{"start":0}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestPresets(t *testing.T) {
	f := newFixture(t)
	w, out := f.do(t, http.MethodPost, "/api/presets", `{"preset":"grid:2x3"}`)
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, float64(6), out["nodes"])
	assert.Equal(t, float64(7), out["edges"])

	w, _ = f.do(t, http.MethodPost, "/api/presets", `{"preset":"random:5:0.5","seed":3}`)
	assert.Equal(t, http.StatusCreated, w.Code)
	w, _ = f.do(t, http.MethodPost, "/api/presets", `{"preset":"random:5:0.5"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	w, _ = f.do(t, http.MethodPost, "/api/presets", `{"preset":"torus:3"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestClosedSession(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, f.sess.Close())
	w, _ := f.do(t, http.MethodPost, "/api/nodes", "")
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	require.NoError(t, f.sess.Open(context.Background()))
}

func TestMetricsEndpoint(t *testing.T) {
	f := newFixture(t)
	f.seed(t)
	f.do(t, http.MethodPost, "/api/edges", `{"u":0,"v":42}`)
	f.do(t, http.MethodPost, "/api/traversals", `{"kind":"DFS","start":0}`)

	w, _ := f.do(t, http.MethodGet, "/metrics", "")
	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "walkview_graph_nodes 4")
	assert.Contains(t, body, "walkview_edges_rejected_total 1")
	assert.Contains(t, body, `walkview_traversals_total{kind="DFS"} 1`)
	assert.Contains(t, body, "walkview_playback_steps_total 1")
}

// TestWebsocketFeed follows a traversal's first step and a later resync.
func TestWebsocketFeed(t *testing.T) {
	f := newFixture(t)
	f.seed(t)
	ts := httptest.NewServer(f.srv.Handler())
	defer ts.Close()

	conn, resp, err := websocket.DefaultDialer.Dial("ws"+strings.TrimPrefix(ts.URL, "http")+"/ws", nil)
	require.NoError(t, err)
	_ = resp.Body.Close()
	defer conn.Close()

	read := func() render.Message {
		require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
		var m render.Message
		require.NoError(t, conn.ReadJSON(&m))
		return m
	}
	hello := read()
	require.Equal(t, render.MessageSync, hello.Type)
	require.Len(t, hello.Nodes, 4)

	post := func(path, body string) {
		req, err := http.NewRequest(http.MethodPost, ts.URL+path, bytes.NewBufferString(body))
		require.NoError(t, err)
		req.Header.Set("Content-Type", "application/json")
		res, err := http.DefaultClient.Do(req)
		require.NoError(t, err)
		_ = res.Body.Close()
	}

	post("/api/traversals", `{"kind":"DFS","start":0}`)
	assert.Equal(t, render.Message{Type: render.MessageClear}, read())
	assert.Equal(t, render.Message{Type: render.MessageState, ID: "0", Tag: "frontier"}, read())

	post("/api/nodes", "")
	resync := read()
	assert.Equal(t, render.MessageSync, resync.Type)
	assert.Len(t, resync.Nodes, 5)
	assert.Empty(t, resync.Tags)
}

func TestServe_GracefulShutdown(t *testing.T) {
	f := newFixture(t)
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- f.srv.Serve(ctx, ln) }()

	require.Eventually(t, func() bool {
		res, err := http.Get("http://" + ln.Addr().String() + "/healthz")
		if err != nil {
			return false
		}
		_ = res.Body.Close()
		return res.StatusCode == http.StatusOK
	}, 2*time.Second, 10*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}
}
