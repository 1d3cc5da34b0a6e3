// SPDX-License-Identifier: MIT

package render_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/walkview/playback"
	"github.com/katalvlaran/walkview/render"
)

func dial(t *testing.T, srv *httptest.Server) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	conn, resp, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	_ = resp.Body.Close()
	t.Cleanup(func() { _ = conn.Close() })

	return conn
}

func read(t *testing.T, conn *websocket.Conn) render.Message {
	t.Helper()
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	var msg render.Message
	require.NoError(t, conn.ReadJSON(&msg))

	return msg
}

func TestHub_NotInitialized(t *testing.T) {
	hub := render.NewHub(nil)
	srv := httptest.NewServer(http.HandlerFunc(hub.ServeWS))
	defer srv.Close()

	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	_, resp, err := websocket.DefaultDialer.Dial(url, nil)
	require.Error(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
}

func TestHub_Broadcast(t *testing.T) {
	hub := render.NewHub(nil)
	require.NoError(t, hub.Initialize("cy"))
	nodes, edges := triangle(t)
	hub.SyncGraph(nodes, edges)
	hub.SetVisualState("0", playback.TagVisited)

	srv := httptest.NewServer(http.HandlerFunc(hub.ServeWS))
	defer srv.Close()
	conn := dial(t, srv)

	// The first frame is the full scene, tags included.
	hello := read(t, conn)
	assert.Equal(t, render.MessageSync, hello.Type)
	assert.Equal(t, nodes, hello.Nodes)
	assert.Equal(t, edges, hello.Edges)
	assert.Len(t, hello.Positions, 3)
	assert.Equal(t, map[string]playback.Tag{"0": playback.TagVisited}, hello.Tags)
	assert.Equal(t, 1, hub.Clients())

	hub.ClearAllVisualState()
	hub.SetVisualState("1", playback.TagFrontier)
	hub.SetVisualState("404", playback.TagFrontier)
	hub.SyncGraph(nodes[:1], nil)

	assert.Equal(t, render.Message{Type: render.MessageClear}, read(t, conn))
	assert.Equal(t, render.Message{Type: render.MessageState, ID: "1", Tag: "frontier"}, read(t, conn))
	resync := read(t, conn)
	assert.Equal(t, render.MessageSync, resync.Type)
	assert.Equal(t, nodes[:1], resync.Nodes)
	assert.Empty(t, resync.Tags)
}

func TestHub_TeardownClosesClients(t *testing.T) {
	hub := render.NewHub(nil)
	require.NoError(t, hub.Initialize("cy"))
	srv := httptest.NewServer(http.HandlerFunc(hub.ServeWS))
	defer srv.Close()
	conn := dial(t, srv)
	read(t, conn)

	require.NoError(t, hub.Teardown())
	assert.Zero(t, hub.Clients())

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	_, _, err := conn.ReadMessage()
	require.Error(t, err)
	assert.True(t, websocket.IsCloseError(err, websocket.CloseNormalClosure), "got %v", err)

	require.ErrorIs(t, hub.Teardown(), render.ErrNotInitialized)
}

func TestHub_ClientDisconnect(t *testing.T) {
	hub := render.NewHub(nil)
	require.NoError(t, hub.Initialize("cy"))
	srv := httptest.NewServer(http.HandlerFunc(hub.ServeWS))
	defer srv.Close()
	conn := dial(t, srv)
	read(t, conn)

	require.NoError(t, conn.Close())
	assert.Eventually(t, func() bool { return hub.Clients() == 0 }, 2*time.Second, 5*time.Millisecond)
}

// TestHub_TeardownDuringUpgrade tears the hub down while the handshake is in
// flight; the new connection must be closed, not registered.
func TestHub_TeardownDuringUpgrade(t *testing.T) {
	var hub *render.Hub
	hub = render.NewHub(nil, render.WithCheckOrigin(func(*http.Request) bool {
		assert.NoError(t, hub.Teardown())
		return true
	}))
	require.NoError(t, hub.Initialize("cy"))
	srv := httptest.NewServer(http.HandlerFunc(hub.ServeWS))
	defer srv.Close()
	conn := dial(t, srv)

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	_, _, err := conn.ReadMessage()
	require.Error(t, err)
	assert.True(t, websocket.IsCloseError(err, websocket.CloseGoingAway), "got %v", err)
	assert.Zero(t, hub.Clients())
}
