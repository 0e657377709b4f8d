package ws

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/studykit/flashcard-backend/utils"
)

func startTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/ws/status", HandleStatusWebSocket)
	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return srv
}

func waitForClients(t *testing.T, n int) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for H.ClientCount() < n {
		if time.Now().After(deadline) {
			t.Fatalf("timed out waiting for %d ws clients", n)
		}
		time.Sleep(10 * time.Millisecond)
	}
}

func TestStatusWebSocket_BroadcastsEvents(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	srv := startTestServer(t)

	token, err := utils.GenerateToken("user-1", "user")
	require.NoError(t, err)

	wsURL := strings.Replace(srv.URL, "http", "ws", 1) + "/ws/status?token=" + token
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	require.NoError(t, err)
	defer conn.Close()

	waitForClients(t, 1)
	BroadcastFlashcardsGenerated("set-1", 5)

	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, msg, err := conn.ReadMessage()
	require.NoError(t, err)

	var event struct {
		Type  string `json:"type"`
		SetID string `json:"set_id"`
		Count int    `json:"count"`
	}
	require.NoError(t, json.Unmarshal(msg, &event))
	assert.Equal(t, "flashcards_generated", event.Type)
	assert.Equal(t, "set-1", event.SetID)
	assert.Equal(t, 5, event.Count)
}

func TestStatusWebSocket_RejectsMissingToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	srv := startTestServer(t)

	wsURL := strings.Replace(srv.URL, "http", "ws", 1) + "/ws/status"
	_, resp, err := websocket.DefaultDialer.Dial(wsURL, nil)
	require.Error(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestStatusWebSocket_RejectsBadToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	srv := startTestServer(t)

	wsURL := strings.Replace(srv.URL, "http", "ws", 1) + "/ws/status?token=garbage"
	_, resp, err := websocket.DefaultDialer.Dial(wsURL, nil)
	require.Error(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}
