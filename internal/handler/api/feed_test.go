package api

import (
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ForexPulse/internal/domain/models"
	applogger "ForexPulse/pkg/logger"
)

func TestFeedBroadcast(t *testing.T) {
	feed := NewFeed(applogger.Nop())

	e := echo.New()
	e.GET("/ws/signals", feed.Serve)
	srv := httptest.NewServer(e)
	defer srv.Close()

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws/signals"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	defer conn.Close()

	// the server registers the client just after the handshake completes
	require.Eventually(t, func() bool {
		feed.mu.Lock()
		defer feed.mu.Unlock()
		return len(feed.clients) == 1
	}, 2*time.Second, 10*time.Millisecond)

	sent := models.Snapshot{
		Timestamp: time.Now().UTC(),
		Signals:   []models.SignalRecord{{Pair: "EUR/USD", Timeframe: "D1", Signal: models.DirectionBuy}},
	}
	feed.Broadcast(sent)

	conn.SetReadDeadline(time.Now().Add(5 * time.Second))
	var got models.Snapshot
	require.NoError(t, conn.ReadJSON(&got))
	require.Len(t, got.Signals, 1)
	assert.Equal(t, "EUR/USD", got.Signals[0].Pair)
}

func TestFeedDropsDeadClients(t *testing.T) {
	feed := NewFeed(applogger.Nop())

	e := echo.New()
	e.GET("/ws/signals", feed.Serve)
	srv := httptest.NewServer(e)
	defer srv.Close()

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws/signals"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	conn.Close()

	// both broadcasts must survive the dead connection
	snap := models.Snapshot{Timestamp: time.Now().UTC()}
	feed.Broadcast(snap)
	feed.Broadcast(snap)
}
