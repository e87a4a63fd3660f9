package api

import (
	"net/http"
	"sync"
	"time"

	"ForexPulse/internal/domain/models"
	xlogger "ForexPulse/pkg/logger"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
)

const writeWait = 5 * time.Second

// Feed pushes fresh snapshots to connected dashboards over websocket.
// Polling stays the primary transport; the feed just removes the wait.
type Feed struct {
	logger   *xlogger.Logger
	upgrader websocket.Upgrader

	mu      sync.Mutex
	clients map[*websocket.Conn]struct{}
}

// NewFeed creates a websocket feed.
func NewFeed(logger *xlogger.Logger) *Feed {
	return &Feed{
		logger: logger,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 4096,
			// The API is already CORS-open; the feed follows suit.
			CheckOrigin: func(*http.Request) bool { return true },
		},
		clients: make(map[*websocket.Conn]struct{}),
	}
}

// Serve upgrades the connection and keeps it registered until it drops.
func (f *Feed) Serve(c echo.Context) error {
	conn, err := f.upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		return err
	}

	f.mu.Lock()
	f.clients[conn] = struct{}{}
	n := len(f.clients)
	f.mu.Unlock()
	f.logger.Info("feed client connected", xlogger.Int("clients", n))

	// Drain reads so close frames and pings are processed.
	go func() {
		defer f.drop(conn)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
	return nil
}

// Broadcast sends the snapshot to every connected client, dropping any that
// fail to accept the write in time.
func (f *Feed) Broadcast(snap models.Snapshot) {
	f.mu.Lock()
	conns := make([]*websocket.Conn, 0, len(f.clients))
	for c := range f.clients {
		conns = append(conns, c)
	}
	f.mu.Unlock()

	for _, conn := range conns {
		conn.SetWriteDeadline(time.Now().Add(writeWait))
		if err := conn.WriteJSON(snap); err != nil {
			f.logger.Warn("feed write failed", xlogger.Error(err))
			f.drop(conn)
		}
	}
}

func (f *Feed) drop(conn *websocket.Conn) {
	f.mu.Lock()
	if _, ok := f.clients[conn]; ok {
		delete(f.clients, conn)
		conn.Close()
	}
	f.mu.Unlock()
}
