package api

import (
	"ForexPulse/internal/usecase"
	xhttp "ForexPulse/pkg/http"
	xlogger "ForexPulse/pkg/logger"

	"github.com/labstack/echo/v4"
)

// ForexHandler exposes the signal store over HTTP.
type ForexHandler struct {
	logger *xlogger.Logger
	ref    *usecase.Refresher
	feed   *Feed
}

// NewForexHandler creates the API handler. feed may be nil when the live
// websocket feed is disabled.
func NewForexHandler(logger *xlogger.Logger, ref *usecase.Refresher, feed *Feed) *ForexHandler {
	return &ForexHandler{logger: logger, ref: ref, feed: feed}
}

func (h *ForexHandler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/api/forex")
	g.GET("/signals", h.Signals)
	g.GET("/history", h.History)
	// pair names contain a slash (EUR/USD), so the route is a wildcard
	g.GET("/pair/*", h.Pair)

	if h.feed != nil {
		e.GET("/ws/signals", h.feed.Serve)
	}
}

// Signals serves the latest snapshot, refreshing first if the cache expired.
func (h *ForexHandler) Signals(c echo.Context) error {
	snap, err := h.ref.GetSignals(c.Request().Context())
	if err != nil {
		h.logger.Error("signal refresh failed", xlogger.Error(err))
		return xhttp.AppErrorResponse(c, xhttp.InternalError("failed to refresh signals").WithError(err))
	}
	return xhttp.OKResponse(c, snap)
}

// History serves the full capped history; filtering is a client concern.
func (h *ForexHandler) History(c echo.Context) error {
	return xhttp.OKResponse(c, h.ref.GetHistory())
}

// Pair serves the cached record for one pair, or 404.
func (h *ForexHandler) Pair(c echo.Context) error {
	pair := c.Param("*")
	record, ok := h.ref.GetPair(pair)
	if !ok {
		return xhttp.AppErrorResponse(c, xhttp.NotFoundErrorf("no signals found for pair %s", pair))
	}
	return xhttp.OKResponse(c, record)
}
