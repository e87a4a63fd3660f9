package api

import (
	"context"
	"encoding/json"
	"errors"
	"math/rand"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ForexPulse/internal/domain/models"
	"ForexPulse/internal/repository"
	"ForexPulse/internal/service/producer"
	"ForexPulse/internal/usecase"
	xhttp "ForexPulse/pkg/http"
	applogger "ForexPulse/pkg/logger"
)

func newTestServer(t *testing.T, prod, fallback interface {
	Produce(context.Context) ([]models.SignalRecord, error)
}) *echo.Echo {
	t.Helper()
	store := repository.NewMemorySignalStore(100, 0.85, rand.New(rand.NewSource(1)))
	ref := usecase.NewRefresher(store, prod, fallback, 5*time.Minute, nil, applogger.Nop())
	h := NewForexHandler(applogger.Nop(), ref, nil)

	e := echo.New()
	h.RegisterRoutes(e)
	return e
}

func mockPair() *producer.MockProducer {
	return producer.NewMockProducer(nil, rand.New(rand.NewSource(1)))
}

func TestSignalsEndpoint(t *testing.T) {
	e := newTestServer(t, mockPair(), mockPair())

	req := httptest.NewRequest(http.MethodGet, "/api/forex/signals", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var snap models.Snapshot
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &snap))
	assert.Len(t, snap.Signals, len(producer.DefaultPairs))
	assert.False(t, snap.Timestamp.IsZero())

	for _, s := range snap.Signals {
		assert.NotEmpty(t, s.Pair)
		assert.Equal(t, "D1", s.Timeframe)
	}
}

type failingProducer struct{}

func (failingProducer) Produce(context.Context) ([]models.SignalRecord, error) {
	return nil, errors.New("producer down")
}

func TestSignalsEndpointFallsBack(t *testing.T) {
	e := newTestServer(t, failingProducer{}, mockPair())

	req := httptest.NewRequest(http.MethodGet, "/api/forex/signals", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code, "a producer failure must not surface to clients")

	var snap models.Snapshot
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &snap))
	assert.Len(t, snap.Signals, len(producer.DefaultPairs))
}

func TestPairEndpointMatchesSlashedPairs(t *testing.T) {
	e := newTestServer(t, mockPair(), mockPair())

	// warm the cache
	warm := httptest.NewRecorder()
	e.ServeHTTP(warm, httptest.NewRequest(http.MethodGet, "/api/forex/signals", nil))
	require.Equal(t, http.StatusOK, warm.Code)

	req := httptest.NewRequest(http.MethodGet, "/api/forex/pair/EUR/USD", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var record models.SignalRecord
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &record))
	assert.Equal(t, "EUR/USD", record.Pair)
}

func TestPairEndpointUnknownPair(t *testing.T) {
	e := newTestServer(t, mockPair(), mockPair())

	warm := httptest.NewRecorder()
	e.ServeHTTP(warm, httptest.NewRequest(http.MethodGet, "/api/forex/signals", nil))
	require.Equal(t, http.StatusOK, warm.Code)

	req := httptest.NewRequest(http.MethodGet, "/api/forex/pair/GBP/JPY", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)

	var body xhttp.ErrorBody
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "not found", body.Error)
	assert.Contains(t, body.Message, "GBP/JPY")
}

func TestPairEndpointDoesNotRefresh(t *testing.T) {
	e := newTestServer(t, mockPair(), mockPair())

	// cold cache: the pair endpoint must 404 rather than trigger generation
	req := httptest.NewRequest(http.MethodGet, "/api/forex/pair/EUR/USD", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHistoryEndpoint(t *testing.T) {
	e := newTestServer(t, mockPair(), mockPair())

	warm := httptest.NewRecorder()
	e.ServeHTTP(warm, httptest.NewRequest(http.MethodGet, "/api/forex/signals", nil))
	require.Equal(t, http.StatusOK, warm.Code)

	req := httptest.NewRequest(http.MethodGet, "/api/forex/history", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var snap models.HistorySnapshot
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &snap))
	assert.Len(t, snap.Signals, len(producer.DefaultPairs))
	for _, entry := range snap.Signals {
		assert.Contains(t, []models.Result{models.ResultHit, models.ResultMiss}, entry.Result)
	}
}
