package server

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	bidding "sneaker-auction/internal/biddingService"
	"sneaker-auction/internal/metrics"
	model "sneaker-auction/internal/models"
	"sneaker-auction/internal/repository"
	handler "sneaker-auction/services/bidding/handler"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func newTestRouter(t *testing.T) (*gin.Engine, *metrics.Metrics) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	repo := repository.NewMemoryRepo()
	repo.AddLot(model.Lot{ID: "lot1", Title: "Dunk Low", StartPrice: decimal.NewFromInt(100), CurrentPrice: decimal.NewFromInt(100)})

	m := metrics.New("test")
	svc := bidding.NewBiddingService(repo, repo, bidding.WithMetrics(m))
	return SetupRouter(handler.NewBiddingHandler(svc, bidding.NewBroadcaster(m), nil), m), m
}

func TestSetupRouter(t *testing.T) {
	router, _ := newTestRouter(t)

	tests := []struct {
		method string
		path   string
		status int
	}{
		{http.MethodGet, "/healthz", http.StatusOK},
		{http.MethodGet, "/lots", http.StatusOK},
		{http.MethodGet, "/lots/lot1", http.StatusOK},
		{http.MethodGet, "/lots/lot1/bids", http.StatusOK},
		{http.MethodGet, "/lots/lot1/winning", http.StatusNotFound},
		{http.MethodGet, "/lots/missing", http.StatusNotFound},
		{http.MethodPost, "/settlement/sweep", http.StatusServiceUnavailable},
		{http.MethodGet, "/nope", http.StatusNotFound},
	}

	for _, tc := range tests {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(tc.method, tc.path, nil))
			require.Equal(t, tc.status, w.Code)
		})
	}
}

func TestMetricsEndpoint(t *testing.T) {
	router, m := newTestRouter(t)
	m.ObserveBid(metrics.BidAccepted)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, w.Code)
	require.True(t, strings.Contains(w.Body.String(), `test_bids_total{result="accepted"} 1`))
}

func TestRequestIDMiddleware(t *testing.T) {
	router, _ := newTestRouter(t)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	require.NotEmpty(t, w.Header().Get(RequestIDHeader))

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.Header.Set(RequestIDHeader, "7D444840-9DC0-11D1-B245-5FFDCE74FAD2")
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	require.Equal(t, "7d444840-9dc0-11d1-b245-5ffdce74fad2", w.Header().Get(RequestIDHeader))

	// anything else is replaced rather than echoed into logs
	req = httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.Header.Set(RequestIDHeader, "abc\nlevel=error")
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	require.NotEqual(t, "abc\nlevel=error", w.Header().Get(RequestIDHeader))
	require.Len(t, w.Header().Get(RequestIDHeader), 36)
}
