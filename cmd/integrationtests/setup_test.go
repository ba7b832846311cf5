package integrationtests

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	bidding "sneaker-auction/internal/biddingService"
	"sneaker-auction/internal/metrics"
	model "sneaker-auction/internal/models"
	"sneaker-auction/internal/repository"
	"sneaker-auction/internal/server"
	"sneaker-auction/internal/settlement"
	handler "sneaker-auction/services/bidding/handler"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// TestEnv is a fully wired service over an in-memory store
type TestEnv struct {
	Router  *gin.Engine
	Repo    *repository.MemoryRepo
	Sweeper *settlement.Sweeper
	Metrics *metrics.Metrics
}

// SetupTestEnv initializes the router with in-memory repository for integration testing.
func SetupTestEnv(t *testing.T) *TestEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	repo := repository.NewMemoryRepo()
	m := metrics.New("it")
	broadcaster := bidding.NewBroadcaster(m)
	service := bidding.NewBiddingService(repo, repo,
		bidding.WithLotCreator(repo, model.DefaultAuctionWindow),
		bidding.WithNotifier(broadcaster),
		bidding.WithMetrics(m),
	)
	sweeper := settlement.New(settlement.Config{Interval: time.Minute, Timeout: time.Second}, repo, repo, settlement.WithMetrics(m))
	t.Cleanup(func() { _ = sweeper.Stop(context.Background()) })

	router := server.SetupRouter(handler.NewBiddingHandler(service, broadcaster, sweeper), m)
	return &TestEnv{Router: router, Repo: repo, Sweeper: sweeper, Metrics: m}
}

// AddUser seeds a bidder with a balance
func (e *TestEnv) AddUser(id model.ID, balance int64) {
	e.Repo.AddUser(model.User{ID: id, Name: string(id), Balance: decimal.NewFromInt(balance)})
}

// AddLot seeds a lot ending at end with the given bets
func (e *TestEnv) AddLot(id model.ID, startPrice int64, end time.Time, bets ...model.Bid) model.Lot {
	current := decimal.NewFromInt(startPrice)
	for _, b := range bets {
		if b.Price.GreaterThan(current) {
			current = b.Price
		}
	}
	return e.Repo.AddLot(model.Lot{
		ID:           id,
		Title:        "Lot " + string(id),
		ImageURL:     "/img/" + string(id) + ".png",
		StartPrice:   decimal.NewFromInt(startPrice),
		CurrentPrice: current,
		EndTime:      end,
		Bets:         bets,
	})
}

// ExecuteRequest executes an HTTP request and returns the response recorder.
func ExecuteRequest(t *testing.T, router *gin.Engine, method, url string, body []byte) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, url, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// ExecuteRequestAndParse executes an HTTP request on the given router and parses the response envelope
func ExecuteRequestAndParse(t *testing.T, router *gin.Engine, method, url string, body any) (map[string]any, *httptest.ResponseRecorder) {
	t.Helper()

	var reqBody []byte
	switch v := body.(type) {
	case nil:
	case []byte:
		reqBody = v
	case string:
		reqBody = []byte(v)
	default:
		var err error
		reqBody, err = json.Marshal(v)
		if err != nil {
			t.Fatalf("failed to marshal body: %v", err)
		}
	}

	w := ExecuteRequest(t, router, method, url, reqBody)

	var resp map[string]any
	if len(w.Body.Bytes()) > 0 {
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("failed to unmarshal response: %v", err)
		}
	}
	return resp, w
}

// ExecuteRequestWithHeader posts body with the bidder id in the X-User-ID header
func ExecuteRequestWithHeader(t *testing.T, env *TestEnv, url string, body []byte, userID string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, url, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(handler.UserIDHeader, userID)
	w := httptest.NewRecorder()
	env.Router.ServeHTTP(w, req)
	return w
}
