package storeclient

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"sneaker-auction/internal/auth"
	"sneaker-auction/internal/biddingerrors"
	"sneaker-auction/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const lotJSON = `{"id":1,"title":"Jordan 1","imageUrl":"/j1.png","startPrice":1000,"currentPrice":1500,
	"endTime":"2026-03-03T12:00:00Z","bets":[{"userId":4,"price":1500}]}`

func TestNewClient(t *testing.T) {
	t.Run("default values", func(t *testing.T) {
		c := NewClient("https://abc.mokky.dev/")
		assert.Equal(t, "https://abc.mokky.dev", c.baseURL)
		assert.Equal(t, DefaultTimeout, c.httpClient.Timeout)
		assert.Equal(t, DefaultPrizeSinkPath, c.prizePath)
		assert.Nil(t, c.tokens)
	})

	t.Run("with options", func(t *testing.T) {
		ts := auth.NewMemoryStore("t")
		c := NewClient("https://abc.mokky.dev", WithTimeout(2*time.Second), WithTokenStore(ts), WithPrizeSinkPath("cart/"))
		assert.Equal(t, 2*time.Second, c.httpClient.Timeout)
		assert.Equal(t, ts, c.tokens)
		assert.Equal(t, "/cart", c.prizePath)
	})

	t.Run("with custom HTTP client", func(t *testing.T) {
		hc := &http.Client{}
		c := NewClient("https://abc.mokky.dev", WithHTTPClient(hc))
		assert.Same(t, hc, c.httpClient)
	})
}

func TestClient_GetLot(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		switch r.URL.Path {
		case "/lot/1":
			w.Write([]byte(lotJSON))
		default:
			w.WriteHeader(http.StatusNotFound)
			w.Write([]byte(`{"message":"not found"}`))
		}
	}))
	defer server.Close()

	c := NewClient(server.URL)

	lot, err := c.GetLot(context.Background(), "1")
	require.NoError(t, err)
	assert.Equal(t, models.ID("1"), lot.ID)
	assert.True(t, lot.CurrentPrice.Equal(decimal.NewFromInt(1500)))
	assert.Equal(t, models.ID("4"), lot.Bets[0].UserID)

	_, err = c.GetLot(context.Background(), "99")
	require.ErrorIs(t, err, biddingerrors.ErrLotNotFound)
	assert.True(t, IsNotFound(err))
}

func TestClient_PatchLotBids(t *testing.T) {
	var gotBody map[string]any
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPatch, r.Method)
		assert.Equal(t, "/lot/1", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		body, _ := io.ReadAll(r.Body)
		assert.NoError(t, json.Unmarshal(body, &gotBody))
		w.Write([]byte(lotJSON))
	}))
	defer server.Close()

	c := NewClient(server.URL)
	bets := []models.Bid{{UserID: "4", Price: decimal.NewFromInt(1500)}}

	lot, err := c.PatchLotBids(context.Background(), "1", decimal.NewFromInt(1500), bets)
	require.NoError(t, err)
	assert.True(t, lot.CurrentPrice.Equal(decimal.NewFromInt(1500)))

	// only currentPrice and bets are sent
	require.Len(t, gotBody, 2)
	assert.Equal(t, 1500.0, gotBody["currentPrice"])
	assert.Equal(t, []any{map[string]any{"userId": 4.0, "price": 1500.0}}, gotBody["bets"])
}

func TestClient_MarkIssued(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		assert.JSONEq(t, `{"issued":true}`, string(body))
		assert.Equal(t, http.MethodPatch, r.Method)
		w.Write([]byte(`{"id":1,"issued":true,"bets":[]}`))
	}))
	defer server.Close()

	lot, err := NewClient(server.URL).MarkIssued(context.Background(), "1")
	require.NoError(t, err)
	assert.True(t, lot.Issued)
}

func TestClient_ServerError(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`boom`))
	}))
	defer server.Close()

	_, err := NewClient(server.URL).ListLots(context.Background())
	require.Error(t, err)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusInternalServerError, apiErr.StatusCode)
	assert.Equal(t, []byte("boom"), apiErr.Body)
	assert.Equal(t, int32(1), calls.Load(), "requests are not retried")
}

func TestClient_GetUser(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/user/4" {
			w.Write([]byte(`{"id":4,"fullName":"Ann","balance":2000}`))
			return
		}
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	c := NewClient(server.URL)

	user, err := c.GetUser(context.Background(), "4")
	require.NoError(t, err)
	assert.True(t, user.Balance.Equal(decimal.NewFromInt(2000)))

	_, err = c.GetUser(context.Background(), "5")
	require.ErrorIs(t, err, biddingerrors.ErrUserNotFound)
}

func TestClient_Prizes(t *testing.T) {
	var created map[string]any
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/prizeSink", r.URL.Path)
		switch r.Method {
		case http.MethodGet:
			w.Write([]byte(`[{"id":1,"title":"Jordan 1","imageUri":"/j1.png","price":"0"}]`))
		case http.MethodPost:
			body, _ := io.ReadAll(r.Body)
			assert.NoError(t, json.Unmarshal(body, &created))
			w.WriteHeader(http.StatusCreated)
			w.Write([]byte(`{"id":2,"title":"Dunk","imageUri":"/d.png","price":"0"}`))
		}
	}))
	defer server.Close()

	c := NewClient(server.URL)

	prizes, err := c.ListPrizes(context.Background())
	require.NoError(t, err)
	require.Len(t, prizes, 1)
	assert.Equal(t, models.Price("0"), prizes[0].Price)

	prize, err := c.CreatePrize(context.Background(), models.PrizeEntry{Title: "Dunk", ImageURI: "/d.png", Price: "0"})
	require.NoError(t, err)
	assert.Equal(t, models.ID("2"), prize.ID)
	assert.Equal(t, "0", created["price"])
	assert.NotContains(t, created, "id")
}

// The prize sink is shared with regular cart items, which carry numeric prices
func TestClient_ListPrizes_MixedPrices(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[
			{"id":1,"title":"Air Max","imageUri":"/a.png","price":12999},
			{"id":2,"title":"Jordan 1","imageUri":"/j1.png","price":"0"},
			{"id":3,"title":"Dunk","imageUri":"/d.png","price":0.00},
			{"id":4,"title":"Samba","imageUri":"/s.png","price":null}
		]`))
	}))
	defer server.Close()

	prizes, err := NewClient(server.URL).ListPrizes(context.Background())
	require.NoError(t, err)
	require.Len(t, prizes, 4)

	tests := []struct {
		want     models.Price
		wantZero bool
	}{
		{want: "12999", wantZero: false},
		{want: "0", wantZero: true},
		{want: "0.00", wantZero: true},
		{want: "", wantZero: false},
	}
	for i, tc := range tests {
		assert.Equal(t, tc.want, prizes[i].Price, "entry %d", i)
		assert.Equal(t, tc.wantZero, prizes[i].Price.IsZero(), "entry %d", i)
	}
}

func TestClient_CreateLot(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		var lot models.Lot
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&lot))
		assert.NotNil(t, lot.Bets)
		lot.ID = "12"
		json.NewEncoder(w).Encode(lot)
	}))
	defer server.Close()

	lot := models.NewLot("Yeezy", "/y.png", decimal.NewFromInt(900), time.Now(), 0)
	lot.Bets = nil

	created, err := NewClient(server.URL).CreateLot(context.Background(), lot)
	require.NoError(t, err)
	assert.Equal(t, models.ID("12"), created.ID)
}

func TestClient_BearerToken(t *testing.T) {
	var header atomic.Value
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header.Store(r.Header.Get("Authorization"))
		w.Write([]byte(`[]`))
	}))
	defer server.Close()

	ts := auth.NewMemoryStore("")
	c := NewClient(server.URL, WithTokenStore(ts))

	_, err := c.ListLots(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "", header.Load())

	require.NoError(t, ts.StoreToken(context.Background(), "abc"))
	_, err = c.ListLots(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Bearer abc", header.Load())
}

func TestClient_ContextCancellation(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer server.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := NewClient(server.URL).GetLot(ctx, "1")
	require.Error(t, err)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}
