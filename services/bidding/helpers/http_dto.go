package helpers

import (
	"bytes"
	"encoding/json"
	"time"

	model "sneaker-auction/internal/models"

	"github.com/shopspring/decimal"
)

// RawAmount is a bid amount as the client sent it: a JSON number or a string.
// Parsing is left to the bidding service so a bad amount gets the same error as any other invalid bid.
type RawAmount string

func (a *RawAmount) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*a = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*a = RawAmount(s)
		return nil
	}
	*a = RawAmount(data)
	return nil
}

// Request/Response DTOs
type PlaceBidRequest struct {
	UserID model.ID  `json:"user_id"`
	Amount RawAmount `json:"amount"`
}

type CreateLotRequest struct {
	Title      string    `json:"title"`
	ImageURL   string    `json:"image_url"`
	StartPrice RawAmount `json:"start_price"`
}

type BidResponse struct {
	UserID model.ID        `json:"user_id"`
	Price  decimal.Decimal `json:"price"`
}

type LotResponse struct {
	ID           model.ID        `json:"id"`
	Title        string          `json:"title"`
	ImageURL     string          `json:"image_url"`
	StartPrice   decimal.Decimal `json:"start_price"`
	CurrentPrice decimal.Decimal `json:"current_price"`
	EndTime      string          `json:"end_time"`
	State        model.LotState  `json:"state"`
	Issued       bool            `json:"issued"`
	BidCount     int             `json:"bid_count"`
	Bets         []BidResponse   `json:"bets"`
}

type LotEventResponse struct {
	LotID model.ID    `json:"lot_id"`
	Lot   LotResponse `json:"lot"`
	At    string      `json:"at"`
}

// NewBidResponse converts a bid to its wire form
func NewBidResponse(b model.Bid) BidResponse {
	return BidResponse{UserID: b.UserID, Price: b.Price}
}

// NewBidResponses converts a bet history, never returning nil
func NewBidResponses(bets []model.Bid) []BidResponse {
	out := make([]BidResponse, 0, len(bets))
	for _, b := range bets {
		out = append(out, NewBidResponse(b))
	}
	return out
}

// NewLotResponse converts a lot to its wire form with its state at now
func NewLotResponse(l model.Lot, now time.Time) LotResponse {
	return LotResponse{
		ID:           l.ID,
		Title:        l.Title,
		ImageURL:     l.ImageURL,
		StartPrice:   l.StartPrice,
		CurrentPrice: l.CurrentPrice,
		EndTime:      l.EndTime.UTC().Format(time.RFC3339),
		State:        l.State(now),
		Issued:       l.Issued,
		BidCount:     len(l.Bets),
		Bets:         NewBidResponses(l.Bets),
	}
}

// NewLotResponses converts a list of lots, never returning nil
func NewLotResponses(lots []model.Lot, now time.Time) []LotResponse {
	out := make([]LotResponse, 0, len(lots))
	for _, l := range lots {
		out = append(out, NewLotResponse(l, now))
	}
	return out
}
