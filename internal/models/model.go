// Package models holds the auction domain types shared by the store backends,
// the bidding service and the sweeper.
//
// Importing this package sets decimal.MarshalJSONWithoutQuotes for the whole
// process: every decimal.Decimal, including those in HTTP responses, encodes as
// a JSON number.
package models

import (
	"time"

	"github.com/shopspring/decimal"
)

func init() {
	// the remote store keeps monetary amounts as JSON numbers
	decimal.MarshalJSONWithoutQuotes = true
}

// User represents a bidder and balance holder
type User struct {
	ID      ID              `json:"id"`
	Name    string          `json:"fullName,omitempty"`
	Email   string          `json:"email,omitempty"`
	Balance decimal.Decimal `json:"balance"`
}

// Bid is a single entry in a lot's bet history
type Bid struct {
	UserID ID              `json:"userId"`
	Price  decimal.Decimal `json:"price"`
}

// Lot represents an auctioned item
type Lot struct {
	ID           ID              `json:"id,omitempty"`
	Title        string          `json:"title"`
	ImageURL     string          `json:"imageUrl"`
	StartPrice   decimal.Decimal `json:"startPrice"`
	CurrentPrice decimal.Decimal `json:"currentPrice"`
	EndTime      time.Time       `json:"endTime"`
	Bets         []Bid           `json:"bets"`
	Issued       bool            `json:"issued,omitempty"`
}

// PrizeEntry is an item issued to the prize sink after an auction is settled
type PrizeEntry struct {
	ID       ID     `json:"id,omitempty"`
	Title    string `json:"title"`
	ImageURI string `json:"imageUri"`
	Price    Price  `json:"price"`
	LotID    ID     `json:"lotId,omitempty"`
	WinnerID ID     `json:"winnerId,omitempty"`
}
