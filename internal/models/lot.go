package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// DefaultAuctionWindow is how long a lot accepts bids after creation
const DefaultAuctionWindow = 48 * time.Hour

// LotState is the settlement state of a lot as seen by the sweeper
type LotState string

const (
	LotOpen             LotState = "OPEN"
	LotExpiredUnsettled LotState = "EXPIRED_UNSETTLED"
	LotSettled          LotState = "SETTLED"
)

// NewLot builds a lot the way the auction creation flow does: no bets, the
// current price equal to the start price and a fixed bidding window.
func NewLot(title, imageURL string, startPrice decimal.Decimal, now time.Time, window time.Duration) Lot {
	if window <= 0 {
		window = DefaultAuctionWindow
	}
	return Lot{
		Title:        title,
		ImageURL:     imageURL,
		StartPrice:   startPrice,
		CurrentPrice: startPrice,
		EndTime:      now.Add(window).UTC(),
		Bets:         []Bid{},
	}
}

// IsClosed reports whether bidding has ended at now
func (l Lot) IsClosed(now time.Time) bool {
	return !now.Before(l.EndTime)
}

// State returns the lot's settlement state at now
func (l Lot) State(now time.Time) LotState {
	switch {
	case l.Issued:
		return LotSettled
	case l.IsClosed(now):
		return LotExpiredUnsettled
	default:
		return LotOpen
	}
}

// Clone returns a copy that shares no bet storage with l
func (l Lot) Clone() Lot {
	c := l
	c.Bets = append(make([]Bid, 0, len(l.Bets)), l.Bets...)
	return c
}

// WithBid returns the candidate next state after accepting a bid at price
func (l Lot) WithBid(userID ID, price decimal.Decimal) Lot {
	next := l.Clone()
	next.CurrentPrice = price
	next.Bets = append(next.Bets, Bid{UserID: userID, Price: price})
	return next
}

// Leader returns the highest bid; ties go to the latest one
func (l Lot) Leader() (Bid, bool) {
	if len(l.Bets) == 0 {
		return Bid{}, false
	}
	leader := l.Bets[0]
	for _, b := range l.Bets[1:] {
		if b.Price.GreaterThanOrEqual(leader.Price) {
			leader = b
		}
	}
	return leader, true
}

// WinningBid returns the last appended bid whose price equals the current price
func (l Lot) WinningBid() (Bid, bool) {
	for i := len(l.Bets) - 1; i >= 0; i-- {
		if l.Bets[i].Price.Equal(l.CurrentPrice) {
			return l.Bets[i], true
		}
	}
	return Bid{}, false
}
