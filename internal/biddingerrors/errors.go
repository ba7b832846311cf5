package biddingerrors

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// Repository-level errors
var (
	ErrLotNotFound  = errors.New("lot not found")
	ErrUserNotFound = errors.New("user not found")
	ErrNoBids       = errors.New("no bids found for lot")
)

// lot creation errors
var (
	ErrInvalidLot       = errors.New("invalid lot")
	ErrCreationFailed   = errors.New("failed to create lot")
	ErrCreationDisabled = errors.New("lot creation disabled")
)

// bid placement errors
var (
	ErrAuctionClosed     = errors.New("auction closed")
	ErrInvalidAmount     = errors.New("invalid bid amount")
	ErrBidTooLow         = errors.New("bid amount too low")
	ErrNotAuthenticated  = errors.New("not authenticated")
	ErrInsufficientFunds = errors.New("insufficient funds")
	ErrPersistenceFailed = errors.New("failed to persist bid")
)

// settlement errors
var (
	ErrLoadFailed          = errors.New("failed to load lots")
	ErrPrizeIssuanceFailed = errors.New("failed to issue prize")
	ErrMarkIssuedFailed    = errors.New("failed to mark lot issued")
)

// BidTooLowError reports the minimum amount that would have been accepted
type BidTooLowError struct {
	Current decimal.Decimal
	Minimum decimal.Decimal
}

func (e *BidTooLowError) Error() string {
	return fmt.Sprintf("%s: current price is %s, minimum bid is %s", ErrBidTooLow, e.Current, e.Minimum)
}

func (e *BidTooLowError) Is(target error) bool {
	return target == ErrBidTooLow
}

// InsufficientFundsError reports the bidder's balance against the bid amount
type InsufficientFundsError struct {
	Balance  decimal.Decimal
	Required decimal.Decimal
}

// Shortfall is the amount missing from the balance
func (e *InsufficientFundsError) Shortfall() decimal.Decimal {
	return e.Required.Sub(e.Balance)
}

func (e *InsufficientFundsError) Error() string {
	return fmt.Sprintf("%s: balance %s, required %s, short by %s", ErrInsufficientFunds, e.Balance, e.Required, e.Shortfall())
}

func (e *InsufficientFundsError) Is(target error) bool {
	return target == ErrInsufficientFunds
}
