package bidding

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"sneaker-auction/internal/biddingerrors"
	"sneaker-auction/internal/metrics"
	model "sneaker-auction/internal/models"
	"sneaker-auction/internal/repository"
	"sneaker-auction/utils"

	"github.com/shopspring/decimal"
)

// BiddingService validates bids against a lot and commits them with an optimistic local update
type BiddingService struct {
	lots         repository.LotRepository
	users        repository.UserRepository
	creator      repository.LotCreator
	notifier     ChangeNotifier
	metrics      *metrics.Metrics
	minIncrement decimal.Decimal
	window       time.Duration
	now          func() time.Time
}

// Option configures a BiddingService
type Option func(*BiddingService)

// WithClock overrides the time source used to decide whether a lot is closed
func WithClock(now func() time.Time) Option {
	return func(s *BiddingService) {
		s.now = now
	}
}

// WithMinIncrement sets the smallest step a bid must raise the current price by
func WithMinIncrement(inc decimal.Decimal) Option {
	return func(s *BiddingService) {
		if inc.IsPositive() {
			s.minIncrement = inc
		}
	}
}

// WithNotifier sets the receiver of "lots changed" notifications
func WithNotifier(n ChangeNotifier) Option {
	return func(s *BiddingService) {
		s.notifier = n
	}
}

// WithLotCreator enables CreateLot; window is how long new lots accept bids
func WithLotCreator(c repository.LotCreator, window time.Duration) Option {
	return func(s *BiddingService) {
		s.creator = c
		if window > 0 {
			s.window = window
		}
	}
}

// WithMetrics records bid outcomes
func WithMetrics(m *metrics.Metrics) Option {
	return func(s *BiddingService) {
		s.metrics = m
	}
}

// NewBiddingService creates a new BiddingService instance
func NewBiddingService(lots repository.LotRepository, users repository.UserRepository, opts ...Option) *BiddingService {
	s := &BiddingService{
		lots:         lots,
		users:        users,
		minIncrement: model.DefaultMinIncrement,
		window:       model.DefaultAuctionWindow,
		now:          time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// OpenLot creates a view and loads the lot into it
func (s *BiddingService) OpenLot(ctx context.Context, lotID model.ID) (*LotView, error) {
	view := NewLotView()
	if err := view.Load(ctx, s.lots, lotID); err != nil {
		view.Close()
		return nil, fmt.Errorf("service: %w", err)
	}
	return view, nil
}

// Bid loads a lot into a fresh view, places the bid and discards the view
func (s *BiddingService) Bid(ctx context.Context, lotID, userID model.ID, rawAmount string) (model.Lot, error) {
	view, err := s.OpenLot(ctx, lotID)
	if err != nil {
		s.metrics.ObserveBid(bidResult(err))
		return model.Lot{}, err
	}
	defer view.Close()

	return s.PlaceBid(ctx, view, userID, rawAmount)
}

// PlaceBid validates a bid against the lot held by view, checks the bidder's
// balance and commits the bid. The view shows the bid immediately and is
// restored to its previous state if the remote write fails.
func (s *BiddingService) PlaceBid(ctx context.Context, view *LotView, userID model.ID, rawAmount string) (model.Lot, error) {
	lot, err := s.placeBid(ctx, view, userID, rawAmount)
	s.metrics.ObserveBid(bidResult(err))
	if err != nil {
		return model.Lot{}, err
	}
	return lot, nil
}

func (s *BiddingService) placeBid(ctx context.Context, view *LotView, userID model.ID, rawAmount string) (model.Lot, error) {
	if view == nil {
		return model.Lot{}, fmt.Errorf("service: %w - no lot loaded", biddingerrors.ErrLotNotFound)
	}
	lot, ok := view.Current()
	if !ok {
		return model.Lot{}, fmt.Errorf("service: %w - no lot loaded", biddingerrors.ErrLotNotFound)
	}

	amount, err := s.validateBid(lot, userID, rawAmount)
	if err != nil {
		return model.Lot{}, err
	}

	if err := s.checkBalance(ctx, userID, amount); err != nil {
		return model.Lot{}, err
	}

	return s.commit(ctx, view, lot, userID, amount)
}

// validateBid checks the lot and the amount; the first failing rule wins
func (s *BiddingService) validateBid(lot model.Lot, userID model.ID, rawAmount string) (decimal.Decimal, error) {
	if lot.IsClosed(s.now()) {
		return decimal.Zero, fmt.Errorf("service: %w - lot %s ended at %s", biddingerrors.ErrAuctionClosed, lot.ID, lot.EndTime.Format(time.RFC3339))
	}

	amount, err := model.ParseAmount(rawAmount)
	if err != nil {
		return decimal.Zero, fmt.Errorf("service: %w - %v", biddingerrors.ErrInvalidAmount, err)
	}

	minimum := model.MinimumBid(lot.CurrentPrice, s.minIncrement)
	if amount.LessThan(minimum) {
		return decimal.Zero, fmt.Errorf("service: %w", &biddingerrors.BidTooLowError{
			Current: lot.CurrentPrice,
			Minimum: minimum,
		})
	}

	if userID.IsZero() {
		return decimal.Zero, fmt.Errorf("service: %w - missing user id", biddingerrors.ErrNotAuthenticated)
	}

	return amount, nil
}

// checkBalance reads the bidder's balance from the store; it is never cached
func (s *BiddingService) checkBalance(ctx context.Context, userID model.ID, amount decimal.Decimal) error {
	user, err := s.users.GetUser(ctx, userID)
	if errors.Is(err, biddingerrors.ErrUserNotFound) {
		return fmt.Errorf("service: %w - unknown user %s", biddingerrors.ErrNotAuthenticated, userID)
	}
	if err != nil {
		return fmt.Errorf("service: failed to read balance for user %s: %w", userID, err)
	}

	if user.Balance.LessThan(amount) {
		return fmt.Errorf("service: %w", &biddingerrors.InsufficientFundsError{
			Balance:  user.Balance,
			Required: amount,
		})
	}
	return nil
}

// commit applies the candidate state to the view, persists it and rolls back on failure
func (s *BiddingService) commit(ctx context.Context, view *LotView, prev model.Lot, userID model.ID, amount decimal.Decimal) (model.Lot, error) {
	candidate := prev.WithBid(userID, amount)
	version := view.Set(candidate)

	updated, err := s.lots.PatchLotBids(ctx, prev.ID, candidate.CurrentPrice, candidate.Bets)
	if err != nil {
		view.restore(prev, version)
		utils.Warn("service: bid rolled back", map[string]any{
			"lot_id":  prev.ID,
			"user_id": userID,
			"amount":  amount.String(),
			"error":   err.Error(),
		})
		return model.Lot{}, fmt.Errorf("service: %w - lot %s: %w", biddingerrors.ErrPersistenceFailed, prev.ID, err)
	}

	// some backends answer a PATCH with an empty body
	if updated.ID.IsZero() {
		updated = candidate
	}
	view.Set(updated)

	if s.notifier != nil {
		s.notifier.NotifyLotsChanged(LotsChangedEvent{LotID: updated.ID, Lot: updated.Clone(), At: s.now().UTC()})
	}
	return updated, nil
}

// CreateLot opens a new auction: no bets, the current price at the start price and
// an end time one auction window from now
func (s *BiddingService) CreateLot(ctx context.Context, title, imageURL, rawStartPrice string) (model.Lot, error) {
	if s.creator == nil {
		return model.Lot{}, fmt.Errorf("service: %w", biddingerrors.ErrCreationDisabled)
	}

	title = strings.TrimSpace(title)
	if title == "" {
		return model.Lot{}, fmt.Errorf("service: %w - empty title", biddingerrors.ErrInvalidLot)
	}
	startPrice, err := model.ParseAmount(rawStartPrice)
	if err != nil {
		return model.Lot{}, fmt.Errorf("service: %w - start price: %v", biddingerrors.ErrInvalidLot, err)
	}

	lot := model.NewLot(title, strings.TrimSpace(imageURL), startPrice, s.now(), s.window)
	created, err := s.creator.CreateLot(ctx, lot)
	if err != nil {
		return model.Lot{}, fmt.Errorf("service: %w - %w", biddingerrors.ErrCreationFailed, err)
	}

	if s.notifier != nil {
		s.notifier.NotifyLotsChanged(LotsChangedEvent{LotID: created.ID, Lot: created.Clone(), At: s.now().UTC()})
	}
	return created, nil
}

// GetLot returns a single lot
func (s *BiddingService) GetLot(ctx context.Context, lotID model.ID) (model.Lot, error) {
	if lotID.IsZero() {
		return model.Lot{}, fmt.Errorf("service: %w - empty lot ID", biddingerrors.ErrLotNotFound)
	}

	lot, err := s.lots.GetLot(ctx, lotID)
	if err != nil {
		return model.Lot{}, fmt.Errorf("service: failed to get lot %s: %w", lotID, err)
	}
	return lot, nil
}

// ListLots returns every lot
func (s *BiddingService) ListLots(ctx context.Context) ([]model.Lot, error) {
	lots, err := s.lots.ListLots(ctx)
	if err != nil {
		return nil, fmt.Errorf("service: failed to list lots: %w", err)
	}
	return lots, nil
}

// GetBidsForLot returns the bet history of a lot in bid order
func (s *BiddingService) GetBidsForLot(ctx context.Context, lotID model.ID) ([]model.Bid, error) {
	lot, err := s.GetLot(ctx, lotID)
	if err != nil {
		return nil, err
	}
	return lot.Bets, nil
}

// GetWinningBid returns the bid currently leading a lot
func (s *BiddingService) GetWinningBid(ctx context.Context, lotID model.ID) (model.Bid, error) {
	lot, err := s.GetLot(ctx, lotID)
	if err != nil {
		return model.Bid{}, err
	}

	leader, ok := lot.Leader()
	if !ok {
		return model.Bid{}, fmt.Errorf("service: %w - lot %s", biddingerrors.ErrNoBids, lotID)
	}
	return leader, nil
}

func bidResult(err error) string {
	switch {
	case err == nil:
		return metrics.BidAccepted
	case errors.Is(err, biddingerrors.ErrPersistenceFailed):
		return metrics.BidPersistenceFailed
	case errors.Is(err, biddingerrors.ErrLotNotFound):
		return metrics.BidLotNotFound
	case errors.Is(err, biddingerrors.ErrAuctionClosed):
		return metrics.BidAuctionClosed
	case errors.Is(err, biddingerrors.ErrInvalidAmount):
		return metrics.BidInvalidAmount
	case errors.Is(err, biddingerrors.ErrBidTooLow):
		return metrics.BidTooLow
	case errors.Is(err, biddingerrors.ErrNotAuthenticated):
		return metrics.BidNotAuthenticated
	case errors.Is(err, biddingerrors.ErrInsufficientFunds):
		return metrics.BidInsufficientFunds
	default:
		return metrics.BidError
	}
}
