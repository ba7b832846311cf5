package repository

import (
	"context"
	"fmt"
	"sync"

	"sneaker-auction/internal/biddingerrors"
	model "sneaker-auction/internal/models"
	"sneaker-auction/utils"

	"github.com/shopspring/decimal"
)

//go:generate mockgen -source=repository.go -destination=mock_repository.go -package=repository

// LotRepository reads and patches auction lots in the backing store
type LotRepository interface {
	GetLot(ctx context.Context, lotID model.ID) (model.Lot, error)
	ListLots(ctx context.Context) ([]model.Lot, error)
	PatchLotBids(ctx context.Context, lotID model.ID, currentPrice decimal.Decimal, bets []model.Bid) (model.Lot, error)
	MarkIssued(ctx context.Context, lotID model.ID) (model.Lot, error)
}

// LotCreator creates new lots
type LotCreator interface {
	CreateLot(ctx context.Context, lot model.Lot) (model.Lot, error)
}

// UserRepository reads the authoritative user record, including balance
type UserRepository interface {
	GetUser(ctx context.Context, userID model.ID) (model.User, error)
}

// PrizeSink is the destination for items won at auction
type PrizeSink interface {
	ListPrizes(ctx context.Context) ([]model.PrizeEntry, error)
	CreatePrize(ctx context.Context, prize model.PrizeEntry) (model.PrizeEntry, error)
}

// MemoryRepo is a concurrency-safe in-memory implementation of every store interface
type MemoryRepo struct {
	mu     sync.RWMutex
	lots   map[model.ID]model.Lot // key: lotID -> value: lot
	order  []model.ID             // lot ids in creation order
	users  map[model.ID]model.User
	prizes []model.PrizeEntry
}

var (
	_ LotRepository  = (*MemoryRepo)(nil)
	_ LotCreator     = (*MemoryRepo)(nil)
	_ UserRepository = (*MemoryRepo)(nil)
	_ PrizeSink      = (*MemoryRepo)(nil)
)

// NewMemoryRepo creates a new in-memory repository instance
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		lots:  make(map[model.ID]model.Lot),
		users: make(map[model.ID]model.User),
	}
}

// GetLot returns a single lot
func (r *MemoryRepo) GetLot(_ context.Context, lotID model.ID) (model.Lot, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	lot, ok := r.lots[lotID]
	if !ok {
		return model.Lot{}, fmt.Errorf("get lot %s: %w", lotID, biddingerrors.ErrLotNotFound)
	}
	return lot.Clone(), nil
}

// ListLots returns every lot in creation order
func (r *MemoryRepo) ListLots(_ context.Context) ([]model.Lot, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	lots := make([]model.Lot, 0, len(r.order))
	for _, id := range r.order {
		lots = append(lots, r.lots[id].Clone())
	}
	return lots, nil
}

// PatchLotBids overwrites the current price and bet history of a lot
func (r *MemoryRepo) PatchLotBids(_ context.Context, lotID model.ID, currentPrice decimal.Decimal, bets []model.Bid) (model.Lot, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	lot, ok := r.lots[lotID]
	if !ok {
		return model.Lot{}, fmt.Errorf("patch lot %s: %w", lotID, biddingerrors.ErrLotNotFound)
	}

	lot.CurrentPrice = currentPrice
	lot.Bets = append(make([]model.Bid, 0, len(bets)), bets...)
	r.lots[lotID] = lot
	return lot.Clone(), nil
}

// MarkIssued sets the settlement marker on a lot
func (r *MemoryRepo) MarkIssued(_ context.Context, lotID model.ID) (model.Lot, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	lot, ok := r.lots[lotID]
	if !ok {
		return model.Lot{}, fmt.Errorf("mark lot %s issued: %w", lotID, biddingerrors.ErrLotNotFound)
	}

	lot.Issued = true
	r.lots[lotID] = lot
	return lot.Clone(), nil
}

// CreateLot stores a new lot, assigning an id when none is set
func (r *MemoryRepo) CreateLot(_ context.Context, lot model.Lot) (model.Lot, error) {
	return r.AddLot(lot), nil
}

// GetUser returns a user with their current balance
func (r *MemoryRepo) GetUser(_ context.Context, userID model.ID) (model.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.users[userID]
	if !ok {
		return model.User{}, fmt.Errorf("get user %s: %w", userID, biddingerrors.ErrUserNotFound)
	}
	return user, nil
}

// ListPrizes returns every prize entry
func (r *MemoryRepo) ListPrizes(_ context.Context) ([]model.PrizeEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return append([]model.PrizeEntry(nil), r.prizes...), nil
}

// CreatePrize appends a prize entry
func (r *MemoryRepo) CreatePrize(_ context.Context, prize model.PrizeEntry) (model.PrizeEntry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if prize.ID.IsZero() {
		prize.ID = model.ID(utils.GenerateID())
	}
	r.prizes = append(r.prizes, prize)
	return prize, nil
}

// AddLot adds a lot to the repository and returns it with its id. Used for seeding and tests.
func (r *MemoryRepo) AddLot(lot model.Lot) model.Lot {
	r.mu.Lock()
	defer r.mu.Unlock()

	if lot.ID.IsZero() {
		lot.ID = model.ID(utils.GenerateID())
	}
	if lot.Bets == nil {
		lot.Bets = []model.Bid{}
	}
	if _, exists := r.lots[lot.ID]; !exists {
		r.order = append(r.order, lot.ID)
	}
	r.lots[lot.ID] = lot.Clone()
	return lot.Clone()
}

// AddUser adds or replaces a user. Used for seeding and tests.
func (r *MemoryRepo) AddUser(user model.User) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.users[user.ID] = user
}

// SetBalance overwrites a user's balance, standing in for the flows that top up or spend it
func (r *MemoryRepo) SetBalance(userID model.ID, balance decimal.Decimal) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.users[userID]
	if !ok {
		return fmt.Errorf("set balance for user %s: %w", userID, biddingerrors.ErrUserNotFound)
	}
	user.Balance = balance
	r.users[userID] = user
	return nil
}
