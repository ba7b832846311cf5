package storeclient

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"sneaker-auction/internal/biddingerrors"
	"sneaker-auction/internal/models"

	"github.com/shopspring/decimal"
)

type patchBidsRequest struct {
	CurrentPrice decimal.Decimal `json:"currentPrice"`
	Bets         []models.Bid    `json:"bets"`
}

type markIssuedRequest struct {
	Issued bool `json:"issued"`
}

func lotPath(lotID models.ID) string {
	return "/lot/" + url.PathEscape(lotID.String())
}

// GetLot fetches a single lot.
func (c *Client) GetLot(ctx context.Context, lotID models.ID) (models.Lot, error) {
	var lot models.Lot
	if err := c.do(ctx, http.MethodGet, lotPath(lotID), nil, &lot); err != nil {
		return models.Lot{}, wrapLotErr("get lot", lotID, err)
	}
	return lot, nil
}

// ListLots fetches the full lot collection.
func (c *Client) ListLots(ctx context.Context) ([]models.Lot, error) {
	var lots []models.Lot
	if err := c.do(ctx, http.MethodGet, "/lot", nil, &lots); err != nil {
		return nil, fmt.Errorf("list lots: %w", err)
	}
	return lots, nil
}

// CreateLot posts a new lot and returns it with the id assigned by the store.
func (c *Client) CreateLot(ctx context.Context, lot models.Lot) (models.Lot, error) {
	if lot.Bets == nil {
		lot.Bets = []models.Bid{}
	}
	var created models.Lot
	if err := c.do(ctx, http.MethodPost, "/lot", lot, &created); err != nil {
		return models.Lot{}, fmt.Errorf("create lot: %w", err)
	}
	return created, nil
}

// PatchLotBids writes the current price and bet history of a lot. No other field is sent.
func (c *Client) PatchLotBids(ctx context.Context, lotID models.ID, currentPrice decimal.Decimal, bets []models.Bid) (models.Lot, error) {
	if bets == nil {
		bets = []models.Bid{}
	}
	var lot models.Lot
	body := patchBidsRequest{CurrentPrice: currentPrice, Bets: bets}
	if err := c.do(ctx, http.MethodPatch, lotPath(lotID), body, &lot); err != nil {
		return models.Lot{}, wrapLotErr("patch lot bids", lotID, err)
	}
	return lot, nil
}

// MarkIssued sets issued=true on a lot.
func (c *Client) MarkIssued(ctx context.Context, lotID models.ID) (models.Lot, error) {
	var lot models.Lot
	if err := c.do(ctx, http.MethodPatch, lotPath(lotID), markIssuedRequest{Issued: true}, &lot); err != nil {
		return models.Lot{}, wrapLotErr("mark lot issued", lotID, err)
	}
	return lot, nil
}

func wrapLotErr(op string, lotID models.ID, err error) error {
	if IsNotFound(err) {
		return fmt.Errorf("%s %s: %w: %w", op, lotID, biddingerrors.ErrLotNotFound, err)
	}
	return fmt.Errorf("%s %s: %w", op, lotID, err)
}
