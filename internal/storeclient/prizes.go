package storeclient

import (
	"context"
	"fmt"
	"net/http"

	"sneaker-auction/internal/models"
)

// ListPrizes fetches every entry in the prize sink.
func (c *Client) ListPrizes(ctx context.Context) ([]models.PrizeEntry, error) {
	var prizes []models.PrizeEntry
	if err := c.do(ctx, http.MethodGet, c.prizePath, nil, &prizes); err != nil {
		return nil, fmt.Errorf("list prizes: %w", err)
	}
	return prizes, nil
}

// CreatePrize posts a new prize entry.
func (c *Client) CreatePrize(ctx context.Context, prize models.PrizeEntry) (models.PrizeEntry, error) {
	var created models.PrizeEntry
	if err := c.do(ctx, http.MethodPost, c.prizePath, prize, &created); err != nil {
		return models.PrizeEntry{}, fmt.Errorf("create prize: %w", err)
	}
	return created, nil
}
