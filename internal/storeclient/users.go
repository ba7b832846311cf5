package storeclient

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"sneaker-auction/internal/biddingerrors"
	"sneaker-auction/internal/models"
)

// GetUser fetches a user, including the authoritative balance.
func (c *Client) GetUser(ctx context.Context, userID models.ID) (models.User, error) {
	var user models.User
	if err := c.do(ctx, http.MethodGet, "/user/"+url.PathEscape(userID.String()), nil, &user); err != nil {
		if IsNotFound(err) {
			return models.User{}, fmt.Errorf("get user %s: %w: %w", userID, biddingerrors.ErrUserNotFound, err)
		}
		return models.User{}, fmt.Errorf("get user %s: %w", userID, err)
	}
	return user, nil
}
