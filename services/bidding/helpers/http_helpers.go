package helpers

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"sneaker-auction/internal/biddingerrors"
	"sneaker-auction/internal/storeclient"
	"sneaker-auction/utils"

	"github.com/gin-gonic/gin"
)

// HandleBindError sends a standardized JSON error for binding failures
func HandleBindError(c *gin.Context, handlerName string, err error) {
	wrappedErr := fmt.Errorf("invalid request payload: %w", err)
	utils.JSONError(c, http.StatusBadRequest, wrappedErr, "invalid request payload")
	utils.Warn(handlerName+": binding error", map[string]any{"error": err.Error()})
}

// MapErrorToHTTP maps domain/service errors to HTTP status code and message
func MapErrorToHTTP(err error) (int, string) {
	var apiErr *storeclient.APIError

	switch {
	// a failed write may wrap the store's own not-found; the write failure wins
	case errors.Is(err, biddingerrors.ErrPersistenceFailed):
		return http.StatusBadGateway, "failed to save bid"
	case errors.Is(err, biddingerrors.ErrLoadFailed):
		return http.StatusBadGateway, "failed to load lots"
	case errors.Is(err, biddingerrors.ErrCreationFailed):
		return http.StatusBadGateway, "failed to create lot"
	case errors.Is(err, biddingerrors.ErrCreationDisabled):
		return http.StatusServiceUnavailable, "lot creation disabled"
	case errors.Is(err, biddingerrors.ErrInvalidLot):
		return http.StatusBadRequest, "invalid lot details"
	case errors.Is(err, biddingerrors.ErrLotNotFound):
		return http.StatusNotFound, "lot not found"
	case errors.Is(err, biddingerrors.ErrNoBids):
		return http.StatusNotFound, "no winning bid found"
	case errors.Is(err, biddingerrors.ErrAuctionClosed):
		return http.StatusConflict, "auction closed"
	case errors.Is(err, biddingerrors.ErrInvalidAmount):
		return http.StatusBadRequest, "invalid bid amount"
	case errors.Is(err, biddingerrors.ErrBidTooLow):
		return http.StatusConflict, "bid amount too low"
	case errors.Is(err, biddingerrors.ErrNotAuthenticated):
		return http.StatusUnauthorized, "not authenticated"
	case errors.Is(err, biddingerrors.ErrInsufficientFunds):
		return http.StatusPaymentRequired, "insufficient funds"
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout, "store request timed out"
	case errors.As(err, &apiErr):
		return http.StatusBadGateway, "store request failed"
	default:
		return http.StatusInternalServerError, "internal server error"
	}
}

// ErrorDetails returns the extra response fields carried by a bid rejection
func ErrorDetails(err error) map[string]any {
	var tooLow *biddingerrors.BidTooLowError
	if errors.As(err, &tooLow) {
		return map[string]any{
			"current": tooLow.Current,
			"minimum": tooLow.Minimum,
		}
	}

	var funds *biddingerrors.InsufficientFundsError
	if errors.As(err, &funds) {
		return map[string]any{
			"balance":   funds.Balance,
			"required":  funds.Required,
			"shortfall": funds.Shortfall(),
		}
	}
	return nil
}

// RespondError maps err and writes the error envelope
func RespondError(c *gin.Context, err error) int {
	status, message := MapErrorToHTTP(err)
	utils.JSONErrorWithDetails(c, status, fmt.Errorf("%s: %w", message, err), message, ErrorDetails(err))
	return status
}

// LogSuccess is a small helper to standardize logging of successful operations
func LogSuccess(handlerName, message string, ctx map[string]any) {
	utils.Info(handlerName+": "+message, ctx)
}
