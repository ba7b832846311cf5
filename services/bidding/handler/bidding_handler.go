package handler

import (
	"context"
	"errors"
	"io"
	"net/http"
	"time"

	bidding "sneaker-auction/internal/biddingService"
	"sneaker-auction/internal/biddingerrors"
	model "sneaker-auction/internal/models"
	"sneaker-auction/internal/settlement"
	"sneaker-auction/services/bidding/helpers"
	"sneaker-auction/utils"

	"github.com/gin-gonic/gin"
)

//go:generate mockgen -source=bidding_handler.go -destination=mock_service.go -package=handler

// UserIDHeader carries the bidder's id when the body does not
const UserIDHeader = "X-User-ID"

type AuctionServiceInterface interface {
	ListLots(ctx context.Context) ([]model.Lot, error)
	GetLot(ctx context.Context, lotID model.ID) (model.Lot, error)
	GetBidsForLot(ctx context.Context, lotID model.ID) ([]model.Bid, error)
	GetWinningBid(ctx context.Context, lotID model.ID) (model.Bid, error)
	Bid(ctx context.Context, lotID, userID model.ID, rawAmount string) (model.Lot, error)
	CreateLot(ctx context.Context, title, imageURL, rawStartPrice string) (model.Lot, error)
}

type SweepTrigger interface {
	SweepOnce(ctx context.Context) (settlement.Report, error)
}

type LotEventSource interface {
	Subscribe(buffer int) (<-chan bidding.LotsChangedEvent, func())
}

type BiddingHandler struct {
	service AuctionServiceInterface
	events  LotEventSource
	sweeper SweepTrigger
	now     func() time.Time
}

// NewBiddingHandler creates a handler; events and sweeper may be nil, which disables their routes
func NewBiddingHandler(service AuctionServiceInterface, events LotEventSource, sweeper SweepTrigger) *BiddingHandler {
	return &BiddingHandler{
		service: service,
		events:  events,
		sweeper: sweeper,
		now:     time.Now,
	}
}

// ListLotsHandler handles GET /lots
func (h *BiddingHandler) ListLotsHandler(c *gin.Context) {
	lots, err := h.service.ListLots(c.Request.Context())
	if err != nil {
		helpers.RespondError(c, err)
		utils.Warn("ListLotsHandler: error listing lots", map[string]any{"error": err.Error()})
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.NewLotResponses(lots, h.now()), "lots retrieved successfully")
	helpers.LogSuccess("ListLotsHandler", "lots retrieved successfully", map[string]any{"count": len(lots)})
}

// CreateLotHandler handles POST /lots
func (h *BiddingHandler) CreateLotHandler(c *gin.Context) {
	var req helpers.CreateLotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "CreateLotHandler", err)
		return
	}

	lot, err := h.service.CreateLot(c.Request.Context(), req.Title, req.ImageURL, string(req.StartPrice))
	if err != nil {
		helpers.RespondError(c, err)
		utils.Warn("CreateLotHandler: failed to create lot", map[string]any{"title": req.Title, "error": err.Error()})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, helpers.NewLotResponse(lot, h.now()), "lot created successfully")
	helpers.LogSuccess("CreateLotHandler", "lot created successfully", map[string]any{
		"lot_id":   lot.ID,
		"end_time": lot.EndTime.Format(time.RFC3339),
	})
}

// GetLotHandler handles GET /lots/:lot_id
func (h *BiddingHandler) GetLotHandler(c *gin.Context) {
	lotID := model.ID(c.Param("lot_id"))
	lot, err := h.service.GetLot(c.Request.Context(), lotID)
	if err != nil {
		helpers.RespondError(c, err)
		utils.Warn("GetLotHandler: error retrieving lot", map[string]any{"lot_id": lotID, "error": err.Error()})
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.NewLotResponse(lot, h.now()), "lot retrieved successfully")
}

// GetBidsByLotHandler handles GET /lots/:lot_id/bids
func (h *BiddingHandler) GetBidsByLotHandler(c *gin.Context) {
	lotID := model.ID(c.Param("lot_id"))
	bids, err := h.service.GetBidsForLot(c.Request.Context(), lotID)
	if err != nil {
		helpers.RespondError(c, err)
		utils.Warn("GetBidsByLotHandler: error retrieving bids", map[string]any{"lot_id": lotID, "error": err.Error()})
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.NewBidResponses(bids), "bids retrieved successfully")
	helpers.LogSuccess("GetBidsByLotHandler", "bids retrieved successfully", map[string]any{
		"lot_id": lotID,
		"count":  len(bids),
	})
}

// GetWinningBidHandler handles GET /lots/:lot_id/winning
func (h *BiddingHandler) GetWinningBidHandler(c *gin.Context) {
	lotID := model.ID(c.Param("lot_id"))
	bid, err := h.service.GetWinningBid(c.Request.Context(), lotID)
	if err != nil {
		helpers.RespondError(c, err)
		if errors.Is(err, biddingerrors.ErrNoBids) {
			utils.Info("GetWinningBidHandler: no winning bid found", map[string]any{"lot_id": lotID})
			return
		}
		utils.Warn("GetWinningBidHandler: winning bid error", map[string]any{"lot_id": lotID, "error": err.Error()})
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.NewBidResponse(bid), "winning bid retrieved successfully")
}

// PlaceBidHandler handles POST /lots/:lot_id/bids
func (h *BiddingHandler) PlaceBidHandler(c *gin.Context) {
	lotID := model.ID(c.Param("lot_id"))

	var req helpers.PlaceBidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "PlaceBidHandler", err)
		return
	}
	if req.UserID.IsZero() {
		req.UserID = model.ID(c.GetHeader(UserIDHeader))
	}

	lot, err := h.service.Bid(c.Request.Context(), lotID, req.UserID, string(req.Amount))
	if err != nil {
		status := helpers.RespondError(c, err)
		fields := map[string]any{
			"lot_id":  lotID,
			"user_id": req.UserID,
			"amount":  string(req.Amount),
			"error":   err.Error(),
		}
		if status >= http.StatusInternalServerError {
			utils.Error("PlaceBidHandler: failed to place bid", fields)
		} else {
			utils.Warn("PlaceBidHandler: bid rejected", fields)
		}
		return
	}

	utils.JSONResponse(c, http.StatusCreated, helpers.NewLotResponse(lot, h.now()), "bid placed successfully")
	helpers.LogSuccess("PlaceBidHandler", "bid placed successfully", map[string]any{
		"lot_id":  lot.ID,
		"user_id": req.UserID,
		"amount":  lot.CurrentPrice.String(),
	})
}

// LotEventsHandler handles GET /lots/events as a server-sent event stream
func (h *BiddingHandler) LotEventsHandler(c *gin.Context) {
	if h.events == nil {
		utils.JSONError(c, http.StatusServiceUnavailable, errors.New("lot events disabled"), "lot events disabled")
		return
	}

	events, cancel := h.events.Subscribe(16)
	defer cancel()

	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")
	c.SSEvent("ready", gin.H{"at": h.now().UTC().Format(time.RFC3339)})
	c.Writer.Flush()

	ctx := c.Request.Context()
	c.Stream(func(w io.Writer) bool {
		select {
		case <-ctx.Done():
			return false
		case ev, ok := <-events:
			if !ok {
				return false
			}
			c.SSEvent("lots_changed", helpers.LotEventResponse{
				LotID: ev.LotID,
				Lot:   helpers.NewLotResponse(ev.Lot, h.now()),
				At:    ev.At.UTC().Format(time.RFC3339),
			})
			return true
		}
	})
}

// SweepHandler handles POST /settlement/sweep
func (h *BiddingHandler) SweepHandler(c *gin.Context) {
	if h.sweeper == nil {
		utils.JSONError(c, http.StatusServiceUnavailable, errors.New("settlement disabled"), "settlement disabled")
		return
	}

	report, err := h.sweeper.SweepOnce(c.Request.Context())
	if err != nil {
		helpers.RespondError(c, err)
		utils.Warn("SweepHandler: sweep failed", map[string]any{"error": err.Error()})
		return
	}

	utils.JSONResponse(c, http.StatusOK, report, "sweep completed")
	helpers.LogSuccess("SweepHandler", "sweep completed", map[string]any{
		"lots":    report.Lots,
		"settled": report.Settled,
		"failed":  report.Failed,
	})
}
