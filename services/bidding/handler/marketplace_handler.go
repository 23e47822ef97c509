package handler

import (
	"fmt"
	"net/http"
	"time"

	bidding "mall-bidding/internal/biddingService"
	model "mall-bidding/internal/models"
	"mall-bidding/services/bidding/helpers"
	"mall-bidding/utils"

	"github.com/gin-gonic/gin"
)

type MarketplaceServiceInterface interface {
	Search(shopperID, query string, filters map[string]string) (bidding.SearchResult, error)
	PlaceBid(sessionID, agentID string, coins int, message string) (model.Bid, error)
	Leaderboard(sessionID string) ([]bidding.LeaderboardEntry, error)
	GetSession(sessionID string) (model.SearchSession, error)
	Complete(sessionID, winnerAgentID string) (model.SearchSession, error)
	Abandon(sessionID string) (model.SearchSession, error)
	GetAgent(agentID string) (model.Agent, error)
	ActiveNotifications() []bidding.NotificationView
}

type MarketplaceHandler struct {
	service MarketplaceServiceInterface
}

func NewMarketplaceHandler(service MarketplaceServiceInterface) *MarketplaceHandler {
	return &MarketplaceHandler{service: service}
}

// SearchHandler handles POST /searches
func (h *MarketplaceHandler) SearchHandler(c *gin.Context) {
	var req helpers.SearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "SearchHandler", err)
		return
	}

	result, err := h.service.Search(req.ShopperID, req.Query, req.Filters)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Error("SearchHandler: failed to run search", map[string]any{
			"shopper_id": req.ShopperID,
			"query":      req.Query,
			"error":      err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, result, "search session created")
	helpers.LogSuccess("SearchHandler", "search session created", map[string]any{
		"session_id": result.Session.SessionID,
		"query":      req.Query,
		"matches":    len(result.Matches),
	})
}

// PlaceBidHandler handles POST /bids
func (h *MarketplaceHandler) PlaceBidHandler(c *gin.Context) {
	var req helpers.PlaceBidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "PlaceBidHandler", err)
		return
	}

	bid, err := h.service.PlaceBid(req.SessionID, req.AgentID, req.Coins, req.Message)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Error("PlaceBidHandler: failed to place bid", map[string]any{
			"session_id": req.SessionID,
			"agent_id":   req.AgentID,
			"coins_bid":  req.Coins,
			"error":      err.Error(),
		})
		return
	}

	resp := helpers.BidResponse{
		BidID:     bid.BidID,
		SessionID: bid.SessionID,
		AgentID:   bid.AgentID,
		CoinsBid:  bid.CoinsBid,
		Message:   bid.Message,
		Status:    string(bid.Status),
		CreatedAt: bid.CreatedAt.UTC().Format(time.RFC3339),
	}

	utils.JSONResponse(c, http.StatusCreated, resp, "bid placed successfully")
	helpers.LogSuccess("PlaceBidHandler", "bid placed successfully", map[string]any{
		"bid_id":     bid.BidID,
		"session_id": bid.SessionID,
		"agent_id":   bid.AgentID,
		"coins_bid":  bid.CoinsBid,
	})
}

// LeaderboardHandler handles GET /sessions/:session_id/leaderboard
func (h *MarketplaceHandler) LeaderboardHandler(c *gin.Context) {
	sessionID := c.Param("session_id")
	entries, err := h.service.Leaderboard(sessionID)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("LeaderboardHandler: error building leaderboard", map[string]any{
			"session_id": sessionID,
			"error":      err.Error(),
		})
		return
	}

	if entries == nil {
		entries = []bidding.LeaderboardEntry{}
	}

	utils.JSONResponse(c, http.StatusOK, entries, "leaderboard retrieved successfully")
	helpers.LogSuccess("LeaderboardHandler", "leaderboard retrieved successfully", map[string]any{
		"session_id": sessionID,
		"count":      len(entries),
	})
}

// GetSessionHandler handles GET /sessions/:session_id
func (h *MarketplaceHandler) GetSessionHandler(c *gin.Context) {
	sessionID := c.Param("session_id")
	session, err := h.service.GetSession(sessionID)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("GetSessionHandler: error retrieving session", map[string]any{
			"session_id": sessionID,
			"error":      err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusOK, session, "session retrieved successfully")
}

// CompleteSessionHandler handles POST /sessions/:session_id/complete
func (h *MarketplaceHandler) CompleteSessionHandler(c *gin.Context) {
	sessionID := c.Param("session_id")

	var req helpers.CompleteSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "CompleteSessionHandler", err)
		return
	}

	session, err := h.service.Complete(sessionID, req.AgentID)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Error("CompleteSessionHandler: failed to complete session", map[string]any{
			"session_id": sessionID,
			"agent_id":   req.AgentID,
			"error":      err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusOK, session, "session completed successfully")
	helpers.LogSuccess("CompleteSessionHandler", "session completed successfully", map[string]any{
		"session_id": sessionID,
		"winner":     req.AgentID,
	})
}

// AbandonSessionHandler handles POST /sessions/:session_id/abandon
func (h *MarketplaceHandler) AbandonSessionHandler(c *gin.Context) {
	sessionID := c.Param("session_id")
	session, err := h.service.Abandon(sessionID)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("AbandonSessionHandler: failed to abandon session", map[string]any{
			"session_id": sessionID,
			"error":      err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusOK, session, "session abandoned")
	helpers.LogSuccess("AbandonSessionHandler", "session abandoned", map[string]any{
		"session_id": sessionID,
	})
}

// GetAgentHandler handles GET /agents/:agent_id
func (h *MarketplaceHandler) GetAgentHandler(c *gin.Context) {
	agentID := c.Param("agent_id")
	agent, err := h.service.GetAgent(agentID)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("GetAgentHandler: error retrieving agent", map[string]any{
			"agent_id": agentID,
			"error":    err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusOK, agent, "agent retrieved successfully")
}

// ActiveNotificationsHandler handles GET /notifications/active
func (h *MarketplaceHandler) ActiveNotificationsHandler(c *gin.Context) {
	views := h.service.ActiveNotifications()
	if views == nil {
		views = []bidding.NotificationView{}
	}

	utils.JSONResponse(c, http.StatusOK, views, "active notifications retrieved successfully")
	helpers.LogSuccess("ActiveNotificationsHandler", "active notifications retrieved successfully", map[string]any{
		"count": len(views),
	})
}
