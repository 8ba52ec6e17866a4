package controllers

import (
	"net/http"

	"pictocat/middleware"
	"pictocat/services/trading"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type TradesController struct {
	Trading *trading.Service
	Log     *zap.Logger
}

type createTradeRequest struct {
	ToUserID          string `json:"toUserId"`
	OfferedImageIDs   []int  `json:"offeredImageIds"`
	RequestedImageIDs []int  `json:"requestedImageIds"`
}

type respondTradeRequest struct {
	TradeID string `json:"tradeId"`
	Action  string `json:"action"`
}

// @Summary List pending trades
// @Description Pending trades sent or received by the caller, newest first. Resets the unseen counter
// @Tags trades
// @Produce json
// @Param Authorization header string true "Bearer JWT token"
// @Success 200 {array} models.TradeOffer
// @Router /api/trades [get]
// @Security ApiKeyAuth
func (tc *TradesController) ListTrades(c *gin.Context) {
	offers, err := tc.Trading.ListPending(c.Request.Context(), middleware.Subject(c))
	if err != nil {
		respondError(c, tc.Log, err)
		return
	}
	c.JSON(http.StatusOK, offers)
}

// @Summary Propose a trade
// @Tags trades
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer JWT token"
// @Param body body createTradeRequest true "Trade"
// @Success 200 {object} object{success=bool,tradeId=string}
// @Failure 400 {object} object{error=string}
// @Failure 403 {object} object{error=string}
// @Failure 404 {object} object{error=string}
// @Router /api/trades [post]
// @Security ApiKeyAuth
func (tc *TradesController) CreateTrade(c *gin.Context) {
	var req createTradeRequest
	if !bindJSON(c, &req) {
		return
	}
	trade, err := tc.Trading.Create(c.Request.Context(), middleware.Subject(c), req.ToUserID, req.OfferedImageIDs, req.RequestedImageIDs)
	if err != nil {
		respondError(c, tc.Log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "tradeId": trade.ID})
}

// @Summary Accept or reject a received trade
// @Tags trades
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer JWT token"
// @Param body body respondTradeRequest true "accept | reject"
// @Success 200 {object} object{success=bool,status=string}
// @Failure 404 {object} object{error=string}
// @Failure 409 {object} object{error=string}
// @Router /api/trades [put]
// @Security ApiKeyAuth
func (tc *TradesController) RespondTrade(c *gin.Context) {
	var req respondTradeRequest
	if !bindJSON(c, &req) {
		return
	}
	if req.TradeID == "" || (req.Action != "accept" && req.Action != "reject") {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid data."})
		return
	}
	trade, err := tc.Trading.Respond(c.Request.Context(), middleware.Subject(c), req.TradeID, req.Action == "accept")
	if err != nil {
		respondError(c, tc.Log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "status": trade.Status})
}

// @Summary Cancel a proposed trade
// @Tags trades
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer JWT token"
// @Param body body object{tradeId=string} true "Trade to cancel"
// @Success 200 {object} object{success=bool}
// @Failure 404 {object} object{error=string}
// @Router /api/trades [delete]
// @Security ApiKeyAuth
func (tc *TradesController) CancelTrade(c *gin.Context) {
	var req struct {
		TradeID string `json:"tradeId"`
	}
	if !bindJSON(c, &req) {
		return
	}
	if err := tc.Trading.Cancel(c.Request.Context(), middleware.Subject(c), req.TradeID); err != nil {
		respondError(c, tc.Log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
