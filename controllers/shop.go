package controllers

import (
	"net/http"

	"pictocat/middleware"
	"pictocat/services/economy"
	"pictocat/services/profile"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type ShopController struct {
	Economy  *economy.Service
	Profiles *profile.Service
	Log      *zap.Logger
}

type shopActionRequest struct {
	Action     string `json:"action"`
	EnvelopeID string `json:"envelopeId"`
	UpgradeID  string `json:"upgradeId"`
}

// @Summary Get shop data
// @Description Envelopes sorted by base cost and upgrades sorted by required level
// @Tags shop
// @Produce json
// @Param resource query string true "Must be 'data'"
// @Success 200 {object} models.ShopData
// @Failure 400 {object} object{error=string}
// @Router /api/shop [get]
func (sc *ShopController) GetShop(c *gin.Context) {
	if c.Query("resource") != "data" {
		invalidResource(c)
		return
	}
	data, err := sc.Economy.ShopData(c.Request.Context())
	if err != nil {
		respondError(c, sc.Log, err)
		return
	}
	c.JSON(http.StatusOK, data)
}

// @Summary Buy an envelope or an upgrade
// @Tags shop
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer JWT token"
// @Param body body shopActionRequest true "purchaseEnvelope with envelopeId, or purchaseUpgrade with upgradeId"
// @Success 200 {object} models.PurchaseResult
// @Failure 400 {object} object{error=string}
// @Failure 402 {object} object{error=string}
// @Router /api/shop [post]
// @Security ApiKeyAuth
func (sc *ShopController) PostShop(c *gin.Context) {
	var req shopActionRequest
	if !bindJSON(c, &req) {
		return
	}
	ctx := c.Request.Context()
	subject := middleware.Subject(c)

	switch req.Action {
	case "purchaseEnvelope":
		result, err := sc.Economy.Purchase(ctx, subject, req.EnvelopeID)
		if err != nil {
			respondError(c, sc.Log, err)
			return
		}
		c.JSON(http.StatusOK, result)
	case "purchaseUpgrade":
		result, err := sc.Profiles.PurchaseUpgrade(ctx, subject, req.UpgradeID)
		if err != nil {
			respondError(c, sc.Log, err)
			return
		}
		c.JSON(http.StatusOK, result)
	default:
		invalidAction(c)
	}
}
