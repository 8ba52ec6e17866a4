package controllers

import (
	"net/http"
	"strconv"

	"pictocat/models/postgres"
	"pictocat/services/admin"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type AdminController struct {
	Admin *admin.Service
	Log   *zap.Logger
}

type adminActionRequest struct {
	Action         string                    `json:"action"`
	UserID         string                    `json:"userId"`
	Verified       bool                      `json:"verified"`
	Role           string                    `json:"role"`
	Amount         int                       `json:"amount"`
	PublicPhraseID string                    `json:"publicPhraseId"`
	TradeID        string                    `json:"tradeId"`
	Item           *postgres.CatalogItem     `json:"item"`
	Envelope       *postgres.Envelope        `json:"envelope"`
	Upgrade        *postgres.Upgrade         `json:"upgrade"`
	Settings       *postgres.EconomySettings `json:"settings"`
}

// @Summary Admin listings
// @Tags admin
// @Produce json
// @Param Authorization header string true "Bearer JWT token"
// @Param resource query string true "users | phrases | catalog | envelopes | upgrades | trades | settings | themes"
// @Param status query string false "Trade status filter, only for resource=trades"
// @Success 200 {object} object
// @Failure 400 {object} object{error=string}
// @Failure 403 {object} object{error=string}
// @Router /api/admin [get]
// @Security ApiKeyAuth
func (ac *AdminController) GetAdmin(c *gin.Context) {
	ctx := c.Request.Context()
	var (
		data interface{}
		err  error
	)
	switch c.Query("resource") {
	case "users":
		data, err = ac.Admin.ListUsers(ctx)
	case "phrases":
		data, err = ac.Admin.ListPhrases(ctx)
	case "catalog":
		data, err = ac.Admin.ListCatalog(ctx)
	case "envelopes":
		data, err = ac.Admin.ListEnvelopes(ctx)
	case "upgrades":
		data, err = ac.Admin.ListUpgrades(ctx)
	case "trades":
		data, err = ac.Admin.ListTrades(ctx, c.Query("status"))
	case "settings":
		data, err = ac.Admin.Settings(ctx)
	case "themes":
		data, err = ac.Admin.Themes(ctx)
	default:
		invalidResource(c)
		return
	}
	if err != nil {
		respondError(c, ac.Log, err)
		return
	}
	c.JSON(http.StatusOK, data)
}

// @Summary Admin actions
// @Description setVerified | setRole | grantCoins | censorPhrase | addCatalogItem | saveEnvelope | saveUpgrade | cancelTrade | saveSettings
// @Tags admin
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer JWT token"
// @Param body body adminActionRequest true "Action and its arguments"
// @Success 200 {object} object
// @Failure 400 {object} object{error=string}
// @Failure 403 {object} object{error=string}
// @Failure 404 {object} object{error=string}
// @Router /api/admin [post]
// @Security ApiKeyAuth
func (ac *AdminController) PostAdmin(c *gin.Context) {
	var req adminActionRequest
	if !bindJSON(c, &req) {
		return
	}
	ctx := c.Request.Context()
	var (
		data interface{} = gin.H{"success": true}
		err  error
	)

	switch req.Action {
	case "setVerified":
		err = ac.Admin.SetVerified(ctx, req.UserID, req.Verified)
	case "setRole":
		err = ac.Admin.SetRole(ctx, req.UserID, req.Role)
	case "grantCoins":
		var coins int
		if coins, err = ac.Admin.GrantCoins(ctx, req.UserID, req.Amount); err == nil {
			data = gin.H{"success": true, "coins": coins}
		}
	case "censorPhrase":
		err = ac.Admin.CensorPhrase(ctx, req.PublicPhraseID)
	case "cancelTrade":
		err = ac.Admin.CancelTrade(ctx, req.TradeID)
	case "addCatalogItem":
		if req.Item == nil {
			missingPayload(c, "item")
			return
		}
		data, err = ac.Admin.AddCatalogItem(ctx, *req.Item)
	case "saveEnvelope":
		if req.Envelope == nil {
			missingPayload(c, "envelope")
			return
		}
		data, err = ac.Admin.SaveEnvelope(ctx, *req.Envelope)
	case "saveUpgrade":
		if req.Upgrade == nil {
			missingPayload(c, "upgrade")
			return
		}
		data, err = ac.Admin.SaveUpgrade(ctx, *req.Upgrade)
	case "saveSettings":
		if req.Settings == nil {
			missingPayload(c, "settings")
			return
		}
		data, err = ac.Admin.UpdateSettings(ctx, *req.Settings)
	default:
		invalidAction(c)
		return
	}
	if err != nil {
		respondError(c, ac.Log, err)
		return
	}
	c.JSON(http.StatusOK, data)
}

// @Summary Upload a catalog image
// @Description Stores the file in object storage and adds it to the catalog
// @Tags admin
// @Accept multipart/form-data
// @Produce json
// @Param Authorization header string true "Bearer JWT token"
// @Param file formData file true "Image"
// @Param theme formData string true "Theme"
// @Param rarity formData string false "common | rare | epic | legendary"
// @Param isShiny formData bool false "Shiny variant"
// @Success 201 {object} postgres.CatalogItem
// @Failure 400 {object} object{error=string}
// @Failure 503 {object} object{error=string}
// @Router /api/admin/catalog/upload [post]
// @Security ApiKeyAuth
func (ac *AdminController) UploadCatalogItem(c *gin.Context) {
	header, err := c.FormFile("file")
	if err != nil {
		missingPayload(c, "file")
		return
	}
	file, err := header.Open()
	if err != nil {
		respondError(c, ac.Log, err)
		return
	}
	defer file.Close()

	shiny, _ := strconv.ParseBool(c.PostForm("isShiny"))
	item := postgres.CatalogItem{
		Theme:   c.PostForm("theme"),
		Rarity:  c.PostForm("rarity"),
		IsShiny: shiny,
	}
	saved, err := ac.Admin.UploadCatalogItem(c.Request.Context(), item, header.Filename, header.Header.Get("Content-Type"), file)
	if err != nil {
		respondError(c, ac.Log, err)
		return
	}
	c.JSON(http.StatusCreated, saved)
}

// @Summary Update a catalog item
// @Tags admin
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer JWT token"
// @Param id path int true "Catalog item id"
// @Param body body postgres.CatalogItem true "New values"
// @Success 200 {object} postgres.CatalogItem
// @Failure 404 {object} object{error=string}
// @Router /api/admin/catalog/{id} [put]
// @Security ApiKeyAuth
func (ac *AdminController) UpdateCatalogItem(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var item postgres.CatalogItem
	if !bindJSON(c, &item) {
		return
	}
	saved, err := ac.Admin.UpdateCatalogItem(c.Request.Context(), id, item)
	if err != nil {
		respondError(c, ac.Log, err)
		return
	}
	c.JSON(http.StatusOK, saved)
}

// @Summary Delete a catalog item
// @Description Refused with 409 while any player owns the item
// @Tags admin
// @Produce json
// @Param Authorization header string true "Bearer JWT token"
// @Param id path int true "Catalog item id"
// @Success 200 {object} object{success=bool}
// @Failure 404 {object} object{error=string}
// @Failure 409 {object} object{error=string}
// @Router /api/admin/catalog/{id} [delete]
// @Security ApiKeyAuth
func (ac *AdminController) DeleteCatalogItem(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := ac.Admin.DeleteCatalogItem(c.Request.Context(), id); err != nil {
		respondError(c, ac.Log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// @Summary Delete an envelope
// @Tags admin
// @Produce json
// @Param Authorization header string true "Bearer JWT token"
// @Param id path string true "Envelope id"
// @Success 200 {object} object{success=bool}
// @Failure 404 {object} object{error=string}
// @Router /api/admin/envelopes/{id} [delete]
// @Security ApiKeyAuth
func (ac *AdminController) DeleteEnvelope(c *gin.Context) {
	if err := ac.Admin.DeleteEnvelope(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, ac.Log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// @Summary Delete an upgrade
// @Tags admin
// @Produce json
// @Param Authorization header string true "Bearer JWT token"
// @Param id path string true "Upgrade id"
// @Success 200 {object} object{success=bool}
// @Failure 404 {object} object{error=string}
// @Router /api/admin/upgrades/{id} [delete]
// @Security ApiKeyAuth
func (ac *AdminController) DeleteUpgrade(c *gin.Context) {
	if err := ac.Admin.DeleteUpgrade(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, ac.Log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func pathID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid id"})
		return 0, false
	}
	return id, true
}

func missingPayload(c *gin.Context, field string) {
	c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Missing " + field})
}
