package controllers

import (
	"net/http"

	"pictocat/middleware"
	"pictocat/services/game"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type GameController struct {
	Game *game.Service
	Log  *zap.Logger
}

type gameRequest struct {
	Action  string `json:"action"`
	Results *struct {
		CoinsEarned int `json:"coinsEarned"`
		XPEarned    int `json:"xpEarned"`
	} `json:"results"`
}

// @Summary Save minigame results
// @Description Credits coins and xp, pays the friend bonus and advances missions
// @Tags game
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer JWT token"
// @Param body body gameRequest true "saveResults with results.coinsEarned and results.xpEarned"
// @Success 200 {object} models.GameResultsResponse
// @Failure 400 {object} object{error=string}
// @Router /api/game [post]
// @Security ApiKeyAuth
func (gc *GameController) PostGame(c *gin.Context) {
	var req gameRequest
	if !bindJSON(c, &req) {
		return
	}
	if req.Action != "saveResults" {
		invalidAction(c)
		return
	}
	if req.Results == nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid game results."})
		return
	}
	result, err := gc.Game.SaveResults(c.Request.Context(), middleware.Subject(c), req.Results.CoinsEarned, req.Results.XPEarned)
	if err != nil {
		respondError(c, gc.Log, err)
		return
	}
	c.JSON(http.StatusOK, result)
}
