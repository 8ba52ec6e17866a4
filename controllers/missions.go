package controllers

import (
	"net/http"

	"pictocat/middleware"
	"pictocat/models"
	"pictocat/services/assistant"
	"pictocat/services/missions"
	"pictocat/services/profile"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type MissionsController struct {
	Missions  *missions.Service
	Profiles  *profile.Service
	Assistant *assistant.Service
	Log       *zap.Logger
}

type missionsRequest struct {
	Action    string               `json:"action"`
	MissionID string               `json:"missionId"`
	History   []models.ChatMessage `json:"history"`
}

// @Summary Claim a daily mission or chat with Picto
// @Description action=claimReward with missionId returns the updated profile; action=chat with history returns the reply
// @Tags missions
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer JWT token"
// @Param body body missionsRequest true "Action"
// @Success 200 {object} object
// @Failure 400 {object} object{error=string}
// @Router /api/missions [post]
// @Security ApiKeyAuth
func (mc *MissionsController) PostMissions(c *gin.Context) {
	var req missionsRequest
	if !bindJSON(c, &req) {
		return
	}
	ctx := c.Request.Context()
	subject := middleware.Subject(c)

	switch req.Action {
	case "claimReward":
		if _, err := mc.Missions.Claim(ctx, subject, req.MissionID); err != nil {
			respondError(c, mc.Log, err)
			return
		}
		updated, err := mc.Profiles.Profile(ctx, subject)
		if err != nil {
			respondError(c, mc.Log, err)
			return
		}
		c.JSON(http.StatusOK, updated)
	case "chat":
		reply, err := mc.Assistant.Reply(ctx, subject, req.History)
		if err != nil {
			respondError(c, mc.Log, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"reply": reply})
	default:
		invalidAction(c)
	}
}
