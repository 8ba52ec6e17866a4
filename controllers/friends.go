package controllers

import (
	"net/http"

	"pictocat/middleware"
	"pictocat/services/community"
	"pictocat/services/friendship"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type FriendsController struct {
	Friendship *friendship.Service
	Community  *community.Service
	Log        *zap.Logger
}

type friendsPostRequest struct {
	Action         string `json:"action"`
	TargetUserID   string `json:"targetUserId"`
	PublicPhraseID string `json:"publicPhraseId"`
}

type friendRequestResponse struct {
	TargetUserID string `json:"targetUserId"`
	Action       string `json:"action"`
}

type friendshipMissionRequest struct {
	Action       string `json:"action"`
	FriendshipID string `json:"friendshipId"`
	MissionID    string `json:"missionId"`
}

// @Summary List friends and friend requests
// @Tags friends
// @Produce json
// @Param Authorization header string true "Bearer JWT token"
// @Success 200 {object} models.FriendData
// @Router /api/friends [get]
// @Security ApiKeyAuth
func (fc *FriendsController) ListFriends(c *gin.Context) {
	data, err := fc.Friendship.List(c.Request.Context(), middleware.Subject(c))
	if err != nil {
		respondError(c, fc.Log, err)
		return
	}
	c.JSON(http.StatusOK, data)
}

// @Summary Send a friend request or toggle a like
// @Description action=add needs targetUserId; action=like needs publicPhraseId
// @Tags friends
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer JWT token"
// @Param body body friendsPostRequest true "Action"
// @Success 200 {object} object{success=bool}
// @Failure 400 {object} object{error=string}
// @Failure 404 {object} object{error=string}
// @Failure 409 {object} object{error=string}
// @Router /api/friends [post]
// @Security ApiKeyAuth
func (fc *FriendsController) PostFriends(c *gin.Context) {
	var req friendsPostRequest
	if !bindJSON(c, &req) {
		return
	}
	ctx := c.Request.Context()
	subject := middleware.Subject(c)

	switch req.Action {
	case "add":
		accepted, err := fc.Friendship.SendRequest(ctx, subject, req.TargetUserID)
		if err != nil {
			respondError(c, fc.Log, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "accepted": accepted})
	case "like":
		if req.PublicPhraseID == "" {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "publicPhraseId is required."})
			return
		}
		result, err := fc.Community.ToggleLike(ctx, subject, req.PublicPhraseID)
		if err != nil {
			respondError(c, fc.Log, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "liked": result.Liked, "likeCount": result.LikeCount})
	default:
		invalidAction(c)
	}
}

// @Summary Accept or reject a friend request
// @Tags friends
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer JWT token"
// @Param body body friendRequestResponse true "accept | reject"
// @Success 200 {object} object{success=bool}
// @Failure 400 {object} object{error=string}
// @Failure 404 {object} object{error=string}
// @Router /api/friends [put]
// @Security ApiKeyAuth
func (fc *FriendsController) RespondRequest(c *gin.Context) {
	var req friendRequestResponse
	if !bindJSON(c, &req) {
		return
	}
	if req.TargetUserID == "" || (req.Action != "accept" && req.Action != "reject") {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid data."})
		return
	}
	err := fc.Friendship.Respond(c.Request.Context(), middleware.Subject(c), req.TargetUserID, req.Action == "accept")
	if err != nil {
		respondError(c, fc.Log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// @Summary Remove a friend
// @Tags friends
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer JWT token"
// @Param body body object{targetUserId=string} true "Friend to remove"
// @Success 200 {object} object{success=bool}
// @Failure 404 {object} object{error=string}
// @Router /api/friends [delete]
// @Security ApiKeyAuth
func (fc *FriendsController) RemoveFriend(c *gin.Context) {
	var req struct {
		TargetUserID string `json:"targetUserId"`
	}
	if !bindJSON(c, &req) {
		return
	}
	if err := fc.Friendship.Remove(c.Request.Context(), middleware.Subject(c), req.TargetUserID); err != nil {
		respondError(c, fc.Log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// @Summary List friendship mission templates
// @Tags friends
// @Produce json
// @Param Authorization header string true "Bearer JWT token"
// @Success 200 {array} game_constants.FriendshipMissionTemplate
// @Router /api/friends/missions [get]
// @Security ApiKeyAuth
func (fc *FriendsController) ListMissions(c *gin.Context) {
	c.JSON(http.StatusOK, friendship.MissionTemplates())
}

// @Summary Start or claim a friendship mission
// @Description action=start needs friendshipId and missionId; action=claim needs friendshipId
// @Tags friends
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer JWT token"
// @Param body body friendshipMissionRequest true "Action"
// @Success 200 {object} object
// @Failure 400 {object} object{error=string}
// @Failure 404 {object} object{error=string}
// @Failure 409 {object} object{error=string}
// @Router /api/friends/missions [post]
// @Security ApiKeyAuth
func (fc *FriendsController) PostMission(c *gin.Context) {
	var req friendshipMissionRequest
	if !bindJSON(c, &req) {
		return
	}
	ctx := c.Request.Context()
	subject := middleware.Subject(c)

	var (
		data interface{}
		err  error
	)
	switch req.Action {
	case "start":
		data, err = fc.Friendship.StartMission(ctx, subject, req.FriendshipID, req.MissionID)
	case "claim":
		data, err = fc.Friendship.ClaimReward(ctx, subject, req.FriendshipID)
	default:
		invalidAction(c)
		return
	}
	if err != nil {
		respondError(c, fc.Log, err)
		return
	}
	c.JSON(http.StatusOK, data)
}
