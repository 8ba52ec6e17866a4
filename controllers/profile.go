package controllers

import (
	"net/http"

	"pictocat/middleware"
	"pictocat/models/postgres"
	"pictocat/services/profile"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type ProfileController struct {
	Profiles *profile.Service
	Log      *zap.Logger
}

type saveDataRequest struct {
	Data struct {
		Phrases []postgres.Phrase `json:"phrases"`
	} `json:"data"`
}

type updateProfileRequest struct {
	Username string `json:"username"`
	Bio      string `json:"bio"`
}

type setAvatarRequest struct {
	ItemID *int `json:"itemId"`
}

// @Summary Get the caller's profile
// @Description Returns the full profile, creating it on first sight and rolling the daily missions
// @Tags profile
// @Produce json
// @Param Authorization header string true "Bearer JWT token"
// @Success 200 {object} models.UserProfile
// @Failure 401 {object} object{error=string}
// @Router /api/profile [get]
// @Security ApiKeyAuth
func (pc *ProfileController) GetProfile(c *gin.Context) {
	userProfile, err := pc.Profiles.Ensure(c.Request.Context(), middleware.Identity(c))
	if err != nil {
		respondError(c, pc.Log, err)
		return
	}
	c.JSON(http.StatusOK, userProfile)
}

// @Summary Save the caller's phrases
// @Description Replaces the phrase list and re-syncs the public feed
// @Tags profile
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer JWT token"
// @Param body body saveDataRequest true "Phrases"
// @Success 200 {object} object{message=string}
// @Failure 400 {object} object{error=string}
// @Router /api/profile [post]
// @Security ApiKeyAuth
func (pc *ProfileController) SaveData(c *gin.Context) {
	var req saveDataRequest
	if !bindJSON(c, &req) {
		return
	}
	if err := pc.Profiles.SaveData(c.Request.Context(), middleware.Subject(c), req.Data.Phrases); err != nil {
		respondError(c, pc.Log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "User data saved successfully."})
}

// @Summary Update username and bio
// @Tags profile
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer JWT token"
// @Param body body updateProfileRequest true "Profile fields"
// @Success 200 {object} object{message=string}
// @Failure 400 {object} object{error=string}
// @Failure 409 {object} object{error=string}
// @Router /api/profile [put]
// @Security ApiKeyAuth
func (pc *ProfileController) UpdateProfile(c *gin.Context) {
	var req updateProfileRequest
	if !bindJSON(c, &req) {
		return
	}
	if err := pc.Profiles.UpdateProfile(c.Request.Context(), middleware.Subject(c), req.Username, req.Bio); err != nil {
		respondError(c, pc.Log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Profile updated successfully"})
}

// @Summary Set or clear the avatar
// @Tags profile
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer JWT token"
// @Param body body setAvatarRequest true "Unlocked item id, null clears"
// @Success 200 {object} object{success=bool}
// @Failure 400 {object} object{error=string}
// @Router /api/profile/avatar [post]
// @Security ApiKeyAuth
func (pc *ProfileController) SetAvatar(c *gin.Context) {
	var req setAvatarRequest
	if !bindJSON(c, &req) {
		return
	}
	if err := pc.Profiles.SetAvatar(c.Request.Context(), middleware.Subject(c), req.ItemID); err != nil {
		respondError(c, pc.Log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
