package controllers

import (
	"net/http"

	"pictocat/middleware"
	"pictocat/services/community"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type CommunityController struct {
	Community *community.Service
	Log       *zap.Logger
}

// @Summary Community resources
// @Description resource=catalog is public; profile (username), search (query) and feed need a token
// @Tags community
// @Produce json
// @Param Authorization header string false "Bearer JWT token"
// @Param resource query string true "catalog | profile | search | feed"
// @Param username query string false "Username for resource=profile"
// @Param query query string false "Prefix for resource=search"
// @Success 200 {object} object
// @Failure 400 {object} object{error=string}
// @Failure 401 {object} object{error=string}
// @Failure 404 {object} object{error=string}
// @Router /api/community [get]
func (cc *CommunityController) GetCommunity(c *gin.Context) {
	ctx := c.Request.Context()
	resource := c.Query("resource")

	if resource == "catalog" {
		items, err := cc.Community.Catalog(ctx)
		if err != nil {
			respondError(c, cc.Log, err)
			return
		}
		c.JSON(http.StatusOK, items)
		return
	}

	viewer := middleware.Subject(c)
	if viewer == "" {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthenticated"})
		return
	}

	var (
		data interface{}
		err  error
	)
	switch resource {
	case "profile":
		username := c.Query("username")
		if username == "" {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "username is required"})
			return
		}
		data, err = cc.Community.PublicProfile(ctx, viewer, username)
	case "search":
		data, err = cc.Community.Search(ctx, c.Query("query"))
	case "feed":
		data, err = cc.Community.Feed(ctx, viewer, 0)
	default:
		invalidResource(c)
		return
	}
	if err != nil {
		respondError(c, cc.Log, err)
		return
	}
	c.JSON(http.StatusOK, data)
}
