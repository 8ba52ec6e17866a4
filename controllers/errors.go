package controllers

import (
	"errors"
	"net/http"

	"pictocat/services/apperr"
	"pictocat/services/storage"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// respondError writes {"error": msg} with the status of err. Internal failures are logged
// and hidden from the client.
func respondError(c *gin.Context, log *zap.Logger, err error) {
	status := apperr.Status(err)
	msg := err.Error()
	switch {
	case errors.Is(err, storage.ErrNotConfigured):
		status = http.StatusServiceUnavailable
	case status == http.StatusInternalServerError:
		log.Error("request failed",
			zap.String("method", c.Request.Method), zap.String("path", c.Request.URL.Path), zap.Error(err))
		msg = "Internal Server Error"
	}
	c.AbortWithStatusJSON(status, gin.H{"error": msg})
}

// bindJSON decodes the body into req, answering 400 on failure.
func bindJSON(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return false
	}
	return true
}

func invalidAction(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid action specified."})
}

func invalidResource(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid resource requested."})
}
