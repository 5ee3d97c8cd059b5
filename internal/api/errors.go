package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/abhisek/budai/internal/app"
)

const internalMessage = "服务器繁忙，请稍后重试"

// fail writes err as {"error": message} with the matching status. Causes
// of 500 responses are logged, never returned.
func (h *handler) fail(c *gin.Context, err error) {
	var ve *app.ValidationError
	switch {
	case errors.As(err, &ve):
		c.JSON(http.StatusBadRequest, gin.H{"error": ve.Message})
	case errors.Is(err, app.ErrUnauthorized):
		c.JSON(http.StatusUnauthorized, gin.H{"error": app.Message(err)})
	case errors.Is(err, app.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": app.Message(err)})
	default:
		h.logger.Error("request failed",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": internalMessage})
	}
}

// bind decodes the JSON body into req, writing a 400 on failure.
func bind(c *gin.Context, req any) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": bindMessage(err)})
		return false
	}
	return true
}
