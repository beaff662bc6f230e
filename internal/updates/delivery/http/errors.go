package http

import (
	"errors"

	"github.com/gin-gonic/gin"

	"daily-updates/internal/updates"
	"daily-updates/pkg/response"
)

// writeError translates request errors into HTTP responses. Anything other
// than a bad token is the caller's fault: missing fields or a malformed form.
func (h *handler) writeError(c *gin.Context, err error) {
	if errors.Is(err, updates.ErrUnauthorized) {
		response.Unauthorized(c)
		return
	}
	response.Error(c, err, nil)
}
