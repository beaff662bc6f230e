package http

import (
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

// processPostReq binds slash command fields from the form body or the query
// string, checks the token and then the required fields.
func (h *handler) processPostReq(c *gin.Context) (postReq, error) {
	var req postReq
	if err := c.ShouldBindWith(&req, binding.Form); err != nil {
		return req, err
	}
	if err := h.security.ValidateToken(req.Token); err != nil {
		return req, err
	}
	return req, req.validate()
}
