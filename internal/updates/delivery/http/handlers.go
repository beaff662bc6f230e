package http

import (
	"errors"

	"github.com/gin-gonic/gin"

	"daily-updates/internal/updates"
	"daily-updates/pkg/response"
)

// PostUpdate handles the /updates slash command.
// @Summary Relay a daily update
// @Description Formats "t:", "y:" and "b:" lines into Today, Yesterday and Blockers sections and posts them to the configured webhook. Answers 200 once the request is valid, whatever the webhook returns.
// @Tags updates
// @Accept x-www-form-urlencoded
// @Param user_name formData string true "Slack user name"
// @Param text formData string true "Update lines"
// @Param channel_name formData string false "Target channel"
// @Param token formData string false "Slash command token"
// @Success 200 "Accepted"
// @Failure 400 {object} response.Resp
// @Failure 401 {object} response.Resp
// @Router /updates [post]
func (h *handler) PostUpdate(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processPostReq(c)
	if err != nil {
		h.l.Warnf(ctx, "internal.updates.delivery.http.PostUpdate: rejected: %v", err)
		h.writeError(c, err)
		return
	}

	out, err := h.uc.Post(ctx, req.toInput())
	if err != nil {
		if errors.Is(err, updates.ErrDelivery) {
			// The caller is not told about delivery failures.
			h.l.Warnf(ctx, "internal.updates.delivery.http.PostUpdate: user=%s not delivered: %v", *req.UserName, err)
		} else {
			h.l.Errorf(ctx, "internal.updates.delivery.http.PostUpdate: user=%s: %v", *req.UserName, err)
		}
		response.Empty(c)
		return
	}

	h.l.Debugf(ctx, "internal.updates.delivery.http.PostUpdate: user=%s attachments=%d dropped=%d",
		*req.UserName, out.Attachments, out.Dropped)
	response.Empty(c)
}
