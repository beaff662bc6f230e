package test

import (
	"daily-updates/internal/updates/usecase"
	pkgLog "daily-updates/pkg/log"

	"github.com/gin-gonic/gin"
)

type handler struct {
	l       pkgLog.Logger
	iconURL string
}

// HandleFormat renders an update without posting it
// @Summary Preview an update
// @Description Returns the webhook message /updates would send, plus the lines it would drop. Nothing is posted.
// @Tags test
// @Accept json
// @Produce json
// @Param request body FormatRequest true "Update to format"
// @Success 200 {object} FormatResponse
// @Router /test/format [post]
func (h *handler) HandleFormat(c *gin.Context) {
	ctx := c.Request.Context()

	var req FormatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"error": "Invalid request", "details": err.Error()})
		return
	}

	msg := usecase.BuildMessage(req.UserName, req.Text)
	if h.iconURL != "" {
		msg.IconURL = h.iconURL
	}
	msg.Channel = usecase.NormalizeChannel(req.ChannelName)

	dropped := usecase.Classify(req.Text).Other

	h.l.Infof(ctx, "internal.test.HandleFormat: user=%s attachments=%d dropped=%d",
		req.UserName, len(msg.Attachments), len(dropped))

	c.JSON(200, FormatResponse{
		Message: msg,
		Dropped: dropped,
	})
}
