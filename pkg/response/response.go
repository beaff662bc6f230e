package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Empty sends 200 with no body. Slack treats an empty body as a silent ack.
func Empty(c *gin.Context) {
	c.Status(http.StatusOK)
}

// Error sends 400 with the error message.
func Error(c *gin.Context, err error, data map[string]interface{}) {
	if data == nil {
		data = make(map[string]interface{})
	}

	c.JSON(http.StatusBadRequest, Resp{
		ErrorCode: ErrorCodeBadRequest,
		Message:   err.Error(),
		Data:      data,
	})
}

// Unauthorized sends 401 response.
func Unauthorized(c *gin.Context) {
	c.JSON(http.StatusUnauthorized, Resp{
		ErrorCode: ErrorCodeUnauthorized,
		Message:   "Unauthorized",
	})
}
