package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// HealthStatus is the /healthcheck body.
type HealthStatus struct {
	Status string `json:"status"`
	Git    string `json:"git,omitempty"`
}

// healthCheck handles health check requests
// @Summary Health Check
// @Description Reports liveness and, when configured, the deployed commit
// @Tags Health
// @Produce json
// @Success 200 {object} HealthStatus
// @Router /healthcheck [get]
func (srv HTTPServer) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, HealthStatus{
		Status: "ok",
		Git:    srv.commitHash,
	})
}
