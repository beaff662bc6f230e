package http

import "github.com/gin-gonic/gin"

// RegisterRoutes maps the slash command endpoint.
func RegisterRoutes(r gin.IRoutes, h Handler) {
	r.POST("/updates", h.PostUpdate)
}
