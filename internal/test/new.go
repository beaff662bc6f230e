package test

import (
	pkgLog "daily-updates/pkg/log"

	"github.com/gin-gonic/gin"
)

// Handler is the interface for the test handler
type Handler interface {
	HandleFormat(c *gin.Context)
}

// New creates a new test handler
func New(l pkgLog.Logger, iconURL string) Handler {
	return &handler{
		l:       l,
		iconURL: iconURL,
	}
}
