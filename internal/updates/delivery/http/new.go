package http

import (
	"github.com/gin-gonic/gin"

	"daily-updates/internal/updates"
	pkgLog "daily-updates/pkg/log"
)

// Handler is the public interface for the updates HTTP delivery layer.
type Handler interface {
	PostUpdate(c *gin.Context)
}

type handler struct {
	l        pkgLog.Logger
	uc       updates.UseCase
	security *SecurityValidator
}

// New creates a new HTTP handler for the /updates slash command.
func New(l pkgLog.Logger, uc updates.UseCase, securityConfig SecurityConfig) Handler {
	return &handler{
		l:        l,
		uc:       uc,
		security: NewSecurityValidator(securityConfig),
	}
}
