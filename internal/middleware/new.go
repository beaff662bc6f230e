package middleware

import (
	pkgLog "daily-updates/pkg/log"
)

// Middleware bundles the gin middlewares shared by every route.
type Middleware struct {
	l pkgLog.Logger
}

func New(l pkgLog.Logger) Middleware {
	return Middleware{l: l}
}
