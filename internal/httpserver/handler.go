package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"daily-updates/internal/middleware"
	updatesHTTP "daily-updates/internal/updates/delivery/http"
)

func (srv HTTPServer) mapHandlers() error {
	srv.registerMiddlewares()
	srv.registerSystemRoutes()

	if err := srv.registerDomainRoutes(); err != nil {
		return err
	}

	return nil
}

func (srv HTTPServer) registerMiddlewares() {
	mw := middleware.New(srv.l)
	srv.gin.Use(gin.Recovery(), mw.RequestID(), mw.AccessLog())

	srv.l.Infof(context.Background(), "HTTP mode: %s, environment: %s", srv.mode, srv.environment)
}

func (srv HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/healthcheck", srv.healthCheck)

	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
	))
}

// registerDomainRoutes registers all domain routes.
func (srv HTTPServer) registerDomainRoutes() error {
	updatesHTTP.RegisterRoutes(srv.gin, srv.updatesHandler)
	ctx := context.Background()
	srv.l.Infof(ctx, "Slash command route registered at POST /updates")

	if srv.testHandler != nil {
		srv.gin.POST("/test/format", srv.testHandler.HandleFormat)
		srv.l.Infof(ctx, "Test route registered at POST /test/format")
	}
	return nil
}
