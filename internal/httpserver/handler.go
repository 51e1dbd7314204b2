package httpserver

import (
	alertHTTP "alert-srv/internal/alert/delivery/http"
	incidentHTTP "alert-srv/internal/incident/delivery/http"
	"alert-srv/internal/middleware"
	pkgErrors "alert-srv/pkg/errors"
	"alert-srv/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const Api = "/api"

func (srv *HTTPServer) mapHandlers() error {
	srv.gin.Use(middleware.Recovery(srv.logger, srv.discord))

	corsConfig := middleware.DefaultCORSConfig()
	srv.gin.Use(middleware.CORS(corsConfig))

	// Unknown paths are 404; known paths with the wrong verb are 405.
	srv.gin.HandleMethodNotAllowed = true
	srv.gin.NoMethod(func(c *gin.Context) {
		response.MethodNotAllowed(c)
	})
	srv.gin.NoRoute(func(c *gin.Context) {
		response.HttpError(c, pkgErrors.NewNotFoundHTTPError("Route not found"))
	})

	// Health check endpoints (no auth required)
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)

	srv.gin.GET("/metrics", gin.WrapH(promhttp.Handler()))

	mw := middleware.New(srv.logger, srv.jwtMgr)
	api := srv.gin.Group(Api)

	alertHTTP.New(srv.logger, srv.alertUC, srv.discord).MapRoutes(api, mw)
	incidentHTTP.New(srv.logger, srv.incidentUC, srv.discord).MapRoutes(api, mw)

	return nil
}
