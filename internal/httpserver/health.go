package httpserver

import (
	"alert-srv/pkg/errors"
	"alert-srv/pkg/response"

	"github.com/gin-gonic/gin"
)

// healthCheck reports overall service health including its dependencies.
func (srv *HTTPServer) healthCheck(c *gin.Context) {
	ctx := c.Request.Context()

	if err := srv.db.PingContext(ctx); err != nil {
		response.HttpError(c, errors.NewHTTPError(503, "Database connection failed", 503))
		return
	}

	if srv.redis != nil {
		if err := srv.redis.Ping(ctx); err != nil {
			response.HttpError(c, errors.NewHTTPError(503, "Redis connection failed", 503))
			return
		}
	}

	response.OK(c, gin.H{
		"status":   "healthy",
		"service":  "alert-srv",
		"version":  "1.0.0",
		"database": "connected",
	})
}

// readyCheck reports whether the service is ready to serve traffic.
func (srv *HTTPServer) readyCheck(c *gin.Context) {
	ctx := c.Request.Context()

	if err := srv.db.PingContext(ctx); err != nil {
		response.HttpError(c, errors.NewHTTPError(503, "Database connection not available", 503))
		return
	}

	response.OK(c, gin.H{
		"status":  "ready",
		"service": "alert-srv",
		"version": "1.0.0",
	})
}

// liveCheck reports whether the process is alive.
func (srv *HTTPServer) liveCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"status":  "alive",
		"service": "alert-srv",
		"version": "1.0.0",
	})
}
