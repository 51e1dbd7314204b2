package httpserver

import (
	"database/sql"
	"errors"

	"alert-srv/internal/alert"
	"alert-srv/internal/incident"
	"alert-srv/pkg/discord"
	"alert-srv/pkg/log"
	pkgRedis "alert-srv/pkg/redis"
	"alert-srv/pkg/scope"

	"github.com/gin-gonic/gin"
)

// HTTPServer wires the delivery engine and incident verification surfaces
// onto gin. New() only wires and validates dependencies; Run() starts
// serving.
type HTTPServer struct {
	gin         *gin.Engine
	logger      log.Logger
	port        int
	environment string

	alertUC    alert.UseCase
	incidentUC incident.UseCase

	jwtMgr scope.Manager

	db      *sql.DB
	redis   pkgRedis.IRedis
	discord discord.IDiscord
}

// Config is the constructor input for HTTPServer.
type Config struct {
	Port        int
	Environment string

	AlertUC    alert.UseCase
	IncidentUC incident.UseCase

	JWTManager scope.Manager

	DB      *sql.DB
	Redis   pkgRedis.IRedis
	Discord discord.IDiscord
}

// New creates a new HTTPServer instance with the provided configuration.
// It does not start any goroutines; use Run().
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	srv := &HTTPServer{
		gin:         gin.New(),
		logger:      logger,
		port:        cfg.Port,
		environment: cfg.Environment,
		alertUC:     cfg.AlertUC,
		incidentUC:  cfg.IncidentUC,
		jwtMgr:      cfg.JWTManager,
		db:          cfg.DB,
		redis:       cfg.Redis,
		discord:     cfg.Discord,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

// validate ensures all required dependencies are provided.
func (s *HTTPServer) validate() error {
	if s.logger == nil {
		return errors.New("logger is required")
	}
	if s.port == 0 {
		return errors.New("port is required")
	}
	if s.alertUC == nil {
		return errors.New("alert use case is required")
	}
	if s.incidentUC == nil {
		return errors.New("incident use case is required")
	}
	if s.jwtMgr == nil {
		return errors.New("JWTManager is required")
	}
	if s.db == nil {
		return errors.New("database connection is required")
	}

	return nil
}
