package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"alert-srv/config"
	"alert-srv/config/postgre"
	alertPostgres "alert-srv/internal/alert/repository/postgre"
	alertUC "alert-srv/internal/alert/usecase"
	"alert-srv/internal/channel"
	"alert-srv/internal/dispatcher"
	"alert-srv/internal/httpserver"
	incidentPostgres "alert-srv/internal/incident/repository/postgre"
	incidentUC "alert-srv/internal/incident/usecase"
	userPostgres "alert-srv/internal/user/repository/postgre"
	userUC "alert-srv/internal/user/usecase"
	"alert-srv/pkg/discord"
	"alert-srv/pkg/locker"
	"alert-srv/pkg/log"
	"alert-srv/pkg/metrics"
	pkgRedis "alert-srv/pkg/redis"
	"alert-srv/pkg/scope"

	"github.com/benbjohnson/clock"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// Initialize logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	registerGracefulShutdown(logger)

	// Initialize PostgreSQL
	ctx := context.Background()
	postgresDB, err := postgre.Connect(ctx, cfg.Postgres)
	if err != nil {
		logger.Error(ctx, "Failed to connect to PostgreSQL: ", err)
		return
	}
	defer postgre.Disconnect(ctx, postgresDB)
	logger.Infof(ctx, "PostgreSQL connected successfully to %s:%d/%s", cfg.Postgres.Host, cfg.Postgres.Port, cfg.Postgres.DBName)

	// Initialize Redis; the per-alert dispatch lock lives here.
	redisClient, err := pkgRedis.New(pkgRedis.Config{
		Host:     cfg.Redis.Host,
		Port:     cfg.Redis.Port,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		logger.Error(ctx, "Failed to connect to Redis: ", err)
		return
	}
	defer redisClient.Close()
	logger.Infof(ctx, "Redis connected successfully to %s:%d", cfg.Redis.Host, cfg.Redis.Port)

	// Initialize Discord (optional)
	var discordClient discord.IDiscord
	if cfg.Discord.WebhookURL != "" {
		discordClient, err = discord.New(logger, cfg.Discord.WebhookURL)
		if err != nil {
			logger.Warnf(ctx, "Discord webhook not configured (optional): %v", err)
		} else {
			logger.Info(ctx, "Discord webhook initialized")
		}
	}

	// JWT manager
	jwtManager := scope.New(cfg.JWT.SecretKey)

	// Channel senders. Email is always on; SMS and push depend on
	// provider configuration.
	senders := []channel.Sender{
		channel.NewEmailSender(logger, cfg.SMTP),
	}
	if cfg.Twilio.Enabled {
		senders = append(senders, channel.NewSMSSender(logger, cfg.Twilio))
		logger.Info(ctx, "SMS sender enabled")
	}
	if cfg.Push.GatewayURL != "" {
		senders = append(senders, channel.NewPushSender(logger, cfg.Push))
		logger.Info(ctx, "Push sender enabled")
	}

	recorder := metrics.New()
	clk := clock.New()

	disp := dispatcher.New(logger, dispatcher.Config{
		BatchSize:       cfg.Dispatch.BatchSize,
		BatchDelay:      cfg.Dispatch.BatchDelay,
		ChannelWorkers:  cfg.Dispatch.ChannelWorkers,
		OutageThreshold: cfg.Dispatch.OutageThreshold,
	}, clk, recorder, senders...)

	// Repositories and use cases
	userRepo := userPostgres.New(logger, postgresDB)
	resolver := userUC.New(logger, userRepo)

	alertRepo := alertPostgres.New(logger, postgresDB)
	alertUseCase := alertUC.New(logger, alertRepo, resolver, disp,
		locker.NewRedis(redisClient), clk, alertUC.Config{LockTTL: cfg.Dispatch.LockTTL})

	incidentRepo := incidentPostgres.New(logger, postgresDB)
	incidentUseCase := incidentUC.New(logger, incidentRepo, discordClient, recorder,
		incidentUC.Config{CorroborationThreshold: cfg.Incident.CorroborationThreshold})

	// Initialize HTTP server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Port:        cfg.HTTPServer.Port,
		Environment: cfg.Environment.Name,

		AlertUC:    alertUseCase,
		IncidentUC: incidentUseCase,

		JWTManager: jwtManager,

		DB:      postgresDB,
		Redis:   redisClient,
		Discord: discordClient,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	if err := httpServer.Run(); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}
}

// registerGracefulShutdown registers a signal handler for graceful shutdown.
func registerGracefulShutdown(logger log.Logger) {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigChan
		logger.Info(context.Background(), "Shutting down gracefully...")

		logger.Info(context.Background(), "Cleanup completed")
		os.Exit(0)
	}()
}
