package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	Environment EnvironmentConfig

	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	Postgres PostgresConfig
	Redis    RedisConfig

	JWT JWTConfig

	SMTP   SMTPConfig
	Twilio TwilioConfig
	Push   PushConfig

	Dispatch DispatchConfig
	Incident IncidentConfig

	Discord DiscordConfig
}

// EnvironmentConfig is the configuration for the deployment environment.
type EnvironmentConfig struct {
	Name string
}

// HTTPServerConfig is the configuration for the HTTP server.
type HTTPServerConfig struct {
	Host string
	Port int
	Mode string
}

// LoggerConfig is the configuration for the logger.
type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

// PostgresConfig is the configuration for PostgreSQL.
type PostgresConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
	SSLMode  string
}

// RedisConfig is the configuration for Redis.
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

// JWTConfig is the configuration for admin session tokens.
type JWTConfig struct {
	SecretKey string
}

// SMTPConfig is the configuration for the email relay.
type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
	NoVerify bool
}

// TwilioConfig is the configuration for the SMS provider.
type TwilioConfig struct {
	AccountSID string
	AuthToken  string
	From       string
	Enabled    bool
}

// PushConfig is the configuration for the push gateway.
type PushConfig struct {
	GatewayURL string
	APIKey     string
	Timeout    time.Duration
}

// DispatchConfig tunes the notification dispatcher's backpressure policy.
// Batch size and inter-batch delay bound the rate of outbound provider
// calls; the outage threshold fails a channel fast after that many
// consecutive provider errors.
type DispatchConfig struct {
	BatchSize       int
	BatchDelay      time.Duration
	ChannelWorkers  int
	OutageThreshold int
	LockTTL         time.Duration
}

// IncidentConfig tunes the incident verification engine.
type IncidentConfig struct {
	CorroborationThreshold int
}

// DiscordConfig is the configuration for the admin-notification webhook.
type DiscordConfig struct {
	WebhookURL string
}

// Load loads configuration using Viper.
func Load() (*Config, error) {
	viper.SetConfigName("alert-config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/alert-srv/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	// Config file is optional; env vars cover everything.
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	cfg.Environment.Name = viper.GetString("environment.name")

	cfg.HTTPServer.Host = viper.GetString("server.host")
	cfg.HTTPServer.Port = viper.GetInt("server.port")
	cfg.HTTPServer.Mode = viper.GetString("server.mode")

	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	cfg.Postgres.Host = viper.GetString("postgres.host")
	cfg.Postgres.Port = viper.GetInt("postgres.port")
	cfg.Postgres.User = viper.GetString("postgres.user")
	cfg.Postgres.Password = viper.GetString("postgres.password")
	cfg.Postgres.DBName = viper.GetString("postgres.dbname")
	cfg.Postgres.SSLMode = viper.GetString("postgres.sslmode")

	cfg.Redis.Host = viper.GetString("redis.host")
	cfg.Redis.Port = viper.GetInt("redis.port")
	cfg.Redis.Password = viper.GetString("redis.password")
	cfg.Redis.DB = viper.GetInt("redis.db")

	cfg.JWT.SecretKey = viper.GetString("jwt.secret_key")

	cfg.SMTP.Host = viper.GetString("smtp.host")
	cfg.SMTP.Port = viper.GetInt("smtp.port")
	cfg.SMTP.Username = viper.GetString("smtp.username")
	cfg.SMTP.Password = viper.GetString("smtp.password")
	cfg.SMTP.From = viper.GetString("smtp.from")
	cfg.SMTP.NoVerify = viper.GetBool("smtp.no_verify")

	cfg.Twilio.AccountSID = viper.GetString("twilio.account_sid")
	cfg.Twilio.AuthToken = viper.GetString("twilio.auth_token")
	cfg.Twilio.From = viper.GetString("twilio.from")
	cfg.Twilio.Enabled = viper.GetBool("twilio.enabled")

	cfg.Push.GatewayURL = viper.GetString("push.gateway_url")
	cfg.Push.APIKey = viper.GetString("push.api_key")
	cfg.Push.Timeout = viper.GetDuration("push.timeout")

	cfg.Dispatch.BatchSize = viper.GetInt("dispatch.batch_size")
	cfg.Dispatch.BatchDelay = viper.GetDuration("dispatch.batch_delay")
	cfg.Dispatch.ChannelWorkers = viper.GetInt("dispatch.channel_workers")
	cfg.Dispatch.OutageThreshold = viper.GetInt("dispatch.outage_threshold")
	cfg.Dispatch.LockTTL = viper.GetDuration("dispatch.lock_ttl")

	cfg.Incident.CorroborationThreshold = viper.GetInt("incident.corroboration_threshold")

	cfg.Discord.WebhookURL = viper.GetString("discord.webhook_url")

	if err := validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "production")

	viper.SetDefault("server.host", "0.0.0.0")
	viper.SetDefault("server.port", 8080)
	viper.SetDefault("server.mode", "release")

	viper.SetDefault("logger.level", "info")
	viper.SetDefault("logger.mode", "production")
	viper.SetDefault("logger.encoding", "json")
	viper.SetDefault("logger.color_enabled", false)

	viper.SetDefault("postgres.host", "localhost")
	viper.SetDefault("postgres.port", 5432)
	viper.SetDefault("postgres.user", "alert")
	viper.SetDefault("postgres.password", "")
	viper.SetDefault("postgres.dbname", "alert_srv")
	viper.SetDefault("postgres.sslmode", "disable")

	viper.SetDefault("redis.host", "localhost")
	viper.SetDefault("redis.port", 6379)
	viper.SetDefault("redis.password", "")
	viper.SetDefault("redis.db", 0)

	viper.SetDefault("smtp.host", "localhost")
	viper.SetDefault("smtp.port", 25)
	viper.SetDefault("smtp.from", "alerts@odpem.gov.jm")
	viper.SetDefault("smtp.no_verify", false)

	viper.SetDefault("twilio.enabled", false)

	viper.SetDefault("push.timeout", 10*time.Second)

	viper.SetDefault("dispatch.batch_size", 25)
	viper.SetDefault("dispatch.batch_delay", 200*time.Millisecond)
	viper.SetDefault("dispatch.channel_workers", 8)
	viper.SetDefault("dispatch.outage_threshold", 5)
	viper.SetDefault("dispatch.lock_ttl", 10*time.Minute)

	viper.SetDefault("incident.corroboration_threshold", 2)
}

func validate(cfg *Config) error {
	if cfg.JWT.SecretKey == "" {
		return fmt.Errorf("jwt.secret_key is required")
	}
	if cfg.Dispatch.BatchSize < 1 {
		return fmt.Errorf("dispatch.batch_size must be positive")
	}
	if cfg.Incident.CorroborationThreshold < 2 {
		return fmt.Errorf("incident.corroboration_threshold must be at least 2")
	}
	return nil
}
