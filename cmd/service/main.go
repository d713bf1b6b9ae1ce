package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/racedirector/racedirector/internal"
	"github.com/racedirector/racedirector/internal/config"
	"github.com/racedirector/racedirector/internal/logging"

	log "github.com/sirupsen/logrus"
)

func main() {
	fmt.Println("starting ...")

	env := flag.String("env", "development", "environment [prod | production | dev | development]")
	configPath := flag.String("config", "./config.toml", "path for the TOML config file")
	flag.Parse()

	log.Warnf("---->> running in [%s] environment", *env)

	cfg, err := config.Load(*env, *configPath)
	if err != nil {
		panic(err)
	}

	logging.Setup(logging.LoggerSetupParams{
		LogFileName:      cfg.LogsPath,
		LogToStdout:      cfg.LogToStdout,
		LogLevel:         cfg.LogLevel,
		LogFormatJSON:    cfg.LogFormatJSON,
		Environment:      cfg.Environment,
		SentryEnabled:    cfg.SentryEnabled,
		SentryDSN:        os.Getenv("SENTRY_DSN"),
		SentryServerName: "racedirector-service",
	})

	log.Debugf("using port: %d", cfg.Port)
	log.Debugf("using server logs path: [%s]", cfg.LogsPath)

	redisPassword := os.Getenv("RD_REDIS_PASS")
	if redisPassword == "" {
		log.Errorf("redis password not set. use RD_REDIS_PASS")
	}

	postgresPassword := os.Getenv("RD_POSTGRES_PASS")
	if postgresPassword == "" {
		log.Warnln("postgres password not set. use RD_POSTGRES_PASS")
	}

	discordWebhookURL := os.Getenv("RD_DISCORD_WEBHOOK_URL")
	if discordWebhookURL == "" {
		log.Warnln("discord webhook url not set, use RD_DISCORD_WEBHOOK_URL to announce new posts")
	}

	driveCredentialsFile := os.Getenv("RD_DRIVE_CREDENTIALS_FILE")
	if cfg.BlobStore == "drive" && driveCredentialsFile == "" {
		log.Fatalln("drive blob store needs credentials, use RD_DRIVE_CREDENTIALS_FILE")
	}

	if otelServiceName := os.Getenv("OTEL_SERVICE_NAME"); otelServiceName == "" {
		log.Warnln("OTEL_SERVICE_NAME env var not set")
	}

	honeycombEnabled := os.Getenv("HONEYCOMB_ENABLED") == "true"
	if honeycombEnabled {
		if honeycombApiKey := os.Getenv("HONEYCOMB_API_KEY"); honeycombApiKey == "" {
			log.Warnln("HONEYCOMB_API_KEY env var not set")
		}
	} else {
		log.Debugln("honeycomb tracing disabled")
	}

	chOsInterrupt := make(chan os.Signal, 1)
	signal.Notify(chOsInterrupt, os.Interrupt, syscall.SIGTERM)

	ctx, cancel := context.WithCancel(context.Background())

	server, err := internal.NewServer(
		ctx,
		internal.NewServerParams{
			Config:                  cfg,
			RedisPassword:           redisPassword,
			PostgresPassword:        postgresPassword,
			DiscordWebhookURL:       discordWebhookURL,
			DriveCredentialsFile:    driveCredentialsFile,
			HoneycombTracingEnabled: honeycombEnabled,
		},
	)
	if err != nil {
		log.Fatalf("new server: %s", err)
	}

	server.Serve(cfg.Host, cfg.Port)

	receivedSig := <-chOsInterrupt
	log.Warnf("signal [%s] received, killing everything ...", receivedSig)
	cancel()

	server.GracefulShutdown()
}
