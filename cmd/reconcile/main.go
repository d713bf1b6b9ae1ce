// reconcile recomputes every post's counters and score from the likes, comments
// and follows tables once, then exits. Meant for cron or a manual repair.
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/racedirector/racedirector/internal/config"
	"github.com/racedirector/racedirector/internal/db"
	"github.com/racedirector/racedirector/internal/logging"
	"github.com/racedirector/racedirector/internal/posts"
	"github.com/racedirector/racedirector/internal/ranking"
	"github.com/racedirector/racedirector/internal/reconcile"
	"github.com/racedirector/racedirector/internal/telemetry/metrics"

	"github.com/prometheus/client_golang/prometheus"
	log "github.com/sirupsen/logrus"
	"go.uber.org/multierr"
)

func main() {
	env := flag.String("env", "development", "environment [prod | production | dev | development]")
	configPath := flag.String("config", "./config.toml", "path for the TOML config file")
	timeout := flag.Duration("timeout", 30*time.Minute, "give up after this long")
	flag.Parse()

	cfg, err := config.Load(*env, *configPath)
	if err != nil {
		panic(err)
	}

	logging.Setup(logging.LoggerSetupParams{
		LogToStdout:      true,
		LogLevel:         cfg.LogLevel,
		LogFormatJSON:    cfg.LogFormatJSON,
		Environment:      cfg.Environment,
		SentryEnabled:    cfg.SentryEnabled,
		SentryDSN:        os.Getenv("SENTRY_DSN"),
		SentryServerName: "racedirector-reconcile",
	})

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()
	ctx, timeoutCancel := context.WithTimeout(ctx, *timeout)
	defer timeoutCancel()

	dbPool, err := db.NewDBPool(ctx, db.NewDBPoolParams{
		DBHost:     cfg.PostgresHost,
		DBPort:     cfg.PostgresPort,
		DBName:     cfg.PostgresDBName,
		DBUser:     cfg.PostgresUser,
		DBPassword: os.Getenv("RD_POSTGRES_PASS"),
	})
	if err != nil {
		log.Fatalf("new db pool: %s", err)
	}
	defer dbPool.Close()

	reconciler := reconcile.NewReconciler(
		posts.NewRepo(dbPool),
		reconcile.NewRepo(dbPool),
		ranking.Weights{
			Like:    cfg.Ranking.LikeWeight,
			Comment: cfg.Ranking.CommentWeight,
			Share:   cfg.Ranking.ShareWeight,
		},
		metrics.NewManager("racedirector", "reconcile", prometheus.NewRegistry()),
	)

	report, err := reconciler.Run(ctx)
	log.Infof("reconcile done: %s", report)
	if err != nil {
		for _, e := range multierr.Errors(err) {
			log.Errorf("reconcile: %s", e)
		}
		dbPool.Close()
		os.Exit(1)
	}
}
