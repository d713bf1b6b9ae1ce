package internal

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"strconv"
	"sync"
	"time"

	"github.com/IBM/pgxpoolprometheus"
	"github.com/getsentry/sentry-go"
	"github.com/go-redis/redis/v8"
	"github.com/go-redis/redis_rate/v9"
	"github.com/gorilla/mux"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gorilla/mux/otelmux"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"google.golang.org/api/option"

	"github.com/racedirector/racedirector/internal/auth"
	"github.com/racedirector/racedirector/internal/blobstore"
	"github.com/racedirector/racedirector/internal/cache"
	"github.com/racedirector/racedirector/internal/config"
	"github.com/racedirector/racedirector/internal/content"
	"github.com/racedirector/racedirector/internal/db"
	"github.com/racedirector/racedirector/internal/engagement"
	"github.com/racedirector/racedirector/internal/feed"
	"github.com/racedirector/racedirector/internal/images"
	"github.com/racedirector/racedirector/internal/middleware"
	"github.com/racedirector/racedirector/internal/notify"
	"github.com/racedirector/racedirector/internal/posts"
	"github.com/racedirector/racedirector/internal/ranking"
	"github.com/racedirector/racedirector/internal/reconcile"
	"github.com/racedirector/racedirector/internal/sitemap"
	"github.com/racedirector/racedirector/internal/slug"
	"github.com/racedirector/racedirector/internal/social"
	"github.com/racedirector/racedirector/internal/telemetry/metrics"
	"github.com/racedirector/racedirector/internal/telemetry/tracing"
)

const (
	sessionsCleanupInterval = 8 * time.Hour
	// rendered bodies are re-read from the blob store after a day
	bodyCacheTTL = 24 * time.Hour
)

type Server struct {
	httpServer        *http.Server
	metricsHttpServer *http.Server

	config      *config.Config
	dbPool      *pgxpool.Pool
	redisClient *redis.Client
	blobs       blobstore.Store
	bodyCache   *cache.BodyCache
	httpClient  *http.Client

	sessions          *auth.SessionStore
	users             *auth.UsersRepo
	discordWebhookURL string
	postsService      *posts.Service

	// metrics
	metricsManager *metrics.Manager
	promRegistry   *prometheus.Registry
	otelShutdown   func()

	background sync.WaitGroup
}

type NewServerParams struct {
	Config                  *config.Config
	RedisPassword           string
	PostgresPassword        string
	DiscordWebhookURL       string
	DriveCredentialsFile    string
	HoneycombTracingEnabled bool
}

func NewServer(
	ctx context.Context,
	params NewServerParams,
) (*Server, error) {
	dbPool, err := db.NewDBPool(ctx, db.NewDBPoolParams{
		DBHost:         params.Config.PostgresHost,
		DBPort:         params.Config.PostgresPort,
		DBName:         params.Config.PostgresDBName,
		DBUser:         params.Config.PostgresUser,
		DBPassword:     params.PostgresPassword,
		TracingEnabled: params.HoneycombTracingEnabled,
	})
	if err != nil {
		return nil, fmt.Errorf("new db pool: %w", err)
	}

	if err := dbPool.Ping(ctx); err != nil {
		log.Warnf("failed to ping db: %s", err)
	} else if err := db.Migrate(ctx, dbPool); err != nil {
		return nil, fmt.Errorf("migrate db: %w", err)
	}

	pgxpoolCollector := pgxpoolprometheus.NewCollector(
		dbPool,
		map[string]string{"db_name": params.Config.PostgresDBName},
	)
	promRegistry := metrics.SetupPrometheus(pgxpoolCollector)
	metricsManager := metrics.NewManager("racedirector", "main", promRegistry)
	metricsManager.GaugeLifeSignal.Set(0)

	rdb := redis.NewClient(&redis.Options{
		Addr:     net.JoinHostPort(params.Config.RedisHost, params.Config.RedisPort),
		Password: params.RedisPassword,
		DB:       0, // use default DB
	})

	rdbStatus := rdb.Ping(ctx)
	if err := rdbStatus.Err(); err != nil {
		log.Errorf("--> failed to ping redis: %s", err)
	} else {
		log.Debugf("redis ping: %s", rdbStatus.Val())
	}

	// use honeycomb distro to setup OpenTelemetry SDK
	otelShutdown, err := tracing.HoneycombSetup(params.HoneycombTracingEnabled, "racedirector-backend", rdb)
	if err != nil {
		return nil, err
	}

	blobs, err := newBlobStore(ctx, params.Config, params.DriveCredentialsFile)
	if err != nil {
		return nil, fmt.Errorf("new blob store: %w", err)
	}

	s := &Server{
		config:      params.Config,
		dbPool:      dbPool,
		redisClient: rdb,
		blobs:       blobs,
		bodyCache:   cache.NewBodyCache(params.Config.BodyCacheSizeMB, bodyCacheTTL),
		httpClient: &http.Client{
			Transport: otelhttp.NewTransport(http.DefaultTransport),
			Timeout:   10 * time.Second,
		},

		sessions:          auth.NewSessionStore(auth.DefaultTTL, rdb),
		users:             auth.NewUsersRepo(dbPool),
		discordWebhookURL: params.DiscordWebhookURL,

		// telemetry
		metricsManager: metricsManager,
		promRegistry:   promRegistry,
		otelShutdown:   otelShutdown,
	}

	s.runEvery(ctx, sessionsCleanupInterval, s.sessions.ScanAndClean)

	if every := params.Config.ReconcileEvery(); every > 0 {
		reconciler := reconcile.NewReconciler(
			posts.NewRepo(dbPool),
			reconcile.NewRepo(dbPool),
			s.weights(),
			metricsManager,
		)
		s.background.Add(1)
		go func() {
			defer s.background.Done()
			reconciler.RunEvery(ctx, every)
		}()
	} else {
		log.Debugln("periodic counters reconcile disabled")
	}

	return s, nil
}

func newBlobStore(ctx context.Context, cfg *config.Config, driveCredentialsFile string) (blobstore.Store, error) {
	switch cfg.BlobStore {
	case "drive":
		credentials, err := os.ReadFile(driveCredentialsFile)
		if err != nil {
			return nil, fmt.Errorf("read drive credentials: %w", err)
		}
		return blobstore.NewDrive(ctx, cfg.DriveFolderName, option.WithCredentialsJSON(credentials))
	case "disk":
		if err := os.MkdirAll(cfg.BlobStoreDiskRoot, 0o755); err != nil {
			return nil, fmt.Errorf("create blob root dir: %w", err)
		}
		return blobstore.NewDisk(cfg.BlobStoreDiskRoot, cfg.PublicBaseURL+"/blobs")
	default:
		return nil, fmt.Errorf("unknown blob store: %s", cfg.BlobStore)
	}
}

func (s *Server) runEvery(ctx context.Context, interval time.Duration, job func(ctx context.Context)) {
	s.background.Add(1)
	go func() {
		defer s.background.Done()
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				job(ctx)
			}
		}
	}()
}

func (s *Server) weights() ranking.Weights {
	return ranking.Weights{
		Like:    s.config.Ranking.LikeWeight,
		Comment: s.config.Ranking.CommentWeight,
		Share:   s.config.Ranking.ShareWeight,
	}
}

func (s *Server) routerSetup() (*mux.Router, error) {
	r := mux.NewRouter()
	r.Use(otelmux.Middleware("main-router"))

	reqRateLimiter := redis_rate.NewLimiter(s.redisClient)
	postsRepo := posts.NewRepo(s.dbPool)

	authRouter := r.PathPrefix("/auth").Subrouter()
	authRouter.Use(middleware.RateLimit(
		reqRateLimiter,
		"auth",
		s.config.LoginRateLimitAllowedPerMin,
		s.metricsManager.CounterRateLimitedRequests,
	))
	auth.NewHandler(auth.NewService(s.users, s.sessions)).SetupRoutes(authRouter)

	postsParams := posts.ServiceParams{
		Repo:     postsRepo,
		Blobs:    s.blobs,
		Cache:    s.bodyCache,
		Renderer: content.NewRenderer(slug.NewGenerator(nil)),
		Weights:  s.weights(),
		FeedPageSizes: feed.PageSizes{
			First: s.config.FeedFirstPageSize,
			Next:  s.config.FeedPageSize,
		},
		UserPostsPageSize: s.config.UserPostsPageSize,
		Metrics:           s.metricsManager,
	}
	if s.discordWebhookURL != "" {
		postsParams.Notifier = notify.NewDiscordClient(
			s.discordWebhookURL,
			s.config.PublicBaseURL,
			s.httpClient,
			s.users,
			s.metricsManager.CounterNotificationsFailures,
		)
	} else {
		log.Debugln("discord webhook not set, new posts will not be announced")
	}
	s.postsService = posts.NewService(postsParams)
	posts.NewHandler(s.postsService).SetupRoutes(r)

	engagementHandler := engagement.NewHandler(engagement.NewService(
		engagement.NewRepo(s.dbPool),
		postsRepo,
		s.weights(),
		s.metricsManager,
	))
	engagementHandler.SetupRoutes(r, middleware.RateLimit(
		reqRateLimiter,
		"comments",
		s.config.CommentsRateLimitAllowedPerMin,
		s.metricsManager.CounterRateLimitedRequests,
	))

	social.NewHandler(social.NewService(
		social.NewRepo(s.dbPool),
		s.users,
		s.metricsManager,
	)).SetupRoutes(r)

	images.NewHandler(s.blobs).SetupRoutes(r)
	sitemap.NewHandler(s.config.PublicBaseURL, postsRepo).SetupRoutes(r)
	blobstore.NewHandler(s.blobs).SetupRoutes(r.PathPrefix("/blobs").Subrouter())

	// all the rest - unhandled paths
	r.HandleFunc("/{unknown}", func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}).Methods("GET", "POST", "PUT", "DELETE", "OPTIONS").Name("unknown")

	authMiddleware := middleware.NewAuthMiddlewareHandler(s.sessions)

	r.Use(middleware.PanicRecovery(s.metricsManager))
	r.Use(middleware.LogRequest())
	r.Use(middleware.RequestMetrics(s.metricsManager))
	r.Use(middleware.Cors(s.config.AllowedOrigins))
	r.Use(authMiddleware.AuthCheck())
	r.Use(middleware.DrainAndCloseRequest())

	return r, nil
}

func (s *Server) Serve(host string, port int) {
	router, err := s.routerSetup()
	if err != nil {
		log.Fatalf("failed to setup router: %s", err)
	}

	ipAndPort := net.JoinHostPort(host, strconv.Itoa(port))
	s.httpServer = &http.Server{
		Handler:      router,
		Addr:         ipAndPort,
		WriteTimeout: time.Minute,
		ReadTimeout:  time.Minute,
		ConnState:    s.connStateMetrics,
	}

	metricsRouter := mux.NewRouter()
	metricsRouter.Handle("/metrics", promhttp.HandlerFor(
		s.promRegistry,
		promhttp.HandlerOpts{},
	))
	metricsAddr := net.JoinHostPort(s.config.PrometheusMetricsHost, s.config.PrometheusMetricsPort)
	s.metricsHttpServer = &http.Server{
		Addr:    metricsAddr,
		Handler: metricsRouter,
	}

	go func() {
		log.Infof(" > server listening on: [%s]", ipAndPort)
		err := s.httpServer.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("main service, listen and serve: %s", err)
		}
	}()

	go func() {
		log.Debugf(" > metrics listening on: [%s]", metricsAddr)
		err := s.metricsHttpServer.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("metrics service, listen and serve: %s", err)
		}
	}()

	s.metricsManager.GaugeLifeSignal.Set(1)
}

// GracefulShutdown stops the listeners, waits for background jobs (the caller
// cancels their context first) and closes the stores.
func (s *Server) GracefulShutdown() {
	log.Debug("graceful shutdown initiated ...")

	s.metricsManager.GaugeLifeSignal.Set(0)

	maxWaitDuration := time.Second * 15
	ctx, timeoutCancel := context.WithTimeout(context.Background(), maxWaitDuration)
	defer timeoutCancel()

	if s.httpServer != nil {
		if err := s.httpServer.Shutdown(ctx); err != nil {
			log.Error(" >>> failed to gracefully shutdown http server")
		}
		log.Warnln("server shut down")
	}

	if s.metricsHttpServer != nil {
		if err := s.metricsHttpServer.Shutdown(ctx); err != nil {
			log.Error(" >>> failed to gracefully shutdown metrics http server")
		}
		log.Warnln("metrics server shut down")
	}

	// view counts and notifications still in flight
	if s.postsService != nil {
		s.postsService.Wait()
	}
	s.background.Wait()

	s.otelShutdown()
	log.Trace("otel shut down ...")

	if s.redisClient != nil {
		if err := s.redisClient.Close(); err != nil {
			log.Errorf("failed to close redis client conn: %s", err)
		}
	}

	if s.dbPool != nil {
		log.Debugln("closing db pool ...")
		s.dbPool.Close() // blocking operation
		log.Debugln("db pool closed")
	}

	if ok := sentry.Flush(5 * time.Second); ok {
		log.Debugf("sentry flush ok: %t", ok)
	}
}

func (s *Server) connStateMetrics(_ net.Conn, state http.ConnState) {
	switch state {
	case http.StateNew:
		s.metricsManager.GaugeRequests.Add(1)
	case http.StateClosed:
		s.metricsManager.GaugeRequests.Add(-1)
	default:
		// do nothing
	}
}
