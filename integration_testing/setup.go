//go:build integration_test || all_tests

package integration_testing

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"net/http"
	"os"
	"strconv"

	"github.com/racedirector/racedirector/internal"
	"github.com/racedirector/racedirector/internal/config"
	"github.com/racedirector/racedirector/internal/db"

	_ "github.com/lib/pq"
	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
)

const (
	serverPort  = 9000
	metricsPort = 9001
	serverHost  = "localhost"

	postgresPassword = "postgres"
	postgresDBName   = "racedirector"
)

var serverEndpoint = fmt.Sprintf("http://%s:%d", serverHost, serverPort)

type Suite struct {
	DB         *sql.DB
	dockerPool *dockertest.Pool
	server     *internal.Server
	cancel     context.CancelFunc
	blobsDir   string
	teardown   []func()
}

func newSuite() (_ *Suite) {
	var err error
	suite := &Suite{
		teardown: make([]func(), 0),
	}

	// uses a sensible default on windows (tcp/http) and linux/osx (socket)
	suite.dockerPool, err = dockertest.NewPool("")
	if err != nil {
		log.Fatalf("could not create new dockertest pool: %s", err)
	}

	// uses pool to try to connect to Docker
	if err = suite.dockerPool.Client.Ping(); err != nil {
		log.Fatalf("could not ping dockertest pool: %s", err)
	}

	redisPort, err := suite.redisSetup()
	if err != nil {
		suite.cleanup()
		log.Fatalf("failed to setup redis: %s", err.Error())
	}

	pgPort, err := suite.postgresSetup()
	if err != nil {
		suite.cleanup()
		log.Fatalf("failed to setup postgres: %s", err)
	}

	suite.blobsDir, err = os.MkdirTemp("", "racedirector-blobs-")
	if err != nil {
		suite.cleanup()
		log.Fatalf("create blobs dir: %s", err)
	}
	suite.teardown = append(suite.teardown, func() {
		_ = os.RemoveAll(suite.blobsDir)
	})

	ctx, cancel := context.WithCancel(context.Background())
	suite.cancel = cancel

	cfg := getTestConfig(redisPort, pgPort, suite.blobsDir)
	suite.server, err = internal.NewServer(
		ctx,
		internal.NewServerParams{
			Config:                  cfg,
			RedisPassword:           "",
			PostgresPassword:        postgresPassword,
			HoneycombTracingEnabled: false,
		},
	)
	if err != nil {
		suite.cleanup()
		log.Fatalf("new server: %s", err)
	}

	suite.server.Serve(cfg.Host, cfg.Port)

	if err := suite.dockerPool.Retry(func() error {
		resp, err := http.Get(serverEndpoint + "/feed")
		if err != nil {
			return err
		}
		defer resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			return fmt.Errorf("feed status: %d", resp.StatusCode)
		}
		return nil
	}); err != nil {
		suite.cleanup()
		log.Fatalf("server not ready: %s", err)
	}

	return suite
}

func (s *Suite) cleanup() {
	if s.cancel != nil {
		s.cancel()
	}
	if s.server != nil {
		s.server.GracefulShutdown()
	}
	if s.DB != nil {
		s.DB.Close()
	}
	for _, teardown := range s.teardown {
		teardown()
	}
}

func getTestConfig(redisPort, postgresPort, blobsDir string) *config.Config {
	return &config.Config{
		Environment:           "development",
		Host:                  serverHost,
		Port:                  serverPort,
		PublicBaseURL:         serverEndpoint,
		AllowedOrigins:        []string{"http://localhost:3000"},
		LogLevel:              "debug",
		LogToStdout:           true,
		PrometheusMetricsHost: serverHost,
		PrometheusMetricsPort: strconv.Itoa(metricsPort),
		RedisHost:             "localhost",
		RedisPort:             redisPort,
		PostgresHost:          "localhost",
		PostgresPort:          postgresPort,
		PostgresDBName:        postgresDBName,
		PostgresUser:          "postgres",

		LoginRateLimitAllowedPerMin:    100,
		CommentsRateLimitAllowedPerMin: 100,

		BlobStore:         "disk",
		BlobStoreDiskRoot: blobsDir,
		BodyCacheSizeMB:   8,

		FeedFirstPageSize: 7,
		FeedPageSize:      5,
		UserPostsPageSize: 2,

		Ranking: config.RankingConfig{
			LikeWeight:    27,
			CommentWeight: 36,
			ShareWeight:   36,
		},
	}
}

func (s *Suite) redisSetup() (string, error) {
	redisResource, err := s.dockerPool.RunWithOptions(&dockertest.RunOptions{
		Repository: "redis",
		Name:       "racedirector-redis",
		Tag:        "6.2",
	}, func(config *docker.HostConfig) {
		config.AutoRemove = true
	})
	if err != nil {
		return "", fmt.Errorf("run redis: %s", err)
	}

	s.teardown = append(s.teardown, func() {
		redisResource.Close()
	})

	redisPort := redisResource.GetPort("6379/tcp")
	return redisPort, nil
}

func (s *Suite) postgresSetup() (string, error) {
	pgResource, err := s.dockerPool.RunWithOptions(&dockertest.RunOptions{
		Repository: "postgres",
		Tag:        "16",
		Env: []string{
			"POSTGRES_USER=postgres",
			"POSTGRES_PASSWORD=" + postgresPassword,
			"POSTGRES_DB=" + postgresDBName,
		},
	}, func(config *docker.HostConfig) {
		config.AutoRemove = true
		config.RestartPolicy = docker.RestartPolicy{
			Name: "no",
		}
	})
	if err != nil {
		return "", fmt.Errorf("dockerpool run postgres: %s", err)
	}

	s.teardown = append(s.teardown, func() {
		pgResource.Close()
	})

	pgPort := pgResource.GetPort("5432/tcp")
	dsn := fmt.Sprintf(
		"postgres://postgres:%s@localhost:%s/%s?sslmode=disable",
		postgresPassword, pgPort, postgresDBName,
	)
	conn, err := sql.Open("postgres", dsn)
	if err != nil {
		return "", fmt.Errorf("open db conn: %s", err)
	}
	s.DB = conn

	// the container accepts connections a while after it starts
	if err := s.dockerPool.Retry(conn.Ping); err != nil {
		return "", fmt.Errorf("ping db: %s", err)
	}

	if _, err := conn.Exec(db.Schema); err != nil {
		return "", fmt.Errorf("run schema: %s", err)
	}

	return pgPort, nil
}
