// Package testinternals connects the repo integration tests to a real Postgres and seeds it.
// It only depends on db and auth, so the posts, engagement and social tests can all import it.
package testinternals

import (
	"context"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/racedirector/racedirector/internal/auth"
	"github.com/racedirector/racedirector/internal/db"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// DBPool connects to the Postgres configured through POSTGRES_HOST, POSTGRES_PORT,
// POSTGRES_DB, POSTGRES_USER and POSTGRES_PASS and applies the schema.
func DBPool(t *testing.T) *pgxpool.Pool {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	host := envOr("POSTGRES_HOST", "localhost")
	t.Logf("using postgres host: %s", host)

	dbPool, err := db.NewDBPool(ctx, db.NewDBPoolParams{
		DBHost:     host,
		DBPort:     envOr("POSTGRES_PORT", "5432"),
		DBName:     envOr("POSTGRES_DB", "racedirector"),
		DBUser:     envOr("POSTGRES_USER", "postgres"),
		DBPassword: os.Getenv("POSTGRES_PASS"),
	})
	require.NoError(t, err)
	require.NoError(t, db.Migrate(ctx, dbPool))

	t.Cleanup(dbPool.Close)
	return dbPool
}

// NewUser inserts a user with fake profile data.
func NewUser(t *testing.T, dbPool *pgxpool.Pool) *auth.User {
	t.Helper()

	user := &auth.User{
		ID:          uuid.NewString(),
		Email:       strings.ToLower(uuid.NewString()[:8] + "." + gofakeit.Email()),
		DisplayName: gofakeit.Name(),
		PhotoURL:    gofakeit.URL(),
		Bio:         gofakeit.Sentence(8),
		CreatedAt:   time.Now().UTC().Truncate(time.Microsecond),
	}
	require.NoError(t, auth.NewUsersRepo(dbPool).Create(context.Background(), user, "$2a$10$fakehashfakehashfakehashfakehashfakehashfakehashfake"))
	return user
}

// NewPostRow inserts a bare post row by authorID, created at createdAt, and returns its id.
func NewPostRow(t *testing.T, dbPool *pgxpool.Pool, authorID string, createdAt time.Time) string {
	t.Helper()

	id := "test-post-" + uuid.NewString()
	_, err := dbPool.Exec(
		context.Background(),
		`INSERT INTO posts (
			id, author_id, headline, summary, cover_image_url, cover_image_caption,
			markdown_path, markdown_url, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);`,
		id, authorID, strings.ToUpper(gofakeit.Sentence(3)), gofakeit.Sentence(10),
		gofakeit.URL(), gofakeit.Word(), "posts/"+id+".md", "http://localhost/blobs/posts/"+id+".md", createdAt,
	)
	require.NoError(t, err)
	return id
}
