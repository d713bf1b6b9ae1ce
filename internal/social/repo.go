// Package social keeps the follow graph between users and serves public profiles.
package social

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/racedirector/racedirector/internal/auth"
	"github.com/racedirector/racedirector/pkg"

	"github.com/jackc/pgx/v5/pgxpool"
)

var ErrSelfFollow = errors.New("users cannot follow themselves")

// Repo stores follow edges. The followers and following counters on users are
// written separately, after the edge, by AdjustFollowCounts.
type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) Follow(ctx context.Context, followerID, followeeID string, at time.Time) (bool, error) {
	tag, err := r.db.Exec(
		ctx,
		`INSERT INTO follows (follower_id, followee_id, created_at) VALUES ($1, $2, $3) ON CONFLICT DO NOTHING;`,
		followerID, followeeID, at,
	)
	if err != nil {
		switch {
		case pkg.IsCheckViolationError(err):
			return false, ErrSelfFollow
		case pkg.IsForeignKeyViolationError(err):
			return false, auth.ErrUserNotFound
		default:
			return false, fmt.Errorf("insert follow: %w", err)
		}
	}
	return tag.RowsAffected() == 1, nil
}

func (r *Repo) Unfollow(ctx context.Context, followerID, followeeID string) (bool, error) {
	tag, err := r.db.Exec(
		ctx,
		`DELETE FROM follows WHERE follower_id = $1 AND followee_id = $2;`,
		followerID, followeeID,
	)
	if err != nil {
		return false, fmt.Errorf("delete follow: %w", err)
	}
	return tag.RowsAffected() == 1, nil
}

func (r *Repo) IsFollowing(ctx context.Context, followerID, followeeID string) (bool, error) {
	var following bool
	err := r.db.QueryRow(
		ctx,
		`SELECT EXISTS (SELECT 1 FROM follows WHERE follower_id = $1 AND followee_id = $2);`,
		followerID, followeeID,
	).Scan(&following)
	return following, err
}

// AdjustFollowCounts moves the following count of the follower and the followers count of the followee by delta.
func (r *Repo) AdjustFollowCounts(ctx context.Context, followerID, followeeID string, delta int) error {
	if _, err := r.db.Exec(
		ctx,
		`UPDATE users SET following = GREATEST(following + $2, 0) WHERE id = $1;`,
		followerID, delta,
	); err != nil {
		return fmt.Errorf("update following of %s: %w", followerID, err)
	}
	if _, err := r.db.Exec(
		ctx,
		`UPDATE users SET followers = GREATEST(followers + $2, 0) WHERE id = $1;`,
		followeeID, delta,
	); err != nil {
		return fmt.Errorf("update followers of %s: %w", followeeID, err)
	}
	return nil
}
