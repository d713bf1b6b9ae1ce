package reconcile

import (
	"context"
	"errors"
	"fmt"

	"github.com/racedirector/racedirector/internal/posts"
	"github.com/racedirector/racedirector/internal/ranking"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repo recomputes denormalized counters from the edge tables they summarize.
type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

// RecountPost sets the like and comment counts of a post from its edges and
// returns the counters as they were before and after.
func (r *Repo) RecountPost(ctx context.Context, postID string) (before, after ranking.Counters, err error) {
	err = pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		if err := tx.QueryRow(
			ctx,
			`SELECT like_count, comment_count, share_count, view_count FROM posts WHERE id = $1 FOR UPDATE;`,
			postID,
		).Scan(&before.Likes, &before.Comments, &before.Shares, &before.Views); err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return posts.ErrPostNotFound
			}
			return err
		}

		return tx.QueryRow(
			ctx,
			`UPDATE posts SET
				like_count = (SELECT count(*) FROM post_likes WHERE post_id = $1),
				comment_count = (SELECT count(*) FROM comments WHERE post_id = $1)
			WHERE id = $1
			RETURNING like_count, comment_count, share_count, view_count;`,
			postID,
		).Scan(&after.Likes, &after.Comments, &after.Shares, &after.Views)
	})
	if err != nil {
		return ranking.Counters{}, ranking.Counters{}, fmt.Errorf("recount post: %w", err)
	}
	return before, after, nil
}

// RecountCommentLikes fixes the like counts of all comments of a post and returns how many changed.
func (r *Repo) RecountCommentLikes(ctx context.Context, postID string) (int64, error) {
	tag, err := r.db.Exec(
		ctx,
		`UPDATE comments c SET likes = counted.n
		FROM (
			SELECT c2.id, count(cl.user_id) AS n
			FROM comments c2 LEFT JOIN comment_likes cl ON cl.comment_id = c2.id
			WHERE c2.post_id = $1
			GROUP BY c2.id
		) counted
		WHERE c.id = counted.id AND c.likes <> counted.n;`,
		postID,
	)
	if err != nil {
		return 0, fmt.Errorf("recount comment likes: %w", err)
	}
	return tag.RowsAffected(), nil
}

// RecountFollows fixes the followers and following counts of every user and returns how many changed.
func (r *Repo) RecountFollows(ctx context.Context) (int64, error) {
	tag, err := r.db.Exec(
		ctx,
		`UPDATE users u SET followers = counted.followers, following = counted.following
		FROM (
			SELECT u2.id,
				(SELECT count(*) FROM follows f WHERE f.followee_id = u2.id) AS followers,
				(SELECT count(*) FROM follows f WHERE f.follower_id = u2.id) AS following
			FROM users u2
		) counted
		WHERE u.id = counted.id AND (u.followers <> counted.followers OR u.following <> counted.following);`,
	)
	if err != nil {
		return 0, fmt.Errorf("recount follows: %w", err)
	}
	return tag.RowsAffected(), nil
}

func (r *Repo) SetScore(ctx context.Context, id string, score float64) error {
	tag, err := r.db.Exec(ctx, `UPDATE posts SET score = $2 WHERE id = $1;`, id, score)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return posts.ErrPostNotFound
	}
	return nil
}
