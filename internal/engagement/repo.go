package engagement

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/racedirector/racedirector/internal/feed"
	"github.com/racedirector/racedirector/internal/posts"
	"github.com/racedirector/racedirector/internal/ranking"
	"github.com/racedirector/racedirector/pkg"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var _ feed.Source[Comment] = (*Repo)(nil)

// Repo stores like and comment edges. Every edge change moves the matching
// denormalized counter in the same transaction, and only when the edge changed.
type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

const returningCounters = ` RETURNING like_count, comment_count, share_count, view_count`

func scanCounters(row pgx.Row) (ranking.Counters, error) {
	var c ranking.Counters
	if err := row.Scan(&c.Likes, &c.Comments, &c.Shares, &c.Views); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ranking.Counters{}, posts.ErrPostNotFound
		}
		return ranking.Counters{}, err
	}
	return c, nil
}

func selectCounters(ctx context.Context, tx pgx.Tx, postID string) (ranking.Counters, error) {
	return scanCounters(tx.QueryRow(
		ctx,
		`SELECT like_count, comment_count, share_count, view_count FROM posts WHERE id = $1;`,
		postID,
	))
}

// LikePost adds the like edge of userID on postID. It reports whether the edge is new.
func (r *Repo) LikePost(ctx context.Context, postID, userID string, at time.Time) (counters ranking.Counters, changed bool, err error) {
	err = pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		tag, err := tx.Exec(
			ctx,
			`INSERT INTO post_likes (post_id, user_id, created_at) VALUES ($1, $2, $3) ON CONFLICT DO NOTHING;`,
			postID, userID, at,
		)
		if err != nil {
			if pkg.IsForeignKeyViolationError(err) {
				return posts.ErrPostNotFound
			}
			return fmt.Errorf("insert post like: %w", err)
		}

		changed = tag.RowsAffected() == 1
		if !changed {
			counters, err = selectCounters(ctx, tx, postID)
			return err
		}
		counters, err = scanCounters(tx.QueryRow(
			ctx,
			`UPDATE posts SET like_count = like_count + 1 WHERE id = $1`+returningCounters+`;`,
			postID,
		))
		return err
	})
	return counters, changed, err
}

func (r *Repo) UnlikePost(ctx context.Context, postID, userID string) (counters ranking.Counters, changed bool, err error) {
	err = pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		tag, err := tx.Exec(ctx, `DELETE FROM post_likes WHERE post_id = $1 AND user_id = $2;`, postID, userID)
		if err != nil {
			return fmt.Errorf("delete post like: %w", err)
		}

		changed = tag.RowsAffected() == 1
		if !changed {
			counters, err = selectCounters(ctx, tx, postID)
			return err
		}
		counters, err = scanCounters(tx.QueryRow(
			ctx,
			`UPDATE posts SET like_count = GREATEST(like_count - 1, 0) WHERE id = $1`+returningCounters+`;`,
			postID,
		))
		return err
	})
	return counters, changed, err
}

func (r *Repo) IsPostLiked(ctx context.Context, postID, userID string) (bool, error) {
	var liked bool
	err := r.db.QueryRow(
		ctx,
		`SELECT EXISTS (SELECT 1 FROM post_likes WHERE post_id = $1 AND user_id = $2);`,
		postID, userID,
	).Scan(&liked)
	return liked, err
}

// AddComment stores c and returns the post counters after the comment count moved.
func (r *Repo) AddComment(ctx context.Context, c *Comment) (counters ranking.Counters, err error) {
	err = pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		if _, err := tx.Exec(
			ctx,
			`INSERT INTO comments (id, post_id, user_id, content, likes, created_at) VALUES ($1, $2, $3, $4, 0, $5);`,
			c.ID, c.PostID, c.UserID, c.Content, c.CreatedAt,
		); err != nil {
			if pkg.IsForeignKeyViolationError(err) {
				return posts.ErrPostNotFound
			}
			return fmt.Errorf("insert comment: %w", err)
		}

		counters, err = scanCounters(tx.QueryRow(
			ctx,
			`UPDATE posts SET comment_count = comment_count + 1 WHERE id = $1`+returningCounters+`;`,
			c.PostID,
		))
		return err
	})
	return counters, err
}

// DeleteComment removes a comment of userID and returns the id of its post with the counters after the change.
func (r *Repo) DeleteComment(ctx context.Context, commentID, userID string) (postID string, counters ranking.Counters, err error) {
	err = pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		var authorID string
		err := tx.QueryRow(
			ctx,
			`SELECT post_id, user_id FROM comments WHERE id = $1 FOR UPDATE;`,
			commentID,
		).Scan(&postID, &authorID)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return ErrCommentNotFound
			}
			return err
		}
		if authorID != userID {
			return ErrNotCommentAuthor
		}

		if _, err := tx.Exec(ctx, `DELETE FROM comments WHERE id = $1;`, commentID); err != nil {
			return fmt.Errorf("delete comment: %w", err)
		}

		counters, err = scanCounters(tx.QueryRow(
			ctx,
			`UPDATE posts SET comment_count = GREATEST(comment_count - 1, 0) WHERE id = $1`+returningCounters+`;`,
			postID,
		))
		return err
	})
	return postID, counters, err
}

func scanLikes(row pgx.Row) (int64, error) {
	var likes int64
	if err := row.Scan(&likes); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, ErrCommentNotFound
		}
		return 0, err
	}
	return likes, nil
}

// LikeComment adds the like edge of userID on a comment and returns the comment's like count.
// changed is false when the edge was already there.
func (r *Repo) LikeComment(ctx context.Context, commentID, userID string, at time.Time) (likes int64, changed bool, err error) {
	err = pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		tag, err := tx.Exec(
			ctx,
			`INSERT INTO comment_likes (comment_id, user_id, created_at) VALUES ($1, $2, $3) ON CONFLICT DO NOTHING;`,
			commentID, userID, at,
		)
		if err != nil {
			if pkg.IsForeignKeyViolationError(err) {
				return ErrCommentNotFound
			}
			return fmt.Errorf("insert comment like: %w", err)
		}

		changed = tag.RowsAffected() == 1
		query := `SELECT likes FROM comments WHERE id = $1;`
		if changed {
			query = `UPDATE comments SET likes = likes + 1 WHERE id = $1 RETURNING likes;`
		}
		likes, err = scanLikes(tx.QueryRow(ctx, query, commentID))
		return err
	})
	return likes, changed, err
}

func (r *Repo) UnlikeComment(ctx context.Context, commentID, userID string) (likes int64, changed bool, err error) {
	err = pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		tag, err := tx.Exec(ctx, `DELETE FROM comment_likes WHERE comment_id = $1 AND user_id = $2;`, commentID, userID)
		if err != nil {
			return fmt.Errorf("delete comment like: %w", err)
		}

		changed = tag.RowsAffected() == 1
		query := `SELECT likes FROM comments WHERE id = $1;`
		if changed {
			query = `UPDATE comments SET likes = GREATEST(likes - 1, 0) WHERE id = $1 RETURNING likes;`
		}
		likes, err = scanLikes(tx.QueryRow(ctx, query, commentID))
		return err
	})
	return likes, changed, err
}

func (r *Repo) CommentCount(ctx context.Context, postID string) (int, error) {
	var count int
	if err := r.db.QueryRow(ctx, `SELECT comment_count FROM posts WHERE id = $1;`, postID).Scan(&count); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, posts.ErrPostNotFound
		}
		return 0, err
	}
	return count, nil
}

// After pages through the comments of q.PostID, newest first.
func (r *Repo) After(ctx context.Context, q feed.Query, after *feed.Key, limit int) ([]Comment, error) {
	if q.Order != feed.OrderCreatedAtDesc {
		return nil, fmt.Errorf("%w: comments cannot be ordered by %q", feed.ErrUnknownOrder, q.Order)
	}

	args := []any{q.PostID}
	cond, keyArgs, orderBy, err := feed.Keyset(q.Order, after, 2)
	if err != nil {
		return nil, err
	}

	query := `SELECT id, post_id, user_id, content, likes, created_at FROM comments WHERE post_id = $1`
	if cond != "" {
		query += ` AND ` + cond
		args = append(args, keyArgs...)
	}
	args = append(args, limit)
	query += fmt.Sprintf(` ORDER BY %s LIMIT $%d;`, orderBy, len(args))

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var comments []Comment
	for rows.Next() {
		var c Comment
		if err := rows.Scan(&c.ID, &c.PostID, &c.UserID, &c.Content, &c.Likes, &c.CreatedAt); err != nil {
			return nil, err
		}
		comments = append(comments, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return comments, nil
}
