package posts

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/racedirector/racedirector/internal/content"
	"github.com/racedirector/racedirector/internal/feed"
	"github.com/racedirector/racedirector/internal/ranking"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var _ feed.Source[Post] = (*Repo)(nil)

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

const postColumns = `id, author_id, headline, summary, cover_image_url, cover_image_caption,
	markdown_path, markdown_url, blocks, like_count, comment_count, share_count, view_count, score, created_at`

const countersColumns = `like_count, comment_count, share_count, view_count`

func scanPost(row pgx.Row) (*Post, error) {
	var p Post
	var blocks []byte
	if err := row.Scan(
		&p.ID, &p.AuthorID, &p.Headline, &p.Summary, &p.CoverImage.URL, &p.CoverImage.Caption,
		&p.MarkdownPath, &p.MarkdownURL, &blocks,
		&p.Likes, &p.Comments, &p.Shares, &p.Views, &p.Score, &p.CreatedAt,
	); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(blocks, &p.Blocks); err != nil {
		return nil, fmt.Errorf("unmarshal post %s blocks: %w", p.ID, err)
	}
	return &p, nil
}

func scanCounters(row pgx.Row) (ranking.Counters, error) {
	var c ranking.Counters
	if err := row.Scan(&c.Likes, &c.Comments, &c.Shares, &c.Views); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ranking.Counters{}, ErrPostNotFound
		}
		return ranking.Counters{}, err
	}
	return c, nil
}

func (r *Repo) Create(ctx context.Context, post *Post) error {
	blocks, err := json.Marshal(post.Blocks)
	if err != nil {
		return fmt.Errorf("marshal blocks: %w", err)
	}

	_, err = r.db.Exec(
		ctx,
		`INSERT INTO posts (
			id, author_id, headline, summary, cover_image_url, cover_image_caption,
			markdown_path, markdown_url, blocks, score, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);`,
		post.ID, post.AuthorID, post.Headline, post.Summary, post.CoverImage.URL, post.CoverImage.Caption,
		post.MarkdownPath, post.MarkdownURL, blocks, post.Score, post.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert post: %w", err)
	}
	return nil
}

func (r *Repo) Get(ctx context.Context, id string) (*Post, error) {
	post, err := scanPost(r.db.QueryRow(ctx, `SELECT `+postColumns+` FROM posts WHERE id = $1;`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrPostNotFound
		}
		return nil, err
	}
	return post, nil
}

// UpdateContent replaces the metadata and blocks of a post. The body document keeps its path.
func (r *Repo) UpdateContent(ctx context.Context, post *Post) error {
	blocks, err := json.Marshal(post.Blocks)
	if err != nil {
		return fmt.Errorf("marshal blocks: %w", err)
	}

	tag, err := r.db.Exec(
		ctx,
		`UPDATE posts SET headline = $2, summary = $3, cover_image_url = $4, cover_image_caption = $5, blocks = $6
		WHERE id = $1;`,
		post.ID, post.Headline, post.Summary, post.CoverImage.URL, post.CoverImage.Caption, blocks,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrPostNotFound
	}
	return nil
}

func (r *Repo) UpdateBlocks(ctx context.Context, id string, blocks []content.Block) error {
	raw, err := json.Marshal(blocks)
	if err != nil {
		return fmt.Errorf("marshal blocks: %w", err)
	}

	tag, err := r.db.Exec(ctx, `UPDATE posts SET blocks = $2 WHERE id = $1;`, id, raw)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrPostNotFound
	}
	return nil
}

func (r *Repo) Delete(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM posts WHERE id = $1;`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrPostNotFound
	}
	return nil
}

// IncrementViews atomically bumps the view counter and returns all counters after the change.
func (r *Repo) IncrementViews(ctx context.Context, id string) (ranking.Counters, error) {
	return scanCounters(r.db.QueryRow(
		ctx,
		`UPDATE posts SET view_count = view_count + 1 WHERE id = $1 RETURNING `+countersColumns+`;`,
		id,
	))
}

func (r *Repo) IncrementShares(ctx context.Context, id string) (ranking.Counters, error) {
	return scanCounters(r.db.QueryRow(
		ctx,
		`UPDATE posts SET share_count = share_count + 1 WHERE id = $1 RETURNING `+countersColumns+`;`,
		id,
	))
}

func (r *Repo) SetScore(ctx context.Context, id string, score float64) error {
	tag, err := r.db.Exec(ctx, `UPDATE posts SET score = $2 WHERE id = $1;`, id, score)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrPostNotFound
	}
	return nil
}

// After returns up to limit posts of q that come strictly after the given key.
func (r *Repo) After(ctx context.Context, q feed.Query, after *feed.Key, limit int) ([]Post, error) {
	var where []string
	var args []any
	if q.AuthorID != "" {
		args = append(args, q.AuthorID)
		where = append(where, fmt.Sprintf("author_id = $%d", len(args)))
	}

	cond, keyArgs, orderBy, err := feed.Keyset(q.Order, after, len(args)+1)
	if err != nil {
		return nil, err
	}
	if cond != "" {
		where = append(where, cond)
		args = append(args, keyArgs...)
	}

	query := `SELECT ` + postColumns + ` FROM posts`
	if len(where) > 0 {
		query += ` WHERE ` + strings.Join(where, " AND ")
	}
	args = append(args, limit)
	query += fmt.Sprintf(` ORDER BY %s LIMIT $%d;`, orderBy, len(args))

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var posts []Post
	for rows.Next() {
		post, err := scanPost(rows)
		if err != nil {
			return nil, err
		}
		posts = append(posts, *post)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return posts, nil
}
