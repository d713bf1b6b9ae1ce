// Package engagement records likes, shares and comments and keeps post scores in step with them.
package engagement

import (
	"errors"
	"strings"
	"time"

	"github.com/racedirector/racedirector/internal/feed"
)

const maxCommentLength = 1000

var (
	ErrCommentNotFound  = errors.New("comment not found")
	ErrNotCommentAuthor = errors.New("only the author can delete a comment")
	ErrCommentEmpty     = errors.New("comment is empty")
	ErrCommentTooLong   = errors.New("comment must be at most 1000 characters")
)

type Comment struct {
	ID        string    `json:"id"`
	PostID    string    `json:"postId"`
	UserID    string    `json:"userId"`
	Content   string    `json:"content"`
	Likes     int64     `json:"likes"`
	CreatedAt time.Time `json:"createdAt"`
}

func (c Comment) FeedKey() feed.Key {
	return feed.Key{
		ID:        c.ID,
		CreatedAt: c.CreatedAt,
	}
}

func validateComment(content string) (string, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return "", ErrCommentEmpty
	}
	if len([]rune(content)) > maxCommentLength {
		return "", ErrCommentTooLong
	}
	return content, nil
}

func isValidationError(err error) bool {
	return errors.Is(err, ErrCommentEmpty) || errors.Is(err, ErrCommentTooLong)
}
