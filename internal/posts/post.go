// Package posts publishes, serves and edits blog posts and pages through the post feeds.
package posts

import (
	"errors"
	"strings"
	"time"

	"github.com/racedirector/racedirector/internal/content"
	"github.com/racedirector/racedirector/internal/feed"
	"github.com/racedirector/racedirector/internal/ranking"
)

const (
	documentsPrefix  = "posts/"
	maxSummaryLength = 300
)

var (
	ErrPostNotFound = errors.New("post not found")
	ErrNotAuthor    = errors.New("only the author can change a post")
)

type CoverImage struct {
	URL     string `json:"url"`
	Caption string `json:"caption"`
}

type Post struct {
	ID         string     `json:"id"`
	AuthorID   string     `json:"authorId"`
	Headline   string     `json:"headline"`
	Summary    string     `json:"summary"`
	CoverImage CoverImage `json:"coverImage"`
	// MarkdownURL points at the rendered body document
	MarkdownURL  string `json:"markdownUrl"`
	MarkdownPath string `json:"-"`

	ranking.Counters
	Score     float64   `json:"score"`
	CreatedAt time.Time `json:"createdAt"`

	Blocks []content.Block `json:"-"`
}

func (p Post) FeedKey() feed.Key {
	return feed.Key{
		ID:        p.ID,
		Score:     p.Score,
		CreatedAt: p.CreatedAt,
	}
}

// ValidationError is a user facing problem with a post draft.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

var (
	ErrHeadlineRequired     = &ValidationError{Field: "headline", Message: "Headline is required"}
	ErrHeadlineTooLong      = &ValidationError{Field: "headline", Message: "Headline must be at most 80 characters"}
	ErrContentRequired      = &ValidationError{Field: "content", Message: "Content is required"}
	ErrSummaryRequired      = &ValidationError{Field: "summary", Message: "Summary is required"}
	ErrSummaryTooLong       = &ValidationError{Field: "summary", Message: "Summary must be at most 300 characters"}
	ErrCoverImageRequired   = &ValidationError{Field: "coverImage", Message: "Cover image is required"}
	ErrCoverCaptionRequired = &ValidationError{Field: "coverImageCaption", Message: "Cover image caption is required"}
)

// Draft is what an author submits when publishing or updating a post.
type Draft struct {
	Headline   string          `json:"headline"`
	Summary    string          `json:"summary"`
	CoverImage CoverImage      `json:"coverImage"`
	Blocks     []content.Block `json:"blocks"`
}

// Validate checks the draft in a fixed order and reports the first problem found.
// On success the headline comes back normalized.
func (d *Draft) Validate() error {
	if isBlank(d.Headline) {
		return ErrHeadlineRequired
	}
	headline, err := content.NormalizeHeadline(d.Headline)
	if err != nil {
		return ErrHeadlineTooLong
	}
	if !content.HasContent(d.Blocks) {
		return ErrContentRequired
	}
	if isBlank(d.Summary) {
		return ErrSummaryRequired
	}
	if len([]rune(d.Summary)) > maxSummaryLength {
		return ErrSummaryTooLong
	}
	if isBlank(d.CoverImage.URL) {
		return ErrCoverImageRequired
	}
	if isBlank(d.CoverImage.Caption) {
		return ErrCoverCaptionRequired
	}
	for _, b := range d.Blocks {
		if !b.Kind.Valid() {
			return &ValidationError{Field: "content", Message: "Unknown block kind: " + string(b.Kind)}
		}
	}

	d.Headline = headline
	return nil
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
