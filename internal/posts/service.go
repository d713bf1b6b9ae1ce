package posts

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/racedirector/racedirector/internal/blobstore"
	"github.com/racedirector/racedirector/internal/content"
	"github.com/racedirector/racedirector/internal/feed"
	"github.com/racedirector/racedirector/internal/optimistic"
	"github.com/racedirector/racedirector/internal/ranking"
	"github.com/racedirector/racedirector/internal/telemetry/metrics"
	"github.com/racedirector/racedirector/internal/telemetry/tracing"
	"github.com/racedirector/racedirector/pkg"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

const defaultBackgroundTimeout = 10 * time.Second

var ErrInvalidEdit = errors.New("invalid edit")

type postsRepo interface {
	Create(ctx context.Context, post *Post) error
	Get(ctx context.Context, id string) (*Post, error)
	UpdateContent(ctx context.Context, post *Post) error
	UpdateBlocks(ctx context.Context, id string, blocks []content.Block) error
	Delete(ctx context.Context, id string) error
	IncrementViews(ctx context.Context, id string) (ranking.Counters, error)
	SetScore(ctx context.Context, id string, score float64) error
	After(ctx context.Context, q feed.Query, after *feed.Key, limit int) ([]Post, error)
}

type blobStore interface {
	Put(ctx context.Context, p string, r io.Reader, contentType string) (string, error)
	Get(ctx context.Context, p string) (io.ReadCloser, error)
	Delete(ctx context.Context, p string) error
}

type bodyCache interface {
	Get(key string) ([]byte, bool)
	Set(key string, body []byte)
	Delete(key string)
}

// publishNotifier is told about every new post, e.g. to announce it on Discord.
type publishNotifier interface {
	PostPublished(ctx context.Context, post Post) error
}

type ServiceParams struct {
	Repo              postsRepo
	Blobs             blobStore
	Cache             bodyCache
	Renderer          *content.Renderer
	Notifier          publishNotifier
	Weights           ranking.Weights
	FeedPageSizes     feed.PageSizes
	UserPostsPageSize int
	Metrics           *metrics.Manager
}

type Service struct {
	repo              postsRepo
	blobs             blobStore
	cache             bodyCache
	renderer          *content.Renderer
	notifier          publishNotifier
	rescorer          *ranking.Rescorer
	retriever         *feed.Retriever[Post]
	feedPageSizes     feed.PageSizes
	userPostsPageSize int
	metrics           *metrics.Manager

	now               func() time.Time
	backgroundTimeout time.Duration
	background        sync.WaitGroup
}

func NewService(params ServiceParams) *Service {
	renderer := params.Renderer
	if renderer == nil {
		renderer = content.NewRenderer(nil)
	}
	return &Service{
		repo:              params.Repo,
		blobs:             params.Blobs,
		cache:             params.Cache,
		renderer:          renderer,
		notifier:          params.Notifier,
		rescorer:          ranking.NewRescorer(params.Repo, params.Weights, params.Metrics.CounterScoreUpdateFailures),
		retriever:         feed.NewRetriever[Post](params.Repo),
		feedPageSizes:     params.FeedPageSizes,
		userPostsPageSize: params.UserPostsPageSize,
		metrics:           params.Metrics,
		now:               time.Now,
		backgroundTimeout: defaultBackgroundTimeout,
	}
}

// Wait blocks until background writes and notifications started so far are finished.
func (s *Service) Wait() {
	s.background.Wait()
}

func documentPath(id string) string {
	return documentsPrefix + id + content.DocumentExt
}

// Publish validates the draft, stores its rendered body and creates the post.
func (s *Service) Publish(ctx context.Context, authorID string, draft Draft) (_ *Post, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "postsService.publish")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if err := draft.Validate(); err != nil {
		return nil, err
	}

	body, filename, err := s.renderer.Render(draft.Headline, draft.Blocks)
	if err != nil {
		return nil, fmt.Errorf("render post: %w", err)
	}
	id := strings.TrimSuffix(filename, content.DocumentExt)
	docPath := documentPath(id)
	span.SetAttributes(attribute.String("post.id", id))

	url, err := s.blobs.Put(ctx, docPath, bytes.NewReader(body), pkg.ContentType.Markdown)
	if err != nil {
		return nil, fmt.Errorf("upload post body: %w", err)
	}

	post := &Post{
		ID:           id,
		AuthorID:     authorID,
		Headline:     draft.Headline,
		Summary:      strings.TrimSpace(draft.Summary),
		CoverImage:   draft.CoverImage,
		MarkdownURL:  url,
		MarkdownPath: docPath,
		CreatedAt:    s.now().UTC(),
		Blocks:       draft.Blocks,
	}
	if err := s.repo.Create(ctx, post); err != nil {
		if delErr := s.blobs.Delete(ctx, docPath); delErr != nil {
			log.Errorf("publish: remove orphaned body [%s]: %s", docPath, delErr)
		}
		return nil, err
	}

	s.cache.Set(docPath, body)
	s.metrics.CounterPostsPublished.Inc()
	log.Debugf("posts service: new post published: %s", id)

	if s.notifier != nil {
		s.runInBackground(ctx, "notify post published", func(ctx context.Context) error {
			return s.notifier.PostPublished(ctx, *post)
		})
	}

	return post, nil
}

// runInBackground runs fn detached from the caller's cancellation, bounded by the background timeout.
func (s *Service) runInBackground(ctx context.Context, what string, fn func(ctx context.Context) error) {
	bgCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.backgroundTimeout)
	s.background.Add(1)
	go func() {
		defer s.background.Done()
		defer cancel()
		if err := fn(bgCtx); err != nil {
			log.Errorf("%s: %s", what, err)
		}
	}()
}

func (s *Service) Get(ctx context.Context, id string) (*Post, error) {
	return s.repo.Get(ctx, id)
}

// View returns the post as the reader sees it after their visit is counted. The view
// counter and score are projected locally and written in the background; a failed
// write rolls the projection back and is only logged.
func (s *Service) View(ctx context.Context, id string) (*Post, error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "postsService.view")
	defer span.End()

	post, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	mutation := optimistic.New(*post)
	projected, err := mutation.Apply(func(p Post) Post {
		p.Views++
		p.Score = ranking.Score(p.Counters, s.rescorer.Weights())
		return p
	})
	if err != nil {
		return nil, err
	}

	writeCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.backgroundTimeout)
	err = mutation.Commit(writeCtx, func(ctx context.Context, projected Post) (Post, error) {
		counters, err := s.repo.IncrementViews(ctx, id)
		if err != nil {
			return Post{}, err
		}
		projected.Counters = counters
		projected.Score = s.rescorer.Rescore(ctx, id, counters)
		return projected, nil
	})
	if err != nil {
		cancel()
		return nil, err
	}

	s.background.Add(1)
	go func() {
		defer s.background.Done()
		defer cancel()
		<-mutation.Settled()
		if mutation.State() == optimistic.StateRolledBack {
			log.Warnf("record view of post [%s] rolled back: %s", id, mutation.Err())
			s.metrics.CounterOptimisticRollbacks.Inc()
		}
	}()

	return &projected, nil
}

// Body returns the markdown document of a post.
func (s *Service) Body(ctx context.Context, id string) ([]byte, error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "postsService.body")
	defer span.End()

	docPath := documentPath(id)
	if body, ok := s.cache.Get(docPath); ok {
		span.SetAttributes(attribute.Bool("cache.hit", true))
		return body, nil
	}

	rc, err := s.blobs.Get(ctx, docPath)
	if err != nil {
		if errors.Is(err, blobstore.ErrBlobNotFound) || errors.Is(err, blobstore.ErrInvalidPath) {
			return nil, ErrPostNotFound
		}
		return nil, fmt.Errorf("read post body: %w", err)
	}
	defer rc.Close()

	body, err := io.ReadAll(rc)
	if err != nil {
		return nil, fmt.Errorf("read post body: %w", err)
	}
	s.cache.Set(docPath, body)

	return body, nil
}

func (s *Service) authored(ctx context.Context, userID, id string) (*Post, error) {
	post, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if post.AuthorID != userID {
		return nil, ErrNotAuthor
	}
	return post, nil
}

func (s *Service) storeBody(ctx context.Context, post *Post) error {
	body, err := content.Body(post.Blocks)
	if err != nil {
		return fmt.Errorf("render post: %w", err)
	}
	if _, err := s.blobs.Put(ctx, post.MarkdownPath, bytes.NewReader(body), pkg.ContentType.Markdown); err != nil {
		return fmt.Errorf("upload post body: %w", err)
	}
	s.cache.Set(post.MarkdownPath, body)
	return nil
}

// Update replaces the content of a post. Only its author may do that; the id and body path stay the same.
func (s *Service) Update(ctx context.Context, userID, id string, draft Draft) (_ *Post, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "postsService.update")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if err := draft.Validate(); err != nil {
		return nil, err
	}

	post, err := s.authored(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	post.Headline = draft.Headline
	post.Summary = strings.TrimSpace(draft.Summary)
	post.CoverImage = draft.CoverImage
	post.Blocks = draft.Blocks

	if err := s.storeBody(ctx, post); err != nil {
		return nil, err
	}
	if err := s.repo.UpdateContent(ctx, post); err != nil {
		return nil, err
	}

	return post, nil
}

func (s *Service) Delete(ctx context.Context, userID, id string) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "postsService.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	post, err := s.authored(ctx, userID, id)
	if err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.cache.Delete(post.MarkdownPath)
	if err := s.blobs.Delete(ctx, post.MarkdownPath); err != nil && !errors.Is(err, blobstore.ErrBlobNotFound) {
		log.Errorf("delete post [%s]: remove body: %s", id, err)
	}

	return nil
}

// Editor is the editable state of a post in the studio.
type Editor struct {
	PostID string          `json:"postId"`
	Blocks []content.Block `json:"blocks"`
	Focus  int             `json:"focus"`
}

// EditorState returns the blocks of a post for its author to edit.
func (s *Service) EditorState(ctx context.Context, userID, id string) (*Editor, error) {
	post, err := s.authored(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	seq := content.NewSequence(post.Blocks)
	return &Editor{
		PostID: id,
		Blocks: seq.Blocks(),
		Focus:  seq.Len() - 1,
	}, nil
}

// ApplyEdits runs editor actions against the stored blocks in order and saves the result.
// The published body is re-rendered as long as some content is left.
func (s *Service) ApplyEdits(ctx context.Context, userID, id string, edits []content.Edit) (_ *Editor, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "postsService.applyEdits")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("edits", len(edits)))

	post, err := s.authored(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	seq := content.NewSequence(post.Blocks)
	focus := 0
	for i, e := range edits {
		focus, err = seq.Apply(e)
		if err != nil {
			return nil, fmt.Errorf("%w: edit %d: %s", ErrInvalidEdit, i, err)
		}
	}

	post.Blocks = seq.Blocks()
	if err := s.repo.UpdateBlocks(ctx, id, post.Blocks); err != nil {
		return nil, err
	}
	if content.HasContent(post.Blocks) {
		if err := s.storeBody(ctx, post); err != nil {
			return nil, err
		}
	}

	return &Editor{
		PostID: id,
		Blocks: post.Blocks,
		Focus:  focus,
	}, nil
}

// HomeFeed pages through all posts, highest score first.
func (s *Service) HomeFeed(ctx context.Context, cursor string) (feed.Page[Post], error) {
	return s.retriever.FetchPage(ctx, feed.Query{Order: feed.OrderScoreDesc}, s.feedPageSizes.For(cursor), cursor)
}

// UserPosts pages through the posts of one author, newest first.
func (s *Service) UserPosts(ctx context.Context, authorID, cursor string) (feed.Page[Post], error) {
	q := feed.Query{Order: feed.OrderCreatedAtDesc, AuthorID: authorID}
	return s.retriever.FetchPage(ctx, q, s.userPostsPageSize, cursor)
}
