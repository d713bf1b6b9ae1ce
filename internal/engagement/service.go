package engagement

import (
	"context"
	"time"

	"github.com/racedirector/racedirector/internal/feed"
	"github.com/racedirector/racedirector/internal/ranking"
	"github.com/racedirector/racedirector/internal/telemetry/metrics"
	"github.com/racedirector/racedirector/internal/telemetry/tracing"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

type engagementRepo interface {
	LikePost(ctx context.Context, postID, userID string, at time.Time) (ranking.Counters, bool, error)
	UnlikePost(ctx context.Context, postID, userID string) (ranking.Counters, bool, error)
	IsPostLiked(ctx context.Context, postID, userID string) (bool, error)
	AddComment(ctx context.Context, c *Comment) (ranking.Counters, error)
	DeleteComment(ctx context.Context, commentID, userID string) (string, ranking.Counters, error)
	LikeComment(ctx context.Context, commentID, userID string, at time.Time) (int64, bool, error)
	UnlikeComment(ctx context.Context, commentID, userID string) (int64, bool, error)
	CommentCount(ctx context.Context, postID string) (int, error)
	After(ctx context.Context, q feed.Query, after *feed.Key, limit int) ([]Comment, error)
}

// postCounters moves the counters kept on the post row itself.
type postCounters interface {
	IncrementShares(ctx context.Context, id string) (ranking.Counters, error)
	SetScore(ctx context.Context, id string, score float64) error
}

// PostEngagement is the state of a post after an engagement event.
type PostEngagement struct {
	PostID string `json:"postId"`
	Liked  bool   `json:"liked"`
	ranking.Counters
	Score float64 `json:"score"`
}

type Service struct {
	repo     engagementRepo
	posts    postCounters
	rescorer *ranking.Rescorer
	comments *feed.Retriever[Comment]
	metrics  *metrics.Manager

	now       func() time.Time
	NewIDFunc func() string
}

func NewService(repo engagementRepo, posts postCounters, weights ranking.Weights, metricsManager *metrics.Manager) *Service {
	return &Service{
		repo:      repo,
		posts:     posts,
		rescorer:  ranking.NewRescorer(posts, weights, metricsManager.CounterScoreUpdateFailures),
		comments:  feed.NewRetriever[Comment](repo),
		metrics:   metricsManager,
		now:       time.Now,
		NewIDFunc: uuid.NewString,
	}
}

func (s *Service) count(kind string) {
	s.metrics.CounterEngagements.With(prometheus.Labels{"kind": kind}).Inc()
}

// settle rescores the post when its counters moved, otherwise the current score is only computed.
func (s *Service) settle(ctx context.Context, postID string, counters ranking.Counters, changed bool) float64 {
	if !changed {
		return ranking.Score(counters, s.rescorer.Weights())
	}
	return s.rescorer.Rescore(ctx, postID, counters)
}

func (s *Service) LikePost(ctx context.Context, userID, postID string) (_ *PostEngagement, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "engagementService.likePost")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	counters, changed, err := s.repo.LikePost(ctx, postID, userID, s.now().UTC())
	if err != nil {
		return nil, err
	}
	span.SetAttributes(attribute.Bool("changed", changed))
	if changed {
		s.count("like")
	}

	return &PostEngagement{
		PostID:   postID,
		Liked:    true,
		Counters: counters,
		Score:    s.settle(ctx, postID, counters, changed),
	}, nil
}

func (s *Service) UnlikePost(ctx context.Context, userID, postID string) (_ *PostEngagement, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "engagementService.unlikePost")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	counters, changed, err := s.repo.UnlikePost(ctx, postID, userID)
	if err != nil {
		return nil, err
	}
	if changed {
		s.count("unlike")
	}

	return &PostEngagement{
		PostID:   postID,
		Liked:    false,
		Counters: counters,
		Score:    s.settle(ctx, postID, counters, changed),
	}, nil
}

func (s *Service) IsPostLiked(ctx context.Context, userID, postID string) (bool, error) {
	return s.repo.IsPostLiked(ctx, postID, userID)
}

// Share counts a share of the post. Anyone may share, signed in or not.
func (s *Service) Share(ctx context.Context, postID string) (_ *PostEngagement, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "engagementService.share")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	counters, err := s.posts.IncrementShares(ctx, postID)
	if err != nil {
		return nil, err
	}
	s.count("share")

	return &PostEngagement{
		PostID:   postID,
		Counters: counters,
		Score:    s.settle(ctx, postID, counters, true),
	}, nil
}

func (s *Service) AddComment(ctx context.Context, userID, postID, content string) (_ *Comment, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "engagementService.addComment")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	content, err = validateComment(content)
	if err != nil {
		return nil, err
	}

	comment := &Comment{
		ID:        s.NewIDFunc(),
		PostID:    postID,
		UserID:    userID,
		Content:   content,
		CreatedAt: s.now().UTC(),
	}
	counters, err := s.repo.AddComment(ctx, comment)
	if err != nil {
		return nil, err
	}
	s.count("comment")
	s.settle(ctx, postID, counters, true)

	log.Tracef("new comment %s on post %s", comment.ID, postID)
	return comment, nil
}

func (s *Service) DeleteComment(ctx context.Context, userID, commentID string) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "engagementService.deleteComment")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	postID, counters, err := s.repo.DeleteComment(ctx, commentID, userID)
	if err != nil {
		return err
	}
	s.count("uncomment")
	s.settle(ctx, postID, counters, true)

	return nil
}

// Comments returns the next batch of a post's comments, newest first. The batch size comes
// from the post's comment count and the number of comments the reader already has.
func (s *Service) Comments(ctx context.Context, postID string, loaded int, cursor string) (_ feed.Page[Comment], err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "engagementService.comments")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	count, err := s.repo.CommentCount(ctx, postID)
	if err != nil {
		return feed.Page[Comment]{}, err
	}

	batch := feed.LoadMoreComments(count, loaded)
	span.SetAttributes(attribute.Int("comments.count", count), attribute.Int("comments.batch", batch))
	if batch == 0 {
		return feed.Page[Comment]{Items: []Comment{}, Done: true}, nil
	}

	page, err := s.comments.FetchPage(ctx, feed.Query{Order: feed.OrderCreatedAtDesc, PostID: postID}, batch, cursor)
	if err != nil {
		return feed.Page[Comment]{}, err
	}
	if loaded+len(page.Items) >= count {
		page.Done = true
	}

	return page, nil
}

func (s *Service) LikeComment(ctx context.Context, userID, commentID string) (int64, error) {
	likes, changed, err := s.repo.LikeComment(ctx, commentID, userID, s.now().UTC())
	if err != nil {
		return 0, err
	}
	if changed {
		s.count("comment_like")
	}
	return likes, nil
}

func (s *Service) UnlikeComment(ctx context.Context, userID, commentID string) (int64, error) {
	likes, changed, err := s.repo.UnlikeComment(ctx, commentID, userID)
	if err != nil {
		return 0, err
	}
	if changed {
		s.count("comment_unlike")
	}
	return likes, nil
}
