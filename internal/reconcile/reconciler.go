// Package reconcile repairs denormalized counters and post scores that drifted from their source edges.
package reconcile

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/racedirector/racedirector/internal/feed"
	"github.com/racedirector/racedirector/internal/posts"
	"github.com/racedirector/racedirector/internal/ranking"
	"github.com/racedirector/racedirector/internal/telemetry/metrics"
	"github.com/racedirector/racedirector/internal/telemetry/tracing"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/multierr"
)

const defaultBatchSize = 100

type countersRepo interface {
	RecountPost(ctx context.Context, postID string) (before, after ranking.Counters, err error)
	RecountCommentLikes(ctx context.Context, postID string) (int64, error)
	RecountFollows(ctx context.Context) (int64, error)
	SetScore(ctx context.Context, id string, score float64) error
}

// Report sums up a single reconcile run.
type Report struct {
	Posts            int
	RepairedCounters int
	RepairedScores   int
	RepairedComments int64
	RepairedUsers    int64
	Duration         time.Duration
}

func (r Report) String() string {
	return fmt.Sprintf(
		"posts: %d, repaired counters: %d, repaired scores: %d, repaired comments: %d, repaired users: %d, took: %s",
		r.Posts, r.RepairedCounters, r.RepairedScores, r.RepairedComments, r.RepairedUsers, r.Duration,
	)
}

type Reconciler struct {
	posts     *feed.Retriever[posts.Post]
	repo      countersRepo
	weights   ranking.Weights
	batchSize int
	metrics   *metrics.Manager
}

func NewReconciler(source feed.Source[posts.Post], repo countersRepo, weights ranking.Weights, metricsManager *metrics.Manager) *Reconciler {
	return &Reconciler{
		posts:     feed.NewRetriever[posts.Post](source),
		repo:      repo,
		weights:   weights,
		batchSize: defaultBatchSize,
		metrics:   metricsManager,
	}
}

// Run walks all posts, newest first, recounting their counters from edges and
// rewriting scores that do not match. A failing post does not stop the run; all failures are
// returned together at the end.
func (r *Reconciler) Run(ctx context.Context) (_ Report, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "reconciler.run")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	start := time.Now()
	var report Report
	var errs error

	// created_at is never rewritten, so the walk is stable while scores change underneath it
	loader := feed.NewLoader(r.posts, feed.Query{Order: feed.OrderCreatedAtDesc}, feed.PageSizes{
		First: r.batchSize,
		Next:  r.batchSize,
	})
	for !loader.Done() {
		if err := ctx.Err(); err != nil {
			return report, multierr.Append(errs, err)
		}

		batch, err := loader.LoadMore(ctx)
		if err != nil {
			return report, multierr.Append(errs, fmt.Errorf("load posts: %w", err))
		}
		for _, post := range batch {
			report.Posts++
			errs = multierr.Append(errs, r.reconcilePost(ctx, post, &report))
		}
	}

	repairedUsers, err := r.repo.RecountFollows(ctx)
	errs = multierr.Append(errs, err)
	report.RepairedUsers = repairedUsers

	report.Duration = time.Since(start)
	r.metrics.HistReconcileDuration.Observe(report.Duration.Seconds())
	span.SetAttributes(
		attribute.Int("posts", report.Posts),
		attribute.Int("repaired_scores", report.RepairedScores),
	)

	return report, errs
}

func (r *Reconciler) reconcilePost(ctx context.Context, post posts.Post, report *Report) error {
	before, after, err := r.repo.RecountPost(ctx, post.ID)
	if errors.Is(err, posts.ErrPostNotFound) {
		log.Debugf("reconcile: post %s deleted since the page was loaded, skipping", post.ID)
		return nil
	}
	if err != nil {
		return fmt.Errorf("post %s: %w", post.ID, err)
	}
	if before != after {
		log.Debugf("reconcile: post %s counters %+v -> %+v", post.ID, before, after)
		report.RepairedCounters++
	}

	repairedComments, err := r.repo.RecountCommentLikes(ctx, post.ID)
	if err != nil {
		return fmt.Errorf("post %s: %w", post.ID, err)
	}
	report.RepairedComments += repairedComments

	score := ranking.Score(after, r.weights)
	if score != post.Score {
		err := r.repo.SetScore(ctx, post.ID, score)
		if errors.Is(err, posts.ErrPostNotFound) {
			log.Debugf("reconcile: post %s deleted before its score was set, skipping", post.ID)
			return nil
		}
		if err != nil {
			return fmt.Errorf("post %s: set score: %w", post.ID, err)
		}
		report.RepairedScores++
	}

	r.metrics.CounterReconciledPosts.Inc()
	return nil
}

// RunEvery runs the reconciler every interval until ctx is done.
func (r *Reconciler) RunEvery(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Debugf("reconciler stopped: %s", ctx.Err())
			return
		case <-ticker.C:
			report, err := r.Run(ctx)
			if err != nil {
				log.Errorf("reconcile run failed: %s", err)
			}
			log.Infof("reconcile run done: %s", report)
		}
	}
}
