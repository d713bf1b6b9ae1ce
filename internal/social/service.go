package social

import (
	"context"
	"time"

	"github.com/racedirector/racedirector/internal/auth"
	"github.com/racedirector/racedirector/internal/telemetry/metrics"
	"github.com/racedirector/racedirector/internal/telemetry/tracing"

	"github.com/prometheus/client_golang/prometheus"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

type followsRepo interface {
	Follow(ctx context.Context, followerID, followeeID string, at time.Time) (bool, error)
	Unfollow(ctx context.Context, followerID, followeeID string) (bool, error)
	IsFollowing(ctx context.Context, followerID, followeeID string) (bool, error)
	AdjustFollowCounts(ctx context.Context, followerID, followeeID string, delta int) error
}

type profilesRepo interface {
	ByID(ctx context.Context, id string) (*auth.User, error)
}

type FollowState struct {
	UserID    string `json:"userId"`
	Following bool   `json:"following"`
}

type Service struct {
	follows  followsRepo
	profiles profilesRepo
	metrics  *metrics.Manager
	now      func() time.Time
}

func NewService(follows followsRepo, profiles profilesRepo, metricsManager *metrics.Manager) *Service {
	return &Service{
		follows:  follows,
		profiles: profiles,
		metrics:  metricsManager,
		now:      time.Now,
	}
}

// Profile returns the public view of a user.
func (s *Service) Profile(ctx context.Context, userID string) (*auth.User, error) {
	user, err := s.profiles.ByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	public := user.Public()
	return &public, nil
}

func (s *Service) Follow(ctx context.Context, followerID, followeeID string) (_ *FollowState, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "socialService.follow")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if followerID == followeeID {
		return nil, ErrSelfFollow
	}

	changed, err := s.follows.Follow(ctx, followerID, followeeID, s.now().UTC())
	if err != nil {
		return nil, err
	}
	span.SetAttributes(attribute.Bool("changed", changed))
	if changed {
		s.metrics.CounterEngagements.With(prometheus.Labels{"kind": "follow"}).Inc()
		s.adjustCounts(ctx, followerID, followeeID, 1)
	}

	return &FollowState{UserID: followeeID, Following: true}, nil
}

func (s *Service) Unfollow(ctx context.Context, followerID, followeeID string) (_ *FollowState, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "socialService.unfollow")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	changed, err := s.follows.Unfollow(ctx, followerID, followeeID)
	if err != nil {
		return nil, err
	}
	if changed {
		s.metrics.CounterEngagements.With(prometheus.Labels{"kind": "unfollow"}).Inc()
		s.adjustCounts(ctx, followerID, followeeID, -1)
	}

	return &FollowState{UserID: followeeID, Following: false}, nil
}

// adjustCounts is best effort: the follow edge is already stored and the reconcile job repairs the counters.
func (s *Service) adjustCounts(ctx context.Context, followerID, followeeID string, delta int) {
	if err := s.follows.AdjustFollowCounts(ctx, followerID, followeeID, delta); err != nil {
		log.Errorf("adjust follow counts %s -> %s by %d: %s", followerID, followeeID, delta, err)
	}
}

func (s *Service) IsFollowing(ctx context.Context, followerID, followeeID string) (*FollowState, error) {
	following, err := s.follows.IsFollowing(ctx, followerID, followeeID)
	if err != nil {
		return nil, err
	}
	return &FollowState{UserID: followeeID, Following: following}, nil
}
