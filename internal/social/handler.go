package social

import (
	"context"
	"errors"
	"net/http"

	"github.com/racedirector/racedirector/internal/auth"
	"github.com/racedirector/racedirector/internal/telemetry/tracing"
	"github.com/racedirector/racedirector/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

type socialService interface {
	Profile(ctx context.Context, userID string) (*auth.User, error)
	Follow(ctx context.Context, followerID, followeeID string) (*FollowState, error)
	Unfollow(ctx context.Context, followerID, followeeID string) (*FollowState, error)
	IsFollowing(ctx context.Context, followerID, followeeID string) (*FollowState, error)
}

type Handler struct {
	service socialService
}

func NewHandler(service socialService) *Handler {
	return &Handler{
		service: service,
	}
}

func (handler *Handler) SetupRoutes(router *mux.Router) {
	router.HandleFunc("/users/{id}", handler.handleProfile).Methods("GET", "OPTIONS").Name("profile")
	router.HandleFunc("/users/{id}/follow", handler.handleFollowState).Methods("GET", "OPTIONS").Name("follow-state")
	router.HandleFunc("/users/{id}/follow", handler.handleFollow).Methods("PUT").Name("follow")
	router.HandleFunc("/users/{id}/follow", handler.handleUnfollow).Methods("DELETE").Name("unfollow")
}

func writeError(w http.ResponseWriter, span trace.Span, what string, err error) {
	switch {
	case errors.Is(err, ErrSelfFollow):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, auth.ErrUserNotFound):
		http.Error(w, "user not found", http.StatusNotFound)
	default:
		log.Errorf("%s: %s", what, err)
		span.SetStatus(codes.Error, err.Error())
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

func (handler *Handler) handleProfile(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "socialHandler.profile")
	defer span.End()

	userID := mux.Vars(r)["id"]
	user, err := handler.service.Profile(ctx, userID)
	if err != nil {
		writeError(w, span, "get profile "+userID, err)
		return
	}

	pkg.WriteJSON(w, http.StatusOK, user)
}

func (handler *Handler) handleFollowState(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "socialHandler.followState")
	defer span.End()

	userID := mux.Vars(r)["id"]
	session, ok := auth.SessionFrom(ctx)
	if !ok {
		pkg.WriteJSON(w, http.StatusOK, FollowState{UserID: userID})
		return
	}

	state, err := handler.service.IsFollowing(ctx, session.UserID, userID)
	if err != nil {
		writeError(w, span, "follow state "+userID, err)
		return
	}

	pkg.WriteJSON(w, http.StatusOK, state)
}

func (handler *Handler) handleFollow(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "socialHandler.follow")
	defer span.End()

	session, ok := auth.SessionFrom(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	userID := mux.Vars(r)["id"]
	state, err := handler.service.Follow(ctx, session.UserID, userID)
	if err != nil {
		writeError(w, span, "follow "+userID, err)
		return
	}

	pkg.WriteJSON(w, http.StatusOK, state)
}

func (handler *Handler) handleUnfollow(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "socialHandler.unfollow")
	defer span.End()

	session, ok := auth.SessionFrom(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	userID := mux.Vars(r)["id"]
	state, err := handler.service.Unfollow(ctx, session.UserID, userID)
	if err != nil {
		writeError(w, span, "unfollow "+userID, err)
		return
	}

	pkg.WriteJSON(w, http.StatusOK, state)
}
