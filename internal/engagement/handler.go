package engagement

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/racedirector/racedirector/internal/auth"
	"github.com/racedirector/racedirector/internal/feed"
	"github.com/racedirector/racedirector/internal/posts"
	"github.com/racedirector/racedirector/internal/telemetry/tracing"
	"github.com/racedirector/racedirector/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

type engagementService interface {
	LikePost(ctx context.Context, userID, postID string) (*PostEngagement, error)
	UnlikePost(ctx context.Context, userID, postID string) (*PostEngagement, error)
	IsPostLiked(ctx context.Context, userID, postID string) (bool, error)
	Share(ctx context.Context, postID string) (*PostEngagement, error)
	AddComment(ctx context.Context, userID, postID, content string) (*Comment, error)
	DeleteComment(ctx context.Context, userID, commentID string) error
	Comments(ctx context.Context, postID string, loaded int, cursor string) (feed.Page[Comment], error)
	LikeComment(ctx context.Context, userID, commentID string) (int64, error)
	UnlikeComment(ctx context.Context, userID, commentID string) (int64, error)
}

type addCommentRequest struct {
	Content string `json:"content"`
}

type likedResponse struct {
	Liked bool `json:"liked"`
}

type commentLikesResponse struct {
	CommentID string `json:"commentId"`
	Likes     int64  `json:"likes"`
}

type Handler struct {
	service engagementService
}

func NewHandler(service engagementService) *Handler {
	return &Handler{
		service: service,
	}
}

// SetupRoutes registers the engagement routes. New comments go through limitComments when it is set.
func (handler *Handler) SetupRoutes(router *mux.Router, limitComments mux.MiddlewareFunc) {
	router.HandleFunc("/posts/{id}/like", handler.handleLikeState).Methods("GET", "OPTIONS").Name("post-like-state")
	router.HandleFunc("/posts/{id}/like", handler.handleLike).Methods("PUT").Name("like-post")
	router.HandleFunc("/posts/{id}/like", handler.handleUnlike).Methods("DELETE").Name("unlike-post")
	router.HandleFunc("/posts/{id}/share", handler.handleShare).Methods("POST", "OPTIONS").Name("share-post")

	var addComment http.Handler = http.HandlerFunc(handler.handleAddComment)
	if limitComments != nil {
		addComment = limitComments(addComment)
	}
	router.Handle("/posts/{id}/comments", addComment).Methods("POST").Name("add-comment")
	router.HandleFunc("/posts/{id}/comments", handler.handleComments).Methods("GET", "OPTIONS").Name("comments")

	router.HandleFunc("/comments/{id}", handler.handleDeleteComment).Methods("DELETE", "OPTIONS").Name("delete-comment")
	router.HandleFunc("/comments/{id}/like", handler.handleLikeComment).Methods("PUT", "OPTIONS").Name("like-comment")
	router.HandleFunc("/comments/{id}/like", handler.handleUnlikeComment).Methods("DELETE").Name("unlike-comment")
}

func writeError(w http.ResponseWriter, span trace.Span, what string, err error) {
	switch {
	case isValidationError(err),
		errors.Is(err, feed.ErrInvalidCursor),
		errors.Is(err, feed.ErrCursorMismatch):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, posts.ErrPostNotFound):
		http.Error(w, "post not found", http.StatusNotFound)
	case errors.Is(err, ErrCommentNotFound):
		http.Error(w, "comment not found", http.StatusNotFound)
	case errors.Is(err, ErrNotCommentAuthor):
		http.Error(w, err.Error(), http.StatusForbidden)
	default:
		log.Errorf("%s: %s", what, err)
		span.SetStatus(codes.Error, err.Error())
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

func (handler *Handler) handleLikeState(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "engagementHandler.likeState")
	defer span.End()

	session, ok := auth.SessionFrom(ctx)
	if !ok {
		// anonymous readers never like anything
		pkg.WriteJSON(w, http.StatusOK, likedResponse{})
		return
	}

	postID := mux.Vars(r)["id"]
	liked, err := handler.service.IsPostLiked(ctx, session.UserID, postID)
	if err != nil {
		writeError(w, span, "like state "+postID, err)
		return
	}

	pkg.WriteJSON(w, http.StatusOK, likedResponse{Liked: liked})
}

func (handler *Handler) handleLike(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "engagementHandler.like")
	defer span.End()

	session, ok := auth.SessionFrom(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	postID := mux.Vars(r)["id"]
	state, err := handler.service.LikePost(ctx, session.UserID, postID)
	if err != nil {
		writeError(w, span, "like post "+postID, err)
		return
	}

	pkg.WriteJSON(w, http.StatusOK, state)
}

func (handler *Handler) handleUnlike(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "engagementHandler.unlike")
	defer span.End()

	session, ok := auth.SessionFrom(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	postID := mux.Vars(r)["id"]
	state, err := handler.service.UnlikePost(ctx, session.UserID, postID)
	if err != nil {
		writeError(w, span, "unlike post "+postID, err)
		return
	}

	pkg.WriteJSON(w, http.StatusOK, state)
}

func (handler *Handler) handleShare(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "engagementHandler.share")
	defer span.End()

	postID := mux.Vars(r)["id"]
	state, err := handler.service.Share(ctx, postID)
	if err != nil {
		writeError(w, span, "share post "+postID, err)
		return
	}

	pkg.WriteJSON(w, http.StatusOK, state)
}

func (handler *Handler) handleAddComment(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "engagementHandler.addComment")
	defer span.End()

	session, ok := auth.SessionFrom(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	var req addCommentRequest
	if err := pkg.ReadJSON(r, &req); err != nil {
		http.Error(w, "invalid comment", http.StatusBadRequest)
		return
	}

	postID := mux.Vars(r)["id"]
	comment, err := handler.service.AddComment(ctx, session.UserID, postID, req.Content)
	if err != nil {
		writeError(w, span, "add comment to "+postID, err)
		return
	}

	pkg.WriteJSON(w, http.StatusCreated, comment)
}

func (handler *Handler) handleComments(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "engagementHandler.comments")
	defer span.End()

	loaded := 0
	if loadedParam := r.URL.Query().Get("loaded"); loadedParam != "" {
		var err error
		loaded, err = strconv.Atoi(loadedParam)
		if err != nil || loaded < 0 {
			http.Error(w, "error, invalid loaded param", http.StatusBadRequest)
			return
		}
	}

	postID := mux.Vars(r)["id"]
	page, err := handler.service.Comments(ctx, postID, loaded, r.URL.Query().Get("cursor"))
	if err != nil {
		writeError(w, span, "comments of "+postID, err)
		return
	}

	pkg.WriteJSON(w, http.StatusOK, page)
}

func (handler *Handler) handleDeleteComment(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "engagementHandler.deleteComment")
	defer span.End()

	session, ok := auth.SessionFrom(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	commentID := mux.Vars(r)["id"]
	if err := handler.service.DeleteComment(ctx, session.UserID, commentID); err != nil {
		writeError(w, span, "delete comment "+commentID, err)
		return
	}

	pkg.WriteTextResponseOK(w, "deleted")
}

func (handler *Handler) handleLikeComment(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "engagementHandler.likeComment")
	defer span.End()

	session, ok := auth.SessionFrom(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	commentID := mux.Vars(r)["id"]
	likes, err := handler.service.LikeComment(ctx, session.UserID, commentID)
	if err != nil {
		writeError(w, span, "like comment "+commentID, err)
		return
	}

	pkg.WriteJSON(w, http.StatusOK, commentLikesResponse{CommentID: commentID, Likes: likes})
}

func (handler *Handler) handleUnlikeComment(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "engagementHandler.unlikeComment")
	defer span.End()

	session, ok := auth.SessionFrom(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	commentID := mux.Vars(r)["id"]
	likes, err := handler.service.UnlikeComment(ctx, session.UserID, commentID)
	if err != nil {
		writeError(w, span, "unlike comment "+commentID, err)
		return
	}

	pkg.WriteJSON(w, http.StatusOK, commentLikesResponse{CommentID: commentID, Likes: likes})
}
