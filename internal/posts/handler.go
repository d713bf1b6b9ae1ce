package posts

import (
	"context"
	"errors"
	"net/http"

	"github.com/racedirector/racedirector/internal/auth"
	"github.com/racedirector/racedirector/internal/content"
	"github.com/racedirector/racedirector/internal/feed"
	"github.com/racedirector/racedirector/internal/telemetry/tracing"
	"github.com/racedirector/racedirector/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

type postsService interface {
	Publish(ctx context.Context, authorID string, draft Draft) (*Post, error)
	View(ctx context.Context, id string) (*Post, error)
	Body(ctx context.Context, id string) ([]byte, error)
	Update(ctx context.Context, userID, id string, draft Draft) (*Post, error)
	Delete(ctx context.Context, userID, id string) error
	EditorState(ctx context.Context, userID, id string) (*Editor, error)
	ApplyEdits(ctx context.Context, userID, id string, edits []content.Edit) (*Editor, error)
	HomeFeed(ctx context.Context, cursor string) (feed.Page[Post], error)
	UserPosts(ctx context.Context, authorID, cursor string) (feed.Page[Post], error)
}

type editsRequest struct {
	Edits []content.Edit `json:"edits"`
}

type Handler struct {
	service postsService
}

func NewHandler(service postsService) *Handler {
	return &Handler{
		service: service,
	}
}

func (handler *Handler) SetupRoutes(router *mux.Router) {
	router.HandleFunc("/posts", handler.handlePublish).Methods("POST", "OPTIONS").Name("publish-post")
	router.HandleFunc("/posts/{id}", handler.handleGet).Methods("GET", "OPTIONS").Name("get-post")
	router.HandleFunc("/posts/{id}", handler.handleUpdate).Methods("PUT").Name("update-post")
	router.HandleFunc("/posts/{id}", handler.handleDelete).Methods("DELETE").Name("delete-post")
	router.HandleFunc("/posts/{id}/body", handler.handleBody).Methods("GET", "OPTIONS").Name("post-body")

	router.HandleFunc("/studio/posts/{id}", handler.handleEditorState).Methods("GET", "OPTIONS").Name("studio-post")
	router.HandleFunc("/studio/posts/{id}/edits", handler.handleEdits).Methods("POST", "OPTIONS").Name("studio-edits")

	router.HandleFunc("/feed", handler.handleHomeFeed).Methods("GET", "OPTIONS").Name("home-feed")
	router.HandleFunc("/users/{id}/posts", handler.handleUserPosts).Methods("GET", "OPTIONS").Name("user-posts")
}

// writeError maps service errors to status codes. Unexpected ones are logged and hidden from the client.
func writeError(w http.ResponseWriter, span trace.Span, what string, err error) {
	var validationErr *ValidationError
	switch {
	case errors.As(err, &validationErr):
		http.Error(w, validationErr.Message, http.StatusBadRequest)
	case errors.Is(err, ErrInvalidEdit),
		errors.Is(err, feed.ErrInvalidCursor),
		errors.Is(err, feed.ErrCursorMismatch):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, ErrPostNotFound):
		http.Error(w, "post not found", http.StatusNotFound)
	case errors.Is(err, ErrNotAuthor):
		http.Error(w, err.Error(), http.StatusForbidden)
	default:
		log.Errorf("%s: %s", what, err)
		span.SetStatus(codes.Error, err.Error())
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

func (handler *Handler) handlePublish(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "postsHandler.publish")
	defer span.End()

	session, ok := auth.SessionFrom(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	var draft Draft
	if err := pkg.ReadJSON(r, &draft); err != nil {
		http.Error(w, "invalid post", http.StatusBadRequest)
		return
	}

	post, err := handler.service.Publish(ctx, session.UserID, draft)
	if err != nil {
		writeError(w, span, "publish post", err)
		return
	}

	span.SetAttributes(attribute.String("post.id", post.ID))
	pkg.WriteJSON(w, http.StatusCreated, post)
}

func (handler *Handler) handleGet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "postsHandler.get")
	defer span.End()

	id := mux.Vars(r)["id"]
	span.SetAttributes(attribute.String("post.id", id))

	post, err := handler.service.View(ctx, id)
	if err != nil {
		writeError(w, span, "get post "+id, err)
		return
	}

	pkg.WriteJSON(w, http.StatusOK, post)
}

func (handler *Handler) handleBody(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "postsHandler.body")
	defer span.End()

	id := mux.Vars(r)["id"]
	body, err := handler.service.Body(ctx, id)
	if err != nil {
		writeError(w, span, "get post body "+id, err)
		return
	}

	pkg.WriteResponseBytesOK(w, pkg.ContentType.Markdown, body)
}

func (handler *Handler) handleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "postsHandler.update")
	defer span.End()

	session, ok := auth.SessionFrom(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	var draft Draft
	if err := pkg.ReadJSON(r, &draft); err != nil {
		http.Error(w, "invalid post", http.StatusBadRequest)
		return
	}

	id := mux.Vars(r)["id"]
	post, err := handler.service.Update(ctx, session.UserID, id, draft)
	if err != nil {
		writeError(w, span, "update post "+id, err)
		return
	}

	pkg.WriteJSON(w, http.StatusOK, post)
}

func (handler *Handler) handleDelete(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "postsHandler.delete")
	defer span.End()

	session, ok := auth.SessionFrom(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	id := mux.Vars(r)["id"]
	if err := handler.service.Delete(ctx, session.UserID, id); err != nil {
		writeError(w, span, "delete post "+id, err)
		return
	}

	log.Debugf("post %s deleted by %s", id, session.UserID)
	pkg.WriteTextResponseOK(w, "deleted")
}

func (handler *Handler) handleEditorState(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "postsHandler.editorState")
	defer span.End()

	session, ok := auth.SessionFrom(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	id := mux.Vars(r)["id"]
	editor, err := handler.service.EditorState(ctx, session.UserID, id)
	if err != nil {
		writeError(w, span, "get editor state "+id, err)
		return
	}

	pkg.WriteJSON(w, http.StatusOK, editor)
}

func (handler *Handler) handleEdits(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "postsHandler.edits")
	defer span.End()

	session, ok := auth.SessionFrom(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	var req editsRequest
	if err := pkg.ReadJSON(r, &req); err != nil {
		http.Error(w, "invalid edits", http.StatusBadRequest)
		return
	}
	if len(req.Edits) == 0 {
		http.Error(w, "error, no edits", http.StatusBadRequest)
		return
	}

	id := mux.Vars(r)["id"]
	editor, err := handler.service.ApplyEdits(ctx, session.UserID, id, req.Edits)
	if err != nil {
		writeError(w, span, "apply edits "+id, err)
		return
	}

	pkg.WriteJSON(w, http.StatusOK, editor)
}

func (handler *Handler) handleHomeFeed(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "postsHandler.homeFeed")
	defer span.End()

	page, err := handler.service.HomeFeed(ctx, r.URL.Query().Get("cursor"))
	if err != nil {
		writeError(w, span, "home feed", err)
		return
	}

	pkg.WriteJSON(w, http.StatusOK, page)
}

func (handler *Handler) handleUserPosts(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "postsHandler.userPosts")
	defer span.End()

	userID := mux.Vars(r)["id"]
	page, err := handler.service.UserPosts(ctx, userID, r.URL.Query().Get("cursor"))
	if err != nil {
		writeError(w, span, "user posts "+userID, err)
		return
	}

	pkg.WriteJSON(w, http.StatusOK, page)
}
