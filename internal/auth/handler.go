package auth

import (
	"context"
	"errors"
	"net/http"

	"github.com/racedirector/racedirector/internal/telemetry/tracing"
	"github.com/racedirector/racedirector/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

type accountService interface {
	SignUp(ctx context.Context, req SignUpRequest) (*User, *Session, error)
	SignIn(ctx context.Context, email, password string) (*User, *Session, error)
	SignOut(ctx context.Context, token string) error
	CurrentUser(ctx context.Context, userID string) (*User, error)
	UpdateProfile(ctx context.Context, userID string, update ProfileUpdate) (*User, error)
}

type signInRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type sessionResponse struct {
	Token string `json:"token"`
	User  *User  `json:"user"`
}

type Handler struct {
	service accountService
}

func NewHandler(service accountService) *Handler {
	return &Handler{
		service: service,
	}
}

// SetupRoutes registers the account routes on the /auth subrouter.
func (handler *Handler) SetupRoutes(router *mux.Router) {
	router.HandleFunc("/signup", handler.handleSignUp).Methods("POST", "OPTIONS").Name("signup")
	router.HandleFunc("/signin", handler.handleSignIn).Methods("POST", "OPTIONS").Name("signin")
	router.HandleFunc("/signout", handler.handleSignOut).Methods("POST", "OPTIONS").Name("signout")
	router.HandleFunc("/me", handler.handleMe).Methods("GET", "OPTIONS").Name("me")
	router.HandleFunc("/me", handler.handleUpdateProfile).Methods("PUT").Name("update-profile")
}

func (handler *Handler) handleSignUp(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "authHandler.signUp")
	defer span.End()

	var req SignUpRequest
	if err := pkg.ReadJSON(r, &req); err != nil {
		http.Error(w, "invalid sign up request", http.StatusBadRequest)
		return
	}

	user, session, err := handler.service.SignUp(ctx, req)
	if err != nil {
		switch {
		case IsValidationError(err):
			http.Error(w, err.Error(), http.StatusBadRequest)
		case errors.Is(err, ErrEmailTaken):
			http.Error(w, err.Error(), http.StatusConflict)
		default:
			log.Errorf("sign up failed: %s", err)
			span.SetStatus(codes.Error, err.Error())
			http.Error(w, "sign up failed", http.StatusInternalServerError)
		}
		return
	}

	span.SetAttributes(attribute.String("user.id", user.ID))
	pkg.WriteJSON(w, http.StatusCreated, sessionResponse{Token: session.Token, User: user})
}

func (handler *Handler) handleSignIn(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "authHandler.signIn")
	defer span.End()

	var req signInRequest
	if err := pkg.ReadJSON(r, &req); err != nil {
		http.Error(w, "invalid sign in request", http.StatusBadRequest)
		return
	}
	if req.Email == "" {
		http.Error(w, "error, email empty", http.StatusBadRequest)
		return
	}
	if req.Password == "" {
		http.Error(w, "error, password empty", http.StatusBadRequest)
		return
	}

	user, session, err := handler.service.SignIn(ctx, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, ErrWrongCredentials) {
			http.Error(w, "error, wrong credentials", http.StatusUnauthorized)
			return
		}
		log.Errorf("sign in failed: %s", err)
		span.SetStatus(codes.Error, err.Error())
		http.Error(w, "sign in failed", http.StatusInternalServerError)
		return
	}

	log.Trace("new sign in success")
	pkg.WriteJSON(w, http.StatusOK, sessionResponse{Token: session.Token, User: user})
}

func (handler *Handler) handleSignOut(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "authHandler.signOut")
	defer span.End()

	session, ok := SessionFrom(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	if err := handler.service.SignOut(ctx, session.Token); err != nil && !errors.Is(err, ErrSessionNotFound) {
		log.Errorf("sign out failed: %s", err)
		span.SetStatus(codes.Error, err.Error())
		http.Error(w, "sign out failed", http.StatusInternalServerError)
		return
	}

	pkg.WriteTextResponseOK(w, "signed out")
}

func (handler *Handler) handleMe(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "authHandler.me")
	defer span.End()

	session, ok := SessionFrom(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	user, err := handler.service.CurrentUser(ctx, session.UserID)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			http.Error(w, "user not found", http.StatusNotFound)
			return
		}
		log.Errorf("get current user [%s]: %s", session.UserID, err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSON(w, http.StatusOK, user)
}

func (handler *Handler) handleUpdateProfile(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "authHandler.updateProfile")
	defer span.End()

	session, ok := SessionFrom(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	var update ProfileUpdate
	if err := pkg.ReadJSON(r, &update); err != nil {
		http.Error(w, "invalid profile update", http.StatusBadRequest)
		return
	}

	user, err := handler.service.UpdateProfile(ctx, session.UserID, update)
	if err != nil {
		switch {
		case IsValidationError(err):
			http.Error(w, err.Error(), http.StatusBadRequest)
		case errors.Is(err, ErrUserNotFound):
			http.Error(w, "user not found", http.StatusNotFound)
		default:
			log.Errorf("update profile [%s]: %s", session.UserID, err)
			http.Error(w, "internal error", http.StatusInternalServerError)
		}
		return
	}

	pkg.WriteJSON(w, http.StatusOK, user)
}
