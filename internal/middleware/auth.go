package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/racedirector/racedirector/internal/auth"
	"github.com/racedirector/racedirector/internal/telemetry/tracing"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/codes"
)

type AuthMiddlewareHandler struct {
	checker auth.Checker
	// writes that anonymous visitors may make
	publicWrites map[string]bool
}

func NewAuthMiddlewareHandler(checker auth.Checker) *AuthMiddlewareHandler {
	return &AuthMiddlewareHandler{
		checker: checker,
		publicWrites: map[string]bool{
			"/auth/signin": true,
			"/auth/signup": true,
		},
	}
}

func (h *AuthMiddlewareHandler) requiresSession(r *http.Request) bool {
	if r.Method == http.MethodGet || r.Method == http.MethodHead {
		return false
	}
	if h.publicWrites[r.URL.Path] {
		return false
	}
	// shares are counted for anyone
	if strings.HasPrefix(r.URL.Path, "/posts/") && strings.HasSuffix(r.URL.Path, "/share") {
		return false
	}
	return true
}

// AuthCheck resolves the X-RD-TOKEN session into the request context. Reads stay
// public; writes other than sign-in, sign-up and shares need a live session.
func (h *AuthMiddlewareHandler) AuthCheck() func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, span := tracing.GlobalTracer.Start(r.Context(), "middleware.auth")
			defer span.End()

			if r.Method == http.MethodOptions {
				w.Header().Add("Allow", "GET, POST, PUT, DELETE, OPTIONS")
				w.WriteHeader(http.StatusOK)
				span.SetStatus(codes.Ok, "options-ok")
				return
			}

			required := h.requiresSession(r)
			authToken := r.Header.Get(auth.TokenHeader)
			if authToken == "" {
				if required {
					log.Tracef("[missing token] [auth middleware] unauthorized => %s", r.URL.Path)
					http.Error(w, "no can do", http.StatusUnauthorized)
					span.SetStatus(codes.Error, "missing-auth-token")
					return
				}
				span.SetStatus(codes.Ok, "anonymous")
				next.ServeHTTP(w, r)
				return
			}

			session, err := h.checker.Resolve(ctx, authToken)
			if err != nil {
				if !errors.Is(err, auth.ErrSessionNotFound) && !errors.Is(err, auth.ErrSessionExpired) {
					log.Errorf("[failed session check] => %s: %s", r.URL.Path, err)
					span.RecordError(err)
				}
				if required {
					http.Error(w, "no can do", http.StatusUnauthorized)
					span.SetStatus(codes.Error, "not-logged")
					return
				}
				// a stale token on a public read is treated as anonymous
				span.SetStatus(codes.Ok, "anonymous")
				next.ServeHTTP(w, r)
				return
			}

			span.SetStatus(codes.Ok, "ok")
			next.ServeHTTP(w, r.WithContext(auth.WithSession(r.Context(), session)))
		})
	}
}
