// Package auth signs users up and in, and resolves session tokens into users.
package auth

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/racedirector/racedirector/pkg"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

const (
	minPasswordLength    = 8
	maxDisplayNameLength = 50
	maxBioLength         = 500
)

var (
	ErrInvalidEmail        = errors.New("invalid email address")
	ErrPasswordTooShort    = fmt.Errorf("password must be at least %d characters", minPasswordLength)
	ErrDisplayNameRequired = errors.New("display name is required")
	ErrDisplayNameTooLong  = fmt.Errorf("display name must be at most %d characters", maxDisplayNameLength)
	ErrBioTooLong          = fmt.Errorf("bio must be at most %d characters", maxBioLength)
	ErrWrongCredentials    = errors.New("wrong credentials")
)

type usersRepo interface {
	Create(ctx context.Context, user *User, passwordHash string) error
	ByEmail(ctx context.Context, email string) (*User, string, error)
	ByID(ctx context.Context, id string) (*User, error)
	UpdateProfile(ctx context.Context, id string, update ProfileUpdate) (*User, error)
}

type sessionStore interface {
	Create(ctx context.Context, userID string, createdAt time.Time) (*Session, error)
	Delete(ctx context.Context, token string) error
}

type SignUpRequest struct {
	Email       string `json:"email"`
	Password    string `json:"password"`
	DisplayName string `json:"displayName"`
}

type Service struct {
	users    usersRepo
	sessions sessionStore
	now      func() time.Time
	// ability to inject user id generator (for unit and dev testing)
	NewIDFunc func() string
}

func NewService(users usersRepo, sessions sessionStore) *Service {
	return &Service{
		users:     users,
		sessions:  sessions,
		now:       time.Now,
		NewIDFunc: uuid.NewString,
	}
}

func normalizeEmail(email string) (string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return "", ErrInvalidEmail
	}
	return email, nil
}

func validateDisplayName(name string) error {
	if name == "" {
		return ErrDisplayNameRequired
	}
	if len([]rune(name)) > maxDisplayNameLength {
		return ErrDisplayNameTooLong
	}
	return nil
}

// SignUp creates the account and signs it in.
func (s *Service) SignUp(ctx context.Context, req SignUpRequest) (*User, *Session, error) {
	email, err := normalizeEmail(req.Email)
	if err != nil {
		return nil, nil, err
	}
	if len(req.Password) < minPasswordLength {
		return nil, nil, ErrPasswordTooShort
	}
	displayName := strings.TrimSpace(req.DisplayName)
	if err := validateDisplayName(displayName); err != nil {
		return nil, nil, err
	}

	passwordHash, err := pkg.HashPassword(req.Password)
	if err != nil {
		return nil, nil, fmt.Errorf("hash password: %w", err)
	}

	now := s.now()
	user := &User{
		ID:          s.NewIDFunc(),
		Email:       email,
		DisplayName: displayName,
		CreatedAt:   now,
	}
	if err := s.users.Create(ctx, user, passwordHash); err != nil {
		return nil, nil, err
	}

	session, err := s.sessions.Create(ctx, user.ID, now)
	if err != nil {
		return nil, nil, fmt.Errorf("create session: %w", err)
	}

	log.Debugf("auth service: new user signed up: %s", user.ID)

	return user, session, nil
}

func (s *Service) SignIn(ctx context.Context, email, password string) (*User, *Session, error) {
	email, err := normalizeEmail(email)
	if err != nil {
		return nil, nil, ErrWrongCredentials
	}

	user, passwordHash, err := s.users.ByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return nil, nil, ErrWrongCredentials
		}
		return nil, nil, err
	}

	if !pkg.CheckPasswordHash(password, passwordHash) {
		log.Tracef("[password] failed sign in attempt for user: %s", user.ID)
		return nil, nil, ErrWrongCredentials
	}

	session, err := s.sessions.Create(ctx, user.ID, s.now())
	if err != nil {
		return nil, nil, fmt.Errorf("create session: %w", err)
	}

	return user, session, nil
}

func (s *Service) SignOut(ctx context.Context, token string) error {
	return s.sessions.Delete(ctx, token)
}

func (s *Service) CurrentUser(ctx context.Context, userID string) (*User, error) {
	return s.users.ByID(ctx, userID)
}

func (s *Service) UpdateProfile(ctx context.Context, userID string, update ProfileUpdate) (*User, error) {
	update.DisplayName = strings.TrimSpace(update.DisplayName)
	update.Bio = strings.TrimSpace(update.Bio)
	if err := validateDisplayName(update.DisplayName); err != nil {
		return nil, err
	}
	if len([]rune(update.Bio)) > maxBioLength {
		return nil, ErrBioTooLong
	}
	return s.users.UpdateProfile(ctx, userID, update)
}

// IsValidationError reports whether err is caused by bad user input.
func IsValidationError(err error) bool {
	for _, target := range []error{
		ErrInvalidEmail,
		ErrPasswordTooShort,
		ErrDisplayNameRequired,
		ErrDisplayNameTooLong,
		ErrBioTooLong,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
