package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/racedirector/racedirector/pkg"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	ErrUserNotFound = errors.New("user not found")
	ErrEmailTaken   = errors.New("email already registered")
)

type User struct {
	ID          string    `json:"id"`
	Email       string    `json:"email,omitempty"`
	DisplayName string    `json:"displayName"`
	PhotoURL    string    `json:"photoUrl"`
	Bio         string    `json:"bio"`
	Followers   int64     `json:"followers"`
	Following   int64     `json:"following"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Public returns a copy of u safe to show to other users.
func (u User) Public() User {
	u.Email = ""
	return u
}

type ProfileUpdate struct {
	DisplayName string `json:"displayName"`
	PhotoURL    string `json:"photoUrl"`
	Bio         string `json:"bio"`
}

type UsersRepo struct {
	db *pgxpool.Pool
}

func NewUsersRepo(db *pgxpool.Pool) *UsersRepo {
	return &UsersRepo{
		db: db,
	}
}

const userColumns = `id, email, display_name, photo_url, bio, followers, following, created_at`

func scanUser(row pgx.Row, extra ...any) (*User, error) {
	var u User
	dest := append([]any{
		&u.ID, &u.Email, &u.DisplayName, &u.PhotoURL, &u.Bio, &u.Followers, &u.Following, &u.CreatedAt,
	}, extra...)
	if err := row.Scan(dest...); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &u, nil
}

func (r *UsersRepo) Create(ctx context.Context, user *User, passwordHash string) error {
	_, err := r.db.Exec(
		ctx,
		`INSERT INTO users (id, email, display_name, photo_url, bio, password_hash, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7);`,
		user.ID, user.Email, user.DisplayName, user.PhotoURL, user.Bio, passwordHash, user.CreatedAt,
	)
	if err != nil {
		if pkg.IsUniqueViolationError(err) {
			return ErrEmailTaken
		}
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

// ByEmail returns the user together with its password hash.
func (r *UsersRepo) ByEmail(ctx context.Context, email string) (*User, string, error) {
	var passwordHash string
	user, err := scanUser(
		r.db.QueryRow(ctx, `SELECT `+userColumns+`, password_hash FROM users WHERE email = $1;`, email),
		&passwordHash,
	)
	if err != nil {
		return nil, "", err
	}
	return user, passwordHash, nil
}

func (r *UsersRepo) ByID(ctx context.Context, id string) (*User, error) {
	return scanUser(r.db.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1;`, id))
}

func (r *UsersRepo) UpdateProfile(ctx context.Context, id string, update ProfileUpdate) (*User, error) {
	return scanUser(r.db.QueryRow(
		ctx,
		`UPDATE users SET display_name = $2, photo_url = $3, bio = $4
		WHERE id = $1
		RETURNING `+userColumns+`;`,
		id, update.DisplayName, update.PhotoURL, update.Bio,
	))
}
