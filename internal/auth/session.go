package auth

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/racedirector/racedirector/pkg"

	"github.com/go-redis/redis/v8"
	log "github.com/sirupsen/logrus"
)

const (
	DefaultTTL       = 24 * 7 * time.Hour
	TokenHeader      = "X-RD-TOKEN"
	sessionKeyPrefix = "racedirector-session||"
	tokensSetKey     = "racedirector-sessions"
	tokenLength      = 35

	fieldUserID    = "user_id"
	fieldCreatedAt = "created_at"
)

var (
	ErrSessionNotFound = errors.New("session not found")
	ErrSessionExpired  = errors.New("session expired")
)

type Session struct {
	Token     string    `json:"-"`
	UserID    string    `json:"userId"`
	CreatedAt time.Time `json:"createdAt"`
}

// SessionStore keeps sign-in sessions in redis, one hash per token plus a set of all tokens.
type SessionStore struct {
	redisClient *redis.Client
	ttl         time.Duration
	now         func() time.Time
	// ability to inject random string generator func for tokens (for unit and dev testing)
	RandStringFunc func(s int) (string, error)
}

func NewSessionStore(ttl time.Duration, redisClient *redis.Client) *SessionStore {
	return &SessionStore{
		redisClient:    redisClient,
		ttl:            ttl,
		now:            time.Now,
		RandStringFunc: pkg.GenerateRandomString,
	}
}

func (s *SessionStore) Create(ctx context.Context, userID string, createdAt time.Time) (*Session, error) {
	token, err := s.RandStringFunc(tokenLength)
	if err != nil {
		return nil, err
	}

	sessionKey := sessionKeyPrefix + token
	if err := s.redisClient.HSet(ctx, sessionKey, fieldUserID, userID, fieldCreatedAt, createdAt.Unix()).Err(); err != nil {
		return nil, fmt.Errorf("store session: %w", err)
	}

	// add token to list of sessions
	if err := s.redisClient.SAdd(ctx, tokensSetKey, token).Err(); err != nil {
		return nil, fmt.Errorf("register session: %w", err)
	}

	return &Session{
		Token:     token,
		UserID:    userID,
		CreatedAt: time.Unix(createdAt.Unix(), 0),
	}, nil
}

// Resolve returns the live session behind token.
func (s *SessionStore) Resolve(ctx context.Context, token string) (*Session, error) {
	if token == "" {
		return nil, ErrSessionNotFound
	}

	values, err := s.redisClient.HGetAll(ctx, sessionKeyPrefix+token).Result()
	if err != nil {
		return nil, err
	}
	if len(values) == 0 || values[fieldUserID] == "" {
		return nil, ErrSessionNotFound
	}

	createdAtUnix, err := strconv.ParseInt(values[fieldCreatedAt], 10, 64)
	if err != nil {
		return nil, fmt.Errorf("parse session created at: %w", err)
	}

	createdAt := time.Unix(createdAtUnix, 0)
	if s.now().Sub(createdAt) > s.ttl {
		return nil, ErrSessionExpired
	}

	return &Session{
		Token:     token,
		UserID:    values[fieldUserID],
		CreatedAt: createdAt,
	}, nil
}

func (s *SessionStore) Delete(ctx context.Context, token string) error {
	deleted, err := s.redisClient.Del(ctx, sessionKeyPrefix+token).Result()
	if err != nil {
		return err
	}

	// remove token from the list of sessions
	if err := s.redisClient.SRem(ctx, tokensSetKey, token).Err(); err != nil {
		return err
	}

	if deleted == 0 {
		return ErrSessionNotFound
	}
	return nil
}

// ScanAndClean will run through all sessions, check the TTL, and clean them if old.
// Tokens whose session hash is already gone are dropped from the set too.
func (s *SessionStore) ScanAndClean(ctx context.Context) {
	sessionTokens, err := s.redisClient.SMembers(ctx, tokensSetKey).Result()
	if err != nil {
		log.Errorf("!!! session store, scan and clean, get sessions: %s", err)
		return
	}

	if len(sessionTokens) == 0 {
		log.Debugln("=> session store, scan and clean abort, no sessions")
		return
	}

	log.Debugf("=> session store, scan and clean [%d sessions] start ...", len(sessionTokens))
	var toRemove []string
	for _, token := range sessionTokens {
		createdAtUnixStr, err := s.redisClient.HGet(ctx, sessionKeyPrefix+token, fieldCreatedAt).Result()
		if errors.Is(err, redis.Nil) {
			toRemove = append(toRemove, token)
			continue
		}
		if err != nil {
			log.Errorf("=> session store, scan and clean token %s: %s", token, err)
			continue
		}

		createdAtUnix, err := strconv.ParseInt(createdAtUnixStr, 10, 64)
		if err != nil {
			log.Errorf("=> session store, scan and clean token %s: %s", token, err)
			continue
		}

		if s.now().Sub(time.Unix(createdAtUnix, 0)) > s.ttl {
			toRemove = append(toRemove, token)
		}
	}

	for _, token := range toRemove {
		if err := s.redisClient.Del(ctx, sessionKeyPrefix+token).Err(); err != nil {
			log.Errorf("=> session store, clean token: %s", err)
			continue
		}
		if err := s.redisClient.SRem(ctx, tokensSetKey, token).Err(); err != nil {
			log.Errorf("=> session store, clean token: %s", err)
			continue
		}
	}

	log.Debugf("=> session store, scan and clean done, %d sessions removed", len(toRemove))
}
