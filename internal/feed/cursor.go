package feed

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

var (
	ErrInvalidCursor   = errors.New("invalid cursor")
	ErrCursorMismatch  = errors.New("cursor belongs to a different query")
	ErrInvalidPageSize = errors.New("page size must be positive")
	ErrUnknownOrder    = errors.New("unknown feed order")
)

type Order string

const (
	OrderScoreDesc     Order = "score_desc"
	OrderCreatedAtDesc Order = "created_at_desc"
)

func (o Order) Valid() bool {
	return o == OrderScoreDesc || o == OrderCreatedAtDesc
}

// Query selects a feed: its order plus optional equality filters.
type Query struct {
	Order    Order
	AuthorID string
	PostID   string
}

func (q Query) filterKey() string {
	return "author=" + q.AuthorID + ";post=" + q.PostID
}

// Key is the position of an item within an ordered feed. ID breaks ties.
type Key struct {
	ID        string    `json:"id"`
	Score     float64   `json:"s,omitempty"`
	CreatedAt time.Time `json:"t,omitempty"`
}

// Item is anything a feed can page over.
type Item interface {
	FeedKey() Key
}

// Cursor is the resume point of a feed, handed to clients in its encoded, opaque form.
type Cursor struct {
	Order  Order  `json:"o"`
	Filter string `json:"f"`
	After  Key    `json:"k"`
}

func newCursor(q Query, after Key) Cursor {
	return Cursor{
		Order:  q.Order,
		Filter: q.filterKey(),
		After:  after,
	}
}

func (c Cursor) Encode() string {
	raw, err := json.Marshal(c)
	if err != nil {
		// Cursor holds only strings, a float and a time
		panic(fmt.Sprintf("marshal cursor: %s", err))
	}
	return base64.RawURLEncoding.EncodeToString(raw)
}

func DecodeCursor(encoded string) (Cursor, error) {
	raw, err := base64.RawURLEncoding.DecodeString(encoded)
	if err != nil {
		return Cursor{}, fmt.Errorf("%w: %s", ErrInvalidCursor, err)
	}
	var c Cursor
	if err := json.Unmarshal(raw, &c); err != nil {
		return Cursor{}, fmt.Errorf("%w: %s", ErrInvalidCursor, err)
	}
	if !c.Order.Valid() || c.After.ID == "" {
		return Cursor{}, ErrInvalidCursor
	}
	return c, nil
}

func (c Cursor) matches(q Query) bool {
	return c.Order == q.Order && c.Filter == q.filterKey()
}
