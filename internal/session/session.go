package session

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/polkiloo/foodstall/internal/basket"
)

// Session is the per-client context passed into every customer operation.
type Session struct {
	ID          string        `json:"id"`
	Table       string        `json:"table,omitempty"`
	Basket      basket.Basket `json:"basket"`
	LastOrderID string        `json:"last_order_id,omitempty"`
	UpdatedAt   time.Time     `json:"updated_at"`
}

// New starts an empty session with a random identifier.
func New() *Session {
	return &Session{ID: uuid.NewString(), UpdatedAt: time.Now()}
}

// Store persists sessions between requests. Load returns ErrNotFound for
// unknown or expired ids.
type Store interface {
	Load(ctx context.Context, id string) (*Session, error)
	Save(ctx context.Context, s *Session) error
	Delete(ctx context.Context, id string) error
}
