package session

import (
	"context"
	"time"

	"gigboard/internal/common"
)

const (
	FlashSuccess = "success"
	FlashError   = "error"
	FlashInfo    = "info"
)

// Flash is a one-shot status message: stored with the session, shown on
// the next rendered page, then discarded.
type Flash struct {
	Level   string `json:"level"`
	Message string `json:"message"`
}

// Session is server-side state keyed by an opaque token carried in a
// cookie. UserID is empty for anonymous sessions, which exist only to
// carry flashes across a redirect.
type Session struct {
	Token     string      `json:"-"`
	UserID    common.UUID `json:"user_id,omitempty"`
	Flashes   []Flash     `json:"flashes,omitempty"`
	CreatedAt time.Time   `json:"created_at"`
	ExpiresAt time.Time   `json:"expires_at"`
}

func (s *Session) Authenticated() bool {
	return s != nil && s.UserID != ""
}

type Store interface {
	Save(ctx context.Context, s Session) error
	// Get returns a not-found error for unknown or expired tokens.
	Get(ctx context.Context, token string) (*Session, error)
	Delete(ctx context.Context, token string) error
}
