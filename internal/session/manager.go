package session

import (
	"context"
	"net/http"
	"time"

	"gigboard/internal/common"
	"gigboard/internal/domain/session"
	"gigboard/internal/security"
)

// Manager ties the session store to cookie transport: it issues opaque
// tokens, resolves the request cookie to a session, and implements the
// one-shot flash semantics.
type Manager struct {
	store      session.Store
	ttl        time.Duration
	cookieName string
	secure     bool
}

func NewManager(store session.Store, ttl time.Duration, cookieName string, secure bool) *Manager {
	return &Manager{store: store, ttl: ttl, cookieName: cookieName, secure: secure}
}

// Load resolves the request cookie to a stored session. A missing cookie or
// an unknown/expired token yields nil; callers treat that as anonymous.
func (m *Manager) Load(r *http.Request) *session.Session {
	cookie, err := r.Cookie(m.cookieName)
	if err != nil || cookie.Value == "" {
		return nil
	}
	sess, err := m.store.Get(r.Context(), cookie.Value)
	if err != nil {
		return nil
	}
	return sess
}

// Issue creates and stores a fresh session, sets the cookie, and returns it.
// An empty userID makes an anonymous session that only carries flashes.
func (m *Manager) Issue(ctx context.Context, w http.ResponseWriter, userID common.UUID, flashes []session.Flash) (*session.Session, error) {
	token, err := security.NewSessionToken()
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to generate session token", err)
	}
	now := time.Now().UTC()
	sess := session.Session{
		Token:     token,
		UserID:    userID,
		Flashes:   flashes,
		CreatedAt: now,
		ExpiresAt: now.Add(m.ttl),
	}
	if err := m.store.Save(ctx, sess); err != nil {
		return nil, err
	}
	m.setCookie(w, token)
	return &sess, nil
}

// Login rotates the session token on authentication: the previous session,
// if any, is discarded and a new authenticated one replaces it. Flashes are
// attached to the new session here because AddFlash resolves the request
// cookie, which still names the pre-login session.
func (m *Manager) Login(ctx context.Context, w http.ResponseWriter, r *http.Request, userID common.UUID, flashes ...session.Flash) error {
	if old := m.Load(r); old != nil {
		_ = m.store.Delete(ctx, old.Token)
	}
	_, err := m.Issue(ctx, w, userID, flashes)
	return err
}

// Destroy removes the current session and expires the cookie.
func (m *Manager) Destroy(ctx context.Context, w http.ResponseWriter, r *http.Request) {
	if sess := m.Load(r); sess != nil {
		_ = m.store.Delete(ctx, sess.Token)
	}
	http.SetCookie(w, &http.Cookie{
		Name:     m.cookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   m.secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// AddFlash queues a message for the next rendered page. When the request has
// no session yet, an anonymous one is created to carry it.
func (m *Manager) AddFlash(ctx context.Context, w http.ResponseWriter, r *http.Request, level, message string) error {
	sess := m.Load(r)
	if sess == nil {
		_, err := m.Issue(ctx, w, "", []session.Flash{{Level: level, Message: message}})
		return err
	}
	sess.Flashes = append(sess.Flashes, session.Flash{Level: level, Message: message})
	return m.store.Save(ctx, *sess)
}

// PopFlashes drains queued flashes: they are returned once and cleared.
func (m *Manager) PopFlashes(ctx context.Context, r *http.Request) []session.Flash {
	sess := m.Load(r)
	if sess == nil || len(sess.Flashes) == 0 {
		return nil
	}
	flashes := sess.Flashes
	sess.Flashes = nil
	_ = m.store.Save(ctx, *sess)
	return flashes
}

func (m *Manager) setCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     m.cookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(m.ttl.Seconds()),
		HttpOnly: true,
		Secure:   m.secure,
		SameSite: http.SameSiteLaxMode,
	})
}
