package middleware

import (
	"context"
	"net/http"

	"gigboard/internal/domain/session"
	"gigboard/internal/domain/user"
	appsession "gigboard/internal/session"
)

type contextKey string

const (
	ContextSessionKey contextKey = "session"
	ContextUserKey    contextKey = "user"
)

// SessionMiddleware resolves the session cookie on every request and, for
// authenticated sessions, loads the account so handlers and templates can
// use it without a second lookup.
type SessionMiddleware struct {
	sessions *appsession.Manager
	users    user.Repository
}

func NewSessionMiddleware(sessions *appsession.Manager, users user.Repository) *SessionMiddleware {
	return &SessionMiddleware{sessions: sessions, users: users}
}

func (m *SessionMiddleware) Resolve(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sess := m.sessions.Load(r)
		if sess != nil {
			ctx := context.WithValue(r.Context(), ContextSessionKey, sess)
			if sess.Authenticated() {
				if account, err := m.users.GetByID(ctx, sess.UserID); err == nil {
					ctx = context.WithValue(ctx, ContextUserKey, account)
				}
			}
			r = r.WithContext(ctx)
		}
		next.ServeHTTP(w, r)
	})
}

// RequireAuth guards a route: unauthenticated requests are redirected to the
// login page instead of erroring.
func RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := UserFromContext(r.Context()); !ok {
			http.Redirect(w, r, "/login/", http.StatusSeeOther)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func UserFromContext(ctx context.Context) (*user.User, bool) {
	account, ok := ctx.Value(ContextUserKey).(*user.User)
	return account, ok
}

func SessionFromContext(ctx context.Context) (*session.Session, bool) {
	sess, ok := ctx.Value(ContextSessionKey).(*session.Session)
	return sess, ok
}
