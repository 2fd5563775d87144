package middleware

import (
	"context"
	"net/http"
	"time"

	"github.com/pedroQM1/MrService/internal/session"
)

// unexported, collision-proof context key
type sessionContextKeyType struct{}

var sessionKey = sessionContextKeyType{}

// SessionFromContext extracts the caller's authenticated session from
// context. ok is false for anonymous requests.
func SessionFromContext(ctx context.Context) (*session.Session, bool) {
	s, ok := ctx.Value(sessionKey).(*session.Session)
	return s, ok && s != nil
}

// WithSession attaches a session principal to the context.
func WithSession(ctx context.Context, s *session.Session) context.Context {
	return context.WithValue(ctx, sessionKey, s)
}

// WithAnonymous resets the principal so later rendering on the same
// request observes a logged-out caller.
func WithAnonymous(ctx context.Context) context.Context {
	return context.WithValue(ctx, sessionKey, (*session.Session)(nil))
}

type AuthMiddleware struct {
	Store session.Store
}

func NewAuthMiddleware(store session.Store) *AuthMiddleware {
	return &AuthMiddleware{Store: store}
}

// ResolveSession loads the caller's session, if any, into the request
// context. Anonymous and expired-session requests pass through without
// a principal; expired records are deleted on sight.
func (a *AuthMiddleware) ResolveSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie(session.CookieName)
		if err != nil || cookie.Value == "" {
			next.ServeHTTP(w, r)
			return
		}

		sess, err := a.Store.Get(r.Context(), cookie.Value)
		if err != nil || sess == nil {
			next.ServeHTTP(w, r)
			return
		}

		if time.Now().After(sess.ExpiresAt) {
			_ = a.Store.Delete(r.Context(), cookie.Value)
			next.ServeHTTP(w, r)
			return
		}

		a.slide(r.Context(), sess)

		next.ServeHTTP(w, r.WithContext(WithSession(r.Context(), sess)))
	})
}

// slide renews a non-persistent session once it crosses the half-life
// of its issue window, so an active user is not signed out mid-use.
// Remember-me sessions keep their absolute expiry. Renewal is
// best-effort; a failed write leaves the original expiry in place.
func (a *AuthMiddleware) slide(ctx context.Context, sess *session.Session) {
	if sess.Persistent {
		return
	}

	window := sess.ExpiresAt.Sub(sess.CreatedAt)
	if window <= 0 || time.Until(sess.ExpiresAt) > window/2 {
		return
	}

	renewed := *sess
	renewed.ExpiresAt = time.Now().Add(window)
	if err := a.Store.Update(ctx, renewed); err == nil {
		sess.ExpiresAt = renewed.ExpiresAt
	}
}

// RequireAuth rejects requests that carry no valid session.
func (a *AuthMiddleware) RequireAuth(next http.Handler) http.Handler {
	return a.ResolveSession(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := SessionFromContext(r.Context()); !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}
		next.ServeHTTP(w, r)
	}))
}
