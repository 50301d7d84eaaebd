package middleware

import (
	"context"
	"net/http"

	"github.com/quillpad-dev/quillpad/internal/domain"
	internal_errors "github.com/quillpad-dev/quillpad/internal/errors"
	"github.com/quillpad-dev/quillpad/internal/logger"
	"github.com/quillpad-dev/quillpad/internal/session"
)

// Key to store the current user in the request context
type key int

const userKey key = 0

// UserStorage is the slice of the persistence layer the middleware needs.
type UserStorage interface {
	UserById(id int64) (domain.User, error)
}

// Auth resolves the session cookie to a User on every request. The user row
// is re-read from storage each time, so a deleted account is anonymous on
// its very next request, whatever its cookie still says.
type Auth struct {
	sessions session.Manager
	storage  UserStorage
}

func NewAuth(sessions session.Manager, storage UserStorage) *Auth {
	return &Auth{sessions: sessions, storage: storage}
}

// Resolve populates the request context with the current user when the
// session cookie checks out, and passes the request through untouched
// otherwise. Every route goes through this; gates build on top of it.
func (a *Auth) Resolve(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user := a.currentUser(r)
		if user != nil {
			r = r.WithContext(ContextWithUser(r.Context(), user))
		}
		next.ServeHTTP(w, r)
	})
}

// AdminOnly rejects anything but an authenticated admin before the wrapped
// handler runs, so even probes against non-existent post ids read as
// Forbidden rather than NotFound. The forbidden handler owns the 403 status
// and body.
func (a *Auth) AdminOnly(forbidden http.Handler) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user := UserFromContext(r)
			if user == nil || !user.Admin {
				forbidden.ServeHTTP(w, r)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func (a *Auth) currentUser(r *http.Request) *domain.User {
	cookie, err := r.Cookie(session.CookieName)
	if err != nil || cookie.Value == "" {
		return nil
	}
	uid, err := a.sessions.UserId(cookie.Value)
	if err != nil {
		return nil
	}
	user, err := a.storage.UserById(uid)
	if err != nil {
		// The id no longer resolves (user deleted): treat as anonymous.
		if !internal_errors.IsNotFound(err) {
			logger.Log.Error("failed to resolve session user", "uid", uid, "error", err)
		}
		return nil
	}
	return &user
}

// ContextWithUser attaches a resolved user to the context.
func ContextWithUser(ctx context.Context, user *domain.User) context.Context {
	return context.WithValue(ctx, userKey, user)
}

// UserFromContext returns the resolved user, or nil for anonymous requests.
func UserFromContext(r *http.Request) *domain.User {
	user, ok := r.Context().Value(userKey).(*domain.User)
	if !ok {
		return nil
	}
	return user
}
