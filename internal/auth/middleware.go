package auth

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/alexedwards/scs/v2"

	"github.com/awisniew/discoteka/internal/store"
)

type contextKey string

const UserContextKey contextKey = "user"

// Middleware resolves the session user and enforces authentication and role
// requirements. Services never read session state themselves; the resolved
// user travels on the request context and is passed down explicitly.
type Middleware struct {
	sessions *scs.SessionManager
	users    *store.UserStore
}

// NewMiddleware creates a new auth Middleware.
func NewMiddleware(sm *scs.SessionManager, us *store.UserStore) *Middleware {
	return &Middleware{sessions: sm, users: us}
}

// RequireUser rejects requests without a valid session with a JSON 401.
// On success, sets the *store.User on the request context.
func (m *Middleware) RequireUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID := m.sessions.GetString(r.Context(), SessionUserIDKey)
		if userID == "" {
			unauthorized(w)
			return
		}

		user, err := m.users.GetByID(r.Context(), userID)
		if err != nil {
			// Session references a deleted user. Destroy and reject.
			_ = m.sessions.Destroy(r.Context())
			unauthorized(w)
			return
		}

		ctx := context.WithValue(r.Context(), UserContextKey, user)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireAdmin requires an admin user. Must be used after RequireUser.
func (m *Middleware) RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, ok := r.Context().Value(UserContextKey).(*store.User)
		if !ok || !user.IsAdmin() {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusForbidden)
			_ = json.NewEncoder(w).Encode(map[string]string{"error": "forbidden", "code": "forbidden"})
			return
		}
		next.ServeHTTP(w, r)
	})
}

// UserFromContext retrieves the authenticated user from the context.
func UserFromContext(ctx context.Context) *store.User {
	u, _ := ctx.Value(UserContextKey).(*store.User)
	return u
}

func unauthorized(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": "unauthorized", "code": "unauthorized"})
}
