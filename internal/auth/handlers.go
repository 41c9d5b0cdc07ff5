package auth

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/alexedwards/scs/v2"

	"github.com/awisniew/discoteka/internal/store"
)

// Handlers provides registration, login, and logout endpoints.
type Handlers struct {
	sessions   *scs.SessionManager
	users      *store.UserStore
	adminEmail string
}

// NewHandlers creates auth Handlers.
func NewHandlers(sm *scs.SessionManager, us *store.UserStore, adminEmail string) *Handlers {
	return &Handlers{sessions: sm, users: us, adminEmail: adminEmail}
}

type registerRequest struct {
	Email       string `json:"email"`
	DisplayName string `json:"display_name"`
	Password    string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type userBody struct {
	ID          string `json:"id"`
	Email       string `json:"email"`
	DisplayName string `json:"display_name"`
	Role        string `json:"role"`
}

// Register creates a user account and starts a session.
// POST /auth/register
func (h *Handlers) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeAuthError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	req.Email = strings.TrimSpace(strings.ToLower(req.Email))
	if req.Email == "" || req.Password == "" {
		writeAuthError(w, http.StatusBadRequest, "email and password are required")
		return
	}

	hash, err := HashPassword(req.Password)
	if err != nil {
		writeAuthError(w, http.StatusInternalServerError, "internal error")
		return
	}

	user, err := h.users.Create(r.Context(), req.Email, req.DisplayName, hash, h.adminEmail)
	if errors.Is(err, store.ErrEmailTaken) {
		writeAuthError(w, http.StatusConflict, "email is already registered")
		return
	}
	if err != nil {
		writeAuthError(w, http.StatusInternalServerError, "internal error")
		return
	}

	// Cycle the session token on privilege change.
	if err := h.sessions.RenewToken(r.Context()); err != nil {
		writeAuthError(w, http.StatusInternalServerError, "internal error")
		return
	}
	h.sessions.Put(r.Context(), SessionUserIDKey, user.ID)

	writeUser(w, http.StatusCreated, user)
}

// Login verifies credentials and starts a session.
// POST /auth/login
func (h *Handlers) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeAuthError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	req.Email = strings.TrimSpace(strings.ToLower(req.Email))

	user, err := h.users.GetByEmail(r.Context(), req.Email)
	if err != nil || !VerifyPassword(user.PasswordHash, req.Password) {
		// Same response for unknown email and wrong password.
		writeAuthError(w, http.StatusUnauthorized, "invalid credentials")
		return
	}

	if err := h.sessions.RenewToken(r.Context()); err != nil {
		writeAuthError(w, http.StatusInternalServerError, "internal error")
		return
	}
	h.sessions.Put(r.Context(), SessionUserIDKey, user.ID)

	writeUser(w, http.StatusOK, user)
}

// Logout destroys the session.
// POST /auth/logout
func (h *Handlers) Logout(w http.ResponseWriter, r *http.Request) {
	if err := h.sessions.Destroy(r.Context()); err != nil {
		writeAuthError(w, http.StatusInternalServerError, "internal error")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func writeUser(w http.ResponseWriter, status int, u *store.User) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(userBody{
		ID:          u.ID,
		Email:       u.Email,
		DisplayName: u.DisplayName,
		Role:        u.Role,
	})
}

func writeAuthError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": message})
}
