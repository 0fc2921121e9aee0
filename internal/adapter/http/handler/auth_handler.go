package handler

import (
	"encoding/json"
	"net/http"

	"golang.org/x/crypto/bcrypt"

	"github.com/iho/fintrack/internal/adapter/http/middleware"
	"github.com/iho/fintrack/internal/adapter/repository/memory"
	"github.com/iho/fintrack/internal/domain"
	"github.com/iho/fintrack/internal/infrastructure/auth"
	"github.com/iho/fintrack/internal/wire"
)

// refreshCookie is the name of the renewal credential cookie. It never
// appears in a response body.
const refreshCookie = "refreshToken"

// IDGenerator generates entity ids.
type IDGenerator interface {
	Generate() string
}

// AuthHandler handles signup, login, token renewal and logout.
type AuthHandler struct {
	users  *memory.UserRepository
	tokens *auth.TokenManager
	idGen  IDGenerator
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(users *memory.UserRepository, tokens *auth.TokenManager, idGen IDGenerator) *AuthHandler {
	return &AuthHandler{users: users, tokens: tokens, idGen: idGen}
}

// Signup registers a user and opens a session.
func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var req wire.SignupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Name == "" {
		writeError(w, http.StatusBadRequest, "name is required")
		return
	}
	if err := domain.ValidateEmail(req.Email); err != nil {
		writeDomainError(w, err)
		return
	}
	if err := domain.ValidatePassword(req.Password); err != nil {
		writeDomainError(w, err)
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to hash password")
		return
	}

	user := domain.User{ID: h.idGen.Generate(), Name: req.Name, Email: req.Email}
	if err := h.users.Create(user, hash); err != nil {
		writeDomainError(w, err)
		return
	}

	h.openSession(w, &user, http.StatusCreated)
}

// Login verifies credentials and opens a session.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req wire.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	rec, err := h.users.ByEmail(req.Email)
	if err != nil {
		writeDomainError(w, domain.ErrInvalidCredential)
		return
	}
	if bcrypt.CompareHashAndPassword(rec.PasswordHash, []byte(req.Password)) != nil {
		writeDomainError(w, domain.ErrInvalidCredential)
		return
	}

	h.openSession(w, &rec.User, http.StatusOK)
}

// openSession issues both tokens: the access token in the body, the
// refresh credential as an HTTP-only cookie.
func (h *AuthHandler) openSession(w http.ResponseWriter, user *domain.User, status int) {
	access, err := h.tokens.GenerateAccess(user)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to generate token")
		return
	}
	refresh, err := h.tokens.GenerateRefresh(user)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to generate token")
		return
	}

	h.setRefreshCookie(w, refresh, 0)
	writeJSON(w, status, wire.AuthResponse{
		AccessToken: access,
		User:        wire.User{ID: user.ID, Name: user.Name, Email: user.Email},
	})
}

// Refresh mints a new access token from the refresh cookie. The cookie
// is rotated alongside the access token.
func (h *AuthHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	cookie, err := r.Cookie(refreshCookie)
	if err != nil {
		writeError(w, http.StatusUnauthorized, "missing refresh token")
		return
	}

	claims, err := h.tokens.Verify(cookie.Value, auth.KindRefresh)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	rec, err := h.users.ByID(claims.UserID)
	if err != nil {
		writeError(w, http.StatusUnauthorized, "unknown user")
		return
	}

	access, err := h.tokens.GenerateAccess(&rec.User)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to generate token")
		return
	}
	refresh, err := h.tokens.GenerateRefresh(&rec.User)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to generate token")
		return
	}

	h.setRefreshCookie(w, refresh, 0)
	writeJSON(w, http.StatusOK, wire.RefreshResponse{AccessToken: access})
}

// Logout discards the refresh cookie. Succeeds whether or not a session
// exists.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	h.setRefreshCookie(w, "", -1)
	writeJSON(w, http.StatusOK, map[string]string{"message": "logged out"})
}

// Me returns the authenticated user's identity.
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	rec, err := h.users.ByID(userID)
	if err != nil {
		writeError(w, http.StatusUnauthorized, "unknown user")
		return
	}

	writeJSON(w, http.StatusOK, wire.MeResponse{
		User: wire.User{ID: rec.User.ID, Name: rec.User.Name, Email: rec.User.Email},
	})
}

func (h *AuthHandler) setRefreshCookie(w http.ResponseWriter, value string, maxAge int) {
	http.SetCookie(w, &http.Cookie{
		Name:     refreshCookie,
		Value:    value,
		Path:     "/api/auth",
		MaxAge:   maxAge,
		HttpOnly: true,
		SameSite: http.SameSiteStrictMode,
	})
}
