package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/vportnov/airport-api/internal/api/shared"
	"github.com/vportnov/airport-api/internal/domain"
	"github.com/vportnov/airport-api/internal/platform/logger"
	"github.com/vportnov/airport-api/internal/service/auth"
	"github.com/vportnov/airport-api/internal/store"
)

// AuthHandler handles registration, token issuance, and the caller's own
// profile.
type AuthHandler struct {
	userStore        store.UserStore
	jwtService       auth.JWTService
	passwordVerifier auth.PasswordVerifier
}

// NewAuthHandler creates a new AuthHandler with the given dependencies.
func NewAuthHandler(
	userStore store.UserStore,
	jwtService auth.JWTService,
	passwordVerifier auth.PasswordVerifier,
) *AuthHandler {
	return &AuthHandler{
		userStore:        userStore,
		jwtService:       jwtService,
		passwordVerifier: passwordVerifier,
	}
}

// Register handles POST /api/user/register/.
// Creates a non-staff account; staff flags are never client-settable.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), slog.Default())

	var req RegisterRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	user, err := domain.NewUser(req.Email, req.Password)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	if err := h.userStore.Create(r.Context(), user); err != nil {
		if errors.Is(err, store.ErrEmailExists) {
			log.Debug("registration with existing email")
			HandleAPIError(w, r, err, "")
			return
		}
		log.Error("failed to create user", slog.String("error", err.Error()))
		HandleAPIError(w, r, err, "Failed to register user")
		return
	}

	log.Info("user registered", slog.String("user_id", user.ID.String()))
	shared.RespondWithJSON(w, r, http.StatusCreated, NewUserResponse(user))
}

// Token handles POST /api/user/token/.
// Exchanges email/password credentials for an access/refresh token pair.
func (h *AuthHandler) Token(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), slog.Default())

	var req TokenRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	user, err := h.userStore.GetByEmail(r.Context(), req.Email)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			// Same response as a wrong password so responses cannot
			// enumerate users.
			HandleAPIError(w, r, auth.ErrInvalidCredentials, "")
			return
		}
		log.Error("failed to look up user for login", slog.String("error", err.Error()))
		HandleAPIError(w, r, err, "Authentication failed")
		return
	}

	if err := h.passwordVerifier.Compare(user.HashedPassword, req.Password); err != nil {
		HandleAPIError(w, r, auth.ErrInvalidCredentials, "")
		return
	}

	tokens, ok := h.issueTokenPair(w, r, user.ID)
	if !ok {
		return
	}

	log.Debug("issued token pair", slog.String("user_id", user.ID.String()))
	shared.RespondWithJSON(w, r, http.StatusOK, tokens)
}

// RefreshToken handles POST /api/user/token/refresh/.
// Exchanges a valid refresh token for a new access/refresh token pair.
func (h *AuthHandler) RefreshToken(w http.ResponseWriter, r *http.Request) {
	var req RefreshRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	claims, err := h.jwtService.ValidateRefreshToken(r.Context(), req.Refresh)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	// The user must still exist; a refresh token outliving its account is
	// as good as no token.
	if _, err := h.userStore.GetByID(r.Context(), claims.UserID); err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			HandleAPIError(w, r, auth.ErrInvalidRefreshToken, "")
			return
		}
		HandleAPIError(w, r, err, "Authentication failed")
		return
	}

	tokens, ok := h.issueTokenPair(w, r, claims.UserID)
	if !ok {
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, tokens)
}

// Me handles GET /api/user/me/.
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	principal, ok := getPrincipal(w, r)
	if !ok {
		return
	}

	user, err := h.userStore.GetByID(r.Context(), principal.UserID)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, NewUserResponse(user))
}

// UpdateMe handles PATCH /api/user/me/.
// Updates the caller's own email and/or password.
func (h *AuthHandler) UpdateMe(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), slog.Default())

	principal, ok := getPrincipal(w, r)
	if !ok {
		return
	}

	var req UpdateMeRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	if req.Email == nil && req.Password == nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Nothing to update")
		return
	}

	user, err := h.userStore.GetByID(r.Context(), principal.UserID)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	if req.Email != nil {
		user.Email = *req.Email
	}
	if req.Password != nil {
		// The store hashes a set plaintext password on update.
		user.Password = *req.Password
	}

	if err := h.userStore.Update(r.Context(), user); err != nil {
		if errors.Is(err, store.ErrEmailExists) {
			HandleAPIError(w, r, err, "")
			return
		}
		log.Error("failed to update user profile", slog.String("error", err.Error()))
		HandleAPIError(w, r, err, "Failed to update profile")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, NewUserResponse(user))
}

// issueTokenPair generates an access/refresh token pair, writing the error
// response on failure.
func (h *AuthHandler) issueTokenPair(
	w http.ResponseWriter,
	r *http.Request,
	userID uuid.UUID,
) (TokenResponse, bool) {
	log := logger.FromContextOrDefault(r.Context(), slog.Default())

	access, err := h.jwtService.GenerateToken(r.Context(), userID)
	if err != nil {
		log.Error("failed to generate access token", slog.String("error", err.Error()))
		HandleAPIError(w, r, err, "Failed to generate token")
		return TokenResponse{}, false
	}

	refresh, err := h.jwtService.GenerateRefreshToken(r.Context(), userID)
	if err != nil {
		log.Error("failed to generate refresh token", slog.String("error", err.Error()))
		HandleAPIError(w, r, err, "Failed to generate token")
		return TokenResponse{}, false
	}

	return TokenResponse{Access: access, Refresh: refresh}, true
}
