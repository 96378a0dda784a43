package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vportnov/airport-api/internal/domain"
	"github.com/vportnov/airport-api/internal/mocks"
	"github.com/vportnov/airport-api/internal/service/auth"
	"github.com/vportnov/airport-api/internal/store"
)

func authTestSetup(userID uuid.UUID, isStaff bool) (*mocks.MockJWTService, *mocks.MockUserStore) {
	jwtService := &mocks.MockJWTService{
		ValidateTokenFn: func(ctx context.Context, token string) (*auth.Claims, error) {
			switch token {
			case "valid-token":
				return &auth.Claims{UserID: userID}, nil
			case "expired-token":
				return nil, auth.ErrExpiredToken
			default:
				return nil, auth.ErrInvalidToken
			}
		},
	}
	userStore := &mocks.MockUserStore{
		GetByIDFn: func(ctx context.Context, id uuid.UUID) (*domain.User, error) {
			if id != userID {
				return nil, store.ErrUserNotFound
			}
			return &domain.User{
				ID:             id,
				Email:          "user@example.com",
				HashedPassword: "hash",
				IsStaff:        isStaff,
			}, nil
		},
	}
	return jwtService, userStore
}

func TestAuthenticate(t *testing.T) {
	userID := uuid.New()
	jwtService, userStore := authTestSetup(userID, true)
	middleware := NewAuthMiddleware(jwtService, userStore)

	var principal auth.Principal
	var found bool
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		principal, found = GetPrincipal(r)
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/api/crews/", nil)
	req.Header.Set("Authorization", "Bearer valid-token")
	rr := httptest.NewRecorder()
	middleware.Authenticate(next).ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	require.True(t, found)
	assert.Equal(t, userID, principal.UserID)
	assert.True(t, principal.IsStaff)
}

func TestAuthenticate_MissingHeader(t *testing.T) {
	jwtService, userStore := authTestSetup(uuid.New(), false)
	middleware := NewAuthMiddleware(jwtService, userStore)

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler should not run without credentials")
	})

	req := httptest.NewRequest(http.MethodGet, "/api/crews/", nil)
	rr := httptest.NewRecorder()
	middleware.Authenticate(next).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestAuthenticate_MalformedHeader(t *testing.T) {
	jwtService, userStore := authTestSetup(uuid.New(), false)
	middleware := NewAuthMiddleware(jwtService, userStore)

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler should not run without credentials")
	})

	for _, header := range []string{"valid-token", "Basic valid-token", "Bearer"} {
		req := httptest.NewRequest(http.MethodGet, "/api/crews/", nil)
		req.Header.Set("Authorization", header)
		rr := httptest.NewRecorder()
		middleware.Authenticate(next).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code, "header %q", header)
	}
}

func TestAuthenticate_ExpiredToken(t *testing.T) {
	jwtService, userStore := authTestSetup(uuid.New(), false)
	middleware := NewAuthMiddleware(jwtService, userStore)

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler should not run with an expired token")
	})

	req := httptest.NewRequest(http.MethodGet, "/api/crews/", nil)
	req.Header.Set("Authorization", "Bearer expired-token")
	rr := httptest.NewRecorder()
	middleware.Authenticate(next).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestAuthenticate_DeletedUser(t *testing.T) {
	jwtService, _ := authTestSetup(uuid.New(), false)
	userStore := &mocks.MockUserStore{
		GetByIDFn: func(ctx context.Context, id uuid.UUID) (*domain.User, error) {
			return nil, store.ErrUserNotFound
		},
	}
	middleware := NewAuthMiddleware(jwtService, userStore)

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler should not run for a deleted user")
	})

	req := httptest.NewRequest(http.MethodGet, "/api/crews/", nil)
	req.Header.Set("Authorization", "Bearer valid-token")
	rr := httptest.NewRecorder()
	middleware.Authenticate(next).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}
