package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/vportnov/airport-api/internal/api/shared"
	"github.com/vportnov/airport-api/internal/service/auth"
)

func requestWithPrincipal(principal auth.Principal) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/api/crews/", nil)
	ctx := context.WithValue(req.Context(), shared.PrincipalContextKey, principal)
	return req.WithContext(ctx)
}

func TestRequirePolicy_ReadAllowedForEveryone(t *testing.T) {
	called := false
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		w.WriteHeader(http.StatusOK)
	})

	guard := RequirePolicy(auth.ActionRead, auth.ResourceFlights)
	rr := httptest.NewRecorder()
	guard(next).ServeHTTP(rr, requestWithPrincipal(auth.Principal{UserID: uuid.New()}))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.True(t, called)
}

func TestRequirePolicy_CatalogWriteRequiresStaff(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler should not run for a non-staff write")
	})

	guard := RequirePolicy(auth.ActionCreate, auth.ResourceCrews)
	rr := httptest.NewRecorder()
	guard(next).ServeHTTP(rr, requestWithPrincipal(auth.Principal{UserID: uuid.New()}))

	assert.Equal(t, http.StatusForbidden, rr.Code)
}

func TestRequirePolicy_StaffWriteAllowed(t *testing.T) {
	called := false
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		w.WriteHeader(http.StatusCreated)
	})

	guard := RequirePolicy(auth.ActionDelete, auth.ResourceAirports)
	rr := httptest.NewRecorder()
	guard(next).ServeHTTP(rr, requestWithPrincipal(auth.Principal{UserID: uuid.New(), IsStaff: true}))

	assert.Equal(t, http.StatusCreated, rr.Code)
	assert.True(t, called)
}

func TestRequirePolicy_OrderWritesAllowedForOwners(t *testing.T) {
	called := false
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		w.WriteHeader(http.StatusCreated)
	})

	guard := RequirePolicy(auth.ActionCreate, auth.ResourceOrders)
	rr := httptest.NewRecorder()
	guard(next).ServeHTTP(rr, requestWithPrincipal(auth.Principal{UserID: uuid.New()}))

	assert.Equal(t, http.StatusCreated, rr.Code)
	assert.True(t, called)
}

func TestRequirePolicy_NoPrincipal(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler should not run without a principal")
	})

	guard := RequirePolicy(auth.ActionRead, auth.ResourceFlights)
	rr := httptest.NewRecorder()
	guard(next).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/flights/", nil))

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}
