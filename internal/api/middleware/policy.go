package middleware

import (
	"net/http"

	"github.com/vportnov/airport-api/internal/api/shared"
	"github.com/vportnov/airport-api/internal/service/auth"
)

// RequirePolicy returns a middleware that evaluates the authorization policy
// for the given action and resource against the authenticated principal.
// It must run after Authenticate; a request without a principal is treated
// as unauthenticated.
func RequirePolicy(action auth.Action, resource auth.Resource) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			principal, ok := GetPrincipal(r)
			if !ok {
				shared.RespondWithError(w, r, http.StatusUnauthorized, "Authentication required")
				return
			}

			if err := auth.Authorize(principal, action, resource); err != nil {
				shared.RespondWithError(w, r, http.StatusForbidden,
					"You do not have permission to perform this action")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
