package middleware

import (
	"fmt"
	"net/http"

	"github.com/go-chi/jwtauth/v5"
	"github.com/sdm-erp/erp-backend-go/internal/domain/user"
	"github.com/sdm-erp/erp-backend-go/internal/handler/http/response"
)

// RequirePermission gates a route on a single capability. All role checks go
// through user.Can so the policy lives in one table.
func RequirePermission(action user.Action) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, claims, err := jwtauth.FromContext(r.Context())
			if err != nil {
				response.Forbidden(w, fmt.Sprintf("Insufficient permissions: required '%s'", action))
				return
			}

			roleStr, ok := claims["role"].(string)
			if !ok {
				response.Forbidden(w, fmt.Sprintf("Insufficient permissions: required '%s'", action))
				return
			}

			role := user.Role(roleStr)
			if !user.Can(role, action) {
				response.Forbidden(w, fmt.Sprintf("Insufficient permissions: required '%s', but user role is '%s'", action, role))
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
