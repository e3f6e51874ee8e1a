package middleware

import (
	"net/http"

	"github.com/go-chi/jwtauth/v5"
	"github.com/tals012/agriculture-hrms-sub002/internal/domain/auth"
	"github.com/tals012/agriculture-hrms-sub002/internal/domain/user"
	"github.com/tals012/agriculture-hrms-sub002/internal/handler/http/response"
)

// RequireRole gates a route to the listed roles.
func RequireRole(roles ...user.Role) func(http.Handler) http.Handler {
	allowed := make(map[string]struct{}, len(roles))
	for _, r := range roles {
		allowed[string(r)] = struct{}{}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, claims, err := jwtauth.FromContext(r.Context())
			if err != nil {
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}

			role, ok := claims["role"].(string)
			if !ok {
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}

			if _, ok := allowed[role]; !ok {
				response.HandleError(w, user.ErrAdminPrivilegeRequired)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// AdminOnly restricts a route to ADMIN users.
func AdminOnly(next http.Handler) http.Handler {
	return RequireRole(user.RoleAdmin)(next)
}
