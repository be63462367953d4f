package middleware

import (
	"net/http"
	"strings"

	"github.com/go-chi/jwtauth/v5"

	"github.com/officetrack/attendance-backend-go/internal/domain/auth"
	"github.com/officetrack/attendance-backend-go/internal/handler/http/response"
)

// AdminOnly restricts a route to the configured administrator account. The
// office runs with a single admin, identified by email.
func AdminOnly(adminEmail string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, claims, err := jwtauth.FromContext(r.Context())
			if err != nil {
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}

			email, ok := claims["email"].(string)
			if !ok || !strings.EqualFold(email, adminEmail) {
				response.HandleError(w, auth.ErrAdminOnly)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
