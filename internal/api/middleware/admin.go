package middleware

import (
	"context"
	"net/http"

	"github.com/illapa-dev/TourOperatorService/internal/api/handlers"
	"github.com/illapa-dev/TourOperatorService/internal/domain"
)

// UserProvider obtiene el usuario para comprobar su rol
type UserProvider interface {
	GetDomainByID(ctx context.Context, id int64) (*domain.User, error)
}

// AdminOnly permite el paso solo a usuarios con rol admin. Debe ir
// detrás de Auth: sin usuario en el contexto responde 401.
func AdminOnly(users UserProvider) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userID, ok := GetUserID(r.Context())
			if !ok {
				handlers.RespondUnauthorized(w, "falta el encabezado X-User-ID")
				return
			}

			user, err := users.GetDomainByID(r.Context(), userID)
			if err != nil {
				handlers.RespondForbidden(w, "acceso restringido a administradores")
				return
			}

			if !user.IsAdmin() {
				handlers.RespondForbidden(w, "acceso restringido a administradores")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
