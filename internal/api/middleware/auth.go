package middleware

import (
	"context"
	"net/http"
	"strconv"

	"github.com/illapa-dev/TourOperatorService/internal/api/handlers"
)

type contextKey string

const userIDKey contextKey = "userID"

// Auth exige el encabezado X-User-ID y deja el ID en el contexto.
// La verificación de identidad vive en el gateway; aquí solo se
// propaga el usuario ya autenticado.
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw := r.Header.Get("X-User-ID")
		if raw == "" {
			handlers.RespondUnauthorized(w, "falta el encabezado X-User-ID")
			return
		}

		userID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || userID <= 0 {
			handlers.RespondUnauthorized(w, "encabezado X-User-ID inválido")
			return
		}

		ctx := context.WithValue(r.Context(), userIDKey, userID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetUserID devuelve el ID de usuario dejado por Auth en el contexto
func GetUserID(ctx context.Context) (int64, bool) {
	userID, ok := ctx.Value(userIDKey).(int64)
	return userID, ok
}
