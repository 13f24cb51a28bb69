package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// ErrorResponse cuerpo estándar de error de la API
type ErrorResponse struct {
	Error string `json:"error"`
}

// DecodeJSON decodifica el cuerpo JSON del request en dst
func DecodeJSON(r *http.Request, dst interface{}) error {
	defer r.Body.Close()

	decoder := json.NewDecoder(r.Body)
	if err := decoder.Decode(dst); err != nil {
		return fmt.Errorf("decode json: %w", err)
	}

	return nil
}

// RespondJSON escribe una respuesta JSON con el código de estado dado
func RespondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)

	if payload == nil {
		return
	}

	// El encabezado ya se escribió, un fallo aquí solo puede ignorarse
	_ = json.NewEncoder(w).Encode(payload)
}

// RespondError escribe una respuesta de error con el código dado
func RespondError(w http.ResponseWriter, status int, message string) {
	RespondJSON(w, status, ErrorResponse{Error: message})
}

// RespondBadRequest escribe una respuesta 400
func RespondBadRequest(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusBadRequest, message)
}

// RespondUnauthorized escribe una respuesta 401
func RespondUnauthorized(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusUnauthorized, message)
}

// RespondForbidden escribe una respuesta 403
func RespondForbidden(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusForbidden, message)
}

// RespondNotFound escribe una respuesta 404
func RespondNotFound(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusNotFound, message)
}

// RespondConflict escribe una respuesta 409
func RespondConflict(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusConflict, message)
}

// RespondInternalError escribe una respuesta 500 genérica, sin filtrar
// detalles internos al cliente
func RespondInternalError(w http.ResponseWriter) {
	RespondError(w, http.StatusInternalServerError, "error interno del servidor")
}

// RespondNoContent escribe una respuesta 204 sin cuerpo
func RespondNoContent(w http.ResponseWriter) {
	w.WriteHeader(http.StatusNoContent)
}
