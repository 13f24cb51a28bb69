package uploads

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/illapa-dev/TourOperatorService/internal/api/handlers"
	"github.com/illapa-dev/TourOperatorService/internal/infra/media"
)

const (
	msgMissingFile     = "falta el archivo 'image' en el formulario"
	msgInvalidImage    = "el archivo no es una imagen válida"
	msgInvalidPublicID = "identificador de imagen inválido"
	msgImageNotFound   = "imagen no encontrada"
	msgFileTooLarge    = "la imagen supera el tamaño máximo permitido"
)

type Handler struct {
	store    MediaStore
	maxBytes int64
	logger   Logger
}

// NewHandler crea el handler de subidas. maxSizeMB llega de la
// configuración y limita el tamaño del cuerpo multipart.
func NewHandler(store MediaStore, maxSizeMB int64, logger Logger) *Handler {
	return &Handler{
		store:    store,
		maxBytes: maxSizeMB << 20,
		logger:   logger,
	}
}

// Upload POST /api/v1/uploads
// Recibe una imagen multipart en el campo "image", la guarda junto a su
// miniatura y devuelve las URLs públicas.
func (h *Handler) Upload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxBytes)

	if err := r.ParseMultipartForm(h.maxBytes); err != nil {
		h.logger.Warn("POST /uploads - failed to parse form: %v", err)
		handlers.RespondBadRequest(w, msgFileTooLarge)
		return
	}

	file, _, err := r.FormFile("image")
	if err != nil {
		handlers.RespondBadRequest(w, msgMissingFile)
		return
	}
	defer file.Close()

	upload, err := h.store.Save(file)
	if err != nil {
		if errors.Is(err, media.ErrInvalidImage) {
			h.logger.Warn("POST /uploads - invalid image: %v", err)
			handlers.RespondBadRequest(w, msgInvalidImage)
			return
		}
		h.logger.Error("POST /uploads - failed to save image: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /uploads - image saved: public_id=%s", upload.PublicID)
	handlers.RespondJSON(w, http.StatusCreated, upload)
}

// Delete DELETE /api/v1/uploads/{publicId}
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	publicID := mux.Vars(r)["publicId"]

	if err := h.store.Delete(publicID); err != nil {
		switch {
		case errors.Is(err, media.ErrInvalidPublicID):
			handlers.RespondBadRequest(w, msgInvalidPublicID)
		case errors.Is(err, media.ErrImageNotFound):
			handlers.RespondNotFound(w, msgImageNotFound)
		default:
			h.logger.Error("DELETE /uploads/%s - failed: %v", publicID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /uploads/%s - image deleted", publicID)
	handlers.RespondNoContent(w)
}
