package uploads

import (
	"io"

	"github.com/illapa-dev/TourOperatorService/internal/infra/media"
)

// MediaStore interfaz del almacén de imágenes
type MediaStore interface {
	Save(r io.Reader) (*media.Upload, error)
	Delete(publicID string) error
}

// Logger interfaz de logging
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
