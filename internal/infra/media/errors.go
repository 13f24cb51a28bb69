package media

import "errors"

var (
	// ErrInvalidImage se devuelve cuando el archivo no es una imagen válida
	ErrInvalidImage = errors.New("media.store: invalid image")

	// ErrInvalidPublicID se devuelve cuando el identificador público no es válido
	ErrInvalidPublicID = errors.New("media.store: invalid public id")

	// ErrImageNotFound se devuelve cuando la imagen no existe
	ErrImageNotFound = errors.New("media.store: image not found")

	// ErrWriteFile se devuelve al fallar la escritura en disco
	ErrWriteFile = errors.New("media.store: failed to write file")
)
