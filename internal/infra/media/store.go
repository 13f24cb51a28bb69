package media

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/disintegration/imaging"
	"github.com/google/uuid"
)

// Ancho de las miniaturas generadas para las tarjetas del catálogo
const thumbnailWidth = 300

// Upload resultado de guardar una imagen
type Upload struct {
	PublicID     string `json:"publicId"`
	URL          string `json:"url"`
	ThumbnailURL string `json:"thumbnailUrl"`
}

// Store guarda las imágenes subidas en disco local. Cada imagen recibe
// un identificador público aleatorio y una miniatura re-escalada.
type Store struct {
	dir     string
	baseURL string
}

// NewStore crea un almacén de imágenes sobre el directorio dado
func NewStore(dir, baseURL string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("%w: NewStore - create dir: %v", ErrWriteFile, err)
	}

	return &Store{dir: dir, baseURL: baseURL}, nil
}

// Save decodifica la imagen, la guarda junto a una miniatura y devuelve
// las URLs públicas. Archivos que no sean imágenes se rechazan.
func (s *Store) Save(r io.Reader) (*Upload, error) {
	img, err := imaging.Decode(r, imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("%w: Save - decode: %v", ErrInvalidImage, err)
	}

	publicID := uuid.NewString()
	original := publicID + ".jpg"
	thumbnail := publicID + "_thumb.jpg"

	if err := imaging.Save(img, filepath.Join(s.dir, original), imaging.JPEGQuality(90)); err != nil {
		return nil, fmt.Errorf("%w: Save - write original: %v", ErrWriteFile, err)
	}

	thumb := imaging.Resize(img, thumbnailWidth, 0, imaging.Lanczos)
	if err := imaging.Save(thumb, filepath.Join(s.dir, thumbnail), imaging.JPEGQuality(85)); err != nil {
		return nil, fmt.Errorf("%w: Save - write thumbnail: %v", ErrWriteFile, err)
	}

	return &Upload{
		PublicID:     publicID,
		URL:          s.baseURL + "/" + original,
		ThumbnailURL: s.baseURL + "/" + thumbnail,
	}, nil
}

// Delete elimina la imagen y su miniatura por identificador público.
// El identificador debe ser un UUID, lo que evita rutas arbitrarias.
func (s *Store) Delete(publicID string) error {
	if _, err := uuid.Parse(publicID); err != nil {
		return ErrInvalidPublicID
	}

	original := filepath.Join(s.dir, publicID+".jpg")
	thumbnail := filepath.Join(s.dir, publicID+"_thumb.jpg")

	if err := os.Remove(original); err != nil {
		if os.IsNotExist(err) {
			return ErrImageNotFound
		}
		return fmt.Errorf("media.store: Delete - remove original: %v", err)
	}

	// La miniatura puede faltar si la escritura original falló a medias
	if err := os.Remove(thumbnail); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("media.store: Delete - remove thumbnail: %v", err)
	}

	return nil
}

// Dir devuelve el directorio donde se guardan las imágenes
func (s *Store) Dir() string {
	return s.dir
}
