package uploads

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/illapa-dev/TourOperatorService/internal/infra/media"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type fakeMediaStore struct {
	upload *media.Upload
	err    error
}

func (f *fakeMediaStore) Save(r io.Reader) (*media.Upload, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.upload, nil
}

func (f *fakeMediaStore) Delete(publicID string) error {
	return f.err
}

// multipartImage arma un cuerpo multipart con el campo "image"
func multipartImage(t *testing.T, payload []byte) (*bytes.Buffer, string) {
	t.Helper()

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	part, err := writer.CreateFormFile("image", "foto.jpg")
	require.NoError(t, err)
	_, err = part.Write(payload)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	return &body, writer.FormDataContentType()
}

func TestUpload(t *testing.T) {
	store := &fakeMediaStore{upload: &media.Upload{
		PublicID:     "abc123",
		URL:          "http://localhost:8080/uploads/abc123.jpg",
		ThumbnailURL: "http://localhost:8080/uploads/abc123_thumb.jpg",
	}}
	h := NewHandler(store, 10, nopLogger{})

	body, contentType := multipartImage(t, []byte("imagen de prueba"))
	req := httptest.NewRequest(http.MethodPost, "/api/v1/uploads", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()

	h.Upload(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)

	var resp media.Upload
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "abc123", resp.PublicID)
}

func TestUploadRespectsConfiguredMaxSize(t *testing.T) {
	store := &fakeMediaStore{upload: &media.Upload{PublicID: "abc123"}}
	// Límite de 1 MB configurado, el cuerpo pesa 2 MB
	h := NewHandler(store, 1, nopLogger{})

	body, contentType := multipartImage(t, bytes.Repeat([]byte("x"), 2<<20))
	req := httptest.NewRequest(http.MethodPost, "/api/v1/uploads", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()

	h.Upload(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), msgFileTooLarge)
}

func TestUploadMissingFile(t *testing.T) {
	h := NewHandler(&fakeMediaStore{}, 10, nopLogger{})

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	require.NoError(t, writer.WriteField("name", "sin imagen"))
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/uploads", &body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	rec := httptest.NewRecorder()

	h.Upload(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), msgMissingFile)
}

func TestUploadInvalidImage(t *testing.T) {
	h := NewHandler(&fakeMediaStore{err: media.ErrInvalidImage}, 10, nopLogger{})

	body, contentType := multipartImage(t, []byte("esto no es una imagen"))
	req := httptest.NewRequest(http.MethodPost, "/api/v1/uploads", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()

	h.Upload(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), msgInvalidImage)
}
