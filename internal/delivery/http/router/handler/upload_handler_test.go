package handler

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"sagedo/config"
	domainerrors "sagedo/internal/domain/errors"
	mockSvc "sagedo/internal/mocks/service"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newUploadTestConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Upload = config.UploadConfig{
		BucketURL:    "file:///tmp/sagedo-test-uploads",
		MaxFileBytes: 1 << 20,
		MaxFiles:     3,
	}

	return cfg
}

func multipartBody(t *testing.T, filenames ...string) (*bytes.Buffer, string) {
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	for _, name := range filenames {
		part, err := writer.CreateFormFile("files", name)
		require.NoError(t, err)
		_, err = part.Write([]byte("file content"))
		require.NoError(t, err)
	}
	require.NoError(t, writer.Close())

	return body, writer.FormDataContentType()
}

func TestUploadHandler_Upload(t *testing.T) {
	mockStore := mockSvc.NewMockFileStore(t)
	handler := NewUploadHandler(mockStore, newUploadTestConfig(), slog.Default())

	mockStore.EXPECT().
		Save(mock.Anything, mock.AnythingOfType("string"), mock.AnythingOfType("string"), mock.Anything).
		RunAndReturn(func(_ context.Context, key string, _ string, _ io.Reader) (string, error) {
			return "/api/uploads/" + key, nil
		})

	body, contentType := multipartBody(t, "brief.pdf")

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/uploads", body)
	req.Header.Set(echo.HeaderContentType, contentType)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := handler.Upload(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), "/api/uploads/")
	assert.Contains(t, rec.Body.String(), ".pdf")
}

func TestUploadHandler_Upload_TooManyFiles(t *testing.T) {
	mockStore := mockSvc.NewMockFileStore(t)
	handler := NewUploadHandler(mockStore, newUploadTestConfig(), slog.Default())

	body, contentType := multipartBody(t, "a.png", "b.png", "c.png", "d.png")

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/uploads", body)
	req.Header.Set(echo.HeaderContentType, contentType)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := handler.Upload(c)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrTooManyFiles))
}

func TestUploadHandler_Upload_NoFiles(t *testing.T) {
	mockStore := mockSvc.NewMockFileStore(t)
	handler := NewUploadHandler(mockStore, newUploadTestConfig(), slog.Default())

	body, contentType := multipartBody(t)

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/uploads", body)
	req.Header.Set(echo.HeaderContentType, contentType)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := handler.Upload(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUploadHandler_Serve(t *testing.T) {
	mockStore := mockSvc.NewMockFileStore(t)
	handler := NewUploadHandler(mockStore, newUploadTestConfig(), slog.Default())

	mockStore.EXPECT().
		Open(mock.Anything, "abc123.png").
		Return(io.NopCloser(strings.NewReader("image-bytes")), nil)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/uploads/abc123.png", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("key")
	c.SetParamValues("abc123.png")

	err := handler.Serve(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image-bytes", rec.Body.String())
	assert.Contains(t, rec.Header().Get(echo.HeaderContentType), "image/png")
}

func TestUploadHandler_Serve_RejectsTraversal(t *testing.T) {
	mockStore := mockSvc.NewMockFileStore(t)
	handler := NewUploadHandler(mockStore, newUploadTestConfig(), slog.Default())

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/uploads/x", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("key")
	c.SetParamValues("../config.yaml")

	err := handler.Serve(c)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrNotFound))
}
