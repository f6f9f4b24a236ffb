package handler

import (
	"fmt"
	"log/slog"
	"mime"
	"net/http"
	"path/filepath"
	"strings"

	"sagedo/config"
	"sagedo/internal/delivery/http/response"
	domainerrors "sagedo/internal/domain/errors"
	"sagedo/internal/domain/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// UploadHandler stores customer attachments in the blob bucket and serves
// them back.
type UploadHandler struct {
	store  service.FileStore
	cfg    config.UploadConfig
	logger *slog.Logger
}

// NewUploadHandler is the constructor for UploadHandler, injected by Fx.
func NewUploadHandler(store service.FileStore, cfg *config.Config, logger *slog.Logger) *UploadHandler {
	return &UploadHandler{
		store:  store,
		cfg:    cfg.Upload,
		logger: logger,
	}
}

// Upload accepts a multipart form under the "files" field and returns the
// stored URLs in submission order.
func (h *UploadHandler) Upload(c echo.Context) error {
	form, err := c.MultipartForm()
	if err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid multipart form")
	}

	files := form.File["files"]
	if len(files) == 0 {
		return response.BadRequest(c, "INVALID_INPUT", "No files in request")
	}
	if len(files) > h.cfg.MaxFiles {
		return domainerrors.ErrTooManyFiles
	}

	urls := make([]string, 0, len(files))
	for _, fileHeader := range files {
		if fileHeader.Size > h.cfg.MaxFileBytes {
			return domainerrors.ErrUploadTooLarge.WrapMessage(fileHeader.Filename)
		}

		src, err := fileHeader.Open()
		if err != nil {
			return errors.Wrap(err, "open uploaded file")
		}

		// Random key, original extension kept for content-type sniffing.
		key := fmt.Sprintf("%s%s", uuid.New().String(), sanitizeExtension(fileHeader.Filename))
		contentType := fileHeader.Header.Get("Content-Type")

		url, err := h.store.Save(c.Request().Context(), key, contentType, src)
		src.Close()
		if err != nil {
			return errors.Wrap(err, "store uploaded file")
		}

		urls = append(urls, url)
	}

	return response.Success(c, http.StatusCreated, map[string]any{"urls": urls}, "Files uploaded")
}

// Serve streams a stored file back to the client.
func (h *UploadHandler) Serve(c echo.Context) error {
	key := c.Param("key")
	if key == "" || strings.Contains(key, "/") || strings.Contains(key, "..") {
		return domainerrors.ErrNotFound
	}

	reader, err := h.store.Open(c.Request().Context(), key)
	if err != nil {
		h.logger.Debug("Blob not found", "key", key, "error", err)

		return domainerrors.ErrNotFound
	}
	defer reader.Close()

	contentType := mime.TypeByExtension(filepath.Ext(key))
	if contentType == "" {
		contentType = echo.MIMEOctetStream
	}

	return c.Stream(http.StatusOK, contentType, reader)
}

func sanitizeExtension(filename string) string {
	ext := strings.ToLower(filepath.Ext(filename))
	if len(ext) > 10 || strings.ContainsAny(ext, "/\\") {
		return ""
	}

	return ext
}
