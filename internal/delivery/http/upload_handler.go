package http

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/dkozyrev/foodway/internal/pkg/logger"
)

var allowedUploadResources = map[string]bool{
	"products":  true,
	"donations": true,
	"avatars":   true,
}

var allowedUploadExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".webp": true,
}

// UploadHandler обрабатывает загрузку изображений
type UploadHandler struct {
	uploadDir string
	maxSize   int64
	logger    logger.Logger
}

// NewUploadHandler создает новый handler
func NewUploadHandler(uploadDir string, maxSizeMB int64, logger logger.Logger) *UploadHandler {
	return &UploadHandler{
		uploadDir: uploadDir,
		maxSize:   maxSizeMB << 20,
		logger:    logger,
	}
}

// Upload сохраняет файл из multipart-формы и возвращает его путь
// POST /upload/{resource} (только admin)
func (h *UploadHandler) Upload(w http.ResponseWriter, r *http.Request) {
	resource := chi.URLParam(r, "resource")
	if !allowedUploadResources[resource] {
		respondError(w, http.StatusBadRequest, "Unknown upload resource")
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, h.maxSize)
	if err := r.ParseMultipartForm(h.maxSize); err != nil {
		respondError(w, http.StatusBadRequest, "File too large or malformed form")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		respondError(w, http.StatusBadRequest, "Missing file field")
		return
	}
	defer file.Close()

	ext := strings.ToLower(filepath.Ext(header.Filename))
	if !allowedUploadExtensions[ext] {
		respondError(w, http.StatusBadRequest, "Unsupported file type")
		return
	}

	dir := filepath.Join(h.uploadDir, resource)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		h.logger.Error("Failed to create upload directory", map[string]interface{}{
			"dir":   dir,
			"error": err.Error(),
		})
		respondError(w, http.StatusInternalServerError, "Failed to store file")
		return
	}

	name := uuid.NewString() + ext
	dst, err := os.Create(filepath.Join(dir, name))
	if err != nil {
		h.logger.Error("Failed to create upload file", map[string]interface{}{
			"error": err.Error(),
		})
		respondError(w, http.StatusInternalServerError, "Failed to store file")
		return
	}
	defer dst.Close()

	if _, err := dst.ReadFrom(file); err != nil {
		h.logger.Error("Failed to write upload file", map[string]interface{}{
			"error": err.Error(),
		})
		respondError(w, http.StatusInternalServerError, "Failed to store file")
		return
	}

	respondJSON(w, http.StatusCreated, map[string]string{
		"path": fmt.Sprintf("/%s/%s/%s", h.uploadDir, resource, name),
	})
}
