package handlers

import (
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"evently_backend/internal/middleware"
	"evently_backend/internal/models"
	"evently_backend/internal/repositories"
	"evently_backend/internal/storage"
	"evently_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

// FileHandler раздает файлы локального хранилища по путям из таблицы uploads.
// Для S3/R2 с public_read ссылки ведут напрямую в бакет, и этот маршрут
// остается запасным.
type FileHandler struct {
	*BaseHandler
	store      storage.Storage
	uploadRepo repositories.UploadRepository
}

func NewFileHandler(base *BaseHandler, store storage.Storage, uploadRepo repositories.UploadRepository) *FileHandler {
	return &FileHandler{
		BaseHandler: base,
		store:       store,
		uploadRepo:  uploadRepo,
	}
}

func (h *FileHandler) RegisterRoutes(rg *gin.RouterGroup) {
	files := rg.Group("/files")
	files.Use(middleware.OptionalAuthMiddleware())
	{
		files.GET("/*path", h.Serve)
	}
}

// Serve отдает файл по его пути в хранилище. Раздаются только файлы,
// известные таблице uploads: произвольные пути не читаются.
func (h *FileHandler) Serve(c *gin.Context) {
	path := strings.TrimPrefix(c.Param("path"), "/")
	if path == "" || strings.Contains(path, "..") {
		apperrors.HandleError(c, apperrors.NewNotFoundError("File not found"))
		return
	}

	upload, err := h.uploadRepo.FindByPath(h.GetDB(c), path)
	if err != nil {
		apperrors.HandleError(c, apperrors.NewNotFoundError("File not found"))
		return
	}

	if !upload.IsPublic && !h.canAccess(c, upload) {
		apperrors.HandleError(c, apperrors.NewForbiddenError("Access denied"))
		return
	}

	reader, err := h.store.Get(c.Request.Context(), upload.Path)
	if err != nil {
		apperrors.HandleError(c, apperrors.NewNotFoundError("File not found in storage"))
		return
	}
	defer reader.Close()

	c.Header("Content-Type", upload.MimeType)
	c.Header("Content-Length", strconv.FormatInt(upload.Size, 10))
	c.Header("Cache-Control", "public, max-age=86400")
	c.Header("ETag", fmt.Sprintf("%q", upload.ID))
	c.Status(http.StatusOK)

	if _, err := io.Copy(c.Writer, reader); err != nil {
		// Заголовки уже ушли, ответить ошибкой нельзя
		c.Error(err)
	}
}

func (h *FileHandler) canAccess(c *gin.Context, upload *models.Upload) bool {
	userID, _ := c.Get("userID")
	if id, ok := userID.(string); ok && id == upload.UserID {
		return true
	}
	role, _ := c.Get("role")
	r, ok := role.(string)
	return ok && models.UserRole(r) == models.UserRoleAdmin
}
