package handlers

import (
	"net/http"

	"evently_backend/internal/middleware"
	"evently_backend/internal/services"
	"evently_backend/internal/services/dto"
	"evently_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

// UploadHandler - generic-загрузка файлов (аватары, баннеры,
// вложения жалоб). Портфолио грузится через свой эндпоинт.
type UploadHandler struct {
	*BaseHandler
	uploadService services.UploadService
}

func NewUploadHandler(base *BaseHandler, uploadService services.UploadService) *UploadHandler {
	return &UploadHandler{
		BaseHandler:   base,
		uploadService: uploadService,
	}
}

func (h *UploadHandler) RegisterRoutes(rg *gin.RouterGroup) {
	uploads := rg.Group("/uploads")
	uploads.Use(middleware.AuthMiddleware())
	{
		uploads.POST("", h.Upload)
		uploads.GET("", h.ListMine)
		uploads.DELETE("/:id", h.Delete)
	}
}

func (h *UploadHandler) Upload(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	file, err := c.FormFile("file")
	if err != nil {
		apperrors.HandleError(c, apperrors.NewBadRequestError("File is required"))
		return
	}

	usage := c.PostForm("usage")
	if usage == "" {
		usage = "misc"
	}

	db := h.GetDB(c)

	upload, err := h.uploadService.Upload(c.Request.Context(), db, userID, file, usage, c.PostForm("entity_type"), c.PostForm("entity_id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.NewUploadResponse(upload))
}

func (h *UploadHandler) ListMine(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	db := h.GetDB(c)

	uploads, err := h.uploadService.ListByUser(db, userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	out := make([]*dto.UploadResponse, 0, len(uploads))
	for i := range uploads {
		out = append(out, dto.NewUploadResponse(&uploads[i]))
	}

	c.JSON(http.StatusOK, gin.H{"uploads": out, "total": len(out)})
}

func (h *UploadHandler) Delete(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	db := h.GetDB(c)

	// Чужая запись не удаляется и наружу не светится
	upload, err := h.uploadService.Get(db, c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	if upload.UserID != userID {
		h.HandleServiceError(c, apperrors.NotFound("Upload"))
		return
	}

	if err := h.uploadService.Delete(c.Request.Context(), db, upload.ID); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Upload deleted"})
}
